// qsbench: N 개짜리 난수 배열 M 개를 정렬하는 데 걸린 평균 시간을 잰다.
//
//	qsbench [flags] <number of elements> <number of arrays>
//
// 성공하면 표준출력에 "<N> <평균 초>" 한 줄을 쓴다.
package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	code := execute(ctx, os.Args[1:], os.Stdout, os.Stderr)
	stop()
	os.Exit(code)
}
