// Package quicksort 는 정수 슬라이스를 제자리(in-place)에서 정렬하는
// 3-way 퀵소트 엔진이다.
//
// 피벗은 구간의 처음, 중간, 마지막 값의 중앙값(median-of-three)으로 고르고,
// 구간을 < key, == key, > key 세 덩어리로 나눈 뒤 == 덩어리를 제외한
// 양쪽만 재귀한다. 같은 값이 많은 입력(전부 같은 값 포함)에서도
// O(N²) 로 무너지지 않는다.
//
// 드라이버는 세 가지다.
//
//	Sort          재귀 드라이버
//	SortIterative 명시적 작업 스택 드라이버 (호출 스택이 작은 환경용)
//	SortParallel  고루틴 풀로 하위 구간을 나눠 정렬
//
// 알려진 한계: median-of-three 는 최악의 경우를 줄일 뿐 없애지 못한다.
// 악의적으로 만든 입력에서는 재귀 깊이가 O(N) 이 될 수 있고, 이때의
// 스택 고갈은 복구 대상 에러가 아니라 프로세스 수준의 치명적 상황이다.
// 같은 값끼리의 상대 순서(안정성)는 보장하지 않는다.
package quicksort
