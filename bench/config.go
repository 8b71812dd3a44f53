package bench

import (
	"fmt"
	"io"
	"math"
	"os"
	"strings"

	"github.com/cockroachdb/errors"
	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"

	"github.com/rlaau/qsbench/dataset"
)

// Config 벤치마크 한 번의 설정.
// 우선순위: 기본값 < YAML 파일 < 명령행 플래그 < 위치 인자
type Config struct {
	Size        int    `yaml:"size" json:"size" validate:"gt=0"`
	Trials      int    `yaml:"trials" json:"trials" validate:"gt=0"`
	Algorithm   string `yaml:"algorithm" json:"algorithm" validate:"required,algorithm"`
	Seed        uint64 `yaml:"seed" json:"seed"`
	ValueScale  int    `yaml:"value_scale" json:"value_scale" validate:"gte=1"`
	Storage     string `yaml:"storage" json:"storage" validate:"storage"`
	DataDir     string `yaml:"data_dir" json:"data_dir,omitempty" validate:"required_unless=Storage memory"`
	Verify      bool   `yaml:"verify" json:"verify"`
	MemStats    bool   `yaml:"mem_stats" json:"mem_stats"`
	JSONOut     string `yaml:"json_out" json:"-"`
	MarkdownOut string `yaml:"markdown_out" json:"-"`
	MetricsOut  string `yaml:"metrics_out" json:"-"`
	LogLevel    string `yaml:"log_level" json:"-" validate:"oneof=debug info warn error"`
}

// DefaultValueScale 난수 상한 = DefaultValueScale * Size
const DefaultValueScale = 1000

func DefaultConfig() Config {
	return Config{
		Algorithm:  "quicksort",
		ValueScale: DefaultValueScale,
		Storage:    dataset.KindMemory,
		LogLevel:   "info",
	}
}

var configValidate *validator.Validate

func init() {
	configValidate = validator.New()

	_ = configValidate.RegisterValidation("algorithm", func(fl validator.FieldLevel) bool {
		_, ok := algorithms[fl.Field().String()]
		return ok
	})
	_ = configValidate.RegisterValidation("storage", func(fl validator.FieldLevel) bool {
		kind := fl.Field().String()
		for _, k := range dataset.Kinds() {
			if k == kind {
				return true
			}
		}
		return false
	})
}

// LoadConfig 기본값 위에 YAML 파일을 덮어쓴다. path 가 비어 있으면 기본값.
// 검증은 하지 않는다 (플래그 적용 후 Validate 호출).
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()
	if path == "" {
		return cfg, nil
	}

	f, err := os.Open(path)
	if err != nil {
		return cfg, errors.Wrap(err, "open config")
	}
	defer f.Close()

	dec := yaml.NewDecoder(f)
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
		return cfg, errors.Mark(errors.Wrapf(err, "parse config %s", path), ErrInvalidConfig)
	}
	return cfg, nil
}

// Validate 설정값 검증
func (c Config) Validate() error {
	if err := configValidate.Struct(c); err != nil {
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) {
			msgs := make([]string, 0, len(verrs))
			for _, fe := range verrs {
				msgs = append(msgs, describeFieldError(fe))
			}
			return errors.Mark(errors.New(strings.Join(msgs, "; ")), ErrInvalidConfig)
		}
		return errors.Mark(err, ErrInvalidConfig)
	}
	// 난수 상한 ValueScale*Size 가 int 범위를 넘지 않아야 한다
	if c.Size > (math.MaxInt-1)/c.ValueScale {
		return errors.Mark(errors.Newf("size %d with value scale %d overflows", c.Size, c.ValueScale), ErrInvalidConfig)
	}
	return nil
}

func describeFieldError(fe validator.FieldError) string {
	switch fe.Tag() {
	case "gt":
		return fmt.Sprintf("%s must be > %s, got %v", fe.Field(), fe.Param(), fe.Value())
	case "gte":
		return fmt.Sprintf("%s must be >= %s, got %v", fe.Field(), fe.Param(), fe.Value())
	case "algorithm":
		return fmt.Sprintf("unknown algorithm %q (known: %s)", fe.Value(), strings.Join(Algorithms(), ", "))
	case "storage":
		return fmt.Sprintf("unknown storage %q (known: %s)", fe.Value(), strings.Join(dataset.Kinds(), ", "))
	case "required_unless":
		return fmt.Sprintf("%s is required unless storage is memory", fe.Field())
	default:
		return fmt.Sprintf("%s failed %q validation", fe.Field(), fe.Tag())
	}
}
