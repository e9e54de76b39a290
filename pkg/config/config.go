// Package config는 애플리케이션 설정을 관리하는 패키지입니다.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config 인터페이스는 설정 값에 액세스하기 위한 메서드를 정의합니다.
type Config interface {
	GetString(key string) string
	GetInt(key string) int
	GetBool(key string) bool
	GetFloat64(key string) float64
	GetStringSlice(key string) []string
	GetStringMap(key string) map[string]interface{}
	IsSet(key string) bool
	GetAll() map[string]interface{}
}

// viperConfig는 viper를 사용하여 Config 인터페이스를 구현합니다.
type viperConfig struct {
	v *viper.Viper
}

func (c *viperConfig) GetString(key string) string {
	return c.v.GetString(key)
}

func (c *viperConfig) GetInt(key string) int {
	return c.v.GetInt(key)
}

func (c *viperConfig) GetBool(key string) bool {
	return c.v.GetBool(key)
}

func (c *viperConfig) GetFloat64(key string) float64 {
	return c.v.GetFloat64(key)
}

func (c *viperConfig) GetStringSlice(key string) []string {
	return c.v.GetStringSlice(key)
}

func (c *viperConfig) GetStringMap(key string) map[string]interface{} {
	return c.v.GetStringMap(key)
}

// IsSet은 키가 파일, 환경 변수 또는 기본값 중 하나로 설정되었는지 확인합니다.
func (c *viperConfig) IsSet(key string) bool {
	return c.v.IsSet(key)
}

// GetAll은 전체 설정을 맵으로 반환합니다.
func (c *viperConfig) GetAll() map[string]interface{} {
	return c.v.AllSettings()
}

// 설정 디렉토리 경로
const configDir = "configs"

// Option은 Load 동작을 조정합니다.
type Option func(*options)

type options struct {
	defaults    map[string]interface{}
	aliases     map[string][]string
	dotenvFiles []string
}

// WithDefaults는 설정 파일과 환경 변수에 값이 없을 때 사용할 기본값을 지정합니다.
func WithDefaults(defaults map[string]interface{}) Option {
	return func(o *options) {
		for k, v := range defaults {
			o.defaults[k] = v
		}
	}
}

// WithEnvAlias는 접두사 규칙 외의 환경 변수 이름을 키에 추가로 바인딩합니다.
// 예: WithEnvAlias("session.secret", "SECRET_KEY")
func WithEnvAlias(key string, envs ...string) Option {
	return func(o *options) {
		o.aliases[key] = append(o.aliases[key], envs...)
	}
}

// WithDotenv는 읽을 .env 파일 목록을 바꿉니다. 기본값은 현재 디렉토리의 .env 입니다.
func WithDotenv(files ...string) Option {
	return func(o *options) {
		o.dotenvFiles = files
	}
}

// Load는 지정된 서비스 이름에 해당하는 설정 파일을 로드합니다.
// 설정 파일이 없으면 기본값과 환경 변수만으로 동작합니다.
func Load(serviceName string, opts ...Option) (Config, error) {
	o := &options{
		defaults:    map[string]interface{}{},
		aliases:     map[string][]string{},
		dotenvFiles: []string{".env"},
	}
	for _, opt := range opts {
		opt(o)
	}

	// .env 파일은 이미 설정된 환경 변수를 덮어쓰지 않는다
	for _, f := range o.dotenvFiles {
		if err := godotenv.Load(f); err != nil && !errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf(".env 파일 로드 실패(%s): %w", f, err)
		}
	}

	v := viper.New()

	env := os.Getenv("APP_ENV")
	if env == "" {
		env = "dev" // 기본 환경은 dev
	}

	v.SetConfigType("yaml")

	// 환경 변수 바인딩 설정
	prefix := strings.ToUpper(serviceName)
	v.SetEnvPrefix(prefix)
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	for key, value := range o.defaults {
		v.SetDefault(key, value)
	}
	for key, envs := range o.aliases {
		// 접두사가 붙은 이름이 항상 우선한다
		names := append([]string{prefix + "_" + strings.ToUpper(strings.ReplaceAll(key, ".", "_"))}, envs...)
		if err := v.BindEnv(append([]string{key}, names...)...); err != nil {
			return nil, fmt.Errorf("환경 변수 바인딩 실패(%s): %w", key, err)
		}
	}

	configPath := os.Getenv("CONFIG_PATH")
	if configPath == "" {
		// 기본 경로는 configs/{env}/{service}.yaml
		configPath = filepath.Join(configDir, env)
	}

	v.SetConfigName(serviceName)
	v.AddConfigPath(configPath)
	// configs/example 디렉토리는 마지막 후보
	v.AddConfigPath(filepath.Join(configDir, "example"))

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("설정 파일 로드 실패: %w", err)
		}
	}

	return &viperConfig{v: v}, nil
}
