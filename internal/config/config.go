package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/wekeepgrowing/semo-study/pkg/config"
	"github.com/wekeepgrowing/semo-study/pkg/logger"
	"go.uber.org/zap"
)

// ServiceName 설정 파일 이름과 환경 변수 접두사(STUDY_)로 쓰입니다
const ServiceName = "study"

// Config 학습 서비스 설정 구조체
type Config struct {
	Service struct {
		Name    string
		Version string
	}

	Server struct {
		HTTP struct {
			Port           string
			Timeout        int
			Debug          bool
			AllowedOrigins []string
		}
		GRPC struct {
			Port string
		}
	}

	Database struct {
		Driver          string
		DSN             string
		Host            string
		Port            int
		Name            string
		User            string
		Password        string
		SSLMode         string
		MaxOpenConns    int
		MaxIdleConns    int
		ConnMaxLifetime int
	}

	Session struct {
		Store  string
		Secret string
		MaxAge int
		Secure bool
	}

	Redis struct {
		Host     string
		Port     int
		Password string
		DB       int
	}

	Messaging struct {
		Enabled bool
		Channel string
	}

	Gemini struct {
		APIKey      string
		Model       string
		Timeout     int
		Temperature float64
	}

	OAuth struct {
		Google struct {
			ClientID string
		}
	}

	Log struct {
		Level    string
		Format   string
		Output   string
		FilePath string
	}

	Auth struct {
		HashCost int
	}

	// 로거 인스턴스
	Logger *zap.Logger
}

var defaults = map[string]interface{}{
	"service.name":               ServiceName,
	"service.version":            "0.1.0",
	"server.http.port":           "8080",
	"server.http.timeout":        30,
	"server.http.debug":          false,
	"database.driver":            "sqlite",
	"database.name":              "users.db",
	"database.port":              5432,
	"database.sslmode":           "disable",
	"database.max_open_conns":    10,
	"database.max_idle_conns":    5,
	"database.conn_max_lifetime": 300,
	"session.store":              "cookie",
	"session.max_age":            86400 * 7,
	"redis.host":                 "localhost",
	"redis.port":                 6379,
	"messaging.enabled":          false,
	"messaging.channel":          "study:activity",
	"gemini.model":               "gemini-1.5-flash",
	"gemini.timeout":             60,
	"log.level":                  "info",
	"log.format":                 "json",
	"log.output":                 "stdout",
	"auth.hash_cost":             0,
}

// Load 설정 파일과 환경 변수를 읽어 Config 를 만듭니다.
// 세션 서명 키나 Gemini API 키가 없으면 에러를 반환하며, 이 경우 서버는 시작하지 않아야 합니다.
func Load() (*Config, error) {
	cfg, err := config.Load(ServiceName,
		config.WithDotenv(),
		config.WithDefaults(defaults),
		config.WithEnvAlias("session.secret", "SECRET_KEY"),
		config.WithEnvAlias("gemini.api_key", "GOOGLE_GEMINI_API_KEY"),
		config.WithEnvAlias("database.dsn", "DATABASE_URL"),
	)
	if err != nil {
		return nil, err
	}

	appConfig := FromSource(cfg)
	if err := appConfig.Validate(); err != nil {
		return nil, err
	}

	appConfig.Logger, err = logger.NewZapLogger(logger.Config{
		Level:       appConfig.Log.Level,
		Format:      appConfig.Log.Format,
		Output:      appConfig.Log.Output,
		FilePath:    appConfig.Log.FilePath,
		Development: appConfig.Server.HTTP.Debug,
		Fields: map[string]string{
			"service": appConfig.Service.Name,
			"version": appConfig.Service.Version,
		},
	})
	if err != nil {
		return nil, fmt.Errorf("로거 생성 실패: %w", err)
	}

	return appConfig, nil
}

// FromSource 설정 소스의 키를 하나씩 구조체로 옮깁니다
func FromSource(cfg config.Config) *Config {
	appConfig := &Config{}

	appConfig.Service.Name = cfg.GetString("service.name")
	appConfig.Service.Version = cfg.GetString("service.version")

	appConfig.Server.HTTP.Port = cfg.GetString("server.http.port")
	appConfig.Server.HTTP.Timeout = cfg.GetInt("server.http.timeout")
	appConfig.Server.HTTP.Debug = cfg.GetBool("server.http.debug")
	appConfig.Server.HTTP.AllowedOrigins = cfg.GetStringSlice("server.allowed_origins")
	appConfig.Server.GRPC.Port = cfg.GetString("server.grpc.port")

	appConfig.Database.Driver = strings.ToLower(cfg.GetString("database.driver"))
	appConfig.Database.DSN = cfg.GetString("database.dsn")
	appConfig.Database.Host = cfg.GetString("database.host")
	appConfig.Database.Port = cfg.GetInt("database.port")
	appConfig.Database.Name = cfg.GetString("database.name")
	appConfig.Database.User = cfg.GetString("database.user")
	appConfig.Database.Password = cfg.GetString("database.password")
	appConfig.Database.SSLMode = cfg.GetString("database.sslmode")
	appConfig.Database.MaxOpenConns = cfg.GetInt("database.max_open_conns")
	appConfig.Database.MaxIdleConns = cfg.GetInt("database.max_idle_conns")
	appConfig.Database.ConnMaxLifetime = cfg.GetInt("database.conn_max_lifetime")

	appConfig.Session.Store = strings.ToLower(cfg.GetString("session.store"))
	appConfig.Session.Secret = cfg.GetString("session.secret")
	appConfig.Session.MaxAge = cfg.GetInt("session.max_age")
	appConfig.Session.Secure = cfg.GetBool("session.secure")

	appConfig.Redis.Host = cfg.GetString("redis.host")
	appConfig.Redis.Port = cfg.GetInt("redis.port")
	appConfig.Redis.Password = cfg.GetString("redis.password")
	appConfig.Redis.DB = cfg.GetInt("redis.db")

	appConfig.Messaging.Enabled = cfg.GetBool("messaging.enabled")
	appConfig.Messaging.Channel = cfg.GetString("messaging.channel")

	appConfig.Gemini.APIKey = cfg.GetString("gemini.api_key")
	appConfig.Gemini.Model = cfg.GetString("gemini.model")
	appConfig.Gemini.Timeout = cfg.GetInt("gemini.timeout")
	appConfig.Gemini.Temperature = cfg.GetFloat64("gemini.temperature")

	appConfig.OAuth.Google.ClientID = cfg.GetString("oauth.google.client_id")

	appConfig.Log.Level = cfg.GetString("log.level")
	appConfig.Log.Format = cfg.GetString("log.format")
	appConfig.Log.Output = cfg.GetString("log.output")
	appConfig.Log.FilePath = cfg.GetString("log.file_path")

	appConfig.Auth.HashCost = cfg.GetInt("auth.hash_cost")

	return appConfig
}

// Validate 시작에 꼭 필요한 값 확인
func (c *Config) Validate() error {
	var errs []error
	if strings.TrimSpace(c.Session.Secret) == "" {
		errs = append(errs, errors.New("세션 서명 키가 없습니다 (SECRET_KEY 또는 STUDY_SESSION_SECRET)"))
	}
	if strings.TrimSpace(c.Gemini.APIKey) == "" {
		errs = append(errs, errors.New("Gemini API 키가 없습니다 (GOOGLE_GEMINI_API_KEY 또는 STUDY_GEMINI_API_KEY)"))
	}
	switch c.Database.Driver {
	case "postgres", "sqlite":
	default:
		errs = append(errs, fmt.Errorf("지원하지 않는 데이터베이스 드라이버: %q", c.Database.Driver))
	}
	switch c.Session.Store {
	case "cookie", "redis":
	default:
		errs = append(errs, fmt.Errorf("지원하지 않는 세션 저장소: %q", c.Session.Store))
	}
	if len(errs) > 0 {
		return fmt.Errorf("설정 검증 실패: %w", errors.Join(errs...))
	}
	return nil
}

// RedisAddr host:port 형태의 Redis 주소
func (c *Config) RedisAddr() string {
	return fmt.Sprintf("%s:%d", c.Redis.Host, c.Redis.Port)
}

// GeminiTimeout 모델 호출 시간 제한
func (c *Config) GeminiTimeout() time.Duration {
	return time.Duration(c.Gemini.Timeout) * time.Second
}

// writeTimeoutMargin 모델 호출 제한 시간 뒤 실패 응답을 쓸 여유
const writeTimeoutMargin = 5 * time.Second

// HTTPTimeout HTTP 읽기/유휴 시간 제한
func (c *Config) HTTPTimeout() time.Duration {
	return time.Duration(c.Server.HTTP.Timeout) * time.Second
}

// HTTPWriteTimeout HTTP 쓰기 시간 제한. 모델 호출이 제한 시간까지 걸려도 응답을 쓸 수 있도록
// gemini.timeout 에 여유를 더한 값보다 짧아지지 않습니다.
func (c *Config) HTTPWriteTimeout() time.Duration {
	write := c.HTTPTimeout()
	if minimum := c.GeminiTimeout() + writeTimeoutMargin; c.GeminiTimeout() > 0 && write < minimum {
		write = minimum
	}
	return write
}
