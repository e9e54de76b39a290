package db

import (
	"fmt"
	"time"

	"github.com/wekeepgrowing/semo-study/pkg/logger"
	"go.uber.org/zap"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

// 지원하는 드라이버
const (
	DriverPostgres = "postgres"
	DriverSQLite   = "sqlite"
)

// Config 데이터베이스 설정
type Config struct {
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
	ConnMaxLifetime time.Duration
	LogLevel        string
}

func (c Config) dialector() (gorm.Dialector, error) {
	switch c.Driver {
	case DriverPostgres:
		dsn := c.DSN
		if dsn == "" {
			dsn = fmt.Sprintf(
				"host=%s port=%d user=%s password=%s dbname=%s sslmode=%s TimeZone=UTC",
				c.Host, c.Port, c.User, c.Password, c.Name, c.SSLMode,
			)
		}
		return postgres.Open(dsn), nil
	case DriverSQLite:
		dsn := c.DSN
		if dsn == "" {
			dsn = c.Name
		}
		return sqlite.Open(dsn), nil
	default:
		return nil, fmt.Errorf("지원하지 않는 데이터베이스 드라이버: %q", c.Driver)
	}
}

// NewDatabase 설정된 드라이버로 데이터베이스 연결을 생성합니다.
func NewDatabase(config Config, zapLogger *zap.Logger) (*gorm.DB, error) {
	dialector, err := config.dialector()
	if err != nil {
		return nil, err
	}

	gormLogger := logger.NewGormLogger(
		zapLogger,
		logger.GormLevel(config.LogLevel),
		time.Second, // Slow SQL 임계값
		true,        // ErrRecordNotFound 무시
	)

	db, err := gorm.Open(dialector, &gorm.Config{
		Logger:         gormLogger,
		TranslateError: true,
		NowFunc: func() time.Time {
			return time.Now().UTC()
		},
	})
	if err != nil {
		return nil, fmt.Errorf("데이터베이스 연결 실패: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("SQL DB 인스턴스 획득 실패: %w", err)
	}

	if config.MaxOpenConns > 0 {
		sqlDB.SetMaxOpenConns(config.MaxOpenConns)
	}
	if config.MaxIdleConns > 0 {
		sqlDB.SetMaxIdleConns(config.MaxIdleConns)
	}
	if config.ConnMaxLifetime > 0 {
		sqlDB.SetConnMaxLifetime(config.ConnMaxLifetime)
	}

	if err := sqlDB.Ping(); err != nil {
		return nil, fmt.Errorf("데이터베이스 핑 실패: %w", err)
	}

	zapLogger.Info("데이터베이스 연결 성공",
		zap.String("driver", config.Driver),
		zap.String("host", config.Host),
		zap.String("database", config.Name),
		zap.Int("max_open_conns", config.MaxOpenConns),
		zap.Int("max_idle_conns", config.MaxIdleConns),
		zap.Duration("conn_max_lifetime", config.ConnMaxLifetime),
	)

	return db, nil
}

// NewInMemory 테스트용 SQLite 메모리 데이터베이스. 스키마까지 생성합니다.
// 메모리 DB 는 연결마다 따로 생기므로 연결을 하나로 고정합니다.
func NewInMemory(zapLogger *zap.Logger) (*gorm.DB, error) {
	db, err := NewDatabase(Config{
		Driver:       DriverSQLite,
		DSN:          ":memory:",
		MaxOpenConns: 1,
		MaxIdleConns: 1,
		LogLevel:     "error",
	}, zapLogger)
	if err != nil {
		return nil, err
	}
	if err := Migrate(db, zapLogger); err != nil {
		return nil, err
	}
	return db, nil
}
