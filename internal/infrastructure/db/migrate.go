package db

import (
	"fmt"

	"github.com/wekeepgrowing/semo-study/internal/infrastructure/db/model"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// Migrate 테이블이 없으면 생성합니다. 기존 데이터는 건드리지 않습니다.
func Migrate(db *gorm.DB, logger *zap.Logger) error {
	logger.Info("데이터베이스 스키마 확인 중...")

	if err := db.AutoMigrate(model.All()...); err != nil {
		return fmt.Errorf("스키마 생성 실패: %w", err)
	}

	logger.Info("데이터베이스 스키마 준비 완료")
	return nil
}
