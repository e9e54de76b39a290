package repository

import (
	"errors"
	"strings"

	apperrors "github.com/wekeepgrowing/semo-study/pkg/errors"
	"gorm.io/gorm"
)

// isDuplicateKey 고유 제약 위반인지 확인. TranslateError 를 지원하지 않는 드라이버 메시지도 검사합니다.
func isDuplicateKey(err error) bool {
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}
	msg := strings.ToLower(err.Error())
	return strings.Contains(msg, "unique constraint") || strings.Contains(msg, "duplicate key")
}

func translateWriteError(err error, message string) error {
	if err == nil {
		return nil
	}
	if isDuplicateKey(err) {
		return apperrors.NewAppError(apperrors.ErrConflict, "Username or email already exists.", err)
	}
	return apperrors.NewAppError(apperrors.ErrInternal, message, err)
}
