package usecase

import (
	"crypto/sha256"
	"encoding/base64"
	"strings"

	"golang.org/x/crypto/bcrypt"
)

// bcryptMaxInput bcrypt 가 받는 최대 입력 길이(바이트)
const bcryptMaxInput = 72

// passwordInput bcrypt 입력값. 72바이트를 넘는 비밀번호는 SHA-256 후 base64 로 줄입니다.
// 72바이트 이하는 그대로 쓰므로 기존 해시와 호환됩니다.
func passwordInput(password string) []byte {
	if len(password) <= bcryptMaxInput {
		return []byte(password)
	}
	sum := sha256.Sum256([]byte(password))
	return []byte(base64.StdEncoding.EncodeToString(sum[:]))
}

// HashPassword bcrypt 해시 생성. cost 가 0 이면 bcrypt.DefaultCost 를 씁니다.
// bcrypt 해시는 솔트를 포함합니다.
func HashPassword(password string, cost int) (string, error) {
	if cost == 0 {
		cost = bcrypt.DefaultCost
	}
	hash, err := bcrypt.GenerateFromPassword(passwordInput(password), cost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}

// VerifyPassword 저장된 해시와 입력 비밀번호 비교. 해시가 비어 있으면 항상 false
func VerifyPassword(hashedPassword, inputPassword string) bool {
	if hashedPassword == "" {
		return false
	}
	return bcrypt.CompareHashAndPassword([]byte(hashedPassword), passwordInput(inputPassword)) == nil
}

// trimAll 앞뒤 공백 제거. 비밀번호는 대상이 아닙니다.
func trimAll(values ...*string) {
	for _, v := range values {
		*v = strings.TrimSpace(*v)
	}
}
