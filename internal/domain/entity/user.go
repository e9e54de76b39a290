package entity

import (
	"errors"
	"strings"
	"time"
)

// ErrNoCredential 비밀번호도 Google 계정도 없는 사용자는 저장할 수 없습니다
var ErrNoCredential = errors.New("비밀번호 또는 Google 계정 중 하나는 필수입니다")

// User 비즈니스 도메인 엔티티
type User struct {
	ID           uint
	GoogleID     string
	FirstName    string
	LastName     string
	Username     string
	Email        string
	PasswordHash string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// NormalizeEmail 비교와 저장에 쓰는 이메일 형태 (공백 제거, 소문자)
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// NewUser 비밀번호 가입 사용자 생성 팩토리 함수
func NewUser(firstName, lastName, username, email, passwordHash string) (*User, error) {
	user := &User{
		FirstName:    strings.TrimSpace(firstName),
		LastName:     strings.TrimSpace(lastName),
		Username:     strings.TrimSpace(username),
		Email:        NormalizeEmail(email),
		PasswordHash: passwordHash,
	}
	if err := user.Validate(); err != nil {
		return nil, err
	}
	return user, nil
}

// NewGoogleUser Google 로그인으로 처음 들어온 사용자 생성. 비밀번호와 사용자명은 없습니다.
func NewGoogleUser(googleID, email, fullName string) (*User, error) {
	first, last := SplitName(fullName)
	user := &User{
		GoogleID:  strings.TrimSpace(googleID),
		FirstName: first,
		LastName:  last,
		Email:     NormalizeEmail(email),
	}
	if err := user.Validate(); err != nil {
		return nil, err
	}
	return user, nil
}

// Validate 저장 전 불변식 검사
func (u *User) Validate() error {
	if u.Email == "" {
		return errors.New("이메일은 필수입니다")
	}
	if !u.CanAuthenticate() {
		return ErrNoCredential
	}
	return nil
}

// HasPassword 비밀번호 로그인이 가능한지 확인
func (u *User) HasPassword() bool {
	return u.PasswordHash != ""
}

// CanAuthenticate 로그인 수단이 하나라도 있는지 확인
func (u *User) CanAuthenticate() bool {
	return u.HasPassword() || u.GoogleID != ""
}

// LinkGoogle 기존 계정에 Google 계정 연결
func (u *User) LinkGoogle(googleID string) {
	u.GoogleID = strings.TrimSpace(googleID)
}

// DisplayName 화면 표시용 이름
func (u *User) DisplayName() string {
	if u.Username != "" {
		return u.Username
	}
	name := strings.TrimSpace(u.FirstName + " " + u.LastName)
	if name != "" {
		return name
	}
	return u.Email
}

// SplitName 전체 이름을 첫 단어와 나머지로 나눕니다
func SplitName(fullName string) (string, string) {
	fields := strings.Fields(fullName)
	switch len(fields) {
	case 0:
		return "", ""
	case 1:
		return fields[0], ""
	default:
		return fields[0], strings.Join(fields[1:], " ")
	}
}
