// Package session gorilla 세션을 감싼 요청 단위 세션 컨텍스트
package session

import (
	"fmt"

	"github.com/gorilla/sessions"
	echosession "github.com/labstack/echo-contrib/session"
	"github.com/labstack/echo/v4"
)

// 세션 이름과 값 키
const (
	Name        = "session"
	KeyUserID   = "user_id"
	KeyUsername = "username"
)

// Context 요청 하나에 묶인 세션. 변경 사항은 Save 를 호출해야 응답에 반영됩니다.
type Context interface {
	Get(key string) interface{}
	Set(key string, value interface{})
	Delete(key string)
	Clear()
	AddFlash(message string)
	Flashes() []string
	Save() error
}

type gorillaContext struct {
	sess *sessions.Session
	c    echo.Context
}

// FromEcho 요청의 세션을 가져옵니다. 쿠키가 손상됐으면 새 세션과 함께 에러를 돌려줍니다.
func FromEcho(c echo.Context) (Context, error) {
	sess, err := echosession.Get(Name, c)
	if sess == nil {
		return nil, fmt.Errorf("세션 조회 실패: %w", err)
	}
	return &gorillaContext{sess: sess, c: c}, err
}

func (g *gorillaContext) Get(key string) interface{} {
	return g.sess.Values[key]
}

func (g *gorillaContext) Set(key string, value interface{}) {
	g.sess.Values[key] = value
}

func (g *gorillaContext) Delete(key string) {
	delete(g.sess.Values, key)
}

// Clear 로그인 정보를 지웁니다. 대기 중인 플래시는 남겨 둡니다.
func (g *gorillaContext) Clear() {
	for k := range g.sess.Values {
		if k == flashesKey {
			continue
		}
		delete(g.sess.Values, k)
	}
}

const flashesKey = "_flash"

func (g *gorillaContext) AddFlash(message string) {
	g.sess.AddFlash(message)
}

// Flashes 쌓인 플래시를 꺼내고 비웁니다
func (g *gorillaContext) Flashes() []string {
	raw := g.sess.Flashes()
	out := make([]string, 0, len(raw))
	for _, f := range raw {
		if s, ok := f.(string); ok {
			out = append(out, s)
		}
	}
	return out
}

func (g *gorillaContext) Save() error {
	return g.sess.Save(g.c.Request(), g.c.Response())
}

// UserID 로그인한 사용자 ID
func UserID(s Context) (uint, bool) {
	switch v := s.Get(KeyUserID).(type) {
	case uint:
		return v, v != 0
	case int:
		return uint(v), v > 0
	case int64:
		return uint(v), v > 0
	case uint64:
		return uint(v), v != 0
	default:
		return 0, false
	}
}

// Username 로그인한 사용자 표시 이름
func Username(s Context) string {
	name, _ := s.Get(KeyUsername).(string)
	return name
}

// Login 로그인 상태로 만듭니다
func Login(s Context, userID uint, username string) {
	s.Set(KeyUserID, userID)
	s.Set(KeyUsername, username)
}

// Logout 로그인 정보만 지웁니다
func Logout(s Context) {
	s.Delete(KeyUserID)
	s.Delete(KeyUsername)
}
