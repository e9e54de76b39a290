// Package oidc Google ID 토큰 검증
package oidc

import (
	"context"
	"errors"
	"fmt"

	"github.com/coreos/go-oidc/v3/oidc"
	"github.com/wekeepgrowing/semo-study/internal/domain/repository"
)

// GoogleIssuer Google OpenID 발급자
const GoogleIssuer = "https://accounts.google.com"

type googleClaims struct {
	Sub      string `json:"sub,omitempty"`
	Email    string `json:"email,omitempty"`
	Verified bool   `json:"email_verified,omitempty"`
	Name     string `json:"name,omitempty"`
}

// GoogleVerifier Google 이 발급한 ID 토큰을 검증합니다
type GoogleVerifier struct {
	verifier *oidc.IDTokenVerifier
}

// NewGoogleVerifier 발급자 메타데이터를 받아 검증기를 만듭니다 (네트워크 호출)
func NewGoogleVerifier(ctx context.Context, clientID string) (*GoogleVerifier, error) {
	if clientID == "" {
		return nil, errors.New("Google 클라이언트 ID가 비어 있습니다")
	}

	p, err := oidc.NewProvider(ctx, GoogleIssuer)
	if err != nil {
		return nil, fmt.Errorf("new oidc provider: %w", err)
	}

	return NewVerifier(p.Verifier(&oidc.Config{ClientID: clientID})), nil
}

// NewVerifier 준비된 oidc 검증기로 생성
func NewVerifier(verifier *oidc.IDTokenVerifier) *GoogleVerifier {
	return &GoogleVerifier{verifier: verifier}
}

// Verify 서명, 발급자, 대상, 만료를 확인하고 클레임을 꺼냅니다
func (g *GoogleVerifier) Verify(ctx context.Context, rawIDToken string) (*repository.ExternalIdentity, error) {
	idTok, err := g.verifier.Verify(ctx, rawIDToken)
	if err != nil {
		return nil, fmt.Errorf("verify id token: %w", err)
	}

	var claims googleClaims
	if err := idTok.Claims(&claims); err != nil {
		return nil, fmt.Errorf("read claims: %w", err)
	}

	return &repository.ExternalIdentity{
		Subject:       idTok.Subject,
		Email:         claims.Email,
		EmailVerified: claims.Verified,
		Name:          claims.Name,
	}, nil
}
