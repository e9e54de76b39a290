package repository

import "context"

// ExternalIdentity 외부 ID 공급자가 확인해 준 사용자 정보
type ExternalIdentity struct {
	Subject       string
	Email         string
	EmailVerified bool
	Name          string
}

// IdentityVerifier 외부 ID 토큰 검증기 (Google)
type IdentityVerifier interface {
	Verify(ctx context.Context, rawIDToken string) (*ExternalIdentity, error)
}
