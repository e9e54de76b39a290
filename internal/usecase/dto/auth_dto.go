package dto

// RegisterParams 회원가입 폼 입력
type RegisterParams struct {
	FirstName       string `form:"first_name" json:"first_name" validate:"required"`
	LastName        string `form:"last_name" json:"last_name" validate:"required"`
	Username        string `form:"username" json:"username" validate:"required"`
	Email           string `form:"email" json:"email" validate:"required"`
	Password        string `form:"password" json:"password" validate:"required"`
	ConfirmPassword string `form:"confirm_password" json:"confirm_password" validate:"required,eqfield=Password"`
}

// LoginParams 로그인 폼 입력. Identifier 는 이메일 또는 사용자명
type LoginParams struct {
	Identifier string `form:"email_or_username" json:"email_or_username" validate:"required"`
	Password   string `form:"password" json:"password" validate:"required"`
}

// GoogleSignInParams Google ID 토큰 로그인 입력
type GoogleSignInParams struct {
	IDToken string `json:"id_token" form:"id_token" validate:"required"`
}
