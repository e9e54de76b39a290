package usecase

import apperrors "github.com/wekeepgrowing/semo-study/pkg/errors"

// 사용자에게 그대로 보여 주는 안내 문구
const (
	MsgFillAllFields      = "Please fill out all fields."
	MsgPasswordMismatch   = "Passwords do not match."
	MsgAlreadyExists      = "Username or email already exists."
	MsgInvalidCredentials = "Invalid credentials."
	MsgUserNotFound       = "User not found."
	MsgGoogleDisabled     = "Google sign-in is not configured."
	MsgGoogleInvalid      = "Google sign-in failed."
)

func validationError(msg string) error {
	return apperrors.NewAppError(apperrors.ErrInvalidArgument, msg, nil)
}

func conflictError() error {
	return apperrors.NewAppError(apperrors.ErrConflict, MsgAlreadyExists, nil)
}

func authError(cause error) error {
	return apperrors.NewAppError(apperrors.ErrUnauthenticated, MsgInvalidCredentials, cause)
}

func notFoundError(cause error) error {
	return apperrors.NewAppError(apperrors.ErrNotFound, MsgUserNotFound, cause)
}
