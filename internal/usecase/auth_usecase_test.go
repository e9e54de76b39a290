package usecase_test

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"

	"github.com/wekeepgrowing/semo-study/internal/domain/entity"
	"github.com/wekeepgrowing/semo-study/internal/domain/repository"
	"github.com/wekeepgrowing/semo-study/internal/usecase"
	"github.com/wekeepgrowing/semo-study/internal/usecase/dto"
	apperrors "github.com/wekeepgrowing/semo-study/pkg/errors"
)

func validRegister() dto.RegisterParams {
	return dto.RegisterParams{
		FirstName:       " Ada ",
		LastName:        "Lovelace",
		Username:        "ada",
		Email:           " Ada@Example.com ",
		Password:        "engine",
		ConfirmPassword: "engine",
	}
}

func assertAppError(t *testing.T, err error, code, message string) {
	t.Helper()
	require.Error(t, err)
	assert.Equal(t, code, apperrors.CodeOf(err))
	assert.Equal(t, message, apperrors.MessageOf(err))
}

func TestAuthUseCase_Register(t *testing.T) {
	logger := zap.NewNop()
	ctx := context.Background()

	t.Run("creates user with hashed password", func(t *testing.T) {
		users := new(MockUserRepository)
		uc := usecase.NewAuthUseCase(logger, users, nil, bcrypt.MinCost)

		users.On("ExistsByUsernameOrEmail", ctx, "ada", "ada@example.com").Return(false, nil)
		users.On("CreateWithProgress", ctx, mock.AnythingOfType("*entity.User")).
			Run(func(args mock.Arguments) {
				args.Get(1).(*entity.User).ID = 7
			}).
			Return(entity.NewProgress(7), nil)

		user, err := uc.Register(ctx, validRegister())

		require.NoError(t, err)
		assert.Equal(t, uint(7), user.ID)
		assert.Equal(t, "Ada", user.FirstName)
		assert.Equal(t, "ada@example.com", user.Email)
		assert.NotEqual(t, "engine", user.PasswordHash)
		assert.True(t, usecase.VerifyPassword(user.PasswordHash, "engine"))
		users.AssertExpectations(t)
	})

	t.Run("blank field", func(t *testing.T) {
		users := new(MockUserRepository)
		uc := usecase.NewAuthUseCase(logger, users, nil, bcrypt.MinCost)

		params := validRegister()
		params.LastName = "   "
		_, err := uc.Register(ctx, params)

		assertAppError(t, err, apperrors.ErrInvalidArgument, usecase.MsgFillAllFields)
		users.AssertNotCalled(t, "CreateWithProgress", mock.Anything, mock.Anything)
	})

	t.Run("blank confirmation reports missing field first", func(t *testing.T) {
		users := new(MockUserRepository)
		uc := usecase.NewAuthUseCase(logger, users, nil, bcrypt.MinCost)

		params := validRegister()
		params.ConfirmPassword = ""
		_, err := uc.Register(ctx, params)

		assertAppError(t, err, apperrors.ErrInvalidArgument, usecase.MsgFillAllFields)
	})

	t.Run("password mismatch", func(t *testing.T) {
		users := new(MockUserRepository)
		uc := usecase.NewAuthUseCase(logger, users, nil, bcrypt.MinCost)

		params := validRegister()
		params.ConfirmPassword = "engines"
		_, err := uc.Register(ctx, params)

		assertAppError(t, err, apperrors.ErrInvalidArgument, usecase.MsgPasswordMismatch)
		users.AssertNotCalled(t, "ExistsByUsernameOrEmail", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("duplicate username or email", func(t *testing.T) {
		users := new(MockUserRepository)
		uc := usecase.NewAuthUseCase(logger, users, nil, bcrypt.MinCost)
		users.On("ExistsByUsernameOrEmail", ctx, "ada", "ada@example.com").Return(true, nil)

		_, err := uc.Register(ctx, validRegister())

		assertAppError(t, err, apperrors.ErrConflict, usecase.MsgAlreadyExists)
		users.AssertNotCalled(t, "CreateWithProgress", mock.Anything, mock.Anything)
	})

	t.Run("password longer than bcrypt input limit", func(t *testing.T) {
		users := new(MockUserRepository)
		uc := usecase.NewAuthUseCase(logger, users, nil, bcrypt.MinCost)
		users.On("ExistsByUsernameOrEmail", ctx, "ada", "ada@example.com").Return(false, nil)
		users.On("CreateWithProgress", ctx, mock.AnythingOfType("*entity.User")).
			Return(entity.NewProgress(7), nil)

		long := strings.Repeat("x", 73)
		params := validRegister()
		params.Password = long
		params.ConfirmPassword = long

		user, err := uc.Register(ctx, params)

		require.NoError(t, err)
		assert.True(t, usecase.VerifyPassword(user.PasswordHash, long))
		assert.False(t, usecase.VerifyPassword(user.PasswordHash, strings.Repeat("x", 72)))
		assert.False(t, usecase.VerifyPassword(user.PasswordHash, long+"x"))
		users.AssertExpectations(t)
	})

	t.Run("conflict from concurrent insert passes through", func(t *testing.T) {
		users := new(MockUserRepository)
		uc := usecase.NewAuthUseCase(logger, users, nil, bcrypt.MinCost)
		users.On("ExistsByUsernameOrEmail", ctx, "ada", "ada@example.com").Return(false, nil)
		users.On("CreateWithProgress", ctx, mock.Anything).
			Return(nil, apperrors.NewAppError(apperrors.ErrConflict, usecase.MsgAlreadyExists, nil))

		_, err := uc.Register(ctx, validRegister())

		assertAppError(t, err, apperrors.ErrConflict, usecase.MsgAlreadyExists)
	})
}

func TestAuthUseCase_Login(t *testing.T) {
	logger := zap.NewNop()
	ctx := context.Background()

	hash, err := usecase.HashPassword("engine", bcrypt.MinCost)
	require.NoError(t, err)
	stored := &entity.User{ID: 3, Username: "ada", Email: "ada@example.com", PasswordHash: hash}

	t.Run("email is matched case-insensitively", func(t *testing.T) {
		users := new(MockUserRepository)
		uc := usecase.NewAuthUseCase(logger, users, nil, bcrypt.MinCost)
		users.On("FindByLogin", ctx, "ada@example.com", "ADA@example.com").Return(stored, nil)

		user, err := uc.Login(ctx, dto.LoginParams{Identifier: " ADA@example.com ", Password: "engine"})

		require.NoError(t, err)
		assert.Equal(t, uint(3), user.ID)
	})

	t.Run("wrong password", func(t *testing.T) {
		users := new(MockUserRepository)
		uc := usecase.NewAuthUseCase(logger, users, nil, bcrypt.MinCost)
		users.On("FindByLogin", ctx, "ada", "ada").Return(stored, nil)

		_, err := uc.Login(ctx, dto.LoginParams{Identifier: "ada", Password: "wrong"})

		assertAppError(t, err, apperrors.ErrUnauthenticated, usecase.MsgInvalidCredentials)
	})

	t.Run("unknown user has the same message", func(t *testing.T) {
		users := new(MockUserRepository)
		uc := usecase.NewAuthUseCase(logger, users, nil, bcrypt.MinCost)
		users.On("FindByLogin", ctx, "grace", "grace").Return(nil, nil)

		_, err := uc.Login(ctx, dto.LoginParams{Identifier: "grace", Password: "engine"})

		assertAppError(t, err, apperrors.ErrUnauthenticated, usecase.MsgInvalidCredentials)
	})

	t.Run("google-only account cannot use password", func(t *testing.T) {
		users := new(MockUserRepository)
		uc := usecase.NewAuthUseCase(logger, users, nil, bcrypt.MinCost)
		googleOnly := &entity.User{ID: 4, Email: "g@example.com", GoogleID: "g-1"}
		users.On("FindByLogin", ctx, "g@example.com", "g@example.com").Return(googleOnly, nil)

		_, err := uc.Login(ctx, dto.LoginParams{Identifier: "g@example.com", Password: ""})

		assertAppError(t, err, apperrors.ErrInvalidArgument, usecase.MsgFillAllFields)

		_, err = uc.Login(ctx, dto.LoginParams{Identifier: "g@example.com", Password: "x"})

		assertAppError(t, err, apperrors.ErrUnauthenticated, usecase.MsgInvalidCredentials)
	})

	t.Run("repository failure is internal", func(t *testing.T) {
		users := new(MockUserRepository)
		uc := usecase.NewAuthUseCase(logger, users, nil, bcrypt.MinCost)
		users.On("FindByLogin", ctx, "ada", "ada").Return(nil, errors.New("db down"))

		_, err := uc.Login(ctx, dto.LoginParams{Identifier: "ada", Password: "engine"})

		require.Error(t, err)
		assert.Equal(t, apperrors.ErrInternal, apperrors.CodeOf(err))
	})
}

func TestAuthUseCase_GoogleSignIn(t *testing.T) {
	logger := zap.NewNop()
	ctx := context.Background()
	params := dto.GoogleSignInParams{IDToken: "raw-token"}

	identity := &repository.ExternalIdentity{
		Subject:       "g-42",
		Email:         "Ada@Example.com",
		EmailVerified: true,
		Name:          "Ada King Lovelace",
	}

	t.Run("disabled without verifier", func(t *testing.T) {
		uc := usecase.NewAuthUseCase(logger, new(MockUserRepository), nil, bcrypt.MinCost)

		assert.False(t, uc.GoogleSignInEnabled())
		_, err := uc.GoogleSignIn(ctx, params)

		assertAppError(t, err, apperrors.ErrNotImplemented, usecase.MsgGoogleDisabled)
	})

	t.Run("invalid token", func(t *testing.T) {
		verifier := new(MockIdentityVerifier)
		uc := usecase.NewAuthUseCase(logger, new(MockUserRepository), verifier, bcrypt.MinCost)
		verifier.On("Verify", ctx, "raw-token").Return(nil, errors.New("expired"))

		_, err := uc.GoogleSignIn(ctx, params)

		assertAppError(t, err, apperrors.ErrUnauthenticated, usecase.MsgGoogleInvalid)
	})

	t.Run("already linked account", func(t *testing.T) {
		users := new(MockUserRepository)
		verifier := new(MockIdentityVerifier)
		uc := usecase.NewAuthUseCase(logger, users, verifier, bcrypt.MinCost)
		linked := &entity.User{ID: 9, GoogleID: "g-42", Email: "ada@example.com"}
		verifier.On("Verify", ctx, "raw-token").Return(identity, nil)
		users.On("FindByGoogleID", ctx, "g-42").Return(linked, nil)

		user, err := uc.GoogleSignIn(ctx, params)

		require.NoError(t, err)
		assert.Same(t, linked, user)
		users.AssertNotCalled(t, "FindByEmail", mock.Anything, mock.Anything)
	})

	t.Run("links existing password account by verified email", func(t *testing.T) {
		users := new(MockUserRepository)
		verifier := new(MockIdentityVerifier)
		uc := usecase.NewAuthUseCase(logger, users, verifier, bcrypt.MinCost)
		existing := &entity.User{ID: 5, Username: "ada", Email: "ada@example.com", PasswordHash: "hash"}
		verifier.On("Verify", ctx, "raw-token").Return(identity, nil)
		users.On("FindByGoogleID", ctx, "g-42").Return(nil, nil)
		users.On("FindByEmail", ctx, "ada@example.com").Return(existing, nil)
		users.On("Update", ctx, existing).Return(nil)

		user, err := uc.GoogleSignIn(ctx, params)

		require.NoError(t, err)
		assert.Equal(t, "g-42", user.GoogleID)
		assert.Equal(t, "hash", user.PasswordHash)
		users.AssertExpectations(t)
	})

	t.Run("unverified email does not take over an account", func(t *testing.T) {
		users := new(MockUserRepository)
		verifier := new(MockIdentityVerifier)
		uc := usecase.NewAuthUseCase(logger, users, verifier, bcrypt.MinCost)
		unverified := *identity
		unverified.EmailVerified = false
		verifier.On("Verify", ctx, "raw-token").Return(&unverified, nil)
		users.On("FindByGoogleID", ctx, "g-42").Return(nil, nil)
		users.On("FindByEmail", ctx, "ada@example.com").Return(&entity.User{ID: 5, Email: "ada@example.com"}, nil)

		_, err := uc.GoogleSignIn(ctx, params)

		assertAppError(t, err, apperrors.ErrConflict, usecase.MsgAlreadyExists)
		users.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
	})

	t.Run("creates new account", func(t *testing.T) {
		users := new(MockUserRepository)
		verifier := new(MockIdentityVerifier)
		uc := usecase.NewAuthUseCase(logger, users, verifier, bcrypt.MinCost)
		verifier.On("Verify", ctx, "raw-token").Return(identity, nil)
		users.On("FindByGoogleID", ctx, "g-42").Return(nil, nil)
		users.On("FindByEmail", ctx, "ada@example.com").Return(nil, nil)
		users.On("CreateWithProgress", ctx, mock.AnythingOfType("*entity.User")).Return(entity.NewProgress(0), nil)

		user, err := uc.GoogleSignIn(ctx, params)

		require.NoError(t, err)
		assert.Equal(t, "g-42", user.GoogleID)
		assert.Equal(t, "Ada", user.FirstName)
		assert.Equal(t, "King Lovelace", user.LastName)
		assert.Empty(t, user.Username)
		assert.False(t, user.HasPassword())
	})

	t.Run("blank token", func(t *testing.T) {
		verifier := new(MockIdentityVerifier)
		uc := usecase.NewAuthUseCase(logger, new(MockUserRepository), verifier, bcrypt.MinCost)

		_, err := uc.GoogleSignIn(ctx, dto.GoogleSignInParams{})

		assertAppError(t, err, apperrors.ErrInvalidArgument, usecase.MsgFillAllFields)
		verifier.AssertNotCalled(t, "Verify", mock.Anything, mock.Anything)
	})
}

func TestAuthUseCase_DeleteAccount(t *testing.T) {
	logger := zap.NewNop()
	ctx := context.Background()

	users := new(MockUserRepository)
	uc := usecase.NewAuthUseCase(logger, users, nil, bcrypt.MinCost)
	users.On("Delete", ctx, uint(1)).Return(nil)
	users.On("Delete", ctx, uint(2)).Return(apperrors.NewAppError(apperrors.ErrNotFound, "사용자 없음", nil))

	require.NoError(t, uc.DeleteAccount(ctx, 1))
	assertAppError(t, uc.DeleteAccount(ctx, 2), apperrors.ErrNotFound, usecase.MsgUserNotFound)
}

func TestVerifyPassword_PlainBcryptHashes(t *testing.T) {
	password := strings.Repeat("y", 72)
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	require.NoError(t, err)

	assert.True(t, usecase.VerifyPassword(string(hash), password))
	assert.False(t, usecase.VerifyPassword(string(hash), "other"))
	assert.False(t, usecase.VerifyPassword("", password))
}
