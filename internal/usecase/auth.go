package usecase

import (
	"context"
	"errors"

	"storefront-api/internal/domain/user"
	"storefront-api/internal/infra"
	"storefront-api/internal/pkg/errs"
	"storefront-api/internal/pkg/jwt"
	"storefront-api/internal/pkg/password"
	"storefront-api/internal/usecase/readmodel"

	"github.com/google/uuid"
)

var (
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrDuplicateEmail     = errors.New("email already registered")
	ErrInvalidRole        = errors.New("invalid role")
)

// UserWriter is the registration-side surface; reads live on UserRepository.
type UserWriter interface {
	Create(ctx context.Context, u *user.User) (*readmodel.UserRM, error)
}

type RegisterParams struct {
	Username string
	Email    string
	Password string
	Role     user.Role
	Photo    string
}

type LoginResult struct {
	Token string
	User  *readmodel.UserRM
}

type AuthUseCase interface {
	Register(ctx context.Context, params RegisterParams) (*readmodel.UserRM, error)
	Login(ctx context.Context, email, plainPassword string) (*LoginResult, error)
	Me(ctx context.Context, userID uuid.UUID) (*readmodel.UserRM, error)
}

type authUseCaseImpl struct {
	userRepo   UserRepository
	userWriter UserWriter
	jwtService *jwt.Service
}

func NewAuthUseCase(userRepo UserRepository, userWriter UserWriter, jwtService *jwt.Service) AuthUseCase {
	return &authUseCaseImpl{
		userRepo:   userRepo,
		userWriter: userWriter,
		jwtService: jwtService,
	}
}

func (u *authUseCaseImpl) Register(ctx context.Context, params RegisterParams) (*readmodel.UserRM, error) {
	if !params.Role.IsValid() {
		return nil, ErrInvalidRole
	}

	hash, err := password.HashPassword(params.Password)
	if err != nil {
		return nil, err
	}

	rm, err := u.userWriter.Create(ctx, &user.User{
		ID:           uuid.New(),
		Username:     params.Username,
		Email:        params.Email,
		PasswordHash: hash,
		Role:         params.Role,
		Photo:        params.Photo,
	})
	if err != nil {
		if infra.IsKind(err, infra.KindDuplicateKey) {
			return nil, ErrDuplicateEmail
		}
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}
	return rm, nil
}

// Login deliberately collapses unknown-email and wrong-password into the same
// error so callers cannot probe which emails exist.
func (u *authUseCaseImpl) Login(ctx context.Context, email, plainPassword string) (*LoginResult, error) {
	rm, err := u.userRepo.FindByEmail(ctx, email)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}

	if err := password.ComparePassword(rm.PasswordHash, plainPassword); err != nil {
		return nil, ErrInvalidCredentials
	}

	token, err := u.jwtService.GenerateToken(rm.ID, user.Role(rm.Role))
	if err != nil {
		return nil, errs.Wrap(err, "failed to generate token")
	}

	return &LoginResult{Token: token, User: rm}, nil
}

func (u *authUseCaseImpl) Me(ctx context.Context, userID uuid.UUID) (*readmodel.UserRM, error) {
	rm, err := u.userRepo.FindByID(ctx, userID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}
	return rm, nil
}
