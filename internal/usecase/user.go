package usecase

import (
	"context"
	"errors"

	"safestore/internal/domain/user"
	"safestore/internal/infra"
	"safestore/internal/pkg/errs"
	"safestore/internal/usecase/readmodel"

	"github.com/google/uuid"
)

var ErrCannotDeleteSelf = errors.New("cannot delete own account")

type UpdateProfileParams struct {
	FullName string
	Phone    string
	Address  string
}

// UserUseCase backs the users and profile screens of the console.
type UserUseCase interface {
	ListUsers(ctx context.Context) ([]*readmodel.AuthorizedUserRM, error)
	DeleteUser(ctx context.Context, actorID, targetID uuid.UUID) error
	UpdateProfile(ctx context.Context, userID uuid.UUID, params UpdateProfileParams) (*readmodel.AuthorizedUserRM, error)
	ListRoles(ctx context.Context) []string
}

type userUseCaseImpl struct {
	userRepo UserRepository
}

func NewUserUseCase(userRepo UserRepository) UserUseCase {
	return &userUseCaseImpl{userRepo: userRepo}
}

func (u *userUseCaseImpl) ListUsers(ctx context.Context) ([]*readmodel.AuthorizedUserRM, error) {
	users, err := u.userRepo.FindAll(ctx)
	if err != nil {
		return nil, errs.Wrap(err, "failed to list users")
	}
	return users, nil
}

func (u *userUseCaseImpl) DeleteUser(ctx context.Context, actorID, targetID uuid.UUID) error {
	if actorID == targetID {
		return ErrCannotDeleteSelf
	}

	if err := u.userRepo.Delete(ctx, targetID); err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return ErrUserNotFound
		}
		return errs.Wrap(err, "failed to delete user")
	}
	return nil
}

func (u *userUseCaseImpl) UpdateProfile(ctx context.Context, userID uuid.UUID, params UpdateProfileParams) (*readmodel.AuthorizedUserRM, error) {
	userRM, err := u.userRepo.UpdateProfile(ctx, userID, params.FullName, params.Phone, params.Address)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, errs.Wrap(err, "failed to update profile")
	}
	return userRM, nil
}

func (u *userUseCaseImpl) ListRoles(_ context.Context) []string {
	roles := user.AllRoles()
	out := make([]string, len(roles))
	for i, r := range roles {
		out[i] = r.String()
	}
	return out
}
