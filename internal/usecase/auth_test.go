//go:build unit

package usecase_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"safestore/internal/domain/user"
	"safestore/internal/infra"
	"safestore/internal/pkg/jwt"
	"safestore/internal/pkg/password"
	"safestore/internal/usecase"
	"safestore/internal/usecase/readmodel"
	"safestore/tests/common/builder"
	usecasemock "safestore/tests/mock/usecase"

	"github.com/jackc/pgx/v5"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type AuthUseCaseTestSuite struct {
	suite.Suite
	mockCtrl     *gomock.Controller
	mockUserRepo *usecasemock.MockUserRepository
	useCase      usecase.AuthUseCase
}

func (s *AuthUseCaseTestSuite) SetupTest() {
	s.mockCtrl = gomock.NewController(s.T())
	s.mockUserRepo = usecasemock.NewMockUserRepository(s.mockCtrl)

	jwtService := jwt.NewService("test-secret", time.Hour)
	s.useCase = usecase.NewAuthUseCase(s.mockUserRepo, jwtService)
}

func (s *AuthUseCaseTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestAuthUseCaseSuite(t *testing.T) {
	suite.Run(t, new(AuthUseCaseTestSuite))
}

func (s *AuthUseCaseTestSuite) credentials() user.Credentials {
	creds, err := user.NewCredentials("test@example.com", "password123")
	s.Require().NoError(err)
	return creds
}

func (s *AuthUseCaseTestSuite) TestLogin() {
	ctx := context.Background()
	hash, err := password.HashPassword("password123")
	s.Require().NoError(err)

	s.Run("success: returns a signed token and updates last login", func() {
		userRM := builder.NewUserBuilder().BuildReadModel()
		s.mockUserRepo.EXPECT().FindByEmail(gomock.Any(), gomock.Any()).
			Return(userRM, hash, nil).Times(1)
		s.mockUserRepo.EXPECT().UpdateLastLogin(gomock.Any(), userRM.ID).
			Return(nil).Times(1)

		token, got, err := s.useCase.Login(ctx, s.credentials())

		s.Require().NoError(err)
		s.NotEmpty(token)
		s.Equal(userRM.ID, got.ID)
	})

	s.Run("error: unknown email maps to user not found", func() {
		s.mockUserRepo.EXPECT().FindByEmail(gomock.Any(), gomock.Any()).
			Return(nil, "", infra.WrapRepoErr("failed to find user by email", pgx.ErrNoRows)).Times(1)

		_, _, err := s.useCase.Login(ctx, s.credentials())

		s.ErrorIs(err, usecase.ErrUserNotFound)
	})

	s.Run("error: wrong password is rejected", func() {
		userRM := builder.NewUserBuilder().BuildReadModel()
		wrongHash, err := password.HashPassword("another-password")
		s.Require().NoError(err)

		s.mockUserRepo.EXPECT().FindByEmail(gomock.Any(), gomock.Any()).
			Return(userRM, wrongHash, nil).Times(1)

		_, _, err = s.useCase.Login(ctx, s.credentials())

		s.ErrorIs(err, usecase.ErrInvalidCredentials)
	})

	s.Run("error: inactive account cannot log in", func() {
		userRM := builder.NewUserBuilder().AsInactive().BuildReadModel()
		s.mockUserRepo.EXPECT().FindByEmail(gomock.Any(), gomock.Any()).
			Return(userRM, hash, nil).Times(1)

		_, _, err := s.useCase.Login(ctx, s.credentials())

		s.ErrorIs(err, usecase.ErrUserInactive)
	})
}

func (s *AuthUseCaseTestSuite) TestRegister() {
	ctx := context.Background()

	s.Run("success: new accounts start as viewers and get a token", func() {
		userRM := builder.NewUserBuilder().WithRole("viewer").BuildReadModel()
		s.mockUserRepo.EXPECT().Create(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, u *user.User) (*readmodel.AuthorizedUserRM, error) {
				s.Equal(user.RoleViewer, u.Role())
				return userRM, nil
			}).Times(1)

		token, got, err := s.useCase.Register(ctx, s.credentials())

		s.Require().NoError(err)
		s.NotEmpty(token)
		s.Equal(userRM.ID, got.ID)
	})

	s.Run("error: duplicate email maps to already taken", func() {
		s.mockUserRepo.EXPECT().Create(gomock.Any(), gomock.Any()).
			Return(nil, infra.WrapRepoErr("failed to create user", errors.New("duplicate key"), infra.KindDuplicateKey)).Times(1)

		_, _, err := s.useCase.Register(ctx, s.credentials())

		s.ErrorIs(err, usecase.ErrEmailAlreadyTaken)
	})
}

func (s *AuthUseCaseTestSuite) TestGetCurrentUser() {
	ctx := context.Background()

	s.Run("success", func() {
		userRM := builder.NewUserBuilder().BuildReadModel()
		s.mockUserRepo.EXPECT().FindByID(gomock.Any(), userRM.ID).
			Return(userRM, nil).Times(1)

		got, err := s.useCase.GetCurrentUser(ctx, userRM.ID)

		s.Require().NoError(err)
		s.Equal(userRM.Email, got.Email)
	})

	s.Run("error: inactive account is treated as gone", func() {
		userRM := builder.NewUserBuilder().AsInactive().BuildReadModel()
		s.mockUserRepo.EXPECT().FindByID(gomock.Any(), userRM.ID).
			Return(userRM, nil).Times(1)

		_, err := s.useCase.GetCurrentUser(ctx, userRM.ID)

		s.ErrorIs(err, usecase.ErrUserInactive)
	})
}
