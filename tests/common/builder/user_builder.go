//go:build unit

package builder

import (
	"time"

	"safestore/internal/usecase/readmodel"

	"github.com/google/uuid"
)

type UserBuilder struct {
	Email    string
	Role     string
	FullName string
	IsActive bool
}

func NewUserBuilder() *UserBuilder {
	return &UserBuilder{
		Email:    "test@example.com",
		Role:     "operator",
		FullName: "Test Operator",
		IsActive: true,
	}
}

func (u *UserBuilder) WithEmail(email string) *UserBuilder {
	u.Email = email
	return u
}

func (u *UserBuilder) WithRole(role string) *UserBuilder {
	u.Role = role
	return u
}

func (u *UserBuilder) AsInactive() *UserBuilder {
	u.IsActive = false
	return u
}

func (u *UserBuilder) BuildReadModel() *readmodel.AuthorizedUserRM {
	return &readmodel.AuthorizedUserRM{
		ID:        uuid.New(),
		Email:     u.Email,
		Role:      u.Role,
		FullName:  u.FullName,
		IsActive:  u.IsActive,
		CreatedAt: time.Now(),
	}
}
