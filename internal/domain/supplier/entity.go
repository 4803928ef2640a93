package supplier

import (
	"errors"
	"strings"
	"time"
)

var (
	ErrEmptyName    = errors.New("supplier name is required")
	ErrInvalidEmail = errors.New("invalid supplier email")
)

type Supplier struct {
	id        int64
	name      string
	phone     string
	email     string
	isActive  bool
	createdAt time.Time
	updatedAt time.Time
}

func NewSupplier(name, phone, email string, isActive bool) (*Supplier, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, ErrEmptyName
	}
	email = strings.TrimSpace(email)
	if email != "" && !strings.Contains(email, "@") {
		return nil, ErrInvalidEmail
	}

	return &Supplier{
		name:     name,
		phone:    strings.TrimSpace(phone),
		email:    email,
		isActive: isActive,
	}, nil
}

func ReconstructSupplier(id int64, name, phone, email string, isActive bool, createdAt, updatedAt time.Time) *Supplier {
	return &Supplier{
		id:        id,
		name:      name,
		phone:     phone,
		email:     email,
		isActive:  isActive,
		createdAt: createdAt,
		updatedAt: updatedAt,
	}
}

func (s *Supplier) ID() int64            { return s.id }
func (s *Supplier) Name() string         { return s.name }
func (s *Supplier) Phone() string        { return s.phone }
func (s *Supplier) Email() string        { return s.email }
func (s *Supplier) IsActive() bool       { return s.isActive }
func (s *Supplier) CreatedAt() time.Time { return s.createdAt }
func (s *Supplier) UpdatedAt() time.Time { return s.updatedAt }
