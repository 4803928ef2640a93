package brand

import (
	"errors"
	"strings"
	"time"
)

var ErrEmptyName = errors.New("brand name is required")

type Brand struct {
	id          int64
	name        string
	description string
	logo        string
	isActive    bool
	createdAt   time.Time
	updatedAt   time.Time
}

func NewBrand(name, description, logo string, isActive bool) (*Brand, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, ErrEmptyName
	}

	return &Brand{
		name:        name,
		description: strings.TrimSpace(description),
		logo:        strings.TrimSpace(logo),
		isActive:    isActive,
	}, nil
}

func ReconstructBrand(id int64, name, description, logo string, isActive bool, createdAt, updatedAt time.Time) *Brand {
	return &Brand{
		id:          id,
		name:        name,
		description: description,
		logo:        logo,
		isActive:    isActive,
		createdAt:   createdAt,
		updatedAt:   updatedAt,
	}
}

func (b *Brand) ID() int64            { return b.id }
func (b *Brand) Name() string         { return b.name }
func (b *Brand) Description() string  { return b.description }
func (b *Brand) Logo() string         { return b.logo }
func (b *Brand) IsActive() bool       { return b.isActive }
func (b *Brand) CreatedAt() time.Time { return b.createdAt }
func (b *Brand) UpdatedAt() time.Time { return b.updatedAt }
