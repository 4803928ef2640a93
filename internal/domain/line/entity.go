package line

import (
	"errors"
	"strings"
	"time"
)

var ErrEmptyName = errors.New("line name is required")

// Line is a product line (category) a product belongs to.
type Line struct {
	id          int64
	name        string
	description string
	isActive    bool
	createdAt   time.Time
	updatedAt   time.Time
}

func NewLine(name, description string, isActive bool) (*Line, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, ErrEmptyName
	}

	return &Line{
		name:        name,
		description: strings.TrimSpace(description),
		isActive:    isActive,
	}, nil
}

func ReconstructLine(id int64, name, description string, isActive bool, createdAt, updatedAt time.Time) *Line {
	return &Line{
		id:          id,
		name:        name,
		description: description,
		isActive:    isActive,
		createdAt:   createdAt,
		updatedAt:   updatedAt,
	}
}

func (l *Line) ID() int64            { return l.id }
func (l *Line) Name() string         { return l.name }
func (l *Line) Description() string  { return l.description }
func (l *Line) IsActive() bool       { return l.isActive }
func (l *Line) CreatedAt() time.Time { return l.createdAt }
func (l *Line) UpdatedAt() time.Time { return l.updatedAt }
