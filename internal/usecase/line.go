package usecase

import (
	"context"
	"errors"

	"safestore/internal/domain/line"
	"safestore/internal/infra"
	"safestore/internal/pkg/errs"
	"safestore/internal/usecase/readmodel"
)

var (
	ErrLineNotFound = errors.New("line not found")
	ErrLineInUse    = errors.New("line is referenced by existing products")
)

type LineRepository interface {
	FindAll(ctx context.Context) ([]*readmodel.LineRM, error)
	FindByID(ctx context.Context, id int64) (*readmodel.LineRM, error)
	Create(ctx context.Context, l *line.Line) (*readmodel.LineRM, error)
	Update(ctx context.Context, id int64, l *line.Line) (*readmodel.LineRM, error)
	Delete(ctx context.Context, id int64) error
}

type LineParams struct {
	Name        string
	Description string
	IsActive    bool
}

type LineUseCase interface {
	ListLines(ctx context.Context) ([]*readmodel.LineRM, error)
	GetLine(ctx context.Context, id int64) (*readmodel.LineRM, error)
	CreateLine(ctx context.Context, params LineParams) (*readmodel.LineRM, error)
	UpdateLine(ctx context.Context, id int64, params LineParams) (*readmodel.LineRM, error)
	DeleteLine(ctx context.Context, id int64) error
}

type lineUseCaseImpl struct {
	lineRepo LineRepository
}

func NewLineUseCase(lineRepo LineRepository) LineUseCase {
	return &lineUseCaseImpl{lineRepo: lineRepo}
}

func (u *lineUseCaseImpl) ListLines(ctx context.Context) ([]*readmodel.LineRM, error) {
	lines, err := u.lineRepo.FindAll(ctx)
	if err != nil {
		return nil, errs.Wrap(err, "failed to list lines")
	}
	return lines, nil
}

func (u *lineUseCaseImpl) GetLine(ctx context.Context, id int64) (*readmodel.LineRM, error) {
	rm, err := u.lineRepo.FindByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrLineNotFound
		}
		return nil, errs.Wrap(err, "failed to find line")
	}
	return rm, nil
}

func (u *lineUseCaseImpl) CreateLine(ctx context.Context, params LineParams) (*readmodel.LineRM, error) {
	entity, err := line.NewLine(params.Name, params.Description, params.IsActive)
	if err != nil {
		return nil, err
	}

	rm, err := u.lineRepo.Create(ctx, entity)
	if err != nil {
		return nil, errs.Wrap(err, "failed to create line")
	}
	return rm, nil
}

func (u *lineUseCaseImpl) UpdateLine(ctx context.Context, id int64, params LineParams) (*readmodel.LineRM, error) {
	entity, err := line.NewLine(params.Name, params.Description, params.IsActive)
	if err != nil {
		return nil, err
	}

	rm, err := u.lineRepo.Update(ctx, id, entity)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrLineNotFound
		}
		return nil, errs.Wrap(err, "failed to update line")
	}
	return rm, nil
}

func (u *lineUseCaseImpl) DeleteLine(ctx context.Context, id int64) error {
	if err := u.lineRepo.Delete(ctx, id); err != nil {
		switch {
		case infra.IsKind(err, infra.KindNotFound):
			return ErrLineNotFound
		case infra.IsKind(err, infra.KindForeignKeyViolated):
			return ErrLineInUse
		default:
			return errs.Wrap(err, "failed to delete line")
		}
	}
	return nil
}
