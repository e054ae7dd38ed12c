package repository

import (
	"context"
	"fmt"

	"github.com/gestionformation/formation-api/internal/domain"
	"github.com/gestionformation/formation-api/internal/repository/dao"
)

var ErrFormationNotFound = dao.ErrFormationNotFound

type FormationDAO interface {
	Insert(ctx context.Context, formation dao.Formation) (dao.Formation, error)
	FindByID(ctx context.Context, id uint) (dao.Formation, error)
	FindAll(ctx context.Context) ([]dao.Formation, error)
	Update(ctx context.Context, formation dao.Formation) (dao.Formation, error)
	Delete(ctx context.Context, id uint) error
}

type FormationRepository struct {
	dao FormationDAO
}

func NewFormationRepository(dao FormationDAO) *FormationRepository {
	return &FormationRepository{
		dao: dao,
	}
}

func (r *FormationRepository) Create(ctx context.Context, formation domain.Formation) (domain.Formation, error) {
	created, err := r.dao.Insert(ctx, formationDomainToDao(formation))
	if err != nil {
		return domain.Formation{}, fmt.Errorf("r.dao.Insert -> %w", err)
	}

	return formationDaoToDomain(created), nil
}

func (r *FormationRepository) FindByID(ctx context.Context, id uint) (domain.Formation, error) {
	found, err := r.dao.FindByID(ctx, id)
	if err != nil {
		return domain.Formation{}, fmt.Errorf("r.dao.FindByID -> %w", err)
	}

	return formationDaoToDomain(found), nil
}

func (r *FormationRepository) FindAll(ctx context.Context) ([]domain.Formation, error) {
	found, err := r.dao.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("r.dao.FindAll -> %w", err)
	}

	return formationsDaoToDomain(found), nil
}

func (r *FormationRepository) Update(ctx context.Context, formation domain.Formation) (domain.Formation, error) {
	updated, err := r.dao.Update(ctx, formationDomainToDao(formation))
	if err != nil {
		return domain.Formation{}, fmt.Errorf("r.dao.Update -> %w", err)
	}

	return formationDaoToDomain(updated), nil
}

func (r *FormationRepository) Delete(ctx context.Context, id uint) error {
	if err := r.dao.Delete(ctx, id); err != nil {
		return fmt.Errorf("r.dao.Delete -> %w", err)
	}

	return nil
}

func formationDomainToDao(f domain.Formation) dao.Formation {
	return dao.Formation{
		ID:        f.ID,
		Title:     f.Title,
		Domain:    string(f.Domain),
		StartDate: f.StartDate,
		EndDate:   f.EndDate,
		Budget:    f.Budget,
		Location:  f.Location,
		Schedule:  f.Schedule,
		CreatedAt: f.CreatedAt,
		UpdatedAt: f.UpdatedAt,
	}
}

func formationDaoToDomain(f dao.Formation) domain.Formation {
	return domain.Formation{
		ID:        f.ID,
		Title:     f.Title,
		Domain:    domain.FormationDomain(f.Domain),
		StartDate: f.StartDate,
		EndDate:   f.EndDate,
		Budget:    f.Budget,
		Location:  f.Location,
		Schedule:  f.Schedule,
		CreatedAt: f.CreatedAt,
		UpdatedAt: f.UpdatedAt,
	}
}

func formationsDaoToDomain(daoFormations []dao.Formation) []domain.Formation {
	formations := make([]domain.Formation, len(daoFormations))
	for i, f := range daoFormations {
		formations[i] = formationDaoToDomain(f)
	}

	return formations
}
