package repository

import (
	"context"
	"fmt"

	"github.com/gestionformation/formation-api/internal/domain"
	"github.com/gestionformation/formation-api/internal/repository/dao"
)

var ErrParticipantNotFound = dao.ErrParticipantNotFound

type ParticipantDAO interface {
	Insert(ctx context.Context, participant dao.Participant) (dao.Participant, error)
	FindByID(ctx context.Context, id uint) (dao.Participant, error)
	FindAll(ctx context.Context) ([]dao.Participant, error)
	FindByProfile(ctx context.Context, profile string) ([]dao.Participant, error)
	CountByProfile(ctx context.Context, profile string) (int64, error)
	Update(ctx context.Context, participant dao.Participant) (dao.Participant, error)
	SoftDelete(ctx context.Context, id uint) error
}

type ParticipantRepository struct {
	dao ParticipantDAO
}

func NewParticipantRepository(dao ParticipantDAO) *ParticipantRepository {
	return &ParticipantRepository{
		dao: dao,
	}
}

func (r *ParticipantRepository) Create(ctx context.Context, participant domain.Participant) (domain.Participant, error) {
	created, err := r.dao.Insert(ctx, participantDomainToDao(participant))
	if err != nil {
		return domain.Participant{}, fmt.Errorf("r.dao.Insert -> %w", err)
	}

	return participantDaoToDomain(created), nil
}

func (r *ParticipantRepository) FindByID(ctx context.Context, id uint) (domain.Participant, error) {
	found, err := r.dao.FindByID(ctx, id)
	if err != nil {
		return domain.Participant{}, fmt.Errorf("r.dao.FindByID -> %w", err)
	}

	return participantDaoToDomain(found), nil
}

func (r *ParticipantRepository) FindAll(ctx context.Context) ([]domain.Participant, error) {
	found, err := r.dao.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("r.dao.FindAll -> %w", err)
	}

	return participantsDaoToDomain(found), nil
}

func (r *ParticipantRepository) FindByProfile(ctx context.Context, profile domain.Profile) ([]domain.Participant, error) {
	found, err := r.dao.FindByProfile(ctx, string(profile))
	if err != nil {
		return nil, fmt.Errorf("r.dao.FindByProfile -> %w", err)
	}

	return participantsDaoToDomain(found), nil
}

func (r *ParticipantRepository) CountByProfile(ctx context.Context, profile domain.Profile) (int64, error) {
	count, err := r.dao.CountByProfile(ctx, string(profile))
	if err != nil {
		return 0, fmt.Errorf("r.dao.CountByProfile -> %w", err)
	}

	return count, nil
}

func (r *ParticipantRepository) Update(ctx context.Context, participant domain.Participant) (domain.Participant, error) {
	updated, err := r.dao.Update(ctx, participantDomainToDao(participant))
	if err != nil {
		return domain.Participant{}, fmt.Errorf("r.dao.Update -> %w", err)
	}

	return participantDaoToDomain(updated), nil
}

func (r *ParticipantRepository) SoftDelete(ctx context.Context, id uint) error {
	if err := r.dao.SoftDelete(ctx, id); err != nil {
		return fmt.Errorf("r.dao.SoftDelete -> %w", err)
	}

	return nil
}

func participantDomainToDao(p domain.Participant) dao.Participant {
	return dao.Participant{
		ID:        p.ID,
		FirstName: p.FirstName,
		LastName:  p.LastName,
		Email:     p.Email,
		Telephone: p.Telephone,
		Structure: string(p.Structure),
		Profile:   string(p.Profile),
		Deleted:   p.Deleted,
		CreatedAt: p.CreatedAt,
		UpdatedAt: p.UpdatedAt,
	}
}

func participantDaoToDomain(p dao.Participant) domain.Participant {
	return domain.Participant{
		ID:        p.ID,
		FirstName: p.FirstName,
		LastName:  p.LastName,
		Email:     p.Email,
		Telephone: p.Telephone,
		Structure: domain.Structure(p.Structure),
		Profile:   domain.Profile(p.Profile),
		Deleted:   p.Deleted,
		CreatedAt: p.CreatedAt,
		UpdatedAt: p.UpdatedAt,
	}
}

func participantsDaoToDomain(daoParticipants []dao.Participant) []domain.Participant {
	participants := make([]domain.Participant, len(daoParticipants))
	for i, p := range daoParticipants {
		participants[i] = participantDaoToDomain(p)
	}

	return participants
}
