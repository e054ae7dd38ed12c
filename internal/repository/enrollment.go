package repository

import (
	"context"
	"fmt"

	"github.com/gestionformation/formation-api/internal/domain"
	"github.com/gestionformation/formation-api/internal/repository/dao"
)

type EnrollmentDAO interface {
	Enroll(ctx context.Context, participantID, formationID uint) error
	Withdraw(ctx context.Context, participantID, formationID uint) error
	FindParticipantsByFormationID(ctx context.Context, formationID uint) ([]dao.Participant, error)
	FindFormationsByParticipantID(ctx context.Context, participantID uint) ([]dao.Formation, error)
	CountByFormation(ctx context.Context) (map[uint]int, error)
}

type EnrollmentRepository struct {
	dao EnrollmentDAO
}

func NewEnrollmentRepository(dao EnrollmentDAO) *EnrollmentRepository {
	return &EnrollmentRepository{
		dao: dao,
	}
}

func (r *EnrollmentRepository) Enroll(ctx context.Context, participantID, formationID uint) error {
	if err := r.dao.Enroll(ctx, participantID, formationID); err != nil {
		return fmt.Errorf("r.dao.Enroll -> %w", err)
	}

	return nil
}

func (r *EnrollmentRepository) Withdraw(ctx context.Context, participantID, formationID uint) error {
	if err := r.dao.Withdraw(ctx, participantID, formationID); err != nil {
		return fmt.Errorf("r.dao.Withdraw -> %w", err)
	}

	return nil
}

func (r *EnrollmentRepository) FindParticipantsByFormationID(ctx context.Context, formationID uint) ([]domain.Participant, error) {
	found, err := r.dao.FindParticipantsByFormationID(ctx, formationID)
	if err != nil {
		return nil, fmt.Errorf("r.dao.FindParticipantsByFormationID -> %w", err)
	}

	return participantsDaoToDomain(found), nil
}

func (r *EnrollmentRepository) FindFormationsByParticipantID(ctx context.Context, participantID uint) ([]domain.Formation, error) {
	found, err := r.dao.FindFormationsByParticipantID(ctx, participantID)
	if err != nil {
		return nil, fmt.Errorf("r.dao.FindFormationsByParticipantID -> %w", err)
	}

	return formationsDaoToDomain(found), nil
}

func (r *EnrollmentRepository) CountByFormation(ctx context.Context) (map[uint]int, error) {
	counts, err := r.dao.CountByFormation(ctx)
	if err != nil {
		return nil, fmt.Errorf("r.dao.CountByFormation -> %w", err)
	}

	return counts, nil
}
