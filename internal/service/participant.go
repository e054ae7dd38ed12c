package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/gestionformation/formation-api/internal/domain"
)

type ParticipantRepository interface {
	Create(ctx context.Context, participant domain.Participant) (domain.Participant, error)
	FindByID(ctx context.Context, id uint) (domain.Participant, error)
	FindAll(ctx context.Context) ([]domain.Participant, error)
	FindByProfile(ctx context.Context, profile domain.Profile) ([]domain.Participant, error)
	CountByProfile(ctx context.Context, profile domain.Profile) (int64, error)
	Update(ctx context.Context, participant domain.Participant) (domain.Participant, error)
	SoftDelete(ctx context.Context, id uint) error
}

type ParticipantService struct {
	repo        ParticipantRepository
	enrollments EnrollmentRepository
}

func NewParticipantService(repo ParticipantRepository, enrollments EnrollmentRepository) *ParticipantService {
	return &ParticipantService{
		repo:        repo,
		enrollments: enrollments,
	}
}

func (s *ParticipantService) CreateParticipant(ctx context.Context, participant domain.Participant) (domain.Participant, error) {
	if err := validateParticipant(participant); err != nil {
		return domain.Participant{}, err
	}

	participant.Deleted = false

	created, err := s.repo.Create(ctx, participant)
	if err != nil {
		return domain.Participant{}, fmt.Errorf("s.repo.Create -> %w", err)
	}

	return created, nil
}

func (s *ParticipantService) GetParticipant(ctx context.Context, id uint) (domain.Participant, error) {
	participant, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return domain.Participant{}, fmt.Errorf("s.repo.FindByID -> %w", err)
	}

	return participant, nil
}

func (s *ParticipantService) GetAllParticipants(ctx context.Context) ([]domain.Participant, error) {
	participants, err := s.repo.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("s.repo.FindAll -> %w", err)
	}

	return participants, nil
}

func (s *ParticipantService) GetParticipantsByProfile(ctx context.Context, profile domain.Profile) ([]domain.Participant, error) {
	participants, err := s.repo.FindByProfile(ctx, profile)
	if err != nil {
		return nil, fmt.Errorf("s.repo.FindByProfile -> %w", err)
	}

	return participants, nil
}

func (s *ParticipantService) CountParticipantsByProfile(ctx context.Context, profile domain.Profile) (int64, error) {
	count, err := s.repo.CountByProfile(ctx, profile)
	if err != nil {
		return 0, fmt.Errorf("s.repo.CountByProfile -> %w", err)
	}

	return count, nil
}

func (s *ParticipantService) UpdateParticipant(ctx context.Context, id uint, details domain.Participant) (domain.Participant, error) {
	participant, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return domain.Participant{}, fmt.Errorf("s.repo.FindByID -> %w", err)
	}

	if err = validateParticipant(details); err != nil {
		return domain.Participant{}, err
	}

	participant.FirstName = details.FirstName
	participant.LastName = details.LastName
	participant.Email = details.Email
	participant.Telephone = details.Telephone
	participant.Structure = details.Structure
	participant.Profile = details.Profile

	updated, err := s.repo.Update(ctx, participant)
	if err != nil {
		return domain.Participant{}, fmt.Errorf("s.repo.Update -> %w", err)
	}

	return updated, nil
}

// DeleteParticipant soft-deletes: the record stays in storage so historical
// enrollments keep resolving, but every visibility-filtered read excludes it.
// Repeating the delete is a no-op success.
func (s *ParticipantService) DeleteParticipant(ctx context.Context, id uint) error {
	if err := s.repo.SoftDelete(ctx, id); err != nil {
		return fmt.Errorf("s.repo.SoftDelete -> %w", err)
	}

	return nil
}

func (s *ParticipantService) GetParticipantFormations(ctx context.Context, participantID uint) ([]domain.Formation, error) {
	formations, err := s.enrollments.FindFormationsByParticipantID(ctx, participantID)
	if err != nil {
		return nil, fmt.Errorf("s.enrollments.FindFormationsByParticipantID -> %w", err)
	}

	return formations, nil
}

func (s *ParticipantService) Enroll(ctx context.Context, participantID, formationID uint) error {
	if err := s.enrollments.Enroll(ctx, participantID, formationID); err != nil {
		return fmt.Errorf("s.enrollments.Enroll -> %w", err)
	}

	return nil
}

func (s *ParticipantService) Withdraw(ctx context.Context, participantID, formationID uint) error {
	if err := s.enrollments.Withdraw(ctx, participantID, formationID); err != nil {
		return fmt.Errorf("s.enrollments.Withdraw -> %w", err)
	}

	return nil
}

func validateParticipant(p domain.Participant) error {
	if strings.TrimSpace(p.FirstName) == "" {
		return fmt.Errorf("%w: first name is required", ErrValidation)
	}
	if strings.TrimSpace(p.LastName) == "" {
		return fmt.Errorf("%w: last name is required", ErrValidation)
	}
	if strings.TrimSpace(p.Email) == "" {
		return fmt.Errorf("%w: email is required", ErrValidation)
	}

	return nil
}
