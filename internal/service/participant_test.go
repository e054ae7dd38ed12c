package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gestionformation/formation-api/internal/domain"
)

type fakeParticipantRepo struct {
	participants map[uint]domain.Participant
	nextID       uint
}

func newFakeParticipantRepo(participants ...domain.Participant) *fakeParticipantRepo {
	repo := &fakeParticipantRepo{
		participants: make(map[uint]domain.Participant),
		nextID:       1,
	}
	for _, p := range participants {
		if p.ID >= repo.nextID {
			repo.nextID = p.ID + 1
		}
		repo.participants[p.ID] = p
	}

	return repo
}

func (r *fakeParticipantRepo) Create(_ context.Context, participant domain.Participant) (domain.Participant, error) {
	participant.ID = r.nextID
	r.nextID++
	r.participants[participant.ID] = participant

	return participant, nil
}

func (r *fakeParticipantRepo) FindByID(_ context.Context, id uint) (domain.Participant, error) {
	participant, ok := r.participants[id]
	if !ok || participant.Deleted {
		return domain.Participant{}, ErrParticipantNotFound
	}

	return participant, nil
}

func (r *fakeParticipantRepo) FindAll(_ context.Context) ([]domain.Participant, error) {
	var result []domain.Participant
	for _, p := range r.participants {
		if !p.Deleted {
			result = append(result, p)
		}
	}

	return result, nil
}

func (r *fakeParticipantRepo) FindByProfile(_ context.Context, profile domain.Profile) ([]domain.Participant, error) {
	var result []domain.Participant
	for _, p := range r.participants {
		if !p.Deleted && p.Profile == profile {
			result = append(result, p)
		}
	}

	return result, nil
}

func (r *fakeParticipantRepo) CountByProfile(_ context.Context, profile domain.Profile) (int64, error) {
	var count int64
	for _, p := range r.participants {
		if !p.Deleted && p.Profile == profile {
			count++
		}
	}

	return count, nil
}

func (r *fakeParticipantRepo) Update(_ context.Context, participant domain.Participant) (domain.Participant, error) {
	existing, ok := r.participants[participant.ID]
	if !ok || existing.Deleted {
		return domain.Participant{}, ErrParticipantNotFound
	}
	r.participants[participant.ID] = participant

	return participant, nil
}

func (r *fakeParticipantRepo) SoftDelete(_ context.Context, id uint) error {
	participant, ok := r.participants[id]
	if !ok {
		return nil
	}
	participant.Deleted = true
	r.participants[id] = participant

	return nil
}

func TestParticipantService_CreateParticipant(t *testing.T) {
	t.Run("valid participant", func(t *testing.T) {
		svc := NewParticipantService(newFakeParticipantRepo(), newFakeEnrollmentRepo())

		created, err := svc.CreateParticipant(context.Background(), domain.Participant{
			FirstName: "Jean",
			LastName:  "Dupont",
			Email:     "jean.dupont@example.com",
			Structure: domain.StructureIT,
			Profile:   domain.ProfileParticipant,
		})

		require.NoError(t, err)
		assert.NotZero(t, created.ID)
		assert.False(t, created.Deleted)
	})

	t.Run("blank fields rejected", func(t *testing.T) {
		svc := NewParticipantService(newFakeParticipantRepo(), newFakeEnrollmentRepo())

		tests := []domain.Participant{
			{LastName: "Dupont", Email: "jean@example.com"},
			{FirstName: "Jean", Email: "jean@example.com"},
			{FirstName: "Jean", LastName: "Dupont"},
		}
		for _, p := range tests {
			_, err := svc.CreateParticipant(context.Background(), p)

			assert.ErrorIs(t, err, ErrValidation)
		}
	})
}

func TestParticipantService_DeleteParticipant(t *testing.T) {
	repo := newFakeParticipantRepo(domain.Participant{
		ID:        1,
		FirstName: "Jean",
		LastName:  "Dupont",
		Email:     "jean.dupont@example.com",
	})
	svc := NewParticipantService(repo, newFakeEnrollmentRepo())
	ctx := context.Background()

	require.NoError(t, svc.DeleteParticipant(ctx, 1))

	// Deleted participants disappear from filtered reads.
	_, err := svc.GetParticipant(ctx, 1)
	assert.ErrorIs(t, err, ErrParticipantNotFound)

	all, err := svc.GetAllParticipants(ctx)
	require.NoError(t, err)
	assert.Empty(t, all)

	// Deleting again, or deleting a participant that never existed, succeeds.
	assert.NoError(t, svc.DeleteParticipant(ctx, 1))
	assert.NoError(t, svc.DeleteParticipant(ctx, 99))
}

func TestParticipantService_SoftDeleteKeepsEnrollmentHistory(t *testing.T) {
	repo := newFakeParticipantRepo(domain.Participant{
		ID:        1,
		FirstName: "Jean",
		LastName:  "Dupont",
		Email:     "jean.dupont@example.com",
	})
	enrollments := newFakeEnrollmentRepo()
	enrollments.participants[1] = domain.Participant{ID: 1, FirstName: "Jean", LastName: "Dupont"}
	enrollments.formations[10] = domain.Formation{ID: 10, Title: "Go Fundamentals", StartDate: date(2025, time.May, 5)}
	svc := NewParticipantService(repo, enrollments)
	ctx := context.Background()

	require.NoError(t, svc.Enroll(ctx, 1, 10))
	require.NoError(t, svc.DeleteParticipant(ctx, 1))

	// The enrollment set still resolves the soft-deleted participant.
	formations, err := svc.GetParticipantFormations(ctx, 1)
	require.NoError(t, err)
	assert.Len(t, formations, 1)
}

func TestParticipantService_ProfileQueries(t *testing.T) {
	repo := newFakeParticipantRepo(
		domain.Participant{ID: 1, FirstName: "Jean", LastName: "Dupont", Email: "j@example.com", Profile: domain.ProfileParticipant},
		domain.Participant{ID: 2, FirstName: "Marie", LastName: "Laurent", Email: "m@example.com", Profile: domain.ProfileIntern},
		domain.Participant{ID: 3, FirstName: "Pierre", LastName: "Martin", Email: "p@example.com", Profile: domain.ProfileIntern},
		domain.Participant{ID: 4, FirstName: "Anna", LastName: "Schmidt", Email: "a@example.com", Profile: domain.ProfileIntern, Deleted: true},
	)
	svc := NewParticipantService(repo, newFakeEnrollmentRepo())
	ctx := context.Background()

	interns, err := svc.GetParticipantsByProfile(ctx, domain.ProfileIntern)
	require.NoError(t, err)
	assert.Len(t, interns, 2)

	count, err := svc.CountParticipantsByProfile(ctx, domain.ProfileIntern)
	require.NoError(t, err)
	assert.Equal(t, int64(2), count)
}

func TestParticipantService_UpdateParticipant(t *testing.T) {
	repo := newFakeParticipantRepo(domain.Participant{
		ID:        1,
		FirstName: "Jean",
		LastName:  "Dupont",
		Email:     "jean.dupont@example.com",
		Structure: domain.StructureIT,
		Profile:   domain.ProfileParticipant,
	})
	svc := NewParticipantService(repo, newFakeEnrollmentRepo())

	updated, err := svc.UpdateParticipant(context.Background(), 1, domain.Participant{
		FirstName: "Jean",
		LastName:  "Durand",
		Email:     "jean.durand@example.com",
		Structure: domain.StructureFinance,
		Profile:   domain.ProfileExtern,
	})

	require.NoError(t, err)
	assert.Equal(t, "Durand", updated.LastName)
	assert.Equal(t, domain.StructureFinance, updated.Structure)

	_, err = svc.UpdateParticipant(context.Background(), 1, domain.Participant{})
	assert.ErrorIs(t, err, ErrValidation)
}
