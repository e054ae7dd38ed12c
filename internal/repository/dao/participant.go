package dao

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"
)

var ErrParticipantNotFound = errors.New("participant not found")

type Participant struct {
	ID        uint   `gorm:"primaryKey"`
	FirstName string `gorm:"not null"`
	LastName  string `gorm:"not null"`
	Email     string `gorm:"not null"`
	Telephone string
	Structure string
	Profile   string `gorm:"index"`
	Deleted   bool   `gorm:"not null;default:false"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

// visible is the single soft-delete filter. Every participant-returning query
// goes through it; only enrollment-set resolution is exempt so historical
// relationship data stays readable.
func visible(tx *gorm.DB) *gorm.DB {
	return tx.Where("deleted = ?", false)
}

type ParticipantDAO struct {
	db *gorm.DB
}

func NewParticipantDAO(db *gorm.DB) *ParticipantDAO {
	return &ParticipantDAO{
		db: db,
	}
}

func (d *ParticipantDAO) Insert(ctx context.Context, participant Participant) (Participant, error) {
	participant.Deleted = false

	result := d.db.WithContext(ctx).Create(&participant)
	if result.Error != nil {
		return Participant{}, result.Error
	}

	return participant, nil
}

func (d *ParticipantDAO) FindByID(ctx context.Context, id uint) (Participant, error) {
	var participant Participant

	result := d.db.WithContext(ctx).Scopes(visible).First(&participant, id)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return Participant{}, ErrParticipantNotFound
		}

		return Participant{}, result.Error
	}

	return participant, nil
}

func (d *ParticipantDAO) FindAll(ctx context.Context) ([]Participant, error) {
	var participants []Participant

	result := d.db.WithContext(ctx).Scopes(visible).Order("last_name").Find(&participants)
	if result.Error != nil {
		return nil, result.Error
	}

	return participants, nil
}

func (d *ParticipantDAO) FindByProfile(ctx context.Context, profile string) ([]Participant, error) {
	var participants []Participant

	result := d.db.WithContext(ctx).Scopes(visible).Where("profile = ?", profile).Find(&participants)
	if result.Error != nil {
		return nil, result.Error
	}

	return participants, nil
}

func (d *ParticipantDAO) CountByProfile(ctx context.Context, profile string) (int64, error) {
	var count int64

	result := d.db.WithContext(ctx).Model(&Participant{}).Scopes(visible).
		Where("profile = ?", profile).Count(&count)
	if result.Error != nil {
		return 0, result.Error
	}

	return count, nil
}

// Update never touches the deleted flag.
func (d *ParticipantDAO) Update(ctx context.Context, participant Participant) (Participant, error) {
	result := d.db.WithContext(ctx).Model(&Participant{ID: participant.ID}).
		Select("first_name", "last_name", "email", "telephone", "structure", "profile").
		Updates(map[string]any{
			"first_name": participant.FirstName,
			"last_name":  participant.LastName,
			"email":      participant.Email,
			"telephone":  participant.Telephone,
			"structure":  participant.Structure,
			"profile":    participant.Profile,
		})
	if result.Error != nil {
		return Participant{}, result.Error
	}

	return participant, nil
}

// SoftDelete marks the participant deleted. Deleting an already-deleted or
// unknown participant is a no-op success.
func (d *ParticipantDAO) SoftDelete(ctx context.Context, id uint) error {
	result := d.db.WithContext(ctx).Model(&Participant{}).
		Where("id = ?", id).Update("deleted", true)

	return result.Error
}
