package dao

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

// Enrollment is the join row between a participant and a formation. Exactly
// one row per (participant_id, formation_id); both listing directions are
// indexed queries over this table.
type Enrollment struct {
	ID            uint `gorm:"primaryKey"`
	ParticipantID uint `gorm:"not null;uniqueIndex:idx_enrollments_pair"`
	FormationID   uint `gorm:"not null;uniqueIndex:idx_enrollments_pair;index"`
	CreatedAt     time.Time
}

type EnrollmentDAO struct {
	db *gorm.DB
}

func NewEnrollmentDAO(db *gorm.DB) *EnrollmentDAO {
	return &EnrollmentDAO{
		db: db,
	}
}

// Enroll creates the pair row inside one transaction. Enrolling an existing
// pair is a no-op success, including the race where two callers insert
// concurrently and one hits the unique index.
func (d *EnrollmentDAO) Enroll(ctx context.Context, participantID, formationID uint) error {
	return d.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := requireEntities(tx, participantID, formationID); err != nil {
			return err
		}

		var count int64
		err := tx.Model(&Enrollment{}).
			Where("participant_id = ? AND formation_id = ?", participantID, formationID).
			Count(&count).Error
		if err != nil {
			return err
		}
		if count > 0 {
			return nil
		}

		err = tx.Create(&Enrollment{
			ParticipantID: participantID,
			FormationID:   formationID,
		}).Error
		if err != nil {
			var pgErr *pgconn.PgError
			if errors.As(err, &pgErr) && pgErr.Code == pgerrcode.UniqueViolation {
				return nil
			}

			return err
		}

		return nil
	})
}

// Withdraw deletes the pair row. Withdrawing a pair that does not exist is a
// no-op success.
func (d *EnrollmentDAO) Withdraw(ctx context.Context, participantID, formationID uint) error {
	return d.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := requireEntities(tx, participantID, formationID); err != nil {
			return err
		}

		return tx.Where("participant_id = ? AND formation_id = ?", participantID, formationID).
			Delete(&Enrollment{}).Error
	})
}

// FindParticipantsByFormationID resolves participants through the formation's
// enrollment rows. Soft-deleted participants are intentionally included here
// so historical enrollment data stays intact.
func (d *EnrollmentDAO) FindParticipantsByFormationID(ctx context.Context, formationID uint) ([]Participant, error) {
	var formation Formation
	if err := d.db.WithContext(ctx).First(&formation, formationID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrFormationNotFound
		}

		return nil, err
	}

	var participants []Participant
	err := d.db.WithContext(ctx).
		Joins("JOIN enrollments ON enrollments.participant_id = participants.id").
		Where("enrollments.formation_id = ?", formationID).
		Order("participants.last_name").
		Find(&participants).Error
	if err != nil {
		return nil, err
	}

	return participants, nil
}

func (d *EnrollmentDAO) FindFormationsByParticipantID(ctx context.Context, participantID uint) ([]Formation, error) {
	var participant Participant
	if err := d.db.WithContext(ctx).First(&participant, participantID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrParticipantNotFound
		}

		return nil, err
	}

	var formations []Formation
	err := d.db.WithContext(ctx).
		Joins("JOIN enrollments ON enrollments.formation_id = formations.id").
		Where("enrollments.participant_id = ?", participantID).
		Order("formations.start_date").
		Find(&formations).Error
	if err != nil {
		return nil, err
	}

	return formations, nil
}

// CountByFormation returns enrollment counts keyed by formation ID.
func (d *EnrollmentDAO) CountByFormation(ctx context.Context) (map[uint]int, error) {
	var rows []struct {
		FormationID uint
		Count       int
	}

	err := d.db.WithContext(ctx).Model(&Enrollment{}).
		Select("formation_id, COUNT(*) AS count").
		Group("formation_id").
		Find(&rows).Error
	if err != nil {
		return nil, err
	}

	counts := make(map[uint]int, len(rows))
	for _, row := range rows {
		counts[row.FormationID] = row.Count
	}

	return counts, nil
}

// requireEntities checks both anchors of a relationship mutation inside the
// caller's transaction. The participant lookup deliberately skips the visible
// scope: relationship operations on soft-deleted participants stay valid.
func requireEntities(tx *gorm.DB, participantID, formationID uint) error {
	var participant Participant
	if err := tx.First(&participant, participantID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrParticipantNotFound
		}

		return err
	}

	var formation Formation
	if err := tx.First(&formation, formationID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrFormationNotFound
		}

		return err
	}

	return nil
}
