package dao

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"
)

var ErrFormationNotFound = errors.New("formation not found")

type Formation struct {
	ID        uint      `gorm:"primaryKey"`
	Title     string    `gorm:"not null"`
	Domain    string    `gorm:"not null"`
	StartDate time.Time `gorm:"not null;index"`
	EndDate   *time.Time
	Budget    float64 `gorm:"not null"`
	Location  string
	Schedule  string
	CreatedAt time.Time
	UpdatedAt time.Time
}

type FormationDAO struct {
	db *gorm.DB
}

func NewFormationDAO(db *gorm.DB) *FormationDAO {
	return &FormationDAO{
		db: db,
	}
}

func (d *FormationDAO) Insert(ctx context.Context, formation Formation) (Formation, error) {
	result := d.db.WithContext(ctx).Create(&formation)
	if result.Error != nil {
		return Formation{}, result.Error
	}

	return formation, nil
}

func (d *FormationDAO) FindByID(ctx context.Context, id uint) (Formation, error) {
	var formation Formation

	result := d.db.WithContext(ctx).First(&formation, id)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return Formation{}, ErrFormationNotFound
		}

		return Formation{}, result.Error
	}

	return formation, nil
}

func (d *FormationDAO) FindAll(ctx context.Context) ([]Formation, error) {
	var formations []Formation

	result := d.db.WithContext(ctx).Order("start_date").Find(&formations)
	if result.Error != nil {
		return nil, result.Error
	}

	return formations, nil
}

func (d *FormationDAO) Update(ctx context.Context, formation Formation) (Formation, error) {
	result := d.db.WithContext(ctx).Save(&formation)
	if result.Error != nil {
		return Formation{}, result.Error
	}

	return formation, nil
}

// Delete removes the formation and its enrollment rows in one transaction so
// no participant is left referencing a formation that no longer exists.
func (d *FormationDAO) Delete(ctx context.Context, id uint) error {
	return d.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var formation Formation
		if err := tx.First(&formation, id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrFormationNotFound
			}

			return err
		}

		if err := tx.Where("formation_id = ?", id).Delete(&Enrollment{}).Error; err != nil {
			return err
		}

		return tx.Delete(&formation).Error
	})
}
