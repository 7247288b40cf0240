package repository

import (
	"time"

	"hospital-management-api/internal/domain/entity"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type DoctorProfileRepository interface {
	Create(db *gorm.DB, profile *entity.DoctorProfile) error
	FindByUserID(db *gorm.DB, userID uuid.UUID) (*entity.DoctorProfile, error)
	FindPage(db *gorm.DB, page, limit int) ([]entity.DoctorProfile, int64, error)
	// FindOneFreeBySpecialty returns an active doctor of the given specialty
	// with no non-canceled consultation at the given time, or nil when none
	// is available.
	FindOneFreeBySpecialty(db *gorm.DB, specialty entity.Specialty, at time.Time) (*entity.DoctorProfile, error)
	Update(db *gorm.DB, profile *entity.DoctorProfile) error
}
