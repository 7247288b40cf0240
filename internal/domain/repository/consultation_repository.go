package repository

import (
	"time"

	"hospital-management-api/internal/domain/entity"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type ConsultationRepository interface {
	Create(db *gorm.DB, consultation *entity.Consultation) error
	FindByID(db *gorm.DB, id uuid.UUID) (*entity.Consultation, error)
	// FindByDoctorAndTime and FindByPatientAndTime return nil when the
	// doctor/patient has no non-canceled consultation at the given time.
	FindByDoctorAndTime(db *gorm.DB, doctorID uuid.UUID, at time.Time) (*entity.Consultation, error)
	FindByPatientAndTime(db *gorm.DB, patientID uuid.UUID, at time.Time) (*entity.Consultation, error)
	FindPage(db *gorm.DB, page, limit int) ([]entity.Consultation, int64, error)
	FindPageByPatientID(db *gorm.DB, patientID uuid.UUID, page, limit int) ([]entity.Consultation, int64, error)
	Update(db *gorm.DB, consultation *entity.Consultation) error
}
