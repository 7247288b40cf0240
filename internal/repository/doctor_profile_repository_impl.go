package repository

import (
	"errors"
	"time"

	"hospital-management-api/internal/domain/entity"
	domainRepo "hospital-management-api/internal/domain/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type doctorProfileRepository struct{}

func NewDoctorProfileRepository() domainRepo.DoctorProfileRepository {
	return &doctorProfileRepository{}
}

func (r *doctorProfileRepository) Create(db *gorm.DB, profile *entity.DoctorProfile) error {
	return db.Create(profile).Error
}

func (r *doctorProfileRepository) FindByUserID(db *gorm.DB, userID uuid.UUID) (*entity.DoctorProfile, error) {
	var profile entity.DoctorProfile
	err := db.Preload("User").Where("user_id = ?", userID).First(&profile).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &profile, nil
}

func (r *doctorProfileRepository) FindPage(db *gorm.DB, page, limit int) ([]entity.DoctorProfile, int64, error) {
	var profiles []entity.DoctorProfile
	var total int64

	if err := db.Model(&entity.DoctorProfile{}).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	err := db.Preload("User").
		Joins("JOIN users ON users.id = doctor_profiles.user_id").
		Order("users.full_name ASC").
		Offset((page - 1) * limit).
		Limit(limit).
		Find(&profiles).Error
	if err != nil {
		return nil, 0, err
	}
	return profiles, total, nil
}

// FindOneFreeBySpecialty picks one active doctor of the specialty with no
// non-canceled consultation at the given time. Matches the random-free-doctor
// selection of consultation booking by specialty.
func (r *doctorProfileRepository) FindOneFreeBySpecialty(db *gorm.DB, specialty entity.Specialty, at time.Time) (*entity.DoctorProfile, error) {
	var profile entity.DoctorProfile
	err := db.Preload("User").
		Joins("JOIN users ON users.id = doctor_profiles.user_id").
		Where("doctor_profiles.specialty = ?", specialty).
		Where("users.is_active = ?", true).
		Where(`NOT EXISTS (
			SELECT 1 FROM consultations
			WHERE consultations.doctor_id = doctor_profiles.user_id
			  AND consultations.scheduled_at = ?
			  AND consultations.canceled = false
		)`, at).
		Order("RANDOM()").
		First(&profile).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &profile, nil
}

func (r *doctorProfileRepository) Update(db *gorm.DB, profile *entity.DoctorProfile) error {
	return db.Session(&gorm.Session{FullSaveAssociations: true}).Save(profile).Error
}
