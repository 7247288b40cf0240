package repository

import (
	"errors"
	"time"

	"hospital-management-api/internal/domain/entity"
	domainRepo "hospital-management-api/internal/domain/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type consultationRepository struct{}

func NewConsultationRepository() domainRepo.ConsultationRepository {
	return &consultationRepository{}
}

func (r *consultationRepository) Create(db *gorm.DB, consultation *entity.Consultation) error {
	return db.Create(consultation).Error
}

func (r *consultationRepository) FindByID(db *gorm.DB, id uuid.UUID) (*entity.Consultation, error) {
	var consultation entity.Consultation
	err := db.Preload("Doctor.User").Preload("Patient.User").
		Where("id = ?", id).
		First(&consultation).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &consultation, nil
}

func (r *consultationRepository) FindByDoctorAndTime(db *gorm.DB, doctorID uuid.UUID, at time.Time) (*entity.Consultation, error) {
	var consultation entity.Consultation
	err := db.Where("doctor_id = ? AND scheduled_at = ? AND canceled = ?", doctorID, at, false).
		First(&consultation).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &consultation, nil
}

func (r *consultationRepository) FindByPatientAndTime(db *gorm.DB, patientID uuid.UUID, at time.Time) (*entity.Consultation, error) {
	var consultation entity.Consultation
	err := db.Where("patient_id = ? AND scheduled_at = ? AND canceled = ?", patientID, at, false).
		First(&consultation).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &consultation, nil
}

func (r *consultationRepository) FindPage(db *gorm.DB, page, limit int) ([]entity.Consultation, int64, error) {
	var consultations []entity.Consultation
	var total int64

	if err := db.Model(&entity.Consultation{}).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	err := db.Preload("Doctor.User").Preload("Patient.User").
		Order("scheduled_at DESC").
		Offset((page - 1) * limit).
		Limit(limit).
		Find(&consultations).Error
	if err != nil {
		return nil, 0, err
	}
	return consultations, total, nil
}

func (r *consultationRepository) FindPageByPatientID(db *gorm.DB, patientID uuid.UUID, page, limit int) ([]entity.Consultation, int64, error) {
	var consultations []entity.Consultation
	var total int64

	if err := db.Model(&entity.Consultation{}).Where("patient_id = ?", patientID).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	err := db.Preload("Doctor.User").
		Where("patient_id = ?", patientID).
		Order("scheduled_at DESC").
		Offset((page - 1) * limit).
		Limit(limit).
		Find(&consultations).Error
	if err != nil {
		return nil, 0, err
	}
	return consultations, total, nil
}

func (r *consultationRepository) Update(db *gorm.DB, consultation *entity.Consultation) error {
	return db.Omit("Doctor", "Patient").Save(consultation).Error
}
