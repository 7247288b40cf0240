package dto

import (
	"time"

	"github.com/google/uuid"
)

// Request DTOs

// UpdatePatientRequest carries partial updates to a patient record.
// The medical record number, gender and date of birth are immutable.
type UpdatePatientRequest struct {
	FullName    string `json:"full_name" validate:"omitempty,min=2"`
	PhoneNumber string `json:"phone_number" validate:"omitempty,min=10,max=20"`
	Address     string `json:"address" validate:"omitempty"`
}

// Response DTOs

type PatientResponse struct {
	ID                  uuid.UUID `json:"id"`
	Email               string    `json:"email"`
	FullName            string    `json:"full_name"`
	MedicalRecordNumber string    `json:"mrn"`
	PhoneNumber         string    `json:"phone_number,omitempty"`
	DateOfBirth         string    `json:"date_of_birth"`
	Gender              string    `json:"gender"`
	Address             string    `json:"address,omitempty"`
	IsActive            *bool     `json:"is_active"`
	CreatedAt           time.Time `json:"created_at"`
	UpdatedAt           time.Time `json:"updated_at"`
}

type PatientListResponse struct {
	Patients []PatientResponse `json:"patients"`
}

// PatientProfileResponse is the profile fragment embedded in UserResponse
type PatientProfileResponse struct {
	MedicalRecordNumber string `json:"mrn"`
	PhoneNumber         string `json:"phone_number,omitempty"`
	DateOfBirth         string `json:"date_of_birth"`
	Gender              string `json:"gender"`
	Address             string `json:"address,omitempty"`
}
