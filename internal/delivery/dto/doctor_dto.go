package dto

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Request DTOs

type CreateDoctorRequest struct {
	Email           string `json:"email" validate:"required,email"`
	Password        string `json:"password" validate:"required,min=6"`
	FullName        string `json:"full_name" validate:"required,min=2"`
	LicenseNumber   string `json:"license_number" validate:"required,max=50"`
	Specialty       string `json:"specialty" validate:"required,oneof=orthopedics cardiology gynecology dermatology"`
	PhoneNumber     string `json:"phone_number" validate:"omitempty,min=10,max=20"`
	Address         string `json:"address" validate:"omitempty"`
	ConsultationFee string `json:"consultation_fee" validate:"omitempty"`
	Biography       string `json:"biography" validate:"omitempty"`
}

// UpdateDoctorRequest carries partial updates. Specialty and license are
// admin-correctable; empty fields are left untouched.
type UpdateDoctorRequest struct {
	FullName        string `json:"full_name" validate:"omitempty,min=2"`
	LicenseNumber   string `json:"license_number" validate:"omitempty,max=50"`
	Specialty       string `json:"specialty" validate:"omitempty,oneof=orthopedics cardiology gynecology dermatology"`
	PhoneNumber     string `json:"phone_number" validate:"omitempty,min=10,max=20"`
	Address         string `json:"address" validate:"omitempty"`
	ConsultationFee string `json:"consultation_fee" validate:"omitempty"`
	Biography       string `json:"biography" validate:"omitempty"`
}

// Response DTOs

type DoctorResponse struct {
	ID              uuid.UUID       `json:"id"`
	Email           string          `json:"email"`
	FullName        string          `json:"full_name"`
	LicenseNumber   string          `json:"license_number"`
	Specialty       string          `json:"specialty"`
	PhoneNumber     string          `json:"phone_number,omitempty"`
	Address         string          `json:"address,omitempty"`
	ConsultationFee decimal.Decimal `json:"consultation_fee"`
	Biography       string          `json:"biography,omitempty"`
	IsActive        *bool           `json:"is_active"`
}

type DoctorListResponse struct {
	Doctors []DoctorResponse `json:"doctors"`
}

// DoctorProfileResponse is the profile fragment embedded in UserResponse
type DoctorProfileResponse struct {
	LicenseNumber   string          `json:"license_number"`
	Specialty       string          `json:"specialty"`
	PhoneNumber     string          `json:"phone_number,omitempty"`
	Address         string          `json:"address,omitempty"`
	ConsultationFee decimal.Decimal `json:"consultation_fee"`
	Biography       string          `json:"biography,omitempty"`
}
