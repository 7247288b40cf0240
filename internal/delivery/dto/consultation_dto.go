package dto

import (
	"time"

	"github.com/google/uuid"
)

// Request DTOs

// CreateConsultationRequest books a consultation. Exactly one doctor
// selector is needed: a concrete doctor_id, or a specialty from which a
// free doctor is picked. PatientID is only honored for admin callers;
// patients always book for themselves.
type CreateConsultationRequest struct {
	PatientID   *uuid.UUID `json:"patient_id" validate:"omitempty"`
	DoctorID    *uuid.UUID `json:"doctor_id" validate:"omitempty"`
	Specialty   string     `json:"specialty" validate:"omitempty,oneof=orthopedics cardiology gynecology dermatology"`
	ScheduledAt string     `json:"scheduled_at" validate:"required"` // RFC 3339
}

type CancelConsultationRequest struct {
	Reason string `json:"reason" validate:"required,oneof=patient_gave_up doctor_canceled other"`
}

// Response DTOs

type ConsultationResponse struct {
	ID           uuid.UUID        `json:"id"`
	PatientID    uuid.UUID        `json:"patient_id"`
	DoctorID     uuid.UUID        `json:"doctor_id"`
	ScheduledAt  time.Time        `json:"scheduled_at"`
	Canceled     bool             `json:"canceled"`
	CancelReason string           `json:"cancel_reason,omitempty"`
	Doctor       *DoctorResponse  `json:"doctor,omitempty"`
	Patient      *PatientResponse `json:"patient,omitempty"`
	CreatedAt    time.Time        `json:"created_at"`
	UpdatedAt    time.Time        `json:"updated_at"`
}

type ConsultationListResponse struct {
	Consultations []ConsultationResponse `json:"consultations"`
}
