package converter

import (
	"hospital-management-api/internal/delivery/dto"
	"hospital-management-api/internal/domain/entity"

	"github.com/google/uuid"
)

// ConsultationToResponse converts a Consultation entity to ConsultationResponse DTO
func ConsultationToResponse(consultation *entity.Consultation) *dto.ConsultationResponse {
	if consultation == nil {
		return nil
	}

	response := &dto.ConsultationResponse{
		ID:           consultation.ID,
		PatientID:    consultation.PatientID,
		DoctorID:     consultation.DoctorID,
		ScheduledAt:  consultation.ScheduledAt,
		Canceled:     consultation.Canceled,
		CancelReason: string(consultation.CancelReason),
		CreatedAt:    consultation.CreatedAt,
		UpdatedAt:    consultation.UpdatedAt,
	}

	// Include doctor/patient info when preloaded
	if consultation.Doctor.UserID != uuid.Nil {
		response.Doctor = DoctorProfileToResponse(&consultation.Doctor)
	}
	if consultation.Patient.UserID != uuid.Nil {
		response.Patient = PatientProfileToResponse(&consultation.Patient)
	}

	return response
}

// ConsultationsToResponses converts a slice of Consultation entities to
// slice of ConsultationResponse DTOs
func ConsultationsToResponses(consultations []entity.Consultation) []dto.ConsultationResponse {
	responses := make([]dto.ConsultationResponse, len(consultations))
	for i := range consultations {
		responses[i] = *ConsultationToResponse(&consultations[i])
	}
	return responses
}
