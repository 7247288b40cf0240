package converter

import (
	"hospital-management-api/internal/delivery/dto"
	"hospital-management-api/internal/domain/entity"
)

// PatientProfileToResponse converts a PatientProfile entity to PatientResponse DTO
func PatientProfileToResponse(profile *entity.PatientProfile) *dto.PatientResponse {
	if profile == nil {
		return nil
	}

	return &dto.PatientResponse{
		ID:                  profile.UserID,
		Email:               profile.User.Email,
		FullName:            profile.User.FullName,
		MedicalRecordNumber: profile.MedicalRecordNumber,
		PhoneNumber:         profile.PhoneNumber,
		DateOfBirth:         profile.DateOfBirth.Format("2006-01-02"),
		Gender:              profile.Gender,
		Address:             profile.Address,
		IsActive:            profile.User.IsActive,
		CreatedAt:           profile.User.CreatedAt,
		UpdatedAt:           profile.User.UpdatedAt,
	}
}

// PatientProfilesToResponses converts a slice of PatientProfile entities to
// slice of PatientResponse DTOs
func PatientProfilesToResponses(profiles []entity.PatientProfile) []dto.PatientResponse {
	responses := make([]dto.PatientResponse, len(profiles))
	for i := range profiles {
		responses[i] = *PatientProfileToResponse(&profiles[i])
	}
	return responses
}
