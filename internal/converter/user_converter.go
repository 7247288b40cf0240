package converter

import (
	"hospital-management-api/internal/delivery/dto"
	"hospital-management-api/internal/domain/entity"
)

// UserToResponse converts a User entity to UserResponse DTO
func UserToResponse(user *entity.User) *dto.UserResponse {
	if user == nil {
		return nil
	}

	resp := &dto.UserResponse{
		ID:        user.ID,
		Email:     user.Email,
		FullName:  user.FullName,
		Role:      user.Role.RoleName,
		IsActive:  user.IsActive,
		CreatedAt: user.CreatedAt,
		UpdatedAt: user.UpdatedAt,
	}

	if user.DoctorProfile != nil {
		resp.DoctorProfile = &dto.DoctorProfileResponse{
			LicenseNumber:   user.DoctorProfile.LicenseNumber,
			Specialty:       string(user.DoctorProfile.Specialty),
			PhoneNumber:     user.DoctorProfile.PhoneNumber,
			Address:         user.DoctorProfile.Address,
			ConsultationFee: user.DoctorProfile.ConsultationFee,
			Biography:       user.DoctorProfile.Biography,
		}
	}

	if user.PatientProfile != nil {
		resp.PatientProfile = &dto.PatientProfileResponse{
			MedicalRecordNumber: user.PatientProfile.MedicalRecordNumber,
			PhoneNumber:         user.PatientProfile.PhoneNumber,
			DateOfBirth:         user.PatientProfile.DateOfBirth.Format("2006-01-02"),
			Gender:              user.PatientProfile.Gender,
			Address:             user.PatientProfile.Address,
		}
	}

	return resp
}
