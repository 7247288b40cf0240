package usecase_test

import (
	"context"
	"testing"

	"hospital-management-api/internal/delivery/dto"
	"hospital-management-api/internal/domain/entity"
	"hospital-management-api/internal/usecase"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newPatientFixture(t *testing.T) (usecase.PatientProfileUsecase, *MockPatientProfileRepository, *MockUserRepository, *MockAuditService, *MockTokenStore, sqlmock.Sqlmock) {
	db, dbMock := newTestDB(t)
	patientRepo := new(MockPatientProfileRepository)
	userRepo := new(MockUserRepository)
	auditService := new(MockAuditService)
	tokenStore := new(MockTokenStore)

	uc := usecase.NewPatientProfileUsecase(db, testLogger(), patientRepo, userRepo, auditService, tokenStore)
	return uc, patientRepo, userRepo, auditService, tokenStore, dbMock
}

func TestGetPatient(t *testing.T) {
	patientID := uuid.New()

	t.Run("found", func(t *testing.T) {
		uc, patientRepo, _, _, _, _ := newPatientFixture(t)
		patientRepo.On("FindByUserID", mock.Anything, patientID).
			Return(&entity.PatientProfile{UserID: patientID, MedicalRecordNumber: "MRN-0001", User: activeUser()}, nil)

		patient, err := uc.GetPatient(context.Background(), patientID)

		require.NoError(t, err)
		assert.Equal(t, "MRN-0001", patient.MedicalRecordNumber)
	})

	t.Run("not found", func(t *testing.T) {
		uc, patientRepo, _, _, _, _ := newPatientFixture(t)
		patientRepo.On("FindByUserID", mock.Anything, patientID).Return(nil, nil)

		_, err := uc.GetPatient(context.Background(), patientID)

		assert.ErrorIs(t, err, usecase.ErrPatientNotFound)
	})
}

func TestUpdatePatient(t *testing.T) {
	patientID := uuid.New()

	t.Run("updates contact fields only", func(t *testing.T) {
		uc, patientRepo, _, auditService, _, dbMock := newPatientFixture(t)
		dbMock.ExpectBegin()
		dbMock.ExpectCommit()

		existing := &entity.PatientProfile{
			UserID:              patientID,
			MedicalRecordNumber: "MRN-0001",
			PhoneNumber:         "1111111111",
			User:                activeUser(),
		}

		patientRepo.On("FindByUserID", mock.Anything, patientID).Return(existing, nil)
		patientRepo.On("Update", mock.Anything, mock.MatchedBy(func(p *entity.PatientProfile) bool {
			return p.PhoneNumber == "2222222222" && p.MedicalRecordNumber == "MRN-0001"
		})).Return(nil)
		auditService.On("LogUpdate", mock.Anything, mock.Anything, mock.Anything, entity.AuditActionPatientUpdate, "patient_profile", patientID.String(), mock.Anything, mock.Anything).
			Return(nil)

		patient, err := uc.UpdatePatient(context.Background(), patientID, &dto.UpdatePatientRequest{PhoneNumber: "2222222222"})

		require.NoError(t, err)
		assert.Equal(t, "2222222222", patient.PhoneNumber)
		patientRepo.AssertExpectations(t)
	})

	t.Run("not found", func(t *testing.T) {
		uc, patientRepo, _, _, _, dbMock := newPatientFixture(t)
		dbMock.ExpectBegin()
		dbMock.ExpectRollback()

		patientRepo.On("FindByUserID", mock.Anything, patientID).Return(nil, nil)

		_, err := uc.UpdatePatient(context.Background(), patientID, &dto.UpdatePatientRequest{})

		assert.ErrorIs(t, err, usecase.ErrPatientNotFound)
	})
}

func TestDeactivatePatient(t *testing.T) {
	patientID := uuid.New()

	t.Run("flags the user inactive and revokes sessions", func(t *testing.T) {
		uc, patientRepo, userRepo, auditService, tokenStore, dbMock := newPatientFixture(t)
		dbMock.ExpectBegin()
		dbMock.ExpectCommit()

		patientRepo.On("FindByUserID", mock.Anything, patientID).
			Return(&entity.PatientProfile{UserID: patientID, User: activeUser()}, nil)
		userRepo.On("Update", mock.Anything, mock.MatchedBy(func(u *entity.User) bool {
			return !u.Active()
		})).Return(nil)
		auditService.On("LogDelete", mock.Anything, mock.Anything, mock.Anything, entity.AuditActionPatientDeactivate, "patient_profile", patientID.String(), mock.Anything).
			Return(nil)
		tokenStore.On("RevokeAll", mock.Anything, patientID.String()).Return(nil)

		err := uc.DeactivatePatient(context.Background(), patientID)

		require.NoError(t, err)
		userRepo.AssertExpectations(t)
		tokenStore.AssertExpectations(t)
	})

	t.Run("already deactivated", func(t *testing.T) {
		uc, patientRepo, _, _, _, dbMock := newPatientFixture(t)
		dbMock.ExpectBegin()
		dbMock.ExpectRollback()

		patientRepo.On("FindByUserID", mock.Anything, patientID).
			Return(&entity.PatientProfile{UserID: patientID, User: inactiveUser()}, nil)

		err := uc.DeactivatePatient(context.Background(), patientID)

		assert.ErrorIs(t, err, usecase.ErrPatientAlreadyInactive)
	})
}
