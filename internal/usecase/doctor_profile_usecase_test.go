package usecase_test

import (
	"context"
	"testing"

	"hospital-management-api/internal/delivery/dto"
	"hospital-management-api/internal/domain/entity"
	"hospital-management-api/internal/usecase"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func newDoctorFixture(t *testing.T) (usecase.DoctorProfileUsecase, *MockDoctorProfileRepository, *MockUserRepository, *MockAuditService, *MockTokenStore, sqlmock.Sqlmock) {
	db, dbMock := newTestDB(t)
	doctorRepo := new(MockDoctorProfileRepository)
	userRepo := new(MockUserRepository)
	auditService := new(MockAuditService)
	tokenStore := new(MockTokenStore)

	uc := usecase.NewDoctorProfileUsecase(db, testLogger(), doctorRepo, userRepo, auditService, tokenStore)
	return uc, doctorRepo, userRepo, auditService, tokenStore, dbMock
}

func createDoctorRequest() *dto.CreateDoctorRequest {
	return &dto.CreateDoctorRequest{
		Email:           "dr.house@example.com",
		Password:        "secret123",
		FullName:        "Gregory House",
		LicenseNumber:   "CRM-12345",
		Specialty:       string(entity.SpecialtyCardiology),
		ConsultationFee: "250.00",
	}
}

func TestCreateDoctor(t *testing.T) {
	t.Run("creates user and profile with hashed password", func(t *testing.T) {
		uc, doctorRepo, _, auditService, _, dbMock := newDoctorFixture(t)
		dbMock.ExpectBegin()
		dbMock.ExpectCommit()

		doctorRepo.On("Create", mock.Anything, mock.MatchedBy(func(p *entity.DoctorProfile) bool {
			return p.LicenseNumber == "CRM-12345" &&
				p.Specialty == entity.SpecialtyCardiology &&
				p.ConsultationFee.Equal(decimal.RequireFromString("250.00")) &&
				p.User.RoleID == entity.RoleIDDoctor &&
				p.User.Active() &&
				bcrypt.CompareHashAndPassword([]byte(p.User.Password), []byte("secret123")) == nil
		})).Return(nil)
		auditService.On("LogCreate", mock.Anything, mock.Anything, mock.Anything, entity.AuditActionDoctorCreate, "doctor_profile", mock.Anything, mock.Anything).
			Return(nil)

		doctor, err := uc.CreateDoctor(context.Background(), createDoctorRequest())

		require.NoError(t, err)
		assert.Equal(t, "CRM-12345", doctor.LicenseNumber)
		doctorRepo.AssertExpectations(t)
		auditService.AssertExpectations(t)
	})

	t.Run("rejects a negative fee", func(t *testing.T) {
		uc, _, _, _, _, dbMock := newDoctorFixture(t)
		dbMock.ExpectBegin()
		dbMock.ExpectRollback()

		req := createDoctorRequest()
		req.ConsultationFee = "-10"

		_, err := uc.CreateDoctor(context.Background(), req)

		assert.ErrorIs(t, err, usecase.ErrInvalidFee)
	})

	t.Run("duplicate license number", func(t *testing.T) {
		uc, doctorRepo, _, _, _, dbMock := newDoctorFixture(t)
		dbMock.ExpectBegin()
		dbMock.ExpectRollback()

		doctorRepo.On("Create", mock.Anything, mock.Anything).
			Return(&pgconn.PgError{Code: "23505", ConstraintName: "doctor_profiles_license_number_key"})

		_, err := uc.CreateDoctor(context.Background(), createDoctorRequest())

		assert.ErrorIs(t, err, usecase.ErrLicenseExists)
	})

	t.Run("duplicate email", func(t *testing.T) {
		uc, doctorRepo, _, _, _, dbMock := newDoctorFixture(t)
		dbMock.ExpectBegin()
		dbMock.ExpectRollback()

		doctorRepo.On("Create", mock.Anything, mock.Anything).
			Return(&pgconn.PgError{Code: "23505", ConstraintName: "users_email_key"})

		_, err := uc.CreateDoctor(context.Background(), createDoctorRequest())

		assert.ErrorIs(t, err, usecase.ErrDoctorEmailExists)
	})
}

func TestUpdateDoctor(t *testing.T) {
	doctorID := uuid.New()

	t.Run("not found", func(t *testing.T) {
		uc, doctorRepo, _, _, _, dbMock := newDoctorFixture(t)
		dbMock.ExpectBegin()
		dbMock.ExpectRollback()

		doctorRepo.On("FindByUserID", mock.Anything, doctorID).Return(nil, nil)

		_, err := uc.UpdateDoctor(context.Background(), doctorID, &dto.UpdateDoctorRequest{FullName: "New Name"})

		assert.ErrorIs(t, err, usecase.ErrDoctorNotFound)
	})

	t.Run("applies only the provided fields", func(t *testing.T) {
		uc, doctorRepo, _, auditService, _, dbMock := newDoctorFixture(t)
		dbMock.ExpectBegin()
		dbMock.ExpectCommit()

		existing := &entity.DoctorProfile{
			UserID:          doctorID,
			LicenseNumber:   "CRM-12345",
			Specialty:       entity.SpecialtyCardiology,
			ConsultationFee: decimal.RequireFromString("250.00"),
			User:            activeUser(),
		}
		existing.User.FullName = "Gregory House"

		doctorRepo.On("FindByUserID", mock.Anything, doctorID).Return(existing, nil)
		doctorRepo.On("Update", mock.Anything, mock.MatchedBy(func(p *entity.DoctorProfile) bool {
			return p.ConsultationFee.Equal(decimal.RequireFromString("300.00")) &&
				p.LicenseNumber == "CRM-12345" &&
				p.User.FullName == "Gregory House"
		})).Return(nil)
		auditService.On("LogUpdate", mock.Anything, mock.Anything, mock.Anything, entity.AuditActionDoctorUpdate, "doctor_profile", doctorID.String(), mock.Anything, mock.Anything).
			Return(nil)

		doctor, err := uc.UpdateDoctor(context.Background(), doctorID, &dto.UpdateDoctorRequest{ConsultationFee: "300.00"})

		require.NoError(t, err)
		assert.True(t, doctor.ConsultationFee.Equal(decimal.RequireFromString("300.00")))
		doctorRepo.AssertExpectations(t)
	})
}

func TestDeactivateDoctor(t *testing.T) {
	doctorID := uuid.New()

	t.Run("flags the user inactive and revokes sessions", func(t *testing.T) {
		uc, doctorRepo, userRepo, auditService, tokenStore, dbMock := newDoctorFixture(t)
		dbMock.ExpectBegin()
		dbMock.ExpectCommit()

		doctorRepo.On("FindByUserID", mock.Anything, doctorID).
			Return(&entity.DoctorProfile{UserID: doctorID, User: activeUser()}, nil)
		userRepo.On("Update", mock.Anything, mock.MatchedBy(func(u *entity.User) bool {
			return !u.Active()
		})).Return(nil)
		auditService.On("LogDelete", mock.Anything, mock.Anything, mock.Anything, entity.AuditActionDoctorDeactivate, "doctor_profile", doctorID.String(), mock.Anything).
			Return(nil)
		tokenStore.On("RevokeAll", mock.Anything, doctorID.String()).Return(nil)

		err := uc.DeactivateDoctor(context.Background(), doctorID)

		require.NoError(t, err)
		userRepo.AssertExpectations(t)
		tokenStore.AssertExpectations(t)
	})

	t.Run("already deactivated", func(t *testing.T) {
		uc, doctorRepo, _, _, _, dbMock := newDoctorFixture(t)
		dbMock.ExpectBegin()
		dbMock.ExpectRollback()

		doctorRepo.On("FindByUserID", mock.Anything, doctorID).
			Return(&entity.DoctorProfile{UserID: doctorID, User: inactiveUser()}, nil)

		err := uc.DeactivateDoctor(context.Background(), doctorID)

		assert.ErrorIs(t, err, usecase.ErrDoctorAlreadyInactive)
	})

	t.Run("not found", func(t *testing.T) {
		uc, doctorRepo, _, _, _, dbMock := newDoctorFixture(t)
		dbMock.ExpectBegin()
		dbMock.ExpectRollback()

		doctorRepo.On("FindByUserID", mock.Anything, doctorID).Return(nil, nil)

		err := uc.DeactivateDoctor(context.Background(), doctorID)

		assert.ErrorIs(t, err, usecase.ErrDoctorNotFound)
	})
}

func TestListDoctors(t *testing.T) {
	uc, doctorRepo, _, _, _, _ := newDoctorFixture(t)

	doctorRepo.On("FindPage", mock.Anything, 2, 10).
		Return([]entity.DoctorProfile{{UserID: uuid.New()}}, int64(11), nil)

	result, total, err := uc.ListDoctors(context.Background(), 2, 10)

	require.NoError(t, err)
	assert.Equal(t, int64(11), total)
	assert.Len(t, result.Doctors, 1)
}
