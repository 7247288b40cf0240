package usecase_test

import (
	"context"
	"testing"
	"time"

	"hospital-management-api/internal/domain/entity"
	"hospital-management-api/pkg/jwt"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// newTestDB opens a GORM connection backed by sqlmock so transaction
// choreography (Begin/Commit/Rollback) can be asserted without Postgres.
func newTestDB(t *testing.T) (*gorm.DB, sqlmock.Sqlmock) {
	t.Helper()

	sqlDB, dbMock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { sqlDB.Close() })

	db, err := gorm.Open(postgres.New(postgres.Config{
		Conn:                 sqlDB,
		PreferSimpleProtocol: true,
	}), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	return db, dbMock
}

func testLogger() *logrus.Logger {
	log := logrus.New()
	log.SetLevel(logrus.PanicLevel)
	return log
}

type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) Create(db *gorm.DB, user *entity.User) error {
	args := m.Called(db, user)
	return args.Error(0)
}

func (m *MockUserRepository) FindByEmail(db *gorm.DB, email string) (*entity.User, error) {
	args := m.Called(db, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.User), args.Error(1)
}

func (m *MockUserRepository) FindByID(db *gorm.DB, id uuid.UUID) (*entity.User, error) {
	args := m.Called(db, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.User), args.Error(1)
}

func (m *MockUserRepository) Update(db *gorm.DB, user *entity.User) error {
	args := m.Called(db, user)
	return args.Error(0)
}

type MockRoleRepository struct {
	mock.Mock
}

func (m *MockRoleRepository) FindByName(db *gorm.DB, name string) (*entity.Role, error) {
	args := m.Called(db, name)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Role), args.Error(1)
}

type MockDoctorProfileRepository struct {
	mock.Mock
}

func (m *MockDoctorProfileRepository) Create(db *gorm.DB, profile *entity.DoctorProfile) error {
	args := m.Called(db, profile)
	return args.Error(0)
}

func (m *MockDoctorProfileRepository) FindByUserID(db *gorm.DB, userID uuid.UUID) (*entity.DoctorProfile, error) {
	args := m.Called(db, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.DoctorProfile), args.Error(1)
}

func (m *MockDoctorProfileRepository) FindPage(db *gorm.DB, page, limit int) ([]entity.DoctorProfile, int64, error) {
	args := m.Called(db, page, limit)
	if args.Get(0) == nil {
		return nil, args.Get(1).(int64), args.Error(2)
	}
	return args.Get(0).([]entity.DoctorProfile), args.Get(1).(int64), args.Error(2)
}

func (m *MockDoctorProfileRepository) FindOneFreeBySpecialty(db *gorm.DB, specialty entity.Specialty, at time.Time) (*entity.DoctorProfile, error) {
	args := m.Called(db, specialty, at)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.DoctorProfile), args.Error(1)
}

func (m *MockDoctorProfileRepository) Update(db *gorm.DB, profile *entity.DoctorProfile) error {
	args := m.Called(db, profile)
	return args.Error(0)
}

type MockPatientProfileRepository struct {
	mock.Mock
}

func (m *MockPatientProfileRepository) Create(db *gorm.DB, profile *entity.PatientProfile) error {
	args := m.Called(db, profile)
	return args.Error(0)
}

func (m *MockPatientProfileRepository) FindByUserID(db *gorm.DB, userID uuid.UUID) (*entity.PatientProfile, error) {
	args := m.Called(db, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.PatientProfile), args.Error(1)
}

func (m *MockPatientProfileRepository) FindPage(db *gorm.DB, page, limit int) ([]entity.PatientProfile, int64, error) {
	args := m.Called(db, page, limit)
	if args.Get(0) == nil {
		return nil, args.Get(1).(int64), args.Error(2)
	}
	return args.Get(0).([]entity.PatientProfile), args.Get(1).(int64), args.Error(2)
}

func (m *MockPatientProfileRepository) Update(db *gorm.DB, profile *entity.PatientProfile) error {
	args := m.Called(db, profile)
	return args.Error(0)
}

type MockConsultationRepository struct {
	mock.Mock
}

func (m *MockConsultationRepository) Create(db *gorm.DB, consultation *entity.Consultation) error {
	args := m.Called(db, consultation)
	return args.Error(0)
}

func (m *MockConsultationRepository) FindByID(db *gorm.DB, id uuid.UUID) (*entity.Consultation, error) {
	args := m.Called(db, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Consultation), args.Error(1)
}

func (m *MockConsultationRepository) FindByDoctorAndTime(db *gorm.DB, doctorID uuid.UUID, at time.Time) (*entity.Consultation, error) {
	args := m.Called(db, doctorID, at)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Consultation), args.Error(1)
}

func (m *MockConsultationRepository) FindByPatientAndTime(db *gorm.DB, patientID uuid.UUID, at time.Time) (*entity.Consultation, error) {
	args := m.Called(db, patientID, at)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Consultation), args.Error(1)
}

func (m *MockConsultationRepository) FindPage(db *gorm.DB, page, limit int) ([]entity.Consultation, int64, error) {
	args := m.Called(db, page, limit)
	if args.Get(0) == nil {
		return nil, args.Get(1).(int64), args.Error(2)
	}
	return args.Get(0).([]entity.Consultation), args.Get(1).(int64), args.Error(2)
}

func (m *MockConsultationRepository) FindPageByPatientID(db *gorm.DB, patientID uuid.UUID, page, limit int) ([]entity.Consultation, int64, error) {
	args := m.Called(db, patientID, page, limit)
	if args.Get(0) == nil {
		return nil, args.Get(1).(int64), args.Error(2)
	}
	return args.Get(0).([]entity.Consultation), args.Get(1).(int64), args.Error(2)
}

func (m *MockConsultationRepository) Update(db *gorm.DB, consultation *entity.Consultation) error {
	args := m.Called(db, consultation)
	return args.Error(0)
}

type MockAuditLogRepository struct {
	mock.Mock
}

func (m *MockAuditLogRepository) Create(db *gorm.DB, log *entity.AuditLog) error {
	args := m.Called(db, log)
	return args.Error(0)
}

func (m *MockAuditLogRepository) FindByID(db *gorm.DB, id int64) (*entity.AuditLog, error) {
	args := m.Called(db, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.AuditLog), args.Error(1)
}

func (m *MockAuditLogRepository) FindPage(db *gorm.DB, page, limit int) ([]entity.AuditLog, int64, error) {
	args := m.Called(db, page, limit)
	if args.Get(0) == nil {
		return nil, args.Get(1).(int64), args.Error(2)
	}
	return args.Get(0).([]entity.AuditLog), args.Get(1).(int64), args.Error(2)
}

type MockAuditService struct {
	mock.Mock
}

func (m *MockAuditService) LogCreate(ctx context.Context, tx *gorm.DB, userID *uuid.UUID, action, entityName, entityID string, newValue interface{}) error {
	args := m.Called(ctx, tx, userID, action, entityName, entityID, newValue)
	return args.Error(0)
}

func (m *MockAuditService) LogUpdate(ctx context.Context, tx *gorm.DB, userID *uuid.UUID, action, entityName, entityID string, oldValue, newValue interface{}) error {
	args := m.Called(ctx, tx, userID, action, entityName, entityID, oldValue, newValue)
	return args.Error(0)
}

func (m *MockAuditService) LogDelete(ctx context.Context, tx *gorm.DB, userID *uuid.UUID, action, entityName, entityID string, oldValue interface{}) error {
	args := m.Called(ctx, tx, userID, action, entityName, entityID, oldValue)
	return args.Error(0)
}

type MockTokenStore struct {
	mock.Mock
}

func (m *MockTokenStore) Store(ctx context.Context, userID, tokenID string, tokenType jwt.TokenType, ttl time.Duration) error {
	args := m.Called(ctx, userID, tokenID, tokenType, ttl)
	return args.Error(0)
}

func (m *MockTokenStore) Exists(ctx context.Context, userID, tokenID string, tokenType jwt.TokenType) (bool, error) {
	args := m.Called(ctx, userID, tokenID, tokenType)
	return args.Bool(0), args.Error(1)
}

func (m *MockTokenStore) Delete(ctx context.Context, userID, tokenID string, tokenType jwt.TokenType) error {
	args := m.Called(ctx, userID, tokenID, tokenType)
	return args.Error(0)
}

func (m *MockTokenStore) RevokeAll(ctx context.Context, userID string) error {
	args := m.Called(ctx, userID)
	return args.Error(0)
}
