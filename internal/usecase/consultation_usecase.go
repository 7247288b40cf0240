package usecase

import (
	"context"
	"errors"
	"time"

	"hospital-management-api/internal/converter"
	"hospital-management-api/internal/delivery/dto"
	"hospital-management-api/internal/delivery/http/middleware"
	"hospital-management-api/internal/domain/entity"
	"hospital-management-api/internal/domain/repository"
	"hospital-management-api/internal/service"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

// MinScheduleAdvance is the minimum lead time between booking and the
// consultation itself.
const MinScheduleAdvance = 30 * time.Minute

var (
	ErrScheduledTooSoon        = errors.New("consultation must be scheduled at least 30 minutes in advance")
	ErrPatientSelectorRequired = errors.New("patient_id is required")
	ErrPatientInactive         = errors.New("this patient is not active")
	ErrPatientNotFree          = errors.New("patient already has a consultation at this time")
	ErrDoctorSelectorRequired  = errors.New("either doctor_id or specialty is required")
	ErrDoctorNotFree           = errors.New("doctor already has a consultation at this time")
	ErrNoFreeDoctor            = errors.New("no free doctor available for this specialty at this time")
	ErrConsultationNotFound    = errors.New("consultation not found")
	ErrConsultationCanceled    = errors.New("consultation is already canceled")
	ErrNotConsultationOwner    = errors.New("consultation does not belong to this patient")
)

type ConsultationUsecase interface {
	Create(ctx context.Context, req *dto.CreateConsultationRequest) (*dto.ConsultationResponse, error)
	Get(ctx context.Context, id uuid.UUID) (*dto.ConsultationResponse, error)
	List(ctx context.Context, page, limit int) (*dto.ConsultationListResponse, int64, error)
	Cancel(ctx context.Context, id uuid.UUID, req *dto.CancelConsultationRequest) (*dto.ConsultationResponse, error)
}

type consultationUsecase struct {
	db                 *gorm.DB
	log                *logrus.Logger
	consultationRepo   repository.ConsultationRepository
	doctorProfileRepo  repository.DoctorProfileRepository
	patientProfileRepo repository.PatientProfileRepository
	auditService       service.AuditService
}

func NewConsultationUsecase(
	db *gorm.DB,
	log *logrus.Logger,
	consultationRepo repository.ConsultationRepository,
	doctorProfileRepo repository.DoctorProfileRepository,
	patientProfileRepo repository.PatientProfileRepository,
	auditService service.AuditService,
) ConsultationUsecase {
	return &consultationUsecase{
		db:                 db,
		log:                log,
		consultationRepo:   consultationRepo,
		doctorProfileRepo:  doctorProfileRepo,
		patientProfileRepo: patientProfileRepo,
		auditService:       auditService,
	}
}

// Create validates and books a consultation. Patients book for themselves;
// admins must name the patient. The doctor comes from an explicit doctor_id
// or is picked among the free doctors of the requested specialty. The
// pre-checks here give friendly errors, while the partial unique indexes on
// the consultations table settle concurrent bookings of the same slot.
func (u *consultationUsecase) Create(ctx context.Context, req *dto.CreateConsultationRequest) (*dto.ConsultationResponse, error) {
	scheduledAt, err := time.Parse(time.RFC3339, req.ScheduledAt)
	if err != nil {
		return nil, ErrInvalidDateFormat
	}
	if time.Until(scheduledAt) < MinScheduleAdvance {
		return nil, ErrScheduledTooSoon
	}

	patientID, err := u.resolvePatientID(ctx, req)
	if err != nil {
		return nil, err
	}

	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	patient, err := u.patientProfileRepo.FindByUserID(tx, patientID)
	if err != nil {
		u.log.Warnf("Failed to find patient profile: %+v", err)
		return nil, err
	}
	if patient == nil {
		return nil, ErrPatientNotFound
	}
	if !patient.User.Active() {
		return nil, ErrPatientInactive
	}

	existing, err := u.consultationRepo.FindByPatientAndTime(tx, patientID, scheduledAt)
	if err != nil {
		u.log.Warnf("Failed to check patient schedule: %+v", err)
		return nil, err
	}
	if existing != nil {
		return nil, ErrPatientNotFree
	}

	doctor, err := u.selectDoctor(tx, req, scheduledAt)
	if err != nil {
		return nil, err
	}

	consultation := &entity.Consultation{
		PatientID:   patientID,
		DoctorID:    doctor.UserID,
		ScheduledAt: scheduledAt,
	}
	if err := u.consultationRepo.Create(tx, consultation); err != nil {
		if isDuplicateKeyError(err, "uq_consultations_doctor_slot") {
			return nil, ErrDoctorNotFree
		}
		if isDuplicateKeyError(err, "uq_consultations_patient_slot") {
			return nil, ErrPatientNotFree
		}
		if isForeignKeyError(err, "doctor") {
			return nil, ErrDoctorNotFound
		}
		if isForeignKeyError(err, "patient") {
			return nil, ErrPatientNotFound
		}
		u.log.Warnf("Failed to create consultation: %+v", err)
		return nil, err
	}

	ctxUserID, _ := middleware.GetUserIDFromContext(ctx)
	if err := u.auditService.LogCreate(ctx, tx, &ctxUserID, entity.AuditActionConsultationCreate, "consultation", consultation.ID.String(), converter.ConsultationToResponse(consultation)); err != nil {
		u.log.Warnf("Failed to create audit log: %+v", err)
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return nil, err
	}

	consultation.Doctor = *doctor
	consultation.Patient = *patient
	return converter.ConsultationToResponse(consultation), nil
}

// resolvePatientID decides who the consultation is for. Non-admin callers
// always act as themselves regardless of the request body.
func (u *consultationUsecase) resolvePatientID(ctx context.Context, req *dto.CreateConsultationRequest) (uuid.UUID, error) {
	roleID, _ := middleware.GetRoleIDFromContext(ctx)
	if roleID == entity.RoleIDAdmin {
		if req.PatientID == nil {
			return uuid.Nil, ErrPatientSelectorRequired
		}
		return *req.PatientID, nil
	}

	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		return uuid.Nil, ErrPatientSelectorRequired
	}
	return userID, nil
}

// selectDoctor resolves the doctor either by explicit id or by picking a
// free one of the requested specialty. When both are sent, the explicit id
// wins and the specialty only has to match it.
func (u *consultationUsecase) selectDoctor(tx *gorm.DB, req *dto.CreateConsultationRequest, at time.Time) (*entity.DoctorProfile, error) {
	if req.DoctorID != nil {
		doctor, err := u.doctorProfileRepo.FindByUserID(tx, *req.DoctorID)
		if err != nil {
			u.log.Warnf("Failed to find doctor profile: %+v", err)
			return nil, err
		}
		if doctor == nil {
			return nil, ErrDoctorNotFound
		}
		if !doctor.User.Active() {
			return nil, ErrDoctorInactive
		}
		if req.Specialty != "" && doctor.Specialty != entity.Specialty(req.Specialty) {
			return nil, ErrDoctorNotFound
		}
		existing, err := u.consultationRepo.FindByDoctorAndTime(tx, doctor.UserID, at)
		if err != nil {
			u.log.Warnf("Failed to check doctor schedule: %+v", err)
			return nil, err
		}
		if existing != nil {
			return nil, ErrDoctorNotFree
		}
		return doctor, nil
	}

	if req.Specialty == "" {
		return nil, ErrDoctorSelectorRequired
	}

	doctor, err := u.doctorProfileRepo.FindOneFreeBySpecialty(tx, entity.Specialty(req.Specialty), at)
	if err != nil {
		u.log.Warnf("Failed to pick a free doctor: %+v", err)
		return nil, err
	}
	if doctor == nil {
		return nil, ErrNoFreeDoctor
	}
	return doctor, nil
}

func (u *consultationUsecase) Get(ctx context.Context, id uuid.UUID) (*dto.ConsultationResponse, error) {
	consultation, err := u.findOwned(ctx, u.db.WithContext(ctx), id)
	if err != nil {
		return nil, err
	}
	return converter.ConsultationToResponse(consultation), nil
}

// List is role scoped: patients see their own consultations, admins see all.
func (u *consultationUsecase) List(ctx context.Context, page, limit int) (*dto.ConsultationListResponse, int64, error) {
	var (
		consultations []entity.Consultation
		total         int64
		err           error
	)

	roleID, _ := middleware.GetRoleIDFromContext(ctx)
	if roleID == entity.RoleIDAdmin {
		consultations, total, err = u.consultationRepo.FindPage(u.db.WithContext(ctx), page, limit)
	} else {
		userID, _ := middleware.GetUserIDFromContext(ctx)
		consultations, total, err = u.consultationRepo.FindPageByPatientID(u.db.WithContext(ctx), userID, page, limit)
	}
	if err != nil {
		u.log.Warnf("Failed to find consultations: %+v", err)
		return nil, 0, err
	}

	return &dto.ConsultationListResponse{
		Consultations: converter.ConsultationsToResponses(consultations),
	}, total, nil
}

func (u *consultationUsecase) Cancel(ctx context.Context, id uuid.UUID, req *dto.CancelConsultationRequest) (*dto.ConsultationResponse, error) {
	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	consultation, err := u.findOwned(ctx, tx, id)
	if err != nil {
		return nil, err
	}
	if consultation.Canceled {
		return nil, ErrConsultationCanceled
	}

	oldValue := converter.ConsultationToResponse(consultation)

	consultation.Cancel(entity.CancelReason(req.Reason))
	if err := u.consultationRepo.Update(tx, consultation); err != nil {
		u.log.Warnf("Failed to cancel consultation: %+v", err)
		return nil, err
	}

	ctxUserID, _ := middleware.GetUserIDFromContext(ctx)
	if err := u.auditService.LogUpdate(ctx, tx, &ctxUserID, entity.AuditActionConsultationCancel, "consultation", id.String(), oldValue, converter.ConsultationToResponse(consultation)); err != nil {
		u.log.Warnf("Failed to create audit log: %+v", err)
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return nil, err
	}

	return converter.ConsultationToResponse(consultation), nil
}

// findOwned loads a consultation and enforces ownership for non-admins.
func (u *consultationUsecase) findOwned(ctx context.Context, db *gorm.DB, id uuid.UUID) (*entity.Consultation, error) {
	consultation, err := u.consultationRepo.FindByID(db, id)
	if err != nil {
		u.log.Warnf("Failed to find consultation: %+v", err)
		return nil, err
	}
	if consultation == nil {
		return nil, ErrConsultationNotFound
	}

	roleID, _ := middleware.GetRoleIDFromContext(ctx)
	if roleID != entity.RoleIDAdmin {
		userID, _ := middleware.GetUserIDFromContext(ctx)
		if consultation.PatientID != userID {
			return nil, ErrNotConsultationOwner
		}
	}
	return consultation, nil
}
