package handler

import (
	"encoding/json"
	"net/http"

	"hospital-management-api/internal/delivery/dto"
	"hospital-management-api/internal/usecase"
	"hospital-management-api/pkg/response"
	"hospital-management-api/pkg/validator"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
)

type ConsultationHandler struct {
	consultationUsecase usecase.ConsultationUsecase
	validator           *validator.CustomValidator
}

func NewConsultationHandler(consultationUsecase usecase.ConsultationUsecase, validator *validator.CustomValidator) *ConsultationHandler {
	return &ConsultationHandler{
		consultationUsecase: consultationUsecase,
		validator:           validator,
	}
}

func (h *ConsultationHandler) CreateConsultation(w http.ResponseWriter, r *http.Request) {
	var req dto.CreateConsultationRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	consultation, err := h.consultationUsecase.Create(r.Context(), &req)
	if err != nil {
		switch err {
		case usecase.ErrInvalidDateFormat:
			response.Error(w, http.StatusBadRequest, "Invalid scheduled_at, use RFC 3339", nil)
		case usecase.ErrScheduledTooSoon:
			response.Error(w, http.StatusBadRequest, "Consultation must be scheduled at least 30 minutes in advance", nil)
		case usecase.ErrPatientSelectorRequired:
			response.Error(w, http.StatusBadRequest, "patient_id is required", nil)
		case usecase.ErrDoctorSelectorRequired:
			response.Error(w, http.StatusBadRequest, "Either doctor_id or specialty is required", nil)
		case usecase.ErrPatientNotFound:
			response.NotFound(w, "Patient not found")
		case usecase.ErrPatientInactive:
			response.Error(w, http.StatusConflict, "This patient is not active", nil)
		case usecase.ErrPatientNotFree:
			response.Error(w, http.StatusConflict, "Patient already has a consultation at this time", nil)
		case usecase.ErrDoctorNotFound:
			response.NotFound(w, "Doctor not found")
		case usecase.ErrDoctorInactive:
			response.Error(w, http.StatusConflict, "This doctor is not active", nil)
		case usecase.ErrDoctorNotFree:
			response.Error(w, http.StatusConflict, "Doctor already has a consultation at this time", nil)
		case usecase.ErrNoFreeDoctor:
			response.Error(w, http.StatusConflict, "No free doctor available for this specialty at this time", nil)
		default:
			response.InternalServerError(w, "Failed to create consultation")
		}
		return
	}

	response.Success(w, http.StatusCreated, "Consultation created successfully", consultation)
}

func (h *ConsultationHandler) GetConsultation(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	consultationID, err := uuid.Parse(vars["id"])
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid consultation ID", nil)
		return
	}

	consultation, err := h.consultationUsecase.Get(r.Context(), consultationID)
	if err != nil {
		switch err {
		case usecase.ErrConsultationNotFound:
			response.NotFound(w, "Consultation not found")
		case usecase.ErrNotConsultationOwner:
			response.Forbidden(w, "Consultation does not belong to you")
		default:
			response.InternalServerError(w, "Failed to get consultation")
		}
		return
	}

	response.Success(w, http.StatusOK, "Consultation retrieved successfully", consultation)
}

func (h *ConsultationHandler) GetAllConsultations(w http.ResponseWriter, r *http.Request) {
	page, limit := parsePagination(r)

	consultations, total, err := h.consultationUsecase.List(r.Context(), page, limit)
	if err != nil {
		response.InternalServerError(w, "Failed to get consultations")
		return
	}

	response.SuccessWithMeta(w, http.StatusOK, "Consultations retrieved successfully", consultations, response.NewMeta(page, limit, total))
}

func (h *ConsultationHandler) CancelConsultation(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	consultationID, err := uuid.Parse(vars["id"])
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid consultation ID", nil)
		return
	}

	var req dto.CancelConsultationRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	consultation, err := h.consultationUsecase.Cancel(r.Context(), consultationID, &req)
	if err != nil {
		switch err {
		case usecase.ErrConsultationNotFound:
			response.NotFound(w, "Consultation not found")
		case usecase.ErrNotConsultationOwner:
			response.Forbidden(w, "Consultation does not belong to you")
		case usecase.ErrConsultationCanceled:
			response.Error(w, http.StatusConflict, "Consultation is already canceled", nil)
		default:
			response.InternalServerError(w, "Failed to cancel consultation")
		}
		return
	}

	response.Success(w, http.StatusOK, "Consultation canceled successfully", consultation)
}
