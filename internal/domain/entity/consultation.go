package entity

import (
	"time"

	"github.com/google/uuid"
)

// CancelReason explains why a consultation was canceled
type CancelReason string

const (
	CancelReasonPatientGaveUp  CancelReason = "patient_gave_up"
	CancelReasonDoctorCanceled CancelReason = "doctor_canceled"
	CancelReasonOther          CancelReason = "other"
)

// Consultation is an appointment linking one patient and one doctor at a
// given date/time. A doctor or patient holds at most one non-canceled
// consultation per slot; the partial unique indexes in the schema enforce
// this even under concurrent booking.
type Consultation struct {
	ID           uuid.UUID    `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	PatientID    uuid.UUID    `gorm:"type:uuid;not null;index" json:"patient_id"`
	DoctorID     uuid.UUID    `gorm:"type:uuid;not null;index" json:"doctor_id"`
	ScheduledAt  time.Time    `gorm:"type:timestamptz;not null;index" json:"scheduled_at"`
	Canceled     bool         `gorm:"not null;default:false;index" json:"canceled"`
	CancelReason CancelReason `gorm:"type:varchar(30)" json:"cancel_reason,omitempty"`
	CreatedAt    time.Time    `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt    time.Time    `gorm:"autoUpdateTime" json:"updated_at"`

	// Relationships
	Patient PatientProfile `gorm:"foreignKey:PatientID" json:"patient,omitempty"`
	Doctor  DoctorProfile  `gorm:"foreignKey:DoctorID" json:"doctor,omitempty"`
}

func (Consultation) TableName() string {
	return "consultations"
}

// Cancel marks the consultation as canceled with the given reason
func (c *Consultation) Cancel(reason CancelReason) {
	c.Canceled = true
	c.CancelReason = reason
}
