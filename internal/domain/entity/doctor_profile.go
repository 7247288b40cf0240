package entity

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Specialty is the medical specialty a doctor practices
type Specialty string

const (
	SpecialtyOrthopedics Specialty = "orthopedics"
	SpecialtyCardiology  Specialty = "cardiology"
	SpecialtyGynecology  Specialty = "gynecology"
	SpecialtyDermatology Specialty = "dermatology"
)

// DoctorProfile represents doctor-specific profile data
type DoctorProfile struct {
	UserID          uuid.UUID       `gorm:"type:uuid;primaryKey" json:"user_id"`
	LicenseNumber   string          `gorm:"type:varchar(50);uniqueIndex;not null" json:"license_number"`
	Specialty       Specialty       `gorm:"type:varchar(50);not null;index" json:"specialty"`
	PhoneNumber     string          `gorm:"type:varchar(20)" json:"phone_number,omitempty"`
	Address         string          `gorm:"type:text" json:"address,omitempty"`
	ConsultationFee decimal.Decimal `gorm:"type:decimal(10,2);not null;default:0" json:"consultation_fee"`
	Biography       string          `gorm:"type:text" json:"biography,omitempty"`

	// Relationships
	User          User           `gorm:"foreignKey:UserID" json:"user,omitempty"`
	Consultations []Consultation `gorm:"foreignKey:DoctorID" json:"consultations,omitempty"`
}

func (DoctorProfile) TableName() string {
	return "doctor_profiles"
}
