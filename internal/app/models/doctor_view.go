package models

import "careportal-service/internal/pkg/constvars"

// DoctorView is the persisted search state of the doctor dashboard.
type DoctorView struct {
	PatientEmail string `json:"patient_email"`
	PredictionID string `json:"prediction_id"`
	StatusFilter string `json:"status_filter"`
}

func NewDoctorView() *DoctorView {
	return &DoctorView{StatusFilter: constvars.AppointmentStatusPending}
}

// IsValidStatusFilter reports whether filter is one of pending, accepted,
// rejected or all.
func IsValidStatusFilter(filter string) bool {
	switch filter {
	case constvars.AppointmentStatusPending,
		constvars.AppointmentStatusAccepted,
		constvars.AppointmentStatusRejected,
		constvars.AppointmentStatusAll:
		return true
	}
	return false
}
