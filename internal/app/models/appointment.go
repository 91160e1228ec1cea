package models

import "careportal-service/internal/pkg/constvars"

// AppointmentActions lists the decisions a doctor may still take. Accepted and
// rejected appointments are terminal.
func AppointmentActions(status string) []string {
	if status == constvars.AppointmentStatusPending {
		return []string{constvars.AppointmentStatusAccepted, constvars.AppointmentStatusRejected}
	}
	return []string{}
}

func IsValidDecision(status string) bool {
	return status == constvars.AppointmentStatusAccepted || status == constvars.AppointmentStatusRejected
}
