package responses

type Appointment struct {
	ID            string   `json:"_id"`
	DoctorEmail   string   `json:"doctor_email"`
	PatientEmail  string   `json:"patient_email"`
	RequestedTime string   `json:"requested_time"`
	Status        string   `json:"status"`
	Reason        string   `json:"reason,omitempty"`
	CreatedAt     string   `json:"created_at,omitempty"`
	UpdatedAt     string   `json:"updated_at,omitempty"`
	Actions       []string `json:"actions"`
}

type AppointmentList struct {
	Items []Appointment `json:"items"`
}

type BackendAppointmentCreated struct {
	Message       string `json:"message"`
	AppointmentID string `json:"appointment_id"`
}
