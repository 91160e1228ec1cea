package constvars

// Portal pages served by this gateway.
const (
	PathRoot      = "/"
	PathLogin     = "/login"
	PathSignup    = "/signup"
	PathLogout    = "/logout"
	PathDashboard = "/dashboard"
	PathPatient   = "/patient"
	PathDoctor    = "/doctor"
)

// Public page names returned to the client shell.
const (
	PageLogin  = "login"
	PageSignup = "signup"
)

// Upstream REST backend routes.
const (
	BackendAuthLogin    = "/auth/login"
	BackendAuthRegister = "/auth/register"
	BackendAuthMe       = "/auth/me"

	BackendPatientWelcome     = "/patients/"
	BackendPatientProfile     = "/patients/profile"
	BackendPatientNotes       = "/patients/notes"
	BackendPatientPredictions = "/patients/predictions"

	BackendDoctorWelcome         = "/doctors/"
	BackendDoctorNotes           = "/doctors/notes"
	BackendDoctorPatientNotes    = "/doctors/patients/%s/notes"
	BackendDoctorPredictionNotes = "/doctors/predictions/%s/notes"
	BackendDoctorPatientProfile  = "/doctors/patient-profile"

	BackendAppointments         = "/appointments/"
	BackendAppointmentsMine     = "/appointments/mine"
	BackendAppointmentsIncoming = "/appointments/incoming"
	BackendAppointmentStatus    = "/appointments/%s/status"

	BackendPredict = "/api/predict"
)

const (
	QueryParamEmail        = "email"
	QueryParamStatus       = "status"
	QueryParamPredictionID = "prediction_id"
	URLParamAppointmentID  = "appointment_id"
)
