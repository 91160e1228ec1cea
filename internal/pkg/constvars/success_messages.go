package constvars

const (
	LoginSuccessMessage            = "logged in"
	SignupSuccessMessage           = "account created"
	LogoutSuccessMessage           = "logged out"
	SurveySavedMessage             = "Saved!"
	AppointmentRequestedMessage    = "Appointment requested"
	AppointmentDecidedMessage      = "Appointment %s"
	NoteSavedMessage               = "Note saved"
	DashboardLoadedMessage         = "dashboard loaded"
	PredictionCompletedMessage     = "prediction completed"
	ValidationCheckedMessage       = "validation checked"
	RedirectingMessage             = "Redirecting.."
	ResponsePredictionPositive     = "POSITIVE"
	ResponsePredictionNegative     = "NEGATIVE"
)
