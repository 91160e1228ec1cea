package constvars

const (
	LoggingRequestIDKey        = "request_id"
	LoggingSessionIDKey        = "session_id"
	LoggingMethodKey           = "method"
	LoggingEndpointKey         = "endpoint"
	LoggingStatusCodeKey       = "status_code"
	LoggingRemoteAddrKey       = "remote_addr"
	LoggingUserAgentKey        = "user_agent"
	LoggingQueryKey            = "query"
	LoggingDurationKey         = "duration"
	LoggingSuccessKey          = "success"
	LoggingRoleKey             = "role"
	LoggingModeKey             = "mode"
	LoggingEventKey            = "event"
	LoggingRedirectKey         = "redirect_to"
	LoggingPatientEmailKey     = "patient_email"
	LoggingAppointmentIDKey    = "appointment_id"
	LoggingStatusFilterKey     = "status_filter"
	LoggingPredictionIDKey     = "prediction_id"
	LoggingAppointmentCountKey = "appointment_count"
)
