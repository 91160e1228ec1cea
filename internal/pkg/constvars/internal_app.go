package constvars

type ContextKey string

const (
	CONTEXT_REQUEST_ID_KEY           ContextKey = "request_id"
	CONTEXT_IS_CLIENT_REQUEST_ID_KEY ContextKey = "is_client_request_id"
	CONTEXT_SESSION_KEY              ContextKey = "session"
)

const (
	AppEnvDevelopment = "development"
	AppEnvProduction  = "production"
)

const (
	ServiceName = "careportal-service"
)

const (
	BookingFirstSlotHour = 9
	BookingLastSlotHour  = 16
	BookingDateLayout    = "2006-01-02"
)

const (
	ResponseUnknown = "unknown"
)
