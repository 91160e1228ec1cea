package constvars

// Validation messages mapper
var CustomValidationErrorMessages = map[string]string{
	"required": "is required",
	"email":    "must be a valid email",
	"numeric":  "must be a number",
	"oneof":    "must be one of [%s]",
	"gte":      "must be greater than or equal to %s",
	"lte":      "must be less than or equal to %s",
	"datetime": "must be a date in YYYY-MM-DD format",
	"yes_no":   "must be either 'yes' or 'no'",
	"role":     "must be either 'patient' or 'doctor'",
}

// Tags that require parameter substitution
var TagsWithParams = map[string]bool{
	"oneof": true,
	"gte":   true,
	"lte":   true,
}

// Error messages for clients
const (
	ErrClientCannotProcessRequest          = "cannot process request"
	ErrClientSomethingWrongWithApplication = "something went wrong"
	ErrClientUnauthorized                  = "Unauthorized"
	ErrClientRequestFailed                 = "Request failed (%d)"
	ErrClientLoginFailed                   = "Login failed (%d)"
	ErrClientSignupFailed                  = "Signup failed (%d)"
	ErrClientNetworkError                  = "Network error: %s"
	ErrClientInvalidTransition             = "invalid dashboard transition"
	ErrClientLoadProfileFailed             = "Failed to load profile"
	ErrClientCreateAppointmentFailed       = "Failed to create appointment request"
	ErrClientCSRFInvalid                   = "invalid or missing CSRF token"
	ErrClientTooManyRequests               = "too many requests, try again shortly"

	ErrClientPasswordsDoNotMatch = "Passwords do not match."
	ErrClientPasswordNeeds       = "Password needs: %s"
	ErrClientSelectRole          = "Select a role."
	ErrClientFillRequiredFields  = "Please fill all required fields correctly."
	ErrClientEnterDoctorEmail    = "Please enter doctor's email address"
	ErrClientSelectDate          = "Please select a date"
	ErrClientSelectTimeSlot      = "Please select a time slot"
	ErrClientEnterPatientEmail   = "Enter a patient email first."
	ErrClientEnterNoteText       = "Write a note first."
	ErrClientInvalidStatusFilter = "status must be one of pending, accepted, rejected, all"
	ErrClientInvalidDecision     = "status must be 'accepted' or 'rejected'"
)

// Error messages for developers
const (
	ErrDevValidationFailed          = "validation failed"
	ErrDevCannotParseJSON           = "cannot parse JSON"
	ErrDevCannotMarshalJSON         = "cannot marshal JSON"
	ErrDevCreateHTTPRequest         = "failed to create HTTP request"
	ErrDevSendHTTPRequest           = "failed to send HTTP request"
	ErrDevDecodeResponse            = "failed to decode upstream response"
	ErrDevUpstreamUnauthorized      = "upstream responded 401, session cleared"
	ErrDevUpstreamNotFound          = "upstream responded 404 on %s"
	ErrDevUpstreamStatus            = "upstream responded %d on %s"
	ErrDevInvalidTransition         = "transition %s is not allowed from %s"
	ErrDevSessionTokenInvalid       = "session cookie is invalid"
	ErrDevSessionTokenGenerate      = "failed to sign session cookie"
	ErrDevSessionSigningMethod      = "unexpected session cookie signing method"
	ErrDevSessionStoreGet           = "failed to read session store"
	ErrDevSessionStoreSet           = "failed to write session store"
	ErrDevSessionStoreClear         = "failed to clear session store"
	ErrDevSessionMissingFromContext = "no session bound to request context"
	ErrDevUnknownSessionBackend     = "unknown session backend %q"
	ErrDevRedisClientRequired       = "session backend %q requires a redis client"
	ErrDevCSRFInvalid               = "CSRF validation failed"
	ErrDevRateLimited               = "rate limit exceeded for %s"
	ErrDevRecoveredPanic            = "recovered panic on %s %s"
)
