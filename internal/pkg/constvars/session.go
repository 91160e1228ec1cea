package constvars

const (
	SessionKeyToken       = "token"
	SessionKeyRole        = "role"
	SessionKeyPatientView = "patient_view"
	SessionKeyDoctorView  = "doctor_view"
)

const (
	SessionBackendRedis  = "redis"
	SessionBackendMemory = "memory"

	SessionRedisKeyPrefix   = "careportal:session:"
	SessionClaimID          = "session_id"
	DefaultSessionSweepSpec = "@every 10m"
)

const (
	RolePatient = "patient"
	RoleDoctor  = "doctor"
)

const (
	AppointmentStatusPending  = "pending"
	AppointmentStatusAccepted = "accepted"
	AppointmentStatusRejected = "rejected"
	AppointmentStatusAll      = "all"
)
