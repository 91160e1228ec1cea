package config

type InternalConfig struct {
	App     App
	Backend Backend
	Session Session
	JWT     JWT
	CSRF    CSRF
}

type App struct {
	Env                string
	Port               string
	Version            string
	MaxRequests        int
	ShutdownTimeout    int
	CORSAllowedOrigins []string
}

type Backend struct {
	// BaseUrl is the upstream REST backend every portal call is forwarded to.
	BaseUrl string
}

type Session struct {
	// Backend selects the session store: "redis" or "memory".
	Backend      string
	CookieName   string
	TTLInHours   int
	CookieSecure bool
	// SweepCronSpec schedules the purge of expired memory sessions.
	SweepCronSpec string
}

type JWT struct {
	Secret string
}

type CSRF struct {
	// AuthKey enables CSRF protection on form routes when non-empty. Must be 32 bytes.
	AuthKey string
}
