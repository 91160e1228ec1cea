package routers

import (
	"bytes"
	"careportal-service/internal/app/config"
	"careportal-service/internal/app/contracts"
	"careportal-service/internal/app/delivery/http/controllers"
	"careportal-service/internal/app/delivery/http/middlewares"
	"careportal-service/internal/app/services/shared/session"
	"careportal-service/internal/pkg/constvars"
	"careportal-service/internal/pkg/dto/requests"
	"careportal-service/internal/pkg/dto/responses"
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type MockAuthUsecase struct {
	mock.Mock
}

func (m *MockAuthUsecase) Login(ctx context.Context, session contracts.Session, request *requests.Login) (*responses.Navigation, error) {
	args := m.Called(ctx, session, request)
	navigation, _ := args.Get(0).(*responses.Navigation)
	return navigation, args.Error(1)
}

func (m *MockAuthUsecase) Signup(ctx context.Context, request *requests.Signup) (*responses.Navigation, error) {
	args := m.Called(ctx, request)
	navigation, _ := args.Get(0).(*responses.Navigation)
	return navigation, args.Error(1)
}

func (m *MockAuthUsecase) CheckSignup(request *requests.SignupCheck) *responses.SignupCheck {
	args := m.Called(request)
	return args.Get(0).(*responses.SignupCheck)
}

func (m *MockAuthUsecase) Logout(ctx context.Context, session contracts.Session) (*responses.Navigation, error) {
	args := m.Called(ctx, session)
	navigation, _ := args.Get(0).(*responses.Navigation)
	return navigation, args.Error(1)
}

type MockRoleRouter struct {
	mock.Mock
}

func (m *MockRoleRouter) Resolve(ctx context.Context, session contracts.Session) *responses.Navigation {
	args := m.Called(ctx, session)
	return args.Get(0).(*responses.Navigation)
}

type MockPatientDashboardUsecase struct {
	mock.Mock
}

func (m *MockPatientDashboardUsecase) dashboard(args mock.Arguments) (*responses.PatientDashboard, error) {
	dashboard, _ := args.Get(0).(*responses.PatientDashboard)
	return dashboard, args.Error(1)
}

func (m *MockPatientDashboardUsecase) Mount(ctx context.Context, session contracts.Session) (*responses.PatientDashboard, error) {
	return m.dashboard(m.Called(ctx, session))
}

func (m *MockPatientDashboardUsecase) SubmitSurvey(ctx context.Context, session contracts.Session, form *requests.SurveyForm) (*responses.PatientDashboard, error) {
	return m.dashboard(m.Called(ctx, session, form))
}

func (m *MockPatientDashboardUsecase) BeginEdit(ctx context.Context, session contracts.Session) (*responses.PatientDashboard, error) {
	return m.dashboard(m.Called(ctx, session))
}

func (m *MockPatientDashboardUsecase) CancelEdit(ctx context.Context, session contracts.Session) (*responses.PatientDashboard, error) {
	return m.dashboard(m.Called(ctx, session))
}

func (m *MockPatientDashboardUsecase) BeginBooking(ctx context.Context, session contracts.Session) (*responses.PatientDashboard, error) {
	return m.dashboard(m.Called(ctx, session))
}

func (m *MockPatientDashboardUsecase) CancelBooking(ctx context.Context, session contracts.Session) (*responses.PatientDashboard, error) {
	return m.dashboard(m.Called(ctx, session))
}

func (m *MockPatientDashboardUsecase) SubmitBooking(ctx context.Context, session contracts.Session, form *requests.BookingForm) (*responses.PatientDashboard, error) {
	return m.dashboard(m.Called(ctx, session, form))
}

func (m *MockPatientDashboardUsecase) RunPrediction(ctx context.Context, session contracts.Session, overrides requests.PredictionOverrides) (*responses.PatientDashboard, error) {
	return m.dashboard(m.Called(ctx, session, overrides))
}

func (m *MockPatientDashboardUsecase) BookingSlots() []responses.TimeSlot {
	args := m.Called()
	return args.Get(0).([]responses.TimeSlot)
}

type MockDoctorDashboardUsecase struct {
	mock.Mock
}

func (m *MockDoctorDashboardUsecase) dashboard(args mock.Arguments) (*responses.DoctorDashboard, error) {
	dashboard, _ := args.Get(0).(*responses.DoctorDashboard)
	return dashboard, args.Error(1)
}

func (m *MockDoctorDashboardUsecase) Mount(ctx context.Context, session contracts.Session) (*responses.DoctorDashboard, error) {
	return m.dashboard(m.Called(ctx, session))
}

func (m *MockDoctorDashboardUsecase) LoadNotes(ctx context.Context, session contracts.Session, search *requests.DoctorSearch) (*responses.DoctorDashboard, error) {
	return m.dashboard(m.Called(ctx, session, search))
}

func (m *MockDoctorDashboardUsecase) AddNote(ctx context.Context, session contracts.Session, request *requests.AddNote) (*responses.DoctorDashboard, error) {
	return m.dashboard(m.Called(ctx, session, request))
}

func (m *MockDoctorDashboardUsecase) LoadPatientProfile(ctx context.Context, session contracts.Session, search *requests.DoctorSearch) (*responses.DoctorDashboard, error) {
	return m.dashboard(m.Called(ctx, session, search))
}

func (m *MockDoctorDashboardUsecase) FilterAppointments(ctx context.Context, session contracts.Session, statusFilter string) (*responses.DoctorDashboard, error) {
	return m.dashboard(m.Called(ctx, session, statusFilter))
}

func (m *MockDoctorDashboardUsecase) DecideAppointment(ctx context.Context, session contracts.Session, appointmentID string, request *requests.AppointmentDecision) (*responses.DoctorDashboard, error) {
	return m.dashboard(m.Called(ctx, session, appointmentID, request))
}

type routerFixture struct {
	router  *chi.Mux
	auth    *MockAuthUsecase
	roles   *MockRoleRouter
	patient *MockPatientDashboardUsecase
	doctor  *MockDoctorDashboardUsecase
}

func newRouterFixture() *routerFixture {
	logger := zap.NewNop()
	internalConfig := &config.InternalConfig{
		App: config.App{
			MaxRequests:        1000,
			CORSAllowedOrigins: []string{"http://localhost:5173"},
		},
		Session: config.Session{
			CookieName: "careportal_session",
			TTLInHours: 1,
		},
		JWT: config.JWT{
			Secret: "router-test-secret",
		},
	}

	fixture := &routerFixture{
		router:  chi.NewRouter(),
		auth:    new(MockAuthUsecase),
		roles:   new(MockRoleRouter),
		patient: new(MockPatientDashboardUsecase),
		doctor:  new(MockDoctorDashboardUsecase),
	}
	SetupRoutes(
		fixture.router,
		internalConfig,
		middlewares.NewMiddlewares(logger, internalConfig, session.NewMemorySessionStore()),
		controllers.NewAuthController(logger, fixture.auth),
		controllers.NewDashboardController(logger, fixture.roles),
		controllers.NewPatientController(logger, fixture.patient),
		controllers.NewDoctorController(logger, fixture.doctor),
	)
	return fixture
}

// login runs POST /login with a mocked usecase that establishes the session,
// and returns the session cookie.
func (f *routerFixture) login(t *testing.T, role string) *http.Cookie {
	f.auth.On("Login", mock.Anything, mock.Anything, mock.AnythingOfType("*requests.Login")).
		Run(func(args mock.Arguments) {
			sess := args.Get(1).(contracts.Session)
			require.NoError(t, sess.Establish(context.Background(), "token-"+role, role))
		}).
		Return(&responses.Navigation{RedirectTo: constvars.PathDashboard}, nil).Once()

	body, _ := json.Marshal(requests.Login{Email: "user@example.com", Password: "Password123"})
	req := httptest.NewRequest("POST", constvars.PathLogin, bytes.NewBuffer(body))
	req.Header.Set(constvars.HeaderContentType, constvars.MIMEApplicationJSON)
	rr := httptest.NewRecorder()
	f.router.ServeHTTP(rr, req)

	require.Equal(t, http.StatusOK, rr.Code)
	cookies := rr.Result().Cookies()
	require.Len(t, cookies, 1)
	return cookies[0]
}

type envelope struct {
	Success bool            `json:"success"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
}

func decodeEnvelope(t *testing.T, rr *httptest.ResponseRecorder) envelope {
	var body envelope
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &body))
	return body
}

func TestProtectedRoutesRedirectToLogin(t *testing.T) {
	fixture := newRouterFixture()

	for _, path := range []string{constvars.PathPatient, constvars.PathDoctor, constvars.PathDashboard} {
		t.Run("API client "+path, func(t *testing.T) {
			req := httptest.NewRequest("GET", path, nil)
			req.Header.Set(constvars.HeaderAccept, constvars.MIMEApplicationJSON)
			rr := httptest.NewRecorder()
			fixture.router.ServeHTTP(rr, req)

			assert.Equal(t, http.StatusUnauthorized, rr.Code)
			body := decodeEnvelope(t, rr)
			var navigation responses.Navigation
			require.NoError(t, json.Unmarshal(body.Data, &navigation))
			assert.Equal(t, constvars.PathLogin, navigation.RedirectTo)
			assert.True(t, navigation.Replace)
		})

		t.Run("Browser "+path, func(t *testing.T) {
			req := httptest.NewRequest("GET", path, nil)
			req.Header.Set(constvars.HeaderAccept, "text/html")
			rr := httptest.NewRecorder()
			fixture.router.ServeHTTP(rr, req)

			assert.Equal(t, http.StatusSeeOther, rr.Code)
			assert.Equal(t, constvars.PathLogin, rr.Header().Get(constvars.HeaderLocation))
		})
	}

	fixture.patient.AssertNotCalled(t, "Mount", mock.Anything, mock.Anything)
	fixture.doctor.AssertNotCalled(t, "Mount", mock.Anything, mock.Anything)
	fixture.roles.AssertNotCalled(t, "Resolve", mock.Anything, mock.Anything)
}

func TestPublicPages(t *testing.T) {
	fixture := newRouterFixture()

	tests := []struct {
		path string
		page string
	}{
		{constvars.PathRoot, constvars.PageLogin},
		{constvars.PathLogin, constvars.PageLogin},
		{constvars.PathSignup, constvars.PageSignup},
	}

	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			rr := httptest.NewRecorder()
			fixture.router.ServeHTTP(rr, httptest.NewRequest("GET", tt.path, nil))

			assert.Equal(t, http.StatusOK, rr.Code)
			var view responses.PageView
			require.NoError(t, json.Unmarshal(decodeEnvelope(t, rr).Data, &view))
			assert.Equal(t, tt.page, view.Page)
		})
	}
}

func TestLoginThenDashboard(t *testing.T) {
	fixture := newRouterFixture()
	cookie := fixture.login(t, constvars.RolePatient)

	fixture.roles.On("Resolve", mock.Anything, mock.Anything).
		Return(&responses.Navigation{RedirectTo: constvars.PathPatient, Replace: true}).Once()

	req := httptest.NewRequest("GET", constvars.PathDashboard, nil)
	req.AddCookie(cookie)
	rr := httptest.NewRecorder()
	fixture.router.ServeHTTP(rr, req)

	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, constvars.PathPatient, rr.Header().Get(constvars.HeaderLocation))
	fixture.roles.AssertNumberOfCalls(t, "Resolve", 1)
}

func TestLoginIssuesNewSessionCookie(t *testing.T) {
	fixture := newRouterFixture()

	rr := httptest.NewRecorder()
	fixture.router.ServeHTTP(rr, httptest.NewRequest("GET", constvars.PathLogin, nil))
	require.Len(t, rr.Result().Cookies(), 1)
	anonymousCookie := rr.Result().Cookies()[0]

	fixture.auth.On("Login", mock.Anything, mock.Anything, mock.AnythingOfType("*requests.Login")).
		Run(func(args mock.Arguments) {
			sess := args.Get(1).(contracts.Session)
			require.NoError(t, sess.Establish(context.Background(), "token-patient", constvars.RolePatient))
		}).
		Return(&responses.Navigation{RedirectTo: constvars.PathDashboard}, nil).Once()

	body, _ := json.Marshal(requests.Login{Email: "user@example.com", Password: "Password123"})
	req := httptest.NewRequest("POST", constvars.PathLogin, bytes.NewBuffer(body))
	req.Header.Set(constvars.HeaderContentType, constvars.MIMEApplicationJSON)
	req.AddCookie(anonymousCookie)
	rr = httptest.NewRecorder()
	fixture.router.ServeHTTP(rr, req)

	require.Equal(t, http.StatusOK, rr.Code)
	cookies := rr.Result().Cookies()
	require.Len(t, cookies, 1, "login must set a new session cookie")
	loggedInCookie := cookies[0]
	assert.NotEqual(t, anonymousCookie.Value, loggedInCookie.Value)

	t.Run("Pre-login cookie stays anonymous", func(t *testing.T) {
		req := httptest.NewRequest("GET", constvars.PathDashboard, nil)
		req.Header.Set(constvars.HeaderAccept, constvars.MIMEApplicationJSON)
		req.AddCookie(anonymousCookie)
		rr := httptest.NewRecorder()
		fixture.router.ServeHTTP(rr, req)

		assert.Equal(t, http.StatusUnauthorized, rr.Code)
		assert.Equal(t, constvars.PathLogin, rr.Header().Get(constvars.HeaderLocation))
		fixture.roles.AssertNotCalled(t, "Resolve", mock.Anything, mock.Anything)
	})

	t.Run("New cookie reaches the dashboard", func(t *testing.T) {
		fixture.roles.On("Resolve", mock.Anything, mock.Anything).
			Return(&responses.Navigation{RedirectTo: constvars.PathPatient, Replace: true}).Once()

		req := httptest.NewRequest("GET", constvars.PathDashboard, nil)
		req.AddCookie(loggedInCookie)
		rr := httptest.NewRecorder()
		fixture.router.ServeHTTP(rr, req)

		assert.Equal(t, http.StatusOK, rr.Code)
		assert.Equal(t, constvars.PathPatient, rr.Header().Get(constvars.HeaderLocation))
		assert.Len(t, rr.Result().Cookies(), 1, "guarded requests refresh the cookie expiry")
	})
}

func TestPatientMountWithSession(t *testing.T) {
	fixture := newRouterFixture()
	cookie := fixture.login(t, constvars.RolePatient)

	fixture.patient.On("Mount", mock.Anything, mock.Anything).
		Return(&responses.PatientDashboard{Mode: "profile_view", Welcome: "Welcome, Ana"}, nil).Once()

	req := httptest.NewRequest("GET", constvars.PathPatient, nil)
	req.AddCookie(cookie)
	rr := httptest.NewRecorder()
	fixture.router.ServeHTTP(rr, req)

	require.Equal(t, http.StatusOK, rr.Code)
	var dashboard responses.PatientDashboard
	require.NoError(t, json.Unmarshal(decodeEnvelope(t, rr).Data, &dashboard))
	assert.Equal(t, "profile_view", dashboard.Mode)
	assert.Equal(t, "Welcome, Ana", dashboard.Welcome)
	fixture.patient.AssertExpectations(t)
}

func TestPatientSubmitSurveyPassesForm(t *testing.T) {
	fixture := newRouterFixture()
	cookie := fixture.login(t, constvars.RolePatient)

	fixture.patient.On("SubmitSurvey", mock.Anything, mock.Anything, &requests.SurveyForm{Gender: "female", Age: "34", Fever: "no"}).
		Return(&responses.PatientDashboard{Mode: "profile_view", Message: constvars.SurveySavedMessage}, nil).Once()

	req := httptest.NewRequest("POST", constvars.PathPatient+"/survey", bytes.NewBufferString(`{"gender":"female","age":"34","fever":"no"}`))
	req.AddCookie(cookie)
	rr := httptest.NewRecorder()
	fixture.router.ServeHTTP(rr, req)

	require.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, constvars.SurveySavedMessage, decodeEnvelope(t, rr).Message)
	fixture.patient.AssertExpectations(t)
}

func TestDoctorDecideValidatesStatus(t *testing.T) {
	fixture := newRouterFixture()
	cookie := fixture.login(t, constvars.RoleDoctor)

	t.Run("Invalid status never reaches the usecase", func(t *testing.T) {
		req := httptest.NewRequest("POST", constvars.PathDoctor+"/appointments/42/status", bytes.NewBufferString(`{"status":"maybe"}`))
		req.AddCookie(cookie)
		rr := httptest.NewRecorder()
		fixture.router.ServeHTTP(rr, req)

		assert.Equal(t, http.StatusBadRequest, rr.Code)
		fixture.doctor.AssertNotCalled(t, "DecideAppointment", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("Accepted status carries the URL id", func(t *testing.T) {
		fixture.doctor.On("DecideAppointment", mock.Anything, mock.Anything, "42", &requests.AppointmentDecision{Status: constvars.AppointmentStatusAccepted}).
			Return(&responses.DoctorDashboard{StatusFilter: constvars.AppointmentStatusPending, Message: "Appointment accepted"}, nil).Once()

		req := httptest.NewRequest("POST", constvars.PathDoctor+"/appointments/42/status", bytes.NewBufferString(`{"status":"accepted"}`))
		req.AddCookie(cookie)
		rr := httptest.NewRecorder()
		fixture.router.ServeHTTP(rr, req)

		require.Equal(t, http.StatusOK, rr.Code)
		assert.Equal(t, "Appointment accepted", decodeEnvelope(t, rr).Message)
		fixture.doctor.AssertExpectations(t)
	})
}

func TestDoctorQueryParameters(t *testing.T) {
	fixture := newRouterFixture()
	cookie := fixture.login(t, constvars.RoleDoctor)

	fixture.doctor.On("LoadNotes", mock.Anything, mock.Anything, &requests.DoctorSearch{PatientEmail: "p@example.com", PredictionID: "7"}).
		Return(&responses.DoctorDashboard{PatientEmail: "p@example.com", PredictionID: "7"}, nil).Once()
	fixture.doctor.On("FilterAppointments", mock.Anything, mock.Anything, "all").
		Return(&responses.DoctorDashboard{StatusFilter: "all"}, nil).Once()

	for _, target := range []string{
		constvars.PathDoctor + "/notes?email=p@example.com&prediction_id=7",
		constvars.PathDoctor + "/appointments?status=all",
	} {
		req := httptest.NewRequest("GET", target, nil)
		req.AddCookie(cookie)
		rr := httptest.NewRecorder()
		fixture.router.ServeHTTP(rr, req)
		assert.Equal(t, http.StatusOK, rr.Code, target)
	}

	fixture.doctor.AssertExpectations(t)
}

func TestSignupValidateIsPublic(t *testing.T) {
	fixture := newRouterFixture()

	fixture.auth.On("CheckSignup", &requests.SignupCheck{Password: "weak", Confirm: "weaker"}).
		Return(&responses.SignupCheck{
			PasswordErrors: []string{"≥8 chars", "uppercase", "number"},
			ConfirmMessage: constvars.ErrClientPasswordsDoNotMatch,
		}).Once()

	req := httptest.NewRequest("POST", constvars.PathSignup+"/validate", bytes.NewBufferString(`{"password":"weak","confirm":"weaker"}`))
	rr := httptest.NewRecorder()
	fixture.router.ServeHTTP(rr, req)

	require.Equal(t, http.StatusOK, rr.Code)
	var check responses.SignupCheck
	require.NoError(t, json.Unmarshal(decodeEnvelope(t, rr).Data, &check))
	assert.Equal(t, []string{"≥8 chars", "uppercase", "number"}, check.PasswordErrors)
	assert.Equal(t, constvars.ErrClientPasswordsDoNotMatch, check.ConfirmMessage)
}
