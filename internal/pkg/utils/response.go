package utils

import (
	"careportal-service/internal/pkg/constvars"
	"careportal-service/internal/pkg/dto/responses"
	"careportal-service/internal/pkg/exceptions"
	"errors"
	"net/http"
	"strings"

	"github.com/goccy/go-json"
	"go.uber.org/zap"
)

func BuildSuccessResponse(w http.ResponseWriter, code int, message string, data interface{}) {
	response := responses.ResponseDTO{
		Success: true,
		Message: message,
		Data:    data,
	}
	w.Header().Set(constvars.HeaderContentType, constvars.MIMEApplicationJSON)
	w.WriteHeader(code)
	json.NewEncoder(w).Encode(response)
}

// BuildErrorResponse writes err for the client. Unauthorized errors that carry
// a redirect target become a navigation instead of an error body.
func BuildErrorResponse(log *zap.Logger, w http.ResponseWriter, r *http.Request, err error) {
	code := constvars.StatusInternalServerError
	clientMessage := constvars.ErrClientSomethingWrongWithApplication

	var customErr *exceptions.CustomError
	if errors.As(err, &customErr) {
		if customErr.RedirectTo != "" {
			log.Info(customErr.DevMessage, zap.String(constvars.LoggingRedirectKey, customErr.RedirectTo))
			Navigate(w, r, customErr.StatusCode, &responses.Navigation{
				RedirectTo: customErr.RedirectTo,
				Replace:    true,
			})
			return
		}
		code = customErr.StatusCode
		clientMessage = customErr.ClientMessage
		log.Error(customErr.DevMessage,
			zap.Any("location", map[string]interface{}{
				"file":          customErr.Location.File,
				"line":          customErr.Location.Line,
				"function_name": customErr.Location.FunctionName,
			}),
		)
	} else {
		log.Error(err.Error())
	}

	response := exceptions.CustomError{
		StatusCode:    code,
		Success:       false,
		ClientMessage: clientMessage,
	}
	if customErr != nil {
		response.Kind = customErr.Kind
		if GetEnvString("APP_ENV", constvars.AppEnvDevelopment) != constvars.AppEnvProduction {
			response.DevMessage = customErr.DevMessage
		}
	}

	w.Header().Set(constvars.HeaderContentType, constvars.MIMEApplicationJSON)
	w.WriteHeader(code)
	json.NewEncoder(w).Encode(response)
}

// Navigate sends the client to another page. Browsers get a 303 redirect;
// API clients get the navigation as JSON with the given status code.
func Navigate(w http.ResponseWriter, r *http.Request, code int, navigation *responses.Navigation) {
	if IsHTMLRequest(r) {
		http.Redirect(w, r, navigation.RedirectTo, constvars.StatusSeeOther)
		return
	}
	w.Header().Set(constvars.HeaderLocation, navigation.RedirectTo)
	w.Header().Set(constvars.HeaderContentType, constvars.MIMEApplicationJSON)
	w.WriteHeader(code)
	json.NewEncoder(w).Encode(responses.ResponseDTO{
		Success: code < constvars.StatusBadRequest,
		Message: constvars.RedirectingMessage,
		Data:    navigation,
	})
}

func IsHTMLRequest(r *http.Request) bool {
	accept := r.Header.Get(constvars.HeaderAccept)
	return strings.Contains(accept, constvars.MIMETextHTML) || strings.Contains(accept, constvars.MIMEApplicationXHTML)
}
