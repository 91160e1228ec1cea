package exceptions

import (
	"careportal-service/internal/pkg/constvars"
	"errors"
	"fmt"
	"runtime"
)

// Kind classifies an error so callers can branch on it without string matching.
type Kind string

const (
	KindUnauthorized Kind = "unauthorized"
	KindValidation   Kind = "validation"
	KindNotFound     Kind = "not_found"
	KindServer       Kind = "server"
	KindNetwork      Kind = "network"
	KindConflict     Kind = "conflict"
)

type CustomError struct {
	StatusCode    int      `json:"status_code"`
	Success       bool     `json:"success"`
	ClientMessage string   `json:"message"`
	Kind          Kind     `json:"kind,omitempty"`
	RedirectTo    string   `json:"redirect_to,omitempty"`
	DevMessage    string   `json:"dev_message,omitempty"`
	Location      Location `json:"-"`

	// UpstreamMessage reports that ClientMessage came from the backend body.
	UpstreamMessage bool `json:"-"`
}

type Location struct {
	File         string
	Line         int
	FunctionName string
}

func (e *CustomError) Error() string {
	return fmt.Sprintf("%s (%s:%d %s)", e.DevMessage, e.Location.File, e.Location.Line, e.Location.FunctionName)
}

func WrapWithoutError(statusCode int, kind Kind, clientMessage, devMessage string) *CustomError {
	return &CustomError{
		StatusCode:    statusCode,
		Kind:          kind,
		ClientMessage: clientMessage,
		DevMessage:    devMessage,
		Location:      getLocation(3),
	}
}

func WrapWithError(err error, statusCode int, kind Kind, clientMessage, devMessage string) *CustomError {
	if err != nil {
		devMessage = fmt.Sprintf("%s: %s", devMessage, err.Error())
	}
	return &CustomError{
		StatusCode:    statusCode,
		Kind:          kind,
		ClientMessage: clientMessage,
		DevMessage:    devMessage,
		Location:      getLocation(3),
	}
}

// KindOf reports the kind of err, or KindServer for errors built elsewhere.
func KindOf(err error) Kind {
	var customErr *CustomError
	if errors.As(err, &customErr) {
		return customErr.Kind
	}
	return KindServer
}

// StatusCodeOf reports the HTTP status carried by err, or 500.
func StatusCodeOf(err error) int {
	var customErr *CustomError
	if errors.As(err, &customErr) {
		return customErr.StatusCode
	}
	return constvars.StatusInternalServerError
}

// WithFallbackMessage replaces the generic status message of an upstream
// failure with fallback. Messages sent by the backend and network errors are
// kept as they are.
func WithFallbackMessage(err error, fallback string) error {
	var customErr *CustomError
	if !errors.As(err, &customErr) || customErr.UpstreamMessage || customErr.Kind == KindNetwork || customErr.Kind == KindUnauthorized {
		return err
	}
	copied := *customErr
	copied.ClientMessage = fallback
	return &copied
}

func IsUnauthorized(err error) bool {
	return err != nil && KindOf(err) == KindUnauthorized
}

func IsNotFound(err error) bool {
	return err != nil && KindOf(err) == KindNotFound
}

func IsValidation(err error) bool {
	return err != nil && KindOf(err) == KindValidation
}

// ClientMessage returns the message meant for the end user.
func ClientMessage(err error) string {
	if err == nil {
		return ""
	}
	var customErr *CustomError
	if errors.As(err, &customErr) {
		return customErr.ClientMessage
	}
	return err.Error()
}

func getLocation(skip int) Location {
	pc, file, line, ok := runtime.Caller(skip)
	if !ok {
		return Location{
			File:         constvars.ResponseUnknown,
			Line:         0,
			FunctionName: constvars.ResponseUnknown,
		}
	}
	function := runtime.FuncForPC(pc).Name()
	return Location{
		File:         file,
		Line:         line,
		FunctionName: function,
	}
}
