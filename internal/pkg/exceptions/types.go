package exceptions

import (
	"careportal-service/internal/pkg/constvars"
	"fmt"
)

var (
	// Request parsing and validation
	ErrCannotParseJSON = func(err error) *CustomError {
		return WrapWithError(err, constvars.StatusBadRequest, KindValidation, constvars.ErrClientCannotProcessRequest, constvars.ErrDevCannotParseJSON)
	}
	ErrInputValidation = func(err error) *CustomError {
		return WrapWithError(err, constvars.StatusBadRequest, KindValidation, FormatFirstValidationError(err), constvars.ErrDevValidationFailed)
	}
	ErrValidationMessage = func(clientMessage string) *CustomError {
		return WrapWithoutError(constvars.StatusBadRequest, KindValidation, clientMessage, constvars.ErrDevValidationFailed)
	}
	ErrCannotMarshalJSON = func(err error) *CustomError {
		return WrapWithError(err, constvars.StatusInternalServerError, KindServer, constvars.ErrClientSomethingWrongWithApplication, constvars.ErrDevCannotMarshalJSON)
	}

	// Dashboard state machine
	ErrInvalidTransition = func(event, from string) *CustomError {
		return WrapWithoutError(constvars.StatusConflict, KindConflict, constvars.ErrClientInvalidTransition, fmt.Sprintf(constvars.ErrDevInvalidTransition, event, from))
	}

	// Upstream backend
	ErrCreateHTTPRequest = func(err error) *CustomError {
		return WrapWithError(err, constvars.StatusInternalServerError, KindServer, constvars.ErrClientSomethingWrongWithApplication, constvars.ErrDevCreateHTTPRequest)
	}
	ErrNetwork = func(err error) *CustomError {
		return WrapWithError(err, constvars.StatusBadGateway, KindNetwork, fmt.Sprintf(constvars.ErrClientNetworkError, err.Error()), constvars.ErrDevSendHTTPRequest)
	}
	ErrDecodeResponse = func(err error, path string) *CustomError {
		return WrapWithError(err, constvars.StatusBadGateway, KindServer, constvars.ErrClientSomethingWrongWithApplication, fmt.Sprintf("%s on %s", constvars.ErrDevDecodeResponse, path))
	}
	ErrUnauthorized = func() *CustomError {
		customErr := WrapWithoutError(constvars.StatusUnauthorized, KindUnauthorized, constvars.ErrClientUnauthorized, constvars.ErrDevUpstreamUnauthorized)
		customErr.RedirectTo = constvars.PathRoot
		return customErr
	}
	ErrUpstreamNotFound = func(clientMessage string, fromUpstream bool, path string) *CustomError {
		customErr := WrapWithoutError(constvars.StatusNotFound, KindNotFound, clientMessage, fmt.Sprintf(constvars.ErrDevUpstreamNotFound, path))
		customErr.UpstreamMessage = fromUpstream
		return customErr
	}
	ErrUpstreamStatus = func(statusCode int, clientMessage string, fromUpstream bool, path string) *CustomError {
		customErr := WrapWithoutError(statusCode, KindServer, clientMessage, fmt.Sprintf(constvars.ErrDevUpstreamStatus, statusCode, path))
		customErr.UpstreamMessage = fromUpstream
		return customErr
	}

	// Session
	ErrSessionTokenInvalid = func(err error) *CustomError {
		return WrapWithError(err, constvars.StatusUnauthorized, KindUnauthorized, constvars.ErrClientUnauthorized, constvars.ErrDevSessionTokenInvalid)
	}
	ErrSessionTokenGenerate = func(err error) *CustomError {
		return WrapWithError(err, constvars.StatusInternalServerError, KindServer, constvars.ErrClientSomethingWrongWithApplication, constvars.ErrDevSessionTokenGenerate)
	}
	ErrSessionStoreGet = func(err error) *CustomError {
		return WrapWithError(err, constvars.StatusInternalServerError, KindServer, constvars.ErrClientSomethingWrongWithApplication, constvars.ErrDevSessionStoreGet)
	}
	ErrSessionStoreSet = func(err error) *CustomError {
		return WrapWithError(err, constvars.StatusInternalServerError, KindServer, constvars.ErrClientSomethingWrongWithApplication, constvars.ErrDevSessionStoreSet)
	}
	ErrSessionStoreClear = func(err error) *CustomError {
		return WrapWithError(err, constvars.StatusInternalServerError, KindServer, constvars.ErrClientSomethingWrongWithApplication, constvars.ErrDevSessionStoreClear)
	}
	ErrCSRFInvalid = func(err error) *CustomError {
		return WrapWithError(err, constvars.StatusForbidden, KindValidation, constvars.ErrClientCSRFInvalid, constvars.ErrDevCSRFInvalid)
	}
	ErrTooManyRequests = func(remoteAddr string) *CustomError {
		return WrapWithoutError(constvars.StatusTooManyRequests, KindServer, constvars.ErrClientTooManyRequests, fmt.Sprintf(constvars.ErrDevRateLimited, remoteAddr))
	}
	ErrRecoveredPanic = func(err error, method, path string) *CustomError {
		return WrapWithError(err, constvars.StatusInternalServerError, KindServer, constvars.ErrClientSomethingWrongWithApplication, fmt.Sprintf(constvars.ErrDevRecoveredPanic, method, path))
	}
	ErrSessionMissing = func() *CustomError {
		return WrapWithoutError(constvars.StatusInternalServerError, KindServer, constvars.ErrClientSomethingWrongWithApplication, constvars.ErrDevSessionMissingFromContext)
	}
)
