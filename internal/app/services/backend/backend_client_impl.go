package backend

import (
	"bytes"
	"careportal-service/internal/app/contracts"
	"careportal-service/internal/pkg/constvars"
	"careportal-service/internal/pkg/exceptions"
	"context"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/goccy/go-json"
	"github.com/tidwall/gjson"
	"go.uber.org/zap"
)

type backendClient struct {
	BaseUrl    string
	HTTPClient *http.Client
	Log        *zap.Logger
}

// NewBackendClient returns the single entry point for upstream REST calls.
// The HTTP client has no timeout and calls are never retried.
func NewBackendClient(baseUrl string, logger *zap.Logger) contracts.BackendClient {
	return &backendClient{
		BaseUrl:    strings.TrimRight(baseUrl, "/"),
		HTTPClient: &http.Client{},
		Log:        logger,
	}
}

func (c *backendClient) Do(ctx context.Context, session contracts.Session, method, path string, body, out interface{}) error {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	c.Log.Info("backendClient.Do called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingSessionIDKey, session.ID()),
		zap.String(constvars.LoggingMethodKey, method),
		zap.String(constvars.LoggingEndpointKey, path),
	)

	token, err := session.Token(ctx)
	if err != nil {
		c.Log.Error("backendClient.Do error reading session token",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return err
	}

	statusCode, err := c.send(ctx, token, method, path, body, out)
	if statusCode == constvars.StatusUnauthorized {
		clearErr := session.Clear(ctx)
		if clearErr != nil {
			c.Log.Error("backendClient.Do error clearing session after 401",
				zap.String(constvars.LoggingRequestIDKey, requestID),
				zap.Error(clearErr),
			)
		}
		c.Log.Info("backendClient.Do session expired upstream",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingSessionIDKey, session.ID()),
		)
		return exceptions.ErrUnauthorized()
	}
	return err
}

func (c *backendClient) DoPublic(ctx context.Context, method, path string, body, out interface{}) error {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	c.Log.Info("backendClient.DoPublic called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingMethodKey, method),
		zap.String(constvars.LoggingEndpointKey, path),
	)

	_, err := c.send(ctx, "", method, path, body, out)
	return err
}

// send performs one upstream round trip and returns the response status, or
// zero when no response arrived.
func (c *backendClient) send(ctx context.Context, token, method, path string, body, out interface{}) (int, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)

	var reader io.Reader
	if body != nil {
		requestJSON, err := json.Marshal(body)
		if err != nil {
			c.Log.Error("backendClient.send error marshaling JSON",
				zap.String(constvars.LoggingRequestIDKey, requestID),
				zap.Error(err),
			)
			return 0, exceptions.ErrCannotMarshalJSON(err)
		}
		reader = bytes.NewReader(requestJSON)
	}

	req, err := http.NewRequestWithContext(context.WithoutCancel(ctx), method, c.BaseUrl+path, reader)
	if err != nil {
		c.Log.Error("backendClient.send error creating HTTP request",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return 0, exceptions.ErrCreateHTTPRequest(err)
	}
	req.Header.Set(constvars.HeaderAccept, constvars.MIMEApplicationJSON)
	if body != nil {
		req.Header.Set(constvars.HeaderContentType, constvars.MIMEApplicationJSON)
	}
	if token != "" {
		req.Header.Set(constvars.HeaderAuthorization, constvars.AuthorizationBearerPrefix+token)
	}
	if requestID != "" {
		req.Header.Set(constvars.HeaderXRequestID, requestID)
	}

	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		c.Log.Error("backendClient.send error sending HTTP request",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingEndpointKey, path),
			zap.Error(err),
		)
		return 0, exceptions.ErrNetwork(err)
	}
	defer resp.Body.Close()

	c.Log.Info("backendClient.send upstream responded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingEndpointKey, path),
		zap.Int(constvars.LoggingStatusCodeKey, resp.StatusCode),
	)

	bodyBytes, err := io.ReadAll(resp.Body)
	if err != nil {
		c.Log.Error("backendClient.send error reading response body",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return resp.StatusCode, exceptions.ErrNetwork(err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		clientMessage, fromUpstream := upstreamMessage(bodyBytes, resp.StatusCode)
		if resp.StatusCode == constvars.StatusNotFound {
			return resp.StatusCode, exceptions.ErrUpstreamNotFound(clientMessage, fromUpstream, path)
		}
		return resp.StatusCode, exceptions.ErrUpstreamStatus(resp.StatusCode, clientMessage, fromUpstream, path)
	}

	if out == nil || len(bytes.TrimSpace(bodyBytes)) == 0 {
		return resp.StatusCode, nil
	}

	err = json.Unmarshal(bodyBytes, out)
	if err != nil {
		c.Log.Error("backendClient.send error decoding response",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingEndpointKey, path),
			zap.Error(err),
		)
		return resp.StatusCode, exceptions.ErrDecodeResponse(err, path)
	}
	return resp.StatusCode, nil
}

// upstreamMessage prefers the body's "error" field, then "message". The
// boolean reports whether the backend supplied either.
func upstreamMessage(body []byte, statusCode int) (string, bool) {
	if gjson.ValidBytes(body) {
		for _, field := range []string{"error", "message"} {
			if message := gjson.GetBytes(body, field).String(); message != "" {
				return message, true
			}
		}
	}
	return fmt.Sprintf(constvars.ErrClientRequestFailed, statusCode), false
}
