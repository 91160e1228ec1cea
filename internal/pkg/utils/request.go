package utils

import (
	"careportal-service/internal/pkg/exceptions"
	"errors"
	"io"
	"net/http"

	"github.com/goccy/go-json"
)

// DecodeJSONBody binds the request body into dst. An empty body leaves dst untouched.
func DecodeJSONBody(r *http.Request, dst interface{}) error {
	err := json.NewDecoder(r.Body).Decode(dst)
	if err != nil && !errors.Is(err, io.EOF) {
		return exceptions.ErrCannotParseJSON(err)
	}
	return nil
}
