package utils

import (
	"bytes"
	"errors"
	"io"
	"necessitous-service/internal/pkg/exceptions"
	"net/http"

	"github.com/goccy/go-json"
)

// ParseJSONBody decodes the request body into dst, mapping read and decode
// failures to client errors.
func ParseJSONBody(r *http.Request, dst interface{}) error {
	body, err := io.ReadAll(r.Body)
	if err != nil {
		var maxBytesErr *http.MaxBytesError
		if errors.As(err, &maxBytesErr) {
			return exceptions.ErrRequestTooLarge(err)
		}
		return exceptions.ErrCannotParseJSON(err)
	}

	if len(bytes.TrimSpace(body)) == 0 {
		return exceptions.ErrCannotParseJSON(errors.New("empty request body"))
	}

	err = json.Unmarshal(body, dst)
	if err != nil {
		return exceptions.ErrCannotParseJSON(err)
	}
	return nil
}
