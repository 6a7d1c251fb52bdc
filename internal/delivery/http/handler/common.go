package handler

import (
	"errors"
	"net/http"

	"hospital-portal/internal/infrastructure/upstream"
	"hospital-portal/pkg/response"
)

// relayUpstreamError surfaces an upstream service failure under its own
// status and message; anything else becomes a 500 with the fallback text.
func relayUpstreamError(w http.ResponseWriter, err error, fallback string) {
	var upstreamErr *upstream.Error
	if errors.As(err, &upstreamErr) {
		message := upstreamErr.Message
		if message == "" {
			message = fallback
		}
		response.Error(w, upstreamErr.StatusCode, message)
		return
	}
	response.InternalServerError(w, fallback)
}
