package api

import (
	"errors"
	"net/http"

	"github.com/Mohsinsiddi/w3tokens/internal/ethconnect"
	"github.com/Mohsinsiddi/w3tokens/internal/service"
	"github.com/Mohsinsiddi/w3tokens/internal/tokens"
	"github.com/gin-gonic/gin"
)

type errorResponse struct {
	Error     string `json:"error"`
	RequestID string `json:"requestId,omitempty"`
}

// statusFor maps service errors to HTTP status codes.
func statusFor(err error) int {
	var gwErr *ethconnect.GatewayError
	switch {
	case errors.Is(err, tokens.ErrUnsupportedOperation):
		return http.StatusInternalServerError
	case errors.Is(err, service.ErrInvalidRequest),
		errors.Is(err, service.ErrInvalidPoolLocator),
		errors.Is(err, service.ErrFactoryNotConfigured),
		errors.Is(err, tokens.ErrInvalidTokenType),
		errors.Is(err, tokens.ErrMissingField):
		return http.StatusBadRequest
	case errors.Is(err, service.ErrNotActivated):
		return http.StatusServiceUnavailable
	case errors.As(err, &gwErr):
		if gwErr.Status >= 400 && gwErr.Status < 500 {
			return gwErr.Status
		}
		return http.StatusBadGateway
	}
	return http.StatusInternalServerError
}

func abortWithError(c *gin.Context, err error) {
	_ = c.Error(err)
	c.AbortWithStatusJSON(statusFor(err), errorResponse{Error: err.Error(), RequestID: getRequestID(c)})
}

func abortBadRequest(c *gin.Context, err error) {
	_ = c.Error(err)
	c.AbortWithStatusJSON(http.StatusBadRequest, errorResponse{Error: err.Error(), RequestID: getRequestID(c)})
}
