package helpers

import (
	"errors"
	"fmt"
	"net/http"

	"auction-console/internal/auctionerrors"
	"auction-console/internal/listfilter"
	"auction-console/utils"

	"github.com/gin-gonic/gin"
)

// HandleBindError sends a standardized JSON error for binding failures
func HandleBindError(c *gin.Context, handlerName string, err error) {
	wrappedErr := fmt.Errorf("invalid request payload: %w", err)
	utils.JSONError(c, http.StatusBadRequest, wrappedErr, "invalid request payload")
	utils.Warn(handlerName+": binding error", map[string]any{"error": err.Error()})
}

// MapErrorToHTTP maps domain/service errors to HTTP status code and message
func MapErrorToHTTP(err error) (int, string) {
	var apiErr *auctionerrors.APIError
	switch {
	case errors.Is(err, auctionerrors.ErrBidTooLow):
		return http.StatusConflict, "bid amount too low"
	case errors.Is(err, auctionerrors.ErrInvalidBid):
		return http.StatusBadRequest, "invalid bid details"
	case errors.Is(err, auctionerrors.ErrTopUpOutOfRange):
		return http.StatusBadRequest, "top-up amount out of range"
	case errors.Is(err, auctionerrors.ErrBidNotRollbackable):
		return http.StatusBadRequest, "bid cannot be rolled back"
	case errors.Is(err, auctionerrors.ErrMissingField):
		return http.StatusBadRequest, "missing required field"
	case errors.Is(err, auctionerrors.ErrPasswordUnchanged):
		return http.StatusBadRequest, "new password must differ from the old one"
	case errors.Is(err, auctionerrors.ErrInvalidFilter):
		return http.StatusBadRequest, "invalid filter"
	case errors.Is(err, auctionerrors.ErrNotAuthenticated):
		return http.StatusUnauthorized, "please log in"
	case errors.Is(err, auctionerrors.ErrUnauthorized):
		return http.StatusUnauthorized, "session expired, please log in again"
	case errors.Is(err, auctionerrors.ErrViewNotMounted):
		return http.StatusNotFound, "live view not mounted"
	case errors.Is(err, auctionerrors.ErrNotCached):
		return http.StatusNotFound, "listing not loaded"
	case errors.As(err, &apiErr):
		message := apiErr.Message
		if message == "" {
			message = http.StatusText(apiErr.Status)
		}
		if apiErr.Status >= http.StatusInternalServerError {
			return http.StatusBadGateway, "auction service unavailable"
		}
		return apiErr.Status, message
	default:
		return http.StatusInternalServerError, "internal server error"
	}
}

// RespondError maps err, sends the error envelope and logs the failure
func RespondError(c *gin.Context, handlerName string, err error, fields map[string]any) {
	status, message := MapErrorToHTTP(err)
	utils.JSONError(c, status, fmt.Errorf("%s: %w", message, err), message)

	if fields == nil {
		fields = map[string]any{}
	}
	fields["handler"] = handlerName
	fields["status"] = status
	fields["error"] = err.Error()
	if status >= http.StatusInternalServerError {
		utils.Error(handlerName+": request failed", fields)
		return
	}
	utils.Warn(handlerName+": request rejected", fields)
}

// BindListQuery reads ?search= and ?status= into a filter query
func BindListQuery(c *gin.Context) (listfilter.Query, error) {
	var q listfilter.Query
	if err := c.ShouldBindQuery(&q); err != nil {
		return q, fmt.Errorf("%w: %v", auctionerrors.ErrInvalidFilter, err)
	}
	status, err := listfilter.ParseStatus(string(q.Status))
	if err != nil {
		return q, err
	}
	q.Status = status
	return q, nil
}

// LogSuccess is a small helper to standardize logging of successful operations
func LogSuccess(handlerName, message string, ctx map[string]any) {
	utils.Info(handlerName+": "+message, ctx)
}
