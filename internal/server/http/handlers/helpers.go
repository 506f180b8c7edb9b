package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	domainErrors "github.com/polkiloo/orderdesk/internal/domain/errors"
	"github.com/polkiloo/orderdesk/internal/domain/model"
	"github.com/polkiloo/orderdesk/internal/server/http/dto"
	"github.com/polkiloo/orderdesk/internal/server/http/middleware"
)

// CurrentSession extracts the authenticated session from context.
func CurrentSession(c *gin.Context) (model.Session, bool) {
	val, ok := c.Get(middleware.SessionContextKey)
	if !ok {
		return model.Session{}, false
	}
	sess, ok := val.(model.Session)
	return sess, ok
}

func statusFor(err error) int {
	var fetchErr *domainErrors.FetchError
	var profileErr *domainErrors.ProfileFetchError
	switch {
	case errors.Is(err, domainErrors.ErrUnauthorized),
		errors.Is(err, domainErrors.ErrNoSession),
		errors.Is(err, domainErrors.ErrInvalidState):
		return http.StatusUnauthorized
	case errors.Is(err, domainErrors.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, domainErrors.ErrInvalidStatus),
		errors.Is(err, domainErrors.ErrInvalidPrice):
		return http.StatusUnprocessableEntity
	case errors.Is(err, domainErrors.ErrNotConfigured):
		return http.StatusPreconditionFailed
	case errors.Is(err, domainErrors.ErrSyncInProgress):
		return http.StatusConflict
	case errors.As(err, &fetchErr), errors.As(err, &profileErr):
		return http.StatusBadGateway
	default:
		return http.StatusInternalServerError
	}
}

func abortWithError(c *gin.Context, err error) {
	c.AbortWithStatusJSON(statusFor(err), dto.ErrorResponse{Error: err.Error()})
}

func sessionResponse(sess model.Session) dto.SessionResponse {
	return dto.SessionResponse{
		Email:     sess.Profile.Email,
		Name:      sess.Profile.Name,
		Picture:   sess.Profile.Picture,
		StartedAt: sess.StartedAt,
	}
}
