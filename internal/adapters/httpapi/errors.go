package httpapi

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/gofrs/uuid"

	"github.com/andreipy/hw05-final/internal/apperr"
)

// statusFromError maps the service error taxonomy onto HTTP statuses.
func statusFromError(err error) int {
	switch {
	case errors.Is(err, apperr.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, apperr.ErrForbidden):
		return http.StatusForbidden
	case errors.Is(err, apperr.ErrInvalidInput):
		return http.StatusBadRequest
	case errors.Is(err, apperr.ErrInvalidOperation):
		return http.StatusBadRequest
	case errors.Is(err, apperr.ErrUnavailable):
		return http.StatusServiceUnavailable
	}
	return http.StatusInternalServerError
}

func abortWithError(c *gin.Context, err error) {
	c.JSON(statusFromError(err), gin.H{"error": err.Error()})
}

// pageParam reads ?page=N. Absent or non-numeric values default to 1; range
// clamping is the paginator's job.
func pageParam(c *gin.Context) int {
	n, err := strconv.Atoi(c.Query("page"))
	if err != nil {
		return 1
	}
	return n
}

// currentUserID reads the author id the JWT middleware stored on the context.
func currentUserID(c *gin.Context) (uuid.UUID, bool) {
	v, exists := c.Get("userID")
	if !exists {
		return uuid.Nil, false
	}
	id, err := uuid.FromString(v.(string))
	if err != nil {
		return uuid.Nil, false
	}
	return id, true
}
