package http

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/aditya-2529/portfolio/internal/portfolio/domain"
	"github.com/aditya-2529/portfolio/internal/reqctx"
)

// Error codes carried next to the message in every error body.
const (
	CodeValidation = "validation"
	CodeConflict   = "conflict"
	CodeNotFound   = "not_found"
	CodeBadRequest = "bad_request"
	CodeInternal   = "internal"
)

// writeError maps service errors onto status codes. notFound is the message
// used when err is a not-found error.
func (h *Handler) writeError(c *gin.Context, err error, notFound string) {
	var verr *domain.ValidationError
	switch {
	case errors.Is(err, domain.ErrProjectTitleTaken):
		c.JSON(http.StatusBadRequest, gin.H{"error": "Project exists with given title", "code": CodeConflict})
	case errors.As(err, &verr):
		c.JSON(http.StatusBadRequest, gin.H{"error": verr.Error(), "code": CodeValidation, "fields": verr.Fields})
	case errors.Is(err, domain.ErrValidation):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error(), "code": CodeValidation})
	case errors.Is(err, domain.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": notFound, "code": CodeNotFound})
	default:
		h.logger.Error("request failed",
			"request_id", reqctx.RequestID(c.Request.Context()),
			"path", c.FullPath(),
			"error", err,
		)
		msg := "internal server error"
		if h.exposeErrors {
			msg = err.Error()
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": msg, "code": CodeInternal})
	}
}

// writeBindError reports a body that could not be decoded.
func writeBindError(c *gin.Context, err error) {
	var typeErr *json.UnmarshalTypeError
	if errors.As(err, &typeErr) && typeErr.Field == "rating" {
		c.JSON(http.StatusBadRequest, gin.H{"error": domain.ErrInvalidRating.Error(), "code": CodeValidation})
		return
	}
	c.JSON(http.StatusBadRequest, gin.H{"error": "invalid body: " + err.Error(), "code": CodeBadRequest})
}
