package controllers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"tidsreg-be/internal/logging"
	"tidsreg-be/internal/models"
	"tidsreg-be/internal/repository"
	"tidsreg-be/internal/service"
)

const (
	msgDBError      = "DB fejl"
	msgInvalidRange = "from/to skal være YYYY-MM-DD"
	msgInvalidBody  = "Ugyldig JSON i forespørgslen"
	msgNoProject    = "Intet projekt i DB (kræves teknisk)"
)

// bindRange reads the optional from/to query parameters. It writes a 400
// and returns false when either is not a YYYY-MM-DD date.
func bindRange(c *gin.Context) (repository.DateRange, bool) {
	var q models.DateRangeQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": msgInvalidRange})
		return repository.DateRange{}, false
	}
	return repository.DateRange{From: q.From, To: q.To}, true
}

// respondError maps service errors to responses. Anything unexpected is
// logged and answered with a 500 carrying fallback.
func respondError(c *gin.Context, err error, fallback string) {
	var verr *service.ValidationError
	switch {
	case errors.As(err, &verr):
		c.JSON(http.StatusBadRequest, gin.H{"error": verr.Message})
	case errors.Is(err, service.ErrNoProject):
		logError(c, err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": msgNoProject})
	default:
		logError(c, err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": fallback})
	}
}

func logError(c *gin.Context, err error) {
	ctx := c.Request.Context()
	logging.FromContext(ctx).ErrorContext(ctx, "request failed",
		slog.String(logging.FieldMethod, c.Request.Method),
		slog.String(logging.FieldPath, c.Request.URL.Path),
		slog.String(logging.FieldError, err.Error()))
}

func attachment(c *gin.Context, contentType, filename string, body []byte) {
	c.Header("Content-Disposition", `attachment; filename="`+filename+`"`)
	c.Data(http.StatusOK, contentType, body)
}
