package http

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/surfapp/recommender/internal/domain/recommend"
	"github.com/surfapp/recommender/internal/infra/config"
	apperrors "github.com/surfapp/recommender/pkg/errors"
)

// Handler wires the HTTP transport to the recommendation pipeline.
type Handler struct {
	recommendSvc      recommend.Service
	logger            *slog.Logger
	exposeDiagnostics bool
}

// NewHandler constructs the root HTTP handler.
func NewHandler(cfg *config.Config, recommendSvc recommend.Service, logger *slog.Logger) *Handler {
	return &Handler{
		recommendSvc:      recommendSvc,
		logger:            logger.With("component", "http.handler"),
		exposeDiagnostics: cfg.Predictor.ExposeDiagnostics,
	}
}

// Recommend scores every known spot against the requester's preferences and
// returns them ranked best first.
func (h *Handler) Recommend(c *gin.Context) {
	var req recommend.Request
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, NewHTTPError(http.StatusBadRequest, "invalid_request", errMessage(err), err))
		return
	}

	results, err := h.recommendSvc.Recommend(c.Request.Context(), req)
	if err != nil {
		if apperrors.IsCode(err, apperrors.CodeNoDataAvailable) {
			message := "forecast data is temporarily unavailable"
			if h.exposeDiagnostics {
				message = err.Error()
			}
			abortWithError(c, NewHTTPError(http.StatusServiceUnavailable, apperrors.CodeNoDataAvailable, message, err))
			return
		}
		code := apperrors.CodeOf(err)
		if code == "" {
			code = "recommend_failed"
		}
		abortWithError(c, NewHTTPError(http.StatusInternalServerError, code, errMessage(err), err))
		return
	}

	c.JSON(http.StatusOK, results)
}

// Health reports liveness plus the prediction cache state.
func (h *Handler) Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status": "ok",
		"cache":  h.recommendSvc.CacheState(c.Request.Context()),
	})
}

func errMessage(err error) string {
	if err == nil {
		return ""
	}
	return err.Error()
}
