package readinglogs

import (
	"errors"
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	"fastreader/internal/shared/server/respond"
)

// Handler wires HTTP handlers to the service.
type Handler struct {
	Svc *Service
}

// NewHandler constructs a Handler.
func NewHandler(svc *Service) *Handler {
	return &Handler{Svc: svc}
}

// RegisterRoutes attaches reading-log routes to the router.
func (h *Handler) RegisterRoutes(r *gin.Engine) {
	r.POST("/api/log/:id", h.record)
}

// logRequest accepts loose JSON; numeric fields arrive as numbers or
// strings from different clients and are coerced rather than rejected.
type logRequest struct {
	SpeedWPM        any `json:"speed_wpm"`
	ChunkSize       any `json:"chunk_size"`
	DurationSeconds any `json:"duration_seconds"`
}

func (h *Handler) record(c *gin.Context) {
	documentID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || documentID < 1 {
		respond.Error(c, http.StatusNotFound, "not_found", "document not found", nil)
		return
	}

	// A missing or malformed body degrades to all-default fields, same as
	// treating it as an empty payload.
	var req logRequest
	_ = c.ShouldBindJSON(&req)

	session := Session{
		SpeedWPM:        coerceInt(req.SpeedWPM, 0),
		ChunkSize:       coerceInt(req.ChunkSize, 1),
		DurationSeconds: coerceOptionalInt(req.DurationSeconds),
	}

	logID, err := h.Svc.Record(c.Request.Context(), documentID, session)
	if err != nil {
		switch {
		case errors.Is(err, ErrDocumentNotFound):
			respond.Error(c, http.StatusNotFound, "not_found", "document not found", nil)
		default:
			respond.Error(c, http.StatusInternalServerError, "internal_error", "failed to record session", nil)
		}
		return
	}

	respond.OK(c, gin.H{"log_id": logID})
}

// coerceInt converts JSON numbers and numeric strings, truncating floats.
func coerceInt(v any, def int) int {
	switch t := v.(type) {
	case float64:
		return int(t)
	case string:
		if n, err := strconv.Atoi(strings.TrimSpace(t)); err == nil {
			return n
		}
	}
	return def
}

func coerceOptionalInt(v any) *int {
	switch t := v.(type) {
	case float64:
		n := int(t)
		return &n
	case string:
		if n, err := strconv.Atoi(strings.TrimSpace(t)); err == nil {
			return &n
		}
	}
	return nil
}
