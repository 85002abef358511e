package users

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"coach-backend/internal/shared/metrics"
	"coach-backend/internal/shared/server/middleware"
	"coach-backend/internal/shared/server/respond"
	"coach-backend/internal/shared/telemetry"
	"coach-backend/internal/shared/util"
)

const (
	msgSynced         = "User synced"
	msgMissingPayload = "No user data in payload"
	msgInsertFailed   = "Database insert failed"
	msgServerError    = "Server error"
)

type Handler struct {
	Svc *Service
}

func NewHandler(svc *Service) *Handler {
	return &Handler{Svc: svc}
}

// RegisterRoutes mounts the identity webhook under rg.
func (h *Handler) RegisterRoutes(rg gin.IRoutes) {
	rg.POST("/webhooks/users", h.sync)
}

// RegisterFunctionRoute mounts the webhook at the path upstream senders were configured with.
func (h *Handler) RegisterFunctionRoute(r gin.IRoutes) {
	r.POST("/sync_auth_users", h.sync)
}

func (h *Handler) sync(c *gin.Context) {
	start := time.Now()
	defer func() {
		metrics.ObserveSyncDurationMs(float64(time.Since(start).Microseconds()) / 1000.0)
	}()

	if h.Svc == nil {
		respond.Text(c, http.StatusInternalServerError, "internal", msgServerError)
		return
	}
	reqID := middleware.RequestIDFromContext(c)

	body, err := c.GetRawData()
	if err != nil {
		metrics.IncSyncRejected()
		telemetry.Error("user_sync.read_failed", map[string]any{"request_id": reqID, "error": err})
		respond.Text(c, http.StatusInternalServerError, ErrorCodeMalformed, msgServerError)
		return
	}

	identity, err := ExtractIdentity(body)
	middleware.SetSyncedIdentity(c, identity.ID, identity.Source)
	if err != nil {
		metrics.IncSyncRejected()
		fields := map[string]any{
			"request_id":  reqID,
			"payload_key": identity.Source,
			"error":       err,
		}
		if errors.Is(err, ErrMissingIdentity) {
			telemetry.Error("user_sync.missing_identity", fields)
			respond.Text(c, http.StatusBadRequest, ErrorCodeMissingIdentity, msgMissingPayload)
			return
		}
		telemetry.Error("user_sync.malformed_payload", fields)
		respond.Text(c, http.StatusInternalServerError, ErrorCodeMalformed, msgServerError)
		return
	}

	result, err := h.Svc.SyncFromEvent(c.Request.Context(), identity)
	if errors.Is(err, ErrMissingIdentity) {
		metrics.IncSyncRejected()
		telemetry.Error("user_sync.missing_identity", map[string]any{
			"request_id":  reqID,
			"payload_key": identity.Source,
			"error":       err,
		})
		respond.Text(c, http.StatusBadRequest, ErrorCodeMissingIdentity, msgMissingPayload)
		return
	}
	if err != nil {
		metrics.IncSyncFailed()
		telemetry.Error("user_sync.store_failed", map[string]any{
			"request_id":     reqID,
			"user_id":        identity.ID,
			"payload_key":    identity.Source,
			"already_exists": errors.Is(err, ErrAlreadyExists),
			"unknown_role":   errors.Is(err, ErrUnknownRole),
			"error":          err,
		})
		if errors.Is(err, ErrStoreWrite) {
			respond.Text(c, http.StatusInternalServerError, ErrorCodeStoreWrite, msgInsertFailed)
			return
		}
		respond.Text(c, http.StatusInternalServerError, "internal", msgServerError)
		return
	}

	metrics.IncSyncSucceeded()
	telemetry.Info("user_sync.synced", map[string]any{
		"request_id":  reqID,
		"user_id":     result.Profile.ID,
		"payload_key": identity.Source,
		"created":     result.Created,
		"role_id":     result.Profile.RoleID,
		"email_hash":  emailHash(result.Profile.Email),
	})
	respond.Message(c, http.StatusOK, msgSynced)
}

func emailHash(email *string) string {
	if email == nil {
		return ""
	}
	return util.EmailFingerprint(*email)
}
