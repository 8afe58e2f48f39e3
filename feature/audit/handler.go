package audit

import (
	"errors"
	"net/url"

	"segment-audit/core/keys"
	"segment-audit/core/logger"
	"segment-audit/core/reconcile"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

const snapshotKey = "audit"

// Handler handles HTTP requests for audit reports.
type Handler struct {
	service *Service
	cache   *reconcile.Cache
}

// NewHandler creates a new HTTP handler. Snapshots are shared between
// requests until they expire.
func NewHandler(service *Service, cache *reconcile.Cache) *Handler {
	return &Handler{service: service, cache: cache}
}

// RegisterRoutes registers the audit routes.
func (h *Handler) RegisterRoutes(app fiber.Router) {
	group := app.Group("/audit")
	group.Get("/", h.HandleAudit)
	group.Get("/:key", h.HandleKey)
}

// HandleAudit returns the flagged documents, or every document with ?all=true.
func (h *Handler) HandleAudit(c *fiber.Ctx) error {
	l := logger.WithRayID(h.service.logger, c)

	snap, err := h.cache.GetOrBuild(c.Context(), snapshotKey, h.service.Audit)
	if err != nil {
		l.Error("Audit failed", zap.Error(err))
		return c.Status(statusFor(err)).JSON(fiber.Map{"error": err.Error()})
	}

	return c.JSON(NewReport(snap, c.QueryBool("all")))
}

// HandleKey returns the reconciliation result of one key.
func (h *Handler) HandleKey(c *fiber.Ctx) error {
	l := logger.WithRayID(h.service.logger, c)

	raw, err := url.PathUnescape(c.Params("key"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid key"})
	}

	snap, err := h.cache.GetOrBuild(c.Context(), snapshotKey, h.service.Audit)
	if err != nil {
		l.Error("Audit failed", zap.Error(err))
		return c.Status(statusFor(err)).JSON(fiber.Map{"error": err.Error()})
	}

	result, ok := snap.Find(keys.Key(raw))
	if !ok {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "key not found", "key": raw})
	}

	return c.JSON(result)
}

func statusFor(err error) int {
	if errors.Is(err, ErrMissingInput) {
		return fiber.StatusServiceUnavailable
	}
	return fiber.StatusInternalServerError
}
