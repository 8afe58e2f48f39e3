package audit

import (
	"segment-audit/core/reconcile"

	"github.com/gofiber/fiber/v2"
)

// Feature mounts the audit routes through the loader.
type Feature struct {
	handler *Handler
}

// NewFeature creates the audit feature with its own snapshot cache.
func NewFeature(service *Service) *Feature {
	return &Feature{handler: NewHandler(service, reconcile.NewCache())}
}

func (f *Feature) Name() string {
	return "audit"
}

func (f *Feature) IsEnabled() bool {
	return true
}

func (f *Feature) Load(app fiber.Router) error {
	f.handler.RegisterRoutes(app)
	return nil
}
