// Package loader registers HTTP features and mounts the enabled ones.
//
// Each feature implements the Feature interface:
//
//	type Feature interface {
//	    Name() string
//	    IsEnabled() bool
//	    Load(app fiber.Router) error
//	}
//
// The Manager keeps registration order, skips disabled features and stops at
// the first Load error.
package loader
