// Package loader provides the feature loading system.
//
// Each feature implements the Feature interface and is registered with a
// Manager. LoadAll mounts every enabled feature on the application in
// registration order.
//
//	type Feature interface {
//	    Name() string
//	    IsEnabled() bool
//	    Load(app fiber.Router) error
//	}
package loader
