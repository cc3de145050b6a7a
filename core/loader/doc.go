// Package loader registers features and mounts their routes on the fiber app.
//
//	type Feature interface {
//	    Name() string
//	    IsEnabled() bool
//	    Load(app fiber.Router) error
//	}
//
// Features are loaded in registration order. Disabled ones are skipped.
package loader
