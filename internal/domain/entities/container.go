package entities

import (
	"go.uber.org/dig"
)

// RegisterProviders registers all entity providers with the DIG container.
func RegisterProviders(container *dig.Container) error {
	// Settings and the pull-request context depend on runtime flags and
	// the Actions environment, so they are built by the controllers layer.
	return nil
}
