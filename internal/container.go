package internal

import (
	"github.com/Mheaus/package-lock-changes/internal/domain/commands"
	"github.com/Mheaus/package-lock-changes/internal/domain/entities"
	"github.com/Mheaus/package-lock-changes/internal/infrastructure/controllers"
	"github.com/Mheaus/package-lock-changes/internal/infrastructure/repositories"
	"go.uber.org/dig"
)

// RegisterProviders registers all internal providers with the DIG container.
func RegisterProviders(container *dig.Container) error {
	// Register all layers (bottom-up: infrastructure repos -> domain entities -> domain commands -> controllers)
	if err := repositories.RegisterProviders(container); err != nil {
		return err
	}
	if err := entities.RegisterProviders(container); err != nil {
		return err
	}
	if err := commands.RegisterProviders(container); err != nil {
		return err
	}
	if err := controllers.RegisterProviders(container); err != nil {
		return err
	}

	// Register the main app internal
	if err := container.Provide(NewAppInternal); err != nil {
		return err
	}

	return nil
}

// AppInternal aggregates the CLI controllers resolved from the container.
type AppInternal struct {
	controllers *[]entities.Controller
}

// NewAppInternal creates the AppInternal from the aggregated controllers.
func NewAppInternal(controllers *[]entities.Controller) *AppInternal {
	return &AppInternal{controllers: controllers}
}

// GetControllers returns all registered CLI controllers.
func (it *AppInternal) GetControllers() []entities.Controller {
	return *it.controllers
}
