package repositories

import (
	ghRepo "github.com/Mheaus/package-lock-changes/internal/infrastructure/repositories/github"
	"github.com/Mheaus/package-lock-changes/internal/infrastructure/repositories/gitlocal"
	"github.com/Mheaus/package-lock-changes/internal/lockfile"
	"go.uber.org/dig"
)

// RegisterProviders registers all repository providers with the DIG container.
func RegisterProviders(container *dig.Container) error {
	// Register provider registry with all provider factories
	if err := container.Provide(func() *ProviderRegistry {
		reg := NewProviderRegistry()
		reg.Register("github", ghRepo.NewProviderRepository)
		return reg
	}); err != nil {
		return err
	}

	// Register lockfile parser registry with all built-in formats
	if err := container.Provide(lockfile.DefaultRegistry); err != nil {
		return err
	}

	// Register the local Git reader
	if err := container.Provide(gitlocal.NewLocalRepository); err != nil {
		return err
	}

	return nil
}
