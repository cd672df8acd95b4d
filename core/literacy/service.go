package literacy

import (
	"context"

	"github.com/nabha-edu/shiksha/core"
)

var ErrNotFound = core.NewNotFoundError("module not found")

type (
	Repository interface {
		// CreateModule is only exercised by the seeder; the API has no module write endpoint.
		CreateModule(ctx context.Context, mod Module) (Module, error)
		GetModuleByID(ctx context.Context, id string) (Module, error)
		FilterModules(ctx context.Context, filter QueryFilter) ([]Module, error)
	}

	ServiceInterface interface {
		GetByID(ctx context.Context, id string) (Module, error)
		Filter(ctx context.Context, filter QueryFilter) ([]Module, error)
	}

	Service struct {
		repo Repository
	}
)

var _ ServiceInterface = (*Service)(nil)

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

func (svc *Service) GetByID(ctx context.Context, id string) (Module, error) {
	return svc.repo.GetModuleByID(ctx, id)
}

func (svc *Service) Filter(ctx context.Context, filter QueryFilter) ([]Module, error) {
	return svc.repo.FilterModules(ctx, filter)
}
