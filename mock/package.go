package mock

import (
	"context"

	"github.com/fwojciec/ecotab"
)

var _ ecotab.PackageService = (*PackageService)(nil)

// PackageService is a mock implementation of ecotab.PackageService.
type PackageService struct {
	SearchPackagesFn func(ctx context.Context, q ecotab.PackageQuery) (map[string]any, error)
	GetPackageFn     func(ctx context.Context, id string, includePrivate bool) (map[string]any, error)
}

func (s *PackageService) SearchPackages(ctx context.Context, q ecotab.PackageQuery) (map[string]any, error) {
	return s.SearchPackagesFn(ctx, q)
}

func (s *PackageService) GetPackage(ctx context.Context, id string, includePrivate bool) (map[string]any, error) {
	return s.GetPackageFn(ctx, id, includePrivate)
}
