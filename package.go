package ecotab

import "context"

// PackageQuery is a search over ESS-DIVE packages (datasets).
type PackageQuery struct {
	// Text is the free-text search.
	Text string
	// ProviderName restricts results to one project.
	ProviderName string
	PageSize     int
	RowStart     int
	// IncludePrivate searches private packages too; requires a token.
	IncludePrivate bool
	// Extra query parameters passed through as-is. They override the
	// parameters above.
	Extra map[string]string
}

// PackageService reads dataset packages from a remote repository.
// Responses are decoded JSON documents.
type PackageService interface {
	// SearchPackages lists packages matching q.
	SearchPackages(ctx context.Context, q PackageQuery) (map[string]any, error)

	// GetPackage retrieves one package by ID.
	// Returns ENOTFOUND if the package does not exist.
	GetPackage(ctx context.Context, id string, includePrivate bool) (map[string]any, error)
}
