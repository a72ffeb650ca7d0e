package license

import "context"

// Service defines the License ledger operations.
type Service interface {
	// Issue creates a license for the person identified by CNP and
	// returns the new license identifier.
	Issue(ctx context.Context, req IssueRequest) (int, error)

	// AttachCategory adds a category endorsement to the person's license.
	AttachCategory(ctx context.Context, req AttachRequest) error

	// UpdateCategoryDate rewrites one endorsement's acquisition date and
	// recomputes the license expiration as that date plus five years.
	UpdateCategoryDate(ctx context.Context, req UpdateCategoryRequest) error

	// DetachCategory removes one endorsement. The expiration date is left
	// untouched.
	DetachCategory(ctx context.Context, req DetachRequest) error

	// GetByCNP returns the person's license with all endorsements.
	GetByCNP(ctx context.Context, cnp string) (*PersonLicense, error)

	// Catalog returns the fixed category catalog.
	Catalog(ctx context.Context) ([]Category, error)

	// CountByCategory returns per-category license counts.
	CountByCategory(ctx context.Context) ([]CategoryCount, error)

	// ListHolders returns every license holder.
	ListHolders(ctx context.Context) ([]Holder, error)

	// ListExtended returns the per-category pivot view of all licenses.
	ListExtended(ctx context.Context) ([]ExtendedLicense, error)
}
