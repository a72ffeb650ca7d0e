package license

import (
	"context"
	"time"
)

// Repository defines all data access operations for the License domain.
// The write workflows span several tables, so the repository can hand out
// a transaction-scoped copy of itself via WithTx.
type Repository interface {
	// WithTx runs fn against a copy of the repository bound to a single
	// transaction. The transaction commits when fn returns nil and rolls
	// back otherwise.
	WithTx(ctx context.Context, fn func(Repository) error) error

	// ResolvePersonID maps a national id to the internal person identifier.
	ResolvePersonID(ctx context.Context, cnp string) (id int, found bool, err error)

	// FindByPersonID returns the person's license, if any.
	FindByPersonID(ctx context.Context, personID int) (lic *License, found bool, err error)

	// Insert creates a license row and returns its generated identifier.
	// A second license for the same person surfaces as a conflict.
	Insert(ctx context.Context, personID int, expiration time.Time) (int, error)

	// UpdateExpiration overwrites the license's expiration date.
	UpdateExpiration(ctx context.Context, licenseID int, expiration time.Time) error

	// ResolveCategoryByName maps a catalog display name to its identifier.
	ResolveCategoryByName(ctx context.Context, name string) (id int, found bool, err error)

	// InsertLink adds a (license, category) endorsement. A duplicate pair
	// surfaces as a conflict.
	InsertLink(ctx context.Context, licenseID, categoryID int, acquired time.Time) error

	// UpdateLinkDate rewrites the endorsement's acquisition date and
	// returns the number of rows affected.
	UpdateLinkDate(ctx context.Context, licenseID, categoryID int, acquired time.Time) (int64, error)

	// DeleteLink removes the endorsement and returns the number of rows
	// affected.
	DeleteLink(ctx context.Context, licenseID, categoryID int) (int64, error)

	// ListLinks returns all endorsements of a license with display names.
	ListLinks(ctx context.Context, licenseID int) ([]CategoryLink, error)

	// ListCategories returns the full category catalog, ordered by id.
	ListCategories(ctx context.Context) ([]Category, error)

	// CountByCategory returns, per catalog category, the number of
	// licenses endorsed with it, including zero counts.
	CountByCategory(ctx context.Context) ([]CategoryCount, error)

	// ListHolders returns every person that holds a license.
	ListHolders(ctx context.Context) ([]Holder, error)

	// ListExtended returns the per-category pivot view of all licenses.
	ListExtended(ctx context.Context) ([]ExtendedLicense, error)
}
