package person

import "context"

// Repository defines all data access operations for the Person domain.
type Repository interface {
	// Search returns persons matching the trimmed substring filters, each
	// enriched with the partner's name via outer join.
	Search(ctx context.Context, filter SearchFilter) ([]PersonWithPartner, error)

	// ResolveIDByCNP maps a national id to the internal identifier.
	// found=false when no person carries that CNP.
	ResolveIDByCNP(ctx context.Context, cnp string) (id int, found bool, err error)

	// Insert creates a person row. A duplicate CNP surfaces as a conflict.
	Insert(ctx context.Context, p *Person) error

	// Update replaces all fields of the row with the given id and returns
	// the number of rows affected.
	Update(ctx context.Context, id int, p *Person) (int64, error)

	// Delete removes a person row and returns the number of rows affected.
	// Dependent rows cascade at the storage layer.
	Delete(ctx context.Context, id int) (int64, error)
}
