package cazier

import "context"

// Repository defines all data access operations for the criminal-record
// ledger.
type Repository interface {
	// ResolvePersonID maps a national id to the internal person identifier.
	ResolvePersonID(ctx context.Context, cnp string) (id int, found bool, err error)

	// OffenseExists reports whether the offense catalog contains the id.
	OffenseExists(ctx context.Context, id int) (bool, error)

	// InsertEntry creates a record entry.
	InsertEntry(ctx context.Context, e *Entry) error

	// Stats counts persons with and without a record.
	Stats(ctx context.Context) (*Stats, error)

	// ListPersonsWithRecord returns each person holding at least one
	// entry, once.
	ListPersonsWithRecord(ctx context.Context) ([]PersonSummary, error)

	// ListPersonsWithActiveRecord returns persons with at least one entry
	// whose commission date falls within its duration, counted in years.
	ListPersonsWithActiveRecord(ctx context.Context) ([]PersonSummary, error)

	// LookupByCNP returns the record detail rows for persons whose CNP
	// contains the given fragment, entries outer-joined.
	LookupByCNP(ctx context.Context, cnp string) ([]DetailRow, error)

	// ListOffenses returns the full offense catalog.
	ListOffenses(ctx context.Context) ([]Offense, error)
}
