package cazier

import "context"

// Service defines the criminal-record ledger operations.
type Service interface {
	// AddEntry records an offense for the person identified by CNP.
	AddEntry(ctx context.Context, req AddRequest) error

	// Stats counts persons with and without a record.
	Stats(ctx context.Context) (*Stats, error)

	// ListPersonsWithRecord returns every person with at least one entry.
	ListPersonsWithRecord(ctx context.Context) ([]PersonSummary, error)

	// ListPersonsWithActiveRecord returns persons with an entry still
	// inside its duration window.
	ListPersonsWithActiveRecord(ctx context.Context) ([]PersonSummary, error)

	// LookupByCNP returns record detail rows for a CNP fragment.
	LookupByCNP(ctx context.Context, cnp string) ([]DetailRow, error)

	// Offenses returns the fixed offense catalog.
	Offenses(ctx context.Context) ([]Offense, error)
}
