package address

import (
	"context"
	"time"
)

// PersonAddress is one row of the person→address lookup: the person, the
// link metadata (date obtained, domicile flag), the address itself, and the
// occupancy count computed at query time.
type PersonAddress struct {
	CNP          string     `json:"CNP"`
	Nume         string     `json:"Nume"`
	Prenume      string     `json:"Prenume"`
	DataObtinere *time.Time `json:"DataObtinere"`
	Domiciliu    bool       `json:"Domiciliu"`
	Strada       string     `json:"Strada"`
	Numar        *string    `json:"Numar"`
	Bloc         *string    `json:"Bloc"`
	Scara        *string    `json:"Scara"`
	Etaj         *string    `json:"Etaj"`
	Apartament   *string    `json:"Apartament"`
	Oras         string     `json:"Oras"`
	Judet        string     `json:"Judet"`
	CodPostal    *string    `json:"CodPostal"`
	NrPersoane   int        `json:"NrPersoane"`
}

// Repository defines data access for the Address directory.
type Repository interface {
	// LookupByCNP returns one row per (person, address) pair for the person
	// with the given national id.
	LookupByCNP(ctx context.Context, cnp string) ([]PersonAddress, error)
}

// Service defines the Address directory operations.
type Service interface {
	// LookupByCNP returns the person's addresses; a person with no address
	// records is a not-found condition.
	LookupByCNP(ctx context.Context, cnp string) ([]PersonAddress, error)
}
