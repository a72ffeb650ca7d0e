package activity

import (
	"context"
	"time"
)

// PersonActivity is one employment/affiliation row: the person, the
// institution and the link metadata (post, start date, duration).
type PersonActivity struct {
	CNP          string     `json:"CNP"`
	Nume         string     `json:"Nume"`
	Prenume      string     `json:"Prenume"`
	Institutia   string     `json:"Institutia"`
	Post         *string    `json:"Post"`
	DataIncepere *time.Time `json:"DataIncepere"`
	Durata       *int       `json:"Durata"`
}

// Institution is an institution with its physical address joined in.
type Institution struct {
	Institutia string  `json:"Institutia"`
	Strada     string  `json:"Strada"`
	Numar      *string `json:"Numar"`
	Bloc       *string `json:"Bloc"`
	Scara      *string `json:"Scara"`
	Etaj       *string `json:"Etaj"`
	Apartament *string `json:"Apartament"`
	Oras       string  `json:"Oras"`
	Judet      string  `json:"Judet"`
	CodPostal  *string `json:"CodPostal"`
}

// Repository defines data access for the activity log.
type Repository interface {
	// ListByCNP returns the person's affiliations.
	ListByCNP(ctx context.Context, cnp string) ([]PersonActivity, error)

	// SearchInstitutions returns institutions whose name contains the
	// fragment, case-insensitively, with their addresses.
	SearchInstitutions(ctx context.Context, name string) ([]Institution, error)
}

// Service defines the activity log operations. Empty results are
// not-found conditions on both reads.
type Service interface {
	ListByCNP(ctx context.Context, cnp string) ([]PersonActivity, error)
	SearchInstitutions(ctx context.Context, name string) ([]Institution, error)
}
