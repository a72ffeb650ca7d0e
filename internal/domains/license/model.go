package license

import (
	"time"

	validation "github.com/go-ozzo/ozzo-validation/v4"
)

// License is a driving license. At most one exists per person; the
// expiration date is maintained as a side effect of endorsement updates.
type License struct {
	IDPermis     int        `json:"IDPermis"`
	IDPersoana   int        `json:"-"`
	DataExpirare *time.Time `json:"DataExpirare"`
}

// CategoryLink is one endorsement on a license: a row of the
// license-to-category association carrying its own acquisition date.
type CategoryLink struct {
	IDPermis      int        `json:"IDPermis"`
	IDCategorie   int        `json:"IDCategorie"`
	Denumire      string     `json:"Denumire"`
	DataDobandire *time.Time `json:"DataDobandire"`
}

// Category is one entry of the fixed category catalog ("A", "B1", "CE", ...).
type Category struct {
	IDCategorie int    `json:"IDCategorie"`
	Denumire    string `json:"Denumire"`
}

// CategoryCount is how many licenses carry a given category endorsement.
type CategoryCount struct {
	Categorie string `json:"Categorie"`
	Permise   int    `json:"Permise"`
}

// Holder is a person holding a license, for the all-holders listing.
type Holder struct {
	CNP          string     `json:"CNP"`
	Nume         string     `json:"Nume"`
	Prenume      string     `json:"Prenume"`
	DataExpirare *time.Time `json:"DataExpirare"`
}

// ExtendedLicense is the per-category pivot view: one column per catalog
// category holding the acquisition date, or null when not endorsed.
type ExtendedLicense struct {
	Nume         string     `json:"Nume"`
	Prenume      string     `json:"Prenume"`
	CNP          string     `json:"CNP"`
	DataExpirare *time.Time `json:"DataExpirare"`
	A            *time.Time `json:"A"`
	A1           *time.Time `json:"A1"`
	A2           *time.Time `json:"A2"`
	B            *time.Time `json:"B"`
	B1           *time.Time `json:"B1"`
	B2           *time.Time `json:"B2"`
	C            *time.Time `json:"C"`
	C1           *time.Time `json:"C1"`
	CE           *time.Time `json:"CE"`
	D            *time.Time `json:"D"`
	D1           *time.Time `json:"D1"`
	DE           *time.Time `json:"DE"`
	Tr           *time.Time `json:"Tr"`
	Tb           *time.Time `json:"Tb"`
	Tv           *time.Time `json:"Tv"`
}

// PersonLicense is the license lookup response: the license plus all of
// its endorsements with display names.
type PersonLicense struct {
	IDPermis     int            `json:"IDPermis"`
	DataExpirare *time.Time     `json:"DataExpirare"`
	Categorii    []CategoryLink `json:"categorii"`
}

// IssueRequest creates a license for the person identified by CNP.
type IssueRequest struct {
	CNP          string `json:"CNP"`
	DataExpirare string `json:"DataExpirare"`
}

func (r IssueRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.CNP, validation.Required),
		validation.Field(&r.DataExpirare, validation.Required),
	)
}

// AttachRequest adds a category endorsement, referenced by display name.
type AttachRequest struct {
	CNP           string `json:"CNP"`
	Denumire      string `json:"Denumire"`
	DataDobandire string `json:"DataDobandire"`
}

func (r AttachRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.CNP, validation.Required),
		validation.Field(&r.Denumire, validation.Required),
		validation.Field(&r.DataDobandire, validation.Required),
	)
}

// UpdateCategoryRequest rewrites one endorsement's acquisition date.
type UpdateCategoryRequest struct {
	CNP           string `json:"CNP"`
	IDCategorie   int    `json:"IDCategorie"`
	DataDobandire string `json:"DataDobandire"`
}

func (r UpdateCategoryRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.CNP, validation.Required),
		validation.Field(&r.IDCategorie, validation.Required),
		validation.Field(&r.DataDobandire, validation.Required),
	)
}

// DetachRequest removes one endorsement from the person's license.
type DetachRequest struct {
	CNP         string `json:"CNP"`
	IDCategorie int    `json:"IDCategorie"`
}

func (r DetachRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.CNP, validation.Required),
		validation.Field(&r.IDCategorie, validation.Required),
	)
}
