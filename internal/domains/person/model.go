package person

import (
	"regexp"
	"time"

	validation "github.com/go-ozzo/ozzo-validation/v4"
)

// cnpPattern matches a CNP: the 13-digit national identification number.
var cnpPattern = regexp.MustCompile(`^[0-9]{13}$`)

// Person is the canonical identity record. Every other domain references it
// by IDPersoana; CNP is the external natural key and is unique.
type Person struct {
	IDPersoana   int        `json:"IDPersoana"`
	Nume         string     `json:"Nume"`
	Prenume      string     `json:"Prenume"`
	CNP          string     `json:"CNP"`
	DataNasterii *time.Time `json:"DataNasterii"`
	Sex          *string    `json:"Sex"`
	Telefon      *string    `json:"Telefon"`
	Email        *string    `json:"Email"`
	IDPartener   *int       `json:"-"`
}

// PersonWithPartner is a search row: the person plus the partner's name,
// outer-joined. An absent partner renders as "-", never as null.
type PersonWithPartner struct {
	IDPersoana      int        `json:"IDPersoana"`
	Nume            string     `json:"Nume"`
	Prenume         string     `json:"Prenume"`
	CNP             string     `json:"CNP"`
	DataNasterii    *time.Time `json:"DataNasterii"`
	Sex             *string    `json:"Sex"`
	Telefon         *string    `json:"Telefon"`
	Email           *string    `json:"Email"`
	NumePartener    string     `json:"Nume_Partener"`
	PrenumePartener string     `json:"Prenume_Partener"`
}

// SearchFilter holds the optional substring filters; empty fields match
// everything and the three combine with AND.
type SearchFilter struct {
	Nume    string
	Prenume string
	CNP     string
}

// CreateRequest is the payload for registering a person. The partner, when
// given, is referenced by CNP and resolved to an identifier at write time.
type CreateRequest struct {
	Nume         string `json:"Nume"`
	Prenume      string `json:"Prenume"`
	CNP          string `json:"CNP"`
	DataNasterii string `json:"DataNasterii"`
	Sex          string `json:"Sex"`
	Telefon      string `json:"Telefon"`
	Email        string `json:"Email"`
	CNPPartener  string `json:"CNPPartener"`
}

func (r CreateRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Nume, validation.Required),
		validation.Field(&r.Prenume, validation.Required),
		validation.Field(&r.CNP, validation.Required, validation.Match(cnpPattern)),
	)
}

// UpdateRequest replaces all fields of a person. Unlike registration,
// an update also requires birth date and sex.
type UpdateRequest struct {
	Nume         string `json:"Nume"`
	Prenume      string `json:"Prenume"`
	CNP          string `json:"CNP"`
	DataNasterii string `json:"DataNasterii"`
	Sex          string `json:"Sex"`
	Telefon      string `json:"Telefon"`
	Email        string `json:"Email"`
	CNPPartener  string `json:"CNPPartener"`
}

func (r UpdateRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Nume, validation.Required),
		validation.Field(&r.Prenume, validation.Required),
		validation.Field(&r.CNP, validation.Required, validation.Match(cnpPattern)),
		validation.Field(&r.DataNasterii, validation.Required),
		validation.Field(&r.Sex, validation.Required),
	)
}
