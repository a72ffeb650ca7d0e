package cazier

import (
	"errors"
	"time"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/shopspring/decimal"
)

// Entry is one criminal-record row. Durata is stored in years and drives
// the active-record derivation.
type Entry struct {
	IDCazier      int             `json:"IDCazier"`
	IDPersoana    int             `json:"IDPersoana"`
	IDInfractiune int             `json:"IDInfractiune"`
	Descriere     string          `json:"Descriere"`
	DataComitere  time.Time       `json:"DataComitere"`
	Sentinta      string          `json:"Sentinta"`
	Durata        int             `json:"Durata"`
	Amenda        decimal.Decimal `json:"Amenda"`
}

// Offense is one entry of the fixed offense catalog.
type Offense struct {
	IDInfractiune int    `json:"IDInfractiune"`
	Denumire      string `json:"Denumire"`
}

// PersonSummary is a person row in the with-record and active-record
// listings.
type PersonSummary struct {
	IDPersoana   int        `json:"IDPersoana"`
	Nume         string     `json:"Nume"`
	Prenume      string     `json:"Prenume"`
	CNP          string     `json:"CNP"`
	DataNasterii *time.Time `json:"DataNasterii"`
	Sex          *string    `json:"Sex"`
}

// Stats counts persons with and without at least one record entry. The two
// numbers partition the person registry.
type Stats struct {
	NumarPersoaneCuCazier   int `json:"NumarPersoaneCuCazier"`
	NumarPersoaneFaraCazier int `json:"NumarPersoaneFaraCazier"`
}

// DetailRow is one row of the per-person record lookup. The offense fields
// come from an outer join and are all null for a person with no entries,
// which still yields exactly one row.
type DetailRow struct {
	Nume                string           `json:"Nume"`
	Prenume             string           `json:"Prenume"`
	CNP                 string           `json:"CNP"`
	DataNasterii        *time.Time       `json:"DataNasterii"`
	Sex                 *string          `json:"Sex"`
	DenumireInfractiune *string          `json:"DenumireInfractiune"`
	Descriere           *string          `json:"Descriere"`
	DataComitere        *time.Time       `json:"DataComitere"`
	Sentinta            *string          `json:"Sentinta"`
	Durata              *int             `json:"Durata"`
	Amenda              *decimal.Decimal `json:"Amenda"`
}

// AddRequest creates a record entry for the person identified by CNP.
// Every field is required.
type AddRequest struct {
	CNP           string          `json:"CNP"`
	IDInfractiune int             `json:"IDInfractiune"`
	Descriere     string          `json:"Descriere"`
	DataComitere  string          `json:"DataComitere"`
	Sentinta      string          `json:"Sentinta"`
	Durata        int             `json:"Durata"`
	Amenda        decimal.Decimal `json:"Amenda"`
}

func (r AddRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.CNP, validation.Required),
		validation.Field(&r.IDInfractiune, validation.Required),
		validation.Field(&r.Descriere, validation.Required),
		validation.Field(&r.DataComitere, validation.Required),
		validation.Field(&r.Sentinta, validation.Required),
		validation.Field(&r.Durata, validation.Required),
		validation.Field(&r.Amenda, validation.By(requiredAmount)),
	)
}

// requiredAmount rejects an absent or zero fine. ozzo's Required considers
// any non-time struct value present, so the zero decimal slips through it.
func requiredAmount(value interface{}) error {
	amount, ok := value.(decimal.Decimal)
	if !ok || amount.IsZero() {
		return errors.New("cannot be blank")
	}
	return nil
}
