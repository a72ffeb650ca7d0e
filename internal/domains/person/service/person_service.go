package service

import (
	"context"
	"strings"
	"time"

	"police-records-backend/internal/domains/person"
	"police-records-backend/internal/shared/apperror"
)

const dateLayout = "2006-01-02"

type personService struct {
	repo person.Repository
}

func NewPersonService(repo person.Repository) person.Service {
	return &personService{
		repo: repo,
	}
}

func (s *personService) Search(ctx context.Context, filter person.SearchFilter) ([]person.PersonWithPartner, error) {
	trimmed := person.SearchFilter{
		Nume:    strings.TrimSpace(filter.Nume),
		Prenume: strings.TrimSpace(filter.Prenume),
		CNP:     strings.TrimSpace(filter.CNP),
	}

	results, err := s.repo.Search(ctx, trimmed)
	if err != nil {
		return nil, err
	}

	if results == nil {
		results = []person.PersonWithPartner{}
	}
	return results, nil
}

func (s *personService) Register(ctx context.Context, req *person.CreateRequest) error {
	if err := req.Validate(); err != nil {
		return apperror.NewValidation("MISSING_FIELDS", "Nume, Prenume and a valid CNP are required")
	}

	p := &person.Person{
		Nume:    strings.TrimSpace(req.Nume),
		Prenume: strings.TrimSpace(req.Prenume),
		CNP:     strings.TrimSpace(req.CNP),
		Sex:     optional(req.Sex),
		Telefon: optional(req.Telefon),
		Email:   optional(req.Email),
	}

	birthDate, err := parseOptionalDate(req.DataNasterii)
	if err != nil {
		return err
	}
	p.DataNasterii = birthDate

	partnerID, err := s.resolvePartner(ctx, req.CNPPartener)
	if err != nil {
		return err
	}
	p.IDPartener = partnerID

	return s.repo.Insert(ctx, p)
}

func (s *personService) Update(ctx context.Context, id int, req *person.UpdateRequest) error {
	if err := req.Validate(); err != nil {
		return apperror.NewValidation("MISSING_FIELDS", "Nume, Prenume, CNP, DataNasterii and Sex are required")
	}

	p := &person.Person{
		Nume:    strings.TrimSpace(req.Nume),
		Prenume: strings.TrimSpace(req.Prenume),
		CNP:     strings.TrimSpace(req.CNP),
		Sex:     optional(req.Sex),
		Telefon: optional(req.Telefon),
		Email:   optional(req.Email),
	}

	birthDate, err := parseOptionalDate(req.DataNasterii)
	if err != nil {
		return err
	}
	p.DataNasterii = birthDate

	partnerID, err := s.resolvePartner(ctx, req.CNPPartener)
	if err != nil {
		return err
	}
	p.IDPartener = partnerID

	affected, err := s.repo.Update(ctx, id, p)
	if err != nil {
		return err
	}
	if affected == 0 {
		return apperror.NewNotFound("PERSON_NOT_FOUND", "Person not found")
	}

	return nil
}

func (s *personService) Delete(ctx context.Context, id int) error {
	affected, err := s.repo.Delete(ctx, id)
	if err != nil {
		return err
	}
	if affected == 0 {
		return apperror.NewNotFound("PERSON_NOT_FOUND", "Person not found")
	}

	return nil
}

// resolvePartner maps an optional partner CNP to an identifier. An
// unresolvable CNP is a validation failure of the write request, not a 404.
func (s *personService) resolvePartner(ctx context.Context, cnpPartener string) (*int, error) {
	cnpPartener = strings.TrimSpace(cnpPartener)
	if cnpPartener == "" {
		return nil, nil
	}

	id, found, err := s.repo.ResolveIDByCNP(ctx, cnpPartener)
	if err != nil {
		return nil, err
	}
	if !found {
		return nil, apperror.NewValidation("PARTNER_NOT_FOUND", "Partner CNP does not match any registered person")
	}

	return &id, nil
}

func parseOptionalDate(value string) (*time.Time, error) {
	value = strings.TrimSpace(value)
	if value == "" {
		return nil, nil
	}

	t, err := time.Parse(dateLayout, value)
	if err != nil {
		return nil, apperror.NewValidation("INVALID_DATE", "Dates must use the YYYY-MM-DD format")
	}
	return &t, nil
}

func optional(value string) *string {
	value = strings.TrimSpace(value)
	if value == "" {
		return nil
	}
	return &value
}
