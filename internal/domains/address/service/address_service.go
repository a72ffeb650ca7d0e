package service

import (
	"context"
	"strings"

	"police-records-backend/internal/domains/address"
	"police-records-backend/internal/shared/apperror"
)

type addressService struct {
	repo address.Repository
}

func NewAddressService(repo address.Repository) address.Service {
	return &addressService{
		repo: repo,
	}
}

func (s *addressService) LookupByCNP(ctx context.Context, cnp string) ([]address.PersonAddress, error) {
	results, err := s.repo.LookupByCNP(ctx, strings.TrimSpace(cnp))
	if err != nil {
		return nil, err
	}

	if len(results) == 0 {
		return nil, apperror.NewNotFound("NO_ADDRESSES", "No persons with this CNP have address records")
	}

	return results, nil
}
