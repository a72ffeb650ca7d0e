package service

import (
	"context"
	"strings"
	"time"

	"police-records-backend/internal/domains/cazier"
	"police-records-backend/internal/shared/apperror"
	"police-records-backend/pkg/cache"
	"police-records-backend/pkg/logger"
)

const (
	dateLayout = "2006-01-02"

	offenseCatalogKey = "catalog:offense-types"
	offenseCatalogTTL = 24 * time.Hour
)

type cazierService struct {
	repo  cazier.Repository
	cache cache.Cache
}

// NewCazierService builds the criminal-record service. cache may be nil;
// offense catalog reads then go straight to the store.
func NewCazierService(repo cazier.Repository, cache cache.Cache) cazier.Service {
	return &cazierService{
		repo:  repo,
		cache: cache,
	}
}

func (s *cazierService) AddEntry(ctx context.Context, req cazier.AddRequest) error {
	if err := req.Validate(); err != nil {
		return apperror.NewValidation("MISSING_FIELDS", "All record entry fields are required")
	}

	committed, err := time.Parse(dateLayout, strings.TrimSpace(req.DataComitere))
	if err != nil {
		return apperror.NewValidation("INVALID_DATE", "Dates must use the YYYY-MM-DD format")
	}

	exists, err := s.repo.OffenseExists(ctx, req.IDInfractiune)
	if err != nil {
		return err
	}
	if !exists {
		return apperror.NewValidation("INVALID_OFFENSE", "The selected offense does not exist")
	}

	personID, found, err := s.repo.ResolvePersonID(ctx, strings.TrimSpace(req.CNP))
	if err != nil {
		return err
	}
	if !found {
		return apperror.NewValidation("PERSON_NOT_FOUND", "CNP does not match any registered person")
	}

	return s.repo.InsertEntry(ctx, &cazier.Entry{
		IDPersoana:    personID,
		IDInfractiune: req.IDInfractiune,
		Descriere:     strings.TrimSpace(req.Descriere),
		DataComitere:  committed,
		Sentinta:      strings.TrimSpace(req.Sentinta),
		Durata:        req.Durata,
		Amenda:        req.Amenda,
	})
}

func (s *cazierService) Stats(ctx context.Context) (*cazier.Stats, error) {
	return s.repo.Stats(ctx)
}

func (s *cazierService) ListPersonsWithRecord(ctx context.Context) ([]cazier.PersonSummary, error) {
	persons, err := s.repo.ListPersonsWithRecord(ctx)
	if err != nil {
		return nil, err
	}
	if persons == nil {
		persons = []cazier.PersonSummary{}
	}
	return persons, nil
}

func (s *cazierService) ListPersonsWithActiveRecord(ctx context.Context) ([]cazier.PersonSummary, error) {
	persons, err := s.repo.ListPersonsWithActiveRecord(ctx)
	if err != nil {
		return nil, err
	}
	if persons == nil {
		persons = []cazier.PersonSummary{}
	}
	return persons, nil
}

func (s *cazierService) LookupByCNP(ctx context.Context, cnp string) ([]cazier.DetailRow, error) {
	details, err := s.repo.LookupByCNP(ctx, strings.TrimSpace(cnp))
	if err != nil {
		return nil, err
	}
	if details == nil {
		details = []cazier.DetailRow{}
	}
	return details, nil
}

// Offenses serves the fixed offense catalog through the cache. Cache
// failures degrade to a direct read, never to a request failure.
func (s *cazierService) Offenses(ctx context.Context) ([]cazier.Offense, error) {
	if s.cache != nil {
		var cached []cazier.Offense
		found, err := s.cache.Get(ctx, offenseCatalogKey, &cached)
		if err != nil {
			logger.Error("offense catalog cache read failed", err)
		} else if found {
			return cached, nil
		}
	}

	offenses, err := s.repo.ListOffenses(ctx)
	if err != nil {
		return nil, err
	}

	if s.cache != nil {
		if err := s.cache.Set(ctx, offenseCatalogKey, offenses, offenseCatalogTTL); err != nil {
			logger.Error("offense catalog cache write failed", err)
		}
	}

	return offenses, nil
}
