package service

import (
	"context"
	"strings"
	"time"

	"police-records-backend/internal/domains/license"
	"police-records-backend/internal/shared/apperror"
	"police-records-backend/pkg/cache"
	"police-records-backend/pkg/logger"
)

const (
	dateLayout = "2006-01-02"

	categoryCatalogKey = "catalog:license-categories"
	categoryCatalogTTL = 24 * time.Hour

	// expirationYears is how far a license is valid from the acquisition
	// date of the most recently touched endorsement.
	expirationYears = 5
)

type licenseService struct {
	repo  license.Repository
	cache cache.Cache
}

// NewLicenseService builds the license service. cache may be nil; catalog
// reads then go straight to the store.
func NewLicenseService(repo license.Repository, cache cache.Cache) license.Service {
	return &licenseService{
		repo:  repo,
		cache: cache,
	}
}

func (s *licenseService) Issue(ctx context.Context, req license.IssueRequest) (int, error) {
	if err := req.Validate(); err != nil {
		return 0, apperror.NewValidation("MISSING_FIELDS", "CNP and DataExpirare are required")
	}

	expiration, err := parseDate(req.DataExpirare)
	if err != nil {
		return 0, err
	}

	personID, err := s.resolvePerson(ctx, s.repo, req.CNP)
	if err != nil {
		return 0, err
	}

	// The one-license-per-person rule lives in a unique constraint; the
	// insert surfaces a conflict without a pre-check.
	return s.repo.Insert(ctx, personID, expiration)
}

func (s *licenseService) AttachCategory(ctx context.Context, req license.AttachRequest) error {
	if err := req.Validate(); err != nil {
		return apperror.NewValidation("MISSING_FIELDS", "CNP, Denumire and DataDobandire are required")
	}

	acquired, err := parseDate(req.DataDobandire)
	if err != nil {
		return err
	}

	return s.repo.WithTx(ctx, func(tx license.Repository) error {
		lic, err := s.resolveLicense(ctx, tx, req.CNP)
		if err != nil {
			return err
		}

		categoryID, found, err := tx.ResolveCategoryByName(ctx, strings.TrimSpace(req.Denumire))
		if err != nil {
			return err
		}
		if !found {
			return apperror.NewValidation("INVALID_CATEGORY", "The selected license category does not exist")
		}

		return tx.InsertLink(ctx, lic.IDPermis, categoryID, acquired)
	})
}

// UpdateCategoryDate rewrites one endorsement's acquisition date and then
// overwrites the license expiration from that date alone. Last writer wins
// across endorsements.
func (s *licenseService) UpdateCategoryDate(ctx context.Context, req license.UpdateCategoryRequest) error {
	if err := req.Validate(); err != nil {
		return apperror.NewValidation("MISSING_FIELDS", "CNP, IDCategorie and DataDobandire are required")
	}

	acquired, err := parseDate(req.DataDobandire)
	if err != nil {
		return err
	}

	return s.repo.WithTx(ctx, func(tx license.Repository) error {
		lic, err := s.resolveLicense(ctx, tx, req.CNP)
		if err != nil {
			return err
		}

		affected, err := tx.UpdateLinkDate(ctx, lic.IDPermis, req.IDCategorie, acquired)
		if err != nil {
			return err
		}
		if affected == 0 {
			return apperror.NewNotFound("CATEGORY_LINK_NOT_FOUND", "This category is not attached to the license")
		}

		return tx.UpdateExpiration(ctx, lic.IDPermis, acquired.AddDate(expirationYears, 0, 0))
	})
}

func (s *licenseService) DetachCategory(ctx context.Context, req license.DetachRequest) error {
	if err := req.Validate(); err != nil {
		return apperror.NewValidation("MISSING_FIELDS", "CNP and IDCategorie are required")
	}

	return s.repo.WithTx(ctx, func(tx license.Repository) error {
		lic, err := s.resolveLicense(ctx, tx, req.CNP)
		if err != nil {
			return err
		}

		affected, err := tx.DeleteLink(ctx, lic.IDPermis, req.IDCategorie)
		if err != nil {
			return err
		}
		if affected == 0 {
			return apperror.NewNotFound("CATEGORY_LINK_NOT_FOUND", "This category is not attached to the license")
		}

		return nil
	})
}

func (s *licenseService) GetByCNP(ctx context.Context, cnp string) (*license.PersonLicense, error) {
	personID, found, err := s.repo.ResolvePersonID(ctx, strings.TrimSpace(cnp))
	if err != nil {
		return nil, err
	}
	if !found {
		return nil, apperror.NewNotFound("PERSON_NOT_FOUND", "CNP does not match any registered person")
	}

	lic, found, err := s.repo.FindByPersonID(ctx, personID)
	if err != nil {
		return nil, err
	}
	if !found {
		return nil, apperror.NewNotFound("NO_LICENSE", "This person does not hold a driving license")
	}

	links, err := s.repo.ListLinks(ctx, lic.IDPermis)
	if err != nil {
		return nil, err
	}
	if links == nil {
		links = []license.CategoryLink{}
	}

	return &license.PersonLicense{
		IDPermis:     lic.IDPermis,
		DataExpirare: lic.DataExpirare,
		Categorii:    links,
	}, nil
}

// Catalog serves the fixed category catalog through the cache. Cache
// failures degrade to a direct read, never to a request failure.
func (s *licenseService) Catalog(ctx context.Context) ([]license.Category, error) {
	if s.cache != nil {
		var cached []license.Category
		found, err := s.cache.Get(ctx, categoryCatalogKey, &cached)
		if err != nil {
			logger.Error("license category catalog cache read failed", err)
		} else if found {
			return cached, nil
		}
	}

	categories, err := s.repo.ListCategories(ctx)
	if err != nil {
		return nil, err
	}

	if s.cache != nil {
		if err := s.cache.Set(ctx, categoryCatalogKey, categories, categoryCatalogTTL); err != nil {
			logger.Error("license category catalog cache write failed", err)
		}
	}

	return categories, nil
}

func (s *licenseService) CountByCategory(ctx context.Context) ([]license.CategoryCount, error) {
	return s.repo.CountByCategory(ctx)
}

func (s *licenseService) ListHolders(ctx context.Context) ([]license.Holder, error) {
	holders, err := s.repo.ListHolders(ctx)
	if err != nil {
		return nil, err
	}
	if holders == nil {
		holders = []license.Holder{}
	}
	return holders, nil
}

func (s *licenseService) ListExtended(ctx context.Context) ([]license.ExtendedLicense, error) {
	licenses, err := s.repo.ListExtended(ctx)
	if err != nil {
		return nil, err
	}
	if licenses == nil {
		licenses = []license.ExtendedLicense{}
	}
	return licenses, nil
}

// resolvePerson maps a CNP to a person id on a write path. An unresolvable
// CNP fails the request as invalid input before anything is written.
func (s *licenseService) resolvePerson(ctx context.Context, repo license.Repository, cnp string) (int, error) {
	id, found, err := repo.ResolvePersonID(ctx, strings.TrimSpace(cnp))
	if err != nil {
		return 0, err
	}
	if !found {
		return 0, apperror.NewValidation("PERSON_NOT_FOUND", "CNP does not match any registered person")
	}
	return id, nil
}

// resolveLicense resolves person then license for the endorsement writes.
func (s *licenseService) resolveLicense(ctx context.Context, repo license.Repository, cnp string) (*license.License, error) {
	personID, err := s.resolvePerson(ctx, repo, cnp)
	if err != nil {
		return nil, err
	}

	lic, found, err := repo.FindByPersonID(ctx, personID)
	if err != nil {
		return nil, err
	}
	if !found {
		return nil, apperror.NewValidation("NO_LICENSE", "This person does not hold a driving license")
	}

	return lic, nil
}

func parseDate(value string) (time.Time, error) {
	t, err := time.Parse(dateLayout, strings.TrimSpace(value))
	if err != nil {
		return time.Time{}, apperror.NewValidation("INVALID_DATE", "Dates must use the YYYY-MM-DD format")
	}
	return t, nil
}
