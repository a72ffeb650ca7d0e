package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"police-records-backend/internal/domains/license"
	"police-records-backend/internal/shared/apperror"
)

// fakeRepository is an in-memory stand-in for the Postgres repository. The
// uniqueness rules enforced by constraints in the real store are simulated
// in Insert and InsertLink.
type fakeRepository struct {
	persons    map[string]int // CNP -> IDPersoana
	licenses   map[int]*license.License
	links      map[[2]int]time.Time // (IDPermis, IDCategorie) -> DataDobandire
	categories map[string]int
	nextID     int
}

func newFakeRepository() *fakeRepository {
	return &fakeRepository{
		persons:  map[string]int{},
		licenses: map[int]*license.License{},
		links:    map[[2]int]time.Time{},
		categories: map[string]int{
			"A": 1, "B": 4, "CE": 9,
		},
		nextID: 1,
	}
}

func (f *fakeRepository) addPerson(cnp string) int {
	id := f.nextID
	f.nextID++
	f.persons[cnp] = id
	return id
}

func (f *fakeRepository) WithTx(_ context.Context, fn func(license.Repository) error) error {
	return fn(f)
}

func (f *fakeRepository) ResolvePersonID(_ context.Context, cnp string) (int, bool, error) {
	id, ok := f.persons[cnp]
	return id, ok, nil
}

func (f *fakeRepository) FindByPersonID(_ context.Context, personID int) (*license.License, bool, error) {
	for _, lic := range f.licenses {
		if lic.IDPersoana == personID {
			return lic, true, nil
		}
	}
	return nil, false, nil
}

func (f *fakeRepository) Insert(_ context.Context, personID int, expiration time.Time) (int, error) {
	for _, lic := range f.licenses {
		if lic.IDPersoana == personID {
			return 0, apperror.NewConflict("LICENSE_EXISTS", "This person already holds a driving license")
		}
	}
	id := f.nextID
	f.nextID++
	f.licenses[id] = &license.License{IDPermis: id, IDPersoana: personID, DataExpirare: &expiration}
	return id, nil
}

func (f *fakeRepository) UpdateExpiration(_ context.Context, licenseID int, expiration time.Time) error {
	f.licenses[licenseID].DataExpirare = &expiration
	return nil
}

func (f *fakeRepository) ResolveCategoryByName(_ context.Context, name string) (int, bool, error) {
	id, ok := f.categories[name]
	return id, ok, nil
}

func (f *fakeRepository) InsertLink(_ context.Context, licenseID, categoryID int, acquired time.Time) error {
	key := [2]int{licenseID, categoryID}
	if _, exists := f.links[key]; exists {
		return apperror.NewConflict("CATEGORY_ALREADY_ATTACHED", "This category is already attached to the license")
	}
	f.links[key] = acquired
	return nil
}

func (f *fakeRepository) UpdateLinkDate(_ context.Context, licenseID, categoryID int, acquired time.Time) (int64, error) {
	key := [2]int{licenseID, categoryID}
	if _, exists := f.links[key]; !exists {
		return 0, nil
	}
	f.links[key] = acquired
	return 1, nil
}

func (f *fakeRepository) DeleteLink(_ context.Context, licenseID, categoryID int) (int64, error) {
	key := [2]int{licenseID, categoryID}
	if _, exists := f.links[key]; !exists {
		return 0, nil
	}
	delete(f.links, key)
	return 1, nil
}

func (f *fakeRepository) ListLinks(_ context.Context, licenseID int) ([]license.CategoryLink, error) {
	var result []license.CategoryLink
	for key, acquired := range f.links {
		if key[0] != licenseID {
			continue
		}
		date := acquired
		link := license.CategoryLink{IDPermis: key[0], IDCategorie: key[1], DataDobandire: &date}
		for name, id := range f.categories {
			if id == key[1] {
				link.Denumire = name
			}
		}
		result = append(result, link)
	}
	return result, nil
}

func (f *fakeRepository) ListCategories(_ context.Context) ([]license.Category, error) {
	var result []license.Category
	for name, id := range f.categories {
		result = append(result, license.Category{IDCategorie: id, Denumire: name})
	}
	return result, nil
}

func (f *fakeRepository) CountByCategory(_ context.Context) ([]license.CategoryCount, error) {
	return nil, nil
}

func (f *fakeRepository) ListHolders(_ context.Context) ([]license.Holder, error) {
	return nil, nil
}

func (f *fakeRepository) ListExtended(_ context.Context) ([]license.ExtendedLicense, error) {
	return nil, nil
}

func TestIssueLicense(t *testing.T) {
	repo := newFakeRepository()
	repo.addPerson("1234567890123")
	svc := NewLicenseService(repo, nil)

	id, err := svc.Issue(context.Background(), license.IssueRequest{
		CNP: "1234567890123", DataExpirare: "2030-01-01",
	})
	require.NoError(t, err)
	assert.NotZero(t, id)
}

func TestIssueLicenseTwiceConflict(t *testing.T) {
	repo := newFakeRepository()
	repo.addPerson("1234567890123")
	svc := NewLicenseService(repo, nil)

	_, err := svc.Issue(context.Background(), license.IssueRequest{
		CNP: "1234567890123", DataExpirare: "2030-01-01",
	})
	require.NoError(t, err)

	_, err = svc.Issue(context.Background(), license.IssueRequest{
		CNP: "1234567890123", DataExpirare: "2031-01-01",
	})
	assert.True(t, apperror.IsConflict(err))
	assert.Len(t, repo.licenses, 1)
}

func TestIssueLicenseUnknownCNP(t *testing.T) {
	repo := newFakeRepository()
	svc := NewLicenseService(repo, nil)

	_, err := svc.Issue(context.Background(), license.IssueRequest{
		CNP: "9999999999999", DataExpirare: "2030-01-01",
	})
	assert.True(t, apperror.IsValidation(err))
	assert.Empty(t, repo.licenses)
}

func TestIssueLicenseValidation(t *testing.T) {
	svc := NewLicenseService(newFakeRepository(), nil)

	_, err := svc.Issue(context.Background(), license.IssueRequest{CNP: "1234567890123"})
	assert.True(t, apperror.IsValidation(err))

	_, err = svc.Issue(context.Background(), license.IssueRequest{DataExpirare: "2030-01-01"})
	assert.True(t, apperror.IsValidation(err))
}

func TestAttachCategory(t *testing.T) {
	repo := newFakeRepository()
	repo.addPerson("1234567890123")
	svc := NewLicenseService(repo, nil)

	_, err := svc.Issue(context.Background(), license.IssueRequest{
		CNP: "1234567890123", DataExpirare: "2030-01-01",
	})
	require.NoError(t, err)

	err = svc.AttachCategory(context.Background(), license.AttachRequest{
		CNP: "1234567890123", Denumire: "B", DataDobandire: "2020-06-01",
	})
	require.NoError(t, err)
	assert.Len(t, repo.links, 1)
}

func TestAttachCategoryTwiceConflict(t *testing.T) {
	repo := newFakeRepository()
	repo.addPerson("1234567890123")
	svc := NewLicenseService(repo, nil)

	_, err := svc.Issue(context.Background(), license.IssueRequest{
		CNP: "1234567890123", DataExpirare: "2030-01-01",
	})
	require.NoError(t, err)

	req := license.AttachRequest{CNP: "1234567890123", Denumire: "B", DataDobandire: "2020-06-01"}
	require.NoError(t, svc.AttachCategory(context.Background(), req))

	err = svc.AttachCategory(context.Background(), req)
	assert.True(t, apperror.IsConflict(err))
	assert.Len(t, repo.links, 1)
}

func TestAttachCategoryUnknownCNP(t *testing.T) {
	repo := newFakeRepository()
	svc := NewLicenseService(repo, nil)

	err := svc.AttachCategory(context.Background(), license.AttachRequest{
		CNP: "9999999999999", Denumire: "B", DataDobandire: "2020-06-01",
	})
	assert.True(t, apperror.IsValidation(err))
	assert.Empty(t, repo.links, "nothing may be written when the person cannot be resolved")
}

func TestAttachCategoryWithoutLicense(t *testing.T) {
	repo := newFakeRepository()
	repo.addPerson("1234567890123")
	svc := NewLicenseService(repo, nil)

	err := svc.AttachCategory(context.Background(), license.AttachRequest{
		CNP: "1234567890123", Denumire: "B", DataDobandire: "2020-06-01",
	})
	assert.True(t, apperror.IsValidation(err))
}

func TestAttachCategoryInvalidName(t *testing.T) {
	repo := newFakeRepository()
	repo.addPerson("1234567890123")
	svc := NewLicenseService(repo, nil)

	_, err := svc.Issue(context.Background(), license.IssueRequest{
		CNP: "1234567890123", DataExpirare: "2030-01-01",
	})
	require.NoError(t, err)

	err = svc.AttachCategory(context.Background(), license.AttachRequest{
		CNP: "1234567890123", Denumire: "Z9", DataDobandire: "2020-06-01",
	})
	assert.True(t, apperror.IsValidation(err))
	assert.Empty(t, repo.links)
}

func TestUpdateCategoryDateRecomputesExpiration(t *testing.T) {
	repo := newFakeRepository()
	repo.addPerson("1234567890123")
	svc := NewLicenseService(repo, nil)

	licID, err := svc.Issue(context.Background(), license.IssueRequest{
		CNP: "1234567890123", DataExpirare: "2026-01-01",
	})
	require.NoError(t, err)

	require.NoError(t, svc.AttachCategory(context.Background(), license.AttachRequest{
		CNP: "1234567890123", Denumire: "B", DataDobandire: "2020-06-01",
	}))

	err = svc.UpdateCategoryDate(context.Background(), license.UpdateCategoryRequest{
		CNP: "1234567890123", IDCategorie: 4, DataDobandire: "2024-03-15",
	})
	require.NoError(t, err)

	expiration := repo.licenses[licID].DataExpirare
	require.NotNil(t, expiration)
	assert.Equal(t, "2029-03-15", expiration.Format("2006-01-02"))
}

func TestUpdateCategoryDateMissingLink(t *testing.T) {
	repo := newFakeRepository()
	repo.addPerson("1234567890123")
	svc := NewLicenseService(repo, nil)

	_, err := svc.Issue(context.Background(), license.IssueRequest{
		CNP: "1234567890123", DataExpirare: "2030-01-01",
	})
	require.NoError(t, err)

	err = svc.UpdateCategoryDate(context.Background(), license.UpdateCategoryRequest{
		CNP: "1234567890123", IDCategorie: 4, DataDobandire: "2024-03-15",
	})
	assert.True(t, apperror.IsNotFound(err))
}

func TestDetachCategory(t *testing.T) {
	repo := newFakeRepository()
	repo.addPerson("1234567890123")
	svc := NewLicenseService(repo, nil)

	licID, err := svc.Issue(context.Background(), license.IssueRequest{
		CNP: "1234567890123", DataExpirare: "2030-01-01",
	})
	require.NoError(t, err)

	require.NoError(t, svc.AttachCategory(context.Background(), license.AttachRequest{
		CNP: "1234567890123", Denumire: "B", DataDobandire: "2020-06-01",
	}))

	err = svc.DetachCategory(context.Background(), license.DetachRequest{
		CNP: "1234567890123", IDCategorie: 4,
	})
	require.NoError(t, err)
	assert.Empty(t, repo.links)

	// Detach leaves the expiration as it was.
	expiration := repo.licenses[licID].DataExpirare
	require.NotNil(t, expiration)
	assert.Equal(t, "2030-01-01", expiration.Format("2006-01-02"))
}

func TestDetachCategoryMissingLink(t *testing.T) {
	repo := newFakeRepository()
	repo.addPerson("1234567890123")
	svc := NewLicenseService(repo, nil)

	_, err := svc.Issue(context.Background(), license.IssueRequest{
		CNP: "1234567890123", DataExpirare: "2030-01-01",
	})
	require.NoError(t, err)

	err = svc.DetachCategory(context.Background(), license.DetachRequest{
		CNP: "1234567890123", IDCategorie: 4,
	})
	assert.True(t, apperror.IsNotFound(err))
}

func TestGetByCNP(t *testing.T) {
	repo := newFakeRepository()
	repo.addPerson("1234567890123")
	svc := NewLicenseService(repo, nil)

	licID, err := svc.Issue(context.Background(), license.IssueRequest{
		CNP: "1234567890123", DataExpirare: "2030-01-01",
	})
	require.NoError(t, err)

	require.NoError(t, svc.AttachCategory(context.Background(), license.AttachRequest{
		CNP: "1234567890123", Denumire: "B", DataDobandire: "2020-06-01",
	}))

	result, err := svc.GetByCNP(context.Background(), "1234567890123")
	require.NoError(t, err)
	assert.Equal(t, licID, result.IDPermis)
	require.Len(t, result.Categorii, 1)
	assert.Equal(t, "B", result.Categorii[0].Denumire)
}

func TestGetByCNPNotFound(t *testing.T) {
	repo := newFakeRepository()
	svc := NewLicenseService(repo, nil)

	_, err := svc.GetByCNP(context.Background(), "9999999999999")
	assert.True(t, apperror.IsNotFound(err))

	repo.addPerson("1234567890123")
	_, err = svc.GetByCNP(context.Background(), "1234567890123")
	assert.True(t, apperror.IsNotFound(err), "a person without a license is a not-found condition")
}

func TestGetByCNPNoCategories(t *testing.T) {
	repo := newFakeRepository()
	repo.addPerson("1234567890123")
	svc := NewLicenseService(repo, nil)

	_, err := svc.Issue(context.Background(), license.IssueRequest{
		CNP: "1234567890123", DataExpirare: "2030-01-01",
	})
	require.NoError(t, err)

	result, err := svc.GetByCNP(context.Background(), "1234567890123")
	require.NoError(t, err)
	assert.NotNil(t, result.Categorii)
	assert.Empty(t, result.Categorii)
}

func TestCatalogWithoutCache(t *testing.T) {
	repo := newFakeRepository()
	svc := NewLicenseService(repo, nil)

	categories, err := svc.Catalog(context.Background())
	require.NoError(t, err)
	assert.Len(t, categories, len(repo.categories))
}
