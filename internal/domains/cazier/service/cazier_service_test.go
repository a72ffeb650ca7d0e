package service

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"police-records-backend/internal/domains/cazier"
	"police-records-backend/internal/shared/apperror"
)

// fakeRepository is an in-memory stand-in for the Postgres repository,
// mirroring its join semantics closely enough to exercise the service.
type fakeRepository struct {
	persons  map[string]int // CNP -> IDPersoana
	names    map[int]string
	offenses map[int]string
	entries  []cazier.Entry
	nextID   int
}

func newFakeRepository() *fakeRepository {
	return &fakeRepository{
		persons:  map[string]int{},
		names:    map[int]string{},
		offenses: map[int]string{1: "Furt", 2: "Talharie"},
		nextID:   1,
	}
}

func (f *fakeRepository) addPerson(cnp, name string) int {
	id := f.nextID
	f.nextID++
	f.persons[cnp] = id
	f.names[id] = name
	return id
}

func (f *fakeRepository) ResolvePersonID(_ context.Context, cnp string) (int, bool, error) {
	id, ok := f.persons[cnp]
	return id, ok, nil
}

func (f *fakeRepository) OffenseExists(_ context.Context, id int) (bool, error) {
	_, ok := f.offenses[id]
	return ok, nil
}

func (f *fakeRepository) InsertEntry(_ context.Context, e *cazier.Entry) error {
	f.entries = append(f.entries, *e)
	return nil
}

func (f *fakeRepository) Stats(_ context.Context) (*cazier.Stats, error) {
	withRecord := map[int]bool{}
	for _, e := range f.entries {
		withRecord[e.IDPersoana] = true
	}
	return &cazier.Stats{
		NumarPersoaneCuCazier:   len(withRecord),
		NumarPersoaneFaraCazier: len(f.persons) - len(withRecord),
	}, nil
}

func (f *fakeRepository) ListPersonsWithRecord(_ context.Context) ([]cazier.PersonSummary, error) {
	seen := map[int]bool{}
	var result []cazier.PersonSummary
	for _, e := range f.entries {
		if seen[e.IDPersoana] {
			continue
		}
		seen[e.IDPersoana] = true
		result = append(result, f.summary(e.IDPersoana))
	}
	return result, nil
}

func (f *fakeRepository) ListPersonsWithActiveRecord(_ context.Context) ([]cazier.PersonSummary, error) {
	seen := map[int]bool{}
	var result []cazier.PersonSummary
	for _, e := range f.entries {
		if seen[e.IDPersoana] {
			continue
		}
		if e.DataComitere.Before(time.Now().AddDate(-e.Durata, 0, 0)) {
			continue
		}
		seen[e.IDPersoana] = true
		result = append(result, f.summary(e.IDPersoana))
	}
	return result, nil
}

func (f *fakeRepository) summary(personID int) cazier.PersonSummary {
	var cnp string
	for c, id := range f.persons {
		if id == personID {
			cnp = c
		}
	}
	return cazier.PersonSummary{IDPersoana: personID, Nume: f.names[personID], CNP: cnp}
}

func (f *fakeRepository) LookupByCNP(_ context.Context, cnp string) ([]cazier.DetailRow, error) {
	var result []cazier.DetailRow
	for personCNP, personID := range f.persons {
		if !strings.Contains(personCNP, cnp) {
			continue
		}
		matched := false
		for _, e := range f.entries {
			if e.IDPersoana != personID {
				continue
			}
			matched = true
			entry := e
			offense := f.offenses[e.IDInfractiune]
			result = append(result, cazier.DetailRow{
				Nume:                f.names[personID],
				CNP:                 personCNP,
				DenumireInfractiune: &offense,
				Descriere:           &entry.Descriere,
				DataComitere:        &entry.DataComitere,
				Sentinta:            &entry.Sentinta,
				Durata:              &entry.Durata,
				Amenda:              &entry.Amenda,
			})
		}
		if !matched {
			result = append(result, cazier.DetailRow{Nume: f.names[personID], CNP: personCNP})
		}
	}
	return result, nil
}

func (f *fakeRepository) ListOffenses(_ context.Context) ([]cazier.Offense, error) {
	var result []cazier.Offense
	for id, name := range f.offenses {
		result = append(result, cazier.Offense{IDInfractiune: id, Denumire: name})
	}
	return result, nil
}

func validRequest() cazier.AddRequest {
	return cazier.AddRequest{
		CNP:           "1234567890123",
		IDInfractiune: 1,
		Descriere:     "Furt din locuinta",
		DataComitere:  "2023-05-10",
		Sentinta:      "Inchisoare cu suspendare",
		Durata:        3,
		Amenda:        decimal.NewFromInt(5000),
	}
}

func TestAddEntry(t *testing.T) {
	repo := newFakeRepository()
	repo.addPerson("1234567890123", "Pop")
	svc := NewCazierService(repo, nil)

	err := svc.AddEntry(context.Background(), validRequest())
	require.NoError(t, err)
	require.Len(t, repo.entries, 1)
	assert.Equal(t, 1, repo.entries[0].IDPersoana)
	assert.True(t, repo.entries[0].Amenda.Equal(decimal.NewFromInt(5000)))
}

func TestAddEntryValidation(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*cazier.AddRequest)
	}{
		{"missing cnp", func(r *cazier.AddRequest) { r.CNP = "" }},
		{"missing offense", func(r *cazier.AddRequest) { r.IDInfractiune = 0 }},
		{"missing description", func(r *cazier.AddRequest) { r.Descriere = "" }},
		{"missing date", func(r *cazier.AddRequest) { r.DataComitere = "" }},
		{"missing sentence", func(r *cazier.AddRequest) { r.Sentinta = "" }},
		{"missing duration", func(r *cazier.AddRequest) { r.Durata = 0 }},
		{"missing fine", func(r *cazier.AddRequest) { r.Amenda = decimal.Decimal{} }},
		{"zero fine", func(r *cazier.AddRequest) { r.Amenda = decimal.Zero }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := newFakeRepository()
			repo.addPerson("1234567890123", "Pop")
			svc := NewCazierService(repo, nil)

			req := validRequest()
			tt.mutate(&req)

			err := svc.AddEntry(context.Background(), req)
			assert.True(t, apperror.IsValidation(err))
			assert.Empty(t, repo.entries)
		})
	}
}

func TestAddEntryUnknownOffense(t *testing.T) {
	repo := newFakeRepository()
	repo.addPerson("1234567890123", "Pop")
	svc := NewCazierService(repo, nil)

	req := validRequest()
	req.IDInfractiune = 99

	err := svc.AddEntry(context.Background(), req)
	assert.True(t, apperror.IsValidation(err))
	assert.Empty(t, repo.entries)
}

func TestAddEntryUnknownCNP(t *testing.T) {
	repo := newFakeRepository()
	svc := NewCazierService(repo, nil)

	err := svc.AddEntry(context.Background(), validRequest())
	assert.True(t, apperror.IsValidation(err))
	assert.Empty(t, repo.entries)
}

func TestAddEntryBadDate(t *testing.T) {
	repo := newFakeRepository()
	repo.addPerson("1234567890123", "Pop")
	svc := NewCazierService(repo, nil)

	req := validRequest()
	req.DataComitere = "10/05/2023"

	err := svc.AddEntry(context.Background(), req)
	assert.True(t, apperror.IsValidation(err))
}

func TestStatsPartitionTheRegistry(t *testing.T) {
	repo := newFakeRepository()
	repo.addPerson("1234567890123", "Pop")
	repo.addPerson("2870101123456", "Ionescu")
	repo.addPerson("1850101123456", "Georgescu")
	svc := NewCazierService(repo, nil)

	require.NoError(t, svc.AddEntry(context.Background(), validRequest()))

	stats, err := svc.Stats(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 1, stats.NumarPersoaneCuCazier)
	assert.Equal(t, 2, stats.NumarPersoaneFaraCazier)
	assert.Equal(t, len(repo.persons), stats.NumarPersoaneCuCazier+stats.NumarPersoaneFaraCazier)
}

func TestListPersonsWithRecordIsDistinct(t *testing.T) {
	repo := newFakeRepository()
	repo.addPerson("1234567890123", "Pop")
	svc := NewCazierService(repo, nil)

	require.NoError(t, svc.AddEntry(context.Background(), validRequest()))

	second := validRequest()
	second.IDInfractiune = 2
	require.NoError(t, svc.AddEntry(context.Background(), second))

	persons, err := svc.ListPersonsWithRecord(context.Background())
	require.NoError(t, err)
	assert.Len(t, persons, 1, "a person with several entries appears once")
}

func TestListPersonsWithActiveRecord(t *testing.T) {
	repo := newFakeRepository()
	repo.addPerson("1234567890123", "Pop")
	repo.addPerson("2870101123456", "Ionescu")
	svc := NewCazierService(repo, nil)

	// Committed last year with a three-year duration: still active.
	active := validRequest()
	active.DataComitere = time.Now().AddDate(-1, 0, 0).Format("2006-01-02")
	require.NoError(t, svc.AddEntry(context.Background(), active))

	// Committed five years ago with a three-year duration: expired.
	expired := validRequest()
	expired.CNP = "2870101123456"
	expired.DataComitere = time.Now().AddDate(-5, 0, 0).Format("2006-01-02")
	require.NoError(t, svc.AddEntry(context.Background(), expired))

	persons, err := svc.ListPersonsWithActiveRecord(context.Background())
	require.NoError(t, err)
	require.Len(t, persons, 1)
	assert.Equal(t, "1234567890123", persons[0].CNP)
}

func TestLookupByCNPWithoutEntries(t *testing.T) {
	repo := newFakeRepository()
	repo.addPerson("1234567890123", "Pop")
	svc := NewCazierService(repo, nil)

	details, err := svc.LookupByCNP(context.Background(), "1234567890123")
	require.NoError(t, err)
	require.Len(t, details, 1, "a person with no entries still yields one row")
	assert.Nil(t, details[0].DenumireInfractiune)
	assert.Nil(t, details[0].DataComitere)
	assert.Nil(t, details[0].Amenda)
}

func TestLookupByCNPNoMatch(t *testing.T) {
	svc := NewCazierService(newFakeRepository(), nil)

	details, err := svc.LookupByCNP(context.Background(), "9999999999999")
	require.NoError(t, err)
	assert.Empty(t, details)
}
