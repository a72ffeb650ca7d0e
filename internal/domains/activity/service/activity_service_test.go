package service

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"police-records-backend/internal/domains/activity"
	"police-records-backend/internal/shared/apperror"
)

type fakeRepository struct {
	activities   map[string][]activity.PersonActivity
	institutions []activity.Institution
}

func (f *fakeRepository) ListByCNP(_ context.Context, cnp string) ([]activity.PersonActivity, error) {
	return f.activities[cnp], nil
}

func (f *fakeRepository) SearchInstitutions(_ context.Context, name string) ([]activity.Institution, error) {
	var result []activity.Institution
	for _, i := range f.institutions {
		if strings.Contains(strings.ToLower(i.Institutia), strings.ToLower(name)) {
			result = append(result, i)
		}
	}
	return result, nil
}

func TestListByCNP(t *testing.T) {
	repo := &fakeRepository{activities: map[string][]activity.PersonActivity{
		"1234567890123": {
			{CNP: "1234567890123", Nume: "Pop", Prenume: "Ion", Institutia: "Politia Locala Cluj"},
		},
	}}
	svc := NewActivityService(repo)

	activities, err := svc.ListByCNP(context.Background(), "1234567890123")
	require.NoError(t, err)
	require.Len(t, activities, 1)
	assert.Equal(t, "Politia Locala Cluj", activities[0].Institutia)
}

func TestListByCNPEmpty(t *testing.T) {
	svc := NewActivityService(&fakeRepository{activities: map[string][]activity.PersonActivity{}})

	_, err := svc.ListByCNP(context.Background(), "9999999999999")
	assert.True(t, apperror.IsNotFound(err))
}

func TestSearchInstitutionsCaseInsensitive(t *testing.T) {
	repo := &fakeRepository{institutions: []activity.Institution{
		{Institutia: "Politia Locala Cluj", Strada: "Motilor", Oras: "Cluj-Napoca", Judet: "Cluj"},
		{Institutia: "Primaria Cluj", Strada: "Eroilor", Oras: "Cluj-Napoca", Judet: "Cluj"},
	}}
	svc := NewActivityService(repo)

	institutions, err := svc.SearchInstitutions(context.Background(), "politia")
	require.NoError(t, err)
	require.Len(t, institutions, 1)
	assert.Equal(t, "Politia Locala Cluj", institutions[0].Institutia)
}

func TestSearchInstitutionsNoMatch(t *testing.T) {
	svc := NewActivityService(&fakeRepository{})

	_, err := svc.SearchInstitutions(context.Background(), "inexistent")
	assert.True(t, apperror.IsNotFound(err))
}
