package repository

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"

	"police-records-backend/internal/domains/activity"
	"police-records-backend/internal/shared/apperror"
)

type postgresRepository struct {
	pool *pgxpool.Pool
}

func NewPostgresRepository(pool *pgxpool.Pool) activity.Repository {
	return &postgresRepository{
		pool: pool,
	}
}

func (r *postgresRepository) ListByCNP(ctx context.Context, cnp string) ([]activity.PersonActivity, error) {
	query := `
    SELECT
      p.CNP,
      p.Nume,
      p.Prenume,
      a.Institutia,
      pa.Post,
      pa.DataIncepere,
      pa.Durata
    FROM Persoane p
    INNER JOIN PersoaneActivitati pa ON p.IDPersoana = pa.IDPersoana
    INNER JOIN Activitati a ON pa.IDActivitate = a.IDActivitate
    WHERE RTRIM(p.CNP) = $1
  `

	rows, err := r.pool.Query(ctx, query, cnp)
	if err != nil {
		return nil, apperror.NewStore("failed to list activities", err)
	}
	defer rows.Close()

	var activities []activity.PersonActivity

	for rows.Next() {
		var a activity.PersonActivity
		err := rows.Scan(&a.CNP, &a.Nume, &a.Prenume, &a.Institutia, &a.Post, &a.DataIncepere, &a.Durata)
		if err != nil {
			return nil, apperror.NewStore("failed to scan activity row", err)
		}
		activities = append(activities, a)
	}

	if err = rows.Err(); err != nil {
		return nil, apperror.NewStore("failed to read activity rows", err)
	}

	return activities, nil
}

func (r *postgresRepository) SearchInstitutions(ctx context.Context, name string) ([]activity.Institution, error) {
	query := `
    SELECT
      a.Institutia,
      ad.Strada,
      ad.Numar,
      ad.Bloc,
      ad.Scara,
      ad.Etaj,
      ad.Apartament,
      ad.Oras,
      ad.Judet,
      ad.CodPostal
    FROM Activitati a
    INNER JOIN Adrese ad ON a.IDAdresa = ad.IDAdresa
    WHERE a.Institutia ILIKE $1
  `

	rows, err := r.pool.Query(ctx, query, "%"+name+"%")
	if err != nil {
		return nil, apperror.NewStore("failed to search institutions", err)
	}
	defer rows.Close()

	var institutions []activity.Institution

	for rows.Next() {
		var i activity.Institution
		err := rows.Scan(
			&i.Institutia, &i.Strada, &i.Numar, &i.Bloc, &i.Scara,
			&i.Etaj, &i.Apartament, &i.Oras, &i.Judet, &i.CodPostal,
		)
		if err != nil {
			return nil, apperror.NewStore("failed to scan institution row", err)
		}
		institutions = append(institutions, i)
	}

	if err = rows.Err(); err != nil {
		return nil, apperror.NewStore("failed to read institution rows", err)
	}

	return institutions, nil
}
