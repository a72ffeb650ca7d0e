package repository

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"

	"police-records-backend/internal/domains/address"
	"police-records-backend/internal/shared/apperror"
)

type postgresRepository struct {
	pool *pgxpool.Pool
}

func NewPostgresRepository(pool *pgxpool.Pool) address.Repository {
	return &postgresRepository{
		pool: pool,
	}
}

// LookupByCNP joins Persoane→PersoaneAdrese→Adrese. NrPersoane is computed
// per address at query time, never stored.
func (r *postgresRepository) LookupByCNP(ctx context.Context, cnp string) ([]address.PersonAddress, error) {
	query := `
    SELECT
        p.CNP,
        p.Nume,
        p.Prenume,
        pa.DataObtinere,
        pa.Domiciliu,
        a.Strada,
        a.Numar,
        a.Bloc,
        a.Scara,
        a.Etaj,
        a.Apartament,
        a.Oras,
        a.Judet,
        a.CodPostal,
        (SELECT COUNT(*)
          FROM PersoaneAdrese AS pa2
          WHERE pa2.IDAdresa = a.IDAdresa
        ) AS NrPersoane
    FROM Persoane p
    JOIN PersoaneAdrese pa ON p.IDPersoana = pa.IDPersoana
    JOIN Adrese a ON pa.IDAdresa = a.IDAdresa
    WHERE RTRIM(p.CNP) = $1
  `

	rows, err := r.pool.Query(ctx, query, cnp)
	if err != nil {
		return nil, apperror.NewStore("failed to look up addresses", err)
	}
	defer rows.Close()

	var addresses []address.PersonAddress

	for rows.Next() {
		var pa address.PersonAddress
		err := rows.Scan(
			&pa.CNP, &pa.Nume, &pa.Prenume,
			&pa.DataObtinere, &pa.Domiciliu,
			&pa.Strada, &pa.Numar, &pa.Bloc, &pa.Scara, &pa.Etaj,
			&pa.Apartament, &pa.Oras, &pa.Judet, &pa.CodPostal,
			&pa.NrPersoane,
		)
		if err != nil {
			return nil, apperror.NewStore("failed to scan address row", err)
		}
		addresses = append(addresses, pa)
	}

	if err = rows.Err(); err != nil {
		return nil, apperror.NewStore("failed to read address rows", err)
	}

	return addresses, nil
}
