package repository

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"

	"police-records-backend/internal/domains/person"
	"police-records-backend/internal/infrastructure/database"
	"police-records-backend/internal/shared/apperror"
)

type postgresRepository struct {
	pool *pgxpool.Pool
}

func NewPostgresRepository(pool *pgxpool.Pool) person.Repository {
	return &postgresRepository{
		pool: pool,
	}
}

// Search joins each person to its optional partner. Stored CNP values are
// fixed-width and may carry padding, so comparisons go through RTRIM.
func (r *postgresRepository) Search(ctx context.Context, filter person.SearchFilter) ([]person.PersonWithPartner, error) {
	query := `
    SELECT
      p.IDPersoana,
      p.Nume,
      p.Prenume,
      p.CNP,
      p.DataNasterii,
      p.Sex,
      p.Telefon,
      p.Email,
      COALESCE(partener.Nume, '-') AS Nume_Partener,
      COALESCE(partener.Prenume, '-') AS Prenume_Partener
    FROM Persoane p
    LEFT JOIN Persoane partener
      ON p.IDPartener = partener.IDPersoana
    WHERE RTRIM(p.Nume) LIKE $1
      AND RTRIM(p.Prenume) LIKE $2
      AND RTRIM(p.CNP) LIKE $3
  `

	rows, err := r.pool.Query(ctx, query,
		"%"+filter.Nume+"%",
		"%"+filter.Prenume+"%",
		"%"+filter.CNP+"%",
	)
	if err != nil {
		return nil, apperror.NewStore("failed to search persons", err)
	}
	defer rows.Close()

	var persons []person.PersonWithPartner

	for rows.Next() {
		var p person.PersonWithPartner
		err := rows.Scan(
			&p.IDPersoana, &p.Nume, &p.Prenume, &p.CNP,
			&p.DataNasterii, &p.Sex, &p.Telefon, &p.Email,
			&p.NumePartener, &p.PrenumePartener,
		)
		if err != nil {
			return nil, apperror.NewStore("failed to scan person row", err)
		}
		persons = append(persons, p)
	}

	if err = rows.Err(); err != nil {
		return nil, apperror.NewStore("failed to read person rows", err)
	}

	return persons, nil
}

func (r *postgresRepository) ResolveIDByCNP(ctx context.Context, cnp string) (int, bool, error) {
	query := `
    SELECT IDPersoana
    FROM Persoane
    WHERE RTRIM(CNP) = $1
  `

	var id int
	err := r.pool.QueryRow(ctx, query, cnp).Scan(&id)
	if err != nil {
		if database.IsNoRows(err) {
			return 0, false, nil
		}
		return 0, false, apperror.NewStore("failed to resolve person by CNP", err)
	}

	return id, true, nil
}

func (r *postgresRepository) Insert(ctx context.Context, p *person.Person) error {
	query := `
    INSERT INTO Persoane (Nume, Prenume, CNP, DataNasterii, Sex, Telefon, Email, IDPartener)
    VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
  `

	_, err := r.pool.Exec(ctx, query,
		p.Nume, p.Prenume, p.CNP, p.DataNasterii,
		p.Sex, p.Telefon, p.Email, p.IDPartener,
	)
	if err != nil {
		if database.IsUniqueViolation(err) {
			return apperror.NewConflict("DUPLICATE_CNP", "A person with this CNP is already registered")
		}
		return apperror.NewStore("failed to insert person", err)
	}

	return nil
}

func (r *postgresRepository) Update(ctx context.Context, id int, p *person.Person) (int64, error) {
	query := `
    UPDATE Persoane
    SET Nume = $1,
        Prenume = $2,
        CNP = $3,
        DataNasterii = $4,
        Sex = $5,
        Telefon = $6,
        Email = $7,
        IDPartener = $8
    WHERE IDPersoana = $9
  `

	tag, err := r.pool.Exec(ctx, query,
		p.Nume, p.Prenume, p.CNP, p.DataNasterii,
		p.Sex, p.Telefon, p.Email, p.IDPartener, id,
	)
	if err != nil {
		if database.IsUniqueViolation(err) {
			return 0, apperror.NewConflict("DUPLICATE_CNP", "A person with this CNP is already registered")
		}
		return 0, apperror.NewStore("failed to update person", err)
	}

	return tag.RowsAffected(), nil
}

func (r *postgresRepository) Delete(ctx context.Context, id int) (int64, error) {
	query := `
    DELETE FROM Persoane
    WHERE IDPersoana = $1
  `

	tag, err := r.pool.Exec(ctx, query, id)
	if err != nil {
		return 0, apperror.NewStore("failed to delete person", err)
	}

	return tag.RowsAffected(), nil
}
