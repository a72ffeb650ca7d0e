package repository

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"

	"police-records-backend/internal/domains/cazier"
	"police-records-backend/internal/infrastructure/database"
	"police-records-backend/internal/shared/apperror"
)

type postgresRepository struct {
	pool *pgxpool.Pool
}

func NewPostgresRepository(pool *pgxpool.Pool) cazier.Repository {
	return &postgresRepository{
		pool: pool,
	}
}

func (r *postgresRepository) ResolvePersonID(ctx context.Context, cnp string) (int, bool, error) {
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

func (r *postgresRepository) OffenseExists(ctx context.Context, id int) (bool, error) {
	query := `
    SELECT EXISTS (
      SELECT 1
      FROM Infractiuni
      WHERE IDInfractiune = $1
    )
  `

	var exists bool
	if err := r.pool.QueryRow(ctx, query, id).Scan(&exists); err != nil {
		return false, apperror.NewStore("failed to check offense", err)
	}

	return exists, nil
}

func (r *postgresRepository) InsertEntry(ctx context.Context, e *cazier.Entry) error {
	query := `
    INSERT INTO Cazier (IDPersoana, IDInfractiune, Descriere, DataComitere, Sentinta, Durata, Amenda)
    VALUES ($1, $2, $3, $4, $5, $6, $7)
  `

	_, err := r.pool.Exec(ctx, query,
		e.IDPersoana, e.IDInfractiune, e.Descriere,
		e.DataComitere, e.Sentinta, e.Durata, e.Amenda,
	)
	if err != nil {
		// The service resolves both references before inserting; a violation
		// here means the person or offense disappeared in between.
		if database.IsForeignKeyViolation(err) {
			return apperror.NewValidation("INVALID_REFERENCE", "Person or offense does not exist")
		}
		return apperror.NewStore("failed to insert record entry", err)
	}

	return nil
}

func (r *postgresRepository) Stats(ctx context.Context) (*cazier.Stats, error) {
	query := `
    SELECT
      (SELECT COUNT(*)
       FROM Persoane p
       WHERE p.IDPersoana IN (SELECT c.IDPersoana FROM Cazier c)
      ) AS NumarPersoaneCuCazier,
      (SELECT COUNT(*)
       FROM Persoane p
       WHERE p.IDPersoana NOT IN (SELECT c.IDPersoana FROM Cazier c)
      ) AS NumarPersoaneFaraCazier
  `

	var stats cazier.Stats
	err := r.pool.QueryRow(ctx, query).Scan(
		&stats.NumarPersoaneCuCazier,
		&stats.NumarPersoaneFaraCazier,
	)
	if err != nil {
		return nil, apperror.NewStore("failed to compute record stats", err)
	}

	return &stats, nil
}

func (r *postgresRepository) ListPersonsWithRecord(ctx context.Context) ([]cazier.PersonSummary, error) {
	query := `
    SELECT DISTINCT
      p.IDPersoana,
      p.Nume,
      p.Prenume,
      p.CNP,
      p.DataNasterii,
      p.Sex
    FROM Persoane AS p
    INNER JOIN Cazier AS c ON p.IDPersoana = c.IDPersoana
  `

	return r.queryPersons(ctx, query)
}

// ListPersonsWithActiveRecord keeps entries whose commission date is within
// Durata years of now. Durata is stored in years.
func (r *postgresRepository) ListPersonsWithActiveRecord(ctx context.Context) ([]cazier.PersonSummary, error) {
	query := `
    SELECT
      p.IDPersoana,
      p.Nume,
      p.Prenume,
      p.CNP,
      p.DataNasterii,
      p.Sex
    FROM Persoane AS p
    WHERE p.IDPersoana IN (
      SELECT c.IDPersoana
      FROM Cazier AS c
      WHERE c.DataComitere >= NOW() - make_interval(years => c.Durata)
    )
  `

	return r.queryPersons(ctx, query)
}

func (r *postgresRepository) queryPersons(ctx context.Context, query string) ([]cazier.PersonSummary, error) {
	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, apperror.NewStore("failed to list record holders", err)
	}
	defer rows.Close()

	var persons []cazier.PersonSummary

	for rows.Next() {
		var p cazier.PersonSummary
		err := rows.Scan(&p.IDPersoana, &p.Nume, &p.Prenume, &p.CNP, &p.DataNasterii, &p.Sex)
		if err != nil {
			return nil, apperror.NewStore("failed to scan record holder row", err)
		}
		persons = append(persons, p)
	}

	if err = rows.Err(); err != nil {
		return nil, apperror.NewStore("failed to read record holder rows", err)
	}

	return persons, nil
}

// LookupByCNP outer-joins entries and offense names so a person with no
// entries still produces one row with the offense columns null.
func (r *postgresRepository) LookupByCNP(ctx context.Context, cnp string) ([]cazier.DetailRow, error) {
	query := `
    SELECT
      p.Nume,
      p.Prenume,
      p.CNP,
      p.DataNasterii,
      p.Sex,
      i.Denumire AS DenumireInfractiune,
      c.Descriere,
      c.DataComitere,
      c.Sentinta,
      c.Durata,
      c.Amenda
    FROM Persoane AS p
    LEFT JOIN Cazier AS c ON p.IDPersoana = c.IDPersoana
    LEFT JOIN Infractiuni AS i ON c.IDInfractiune = i.IDInfractiune
    WHERE RTRIM(p.CNP) LIKE $1
  `

	rows, err := r.pool.Query(ctx, query, "%"+cnp+"%")
	if err != nil {
		return nil, apperror.NewStore("failed to look up record detail", err)
	}
	defer rows.Close()

	var details []cazier.DetailRow

	for rows.Next() {
		var d cazier.DetailRow
		err := rows.Scan(
			&d.Nume, &d.Prenume, &d.CNP, &d.DataNasterii, &d.Sex,
			&d.DenumireInfractiune, &d.Descriere, &d.DataComitere,
			&d.Sentinta, &d.Durata, &d.Amenda,
		)
		if err != nil {
			return nil, apperror.NewStore("failed to scan record detail row", err)
		}
		details = append(details, d)
	}

	if err = rows.Err(); err != nil {
		return nil, apperror.NewStore("failed to read record detail rows", err)
	}

	return details, nil
}

func (r *postgresRepository) ListOffenses(ctx context.Context) ([]cazier.Offense, error) {
	query := `
    SELECT IDInfractiune, Denumire
    FROM Infractiuni
    ORDER BY IDInfractiune
  `

	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, apperror.NewStore("failed to list offenses", err)
	}
	defer rows.Close()

	var offenses []cazier.Offense

	for rows.Next() {
		var o cazier.Offense
		if err := rows.Scan(&o.IDInfractiune, &o.Denumire); err != nil {
			return nil, apperror.NewStore("failed to scan offense row", err)
		}
		offenses = append(offenses, o)
	}

	if err = rows.Err(); err != nil {
		return nil, apperror.NewStore("failed to read offense rows", err)
	}

	return offenses, nil
}
