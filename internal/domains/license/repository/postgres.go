package repository

import (
	"context"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"police-records-backend/internal/domains/license"
	"police-records-backend/internal/infrastructure/database"
	"police-records-backend/internal/shared/apperror"
	pkgdatabase "police-records-backend/pkg/database"
)

// postgresRepository runs against a DBTX so the same queries work on the
// pool and inside a transaction handed out by WithTx.
type postgresRepository struct {
	pool *pgxpool.Pool
	db   database.DBTX
}

func NewPostgresRepository(pool *pgxpool.Pool) license.Repository {
	return &postgresRepository{
		pool: pool,
		db:   pool,
	}
}

func (r *postgresRepository) WithTx(ctx context.Context, fn func(license.Repository) error) error {
	return pkgdatabase.WithTransaction(ctx, r.pool, func(tx pgx.Tx) error {
		return fn(&postgresRepository{pool: r.pool, db: tx})
	})
}

func (r *postgresRepository) ResolvePersonID(ctx context.Context, cnp string) (int, bool, error) {
	query := `
    SELECT IDPersoana
    FROM Persoane
    WHERE RTRIM(CNP) = $1
  `

	var id int
	err := r.db.QueryRow(ctx, query, cnp).Scan(&id)
	if err != nil {
		if database.IsNoRows(err) {
			return 0, false, nil
		}
		return 0, false, apperror.NewStore("failed to resolve person by CNP", err)
	}

	return id, true, nil
}

func (r *postgresRepository) FindByPersonID(ctx context.Context, personID int) (*license.License, bool, error) {
	query := `
    SELECT IDPermis, IDPersoana, DataExpirare
    FROM Permise
    WHERE IDPersoana = $1
  `

	var lic license.License
	err := r.db.QueryRow(ctx, query, personID).Scan(&lic.IDPermis, &lic.IDPersoana, &lic.DataExpirare)
	if err != nil {
		if database.IsNoRows(err) {
			return nil, false, nil
		}
		return nil, false, apperror.NewStore("failed to find license", err)
	}

	return &lic, true, nil
}

func (r *postgresRepository) Insert(ctx context.Context, personID int, expiration time.Time) (int, error) {
	query := `
    INSERT INTO Permise (IDPersoana, DataExpirare)
    VALUES ($1, $2)
    RETURNING IDPermis
  `

	var id int
	err := r.db.QueryRow(ctx, query, personID, expiration).Scan(&id)
	if err != nil {
		if database.IsUniqueViolation(err) {
			return 0, apperror.NewConflict("LICENSE_EXISTS", "This person already holds a driving license")
		}
		return 0, apperror.NewStore("failed to insert license", err)
	}

	return id, nil
}

func (r *postgresRepository) UpdateExpiration(ctx context.Context, licenseID int, expiration time.Time) error {
	query := `
    UPDATE Permise
    SET DataExpirare = $1
    WHERE IDPermis = $2
  `

	_, err := r.db.Exec(ctx, query, expiration, licenseID)
	if err != nil {
		return apperror.NewStore("failed to update license expiration", err)
	}

	return nil
}

func (r *postgresRepository) ResolveCategoryByName(ctx context.Context, name string) (int, bool, error) {
	query := `
    SELECT IDCategorie
    FROM CategoriiPermis
    WHERE Denumire = $1
  `

	var id int
	err := r.db.QueryRow(ctx, query, name).Scan(&id)
	if err != nil {
		if database.IsNoRows(err) {
			return 0, false, nil
		}
		return 0, false, apperror.NewStore("failed to resolve license category", err)
	}

	return id, true, nil
}

func (r *postgresRepository) InsertLink(ctx context.Context, licenseID, categoryID int, acquired time.Time) error {
	query := `
    INSERT INTO PermiseCategoriiPermis (IDPermis, IDCategorie, DataDobandire)
    VALUES ($1, $2, $3)
  `

	_, err := r.db.Exec(ctx, query, licenseID, categoryID, acquired)
	if err != nil {
		if database.IsUniqueViolation(err) {
			return apperror.NewConflict("CATEGORY_ALREADY_ATTACHED", "This category is already attached to the license")
		}
		return apperror.NewStore("failed to attach license category", err)
	}

	return nil
}

func (r *postgresRepository) UpdateLinkDate(ctx context.Context, licenseID, categoryID int, acquired time.Time) (int64, error) {
	query := `
    UPDATE PermiseCategoriiPermis
    SET DataDobandire = $1
    WHERE IDPermis = $2 AND IDCategorie = $3
  `

	tag, err := r.db.Exec(ctx, query, acquired, licenseID, categoryID)
	if err != nil {
		return 0, apperror.NewStore("failed to update acquisition date", err)
	}

	return tag.RowsAffected(), nil
}

func (r *postgresRepository) DeleteLink(ctx context.Context, licenseID, categoryID int) (int64, error) {
	query := `
    DELETE FROM PermiseCategoriiPermis
    WHERE IDPermis = $1 AND IDCategorie = $2
  `

	tag, err := r.db.Exec(ctx, query, licenseID, categoryID)
	if err != nil {
		return 0, apperror.NewStore("failed to detach license category", err)
	}

	return tag.RowsAffected(), nil
}

func (r *postgresRepository) ListLinks(ctx context.Context, licenseID int) ([]license.CategoryLink, error) {
	query := `
    SELECT cp.IDPermis, cp.IDCategorie, c.Denumire, cp.DataDobandire
    FROM PermiseCategoriiPermis cp
    JOIN CategoriiPermis c ON cp.IDCategorie = c.IDCategorie
    WHERE cp.IDPermis = $1
  `

	rows, err := r.db.Query(ctx, query, licenseID)
	if err != nil {
		return nil, apperror.NewStore("failed to list license categories", err)
	}
	defer rows.Close()

	var links []license.CategoryLink

	for rows.Next() {
		var l license.CategoryLink
		if err := rows.Scan(&l.IDPermis, &l.IDCategorie, &l.Denumire, &l.DataDobandire); err != nil {
			return nil, apperror.NewStore("failed to scan category link row", err)
		}
		links = append(links, l)
	}

	if err = rows.Err(); err != nil {
		return nil, apperror.NewStore("failed to read category link rows", err)
	}

	return links, nil
}

func (r *postgresRepository) ListCategories(ctx context.Context) ([]license.Category, error) {
	query := `
    SELECT IDCategorie, Denumire
    FROM CategoriiPermis
    ORDER BY IDCategorie
  `

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, apperror.NewStore("failed to list license categories", err)
	}
	defer rows.Close()

	var categories []license.Category

	for rows.Next() {
		var c license.Category
		if err := rows.Scan(&c.IDCategorie, &c.Denumire); err != nil {
			return nil, apperror.NewStore("failed to scan category row", err)
		}
		categories = append(categories, c)
	}

	if err = rows.Err(); err != nil {
		return nil, apperror.NewStore("failed to read category rows", err)
	}

	return categories, nil
}

// CountByCategory outer-joins the catalog so categories nobody holds still
// report a zero count.
func (r *postgresRepository) CountByCategory(ctx context.Context) ([]license.CategoryCount, error) {
	query := `
    SELECT
      c.Denumire AS Categorie,
      COUNT(p.IDPermis) AS Permise
    FROM CategoriiPermis c
    LEFT JOIN PermiseCategoriiPermis p ON c.IDCategorie = p.IDCategorie
    GROUP BY c.Denumire
    ORDER BY c.Denumire ASC
  `

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, apperror.NewStore("failed to count licenses by category", err)
	}
	defer rows.Close()

	var counts []license.CategoryCount

	for rows.Next() {
		var c license.CategoryCount
		if err := rows.Scan(&c.Categorie, &c.Permise); err != nil {
			return nil, apperror.NewStore("failed to scan category count row", err)
		}
		counts = append(counts, c)
	}

	if err = rows.Err(); err != nil {
		return nil, apperror.NewStore("failed to read category count rows", err)
	}

	return counts, nil
}

func (r *postgresRepository) ListHolders(ctx context.Context) ([]license.Holder, error) {
	query := `
    SELECT
      p.CNP,
      p.Nume,
      p.Prenume,
      pr.DataExpirare
    FROM Persoane p
    INNER JOIN Permise pr ON p.IDPersoana = pr.IDPersoana
  `

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, apperror.NewStore("failed to list license holders", err)
	}
	defer rows.Close()

	var holders []license.Holder

	for rows.Next() {
		var h license.Holder
		if err := rows.Scan(&h.CNP, &h.Nume, &h.Prenume, &h.DataExpirare); err != nil {
			return nil, apperror.NewStore("failed to scan holder row", err)
		}
		holders = append(holders, h)
	}

	if err = rows.Err(); err != nil {
		return nil, apperror.NewStore("failed to read holder rows", err)
	}

	return holders, nil
}

// ListExtended pivots the endorsements into one column per catalog
// category, each holding the acquisition date or null.
func (r *postgresRepository) ListExtended(ctx context.Context) ([]license.ExtendedLicense, error) {
	query := `
    SELECT
      P.Nume,
      P.Prenume,
      P.CNP,
      PR.DataExpirare,
      (SELECT PCP.DataDobandire
        FROM PermiseCategoriiPermis PCP
        JOIN CategoriiPermis CP ON PCP.IDCategorie = CP.IDCategorie
        WHERE CP.Denumire = 'A' AND PCP.IDPermis = PR.IDPermis) AS A,
      (SELECT PCP.DataDobandire
        FROM PermiseCategoriiPermis PCP
        JOIN CategoriiPermis CP ON PCP.IDCategorie = CP.IDCategorie
        WHERE CP.Denumire = 'A1' AND PCP.IDPermis = PR.IDPermis) AS A1,
      (SELECT PCP.DataDobandire
        FROM PermiseCategoriiPermis PCP
        JOIN CategoriiPermis CP ON PCP.IDCategorie = CP.IDCategorie
        WHERE CP.Denumire = 'A2' AND PCP.IDPermis = PR.IDPermis) AS A2,
      (SELECT PCP.DataDobandire
        FROM PermiseCategoriiPermis PCP
        JOIN CategoriiPermis CP ON PCP.IDCategorie = CP.IDCategorie
        WHERE CP.Denumire = 'B' AND PCP.IDPermis = PR.IDPermis) AS B,
      (SELECT PCP.DataDobandire
        FROM PermiseCategoriiPermis PCP
        JOIN CategoriiPermis CP ON PCP.IDCategorie = CP.IDCategorie
        WHERE CP.Denumire = 'B1' AND PCP.IDPermis = PR.IDPermis) AS B1,
      (SELECT PCP.DataDobandire
        FROM PermiseCategoriiPermis PCP
        JOIN CategoriiPermis CP ON PCP.IDCategorie = CP.IDCategorie
        WHERE CP.Denumire = 'B2' AND PCP.IDPermis = PR.IDPermis) AS B2,
      (SELECT PCP.DataDobandire
        FROM PermiseCategoriiPermis PCP
        JOIN CategoriiPermis CP ON PCP.IDCategorie = CP.IDCategorie
        WHERE CP.Denumire = 'C' AND PCP.IDPermis = PR.IDPermis) AS C,
      (SELECT PCP.DataDobandire
        FROM PermiseCategoriiPermis PCP
        JOIN CategoriiPermis CP ON PCP.IDCategorie = CP.IDCategorie
        WHERE CP.Denumire = 'C1' AND PCP.IDPermis = PR.IDPermis) AS C1,
      (SELECT PCP.DataDobandire
        FROM PermiseCategoriiPermis PCP
        JOIN CategoriiPermis CP ON PCP.IDCategorie = CP.IDCategorie
        WHERE CP.Denumire = 'CE' AND PCP.IDPermis = PR.IDPermis) AS CE,
      (SELECT PCP.DataDobandire
        FROM PermiseCategoriiPermis PCP
        JOIN CategoriiPermis CP ON PCP.IDCategorie = CP.IDCategorie
        WHERE CP.Denumire = 'D' AND PCP.IDPermis = PR.IDPermis) AS D,
      (SELECT PCP.DataDobandire
        FROM PermiseCategoriiPermis PCP
        JOIN CategoriiPermis CP ON PCP.IDCategorie = CP.IDCategorie
        WHERE CP.Denumire = 'D1' AND PCP.IDPermis = PR.IDPermis) AS D1,
      (SELECT PCP.DataDobandire
        FROM PermiseCategoriiPermis PCP
        JOIN CategoriiPermis CP ON PCP.IDCategorie = CP.IDCategorie
        WHERE CP.Denumire = 'DE' AND PCP.IDPermis = PR.IDPermis) AS DE,
      (SELECT PCP.DataDobandire
        FROM PermiseCategoriiPermis PCP
        JOIN CategoriiPermis CP ON PCP.IDCategorie = CP.IDCategorie
        WHERE CP.Denumire = 'Tr' AND PCP.IDPermis = PR.IDPermis) AS Tr,
      (SELECT PCP.DataDobandire
        FROM PermiseCategoriiPermis PCP
        JOIN CategoriiPermis CP ON PCP.IDCategorie = CP.IDCategorie
        WHERE CP.Denumire = 'Tb' AND PCP.IDPermis = PR.IDPermis) AS Tb,
      (SELECT PCP.DataDobandire
        FROM PermiseCategoriiPermis PCP
        JOIN CategoriiPermis CP ON PCP.IDCategorie = CP.IDCategorie
        WHERE CP.Denumire = 'Tv' AND PCP.IDPermis = PR.IDPermis) AS Tv
    FROM Persoane P
    INNER JOIN Permise PR ON P.IDPersoana = PR.IDPersoana
  `

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, apperror.NewStore("failed to list extended licenses", err)
	}
	defer rows.Close()

	var licenses []license.ExtendedLicense

	for rows.Next() {
		var e license.ExtendedLicense
		err := rows.Scan(
			&e.Nume, &e.Prenume, &e.CNP, &e.DataExpirare,
			&e.A, &e.A1, &e.A2,
			&e.B, &e.B1, &e.B2,
			&e.C, &e.C1, &e.CE,
			&e.D, &e.D1, &e.DE,
			&e.Tr, &e.Tb, &e.Tv,
		)
		if err != nil {
			return nil, apperror.NewStore("failed to scan extended license row", err)
		}
		licenses = append(licenses, e)
	}

	if err = rows.Err(); err != nil {
		return nil, apperror.NewStore("failed to read extended license rows", err)
	}

	return licenses, nil
}
