package repository

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"

	"police-records-backend/internal/domains/credential"
	"police-records-backend/internal/infrastructure/database"
	"police-records-backend/internal/shared/apperror"
)

type postgresRepository struct {
	pool *pgxpool.Pool
}

func NewPostgresRepository(pool *pgxpool.Pool) credential.Repository {
	return &postgresRepository{
		pool: pool,
	}
}

func (r *postgresRepository) Insert(ctx context.Context, username, passwordHash string) error {
	query := `
    INSERT INTO Users (Username, PasswordHash)
    VALUES ($1, $2)
  `

	_, err := r.pool.Exec(ctx, query, username, passwordHash)
	if err != nil {
		if database.IsUniqueViolation(err) {
			return apperror.NewConflict("DUPLICATE_USERNAME", "This username is already taken")
		}
		return apperror.NewStore("failed to insert user", err)
	}

	return nil
}

func (r *postgresRepository) FindByUsername(ctx context.Context, username string) (*credential.User, bool, error) {
	query := `
    SELECT IDUser, Username, PasswordHash
    FROM Users
    WHERE Username = $1
  `

	var user credential.User
	err := r.pool.QueryRow(ctx, query, username).Scan(&user.IDUser, &user.Username, &user.PasswordHash)
	if err != nil {
		if database.IsNoRows(err) {
			return nil, false, nil
		}
		return nil, false, apperror.NewStore("failed to find user", err)
	}

	return &user, true, nil
}
