package sqlite

import (
	"context"

	"provider-match/internal/database/sqlite"
	"provider-match/internal/domain/user"
)

const selectUserColumns = `id, email, password_hash, role, location, industry_preference, created_at`

type UserRepository struct {
	db *sqlite.SQLiteDB
}

func NewUserRepository(db *sqlite.SQLiteDB) *UserRepository {
	return &UserRepository{db: db}
}

func (r *UserRepository) GetByID(ctx context.Context, id int64) (user.User, error) {
	row := r.db.SQLDB().QueryRowContext(ctx,
		`SELECT `+selectUserColumns+` FROM users WHERE id = ?`, id)
	return scanUser(row)
}

func (r *UserRepository) GetByEmail(ctx context.Context, email string) (user.User, error) {
	row := r.db.SQLDB().QueryRowContext(ctx,
		`SELECT `+selectUserColumns+` FROM users WHERE email = ?`, email)
	return scanUser(row)
}
