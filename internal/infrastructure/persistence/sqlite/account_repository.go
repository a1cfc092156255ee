package sqlite

import (
	"context"

	"provider-match/internal/database/sqlite"
	"provider-match/internal/domain/provider"
	"provider-match/internal/domain/user"
)

// AccountRepository creates accounts. The user row and, for provider
// accounts, the initial provider profile commit in a single transaction.
type AccountRepository struct {
	db *sqlite.SQLiteDB
}

func NewAccountRepository(db *sqlite.SQLiteDB) *AccountRepository {
	return &AccountRepository{db: db}
}

func (r *AccountRepository) Register(ctx context.Context, u user.User, p *provider.Provider) (user.User, *provider.Provider, error) {
	tx, err := r.db.SQLDB().BeginTx(ctx, nil)
	if err != nil {
		return user.User{}, nil, err
	}
	defer func() {
		_ = tx.Rollback()
	}()

	u.CreatedAt = now()
	res, err := tx.ExecContext(ctx,
		`INSERT INTO users (email, password_hash, role, location, industry_preference, created_at)
		 VALUES (?, ?, ?, ?, ?, ?)`,
		u.Email, u.PasswordHash, u.Role, u.Location, u.IndustryPreference, u.CreatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return user.User{}, nil, user.ErrEmailTaken
		}
		return user.User{}, nil, err
	}
	u.ID, err = res.LastInsertId()
	if err != nil {
		return user.User{}, nil, err
	}

	if p != nil {
		p.UserID = u.ID
		p.CreatedAt = u.CreatedAt
		skills, err := encodeSkills(p.Skills)
		if err != nil {
			return user.User{}, nil, err
		}
		res, err := tx.ExecContext(ctx,
			`INSERT INTO providers (user_id, name, skills, rating, location, service_focus, created_at)
			 VALUES (?, ?, ?, ?, ?, ?, ?)`,
			p.UserID, p.Name, skills, p.Rating, p.Location, p.ServiceFocus, p.CreatedAt,
		)
		if err != nil {
			return user.User{}, nil, err
		}
		p.ID, err = res.LastInsertId()
		if err != nil {
			return user.User{}, nil, err
		}
	}

	if err := tx.Commit(); err != nil {
		return user.User{}, nil, err
	}
	return u, p, nil
}
