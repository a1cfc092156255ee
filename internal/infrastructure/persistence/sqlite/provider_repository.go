package sqlite

import (
	"context"

	"provider-match/internal/database/sqlite"
	"provider-match/internal/domain/provider"
)

const selectProviderColumns = `id, user_id, name, skills, rating, location, service_focus, created_at`

type ProviderRepository struct {
	db *sqlite.SQLiteDB
}

func NewProviderRepository(db *sqlite.SQLiteDB) *ProviderRepository {
	return &ProviderRepository{db: db}
}

func (r *ProviderRepository) Create(ctx context.Context, p provider.Provider) (provider.Provider, error) {
	skills, err := encodeSkills(p.Skills)
	if err != nil {
		return provider.Provider{}, err
	}

	p.CreatedAt = now()
	res, err := r.db.SQLDB().ExecContext(ctx,
		`INSERT INTO providers (user_id, name, skills, rating, location, service_focus, created_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?)`,
		p.UserID, p.Name, skills, p.Rating, p.Location, p.ServiceFocus, p.CreatedAt,
	)
	if err != nil {
		return provider.Provider{}, err
	}

	p.ID, err = res.LastInsertId()
	if err != nil {
		return provider.Provider{}, err
	}
	if p.Skills == nil {
		p.Skills = []string{}
	}
	return p, nil
}

func (r *ProviderRepository) GetByID(ctx context.Context, id int64) (provider.Provider, error) {
	row := r.db.SQLDB().QueryRowContext(ctx,
		`SELECT `+selectProviderColumns+` FROM providers WHERE id = ?`, id)
	return scanProvider(row)
}

func (r *ProviderRepository) Update(ctx context.Context, p provider.Provider) (provider.Provider, error) {
	skills, err := encodeSkills(p.Skills)
	if err != nil {
		return provider.Provider{}, err
	}

	res, err := r.db.SQLDB().ExecContext(ctx,
		`UPDATE providers
		 SET name = ?, skills = ?, rating = ?, location = ?, service_focus = ?
		 WHERE id = ?`,
		p.Name, skills, p.Rating, p.Location, p.ServiceFocus, p.ID,
	)
	if err != nil {
		return provider.Provider{}, err
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return provider.Provider{}, err
	}
	if affected == 0 {
		return provider.Provider{}, provider.ErrNotFound
	}

	return r.GetByID(ctx, p.ID)
}

func (r *ProviderRepository) List(ctx context.Context) ([]provider.Provider, error) {
	return r.list(ctx,
		`SELECT `+selectProviderColumns+` FROM providers ORDER BY id`)
}

func (r *ProviderRepository) ListByOwnerRole(ctx context.Context, role string) ([]provider.Provider, error) {
	return r.list(ctx,
		`SELECT p.id, p.user_id, p.name, p.skills, p.rating, p.location, p.service_focus, p.created_at
		 FROM providers p
		 JOIN users u ON u.id = p.user_id
		 WHERE u.role = ?
		 ORDER BY p.id`, role)
}

func (r *ProviderRepository) list(ctx context.Context, query string, args ...any) ([]provider.Provider, error) {
	rows, err := r.db.SQLDB().QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	providers := make([]provider.Provider, 0)
	for rows.Next() {
		p, err := scanProvider(rows)
		if err != nil {
			return nil, err
		}
		providers = append(providers, p)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return providers, nil
}
