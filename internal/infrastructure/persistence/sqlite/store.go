package sqlite

import (
	"database/sql"
	"encoding/json"
	"errors"
	"time"

	sqlitedrv "modernc.org/sqlite"
	sqlite3 "modernc.org/sqlite/lib"

	"provider-match/internal/domain/provider"
	"provider-match/internal/domain/user"
)

type row interface {
	Scan(dest ...any) error
}

func scanUser(r row) (user.User, error) {
	var u user.User
	err := r.Scan(&u.ID, &u.Email, &u.PasswordHash, &u.Role, &u.Location, &u.IndustryPreference, &u.CreatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return user.User{}, user.ErrNotFound
		}
		return user.User{}, err
	}
	return u, nil
}

func scanProvider(r row) (provider.Provider, error) {
	var p provider.Provider
	var skills string
	err := r.Scan(&p.ID, &p.UserID, &p.Name, &skills, &p.Rating, &p.Location, &p.ServiceFocus, &p.CreatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return provider.Provider{}, provider.ErrNotFound
		}
		return provider.Provider{}, err
	}
	p.Skills, err = decodeSkills(skills)
	if err != nil {
		return provider.Provider{}, err
	}
	return p, nil
}

// Skills persist as a JSON array so any skill string round-trips exactly,
// delimiters included.
func encodeSkills(skills []string) (string, error) {
	if skills == nil {
		skills = []string{}
	}
	b, err := json.Marshal(skills)
	if err != nil {
		return "", err
	}
	return string(b), nil
}

func decodeSkills(raw string) ([]string, error) {
	skills := []string{}
	if raw == "" {
		return skills, nil
	}
	if err := json.Unmarshal([]byte(raw), &skills); err != nil {
		return nil, err
	}
	return skills, nil
}

func isUniqueViolation(err error) bool {
	var serr *sqlitedrv.Error
	if errors.As(err, &serr) {
		return serr.Code() == sqlite3.SQLITE_CONSTRAINT_UNIQUE ||
			serr.Code() == sqlite3.SQLITE_CONSTRAINT_PRIMARYKEY
	}
	return false
}

func now() time.Time {
	return time.Now().UTC().Truncate(time.Second)
}
