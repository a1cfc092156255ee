package provider

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"provider-match/internal/domain/provider"
	"provider-match/internal/domain/user"
)

type mockProviderRepo struct {
	byID   map[int64]provider.Provider
	nextID int64

	updated *provider.Provider
}

func (m *mockProviderRepo) Create(_ context.Context, p provider.Provider) (provider.Provider, error) {
	m.nextID++
	p.ID = m.nextID
	if m.byID == nil {
		m.byID = map[int64]provider.Provider{}
	}
	m.byID[p.ID] = p
	return p, nil
}

func (m *mockProviderRepo) GetByID(_ context.Context, id int64) (provider.Provider, error) {
	p, ok := m.byID[id]
	if !ok {
		return provider.Provider{}, provider.ErrNotFound
	}
	return p, nil
}

func (m *mockProviderRepo) Update(_ context.Context, p provider.Provider) (provider.Provider, error) {
	if _, ok := m.byID[p.ID]; !ok {
		return provider.Provider{}, provider.ErrNotFound
	}
	m.byID[p.ID] = p
	m.updated = &p
	return p, nil
}

func (m *mockProviderRepo) List(_ context.Context) ([]provider.Provider, error) {
	out := make([]provider.Provider, 0, len(m.byID))
	for id := int64(1); id <= m.nextID; id++ {
		if p, ok := m.byID[id]; ok {
			out = append(out, p)
		}
	}
	return out, nil
}

func (m *mockProviderRepo) ListByOwnerRole(ctx context.Context, _ string) ([]provider.Provider, error) {
	return m.List(ctx)
}

func TestService_Create(t *testing.T) {
	t.Parallel()

	t.Run("seekers cannot create provider profiles", func(t *testing.T) {
		svc := NewService(&mockProviderRepo{})
		_, err := svc.Create(context.Background(), 1, user.RoleSeeker, CreateInput{Name: "x"})
		require.ErrorIs(t, err, ErrForbidden)
	})

	t.Run("provider profile is owned by the caller", func(t *testing.T) {
		repo := &mockProviderRepo{}
		svc := NewService(repo)

		created, err := svc.Create(context.Background(), 42, user.RoleProvider, CreateInput{
			Name:         "Acme",
			Skills:       []string{"Go", "SQL"},
			Rating:       4.5,
			Location:     "NYC",
			ServiceFocus: "Tech",
		})
		require.NoError(t, err)
		require.Equal(t, int64(42), created.UserID)
		require.Equal(t, 4.5, created.Rating)
		require.Equal(t, []string{"Go", "SQL"}, created.Skills)
	})
}

func TestService_Update(t *testing.T) {
	t.Parallel()

	newRepo := func() *mockProviderRepo {
		return &mockProviderRepo{
			nextID: 1,
			byID: map[int64]provider.Provider{1: {
				ID:           1,
				UserID:       42,
				Name:         "Acme",
				Skills:       []string{"Go"},
				Rating:       3.0,
				Location:     "NYC",
				ServiceFocus: "Tech",
			}},
		}
	}

	strPtr := func(s string) *string { return &s }

	t.Run("non-provider role is forbidden", func(t *testing.T) {
		svc := NewService(newRepo())
		_, err := svc.Update(context.Background(), 42, user.RoleSeeker, 1, UpdateInput{})
		require.ErrorIs(t, err, ErrForbidden)
	})

	t.Run("unknown provider id is not found", func(t *testing.T) {
		svc := NewService(newRepo())
		_, err := svc.Update(context.Background(), 42, user.RoleProvider, 99, UpdateInput{})
		require.ErrorIs(t, err, ErrNotFound)
	})

	t.Run("non-owner is forbidden even with provider role", func(t *testing.T) {
		svc := NewService(newRepo())
		_, err := svc.Update(context.Background(), 7, user.RoleProvider, 1, UpdateInput{})
		require.ErrorIs(t, err, ErrForbidden)
	})

	t.Run("nil fields keep stored values", func(t *testing.T) {
		repo := newRepo()
		svc := NewService(repo)

		updated, err := svc.Update(context.Background(), 42, user.RoleProvider, 1, UpdateInput{
			Name: strPtr("Acme Studio"),
		})
		require.NoError(t, err)
		require.Equal(t, "Acme Studio", updated.Name)
		require.Equal(t, []string{"Go"}, updated.Skills)
		require.Equal(t, "NYC", updated.Location)
		require.Equal(t, "Tech", updated.ServiceFocus)
		require.Equal(t, 3.0, updated.Rating)
	})

	t.Run("set fields replace stored values", func(t *testing.T) {
		repo := newRepo()
		svc := NewService(repo)

		skills := []string{"Go", "Rust"}
		updated, err := svc.Update(context.Background(), 42, user.RoleProvider, 1, UpdateInput{
			Skills:       &skills,
			Location:     strPtr("Berlin"),
			ServiceFocus: strPtr("Tech & Design"),
		})
		require.NoError(t, err)
		require.Equal(t, []string{"Go", "Rust"}, updated.Skills)
		require.Equal(t, "Berlin", updated.Location)
		require.Equal(t, "Tech & Design", updated.ServiceFocus)
	})
}

func TestService_List(t *testing.T) {
	t.Parallel()

	repo := &mockProviderRepo{}
	svc := NewService(repo)

	_, err := svc.Create(context.Background(), 1, user.RoleProvider, CreateInput{Name: "A"})
	require.NoError(t, err)
	_, err = svc.Create(context.Background(), 2, user.RoleProvider, CreateInput{Name: "B"})
	require.NoError(t, err)

	providers, err := svc.List(context.Background())
	require.NoError(t, err)
	require.Len(t, providers, 2)
}
