package user

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/opspulse/opspulse-backend-go/internal/domain/team"
	"github.com/opspulse/opspulse-backend-go/internal/domain/user"
)

type fakeUserRepo struct {
	users       map[string]user.User
	lastTouched string
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{users: make(map[string]user.User)}
}

func (f *fakeUserRepo) Create(ctx context.Context, u user.User) (user.User, error) {
	f.users[u.ID] = u
	return u, nil
}

func (f *fakeUserRepo) GetByID(ctx context.Context, id string) (user.User, error) {
	u, ok := f.users[id]
	if !ok {
		return user.User{}, user.ErrUserNotFound
	}
	return u, nil
}

func (f *fakeUserRepo) GetByEmail(ctx context.Context, email string) (user.User, error) {
	for _, u := range f.users {
		if u.Email == email {
			return u, nil
		}
	}
	return user.User{}, user.ErrUserNotFound
}

func (f *fakeUserRepo) ListByTeamAndRole(ctx context.Context, teamID string, role user.Role) ([]user.User, error) {
	var out []user.User
	for _, u := range f.users {
		if u.Team == teamID && u.Role == role && u.Active {
			out = append(out, u)
		}
	}
	return out, nil
}

func (f *fakeUserRepo) ListAll(ctx context.Context) ([]user.User, error) {
	out := make([]user.User, 0, len(f.users))
	for _, u := range f.users {
		out = append(out, u)
	}
	return out, nil
}

func (f *fakeUserRepo) TouchLastLogin(ctx context.Context, id string) error {
	if _, ok := f.users[id]; !ok {
		return user.ErrUserNotFound
	}
	f.lastTouched = id
	return nil
}

func testCatalog(t *testing.T) *team.Catalog {
	t.Helper()
	catalog, err := team.NewCatalog([]team.TeamConfig{
		{
			ID:   "database-operations",
			Name: "Database Operations",
			Activities: []team.ActivityDef{
				{ID: "database_support", Name: "Database Support"},
				{ID: "oncall", Name: "Oncall"},
			},
			Goals: map[team.LocationType]team.GoalSet{
				team.LocationOnshore:  {DailyHours: 8, WeeklyHours: 40, ExtraName: "monthly_productivity", ExtraTarget: 85},
				team.LocationOffshore: {DailyHours: 8.8, WeeklyHours: 44, ExtraName: "monthly_productivity", ExtraTarget: 85},
			},
		},
	})
	require.NoError(t, err)
	return catalog
}

func TestUserService_Register_SnapshotsGoalsByLocation(t *testing.T) {
	t.Parallel()
	repo := newFakeUserRepo()
	svc := NewUserService(repo, testCatalog(t))

	created, err := svc.Register(context.Background(), user.RegisterRequest{
		Name:         "Ana",
		Email:        "ana@example.com",
		Role:         "employee",
		Team:         "database-operations",
		LocationType: "offshore",
	})

	require.NoError(t, err)
	assert.NotEmpty(t, created.ID)
	assert.Equal(t, "offshore", created.LocationType)
	assert.Equal(t, 8.8, created.ExpectedDailyHours)
	assert.Equal(t, 8.8, created.Goals["daily_hours"])
	assert.Equal(t, 44.0, created.Goals["weekly_hours"])
	assert.Equal(t, 85.0, created.Goals["monthly_productivity"])
}

func TestUserService_Register_DuplicateEmail(t *testing.T) {
	t.Parallel()
	repo := newFakeUserRepo()
	svc := NewUserService(repo, testCatalog(t))
	ctx := context.Background()

	req := user.RegisterRequest{
		Name:         "Ana",
		Email:        "ana@example.com",
		Role:         "employee",
		Team:         "database-operations",
		LocationType: "onshore",
	}

	_, err := svc.Register(ctx, req)
	require.NoError(t, err)

	_, err = svc.Register(ctx, req)
	assert.ErrorIs(t, err, user.ErrEmailExists)
}

func TestUserService_Register_UnknownTeam(t *testing.T) {
	t.Parallel()
	svc := NewUserService(newFakeUserRepo(), testCatalog(t))

	_, err := svc.Register(context.Background(), user.RegisterRequest{
		Name:         "Ana",
		Email:        "ana@example.com",
		Role:         "employee",
		Team:         "nonexistent",
		LocationType: "onshore",
	})

	assert.ErrorIs(t, err, team.ErrTeamNotFound)
}

func TestUserService_Register_InvalidRequest(t *testing.T) {
	t.Parallel()
	svc := NewUserService(newFakeUserRepo(), testCatalog(t))

	_, err := svc.Register(context.Background(), user.RegisterRequest{
		Name:         "",
		Email:        "not-an-email",
		Role:         "root",
		Team:         "database-operations",
		LocationType: "lunar",
	})

	require.Error(t, err)
}

func TestUserService_IdentifyByEmail_TouchesLastLogin(t *testing.T) {
	t.Parallel()
	repo := newFakeUserRepo()
	svc := NewUserService(repo, testCatalog(t))
	ctx := context.Background()

	created, err := svc.Register(ctx, user.RegisterRequest{
		Name:         "Ana",
		Email:        "ana@example.com",
		Role:         "manager",
		Team:         "database-operations",
		LocationType: "onshore",
	})
	require.NoError(t, err)

	identified, err := svc.IdentifyByEmail(ctx, "ana@example.com")
	require.NoError(t, err)
	assert.Equal(t, created.ID, identified.ID)
	assert.Equal(t, created.ID, repo.lastTouched)

	_, err = svc.IdentifyByEmail(ctx, "ghost@example.com")
	assert.ErrorIs(t, err, user.ErrUserNotFound)
}
