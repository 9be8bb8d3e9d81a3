package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"alfredoptarigan/ats-screener/internal/models"
	"alfredoptarigan/ats-screener/internal/repositories"
	"alfredoptarigan/ats-screener/internal/repositories/repotest"
	"alfredoptarigan/ats-screener/internal/services"
)

func newAccounts() (services.AccountService, *repotest.UserRepository, *repotest.HistoryRepository) {
	users := repotest.NewUserRepository()
	history := repotest.NewHistoryRepository()
	return services.NewAccountService(users, history, bcrypt.MinCost), users, history
}

func TestAccountService_Signup(t *testing.T) {
	ctx := context.Background()
	accounts, users, _ := newAccounts()

	user, err := accounts.Signup(ctx, models.SignupRequest{
		Name:     " Ada ",
		Email:    " Ada@Example.com ",
		Password: "secret",
	})
	require.NoError(t, err)
	assert.Equal(t, "Ada", user.Name)
	assert.Equal(t, "ada@example.com", user.Email)
	assert.NotEqual(t, "secret", user.PasswordHash)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte("secret")))

	stored, err := users.FindByEmail(ctx, "ada@example.com")
	require.NoError(t, err)
	assert.Equal(t, user.ID, stored.ID)

	_, err = accounts.Signup(ctx, models.SignupRequest{Name: "Other", Email: "ADA@example.com", Password: "x"})
	assert.ErrorIs(t, err, services.ErrEmailTaken)
}

func TestAccountService_SignupInvalid(t *testing.T) {
	accounts, _, _ := newAccounts()

	cases := []struct {
		name string
		req  models.SignupRequest
	}{
		{name: "missing name", req: models.SignupRequest{Email: "a@b.co", Password: "x"}},
		{name: "missing email", req: models.SignupRequest{Name: "A", Password: "x"}},
		{name: "missing password", req: models.SignupRequest{Name: "A", Email: "a@b.co"}},
		{name: "malformed email", req: models.SignupRequest{Name: "A", Email: "not-an-email", Password: "x"}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := accounts.Signup(context.Background(), tc.req)
			assert.ErrorIs(t, err, services.ErrInvalidInput)
		})
	}
}

func TestAccountService_Login(t *testing.T) {
	ctx := context.Background()
	accounts, _, _ := newAccounts()

	created, err := accounts.Signup(ctx, models.SignupRequest{Name: "Ada", Email: "ada@example.com", Password: "secret"})
	require.NoError(t, err)

	user, err := accounts.Login(ctx, models.LoginRequest{Email: "ADA@example.com", Password: "secret"})
	require.NoError(t, err)
	assert.Equal(t, created.ID, user.ID)

	_, err = accounts.Login(ctx, models.LoginRequest{Email: "ada@example.com", Password: "wrong"})
	assert.ErrorIs(t, err, services.ErrInvalidCredentials)

	_, err = accounts.Login(ctx, models.LoginRequest{Email: "nobody@example.com", Password: "secret"})
	assert.ErrorIs(t, err, services.ErrInvalidCredentials)

	_, err = accounts.Login(ctx, models.LoginRequest{Email: "ada@example.com"})
	assert.ErrorIs(t, err, services.ErrInvalidInput)
}

func TestAccountService_Dashboard(t *testing.T) {
	ctx := context.Background()
	accounts, _, history := newAccounts()

	user, err := accounts.Signup(ctx, models.SignupRequest{Name: "Ada", Email: "ada@example.com", Password: "secret"})
	require.NoError(t, err)

	empty, err := accounts.Dashboard(ctx, user.ID)
	require.NoError(t, err)
	assert.Equal(t, "Ada", empty.UserName)
	assert.NotNil(t, empty.Scores)
	assert.Empty(t, empty.Scores)
	assert.Equal(t, 0.0, empty.AvgScore)

	match := 80.0
	_, err = accounts.RecordAnalysis(ctx, user.ID, &models.ScoreReport{ATSScore: 10, JobMatch: &match}, "python")
	require.NoError(t, err)
	_, err = accounts.RecordAnalysis(ctx, user.ID, &models.ScoreReport{ATSScore: 33}, "")
	require.NoError(t, err)

	entries := history.Entries()
	require.Len(t, entries, 2)
	assert.Equal(t, 80.0, entries[0].Score)
	assert.Equal(t, 10.0, entries[0].ATSScore)
	assert.Equal(t, "python", entries[0].JobDescription)
	assert.Equal(t, 33.0, entries[1].Score)

	dashboard, err := accounts.Dashboard(ctx, user.ID)
	require.NoError(t, err)
	assert.Len(t, dashboard.Scores, 2)
	assert.Equal(t, 56.5, dashboard.AvgScore)

	_, err = accounts.Dashboard(ctx, uuid.New())
	assert.ErrorIs(t, err, repositories.ErrUserNotFound)
}

func TestAverageScore(t *testing.T) {
	now := time.Now()
	cases := []struct {
		name   string
		scores []float64
		want   float64
	}{
		{name: "none", scores: nil, want: 0},
		{name: "one", scores: []float64{42.5}, want: 42.5},
		{name: "rounded", scores: []float64{10, 20, 20}, want: 16.67},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			entries := make([]models.HistoryEntry, len(tc.scores))
			for i, s := range tc.scores {
				entries[i] = models.HistoryEntry{Score: s, CreatedAt: now}
			}
			assert.Equal(t, tc.want, services.AverageScore(entries))
		})
	}
}
