package service_test

import (
	"context"
	"strings"
	"testing"

	"github.com/dom/notes-api/internal/domain"
	"github.com/dom/notes-api/internal/repository/postgres"
	"github.com/dom/notes-api/internal/service"
	"github.com/dom/notes-api/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAuthService_Signup(t *testing.T) {
	testDB := testutil.NewTestDB(t)
	repos := postgres.NewRepositories(testDB.DB)
	cfg := testutil.TestConfig()
	authService := service.NewAuthService(repos.User, cfg)
	ctx := context.Background()

	tests := []struct {
		name    string
		input   service.SignupInput
		setup   func()
		wantErr error
	}{
		{
			name: "successful signup",
			input: service.SignupInput{
				Name:     "Ana",
				Email:    "a@x.com",
				Password: "p1",
			},
		},
		{
			name: "password over bcrypt limit",
			input: service.SignupInput{
				Name:     "Long",
				Email:    "long@x.com",
				Password: strings.Repeat("p", 73),
			},
			wantErr: domain.ErrPasswordTooLong,
		},
		{
			name: "duplicate email",
			input: service.SignupInput{
				Name:     "Other",
				Email:    "taken@x.com",
				Password: "p2",
			},
			setup: func() {
				testutil.NewUserBuilder().
					WithEmail("taken@x.com").
					Build(t, testDB.DB)
			},
			wantErr: domain.ErrEmailTaken,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			testDB.Truncate(t)

			if tt.setup != nil {
				tt.setup()
			}

			user, err := authService.Signup(ctx, tt.input)

			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.input.Name, user.Name)
			assert.Equal(t, tt.input.Email, user.Email)
			assert.NotEqual(t, tt.input.Password, user.PasswordHash)

			// The fresh credentials must log in.
			_, token, err := authService.Login(ctx, service.LoginInput{
				Email:    tt.input.Email,
				Password: tt.input.Password,
			})
			require.NoError(t, err)
			assert.NotEmpty(t, token)
		})
	}
}

func TestAuthService_Login(t *testing.T) {
	testDB := testutil.NewTestDB(t)
	repos := postgres.NewRepositories(testDB.DB)
	cfg := testutil.TestConfig()
	authService := service.NewAuthService(repos.User, cfg)
	ctx := context.Background()

	user, rawPassword := testutil.NewUserBuilder().
		WithEmail("login@x.com").
		WithPassword("correctpassword").
		Build(t, testDB.DB)

	tests := []struct {
		name    string
		input   service.LoginInput
		wantErr error
	}{
		{
			name:  "successful login",
			input: service.LoginInput{Email: user.Email, Password: rawPassword},
		},
		{
			name:    "wrong password",
			input:   service.LoginInput{Email: user.Email, Password: "wrongpassword"},
			wantErr: domain.ErrInvalidPassword,
		},
		{
			name:    "unknown email",
			input:   service.LoginInput{Email: "nobody@x.com", Password: "anypassword"},
			wantErr: domain.ErrUserNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, token, err := authService.Login(ctx, tt.input)

			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, user.ID, got.ID)
			assert.NotEmpty(t, token)

			// The token round-trips to the same identity.
			parsed, err := authService.ParseToken(token)
			require.NoError(t, err)
			assert.Equal(t, user.ID, parsed)
		})
	}
}

func TestAuthService_PasswordHashing(t *testing.T) {
	testDB := testutil.NewTestDB(t)
	repos := postgres.NewRepositories(testDB.DB)
	cfg := testutil.TestConfig()
	authService := service.NewAuthService(repos.User, cfg)
	ctx := context.Background()

	// Same plaintext, different salts, different hashes.
	first, err := authService.Signup(ctx, service.SignupInput{
		Name: "A", Email: "first@x.com", Password: "samepassword",
	})
	require.NoError(t, err)

	second, err := authService.Signup(ctx, service.SignupInput{
		Name: "B", Email: "second@x.com", Password: "samepassword",
	})
	require.NoError(t, err)

	assert.NotEqual(t, first.PasswordHash, second.PasswordHash)
}
