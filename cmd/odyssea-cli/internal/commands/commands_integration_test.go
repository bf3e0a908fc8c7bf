//go:build integration
// +build integration

package commands

import (
	"context"
	"testing"

	"github.com/Tsilavina4274/odyssea/internal/app"
	"github.com/Tsilavina4274/odyssea/internal/domain/universities"
	"github.com/Tsilavina4274/odyssea/internal/domain/users"
	"github.com/Tsilavina4274/odyssea/internal/infrastructure/auth"
	"github.com/Tsilavina4274/odyssea/internal/infrastructure/persistence"
	"github.com/Tsilavina4274/odyssea/internal/pkg/config"
	"github.com/Tsilavina4274/odyssea/internal/pkg/testutil"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSeeder_Seed(t *testing.T) {
	tc := persistence.SetupTestDB(t, config.SqliteDbType)
	log := testutil.SetupTestLogger(t)
	ctx := context.Background()

	universityService, err := app.NewUniversityService(tc.UniversityRepo, tc.FormationRepo, log)
	require.NoError(t, err)
	seeder := NewSeeder(tc.UniversityRepo, universityService, log)

	created, err := seeder.Seed(ctx)
	require.NoError(t, err)
	assert.Equal(t, 3, created)

	list, err := tc.UniversityRepo.List(ctx, &universities.UniversityQuery{})
	require.NoError(t, err)
	assert.Len(t, list, 3)

	formations, err := tc.FormationRepo.List(ctx, &universities.FormationQuery{Domain: "Informatique"})
	require.NoError(t, err)
	assert.Len(t, formations, 2)

	t.Run("second run skips existing universities", func(t *testing.T) {
		created, err := seeder.Seed(ctx)
		require.NoError(t, err)
		assert.Zero(t, created)

		list, err := tc.UniversityRepo.List(ctx, &universities.UniversityQuery{})
		require.NoError(t, err)
		assert.Len(t, list, 3)
	})
}

func TestCreateAdmin(t *testing.T) {
	tc := persistence.SetupTestDB(t, config.SqliteDbType)
	ctx := context.Background()
	hasher := auth.NewBcryptHasher(4)

	input := users.SignUpInput{
		Email:     " Admin@Odyssea.fr ",
		Password:  "Orientation2024",
		FirstName: "Camille",
		LastName:  "Martin",
	}

	user, err := CreateAdmin(ctx, tc.UserRepo, hasher, input)
	require.NoError(t, err)
	assert.Equal(t, "admin@odyssea.fr", user.Email)
	assert.NoError(t, hasher.Compare(user.PasswordHash, input.Password))

	profile, err := tc.ProfileRepo.GetByUserID(ctx, user.ID)
	require.NoError(t, err)
	assert.Equal(t, users.UserTypeAdmin, profile.UserType)
	assert.True(t, profile.IsActive)

	t.Run("duplicate email", func(t *testing.T) {
		_, err := CreateAdmin(ctx, tc.UserRepo, hasher, input)
		assert.ErrorIs(t, err, users.ErrEmailExists)
	})

	t.Run("weak password", func(t *testing.T) {
		weak := input
		weak.Email = "other@odyssea.fr"
		weak.Password = "12345678"
		_, err := CreateAdmin(ctx, tc.UserRepo, hasher, weak)
		assert.ErrorIs(t, err, users.ErrWeakPassword)
	})
}
