//go:build integration
// +build integration

package persistence

import (
	"context"
	"testing"

	"github.com/Tsilavina4274/odyssea/internal/domain/applications"
	"github.com/Tsilavina4274/odyssea/internal/domain/shared"
	"github.com/Tsilavina4274/odyssea/internal/domain/universities"
	"github.com/Tsilavina4274/odyssea/internal/domain/users"
	"github.com/Tsilavina4274/odyssea/internal/pkg/config"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestApplicationPostgresRepository_CreateAndGet(t *testing.T) {
	ctx := SetupTestDB(t, config.PostgresDbType)

	student, _ := CreateTestUser(t, ctx, users.UserTypeStudent, "Lea", "Martin")
	university := CreateTestUniversity(t, ctx, "Université Lyon 1", "Lyon")
	formation := CreateTestFormation(t, ctx, university.ID, "Licence Informatique")
	application := CreateTestApplication(t, ctx, student.ID, formation.ID, applications.StatusSubmitted)

	fetched, err := ctx.ApplicationRepo.GetByID(context.Background(), application.ID)
	require.NoError(t, err)
	assert.Equal(t, application.ID, fetched.ID)
	require.NotNil(t, fetched.Formation)
	assert.Equal(t, formation.Name, fetched.Formation.Name)
}

func TestApplicationPostgresRepository_UniqueStudentFormation(t *testing.T) {
	ctx := SetupTestDB(t, config.PostgresDbType)

	student, _ := CreateTestUser(t, ctx, users.UserTypeStudent, "Lea", "Martin")
	university := CreateTestUniversity(t, ctx, "Université Lyon 1", "Lyon")
	formation := CreateTestFormation(t, ctx, university.ID, "Licence Informatique")
	first := CreateTestApplication(t, ctx, student.ID, formation.ID, applications.StatusDraft)

	second := *first
	second.ID = uuid.NewString()
	assert.ErrorIs(t, ctx.ApplicationRepo.Create(context.Background(), &second), shared.ErrConflict)
}

func TestFormationPostgresRepository_SearchIsCaseInsensitive(t *testing.T) {
	ctx := SetupTestDB(t, config.PostgresDbType)

	university := CreateTestUniversity(t, ctx, "Université Lyon 1", "Lyon")
	CreateTestFormation(t, ctx, university.ID, "Licence Informatique")

	list, err := ctx.FormationRepo.List(context.Background(), &universities.FormationQuery{Search: "INFORMATIQUE"})
	require.NoError(t, err)
	assert.Len(t, list, 1)
}
