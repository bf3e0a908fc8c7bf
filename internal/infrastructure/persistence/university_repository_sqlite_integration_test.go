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

func TestUniversitySqliteRepository_ListFilters(t *testing.T) {
	ctx := SetupTestDB(t, config.SqliteDbType)

	CreateTestUniversity(t, ctx, "Université Lyon 1", "Lyon")
	CreateTestUniversity(t, ctx, "INSA Lyon", "Lyon")
	CreateTestUniversity(t, ctx, "Sorbonne Université", "Paris")

	list, err := ctx.UniversityRepo.List(context.Background(), &universities.UniversityQuery{City: "Lyon"})
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, "INSA Lyon", list[0].Name)

	list, err = ctx.UniversityRepo.List(context.Background(), &universities.UniversityQuery{Search: "paris"})
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, "Sorbonne Université", list[0].Name)
	assert.Equal(t, []string{"HCERES"}, list[0].Accreditations)

	list, err = ctx.UniversityRepo.List(context.Background(), &universities.UniversityQuery{Limit: 1, Offset: 1})
	require.NoError(t, err)
	assert.Len(t, list, 1)
}

func TestUniversitySqliteRepository_List_InvalidQuery(t *testing.T) {
	ctx := SetupTestDB(t, config.SqliteDbType)

	_, err := ctx.UniversityRepo.List(context.Background(), &universities.UniversityQuery{Limit: -1})
	assert.ErrorIs(t, err, shared.ErrValidation)
}

func TestUniversitySqliteRepository_Create_Invalid(t *testing.T) {
	ctx := SetupTestDB(t, config.SqliteDbType)

	err := ctx.UniversityRepo.Create(context.Background(), &universities.University{})
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "validation")
}

func TestUniversitySqliteRepository_UpdateAndDelete(t *testing.T) {
	ctx := SetupTestDB(t, config.SqliteDbType)

	university := CreateTestUniversity(t, ctx, "Université Lyon 1", "Lyon")
	formation := CreateTestFormation(t, ctx, university.ID, "Licence Informatique")

	university.Rating = 4.8
	require.NoError(t, ctx.UniversityRepo.UpdateByID(context.Background(), university))
	fetched, err := ctx.UniversityRepo.GetByID(context.Background(), university.ID)
	require.NoError(t, err)
	assert.Equal(t, 4.8, fetched.Rating)

	require.NoError(t, ctx.UniversityRepo.DeleteByID(context.Background(), university.ID))
	_, err = ctx.UniversityRepo.GetByID(context.Background(), university.ID)
	assert.ErrorIs(t, err, shared.ErrNotFound)
	_, err = ctx.FormationRepo.GetByID(context.Background(), formation.ID)
	assert.ErrorIs(t, err, shared.ErrNotFound)

	assert.ErrorIs(t, ctx.UniversityRepo.DeleteByID(context.Background(), uuid.NewString()), shared.ErrNotFound)
}

func TestUniversitySqliteRepository_DeleteWithApplications(t *testing.T) {
	ctx := SetupTestDB(t, config.SqliteDbType)

	student, _ := CreateTestUser(t, ctx, users.UserTypeStudent, "Léa", "Martin")
	university := CreateTestUniversity(t, ctx, "Université Lyon 1", "Lyon")
	formation := CreateTestFormation(t, ctx, university.ID, "Licence Informatique")
	application := CreateTestApplication(t, ctx, student.ID, formation.ID, applications.StatusSubmitted)

	err := ctx.UniversityRepo.DeleteByID(context.Background(), university.ID)
	assert.ErrorIs(t, err, shared.ErrConflict)

	_, err = ctx.UniversityRepo.GetByID(context.Background(), university.ID)
	assert.NoError(t, err)
	_, err = ctx.FormationRepo.GetByID(context.Background(), formation.ID)
	assert.NoError(t, err)
	fetched, err := ctx.ApplicationRepo.GetByID(context.Background(), application.ID)
	require.NoError(t, err)
	require.NotNil(t, fetched.Formation)
	assert.Equal(t, formation.ID, fetched.Formation.ID)
}

func TestFormationSqliteRepository_SearchEmbedsUniversity(t *testing.T) {
	ctx := SetupTestDB(t, config.SqliteDbType)

	lyon := CreateTestUniversity(t, ctx, "Université Lyon 1", "Lyon")
	paris := CreateTestUniversity(t, ctx, "Sorbonne Université", "Paris")
	CreateTestFormation(t, ctx, lyon.ID, "Licence Informatique")
	CreateTestFormation(t, ctx, paris.ID, "Master Informatique")

	inactive := NewTestFormation(lyon.ID, "Licence Histoire")
	inactive.IsActive = false
	require.NoError(t, ctx.FormationRepo.Create(context.Background(), inactive))

	list, err := ctx.FormationRepo.List(context.Background(), &universities.FormationQuery{City: "Lyon"})
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, "Licence Informatique", list[0].Name)
	require.NotNil(t, list[0].University)
	assert.Equal(t, "Université Lyon 1", list[0].University.Name)

	list, err = ctx.FormationRepo.List(context.Background(), &universities.FormationQuery{Search: "informatique"})
	require.NoError(t, err)
	assert.Len(t, list, 2)

	list, err = ctx.FormationRepo.List(context.Background(), &universities.FormationQuery{UniversityID: lyon.ID})
	require.NoError(t, err)
	assert.Len(t, list, 1)
}

func TestFormationSqliteRepository_DistinctValues(t *testing.T) {
	ctx := SetupTestDB(t, config.SqliteDbType)

	lyon := CreateTestUniversity(t, ctx, "Université Lyon 1", "Lyon")
	CreateTestUniversity(t, ctx, "Sorbonne Université", "Paris")

	master := NewTestFormation(lyon.ID, "Master Droit")
	master.Domain = "Droit"
	master.Level = "Master"
	require.NoError(t, ctx.FormationRepo.Create(context.Background(), master))
	CreateTestFormation(t, ctx, lyon.ID, "Licence Informatique")
	CreateTestFormation(t, ctx, lyon.ID, "BUT Informatique")

	domains, err := ctx.FormationRepo.DistinctDomains(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []string{"Droit", TestDomain}, domains)

	levels, err := ctx.FormationRepo.DistinctLevels(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []string{TestLevel, "Master"}, levels)

	cities, err := ctx.UniversityRepo.DistinctCities(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []string{"Lyon", "Paris"}, cities)
}

func TestFormationSqliteRepository_UpdateByID(t *testing.T) {
	ctx := SetupTestDB(t, config.SqliteDbType)

	university := CreateTestUniversity(t, ctx, "Université Lyon 1", "Lyon")
	formation := CreateTestFormation(t, ctx, university.ID, "Licence Informatique")

	formation.AvailablePlaces = 0
	require.NoError(t, ctx.FormationRepo.UpdateByID(context.Background(), formation))

	fetched, err := ctx.FormationRepo.GetByID(context.Background(), formation.ID)
	require.NoError(t, err)
	assert.Zero(t, fetched.AvailablePlaces)

	formation.AvailablePlaces = formation.TotalPlaces + 1
	assert.Error(t, ctx.FormationRepo.UpdateByID(context.Background(), formation))
}
