//go:build integration
// +build integration

package persistence

import (
	"context"
	"testing"
	"time"

	"github.com/Tsilavina4274/odyssea/internal/domain/applications"
	"github.com/Tsilavina4274/odyssea/internal/domain/shared"
	"github.com/Tsilavina4274/odyssea/internal/domain/users"
	"github.com/Tsilavina4274/odyssea/internal/pkg/config"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestApplicationSqliteRepository_ListByStudentEmbedsFormation(t *testing.T) {
	ctx := SetupTestDB(t, config.SqliteDbType)

	student, _ := CreateTestUser(t, ctx, users.UserTypeStudent, "Lea", "Martin")
	university := CreateTestUniversity(t, ctx, "Université Lyon 1", "Lyon")
	formation := CreateTestFormation(t, ctx, university.ID, "Licence Informatique")
	CreateTestApplication(t, ctx, student.ID, formation.ID, applications.StatusDraft)

	list, err := ctx.ApplicationRepo.ListByStudent(context.Background(), student.ID)
	require.NoError(t, err)
	require.Len(t, list, 1)
	require.NotNil(t, list[0].Formation)
	require.NotNil(t, list[0].Formation.University)
	assert.Equal(t, "Université Lyon 1", list[0].Formation.University.Name)
}

func TestApplicationSqliteRepository_UniqueStudentFormation(t *testing.T) {
	ctx := SetupTestDB(t, config.SqliteDbType)

	student, _ := CreateTestUser(t, ctx, users.UserTypeStudent, "Lea", "Martin")
	university := CreateTestUniversity(t, ctx, "Université Lyon 1", "Lyon")
	formation := CreateTestFormation(t, ctx, university.ID, "Licence Informatique")
	first := CreateTestApplication(t, ctx, student.ID, formation.ID, applications.StatusDraft)

	exists, err := ctx.ApplicationRepo.Exists(context.Background(), student.ID, formation.ID)
	require.NoError(t, err)
	assert.True(t, exists)

	second := *first
	second.ID = uuid.NewString()
	err = ctx.ApplicationRepo.Create(context.Background(), &second)
	assert.ErrorIs(t, err, shared.ErrConflict)
}

func TestApplicationSqliteRepository_ListByFormationExcludesDrafts(t *testing.T) {
	ctx := SetupTestDB(t, config.SqliteDbType)

	lea, _ := CreateTestUser(t, ctx, users.UserTypeStudent, "Lea", "Martin")
	paul, _ := CreateTestUser(t, ctx, users.UserTypeStudent, "Paul", "Durand")
	university := CreateTestUniversity(t, ctx, "Université Lyon 1", "Lyon")
	formation := CreateTestFormation(t, ctx, university.ID, "Licence Informatique")

	CreateTestApplication(t, ctx, lea.ID, formation.ID, applications.StatusDraft)
	submitted := CreateTestApplication(t, ctx, paul.ID, formation.ID, applications.StatusSubmitted)

	list, err := ctx.ApplicationRepo.ListByFormation(context.Background(), formation.ID)
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, submitted.ID, list[0].ID)
}

func TestApplicationSqliteRepository_UpdateAndDelete(t *testing.T) {
	ctx := SetupTestDB(t, config.SqliteDbType)

	student, _ := CreateTestUser(t, ctx, users.UserTypeStudent, "Lea", "Martin")
	university := CreateTestUniversity(t, ctx, "Université Lyon 1", "Lyon")
	formation := CreateTestFormation(t, ctx, university.ID, "Licence Informatique")
	application := CreateTestApplication(t, ctx, student.ID, formation.ID, applications.StatusDraft)

	require.NoError(t, application.Submit(time.Now().UTC()))
	application.AdditionalDocuments = []string{uuid.NewString()}
	require.NoError(t, ctx.ApplicationRepo.UpdateByID(context.Background(), application))

	fetched, err := ctx.ApplicationRepo.GetByID(context.Background(), application.ID)
	require.NoError(t, err)
	assert.Equal(t, applications.StatusSubmitted, fetched.Status)
	assert.NotNil(t, fetched.SubmittedAt)
	assert.Equal(t, application.AdditionalDocuments, fetched.AdditionalDocuments)

	require.NoError(t, ctx.ApplicationRepo.DeleteByID(context.Background(), application.ID))
	_, err = ctx.ApplicationRepo.GetByID(context.Background(), application.ID)
	assert.ErrorIs(t, err, shared.ErrNotFound)
	assert.ErrorIs(t, ctx.ApplicationRepo.DeleteByID(context.Background(), application.ID), shared.ErrNotFound)
}

func TestApplicationSqliteRepository_CountByStatus(t *testing.T) {
	ctx := SetupTestDB(t, config.SqliteDbType)

	student, _ := CreateTestUser(t, ctx, users.UserTypeStudent, "Lea", "Martin")
	university := CreateTestUniversity(t, ctx, "Université Lyon 1", "Lyon")
	f1 := CreateTestFormation(t, ctx, university.ID, "Licence Informatique")
	f2 := CreateTestFormation(t, ctx, university.ID, "Licence Mathématiques")
	f3 := CreateTestFormation(t, ctx, university.ID, "Licence Physique")

	CreateTestApplication(t, ctx, student.ID, f1.ID, applications.StatusDraft)
	CreateTestApplication(t, ctx, student.ID, f2.ID, applications.StatusSubmitted)
	CreateTestApplication(t, ctx, student.ID, f3.ID, applications.StatusSubmitted)

	counts, err := ctx.ApplicationRepo.CountByStatus(context.Background(), student.ID, "")
	require.NoError(t, err)
	assert.Equal(t, int64(1), counts[applications.StatusDraft])
	assert.Equal(t, int64(2), counts[applications.StatusSubmitted])

	counts, err = ctx.ApplicationRepo.CountByStatus(context.Background(), "", f2.ID)
	require.NoError(t, err)
	assert.Equal(t, map[applications.Status]int64{applications.StatusSubmitted: 1}, counts)
}
