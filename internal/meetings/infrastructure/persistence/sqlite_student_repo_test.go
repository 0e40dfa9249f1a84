package persistence

import (
	"context"
	"testing"

	"github.com/avancini-tools/studyhall/internal/meetings/domain"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSQLiteStudentRepository_SaveAndFind(t *testing.T) {
	sqlDB := setupTestDB(t)
	repo := NewSQLiteStudentRepository(sqlDB)
	ctx := context.Background()

	student, err := domain.NewStudent("Ada Lovelace")
	require.NoError(t, err)

	require.NoError(t, repo.Save(ctx, student))

	found, err := repo.FindByID(ctx, student.ID())
	require.NoError(t, err)
	require.NotNil(t, found)
	assert.Equal(t, student.ID(), found.ID())
	assert.Equal(t, "Ada Lovelace", found.Name())
}

func TestSQLiteStudentRepository_Save_Update(t *testing.T) {
	sqlDB := setupTestDB(t)
	repo := NewSQLiteStudentRepository(sqlDB)
	ctx := context.Background()

	student, err := domain.NewStudent("Ada")
	require.NoError(t, err)
	require.NoError(t, repo.Save(ctx, student))

	// Upsert with the same id replaces the name.
	renamed := domain.RehydrateStudent(student.ID(), "Ada Lovelace", student.CreatedAt(), student.UpdatedAt())
	require.NoError(t, repo.Save(ctx, renamed))

	found, err := repo.FindByID(ctx, student.ID())
	require.NoError(t, err)
	assert.Equal(t, "Ada Lovelace", found.Name())

	all, err := repo.FindAll(ctx)
	require.NoError(t, err)
	assert.Len(t, all, 1)
}

func TestSQLiteStudentRepository_FindByID_NotFound(t *testing.T) {
	sqlDB := setupTestDB(t)
	repo := NewSQLiteStudentRepository(sqlDB)

	found, err := repo.FindByID(context.Background(), uuid.New())
	require.NoError(t, err)
	assert.Nil(t, found)
}

func TestSQLiteStudentRepository_FindAll(t *testing.T) {
	sqlDB := setupTestDB(t)
	repo := NewSQLiteStudentRepository(sqlDB)
	ctx := context.Background()

	ada, err := domain.NewStudent("Ada Lovelace")
	require.NoError(t, err)
	grace, err := domain.NewStudent("Grace Hopper")
	require.NoError(t, err)
	require.NoError(t, repo.Save(ctx, ada))
	require.NoError(t, repo.Save(ctx, grace))

	students, err := repo.FindAll(ctx)
	require.NoError(t, err)
	require.Len(t, students, 2)
}
