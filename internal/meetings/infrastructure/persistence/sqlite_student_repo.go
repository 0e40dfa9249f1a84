package persistence

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/avancini-tools/studyhall/internal/meetings/domain"
	"github.com/google/uuid"
)

// SQLiteStudentRepository implements domain.StudentRepository using SQLite.
type SQLiteStudentRepository struct {
	db *sql.DB
}

// NewSQLiteStudentRepository creates a new SQLite student repository.
func NewSQLiteStudentRepository(db *sql.DB) *SQLiteStudentRepository {
	return &SQLiteStudentRepository{db: db}
}

// Save persists a student, inserting or updating by id.
func (r *SQLiteStudentRepository) Save(ctx context.Context, student *domain.Student) error {
	query := `
		INSERT INTO students (id, name, created_at, updated_at)
		VALUES (?, ?, ?, ?)
		ON CONFLICT (id) DO UPDATE SET
			name = excluded.name,
			updated_at = excluded.updated_at
	`

	_, err := querier(ctx, r.db).ExecContext(ctx, query,
		student.ID().String(),
		student.Name(),
		student.CreatedAt().Format(time.RFC3339),
		student.UpdatedAt().Format(time.RFC3339),
	)
	return err
}

// FindByID retrieves a student by id. Returns nil, nil when absent.
func (r *SQLiteStudentRepository) FindByID(ctx context.Context, id uuid.UUID) (*domain.Student, error) {
	query := `SELECT id, name, created_at, updated_at FROM students WHERE id = ?`

	var (
		rowID     string
		name      string
		createdAt string
		updatedAt string
	)
	err := querier(ctx, r.db).QueryRowContext(ctx, query, id.String()).Scan(&rowID, &name, &createdAt, &updatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}

	return rehydrateSQLiteStudent(rowID, name, createdAt, updatedAt), nil
}

// FindAll retrieves every student in a stable order.
func (r *SQLiteStudentRepository) FindAll(ctx context.Context) ([]*domain.Student, error) {
	query := `SELECT id, name, created_at, updated_at FROM students ORDER BY created_at, id`

	rows, err := querier(ctx, r.db).QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	students := make([]*domain.Student, 0)
	for rows.Next() {
		var (
			rowID     string
			name      string
			createdAt string
			updatedAt string
		)
		if err := rows.Scan(&rowID, &name, &createdAt, &updatedAt); err != nil {
			return nil, err
		}
		students = append(students, rehydrateSQLiteStudent(rowID, name, createdAt, updatedAt))
	}

	return students, rows.Err()
}

func rehydrateSQLiteStudent(rowID, name, createdAt, updatedAt string) *domain.Student {
	id, _ := uuid.Parse(rowID)
	created, _ := time.Parse(time.RFC3339, createdAt)
	updated, _ := time.Parse(time.RFC3339, updatedAt)
	return domain.RehydrateStudent(id, name, created, updated)
}
