package persistence

import (
	"context"
	"errors"
	"time"

	"github.com/avancini-tools/studyhall/internal/meetings/domain"
	sharedPersistence "github.com/avancini-tools/studyhall/internal/shared/infrastructure/persistence"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// PostgresStudentRepository implements domain.StudentRepository using PostgreSQL.
type PostgresStudentRepository struct {
	pool *pgxpool.Pool
}

// NewPostgresStudentRepository creates a new PostgreSQL student repository.
func NewPostgresStudentRepository(pool *pgxpool.Pool) *PostgresStudentRepository {
	return &PostgresStudentRepository{pool: pool}
}

// Save persists a student, inserting or updating by id.
func (r *PostgresStudentRepository) Save(ctx context.Context, student *domain.Student) error {
	query := `
		INSERT INTO students (id, name, created_at, updated_at)
		VALUES ($1, $2, $3, $4)
		ON CONFLICT (id) DO UPDATE SET
			name = EXCLUDED.name,
			updated_at = EXCLUDED.updated_at
	`

	_, err := sharedPersistence.Executor(ctx, r.pool).Exec(ctx, query,
		student.ID(),
		student.Name(),
		student.CreatedAt(),
		student.UpdatedAt(),
	)
	return err
}

// FindByID retrieves a student by id. Returns nil, nil when absent.
func (r *PostgresStudentRepository) FindByID(ctx context.Context, id uuid.UUID) (*domain.Student, error) {
	query := `SELECT id, name, created_at, updated_at FROM students WHERE id = $1`

	var (
		rowID     uuid.UUID
		name      string
		createdAt time.Time
		updatedAt time.Time
	)
	err := sharedPersistence.Executor(ctx, r.pool).QueryRow(ctx, query, id).
		Scan(&rowID, &name, &createdAt, &updatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}

	return domain.RehydrateStudent(rowID, name, createdAt, updatedAt), nil
}

// FindAll retrieves every student in a stable order.
func (r *PostgresStudentRepository) FindAll(ctx context.Context) ([]*domain.Student, error) {
	query := `SELECT id, name, created_at, updated_at FROM students ORDER BY created_at, id`

	rows, err := sharedPersistence.Executor(ctx, r.pool).Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	students := make([]*domain.Student, 0)
	for rows.Next() {
		var (
			rowID     uuid.UUID
			name      string
			createdAt time.Time
			updatedAt time.Time
		)
		if err := rows.Scan(&rowID, &name, &createdAt, &updatedAt); err != nil {
			return nil, err
		}
		students = append(students, domain.RehydrateStudent(rowID, name, createdAt, updatedAt))
	}

	if rows.Err() != nil {
		return nil, rows.Err()
	}

	return students, nil
}
