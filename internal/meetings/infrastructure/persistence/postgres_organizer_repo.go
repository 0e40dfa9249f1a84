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

// PostgresOrganizerRepository implements domain.OrganizerRepository using PostgreSQL.
type PostgresOrganizerRepository struct {
	pool *pgxpool.Pool
}

// NewPostgresOrganizerRepository creates a new PostgreSQL organizer repository.
func NewPostgresOrganizerRepository(pool *pgxpool.Pool) *PostgresOrganizerRepository {
	return &PostgresOrganizerRepository{pool: pool}
}

// Add inserts an organizer link.
func (r *PostgresOrganizerRepository) Add(ctx context.Context, organizer *domain.Organizer) error {
	query := `
		INSERT INTO meeting_organizers (id, meeting_id, student_id, created_at)
		VALUES ($1, $2, $3, $4)
	`

	_, err := sharedPersistence.Executor(ctx, r.pool).Exec(ctx, query,
		organizer.ID(),
		organizer.MeetingID(),
		organizer.StudentID(),
		organizer.CreatedAt(),
	)
	return err
}

// Find retrieves the link for a (meeting, student) pair. Returns nil, nil when absent.
func (r *PostgresOrganizerRepository) Find(ctx context.Context, meetingID, studentID uuid.UUID) (*domain.Organizer, error) {
	query := `
		SELECT id, meeting_id, student_id, created_at
		FROM meeting_organizers
		WHERE meeting_id = $1 AND student_id = $2
	`

	var (
		rowID     uuid.UUID
		mID       uuid.UUID
		sID       uuid.UUID
		createdAt time.Time
	)
	err := sharedPersistence.Executor(ctx, r.pool).QueryRow(ctx, query, meetingID, studentID).
		Scan(&rowID, &mID, &sID, &createdAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}

	return domain.RehydrateOrganizer(rowID, mID, sID, createdAt), nil
}

// Remove deletes the link for a (meeting, student) pair.
func (r *PostgresOrganizerRepository) Remove(ctx context.Context, meetingID, studentID uuid.UUID) error {
	query := `DELETE FROM meeting_organizers WHERE meeting_id = $1 AND student_id = $2`
	_, err := sharedPersistence.Executor(ctx, r.pool).Exec(ctx, query, meetingID, studentID)
	return err
}

// StudentsByMeeting joins organizer links to students for one meeting.
func (r *PostgresOrganizerRepository) StudentsByMeeting(ctx context.Context, meetingID uuid.UUID) ([]*domain.Student, error) {
	query := `
		SELECT s.id, s.name, s.created_at, s.updated_at
		FROM students s
		JOIN meeting_organizers mo ON mo.student_id = s.id
		WHERE mo.meeting_id = $1
		ORDER BY mo.created_at, s.id
	`

	rows, err := sharedPersistence.Executor(ctx, r.pool).Query(ctx, query, meetingID)
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
