package persistence

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/avancini-tools/studyhall/internal/meetings/domain"
	"github.com/google/uuid"
)

// SQLiteOrganizerRepository implements domain.OrganizerRepository using SQLite.
type SQLiteOrganizerRepository struct {
	db *sql.DB
}

// NewSQLiteOrganizerRepository creates a new SQLite organizer repository.
func NewSQLiteOrganizerRepository(db *sql.DB) *SQLiteOrganizerRepository {
	return &SQLiteOrganizerRepository{db: db}
}

// Add inserts an organizer link.
func (r *SQLiteOrganizerRepository) Add(ctx context.Context, organizer *domain.Organizer) error {
	query := `
		INSERT INTO meeting_organizers (id, meeting_id, student_id, created_at)
		VALUES (?, ?, ?, ?)
	`

	_, err := querier(ctx, r.db).ExecContext(ctx, query,
		organizer.ID().String(),
		organizer.MeetingID().String(),
		organizer.StudentID().String(),
		organizer.CreatedAt().Format(time.RFC3339),
	)
	return err
}

// Find retrieves the link for a (meeting, student) pair. Returns nil, nil when absent.
func (r *SQLiteOrganizerRepository) Find(ctx context.Context, meetingID, studentID uuid.UUID) (*domain.Organizer, error) {
	query := `
		SELECT id, meeting_id, student_id, created_at
		FROM meeting_organizers
		WHERE meeting_id = ? AND student_id = ?
	`

	var (
		rowID     string
		mID       string
		sID       string
		createdAt string
	)
	err := querier(ctx, r.db).QueryRowContext(ctx, query, meetingID.String(), studentID.String()).
		Scan(&rowID, &mID, &sID, &createdAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}

	id, _ := uuid.Parse(rowID)
	created, _ := time.Parse(time.RFC3339, createdAt)
	return domain.RehydrateOrganizer(id, meetingID, studentID, created), nil
}

// Remove deletes the link for a (meeting, student) pair.
func (r *SQLiteOrganizerRepository) Remove(ctx context.Context, meetingID, studentID uuid.UUID) error {
	query := `DELETE FROM meeting_organizers WHERE meeting_id = ? AND student_id = ?`
	_, err := querier(ctx, r.db).ExecContext(ctx, query, meetingID.String(), studentID.String())
	return err
}

// StudentsByMeeting joins organizer links to students for one meeting.
func (r *SQLiteOrganizerRepository) StudentsByMeeting(ctx context.Context, meetingID uuid.UUID) ([]*domain.Student, error) {
	query := `
		SELECT s.id, s.name, s.created_at, s.updated_at
		FROM students s
		JOIN meeting_organizers mo ON mo.student_id = s.id
		WHERE mo.meeting_id = ?
		ORDER BY mo.created_at, s.id
	`

	rows, err := querier(ctx, r.db).QueryContext(ctx, query, meetingID.String())
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
