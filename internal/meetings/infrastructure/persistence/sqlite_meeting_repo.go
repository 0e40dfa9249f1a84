package persistence

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/avancini-tools/studyhall/internal/meetings/domain"
	"github.com/google/uuid"
)

// SQLiteMeetingRepository implements domain.Repository using SQLite.
type SQLiteMeetingRepository struct {
	db *sql.DB
}

// NewSQLiteMeetingRepository creates a new SQLite meeting repository.
func NewSQLiteMeetingRepository(db *sql.DB) *SQLiteMeetingRepository {
	return &SQLiteMeetingRepository{db: db}
}

type sqliteMeetingRow struct {
	ID                  string
	Topic               string
	Date                string
	Duration            int64
	InvitedStudents     int64
	AcceptedInvitations int64
	MeetingType         string
	CreatedAt           string
	UpdatedAt           string
}

// Save persists a meeting, inserting or updating by id.
func (r *SQLiteMeetingRepository) Save(ctx context.Context, meeting *domain.Meeting) error {
	query := `
		INSERT INTO meetings (
			id, topic, date, duration, invited_students,
			accepted_invitations, meeting_type, created_at, updated_at
		) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT (id) DO UPDATE SET
			topic = excluded.topic,
			date = excluded.date,
			duration = excluded.duration,
			invited_students = excluded.invited_students,
			accepted_invitations = excluded.accepted_invitations,
			meeting_type = excluded.meeting_type,
			updated_at = excluded.updated_at
	`

	_, err := querier(ctx, r.db).ExecContext(ctx, query,
		meeting.ID().String(),
		meeting.Topic(),
		meeting.DateString(),
		meeting.Duration(),
		meeting.InvitedStudents(),
		meeting.AcceptedInvitations(),
		meeting.MeetingType(),
		meeting.CreatedAt().Format(time.RFC3339),
		meeting.UpdatedAt().Format(time.RFC3339),
	)
	return err
}

// FindByID retrieves a meeting by its ID. Returns nil, nil when absent.
func (r *SQLiteMeetingRepository) FindByID(ctx context.Context, id uuid.UUID) (*domain.Meeting, error) {
	query := `
		SELECT id, topic, date, duration, invited_students,
		       accepted_invitations, meeting_type, created_at, updated_at
		FROM meetings
		WHERE id = ?
	`

	var row sqliteMeetingRow
	err := querier(ctx, r.db).QueryRowContext(ctx, query, id.String()).Scan(
		&row.ID,
		&row.Topic,
		&row.Date,
		&row.Duration,
		&row.InvitedStudents,
		&row.AcceptedInvitations,
		&row.MeetingType,
		&row.CreatedAt,
		&row.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}

	return r.rowToMeeting(row), nil
}

// FindAll retrieves every meeting in a stable order.
func (r *SQLiteMeetingRepository) FindAll(ctx context.Context) ([]*domain.Meeting, error) {
	query := `
		SELECT id, topic, date, duration, invited_students,
		       accepted_invitations, meeting_type, created_at, updated_at
		FROM meetings
		ORDER BY created_at, id
	`

	rows, err := querier(ctx, r.db).QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	meetings := make([]*domain.Meeting, 0)
	for rows.Next() {
		var row sqliteMeetingRow
		if err := rows.Scan(
			&row.ID,
			&row.Topic,
			&row.Date,
			&row.Duration,
			&row.InvitedStudents,
			&row.AcceptedInvitations,
			&row.MeetingType,
			&row.CreatedAt,
			&row.UpdatedAt,
		); err != nil {
			return nil, err
		}
		meetings = append(meetings, r.rowToMeeting(row))
	}

	return meetings, rows.Err()
}

// Delete removes a meeting by id. Organizer links cascade.
func (r *SQLiteMeetingRepository) Delete(ctx context.Context, id uuid.UUID) error {
	_, err := querier(ctx, r.db).ExecContext(ctx, `DELETE FROM meetings WHERE id = ?`, id.String())
	return err
}

func (r *SQLiteMeetingRepository) rowToMeeting(row sqliteMeetingRow) *domain.Meeting {
	id, _ := uuid.Parse(row.ID)
	date, _ := time.Parse(domain.DateLayout, row.Date)
	createdAt, _ := time.Parse(time.RFC3339, row.CreatedAt)
	updatedAt, _ := time.Parse(time.RFC3339, row.UpdatedAt)

	return domain.RehydrateMeeting(
		id,
		row.Topic,
		date,
		int(row.Duration),
		int(row.InvitedStudents),
		int(row.AcceptedInvitations),
		row.MeetingType,
		createdAt,
		updatedAt,
	)
}
