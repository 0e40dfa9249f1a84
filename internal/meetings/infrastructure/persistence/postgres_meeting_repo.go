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

// PostgresMeetingRepository implements domain.Repository using PostgreSQL.
type PostgresMeetingRepository struct {
	pool *pgxpool.Pool
}

// NewPostgresMeetingRepository creates a new PostgreSQL meeting repository.
func NewPostgresMeetingRepository(pool *pgxpool.Pool) *PostgresMeetingRepository {
	return &PostgresMeetingRepository{pool: pool}
}

type meetingRow struct {
	ID                  uuid.UUID
	Topic               string
	Date                time.Time
	Duration            int
	InvitedStudents     int
	AcceptedInvitations int
	MeetingType         string
	CreatedAt           time.Time
	UpdatedAt           time.Time
}

// Save persists a meeting, inserting or updating by id.
func (r *PostgresMeetingRepository) Save(ctx context.Context, meeting *domain.Meeting) error {
	query := `
		INSERT INTO meetings (
			id, topic, date, duration, invited_students,
			accepted_invitations, meeting_type, created_at, updated_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		ON CONFLICT (id) DO UPDATE SET
			topic = EXCLUDED.topic,
			date = EXCLUDED.date,
			duration = EXCLUDED.duration,
			invited_students = EXCLUDED.invited_students,
			accepted_invitations = EXCLUDED.accepted_invitations,
			meeting_type = EXCLUDED.meeting_type,
			updated_at = EXCLUDED.updated_at
	`

	_, err := sharedPersistence.Executor(ctx, r.pool).Exec(ctx, query,
		meeting.ID(),
		meeting.Topic(),
		meeting.Date(),
		meeting.Duration(),
		meeting.InvitedStudents(),
		meeting.AcceptedInvitations(),
		meeting.MeetingType(),
		meeting.CreatedAt(),
		meeting.UpdatedAt(),
	)
	return err
}

// FindByID retrieves a meeting by its ID. Returns nil, nil when absent.
func (r *PostgresMeetingRepository) FindByID(ctx context.Context, id uuid.UUID) (*domain.Meeting, error) {
	query := `
		SELECT id, topic, date, duration, invited_students,
		       accepted_invitations, meeting_type, created_at, updated_at
		FROM meetings
		WHERE id = $1
	`

	var row meetingRow
	err := sharedPersistence.Executor(ctx, r.pool).QueryRow(ctx, query, id).Scan(
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
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}

	return r.rowToMeeting(row), nil
}

// FindAll retrieves every meeting in a stable order.
func (r *PostgresMeetingRepository) FindAll(ctx context.Context) ([]*domain.Meeting, error) {
	query := `
		SELECT id, topic, date, duration, invited_students,
		       accepted_invitations, meeting_type, created_at, updated_at
		FROM meetings
		ORDER BY created_at, id
	`

	rows, err := sharedPersistence.Executor(ctx, r.pool).Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	meetings := make([]*domain.Meeting, 0)
	for rows.Next() {
		var row meetingRow
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

	if rows.Err() != nil {
		return nil, rows.Err()
	}

	return meetings, nil
}

// Delete removes a meeting by id. Organizer links cascade.
func (r *PostgresMeetingRepository) Delete(ctx context.Context, id uuid.UUID) error {
	_, err := sharedPersistence.Executor(ctx, r.pool).Exec(ctx, `DELETE FROM meetings WHERE id = $1`, id)
	return err
}

func (r *PostgresMeetingRepository) rowToMeeting(row meetingRow) *domain.Meeting {
	return domain.RehydrateMeeting(
		row.ID,
		row.Topic,
		row.Date,
		row.Duration,
		row.InvitedStudents,
		row.AcceptedInvitations,
		row.MeetingType,
		row.CreatedAt,
		row.UpdatedAt,
	)
}
