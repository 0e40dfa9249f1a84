package persistence

import (
	"context"
	"errors"

	"github.com/avancini-tools/studyhall/internal/meetings/domain"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

// serializationFailure is the SQLSTATE PostgreSQL raises when a serializable
// transaction must be retried.
const serializationFailure = "40001"

const reportMaxAttempts = 3

// PostgresReportRepository implements domain.ReportRepository using PostgreSQL.
type PostgresReportRepository struct {
	pool *pgxpool.Pool
}

// NewPostgresReportRepository creates a new PostgreSQL report repository.
func NewPostgresReportRepository(pool *pgxpool.Pool) *PostgresReportRepository {
	return &PostgresReportRepository{pool: pool}
}

// AttendanceByDate runs the grouped aggregate inside a serializable read-only
// transaction. Serialization failures are retried a bounded number of times.
func (r *PostgresReportRepository) AttendanceByDate(ctx context.Context, date string) ([]domain.AttendanceRow, error) {
	var lastErr error
	for attempt := 0; attempt < reportMaxAttempts; attempt++ {
		report, err := r.attendanceByDate(ctx, date)
		if err == nil {
			return report, nil
		}
		if !isSerializationFailure(err) {
			return nil, err
		}
		lastErr = err
	}
	return nil, lastErr
}

func (r *PostgresReportRepository) attendanceByDate(ctx context.Context, date string) ([]domain.AttendanceRow, error) {
	tx, err := r.pool.BeginTx(ctx, pgx.TxOptions{
		IsoLevel:   pgx.Serializable,
		AccessMode: pgx.ReadOnly,
	})
	if err != nil {
		return nil, err
	}
	defer tx.Rollback(ctx)

	query := `
		SELECT topic,
		       AVG(duration)::double precision AS average_duration,
		       AVG(invited_students)::double precision AS average_invited_students,
		       AVG(accepted_invitations)::double precision AS average_accepted_invitations,
		       COALESCE(SUM(accepted_invitations) * 100 / NULLIF(SUM(invited_students), 0), 0)::double precision AS average_attendance_rate
		FROM meetings
		WHERE date = $1
		GROUP BY topic
	`

	rows, err := tx.Query(ctx, query, date)
	if err != nil {
		return nil, err
	}

	report := make([]domain.AttendanceRow, 0)
	for rows.Next() {
		var row domain.AttendanceRow
		if err := rows.Scan(
			&row.Topic,
			&row.AverageDuration,
			&row.AverageInvitedStudents,
			&row.AverageAcceptedInvitations,
			&row.AverageAttendanceRate,
		); err != nil {
			rows.Close()
			return nil, err
		}
		report = append(report, row)
	}
	rows.Close()
	if err := rows.Err(); err != nil {
		return nil, err
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, err
	}

	return report, nil
}

func isSerializationFailure(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == serializationFailure
}
