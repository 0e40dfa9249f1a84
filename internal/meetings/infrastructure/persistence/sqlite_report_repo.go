package persistence

import (
	"context"
	"database/sql"

	"github.com/avancini-tools/studyhall/internal/meetings/domain"
)

// SQLiteReportRepository implements domain.ReportRepository using SQLite.
type SQLiteReportRepository struct {
	db *sql.DB
}

// NewSQLiteReportRepository creates a new SQLite report repository.
func NewSQLiteReportRepository(db *sql.DB) *SQLiteReportRepository {
	return &SQLiteReportRepository{db: db}
}

// AttendanceByDate runs the grouped aggregate inside a transaction so the
// report sees a single consistent snapshot. SQLite transactions are
// serializable by definition, so no isolation level needs to be requested.
func (r *SQLiteReportRepository) AttendanceByDate(ctx context.Context, date string) ([]domain.AttendanceRow, error) {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, err
	}
	defer tx.Rollback()

	query := `
		SELECT topic,
		       AVG(duration) AS average_duration,
		       AVG(invited_students) AS average_invited_students,
		       AVG(accepted_invitations) AS average_accepted_invitations,
		       COALESCE(SUM(accepted_invitations) * 100 / NULLIF(SUM(invited_students), 0), 0) AS average_attendance_rate
		FROM meetings
		WHERE date = ?
		GROUP BY topic
	`

	rows, err := tx.QueryContext(ctx, query, date)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

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
			return nil, err
		}
		report = append(report, row)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	if err := tx.Commit(); err != nil {
		return nil, err
	}

	return report, nil
}
