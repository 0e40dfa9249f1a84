package queries

import (
	"context"

	"github.com/avancini-tools/studyhall/internal/meetings/domain"
)

// AttendanceRowDTO is one per-topic row of the attendance report.
type AttendanceRowDTO struct {
	Topic                      string  `json:"topic"`
	AverageDuration            float64 `json:"average_duration"`
	AverageInvitedStudents     float64 `json:"average_invited_students"`
	AverageAcceptedInvitations float64 `json:"average_accepted_invitations"`
	AverageAttendanceRate      float64 `json:"average_attendance_rate"`
}

// AttendanceReportQuery contains the parameters for the report.
type AttendanceReportQuery struct {
	// Date is passed through to the query binding without format validation.
	Date string
}

// AttendanceReportHandler runs the per-topic attendance aggregate for a date.
type AttendanceReportHandler struct {
	reports domain.ReportRepository
}

// NewAttendanceReportHandler creates a new AttendanceReportHandler.
func NewAttendanceReportHandler(reports domain.ReportRepository) *AttendanceReportHandler {
	return &AttendanceReportHandler{reports: reports}
}

// Handle executes the report query.
func (h *AttendanceReportHandler) Handle(ctx context.Context, query AttendanceReportQuery) ([]AttendanceRowDTO, error) {
	rows, err := h.reports.AttendanceByDate(ctx, query.Date)
	if err != nil {
		return nil, err
	}

	dtos := make([]AttendanceRowDTO, 0, len(rows))
	for _, row := range rows {
		dtos = append(dtos, AttendanceRowDTO{
			Topic:                      row.Topic,
			AverageDuration:            row.AverageDuration,
			AverageInvitedStudents:     row.AverageInvitedStudents,
			AverageAcceptedInvitations: row.AverageAcceptedInvitations,
			AverageAttendanceRate:      row.AverageAttendanceRate,
		})
	}

	return dtos, nil
}
