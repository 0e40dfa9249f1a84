package setup

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/avancini-tools/studyhall/internal/meetings/domain"
)

type fixtureMeeting struct {
	topic               string
	date                string
	duration            int
	invitedStudents     int
	acceptedInvitations int
	meetingType         string
}

var fixtureMeetings = []fixtureMeeting{
	{topic: "Project Kickoff", date: "2024-11-01", duration: 60, invitedStudents: 10, acceptedInvitations: 8, meetingType: "Kickoff"},
	{topic: "Weekly Sync", date: "2024-11-02", duration: 45, invitedStudents: 15, acceptedInvitations: 12, meetingType: "Sync"},
}

// SeedFixtures inserts the sample meetings on first startup. It is a no-op
// when the meetings table already has rows, so restarts never duplicate data.
func SeedFixtures(ctx context.Context, repo domain.Repository, logger *slog.Logger) error {
	existing, err := repo.FindAll(ctx)
	if err != nil {
		return fmt.Errorf("checking for existing meetings: %w", err)
	}
	if len(existing) > 0 {
		return nil
	}

	for _, fixture := range fixtureMeetings {
		date, err := time.Parse(domain.DateLayout, fixture.date)
		if err != nil {
			return fmt.Errorf("parsing fixture date %q: %w", fixture.date, err)
		}

		meeting, err := domain.NewMeeting(
			fixture.topic,
			date,
			fixture.duration,
			fixture.invitedStudents,
			fixture.acceptedInvitations,
			fixture.meetingType,
		)
		if err != nil {
			return fmt.Errorf("building fixture meeting %q: %w", fixture.topic, err)
		}

		if err := repo.Save(ctx, meeting); err != nil {
			return fmt.Errorf("saving fixture meeting %q: %w", fixture.topic, err)
		}
	}

	logger.Info("seeded fixture meetings", "count", len(fixtureMeetings))
	return nil
}
