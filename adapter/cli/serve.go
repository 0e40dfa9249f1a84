package cli

import (
	"context"
	"errors"
	"net/http"

	"github.com/avancini-tools/studyhall/adapter/api"
	"github.com/avancini-tools/studyhall/internal/app"
	"github.com/spf13/cobra"
)

// ServeCmd starts the HTTP API server.
var ServeCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the HTTP API server",
	RunE:  runServe,
}

func runServe(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()

	container, ok := ctx.Value(containerKey{}).(*app.Container)
	if !ok || container == nil {
		return errors.New("application container not initialized")
	}

	cfg := container.Config

	meetingHandler := api.NewMeetingHandler(api.MeetingHandlerConfig{
		CreateMeeting:    container.CreateMeetingHandler,
		UpdateMeeting:    container.UpdateMeetingHandler,
		DeleteMeeting:    container.DeleteMeetingHandler,
		ListMeetings:     container.ListMeetingsHandler,
		AttendanceReport: container.AttendanceReportHandler,
		Logger:           container.Logger,
	})
	studentHandler := api.NewStudentHandler(api.StudentHandlerConfig{
		CreateStudent: container.CreateStudentHandler,
		ListStudents:  container.ListStudentsHandler,
		Logger:        container.Logger,
	})
	organizerHandler := api.NewOrganizerHandler(api.OrganizerHandlerConfig{
		AssignOrganizer: container.AssignOrganizerHandler,
		RemoveOrganizer: container.RemoveOrganizerHandler,
		ListOrganizers:  container.ListOrganizersHandler,
		Logger:          container.Logger,
	})

	serverCfg := api.DefaultServerConfig()
	serverCfg.Addr = cfg.HTTPAddr
	serverCfg.ReadTimeout = cfg.ReadTimeout
	serverCfg.WriteTimeout = cfg.WriteTimeout

	server := api.NewServer(serverCfg, meetingHandler, studentHandler, organizerHandler, container.Logger)

	errCh := make(chan error, 1)
	go func() {
		if err := server.Start(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()
	return server.Shutdown(shutdownCtx)
}

type containerKey struct{}

// WithContainer stores the application container in a command context.
func WithContainer(ctx context.Context, container *app.Container) context.Context {
	return context.WithValue(ctx, containerKey{}, container)
}
