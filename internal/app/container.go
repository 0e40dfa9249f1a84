package app

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"

	meetingCommands "github.com/avancini-tools/studyhall/internal/meetings/application/commands"
	meetingQueries "github.com/avancini-tools/studyhall/internal/meetings/application/queries"
	meetingsDomain "github.com/avancini-tools/studyhall/internal/meetings/domain"
	"github.com/avancini-tools/studyhall/internal/meetings/setup"
	sharedApplication "github.com/avancini-tools/studyhall/internal/shared/application"
	"github.com/avancini-tools/studyhall/internal/shared/infrastructure/database"
	_ "github.com/avancini-tools/studyhall/internal/shared/infrastructure/database/postgres" // Register Postgres driver
	_ "github.com/avancini-tools/studyhall/internal/shared/infrastructure/database/sqlite"   // Register SQLite driver
	"github.com/avancini-tools/studyhall/internal/shared/infrastructure/migrations"
	sharedPersistence "github.com/avancini-tools/studyhall/internal/shared/infrastructure/persistence"
	"github.com/avancini-tools/studyhall/pkg/config"
	"github.com/jackc/pgx/v5/pgxpool"
)

// Container holds all application dependencies.
type Container struct {
	Config *config.Config
	Logger *slog.Logger

	// Database
	DBConn   database.Connection
	DBDriver database.Driver

	// Repositories (interfaces keep the rest of the app driver-agnostic)
	MeetingRepo   meetingsDomain.Repository
	StudentRepo   meetingsDomain.StudentRepository
	OrganizerRepo meetingsDomain.OrganizerRepository
	ReportRepo    meetingsDomain.ReportRepository

	// Unit of Work
	UnitOfWork sharedApplication.UnitOfWork

	// Meeting command handlers
	CreateMeetingHandler *meetingCommands.CreateMeetingHandler
	UpdateMeetingHandler *meetingCommands.UpdateMeetingHandler
	DeleteMeetingHandler *meetingCommands.DeleteMeetingHandler

	// Student and organizer command handlers
	CreateStudentHandler   *meetingCommands.CreateStudentHandler
	AssignOrganizerHandler *meetingCommands.AssignOrganizerHandler
	RemoveOrganizerHandler *meetingCommands.RemoveOrganizerHandler

	// Query handlers
	ListMeetingsHandler     *meetingQueries.ListMeetingsHandler
	ListStudentsHandler     *meetingQueries.ListStudentsHandler
	ListOrganizersHandler   *meetingQueries.ListOrganizersHandler
	AttendanceReportHandler *meetingQueries.AttendanceReportHandler
}

// NewContainer creates and wires all dependencies. The database driver is
// detected from the configured URL; an empty URL selects embedded SQLite.
func NewContainer(ctx context.Context, cfg *config.Config, logger *slog.Logger) (*Container, error) {
	c := &Container{
		Config: cfg,
		Logger: logger,
	}

	driver := database.DetectDriver(cfg.DatabaseURL)
	conn, err := database.NewConnection(ctx, database.Config{
		Driver:     driver,
		URL:        cfg.DatabaseURL,
		SQLitePath: cfg.SQLitePath,
		MaxConns:   cfg.DBMaxConns,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	if err := conn.Ping(ctx); err != nil {
		conn.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	c.DBConn = conn
	c.DBDriver = driver
	logger.Info("connected to database", "driver", driver)

	if err := c.runMigrations(ctx); err != nil {
		conn.Close()
		return nil, fmt.Errorf("failed to run migrations: %w", err)
	}

	factory := NewRepositoryFactory(conn)

	if c.MeetingRepo, err = factory.MeetingRepository(); err != nil {
		conn.Close()
		return nil, fmt.Errorf("failed to create meeting repository: %w", err)
	}
	if c.StudentRepo, err = factory.StudentRepository(); err != nil {
		conn.Close()
		return nil, fmt.Errorf("failed to create student repository: %w", err)
	}
	if c.OrganizerRepo, err = factory.OrganizerRepository(); err != nil {
		conn.Close()
		return nil, fmt.Errorf("failed to create organizer repository: %w", err)
	}
	if c.ReportRepo, err = factory.ReportRepository(); err != nil {
		conn.Close()
		return nil, fmt.Errorf("failed to create report repository: %w", err)
	}

	if c.UnitOfWork, err = c.newUnitOfWork(); err != nil {
		conn.Close()
		return nil, err
	}

	if err := setup.SeedFixtures(ctx, c.MeetingRepo, logger); err != nil {
		conn.Close()
		return nil, fmt.Errorf("failed to seed fixtures: %w", err)
	}

	// Command handlers
	c.CreateMeetingHandler = meetingCommands.NewCreateMeetingHandler(c.MeetingRepo, c.UnitOfWork)
	c.UpdateMeetingHandler = meetingCommands.NewUpdateMeetingHandler(c.MeetingRepo, c.UnitOfWork)
	c.DeleteMeetingHandler = meetingCommands.NewDeleteMeetingHandler(c.MeetingRepo, c.UnitOfWork)
	c.CreateStudentHandler = meetingCommands.NewCreateStudentHandler(c.StudentRepo, c.UnitOfWork)
	c.AssignOrganizerHandler = meetingCommands.NewAssignOrganizerHandler(c.MeetingRepo, c.StudentRepo, c.OrganizerRepo, c.UnitOfWork)
	c.RemoveOrganizerHandler = meetingCommands.NewRemoveOrganizerHandler(c.OrganizerRepo, c.UnitOfWork)

	// Query handlers
	c.ListMeetingsHandler = meetingQueries.NewListMeetingsHandler(c.MeetingRepo)
	c.ListStudentsHandler = meetingQueries.NewListStudentsHandler(c.StudentRepo)
	c.ListOrganizersHandler = meetingQueries.NewListOrganizersHandler(c.MeetingRepo, c.OrganizerRepo)
	c.AttendanceReportHandler = meetingQueries.NewAttendanceReportHandler(c.ReportRepo)

	return c, nil
}

func (c *Container) runMigrations(ctx context.Context) error {
	switch c.DBDriver {
	case database.DriverPostgres:
		pool, err := c.postgresPool()
		if err != nil {
			return err
		}
		return migrations.RunPostgresMigrations(ctx, pool)

	case database.DriverSQLite:
		db, err := c.sqliteDB()
		if err != nil {
			return err
		}
		return migrations.RunSQLiteMigrations(ctx, db)

	default:
		return fmt.Errorf("unsupported driver: %s", c.DBDriver)
	}
}

func (c *Container) newUnitOfWork() (sharedApplication.UnitOfWork, error) {
	switch c.DBDriver {
	case database.DriverPostgres:
		pool, err := c.postgresPool()
		if err != nil {
			return nil, err
		}
		return sharedPersistence.NewPostgresUnitOfWork(pool), nil

	case database.DriverSQLite:
		db, err := c.sqliteDB()
		if err != nil {
			return nil, err
		}
		return sharedPersistence.NewSQLiteUnitOfWork(db), nil

	default:
		return nil, fmt.Errorf("unsupported driver: %s", c.DBDriver)
	}
}

func (c *Container) postgresPool() (*pgxpool.Pool, error) {
	pgConn, ok := c.DBConn.(interface{ Pool() *pgxpool.Pool })
	if !ok {
		return nil, fmt.Errorf("postgres connection does not expose Pool()")
	}
	return pgConn.Pool(), nil
}

func (c *Container) sqliteDB() (*sql.DB, error) {
	sqliteConn, ok := c.DBConn.(interface{ DB() *sql.DB })
	if !ok {
		return nil, fmt.Errorf("sqlite connection does not expose DB()")
	}
	return sqliteConn.DB(), nil
}

// Close cleans up all resources.
func (c *Container) Close() {
	if c.DBConn != nil {
		if err := c.DBConn.Close(); err != nil {
			c.Logger.Warn("error closing database connection", "error", err)
		} else {
			c.Logger.Info("database connection closed")
		}
	}
}
