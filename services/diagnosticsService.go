package services

import (
	"context"

	"github.com/pawtel/pawtel_api/database"
	"github.com/pawtel/pawtel_api/entities"
	"github.com/pawtel/pawtel_api/lifecycle"
)

// DiagnosticsService exposes read-only introspection of the database
type DiagnosticsService interface {
	GetDatabaseHealth(ctx context.Context) (*entities.DatabaseHealth, error)
	// GetDatabaseDump reads every collection within the page window of params.
	// A zero Limit selects the configured default page size.
	GetDatabaseDump(ctx context.Context, params entities.DumpParams) (*entities.DatabaseDump, error)
}

// ConnectionState is the live view of the database connection reported by health checks
type ConnectionState interface {
	ReadyState() database.ReadyState
	Name() string
	Host() string
	ModelNames() []string
}

// BootStateProvider reports how far the server got through its boot sequence
type BootStateProvider interface {
	Current() lifecycle.BootState
}
