package mcp

import (
	"context"
	"log/slog"

	"github.com/ganot/statuswatch/internal/domain/change"
	"github.com/ganot/statuswatch/internal/domain/monitor"
	"github.com/ganot/statuswatch/internal/domain/status"
	sdkmcp "github.com/modelcontextprotocol/go-sdk/mcp"
)

// MonitorService defines the monitor operations needed by MCP.
type MonitorService interface {
	Observe(ctx context.Context, req monitor.ObserveRequest) (*status.StatusRecord, error)
	ObserveAndDiff(ctx context.Context, req monitor.ObserveRequest) (*status.StatusRecord, []change.Change, error)
	Latest(ctx context.Context, projectName string) (*status.StatusRecord, error)
	History(ctx context.Context, projectName string, limit int) ([]status.StatusRecord, error)
}

// Services contains all domain services needed by MCP.
type Services struct {
	Monitor MonitorService
}

// Config contains server configuration.
type Config struct {
	Services      Services
	Resolver      TenantResolver
	AuthEnabled   bool
	TransportMode string // "stdio" or "http"
	Logger        *slog.Logger
}

// NewServer creates and configures an MCP server with all tools and middleware.
func NewServer(cfg Config) *sdkmcp.Server {
	server := sdkmcp.NewServer(&sdkmcp.Implementation{
		Name:    "statuswatch",
		Version: "0.1.0",
	}, &sdkmcp.ServerOptions{
		Instructions: serverInstructions,
		Logger:       cfg.Logger,
	})

	// Stdio mode is local-only; auth applies to HTTP only.
	if cfg.TransportMode == "stdio" || !cfg.AuthEnabled {
		server.AddReceivingMiddleware(noAuthMiddleware("default"))
	} else {
		server.AddReceivingMiddleware(authMiddleware(cfg.Resolver))
	}
	server.AddReceivingMiddleware(trafficLoggingMiddleware(cfg.Logger, "inbound"))
	server.AddSendingMiddleware(trafficLoggingMiddleware(cfg.Logger, "outbound"))

	registerDocResources(server)
	registerTools(server, cfg.Services)

	return server
}
