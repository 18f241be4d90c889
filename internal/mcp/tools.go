package mcp

import (
	"context"

	"github.com/ganot/statuswatch/internal/domain/monitor"
	"github.com/ganot/statuswatch/internal/domain/status"
	sdkmcp "github.com/modelcontextprotocol/go-sdk/mcp"
)

// registerTools registers all statuswatch tools with the SDK server.
func registerTools(server *sdkmcp.Server, services Services) {
	sdkmcp.AddTool(server, &sdkmcp.Tool{
		Name:        "observe_status",
		Description: "Extract a structured status record from raw status-page markdown and append it to the project's snapshot history",
	}, func(ctx context.Context, req *sdkmcp.CallToolRequest, params ObserveStatusParams) (*sdkmcp.CallToolResult, ObserveStatusResult, error) {
		rec, err := services.Monitor.Observe(ctx, monitor.ObserveRequest{
			RawText:         params.RawText,
			SourceID:        params.SourceID,
			ProjectNameHint: params.ProjectName,
		})
		if err != nil {
			return nil, ObserveStatusResult{}, mapError(err)
		}
		return nil, ObserveStatusResult{Record: rec}, nil
	})

	sdkmcp.AddTool(server, &sdkmcp.Tool{
		Name:        "observe_and_diff",
		Description: "Extract a status record, compare it against the previous snapshot, persist it, and return the classified changes plus a rendered report",
	}, func(ctx context.Context, req *sdkmcp.CallToolRequest, params ObserveAndDiffParams) (*sdkmcp.CallToolResult, ObserveAndDiffResult, error) {
		rec, changes, err := services.Monitor.ObserveAndDiff(ctx, monitor.ObserveRequest{
			RawText:         params.RawText,
			SourceID:        params.SourceID,
			ProjectNameHint: params.ProjectName,
		})
		if err != nil {
			return nil, ObserveAndDiffResult{}, mapError(err)
		}
		return nil, ObserveAndDiffResult{
			Record:  rec,
			Changes: changes,
			Report:  monitor.RenderReport(rec, changes),
		}, nil
	})

	sdkmcp.AddTool(server, &sdkmcp.Tool{
		Name:        "get_status_history",
		Description: "List stored snapshots for a project, newest first",
	}, func(ctx context.Context, req *sdkmcp.CallToolRequest, params GetStatusHistoryParams) (*sdkmcp.CallToolResult, GetStatusHistoryResult, error) {
		history, err := services.Monitor.History(ctx, params.ProjectName, params.Limit)
		if err != nil {
			return nil, GetStatusHistoryResult{}, mapError(err)
		}
		snapshots := make([]status.SnapshotSummary, 0, len(history))
		for i := range history {
			snapshots = append(snapshots, history[i].Summary())
		}
		return nil, GetStatusHistoryResult{Snapshots: snapshots}, nil
	})

	sdkmcp.AddTool(server, &sdkmcp.Tool{
		Name:        "render_status_report",
		Description: "Render a human-readable report for the latest snapshot of a project",
	}, func(ctx context.Context, req *sdkmcp.CallToolRequest, params RenderStatusReportParams) (*sdkmcp.CallToolResult, RenderStatusReportResult, error) {
		rec, err := services.Monitor.Latest(ctx, params.ProjectName)
		if err != nil {
			return nil, RenderStatusReportResult{}, mapError(err)
		}
		return nil, RenderStatusReportResult{Report: monitor.RenderReport(rec, nil)}, nil
	})
}
