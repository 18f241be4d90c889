package mcp

import (
	"github.com/ganot/statuswatch/internal/domain/change"
	"github.com/ganot/statuswatch/internal/domain/status"
)

type ObserveStatusParams struct {
	RawText     string `json:"raw_text"`
	SourceID    string `json:"source_id"`
	ProjectName string `json:"project_name,omitempty"`
}

type ObserveStatusResult struct {
	Record *status.StatusRecord `json:"record"`
}

type ObserveAndDiffParams struct {
	RawText     string `json:"raw_text"`
	SourceID    string `json:"source_id"`
	ProjectName string `json:"project_name,omitempty"`
}

type ObserveAndDiffResult struct {
	Record  *status.StatusRecord `json:"record"`
	Changes []change.Change      `json:"changes"`
	Report  string               `json:"report"`
}

type GetStatusHistoryParams struct {
	ProjectName string `json:"project_name"`
	Limit       int    `json:"limit,omitempty"`
}

type GetStatusHistoryResult struct {
	Snapshots []status.SnapshotSummary `json:"snapshots"`
}

type RenderStatusReportParams struct {
	ProjectName string `json:"project_name"`
}

type RenderStatusReportResult struct {
	Report string `json:"report"`
}
