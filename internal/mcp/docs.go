package mcp

import (
	"context"

	sdkmcp "github.com/modelcontextprotocol/go-sdk/mcp"
)

const serverInstructions = `statuswatch turns raw project status pages into structured snapshots and tracks how they change over time.

Core concepts:
- StatusRecord: one timestamped observation of a project, extracted from raw markdown (overall status, phase, dates, callouts, risks, metrics).
- Snapshot history: append-only, per project, ordered by observation time. Nothing is ever overwritten.
- Change: one classified difference between the two newest snapshots, with severity info/warning/critical.

Rules of engagement:
1) Fetch the page content yourself (this server never fetches); pass the complete markdown as raw_text with a stable source_id.
2) Use observe_and_diff for routine checks: it persists the snapshot and reports what changed since last time. The first call for a project establishes the baseline and returns no changes.
3) Use observe_status when you only need extraction + persistence without comparison.
4) Use get_status_history and render_status_report to review a project after the fact.
5) Extraction never fails: unrecognized sections degrade to defaults (Unknown status, absent fields). An empty change list means nothing notable moved.
6) Do not call observe_and_diff concurrently for the same project; the save-then-diff sequence is not atomic.

Docs (read on demand):
- statuswatch://docs/extraction (which document shapes the extractor recognizes)
- statuswatch://docs/changes (change fields, severity rules, emission order)
`

type docResource struct {
	URI         string
	Name        string
	Title       string
	Description string
	Content     string
}

var docResources = []docResource{
	{
		URI:         "statuswatch://docs/extraction",
		Name:        "docs_extraction",
		Title:       "What the extractor recognizes",
		Description: "Document shapes that map to StatusRecord fields, and what happens when a section is missing.",
		Content: `# Extraction

The extractor is pattern-based and never fails. Each field degrades independently
when its section is missing or unrecognized.

- **Project name**: the first ` + "`# Heading`" + ` line; an explicit project_name
  argument always wins. With neither, the record is filed under "Unknown Project".
- **Overall status**: the first emphasized color, scanned Green then Yellow then
  Red (` + "`**Green**`" + `, case-insensitive). No emphasized color means Unknown.
- **Phase**: a "Phase:"/"Subphase:" line, or a bare EVT/DVT/PVT/MP token. Stored
  uppercased.
- **Street/ship dates**: matched text is stored verbatim, never parsed into a
  date type ("14th March 2025" stays exactly that).
- **Key callouts**: sentences from the "Executive Summary" section containing
  risk/issue/delay-style keywords, longer than 20 characters, capped at 5.
- **Risks**: pipe-table rows under a "Key Open Issues" or "Risks/Issues"
  heading. Columns map to description | owner | eta | status | comment; blank or
  missing cells are absent, not empty strings.
- **Metrics**: a sparse map of recognized numeric patterns (device setup counts,
  CSAT-style x/5 ratings). Treat keys as optional.

The complete raw input is stored with every snapshot, so later extractor
improvements can re-read old observations.
`,
	},
	{
		URI:         "statuswatch://docs/changes",
		Name:        "docs_changes",
		Title:       "Change detection rules",
		Description: "Which fields are compared between consecutive snapshots, and how severity is assigned.",
		Content: `# Change detection

observe_and_diff compares the new snapshot against the newest stored one for the
same project. Changes are emitted in a fixed order:

1. ` + "`overall_status`" + ` — severity depends on direction. Statuses rank
   Green < Yellow < Red < Unknown; moving to a worse rank is critical, moving to
   a better one is info.
2. ` + "`street_date`" + ` — any movement (including absent to present) is a warning.
3. ` + "`phase`" + ` — info; phase transitions are expected progress.
4. ` + "`risks`" + ` — only a growing risk count is reported (warning). Risks
   being closed is not flagged.
5. ` + "`ship_date`" + ` — any movement is a warning.

Values for absent fields render as "(none)". An empty change list means none of
the tracked fields moved; it does not mean the documents were identical.
`,
	},
}

func registerDocResources(server *sdkmcp.Server) {
	for _, doc := range docResources {
		doc := doc

		server.AddResource(&sdkmcp.Resource{
			URI:         doc.URI,
			Name:        doc.Name,
			Title:       doc.Title,
			Description: doc.Description,
			MIMEType:    "text/markdown",
			Size:        int64(len(doc.Content)),
		}, func(_ context.Context, req *sdkmcp.ReadResourceRequest) (*sdkmcp.ReadResourceResult, error) {
			uri := doc.URI
			if req != nil && req.Params != nil && req.Params.URI != "" {
				uri = req.Params.URI
			}
			return &sdkmcp.ReadResourceResult{
				Contents: []*sdkmcp.ResourceContents{{
					URI:      uri,
					MIMEType: "text/markdown",
					Text:     doc.Content,
				}},
			}, nil
		})
	}
}
