package postgre

import (
	"fmt"
	"strings"

	"github.com/lib/pq"

	"localization-srv/internal/analysis/repository"
)

const analysisColumns = `id, user_id, workspace_id, document_id, params_hash, status, request,
       overall_complexity, export_ready, segment_count, match_count, report_object, error_message,
       completed_at, created_at, updated_at`

const (
	queryInsertAnalysis = `
INSERT INTO analyses (id, user_id, workspace_id, document_id, params_hash, status, request, created_at, updated_at)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $8)
RETURNING ` + analysisColumns

	queryGetAnalysis = `SELECT ` + analysisColumns + ` FROM analyses WHERE id = $1`

	queryGetByParamsHash = `SELECT ` + analysisColumns + `
FROM analyses
WHERE params_hash = $1 AND status = ANY($2)
ORDER BY created_at DESC
LIMIT 1`

	queryUpdateCompleted = `
UPDATE analyses
SET status = 'completed', overall_complexity = $2, export_ready = $3, segment_count = $4,
    match_count = $5, report_object = $6, error_message = '', completed_at = $7, updated_at = $7
WHERE id = $1`

	queryUpdateFailed = `
UPDATE analyses
SET status = 'failed', error_message = $2, updated_at = now()
WHERE id = $1`
)

// buildListQuery returns the page query, the count query and their shared arguments.
// The page query takes two extra trailing arguments: limit and offset.
func buildListQuery(opts repository.ListOptions) (string, string, []any) {
	var (
		conds []string
		args  []any
	)
	add := func(cond string, v any) {
		args = append(args, v)
		conds = append(conds, fmt.Sprintf(cond, len(args)))
	}
	if opts.UserID != "" {
		add("user_id = $%d", opts.UserID)
	}
	if opts.WorkspaceID != "" {
		add("workspace_id = $%d", opts.WorkspaceID)
	}
	if opts.Status != "" {
		add("status = $%d", string(opts.Status))
	}

	where := ""
	if len(conds) > 0 {
		where = " WHERE " + strings.Join(conds, " AND ")
	}
	page := fmt.Sprintf("SELECT %s FROM analyses%s ORDER BY created_at DESC, id LIMIT $%d OFFSET $%d",
		analysisColumns, where, len(args)+1, len(args)+2)
	count := "SELECT count(*) FROM analyses" + where
	return page, count, args
}

func statusArray(opts repository.GetByParamsHashOptions) any {
	statuses := make([]string, len(opts.Statuses))
	for i, s := range opts.Statuses {
		statuses[i] = string(s)
	}
	return pq.Array(statuses)
}
