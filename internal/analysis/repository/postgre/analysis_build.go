package postgre

import (
	"database/sql"

	"localization-srv/internal/model"
)

type rowScanner interface {
	Scan(dest ...any) error
}

func scanAnalysis(row rowScanner) (model.Analysis, error) {
	var (
		a           model.Analysis
		status      string
		request     []byte
		completedAt sql.NullTime
	)
	err := row.Scan(&a.ID, &a.UserID, &a.WorkspaceID, &a.DocumentID, &a.ParamsHash, &status, &request,
		&a.OverallComplexity, &a.ExportReady, &a.SegmentCount, &a.MatchCount, &a.ReportObject, &a.ErrorMessage,
		&completedAt, &a.CreatedAt, &a.UpdatedAt)
	if err != nil {
		return model.Analysis{}, err
	}

	a.Status = model.AnalysisStatus(status)
	a.Request = request
	if completedAt.Valid {
		t := completedAt.Time
		a.CompletedAt = &t
	}
	return a, nil
}
