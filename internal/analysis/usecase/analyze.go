package usecase

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"localization-srv/internal/analysis"
	"localization-srv/internal/analysis/repository"
	"localization-srv/internal/model"
	"localization-srv/pkg/log"
	"localization-srv/pkg/util"
)

// Analyze runs the pipeline and records it. Audit, archive and notification failures are logged only.
func (uc *implUseCase) Analyze(ctx context.Context, sc model.Scope, input analysis.AnalyzeInput) (model.AnalysisReport, error) {
	if input.Content.IsEmpty() {
		return model.AnalysisReport{}, analysis.ErrEmptyContent
	}
	ctx = log.WithFields(ctx, log.Fields{"user_id": sc.UserID, "document_id": input.DocumentID})

	request, hash, err := fingerprint(sc, input)
	if err != nil {
		uc.l.Errorf(ctx, "analysis.usecase.Analyze: Failed to encode request: %v", err)
		return model.AnalysisReport{}, err
	}

	record := model.Analysis{
		ID:          uuid.New().String(),
		UserID:      sc.UserID,
		WorkspaceID: sc.WorkspaceID,
		DocumentID:  input.DocumentID,
	}
	persisted := true
	if _, err := uc.repo.Create(ctx, repository.CreateOptions{
		ID:          record.ID,
		UserID:      sc.UserID,
		WorkspaceID: sc.WorkspaceID,
		DocumentID:  input.DocumentID,
		ParamsHash:  hash,
		Status:      model.AnalysisStatusProcessing,
		Request:     request,
	}); err != nil {
		uc.l.Warnf(ctx, "analysis.usecase.Analyze: Audit record not created: %v", err)
		persisted = false
	}

	report, err := uc.run(ctx, record.ID, input)
	if err != nil {
		uc.l.Errorf(ctx, "analysis.usecase.Analyze: Pipeline failed for %s: %v", record.ID, err)
		if persisted {
			uc.markFailed(ctx, record.ID, err)
		}
		return model.AnalysisReport{}, err
	}

	uc.finish(ctx, record, report, persisted)
	return report, nil
}

// Process runs a submitted analysis. A completed analysis is left untouched.
func (uc *implUseCase) Process(ctx context.Context, sc model.Scope, input analysis.ProcessInput) error {
	record, err := uc.repo.Get(ctx, input.AnalysisID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return analysis.ErrAnalysisNotFound
		}
		return err
	}
	if record.Status == model.AnalysisStatusCompleted {
		uc.l.Infof(ctx, "analysis.usecase.Process: Analysis %s already completed", record.ID)
		return nil
	}

	request, err := analysis.DecodeRequest(record)
	if err == nil && request.Content.IsEmpty() {
		err = analysis.ErrEmptyContent
	}
	if err != nil {
		uc.l.Warnf(ctx, "analysis.usecase.Process: Unusable request for %s: %v", record.ID, err)
		uc.markFailed(ctx, record.ID, err)
		return nil
	}

	report, err := uc.run(ctx, record.ID, request)
	if err != nil {
		uc.l.Errorf(ctx, "analysis.usecase.Process: Pipeline failed for %s: %v", record.ID, err)
		uc.markFailed(ctx, record.ID, err)
		return err
	}

	uc.finish(ctx, record, report, true)
	return nil
}

// finish archives the report, completes the audit record and announces it.
func (uc *implUseCase) finish(ctx context.Context, record model.Analysis, report model.AnalysisReport, persisted bool) {
	object := ""
	if body, err := json.Marshal(report); err != nil {
		uc.l.Warnf(ctx, "analysis.usecase.finish: Failed to encode report %s: %v", record.ID, err)
	} else if object, err = uc.archive.Save(ctx, repository.SaveOptions{
		AnalysisID: record.ID,
		DocumentID: report.DocumentID,
		Report:     body,
	}); err != nil {
		uc.l.Warnf(ctx, "analysis.usecase.finish: Report %s not archived: %v", record.ID, err)
	}

	completedAt := uc.now()
	if persisted {
		if err := uc.repo.UpdateCompleted(ctx, repository.UpdateCompletedOptions{
			ID:                record.ID,
			OverallComplexity: report.Complexity.OverallComplexityScore,
			ExportReady:       report.Recommendations.ExportReadiness,
			SegmentCount:      len(report.Segments),
			MatchCount:        matchCount(report.Matches),
			ReportObject:      object,
			CompletedAt:       completedAt,
		}); err != nil {
			uc.l.Warnf(ctx, "analysis.usecase.finish: Audit record %s not completed: %v", record.ID, err)
		}
	}

	if uc.notifier == nil {
		return
	}
	if err := uc.notifier.PublishAnalysisCompleted(ctx, analysis.AnalysisCompleted{
		AnalysisID:        record.ID,
		DocumentID:        report.DocumentID,
		UserID:            record.UserID,
		WorkspaceID:       record.WorkspaceID,
		OverallComplexity: report.Complexity.OverallComplexityScore,
		ExportReady:       report.Recommendations.ExportReadiness,
		ReportObject:      object,
		CompletedAt:       completedAt,
	}); err != nil {
		uc.l.Warnf(ctx, "analysis.usecase.finish: Completion of %s not announced: %v", record.ID, err)
	}
}

func (uc *implUseCase) markFailed(ctx context.Context, id string, cause error) {
	if err := uc.repo.UpdateFailed(ctx, repository.UpdateFailedOptions{
		ID:           id,
		ErrorMessage: cause.Error(),
	}); err != nil {
		uc.l.Warnf(ctx, "analysis.usecase.markFailed: Audit record %s not updated: %v", id, err)
	}
}

// fingerprint encodes the request and hashes it together with the workspace.
func fingerprint(sc model.Scope, input analysis.AnalyzeInput) ([]byte, string, error) {
	request, err := json.Marshal(input)
	if err != nil {
		return nil, "", fmt.Errorf("encode request: %w", err)
	}
	return request, util.Hash(sc.WorkspaceID, string(request)), nil
}
