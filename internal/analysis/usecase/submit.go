package usecase

import (
	"context"
	"errors"

	"github.com/google/uuid"

	"localization-srv/internal/analysis"
	"localization-srv/internal/analysis/repository"
	"localization-srv/internal/model"
)

// Submit queues an analysis. An identical request that is processing or completed is reused.
func (uc *implUseCase) Submit(ctx context.Context, sc model.Scope, input analysis.AnalyzeInput) (analysis.SubmitOutput, error) {
	if input.Content.IsEmpty() {
		return analysis.SubmitOutput{}, analysis.ErrEmptyContent
	}
	if uc.producer == nil {
		uc.l.Errorf(ctx, "analysis.usecase.Submit: No producer configured")
		return analysis.SubmitOutput{}, analysis.ErrSubmitFailed
	}

	request, hash, err := fingerprint(sc, input)
	if err != nil {
		uc.l.Errorf(ctx, "analysis.usecase.Submit: Failed to encode request: %v", err)
		return analysis.SubmitOutput{}, analysis.ErrSubmitFailed
	}

	existing, err := uc.repo.GetByParamsHash(ctx, repository.GetByParamsHashOptions{
		ParamsHash: hash,
		Statuses:   []model.AnalysisStatus{model.AnalysisStatusProcessing, model.AnalysisStatusCompleted},
	})
	if err == nil {
		return analysis.SubmitOutput{AnalysisID: existing.ID, Status: existing.Status, Reused: true}, nil
	}
	if !errors.Is(err, repository.ErrNotFound) {
		uc.l.Errorf(ctx, "analysis.usecase.Submit: Failed to check existing analysis: %v", err)
		return analysis.SubmitOutput{}, analysis.ErrSubmitFailed
	}

	record, err := uc.repo.Create(ctx, repository.CreateOptions{
		ID:          uuid.New().String(),
		UserID:      sc.UserID,
		WorkspaceID: sc.WorkspaceID,
		DocumentID:  input.DocumentID,
		ParamsHash:  hash,
		Status:      model.AnalysisStatusProcessing,
		Request:     request,
	})
	if err != nil {
		uc.l.Errorf(ctx, "analysis.usecase.Submit: Failed to create analysis: %v", err)
		return analysis.SubmitOutput{}, analysis.ErrSubmitFailed
	}

	if err := uc.producer.PublishAnalysisRequested(ctx, analysis.AnalysisRequested{
		AnalysisID:  record.ID,
		UserID:      sc.UserID,
		WorkspaceID: sc.WorkspaceID,
		RequestedAt: uc.now(),
	}); err != nil {
		uc.l.Errorf(ctx, "analysis.usecase.Submit: Failed to queue analysis %s: %v", record.ID, err)
		uc.markFailed(ctx, record.ID, err)
		return analysis.SubmitOutput{}, analysis.ErrSubmitFailed
	}

	return analysis.SubmitOutput{AnalysisID: record.ID, Status: model.AnalysisStatusProcessing}, nil
}
