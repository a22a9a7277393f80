package usecase

import (
	"context"
	"errors"
	"fmt"

	"localization-srv/internal/analysis"
	"localization-srv/internal/analysis/repository"
	"localization-srv/internal/model"
	"localization-srv/pkg/paginator"
)

func (uc *implUseCase) Get(ctx context.Context, sc model.Scope, input analysis.GetInput) (analysis.AnalysisOutput, error) {
	record, err := uc.get(ctx, input.AnalysisID)
	if err != nil {
		return analysis.AnalysisOutput{}, err
	}

	request, err := analysis.DecodeRequest(record)
	if err != nil {
		uc.l.Warnf(ctx, "analysis.usecase.Get: Stored request of %s is unreadable: %v", record.ID, err)
	}
	return analysis.AnalysisOutput{Analysis: record, Request: request}, nil
}

// List pages through the caller's workspace, or every analysis when the caller has none.
func (uc *implUseCase) List(ctx context.Context, sc model.Scope, input analysis.ListInput) (analysis.ListOutput, error) {
	input.Paginate.Adjust()

	records, total, err := uc.repo.List(ctx, repository.ListOptions{
		WorkspaceID: sc.WorkspaceID,
		Status:      input.Status,
		Limit:       input.Paginate.Limit,
		Offset:      input.Paginate.Offset(),
	})
	if err != nil {
		uc.l.Errorf(ctx, "analysis.usecase.List: Failed to list analyses: %v", err)
		return analysis.ListOutput{}, err
	}

	return analysis.ListOutput{
		Analyses:  records,
		Paginator: paginator.NewPaginator(input.Paginate, total, int64(len(records))),
	}, nil
}

// Download presigns the archived JSON report of a completed analysis.
func (uc *implUseCase) Download(ctx context.Context, sc model.Scope, input analysis.DownloadInput) (analysis.DownloadOutput, error) {
	record, err := uc.get(ctx, input.AnalysisID)
	if err != nil {
		return analysis.DownloadOutput{}, err
	}
	if record.Status != model.AnalysisStatusCompleted {
		return analysis.DownloadOutput{}, analysis.ErrAnalysisNotCompleted
	}
	if record.ReportObject == "" {
		return analysis.DownloadOutput{}, analysis.ErrReportUnavailable
	}

	url, expiresAt, err := uc.archive.PresignDownload(ctx, repository.PresignOptions{
		Object: record.ReportObject,
		Expiry: uc.cfg.DownloadExpiry,
	})
	if err != nil {
		uc.l.Errorf(ctx, "analysis.usecase.Download: Failed to presign %s: %v", record.ID, err)
		return analysis.DownloadOutput{}, analysis.ErrDownloadURLFailed
	}

	return analysis.DownloadOutput{
		URL:       url,
		ExpiresAt: expiresAt,
		FileName:  fmt.Sprintf("analysis_%s.json", record.ID),
	}, nil
}

func (uc *implUseCase) get(ctx context.Context, id string) (model.Analysis, error) {
	record, err := uc.repo.Get(ctx, id)
	if errors.Is(err, repository.ErrNotFound) {
		return model.Analysis{}, analysis.ErrAnalysisNotFound
	}
	if err != nil {
		uc.l.Errorf(ctx, "analysis.usecase.get: Failed to get analysis %s: %v", id, err)
		return model.Analysis{}, err
	}
	return record, nil
}
