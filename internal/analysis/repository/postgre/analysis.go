package postgre

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"localization-srv/internal/analysis/repository"
	"localization-srv/internal/model"
)

func (r *implRepository) Create(ctx context.Context, opts repository.CreateOptions) (model.Analysis, error) {
	request := opts.Request
	if len(request) == 0 {
		request = []byte("{}")
	}
	a, err := scanAnalysis(r.db.QueryRowContext(ctx, queryInsertAnalysis,
		opts.ID, opts.UserID, opts.WorkspaceID, opts.DocumentID, opts.ParamsHash, string(opts.Status), request, time.Now()))
	if err != nil {
		r.l.Errorf(ctx, "analysis.repository.postgre.Create: Failed to insert analysis: %v", err)
		return model.Analysis{}, repository.ErrCreateFailed
	}
	return a, nil
}

func (r *implRepository) Get(ctx context.Context, id string) (model.Analysis, error) {
	a, err := scanAnalysis(r.db.QueryRowContext(ctx, queryGetAnalysis, id))
	if errors.Is(err, sql.ErrNoRows) {
		return model.Analysis{}, repository.ErrNotFound
	}
	if err != nil {
		r.l.Errorf(ctx, "analysis.repository.postgre.Get: Failed to get analysis: %v", err)
		return model.Analysis{}, err
	}
	return a, nil
}

func (r *implRepository) GetByParamsHash(ctx context.Context, opts repository.GetByParamsHashOptions) (model.Analysis, error) {
	a, err := scanAnalysis(r.db.QueryRowContext(ctx, queryGetByParamsHash, opts.ParamsHash, statusArray(opts)))
	if errors.Is(err, sql.ErrNoRows) {
		return model.Analysis{}, repository.ErrNotFound
	}
	if err != nil {
		r.l.Errorf(ctx, "analysis.repository.postgre.GetByParamsHash: Failed to find analysis: %v", err)
		return model.Analysis{}, err
	}
	return a, nil
}

func (r *implRepository) List(ctx context.Context, opts repository.ListOptions) ([]model.Analysis, int64, error) {
	pageQuery, countQuery, args := buildListQuery(opts)

	var total int64
	if err := r.db.QueryRowContext(ctx, countQuery, args...).Scan(&total); err != nil {
		r.l.Errorf(ctx, "analysis.repository.postgre.List: Failed to count analyses: %v", err)
		return nil, 0, err
	}

	rows, err := r.db.QueryContext(ctx, pageQuery, append(args, opts.Limit, opts.Offset)...)
	if err != nil {
		r.l.Errorf(ctx, "analysis.repository.postgre.List: Failed to list analyses: %v", err)
		return nil, 0, err
	}
	defer rows.Close()

	result := make([]model.Analysis, 0, opts.Limit)
	for rows.Next() {
		a, err := scanAnalysis(rows)
		if err != nil {
			r.l.Errorf(ctx, "analysis.repository.postgre.List: Failed to scan analysis: %v", err)
			return nil, 0, err
		}
		result = append(result, a)
	}
	if err := rows.Err(); err != nil {
		r.l.Errorf(ctx, "analysis.repository.postgre.List: Failed to iterate analyses: %v", err)
		return nil, 0, err
	}
	return result, total, nil
}

func (r *implRepository) UpdateCompleted(ctx context.Context, opts repository.UpdateCompletedOptions) error {
	res, err := r.db.ExecContext(ctx, queryUpdateCompleted, opts.ID, opts.OverallComplexity, opts.ExportReady,
		opts.SegmentCount, opts.MatchCount, opts.ReportObject, opts.CompletedAt)
	if err != nil {
		r.l.Errorf(ctx, "analysis.repository.postgre.UpdateCompleted: Failed to update analysis: %v", err)
		return repository.ErrUpdateFailed
	}
	return r.affected(ctx, res, opts.ID)
}

func (r *implRepository) UpdateFailed(ctx context.Context, opts repository.UpdateFailedOptions) error {
	res, err := r.db.ExecContext(ctx, queryUpdateFailed, opts.ID, opts.ErrorMessage)
	if err != nil {
		r.l.Errorf(ctx, "analysis.repository.postgre.UpdateFailed: Failed to update analysis: %v", err)
		return repository.ErrUpdateFailed
	}
	return r.affected(ctx, res, opts.ID)
}

func (r *implRepository) affected(ctx context.Context, res sql.Result, id string) error {
	n, err := res.RowsAffected()
	if err != nil {
		r.l.Warnf(ctx, "analysis.repository.postgre: rows affected unavailable for %s: %v", id, err)
		return nil
	}
	if n == 0 {
		return repository.ErrNotFound
	}
	return nil
}
