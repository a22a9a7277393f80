package usecase

import (
	"context"
	"fmt"

	"localization-srv/internal/scoring"
	"localization-srv/pkg/log"
)

type implUseCase struct {
	l   log.Logger
	cfg scoring.Config
}

func New(l log.Logger, cfg scoring.Config) scoring.UseCase {
	return &implUseCase{
		l:   l,
		cfg: cfg,
	}
}

// safely runs fn and turns a panic into ErrScoringFailed, so a partial result never escapes.
func (uc *implUseCase) safely(ctx context.Context, where string, fn func()) (err error) {
	defer func() {
		if r := recover(); r != nil {
			uc.l.Errorf(ctx, "scoring.usecase.%s: recovered: %v", where, r)
			err = fmt.Errorf("%w: %v", scoring.ErrScoringFailed, r)
		}
	}()
	fn()
	return nil
}
