package repository

import (
	"context"
	"errors"

	"localization-srv/internal/model"
)

var ErrNotFound = errors.New("repository: not found")

//go:generate mockery --name Repository
type Repository interface {
	GetBrandProfile(ctx context.Context, brandID string) (model.BrandProfile, error)
	ListRegulatoryRules(ctx context.Context, opt ListRulesOptions) ([]model.RegulatoryRule, error)
}
