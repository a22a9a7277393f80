package usecase

import (
	"context"

	"github.com/stretchr/testify/mock"

	"localization-srv/internal/intelligence/repository"
	"localization-srv/internal/model"
)

type mockRepository struct {
	mock.Mock
}

func (m *mockRepository) GetBrandProfile(ctx context.Context, brandID string) (model.BrandProfile, error) {
	args := m.Called(ctx, brandID)
	return args.Get(0).(model.BrandProfile), args.Error(1)
}

func (m *mockRepository) ListRegulatoryRules(ctx context.Context, opt repository.ListRulesOptions) ([]model.RegulatoryRule, error) {
	args := m.Called(ctx, opt)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.RegulatoryRule), args.Error(1)
}

type fakeGemini struct {
	answer string
	err    error
	prompt string
}

func (f *fakeGemini) Generate(ctx context.Context, prompt string) (string, error) {
	f.prompt = prompt
	return f.answer, f.err
}

func (f *fakeGemini) GenerateJSON(ctx context.Context, prompt string, schema map[string]any) (string, error) {
	f.prompt = prompt
	return f.answer, f.err
}
