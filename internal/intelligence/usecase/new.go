package usecase

import (
	"localization-srv/internal/intelligence"
	"localization-srv/internal/intelligence/repository"
	"localization-srv/pkg/gemini"
	"localization-srv/pkg/log"
)

type implUseCase struct {
	l      log.Logger
	repo   repository.Repository
	llm    gemini.IGemini
	cfg    intelligence.Config
	schema map[string]any
}

// New builds the intelligence use case. llm may be nil; it is only used when cfg.LLMEnabled is set.
func New(l log.Logger, repo repository.Repository, llm gemini.IGemini, cfg intelligence.Config) intelligence.UseCase {
	def := intelligence.DefaultConfig()
	if cfg.AvoidedTermPenalty == 0 {
		cfg.AvoidedTermPenalty = def.AvoidedTermPenalty
	}
	if cfg.MissingPillarPenalty == 0 {
		cfg.MissingPillarPenalty = def.MissingPillarPenalty
	}
	if cfg.CulturalReferencePenalty == 0 {
		cfg.CulturalReferencePenalty = def.CulturalReferencePenalty
	}
	if cfg.SensitiveTopicPenalty == 0 {
		cfg.SensitiveTopicPenalty = def.SensitiveTopicPenalty
	}
	if cfg.MarketNotePenalty == 0 {
		cfg.MarketNotePenalty = def.MarketNotePenalty
	}
	if llm == nil {
		cfg.LLMEnabled = false
	}

	return &implUseCase{
		l:      l,
		repo:   repo,
		llm:    llm,
		cfg:    cfg,
		schema: gemini.GenerateSchema[intelligence.CulturalReview](),
	}
}
