package usecase

import (
	"context"
	"regexp"

	"golang.org/x/sync/errgroup"

	"localization-srv/internal/intelligence"
	"localization-srv/internal/intelligence/repository"
	"localization-srv/internal/model"
	"localization-srv/pkg/util"
)

func (uc *implUseCase) Regulatory(ctx context.Context, query intelligence.RegulatoryQuery) model.RegulatoryIntelligence {
	markets := util.Dedupe(query.Markets)
	perMarket := make([][]model.RegulatoryRule, len(markets))

	// Rule-source failures are absorbed per market, so the group never errors.
	g, gctx := errgroup.WithContext(ctx)
	for i, market := range markets {
		g.Go(func() error {
			rules, err := uc.repo.ListRegulatoryRules(gctx, repository.ListRulesOptions{
				BrandID:         query.BrandID,
				Market:          market,
				TherapeuticArea: query.TherapeuticArea,
			})
			if err != nil {
				uc.l.Warnf(ctx, "intelligence.usecase.Regulatory: rules for %s unavailable: %v", market, err)
				return nil
			}
			perMarket[i] = rules
			return nil
		})
	}
	_ = g.Wait()

	out := model.RegulatoryIntelligence{
		Status:         model.ComplianceStatusCompliant,
		Findings:       []model.RegulatoryFinding{},
		MarketsChecked: markets,
	}

	patterns := patternCache{}
	for i, rules := range perMarket {
		for _, rule := range rules {
			re, ok := patterns.compile(rule.CompliancePattern)
			if !ok {
				uc.l.Warnf(ctx, "intelligence.usecase.Regulatory: invalid pattern in rule %s skipped", rule.ID)
				continue
			}
			out.RulesEvaluated++
			matched := re.FindString(query.Text)
			if matched == "" {
				continue
			}
			out.Findings = append(out.Findings, model.RegulatoryFinding{
				RuleID:    rule.ID,
				RuleName:  rule.RuleName,
				Market:    markets[i],
				RiskLevel: rule.RiskLevel,
				Matched:   matched,
			})
			out.Status = worse(out.Status, rule.RiskLevel)
		}
	}
	return out
}

func worse(current model.ComplianceStatus, level model.RiskCategory) model.ComplianceStatus {
	switch {
	case level == model.RiskCategoryHigh:
		return model.ComplianceStatusNonCompliant
	case level == model.RiskCategoryMedium && current == model.ComplianceStatusCompliant:
		return model.ComplianceStatusNeedsReview
	}
	return current
}

// patternCache compiles each distinct pattern once per call. Invalid patterns are cached as nil.
type patternCache map[string]*regexp.Regexp

func (c patternCache) compile(pattern string) (*regexp.Regexp, bool) {
	if re, ok := c[pattern]; ok {
		return re, re != nil
	}
	var re *regexp.Regexp
	if pattern != "" {
		re, _ = regexp.Compile("(?i)" + pattern)
	}
	c[pattern] = re
	return re, re != nil
}
