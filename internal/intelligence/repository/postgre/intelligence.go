package postgre

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"

	"github.com/lib/pq"

	"localization-srv/internal/intelligence/repository"
	"localization-srv/internal/model"
)

func (r *implRepository) GetBrandProfile(ctx context.Context, brandID string) (model.BrandProfile, error) {
	var (
		p        model.BrandProfile
		tone     pq.StringArray
		avoided  pq.StringArray
		pillars  pq.StringArray
		identity []byte
	)
	err := r.db.QueryRowContext(ctx, queryGetBrandProfile, brandID).
		Scan(&p.BrandID, &p.Name, &tone, &avoided, &pillars, &identity)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return model.BrandProfile{}, repository.ErrNotFound
		}
		r.l.Errorf(ctx, "intelligence.repository.postgre.GetBrandProfile: query failed: %v", err)
		return model.BrandProfile{}, err
	}

	p.Tone = []string(tone)
	p.AvoidedTerms = []string(avoided)
	p.MessagingPillars = []string(pillars)
	p.VisualIdentity, err = decodeIdentity(identity)
	if err != nil {
		r.l.Warnf(ctx, "intelligence.repository.postgre.GetBrandProfile: bad visual_identity for %s: %v", brandID, err)
	}
	return p, nil
}

func (r *implRepository) ListRegulatoryRules(ctx context.Context, opt repository.ListRulesOptions) ([]model.RegulatoryRule, error) {
	rows, err := r.db.QueryContext(ctx, queryListRegulatoryRules, opt.Market, opt.BrandID, opt.TherapeuticArea)
	if err != nil {
		r.l.Errorf(ctx, "intelligence.repository.postgre.ListRegulatoryRules: query failed: %v", err)
		return nil, err
	}
	defer rows.Close()

	rules := []model.RegulatoryRule{}
	for rows.Next() {
		var (
			rule  model.RegulatoryRule
			level string
		)
		if err := rows.Scan(&rule.ID, &rule.BrandID, &rule.Market, &rule.TherapeuticArea, &rule.RuleName,
			&rule.CompliancePattern, &level, &rule.Description); err != nil {
			r.l.Errorf(ctx, "intelligence.repository.postgre.ListRegulatoryRules: scan failed: %v", err)
			return nil, err
		}
		rule.RiskLevel = model.RiskCategory(level)
		rules = append(rules, rule)
	}
	if err := rows.Err(); err != nil {
		r.l.Errorf(ctx, "intelligence.repository.postgre.ListRegulatoryRules: rows failed: %v", err)
		return nil, err
	}
	return rules, nil
}

// decodeIdentity reads the jsonb visual identity. NULL decodes to nil.
func decodeIdentity(raw []byte) (map[string]string, error) {
	if len(raw) == 0 {
		return nil, nil
	}
	var identity map[string]string
	if err := json.Unmarshal(raw, &identity); err != nil {
		return nil, err
	}
	return identity, nil
}
