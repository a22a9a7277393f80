package postgre

const (
	queryGetBrandProfile = `
SELECT brand_id, name, tone, avoided_terms, messaging_pillars, visual_identity
FROM brand_profiles
WHERE brand_id = $1`

	queryListRegulatoryRules = `
SELECT id, COALESCE(brand_id, ''), market, COALESCE(therapeutic_area, ''), rule_name,
       compliance_pattern, risk_level, COALESCE(description, '')
FROM regulatory_rules
WHERE lower(market) = lower($1)
  AND (brand_id IS NULL OR brand_id = NULLIF($2, ''))
  AND (therapeutic_area IS NULL OR lower(therapeutic_area) = lower(NULLIF($3, '')))
ORDER BY rule_name, id`
)
