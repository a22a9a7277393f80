package scoring

import "errors"

var ErrScoringFailed = errors.New("scoring: complexity scoring failed")
