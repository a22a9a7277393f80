package recommendation

import "errors"

var ErrAggregationFailed = errors.New("recommendation: aggregation failed")
