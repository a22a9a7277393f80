package intelligence

import "errors"

var ErrInvalidReview = errors.New("intelligence: invalid cultural review")
