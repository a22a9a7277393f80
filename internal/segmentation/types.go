package segmentation

import "localization-srv/internal/model"

type SegmentInput struct {
	Text    string
	Context model.SegmentContext
}

type SegmentOutput struct {
	Segments          []model.Segment
	PreservationRules []model.PreservationRule
}
