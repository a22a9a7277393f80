package kafka

const (
	TopicAnalysisRequested   = "localization.analysis.requested"
	GroupIDAnalysisRequested = "localization-analysis-worker"
)
