package rabbitmq

import pkgRabbit "localization-srv/pkg/rabbitmq"

const (
	ExchangeAnalysisCompleted   = "localization.analysis"
	RoutingKeyAnalysisCompleted = "analysis.completed"
	QueueAnalysisCompleted      = "localization.analysis.completed"
)

// AnalysisExchange is declared before publishing.
func AnalysisExchange(name string) pkgRabbit.ExchangeArgs {
	if name == "" {
		name = ExchangeAnalysisCompleted
	}
	return pkgRabbit.ExchangeArgs{
		Name:    name,
		Type:    pkgRabbit.ExchangeTypeTopic,
		Durable: true,
	}
}

// AnalysisCompletedQueue holds completion events until a subscriber drains it.
func AnalysisCompletedQueue() pkgRabbit.QueueArgs {
	return pkgRabbit.QueueArgs{
		Name:    QueueAnalysisCompleted,
		Durable: true,
	}
}
