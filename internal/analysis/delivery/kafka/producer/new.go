package producer

import (
	"localization-srv/internal/analysis"
	pkgKafka "localization-srv/pkg/kafka"
	"localization-srv/pkg/log"
)

type implProducer struct {
	l        log.Logger
	producer pkgKafka.IProducer
}

// New wraps a producer bound to the analysis requested topic.
func New(l log.Logger, producer pkgKafka.IProducer) analysis.Producer {
	return &implProducer{
		l:        l,
		producer: producer,
	}
}
