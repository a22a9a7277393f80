package elasticsearch

import (
	"localization-srv/internal/tm/repository"
	"localization-srv/pkg/elasticsearch"
	"localization-srv/pkg/log"
)

// Origin tags matches returned by the lexical source.
const Origin = "lexical"

type implRepository struct {
	client elasticsearch.IElasticsearch
	index  string
	l      log.Logger
}

func New(client elasticsearch.IElasticsearch, index string, l log.Logger) repository.Store {
	return &implRepository{
		client: client,
		index:  index,
		l:      l,
	}
}

func (r *implRepository) Name() string {
	return Origin
}
