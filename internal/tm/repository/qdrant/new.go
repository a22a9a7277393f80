package qdrant

import (
	"localization-srv/internal/embedding"
	"localization-srv/internal/tm/repository"
	"localization-srv/pkg/log"
	pkgQdrant "localization-srv/pkg/qdrant"
)

// Origin tags matches returned by the semantic source.
const Origin = "semantic"

type implRepository struct {
	client      pkgQdrant.IQdrant
	embeddingUC embedding.UseCase
	collection  string
	l           log.Logger
}

func New(client pkgQdrant.IQdrant, embeddingUC embedding.UseCase, collection string, l log.Logger) repository.Store {
	return &implRepository{
		client:      client,
		embeddingUC: embeddingUC,
		collection:  collection,
		l:           l,
	}
}

func (r *implRepository) Name() string {
	return Origin
}
