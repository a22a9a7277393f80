package minio

import (
	"localization-srv/internal/analysis/repository"
	"localization-srv/pkg/log"
	pkgMinio "localization-srv/pkg/minio"
)

const (
	objectPrefix    = "analyses"
	contentTypeJSON = "application/json; charset=utf-8"
)

type implArchive struct {
	client pkgMinio.MinIO
	bucket string
	l      log.Logger
}

func New(client pkgMinio.MinIO, bucket string, l log.Logger) repository.ArchiveRepository {
	return &implArchive{
		client: client,
		bucket: bucket,
		l:      l,
	}
}
