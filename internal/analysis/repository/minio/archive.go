package minio

import (
	"bytes"
	"context"
	"fmt"
	"time"

	"localization-srv/internal/analysis/repository"
	pkgMinio "localization-srv/pkg/minio"
)

func objectName(analysisID string) string {
	return fmt.Sprintf("%s/%s.json", objectPrefix, analysisID)
}

func (a *implArchive) Save(ctx context.Context, opts repository.SaveOptions) (string, error) {
	name := objectName(opts.AnalysisID)
	metadata := map[string]string{"analysis_id": opts.AnalysisID}
	if opts.DocumentID != "" {
		metadata["document_id"] = opts.DocumentID
	}

	_, err := a.client.UploadFile(ctx, &pkgMinio.UploadRequest{
		BucketName:  a.bucket,
		ObjectName:  name,
		Reader:      bytes.NewReader(opts.Report),
		Size:        int64(len(opts.Report)),
		ContentType: contentTypeJSON,
		Metadata:    metadata,
	})
	if err != nil {
		a.l.Errorf(ctx, "analysis.repository.minio.Save: Upload failed for %s: %v", opts.AnalysisID, err)
		return "", err
	}
	return name, nil
}

func (a *implArchive) PresignDownload(ctx context.Context, opts repository.PresignOptions) (string, time.Time, error) {
	presigned, err := a.client.GetPresignedDownloadURL(ctx, &pkgMinio.PresignedURLRequest{
		BucketName: a.bucket,
		ObjectName: opts.Object,
		Method:     pkgMinio.MethodGET,
		Expiry:     opts.Expiry,
	})
	if err != nil {
		a.l.Errorf(ctx, "analysis.repository.minio.PresignDownload: Failed to presign %s: %v", opts.Object, err)
		return "", time.Time{}, err
	}
	return presigned.URL, presigned.ExpiresAt, nil
}
