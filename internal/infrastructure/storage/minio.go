package storage

import (
	"bytes"
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
	"github.com/sirupsen/logrus"

	"propostas_xpto/internal/usecase/interfaces"
)

// SignatureArchive stores exported signature images in S3-compatible object
// storage. It only receives images after the portal accepted the signed
// payload; failures here are audit losses, never flow failures.
type SignatureArchive struct {
	client     *minio.Client
	bucketName string
}

var _ interfaces.ISignatureArchive = (*SignatureArchive)(nil)

func NewSignatureArchive(endpoint, accessKey, secretKey, bucketName string, useSSL bool) (*SignatureArchive, error) {
	client, err := minio.New(endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(accessKey, secretKey, ""),
		Secure: useSSL,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create minio client: %w", err)
	}

	ctx := context.Background()
	exists, err := client.BucketExists(ctx, bucketName)
	if err != nil {
		return nil, fmt.Errorf("failed to check bucket: %w", err)
	}
	if !exists {
		if err := client.MakeBucket(ctx, bucketName, minio.MakeBucketOptions{}); err != nil {
			return nil, fmt.Errorf("failed to create bucket: %w", err)
		}
		logrus.Infof("Bucket %s created successfully", bucketName)
	}

	return &SignatureArchive{client: client, bucketName: bucketName}, nil
}

// Store uploads the signature PNG under a unique key tied to the proposal.
func (a *SignatureArchive) Store(ctx context.Context, proposalID string, png []byte) (string, error) {
	key := fmt.Sprintf("signatures/%s_%s_%d.png", proposalID, uuid.New().String()[:8], time.Now().Unix())

	_, err := a.client.PutObject(ctx, a.bucketName, key, bytes.NewReader(png), int64(len(png)), minio.PutObjectOptions{
		ContentType: "image/png",
	})
	if err != nil {
		return "", fmt.Errorf("failed to upload signature: %w", err)
	}

	logrus.Infof("Signature %s archived successfully", key)
	return key, nil
}

// PresignedURL returns a temporary read URL for a stored signature (1 hour).
func (a *SignatureArchive) PresignedURL(ctx context.Context, key string) (string, error) {
	url, err := a.client.PresignedGetObject(ctx, a.bucketName, key, time.Hour, nil)
	if err != nil {
		return "", fmt.Errorf("failed to generate presigned URL: %w", err)
	}
	return url.String(), nil
}
