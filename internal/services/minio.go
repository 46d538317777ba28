package services

import (
	"bytes"
	"context"
	"fmt"
	"log"
	"os"

	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
)

// Bucket des images d'essayage générées
const PreviewBucket = "tryon-previews"

// MinioStore stocke les images générées et retourne leur URL publique
type MinioStore struct {
	client   *minio.Client
	endpoint string
}

// ConnectMinio initialise le client MinIO ; retourne nil si non configuré
// (les appelants reviennent alors aux data URIs)
func ConnectMinio() *MinioStore {
	endpoint := os.Getenv("MINIO_ENDPOINT")
	accessKey := os.Getenv("MINIO_ACCESS_KEY")
	secretKey := os.Getenv("MINIO_SECRET_KEY")
	if endpoint == "" {
		log.Println("⚠️ MinIO non configuré : les aperçus resteront en data URI")
		return nil
	}

	client, err := minio.New(endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(accessKey, secretKey, ""),
		Secure: os.Getenv("MINIO_USE_SSL") == "true",
	})
	if err != nil {
		log.Println("⚠️ MinIO non configuré :", err)
		return nil
	}

	log.Println("✅ Connecté à MinIO :", endpoint)
	return &MinioStore{client: client, endpoint: endpoint}
}

// SaveImage pousse les octets d'une image dans le bucket des aperçus
func (m *MinioStore) SaveImage(ctx context.Context, objectName string, data []byte, contentType string) (string, error) {
	if m == nil || m.client == nil {
		return "", fmt.Errorf("MinIO non initialisé")
	}

	exists, err := m.client.BucketExists(ctx, PreviewBucket)
	if err != nil {
		return "", err
	}
	if !exists {
		if err := m.client.MakeBucket(ctx, PreviewBucket, minio.MakeBucketOptions{}); err != nil {
			return "", err
		}
	}

	_, err = m.client.PutObject(ctx, PreviewBucket, objectName, bytes.NewReader(data), int64(len(data)),
		minio.PutObjectOptions{ContentType: contentType})
	if err != nil {
		return "", err
	}

	scheme := "http"
	if os.Getenv("MINIO_USE_SSL") == "true" {
		scheme = "https"
	}
	return fmt.Sprintf("%s://%s/%s/%s", scheme, m.endpoint, PreviewBucket, objectName), nil
}
