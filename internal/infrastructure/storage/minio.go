package storage

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"

	"github.com/jhoicas/Onboarding-api/internal/application/onboarding"
)

var _ onboarding.FileStore = (*MinioStore)(nil)

const minioScheme = "minio://"

// MinioConfig conexión al object storage.
type MinioConfig struct {
	Endpoint  string
	AccessKey string
	SecretKey string
	Bucket    string
	UseSSL    bool
	// Prefix se antepone a cada objeto (ej. "onboarding/").
	Prefix string
}

// MinioStore guarda documentos como objetos. La ruta persistida es minio://{bucket}/{objeto}.
type MinioStore struct {
	client *minio.Client
	cfg    MinioConfig
}

// NewMinioStore crea el cliente; no contacta al servidor hasta EnsureBucket o el primer Save.
func NewMinioStore(cfg MinioConfig) (*MinioStore, error) {
	client, err := minio.New(cfg.Endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(cfg.AccessKey, cfg.SecretKey, ""),
		Secure: cfg.UseSSL,
	})
	if err != nil {
		return nil, fmt.Errorf("storage: crear cliente minio: %w", err)
	}
	return &MinioStore{client: client, cfg: cfg}, nil
}

// EnsureBucket crea el bucket si no existe.
func (s *MinioStore) EnsureBucket(ctx context.Context) error {
	exists, err := s.client.BucketExists(ctx, s.cfg.Bucket)
	if err != nil {
		return fmt.Errorf("storage: verificar bucket: %w", err)
	}
	if exists {
		return nil
	}
	if err := s.client.MakeBucket(ctx, s.cfg.Bucket, minio.MakeBucketOptions{}); err != nil {
		return fmt.Errorf("storage: crear bucket: %w", err)
	}
	return nil
}

// Save sube el archivo y devuelve minio://{bucket}/{objeto}.
func (s *MinioStore) Save(ctx context.Context, name string, content []byte, contentType string) (string, error) {
	clean, err := cleanName(name)
	if err != nil {
		return "", err
	}
	object := s.cfg.Prefix + clean
	_, err = s.client.PutObject(ctx, s.cfg.Bucket, object, bytes.NewReader(content), int64(len(content)),
		minio.PutObjectOptions{ContentType: contentType})
	if err != nil {
		return "", fmt.Errorf("storage: subir %s: %w", object, err)
	}
	return s.ObjectPath(object), nil
}

// Load descarga el objeto referenciado por una ruta devuelta por Save.
func (s *MinioStore) Load(ctx context.Context, p string) ([]byte, error) {
	bucket, object, err := ParseObjectPath(p)
	if err != nil {
		return nil, err
	}
	obj, err := s.client.GetObject(ctx, bucket, object, minio.GetObjectOptions{})
	if err != nil {
		return nil, fmt.Errorf("storage: descargar %s: %w", p, err)
	}
	defer obj.Close()
	b, err := io.ReadAll(obj)
	if err != nil {
		return nil, fmt.Errorf("storage: leer %s: %w", p, err)
	}
	return b, nil
}

// ObjectPath ruta persistible de un objeto del bucket configurado.
func (s *MinioStore) ObjectPath(object string) string {
	return minioScheme + s.cfg.Bucket + "/" + object
}

// ParseObjectPath separa bucket y objeto de minio://{bucket}/{objeto}.
func ParseObjectPath(p string) (bucket, object string, err error) {
	rest, ok := strings.CutPrefix(p, minioScheme)
	if !ok {
		return "", "", fmt.Errorf("storage: ruta minio inválida %q", p)
	}
	bucket, object, ok = strings.Cut(rest, "/")
	if !ok || bucket == "" || object == "" {
		return "", "", fmt.Errorf("storage: ruta minio inválida %q", p)
	}
	return bucket, object, nil
}
