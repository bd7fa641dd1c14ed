package storage_test

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Onboarding-api/internal/infrastructure/storage"
	"github.com/jhoicas/Onboarding-api/pkg/logger"
)

func TestLocalStore_SaveLoad(t *testing.T) {
	ctx := context.Background()
	fs := afero.NewMemMapFs()
	store, err := storage.NewLocalStore(fs, "/data/generated", logger.Nop())
	require.NoError(t, err)

	p, err := store.Save(ctx, "Offer_Letter_Ada_20261019.pdf", []byte("%PDF-1"), "application/pdf")
	require.NoError(t, err)
	assert.Equal(t, filepath.Join("/data/generated", "Offer_Letter_Ada_20261019.pdf"), p)

	b, err := store.Load(ctx, p)
	require.NoError(t, err)
	assert.Equal(t, []byte("%PDF-1"), b)

	exists, err := afero.Exists(fs, filepath.Join("/data/generated", ".write_test"))
	require.NoError(t, err)
	assert.False(t, exists)
}

func TestLocalStore_NombreConRutaSeAplana(t *testing.T) {
	ctx := context.Background()
	store, err := storage.NewLocalStore(afero.NewMemMapFs(), "/data", logger.Nop())
	require.NoError(t, err)

	p, err := store.Save(ctx, "../../etc/passwd", []byte("x"), "text/plain")
	require.NoError(t, err)
	assert.Equal(t, filepath.Join("/data", "passwd"), p)

	_, err = store.Save(ctx, "..", []byte("x"), "text/plain")
	assert.Error(t, err)
}

func TestLocalStore_LoadFueraDelDirectorio(t *testing.T) {
	store, err := storage.NewLocalStore(afero.NewMemMapFs(), "/data", logger.Nop())
	require.NoError(t, err)

	_, err = store.Load(context.Background(), "/etc/passwd")
	assert.Error(t, err)
}

func TestLocalStore_SinDirectorioEscribible(t *testing.T) {
	base := afero.NewMemMapFs()
	require.NoError(t, base.MkdirAll("/ro", 0o755))

	// ReadOnlyFs: falla tanto /ro como el directorio temporal.
	store, err := storage.NewLocalStore(afero.NewReadOnlyFs(base), "/ro", logger.Nop())
	assert.Error(t, err, "sin ningún directorio escribible debe fallar")
	assert.Nil(t, store)

	store, err = storage.NewLocalStore(afero.NewMemMapFs(), "/ok", logger.Nop())
	require.NoError(t, err)
	assert.Equal(t, "/ok", store.Dir())
}

func TestParseObjectPath(t *testing.T) {
	bucket, object, err := storage.ParseObjectPath("minio://onboarding/docs/offer.pdf")
	require.NoError(t, err)
	assert.Equal(t, "onboarding", bucket)
	assert.Equal(t, "docs/offer.pdf", object)

	for _, bad := range []string{"/tmp/offer.pdf", "minio://", "minio://bucket", "minio:///obj"} {
		_, _, err := storage.ParseObjectPath(bad)
		assert.Error(t, err, bad)
	}
}

func TestMinioStore_ObjectPath(t *testing.T) {
	s, err := storage.NewMinioStore(storage.MinioConfig{
		Endpoint: "localhost:9000", AccessKey: "k", SecretKey: "s", Bucket: "onboarding",
	})
	require.NoError(t, err)
	assert.Equal(t, "minio://onboarding/onboarding/offer.pdf", s.ObjectPath("onboarding/offer.pdf"))
}
