// Package storage guarda los documentos generados (disco local o MinIO) e implementa onboarding.FileStore.
package storage

import (
	"context"
	"fmt"
	"os"
	"path"
	"path/filepath"
	"strings"

	"github.com/spf13/afero"

	"github.com/jhoicas/Onboarding-api/internal/application/onboarding"
	"github.com/jhoicas/Onboarding-api/pkg/logger"
)

var _ onboarding.FileStore = (*LocalStore)(nil)

// fallbackDir se usa si el directorio configurado no admite escritura (ej. contenedor read-only).
var fallbackDir = filepath.Join(os.TempDir(), "generated_docs")

// LocalStore guarda archivos en un directorio del filesystem (afero: OsFs en producción, MemMapFs en tests).
type LocalStore struct {
	fs  afero.Fs
	dir string
}

// NewLocalStore prepara dir y verifica que se pueda escribir; si no, cae a un directorio temporal.
func NewLocalStore(fs afero.Fs, dir string, log *logger.Logger) (*LocalStore, error) {
	if err := probeWritable(fs, dir); err != nil {
		log.Warn().Err(err).Str("dir", dir).Str("fallback", fallbackDir).Msg("directorio de documentos sin escritura; usando temporal")
		if err := probeWritable(fs, fallbackDir); err != nil {
			return nil, fmt.Errorf("storage: sin directorio escribible: %w", err)
		}
		dir = fallbackDir
	}
	return &LocalStore{fs: fs, dir: dir}, nil
}

// Dir directorio efectivo.
func (s *LocalStore) Dir() string { return s.dir }

// Save escribe el archivo y devuelve su ruta. Un nombre repetido sobrescribe el anterior.
func (s *LocalStore) Save(ctx context.Context, name string, content []byte, _ string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	clean, err := cleanName(name)
	if err != nil {
		return "", err
	}
	p := filepath.Join(s.dir, clean)
	if err := afero.WriteFile(s.fs, p, content, 0o644); err != nil {
		return "", fmt.Errorf("storage: escribir %s: %w", p, err)
	}
	return p, nil
}

// Load lee un archivo guardado previamente. Solo acepta rutas dentro del directorio del store.
func (s *LocalStore) Load(ctx context.Context, p string) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	rel, err := filepath.Rel(s.dir, filepath.Clean(p))
	if err != nil || rel == ".." || strings.HasPrefix(rel, ".."+string(filepath.Separator)) {
		return nil, fmt.Errorf("storage: ruta fuera del directorio de documentos: %s", p)
	}
	b, err := afero.ReadFile(s.fs, p)
	if err != nil {
		return nil, fmt.Errorf("storage: leer %s: %w", p, err)
	}
	return b, nil
}

func probeWritable(fs afero.Fs, dir string) error {
	if err := fs.MkdirAll(dir, 0o755); err != nil {
		return err
	}
	probe := filepath.Join(dir, ".write_test")
	if err := afero.WriteFile(fs, probe, []byte("ok"), 0o600); err != nil {
		return err
	}
	return fs.Remove(probe)
}

// cleanName deja solo el último segmento; no se aceptan rutas en el nombre.
func cleanName(name string) (string, error) {
	base := path.Base(filepath.ToSlash(strings.TrimSpace(name)))
	if base == "." || base == "/" || base == ".." || base == "" {
		return "", fmt.Errorf("storage: nombre de archivo inválido %q", name)
	}
	return base, nil
}
