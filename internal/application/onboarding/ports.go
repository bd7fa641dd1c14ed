package onboarding

import (
	"context"

	"github.com/jhoicas/Onboarding-api/internal/domain/repository"
)

// TxRunner ejecuta una función dentro de una transacción, pasando repositorios atados a esa tx.
// Si fn retorna error no se confirma ninguna escritura (registro + actividad son atómicos).
type TxRunner interface {
	Run(ctx context.Context, fn func(
		consultantRepo repository.ConsultantRepository,
		documentRepo repository.DocumentRepository,
		activityRepo repository.ActivityRepository,
	) error) error
}

// GeneratedFile archivo producido por el DocumentGenerator.
type GeneratedFile struct {
	FileName    string
	ContentType string
	Content     []byte
}

// DocumentGenerator produce los documentos del consultor (oferta y checklist).
// El core solo almacena la ruta resultante; no interpreta el contenido.
type DocumentGenerator interface {
	GenerateOfferLetter(ctx context.Context, data OfferLetterData) (*GeneratedFile, error)
	GenerateChecklist(ctx context.Context, data OfferLetterData) (*GeneratedFile, error)
}

// FileStore guarda archivos generados y devuelve la ruta que se persiste en Document.FilePath.
type FileStore interface {
	Save(ctx context.Context, name string, content []byte, contentType string) (string, error)
	Load(ctx context.Context, path string) ([]byte, error)
}

// Attachment adjunto de un correo.
type Attachment struct {
	Name    string
	Content []byte
}

// Email mensaje a enviar por el EmailSender.
type Email struct {
	To         string
	Subject    string
	Body       string
	Attachment *Attachment
}

// EmailSender envía un correo. Un error significa que el envío falló; no hay reintentos.
type EmailSender interface {
	Send(ctx context.Context, email Email) error
}
