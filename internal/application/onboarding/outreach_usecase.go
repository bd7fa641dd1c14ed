package onboarding

import (
	"bytes"
	"context"
	"fmt"
	"strings"
	"text/template"
	"time"

	"github.com/jhoicas/Onboarding-api/internal/application/dto"
	"github.com/jhoicas/Onboarding-api/internal/domain"
	"github.com/jhoicas/Onboarding-api/internal/domain/entity"
	domainonboarding "github.com/jhoicas/Onboarding-api/internal/domain/onboarding"
	"github.com/jhoicas/Onboarding-api/internal/domain/repository"
	"github.com/jhoicas/Onboarding-api/pkg/logger"
)

// OfferLetterData datos que se vuelcan en la carta de oferta y el checklist.
type OfferLetterData struct {
	ConsultantName     string
	FirstName          string
	Email              string
	Position           string
	Manager            string
	StartDate          string
	EndDate            string
	EmploymentType     string
	PayRate            string
	CompanyName        string
	HiringManager      string
	HiringManagerTitle string
	Location           string
	IssuedAt           time.Time
	ResponseDeadline   time.Time
}

// OutreachConfig datos de la empresa y límites para generación y envío.
type OutreachConfig struct {
	CompanyName        string
	DefaultManager     string
	HiringManager      string
	HiringManagerTitle string
	Location           string
	// Timeout acota generación, almacenamiento y envío. 0 = sin límite extra.
	Timeout time.Duration
}

const (
	defaultEmploymentType = "Full-time"
	defaultEndDate        = "N/A"
	responseWindow        = 3 * 24 * time.Hour
)

var (
	offerEmailTpl = template.Must(template.New("offer").Parse(`Dear {{.FirstName}},

Congratulations! Please find attached your offer letter for the position of {{.Position}} at {{.CompanyName}}.

Position: {{.Position}}
Start Date: {{.StartDate}}
Manager: {{.Manager}}

Please review the attached offer letter and respond by signing and returning it at your earliest convenience.

We look forward to having you join our team!

Best regards,
{{.HiringManager}}
{{.HiringManagerTitle}}
{{.CompanyName}}
`))

	reminderEmailTpl = template.Must(template.New("reminder").Parse(`Dear {{.Data.FirstName}},

This is a friendly reminder that we're still waiting for the following documents to complete your onboarding:

{{range .Pending}}- {{.}}
{{end}}
Your start date is {{.Data.StartDate}}, and we need these documents to ensure everything is ready for your first day.

Thank you!

Best regards,
{{.Data.HiringManager}}
{{.Data.HiringManagerTitle}}
{{.Data.CompanyName}}
`))
)

// OutreachUseCase genera documentos y envía correos al consultor.
// Los archivos se generan y guardan antes de tocar la base; el envío no reintenta.
type OutreachUseCase struct {
	consultantRepo repository.ConsultantRepository
	documentRepo   repository.DocumentRepository
	txRunner       TxRunner
	generator      DocumentGenerator
	files          FileStore
	mailer         EmailSender
	cfg            OutreachConfig
	log            *logger.Logger
}

// NewOutreachUseCase construye el caso de uso.
func NewOutreachUseCase(
	consultantRepo repository.ConsultantRepository,
	documentRepo repository.DocumentRepository,
	txRunner TxRunner,
	generator DocumentGenerator,
	files FileStore,
	mailer EmailSender,
	cfg OutreachConfig,
	log *logger.Logger,
) *OutreachUseCase {
	return &OutreachUseCase{
		consultantRepo: consultantRepo,
		documentRepo:   documentRepo,
		txRunner:       txRunner,
		generator:      generator,
		files:          files,
		mailer:         mailer,
		cfg:            cfg,
		log:            log.Component("outreach"),
	}
}

// GenerateDocuments genera carta de oferta y checklist, los guarda y marca los documentos
// "Offer Letter" del consultor como Generated con la ruta de la carta.
func (uc *OutreachUseCase) GenerateDocuments(ctx context.Context, consultantID string) (*dto.GenerateDocumentsResponse, error) {
	c, err := uc.getConsultant(ctx, consultantID)
	if err != nil {
		return nil, err
	}
	data := uc.letterData(c, time.Now())

	octx, cancel := uc.bounded(ctx)
	defer cancel()

	offer, err := uc.generator.GenerateOfferLetter(octx, data)
	if err != nil {
		uc.log.Error().Err(err).Str("consultant_id", c.ID).Msg("error generando carta de oferta")
		return nil, fmt.Errorf("generar carta de oferta: %w", err)
	}
	checklist, err := uc.generator.GenerateChecklist(octx, data)
	if err != nil {
		uc.log.Error().Err(err).Str("consultant_id", c.ID).Msg("error generando checklist")
		return nil, fmt.Errorf("generar checklist: %w", err)
	}
	offerPath, err := uc.files.Save(octx, offer.FileName, offer.Content, offer.ContentType)
	if err != nil {
		return nil, fmt.Errorf("guardar carta de oferta: %w", err)
	}
	checklistPath, err := uc.files.Save(octx, checklist.FileName, checklist.Content, checklist.ContentType)
	if err != nil {
		return nil, fmt.Errorf("guardar checklist: %w", err)
	}

	err = uc.txRunner.Run(ctx, func(
		consultantRepo repository.ConsultantRepository,
		documentRepo repository.DocumentRepository,
		activityRepo repository.ActivityRepository,
	) error {
		if _, err := consultantRepo.LockByID(ctx, c.ID); err != nil {
			return err
		}
		docs, err := documentRepo.ListByConsultant(ctx, c.ID)
		if err != nil {
			return err
		}
		now := time.Now()
		for _, d := range docs {
			if d.DocumentType != entity.DocTypeOfferLetter {
				continue
			}
			path := offerPath
			d.FilePath = &path
			d.Status = entity.DocumentGenerated
			d.UpdatedAt = now
			if err := documentRepo.Update(ctx, d); err != nil {
				return err
			}
		}
		_, err = appendActivity(ctx, activityRepo, c.ID, entity.ActivityDocumentsGenerated,
			"Offer letter and checklist created", now)
		return err
	})
	if err != nil {
		return nil, err
	}
	uc.log.Info().
		Str("consultant_id", c.ID).
		Str("offer", offerPath).
		Str("checklist", checklistPath).
		Msg("documentos generados")
	return &dto.GenerateDocumentsResponse{Offer: offerPath, Checklist: checklistPath}, nil
}

// SendOffer envía la carta de oferta generada como adjunto y la marca como Sent.
// Sin carta generada retorna domain.ErrPrecondition.
func (uc *OutreachUseCase) SendOffer(ctx context.Context, consultantID string) (*dto.MessageResponse, error) {
	c, err := uc.getConsultant(ctx, consultantID)
	if err != nil {
		return nil, err
	}
	docs, err := uc.documentRepo.ListByConsultant(ctx, c.ID)
	if err != nil {
		return nil, err
	}
	var offer *entity.Document
	for _, d := range docs {
		if d.DocumentType == entity.DocTypeOfferLetter {
			offer = d
			break
		}
	}
	if offer == nil || offer.FilePath == nil || *offer.FilePath == "" {
		return nil, fmt.Errorf("%w: generate documents first", domain.ErrPrecondition)
	}

	octx, cancel := uc.bounded(ctx)
	defer cancel()

	content, err := uc.files.Load(octx, *offer.FilePath)
	if err != nil {
		return nil, fmt.Errorf("leer carta de oferta: %w", err)
	}
	data := uc.letterData(c, time.Now())
	body, err := render(offerEmailTpl, data)
	if err != nil {
		return nil, err
	}
	email := Email{
		To:      c.Email,
		Subject: fmt.Sprintf("Offer Letter - %s Position", c.Position),
		Body:    body,
		Attachment: &Attachment{
			Name:    attachmentName(*offer.FilePath),
			Content: content,
		},
	}
	if err := uc.mailer.Send(octx, email); err != nil {
		uc.log.Warn().Err(err).Str("consultant_id", c.ID).Msg("fallo el envío de la carta de oferta")
		return nil, fmt.Errorf("enviar carta de oferta: %w", err)
	}

	err = uc.txRunner.Run(ctx, func(
		_ repository.ConsultantRepository,
		documentRepo repository.DocumentRepository,
		activityRepo repository.ActivityRepository,
	) error {
		now := time.Now()
		if err := applyDocumentStatus(ctx, documentRepo, activityRepo, offer, entity.DocumentSent, now); err != nil {
			return err
		}
		_, err := appendActivity(ctx, activityRepo, c.ID, entity.ActivityEmailSent,
			fmt.Sprintf("Offer letter sent to %s", c.Email), now)
		return err
	})
	if err != nil {
		return nil, err
	}
	uc.log.Info().Str("consultant_id", c.ID).Str("to", c.Email).Msg("carta de oferta enviada")
	return &dto.MessageResponse{Message: fmt.Sprintf("Offer letter sent to %s", c.Email)}, nil
}

// SendReminder envía un recordatorio con los documentos aún no recibidos.
// Si no hay pendientes no envía nada.
func (uc *OutreachUseCase) SendReminder(ctx context.Context, consultantID string) (*dto.ReminderResponse, error) {
	c, err := uc.getConsultant(ctx, consultantID)
	if err != nil {
		return nil, err
	}
	docs, err := uc.documentRepo.ListByConsultant(ctx, c.ID)
	if err != nil {
		return nil, err
	}
	pending := domainonboarding.PendingDocumentTypes(docs)
	if len(pending) == 0 {
		return &dto.ReminderResponse{Message: "No pending documents", Pending: []string{}}, nil
	}

	body, err := render(reminderEmailTpl, struct {
		Data    OfferLetterData
		Pending []string
	}{Data: uc.letterData(c, time.Now()), Pending: pending})
	if err != nil {
		return nil, err
	}

	octx, cancel := uc.bounded(ctx)
	defer cancel()
	if err := uc.mailer.Send(octx, Email{
		To:      c.Email,
		Subject: "Reminder: Onboarding Documents Still Needed",
		Body:    body,
	}); err != nil {
		uc.log.Warn().Err(err).Str("consultant_id", c.ID).Msg("fallo el envío del recordatorio")
		return nil, fmt.Errorf("enviar recordatorio: %w", err)
	}

	err = uc.txRunner.Run(ctx, func(
		_ repository.ConsultantRepository,
		_ repository.DocumentRepository,
		activityRepo repository.ActivityRepository,
	) error {
		_, err := appendActivity(ctx, activityRepo, c.ID, entity.ActivityReminderSent,
			fmt.Sprintf("Reminder sent to %s for %d docs", c.Email, len(pending)), time.Now())
		return err
	})
	if err != nil {
		return nil, err
	}
	uc.log.Info().Str("consultant_id", c.ID).Int("pending", len(pending)).Msg("recordatorio enviado")
	return &dto.ReminderResponse{
		Message: fmt.Sprintf("Reminder sent to %s", c.Email),
		Pending: pending,
		Sent:    true,
	}, nil
}

func (uc *OutreachUseCase) getConsultant(ctx context.Context, id string) (*entity.Consultant, error) {
	c, err := uc.consultantRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if c == nil {
		return nil, domain.ErrNotFound
	}
	return c, nil
}

func (uc *OutreachUseCase) bounded(ctx context.Context) (context.Context, context.CancelFunc) {
	if uc.cfg.Timeout <= 0 {
		return context.WithCancel(ctx)
	}
	return context.WithTimeout(ctx, uc.cfg.Timeout)
}

// letterData aplica los valores por defecto de la empresa sobre los datos del consultor.
func (uc *OutreachUseCase) letterData(c *entity.Consultant, now time.Time) OfferLetterData {
	first := c.Name
	if fields := strings.Fields(c.Name); len(fields) > 0 {
		first = fields[0]
	}
	return OfferLetterData{
		ConsultantName:     c.Name,
		FirstName:          first,
		Email:              c.Email,
		Position:           c.Position,
		Manager:            orDefault(c.Manager, uc.cfg.DefaultManager),
		StartDate:          c.StartDate,
		EndDate:            orDefault(c.EndDate, defaultEndDate),
		EmploymentType:     orDefault(c.EmploymentType, defaultEmploymentType),
		PayRate:            c.PayRate,
		CompanyName:        uc.cfg.CompanyName,
		HiringManager:      uc.cfg.HiringManager,
		HiringManagerTitle: uc.cfg.HiringManagerTitle,
		Location:           uc.cfg.Location,
		IssuedAt:           now,
		ResponseDeadline:   now.Add(responseWindow),
	}
}

func render(tpl *template.Template, data any) (string, error) {
	var buf bytes.Buffer
	if err := tpl.Execute(&buf, data); err != nil {
		return "", fmt.Errorf("plantilla %s: %w", tpl.Name(), err)
	}
	return buf.String(), nil
}

func orDefault(v, def string) string {
	if strings.TrimSpace(v) == "" {
		return def
	}
	return v
}

// attachmentName último segmento de la ruta (sirve para rutas locales y claves de objeto).
func attachmentName(path string) string {
	if i := strings.LastIndexAny(path, `/\`); i >= 0 {
		return path[i+1:]
	}
	return path
}
