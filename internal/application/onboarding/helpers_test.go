package onboarding_test

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Onboarding-api/internal/application/dto"
	"github.com/jhoicas/Onboarding-api/internal/application/onboarding"
	"github.com/jhoicas/Onboarding-api/internal/domain/entity"
	"github.com/jhoicas/Onboarding-api/internal/domain/repository"
	"github.com/jhoicas/Onboarding-api/internal/infrastructure/memory"
	"github.com/jhoicas/Onboarding-api/pkg/logger"
)

// ──────────────────────────────────────────────────────────────────────────────
// Fixture: casos de uso sobre el almacenamiento en memoria
// ──────────────────────────────────────────────────────────────────────────────

type fixture struct {
	store       *memory.Store
	consultants *onboarding.ConsultantUseCase
	documents   *onboarding.DocumentUseCase
	activities  *onboarding.ActivityUseCase
	progress    *onboarding.ProgressUseCase
	outreach    *onboarding.OutreachUseCase
	generator   *fakeGenerator
	files       *fakeFileStore
	mailer      *fakeMailer
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	return newFixtureWithTx(t, nil)
}

// newFixtureWithTx permite envolver el TxRunner (inyección de fallos).
func newFixtureWithTx(t *testing.T, wrap func(*memory.Store) onboarding.TxRunner) *fixture {
	t.Helper()
	store := memory.NewStore()
	var tx onboarding.TxRunner = store
	if wrap != nil {
		tx = wrap(store)
	}
	log := logger.Nop()
	f := &fixture{
		store:     store,
		generator: &fakeGenerator{},
		files:     newFakeFileStore(),
		mailer:    &fakeMailer{},
	}
	f.consultants = onboarding.NewConsultantUseCase(store.Consultants(), tx, log)
	f.documents = onboarding.NewDocumentUseCase(store.Consultants(), store.Documents(), tx, log)
	f.activities = onboarding.NewActivityUseCase(store.Consultants(), store.Activities(), tx)
	f.progress = onboarding.NewProgressUseCase(store.Consultants(), store.Documents(), store.Activities())
	f.outreach = onboarding.NewOutreachUseCase(
		store.Consultants(), store.Documents(), tx,
		f.generator, f.files, f.mailer,
		onboarding.OutreachConfig{
			CompanyName:        "Solutions Project Management, LLC",
			DefaultManager:     "Debbie Murray",
			HiringManager:      "Debbie Murray",
			HiringManagerTitle: "President",
			Location:           "Portland, Maine",
		},
		log,
	)
	return f
}

func noStandardDocs() *bool {
	v := false
	return &v
}

// addAda registra el consultor de referencia sin documentos estándar.
func (f *fixture) addAda(t *testing.T) *entity.Consultant {
	t.Helper()
	c, err := f.consultants.Add(context.Background(), dto.CreateConsultantRequest{
		Name:            "Ada Lovelace",
		Email:           "ada@x.com",
		Position:        "Analyst",
		StartDate:       "2026-11-02",
		AddStandardDocs: noStandardDocs(),
	})
	require.NoError(t, err)
	return c
}

// ──────────────────────────────────────────────────────────────────────────────
// Fakes de colaboradores externos
// ──────────────────────────────────────────────────────────────────────────────

type fakeGenerator struct {
	err      error
	lastData onboarding.OfferLetterData
}

func (g *fakeGenerator) GenerateOfferLetter(_ context.Context, data onboarding.OfferLetterData) (*onboarding.GeneratedFile, error) {
	if g.err != nil {
		return nil, g.err
	}
	g.lastData = data
	return &onboarding.GeneratedFile{FileName: "offer.pdf", ContentType: "application/pdf", Content: []byte("%PDF-offer")}, nil
}

func (g *fakeGenerator) GenerateChecklist(_ context.Context, _ onboarding.OfferLetterData) (*onboarding.GeneratedFile, error) {
	if g.err != nil {
		return nil, g.err
	}
	return &onboarding.GeneratedFile{FileName: "checklist.pdf", ContentType: "application/pdf", Content: []byte("%PDF-checklist")}, nil
}

type fakeFileStore struct {
	mu    sync.Mutex
	files map[string][]byte
}

func newFakeFileStore() *fakeFileStore { return &fakeFileStore{files: map[string][]byte{}} }

func (s *fakeFileStore) Save(_ context.Context, name string, content []byte, _ string) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	path := "generated/" + name
	s.files[path] = content
	return path, nil
}

func (s *fakeFileStore) Load(_ context.Context, path string) ([]byte, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	b, ok := s.files[path]
	if !ok {
		return nil, errors.New("archivo no existe")
	}
	return b, nil
}

type fakeMailer struct {
	err  error
	sent []onboarding.Email
}

func (m *fakeMailer) Send(_ context.Context, email onboarding.Email) error {
	if m.err != nil {
		return m.err
	}
	m.sent = append(m.sent, email)
	return nil
}

// ──────────────────────────────────────────────────────────────────────────────
// TxRunner que falla al registrar actividades
// ──────────────────────────────────────────────────────────────────────────────

var errActivityStorage = errors.New("activities: disco lleno")

type failingActivityRepo struct {
	repository.ActivityRepository
}

func (failingActivityRepo) Append(context.Context, *entity.Activity) error { return errActivityStorage }

type failingActivityTx struct {
	store *memory.Store
}

func (tx failingActivityTx) Run(ctx context.Context, fn func(
	repository.ConsultantRepository,
	repository.DocumentRepository,
	repository.ActivityRepository,
) error) error {
	return tx.store.Run(ctx, func(cr repository.ConsultantRepository, dr repository.DocumentRepository, ar repository.ActivityRepository) error {
		return fn(cr, dr, failingActivityRepo{ActivityRepository: ar})
	})
}

// ──────────────────────────────────────────────────────────────────────────────
// TxRunner que cuenta los bloqueos de fila pedidos dentro de la transacción
// ──────────────────────────────────────────────────────────────────────────────

type lockCounter struct {
	consultants []string
	documents   []string
}

type countingConsultantRepo struct {
	repository.ConsultantRepository
	locks *lockCounter
}

func (r countingConsultantRepo) LockByID(ctx context.Context, id string) (*entity.Consultant, error) {
	r.locks.consultants = append(r.locks.consultants, id)
	return r.ConsultantRepository.LockByID(ctx, id)
}

type countingDocumentRepo struct {
	repository.DocumentRepository
	locks *lockCounter
}

func (r countingDocumentRepo) LockByID(ctx context.Context, id string) (*entity.Document, error) {
	r.locks.documents = append(r.locks.documents, id)
	return r.DocumentRepository.LockByID(ctx, id)
}

type lockingTx struct {
	store *memory.Store
	locks *lockCounter
}

func (tx lockingTx) Run(ctx context.Context, fn func(
	repository.ConsultantRepository,
	repository.DocumentRepository,
	repository.ActivityRepository,
) error) error {
	return tx.store.Run(ctx, func(cr repository.ConsultantRepository, dr repository.DocumentRepository, ar repository.ActivityRepository) error {
		return fn(countingConsultantRepo{cr, tx.locks}, countingDocumentRepo{dr, tx.locks}, ar)
	})
}

// newLockingFixture arma la fixture sobre un TxRunner que registra cada LockByID.
func newLockingFixture(t *testing.T) (*fixture, *lockCounter) {
	t.Helper()
	locks := &lockCounter{}
	f := newFixtureWithTx(t, func(s *memory.Store) onboarding.TxRunner {
		return lockingTx{store: s, locks: locks}
	})
	return f, locks
}
