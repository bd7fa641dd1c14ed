package onboarding_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/sync/errgroup"

	"github.com/jhoicas/Onboarding-api/internal/application/onboarding"
	"github.com/jhoicas/Onboarding-api/internal/domain"
	"github.com/jhoicas/Onboarding-api/internal/domain/entity"
	"github.com/jhoicas/Onboarding-api/pkg/logger"
)

func TestDocumentAdd_PorDefectoPending(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	c := f.addAda(t)

	doc, err := f.documents.Add(ctx, c.ID, "NDA", nil, "")
	require.NoError(t, err)
	assert.Equal(t, entity.DocumentPending, doc.Status)
	assert.Nil(t, doc.FilePath)
	assert.Nil(t, doc.SentDate)

	acts, err := f.activities.Recent(ctx, c.ID, 1)
	require.NoError(t, err)
	require.Len(t, acts, 1)
	assert.Equal(t, entity.ActivityDocumentAdded, acts[0].ActivityType)
	assert.Equal(t, "NDA added", acts[0].Description)
}

func TestDocumentAdd_Errores(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	c := f.addAda(t)

	_, err := f.documents.Add(ctx, "no-existe", "NDA", nil, "")
	assert.ErrorIs(t, err, domain.ErrNotFound)

	_, err = f.documents.Add(ctx, c.ID, "  ", nil, "")
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	_, err = f.documents.Add(ctx, c.ID, "NDA", nil, entity.DocumentStatus("Signed"))
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestDocumentAddStandard_CincoDocumentosSinProgreso(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	c := f.addAda(t)

	created, err := f.documents.AddStandard(ctx, c.ID)
	require.NoError(t, err)
	assert.Len(t, created, 5)

	p, err := f.progress.ConsultantProgress(ctx, c.ID)
	require.NoError(t, err)
	assert.Equal(t, 5, p.TotalDocuments)
	assert.Equal(t, 0, p.CompletedDocuments)
	assert.True(t, p.CompletionPercentage.IsZero())
}

func TestDocumentAddStandard_Idempotente(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	c := f.addAda(t)

	_, err := f.documents.AddStandard(ctx, c.ID)
	require.NoError(t, err)
	again, err := f.documents.AddStandard(ctx, c.ID)
	require.NoError(t, err)
	assert.Empty(t, again)

	docs, err := f.documents.ListFor(ctx, c.ID)
	require.NoError(t, err)
	assert.Len(t, docs, 5)
}

func TestDocumentAddStandard_SoloTiposFaltantes(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	c := f.addAda(t)

	_, err := f.documents.Add(ctx, c.ID, entity.DocTypeW4, nil, entity.DocumentCompleted)
	require.NoError(t, err)

	created, err := f.documents.AddStandard(ctx, c.ID)
	require.NoError(t, err)
	require.Len(t, created, 4)
	for _, d := range created {
		assert.NotEqual(t, entity.DocTypeW4, d.DocumentType)
	}
}

func TestDocumentUpdateStatus_CompletedSumaProgreso(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	c := f.addAda(t)
	docs, err := f.documents.AddStandard(ctx, c.ID)
	require.NoError(t, err)

	updated, err := f.documents.UpdateStatus(ctx, docs[0].ID, entity.DocumentCompleted)
	require.NoError(t, err)
	assert.NotNil(t, updated.ReceivedDate)

	p, err := f.progress.ConsultantProgress(ctx, c.ID)
	require.NoError(t, err)
	assert.Equal(t, 1, p.CompletedDocuments)
	assert.Equal(t, "20", p.CompletionPercentage.String())
	assert.LessOrEqual(t, p.CompletedDocuments, p.TotalDocuments)
}

func TestDocumentUpdateStatus_SentFijaFechaDeEnvio(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	c := f.addAda(t)
	doc, err := f.documents.Add(ctx, c.ID, entity.DocTypeOfferLetter, nil, "")
	require.NoError(t, err)

	updated, err := f.documents.UpdateStatus(ctx, doc.ID, entity.DocumentSent)
	require.NoError(t, err)
	require.NotNil(t, updated.SentDate)
	assert.Equal(t, updated.UpdatedAt, *updated.SentDate)
	assert.Nil(t, updated.ReceivedDate)

	acts, err := f.activities.Recent(ctx, c.ID, 1)
	require.NoError(t, err)
	assert.Equal(t, entity.ActivityDocumentUpdated, acts[0].ActivityType)
	assert.Equal(t, "Offer Letter status: Pending → Sent", acts[0].Description)
}

func TestDocumentUpdateStatus_ReceivedFijaFechaDeRecepcion(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	c := f.addAda(t)
	doc, err := f.documents.Add(ctx, c.ID, entity.DocTypeW4, nil, "")
	require.NoError(t, err)

	updated, err := f.documents.UpdateStatus(ctx, doc.ID, entity.DocumentReceived)
	require.NoError(t, err)
	require.NotNil(t, updated.ReceivedDate)
	assert.Equal(t, updated.UpdatedAt, *updated.ReceivedDate)
	assert.Nil(t, updated.SentDate)

	p, err := f.progress.ConsultantProgress(ctx, c.ID)
	require.NoError(t, err)
	assert.Equal(t, 0, p.CompletedDocuments)
}

func TestDocumentEscrituras_BloqueanLaFilaEnLaTransaccion(t *testing.T) {
	f, locks := newLockingFixture(t)
	ctx := context.Background()
	c := f.addAda(t)
	locks.consultants = nil

	doc, err := f.documents.Add(ctx, c.ID, "NDA", nil, "")
	require.NoError(t, err)
	_, err = f.documents.AddStandard(ctx, c.ID)
	require.NoError(t, err)
	_, err = f.documents.UpdateStatus(ctx, doc.ID, entity.DocumentSent)
	require.NoError(t, err)
	_, err = f.consultants.UpdateStatus(ctx, c.ID, entity.ConsultantInProgress)
	require.NoError(t, err)

	assert.Equal(t, []string{c.ID, c.ID, c.ID}, locks.consultants)
	assert.Equal(t, []string{doc.ID}, locks.documents)
}

func TestDocumentAddStandard_ConcurrenteNoDuplica(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	c := f.addAda(t)

	var g errgroup.Group
	for i := 0; i < 8; i++ {
		g.Go(func() error {
			_, err := f.documents.AddStandard(ctx, c.ID)
			return err
		})
	}
	require.NoError(t, g.Wait())

	docs, err := f.documents.ListFor(ctx, c.ID)
	require.NoError(t, err)
	assert.Len(t, docs, 5)
}

func TestDocumentUpdateStatus_Errores(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	c := f.addAda(t)
	doc, err := f.documents.Add(ctx, c.ID, "NDA", nil, "")
	require.NoError(t, err)

	_, err = f.documents.UpdateStatus(ctx, "no-existe", entity.DocumentSent)
	assert.ErrorIs(t, err, domain.ErrNotFound)

	_, err = f.documents.UpdateStatus(ctx, doc.ID, entity.DocumentStatus("Lost"))
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestDocumentUpdateStatus_FalloDeActividadNoConfirmaEstado(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	c := f.addAda(t)
	doc, err := f.documents.Add(ctx, c.ID, "NDA", nil, "")
	require.NoError(t, err)

	failing := onboarding.NewDocumentUseCase(f.store.Consultants(), f.store.Documents(), failingActivityTx{store: f.store}, logger.Nop())
	_, err = failing.UpdateStatus(ctx, doc.ID, entity.DocumentCompleted)
	require.ErrorIs(t, err, errActivityStorage)

	docs, err := f.documents.ListFor(ctx, c.ID)
	require.NoError(t, err)
	require.Len(t, docs, 1)
	assert.Equal(t, entity.DocumentPending, docs[0].Status)
	assert.Nil(t, docs[0].ReceivedDate)
}

func TestDocumentListFor_ConsultorInexistente(t *testing.T) {
	f := newFixture(t)
	_, err := f.documents.ListFor(context.Background(), "no-existe")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}
