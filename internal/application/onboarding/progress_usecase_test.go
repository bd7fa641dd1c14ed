package onboarding_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Onboarding-api/internal/domain"
	"github.com/jhoicas/Onboarding-api/internal/domain/entity"
)

func TestConsultantProgress_SinDocumentos(t *testing.T) {
	f := newFixture(t)
	c := f.addAda(t)

	p, err := f.progress.ConsultantProgress(context.Background(), c.ID)
	require.NoError(t, err)
	assert.Equal(t, 0, p.TotalDocuments)
	assert.True(t, p.CompletionPercentage.IsZero())
	assert.Empty(t, p.Documents)
	require.Len(t, p.Activities, 1)
	assert.Equal(t, c.ID, p.Consultant.ID)
}

func TestConsultantProgress_NoExiste(t *testing.T) {
	f := newFixture(t)
	p, err := f.progress.ConsultantProgress(context.Background(), "no-existe")
	assert.Nil(t, p)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestConsultantProgress_LimitaActividades(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	c := f.addAda(t)
	for i := 0; i < 25; i++ {
		_, err := f.activities.Append(ctx, c.ID, "Note", "nota")
		require.NoError(t, err)
	}

	p, err := f.progress.ConsultantProgress(ctx, c.ID)
	require.NoError(t, err)
	assert.Len(t, p.Activities, 20)
}

func TestConsultantProgress_RedondeoDosDecimales(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	c := f.addAda(t)
	for _, docType := range []string{"A", "B", "C"} {
		status := entity.DocumentPending
		if docType == "A" {
			status = entity.DocumentCompleted
		}
		_, err := f.documents.Add(ctx, c.ID, docType, nil, status)
		require.NoError(t, err)
	}

	p, err := f.progress.ConsultantProgress(ctx, c.ID)
	require.NoError(t, err)
	assert.Equal(t, "33.33", p.CompletionPercentage.String())
}

func TestGlobalSummary_CambioDeEstado(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	c := f.addAda(t)
	f.addAda(t)

	before, err := f.progress.GlobalSummary(ctx)
	require.NoError(t, err)
	assert.Equal(t, 2, before.Total)
	assert.Equal(t, 2, before.Pending)

	_, err = f.consultants.UpdateStatus(ctx, c.ID, entity.ConsultantInProgress)
	require.NoError(t, err)

	after, err := f.progress.GlobalSummary(ctx)
	require.NoError(t, err)
	assert.Equal(t, before.Total, after.Total)
	assert.Equal(t, before.Pending-1, after.Pending)
	assert.Equal(t, before.InProgress+1, after.InProgress)
	assert.Equal(t, 0, after.Complete)
}

func TestGlobalSummary_EstadoNoCanonicoNoCuenta(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	f.addAda(t)
	now := time.Now()
	require.NoError(t, f.store.Consultants().Create(ctx, &entity.Consultant{
		ID: "legacy-1", Name: "Legacy", Email: "l@x.com", Position: "Ops",
		Status: entity.ConsultantStatus("Onboarding"), CreatedAt: now, UpdatedAt: now,
	}))

	s, err := f.progress.GlobalSummary(ctx)
	require.NoError(t, err)
	assert.Equal(t, 2, s.Total)
	assert.Equal(t, 1, s.Pending)
	assert.Equal(t, 0, s.InProgress)
	assert.Equal(t, 0, s.Complete)
	assert.Less(t, s.Pending+s.InProgress+s.Complete, s.Total)
}

func TestListWithProgress(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	c := f.addAda(t)
	docs, err := f.documents.AddStandard(ctx, c.ID)
	require.NoError(t, err)
	_, err = f.documents.UpdateStatus(ctx, docs[1].ID, entity.DocumentCompleted)
	require.NoError(t, err)

	list, err := f.progress.ListWithProgress(ctx)
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, c.ID, list[0].ID)
	assert.Equal(t, 5, list[0].DocTotal)
	assert.Equal(t, 1, list[0].DocCompleted)
	assert.Equal(t, "20", list[0].DocProgress.String())
}

func TestActivityRecent_ConsultorInexistente(t *testing.T) {
	f := newFixture(t)
	_, err := f.activities.Recent(context.Background(), "no-existe", 5)
	assert.ErrorIs(t, err, domain.ErrNotFound)

	_, err = f.activities.Append(context.Background(), "no-existe", "Note", "x")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}
