package memory_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Onboarding-api/internal/domain"
	"github.com/jhoicas/Onboarding-api/internal/domain/entity"
	"github.com/jhoicas/Onboarding-api/internal/domain/repository"
	"github.com/jhoicas/Onboarding-api/internal/infrastructure/memory"
)

func TestActivityRepo_ListRecent_DesempatePorSecuencia(t *testing.T) {
	ctx := context.Background()
	store := memory.NewStore()
	repo := store.Activities()
	ts := time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC)

	first := &entity.Activity{ID: "a1", ConsultantID: "c1", ActivityType: "X", Timestamp: ts}
	second := &entity.Activity{ID: "a2", ConsultantID: "c1", ActivityType: "Y", Timestamp: ts}
	older := &entity.Activity{ID: "a0", ConsultantID: "c1", ActivityType: "Z", Timestamp: ts.Add(-time.Minute)}
	other := &entity.Activity{ID: "b1", ConsultantID: "c2", ActivityType: "X", Timestamp: ts}
	for _, a := range []*entity.Activity{first, second, older, other} {
		require.NoError(t, repo.Append(ctx, a))
	}
	assert.Less(t, first.Seq, second.Seq)

	list, err := repo.ListRecent(ctx, "c1", 10)
	require.NoError(t, err)
	require.Len(t, list, 3)
	assert.Equal(t, "a2", list[0].ID)
	assert.Equal(t, "a1", list[1].ID)
	assert.Equal(t, "a0", list[2].ID)

	limited, err := repo.ListRecent(ctx, "c1", 1)
	require.NoError(t, err)
	require.Len(t, limited, 1)
	assert.Equal(t, "a2", limited[0].ID)
}

func TestStore_Run_RollbackEnError(t *testing.T) {
	ctx := context.Background()
	store := memory.NewStore()
	boom := errors.New("boom")

	err := store.Run(ctx, func(cr repository.ConsultantRepository, _ repository.DocumentRepository, ar repository.ActivityRepository) error {
		require.NoError(t, cr.Create(ctx, &entity.Consultant{ID: "c1", Name: "Ana"}))
		require.NoError(t, ar.Append(ctx, &entity.Activity{ID: "a1", ConsultantID: "c1"}))
		return boom
	})
	require.ErrorIs(t, err, boom)

	c, err := store.Consultants().GetByID(ctx, "c1")
	require.NoError(t, err)
	assert.Nil(t, c)
	list, err := store.Activities().ListRecent(ctx, "c1", 10)
	require.NoError(t, err)
	assert.Empty(t, list)
}

func TestStore_Run_CommitPublicaCambios(t *testing.T) {
	ctx := context.Background()
	store := memory.NewStore()

	err := store.Run(ctx, func(cr repository.ConsultantRepository, dr repository.DocumentRepository, _ repository.ActivityRepository) error {
		if err := cr.Create(ctx, &entity.Consultant{ID: "c1", Name: "Ana", Status: entity.ConsultantPending}); err != nil {
			return err
		}
		return dr.Create(ctx, &entity.Document{ID: "d1", ConsultantID: "c1", DocumentType: "W-4", Status: entity.DocumentCompleted})
	})
	require.NoError(t, err)

	rows, err := store.Consultants().ListWithDocumentStats(ctx)
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, 1, rows[0].TotalDocuments)
	assert.Equal(t, 1, rows[0].CompletedDocuments)
	assert.Equal(t, "100", rows[0].Progress.String())
}

func TestRepos_DevuelvenCopias(t *testing.T) {
	ctx := context.Background()
	store := memory.NewStore()
	require.NoError(t, store.Consultants().Create(ctx, &entity.Consultant{ID: "c1", Status: entity.ConsultantPending}))

	c, err := store.Consultants().GetByID(ctx, "c1")
	require.NoError(t, err)
	c.Status = entity.ConsultantComplete

	again, err := store.Consultants().GetByID(ctx, "c1")
	require.NoError(t, err)
	assert.Equal(t, entity.ConsultantPending, again.Status)
}

func TestUserRepo_EmailDuplicado(t *testing.T) {
	ctx := context.Background()
	users := memory.NewStore().Users()
	require.NoError(t, users.Create(ctx, &entity.User{ID: "u1", Email: "rh@example.com"}))

	err := users.Create(ctx, &entity.User{ID: "u2", Email: "rh@example.com"})
	assert.ErrorIs(t, err, domain.ErrEmailAlreadyExists)

	u, err := users.GetByEmail(ctx, "rh@example.com")
	require.NoError(t, err)
	assert.Equal(t, "u1", u.ID)
}
