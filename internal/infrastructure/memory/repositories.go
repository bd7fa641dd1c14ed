package memory

import (
	"context"
	"sort"

	"github.com/jhoicas/Onboarding-api/internal/domain"
	"github.com/jhoicas/Onboarding-api/internal/domain/entity"
	domainonboarding "github.com/jhoicas/Onboarding-api/internal/domain/onboarding"
	"github.com/jhoicas/Onboarding-api/internal/domain/repository"
)

var (
	_ repository.ConsultantRepository = (*ConsultantRepo)(nil)
	_ repository.DocumentRepository   = (*DocumentRepo)(nil)
	_ repository.ActivityRepository   = (*ActivityRepo)(nil)
	_ repository.UserRepository       = (*UserRepo)(nil)
)

// ── Consultores ──────────────────────────────────────────────────────────────

// ConsultantRepo consultores en memoria. No valida el estado (igual que la tabla).
type ConsultantRepo struct{ do access }

func (r *ConsultantRepo) Create(_ context.Context, c *entity.Consultant) error {
	return r.do(func(st *state) error {
		st.consultants = append(st.consultants, *c)
		return nil
	})
}

func (r *ConsultantRepo) GetByID(_ context.Context, id string) (*entity.Consultant, error) {
	var out *entity.Consultant
	err := r.do(func(st *state) error {
		for i := range st.consultants {
			if st.consultants[i].ID == id {
				c := st.consultants[i]
				out = &c
				return nil
			}
		}
		return nil
	})
	return out, err
}

// LockByID equivale a GetByID: Run ya retiene el mutex durante toda la transacción.
func (r *ConsultantRepo) LockByID(ctx context.Context, id string) (*entity.Consultant, error) {
	return r.GetByID(ctx, id)
}

func (r *ConsultantRepo) List(_ context.Context) ([]*entity.Consultant, error) {
	var out []*entity.Consultant
	err := r.do(func(st *state) error {
		out = make([]*entity.Consultant, 0, len(st.consultants))
		for i := range st.consultants {
			c := st.consultants[i]
			out = append(out, &c)
		}
		return nil
	})
	return out, err
}

func (r *ConsultantRepo) UpdateStatus(_ context.Context, c *entity.Consultant) error {
	return r.do(func(st *state) error {
		for i := range st.consultants {
			if st.consultants[i].ID == c.ID {
				st.consultants[i].Status = c.Status
				st.consultants[i].UpdatedAt = c.UpdatedAt
				return nil
			}
		}
		return domain.ErrNotFound
	})
}

func (r *ConsultantRepo) ListWithDocumentStats(_ context.Context) ([]repository.ConsultantProgressRow, error) {
	var out []repository.ConsultantProgressRow
	err := r.do(func(st *state) error {
		byConsultant := make(map[string][]*entity.Document)
		for i := range st.documents {
			d := st.documents[i]
			byConsultant[d.ConsultantID] = append(byConsultant[d.ConsultantID], &d)
		}
		out = make([]repository.ConsultantProgressRow, 0, len(st.consultants))
		for _, c := range st.consultants {
			total, completed := domainonboarding.DocumentStats(byConsultant[c.ID])
			out = append(out, repository.ConsultantProgressRow{
				Consultant:         c,
				TotalDocuments:     total,
				CompletedDocuments: completed,
				Progress:           domainonboarding.CompletionPercentage(completed, total),
			})
		}
		return nil
	})
	return out, err
}

// ── Documentos ───────────────────────────────────────────────────────────────

// DocumentRepo documentos en memoria.
type DocumentRepo struct{ do access }

func (r *DocumentRepo) Create(_ context.Context, d *entity.Document) error {
	return r.do(func(st *state) error {
		st.documents = append(st.documents, *d)
		return nil
	})
}

func (r *DocumentRepo) GetByID(_ context.Context, id string) (*entity.Document, error) {
	var out *entity.Document
	err := r.do(func(st *state) error {
		for i := range st.documents {
			if st.documents[i].ID == id {
				d := st.documents[i]
				out = &d
				return nil
			}
		}
		return nil
	})
	return out, err
}

func (r *DocumentRepo) LockByID(ctx context.Context, id string) (*entity.Document, error) {
	return r.GetByID(ctx, id)
}

func (r *DocumentRepo) Update(_ context.Context, d *entity.Document) error {
	return r.do(func(st *state) error {
		for i := range st.documents {
			if st.documents[i].ID != d.ID {
				continue
			}
			cur := &st.documents[i]
			cur.Status = d.Status
			cur.FilePath = d.FilePath
			cur.SentDate = d.SentDate
			cur.ReceivedDate = d.ReceivedDate
			cur.UpdatedAt = d.UpdatedAt
			return nil
		}
		return domain.ErrNotFound
	})
}

func (r *DocumentRepo) ListByConsultant(_ context.Context, consultantID string) ([]*entity.Document, error) {
	var out []*entity.Document
	err := r.do(func(st *state) error {
		out = []*entity.Document{}
		for i := range st.documents {
			if st.documents[i].ConsultantID == consultantID {
				d := st.documents[i]
				out = append(out, &d)
			}
		}
		return nil
	})
	return out, err
}

// ── Actividades ──────────────────────────────────────────────────────────────

// ActivityRepo log de actividades en memoria (solo agregar y leer).
type ActivityRepo struct{ do access }

func (r *ActivityRepo) Append(_ context.Context, a *entity.Activity) error {
	return r.do(func(st *state) error {
		st.seq++
		a.Seq = st.seq
		st.activities = append(st.activities, *a)
		return nil
	})
}

func (r *ActivityRepo) ListRecent(_ context.Context, consultantID string, limit int) ([]*entity.Activity, error) {
	var out []*entity.Activity
	err := r.do(func(st *state) error {
		out = []*entity.Activity{}
		for i := range st.activities {
			if st.activities[i].ConsultantID == consultantID {
				a := st.activities[i]
				out = append(out, &a)
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	sort.SliceStable(out, func(i, j int) bool {
		if !out[i].Timestamp.Equal(out[j].Timestamp) {
			return out[i].Timestamp.After(out[j].Timestamp)
		}
		return out[i].Seq > out[j].Seq
	})
	if limit > 0 && len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}

// ── Usuarios ─────────────────────────────────────────────────────────────────

// UserRepo usuarios del personal en memoria.
type UserRepo struct{ do access }

func (r *UserRepo) Create(_ context.Context, u *entity.User) error {
	return r.do(func(st *state) error {
		for _, existing := range st.users {
			if existing.Email == u.Email {
				return domain.ErrEmailAlreadyExists
			}
		}
		st.users = append(st.users, *u)
		return nil
	})
}

func (r *UserRepo) GetByID(_ context.Context, id string) (*entity.User, error) {
	return r.find(func(u *entity.User) bool { return u.ID == id })
}

func (r *UserRepo) GetByEmail(_ context.Context, email string) (*entity.User, error) {
	return r.find(func(u *entity.User) bool { return u.Email == email })
}

func (r *UserRepo) find(match func(u *entity.User) bool) (*entity.User, error) {
	var out *entity.User
	err := r.do(func(st *state) error {
		for i := range st.users {
			if match(&st.users[i]) {
				u := st.users[i]
				out = &u
				return nil
			}
		}
		return nil
	})
	return out, err
}
