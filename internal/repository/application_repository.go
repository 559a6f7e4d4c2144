package repository

import (
	"context"
	"database/sql"
	"fmt"

	dbschema "github.com/osa911/clipdesk/internal/db/schema"
	"github.com/osa911/clipdesk/internal/models"

	entsql "entgo.io/ent/dialect/sql"
)

var applicationColumns = []string{"id", "name", "email", "platform", "experience", "social_links", "why_choose_you", "status", "created_at", "updated_at"}

// applicationRepository implements ApplicationRepository interface
type applicationRepository struct {
	conn
}

// NewApplicationRepository creates a new ApplicationRepository instance
func NewApplicationRepository(c conn) ApplicationRepository {
	return &applicationRepository{conn: c}
}

func (r *applicationRepository) Create(ctx context.Context, application *models.Application) (*models.Application, error) {
	created := *application
	created.ID = newID()
	created.Status = models.ApplicationStatusPending
	created.CreatedAt = now()
	created.UpdatedAt = created.CreatedAt

	q := r.builder().Insert(dbschema.ApplicationsTable).
		Columns(applicationColumns...).
		Values(created.ID, created.Name, created.Email, strArg(created.Platform), strArg(created.Experience),
			strArg(created.SocialLinks), created.WhyChooseYou, string(created.Status), created.CreatedAt, created.UpdatedAt)
	if err := r.exec(ctx, q); err != nil {
		return nil, fmt.Errorf("create application: %w", err)
	}
	return &created, nil
}

func (r *applicationRepository) List(ctx context.Context) ([]*models.Application, error) {
	b := r.builder()
	t := b.Table(dbschema.ApplicationsTable)
	q := b.Select(columns(t, applicationColumns...)...).
		From(t).
		OrderBy(entsql.Desc(t.C("created_at")))

	applications := []*models.Application{}
	err := r.query(ctx, q, func(rows *entsql.Rows) error {
		var (
			a                           models.Application
			platform, experience, links sql.NullString
			status                      string
		)
		if err := rows.Scan(&a.ID, &a.Name, &a.Email, &platform, &experience, &links,
			&a.WhyChooseYou, &status, &a.CreatedAt, &a.UpdatedAt); err != nil {
			return err
		}
		a.Platform = strPtr(platform)
		a.Experience = strPtr(experience)
		a.SocialLinks = strPtr(links)
		a.Status = models.ApplicationStatus(status)
		applications = append(applications, &a)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return applications, nil
}

func (r *applicationRepository) UpdateStatus(ctx context.Context, id string, status models.ApplicationStatus) error {
	q := r.builder().Update(dbschema.ApplicationsTable).
		Set("status", string(status)).
		Set("updated_at", now()).
		Where(entsql.EQ("id", id))

	n, err := r.execAffected(ctx, q)
	if err != nil {
		return fmt.Errorf("update application %s status: %w", id, err)
	}
	if n == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *applicationRepository) CountByStatus(ctx context.Context, status models.ApplicationStatus) (int64, error) {
	b := r.builder()
	t := b.Table(dbschema.ApplicationsTable)
	q := b.Select(entsql.Count("*")).
		From(t).
		Where(entsql.EQ(t.C("status"), string(status)))
	return r.count(ctx, q)
}
