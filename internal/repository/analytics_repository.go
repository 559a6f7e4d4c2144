package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	dbschema "github.com/osa911/clipdesk/internal/db/schema"
	"github.com/osa911/clipdesk/internal/models"

	entsql "entgo.io/ent/dialect/sql"
)

var analyticsColumns = []string{"id", "clip_id", "platform", "views", "likes", "shares", "comments", "engagement_rate", "recorded_at"}

// analyticsRepository implements AnalyticsRepository interface
type analyticsRepository struct {
	conn
}

// NewAnalyticsRepository creates a new AnalyticsRepository instance
func NewAnalyticsRepository(c conn) AnalyticsRepository {
	return &analyticsRepository{conn: c}
}

func (r *analyticsRepository) Record(ctx context.Context, a *models.Analytics) (*models.Analytics, error) {
	recorded := *a
	recorded.ID = newID()
	if recorded.RecordedAt.IsZero() {
		recorded.RecordedAt = now()
	} else {
		recorded.RecordedAt = recorded.RecordedAt.UTC()
	}

	q := r.builder().Insert(dbschema.AnalyticsTable).
		Columns(analyticsColumns...).
		Values(recorded.ID, recorded.ClipID, recorded.Platform, recorded.Views, recorded.Likes,
			recorded.Shares, recorded.Comments, floatArg(recorded.EngagementRate), recorded.RecordedAt)
	if err := r.exec(ctx, q); err != nil {
		return nil, fmt.Errorf("record analytics for clip %s: %w", a.ClipID, err)
	}
	return &recorded, nil
}

func (r *analyticsRepository) ListByClip(ctx context.Context, clipID string) ([]*models.Analytics, error) {
	b := r.builder()
	t := b.Table(dbschema.AnalyticsTable)
	q := b.Select(columns(t, analyticsColumns...)...).
		From(t).
		Where(entsql.EQ(t.C("clip_id"), clipID)).
		OrderBy(t.C("platform"), t.C("recorded_at"))

	snapshots := []*models.Analytics{}
	err := r.query(ctx, q, func(rows *entsql.Rows) error {
		var (
			a    models.Analytics
			rate sql.NullFloat64
		)
		if err := rows.Scan(&a.ID, &a.ClipID, &a.Platform, &a.Views, &a.Likes,
			&a.Shares, &a.Comments, &rate, &a.RecordedAt); err != nil {
			return err
		}
		a.EngagementRate = floatPtr(rate)
		snapshots = append(snapshots, &a)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return snapshots, nil
}

func (r *analyticsRepository) PlatformTotals(ctx context.Context, clientID string, from, to time.Time) ([]models.PlatformTotals, error) {
	b := r.builder()
	a := b.Table(dbschema.AnalyticsTable).As("a")
	c := b.Table(dbschema.ClipsTable).As("c")
	p := b.Table(dbschema.CampaignsTable).As("p")
	q := b.Select(
		a.C("platform"),
		entsql.Sum(a.C("views")),
		entsql.Sum(a.C("likes")),
		entsql.Sum(a.C("shares")),
		entsql.Sum(a.C("comments")),
	).
		From(a).
		Join(c).On(a.C("clip_id"), c.C("id")).
		Join(p).On(c.C("campaign_id"), p.C("id")).
		Where(entsql.And(
			entsql.EQ(p.C("client_id"), clientID),
			entsql.GTE(a.C("recorded_at"), from.UTC()),
			entsql.LTE(a.C("recorded_at"), to.UTC()),
		)).
		GroupBy(a.C("platform")).
		OrderBy(a.C("platform"))

	totals := []models.PlatformTotals{}
	err := r.query(ctx, q, func(rows *entsql.Rows) error {
		var t models.PlatformTotals
		if err := rows.Scan(&t.Platform, &t.Views, &t.Likes, &t.Shares, &t.Comments); err != nil {
			return err
		}
		totals = append(totals, t)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return totals, nil
}

func (r *analyticsRepository) CountApprovedClips(ctx context.Context, clientID string) (int64, error) {
	b := r.builder()
	c := b.Table(dbschema.ClipsTable).As("c")
	p := b.Table(dbschema.CampaignsTable).As("p")
	q := b.Select(entsql.Count("*")).
		From(c).
		Join(p).On(c.C("campaign_id"), p.C("id")).
		Where(entsql.And(
			entsql.EQ(p.C("client_id"), clientID),
			entsql.EQ(c.C("status"), string(models.ClipStatusApproved)),
		))
	return r.count(ctx, q)
}
