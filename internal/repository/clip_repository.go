package repository

import (
	"context"
	"database/sql"
	"fmt"

	dbschema "github.com/osa911/clipdesk/internal/db/schema"
	"github.com/osa911/clipdesk/internal/models"

	entsql "entgo.io/ent/dialect/sql"
)

var clipColumns = []string{
	"id", "title", "description", "file_path", "thumbnail_path", "campaign_id", "clipper_id",
	"status", "views", "likes", "shares", "platform", "platform_url", "created_at", "updated_at",
}

// clipRepository implements ClipRepository interface
type clipRepository struct {
	conn
}

// NewClipRepository creates a new ClipRepository instance
func NewClipRepository(c conn) ClipRepository {
	return &clipRepository{conn: c}
}

func (r *clipRepository) Create(ctx context.Context, clip *models.Clip) (*models.Clip, error) {
	created := *clip
	created.ID = newID()
	if created.Status == "" {
		created.Status = models.ClipStatusPending
	}
	created.CreatedAt = now()
	created.UpdatedAt = created.CreatedAt

	q := r.builder().Insert(dbschema.ClipsTable).
		Columns(clipColumns...).
		Values(created.ID, created.Title, strArg(created.Description), strArg(created.FilePath),
			strArg(created.ThumbnailPath), created.CampaignID, created.ClipperID, string(created.Status),
			created.Views, created.Likes, created.Shares, strArg(created.Platform), strArg(created.PlatformURL),
			created.CreatedAt, created.UpdatedAt)
	if err := r.exec(ctx, q); err != nil {
		return nil, fmt.Errorf("create clip: %w", err)
	}
	return &created, nil
}

func (r *clipRepository) Get(ctx context.Context, id string) (*models.Clip, error) {
	b := r.builder()
	t := b.Table(dbschema.ClipsTable)
	q := b.Select(columns(t, clipColumns...)...).
		From(t).
		Where(entsql.EQ(t.C("id"), id))

	var clip *models.Clip
	err := r.queryOne(ctx, q, func(rows *entsql.Rows) error {
		var err error
		clip, err = scanClip(rows)
		return err
	})
	if err != nil {
		return nil, err
	}
	return clip, nil
}

func (r *clipRepository) ListByCampaign(ctx context.Context, campaignID string) ([]*models.Clip, error) {
	return r.listBy(ctx, "campaign_id", campaignID)
}

func (r *clipRepository) ListByClipper(ctx context.Context, clipperID string) ([]*models.Clip, error) {
	return r.listBy(ctx, "clipper_id", clipperID)
}

func (r *clipRepository) listBy(ctx context.Context, column, value string) ([]*models.Clip, error) {
	b := r.builder()
	t := b.Table(dbschema.ClipsTable)
	q := b.Select(columns(t, clipColumns...)...).
		From(t).
		Where(entsql.EQ(t.C(column), value)).
		OrderBy(entsql.Desc(t.C("created_at")))

	clips := []*models.Clip{}
	err := r.query(ctx, q, func(rows *entsql.Rows) error {
		clip, err := scanClip(rows)
		if err != nil {
			return err
		}
		clips = append(clips, clip)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return clips, nil
}

func (r *clipRepository) ListPending(ctx context.Context) ([]*models.PendingClip, error) {
	b := r.builder()
	// Joined tables are aliased before columns are taken; ent renames unaliased ones on join.
	c := b.Table(dbschema.ClipsTable).As("c")
	u := b.Table(dbschema.UsersTable).As("u")
	p := b.Table(dbschema.CampaignsTable).As("p")

	selected := columns(c, clipColumns...)
	selected = append(selected, columns(u, userColumns...)...)
	selected = append(selected, columns(p, campaignColumns...)...)

	q := b.Select(selected...).
		From(c).
		LeftJoin(u).On(c.C("clipper_id"), u.C("id")).
		LeftJoin(p).On(c.C("campaign_id"), p.C("id")).
		Where(entsql.EQ(c.C("status"), string(models.ClipStatusPending))).
		OrderBy(entsql.Desc(c.C("created_at")))

	pending := []*models.PendingClip{}
	err := r.query(ctx, q, func(rows *entsql.Rows) error {
		var (
			pc                                    models.PendingClip
			desc, file, thumb, platform, url      sql.NullString
			status                                string
			uid, email, first, last, avatar, role sql.NullString
			uCreated, uUpdated                    sql.NullTime
			cid, cname, cclient, cteam, cdesc     sql.NullString
			cstart, cend, cCreated, cUpdated      sql.NullTime
			cactive                               sql.NullBool
		)
		err := rows.Scan(
			&pc.ID, &pc.Title, &desc, &file, &thumb, &pc.CampaignID, &pc.ClipperID,
			&status, &pc.Views, &pc.Likes, &pc.Shares, &platform, &url, &pc.CreatedAt, &pc.UpdatedAt,
			&uid, &email, &first, &last, &avatar, &role, &uCreated, &uUpdated,
			&cid, &cname, &cclient, &cteam, &cdesc, &cstart, &cend, &cactive, &cCreated, &cUpdated,
		)
		if err != nil {
			return err
		}
		pc.Description = strPtr(desc)
		pc.FilePath = strPtr(file)
		pc.ThumbnailPath = strPtr(thumb)
		pc.Platform = strPtr(platform)
		pc.PlatformURL = strPtr(url)
		pc.Status = models.ClipStatus(status)
		pc.Clipper = scanJoinedUser(uid, email, first, last, avatar, role, uCreated, uUpdated)
		pc.Campaign = scanJoinedCampaign(cid, cname, cclient, cteam, cdesc, cstart, cend, cactive, cCreated, cUpdated)
		pending = append(pending, &pc)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return pending, nil
}

func (r *clipRepository) UpdateStatus(ctx context.Context, id string, status models.ClipStatus) error {
	q := r.builder().Update(dbschema.ClipsTable).
		Set("status", string(status)).
		Set("updated_at", now()).
		Where(entsql.EQ("id", id))

	n, err := r.execAffected(ctx, q)
	if err != nil {
		return fmt.Errorf("update clip %s status: %w", id, err)
	}
	if n == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *clipRepository) CountByStatus(ctx context.Context, clipperID string) (models.ClipStatusCounts, error) {
	b := r.builder()
	t := b.Table(dbschema.ClipsTable)
	q := b.Select(t.C("status"), entsql.Count("*")).
		From(t).
		GroupBy(t.C("status"))
	if clipperID != "" {
		q.Where(entsql.EQ(t.C("clipper_id"), clipperID))
	}

	counts := models.ClipStatusCounts{}
	for _, s := range models.ClipStatuses {
		counts[s] = 0
	}
	err := r.query(ctx, q, func(rows *entsql.Rows) error {
		var (
			status string
			n      int64
		)
		if err := rows.Scan(&status, &n); err != nil {
			return err
		}
		counts[models.ClipStatus(status)] = n
		return nil
	})
	if err != nil {
		return nil, err
	}
	return counts, nil
}

func (r *clipRepository) SumViews(ctx context.Context, clipperID string) (int64, error) {
	b := r.builder()
	t := b.Table(dbschema.ClipsTable)
	q := b.Select("COALESCE(" + entsql.Sum(t.C("views")) + ", 0)").
		From(t).
		Where(entsql.EQ(t.C("clipper_id"), clipperID))
	return r.count(ctx, q)
}

func scanClip(rows *entsql.Rows) (*models.Clip, error) {
	var (
		c                                models.Clip
		desc, file, thumb, platform, url sql.NullString
		status                           string
	)
	err := rows.Scan(&c.ID, &c.Title, &desc, &file, &thumb, &c.CampaignID, &c.ClipperID,
		&status, &c.Views, &c.Likes, &c.Shares, &platform, &url, &c.CreatedAt, &c.UpdatedAt)
	if err != nil {
		return nil, err
	}
	c.Description = strPtr(desc)
	c.FilePath = strPtr(file)
	c.ThumbnailPath = strPtr(thumb)
	c.Platform = strPtr(platform)
	c.PlatformURL = strPtr(url)
	c.Status = models.ClipStatus(status)
	return &c, nil
}
