package repository

import (
	"context"
	"database/sql"
	"fmt"

	dbschema "github.com/osa911/clipdesk/internal/db/schema"
	"github.com/osa911/clipdesk/internal/models"

	entsql "entgo.io/ent/dialect/sql"
)

var campaignColumns = []string{"id", "name", "client_id", "team_id", "description", "start_date", "end_date", "is_active", "created_at", "updated_at"}

// campaignRepository implements CampaignRepository interface
type campaignRepository struct {
	conn
}

// NewCampaignRepository creates a new CampaignRepository instance
func NewCampaignRepository(c conn) CampaignRepository {
	return &campaignRepository{conn: c}
}

func (r *campaignRepository) Create(ctx context.Context, campaign *models.Campaign) (*models.Campaign, error) {
	created := *campaign
	created.ID = newID()
	created.IsActive = true
	created.CreatedAt = now()
	created.UpdatedAt = created.CreatedAt

	q := r.builder().Insert(dbschema.CampaignsTable).
		Columns(campaignColumns...).
		Values(created.ID, created.Name, created.ClientID, created.TeamID, strArg(created.Description),
			timeArg(created.StartDate), timeArg(created.EndDate), created.IsActive, created.CreatedAt, created.UpdatedAt)
	if err := r.exec(ctx, q); err != nil {
		return nil, fmt.Errorf("create campaign: %w", err)
	}
	return &created, nil
}

func (r *campaignRepository) Get(ctx context.Context, id string) (*models.Campaign, error) {
	b := r.builder()
	t := b.Table(dbschema.CampaignsTable)
	q := b.Select(columns(t, campaignColumns...)...).
		From(t).
		Where(entsql.EQ(t.C("id"), id))

	var campaign *models.Campaign
	err := r.queryOne(ctx, q, func(rows *entsql.Rows) error {
		var err error
		campaign, err = scanCampaign(rows)
		return err
	})
	if err != nil {
		return nil, err
	}
	return campaign, nil
}

func (r *campaignRepository) ListByClient(ctx context.Context, clientID string) ([]*models.Campaign, error) {
	return r.listBy(ctx, "client_id", clientID)
}

func (r *campaignRepository) ListByTeam(ctx context.Context, teamID string) ([]*models.Campaign, error) {
	return r.listBy(ctx, "team_id", teamID)
}

func (r *campaignRepository) listBy(ctx context.Context, column, value string) ([]*models.Campaign, error) {
	b := r.builder()
	t := b.Table(dbschema.CampaignsTable)
	q := b.Select(columns(t, campaignColumns...)...).
		From(t).
		Where(entsql.EQ(t.C(column), value)).
		OrderBy(entsql.Desc(t.C("created_at")))

	campaigns := []*models.Campaign{}
	err := r.query(ctx, q, func(rows *entsql.Rows) error {
		campaign, err := scanCampaign(rows)
		if err != nil {
			return err
		}
		campaigns = append(campaigns, campaign)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return campaigns, nil
}

func scanCampaign(rows *entsql.Rows) (*models.Campaign, error) {
	var (
		c          models.Campaign
		desc       sql.NullString
		start, end sql.NullTime
	)
	if err := rows.Scan(&c.ID, &c.Name, &c.ClientID, &c.TeamID, &desc, &start, &end, &c.IsActive, &c.CreatedAt, &c.UpdatedAt); err != nil {
		return nil, err
	}
	c.Description = strPtr(desc)
	c.StartDate = timePtr(start)
	c.EndDate = timePtr(end)
	return &c, nil
}

// scanJoinedCampaign reads a left-joined campaign; every column may be NULL.
func scanJoinedCampaign(id, name, clientID, teamID, desc sql.NullString, start, end sql.NullTime, active sql.NullBool, createdAt, updatedAt sql.NullTime) *models.Campaign {
	if !id.Valid {
		return nil
	}
	return &models.Campaign{
		ID:          id.String,
		Name:        name.String,
		ClientID:    clientID.String,
		TeamID:      teamID.String,
		Description: strPtr(desc),
		StartDate:   timePtr(start),
		EndDate:     timePtr(end),
		IsActive:    active.Bool,
		CreatedAt:   createdAt.Time,
		UpdatedAt:   updatedAt.Time,
	}
}
