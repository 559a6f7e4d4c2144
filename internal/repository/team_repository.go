package repository

import (
	"context"
	"database/sql"
	"fmt"

	dbschema "github.com/osa911/clipdesk/internal/db/schema"
	"github.com/osa911/clipdesk/internal/models"

	entsql "entgo.io/ent/dialect/sql"
)

var (
	teamColumns       = []string{"id", "name", "client_id", "manager_id", "description", "is_active", "created_at", "updated_at"}
	teamMemberColumns = []string{"id", "team_id", "clipper_id", "joined_at"}
)

// teamRepository implements TeamRepository interface
type teamRepository struct {
	conn
}

// NewTeamRepository creates a new TeamRepository instance
func NewTeamRepository(c conn) TeamRepository {
	return &teamRepository{conn: c}
}

func (r *teamRepository) Create(ctx context.Context, team *models.Team) (*models.Team, error) {
	created := *team
	created.ID = newID()
	created.IsActive = true
	created.CreatedAt = now()
	created.UpdatedAt = created.CreatedAt

	q := r.builder().Insert(dbschema.TeamsTable).
		Columns(teamColumns...).
		Values(created.ID, created.Name, created.ClientID, created.ManagerID,
			strArg(created.Description), created.IsActive, created.CreatedAt, created.UpdatedAt)
	if err := r.exec(ctx, q); err != nil {
		return nil, fmt.Errorf("create team: %w", err)
	}
	return &created, nil
}

func (r *teamRepository) Get(ctx context.Context, id string) (*models.Team, error) {
	b := r.builder()
	t := b.Table(dbschema.TeamsTable)
	q := b.Select(columns(t, teamColumns...)...).
		From(t).
		Where(entsql.EQ(t.C("id"), id))

	var team *models.Team
	err := r.queryOne(ctx, q, func(rows *entsql.Rows) error {
		var err error
		team, err = scanTeam(rows)
		return err
	})
	if err != nil {
		return nil, err
	}
	return team, nil
}

func (r *teamRepository) ListByClient(ctx context.Context, clientID string) ([]*models.Team, error) {
	return r.listBy(ctx, "client_id", clientID)
}

func (r *teamRepository) ListByManager(ctx context.Context, managerID string) ([]*models.Team, error) {
	return r.listBy(ctx, "manager_id", managerID)
}

func (r *teamRepository) listBy(ctx context.Context, column, value string) ([]*models.Team, error) {
	b := r.builder()
	t := b.Table(dbschema.TeamsTable)
	q := b.Select(columns(t, teamColumns...)...).
		From(t).
		Where(entsql.EQ(t.C(column), value)).
		OrderBy(entsql.Desc(t.C("created_at")))

	teams := []*models.Team{}
	err := r.query(ctx, q, func(rows *entsql.Rows) error {
		team, err := scanTeam(rows)
		if err != nil {
			return err
		}
		teams = append(teams, team)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return teams, nil
}

func (r *teamRepository) AddMember(ctx context.Context, teamID, clipperID string) (*models.TeamMember, error) {
	m := &models.TeamMember{
		ID:        newID(),
		TeamID:    teamID,
		ClipperID: clipperID,
		JoinedAt:  now(),
	}
	q := r.builder().Insert(dbschema.TeamMembersTable).
		Columns(teamMemberColumns...).
		Values(m.ID, m.TeamID, m.ClipperID, m.JoinedAt)
	if err := r.exec(ctx, q); err != nil {
		return nil, fmt.Errorf("add member to team %s: %w", teamID, err)
	}
	return m, nil
}

func (r *teamRepository) ListMembers(ctx context.Context, teamID string) ([]*models.TeamMemberWithClipper, error) {
	b := r.builder()
	tm := b.Table(dbschema.TeamMembersTable).As("tm")
	u := b.Table(dbschema.UsersTable).As("u")
	q := b.Select(append(columns(tm, teamMemberColumns...), columns(u, userColumns...)...)...).
		From(tm).
		LeftJoin(u).On(tm.C("clipper_id"), u.C("id")).
		Where(entsql.EQ(tm.C("team_id"), teamID)).
		OrderBy(tm.C("joined_at"))

	members := []*models.TeamMemberWithClipper{}
	err := r.query(ctx, q, func(rows *entsql.Rows) error {
		var (
			m                                     models.TeamMemberWithClipper
			uid, email, first, last, avatar, role sql.NullString
			createdAt, updatedAt                  sql.NullTime
		)
		if err := rows.Scan(&m.ID, &m.TeamID, &m.ClipperID, &m.JoinedAt,
			&uid, &email, &first, &last, &avatar, &role, &createdAt, &updatedAt); err != nil {
			return err
		}
		m.Clipper = scanJoinedUser(uid, email, first, last, avatar, role, createdAt, updatedAt)
		members = append(members, &m)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return members, nil
}

func (r *teamRepository) CountClippersByManager(ctx context.Context, managerID string) (int64, error) {
	b := r.builder()
	tm := b.Table(dbschema.TeamMembersTable).As("tm")
	t := b.Table(dbschema.TeamsTable).As("t")
	q := b.Select(entsql.Count(entsql.Distinct(tm.C("clipper_id")))).
		From(tm).
		Join(t).On(tm.C("team_id"), t.C("id")).
		Where(entsql.And(
			entsql.EQ(t.C("manager_id"), managerID),
			entsql.EQ(t.C("is_active"), true),
		))
	return r.count(ctx, q)
}

func scanTeam(rows *entsql.Rows) (*models.Team, error) {
	var (
		t    models.Team
		desc sql.NullString
	)
	if err := rows.Scan(&t.ID, &t.Name, &t.ClientID, &t.ManagerID, &desc, &t.IsActive, &t.CreatedAt, &t.UpdatedAt); err != nil {
		return nil, err
	}
	t.Description = strPtr(desc)
	return &t, nil
}
