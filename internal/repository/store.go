package repository

import (
	"context"
	"database/sql"
	"time"

	"github.com/osa911/clipdesk/internal/db"

	entsql "entgo.io/ent/dialect/sql"
	"github.com/google/uuid"
)

// Store groups every repository behind one injectable value.
type Store struct {
	Users        UserRepository
	Teams        TeamRepository
	Campaigns    CampaignRepository
	Clips        ClipRepository
	Applications ApplicationRepository
	Analytics    AnalyticsRepository
	Messages     MessageRepository
	Sessions     SessionRepository
}

// NewStore builds all repositories on top of one database handle.
func NewStore(database *db.Database) *Store {
	c := conn{drv: database.Driver}
	return &Store{
		Users:        NewUserRepository(c),
		Teams:        NewTeamRepository(c),
		Campaigns:    NewCampaignRepository(c),
		Clips:        NewClipRepository(c),
		Applications: NewApplicationRepository(c),
		Analytics:    NewAnalyticsRepository(c),
		Messages:     NewMessageRepository(c),
		Sessions:     NewSessionRepository(c),
	}
}

// conn runs ent-built statements against the shared driver.
type conn struct {
	drv *entsql.Driver
}

func (c conn) builder() *entsql.DialectBuilder {
	return entsql.Dialect(c.drv.Dialect())
}

func (c conn) exec(ctx context.Context, q entsql.Querier) error {
	query, args := q.Query()
	return translate(c.drv.Exec(ctx, query, args, nil))
}

// execAffected runs q and reports how many rows it touched.
func (c conn) execAffected(ctx context.Context, q entsql.Querier) (int64, error) {
	query, args := q.Query()
	var res sql.Result
	if err := c.drv.Exec(ctx, query, args, &res); err != nil {
		return 0, translate(err)
	}
	return res.RowsAffected()
}

// query runs q and calls scan once per row. Rows are closed before returning.
func (c conn) query(ctx context.Context, q entsql.Querier, scan func(*entsql.Rows) error) error {
	query, args := q.Query()
	rows := &entsql.Rows{}
	if err := c.drv.Query(ctx, query, args, rows); err != nil {
		return translate(err)
	}
	defer rows.Close()

	for rows.Next() {
		if err := scan(rows); err != nil {
			return err
		}
	}
	return rows.Err()
}

// queryOne is query for statements expected to return exactly one row.
func (c conn) queryOne(ctx context.Context, q entsql.Querier, scan func(*entsql.Rows) error) error {
	found := false
	err := c.query(ctx, q, func(rows *entsql.Rows) error {
		if found {
			return nil
		}
		found = true
		return scan(rows)
	})
	if err != nil {
		return err
	}
	if !found {
		return ErrNotFound
	}
	return nil
}

func (c conn) count(ctx context.Context, q entsql.Querier) (int64, error) {
	var n int64
	err := c.queryOne(ctx, q, func(rows *entsql.Rows) error {
		return rows.Scan(&n)
	})
	return n, err
}

func newID() string {
	return uuid.NewString()
}

func now() time.Time {
	return time.Now().UTC()
}

// nullable helpers translate between optional model fields and SQL values

func strPtr(ns sql.NullString) *string {
	if !ns.Valid {
		return nil
	}
	s := ns.String
	return &s
}

func timePtr(nt sql.NullTime) *time.Time {
	if !nt.Valid {
		return nil
	}
	t := nt.Time
	return &t
}

func floatPtr(nf sql.NullFloat64) *float64 {
	if !nf.Valid {
		return nil
	}
	f := nf.Float64
	return &f
}

func strArg(s *string) any {
	if s == nil {
		return nil
	}
	return *s
}

func timeArg(t *time.Time) any {
	if t == nil {
		return nil
	}
	return t.UTC()
}

func floatArg(f *float64) any {
	if f == nil {
		return nil
	}
	return *f
}

// columns qualifies names with the given table.
func columns(t *entsql.SelectTable, names ...string) []string {
	out := make([]string, len(names))
	for i, n := range names {
		out[i] = t.C(n)
	}
	return out
}
