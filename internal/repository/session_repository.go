package repository

import (
	"context"
	"encoding/json"
	"fmt"

	dbschema "github.com/osa911/clipdesk/internal/db/schema"
	"github.com/osa911/clipdesk/internal/models"

	entsql "entgo.io/ent/dialect/sql"
)

// sessionRepository implements SessionRepository interface
type sessionRepository struct {
	conn
}

// NewSessionRepository creates a new SessionRepository instance
func NewSessionRepository(c conn) SessionRepository {
	return &sessionRepository{conn: c}
}

// Create stores a new session
func (r *sessionRepository) Create(ctx context.Context, session *models.Session) error {
	data, err := json.Marshal(session.Data)
	if err != nil {
		return fmt.Errorf("encode session data: %w", err)
	}
	q := r.builder().Insert(dbschema.SessionsTable).
		Columns("sid", "sess", "expire").
		Values(session.SID, string(data), session.Expire.UTC())
	if err := r.exec(ctx, q); err != nil {
		return fmt.Errorf("create session: %w", err)
	}
	return nil
}

// Get returns an active and non-expired session by sid
func (r *sessionRepository) Get(ctx context.Context, sid string) (*models.Session, error) {
	b := r.builder()
	t := b.Table(dbschema.SessionsTable)
	q := b.Select(t.C("sid"), t.C("sess"), t.C("expire")).
		From(t).
		Where(entsql.And(
			entsql.EQ(t.C("sid"), sid),
			entsql.GT(t.C("expire"), now()),
		))

	var (
		s   models.Session
		raw []byte
	)
	err := r.queryOne(ctx, q, func(rows *entsql.Rows) error {
		return rows.Scan(&s.SID, &raw, &s.Expire)
	})
	if err != nil {
		return nil, err
	}
	if err := json.Unmarshal(raw, &s.Data); err != nil {
		return nil, fmt.Errorf("decode session %s: %w", sid, err)
	}
	return &s, nil
}

// Delete removes a session; deleting an unknown sid is not an error
func (r *sessionRepository) Delete(ctx context.Context, sid string) error {
	q := r.builder().Delete(dbschema.SessionsTable).
		Where(entsql.EQ("sid", sid))
	return r.exec(ctx, q)
}

// DeleteExpired removes every session whose expiry has passed
func (r *sessionRepository) DeleteExpired(ctx context.Context) (int64, error) {
	q := r.builder().Delete(dbschema.SessionsTable).
		Where(entsql.LTE("expire", now()))
	return r.execAffected(ctx, q)
}
