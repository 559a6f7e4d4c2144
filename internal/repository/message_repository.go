package repository

import (
	"context"
	"fmt"

	dbschema "github.com/osa911/clipdesk/internal/db/schema"
	"github.com/osa911/clipdesk/internal/models"

	entsql "entgo.io/ent/dialect/sql"
)

var messageColumns = []string{"id", "sender_id", "recipient_id", "content", "is_read", "created_at"}

// messageRepository implements MessageRepository interface
type messageRepository struct {
	conn
}

// NewMessageRepository creates a new MessageRepository instance
func NewMessageRepository(c conn) MessageRepository {
	return &messageRepository{conn: c}
}

func (r *messageRepository) Create(ctx context.Context, message *models.Message) (*models.Message, error) {
	created := *message
	created.ID = newID()
	created.IsRead = false
	created.CreatedAt = now()

	q := r.builder().Insert(dbschema.MessagesTable).
		Columns(messageColumns...).
		Values(created.ID, created.SenderID, created.RecipientID, created.Content, created.IsRead, created.CreatedAt)
	if err := r.exec(ctx, q); err != nil {
		return nil, fmt.Errorf("create message: %w", err)
	}
	return &created, nil
}

func (r *messageRepository) Get(ctx context.Context, id string) (*models.Message, error) {
	b := r.builder()
	t := b.Table(dbschema.MessagesTable)
	q := b.Select(columns(t, messageColumns...)...).
		From(t).
		Where(entsql.EQ(t.C("id"), id))

	var m models.Message
	err := r.queryOne(ctx, q, func(rows *entsql.Rows) error {
		return rows.Scan(&m.ID, &m.SenderID, &m.RecipientID, &m.Content, &m.IsRead, &m.CreatedAt)
	})
	if err != nil {
		return nil, err
	}
	return &m, nil
}

func (r *messageRepository) Conversation(ctx context.Context, userA, userB string) ([]*models.Message, error) {
	b := r.builder()
	t := b.Table(dbschema.MessagesTable)
	q := b.Select(columns(t, messageColumns...)...).
		From(t).
		Where(entsql.Or(
			entsql.And(entsql.EQ(t.C("sender_id"), userA), entsql.EQ(t.C("recipient_id"), userB)),
			entsql.And(entsql.EQ(t.C("sender_id"), userB), entsql.EQ(t.C("recipient_id"), userA)),
		)).
		OrderBy(entsql.Desc(t.C("created_at")))

	messages := []*models.Message{}
	err := r.query(ctx, q, func(rows *entsql.Rows) error {
		var m models.Message
		if err := rows.Scan(&m.ID, &m.SenderID, &m.RecipientID, &m.Content, &m.IsRead, &m.CreatedAt); err != nil {
			return err
		}
		messages = append(messages, &m)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return messages, nil
}

func (r *messageRepository) MarkRead(ctx context.Context, id string) error {
	q := r.builder().Update(dbschema.MessagesTable).
		Set("is_read", true).
		Where(entsql.EQ("id", id))

	n, err := r.execAffected(ctx, q)
	if err != nil {
		return fmt.Errorf("mark message %s read: %w", id, err)
	}
	if n == 0 {
		return ErrNotFound
	}
	return nil
}
