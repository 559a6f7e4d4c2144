package repository

import (
	"context"
	"database/sql"
	"fmt"

	dbschema "github.com/osa911/clipdesk/internal/db/schema"
	"github.com/osa911/clipdesk/internal/models"

	entsql "entgo.io/ent/dialect/sql"
)

var userColumns = []string{"id", "email", "first_name", "last_name", "profile_image_url", "role", "created_at", "updated_at"}

// userRepository implements UserRepository interface
type userRepository struct {
	conn
}

// NewUserRepository creates a new UserRepository instance
func NewUserRepository(c conn) UserRepository {
	return &userRepository{conn: c}
}

func (r *userRepository) Get(ctx context.Context, id string) (*models.User, error) {
	b := r.builder()
	t := b.Table(dbschema.UsersTable)
	q := b.Select(columns(t, userColumns...)...).
		From(t).
		Where(entsql.EQ(t.C("id"), id))

	var u *models.User
	err := r.queryOne(ctx, q, func(rows *entsql.Rows) error {
		var err error
		u, err = scanUser(rows)
		return err
	})
	if err != nil {
		return nil, err
	}
	return u, nil
}

func (r *userRepository) Upsert(ctx context.Context, user *models.User) (*models.User, error) {
	if user.ID == "" {
		user.ID = newID()
	}
	role := user.Role
	if role == "" {
		role = models.DefaultRole
	}
	ts := now()

	q := r.builder().Insert(dbschema.UsersTable).
		Columns(userColumns...).
		Values(user.ID, strArg(user.Email), strArg(user.FirstName), strArg(user.LastName),
			strArg(user.ProfileImageURL), string(role), ts, ts).
		OnConflict(
			entsql.ConflictColumns("id"),
			entsql.ResolveWith(func(s *entsql.UpdateSet) {
				s.SetExcluded("email")
				s.SetExcluded("first_name")
				s.SetExcluded("last_name")
				s.SetExcluded("profile_image_url")
				s.SetExcluded("updated_at")
			}),
		)
	if err := r.exec(ctx, q); err != nil {
		return nil, fmt.Errorf("upsert user %s: %w", user.ID, err)
	}

	return r.Get(ctx, user.ID)
}

func (r *userRepository) SetRole(ctx context.Context, id string, role models.Role) error {
	q := r.builder().Update(dbschema.UsersTable).
		Set("role", string(role)).
		Set("updated_at", now()).
		Where(entsql.EQ("id", id))

	n, err := r.execAffected(ctx, q)
	if err != nil {
		return err
	}
	if n == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *userRepository) CountByRole(ctx context.Context) (map[models.Role]int64, error) {
	b := r.builder()
	t := b.Table(dbschema.UsersTable)
	q := b.Select(t.C("role"), entsql.Count("*")).
		From(t).
		GroupBy(t.C("role"))

	counts := make(map[models.Role]int64, len(models.Roles))
	err := r.query(ctx, q, func(rows *entsql.Rows) error {
		var (
			role string
			n    int64
		)
		if err := rows.Scan(&role, &n); err != nil {
			return err
		}
		counts[models.Role(role)] = n
		return nil
	})
	return counts, err
}

func scanUser(rows *entsql.Rows) (*models.User, error) {
	var (
		u                          models.User
		email, first, last, avatar sql.NullString
		role                       string
	)
	if err := rows.Scan(&u.ID, &email, &first, &last, &avatar, &role, &u.CreatedAt, &u.UpdatedAt); err != nil {
		return nil, err
	}
	u.Email = strPtr(email)
	u.FirstName = strPtr(first)
	u.LastName = strPtr(last)
	u.ProfileImageURL = strPtr(avatar)
	u.Role = models.Role(role)
	return &u, nil
}

// scanJoinedUser reads a left-joined user; every column may be NULL.
func scanJoinedUser(id, email, first, last, avatar, role sql.NullString, createdAt, updatedAt sql.NullTime) *models.User {
	if !id.Valid {
		return nil
	}
	return &models.User{
		ID:              id.String,
		Email:           strPtr(email),
		FirstName:       strPtr(first),
		LastName:        strPtr(last),
		ProfileImageURL: strPtr(avatar),
		Role:            models.Role(role.String),
		CreatedAt:       createdAt.Time,
		UpdatedAt:       updatedAt.Time,
	}
}
