package repository_test

import (
	"context"
	"testing"
	"time"

	"github.com/osa911/clipdesk/internal/db/dbtest"
	"github.com/osa911/clipdesk/internal/models"
	"github.com/osa911/clipdesk/internal/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newStore(t *testing.T) *repository.Store {
	t.Helper()
	return repository.NewStore(dbtest.New(t))
}

func str(s string) *string { return &s }

func seedUser(t *testing.T, s *repository.Store, id string, role models.Role) *models.User {
	t.Helper()
	u, err := s.Users.Upsert(context.Background(), &models.User{
		ID:        id,
		Email:     str(id + "@example.com"),
		FirstName: str(id),
		Role:      role,
	})
	require.NoError(t, err)
	return u
}

// fixture builds client -> team -> campaign -> clip
type fixture struct {
	client, manager, clipper *models.User
	team                     *models.Team
	campaign                 *models.Campaign
	clip                     *models.Clip
}

func seed(t *testing.T, s *repository.Store) fixture {
	t.Helper()
	ctx := context.Background()

	f := fixture{
		client:  seedUser(t, s, "client-1", models.RoleClient),
		manager: seedUser(t, s, "manager-1", models.RoleManager),
		clipper: seedUser(t, s, "clipper-1", models.RoleClipper),
	}

	var err error
	f.team, err = s.Teams.Create(ctx, &models.Team{Name: "Alpha", ClientID: f.client.ID, ManagerID: f.manager.ID})
	require.NoError(t, err)
	f.campaign, err = s.Campaigns.Create(ctx, &models.Campaign{Name: "Launch", ClientID: f.client.ID, TeamID: f.team.ID})
	require.NoError(t, err)
	f.clip, err = s.Clips.Create(ctx, &models.Clip{Title: "First cut", CampaignID: f.campaign.ID, ClipperID: f.clipper.ID})
	require.NoError(t, err)
	return f
}

func TestUserUpsert(t *testing.T) {
	s := newStore(t)
	ctx := context.Background()

	first, err := s.Users.Upsert(ctx, &models.User{ID: "u1", Email: str("old@example.com"), FirstName: str("Ann")})
	require.NoError(t, err)
	assert.Equal(t, models.RoleClipper, first.Role)
	assert.Equal(t, "old@example.com", *first.Email)

	time.Sleep(10 * time.Millisecond)

	second, err := s.Users.Upsert(ctx, &models.User{ID: "u1", Email: str("new@example.com"), Role: models.RoleAdmin})
	require.NoError(t, err)
	assert.Equal(t, "new@example.com", *second.Email)
	assert.Nil(t, second.FirstName)
	assert.Equal(t, models.RoleClipper, second.Role, "role is not touched by a profile sync")
	assert.True(t, first.CreatedAt.Equal(second.CreatedAt))
	assert.True(t, second.UpdatedAt.After(first.UpdatedAt))

	counts, err := s.Users.CountByRole(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(1), counts[models.RoleClipper])
}

func TestUserSetRole(t *testing.T) {
	s := newStore(t)
	ctx := context.Background()
	seedUser(t, s, "u1", "")

	require.NoError(t, s.Users.SetRole(ctx, "u1", models.RoleManager))
	u, err := s.Users.Get(ctx, "u1")
	require.NoError(t, err)
	assert.Equal(t, models.RoleManager, u.Role)

	assert.ErrorIs(t, s.Users.SetRole(ctx, "missing", models.RoleAdmin), repository.ErrNotFound)

	_, err = s.Users.Get(ctx, "missing")
	assert.ErrorIs(t, err, repository.ErrNotFound)
}

func TestCreateDefaults(t *testing.T) {
	s := newStore(t)
	f := seed(t, s)

	assert.NotEmpty(t, f.team.ID)
	assert.True(t, f.team.IsActive)
	assert.True(t, f.campaign.IsActive)
	assert.Equal(t, models.ClipStatusPending, f.clip.Status)
	assert.Zero(t, f.clip.Views)

	stored, err := s.Clips.Get(context.Background(), f.clip.ID)
	require.NoError(t, err)
	assert.Equal(t, f.clip.Title, stored.Title)
	assert.Equal(t, models.ClipStatusPending, stored.Status)
}

func TestForeignKeyViolation(t *testing.T) {
	s := newStore(t)
	ctx := context.Background()
	client := seedUser(t, s, "client-1", models.RoleClient)

	_, err := s.Teams.Create(ctx, &models.Team{Name: "Orphan", ClientID: client.ID, ManagerID: "nobody"})
	assert.ErrorIs(t, err, repository.ErrForeignKey)

	_, err = s.Clips.Create(ctx, &models.Clip{Title: "x", CampaignID: "nope", ClipperID: client.ID})
	assert.ErrorIs(t, err, repository.ErrForeignKey)
}

func TestTeamMembers(t *testing.T) {
	s := newStore(t)
	ctx := context.Background()
	f := seed(t, s)
	other := seedUser(t, s, "clipper-2", models.RoleClipper)

	_, err := s.Teams.AddMember(ctx, f.team.ID, f.clipper.ID)
	require.NoError(t, err)
	_, err = s.Teams.AddMember(ctx, f.team.ID, other.ID)
	require.NoError(t, err)

	_, err = s.Teams.AddMember(ctx, f.team.ID, f.clipper.ID)
	assert.ErrorIs(t, err, repository.ErrDuplicate)

	members, err := s.Teams.ListMembers(ctx, f.team.ID)
	require.NoError(t, err)
	require.Len(t, members, 2)
	for _, m := range members {
		require.NotNil(t, m.Clipper)
		assert.Equal(t, m.ClipperID, m.Clipper.ID)
	}

	n, err := s.Teams.CountClippersByManager(ctx, f.manager.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(2), n)

	teams, err := s.Teams.ListByManager(ctx, f.manager.ID)
	require.NoError(t, err)
	assert.Len(t, teams, 1)

	teams, err = s.Teams.ListByClient(ctx, f.manager.ID)
	require.NoError(t, err)
	assert.Empty(t, teams)
}

func TestClipStatusAndPending(t *testing.T) {
	s := newStore(t)
	ctx := context.Background()
	f := seed(t, s)
	time.Sleep(5 * time.Millisecond)

	second, err := s.Clips.Create(ctx, &models.Clip{Title: "Second cut", CampaignID: f.campaign.ID, ClipperID: f.clipper.ID})
	require.NoError(t, err)

	pending, err := s.Clips.ListPending(ctx)
	require.NoError(t, err)
	require.Len(t, pending, 2)
	assert.Equal(t, second.ID, pending[0].ID, "newest first")
	require.NotNil(t, pending[0].Clipper)
	require.NotNil(t, pending[0].Campaign)
	assert.Equal(t, f.clipper.ID, pending[0].Clipper.ID)
	assert.Equal(t, f.campaign.Name, pending[0].Campaign.Name)

	require.NoError(t, s.Clips.UpdateStatus(ctx, f.clip.ID, models.ClipStatusApproved))
	assert.ErrorIs(t, s.Clips.UpdateStatus(ctx, "missing", models.ClipStatusApproved), repository.ErrNotFound)

	pending, err = s.Clips.ListPending(ctx)
	require.NoError(t, err)
	require.Len(t, pending, 1)
	assert.Equal(t, second.ID, pending[0].ID)

	counts, err := s.Clips.CountByStatus(ctx, f.clipper.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(1), counts[models.ClipStatusApproved])
	assert.Equal(t, int64(1), counts[models.ClipStatusPending])
	assert.Equal(t, int64(0), counts[models.ClipStatusRejected])
	assert.Equal(t, int64(2), counts.Total())

	clips, err := s.Clips.ListByCampaign(ctx, f.campaign.ID)
	require.NoError(t, err)
	assert.Len(t, clips, 2)

	views, err := s.Clips.SumViews(ctx, "nobody")
	require.NoError(t, err)
	assert.Zero(t, views)
}

func TestApplications(t *testing.T) {
	s := newStore(t)
	ctx := context.Background()

	a, err := s.Applications.Create(ctx, &models.Application{Name: "Jo", Email: "jo@example.com", WhyChooseYou: "speed"})
	require.NoError(t, err)
	assert.Equal(t, models.ApplicationStatusPending, a.Status)

	require.NoError(t, s.Applications.UpdateStatus(ctx, a.ID, models.ApplicationStatusApproved))
	assert.ErrorIs(t, s.Applications.UpdateStatus(ctx, "missing", models.ApplicationStatusApproved), repository.ErrNotFound)

	list, err := s.Applications.List(ctx)
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, models.ApplicationStatusApproved, list[0].Status)

	n, err := s.Applications.CountByStatus(ctx, models.ApplicationStatusPending)
	require.NoError(t, err)
	assert.Zero(t, n)
}

func TestAnalyticsTotals(t *testing.T) {
	s := newStore(t)
	ctx := context.Background()
	f := seed(t, s)
	now := time.Now().UTC()

	record := func(platform string, views, likes int, at time.Time) {
		_, err := s.Analytics.Record(ctx, &models.Analytics{
			ClipID: f.clip.ID, Platform: platform, Views: views, Likes: likes, RecordedAt: at,
		})
		require.NoError(t, err)
	}
	record("tiktok", 100, 10, now.Add(-time.Hour))
	record("tiktok", 50, 5, now.Add(-48*time.Hour))
	record("youtube", 25, 1, now.Add(-2*time.Hour))
	record("youtube", 1000, 100, now.Add(-60*24*time.Hour))

	totals, err := s.Analytics.PlatformTotals(ctx, f.client.ID, now.AddDate(0, 0, -30), now)
	require.NoError(t, err)
	require.Len(t, totals, 2)
	assert.Equal(t, models.PlatformTotals{Platform: "tiktok", Views: 150, Likes: 15}, totals[0])
	assert.Equal(t, models.PlatformTotals{Platform: "youtube", Views: 25, Likes: 1}, totals[1])

	totals, err = s.Analytics.PlatformTotals(ctx, f.manager.ID, now.AddDate(0, 0, -30), now)
	require.NoError(t, err)
	assert.Empty(t, totals)

	snapshots, err := s.Analytics.ListByClip(ctx, f.clip.ID)
	require.NoError(t, err)
	assert.Len(t, snapshots, 4)

	active, err := s.Analytics.CountApprovedClips(ctx, f.client.ID)
	require.NoError(t, err)
	assert.Zero(t, active)
	require.NoError(t, s.Clips.UpdateStatus(ctx, f.clip.ID, models.ClipStatusApproved))
	active, err = s.Analytics.CountApprovedClips(ctx, f.client.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(1), active)
}

func TestConversationIsSymmetric(t *testing.T) {
	s := newStore(t)
	ctx := context.Background()
	a := seedUser(t, s, "a", models.RoleClient)
	b := seedUser(t, s, "b", models.RoleManager)
	c := seedUser(t, s, "c", models.RoleClipper)

	send := func(from, to *models.User, content string) *models.Message {
		m, err := s.Messages.Create(ctx, &models.Message{SenderID: from.ID, RecipientID: to.ID, Content: content})
		require.NoError(t, err)
		time.Sleep(5 * time.Millisecond)
		return m
	}
	send(a, b, "hello")
	reply := send(b, a, "hi")
	send(a, c, "unrelated")

	ab, err := s.Messages.Conversation(ctx, a.ID, b.ID)
	require.NoError(t, err)
	ba, err := s.Messages.Conversation(ctx, b.ID, a.ID)
	require.NoError(t, err)
	require.Len(t, ab, 2)
	require.Len(t, ba, 2)
	assert.Equal(t, ab[0].ID, ba[0].ID)
	assert.Equal(t, ab[1].ID, ba[1].ID)
	assert.Equal(t, reply.ID, ab[0].ID)
	assert.False(t, ab[0].IsRead)

	require.NoError(t, s.Messages.MarkRead(ctx, reply.ID))
	got, err := s.Messages.Get(ctx, reply.ID)
	require.NoError(t, err)
	assert.True(t, got.IsRead)
	assert.ErrorIs(t, s.Messages.MarkRead(ctx, "missing"), repository.ErrNotFound)
}

func TestSessions(t *testing.T) {
	s := newStore(t)
	ctx := context.Background()

	live := &models.Session{
		SID:    "live",
		Data:   models.SessionData{UserID: "u1", Provider: "firebase", LoginAt: time.Now().UTC().Truncate(time.Second)},
		Expire: time.Now().Add(time.Hour),
	}
	require.NoError(t, s.Sessions.Create(ctx, live))
	require.NoError(t, s.Sessions.Create(ctx, &models.Session{SID: "old", Data: models.SessionData{UserID: "u2"}, Expire: time.Now().Add(-time.Hour)}))

	got, err := s.Sessions.Get(ctx, "live")
	require.NoError(t, err)
	assert.Equal(t, "u1", got.Data.UserID)
	assert.Equal(t, "firebase", got.Data.Provider)

	_, err = s.Sessions.Get(ctx, "old")
	assert.ErrorIs(t, err, repository.ErrNotFound)

	n, err := s.Sessions.DeleteExpired(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(1), n)

	require.NoError(t, s.Sessions.Delete(ctx, "live"))
	_, err = s.Sessions.Get(ctx, "live")
	assert.ErrorIs(t, err, repository.ErrNotFound)
}
