package server

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/osa911/clipdesk/internal/api/dto/common"
	"github.com/osa911/clipdesk/internal/config"
	"github.com/osa911/clipdesk/internal/db/dbtest"
	"github.com/osa911/clipdesk/internal/identity"
	"github.com/osa911/clipdesk/internal/logging"
	"github.com/osa911/clipdesk/internal/models"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeVerifier accepts tokens of the form "tok-<uid>"
type fakeVerifier struct{}

func (fakeVerifier) Verify(_ context.Context, idToken string) (*identity.Identity, error) {
	uid, ok := strings.CutPrefix(idToken, "tok-")
	if !ok || uid == "" {
		return nil, identity.ErrInvalidToken
	}
	return &identity.Identity{UID: uid, Email: uid + "@example.com", FirstName: uid}, nil
}

type testServer struct {
	t   *testing.T
	srv *Server
}

func newTestServer(t *testing.T) *testServer {
	t.Helper()
	gin.SetMode(gin.TestMode)
	logging.SetGlobalLogger(logging.NewWriterLogger(io.Discard, logging.LevelError))

	cfg := &config.Config{
		Environment:          "test",
		Port:                 "0",
		SessionTTL:           time.Hour,
		ApplicationRateRPS:   100,
		ApplicationRateBurst: 100,
	}
	srv := NewServer(cfg, dbtest.New(t), fakeVerifier{})

	for _, u := range []*models.User{
		{ID: "client-1", Role: models.RoleClient},
		{ID: "manager-1", Role: models.RoleManager},
		{ID: "clipper-1", Role: models.RoleClipper},
		{ID: "clipper-2", Role: models.RoleClipper},
		{ID: "admin-1", Role: models.RoleAdmin},
	} {
		_, err := srv.Store().Users.Upsert(context.Background(), u)
		require.NoError(t, err)
	}
	return &testServer{t: t, srv: srv}
}

// do sends a request as uid (anonymous when empty) and decodes the envelope
func (ts *testServer) do(method, path, uid string, body any) (*httptest.ResponseRecorder, common.APIResponse) {
	ts.t.Helper()
	var r io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		require.NoError(ts.t, err)
		r = bytes.NewReader(b)
	}
	req := httptest.NewRequest(method, path, r)
	req.Header.Set("Content-Type", "application/json")
	if uid != "" {
		req.Header.Set("Authorization", "Bearer tok-"+uid)
	}

	w := httptest.NewRecorder()
	ts.srv.Handler().ServeHTTP(w, req)

	var resp common.APIResponse
	if w.Body.Len() > 0 {
		require.NoError(ts.t, json.Unmarshal(w.Body.Bytes(), &resp), w.Body.String())
	}
	return w, resp
}

// data re-decodes the envelope payload into out
func data(t *testing.T, resp common.APIResponse, out any) {
	t.Helper()
	b, err := json.Marshal(resp.Data)
	require.NoError(t, err)
	require.NoError(t, json.Unmarshal(b, out))
}

// seedClip creates a team, a campaign and a clip through the API and returns the clip id
func (ts *testServer) seedClip() (campaignID, clipID string) {
	ts.t.Helper()
	w, resp := ts.do(http.MethodPost, "/api/teams", "client-1", map[string]any{"name": "Alpha", "managerId": "manager-1"})
	require.Equal(ts.t, http.StatusCreated, w.Code, w.Body.String())
	var team struct{ ID string }
	data(ts.t, resp, &team)

	w, resp = ts.do(http.MethodPost, "/api/campaigns", "client-1", map[string]any{"name": "Launch", "teamId": team.ID})
	require.Equal(ts.t, http.StatusCreated, w.Code, w.Body.String())
	var campaign struct{ ID string }
	data(ts.t, resp, &campaign)

	w, resp = ts.do(http.MethodPost, "/api/clips", "clipper-1", map[string]any{"title": "Cut 1", "campaignId": campaign.ID})
	require.Equal(ts.t, http.StatusCreated, w.Code, w.Body.String())
	var clip struct{ ID string }
	data(ts.t, resp, &clip)
	return campaign.ID, clip.ID
}

func TestHealth(t *testing.T) {
	ts := newTestServer(t)
	w, resp := ts.do(http.MethodGet, "/health", "", nil)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.True(t, resp.Success)
}

func TestUnauthenticatedCampaignListIsRejected(t *testing.T) {
	ts := newTestServer(t)
	w, resp := ts.do(http.MethodGet, "/api/campaigns", "", nil)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	require.NotNil(t, resp.Error)
	assert.Equal(t, string(common.ErrCodeUnauthorized), resp.Error.Code)
}

func TestAuthenticationIsCheckedBeforeBody(t *testing.T) {
	ts := newTestServer(t)
	w, _ := ts.do(http.MethodPost, "/api/teams", "", map[string]any{})
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestBodyIsValidatedBeforePolicy(t *testing.T) {
	ts := newTestServer(t)
	w, resp := ts.do(http.MethodPatch, "/api/clips/any/status", "clipper-1", map[string]any{"status": "done"})
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, string(common.ErrCodeValidation), resp.Error.Code)
}

func TestInvalidBearerToken(t *testing.T) {
	ts := newTestServer(t)
	req := httptest.NewRequest(http.MethodGet, "/api/dashboard", nil)
	req.Header.Set("Authorization", "Bearer nope")
	w := httptest.NewRecorder()
	ts.srv.Handler().ServeHTTP(w, req)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestClipperCannotReviewClips(t *testing.T) {
	ts := newTestServer(t)
	_, clipID := ts.seedClip()

	w, resp := ts.do(http.MethodPatch, "/api/clips/"+clipID+"/status", "clipper-1", map[string]any{"status": "approved"})
	assert.Equal(t, http.StatusForbidden, w.Code)
	assert.Equal(t, "Unauthorized", resp.Error.Message)

	clip, err := ts.srv.Store().Clips.Get(context.Background(), clipID)
	require.NoError(t, err)
	assert.Equal(t, models.ClipStatusPending, clip.Status)
}

func TestClipCreateForcesCaller(t *testing.T) {
	ts := newTestServer(t)
	campaignID, _ := ts.seedClip()

	w, resp := ts.do(http.MethodPost, "/api/clips", "clipper-1", map[string]any{
		"title":      "Cut 2",
		"campaignId": campaignID,
		"clipperId":  "manager-1",
		"views":      1000,
	})
	require.Equal(t, http.StatusCreated, w.Code)

	var clip struct {
		ClipperID string
		Status    string
		Views     int
	}
	data(t, resp, &clip)
	assert.Equal(t, "clipper-1", clip.ClipperID)
	assert.Equal(t, "pending", clip.Status)
	assert.Zero(t, clip.Views)
}

func TestClipCreateUnknownCampaign(t *testing.T) {
	ts := newTestServer(t)
	w, resp := ts.do(http.MethodPost, "/api/clips", "clipper-1", map[string]any{"title": "Cut", "campaignId": "missing"})
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, string(common.ErrCodeNotFound), resp.Error.Code)
}

func TestReviewFlow(t *testing.T) {
	ts := newTestServer(t)
	campaignID, clipID := ts.seedClip()

	w, resp := ts.do(http.MethodGet, "/api/clips", "manager-1", nil)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	var queue []struct {
		ID       string
		Clipper  *struct{ ID string }
		Campaign *struct{ ID, Name string }
	}
	data(t, resp, &queue)
	require.Len(t, queue, 1)
	assert.Equal(t, clipID, queue[0].ID)
	require.NotNil(t, queue[0].Clipper)
	assert.Equal(t, "clipper-1", queue[0].Clipper.ID)
	require.NotNil(t, queue[0].Campaign)
	assert.Equal(t, campaignID, queue[0].Campaign.ID)
	assert.Equal(t, "Launch", queue[0].Campaign.Name)

	w, _ = ts.do(http.MethodPatch, "/api/clips/"+clipID+"/status", "manager-1", map[string]any{"status": "needs_revision"})
	require.Equal(t, http.StatusOK, w.Code)

	w, _ = ts.do(http.MethodPost, "/api/clips/"+clipID+"/resubmit", "clipper-1", nil)
	require.Equal(t, http.StatusOK, w.Code)

	w, _ = ts.do(http.MethodPatch, "/api/clips/"+clipID+"/status", "admin-1", map[string]any{"status": "approved"})
	require.Equal(t, http.StatusOK, w.Code)

	clip, err := ts.srv.Store().Clips.Get(context.Background(), clipID)
	require.NoError(t, err)
	assert.Equal(t, models.ClipStatusApproved, clip.Status)
}

func TestClipperSeesOnlyOwnClips(t *testing.T) {
	ts := newTestServer(t)
	campaignID, ownID := ts.seedClip()

	w, resp := ts.do(http.MethodPost, "/api/clips", "clipper-2", map[string]any{"title": "Other cut", "campaignId": campaignID})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	var other struct{ ID string }
	data(t, resp, &other)

	for uid, want := range map[string]string{"clipper-1": ownID, "clipper-2": other.ID} {
		w, resp = ts.do(http.MethodGet, "/api/clips", uid, nil)
		require.Equal(t, http.StatusOK, w.Code, w.Body.String())
		var clips []struct{ ID, ClipperID string }
		data(t, resp, &clips)
		require.Len(t, clips, 1, uid)
		assert.Equal(t, want, clips[0].ID)
		assert.Equal(t, uid, clips[0].ClipperID)
	}

	w, resp = ts.do(http.MethodGet, "/api/clips", "manager-1", nil)
	require.Equal(t, http.StatusOK, w.Code)
	var queue []struct{ ID string }
	data(t, resp, &queue)
	assert.Len(t, queue, 2)
}

func TestTeamMembersEndpoint(t *testing.T) {
	ts := newTestServer(t)
	w, resp := ts.do(http.MethodPost, "/api/teams", "client-1", map[string]any{"name": "Alpha", "managerId": "manager-1"})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	var team struct{ ID string }
	data(t, resp, &team)

	w, _ = ts.do(http.MethodPost, "/api/teams/"+team.ID+"/members", "manager-1", map[string]any{"clipperId": "clipper-1"})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	w, resp = ts.do(http.MethodGet, "/api/teams/"+team.ID+"/members", "client-1", nil)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	var members []struct {
		ClipperID string
		Clipper   *struct{ ID string }
	}
	data(t, resp, &members)
	require.Len(t, members, 1)
	assert.Equal(t, "clipper-1", members[0].ClipperID)
	require.NotNil(t, members[0].Clipper)
	assert.Equal(t, "clipper-1", members[0].Clipper.ID)
}

func TestReviewUnknownClip(t *testing.T) {
	ts := newTestServer(t)
	w, resp := ts.do(http.MethodPatch, "/api/clips/missing/status", "manager-1", map[string]any{"status": "approved"})
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, string(common.ErrCodeNotFound), resp.Error.Code)
}

func TestApplicationSubmitAndReview(t *testing.T) {
	ts := newTestServer(t)

	w, _ := ts.do(http.MethodPost, "/api/applications", "", map[string]any{"name": "Dana"})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w, resp := ts.do(http.MethodPost, "/api/applications", "", map[string]any{
		"name":         "Dana",
		"email":        "dana@example.com",
		"whyChooseYou": "fast editor",
	})
	require.Equal(t, http.StatusCreated, w.Code)
	var created struct{ ID, Status string }
	data(t, resp, &created)
	assert.Equal(t, "pending", created.Status)

	w, _ = ts.do(http.MethodGet, "/api/applications", "clipper-1", nil)
	assert.Equal(t, http.StatusForbidden, w.Code)

	w, resp = ts.do(http.MethodGet, "/api/applications", "manager-1", nil)
	require.Equal(t, http.StatusOK, w.Code)
	var apps []struct{ ID, Status string }
	data(t, resp, &apps)
	require.Len(t, apps, 1)
	assert.Equal(t, created.ID, apps[0].ID)
	assert.Equal(t, "pending", apps[0].Status)

	w, _ = ts.do(http.MethodPatch, "/api/applications/"+created.ID+"/status", "manager-1", map[string]any{"status": "approved"})
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestClientAnalyticsDashboard(t *testing.T) {
	ts := newTestServer(t)
	_, clipID := ts.seedClip()

	w, _ := ts.do(http.MethodPatch, "/api/clips/"+clipID+"/status", "manager-1", map[string]any{"status": "approved"})
	require.Equal(t, http.StatusOK, w.Code)

	for _, snap := range []map[string]any{
		{"platform": "tiktok", "views": 300, "likes": 30, "shares": 5, "comments": 5},
		{"platform": "youtube", "views": 100, "likes": 10},
	} {
		w, _ = ts.do(http.MethodPost, "/api/clips/"+clipID+"/analytics", "manager-1", snap)
		require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	}

	w, _ = ts.do(http.MethodGet, "/api/analytics/client-dashboard", "manager-1", nil)
	assert.Equal(t, http.StatusForbidden, w.Code)

	w, resp := ts.do(http.MethodGet, "/api/analytics/client-dashboard", "client-1", nil)
	require.Equal(t, http.StatusOK, w.Code)
	var summary struct {
		TotalViews        int64
		EngagementRate    float64
		ActiveClips       int64
		PlatformBreakdown map[string]struct {
			Views      int64
			Percentage float64
		}
	}
	data(t, resp, &summary)
	assert.Equal(t, int64(400), summary.TotalViews)
	assert.Equal(t, 12.5, summary.EngagementRate)
	assert.Equal(t, int64(1), summary.ActiveClips)
	assert.Equal(t, 75.0, summary.PlatformBreakdown["tiktok"].Percentage)
	assert.Equal(t, 25.0, summary.PlatformBreakdown["youtube"].Percentage)
}

func TestMessagesAndDashboard(t *testing.T) {
	ts := newTestServer(t)

	w, resp := ts.do(http.MethodPost, "/api/messages", "client-1", map[string]any{"recipientId": "manager-1", "content": "hello", "senderId": "admin-1"})
	require.Equal(t, http.StatusCreated, w.Code)
	var sent struct{ ID, SenderID string }
	data(t, resp, &sent)
	assert.Equal(t, "client-1", sent.SenderID)

	w, _ = ts.do(http.MethodPatch, "/api/messages/"+sent.ID+"/read", "client-1", nil)
	assert.Equal(t, http.StatusForbidden, w.Code)
	w, _ = ts.do(http.MethodPatch, "/api/messages/"+sent.ID+"/read", "manager-1", nil)
	assert.Equal(t, http.StatusOK, w.Code)

	w, resp = ts.do(http.MethodGet, "/api/messages/client-1", "manager-1", nil)
	require.Equal(t, http.StatusOK, w.Code)
	var convo []struct{ ID string }
	data(t, resp, &convo)
	require.Len(t, convo, 1)

	w, resp = ts.do(http.MethodGet, "/api/dashboard", "clipper-1", nil)
	require.Equal(t, http.StatusOK, w.Code)
	var dash struct {
		Role    string
		Clipper *struct{ TotalClips int64 }
		Manager any
	}
	data(t, resp, &dash)
	assert.Equal(t, "clipper", dash.Role)
	require.NotNil(t, dash.Clipper)
	assert.Nil(t, dash.Manager)
}

func TestLoginSessionCookie(t *testing.T) {
	ts := newTestServer(t)

	w, _ := ts.do(http.MethodPost, "/api/auth/login", "", map[string]any{"idToken": "tok-newcomer"})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	cookies := w.Result().Cookies()
	require.NotEmpty(t, cookies)
	sid := cookies[0]
	assert.Equal(t, "sid", sid.Name)
	assert.True(t, sid.HttpOnly)

	req := httptest.NewRequest(http.MethodGet, "/api/auth/user", nil)
	req.AddCookie(sid)
	w = httptest.NewRecorder()
	ts.srv.Handler().ServeHTTP(w, req)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"role":"clipper"`)

	req = httptest.NewRequest(http.MethodPost, "/api/auth/logout", nil)
	req.AddCookie(sid)
	w = httptest.NewRecorder()
	ts.srv.Handler().ServeHTTP(w, req)
	require.Equal(t, http.StatusOK, w.Code)

	req = httptest.NewRequest(http.MethodGet, "/api/auth/user", nil)
	req.AddCookie(sid)
	w = httptest.NewRecorder()
	ts.srv.Handler().ServeHTTP(w, req)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}
