package httpapi

import (
	"bufio"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"strings"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"earn-recycle-engine/internal/catalog"
	"earn-recycle-engine/internal/config"
	"earn-recycle-engine/internal/events"
	"earn-recycle-engine/internal/history"
	"earn-recycle-engine/internal/stats"
	"earn-recycle-engine/internal/store"
)

var fixedNow = time.Date(2024, 3, 15, 16, 45, 0, 0, time.Local)

func newTestDeps(t *testing.T, seed bool) Deps {
	t.Helper()
	dir := t.TempDir()

	db, err := store.Open(filepath.Join(dir, "recycle.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	require.NoError(t, store.Migrate(db.Pool))
	if seed {
		_, err = store.SeedCatalog(context.Background(), db.Pool)
		require.NoError(t, err)
	}

	cat := catalog.New(db.Pool)
	_, err = cat.Refresh(context.Background())
	require.NoError(t, err)

	cfgPath := filepath.Join(dir, "config.yml")
	require.NoError(t, config.SaveAtomic(cfgPath, config.Default()))

	var cfgVal atomic.Value
	cfgVal.Store(config.Default())

	return Deps{
		DB:          db.Pool,
		Hub:         events.NewHub(),
		Catalog:     cat,
		CfgVal:      &cfgVal,
		UserCfgPath: cfgPath,
		LoadCfg:     func() (config.Config, error) { return config.Load(cfgPath) },
		Now:         func() time.Time { return fixedNow },
	}
}

func do(t *testing.T, h http.Handler, method, target, body string) *httptest.ResponseRecorder {
	t.Helper()
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, target, nil)
	} else {
		req = httptest.NewRequest(method, target, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	}
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

func decode[T any](t *testing.T, rec *httptest.ResponseRecorder) T {
	t.Helper()
	var v T
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &v), rec.Body.String())
	return v
}

func rowIDs(v history.View) []string {
	out := make([]string, 0, len(v.Rows))
	for _, r := range v.Rows {
		out = append(out, r.ID)
	}
	return out
}

func TestHistory_FirstPage(t *testing.T) {
	d := newTestDeps(t, true)
	h := Handler(NewMux(d), d)

	rec := do(t, h, http.MethodGet, "/history", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.NotEmpty(t, rec.Header().Get("X-Request-ID"))

	v := decode[history.View](t, rec)
	assert.Equal(t, []string{"RCY-2024-001", "RCY-2024-002", "RCY-2024-003"}, rowIDs(v))
	assert.Equal(t, 7, v.TotalCount)
	assert.Equal(t, 3, v.TotalPages)
	assert.Equal(t, history.FilterAll, v.Status)
	assert.True(t, v.ShowPager)
	assert.Equal(t, "Mar 15, 08:30 AM", v.Rows[0].SubmittedDisplay)
	assert.Equal(t, "8 hours ago", v.Rows[0].SubmittedAgo)
	assert.Equal(t, "-", v.Rows[2].CollectedDisplay)
}

func TestHistory_FilterSearchAndPage(t *testing.T) {
	d := newTestDeps(t, true)
	h := Handler(NewMux(d), d)

	v := decode[history.View](t, do(t, h, http.MethodGet, "/history?status=completed&page=2", ""))
	assert.Equal(t, []string{}, rowIDs(v))
	assert.Equal(t, 3, v.TotalCount)
	assert.Equal(t, 1, v.TotalPages)

	v = decode[history.View](t, do(t, h, http.MethodGet, "/history?q=PLASTIC", ""))
	assert.Equal(t, []string{"RCY-2024-001"}, rowIDs(v))
	assert.True(t, v.ShowingAll)

	v = decode[history.View](t, do(t, h, http.MethodGet, "/history?q=nothing-like-this", ""))
	assert.Empty(t, v.Rows)
	require.NotNil(t, v.Empty)
	assert.Equal(t, 1, v.DisplayPages)
}

func TestHistory_HugePageIsEmptyNotAnError(t *testing.T) {
	d := newTestDeps(t, true)
	h := Handler(NewMux(d), d)

	for _, page := range []string{"4611686018427387905", "6148914691236517206", "9223372036854775807"} {
		rec := do(t, h, http.MethodGet, "/history?page="+page, "")
		require.Equal(t, http.StatusOK, rec.Code, page)
		v := decode[history.View](t, rec)
		assert.Empty(t, v.Rows, page)
		assert.Equal(t, 7, v.TotalCount, page)
		assert.Equal(t, 3, v.TotalPages, page)
	}
}

func TestHistory_RejectsBadQuery(t *testing.T) {
	d := newTestDeps(t, true)
	h := Handler(NewMux(d), d)

	for _, target := range []string{"/history?page=0", "/history?page=abc", "/history?status=lost"} {
		rec := do(t, h, http.MethodGet, target, "")
		assert.Equal(t, http.StatusBadRequest, rec.Code, target)
		e := decode[APIError](t, rec)
		assert.Equal(t, CodeBadRequest, e.Error.Code)
		assert.NotEmpty(t, e.Error.RequestID)
	}
}

func TestHistory_PageSizeAndLabelsFromConfig(t *testing.T) {
	d := newTestDeps(t, true)
	cfg := config.Default()
	cfg.History.PageSize = 5
	cfg.Labels = map[string]string{"completed": "Done"}
	d.CfgVal.Store(cfg)
	h := Handler(NewMux(d), d)

	v := decode[history.View](t, do(t, h, http.MethodGet, "/history", ""))
	assert.Len(t, v.Rows, 5)
	assert.Equal(t, 2, v.TotalPages)
	assert.Equal(t, "Done", v.Rows[0].StatusDisplay.Label)

	opts := decode[StatusOptionsResponse](t, do(t, h, http.MethodGet, "/history/status-options", ""))
	require.Len(t, opts.Options, 5)
	assert.Equal(t, "All Status", opts.Options[0].Label)
	assert.Equal(t, 7, opts.Options[0].Count)
	assert.Equal(t, "Done", opts.Options[1].Label)
	assert.Equal(t, 3, opts.Options[1].Count)
}

func TestHistory_EmptyCatalog(t *testing.T) {
	d := newTestDeps(t, false)
	h := Handler(NewMux(d), d)

	v := decode[history.View](t, do(t, h, http.MethodGet, "/history", ""))
	assert.Empty(t, v.Rows)
	assert.Equal(t, 0, v.TotalPages)
	assert.False(t, v.ShowPager)
	require.NotNil(t, v.Empty)
}

func TestHistory_CatalogNotLoaded(t *testing.T) {
	d := newTestDeps(t, true)
	d.Catalog = catalog.New(d.DB)
	h := Handler(NewMux(d), d)

	rec := do(t, h, http.MethodGet, "/history", "")
	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
	assert.Equal(t, CodeCatalogUnavailable, decode[APIError](t, rec).Error.Code)
}

func TestTracking(t *testing.T) {
	d := newTestDeps(t, true)
	h := Handler(NewMux(d), d)

	resp := decode[TrackingResponse](t, do(t, h, http.MethodGet, "/tracking", ""))
	assert.Equal(t, "On the way", string(resp.Tab))
	require.Len(t, resp.Items, 2)
	assert.Equal(t, "bg-blue-100 text-blue-800 border-blue-200", resp.Items[0].Badge)

	resp = decode[TrackingResponse](t, do(t, h, http.MethodGet, "/tracking?tab=collected", ""))
	require.Len(t, resp.Items, 1)
	assert.Equal(t, int64(3), resp.Items[0].ID)

	resp = decode[TrackingResponse](t, do(t, h, http.MethodGet, "/tracking?tab=processed&q=queens", ""))
	require.Len(t, resp.Items, 1)
	assert.Equal(t, "RCY-14398-98568", resp.Items[0].OrderID)

	assert.Equal(t, http.StatusBadRequest, do(t, h, http.MethodGet, "/tracking?tab=lost", "").Code)

	row := decode[TrackingRow](t, do(t, h, http.MethodGet, "/tracking/2", ""))
	assert.Equal(t, "Queens → Staten Island", row.Route)
	assert.Equal(t, http.StatusNotFound, do(t, h, http.MethodGet, "/tracking/99", "").Code)
	assert.Equal(t, http.StatusBadRequest, do(t, h, http.MethodGet, "/tracking/x", "").Code)
}

func TestCentersAndCategories(t *testing.T) {
	d := newTestDeps(t, true)
	h := Handler(NewMux(d), d)

	var centers []struct {
		Name string `json:"name"`
	}
	rec := do(t, h, http.MethodGet, "/centers?material=glass", "")
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &centers))
	require.Len(t, centers, 2)
	assert.Equal(t, "EcoGreen Recycling", centers[0].Name)
	assert.Equal(t, "Zero Waste Hub", centers[1].Name)

	var cats []map[string]any
	rec = do(t, h, http.MethodGet, "/categories", "")
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &cats))
	assert.Len(t, cats, 5)
}

func TestCatalogRefresh_EmitsEvent(t *testing.T) {
	d := newTestDeps(t, true)
	h := Handler(NewMux(d), d)
	ch := d.Hub.Subscribe()
	defer d.Hub.Unsubscribe(ch)

	rec := do(t, h, http.MethodPost, "/catalog/refresh", "")
	require.Equal(t, http.StatusOK, rec.Code)
	st := decode[catalog.Status](t, rec)
	assert.Equal(t, 7, st.Requests)

	select {
	case msg := <-ch:
		var e events.Event
		require.NoError(t, json.Unmarshal([]byte(msg), &e))
		assert.Equal(t, events.TypeCatalogRefreshed, e.Type)
		assert.Equal(t, rec.Header().Get("X-Request-ID"), e.RequestID)
	case <-time.After(time.Second):
		t.Fatal("no event published")
	}

	assert.Equal(t, http.StatusMethodNotAllowed, do(t, h, http.MethodGet, "/catalog/refresh", "").Code)
}

func TestActions(t *testing.T) {
	d := newTestDeps(t, true)
	h := Handler(NewMux(d), d)
	ch := d.Hub.Subscribe()
	defer d.Hub.Unsubscribe(ch)

	rec := do(t, h, http.MethodPost, "/auth/signup", `{"email":"a@b.c","password":"hunter2"}`)
	require.Equal(t, http.StatusAccepted, rec.Code)
	resp := decode[ActionResponse](t, rec)
	assert.True(t, resp.OK)
	assert.Equal(t, "signup", resp.Action)

	msg := <-ch
	assert.NotContains(t, msg, "hunter2")
	var e events.Event
	require.NoError(t, json.Unmarshal([]byte(msg), &e))
	var stub ActionStubbed
	require.NoError(t, json.Unmarshal(e.Data, &stub))
	assert.Equal(t, []string{"email", "password"}, stub.Fields)

	assert.Equal(t, http.StatusBadRequest, do(t, h, http.MethodPost, "/auth/signup", `{"email":"  "}`).Code)
	assert.Equal(t, http.StatusBadRequest, do(t, h, http.MethodPost, "/recycle", `{"category":"plastic"}`).Code)
	assert.Equal(t, http.StatusBadRequest, do(t, h, http.MethodPost, "/recycle", `{not json`).Code)
	assert.Equal(t, http.StatusAccepted, do(t, h, http.MethodPost, "/recycle", `{"category":"plastic","weight":2.5}`).Code)
	assert.Equal(t, http.StatusAccepted, do(t, h, http.MethodPost, "/history/export", "").Code)
	assert.Equal(t, http.StatusAccepted, do(t, h, http.MethodPost, "/auth/logout", "").Code)

	resp = decode[ActionResponse](t, do(t, h, http.MethodPost, "/auth/social/Google", ""))
	assert.Equal(t, "signup_google", resp.Action)
	assert.Equal(t, http.StatusBadRequest, do(t, h, http.MethodPost, "/auth/social/", "").Code)
}

func TestConfig_PutValidatesAndReloads(t *testing.T) {
	d := newTestDeps(t, true)
	h := Handler(NewMux(d), d)

	rec := do(t, h, http.MethodPut, "/config", `{"history":{"page_size":4},"tracking":{"default_tab":"collected"}}`)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	cfg := decode[config.Config](t, rec)
	assert.Equal(t, 4, cfg.History.PageSize)
	assert.Equal(t, "Collected", cfg.Tracking.DefaultTab)
	assert.Equal(t, 38472, cfg.App.Port)

	v := decode[history.View](t, do(t, h, http.MethodGet, "/history", ""))
	assert.Len(t, v.Rows, 4)
	resp := decode[TrackingResponse](t, do(t, h, http.MethodGet, "/tracking", ""))
	assert.Equal(t, "Collected", string(resp.Tab))

	rec = do(t, h, http.MethodPut, "/config", `{"history":{"page_size":0}}`)
	require.Equal(t, http.StatusBadRequest, rec.Code)
	vr := decode[config.Validation](t, rec)
	assert.NotEmpty(t, vr.Errors)

	assert.Equal(t, http.StatusBadRequest, do(t, h, http.MethodPut, "/config", `{"nope":1}`).Code)
	assert.Equal(t, 4, currentConfig(d.CfgVal).History.PageSize)
}

func TestRateLimit(t *testing.T) {
	d := newTestDeps(t, true)
	d.Limiter = ratelimitForTest()
	h := Handler(NewMux(d), d)

	assert.Equal(t, http.StatusOK, do(t, h, http.MethodGet, "/health", "").Code)
	rec := do(t, h, http.MethodGet, "/health", "")
	assert.Equal(t, http.StatusTooManyRequests, rec.Code)
	assert.Equal(t, "1", rec.Header().Get("Retry-After"))
}

func TestRecover(t *testing.T) {
	h := Chain(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {
		panic("boom")
	}), Recover, RequestID)

	rec := do(t, h, http.MethodGet, "/", "")
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Equal(t, CodeInternal, decode[APIError](t, rec).Error.Code)
}

func TestCheckpoint_LoopbackOnly(t *testing.T) {
	d := newTestDeps(t, true)
	h := Handler(NewMux(d), d)

	req := httptest.NewRequest(http.MethodPost, "/db/checkpoint", nil)
	req.RemoteAddr = "127.0.0.1:5555"
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusNoContent, rec.Code)

	req = httptest.NewRequest(http.MethodPost, "/db/checkpoint", nil)
	req.RemoteAddr = "10.1.2.3:5555"
	rec = httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusForbidden, rec.Code)
}

func TestEvents_StreamsPingThenPublished(t *testing.T) {
	d := newTestDeps(t, true)
	srv := httptest.NewServer(Handler(NewMux(d), d))
	defer srv.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, srv.URL+"/events", nil)
	require.NoError(t, err)
	resp, err := srv.Client().Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, "text/event-stream", resp.Header.Get("Content-Type"))

	sc := bufio.NewScanner(resp.Body)
	next := func() events.Event {
		for sc.Scan() {
			line := sc.Text()
			if data, ok := strings.CutPrefix(line, "data: "); ok {
				var e events.Event
				require.NoError(t, json.Unmarshal([]byte(data), &e))
				return e
			}
		}
		t.Fatal("stream ended")
		return events.Event{}
	}

	assert.Equal(t, events.TypePing, next().Type)

	require.Eventually(t, func() bool { return d.Hub.Subscribers() == 1 }, time.Second, 10*time.Millisecond)
	d.Hub.Emit("", events.TypeConfigUpdated, nil)
	assert.Equal(t, events.TypeConfigUpdated, next().Type)
}

func TestStats(t *testing.T) {
	d := newTestDeps(t, true)
	h := Handler(NewMux(d), d)

	resp := decode[StatsResponse](t, do(t, h, http.MethodGet, "/stats", ""))
	assert.Equal(t, stats.RangeAll, resp.Range)
	require.Len(t, resp.Ranges, 6)
	assert.Equal(t, "Last 30 d", resp.Ranges[3].Label)
	assert.Equal(t, []stats.Card{
		{Name: "Total Earnings", Value: "$13.24"},
		{Name: "Recycled Items", Value: "5"},
		{Name: "Total Weight", Value: "33.5 kg"},
	}, resp.Cards)

	resp = decode[StatsResponse](t, do(t, h, http.MethodGet, "/stats?range=today", ""))
	assert.Equal(t, 1, resp.Totals.RecycledItems)
	assert.Equal(t, "$2.60", resp.Cards[0].Value)

	resp = decode[StatsResponse](t, do(t, h, http.MethodGet, "/stats?range=Yesterday", ""))
	assert.Equal(t, stats.RangeYesterday, resp.Range)
	assert.Equal(t, int64(8700), resp.Totals.WeightGrams)

	assert.Equal(t, http.StatusBadRequest, do(t, h, http.MethodGet, "/stats?range=forever", "").Code)
	assert.Equal(t, http.StatusMethodNotAllowed, do(t, h, http.MethodPost, "/stats", "").Code)
}

func TestProfile(t *testing.T) {
	d := newTestDeps(t, true)
	h := Handler(NewMux(d), d)

	rec := do(t, h, http.MethodGet, "/profile", "")
	require.Equal(t, http.StatusOK, rec.Code)
	resp := decode[ProfileResponse](t, rec)

	require.Len(t, resp.Sections, 4)
	ids := []string{}
	for _, s := range resp.Sections {
		ids = append(ids, s.ID)
	}
	assert.Equal(t, []string{"personal", "notifications", "payment", "security"}, ids)

	assert.Equal(t, ProfileField{Name: "email", Label: "Email", Type: "email", Value: "john@example.com"}, resp.Sections[0].Fields[1])
	require.Len(t, resp.Sections[1].Settings, 3)
	assert.False(t, resp.Sections[1].Settings[2].Enabled)
	require.Len(t, resp.Sections[2].Methods, 2)
	assert.Equal(t, "Bank Account ending in 4567", resp.Sections[2].Methods[0].Display)
	assert.True(t, resp.Sections[2].Methods[0].Primary)
	require.Len(t, resp.Sections[3].Options, 2)
	assert.Nil(t, resp.Sections[3].Options[0].Enabled)
}

func TestStatsAndProfile_EmptyStore(t *testing.T) {
	d := newTestDeps(t, false)
	h := Handler(NewMux(d), d)

	rec := do(t, h, http.MethodGet, "/profile", "")
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, CodeNotFound, decode[APIError](t, rec).Error.Code)

	resp := decode[StatsResponse](t, do(t, h, http.MethodGet, "/stats", ""))
	assert.Equal(t, stats.Summary{Range: stats.RangeAll}, resp.Totals)
	assert.Equal(t, "$0.00", resp.Cards[0].Value)
}
