package handlers_test_suite

import (
	"context"
	"encoding/json"
	"fmt"
	"math"
	"net/http"
	"sync"
	"testing"
	"time"

	"github.com/rogerio-castellano/surgery-tracker/internal/cache"
	handler "github.com/rogerio-castellano/surgery-tracker/internal/http/handlers"
	"github.com/rogerio-castellano/surgery-tracker/internal/http/router"
	"github.com/rogerio-castellano/surgery-tracker/internal/trends"
)

// mapCache is an in-process TrendCache that counts stores. Entries are keyed
// by generation the same way the Redis cache namespaces them.
type mapCache struct {
	mu      sync.Mutex
	gen     cache.Generation
	entries map[string][]byte
	sets    int
}

func newMapCache() *mapCache {
	return &mapCache{entries: map[string][]byte{}}
}

func (c *mapCache) entryKey(gen cache.Generation, key string) string {
	return fmt.Sprintf("%d:%s", gen, key)
}

func (c *mapCache) Get(_ context.Context, key string, dst any) (cache.Generation, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	raw, ok := c.entries[c.entryKey(c.gen, key)]
	if !ok {
		return c.gen, cache.ErrCacheMiss
	}
	return c.gen, json.Unmarshal(raw, dst)
}

func (c *mapCache) Set(_ context.Context, gen cache.Generation, key string, v any) error {
	raw, err := json.Marshal(v)
	if err != nil {
		return err
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries[c.entryKey(gen, key)] = raw
	c.sets++
	return nil
}

func (c *mapCache) Invalidate(context.Context) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.gen++
	return nil
}

func (c *mapCache) stores() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.sets
}

func getTrends(t *testing.T, r http.Handler, query string) handler.TrendResponse {
	t.Helper()
	w := doRequest(r, http.MethodGet, "/trends"+query, nil, token)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200 OK, got %d: %s", w.Code, w.Body.String())
	}
	var resp handler.TrendResponse
	if err := json.NewDecoder(w.Body).Decode(&resp); err != nil {
		t.Fatalf("error decoding response: %v", err)
	}
	return resp
}

func assertPoints(t *testing.T, name string, got []handler.Point, want []handler.Point) {
	t.Helper()
	if len(got) != len(want) {
		t.Fatalf("%s: expected %v, got %v", name, want, got)
	}
	for i := range want {
		if got[i].Label != want[i].Label || math.Abs(got[i].Value-want[i].Value) > 1e-9 {
			t.Errorf("%s[%d]: expected %v, got %v", name, i, want[i], got[i])
		}
	}
}

func TestGetTrendsHandler_NoData(t *testing.T) {
	t.Cleanup(clearAllSurgeries)
	clearAllSurgeries()
	r := router.NewRouter()

	w := doRequest(r, http.MethodGet, "/trends", nil, token)
	if w.Code != http.StatusUnprocessableEntity {
		t.Fatalf("expected 422, got %d", w.Code)
	}

	addSurgery(drLeeID, generalID, "spine", 2024, time.January, 4)
	w = doRequest(r, http.MethodGet, "/trends?staff_id=2", nil, token)
	if w.Code != http.StatusUnprocessableEntity {
		t.Fatalf("expected 422 when the filter matches nothing, got %d", w.Code)
	}
}

func TestGetTrendsHandler_LinearGrowth(t *testing.T) {
	t.Cleanup(clearAllSurgeries)
	clearAllSurgeries()
	r := router.NewRouter()

	addSurgery(drLeeID, generalID, "spine", 2024, time.January, 10)
	addSurgery(drLeeID, stMaryID, "trauma", 2024, time.February, 15)
	addSurgery(drLeeID, generalID, "spine", 2024, time.February, 5)
	addSurgery(drLeeID, generalID, "tumor", 2024, time.March, 30)
	addSurgery(drParkID, generalID, "spine", 2024, time.March, 100)

	resp := getTrends(t, r, "?staff_id=1")

	if resp.Window != 3 {
		t.Errorf("expected default window 3, got %d", resp.Window)
	}
	assertPoints(t, "monthly", resp.Monthly, []handler.Point{
		{Label: "2024-01", Value: 10},
		{Label: "2024-02", Value: 20},
		{Label: "2024-03", Value: 30},
	})
	assertPoints(t, "moving_average", resp.MovingAverage, []handler.Point{
		{Label: "2024-03", Value: 20},
	})

	if resp.Forecast.Label != "2024-04" {
		t.Errorf("expected forecast for 2024-04, got %s", resp.Forecast.Label)
	}
	if math.Abs(resp.Forecast.Value-40) > 1e-9 {
		t.Errorf("expected forecast 40, got %v", resp.Forecast.Value)
	}
	if math.Abs(resp.Forecast.Slope-10) > 1e-9 {
		t.Errorf("expected slope 10, got %v", resp.Forecast.Slope)
	}
	if resp.Forecast.LowConfidence {
		t.Error("three months must not be low confidence")
	}
}

func TestGetTrendsHandler_Windows(t *testing.T) {
	t.Cleanup(clearAllSurgeries)
	clearAllSurgeries()
	r := router.NewRouter()

	addSurgery(drLeeID, generalID, "spine", 2024, time.January, 5)
	addSurgery(drLeeID, generalID, "spine", 2024, time.March, 7)
	addSurgery(drLeeID, generalID, "spine", 2024, time.April, 12)

	t.Run("Gap months count as zero", func(t *testing.T) {
		resp := getTrends(t, r, "?window=2")
		assertPoints(t, "monthly", resp.Monthly, []handler.Point{
			{Label: "2024-01", Value: 5},
			{Label: "2024-02", Value: 0},
			{Label: "2024-03", Value: 7},
			{Label: "2024-04", Value: 12},
		})
		assertPoints(t, "moving_average", resp.MovingAverage, []handler.Point{
			{Label: "2024-02", Value: 2.5},
			{Label: "2024-03", Value: 3.5},
			{Label: "2024-04", Value: 9.5},
		})
	})

	t.Run("Window longer than the series", func(t *testing.T) {
		resp := getTrends(t, r, "?window=6")
		if len(resp.MovingAverage) != 0 {
			t.Errorf("expected no moving average, got %v", resp.MovingAverage)
		}
		if len(resp.Monthly) != 4 {
			t.Errorf("expected 4 months, got %d", len(resp.Monthly))
		}
	})

	for _, q := range []string{"?window=0", "?window=-1", "?window=abc", "?window=13"} {
		t.Run("Rejects "+q, func(t *testing.T) {
			w := doRequest(r, http.MethodGet, "/trends"+q, nil, token)
			if w.Code != http.StatusBadRequest {
				t.Fatalf("expected 400 Bad Request, got %d", w.Code)
			}
		})
	}
}

func TestGetTrendsHandler_SingleMonth(t *testing.T) {
	t.Cleanup(clearAllSurgeries)
	clearAllSurgeries()
	r := router.NewRouter()

	addSurgery(drParkID, stMaryID, "tumor", 2024, time.June, 8)

	resp := getTrends(t, r, "?hospital_id=2")
	if !resp.Forecast.LowConfidence {
		t.Error("expected a single month to be low confidence")
	}
	if resp.Forecast.Warning != trends.ErrDegenerateFit.Error() {
		t.Errorf("expected degenerate fit warning, got %q", resp.Forecast.Warning)
	}
	if resp.Forecast.Value != 8 || resp.Forecast.Label != "2024-07" {
		t.Errorf("expected flat forecast of 8 for 2024-07, got %v for %s", resp.Forecast.Value, resp.Forecast.Label)
	}
}

func TestGetTrendsHandler_CacheInvalidation(t *testing.T) {
	t.Cleanup(clearAllSurgeries)
	clearAllSurgeries()
	c := newMapCache()
	handler.SetTrendCache(c)
	r := router.NewRouter()

	addSurgery(drLeeID, generalID, "spine", 2024, time.January, 10)

	first := getTrends(t, r, "")
	second := getTrends(t, r, "")
	if c.stores() != 1 {
		t.Fatalf("expected the second call to be served from cache, got %d stores", c.stores())
	}
	if first.Monthly[0].Value != second.Monthly[0].Value {
		t.Errorf("cached response differs: %v vs %v", first, second)
	}

	w := logSurgery(r, handler.SurgeryRequest{
		StaffID:     intPtr(drLeeID),
		HospitalID:  generalID,
		SurgeryType: "spine",
		PerformedAt: "2024-02",
		Count:       20,
	})
	if w.Code != http.StatusCreated {
		t.Fatalf("expected 201 Created, got %d", w.Code)
	}

	third := getTrends(t, r, "")
	if len(third.Monthly) != 2 {
		t.Fatalf("expected the new month after invalidation, got %v", third.Monthly)
	}
	if c.stores() != 2 {
		t.Errorf("expected a recomputation, got %d stores", c.stores())
	}
}

// racingCache invalidates right after the first lookup, standing in for a
// surgery logged while the trend is being computed.
type racingCache struct {
	*mapCache
	raced bool
}

func (c *racingCache) Get(ctx context.Context, key string, dst any) (cache.Generation, error) {
	gen, err := c.mapCache.Get(ctx, key, dst)
	if !c.raced {
		c.raced = true
		_ = c.mapCache.Invalidate(ctx)
	}
	return gen, err
}

func TestGetTrendsHandler_StaleResultNotServedAfterConcurrentWrite(t *testing.T) {
	t.Cleanup(clearAllSurgeries)
	clearAllSurgeries()
	c := &racingCache{mapCache: newMapCache()}
	handler.SetTrendCache(c)
	r := router.NewRouter()

	addSurgery(drLeeID, generalID, "spine", 2024, time.January, 10)

	getTrends(t, r, "")
	getTrends(t, r, "")
	if c.stores() != 2 {
		t.Fatalf("expected the result stored before the invalidation to be ignored, got %d stores", c.stores())
	}
	getTrends(t, r, "")
	if c.stores() != 2 {
		t.Errorf("expected the third call to hit the fresh entry, got %d stores", c.stores())
	}
}
