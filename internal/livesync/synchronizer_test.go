package livesync

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"kelasboard/internal/backend"
)

type fakeMonitor struct {
	schedule   []backend.Jadwal
	schedErr   error
	schedCalls int
	initial    backend.InitialStatus
	initErr    error
}

func (m *fakeMonitor) TodaysSchedule(ctx context.Context) ([]backend.Jadwal, error) {
	m.schedCalls++
	return m.schedule, m.schedErr
}

func (m *fakeMonitor) InitialStatus(ctx context.Context) (backend.InitialStatus, error) {
	return m.initial, m.initErr
}

type fakeCache struct {
	state   State
	savedAt time.Time
	loadErr error
	saved   []State
}

func (c *fakeCache) Save(ctx context.Context, st State) error {
	c.saved = append(c.saved, st)
	return nil
}

func (c *fakeCache) Load(ctx context.Context) (State, time.Time, error) {
	return c.state, c.savedAt, c.loadErr
}

func fixedNow() func() time.Time {
	at := time.Date(2025, 3, 10, 8, 0, 0, 0, time.UTC)
	return func() time.Time { return at }
}

func TestBootstrapAppliesInitialSnapshot(t *testing.T) {
	mon := &fakeMonitor{
		schedule: []backend.Jadwal{{IDJadwal: 1, NamaMatkul: "Jaringan Komputer"}},
		initial: backend.InitialStatus{
			Status:  &backend.LiveStatus{StatusKelas: "SEDANG BERLANGSUNG", CountLive: 9},
			Health:  &backend.HealthPatch{Esp32: str("AKTIF")},
			Metrics: &backend.MetricsPatch{YoloMS: f64(40)},
		},
	}
	s := New(Config{Monitor: mon, Now: fixedNow()})

	s.bootstrap(context.Background())
	st := s.State()

	assert.Equal(t, "SEDANG BERLANGSUNG", st.Status.StatusKelas)
	assert.Equal(t, 9, st.Status.CountLive)
	assert.Equal(t, "AKTIF", st.Health.Esp32)
	assert.Equal(t, HealthUnknown, st.Health.Raspi)
	assert.Equal(t, f64(40), st.Metrics.YoloMS)
	require.NotNil(t, st.Metrics.WSLatencyMS)
	assert.Len(t, st.Schedule, 1)
	assert.False(t, st.Stale)
}

func TestBootstrapFailurePaintsCachedSnapshot(t *testing.T) {
	savedAt := time.Date(2025, 3, 9, 17, 0, 0, 0, time.UTC)
	cache := &fakeCache{
		state: State{
			Status:   backend.LiveStatus{StatusKelas: "SELESAI"},
			Health:   Health{Esp32: "AKTIF", Raspi: "AKTIF"},
			Schedule: []backend.Jadwal{{IDJadwal: 99}},
		},
		savedAt: savedAt,
	}
	mon := &fakeMonitor{
		schedErr: errors.New("connection refused"),
		initErr:  errors.New("connection refused"),
	}
	s := New(Config{Monitor: mon, Cache: cache, Now: fixedNow()})

	s.bootstrap(context.Background())
	st := s.State()

	assert.True(t, st.Stale)
	assert.Equal(t, savedAt, st.SavedAt)
	assert.Equal(t, "SELESAI", st.Status.StatusKelas)
	assert.Equal(t, "AKTIF", st.Health.Esp32)
	// the schedule keeps the strict empty-on-failure rule, never the cache
	assert.Empty(t, st.Schedule)
	// a stale paint is never written back
	assert.Empty(t, cache.saved)
}

func TestBootstrapFailureWithoutCacheStaysEmpty(t *testing.T) {
	mon := &fakeMonitor{initErr: errors.New("boom")}
	s := New(Config{Monitor: mon, Now: fixedNow()})

	s.bootstrap(context.Background())
	st := s.State()

	assert.False(t, st.Stale)
	assert.Equal(t, backend.LiveStatus{}, st.Status)
	assert.Equal(t, NewHealth(), st.Health)
}

func statusEvent(t *testing.T, st backend.LiveStatus) Event {
	t.Helper()
	data, err := json.Marshal(st)
	require.NoError(t, err)
	return Event{Name: EventStatus, Data: data}
}

func TestApplyStatusEventReplacesAndSetsLatency(t *testing.T) {
	now := fixedNow()
	s := New(Config{Monitor: &fakeMonitor{}, Now: now})

	s.Apply(context.Background(), statusEvent(t, backend.LiveStatus{
		StatusKelas:       "SEDANG BERLANGSUNG",
		CountLive:         5,
		ServerTimestampMS: now().UnixMilli() - 120,
	}))
	st := s.State()

	assert.Equal(t, "SEDANG BERLANGSUNG", st.Status.StatusKelas)
	require.NotNil(t, st.Metrics.WSLatencyMS)
	assert.Equal(t, float64(120), *st.Metrics.WSLatencyMS)
	// the envelope timestamp is never stored on the status slice
	assert.Equal(t, int64(0), st.Status.ServerTimestampMS)

	// a status event without a timestamp leaves latency untouched
	s.Apply(context.Background(), statusEvent(t, backend.LiveStatus{StatusKelas: "SELESAI"}))
	st = s.State()
	assert.Equal(t, "SELESAI", st.Status.StatusKelas)
	assert.Equal(t, float64(120), *st.Metrics.WSLatencyMS)
}

func TestApplyMetricsEventDoesNotTouchLatencyViaTimestamp(t *testing.T) {
	s := New(Config{Monitor: &fakeMonitor{}, Now: fixedNow()})
	ts := int64(1700000000000)

	data, err := json.Marshal(backend.MetricsPatch{YoloMS: f64(33), ServerTimestampMS: &ts})
	require.NoError(t, err)
	s.Apply(context.Background(), Event{Name: EventMetrics, Data: data})

	st := s.State()
	assert.Equal(t, f64(33), st.Metrics.YoloMS)
	assert.Nil(t, st.Metrics.WSLatencyMS)
}

func TestApplyHealthEventMergesPartial(t *testing.T) {
	s := New(Config{Monitor: &fakeMonitor{}, Now: fixedNow()})

	data, err := json.Marshal(backend.HealthPatch{Raspi: str("MATI")})
	require.NoError(t, err)
	s.Apply(context.Background(), Event{Name: EventHealth, Data: data})

	st := s.State()
	assert.Equal(t, HealthUnknown, st.Health.Esp32)
	assert.Equal(t, "MATI", st.Health.Raspi)
}

func TestApplyIgnoresUnknownAndMalformedEvents(t *testing.T) {
	s := New(Config{Monitor: &fakeMonitor{}, Now: fixedNow()})
	before := s.State()

	s.Apply(context.Background(), Event{Name: "update_unknown", Data: json.RawMessage(`{}`)})
	s.Apply(context.Background(), Event{Name: EventStatus, Data: json.RawMessage(`not json`)})

	after := s.State()
	assert.Equal(t, before.Status, after.Status)
	assert.Equal(t, before.Health, after.Health)
}

func TestApplyClearsStaleFlag(t *testing.T) {
	cache := &fakeCache{
		state:   State{Status: backend.LiveStatus{StatusKelas: "SELESAI"}},
		savedAt: time.Date(2025, 3, 9, 17, 0, 0, 0, time.UTC),
	}
	mon := &fakeMonitor{initErr: errors.New("down")}
	s := New(Config{Monitor: mon, Cache: cache, Now: fixedNow()})
	s.bootstrap(context.Background())
	require.True(t, s.State().Stale)

	s.Apply(context.Background(), statusEvent(t, backend.LiveStatus{StatusKelas: "SEDANG BERLANGSUNG"}))

	st := s.State()
	assert.False(t, st.Stale)
	assert.True(t, st.SavedAt.IsZero())
}

func TestRefreshScheduleFailureDegradesToEmpty(t *testing.T) {
	mon := &fakeMonitor{schedule: []backend.Jadwal{{IDJadwal: 1}}}
	s := New(Config{Monitor: mon, Now: fixedNow()})

	s.refreshSchedule(context.Background())
	assert.Len(t, s.State().Schedule, 1)

	mon.schedErr = errors.New("backend down")
	s.refreshSchedule(context.Background())
	assert.Empty(t, s.State().Schedule)
}

func TestRefreshScheduleSkippedAfterCancel(t *testing.T) {
	mon := &fakeMonitor{schedule: []backend.Jadwal{{IDJadwal: 1}}}
	s := New(Config{Monitor: mon, Now: fixedNow()})
	s.refreshSchedule(context.Background())
	require.Len(t, s.State().Schedule, 1)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	mon.schedule = nil
	calls := mon.schedCalls
	s.refreshSchedule(ctx)

	// torn-down views neither fetch nor mutate
	assert.Equal(t, calls, mon.schedCalls)
	assert.Len(t, s.State().Schedule, 1)
}

func TestSubscribeReceivesAppliedStates(t *testing.T) {
	s := New(Config{Monitor: &fakeMonitor{}, Now: fixedNow()})
	states, cancel := s.Subscribe()
	defer cancel()

	s.Apply(context.Background(), statusEvent(t, backend.LiveStatus{StatusKelas: "SEDANG BERLANGSUNG"}))

	select {
	case st := <-states:
		assert.Equal(t, "SEDANG BERLANGSUNG", st.Status.StatusKelas)
	case <-time.After(time.Second):
		t.Fatal("no state published")
	}
}

func TestAppliedStatesPersistToCache(t *testing.T) {
	cache := &fakeCache{}
	s := New(Config{Monitor: &fakeMonitor{}, Cache: cache, Now: fixedNow()})

	s.Apply(context.Background(), statusEvent(t, backend.LiveStatus{StatusKelas: "SELESAI"}))

	require.NotEmpty(t, cache.saved)
	assert.Equal(t, "SELESAI", cache.saved[len(cache.saved)-1].Status.StatusKelas)
}
