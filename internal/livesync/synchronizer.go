package livesync

import (
	"context"
	"encoding/json"
	"log"
	"sync"
	"time"

	"kelasboard/internal/backend"
)

// MonitorAPI is the slice of the backend client the synchronizer fetches from.
type MonitorAPI interface {
	TodaysSchedule(ctx context.Context) ([]backend.Jadwal, error)
	InitialStatus(ctx context.Context) (backend.InitialStatus, error)
}

// Cache persists the last applied state so a restarted front end can paint
// something while the backend is unreachable.
type Cache interface {
	Save(ctx context.Context, st State) error
	Load(ctx context.Context) (State, time.Time, error)
}

// Config wires a Synchronizer.
type Config struct {
	Monitor      MonitorAPI
	Dial         Dialer // nil disables the stream (initial snapshot + polling only)
	Cache        Cache  // nil disables the snapshot cache
	PollInterval time.Duration
	Now          func() time.Time
	Metrics      *Instruments
}

// Synchronizer owns the dashboard view state for the lifetime of the view.
// One blocking snapshot fetch on start, then stream events, a schedule
// re-poll and a display clock, all torn down together by context cancel.
type Synchronizer struct {
	monitor MonitorAPI
	dial    Dialer
	cache   Cache
	poll    time.Duration
	now     func() time.Time
	inst    *Instruments

	mu    sync.Mutex
	state State
	subs  map[chan State]struct{}
}

// New builds a synchronizer; Run starts it.
func New(cfg Config) *Synchronizer {
	if cfg.PollInterval <= 0 {
		cfg.PollInterval = 5 * time.Minute
	}
	if cfg.Now == nil {
		cfg.Now = time.Now
	}
	s := &Synchronizer{
		monitor: cfg.Monitor,
		dial:    cfg.Dial,
		cache:   cfg.Cache,
		poll:    cfg.PollInterval,
		now:     cfg.Now,
		inst:    cfg.Metrics,
		subs:    make(map[chan State]struct{}),
	}
	s.state.Health = NewHealth()
	s.state.Now = cfg.Now()
	return s
}

// Run blocks until ctx is cancelled. On return the stream connection is
// closed and both tickers are stopped; nothing outlives the view.
func (s *Synchronizer) Run(ctx context.Context) {
	s.bootstrap(ctx)

	if s.dial != nil {
		go s.streamLoop(ctx)
	}

	sched := time.NewTicker(s.poll)
	defer sched.Stop()
	clock := time.NewTicker(time.Second)
	defer clock.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-sched.C:
			s.refreshSchedule(ctx)
		case <-clock.C:
			s.tickClock(ctx)
		}
	}
}

// bootstrap loads the day's schedule and the combined initial snapshot. The
// elapsed wall clock of that single round trip seeds the latency metric.
func (s *Synchronizer) bootstrap(ctx context.Context) {
	s.refreshSchedule(ctx)

	start := s.now()
	snap, err := s.monitor.InitialStatus(ctx)
	if err != nil {
		log.Printf("initial status fetch failed: %v", err)
		s.restoreFromCache(ctx)
		return
	}
	elapsed := float64(s.now().Sub(start).Milliseconds())

	s.mu.Lock()
	if snap.Health != nil {
		s.state.Health = ReduceHealth(s.state.Health, *snap.Health)
	}
	if snap.Status != nil {
		status := *snap.Status
		status.ServerTimestampMS = 0
		s.state.Status = ReduceStatus(s.state.Status, status)
	}
	if snap.Metrics != nil {
		s.state.Metrics = ReduceMetrics(s.state.Metrics, *snap.Metrics)
	}
	s.state.Metrics.WSLatencyMS = &elapsed
	s.state.Stale = false
	s.state.SavedAt = time.Time{}
	s.mu.Unlock()

	if s.inst != nil {
		s.inst.Latency.Set(elapsed)
	}
	s.publish(ctx, true)
}

// restoreFromCache paints the last persisted snapshot, flagged stale. The
// schedule slice keeps its strict empty-on-failure rule and is not restored.
func (s *Synchronizer) restoreFromCache(ctx context.Context) {
	if s.cache == nil {
		return
	}
	cached, savedAt, err := s.cache.Load(ctx)
	if err != nil || savedAt.IsZero() {
		return
	}
	s.mu.Lock()
	s.state.Status = cached.Status
	s.state.Health = cached.Health
	s.state.Metrics = cached.Metrics
	s.state.Stale = true
	s.state.SavedAt = savedAt
	s.mu.Unlock()
	log.Printf("painted snapshot cache from %s", savedAt.Format(time.RFC3339))
	s.publish(ctx, false)
}

func (s *Synchronizer) streamLoop(ctx context.Context) {
	conn, err := s.dial(ctx)
	if err != nil {
		log.Printf("event stream dial failed: %v", err)
		return
	}
	go func() {
		<-ctx.Done()
		_ = conn.Close()
	}()
	log.Println("event stream connected")

	for {
		evt, err := conn.ReadEvent()
		if err != nil {
			if ctx.Err() == nil {
				log.Printf("event stream closed: %v", err)
			}
			return
		}
		s.Apply(ctx, evt)
	}
}

// Apply routes one stream event to its slice's reducer. Event kinds are
// independent: each slice's last applied update wins for that slice only.
func (s *Synchronizer) Apply(ctx context.Context, evt Event) {
	switch evt.Name {
	case EventStatus:
		var next backend.LiveStatus
		if err := json.Unmarshal(evt.Data, &next); err != nil {
			log.Printf("bad status event: %v", err)
			return
		}
		s.mu.Lock()
		if next.ServerTimestampMS > 0 {
			// The only latency update path after initial load.
			latency := float64(s.now().UnixMilli() - next.ServerTimestampMS)
			s.state.Metrics.WSLatencyMS = &latency
			if s.inst != nil {
				s.inst.Latency.Set(latency)
			}
		}
		next.ServerTimestampMS = 0 // envelope metadata, not display state
		s.state.Status = ReduceStatus(s.state.Status, next)
		s.clearStaleLocked()
		s.mu.Unlock()

	case EventMetrics:
		var patch backend.MetricsPatch
		if err := json.Unmarshal(evt.Data, &patch); err != nil {
			log.Printf("bad metrics event: %v", err)
			return
		}
		patch.ServerTimestampMS = nil
		s.mu.Lock()
		s.state.Metrics = ReduceMetrics(s.state.Metrics, patch)
		s.clearStaleLocked()
		s.mu.Unlock()

	case EventHealth:
		var patch backend.HealthPatch
		if err := json.Unmarshal(evt.Data, &patch); err != nil {
			log.Printf("bad health event: %v", err)
			return
		}
		s.mu.Lock()
		s.state.Health = ReduceHealth(s.state.Health, patch)
		s.clearStaleLocked()
		s.mu.Unlock()

	default:
		return
	}

	if s.inst != nil {
		s.inst.Events.WithLabelValues(evt.Name).Inc()
	}
	s.publish(ctx, true)
}

func (s *Synchronizer) clearStaleLocked() {
	s.state.Stale = false
	s.state.SavedAt = time.Time{}
}

// refreshSchedule wholesale-replaces the schedule slice. Failure degrades to
// an empty list: nothing to show beats silently stale rows.
func (s *Synchronizer) refreshSchedule(ctx context.Context) {
	if ctx.Err() != nil {
		return
	}
	list, err := s.monitor.TodaysSchedule(ctx)
	if err != nil {
		log.Printf("schedule fetch failed: %v", err)
		if s.inst != nil {
			s.inst.PollFailures.Inc()
		}
		list = nil
	}
	if ctx.Err() != nil {
		// view already torn down; discard the late response
		return
	}
	s.mu.Lock()
	s.state.Schedule = list
	s.mu.Unlock()
	s.publish(ctx, err == nil)
}

// tickClock refreshes the displayed clock only; no data dependency.
func (s *Synchronizer) tickClock(ctx context.Context) {
	s.mu.Lock()
	s.state.Now = s.now()
	s.mu.Unlock()
	s.publish(ctx, false)
}

// State returns a copy of the current view state.
func (s *Synchronizer) State() State {
	s.mu.Lock()
	defer s.mu.Unlock()
	st := s.state
	st.Schedule = append([]backend.Jadwal(nil), s.state.Schedule...)
	return st
}

// Subscribe registers a state feed. Slow consumers drop intermediate states
// rather than stalling the synchronizer. The cancel func unregisters.
func (s *Synchronizer) Subscribe() (<-chan State, func()) {
	ch := make(chan State, 8)
	s.mu.Lock()
	s.subs[ch] = struct{}{}
	s.mu.Unlock()
	cancel := func() {
		s.mu.Lock()
		delete(s.subs, ch)
		s.mu.Unlock()
	}
	return ch, cancel
}

func (s *Synchronizer) publish(ctx context.Context, save bool) {
	st := s.State()
	s.mu.Lock()
	for ch := range s.subs {
		select {
		case ch <- st:
		default:
		}
	}
	s.mu.Unlock()

	if save && s.cache != nil && !st.Stale {
		if err := s.cache.Save(ctx, st); err != nil {
			log.Printf("snapshot cache save failed: %v", err)
		}
	}
}
