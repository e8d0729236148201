package usecase

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/rs/zerolog"

	"github.com/bnema/tinyguard/internal/application/port"
	"github.com/bnema/tinyguard/internal/domain/entity"
	"github.com/bnema/tinyguard/internal/logging"
)

// DefaultSettleDelay is how long a tab must be quiet before its scan is settled.
const DefaultSettleDelay = 3 * time.Second

// domainSet keeps unique entries in first-seen order.
type domainSet struct {
	items []string
	index map[string]struct{}
}

func newDomainSet() domainSet {
	return domainSet{index: make(map[string]struct{})}
}

func (s *domainSet) add(v string) bool {
	if _, ok := s.index[v]; ok {
		return false
	}
	s.index[v] = struct{}{}
	s.items = append(s.items, v)
	return true
}

func (s *domainSet) snapshot() []string {
	out := make([]string, len(s.items))
	copy(out, s.items)
	return out
}

type tabSession struct {
	trackers     domainSet
	thirdParties domainSet
	timer        port.Timer
	generation   uint64
	settled      bool
}

// ScanAggregator accumulates classified events per tab and signals when a
// tab has gone quiet.
type ScanAggregator struct {
	scheduler   port.Scheduler
	settleDelay time.Duration

	mu          sync.Mutex
	tabs        map[entity.TabID]*tabSession
	generation  uint64
	subscribers map[int]chan entity.ScanSettled
	nextSubID   int
}

// NewScanAggregator creates an aggregator. A non-positive delay uses DefaultSettleDelay.
func NewScanAggregator(scheduler port.Scheduler, settleDelay time.Duration) *ScanAggregator {
	if settleDelay <= 0 {
		settleDelay = DefaultSettleDelay
	}
	return &ScanAggregator{
		scheduler:   scheduler,
		settleDelay: settleDelay,
		tabs:        make(map[entity.TabID]*tabSession),
		subscribers: make(map[int]chan entity.ScanSettled),
	}
}

// RecordEvent folds event into the tab's state and restarts its settle timer.
func (a *ScanAggregator) RecordEvent(ctx context.Context, tabID entity.TabID, event entity.ClassifiedEvent) {
	log := logging.ForTab(ctx, "scan-aggregator", int64(tabID))

	a.mu.Lock()
	defer a.mu.Unlock()

	s, ok := a.tabs[tabID]
	if !ok {
		s = &tabSession{
			trackers:     newDomainSet(),
			thirdParties: newDomainSet(),
		}
		a.tabs[tabID] = s
	}

	if event.IsTracker && s.trackers.add(event.RootDomain) {
		log.Debug().Str("domain", event.RootDomain).Msg("tracker detected")
	}
	if event.IsThirdParty {
		s.thirdParties.add(event.RootDomain)
	}

	s.settled = false
	if s.timer != nil {
		s.timer.Stop()
	}
	a.generation++
	gen := a.generation
	s.generation = gen
	s.timer = a.scheduler.AfterFunc(a.settleDelay, func() {
		a.settle(log, tabID, gen)
	})
}

// settle runs when a timer fires. Timers that lost a race with a newer
// event or with EndSession find a different generation and do nothing.
func (a *ScanAggregator) settle(log zerolog.Logger, tabID entity.TabID, gen uint64) {
	a.mu.Lock()
	defer a.mu.Unlock()

	s, ok := a.tabs[tabID]
	if !ok || s.generation != gen {
		return
	}

	s.timer = nil
	s.settled = true

	ev := entity.ScanSettled{
		TabID:        tabID,
		Trackers:     s.trackers.snapshot(),
		ThirdParties: s.thirdParties.snapshot(),
		At:           a.scheduler.Now(),
	}

	log.Info().
		Int("trackers", len(ev.Trackers)).
		Int("third_parties", len(ev.ThirdParties)).
		Msg("scan complete")

	for id, ch := range a.subscribers {
		select {
		case ch <- ev:
		default:
			log.Warn().Int("subscriber", id).Msg("settle subscriber is full, dropping event")
		}
	}
}

// Session returns a copy of the tab's state. Unknown tabs yield an empty state.
// Permissions and Blocked are left empty; they are filled in at read time.
func (a *ScanAggregator) Session(tabID entity.TabID) entity.SessionState {
	state := entity.NewSessionState()

	a.mu.Lock()
	defer a.mu.Unlock()

	if s, ok := a.tabs[tabID]; ok {
		state.Trackers = s.trackers.snapshot()
		state.ThirdParties = s.thirdParties.snapshot()
	}
	return state
}

// Settled reports whether the tab has been quiet for the settle delay since
// its last event.
func (a *ScanAggregator) Settled(tabID entity.TabID) bool {
	a.mu.Lock()
	defer a.mu.Unlock()

	s, ok := a.tabs[tabID]
	return ok && s.settled
}

// EndSession drops the tab's state and cancels its pending settle timer.
func (a *ScanAggregator) EndSession(tabID entity.TabID) {
	a.mu.Lock()
	defer a.mu.Unlock()

	s, ok := a.tabs[tabID]
	if !ok {
		return
	}
	if s.timer != nil {
		s.timer.Stop()
	}
	delete(a.tabs, tabID)
}

// Tabs lists the tabs with state, in ascending order.
func (a *ScanAggregator) Tabs() []entity.TabID {
	a.mu.Lock()
	ids := make([]entity.TabID, 0, len(a.tabs))
	for id := range a.tabs {
		ids = append(ids, id)
	}
	a.mu.Unlock()

	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	return ids
}

// Subscribe registers for settle notifications. Events are dropped when the
// channel buffer is full. The returned func unsubscribes and closes the channel.
func (a *ScanAggregator) Subscribe(buffer int) (<-chan entity.ScanSettled, func()) {
	if buffer < 1 {
		buffer = 1
	}
	ch := make(chan entity.ScanSettled, buffer)

	a.mu.Lock()
	id := a.nextSubID
	a.nextSubID++
	a.subscribers[id] = ch
	a.mu.Unlock()

	var once sync.Once
	return ch, func() {
		once.Do(func() {
			a.mu.Lock()
			delete(a.subscribers, id)
			a.mu.Unlock()
			close(ch)
		})
	}
}

// Close cancels every pending settle timer.
func (a *ScanAggregator) Close() {
	a.mu.Lock()
	defer a.mu.Unlock()

	for _, s := range a.tabs {
		if s.timer != nil {
			s.timer.Stop()
			s.timer = nil
		}
		s.generation = 0
	}
}
