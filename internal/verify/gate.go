package verify

import (
	"math/rand"
	"sync"
	"time"

	"go.uber.org/zap"
)

// Status enumerates gate states for a verification session.
type Status string

const (
	StatusIdle     Status = "idle"
	StatusScanning Status = "scanning"
	StatusVerified Status = "verified"
)

const (
	confidenceMin = 92
	confidenceMax = 99
)

// Snapshot is a point-in-time view of a verification session.
type Snapshot struct {
	ComplaintID string
	Category    string
	ProofURL    string
	Status      Status
	Progress    int
	Confidence  int
	Analysis    string
}

type session struct {
	snapshot Snapshot
	stop     chan struct{}
}

type sessionKey struct {
	complaintID string
	adminID     string
}

// Gate runs proof-of-repair verification sessions. The scan is a simulated
// analysis: a timer drives progress to 100, at which point the session
// becomes Verified with a generated confidence score and analysis message.
// The Verified state is the only path to resolving a complaint; consuming it
// is single use. Sessions are keyed per complaint and admin, held in memory
// only.
type Gate struct {
	mu       sync.Mutex
	sessions map[sessionKey]*session

	tick   time.Duration
	step   int
	rng    *rand.Rand
	logger *zap.Logger
}

// Options tune the scan simulation; tests inject a fast tick and a seeded
// random source to force deterministic transitions.
type Options struct {
	Tick   time.Duration
	Step   int
	Source rand.Source
	Logger *zap.Logger
}

// NewGate constructs the gate.
func NewGate(opts Options) *Gate {
	if opts.Tick <= 0 {
		opts.Tick = 40 * time.Millisecond
	}
	if opts.Step <= 0 {
		opts.Step = 2
	}
	if opts.Source == nil {
		opts.Source = rand.NewSource(time.Now().UnixNano())
	}
	if opts.Logger == nil {
		opts.Logger = zap.NewNop()
	}
	return &Gate{
		sessions: make(map[sessionKey]*session),
		tick:     opts.Tick,
		step:     opts.Step,
		rng:      rand.New(opts.Source),
		logger:   opts.Logger,
	}
}

// Begin starts (or restarts) a scanning session for the complaint and admin.
// The previous session for the same key, if any, is canceled first so its
// timer cannot leak.
func (g *Gate) Begin(complaintID, adminID, category, proofURL string) Snapshot {
	key := sessionKey{complaintID: complaintID, adminID: adminID}

	g.mu.Lock()
	if prev, ok := g.sessions[key]; ok {
		close(prev.stop)
	}
	s := &session{
		snapshot: Snapshot{
			ComplaintID: complaintID,
			Category:    category,
			ProofURL:    proofURL,
			Status:      StatusScanning,
		},
		stop: make(chan struct{}),
	}
	g.sessions[key] = s
	snap := s.snapshot
	g.mu.Unlock()

	go g.scan(key, s)
	return snap
}

// scan advances progress on each tick until 100, then flips the session to
// Verified and generates the confidence and analysis.
func (g *Gate) scan(key sessionKey, s *session) {
	ticker := time.NewTicker(g.tick)
	defer ticker.Stop()

	for {
		select {
		case <-s.stop:
			return
		case <-ticker.C:
			g.mu.Lock()
			if g.sessions[key] != s {
				g.mu.Unlock()
				return
			}
			s.snapshot.Progress += g.step
			if s.snapshot.Progress >= 100 {
				s.snapshot.Progress = 100
				s.snapshot.Status = StatusVerified
				s.snapshot.Confidence = confidenceMin + g.rng.Intn(confidenceMax-confidenceMin+1)
				s.snapshot.Analysis = analysisFor(s.snapshot.Category, s.snapshot.Confidence)
				g.mu.Unlock()
				g.logger.Debug("verification scan complete",
					zap.String("complaint_id", key.complaintID),
					zap.Int("confidence", s.snapshot.Confidence))
				return
			}
			g.mu.Unlock()
		}
	}
}

// Progress returns the session snapshot, or (zero, false) when no session
// exists for the complaint and admin.
func (g *Gate) Progress(complaintID, adminID string) (Snapshot, bool) {
	g.mu.Lock()
	defer g.mu.Unlock()
	s, ok := g.sessions[sessionKey{complaintID: complaintID, adminID: adminID}]
	if !ok {
		return Snapshot{}, false
	}
	return s.snapshot, true
}

// Cancel discards the session and stops its timer. Canceling has no side
// effect on the complaint itself.
func (g *Gate) Cancel(complaintID, adminID string) {
	key := sessionKey{complaintID: complaintID, adminID: adminID}
	g.mu.Lock()
	defer g.mu.Unlock()
	if s, ok := g.sessions[key]; ok {
		close(s.stop)
		delete(g.sessions, key)
	}
}

// Consume removes a Verified session and returns its snapshot. It fails when
// the session is absent or has not reached Verified, leaving any in-flight
// scan untouched.
func (g *Gate) Consume(complaintID, adminID string) (Snapshot, bool) {
	key := sessionKey{complaintID: complaintID, adminID: adminID}
	g.mu.Lock()
	defer g.mu.Unlock()
	s, ok := g.sessions[key]
	if !ok || s.snapshot.Status != StatusVerified {
		return Snapshot{}, false
	}
	close(s.stop)
	delete(g.sessions, key)
	return s.snapshot, true
}

// Shutdown cancels every live session.
func (g *Gate) Shutdown() {
	g.mu.Lock()
	defer g.mu.Unlock()
	for key, s := range g.sessions {
		close(s.stop)
		delete(g.sessions, key)
	}
}
