package runtime

import (
	"context"
	"log/slog"
	"math/rand"
	"sync"
	"time"

	"echo-lab/contract"
	"echo-lab/domain"
)

// Pre-send pause bounds, sampled uniformly to give replies a human-like pace.
const (
	minReplyPause = 1000 * time.Millisecond
	maxReplyPause = 3000 * time.Millisecond
)

// cycle is the engine's only per-session state: a cancel handle for the
// ticker worker and the pending-response queue. The session itself stays in
// the store; the engine never holds a second copy.
type cycle struct {
	sessionID string
	period    time.Duration

	mu     sync.Mutex
	cancel context.CancelFunc // nil while paused
	queue  []string
}

func (c *cycle) replaceQueue(ids []string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.queue = append(c.queue[:0:0], ids...)
}

func (c *cycle) pop() (string, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if len(c.queue) == 0 {
		return "", false
	}
	id := c.queue[0]
	c.queue = c.queue[1:]
	return id, true
}

// pushFront returns a popped turn that could not be delivered, so pausing
// mid-flight neither loses nor duplicates a response.
func (c *cycle) pushFront(id string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.queue = append([]string{id}, c.queue...)
}

func (c *cycle) pending() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.queue)
}

// Engine drives the autonomous response cycle of every active session.
// Each session gets a supervised ticker worker; pausing cancels the worker
// without touching the queue, ending drops both.
type Engine struct {
	log        *slog.Logger
	selector   contract.ITurnSelector
	responder  contract.IResponder
	supervisor contract.ISupervisor

	mu      sync.Mutex
	baseCtx context.Context
	store   contract.ISessionStore
	cycles  map[string]*cycle

	rndMu sync.Mutex
	rnd   *rand.Rand
}

func NewEngine(log *slog.Logger, selector contract.ITurnSelector,
	responder contract.IResponder, supervisor contract.ISupervisor, rnd *rand.Rand) *Engine {
	return &Engine{
		log:        log,
		selector:   selector,
		responder:  responder,
		supervisor: supervisor,
		cycles:     make(map[string]*cycle),
		rnd:        rnd,
	}
}

// Start fixes the root context every session cycle derives from.
// Cancelling it stops all cycles.
func (e *Engine) Start(ctx context.Context) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.baseCtx = ctx
}

// Bind attaches the session store after construction; the store depends on
// the engine, so the cycle is broken here rather than in the constructors.
func (e *Engine) Bind(store contract.ISessionStore) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.store = store
}

func (e *Engine) StartSession(session domain.GroupSession) {
	e.mu.Lock()
	c, ok := e.cycles[session.ID]
	if !ok {
		c = &cycle{sessionID: session.ID, period: session.CoordinationRules.MessageDelay}
		e.cycles[session.ID] = c
	}
	e.mu.Unlock()

	e.installCycle(c)
}

func (e *Engine) ResumeSession(session domain.GroupSession) {
	e.StartSession(session)
}

// PauseSession cancels the ticker; queued-but-unsent turns stay put.
func (e *Engine) PauseSession(sessionID string) {
	e.mu.Lock()
	c := e.cycles[sessionID]
	e.mu.Unlock()
	if c == nil {
		return
	}

	c.mu.Lock()
	if c.cancel != nil {
		c.cancel()
		c.cancel = nil
	}
	c.mu.Unlock()
}

// EndSession is terminal: the ticker stops and the queue is discarded.
func (e *Engine) EndSession(sessionID string) {
	e.PauseSession(sessionID)

	e.mu.Lock()
	delete(e.cycles, sessionID)
	e.mu.Unlock()
}

// ProcessMessage re-evaluates turn selection for the triggering message and
// replaces the pending queue; selection is per message, never accumulated.
func (e *Engine) ProcessMessage(session domain.GroupSession, message domain.Message) {
	e.mu.Lock()
	c := e.cycles[session.ID]
	e.mu.Unlock()
	if c == nil {
		return
	}

	next := e.selector.NextParticipants(session, message)
	c.replaceQueue(next)
	e.log.Debug("Turn selection updated",
		"session_id", session.ID,
		"trigger", message.ID,
		"pending", len(next))
}

// Stats feeds the telemetry heartbeat.
type Stats struct {
	ActiveCycles    int
	PendingReplies  int
	TrackedSessions int
}

func (e *Engine) Stats() Stats {
	e.mu.Lock()
	defer e.mu.Unlock()

	stats := Stats{TrackedSessions: len(e.cycles)}
	for _, c := range e.cycles {
		c.mu.Lock()
		if c.cancel != nil {
			stats.ActiveCycles++
		}
		stats.PendingReplies += len(c.queue)
		c.mu.Unlock()
	}
	return stats
}

func (e *Engine) installCycle(c *cycle) {
	e.mu.Lock()
	base := e.baseCtx
	e.mu.Unlock()
	if base == nil {
		base = context.Background()
	}

	c.mu.Lock()
	if c.cancel != nil {
		// Ticker already running, nothing to reinstall.
		c.mu.Unlock()
		return
	}
	ctx, cancel := context.WithCancel(base)
	c.cancel = cancel
	c.mu.Unlock()

	e.supervisor.Start(ctx, &cycleWorker{engine: e, cycle: c})
}

// cycleWorker ticks at the session's message delay and serves one queued turn
// per tick. It runs under the supervisor, so a panic in reply generation
// restarts the ticker instead of killing the process.
type cycleWorker struct {
	engine *Engine
	cycle  *cycle
}

func (w *cycleWorker) Run(ctx context.Context) error {
	ticker := time.NewTicker(w.cycle.period)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return nil
		case <-ticker.C:
			if done := w.engine.serveTurn(ctx, w.cycle); done {
				return nil
			}
		}
	}
}

// serveTurn pops one turn and delivers the generated reply. It reports true
// when the cycle should self-cancel (session gone or no longer active).
func (e *Engine) serveTurn(ctx context.Context, c *cycle) bool {
	e.mu.Lock()
	store := e.store
	e.mu.Unlock()
	if store == nil {
		return false
	}

	session, err := store.Session(c.sessionID)
	if err != nil {
		return true
	}
	if session.Status != domain.StatusActive {
		return true
	}

	participantID, ok := c.pop()
	if !ok {
		return false
	}

	participant := session.Participant(participantID)
	if participant == nil {
		return false
	}

	content, messageType := e.responder.ComposeReply(ctx, session, *participant)

	select {
	case <-ctx.Done():
		// Paused before delivery: keep the turn for resume.
		c.pushFront(participantID)
		return false
	case <-time.After(e.replyPause()):
	}

	if _, err := store.SendMessage(ctx, domain.SendMessageCommand{
		SessionID:     c.sessionID,
		ParticipantID: participantID,
		Content:       content,
		Type:          messageType,
	}); err != nil {
		e.log.Error("Failed to deliver generated reply",
			"session_id", c.sessionID,
			"participant_id", participantID,
			"error", err)
	}
	return false
}

func (e *Engine) replyPause() time.Duration {
	e.rndMu.Lock()
	defer e.rndMu.Unlock()
	return minReplyPause + time.Duration(e.rnd.Int63n(int64(maxReplyPause-minReplyPause)))
}
