package application

import (
	"context"
	"fmt"
	"time"

	"github.com/bnema/peon-ping-cli/internal/domain"
	"github.com/bnema/peon-ping-cli/internal/ports"
)

// Dispatcher turns one hook event into an Outcome: it runs delegate
// detection, pack rotation, the routing table, the rapid-prompt check, and
// sound selection, then persists the state document at most once.
type Dispatcher struct {
	config ports.ConfigRepository
	state  ports.StateRepository
	packs  ports.PackRepository
	clock  ports.Clock
	rand   ports.Rand
}

func NewDispatcher(config ports.ConfigRepository, state ports.StateRepository, packs ports.PackRepository, clock ports.Clock, rand ports.Rand) *Dispatcher {
	if clock == nil {
		clock = ports.SystemClock{}
	}
	if rand == nil {
		rand = ports.SystemRand{}
	}

	return &Dispatcher{
		config: config,
		state:  state,
		packs:  packs,
		clock:  clock,
		rand:   rand,
	}
}

// Outcome is what the caller hands to the player/notifier/title
// collaborators. A zero Outcome means the event produced nothing.
type Outcome struct {
	Suppressed    bool
	Title         string
	SoundPath     string
	Volume        float64
	Notify        bool
	NotifyMessage string
	NotifyColor   string
}

// Dispatch processes a single event. Configuration and state read failures
// degrade to defaults and an empty document; a returned error means only
// that the final state write failed, and the Outcome is still valid.
func (d *Dispatcher) Dispatch(ctx context.Context, e domain.Event, paused bool) (Outcome, error) {
	cfg, err := d.config.Load(ctx)
	if err != nil {
		cfg = domain.DefaultConfig()
	}
	if !cfg.Enabled {
		return Outcome{Suppressed: true}, nil
	}

	state, err := d.state.Load(ctx)
	if err != nil {
		state = domain.State{}
	}

	// Delegated sessions short-circuit everything for the lifetime of the
	// state document. The first sighting is persisted immediately. An empty
	// session id is a valid key: id-less delegate events are flagged under "".
	if e.Delegated() {
		state.MarkAgentSession(e.SessionID)
		if state.Dirty() {
			if err := d.state.Save(ctx, state); err != nil {
				return Outcome{Suppressed: true}, fmt.Errorf("save session state: %w", err)
			}
		}
		return Outcome{Suppressed: true}, nil
	}
	if state.AgentSession(e.SessionID) {
		return Outcome{Suppressed: true}, nil
	}

	pack := d.sessionPack(cfg, &state, e.SessionID)

	route := domain.Classify(e)
	if !route.Handled {
		// Unknown event or subtype: drop without persisting anything,
		// including a pack draw made above.
		return Outcome{}, nil
	}

	if e.Name == domain.EventUserPromptSubmit && cfg.CategoryEnabled(domain.CategoryAnnoyed) {
		now := epochSeconds(d.clock.Now())
		count := state.RecordPrompt(e.SessionID, now, cfg.AnnoyedWindowSeconds)
		if count >= cfg.AnnoyedThreshold {
			route.Category = domain.CategoryAnnoyed
		}
	}

	// A disabled category silences the sound but the title and notification
	// still go out.
	if route.Category != "" && !cfg.CategoryEnabled(route.Category) {
		route.Category = ""
	}

	out := Outcome{Volume: cfg.Volume}
	if route.Category != "" && !paused {
		out.SoundPath = d.pickSound(ctx, pack, route.Category, &state)
	}

	project := domain.ProjectName(e.CWD)
	out.Title = route.Title(project)
	if route.Notify && !paused {
		out.Notify = true
		out.NotifyMessage = route.NotifyMessage(project)
		out.NotifyColor = route.NotifyColor
	}

	if state.Dirty() {
		if err := d.state.Save(ctx, state); err != nil {
			return out, fmt.Errorf("save session state: %w", err)
		}
	}

	return out, nil
}

// sessionPack resolves the pack for this invocation. With rotation active,
// each session keeps the pack drawn on first encounter as long as it remains
// a rotation member; the config's active pack is never rewritten.
func (d *Dispatcher) sessionPack(cfg domain.Config, state *domain.State, sessionID string) string {
	if len(cfg.PackRotation) == 0 {
		return cfg.ActivePack
	}

	if pack, ok := state.PackFor(sessionID); ok && cfg.RotationContains(pack) {
		return pack
	}

	pack := cfg.PackRotation[d.rand.Intn(len(cfg.PackRotation))]
	state.AssignPack(sessionID, pack)
	return pack
}

func epochSeconds(t time.Time) float64 {
	return float64(t.UnixMicro()) / 1e6
}
