package application

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/bnema/peon-ping-cli/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeConfigRepo struct {
	cfg domain.Config
}

func (f *fakeConfigRepo) Load(_ context.Context) (domain.Config, error) {
	return f.cfg, nil
}

func (f *fakeConfigRepo) Save(_ context.Context, cfg domain.Config) error {
	f.cfg = cfg
	return nil
}

type fakeStateRepo struct {
	state domain.State
	saves int
}

func (f *fakeStateRepo) Load(_ context.Context) (domain.State, error) {
	return f.state, nil
}

func (f *fakeStateRepo) Save(_ context.Context, state domain.State) error {
	// Keep only the persisted fields, like the file-backed repository: a
	// later Load must come back clean.
	f.state = domain.State{
		AgentSessions:    state.AgentSessions,
		SessionPacks:     state.SessionPacks,
		PromptTimestamps: state.PromptTimestamps,
		LastPlayed:       state.LastPlayed,
	}
	f.saves++
	return nil
}

type fakePackRepo struct {
	manifests map[string]domain.PackManifest
}

func (f *fakePackRepo) Manifest(_ context.Context, name string) (domain.PackManifest, error) {
	manifest, ok := f.manifests[name]
	if !ok {
		return domain.PackManifest{}, domain.ErrPackNotFound
	}
	return manifest, nil
}

func (f *fakePackRepo) List(_ context.Context) ([]domain.PackManifest, error) {
	manifests := make([]domain.PackManifest, 0, len(f.manifests))
	for _, manifest := range f.manifests {
		manifests = append(manifests, manifest)
	}
	return manifests, nil
}

func (f *fakePackRepo) SoundPath(pack, file string) string {
	return filepath.Join("packs", pack, "sounds", file)
}

type fakeClock struct {
	now time.Time
}

func (f *fakeClock) Now() time.Time {
	return f.now
}

func (f *fakeClock) advance(d time.Duration) {
	f.now = f.now.Add(d)
}

// seqRand replays a fixed index sequence, wrapping around.
type seqRand struct {
	values []int
	next   int
}

func (r *seqRand) Intn(n int) int {
	if len(r.values) == 0 {
		return 0
	}
	v := r.values[r.next%len(r.values)]
	r.next++
	return v % n
}

func testManifest() domain.PackManifest {
	return domain.PackManifest{
		Name: "peon",
		Categories: map[string]domain.PackCategory{
			domain.CategoryGreeting: {Sounds: []domain.PackSound{
				{File: "Hello1.wav"}, {File: "Hello2.wav"},
			}},
			domain.CategoryComplete: {Sounds: []domain.PackSound{
				{File: "Done1.wav"}, {File: "Done2.wav"}, {File: "Done3.wav"},
			}},
			domain.CategoryPermission: {Sounds: []domain.PackSound{
				{File: "Perm.wav"},
			}},
			domain.CategoryAnnoyed: {Sounds: []domain.PackSound{
				{File: "Annoyed.wav"},
			}},
		},
	}
}

type fixture struct {
	dispatcher *Dispatcher
	config     *fakeConfigRepo
	state      *fakeStateRepo
	clock      *fakeClock
}

func newFixture(cfg domain.Config, rand *seqRand) *fixture {
	config := &fakeConfigRepo{cfg: cfg}
	state := &fakeStateRepo{}
	packs := &fakePackRepo{manifests: map[string]domain.PackManifest{
		"peon": testManifest(),
		"orc":  {Name: "orc", Categories: map[string]domain.PackCategory{
			domain.CategoryGreeting: {Sounds: []domain.PackSound{{File: "Orc.wav"}}},
		}},
	}}
	clock := &fakeClock{now: time.Date(2026, 8, 25, 12, 0, 0, 0, time.UTC)}
	if rand == nil {
		rand = &seqRand{}
	}

	return &fixture{
		dispatcher: NewDispatcher(config, state, packs, clock, rand),
		config:     config,
		state:      state,
		clock:      clock,
	}
}

func sessionStart(id string) domain.Event {
	return domain.Event{Name: domain.EventSessionStart, CWD: "/tmp/myproject", SessionID: id, PermissionMode: "default"}
}

func TestSessionStartPicksGreetingSound(t *testing.T) {
	f := newFixture(domain.DefaultConfig(), nil)

	out, err := f.dispatcher.Dispatch(context.Background(), sessionStart("s1"), false)
	require.NoError(t, err)

	assert.False(t, out.Suppressed)
	assert.Equal(t, filepath.Join("packs", "peon", "sounds", "Hello1.wav"), out.SoundPath)
	assert.Equal(t, "myproject: ready", out.Title)
	assert.False(t, out.Notify)
	assert.Equal(t, "Hello1.wav", f.state.state.LastPlayedFile(domain.CategoryGreeting))
	assert.Equal(t, 1, f.state.saves)
}

func TestSessionStartPausedSkipsSoundButKeepsTitle(t *testing.T) {
	f := newFixture(domain.DefaultConfig(), nil)

	out, err := f.dispatcher.Dispatch(context.Background(), sessionStart("s1"), true)
	require.NoError(t, err)

	assert.Empty(t, out.SoundPath)
	assert.Equal(t, "myproject: ready", out.Title)
	assert.Empty(t, f.state.state.LastPlayedFile(domain.CategoryGreeting))
	assert.Zero(t, f.state.saves)
}

func TestDisabledCategoryStillNotifies(t *testing.T) {
	cfg := domain.DefaultConfig()
	cfg.Categories[domain.CategoryComplete] = false
	f := newFixture(cfg, nil)

	out, err := f.dispatcher.Dispatch(context.Background(),
		domain.Event{Name: domain.EventStop, CWD: "/tmp/myproject", SessionID: "s1"}, false)
	require.NoError(t, err)

	assert.Empty(t, out.SoundPath)
	assert.True(t, out.Notify)
	assert.Equal(t, "myproject  —  Task complete", out.NotifyMessage)
	assert.Equal(t, domain.NotifyColorBlue, out.NotifyColor)
	assert.Equal(t, "● myproject: done", out.Title)
}

func TestIdlePromptNeverTouchesLastPlayed(t *testing.T) {
	f := newFixture(domain.DefaultConfig(), nil)

	out, err := f.dispatcher.Dispatch(context.Background(),
		domain.Event{Name: domain.EventNotification, NotificationType: domain.NotificationIdlePrompt,
			CWD: "/tmp/myproject", SessionID: "s1"}, false)
	require.NoError(t, err)

	assert.Empty(t, out.SoundPath)
	assert.True(t, out.Notify)
	assert.Equal(t, domain.NotifyColorYellow, out.NotifyColor)
	assert.Empty(t, f.state.state.LastPlayed)
	assert.Zero(t, f.state.saves)
}

func TestUnknownEventProducesNothing(t *testing.T) {
	cfg := domain.DefaultConfig()
	cfg.PackRotation = []string{"peon", "orc"}
	f := newFixture(cfg, nil)

	out, err := f.dispatcher.Dispatch(context.Background(),
		domain.Event{Name: "SomeOtherEvent", SessionID: "s1"}, false)
	require.NoError(t, err)

	assert.Equal(t, Outcome{}, out)
	// The speculative pack draw for an unhandled event is not persisted.
	assert.Zero(t, f.state.saves)
}

func TestDisabledConfigSuppressesEverything(t *testing.T) {
	cfg := domain.DefaultConfig()
	cfg.Enabled = false
	f := newFixture(cfg, nil)

	out, err := f.dispatcher.Dispatch(context.Background(), sessionStart("s1"), false)
	require.NoError(t, err)

	assert.True(t, out.Suppressed)
	assert.Zero(t, f.state.saves)
}

func TestDelegatedSessionIsRecordedAndSuppressed(t *testing.T) {
	f := newFixture(domain.DefaultConfig(), nil)

	out, err := f.dispatcher.Dispatch(context.Background(),
		domain.Event{Name: domain.EventSessionStart, SessionID: "agent-1", PermissionMode: domain.PermissionModeDelegate}, false)
	require.NoError(t, err)

	assert.True(t, out.Suppressed)
	assert.True(t, f.state.state.AgentSession("agent-1"))
	assert.Equal(t, 1, f.state.saves)

	// Every later event for that session stays silent, with no state churn.
	for _, name := range []string{domain.EventStop, domain.EventUserPromptSubmit, domain.EventSessionStart} {
		out, err := f.dispatcher.Dispatch(context.Background(),
			domain.Event{Name: name, SessionID: "agent-1", PermissionMode: "default"}, false)
		require.NoError(t, err)
		assert.True(t, out.Suppressed)
	}
	assert.Empty(t, f.state.state.LastPlayed)
	assert.Empty(t, f.state.state.SessionPacks)
	assert.Empty(t, f.state.state.PromptTimestamps)
	assert.Equal(t, 1, f.state.saves)
}

func TestDelegateWithoutSessionIDStillSuppressed(t *testing.T) {
	f := newFixture(domain.DefaultConfig(), nil)

	out, err := f.dispatcher.Dispatch(context.Background(),
		domain.Event{Name: domain.EventSessionStart, CWD: "/tmp/myproject",
			PermissionMode: domain.PermissionModeDelegate}, false)
	require.NoError(t, err)

	assert.True(t, out.Suppressed)
	assert.Empty(t, out.SoundPath)
	assert.True(t, f.state.state.AgentSession(""))
	assert.Empty(t, f.state.state.LastPlayed)
	assert.Equal(t, 1, f.state.saves)

	// Later id-less events fall under the same flag.
	out, err = f.dispatcher.Dispatch(context.Background(),
		domain.Event{Name: domain.EventStop, CWD: "/tmp/myproject", PermissionMode: "default"}, false)
	require.NoError(t, err)
	assert.True(t, out.Suppressed)
	assert.Equal(t, 1, f.state.saves)
}

func promptSubmit(id string) domain.Event {
	return domain.Event{Name: domain.EventUserPromptSubmit, CWD: "/tmp/myproject", SessionID: id, PermissionMode: "default"}
}

func TestAnnoyedFiresOnThirdRapidPrompt(t *testing.T) {
	f := newFixture(domain.DefaultConfig(), nil)

	for i := 0; i < 2; i++ {
		out, err := f.dispatcher.Dispatch(context.Background(), promptSubmit("s1"), false)
		require.NoError(t, err)
		assert.Empty(t, out.SoundPath)
		f.clock.advance(2 * time.Second)
	}

	out, err := f.dispatcher.Dispatch(context.Background(), promptSubmit("s1"), false)
	require.NoError(t, err)
	assert.Equal(t, filepath.Join("packs", "peon", "sounds", "Annoyed.wav"), out.SoundPath)
	assert.Equal(t, "myproject: working", out.Title)

	// The window is not reset after firing: the very next rapid prompt
	// triggers again.
	f.clock.advance(time.Second)
	out, err = f.dispatcher.Dispatch(context.Background(), promptSubmit("s1"), false)
	require.NoError(t, err)
	assert.NotEmpty(t, out.SoundPath)
}

func TestAnnoyedDoesNotFireAcrossTheWindow(t *testing.T) {
	f := newFixture(domain.DefaultConfig(), nil)

	for i := 0; i < 2; i++ {
		f.dispatcher.Dispatch(context.Background(), promptSubmit("s1"), false)
		f.clock.advance(11 * time.Second)
	}

	out, err := f.dispatcher.Dispatch(context.Background(), promptSubmit("s1"), false)
	require.NoError(t, err)
	assert.Empty(t, out.SoundPath)
}

func TestAnnoyedDisabledSkipsTracking(t *testing.T) {
	cfg := domain.DefaultConfig()
	cfg.Categories[domain.CategoryAnnoyed] = false
	f := newFixture(cfg, nil)

	for i := 0; i < 4; i++ {
		out, err := f.dispatcher.Dispatch(context.Background(), promptSubmit("s1"), false)
		require.NoError(t, err)
		assert.Empty(t, out.SoundPath)
	}
	assert.Empty(t, f.state.state.PromptTimestamps)
	assert.Zero(t, f.state.saves)
}

func TestPackRotationPinsPackPerSession(t *testing.T) {
	cfg := domain.DefaultConfig()
	cfg.PackRotation = []string{"orc"}
	f := newFixture(cfg, nil)

	out, err := f.dispatcher.Dispatch(context.Background(), sessionStart("s1"), false)
	require.NoError(t, err)
	assert.Equal(t, filepath.Join("packs", "orc", "sounds", "Orc.wav"), out.SoundPath)

	pack, ok := f.state.state.PackFor("s1")
	require.True(t, ok)
	assert.Equal(t, "orc", pack)

	// Rotation membership changes but the pinned pack is still a member,
	// so the session keeps it.
	f.config.cfg.PackRotation = []string{"peon", "orc"}
	out, err = f.dispatcher.Dispatch(context.Background(), sessionStart("s1"), false)
	require.NoError(t, err)
	assert.Contains(t, out.SoundPath, filepath.Join("packs", "orc"))
}

func TestPackRotationRedrawsWhenPinnedPackLeaves(t *testing.T) {
	cfg := domain.DefaultConfig()
	cfg.PackRotation = []string{"orc"}
	f := newFixture(cfg, nil)

	_, err := f.dispatcher.Dispatch(context.Background(), sessionStart("s1"), false)
	require.NoError(t, err)

	f.config.cfg.PackRotation = []string{"peon"}
	_, err = f.dispatcher.Dispatch(context.Background(), sessionStart("s1"), false)
	require.NoError(t, err)

	pack, ok := f.state.state.PackFor("s1")
	require.True(t, ok)
	assert.Equal(t, "peon", pack)
}

func TestPackRotationPinsIDLessSession(t *testing.T) {
	cfg := domain.DefaultConfig()
	cfg.PackRotation = []string{"orc"}
	f := newFixture(cfg, nil)

	out, err := f.dispatcher.Dispatch(context.Background(),
		domain.Event{Name: domain.EventSessionStart, CWD: "/tmp/myproject"}, false)
	require.NoError(t, err)
	assert.Equal(t, filepath.Join("packs", "orc", "sounds", "Orc.wav"), out.SoundPath)

	pack, ok := f.state.state.PackFor("")
	require.True(t, ok)
	assert.Equal(t, "orc", pack)
}

func TestPackRotationNeverRewritesConfig(t *testing.T) {
	cfg := domain.DefaultConfig()
	cfg.PackRotation = []string{"orc"}
	f := newFixture(cfg, nil)

	_, err := f.dispatcher.Dispatch(context.Background(), sessionStart("s1"), false)
	require.NoError(t, err)
	assert.Equal(t, domain.DefaultActivePack, f.config.cfg.ActivePack)
}

func TestSoundSelectionNeverRepeatsConsecutively(t *testing.T) {
	f := newFixture(domain.DefaultConfig(), &seqRand{values: []int{0, 1, 2, 0, 2, 1, 0, 0, 1}})

	stop := domain.Event{Name: domain.EventStop, CWD: "/tmp/myproject", SessionID: "s1"}
	last := ""
	for i := 0; i < 50; i++ {
		out, err := f.dispatcher.Dispatch(context.Background(), stop, false)
		require.NoError(t, err)
		require.NotEmpty(t, out.SoundPath)
		assert.NotEqual(t, last, out.SoundPath)
		last = out.SoundPath
	}
}

func TestSingleSoundCategoryAlwaysPlays(t *testing.T) {
	f := newFixture(domain.DefaultConfig(), nil)

	perm := domain.Event{Name: domain.EventPermissionRequest, CWD: "/tmp/myproject", SessionID: "s1"}
	for i := 0; i < 5; i++ {
		out, err := f.dispatcher.Dispatch(context.Background(), perm, false)
		require.NoError(t, err)
		assert.Equal(t, filepath.Join("packs", "peon", "sounds", "Perm.wav"), out.SoundPath)
	}
}

func TestMissingPackYieldsNoSound(t *testing.T) {
	cfg := domain.DefaultConfig()
	cfg.ActivePack = "missing"
	f := newFixture(cfg, nil)

	out, err := f.dispatcher.Dispatch(context.Background(), sessionStart("s1"), false)
	require.NoError(t, err)
	assert.Empty(t, out.SoundPath)
	assert.Equal(t, "myproject: ready", out.Title)
}
