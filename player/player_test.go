package player

import (
	"errors"
	"math"
	"strconv"
	"testing"

	"github.com/simukka/sonic-backdrop/analysis"
)

type fakeAnalyser struct {
	bins int
}

func (a *fakeAnalyser) FrequencyBinCount() int       { return a.bins }
func (a *fakeAnalyser) ByteFrequencyData(dst []byte) {}

type fakeGraph struct {
	gain      float64
	source    string
	playing   bool
	attached  bool
	resumed   int
	plays     int
	playErr   error
	resumeErr error
	detachErr error
	analyser  *fakeAnalyser

	// onResume and onPlay run while the call is "waiting" on the browser.
	onResume func()
	onPlay   func()
}

func newFakeGraph() *fakeGraph {
	return &fakeGraph{analyser: &fakeAnalyser{bins: 512}}
}

func (g *fakeGraph) Resume() error {
	g.resumed++
	if g.onResume != nil {
		g.onResume()
	}
	return g.resumeErr
}

func (g *fakeGraph) Play() error {
	g.plays++
	if g.onPlay != nil {
		g.onPlay()
	}
	if g.playErr != nil {
		return g.playErr
	}
	g.playing = true
	return nil
}

func (g *fakeGraph) Pause()                      { g.playing = false }
func (g *fakeGraph) SetGain(v float64)           { g.gain = v }
func (g *fakeGraph) SetSource(url string)        { g.source = url }
func (g *fakeGraph) Analyser() analysis.Analyser { return g.analyser }

func (g *fakeGraph) Attach() error {
	g.attached = true
	return nil
}

func (g *fakeGraph) Detach() error {
	g.attached = false
	return g.detachErr
}

type fakeFile struct {
	name, typ string
}

func (f fakeFile) Name() string { return f.name }
func (f fakeFile) Type() string { return f.typ }

type fakeURLs struct {
	next    int
	live    map[string]bool
	revoked []string
}

func newFakeURLs() *fakeURLs {
	return &fakeURLs{live: make(map[string]bool)}
}

func (u *fakeURLs) Create(f File) (string, error) {
	u.next++
	url := "blob:" + f.Name() + "#" + strconv.Itoa(u.next)
	u.live[url] = true
	return url, nil
}

func (u *fakeURLs) Revoke(url string) {
	delete(u.live, url)
	u.revoked = append(u.revoked, url)
}

func newTestPlayer() (*Player, *fakeGraph, *fakeURLs, *analysis.Link) {
	g := newFakeGraph()
	urls := newFakeURLs()
	link := analysis.NewLink()
	p := New(g, urls, link, DefaultConfig)
	p.Initialize()
	return p, g, urls, link
}

func TestInitialize_Defaults(t *testing.T) {
	p, g, _, link := newTestPlayer()

	if g.gain != 0.6 {
		t.Errorf("Expected default gain 0.6, got %f", g.gain)
	}
	if g.source != DefaultConfig.DefaultTrack {
		t.Errorf("Expected source %q, got %q", DefaultConfig.DefaultTrack, g.source)
	}
	if !g.attached {
		t.Error("Expected media element to be attached")
	}
	if a, ok := link.Current(); !ok || a != g.analyser {
		t.Error("Expected analyser to be published on the link")
	}
	if p.Playing() {
		t.Error("Expected player to start paused")
	}
}

func TestSetVolume_AppliesImmediately(t *testing.T) {
	p, g, _, _ := newTestPlayer()

	for _, v := range []float64{0, 0.01, 0.25, 0.5, 0.99, 1} {
		p.SetVolume(v)
		if math.Abs(g.gain-v) > 1e-12 {
			t.Errorf("Expected gain %f, got %f", v, g.gain)
		}
	}

	if err := p.TogglePlayback(); err != nil {
		t.Fatalf("Unexpected toggle error: %v", err)
	}
	p.SetVolume(0.3)
	if g.gain != 0.3 {
		t.Errorf("Expected gain 0.3 while playing, got %f", g.gain)
	}
}

func TestTogglePlayback_TwiceIsNoOp(t *testing.T) {
	p, g, _, _ := newTestPlayer()

	if err := p.TogglePlayback(); err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if !p.Playing() || !g.playing {
		t.Fatal("Expected playback after first toggle")
	}
	if g.resumed != 1 {
		t.Errorf("Expected context to be resumed once, got %d", g.resumed)
	}

	if err := p.TogglePlayback(); err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if p.Playing() || g.playing {
		t.Error("Expected paused after second toggle")
	}
}

func TestTogglePlayback_FailureLeavesStateUnchanged(t *testing.T) {
	p, g, _, _ := newTestPlayer()
	g.playErr = errors.New("NotAllowedError")

	changes := 0
	p.OnChange = func(bool) { changes++ }

	err := p.TogglePlayback()
	if err == nil {
		t.Fatal("Expected error when play is blocked")
	}
	if !errors.Is(err, g.playErr) {
		t.Errorf("Expected wrapped play error, got %v", err)
	}
	if p.Playing() {
		t.Error("Expected state to stay paused")
	}
	if changes != 0 {
		t.Errorf("Expected no state change notifications, got %d", changes)
	}
}

func TestLoadFile_StartsPlayback(t *testing.T) {
	p, g, urls, _ := newTestPlayer()

	var notified []bool
	p.OnChange = func(playing bool) { notified = append(notified, playing) }

	if err := p.LoadFile(fakeFile{"song.ogg", "audio/ogg"}); err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if !p.Playing() {
		t.Error("Expected playing after file load")
	}
	if !urls.live[g.source] {
		t.Errorf("Expected source to be a live object URL, got %q", g.source)
	}
	if len(notified) != 1 || !notified[0] {
		t.Errorf("Expected a single playing notification, got %v", notified)
	}
}

func TestLoadFile_RevokesPreviousURL(t *testing.T) {
	p, g, urls, _ := newTestPlayer()

	if err := p.LoadFile(fakeFile{"a.mp3", "audio/mpeg"}); err != nil {
		t.Fatal(err)
	}
	first := g.source
	if err := p.LoadFile(fakeFile{"b.mp3", "audio/mpeg"}); err != nil {
		t.Fatal(err)
	}

	if urls.live[first] {
		t.Error("Expected previous object URL to be revoked")
	}
	if len(urls.live) != 1 {
		t.Errorf("Expected exactly one live object URL, got %d", len(urls.live))
	}
}

func TestLoadFile_RejectsNonAudio(t *testing.T) {
	p, g, urls, _ := newTestPlayer()

	err := p.LoadFile(fakeFile{"notes.txt", "text/plain"})
	if !errors.Is(err, ErrNotAudio) {
		t.Fatalf("Expected ErrNotAudio, got %v", err)
	}
	if g.source != DefaultConfig.DefaultTrack {
		t.Error("Expected source to be unchanged")
	}
	if len(urls.live) != 0 {
		t.Error("Expected no object URL to be created")
	}
}

func TestLoadFile_PlayFailure(t *testing.T) {
	p, g, _, _ := newTestPlayer()
	g.playErr = errors.New("decode error")

	if err := p.LoadFile(fakeFile{"bad.wav", "audio/wav"}); err == nil {
		t.Fatal("Expected error")
	}
	if p.Playing() {
		t.Error("Expected not playing after failed load")
	}
}

func TestHandleGesture_OneShot(t *testing.T) {
	g := newFakeGraph()
	cfg := DefaultConfig
	cfg.Autoplay = true
	p := New(g, newFakeURLs(), analysis.NewLink(), cfg)
	p.Initialize()

	p.HandleGesture()
	if !p.Playing() {
		t.Fatal("Expected requested playback to start on gesture")
	}
	p.HandleGesture()
	if g.resumed != 1 || g.plays != 1 {
		t.Errorf("Expected one resume and one play, got %d and %d", g.resumed, g.plays)
	}
}

func TestHandleGesture_WithoutRequestOnlyResumes(t *testing.T) {
	p, g, _, _ := newTestPlayer()

	p.HandleGesture()
	if g.resumed != 1 {
		t.Errorf("Expected context resume, got %d", g.resumed)
	}
	if p.Playing() || g.plays != 0 {
		t.Error("Expected no playback without a request")
	}
}

func TestHandleGesture_BlockedAutoplayIsSilent(t *testing.T) {
	g := newFakeGraph()
	g.playErr = errors.New("NotAllowedError")
	cfg := DefaultConfig
	cfg.Autoplay = true
	p := New(g, newFakeURLs(), analysis.NewLink(), cfg)
	p.Initialize()

	p.HandleGesture()
	if p.Playing() {
		t.Error("Expected not playing when autoplay is blocked")
	}
}

func TestTeardown_ReleasesResources(t *testing.T) {
	p, g, urls, link := newTestPlayer()
	if err := p.LoadFile(fakeFile{"a.flac", "audio/flac"}); err != nil {
		t.Fatal(err)
	}
	g.detachErr = errors.New("node already removed")

	p.Teardown()

	if g.playing || p.Playing() {
		t.Error("Expected playback to be paused")
	}
	if g.attached {
		t.Error("Expected media element to be detached")
	}
	if _, ok := link.Current(); ok {
		t.Error("Expected analyser to be withdrawn from the link")
	}
	if len(urls.live) != 0 {
		t.Error("Expected object URL to be revoked")
	}

	p.Teardown()
	if err := p.TogglePlayback(); err != nil || p.Playing() {
		t.Error("Expected toggle after teardown to do nothing")
	}
}

func TestTeardown_KeepsForeignAnalyser(t *testing.T) {
	p, _, _, link := newTestPlayer()
	other := &fakeAnalyser{bins: 256}
	link.Publish(other)

	p.Teardown()

	if a, ok := link.Current(); !ok || a != other {
		t.Error("Expected a newer analyser to stay published")
	}
}

func TestTogglePlayback_TeardownDuringResume(t *testing.T) {
	p, g, _, _ := newTestPlayer()
	g.onResume = p.Teardown

	err := p.TogglePlayback()
	if !errors.Is(err, ErrTornDown) {
		t.Fatalf("Expected ErrTornDown, got %v", err)
	}
	if p.Playing() || g.playing || g.plays != 0 {
		t.Errorf("Expected no playback after teardown, playing=%v graphPlaying=%v plays=%d", p.Playing(), g.playing, g.plays)
	}
}

func TestTogglePlayback_TeardownDuringPlay(t *testing.T) {
	p, g, _, _ := newTestPlayer()
	g.onPlay = p.Teardown

	err := p.TogglePlayback()
	if !errors.Is(err, ErrTornDown) {
		t.Fatalf("Expected ErrTornDown, got %v", err)
	}
	if p.Playing() || g.playing {
		t.Error("Expected element paused again after teardown")
	}
}

func TestLoadFile_TeardownDuringResume(t *testing.T) {
	p, g, urls, _ := newTestPlayer()
	g.onResume = p.Teardown

	err := p.LoadFile(fakeFile{"song.mp3", "audio/mpeg"})
	if !errors.Is(err, ErrTornDown) {
		t.Fatalf("Expected ErrTornDown, got %v", err)
	}
	if p.Playing() || g.playing || g.plays != 0 {
		t.Error("Expected load to stop after teardown")
	}
	if len(urls.live) != 0 {
		t.Errorf("Expected object URL revoked, %d live", len(urls.live))
	}
}

func TestHandleGesture_TeardownDuringResume(t *testing.T) {
	g := newFakeGraph()
	cfg := DefaultConfig
	cfg.Autoplay = true
	p := New(g, newFakeURLs(), analysis.NewLink(), cfg)
	p.Initialize()
	g.onResume = p.Teardown

	p.HandleGesture()
	if p.Playing() || g.plays != 0 {
		t.Error("Expected no autoplay after teardown")
	}
}
