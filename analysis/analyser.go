// Package analysis holds the frequency-analysis capability shared between the
// audio player and the visual backdrop.
package analysis

// Analyser is an analysis stage: a node exposing the magnitude spectrum of the
// signal passing through it as unsigned bytes.
type Analyser interface {
	// FrequencyBinCount is the number of bins ByteFrequencyData can fill.
	FrequencyBinCount() int
	// ByteFrequencyData copies the current spectrum into dst, up to len(dst)
	// bins.
	ByteFrequencyData(dst []byte)
}

// Link carries the current analyser from the player that owns it to whoever
// renders from it. It replaces a process-wide slot: both sides receive the
// same *Link at construction.
//
// A nil *Link is valid and always empty.
type Link struct {
	current Analyser
}

// NewLink returns an empty link.
func NewLink() *Link {
	return &Link{}
}

// Publish makes a the current analyser.
func (l *Link) Publish(a Analyser) {
	if l == nil {
		return
	}
	l.current = a
}

// Release clears the link if a is still the published analyser. It reports
// whether the link was cleared.
func (l *Link) Release(a Analyser) bool {
	if l == nil || l.current == nil || l.current != a {
		return false
	}
	l.current = nil
	return true
}

// Current returns the published analyser and whether one is present.
func (l *Link) Current() (Analyser, bool) {
	if l == nil || l.current == nil {
		return nil, false
	}
	return l.current, true
}
