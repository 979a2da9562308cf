package player

type Config struct {
	// Signal path
	DefaultVolume float64 // Initial gain, 0.0 - 1.0
	FFTSize       int     // Analyser window size
	Smoothing     float64 // Analyser time smoothing, 0.0 - 1.0

	// Source
	DefaultTrack string // Bundled background track
	Loop         bool   // Loop the current source
	Autoplay     bool   // Start playback on the first user gesture

	// Controls
	MountID    string  // Element the hidden <audio> and the panel attach to
	VolumeStep float64 // Keyboard volume increment
}

var DefaultConfig = Config{
	DefaultVolume: 0.6,
	FFTSize:       1024,
	Smoothing:     0.8,

	DefaultTrack: "/assets/sounds/background-music.mp3",
	Loop:         true,
	Autoplay:     false,

	MountID:    "audio-controls-root",
	VolumeStep: 0.05,
}
