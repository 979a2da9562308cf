package ui

import (
	"bytes"
	"embed"
	"html/template"
	"math"
	"path"
	"strconv"

	"github.com/simukka/sonic-backdrop/visual"
)

//go:embed templates/*.gohtml
var templateFS embed.FS

var templates = template.Must(template.New("ui").Funcs(template.FuncMap{
	"percent": Percent,
}).ParseFS(templateFS, "templates/*.gohtml"))

// ControlsData is the input to the controls panel template.
type ControlsData struct {
	ID          string
	ToggleLabel string
	Volume      float64
	Track       string
	Styles      ControlStyles
}

// StatsData is the input to the stats overlay template.
type StatsData struct {
	Lines  []visual.StatLine
	Styles StatsStyles
}

// ToggleLabel returns the toggle button text for a playing state.
func ToggleLabel(playing bool) string {
	if playing {
		return "Pause"
	}
	return "Play"
}

// Percent formats a 0..1 volume as a whole percentage.
func Percent(v float64) string {
	return itoa(int(math.Round(v*100))) + "%"
}

// TrackName returns the file name of a source URL for display.
func TrackName(url string) string {
	if url == "" {
		return ""
	}
	return path.Base(url)
}

// RenderControls renders the controls panel markup.
func RenderControls(data ControlsData) (string, error) {
	data.Styles = controlStyles()
	return execute("controls.gohtml", data)
}

// RenderStats renders the stats overlay body.
func RenderStats(lines []visual.StatLine) (string, error) {
	return execute("stats.gohtml", StatsData{Lines: lines, Styles: statsStyles()})
}

func execute(name string, data interface{}) (string, error) {
	var buf bytes.Buffer
	if err := templates.ExecuteTemplate(&buf, name, data); err != nil {
		return "", err
	}
	return buf.String(), nil
}

func itoa(i int) string {
	return strconv.Itoa(i)
}
