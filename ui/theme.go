package ui

import "html/template"

// Theme holds the styling constants for the controls panel and the stats
// overlay.
var Theme = struct {
	// Panel
	PanelBackground string
	PanelBorder     string
	PanelText       string
	PanelFont       string
	PanelRadius     string

	// Buttons and inputs
	AccentColor   string
	ButtonText    string
	ButtonPadding string

	// Stats overlay
	OverlayBackground string
	OverlayBorder     string
	OverlayTitle      string
	OverlayLabel      string
	OverlayValue      string
	OverlayFont       string

	// Stacking
	PanelZIndex   int
	OverlayZIndex int
}{
	PanelBackground: "rgba(20, 20, 30, 0.85)",
	PanelBorder:     "#4a9eff",
	PanelText:       "#fff",
	PanelFont:       "12px 'Courier New', monospace",
	PanelRadius:     "8px",

	AccentColor:   "#4a9eff",
	ButtonText:    "#000",
	ButtonPadding: "4px 12px",

	OverlayBackground: "rgba(0, 0, 0, 0.75)",
	OverlayBorder:     "#00aaff",
	OverlayTitle:      "#00aaff",
	OverlayLabel:      "#aaaaaa",
	OverlayValue:      "#00ff00",
	OverlayFont:       "12px monospace",

	PanelZIndex:   10,
	OverlayZIndex: 10000,
}

// PanelCSS is the cssText of the controls container.
func PanelCSS() string {
	return "display:flex;align-items:center;gap:10px;position:relative;" +
		"padding:10px 14px;background:" + Theme.PanelBackground +
		";border:1px solid " + Theme.PanelBorder +
		";border-radius:" + Theme.PanelRadius +
		";color:" + Theme.PanelText +
		";font:" + Theme.PanelFont +
		";z-index:" + itoa(Theme.PanelZIndex) + ";"
}

// OverlayCSS is the cssText of the stats overlay container.
func OverlayCSS() string {
	return "position:fixed;top:16px;right:16px;min-width:240px;padding:10px;" +
		"background:" + Theme.OverlayBackground +
		";border:1px solid " + Theme.OverlayBorder +
		";font:" + Theme.OverlayFont +
		";z-index:" + itoa(Theme.OverlayZIndex) + ";display:none;pointer-events:none;"
}

// ControlStyles are the inline styles of the controls panel children.
type ControlStyles struct {
	Button template.CSS
	Slider template.CSS
	Track  template.CSS
}

// StatsStyles are the inline styles of the overlay rows.
type StatsStyles struct {
	Title template.CSS
	Row   template.CSS
	Label template.CSS
	Value template.CSS
}

func controlStyles() ControlStyles {
	return ControlStyles{
		Button: template.CSS("background:" + Theme.AccentColor + ";color:" + Theme.ButtonText +
			";border:0;border-radius:4px;padding:" + Theme.ButtonPadding + ";cursor:pointer;"),
		Slider: template.CSS("accent-color:" + Theme.AccentColor + ";"),
		Track:  template.CSS("opacity:.7;"),
	}
}

func statsStyles() StatsStyles {
	return StatsStyles{
		Title: template.CSS("font-weight:bold;font-size:14px;margin-bottom:6px;padding-bottom:4px;" +
			"border-bottom:1px solid #444;color:" + Theme.OverlayTitle + ";"),
		Row:   template.CSS("display:flex;justify-content:space-between;gap:24px;"),
		Label: template.CSS("color:" + Theme.OverlayLabel + ";"),
		Value: template.CSS("color:" + Theme.OverlayValue + ";"),
	}
}
