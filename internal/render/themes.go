package render

import "sort"

// * One palette for every card variant
type Theme struct {
	Bg          string
	Border      string
	Title       string
	Text        string
	Subtext     string
	ChartColors []string
	AreaStroke  string
	BarFill     string
	GridColor   string
}

var themes = map[string]Theme{
	"default": {
		Bg:      "#ffffff",
		Border:  "#d1d5db",
		Title:   "#1f2937",
		Text:    "#374151",
		Subtext: "#6b7280",
		ChartColors: []string{
			"#cf3400", "#0fde00", "#ff6200", "#ff0099", "#00aad8",
			"#ff0000", "#854d0e", "#4c1d95",
		},
		AreaStroke: "#4a9e9c",
		BarFill:    "#4a9e9c",
		GridColor:  "#e5e7eb",
	},
	"dark": {
		Bg:      "#0d1117",
		Border:  "#30363d",
		Title:   "#c9d1d9",
		Text:    "#8b949e",
		Subtext: "#484f58",
		ChartColors: []string{
			"#f78166", "#79c0ff", "#d2a8ff", "#7ee787", "#ffa657",
			"#ff7b72", "#ffd700", "#ff6b9d",
		},
		AreaStroke: "#3fb950",
		BarFill:    "#238636",
		GridColor:  "#21262d",
	},
	"algolia": {
		Bg:      "#050f2c",
		Border:  "#122d57",
		Title:   "#ffffff",
		Text:    "#9ca3af",
		Subtext: "#6b7280",
		ChartColors: []string{
			"#f97316", "#3b82f6", "#a855f7", "#22c55e", "#eab308",
			"#ec4899", "#06b6d4", "#f43f5e",
		},
		AreaStroke: "#3b82f6",
		BarFill:    "#3b82f6",
		GridColor:  "#0d1f4b",
	},
	"aura": {
		Bg:      "#15141b",
		Border:  "#2d2b38",
		Title:   "#bdbdbd",
		Text:    "#6d6d6d",
		Subtext: "#4d4d4d",
		ChartColors: []string{
			"#a277ff", "#61ffca", "#ffca85", "#ff6767", "#82e2ff",
			"#f694ff", "#7ee787", "#ffd700",
		},
		AreaStroke: "#a277ff",
		BarFill:    "#a277ff",
		GridColor:  "#2d2b38",
	},
	"aura_dark": {
		Bg:      "#110f18",
		Border:  "#262430",
		Title:   "#e0def2",
		Text:    "#8a86a0",
		Subtext: "#5c5875",
		ChartColors: []string{
			"#82e2ff", "#a277ff", "#61ffca", "#ff6767", "#ffca85",
			"#f694ff", "#7ee787", "#ffd700",
		},
		AreaStroke: "#82e2ff",
		BarFill:    "#82e2ff",
		GridColor:  "#262430",
	},
	"dracula": {
		Bg:      "#282a36",
		Border:  "#44475a",
		Title:   "#f8f8f2",
		Text:    "#f8f8f2",
		Subtext: "#bd93f9",
		ChartColors: []string{
			"#ff79c6", "#bd93f9", "#50fa7b", "#ffb86c", "#8be9fd",
			"#f1fa8c", "#ff5555", "#6272a4",
		},
		AreaStroke: "#50fa7b",
		BarFill:    "#50fa7b",
		GridColor:  "#44475a",
	},
}

// * CanonicalThemeName collapses unknown or empty names to "default" so
// * cache keys stay bounded
func CanonicalThemeName(name string) string {
	if _, ok := themes[name]; ok {
		return name
	}
	return "default"
}

// * GetTheme resolves a theme by name, falling back to "default"
func GetTheme(name string) Theme {
	if t, ok := themes[name]; ok {
		return t
	}
	return themes["default"]
}

func ThemeNames() []string {
	names := make([]string, 0, len(themes))
	for name := range themes {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
