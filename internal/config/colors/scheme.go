package colors

// ColorScheme defines all configurable color values for CLI and TUI output
type ColorScheme struct {
	// Preset name (e.g., "default", "monochrome")
	Preset string `yaml:"preset" toml:"preset"`

	// Primary accent color (used for selections, titles, highlights)
	Accent string `yaml:"accent" toml:"accent"`

	// Text colors
	Title  string `yaml:"title" toml:"title"`
	Subtle string `yaml:"subtle" toml:"subtle"` // Muted/placeholder text
	Normal string `yaml:"normal" toml:"normal"`

	// Todo state colors
	Done    string `yaml:"done" toml:"done"`
	Pending string `yaml:"pending" toml:"pending"`

	// Notification colors (foreground/background pairs)
	InfoFg  string `yaml:"info_fg" toml:"info_fg"`
	InfoBg  string `yaml:"info_bg" toml:"info_bg"`
	ErrorFg string `yaml:"error_fg" toml:"error_fg"`
	ErrorBg string `yaml:"error_bg" toml:"error_bg"`
}

// GetPreset returns a preset color scheme by name
func GetPreset(name string) *ColorScheme {
	switch name {
	case "monochrome":
		return Monochrome()
	default:
		return Default()
	}
}

// ApplyDefaults fills in missing color values using the preset as base
// If preset is specified, loads that preset first, then overrides with custom values
func (c *ColorScheme) ApplyDefaults() {
	preset := GetPreset(c.Preset)

	fill := func(dst *string, src string) {
		if *dst == "" {
			*dst = src
		}
	}

	fill(&c.Preset, preset.Preset)
	fill(&c.Accent, preset.Accent)
	fill(&c.Title, preset.Title)
	fill(&c.Subtle, preset.Subtle)
	fill(&c.Normal, preset.Normal)
	fill(&c.Done, preset.Done)
	fill(&c.Pending, preset.Pending)
	fill(&c.InfoFg, preset.InfoFg)
	fill(&c.InfoBg, preset.InfoBg)
	fill(&c.ErrorFg, preset.ErrorFg)
	fill(&c.ErrorBg, preset.ErrorBg)
}
