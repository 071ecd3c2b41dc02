package difficulty

// Manager tracks the active preset among the selectable set.
type Manager struct {
	presets []Preset
	current int
}

// NewManager starts at NORMAL, matching the table's default tuning.
func NewManager() *Manager {
	return NewManagerWith(Presets())
}

// NewManagerWith uses a custom preset list, e.g. one merged with file
// overrides. An empty list falls back to the compiled presets.
func NewManagerWith(presets []Preset) *Manager {
	if len(presets) == 0 {
		presets = Presets()
	}
	m := &Manager{presets: presets}
	for i, p := range presets {
		if p.Name == Normal.Name {
			m.current = i
			break
		}
	}
	return m
}

// Current returns the active preset.
func (m *Manager) Current() *Preset {
	return &m.presets[m.current]
}

// Cycle advances to the next preset, wrapping around, and returns it.
func (m *Manager) Cycle() *Preset {
	m.current = (m.current + 1) % len(m.presets)
	return m.Current()
}

// Set selects a preset by index. Out-of-range indices are clamped.
func (m *Manager) Set(index int) {
	if index < 0 {
		index = 0
	}
	if index > len(m.presets)-1 {
		index = len(m.presets) - 1
	}
	m.current = index
}
