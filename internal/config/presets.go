package config

import "sort"

var presets = map[string]*Config{
	"undamped": {
		Dt: 0.02, Duration: 10.0, MaxPoints: 500, MaxTime: 10.0,
		Initial: InitialState{Position: 2.0},
		Params:  ParamsConfig{Mass: 1.0, Stiffness: 10.0, Damping: 0.0, TimeScale: 1.0},
	},
	"heavy": {
		Dt: 0.02, Duration: 10.0, MaxPoints: 500, MaxTime: 10.0,
		Initial: InitialState{Position: 2.0},
		Params:  ParamsConfig{Mass: 5.0, Stiffness: 10.0, Damping: 0.5, TimeScale: 1.0},
	},
	"stiff": {
		Dt: 0.02, Duration: 10.0, MaxPoints: 500, MaxTime: 10.0,
		Initial: InitialState{Position: 2.0},
		Params:  ParamsConfig{Mass: 1.0, Stiffness: 30.0, Damping: 0.5, TimeScale: 1.0},
	},
	"overdamped": {
		Dt: 0.02, Duration: 10.0, MaxPoints: 500, MaxTime: 10.0,
		Initial: InitialState{Position: 2.0},
		Params:  ParamsConfig{Mass: 1.0, Stiffness: 5.0, Damping: 2.0, TimeScale: 1.0},
	},
	"slowmo": {
		Dt: 0.02, Duration: 10.0, MaxPoints: 500, MaxTime: 10.0,
		Initial: InitialState{Position: 2.0},
		Params:  ParamsConfig{Mass: 1.0, Stiffness: 10.0, Damping: 0.5, TimeScale: 0.1},
	},
}

// GetPreset returns a copy of the named preset, or nil when unknown.
func GetPreset(name string) *Config {
	p, ok := presets[name]
	if !ok {
		return nil
	}
	cp := *p
	return &cp
}

func ListPresets() []string {
	names := make([]string, 0, len(presets))
	for name := range presets {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
