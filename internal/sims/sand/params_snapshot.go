package sand

import (
	"strconv"

	"falling-sand/internal/core"
)

var sandControls = []core.ParameterControl{
	{Key: "gravity", Label: "Gravity", Type: core.ParamTypeFloat, Step: 0.001, Min: 0, Max: 0.1, HasMin: true, HasMax: true},
	{Key: "cell_size", Label: "Particle size", Type: core.ParamTypeInt, Step: 1, Min: 1, Max: 10, HasMin: true, HasMax: true},
	{Key: "density", Label: "Brush density", Type: core.ParamTypeFloat, Step: 0.05, Min: 0, Max: 1, HasMin: true, HasMax: true},
	{Key: "kernel", Label: "Brush size", Type: core.ParamTypeInt, Step: 2, Min: 1, Max: 15, HasMin: true, HasMax: true},
}

// ParameterControls lists the HUD-adjustable parameters.
func (s *Sandbox) ParameterControls() []core.ParameterControl {
	return sandControls
}

// Parameters reports the current tunables.
func (s *Sandbox) Parameters() core.ParameterSnapshot {
	size := s.Size()
	return core.ParameterSnapshot{Groups: []core.ParameterGroup{
		{
			Name: "World",
			Params: []core.Parameter{
				intParam("cols", "Columns", size.W),
				intParam("rows", "Rows", size.H),
				intParam("cell_size", "Particle size", s.cfg.CellSize),
				int64Param("seed", "Seed", s.cfg.Seed),
			},
		},
		{
			Name: "Physics",
			Params: []core.Parameter{
				floatParam("gravity", "Gravity", s.cfg.Gravity),
			},
		},
		{
			Name: "Brush",
			Params: []core.Parameter{
				intParam("kernel", "Brush size", s.cfg.Kernel),
				floatParam("density", "Brush density", s.cfg.Density),
				floatParam("hue", "Hue", s.brush.Hue()),
			},
		},
	}}
}

// SetIntParameter updates an integer control, clamped to its bounds.
func (s *Sandbox) SetIntParameter(key string, value int) bool {
	ctrl, ok := controlFor(key)
	if !ok || ctrl.Type != core.ParamTypeInt {
		return false
	}
	v := int(ctrl.Clamp(float64(value)))
	switch key {
	case "cell_size":
		return s.SetCellSize(v)
	case "kernel":
		if v%2 == 0 {
			v++
		}
		s.cfg.Kernel = v
		return true
	}
	return false
}

// SetFloatParameter updates a floating point control, clamped to its bounds.
func (s *Sandbox) SetFloatParameter(key string, value float64) bool {
	ctrl, ok := controlFor(key)
	if !ok || ctrl.Type != core.ParamTypeFloat {
		return false
	}
	v := ctrl.Clamp(value)
	switch key {
	case "gravity":
		return s.SetGravity(v)
	case "density":
		s.cfg.Density = v
		return true
	}
	return false
}

func controlFor(key string) (core.ParameterControl, bool) {
	for _, ctrl := range sandControls {
		if ctrl.Key == key {
			return ctrl, true
		}
	}
	return core.ParameterControl{}, false
}

func intParam(key, label string, value int) core.Parameter {
	return core.Parameter{
		Key:   key,
		Label: label,
		Type:  core.ParamTypeInt,
		Value: strconv.Itoa(value),
	}
}

func int64Param(key, label string, value int64) core.Parameter {
	return core.Parameter{
		Key:   key,
		Label: label,
		Type:  core.ParamTypeInt,
		Value: strconv.FormatInt(value, 10),
	}
}

func floatParam(key, label string, value float64) core.Parameter {
	return core.Parameter{
		Key:   key,
		Label: label,
		Type:  core.ParamTypeFloat,
		Value: strconv.FormatFloat(value, 'f', -1, 64),
	}
}
