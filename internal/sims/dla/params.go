package dla

import (
	"strconv"

	"dlagrow/internal/core"

	errgo "gopkg.in/errgo.v1"
)

// SetStickProb sets the chance an eligible walker freezes. Values outside
// [0, 1] are rejected and the previous value is kept.
func (e *Engine) SetStickProb(v float64) error {
	if err := checkStickProb(v); err != nil {
		return errgo.Mask(err, errgo.Is(ErrInvalidConfig))
	}
	e.cfg.Params.StickProb = v
	return nil
}

// SetMinColls sets how many qualifying contacts precede a stick attempt.
func (e *Engine) SetMinColls(v int) error {
	if err := checkMinColls(v); err != nil {
		return errgo.Mask(err, errgo.Is(ErrInvalidConfig))
	}
	e.cfg.Params.MinColls = v
	return nil
}

// SetAttrSeparation sets the attraction range; 0 disables attraction.
func (e *Engine) SetAttrSeparation(v int) error {
	if err := checkAttrSeparation(v); err != nil {
		return errgo.Mask(err, errgo.Is(ErrInvalidConfig))
	}
	e.cfg.Params.AttrSeparation = v
	return nil
}

// SetAttrStrength sets the probability of taking the attracted step.
func (e *Engine) SetAttrStrength(v float64) error {
	if err := checkAttrStrength(v); err != nil {
		return errgo.Mask(err, errgo.Is(ErrInvalidConfig))
	}
	e.cfg.Params.AttrStrength = v
	return nil
}

// SetEndNum sets the particle count at which the run is complete.
func (e *Engine) SetEndNum(v int) error {
	if err := checkEndNum(v); err != nil {
		return errgo.Mask(err, errgo.Is(ErrInvalidConfig))
	}
	e.cfg.Params.EndNum = v
	return nil
}

// SetSpawnMargin sets the gap between the cluster radius and the spawn circle.
func (e *Engine) SetSpawnMargin(v int) error {
	if err := checkSpawnMargin(v); err != nil {
		return errgo.Mask(err, errgo.Is(ErrInvalidConfig))
	}
	e.cfg.Params.SpawnMargin = v
	return nil
}

// SetDiagonalStick toggles 8-neighbour adjacency for sticking.
func (e *Engine) SetDiagonalStick(v bool) { e.cfg.Params.DiagonalStick = v }

// SetDelNoStick toggles discarding walkers after a failed stick attempt.
func (e *Engine) SetDelNoStick(v bool) { e.cfg.Params.DelNoStick = v }

// SetDiagonalWalk toggles 8-direction walker moves.
func (e *Engine) SetDiagonalWalk(v bool) { e.cfg.Params.DiagonalWalk = v }

// SetResetColls toggles resetting the collision count on detached steps.
func (e *Engine) SetResetColls(v bool) { e.cfg.Params.ResetColls = v }

// SetParams replaces every rule at once after validating them all.
func (e *Engine) SetParams(p Params) error {
	if err := p.Validate(); err != nil {
		return errgo.Mask(err, errgo.Is(ErrInvalidConfig))
	}
	e.cfg.Params = p
	return nil
}

// Parameters returns the snapshot shown by parameter panels.
func (e *Engine) Parameters() core.ParameterSnapshot {
	p := e.cfg.Params
	return core.ParameterSnapshot{Groups: []core.ParameterGroup{
		{
			Name: "Lattice",
			Params: []core.Parameter{
				intParam("radius", "Radius", e.lattice.Radius()),
				int64Param("seed", "Seed", e.seed),
				intParam("spawn_margin", "Spawn margin", p.SpawnMargin),
				intParam("end_num", "End particles", p.EndNum),
			},
		},
		{
			Name: "Sticking",
			Params: []core.Parameter{
				floatParam("stick_prob", "Stick probability", p.StickProb),
				intParam("min_colls", "Min collisions", p.MinColls),
				boolParam("diagonal_stick", "Diagonal stick", p.DiagonalStick),
				boolParam("del_no_stick", "Delete on no stick", p.DelNoStick),
				boolParam("reset_colls", "Reset collisions", p.ResetColls),
			},
		},
		{
			Name: "Walk",
			Params: []core.Parameter{
				intParam("attr_separation", "Attraction range", p.AttrSeparation),
				floatParam("attr_strength", "Attraction strength", p.AttrStrength),
				boolParam("diagonal_walk", "Diagonal walk", p.DiagonalWalk),
			},
		},
	}}
}

// ParameterControls lists the HUD-adjustable parameters.
func (e *Engine) ParameterControls() []core.ParameterControl {
	return []core.ParameterControl{
		{Key: "stick_prob", Label: "Stick prob", Type: core.ParamTypeFloat, Step: 0.05, Min: 0, Max: 1, HasMin: true, HasMax: true},
		{Key: "min_colls", Label: "Min colls", Type: core.ParamTypeInt, Step: 1, Min: 1, HasMin: true},
		{Key: "attr_separation", Label: "Attr range", Type: core.ParamTypeInt, Step: 1, Min: 0, HasMin: true},
		{Key: "attr_strength", Label: "Attr strength", Type: core.ParamTypeFloat, Step: 0.05, Min: 0, Max: 1, HasMin: true, HasMax: true},
		{Key: "end_num", Label: "End particles", Type: core.ParamTypeInt, Step: 100, Min: 1, HasMin: true},
		{Key: "diagonal_stick", Label: "Diagonal stick", Type: core.ParamTypeBool},
		{Key: "del_no_stick", Label: "Delete no stick", Type: core.ParamTypeBool},
	}
}

// SetIntParameter applies an integer HUD adjustment.
func (e *Engine) SetIntParameter(key string, value int) bool {
	switch key {
	case "min_colls":
		return e.SetMinColls(value) == nil
	case "attr_separation":
		return e.SetAttrSeparation(value) == nil
	case "end_num":
		return e.SetEndNum(value) == nil
	case "spawn_margin":
		return e.SetSpawnMargin(value) == nil
	}
	return false
}

// SetFloatParameter applies a floating point HUD adjustment.
func (e *Engine) SetFloatParameter(key string, value float64) bool {
	switch key {
	case "stick_prob":
		return e.SetStickProb(value) == nil
	case "attr_strength":
		return e.SetAttrStrength(value) == nil
	}
	return false
}

// SetBoolParameter applies a boolean HUD toggle.
func (e *Engine) SetBoolParameter(key string, value bool) bool {
	switch key {
	case "diagonal_stick":
		e.SetDiagonalStick(value)
	case "del_no_stick":
		e.SetDelNoStick(value)
	case "diagonal_walk":
		e.SetDiagonalWalk(value)
	case "reset_colls":
		e.SetResetColls(value)
	default:
		return false
	}
	return true
}

func intParam(key, label string, value int) core.Parameter {
	return core.Parameter{Key: key, Label: label, Type: core.ParamTypeInt, Value: strconv.Itoa(value)}
}

func int64Param(key, label string, value int64) core.Parameter {
	return core.Parameter{Key: key, Label: label, Type: core.ParamTypeInt, Value: strconv.FormatInt(value, 10)}
}

func floatParam(key, label string, value float64) core.Parameter {
	return core.Parameter{Key: key, Label: label, Type: core.ParamTypeFloat, Value: strconv.FormatFloat(value, 'f', -1, 64)}
}

func boolParam(key, label string, value bool) core.Parameter {
	return core.Parameter{Key: key, Label: label, Type: core.ParamTypeBool, Value: strconv.FormatBool(value)}
}
