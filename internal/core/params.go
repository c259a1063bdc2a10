package core

// ParamType enumerates supported parameter value kinds.
type ParamType string

const (
	// ParamTypeInt denotes integer-valued parameters.
	ParamTypeInt ParamType = "int"
	// ParamTypeFloat denotes floating-point parameters.
	ParamTypeFloat ParamType = "float"
)

// Parameter describes a single tunable value exposed by a simulation.
type Parameter struct {
	Key         string
	Label       string
	Type        ParamType
	Value       string
	Description string
}

// ParameterGroup clusters related parameters for presentation purposes.
type ParameterGroup struct {
	Name    string
	Params  []Parameter
	Summary string
}

// ParameterSnapshot captures the current set of tunables exposed by a sim.
type ParameterSnapshot struct {
	Groups []ParameterGroup
}

// ParameterSnapshotProvider exposes a sim's tunables for display.
type ParameterSnapshotProvider interface {
	ParameterSnapshot() ParameterSnapshot
}

// FloatParameterSetter allows drivers to update floating point parameters
// at runtime. Implementations clamp out-of-range values and report whether
// the key was recognized.
type FloatParameterSetter interface {
	SetFloatParameter(key string, value float64) bool
}
