package emhelp

import "math"

const (
	// Mu0 is the vacuum permeability in henries per meter.
	Mu0 = 4 * math.Pi * 1e-7

	// SpeedOfLight is the speed of light in vacuum, in meters per second.
	SpeedOfLight = 299_792_458.0

	// CopperResistivity is the DC resistivity of annealed copper at 20°C,
	// in ohm-meters.
	CopperResistivity = 1.68e-8

	// CopperRelativePermeability is copper's relative permeability,
	// indistinguishable from vacuum for skin-depth purposes.
	CopperRelativePermeability = 0.999994
)
