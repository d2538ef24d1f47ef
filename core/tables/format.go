package tables

// Format describes the column layout of a particle table.
type Format struct {
	// Name identifies the layout in logs and errors.
	Name string

	IDColumn     int
	NameColumn   int
	MassColumn   int
	WidthColumn  int
	ChargeColumn int
	SpinColumn   int

	// AntiNameColumn holds the antiparticle name, or -1 if the layout has none.
	// When set, rows with a name other than "---" also produce the conjugate particle.
	AntiNameColumn int

	// ChargeDivisor converts the stored charge to units of e.
	ChargeDivisor float64
	// SpinDivisor converts the stored spin to units of ħ.
	SpinDivisor float64
}

// Simulation is the RapidSim particles.dat layout.
var Simulation = Format{
	Name:           "rapidsim",
	IDColumn:       0,
	NameColumn:     1,
	AntiNameColumn: 2,
	MassColumn:     3,
	WidthColumn:    4,
	ChargeColumn:   5,
	SpinColumn:     6,
	ChargeDivisor:  1,
	SpinDivisor:    1,
}

// Reference is the EvtGen evt.pdl layout. Charge is stored as 3×e and spin as 2×ħ.
var Reference = Format{
	Name:           "evtgen",
	IDColumn:       4,
	NameColumn:     3,
	AntiNameColumn: -1,
	MassColumn:     5,
	WidthColumn:    6,
	ChargeColumn:   8,
	SpinColumn:     9,
	ChargeDivisor:  3,
	SpinDivisor:    2,
}

// MinColumns returns the number of fields a line needs to be parsed.
func (f Format) MinColumns() int {
	cols := []int{
		f.IDColumn, f.NameColumn, f.AntiNameColumn,
		f.MassColumn, f.WidthColumn, f.ChargeColumn, f.SpinColumn,
	}
	highest := 0
	for _, c := range cols {
		if c > highest {
			highest = c
		}
	}
	return highest + 1
}
