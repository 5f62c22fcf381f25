// core/thermo/tables.go
package thermo

// Nearest-neighbor free energies of SantaLucia et al. in 0.5 M NaCl, in
// units of kT. Keys are TOP/BOT: strand-1 bases at (x, x+1) over strand-2
// bases at (y, y+1). Each key is stored once; its mirror
// reverse(BOT)/reverse(TOP) is filled in by newTable.

// Canonical Watson–Crick stacks at 37 °C.
var stacks37 = map[string]float64{
	"AA/TT": -1.55,
	"AT/TA": -1.35,
	"TA/AT": -0.85,
	"CA/GT": -2.31,
	"GT/CA": -2.30,
	"CT/GA": -2.03,
	"GA/CT": -2.06,
	"CG/GC": -3.53,
	"GC/CG": -3.65,
	"GG/CC": -2.97,
}

// Single internal mismatches next to a Watson–Crick pair at 37 °C.
var mismatches37 = map[string]float64{
	// A·A, C·A, G·A, T·A family
	"AA/TA": 1.16, "CA/GA": 0.86, "GA/CA": 0.42, "TA/AA": 1.30,
	"AC/TC": 2.38, "CC/GC": 1.31, "GC/CC": 1.47, "TC/AC": 1.91,
	"AG/TG": -0.09, "CG/GG": -0.05, "GG/CG": -1.74, "TG/AG": 0.88,
	"AT/TT": 1.30, "CT/GT": -0.07, "GT/CT": 0.89, "TT/AT": 1.28,

	// A·C and C·A
	"AA/TC": 1.62, "AC/TA": 1.43, "CA/GC": 1.40, "CC/GA": 1.47,
	"GA/CC": 1.50, "GC/CA": 1.10, "TA/AC": 1.69, "TC/AA": 2.38,

	// A·G and G·A
	"AA/TG": 0.37, "AG/TA": 0.17, "CA/GG": 0.18, "CG/GA": 0.32,
	"GA/CG": -0.29, "GG/CA": -0.74, "TA/AG": 0.84, "TG/AA": 1.38,

	// G·T wobble
	"AG/TT": 1.33, "AT/TG": 0.25, "CG/GT": -0.66, "CT/GG": -0.41,
	"GG/CT": 0.27, "GG/TT": 1.38, "GT/CG": -0.86, "GT/TG": 2.07,
	"TG/AT": 0.86, "TG/GT": 1.01, "TT/AG": 0.71,

	// C·T and T·C
	"AC/TT": 1.21, "AT/TC": 1.37, "CC/GT": 1.18, "CT/GC": 0.81,
	"GC/CT": 1.18, "GT/CC": 1.79, "TC/AT": 1.77, "TT/AC": 1.40,
}

// Canonical Watson–Crick stacks at 55 °C.
var stacks55 = map[string]float64{
	"AA/TT": -0.89,
	"AT/TA": -0.71,
	"TA/AT": -0.21,
	"CA/GT": -1.63,
	"GT/CA": -1.63,
	"CT/GA": -1.39,
	"GA/CT": -1.40,
	"CG/GC": -2.68,
	"GC/CG": -2.89,
	"GG/CC": -2.34,
}

var mismatches55 = map[string]float64{
	"AA/TA": 1.23, "CA/GA": 0.95, "GA/CA": 0.67, "TA/AA": 0.93,
	"AC/TC": 2.58, "CC/GC": 1.60, "GC/CC": 1.29, "TC/AC": 1.35,
	"AG/TG": 0.17, "CG/GG": 0.35, "GG/CG": -1.23, "TG/AG": 0.85,
	"AT/TT": 1.57, "CT/GT": 0.45, "GT/CT": 1.08, "TT/AT": 1.31,

	"AA/TC": 1.48, "AC/TA": 1.00, "CA/GC": 1.30, "CC/GA": 1.49,
	"GA/CC": 1.05, "GC/CA": 1.06, "TA/AC": 1.45, "TC/AA": 1.78,

	"AA/TG": 0.40, "AG/TA": 0.23, "CA/GG": 0.23, "CG/GA": 0.70,
	"GA/CG": -0.32, "GG/CA": -0.79, "TA/AG": 0.94, "TG/AA": 1.11,

	"AG/TT": 1.33, "AT/TG": 0.52, "CG/GT": -0.30, "CT/GG": -0.15,
	"GG/CT": -0.05, "GG/TT": 0.90, "GT/CG": -0.47, "GT/TG": 1.80,
	"TG/AT": 0.91, "TG/GT": 1.21, "TT/AG": 0.88,

	"AC/TT": 1.21, "AT/TC": 1.55, "CC/GT": 1.28, "CT/GC": 0.99,
	"GC/CT": 1.03, "GT/CC": 1.44, "TC/AT": 1.78, "TT/AC": 1.44,
}
