package monster

const (
	x0 = 0.0
	xh = 0.5
	x1 = 1.0
	x2 = 2.0
)

// typeChart[attack-1][defend-1]; rows and columns follow the Type constants
// starting at TypeNormal.
var typeChart = [18][18]float64{
	/*NOR*/ {x1, x1, x1, x1, x1, x1, x1, x1, x1, x1, x1, x1, xh, x0, x1, x1, xh, x1},
	/*FIR*/ {x1, xh, xh, x1, x2, x2, x1, x1, x1, x1, x1, x2, xh, x1, xh, x1, x2, x1},
	/*WAT*/ {x1, x2, xh, x1, xh, x1, x1, x1, x2, x1, x1, x1, x2, x1, xh, x1, x1, x1},
	/*ELE*/ {x1, x1, x2, xh, xh, x1, x1, x1, x0, x2, x1, x1, x1, x1, xh, x1, x1, x1},
	/*GRA*/ {x1, xh, x2, x1, xh, x1, x1, xh, x2, xh, x1, xh, x2, x1, xh, x1, xh, x1},
	/*ICE*/ {x1, xh, xh, x1, x2, xh, x1, x1, x2, x2, x1, x1, x1, x1, x2, x1, xh, x1},
	/*FIG*/ {x2, x1, x1, x1, x1, x2, x1, xh, x1, xh, xh, xh, x2, x0, x1, x2, x2, xh},
	/*POI*/ {x1, x1, x1, x1, x2, x1, x1, xh, xh, x1, x1, x1, xh, xh, x1, x1, x0, x2},
	/*GRO*/ {x1, x2, x1, x2, xh, x1, x1, x2, x1, x0, x1, xh, x2, x1, x1, x1, x2, x1},
	/*FLY*/ {x1, x1, x1, xh, x2, x1, x2, x1, x1, x1, x1, x2, xh, x1, x1, x1, xh, x1},
	/*PSY*/ {x1, x1, x1, x1, x1, x1, x2, x2, x1, x1, xh, x1, x1, x1, x1, x0, xh, x1},
	/*BUG*/ {x1, xh, x1, x1, x2, x1, xh, xh, x1, xh, x2, x1, x1, xh, x1, x2, xh, xh},
	/*ROC*/ {x1, x2, x1, x1, x1, x2, xh, x1, xh, x2, x1, x2, x1, x1, x1, x1, xh, x1},
	/*GHO*/ {x0, x1, x1, x1, x1, x1, x1, x1, x1, x1, x2, x1, x1, x2, x1, xh, x1, x1},
	/*DRA*/ {x1, x1, x1, x1, x1, x1, x1, x1, x1, x1, x1, x1, x1, x1, x2, x1, xh, x0},
	/*DAR*/ {x1, x1, x1, x1, x1, x1, xh, x1, x1, x1, x2, x1, x1, x2, x1, xh, x1, xh},
	/*STE*/ {x1, xh, xh, xh, x1, x2, x1, x1, x1, x1, x1, x1, x2, x1, x1, x1, xh, x2},
	/*FAI*/ {x1, xh, x1, x1, x1, x1, x2, xh, x1, x1, x1, x1, x1, x1, x2, x2, xh, x1},
}

// GetEffectiveness returns the damage multiplier of an attack type against a
// single defending type. TypeNone on either side is neutral.
func GetEffectiveness(attack, defend Type) float64 {
	if attack <= TypeNone || defend <= TypeNone || attack > TypeFairy || defend > TypeFairy {
		return 1
	}
	return typeChart[attack-1][defend-1]
}
