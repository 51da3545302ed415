package curriculum

var phaseNames = [TotalPhases]string{
	"Foundation",
	"Song Introduction",
	"Hands Together",
	"Adding Voice",
	"Refinement",
	"Performance Prep",
}

// PhaseForWeek maps a week onto its 8-week phase band. It is defined for any
// integer: weeks below 1 land in phase 1, weeks past 48 in phase 6.
func PhaseForWeek(week int) int {
	if week < 1 {
		return 1
	}
	phase := (week + WeeksPerPhase - 1) / WeeksPerPhase
	if phase > TotalPhases {
		return TotalPhases
	}
	return phase
}

// PhaseName returns the display name of a phase, or "Unknown".
func PhaseName(phase int) string {
	if phase < 1 || phase > TotalPhases {
		return "Unknown"
	}
	return phaseNames[phase-1]
}
