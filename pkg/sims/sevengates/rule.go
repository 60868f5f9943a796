package sevengates

// IsActive reports whether a cell in the given band counts as active for
// its neighbours.
func IsActive(state int) bool { return state >= ActiveThreshold }

// NextState applies the transition rule to one cell. Two or more active
// neighbours raise the band, none lowers it, exactly one leaves it alone.
// Bands wrap in both directions.
func NextState(current, active int) int {
	switch {
	case active >= 2:
		return (current + 1) % Bands
	case active == 0:
		return ((current-1)%Bands + Bands) % Bands
	default:
		return current
	}
}
