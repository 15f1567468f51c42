package dive

// A Config is the static registration record of the heuristic: how a
// search driver should schedule it, plus the numeric tunables of the
// dive itself. Configs are plain values; the engine never mutates one.
type Config struct {
	Name        string // Heuristic name, for display purposes
	DisplayChar byte   // One-character tag shown in driver logs
	Priority    int    // Driver scheduling priority
	Freq        int    // Call the heuristic every Freq depth levels
	FreqOfs     int    // Depth offset of the first call
	MaxDepth    int    // Maximal depth to call the heuristic at, -1 for no limit

	// MinRelDepth and MaxRelDepth restrict the dive to nodes whose depth,
	// relative to the maximal tree depth, lies inside [MinRelDepth, MaxRelDepth].
	MinRelDepth float64
	MaxRelDepth float64
	// MaxIterQuot is the maximal fraction of the global node LP iterations
	// the heuristic may spend over its lifetime.
	MaxIterQuot float64
	// DepthFac bounds the dive depth to DepthFac times the number of
	// integer variables. DepthFacNoSol is used instead while no feasible
	// solution is known at all.
	DepthFac      float64
	DepthFacNoSol float64
}

// DefaultConfig returns the standard tuning of objective pseudocost diving.
func DefaultConfig() Config {
	return Config{
		Name:          "objpscostdiving",
		DisplayChar:   'o',
		Priority:      -1004000,
		Freq:          20,
		FreqOfs:       4,
		MaxDepth:      -1,
		MinRelDepth:   0.0,
		MaxRelDepth:   1.0,
		MaxIterQuot:   0.01,
		DepthFac:      0.5,
		DepthFacNoSol: 1.0,
	}
}
