package cli

import "tsr/internal/config"

// Flags holds command-line flags
type Flags struct {
	Filter     string
	Cases      bool
	Verbose    bool
	NoProgress bool
	History    bool
}

// ToConfigFlags converts CLI flags to config flags
func (f *Flags) ToConfigFlags() config.Flags {
	return config.Flags{
		Filter:     f.Filter,
		Cases:      f.Cases,
		Verbose:    f.Verbose,
		NoProgress: f.NoProgress,
		History:    f.History,
	}
}
