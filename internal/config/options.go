package config

import "github.com/kvhoang/felicity-egtb/internal/egtbfile"

// Options is the immutable set of knobs the CLI parses from its flags and
// passes by value into the generator/prober; library code never reads a
// package-level flag variable directly.
type Options struct {
	DataDir     string // -d
	CompareDir  string // -d2
	Workers     int    // -core
	TwoByteCells bool  // -2
	NoTempFiles bool   // -notempfiles
	Verbose     bool   // -verbose
}

// MemMode reports the egtbfile memory mode implied by these options. The
// CLI always runs with MemAll today; a future -mem flag would plug in
// here.
func (o Options) MemMode() egtbfile.MemMode { return egtbfile.MemAll }

// CellWidth returns the on-disk cell width these options select.
func (o Options) CellWidth() int {
	if o.TwoByteCells {
		return 2
	}
	return 1
}
