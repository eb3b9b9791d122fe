package nodegraph

import (
	"fmt"
	"os"
	"sync/atomic"
)

var debug atomic.Bool

// SetDebug enables or disables debug logging and checks. When enabled the
// canvas prints per-frame draw counters to stderr and warns about graphs
// that are likely to be slow.
func SetDebug(enabled bool) {
	debug.Store(enabled)
}

func debugEnabled() bool {
	return debug.Load()
}

// debugLog prints one line to stderr with the package prefix.
func debugLog(format string, args ...any) {
	_, _ = fmt.Fprintf(os.Stderr, "[nodegraph] "+format+"\n", args...)
}

// debugCheckChildCount warns on stderr if a canvas has more than 1000 children.
const debugMaxChildCount = 1000

func debugCheckChildCount(n int) {
	if n > debugMaxChildCount {
		debugLog("warning: canvas has %d children (threshold %d)", n, debugMaxChildCount)
	}
}

// debugCheckScale warns when the camera scale is far enough from 1 that
// curve sampling or guideline spacing will degrade.
const (
	debugMinScale = 1.0 / 64
	debugMaxScale = 64.0
)

func debugCheckScale(scale float64) {
	if scale < debugMinScale || scale > debugMaxScale {
		debugLog("warning: camera scale %g outside [%g, %g]", scale, debugMinScale, debugMaxScale)
	}
}
