package sysio

import (
	"fmt"
	"os"

	"go.uber.org/zap"

	"github.com/fedesilva/minnieml/buffer"
)

// exitFn is the termination hook for the hole diagnostic. Tests replace it;
// compiled programs never do.
var exitFn = os.Exit

// Hole is emitted by the compiler at code paths it could not implement.
// Reaching one at runtime flushes pending output, prints a fatal diagnostic
// naming the source range to the error stream, and terminates the process.
func Hole(startLine, startCol, endLine, endCol int64) {
	buffer.FlushStdout()
	logger().Error("hole reached",
		zap.Int64("start_line", startLine),
		zap.Int64("start_col", startCol),
		zap.Int64("end_line", endLine),
		zap.Int64("end_col", endCol),
	)
	fmt.Fprintf(os.Stderr, "not implemented at [%d:%d]-[%d:%d]\n",
		startLine, startCol, endLine, endCol)
	exitFn(1)
}
