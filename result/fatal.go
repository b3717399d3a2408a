package result

import (
	"context"
	"errors"
	"runtime"
	"strings"
)

// DefaultIsFatal reports whether err signals a condition callers must not
// recover from: a cancelled or expired context, or an invalid memory access.
// Other runtime errors (bad index, division by zero, failed assertion) are
// ordinary faults. Stack exhaustion and out-of-memory abort the Go runtime
// outright and never get this far.
func DefaultIsFatal(err error) bool {
	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		return true
	}

	var re runtime.Error

	return errors.As(err, &re) && strings.Contains(re.Error(), "invalid memory address")
}
