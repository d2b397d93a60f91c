package renderer

import (
	"fmt"

	"github.com/pathtracer/engine/pkg/core"
)

// DefaultLogger implements core.Logger by writing to stdout.
type DefaultLogger struct{}

// NewDefaultLogger builds a core.Logger that writes to stdout.
func NewDefaultLogger() core.Logger {
	return &DefaultLogger{}
}

func (l *DefaultLogger) Printf(format string, args ...interface{}) {
	fmt.Printf(format, args...)
}
