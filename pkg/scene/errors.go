package scene

import "github.com/pkg/errors"

// ConfigError reports an invalid scene configuration: a scene with no
// geometry, or an override file that cannot be read or parsed. Mesh and
// image loading errors from pkg/loaders are plain wrapped errors and are
// not converted to ConfigError.
type ConfigError struct {
	cause error
}

func (e *ConfigError) Error() string {
	return "scene: " + e.cause.Error()
}

func (e *ConfigError) Unwrap() error {
	return e.cause
}

// newConfigError wraps cause with context, attributing the failure to scene
// configuration rather than a transient I/O or rendering fault.
func newConfigError(cause error, format string, args ...interface{}) *ConfigError {
	return &ConfigError{cause: errors.Wrapf(cause, format, args...)}
}
