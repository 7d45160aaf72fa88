package logging

import (
	"time"

	"go.uber.org/zap"

	"github.com/authcorp/sharedkernel/errors"
)

// Field represents a log field.
type Field = zap.Field

// String creates a string field.
func String(key, value string) Field {
	return zap.String(key, value)
}

// Int creates an int field.
func Int(key string, value int) Field {
	return zap.Int(key, value)
}

// Bool creates a bool field.
func Bool(key string, value bool) Field {
	return zap.Bool(key, value)
}

// Error creates an error field. Kernel errors also log their kind and key.
func Error(err error) Field {
	if err == nil {
		return zap.Skip()
	}
	if e, ok := errors.AsType[*errors.Error](err); ok {
		return zap.Dict("error",
			zap.String("message", err.Error()),
			zap.String("kind", string(e.Kind)),
			zap.String("key", e.Key.String()),
		)
	}
	return zap.Error(err)
}

// Duration creates a duration field.
func Duration(key string, value time.Duration) Field {
	return zap.Duration(key, value)
}

// Stringer creates a field from a fmt.Stringer such as domain.Duration.
func Stringer(key string, value interface{ String() string }) Field {
	return zap.Stringer(key, value)
}

// Any creates a field with any value.
func Any(key string, value any) Field {
	return zap.Any(key, value)
}
