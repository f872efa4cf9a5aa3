package vector

import (
	"go.uber.org/atomic"
	"go.uber.org/zap"
)

var logger = atomic.NewPointer(zap.NewNop())

// SetLogger installs the logger used to report reallocations (debug level)
// and allocation failures (warn level). A nil logger disables logging.
func SetLogger(l *zap.Logger) {
	if l == nil {
		l = zap.NewNop()
	}
	logger.Store(l)
}

func logRealloc(oldCap, newCap, size int) {
	if ce := logger.Load().Check(zap.DebugLevel, "vector reallocated"); ce != nil {
		ce.Write(
			zap.Int("old_capacity", oldCap),
			zap.Int("new_capacity", newCap),
			zap.Int("size", size),
		)
	}
}

func logAllocFailure(capacity int, err error) {
	if ce := logger.Load().Check(zap.WarnLevel, "vector allocation failed"); ce != nil {
		ce.Write(zap.Int("capacity", capacity), zap.Error(err))
	}
}
