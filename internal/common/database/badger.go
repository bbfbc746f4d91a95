// internal/common/database/badger.go
package database

import (
	"fmt"
	"os"

	"acadgrant/internal/common/config"
	"acadgrant/internal/common/logger"

	badger "github.com/dgraph-io/badger/v4"
)

// NewBadger opens an embedded badger database. An empty Dir keeps
// everything in memory.
func NewBadger(cfg config.BadgerConfig, log logger.Logger) (*badger.DB, error) {
	var opts badger.Options
	if cfg.Dir == "" {
		opts = badger.DefaultOptions("").WithInMemory(true)
	} else {
		if err := os.MkdirAll(cfg.Dir, 0o755); err != nil {
			return nil, fmt.Errorf("failed to create badger dir: %w", err)
		}
		opts = badger.DefaultOptions(cfg.Dir)
	}

	opts = opts.
		WithLogger(NewBadgerLogger(log)).
		// badger logs every compaction at INFO
		WithLoggingLevel(badger.WARNING)

	db, err := badger.Open(opts)
	if err != nil {
		return nil, fmt.Errorf("failed to open badger: %w", err)
	}
	return db, nil
}

// BadgerLogger adapts logger.Logger to badger.Logger.
type BadgerLogger struct {
	logger logger.Logger
}

func NewBadgerLogger(log logger.Logger) *BadgerLogger {
	if log == nil {
		log = logger.NewNoOpLogger()
	}
	return &BadgerLogger{logger: log.WithFields(map[string]interface{}{"component": "badger"})}
}

func (b *BadgerLogger) Errorf(msg string, args ...interface{}) {
	b.logger.Error(fmt.Sprintf(msg, args...), nil)
}

func (b *BadgerLogger) Warningf(msg string, args ...interface{}) {
	b.logger.Warn(fmt.Sprintf(msg, args...), nil)
}

func (b *BadgerLogger) Infof(msg string, args ...interface{}) {
	b.logger.Info(fmt.Sprintf(msg, args...), nil)
}

func (b *BadgerLogger) Debugf(msg string, args ...interface{}) {
	b.logger.Debug(fmt.Sprintf(msg, args...), nil)
}
