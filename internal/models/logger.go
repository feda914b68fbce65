package models

import (
	"context"
	"errors"
	"time"

	"github.com/rs/zerolog"
	gorm_logger "gorm.io/gorm/logger"
)

// slowQuery is the duration after which ledger queries are logged as warnings.
const slowQuery = 200 * time.Millisecond

// logger writes gorm logs to zerolog.
type logger struct {
	Logger zerolog.Logger
	level  gorm_logger.LogLevel
}

// LogMode returns a logger that drops messages below level. The zero level
// logs everything.
func (l *logger) LogMode(level gorm_logger.LogLevel) gorm_logger.Interface {
	return &logger{Logger: l.Logger, level: level}
}

func (l *logger) enabled(level gorm_logger.LogLevel) bool {
	return l.level == 0 || l.level >= level
}

func (l *logger) Info(_ context.Context, s string, args ...interface{}) {
	if l.enabled(gorm_logger.Info) {
		l.Logger.Info().Msgf(s, args...)
	}
}

func (l *logger) Warn(_ context.Context, s string, args ...interface{}) {
	if l.enabled(gorm_logger.Warn) {
		l.Logger.Warn().Msgf(s, args...)
	}
}

func (l *logger) Error(_ context.Context, s string, args ...interface{}) {
	if l.enabled(gorm_logger.Error) {
		l.Logger.Error().Msgf(s, args...)
	}
}

// Trace logs ledger queries at debug level. Failed queries are errors unless
// the event or expenditure did not exist, slow ones are warnings.
func (l *logger) Trace(_ context.Context, begin time.Time, fc func() (string, int64), err error) {
	if l.level == gorm_logger.Silent {
		return
	}

	elapsed := time.Since(begin)
	sql, rows := fc()
	fields := map[string]interface{}{
		"sql":      sql,
		"rows":     rows,
		"duration": elapsed,
	}

	switch {
	case err != nil && !errors.Is(err, ErrResourceNotFound) && !errors.Is(err, gorm_logger.ErrRecordNotFound):
		if l.enabled(gorm_logger.Error) {
			l.Logger.Error().Err(err).Fields(fields).Msg("[GORM] ledger query failed")
		}
	case elapsed > slowQuery:
		if l.enabled(gorm_logger.Warn) {
			l.Logger.Warn().Fields(fields).Msg("[GORM] slow ledger query")
		}
	default:
		l.Logger.Debug().Fields(fields).Msg("[GORM] ledger query")
	}
}
