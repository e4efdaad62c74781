package models

import (
	"context"
	"errors"
	"time"

	"github.com/rs/zerolog"
	gorm_logger "gorm.io/gorm/logger"
)

// slowQuery is the duration after which a statement is logged as a warning.
const slowQuery = 200 * time.Millisecond

// queryLogger writes gorm's statements and messages to a zerolog.Logger.
//
// Statements are logged at trace level, slow statements at warn level.
// Missing records are expected by the controllers and never logged as errors.
type queryLogger struct {
	log   zerolog.Logger
	level gorm_logger.LogLevel
}

func newQueryLogger(l zerolog.Logger) *queryLogger {
	return &queryLogger{log: l.With().Str("component", "gorm").Logger(), level: gorm_logger.Warn}
}

func (l *queryLogger) LogMode(level gorm_logger.LogLevel) gorm_logger.Interface {
	c := *l
	c.level = level
	return &c
}

func (l *queryLogger) Info(_ context.Context, msg string, args ...any) {
	if l.level >= gorm_logger.Info {
		l.log.Info().Msgf(msg, args...)
	}
}

func (l *queryLogger) Warn(_ context.Context, msg string, args ...any) {
	if l.level >= gorm_logger.Warn {
		l.log.Warn().Msgf(msg, args...)
	}
}

func (l *queryLogger) Error(_ context.Context, msg string, args ...any) {
	if l.level >= gorm_logger.Error {
		l.log.Error().Msgf(msg, args...)
	}
}

func (l *queryLogger) Trace(_ context.Context, begin time.Time, fc func() (string, int64), err error) {
	if l.level == gorm_logger.Silent {
		return
	}

	elapsed := time.Since(begin)
	sql, rows := fc()

	var event *zerolog.Event
	switch {
	case err != nil && !errors.Is(err, ErrResourceNotFound) && !errors.Is(err, gorm_logger.ErrRecordNotFound):
		event = l.log.Error().Err(err)
	case elapsed > slowQuery:
		event = l.log.Warn().Bool("slow", true)
	default:
		event = l.log.Trace()
	}

	event.Str("sql", sql).Int64("rows", rows).Dur("duration", elapsed).Msg("query")
}
