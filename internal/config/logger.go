package config

import (
	"context"
	"os"

	"github.com/go-chi/chi/v5/middleware"
	"github.com/sirupsen/logrus"
)

var Logger = logrus.New()

func Init(cfg *Config) {
	Logger.SetOutput(os.Stdout)

	if cfg.LogFormat == "text" {
		Logger.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	} else {
		Logger.SetFormatter(&logrus.JSONFormatter{})
	}

	level, err := logrus.ParseLevel(cfg.LogLevel)
	if err != nil {
		Logger.WithError(err).Warnf("Unknown log level %q, falling back to info", cfg.LogLevel)
		level = logrus.InfoLevel
	}
	Logger.SetLevel(level)
}

type ctxKey string

const sessionIDKey ctxKey = "session_id"

// ContextWithSessionID tags ctx so that WithContext adds the session to
// every log line.
func ContextWithSessionID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, sessionIDKey, id)
}

func WithContext(ctx context.Context) *logrus.Entry {
	entry := logrus.NewEntry(Logger)
	if ctx == nil {
		return entry
	}

	if reqID := middleware.GetReqID(ctx); reqID != "" {
		entry = entry.WithField("request_id", reqID)
	}
	if sid, ok := ctx.Value(sessionIDKey).(string); ok && sid != "" {
		entry = entry.WithField("session_id", sid)
	}
	return entry
}
