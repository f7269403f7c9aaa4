package logger

import (
	"os"

	"github.com/sirupsen/logrus"
)

// Log is the process-wide logger.
var Log = newLogger()

func newLogger() *logrus.Logger {
	l := logrus.New()
	l.SetOutput(os.Stdout)
	l.SetFormatter(&logrus.JSONFormatter{})
	l.SetLevel(logrus.InfoLevel)
	return l
}

// SetLevel меняет уровень логирования; неизвестный уровень оставляет текущий.
func SetLevel(level string) {
	lvl, err := logrus.ParseLevel(level)
	if err != nil {
		Log.WithField("level", level).Warn("Unknown log level, keeping current")
		return
	}
	Log.SetLevel(lvl)
}
