package logging

import (
	log "github.com/sirupsen/logrus"
)

// Init configures the standard logrus logger and returns the one used for
// request logging. Unknown levels fall back to info.
func Init(level string) *log.Logger {
	lvl, err := log.ParseLevel(level)
	if err != nil {
		lvl = log.InfoLevel
	}
	formatter := &log.JSONFormatter{
		FieldMap: log.FieldMap{
			log.FieldKeyTime: "@timestamp",
			log.FieldKeyMsg:  "message",
		},
	}
	log.SetFormatter(formatter)
	log.SetLevel(lvl)

	logger := log.New()
	logger.SetFormatter(formatter)
	logger.SetLevel(lvl)
	return logger
}
