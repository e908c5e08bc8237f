package main

import (
	"os"

	"github.com/sirupsen/logrus"
)

const logLevelEnv = "IMG2ASCII_LOG_LEVEL"

// newLogger writes to stderr; stdout is reserved for art and MCP traffic.
func newLogger() *logrus.Logger {
	log := logrus.New()
	log.SetOutput(os.Stderr)
	log.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})

	level := logrus.InfoLevel
	if v := os.Getenv(logLevelEnv); v != "" {
		parsed, err := logrus.ParseLevel(v)
		if err != nil {
			log.WithField(logLevelEnv, v).Warn("unknown log level, using info")
		} else {
			level = parsed
		}
	}
	log.SetLevel(level)

	log.WithFields(logrus.Fields{
		"version": Version,
		"built":   BuildTime,
		"commit":  GitCommit,
	}).Debug("img2ascii starting")
	return log
}
