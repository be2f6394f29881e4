package main

import (
	"io"

	log "github.com/sirupsen/logrus"
)

const logLevelEnv = "ENVPOKE_LOG_LEVEL"

// setupLogging sends logs to w. --verbose forces debug; otherwise level
// names the logrus level. Empty or unknown names fall back to warn.
func setupLogging(w io.Writer, verbose bool, level string) {
	log.SetOutput(w)
	log.SetFormatter(&log.TextFormatter{DisableTimestamp: true})

	switch {
	case verbose:
		log.SetLevel(log.DebugLevel)
	case level == "":
		log.SetLevel(log.WarnLevel)
	default:
		lvl, err := log.ParseLevel(level)
		if err != nil {
			log.SetLevel(log.WarnLevel)
			log.WithError(err).Warnf("Ignoring invalid %s", logLevelEnv)
			return
		}
		log.SetLevel(lvl)
	}
}
