package logging

import (
	"os"
	"strings"

	log "github.com/sirupsen/logrus"
)

// Setup настраивает глобальный логгер logrus: уровень и формат вывода
func Setup(level, format string) {
	log.SetOutput(os.Stdout)

	if strings.EqualFold(format, "json") {
		log.SetFormatter(&log.JSONFormatter{})
	} else {
		log.SetFormatter(&log.TextFormatter{FullTimestamp: true})
	}

	parsed, err := log.ParseLevel(strings.ToLower(level))
	if err != nil {
		log.WithField("level", level).Warn("Unknown log level, falling back to info")
		parsed = log.InfoLevel
	}
	log.SetLevel(parsed)
}
