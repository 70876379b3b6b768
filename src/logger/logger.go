package logger

import (
	"os"
	"strings"

	log "github.com/sirupsen/logrus"
	"github.com/uptrace/opentelemetry-go-extra/otellogrus"
)

const (
	TextFormat = "text"
	JsonFormat = "json"
)

// Setup configures the global logrus logger. An unknown level falls back to
// info and an unknown format to text.
func Setup(level string, format string) {
	parsed, err := log.ParseLevel(strings.TrimSpace(level))
	if err != nil {
		log.SetLevel(log.InfoLevel)
	} else {
		log.SetLevel(parsed)
	}

	log.SetFormatter(NewFormatter(format))
	log.SetOutput(os.Stdout)

	log.AddHook(otellogrus.NewHook(otellogrus.WithLevels(
		log.PanicLevel,
		log.FatalLevel,
		log.ErrorLevel,
		log.WarnLevel,
	)))
}

func NewFormatter(format string) log.Formatter {
	switch strings.ToLower(strings.TrimSpace(format)) {
	case JsonFormat:
		return &log.JSONFormatter{}
	default:
		return &log.TextFormatter{FullTimestamp: true}
	}
}

// SetupFromEnv reads LOG_LEVEL and LOG_FORMAT.
func SetupFromEnv() {
	Setup(os.Getenv("LOG_LEVEL"), os.Getenv("LOG_FORMAT"))
}
