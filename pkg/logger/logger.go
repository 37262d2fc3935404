package logger

import (
	"io"
	"os"

	"github.com/sirupsen/logrus"
)

// New создает логгер: JSON в production, текст с полными метками времени в development
func New(logLevel, appEnv string) *logrus.Logger {
	return NewWithOutput(os.Stdout, logLevel, appEnv)
}

func NewWithOutput(out io.Writer, logLevel, appEnv string) *logrus.Logger {
	log := logrus.New()

	if appEnv == "development" {
		log.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	} else {
		log.SetFormatter(&logrus.JSONFormatter{})
	}

	log.SetOutput(out)

	// Уровень логирования
	level, err := logrus.ParseLevel(logLevel)
	if err != nil {
		level = logrus.InfoLevel // Уровень по умолчанию, если передан некорректный
	}
	log.SetLevel(level)
	return log
}
