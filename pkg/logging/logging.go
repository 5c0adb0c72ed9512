package logging

import (
	"fmt"
	"os"
	"strings"

	"github.com/rs/zerolog"
)

// New opens the log file in append mode and returns a logger writing
// "<timestamp> - <LEVEL> - <message>" lines to it. The caller owns the file
// handle for the rest of the run.
func New(path string) (zerolog.Logger, *os.File, error) {
	f, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return zerolog.Nop(), nil, fmt.Errorf("failed to open log file %q: %w", path, err)
	}

	out := zerolog.ConsoleWriter{
		Out:        f,
		NoColor:    true,
		TimeFormat: "2006-01-02 15:04:05",
		PartsOrder: []string{
			zerolog.TimestampFieldName,
			zerolog.LevelFieldName,
			zerolog.MessageFieldName,
		},
		FormatLevel: func(i interface{}) string {
			return fmt.Sprintf("- %s -", strings.ToUpper(fmt.Sprint(i)))
		},
	}

	logger := zerolog.New(out).With().Timestamp().Logger()
	return logger, f, nil
}
