package backup

import (
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/rs/zerolog"

	"github.com/arthur-debert/dotsetup/pkg/paths"
)

// RunLog is the durable, append-only record of a single installer run,
// written as line-delimited key=value records into install.log inside the
// run's backup directory. Opened lazily on the first recorded action.
type RunLog struct {
	open   func() (io.Writer, error)
	logger *zerolog.Logger
	failed bool
}

// NewRunLog creates a run log that materializes under dir on first use.
func NewRunLog(dir string) *RunLog {
	return &RunLog{
		open: func() (io.Writer, error) {
			if err := os.MkdirAll(dir, 0755); err != nil {
				return nil, err
			}
			return os.OpenFile(filepath.Join(dir, paths.RunLogName),
				os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0644)
		},
	}
}

// NewRunLogWriter creates a run log over an existing writer, for tests.
func NewRunLogWriter(w io.Writer) *RunLog {
	return &RunLog{open: func() (io.Writer, error) { return w, nil }}
}

func (rl *RunLog) ensure() bool {
	if rl.logger != nil {
		return true
	}
	if rl.failed {
		return false
	}

	w, err := rl.open()
	if err != nil {
		// A dead run log must not abort the run; the console log still
		// carries the same events.
		rl.failed = true
		return false
	}

	console := zerolog.ConsoleWriter{
		Out:        w,
		NoColor:    true,
		TimeFormat: time.RFC3339,
	}
	logger := zerolog.New(console).With().Timestamp().Logger()
	rl.logger = &logger
	return true
}

// Record appends one timestamped action line with its fields.
func (rl *RunLog) Record(action string, fields map[string]string) {
	if !rl.ensure() {
		return
	}

	event := rl.logger.Info()
	for k, v := range fields {
		if v != "" {
			event = event.Str(k, v)
		}
	}
	event.Msg(action)
}
