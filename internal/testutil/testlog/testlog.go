package testlog

import (
	"os"
	"sync"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

var configureOnce sync.Once

// Start configures the package-level zerolog logger for test output and
// records the test name. Safe to call from every test.
func Start(t *testing.T) {
	t.Helper()
	configureOnce.Do(func() {
		output := zerolog.ConsoleWriter{
			Out:        os.Stderr,
			TimeFormat: time.RFC3339,
			NoColor:    true,
		}
		log.Logger = zerolog.New(output).Level(zerolog.DebugLevel)
	})
	log.Debug().Str("test", t.Name()).Msg("start")
}
