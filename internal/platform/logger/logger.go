// Package logger builds the process-wide zerolog logger for the shopapp
// binaries.
package logger

import (
	"os"

	"github.com/rs/zerolog"
)

// New returns a JSON logger on stdout tagged with the service name. The
// service binary builds one at startup and hands it to the components that
// log, such as the store health checker.
func New(serviceName string) zerolog.Logger {
	return zerolog.New(os.Stdout).With().
		Str("service", serviceName).
		Timestamp().
		Logger()
}
