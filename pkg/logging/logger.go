// Package logging builds the process logger and scrubs secrets from values
// that end up in log output.
package logging

import "go.uber.org/zap"

// New returns the process logger for the given environment. Development gets
// the console encoder; everything else logs structured JSON.
func New(env string) (*zap.Logger, error) {
	if env == "development" {
		return zap.NewDevelopment()
	}
	return zap.NewProduction()
}
