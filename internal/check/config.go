package check

import (
	"github.com/caarlos0/env/v11"
	"github.com/cockroachdb/errors"
	"github.com/samber/lo"
	"go.uber.org/zap/zapcore"
)

// Kind selects which grammar an input is checked against.
type Kind string

const (
	KindAuto     Kind = "auto"
	KindRequest  Kind = "request"
	KindResponse Kind = "response"
)

// Environment holds the httpcheck configuration read from the process environment.
type Environment struct {
	Kind      Kind          `env:"HTTPCHECK_KIND" envDefault:"auto"`
	LogLevel  zapcore.Level `env:"HTTPCHECK_LOG_LEVEL" envDefault:"info"`
	Canonical bool          `env:"HTTPCHECK_CANONICAL" envDefault:"true"`
}

// ParseEnv reads the Environment from the process environment.
func ParseEnv() (e Environment, err error) {
	if err := env.Parse(&e); err != nil {
		return e, errors.Wrap(err, "failed to parse environment")
	}
	if !lo.Contains([]Kind{KindAuto, KindRequest, KindResponse}, e.Kind) {
		return e, errors.Newf("invalid HTTPCHECK_KIND %q: want auto, request or response", e.Kind)
	}
	return e, nil
}
