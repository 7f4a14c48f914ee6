// Command httpcheck validates raw HTTP/1.1 messages and prints their
// canonical wire form.
//
// Usage:
//
//	httpcheck [file ...]
//
// With no arguments the message is read from standard input. Configuration
// comes from HTTPCHECK_KIND, HTTPCHECK_LOG_LEVEL and HTTPCHECK_CANONICAL.
// The exit status is 1 when any input is rejected.
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/cockroachdb/errors"
	"github.com/shapestone/shape-httpmsg/internal/check"
	"go.uber.org/zap"
)

func main() {
	if err := run(os.Args[1:], os.Stdin, os.Stdout); err != nil {
		fmt.Fprintln(os.Stderr, "httpcheck:", err)
		os.Exit(1)
	}
}

func run(args []string, stdin io.Reader, stdout io.Writer) error {
	e, err := check.ParseEnv()
	if err != nil {
		return err
	}

	logger, err := check.NewLogger(e)
	if err != nil {
		return errors.Wrap(err, "failed to build logger")
	}
	defer func() { _ = logger.Sync() }()

	inputs, err := readInputs(args, stdin)
	if err != nil {
		return err
	}

	results, err := check.New(logger, e).CheckAll(stdout, inputs)
	if err != nil {
		return err
	}

	if rejected := check.Rejected(results); len(rejected) > 0 {
		for _, res := range rejected {
			logger.Debug("rejected input", zap.String("input", res.Name))
		}
		return errors.Newf("%d of %d inputs rejected", len(rejected), len(results))
	}
	return nil
}

func readInputs(args []string, stdin io.Reader) ([]check.Input, error) {
	if len(args) == 0 {
		data, err := io.ReadAll(stdin)
		if err != nil {
			return nil, errors.Wrap(err, "failed to read stdin")
		}
		return []check.Input{{Name: "-", Data: data}}, nil
	}

	inputs := make([]check.Input, 0, len(args))
	for _, name := range args {
		data, err := os.ReadFile(name)
		if err != nil {
			return nil, errors.Wrapf(err, "failed to read %s", name)
		}
		inputs = append(inputs, check.Input{Name: name, Data: data})
	}
	return inputs, nil
}
