// Package check validates raw HTTP messages and prints their canonical
// wire form. It backs the httpcheck command.
package check

import (
	"io"

	"github.com/cockroachdb/errors"
	"github.com/samber/lo"
	"github.com/shapestone/shape-httpmsg/pkg/http"
	"go.uber.org/zap"
)

// Input is one named message to check.
type Input struct {
	Name string
	Data []byte
}

// Result is the outcome of checking one Input.
type Result struct {
	Name     string
	Kind     Kind
	Complete bool
	Rendered string // canonical form, empty when rejected
	Err      error  // *http.ParseError when the grammar rejected the input
}

// Checker parses inputs with the configured grammar and logs one entry per input.
type Checker struct {
	logger    *zap.Logger
	kind      Kind
	canonical bool
}

// New returns a Checker configured from e.
func New(logger *zap.Logger, e Environment) *Checker {
	return &Checker{
		logger:    logger.Named("check"),
		kind:      e.Kind,
		canonical: e.Canonical,
	}
}

// Check parses one input. Rejections are reported in the Result, not as
// a returned error.
func (c *Checker) Check(in Input) Result {
	res := Result{Name: in.Name, Kind: c.resolveKind(in.Data)}

	var msg http.Message
	switch res.Kind {
	case KindResponse:
		resp, err := http.ParseResponse(string(in.Data))
		msg, res.Err = resp, err
	default:
		req, err := http.ParseRequest(string(in.Data))
		msg, res.Err = req, err
	}

	if res.Err != nil {
		fields := []zap.Field{
			zap.String("input", in.Name),
			zap.String("kind", string(res.Kind)),
			zap.Error(res.Err),
		}
		var perr *http.ParseError
		if errors.As(res.Err, &perr) {
			fields = append(fields,
				zap.Int("offset", perr.Offset),
				zap.Int("line", perr.Line),
				zap.Int("column", perr.Column),
				zap.String("rule", perr.Rule))
		}
		c.logger.Warn("rejected message", fields...)
		return res
	}

	res.Complete = msg.IsComplete()
	res.Rendered = msg.String()
	c.logger.Info("accepted message",
		zap.String("input", in.Name),
		zap.String("kind", string(res.Kind)),
		zap.Bool("complete", res.Complete),
		zap.Int("fields", len(msg.Fields())))
	return res
}

// CheckAll checks inputs in order and, when canonical output is enabled,
// writes the rendering of every accepted input to w. It returns all results;
// the error is only set when writing fails.
func (c *Checker) CheckAll(w io.Writer, inputs []Input) ([]Result, error) {
	results := lo.Map(inputs, func(in Input, _ int) Result {
		return c.Check(in)
	})

	if c.canonical {
		for _, res := range results {
			if res.Err != nil {
				continue
			}
			if _, err := io.WriteString(w, res.Rendered); err != nil {
				return results, errors.Wrapf(err, "write %s", res.Name)
			}
		}
	}

	rejected := lo.CountBy(results, func(r Result) bool { return r.Err != nil })
	c.logger.Debug("check finished",
		zap.Int("inputs", len(inputs)),
		zap.Int("rejected", rejected))
	return results, nil
}

// Rejected returns the results whose input was rejected.
func Rejected(results []Result) []Result {
	return lo.Filter(results, func(r Result, _ int) bool { return r.Err != nil })
}

func (c *Checker) resolveKind(data []byte) Kind {
	if c.kind != KindAuto {
		return c.kind
	}
	return Kind(http.DetectMessageType(data))
}
