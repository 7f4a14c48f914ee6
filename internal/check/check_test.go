package check

import (
	"bytes"
	"errors"
	"testing"

	"github.com/shapestone/shape-httpmsg/pkg/http"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func newTestChecker(t *testing.T, e Environment) (*Checker, *observer.ObservedLogs) {
	t.Helper()
	core, logs := observer.New(zapcore.DebugLevel)
	return New(zap.New(core), e), logs
}

func TestChecker_AcceptsRequest(t *testing.T) {
	c, logs := newTestChecker(t, Environment{Kind: KindAuto, Canonical: true})

	res := c.Check(Input{Name: "req", Data: []byte("GET / HTTP/1.1\r\n")})
	require.NoError(t, res.Err)
	assert.Equal(t, KindRequest, res.Kind)
	assert.True(t, res.Complete)
	assert.Equal(t, "GET / HTTP/1.1\r\n", res.Rendered)

	entries := logs.FilterMessage("accepted message").All()
	require.Len(t, entries, 1)
	ctx := entries[0].ContextMap()
	assert.Equal(t, "req", ctx["input"])
	assert.Equal(t, "request", ctx["kind"])
	assert.Equal(t, true, ctx["complete"])
}

func TestChecker_AcceptsResponse(t *testing.T) {
	c, _ := newTestChecker(t, Environment{Kind: KindAuto})

	res := c.Check(Input{Name: "resp", Data: []byte("HTTP/1.1 200 OK\r\nContent-Length: 299\r\n\r\n<body text>")})
	require.NoError(t, res.Err)
	assert.Equal(t, KindResponse, res.Kind)
	assert.True(t, res.Complete)
}

func TestChecker_ResponseWithoutBodyIsIncomplete(t *testing.T) {
	c, _ := newTestChecker(t, Environment{Kind: KindAuto})

	res := c.Check(Input{Name: "resp", Data: []byte("HTTP/1.1 204 No Content\r\nServer: x\r\n\r\n")})
	require.NoError(t, res.Err)
	assert.False(t, res.Complete)
}

func TestChecker_RejectLogsPosition(t *testing.T) {
	c, logs := newTestChecker(t, Environment{Kind: KindAuto})

	res := c.Check(Input{Name: "bad", Data: []byte("GET / HTTP/1.1\r\nSec-Fetch-Dest-: x")})
	require.Error(t, res.Err)
	assert.Empty(t, res.Rendered)

	var perr *http.ParseError
	require.True(t, errors.As(res.Err, &perr))

	entries := logs.FilterMessage("rejected message").All()
	require.Len(t, entries, 1)
	assert.Equal(t, zapcore.WarnLevel, entries[0].Level)
	ctx := entries[0].ContextMap()
	assert.Equal(t, "bad", ctx["input"])
	assert.EqualValues(t, perr.Offset, ctx["offset"])
	assert.EqualValues(t, 2, ctx["line"])
	assert.Equal(t, perr.Rule, ctx["rule"])
}

func TestChecker_ForcedKind(t *testing.T) {
	c, _ := newTestChecker(t, Environment{Kind: KindResponse})

	res := c.Check(Input{Name: "req", Data: []byte("GET / HTTP/1.1\r\n")})
	assert.Equal(t, KindResponse, res.Kind)
	assert.Error(t, res.Err)
}

func TestChecker_CheckAll(t *testing.T) {
	c, logs := newTestChecker(t, Environment{Kind: KindAuto, Canonical: true})

	inputs := []Input{
		{Name: "a", Data: []byte("GET /a HTTP/1.1\r\nHost: x\r\n")},
		{Name: "b", Data: []byte("get /b HTTP/1.1\r\n")},
		{Name: "c", Data: []byte("HTTP/1.1 200 OK\r\nA: b\r\n\r\nhi")},
	}

	var out bytes.Buffer
	results, err := c.CheckAll(&out, inputs)
	require.NoError(t, err)
	require.Len(t, results, 3)

	rejected := Rejected(results)
	require.Len(t, rejected, 1)
	assert.Equal(t, "b", rejected[0].Name)

	assert.Equal(t, "GET /a HTTP/1.1\r\nHost: x"+"HTTP/1.1 200 OK\r\nA: b\r\n\r\nhi", out.String())

	done := logs.FilterMessage("check finished").All()
	require.Len(t, done, 1)
	assert.EqualValues(t, 1, done[0].ContextMap()["rejected"])
}

func TestChecker_CheckAllNoCanonical(t *testing.T) {
	c, _ := newTestChecker(t, Environment{Kind: KindAuto, Canonical: false})

	var out bytes.Buffer
	_, err := c.CheckAll(&out, []Input{{Name: "a", Data: []byte("GET / HTTP/1.1\r\n")}})
	require.NoError(t, err)
	assert.Zero(t, out.Len())
}

type failWriter struct{}

func (failWriter) Write([]byte) (int, error) { return 0, errors.New("closed") }

func TestChecker_CheckAllWriteError(t *testing.T) {
	c, _ := newTestChecker(t, Environment{Kind: KindAuto, Canonical: true})

	_, err := c.CheckAll(failWriter{}, []Input{{Name: "a", Data: []byte("GET / HTTP/1.1\r\n")}})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "write a")
}
