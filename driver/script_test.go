package driver

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ezrec/yieldgen/negotiate"
)

const testScript = `
def respond(event):
    if event["kind"] == "http_request":
        if event["url"] == "big":
            return 1000
        if event["url"] == "list":
            return [4, 5, 6]
        if event["url"] == "bytes":
            return b"\x07"
        if event["url"] == "bad":
            return None
        if event["url"] == "wide":
            return [256]
        return "xy"
    return event["len"] * 3
`

func TestScript_Respond(t *testing.T) {
	s, err := NewScript("test.star", testScript)
	require.NoError(t, err)

	table := [](struct {
		event    negotiate.Event
		expected negotiate.Response
		err      error
	}){
		{negotiate.HttpRequest{Url: "test"}, negotiate.Payload("xy"), nil},
		{negotiate.HttpRequest{Url: "big"}, negotiate.SomeValue(1000), nil},
		{negotiate.HttpRequest{Url: "list"}, negotiate.Payload{4, 5, 6}, nil},
		{negotiate.HttpRequest{Url: "bytes"}, negotiate.Payload{7}, nil},
		{negotiate.HttpRequest{Url: "bad"}, nil, ErrReturn},
		{negotiate.HttpRequest{Url: "wide"}, nil, ErrReturn},
		{negotiate.PayloadLen(4), negotiate.SomeValue(12), nil},
	}

	for _, entry := range table {
		rsp, err := s.Respond(context.Background(), entry.event)
		if entry.err != nil {
			assert.ErrorIs(t, err, entry.err, "%v", entry.event)
			continue
		}
		assert.NoError(t, err, "%v", entry.event)
		assert.Equal(t, entry.expected, rsp, "%v", entry.event)
	}
}

func TestScript_Errors(t *testing.T) {
	assert := assert.New(t)

	_, err := NewScript("syntax.star", "def respond(:\n")
	assert.Error(err)

	_, err = NewScript("empty.star", "x = 1\n")
	assert.ErrorIs(err, ErrNoRespond)

	s, err := NewScript("fail.star", "def respond(event):\n    fail(\"nope\")\n")
	require.NoError(t, err)
	_, err = s.Respond(context.Background(), negotiate.PayloadLen(1))
	assert.ErrorContains(err, "nope")

	_, err = LoadScript(filepath.Join(t.TempDir(), "missing.star"))
	assert.ErrorIs(err, os.ErrNotExist)
}

func TestScript_Negotiate(t *testing.T) {
	assert := assert.New(t)

	file := filepath.Join(t.TempDir(), "negotiate.star")
	require.NoError(t, os.WriteFile(file, []byte(testScript), 0o644))

	s, err := LoadScript(file)
	require.NoError(t, err)

	cfg := negotiate.DefaultConfig()
	cfg.Fallback = "digest"
	cfg.Challenge = []byte("abcd")
	n, err := negotiate.NewNegotiator(cfg)
	require.NoError(t, err)

	// "xy" fails kerberos, digest gets len 4 * 3.
	out, err := Run(context.Background(), n.Begin(), s)
	assert.NoError(err)
	assert.Equal(negotiate.Ok(12), out)
}
