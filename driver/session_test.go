package driver

import (
	"bytes"
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ezrec/yieldgen/negotiate"
)

func TestRunAll(t *testing.T) {
	assert := assert.New(t)

	boom := errors.New("boom")
	failing := ResponderFunc[negotiate.Event, negotiate.Response](func(ctx context.Context, event negotiate.Event) (negotiate.Response, error) {
		return nil, boom
	})

	cfg := negotiate.DefaultConfig()
	n, err := negotiate.NewNegotiator(cfg)
	require.NoError(t, err)

	var sessions []Session
	for i := range 20 {
		session := Session{
			Generator: n.Begin(),
			Responder: &Static{Payload: negotiate.SomeValue(i)},
		}
		if i == 7 {
			session.Id = "seven"
			session.Responder = failing
		}
		sessions = append(sessions, session)
	}

	outcomes, err := RunAll(context.Background(), 4, sessions)
	assert.NoError(err)
	require.Len(t, outcomes, 20)

	ids := map[string]bool{}
	for i, outcome := range outcomes {
		assert.NotEmpty(outcome.Id)
		ids[outcome.Id] = true

		if i == 7 {
			assert.Equal("seven", outcome.Id)
			assert.ErrorIs(outcome.Err, boom)
			continue
		}

		assert.NoError(outcome.Err)
		assert.Equal(negotiate.Ok(uint32(i)), outcome.Result)
		assert.Equal(2, outcome.Steps)
	}
	assert.Len(ids, 20)
}

func TestRunAll_Cancelled(t *testing.T) {
	assert := assert.New(t)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	n, err := negotiate.NewNegotiator(negotiate.DefaultConfig())
	require.NoError(t, err)

	outcomes, err := RunAll(ctx, 0, []Session{
		{Generator: n.Begin(), Responder: &Static{}},
	})
	assert.ErrorIs(err, context.Canceled)
	require.Len(t, outcomes, 1)
	assert.ErrorIs(outcomes[0].Err, context.Canceled)
}

func TestRunAll_Quiet(t *testing.T) {
	assert := assert.New(t)

	var out bytes.Buffer
	saved := Log.Out
	Log.SetOutput(&out)
	defer Log.SetOutput(saved)

	n, err := negotiate.NewNegotiator(negotiate.DefaultConfig())
	require.NoError(t, err)

	failing := ResponderFunc[negotiate.Event, negotiate.Response](func(ctx context.Context, event negotiate.Event) (negotiate.Response, error) {
		return nil, errors.New("boom")
	})

	outcomes, err := RunAll(context.Background(), 1, []Session{
		{Generator: n.Begin(), Responder: failing},
	})
	assert.NoError(err)
	require.Len(t, outcomes, 1)
	assert.Error(outcomes[0].Err)

	// Failures are left to the caller to report.
	assert.Empty(out.String())
}
