package server

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/vmihailenco/msgpack/v5"

	"github.com/prajithkb/autocomplete/pkg/config"
	"github.com/prajithkb/autocomplete/pkg/suggest"
)

func testIndex() suggest.Autocompleter {
	return suggest.NewTrie([]suggest.Suggestion{
		{Word: "car", Score: 1},
		{Word: "carpet", Score: 2},
		{Word: "carpenter", Score: 3},
		{Word: "cocoon", Score: 5},
	})
}

// run feeds encoded requests through a server and returns the decoder over
// everything it wrote back.
func run(t *testing.T, requests ...Request) *msgpack.Decoder {
	t.Helper()
	var in, out bytes.Buffer
	enc := msgpack.NewEncoder(&in)
	for _, req := range requests {
		require.NoError(t, enc.Encode(req))
	}

	srv := newServer(testIndex(), config.DefaultConfig().Server, &in, &out)
	require.NoError(t, srv.Start())

	dec := msgpack.NewDecoder(&out)
	var ready StatusResponse
	require.NoError(t, dec.Decode(&ready))
	require.Equal(t, "ready", ready.Status)
	return dec
}

func TestServerComplete(t *testing.T) {
	dec := run(t, Request{ID: "r1", Prefix: "car"})

	var resp Response
	require.NoError(t, dec.Decode(&resp))
	require.Equal(t, "r1", resp.ID)
	require.Equal(t, 3, resp.Count)
	require.Equal(t, []ResponseSuggestion{
		{Word: "carpenter", Score: 3},
		{Word: "carpet", Score: 2},
		{Word: "car", Score: 1},
	}, resp.Suggestions)
}

func TestServerLimitClamped(t *testing.T) {
	dec := run(t, Request{ID: "r1", Prefix: "c", Limit: 2})

	var resp Response
	require.NoError(t, dec.Decode(&resp))
	require.Equal(t, 2, resp.Count)
	require.Equal(t, "cocoon", resp.Suggestions[0].Word)
	require.Equal(t, "carpenter", resp.Suggestions[1].Word)
}

func TestServerPrefixBounds(t *testing.T) {
	long := make([]byte, 61)
	for i := range long {
		long[i] = 'a'
	}
	dec := run(t,
		Request{ID: "short", Prefix: ""},
		Request{ID: "long", Prefix: string(long)},
	)

	var errResp ErrorResponse
	require.NoError(t, dec.Decode(&errResp))
	require.Equal(t, "short", errResp.ID)
	require.Equal(t, 400, errResp.Code)

	require.NoError(t, dec.Decode(&errResp))
	require.Equal(t, "long", errResp.ID)
	require.Equal(t, 400, errResp.Code)
}

func TestServerHealthAndUnknownAction(t *testing.T) {
	dec := run(t,
		Request{ID: "h1", Action: "health"},
		Request{ID: "x1", Action: "explode"},
	)

	var status StatusResponse
	require.NoError(t, dec.Decode(&status))
	require.Equal(t, "ok", status.Status)

	var errResp ErrorResponse
	require.NoError(t, dec.Decode(&errResp))
	require.Equal(t, "x1", errResp.ID)
	require.Equal(t, 400, errResp.Code)
}
