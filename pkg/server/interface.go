/*
Package server implements msgpack IPC for autocomplete queries.

The protocol is a request/response stream over stdin/stdout. Each request
carries an ID, a prefix and an optional limit; responses echo the ID and
carry the ranked suggestions plus timing information:

	{"id": "req_001", "p": "carp", "l": 5}
	{"id": "req_001", "s": [{"w": "carpenter", "sc": 3}, {"w": "carpet", "sc": 2}], "c": 2, "t": 12}

A request with action "health" answers with a status frame. Malformed or
out-of-bounds requests produce an error frame:

	{"id": "req_002", "e": "prefix exceeds maximum length of 60", "c": 400}

Messages are processed synchronously; the index never changes after startup,
so the server needs no locking.
*/
package server

// Request is an incoming IPC message.
type Request struct {
	ID     string `msgpack:"id"`
	Action string `msgpack:"a,omitempty"` // empty means complete; "health" supported
	Prefix string `msgpack:"p,omitempty"`
	Limit  int    `msgpack:"l,omitempty"`
}

// ResponseSuggestion is one ranked entry in a completion response.
type ResponseSuggestion struct {
	Word  string `msgpack:"w"`
	Score uint32 `msgpack:"sc"`
}

// Response answers a completion request. TimeTaken is in microseconds.
type Response struct {
	ID          string               `msgpack:"id"`
	Suggestions []ResponseSuggestion `msgpack:"s"`
	Count       int                  `msgpack:"c"`
	TimeTaken   int64                `msgpack:"t"`
}

// StatusResponse answers health requests and signals readiness at startup.
type StatusResponse struct {
	ID     string `msgpack:"id,omitempty"`
	Status string `msgpack:"status"`
}

// ErrorResponse reports a rejected request.
type ErrorResponse struct {
	ID    string `msgpack:"id"`
	Error string `msgpack:"e"`
	Code  int    `msgpack:"c"`
}
