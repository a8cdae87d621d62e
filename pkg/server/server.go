package server

import (
	"fmt"
	"io"
	"os"
	"time"

	charmlog "github.com/charmbracelet/log"
	"github.com/vmihailenco/msgpack/v5"

	"github.com/prajithkb/autocomplete/internal/logger"
	"github.com/prajithkb/autocomplete/pkg/config"
	"github.com/prajithkb/autocomplete/pkg/suggest"
)

// Server answers autocomplete queries over a msgpack stream. It serves any
// Autocompleter; the index is read-only so requests are handled one at a
// time without locking.
type Server struct {
	auto suggest.Autocompleter
	cfg  config.ServerConfig
	log  *charmlog.Logger
	dec  *msgpack.Decoder
	enc  *msgpack.Encoder
}

// NewServer creates a completion server speaking msgpack over stdin/stdout.
func NewServer(auto suggest.Autocompleter, cfg config.ServerConfig) *Server {
	return newServer(auto, cfg, os.Stdin, os.Stdout)
}

func newServer(auto suggest.Autocompleter, cfg config.ServerConfig, r io.Reader, w io.Writer) *Server {
	return &Server{
		auto: auto,
		cfg:  cfg,
		log:  logger.Default("ipc"),
		dec:  msgpack.NewDecoder(r),
		enc:  msgpack.NewEncoder(w),
	}
}

// Start signals readiness, then serves requests until the stream ends.
func (s *Server) Start() error {
	s.log.Debug("Starting IPC server")
	s.send(StatusResponse{Status: "ready"})

	for {
		var req Request
		if err := s.dec.Decode(&req); err != nil {
			if err == io.EOF {
				s.log.Debug("Client closed the stream")
				return nil
			}
			s.log.Errorf("Decoding request: %v", err)
			return fmt.Errorf("failed to decode request: %w", err)
		}
		s.handleRequest(req)
	}
}

func (s *Server) handleRequest(req Request) {
	switch req.Action {
	case "", "complete":
		s.handleComplete(req)
	case "health":
		s.send(StatusResponse{ID: req.ID, Status: "ok"})
	default:
		s.sendError(req.ID, fmt.Sprintf("unknown action: %s", req.Action), 400)
	}
}

// handleComplete validates the request against the configured prefix bounds,
// queries the index and answers with ranked suggestions plus timing.
func (s *Server) handleComplete(req Request) {
	if len(req.Prefix) < s.cfg.MinPrefix {
		s.sendError(req.ID, fmt.Sprintf("prefix must be at least %d characters", s.cfg.MinPrefix), 400)
		return
	}
	if len(req.Prefix) > s.cfg.MaxPrefix {
		s.sendError(req.ID, fmt.Sprintf("prefix exceeds maximum length of %d", s.cfg.MaxPrefix), 400)
		return
	}

	limit := req.Limit
	if limit < 1 || limit > suggest.MaxSuggestions {
		limit = suggest.MaxSuggestions
	}

	start := time.Now()
	suggestions := s.auto.Suggestions(req.Prefix)
	elapsed := time.Since(start)

	if len(suggestions) > limit {
		suggestions = suggestions[:limit]
	}
	out := make([]ResponseSuggestion, len(suggestions))
	for i, sg := range suggestions {
		out[i] = ResponseSuggestion{Word: sg.Word, Score: sg.Score}
	}

	s.log.Debugf("Took [ %v ] for prefix '%s'", elapsed, req.Prefix)
	s.send(Response{
		ID:          req.ID,
		Suggestions: out,
		Count:       len(out),
		TimeTaken:   elapsed.Microseconds(),
	})
}

func (s *Server) send(response any) {
	if err := s.enc.Encode(response); err != nil {
		s.log.Errorf("Encoding response: %v", err)
	}
}

func (s *Server) sendError(id, message string, code int) {
	s.send(ErrorResponse{ID: id, Error: message, Code: code})
}
