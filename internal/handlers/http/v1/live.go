package v1

import (
	"context"
	"net/http"
	"sync"
	"sync/atomic"

	"github.com/gorilla/websocket"

	"github.com/KirkDiggler/pokedex-api/internal/errors"
	"github.com/KirkDiggler/pokedex-api/internal/orchestrators/pokedex"
	"github.com/KirkDiggler/pokedex-api/internal/pkg/debounce"
)

// liveRequest is one keystroke-level update from a live search client
type liveRequest struct {
	Q       string `json:"q"`
	Sort    string `json:"sort"`
	Dir     string `json:"dir"`
	Page    int    `json:"page"`
	PerPage int    `json:"per_page"`
}

// liveResponse answers the latest request; Seq counts the requests the
// client has sent so it can drop stale frames
type liveResponse struct {
	Seq     int64          `json:"seq"`
	Results *listResponse  `json:"results,omitempty"`
	Error   *errorResponse `json:"error,omitempty"`
}

// liveSession serialises writes on one websocket and remembers which request
// is the newest
type liveSession struct {
	conn   *websocket.Conn
	writeM sync.Mutex
	latest atomic.Int64
}

func (l *liveSession) write(v any) error {
	l.writeM.Lock()
	defer l.writeM.Unlock()
	return l.conn.WriteJSON(v)
}

// handleLiveSearch upgrades to a websocket and answers search updates once
// the client has stopped typing for the debounce interval
func (s *Server) handleLiveSearch(w http.ResponseWriter, r *http.Request) {
	conn, err := s.upgrader.Upgrade(w, r, nil)
	if err != nil {
		// Upgrade has already replied with an HTTP error
		s.logger.Warn("live search upgrade failed", "request_id", RequestID(r.Context()), "error", err)
		return
	}
	defer func() { _ = conn.Close() }()

	ctx, cancel := context.WithCancel(context.WithoutCancel(r.Context()))
	defer cancel()

	session := &liveSession{conn: conn}
	deb := debounce.New(s.debounce)
	defer deb.Stop()

	for {
		var req liveRequest
		if err := conn.ReadJSON(&req); err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseNormalClosure, websocket.CloseGoingAway) {
				s.logger.Warn("live search connection lost", "request_id", RequestID(r.Context()), "error", err)
			}
			return
		}

		seq := session.latest.Add(1)
		deb.Trigger(func() { s.runLiveQuery(ctx, session, seq, req) })
	}
}

func (s *Server) runLiveQuery(ctx context.Context, session *liveSession, seq int64, req liveRequest) {
	out, err := s.service.ListPokemon(ctx, &pokedex.ListPokemonInput{
		Query:   req.Q,
		Sort:    req.Sort,
		Dir:     req.Dir,
		Page:    req.Page,
		PerPage: req.PerPage,
	})

	// a newer request arrived while this one ran
	if session.latest.Load() != seq {
		return
	}

	resp := liveResponse{Seq: seq}
	if err != nil {
		code := errors.GetCode(err)
		resp.Error = &errorResponse{Error: errors.GetMessage(err), Code: code.String()}
	} else {
		resp.Results = &listResponse{Page: out.Page, Query: out.Query}
	}

	if err := session.write(resp); err != nil && ctx.Err() == nil {
		s.logger.Debug("live search write failed", "seq", seq, "error", err)
	}
}
