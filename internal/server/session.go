// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package server

import (
	"encoding/json"
	"log"
	"net/http"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"

	"github.com/pdiddy/base-converter/internal/state"
	"github.com/pdiddy/base-converter/pkg/types"
)

// maxMessageSize bounds one incoming websocket frame; an edit is a few bytes.
const maxMessageSize = 4096

// sessionRequest is an incoming websocket message. Seq is chosen by the
// client and echoed so it can drop replies to superseded edits.
type sessionRequest struct {
	Type string     `json:"type"` // "edit" or "clear"
	Base types.Base `json:"base"`
	Text string     `json:"text"`
	Seq  int64      `json:"seq"`
}

// sessionReply is sent after every request. It carries either the state
// snapshot or an error; the session stays open after an error.
type sessionReply struct {
	SessionID string `json:"session_id"`
	Seq       int64  `json:"seq"`
	Error     string `json:"error,omitempty"`
	*state.Snapshot
}

// handleSession upgrades to a websocket and runs one conversion session. The
// read loop is the only goroutine touching st.
func (s *Server) handleSession(w http.ResponseWriter, r *http.Request) {
	conn, err := s.upgrader.Upgrade(w, r, nil)
	if err != nil {
		log.Printf("server: websocket upgrade: %v", err)
		return
	}
	defer conn.Close()

	id := uuid.NewString()
	log.Printf("session %s: opened from %s", id, r.RemoteAddr)
	defer log.Printf("session %s: closed", id)

	conn.SetReadLimit(maxMessageSize)

	st := state.New()
	for {
		_, msg, err := conn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
				log.Printf("session %s: read: %v", id, err)
			}
			return
		}

		reply := applyRequest(st, msg)
		reply.SessionID = id
		if err := conn.WriteJSON(reply); err != nil {
			log.Printf("session %s: write: %v", id, err)
			return
		}
	}
}

// applyRequest decodes one message and applies it to st.
func applyRequest(st *state.State, msg []byte) sessionReply {
	var req sessionRequest
	if err := json.Unmarshal(msg, &req); err != nil {
		return sessionReply{Error: "invalid message format"}
	}

	switch req.Type {
	case "edit":
		if !req.Base.Valid() {
			return sessionReply{Seq: req.Seq, Error: "unsupported base: use 2, 8, 10 or 16"}
		}
		st.Edit(req.Base, req.Text)
	case "clear":
		st.ClearAll()
	default:
		return sessionReply{Seq: req.Seq, Error: "unknown message type: " + req.Type}
	}

	snap := st.Snapshot()
	return sessionReply{Seq: req.Seq, Snapshot: &snap}
}
