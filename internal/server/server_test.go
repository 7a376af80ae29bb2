// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package server

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gorilla/websocket"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pdiddy/base-converter/pkg/types"
)

func testServer(t *testing.T, allowAll bool) *Server {
	t.Helper()
	cfg := types.DefaultConfig().Serve
	cfg.SiteURL = "https://example.test"
	cfg.AllowAllOrigins = allowAll
	srv, err := New(cfg)
	require.NoError(t, err)
	return srv
}

func get(t *testing.T, srv *Server, target string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, target, nil)
	w := httptest.NewRecorder()
	srv.Router().ServeHTTP(w, req)
	return w
}

func TestHealthCheck(t *testing.T) {
	w := get(t, testServer(t, false), "/healthz")
	require.Equal(t, http.StatusOK, w.Code)

	var body map[string]string
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, "ok", body["status"])
}

func TestIndex(t *testing.T) {
	w := get(t, testServer(t, false), "/")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "text/html; charset=utf-8", w.Header().Get("Content-Type"))
	assert.Contains(t, w.Body.String(), "Number Base Converter")
	assert.Contains(t, w.Body.String(), `href="https://example.test"`)
}

func TestRobotsAndSitemap(t *testing.T) {
	srv := testServer(t, false)

	w := get(t, srv, "/robots.txt")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "Sitemap: https://example.test/sitemap.xml")

	w = get(t, srv, "/sitemap.xml")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "<loc>https://example.test/</loc>")
}

func TestBases(t *testing.T) {
	w := get(t, testServer(t, false), "/api/bases")
	require.Equal(t, http.StatusOK, w.Code)

	var got []types.BaseDescriptor
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &got))
	assert.Equal(t, types.Descriptors(), got)
}

func TestConvert(t *testing.T) {
	tests := []struct {
		name       string
		target     string
		wantStatus int
		wantValid  bool
		wantHex    string
	}{
		{name: "hex by number", target: "/api/convert?value=ff&base=16", wantStatus: http.StatusOK, wantValid: true, wantHex: "FF"},
		{name: "hex by short name", target: "/api/convert?value=0xff&base=hex", wantStatus: http.StatusOK, wantValid: true, wantHex: "FF"},
		{name: "default decimal", target: "/api/convert?value=255", wantStatus: http.StatusOK, wantValid: true, wantHex: "FF"},
		{name: "negative binary", target: "/api/convert?value=-1010&base=2", wantStatus: http.StatusOK, wantValid: true, wantHex: "-A"},
		{name: "invalid digits", target: "/api/convert?value=2&base=2", wantStatus: http.StatusOK},
		{name: "empty value", target: "/api/convert?base=8", wantStatus: http.StatusOK},
		{name: "unsupported base", target: "/api/convert?value=1&base=3", wantStatus: http.StatusBadRequest},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := get(t, testServer(t, false), tt.target)
			require.Equal(t, tt.wantStatus, w.Code)
			if tt.wantStatus != http.StatusOK {
				assert.Contains(t, w.Body.String(), "error")
				return
			}

			var resp convertResponse
			require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
			assert.Equal(t, tt.wantValid, resp.Valid)
			if !tt.wantValid {
				assert.NotNil(t, resp.Values)
				assert.Empty(t, resp.Values)
				return
			}
			require.Len(t, resp.Values, 4)
			assert.Equal(t, tt.wantHex, resp.Values[3].Digits)
		})
	}
}

func TestCORSHeaders(t *testing.T) {
	srv := testServer(t, true)

	req := httptest.NewRequest(http.MethodOptions, "/api/bases", nil)
	req.Header.Set("Origin", "http://example.com")
	req.Header.Set("Access-Control-Request-Method", "GET")
	w := httptest.NewRecorder()
	srv.Router().ServeHTTP(w, req)

	assert.NotEmpty(t, w.Header().Get("Access-Control-Allow-Origin"))
}

type wsReply struct {
	SessionID  string        `json:"session_id"`
	Seq        int64         `json:"seq"`
	Error      string        `json:"error"`
	LastEdited types.Base    `json:"last_edited"`
	Values     []types.Entry `json:"values"`
}

func dialSession(t *testing.T) *websocket.Conn {
	t.Helper()
	ts := httptest.NewServer(testServer(t, false).Router())
	t.Cleanup(ts.Close)

	wsURL := "ws" + strings.TrimPrefix(ts.URL, "http") + "/ws"
	conn, resp, err := websocket.DefaultDialer.Dial(wsURL, nil)
	require.NoError(t, err)
	t.Cleanup(func() { conn.Close() })
	require.Equal(t, http.StatusSwitchingProtocols, resp.StatusCode)
	return conn
}

func roundTrip(t *testing.T, conn *websocket.Conn, msg any) wsReply {
	t.Helper()
	require.NoError(t, conn.WriteJSON(msg))
	var reply wsReply
	require.NoError(t, conn.ReadJSON(&reply))
	return reply
}

func TestSessionEditAndClear(t *testing.T) {
	conn := dialSession(t)

	reply := roundTrip(t, conn, map[string]any{"type": "edit", "base": 16, "text": "ff"})
	require.Empty(t, reply.Error)
	assert.NotEmpty(t, reply.SessionID)
	assert.Equal(t, types.Hexadecimal, reply.LastEdited)
	require.Len(t, reply.Values, 4)
	assert.Equal(t, "11111111", reply.Values[0].Digits)
	assert.Equal(t, "255", reply.Values[2].Digits)
	firstID := reply.SessionID

	reply = roundTrip(t, conn, map[string]any{"type": "edit", "base": 2, "text": "2"})
	assert.Equal(t, types.Binary, reply.LastEdited)
	assert.Empty(t, reply.Values, "invalid input blanks every field")
	assert.Equal(t, firstID, reply.SessionID)

	roundTrip(t, conn, map[string]any{"type": "edit", "base": 8, "text": "17"})
	reply = roundTrip(t, conn, map[string]any{"type": "clear"})
	assert.Equal(t, types.Decimal, reply.LastEdited)
	assert.Empty(t, reply.Values)
}

func TestSessionErrorsKeepConnectionOpen(t *testing.T) {
	conn := dialSession(t)

	reply := roundTrip(t, conn, map[string]any{"type": "paste"})
	assert.Equal(t, "unknown message type: paste", reply.Error)

	reply = roundTrip(t, conn, map[string]any{"type": "edit", "base": 3, "text": "1"})
	assert.Contains(t, reply.Error, "unsupported base")

	require.NoError(t, conn.WriteMessage(websocket.TextMessage, []byte("{not json")))
	var bad wsReply
	require.NoError(t, conn.ReadJSON(&bad))
	assert.Equal(t, "invalid message format", bad.Error)

	reply = roundTrip(t, conn, map[string]any{"type": "edit", "base": 10, "text": "10"})
	require.Empty(t, reply.Error)
	assert.Equal(t, "A", reply.Values[3].Digits)
}

func TestSessionEchoesSeq(t *testing.T) {
	tests := []struct {
		name    string
		msg     map[string]any
		wantErr bool
	}{
		{name: "edit", msg: map[string]any{"type": "edit", "base": 16, "text": "f", "seq": 1}},
		{name: "later edit", msg: map[string]any{"type": "edit", "base": 16, "text": "ff", "seq": 2}},
		{name: "clear", msg: map[string]any{"type": "clear", "seq": 7}},
		{name: "unsupported base", msg: map[string]any{"type": "edit", "base": 3, "text": "1", "seq": 8}, wantErr: true},
		{name: "unknown type", msg: map[string]any{"type": "paste", "seq": 9}, wantErr: true},
	}

	conn := dialSession(t)
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			reply := roundTrip(t, conn, tt.msg)
			assert.Equal(t, int64(tt.msg["seq"].(int)), reply.Seq)
			assert.Equal(t, tt.wantErr, reply.Error != "")
		})
	}
}

func TestSessionRejectsOversizedMessage(t *testing.T) {
	conn := dialSession(t)

	text := strings.Repeat("1", 2*maxMessageSize)
	require.NoError(t, conn.WriteJSON(map[string]any{"type": "edit", "base": 2, "text": text}))

	require.NoError(t, conn.SetReadDeadline(time.Now().Add(5*time.Second)))
	_, _, err := conn.ReadMessage()
	require.Error(t, err)
	assert.True(t, websocket.IsCloseError(err, websocket.CloseMessageTooBig), "got %v", err)
}

func TestSessionsAreIndependent(t *testing.T) {
	ts := httptest.NewServer(testServer(t, false).Router())
	defer ts.Close()
	wsURL := "ws" + strings.TrimPrefix(ts.URL, "http") + "/ws"

	a, _, err := websocket.DefaultDialer.Dial(wsURL, nil)
	require.NoError(t, err)
	defer a.Close()
	b, _, err := websocket.DefaultDialer.Dial(wsURL, nil)
	require.NoError(t, err)
	defer b.Close()

	ra := roundTrip(t, a, map[string]any{"type": "edit", "base": 10, "text": "1"})
	rb := roundTrip(t, b, map[string]any{"type": "clear"})
	assert.NotEqual(t, ra.SessionID, rb.SessionID)
	assert.Len(t, ra.Values, 4)
	assert.Empty(t, rb.Values)
}

func TestWebsocketRejectsForeignOrigin(t *testing.T) {
	ts := httptest.NewServer(testServer(t, false).Router())
	defer ts.Close()

	wsURL := "ws" + strings.TrimPrefix(ts.URL, "http") + "/ws"
	header := http.Header{"Origin": []string{"http://evil.example"}}
	_, resp, err := websocket.DefaultDialer.Dial(wsURL, header)
	require.Error(t, err)
	require.NotNil(t, resp)
	defer resp.Body.Close()
	io.Copy(io.Discard, resp.Body)
	assert.Equal(t, http.StatusForbidden, resp.StatusCode)
}
