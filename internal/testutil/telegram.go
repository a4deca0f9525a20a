package testutil

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"path"
	"sync"
	"testing"

	tele "gopkg.in/telebot.v3"
)

// TelegramRequest is one Bot API call captured by TelegramServer
type TelegramRequest struct {
	Method    string
	Text      string
	ShowAlert bool
}

// TelegramServer answers Bot API calls with canned successes and records them
type TelegramServer struct {
	mu       sync.Mutex
	requests []TelegramRequest
}

// NewTestBot creates an offline bot whose API calls go to a local TelegramServer
func NewTestBot(t testing.TB) (*tele.Bot, *TelegramServer) {
	t.Helper()

	ts := &TelegramServer{}
	srv := httptest.NewServer(http.HandlerFunc(ts.serve))
	t.Cleanup(srv.Close)

	bot, err := tele.NewBot(tele.Settings{
		URL:     srv.URL,
		Token:   "test-token",
		Offline: true,
	})
	if err != nil {
		t.Fatalf("create test bot: %v", err)
	}

	return bot, ts
}

func (ts *TelegramServer) serve(w http.ResponseWriter, r *http.Request) {
	var payload struct {
		Text      string `json:"text"`
		ShowAlert bool   `json:"show_alert"`
	}
	_ = json.NewDecoder(r.Body).Decode(&payload)

	method := path.Base(r.URL.Path)

	ts.mu.Lock()
	ts.requests = append(ts.requests, TelegramRequest{
		Method:    method,
		Text:      payload.Text,
		ShowAlert: payload.ShowAlert,
	})
	ts.mu.Unlock()

	w.Header().Set("Content-Type", "application/json")
	if method == "answerCallbackQuery" {
		_, _ = w.Write([]byte(`{"ok":true,"result":true}`))
		return
	}
	_, _ = w.Write([]byte(`{"ok":true,"result":{"message_id":1,"date":0,"chat":{"id":1,"type":"private"}}}`))
}

// Requests returns every call received so far
func (ts *TelegramServer) Requests() []TelegramRequest {
	ts.mu.Lock()
	defer ts.mu.Unlock()
	return append([]TelegramRequest(nil), ts.requests...)
}

// LastText returns the text of the most recent call, or "" if there was none
func (ts *TelegramServer) LastText() string {
	requests := ts.Requests()
	if len(requests) == 0 {
		return ""
	}
	return requests[len(requests)-1].Text
}
