package main

import (
	_ "embed"
	"encoding/json"
	"html/template"
	"net/http"

	"github.com/charmbracelet/log"

	"github.com/tomz197/termpong/internal/leaderboard"
)

//go:embed index.html
var indexHTML string

var indexTmpl = template.Must(template.New("index").Funcs(template.FuncMap{
	"inc": func(i int) int { return i + 1 },
}).Parse(indexHTML))

// site serves the landing page and a read-only view of the leaderboard.
type site struct {
	sshHost string
	store   *leaderboard.Store
	logger  *log.Logger
}

func (s *site) routes() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("GET /{$}", s.handleIndex)
	mux.HandleFunc("GET /leaderboard.json", s.handleLeaderboard)
	mux.HandleFunc("GET /health", handleHealth)
	return mux
}

func (s *site) handleIndex(w http.ResponseWriter, r *http.Request) {
	data := struct {
		SSHHost string
		Entries []leaderboard.Entry
	}{
		SSHHost: s.sshHost,
		Entries: s.store.Load(),
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := indexTmpl.Execute(w, data); err != nil {
		s.logger.Error("render index", "err", err)
	}
}

func (s *site) handleLeaderboard(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(s.store.Load()); err != nil {
		s.logger.Error("encode leaderboard", "err", err)
	}
}

func handleHealth(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	w.Write([]byte(`{"status":"ok"}`))
}
