package api

import (
	"encoding/json"
	"log"
	"net/http"
	"strconv"

	"github.com/matt-g-everett/ledanim/stream"
)

// Control is the part of the stream controller exposed over HTTP.
type Control interface {
	Report() stream.Report
	Apply(cmd stream.Command) error
}

// Api serves a small control surface for the running show.
type Api struct {
	control Control
}

// NewApi creates an instance of an Api.
func NewApi(control Control) *Api {
	a := new(Api)
	a.control = control
	return a
}

// Handler routes the Api endpoints.
func (a *Api) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("GET /status", a.handleStatus)
	mux.HandleFunc("POST /scenes/{index}", a.handleScene)
	for _, command := range []string{"begin", "pause", "resume", "stop"} {
		mux.HandleFunc("POST /"+command, a.handleCommand(command))
	}
	return mux
}

// Serve listens on addr until the server fails.
func (a *Api) Serve(addr string) error {
	log.Printf("Listening on %s...", addr)
	return http.ListenAndServe(addr, a.Handler())
}

func (a *Api) handleStatus(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, a.control.Report())
}

func (a *Api) handleCommand(command string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		a.apply(w, stream.Command{Type: command})
	}
}

func (a *Api) handleScene(w http.ResponseWriter, r *http.Request) {
	index, err := strconv.Atoi(r.PathValue("index"))
	if err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid scene index"})
		return
	}
	a.apply(w, stream.Command{Type: "scene", Scene: index})
}

func (a *Api) apply(w http.ResponseWriter, cmd stream.Command) {
	if err := a.control.Apply(cmd); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": err.Error()})
		return
	}
	writeJSON(w, http.StatusOK, a.control.Report())
}

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Println(err)
	}
}
