package server

import (
	_ "embed"
	"html/template"
	"log/slog"
	"net/http"
)

//go:embed web/index.html
var indexHTML string

var indexTemplate = template.Must(template.New("index").Parse(indexHTML))

type pageData struct {
	Title  string
	Slider Slider
}

func (h *Handler) handleIndex(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := indexTemplate.Execute(w, pageData{Title: "SpaceX Launch Records Dashboard", Slider: h.Slider}); err != nil {
		slog.Error("Failed to render dashboard page", "error", err)
	}
}
