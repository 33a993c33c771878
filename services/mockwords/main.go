package main

import (
	"context"
	"fmt"
	"html"
	"io"
	"log"
	"net/http"
	"os"
	"os/signal"
	"slices"
	"strings"
	"sync"
	"syscall"
)

// Local stand-in for the corpus host and the dictionary site.
func main() {
	addr := getEnv("MOCK_WORDS_ADDR", ":9090")
	server := NewMockWordsServer(addr, seedCorpus)

	go func() {
		if err := server.Start(); err != nil {
			log.Printf("Mock words server stopped: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Println("Shutting down Mock words server...")
	_ = server.Stop(context.Background())
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

var seedCorpus = []string{"casa", "sapo", "posto", "tomate", "tecido", "dorso", "solado", "dote"}

type Entry struct {
	Definition string
	Class      string
}

type MockWordsServer struct {
	server *http.Server
	corpus []string
	data   *sync.Map
}

func NewMockWordsServer(addr string, corpus []string) *MockWordsServer {
	mux := http.NewServeMux()
	server := &MockWordsServer{
		server: &http.Server{
			Addr:    addr,
			Handler: mux,
		},
		corpus: corpus,
		data:   &sync.Map{},
	}

	mux.HandleFunc("GET /words/all/{file}", server.getCorpus)
	mux.HandleFunc("GET /{word}/", server.getDefinition)
	mux.HandleFunc("PUT /{word}/", server.putDefinition)
	return server
}

func (m *MockWordsServer) Start() error {
	log.Printf("Mock words server starting on %s", m.server.Addr)
	return m.server.ListenAndServe()
}

func (m *MockWordsServer) Stop(ctx context.Context) error {
	return m.server.Shutdown(ctx)
}

func (m *MockWordsServer) getCorpus(w http.ResponseWriter, r *http.Request) {
	if !strings.HasSuffix(r.PathValue("file"), ".txt") {
		http.Error(w, "Corpus not found", http.StatusNotFound)
		return
	}

	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	_, _ = io.WriteString(w, strings.Join(m.corpus, "\n"))
}

func (m *MockWordsServer) getDefinition(w http.ResponseWriter, r *http.Request) {
	word := r.PathValue("word")

	obj, exists := m.data.Load(word)
	if !exists {
		if !slices.Contains(m.corpus, word) {
			http.Error(w, "Word not found", http.StatusNotFound)
			return
		}
		obj = &Entry{Definition: "Palavra de teste do corpus local.", Class: "substantivo"}
	}

	entry := obj.(*Entry)
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	fmt.Fprintf(w, `<html><body><h1>%s</h1><p class="significado"><span class="cl">%s</span> %s</p></body></html>`,
		html.EscapeString(word), html.EscapeString(entry.Class), html.EscapeString(entry.Definition))
}

// putDefinition takes the class on the first line and the definition on the rest.
func (m *MockWordsServer) putDefinition(w http.ResponseWriter, r *http.Request) {
	raw, err := io.ReadAll(io.LimitReader(r.Body, 1<<16))
	if err != nil {
		http.Error(w, "Bad body", http.StatusBadRequest)
		return
	}

	class, definition, _ := strings.Cut(string(raw), "\n")
	m.data.Store(r.PathValue("word"), &Entry{
		Definition: strings.TrimSpace(definition),
		Class:      strings.TrimSpace(class),
	})
	w.WriteHeader(http.StatusNoContent)
}
