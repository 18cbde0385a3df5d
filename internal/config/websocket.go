package config

import (
	"fmt"
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/gorilla/websocket"
)

type WebSocket struct {
	Upgrader     websocket.Upgrader
	WriteTimeout time.Duration
}

// AllowedOrigins reads the comma separated ALLOWED_ORIGINS list. An empty
// list allows every origin.
func AllowedOrigins() ([]string, error) {
	var allowed []string
	origins, ok := os.LookupEnv("ALLOWED_ORIGINS")
	if !ok || strings.TrimSpace(origins) == "" {
		return allowed, nil
	}
	for _, o := range strings.Split(origins, ",") {
		o = strings.TrimSpace(o)
		if o == "" {
			return nil, fmt.Errorf("empty origin in ALLOWED_ORIGINS %q", origins)
		}
		allowed = append(allowed, o)
	}
	return allowed, nil
}

func NewWebSocket() (*WebSocket, error) {
	allowed, err := AllowedOrigins()
	if err != nil {
		return nil, err
	}

	upgrader := websocket.Upgrader{
		HandshakeTimeout: time.Second * 10,
		CheckOrigin: func(r *http.Request) bool {
			if len(allowed) == 0 {
				return true
			}
			origin := r.Header.Get("Origin")
			for _, o := range allowed {
				if o == origin {
					return true
				}
			}
			return false
		},
	}

	ws := &WebSocket{
		Upgrader:     upgrader,
		WriteTimeout: time.Second * 10,
	}

	return ws, nil
}
