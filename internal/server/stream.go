package server

import (
	"context"
	"log"
	"net/http"
	"time"

	"github.com/gorilla/websocket"

	"teachmate/internal/prompt"
)

const (
	streamWSWriteWait = 10 * time.Second
	streamWSPongWait  = 60 * time.Second
	streamWSPingEvery = (streamWSPongWait * 9) / 10
)

var streamWSUpgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin: func(_ *http.Request) bool {
		return true
	},
}

type streamWSInbound struct {
	Topic      string `json:"topic"`
	GradeLevel string `json:"gradeLevel"`
	Subject    string `json:"subject"`
	Duration   string `json:"duration"`
	Focus      string `json:"focus"`
}

type streamWSOutbound struct {
	Type    string `json:"type"` // "delta" | "done" | "error"
	Text    string `json:"text,omitempty"`
	Message string `json:"message,omitempty"`
}

// handleLessonPlanStream upgrades the connection, reads one lesson
// config message, and relays the generation deltas in order. The
// stream terminates with a "done" or a single "error" message.
func (h *Handler) handleLessonPlanStream(w http.ResponseWriter, r *http.Request) {
	conn, err := streamWSUpgrader.Upgrade(w, r, nil)
	if err != nil {
		return
	}
	defer conn.Close()

	ctx, cancel := context.WithCancel(r.Context())
	defer cancel()

	if err := conn.SetReadDeadline(time.Now().Add(streamWSPongWait)); err != nil {
		log.Printf("lessonplan ws set read deadline failed: %v", err)
		return
	}
	conn.SetPongHandler(func(string) error {
		return conn.SetReadDeadline(time.Now().Add(streamWSPongWait))
	})

	writeCh := make(chan streamWSOutbound, 32)
	writerDone := make(chan struct{})
	go func() {
		defer close(writerDone)
		ticker := time.NewTicker(streamWSPingEvery)
		defer ticker.Stop()
		for {
			select {
			case <-ctx.Done():
				return
			case out := <-writeCh:
				if err := conn.SetWriteDeadline(time.Now().Add(streamWSWriteWait)); err != nil {
					return
				}
				if err := conn.WriteJSON(out); err != nil {
					return
				}
				if out.Type != "delta" {
					return
				}
			case <-ticker.C:
				if err := conn.SetWriteDeadline(time.Now().Add(streamWSWriteWait)); err != nil {
					return
				}
				if err := conn.WriteMessage(websocket.PingMessage, nil); err != nil {
					return
				}
			}
		}
	}()

	var in streamWSInbound
	if err := conn.ReadJSON(&in); err != nil {
		cancel()
		<-writerDone
		return
	}

	// Drain further reads so pongs and close frames are processed;
	// the client sends nothing else after the config.
	go func() {
		for {
			if _, _, err := conn.ReadMessage(); err != nil {
				cancel()
				return
			}
		}
	}()

	cfg := prompt.LessonPlanConfig{
		Topic:      in.Topic,
		GradeLevel: in.GradeLevel,
		Subject:    in.Subject,
		Duration:   in.Duration,
		Focus:      in.Focus,
	}
	final := streamWSOutbound{Type: "done"}
	for delta, err := range h.svc.StreamLessonPlan(ctx, cfg) {
		if err != nil {
			final = streamWSOutbound{Type: "error", Message: err.Error()}
			break
		}
		if !pushStreamWS(ctx, writeCh, streamWSOutbound{Type: "delta", Text: delta}) {
			return
		}
	}
	pushStreamWS(ctx, writeCh, final)
	<-writerDone
}

func pushStreamWS(ctx context.Context, ch chan<- streamWSOutbound, out streamWSOutbound) bool {
	select {
	case ch <- out:
		return true
	case <-ctx.Done():
		return false
	}
}
