package server

import (
	"context"
	"fmt"
	"net/http"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"

	"github.com/hupe1980/careermentor/chat"
)

// Frame types on the chat socket.
const (
	FrameMessage = "message"
	FrameUpdate  = "update"
)

// ServerFrame is sent to the browser for every new or edited message.
type ServerFrame struct {
	Type      string `json:"type"`
	ID        string `json:"id"`
	Author    string `json:"author,omitempty"`
	Content   string `json:"content"`
	Timestamp int64  `json:"timestamp"`
}

// ClientFrame is a user message received from the browser.
type ClientFrame struct {
	Type    string `json:"type"`
	Content string `json:"content"`
}

// wsUI renders chat messages as frames on a single connection.
type wsUI struct {
	conn *websocket.Conn
	mu   sync.Mutex
}

var _ chat.UI = (*wsUI)(nil)

func (u *wsUI) Send(_ context.Context, msg chat.Message) (string, error) {
	id := msg.ID
	if id == "" {
		id = uuid.NewString()
	}

	err := u.write(ServerFrame{
		Type:    FrameMessage,
		ID:      id,
		Author:  msg.Author,
		Content: msg.Content,
	})
	if err != nil {
		return "", err
	}

	return id, nil
}

func (u *wsUI) Update(_ context.Context, id, content string) error {
	return u.write(ServerFrame{
		Type:    FrameUpdate,
		ID:      id,
		Author:  chat.AssistantAuthor,
		Content: content,
	})
}

func (u *wsUI) write(f ServerFrame) error {
	f.Timestamp = time.Now().UnixMilli()

	u.mu.Lock()
	defer u.mu.Unlock()

	if err := u.conn.WriteJSON(f); err != nil {
		return fmt.Errorf("write %s frame: %w", f.Type, err)
	}

	return nil
}

// handleWebSocket runs one conversation per connection. Messages are handled
// one at a time in arrival order.
func (s *Server) handleWebSocket(w http.ResponseWriter, r *http.Request) {
	conn, err := s.upgrader.Upgrade(w, r, nil)
	if err != nil {
		s.logger.Warn("server.ws.upgrade_failed", "error", err.Error())
		return
	}
	defer conn.Close()

	ctx, cancel := context.WithCancel(r.Context())
	defer cancel()

	ui := &wsUI{conn: conn}

	sess, err := s.chat.Start(ctx, ui)
	if err != nil {
		s.logger.Error("server.ws.start_failed", "error", err.Error())
		if sess != nil {
			_ = s.chat.End(sess)
		}
		return
	}

	defer func() {
		if err := s.chat.End(sess); err != nil {
			s.logger.Warn("server.ws.end_failed", "session_id", sess.ID, "error", err.Error())
		}
	}()

	s.logger.Info("server.ws.connected", "session_id", sess.ID, "remote_addr", r.RemoteAddr)

	for {
		var frame ClientFrame
		if err := conn.ReadJSON(&frame); err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
				s.logger.Warn("server.ws.read_error", "session_id", sess.ID, "error", err.Error())
			}
			return
		}

		if frame.Type != FrameMessage || frame.Content == "" {
			s.logger.Debug("server.ws.frame_ignored", "session_id", sess.ID, "type", frame.Type)
			continue
		}

		if err := s.chat.HandleMessage(ctx, sess, ui, frame.Content); err != nil {
			s.logger.Error("server.ws.handle_failed", "session_id", sess.ID, "error", err.Error())
			return
		}
	}
}
