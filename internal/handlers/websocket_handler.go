package handlers

import (
	"context"
	"errors"
	"log/slog"
	"sync"
	"time"

	"practice-service/internal/models"
	"practice-service/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
)

const (
	writeWait      = 10 * time.Second
	pongWait       = 60 * time.Second
	pingPeriod     = (pongWait * 9) / 10
	maxMessageSize = 512
)

// TimerHandler streams the remaining quiz time over a websocket, one message
// per interval, and closes the connection once time is up.
type TimerHandler struct {
	quizService *service.QuizService
	logger      *slog.Logger
	upgrader    websocket.Upgrader
	interval    time.Duration

	done      chan struct{}
	closeOnce sync.Once
}

func NewTimerHandler(quizService *service.QuizService, logger *slog.Logger) *TimerHandler {
	return &TimerHandler{
		quizService: quizService,
		logger:      logger,
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
		},
		interval: time.Second,
		done:     make(chan struct{}),
	}
}

// Close ends every open stream with a going-away close frame.
func (h *TimerHandler) Close() {
	h.closeOnce.Do(func() { close(h.done) })
}

// StreamTimeRemaining godoc
// @Summary Stream time left in the current quiz
// @Description Upgrades to a websocket and sends the remaining time once per second until time is up.
// @Tags Quiz
// @Success 101 {object} models.TimeRemaining
// @Failure 400 {object} dto.ErrorResponse
// @Router /ws/timer [get]
func (h *TimerHandler) StreamTimeRemaining(c *gin.Context) {
	ctx := c.Request.Context()
	id := sessionID(c)

	left, err := h.quizService.TimeRemaining(ctx, id)
	if err != nil {
		respondError(c, err)
		return
	}

	conn, err := h.upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		h.logger.Warn("failed to upgrade connection", "error", err)
		return
	}
	defer conn.Close()

	closed := make(chan struct{})
	go h.readPump(conn, closed)

	h.writePump(ctx, conn, id, left, closed)
}

func (h *TimerHandler) readPump(conn *websocket.Conn, closed chan<- struct{}) {
	defer close(closed)

	conn.SetReadLimit(maxMessageSize)
	conn.SetReadDeadline(time.Now().Add(pongWait))
	conn.SetPongHandler(func(string) error {
		conn.SetReadDeadline(time.Now().Add(pongWait))
		return nil
	})

	for {
		if _, _, err := conn.ReadMessage(); err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure, websocket.CloseAbnormalClosure) {
				h.logger.Debug("timer stream read error", "error", err)
			}
			return
		}
	}
}

func (h *TimerHandler) writePump(ctx context.Context, conn *websocket.Conn, id string, left models.TimeRemaining, closed <-chan struct{}) {
	ticker := time.NewTicker(h.interval)
	ping := time.NewTicker(pingPeriod)
	defer func() {
		ticker.Stop()
		ping.Stop()
	}()

	for {
		conn.SetWriteDeadline(time.Now().Add(writeWait))
		if err := conn.WriteJSON(left); err != nil {
			return
		}
		if left.TimeUp {
			h.closeConn(conn, websocket.CloseNormalClosure, "time up")
			return
		}

	wait:
		for {
			select {
			case <-closed:
				return
			case <-h.done:
				h.closeConn(conn, websocket.CloseGoingAway, "server shutting down")
				return
			case <-ping.C:
				conn.SetWriteDeadline(time.Now().Add(writeWait))
				if err := conn.WriteMessage(websocket.PingMessage, nil); err != nil {
					return
				}
			case <-ticker.C:
				break wait
			}
		}

		var err error
		left, err = h.quizService.TimeRemaining(ctx, id)
		if errors.Is(err, service.ErrNoActiveSession) {
			h.closeConn(conn, websocket.CloseNormalClosure, "no active quiz")
			return
		}
		if err != nil {
			h.logger.Error("timer stream failed", "error", err)
			h.closeConn(conn, websocket.CloseInternalServerErr, "")
			return
		}
	}
}

func (h *TimerHandler) closeConn(conn *websocket.Conn, code int, reason string) {
	msg := websocket.FormatCloseMessage(code, reason)
	conn.WriteControl(websocket.CloseMessage, msg, time.Now().Add(writeWait))
}
