package server

import (
	"net/http"
	"time"

	"github.com/gorilla/websocket"

	"rivermarsh-server/internal/engine"
	"rivermarsh-server/pkg/api"
	"rivermarsh-server/pkg/logger"
	"rivermarsh-server/pkg/utils"
)

// Настройки WebSocket
const (
	writeWait      = 10 * time.Second
	pongWait       = 60 * time.Second
	pingPeriod     = (pongWait * 9) / 10
	maxMessageSize = 4096
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin:     func(r *http.Request) bool { return true },
}

// Client - посредник между Websocket и Service
type Client struct {
	Service   *engine.Service
	Conn      *websocket.Conn
	Send      chan api.ServerMessage
	SessionID string
}

func NewClient(svc *engine.Service, conn *websocket.Conn) *Client {
	return &Client{
		Service:   svc,
		Conn:      conn,
		Send:      make(chan api.ServerMessage, 256),
		SessionID: utils.GenerateID(),
	}
}

// readPump читает команды от клиента
func (c *Client) readPump() {
	defer func() {
		c.Service.Disconnect(c.SessionID)
		c.Service.Hub.Unregister(c.SessionID)
		if err := c.Conn.Close(); err != nil {
			logger.Log.WithError(err).Debug("failed to close websocket connection")
		}
		logger.Log.WithField("session", c.SessionID).Info("Client disconnected")
	}()

	c.Conn.SetReadLimit(maxMessageSize)
	if err := c.Conn.SetReadDeadline(time.Now().Add(pongWait)); err != nil {
		logger.Log.WithError(err).Warn("failed to set read deadline")
	}
	c.Conn.SetPongHandler(func(string) error {
		if err := c.Conn.SetReadDeadline(time.Now().Add(pongWait)); err != nil {
			logger.Log.WithError(err).Warn("failed to set pong read deadline")
		}
		return nil
	})

	// Подписка на обновления мира
	updates := c.Service.Hub.Register(c.SessionID)
	go func() {
		for msg := range updates {
			c.Send <- msg
		}
		close(c.Send)
	}()

	logger.Log.WithField("session", c.SessionID).Info("Client connected")

	// Первый снимок без запроса: клиент сразу видит мир
	c.Service.ProcessCommand(c.SessionID, &api.ClientCommand{Action: api.ActionInit})

	for {
		_, data, err := c.Conn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseAbnormalClosure) {
				logger.Log.WithError(err).Error("WS read error")
			}
			break
		}

		cmd, err := api.ParseCommand(data)
		if err != nil {
			c.Service.Hub.SendTo(c.SessionID, api.ServerMessage{Type: api.MessageError, Error: err.Error()})
			continue
		}
		c.Service.ProcessCommand(c.SessionID, cmd)
	}
}

// writePump отправляет данные клиенту + Ping
func (c *Client) writePump() {
	ticker := time.NewTicker(pingPeriod)
	defer func() {
		ticker.Stop()
		if err := c.Conn.Close(); err != nil {
			logger.Log.WithError(err).Debug("failed to close websocket connection in writePump")
		}
	}()

	for {
		select {
		case message, ok := <-c.Send:
			if err := c.Conn.SetWriteDeadline(time.Now().Add(writeWait)); err != nil {
				logger.Log.WithError(err).Warn("failed to set write deadline")
			}
			if !ok {
				if err := c.Conn.WriteMessage(websocket.CloseMessage, []byte{}); err != nil {
					logger.Log.WithError(err).Debug("write close message failed")
				}
				return
			}
			if err := c.Conn.WriteJSON(message); err != nil {
				logger.Log.WithError(err).Debug("write json message failed")
				return
			}

		case <-ticker.C:
			if err := c.Conn.SetWriteDeadline(time.Now().Add(writeWait)); err != nil {
				logger.Log.WithError(err).Warn("failed to set ping write deadline")
			}
			if err := c.Conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				logger.Log.WithError(err).Debug("ping failed")
				return
			}
		}
	}
}
