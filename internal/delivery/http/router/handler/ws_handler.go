package handler

import (
	"log/slog"
	"net/http"
	"strings"

	"verifiedtutors/internal/domain/service"
	"verifiedtutors/internal/infra/push"

	"github.com/gorilla/websocket"
	"github.com/labstack/echo/v4"
)

// WSHandler upgrades authenticated clients to a WebSocket and parks
// the connection in the push hub until it closes.
type WSHandler struct {
	hub      *push.Hub
	tokenSvc service.TokenService
	logger   *slog.Logger
	upgrader websocket.Upgrader
}

// NewWSHandler is the constructor for WSHandler, injected by Fx.
func NewWSHandler(hub *push.Hub, tokenSvc service.TokenService, logger *slog.Logger) *WSHandler {
	return &WSHandler{
		hub:      hub,
		tokenSvc: tokenSvc,
		logger:   logger,
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
			// Browser WebSocket clients cannot set custom headers, so
			// origins are not restricted here. Auth happens via token.
			CheckOrigin: func(r *http.Request) bool { return true },
		},
	}
}

// Connect authenticates via the token query parameter (or Authorization
// header), upgrades the connection and blocks reading until the client
// disconnects. Incoming frames are discarded; the socket is push only.
func (h *WSHandler) Connect(c echo.Context) error {
	tokenString := c.QueryParam("token")
	if tokenString == "" {
		tokenString = strings.TrimPrefix(c.Request().Header.Get("Authorization"), "Bearer ")
	}
	if tokenString == "" {
		return echo.NewHTTPError(http.StatusUnauthorized, "Missing token")
	}

	claims, err := h.tokenSvc.ValidateToken(tokenString)
	if err != nil || claims.Type != service.TokenTypeAccess {
		return echo.NewHTTPError(http.StatusUnauthorized, "Invalid or expired token")
	}

	conn, err := h.upgrader.Upgrade(c.Response(), c.Request(), nil)
	if err != nil {
		// Upgrade already wrote the HTTP error response.
		return nil
	}

	h.hub.Register(claims.UserID, conn)
	defer func() {
		h.hub.Unregister(claims.UserID, conn)
		conn.Close()
	}()

	h.logger.Debug("WebSocket connected", slog.String("user_id", claims.UserID.String()))

	for {
		if _, _, err := conn.ReadMessage(); err != nil {
			break
		}
	}

	h.logger.Debug("WebSocket disconnected", slog.String("user_id", claims.UserID.String()))

	return nil
}
