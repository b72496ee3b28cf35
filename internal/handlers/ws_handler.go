package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/gorilla/websocket"
	"go.uber.org/zap"

	"github.com/handykonnect/handykonnect-api/internal/config"
	"github.com/handykonnect/handykonnect-api/internal/realtime"
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	// Origin checks are handled by the CORS layer; browsers cannot set
	// custom headers on websocket upgrades, so the token travels as a
	// query parameter instead.
	CheckOrigin: func(r *http.Request) bool { return true },
}

type WSHandler struct {
	hub    *realtime.Hub
	config *config.Config
	log    *zap.Logger
}

func NewWSHandler(hub *realtime.Hub, cfg *config.Config, log *zap.Logger) *WSHandler {
	return &WSHandler{
		hub:    hub,
		config: cfg,
		log:    log,
	}
}

// Connect authenticates the "token" query parameter and attaches the
// connection to the notification hub.
func (h *WSHandler) Connect(c *gin.Context) {
	tokenString := c.Query("token")
	if tokenString == "" {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "missing_token"})
		return
	}

	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrTokenMalformed
		}
		return []byte(h.config.JWTSecret), nil
	})
	if err != nil || !token.Valid {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid_token"})
		return
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid_token_claims"})
		return
	}

	userID, ok := claims["sub"].(float64)
	role, _ := claims["role"].(string)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid_token_payload"})
		return
	}

	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		h.log.Warn("websocket upgrade failed", zap.Error(err))
		return
	}

	client := realtime.NewClient(h.hub, conn, uint(userID), role, h.log)
	client.Start()
}
