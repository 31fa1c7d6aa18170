// Package server hosts the rent bot over HTTP: a REST query endpoint and a
// websocket chat loop. The server is thin plumbing — every user turn goes
// straight through ProcessQuery and the reply is returned verbatim.
package server

import (
	"log"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"

	"github.com/pocketrent-org/pocketrent"
)

// Message is one chat turn on the websocket.
type Message struct {
	Type    string `json:"type"`    // "chat", "system"
	Role    string `json:"role"`    // "user", "assistant"
	Content string `json:"content"` // markdown
	Time    string `json:"time"`    // HH:MM:SS
}

const greeting = `**Hey! 👋 What would you like to know about UK rent?**

Try asking:
- *"Compare Manchester vs Liverpool"*
- *"Cheapest 2-bed in North West"*
- *"Areas under £700/month"*`

// suggestions mirrors the chat UI's quick-action starter questions.
var suggestions = []string{
	"Cheapest 1-bed rent in UK",
	"Compare London vs Manchester on 1-bed rent",
	"Areas under £600 rent",
	"Most expensive areas in UK",
}

// Server wraps one Bot behind HTTP and websocket endpoints.
type Server struct {
	bot      *pocketrent.Bot
	upgrader websocket.Upgrader
}

// New returns a Server for the given bot.
func New(bot *pocketrent.Bot) *Server {
	return &Server{
		bot: bot,
		upgrader: websocket.Upgrader{
			CheckOrigin: func(r *http.Request) bool { return true },
		},
	}
}

// Router builds the gin engine with all routes registered.
func (s *Server) Router() *gin.Engine {
	router := gin.Default()
	router.GET("/healthz", s.handleHealth)
	router.POST("/api/query", s.handleQuery)
	router.GET("/api/suggestions", s.handleSuggestions)
	router.GET("/ws", s.handleWebsocket)
	return router
}

// Run serves until the listener fails.
func (s *Server) Run(addr string) error {
	log.Printf("🏠 PocketRent: serving on %s (data period %s, %d areas)",
		addr, s.bot.Dataset().Period, s.bot.Dataset().Len())
	return s.Router().Run(addr)
}

func (s *Server) handleHealth(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status": "ok",
		"period": s.bot.Dataset().Period,
		"areas":  s.bot.Dataset().Len(),
	})
}

func (s *Server) handleQuery(c *gin.Context) {
	var req struct {
		Message string `json:"message"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "expected JSON body with a message field"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"reply": s.bot.ProcessQuery(req.Message)})
}

func (s *Server) handleSuggestions(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"suggestions": suggestions})
}

// handleWebsocket upgrades the connection and runs the chat loop: greeting
// turn on connect, then one assistant reply per inbound user turn.
func (s *Server) handleWebsocket(c *gin.Context) {
	conn, err := s.upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		log.Printf("⚠️ PocketRent: websocket upgrade failed: %v", err)
		return
	}
	defer conn.Close()

	if err := conn.WriteJSON(assistantTurn(greeting)); err != nil {
		return
	}

	for {
		var msg Message
		if err := conn.ReadJSON(&msg); err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
				log.Printf("⚠️ PocketRent: websocket read failed: %v", err)
			}
			return
		}

		reply := s.bot.ProcessQuery(msg.Content)
		if err := conn.WriteJSON(assistantTurn(reply)); err != nil {
			return
		}
	}
}

func assistantTurn(content string) Message {
	return Message{
		Type:    "chat",
		Role:    "assistant",
		Content: content,
		Time:    time.Now().Format("15:04:05"),
	}
}
