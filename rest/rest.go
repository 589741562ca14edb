package rest

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"golang.org/x/time/rate"

	"github.com/ClericalAid/poker-server/game"
	"github.com/ClericalAid/poker-server/logging"
)

var restLogger = logging.GetZeroLogger("rest::rest", nil)

// Server is the inbound control surface: players create games, take
// seats and act over http. State fan-out goes over nats.
type Server struct {
	manager *game.Manager
	limiter *rate.Limiter
}

func NewServer(manager *game.Manager) *Server {
	return &Server{
		manager: manager,
		// Burst sized for a full table acting at once.
		limiter: rate.NewLimiter(rate.Limit(100), 20),
	}
}

func (s *Server) Router() *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(s.throttle)

	router.POST("/new-game", s.newGame)
	router.POST("/join", s.join)
	router.POST("/leave", s.leave)
	router.POST("/new-hand", s.newHand)
	router.POST("/action", s.action)
	router.GET("/state/:gameCode", s.state)
	router.GET("/result/:gameCode", s.result)
	return router
}

func (s *Server) Run(addr string) error {
	restLogger.Info().Str("addr", addr).Msg("Rest server listening")
	return s.Router().Run(addr)
}

func (s *Server) throttle(c *gin.Context) {
	if !s.limiter.Allow() {
		c.AbortWithStatusJSON(http.StatusTooManyRequests, gin.H{"error": "too many requests"})
		return
	}
	c.Next()
}

type newGameReq struct {
	GameCode   string  `json:"gameCode"`
	SmallBlind float64 `json:"smallBlind"`
	BigBlind   float64 `json:"bigBlind"`
	TableSize  int     `json:"tableSize"`
}

func (s *Server) newGame(c *gin.Context) {
	var req newGameReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	g, err := s.manager.NewGame(game.GameConfig{
		GameCode:   req.GameCode,
		SmallBlind: req.SmallBlind,
		BigBlind:   req.BigBlind,
		TableSize:  req.TableSize,
	})
	if err != nil {
		c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"gameCode": g.Code()})
}

type joinReq struct {
	GameCode string  `json:"gameCode"`
	Name     string  `json:"name"`
	BuyIn    float64 `json:"buyIn"`
}

func (s *Server) join(c *gin.Context) {
	var req joinReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	g, err := s.manager.Game(req.GameCode)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		return
	}
	seatNo, playerUUID, err := g.AddPlayer(req.Name, "", req.BuyIn)
	if err != nil {
		c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"seatNo": seatNo, "playerUUID": playerUUID})
}

type leaveReq struct {
	GameCode   string `json:"gameCode"`
	PlayerUUID string `json:"playerUUID"`
}

func (s *Server) leave(c *gin.Context) {
	var req leaveReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	g, err := s.manager.Game(req.GameCode)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		return
	}
	if err := g.DisconnectPlayer(req.PlayerUUID); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

type newHandReq struct {
	GameCode string `json:"gameCode"`
}

func (s *Server) newHand(c *gin.Context) {
	var req newHandReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	g, err := s.manager.Game(req.GameCode)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		return
	}
	if err := g.NewHand(c.Request.Context()); err != nil {
		c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, g.Snapshot())
}

type actionReq struct {
	GameCode   string  `json:"gameCode"`
	PlayerUUID string  `json:"playerUUID"`
	Action     string  `json:"action"`
	Amount     float64 `json:"amount"`
}

func (s *Server) action(c *gin.Context) {
	var req actionReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	g, err := s.manager.Game(req.GameCode)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		return
	}
	ctx := c.Request.Context()
	switch req.Action {
	case "CALL", "CHECK":
		err = g.Call(ctx, req.PlayerUUID)
	case "RAISE", "BET":
		err = g.Raise(ctx, req.PlayerUUID, req.Amount)
	case "ALLIN":
		err = g.AllIn(ctx, req.PlayerUUID)
	case "FOLD":
		err = g.Fold(ctx, req.PlayerUUID)
	default:
		c.JSON(http.StatusBadRequest, gin.H{"error": "unknown action " + req.Action})
		return
	}
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, g.Snapshot())
}

func (s *Server) state(c *gin.Context) {
	g, err := s.manager.Game(c.Param("gameCode"))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, g.Snapshot())
}

func (s *Server) result(c *gin.Context) {
	g, err := s.manager.Game(c.Param("gameCode"))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		return
	}
	result := g.LastResult()
	if result == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "no finished hands yet"})
		return
	}
	c.JSON(http.StatusOK, result)
}
