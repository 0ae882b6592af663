package httpserver

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"tictactoe/internal/engine"
	"tictactoe/internal/server/game"
	"tictactoe/internal/tictactoe"
)

// Handler 提供 /api/* 路由
type Handler struct {
	engine       *engine.Engine
	games        *game.Manager
	defaultLevel engine.Level
	logger       *slog.Logger
}

func NewHandler(e *engine.Engine, games *game.Manager, defaultLevel engine.Level, logger *slog.Logger) *Handler {
	if e == nil {
		e = engine.Default()
	}
	if games == nil {
		games = game.NewManager()
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &Handler{
		engine:       e,
		games:        games,
		defaultLevel: defaultLevel,
		logger:       logger,
	}
}

func (h *Handler) Engine() *engine.Engine { return h.engine }

func (h *Handler) Register(r gin.IRouter) {
	api := r.Group("/api")
	api.POST("/new_game", h.handleNewGame)
	api.POST("/play", h.handlePlay)
	api.POST("/state", h.handleState)
	api.POST("/ai_move", h.handleAiMove)
	api.POST("/best_move", h.handleBestMove)
}

func (h *Handler) level(s string) (engine.Level, error) {
	if s == "" {
		return h.defaultLevel, nil
	}
	return engine.ParseLevel(s)
}

func (h *Handler) handleNewGame(c *gin.Context) {
	var req NewGameRequest
	// 空 body 也允许，全部用默认值
	if c.Request.ContentLength > 0 {
		if err := c.ShouldBindJSON(&req); err != nil {
			writeError(c, http.StatusBadRequest, err)
			return
		}
	}

	ai := tictactoe.PlayerO
	if req.AIPlayer != "" {
		p, err := tictactoe.ParsePlayer(req.AIPlayer)
		if err != nil {
			writeError(c, http.StatusBadRequest, err)
			return
		}
		ai = p
	}
	level, err := h.level(req.Level)
	if err != nil {
		writeError(c, http.StatusBadRequest, err)
		return
	}

	g, err := h.games.NewGame(ai, level)
	if err != nil {
		writeError(c, http.StatusBadRequest, err)
		return
	}
	h.logger.Info("new game", "game_id", g.ID, "ai", ai, "level", level)
	c.JSON(http.StatusOK, gameToDTO(g))
}

func (h *Handler) handlePlay(c *gin.Context) {
	var req PlayRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		writeError(c, http.StatusBadRequest, err)
		return
	}
	g, err := h.games.Play(req.GameID, tictactoe.Move(*req.Move))
	if err != nil {
		writeError(c, statusFor(err), err)
		return
	}
	c.JSON(http.StatusOK, gameToDTO(g))
}

func (h *Handler) handleState(c *gin.Context) {
	var req GameRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		writeError(c, http.StatusBadRequest, err)
		return
	}
	g, err := h.games.Get(req.GameID)
	if err != nil {
		writeError(c, statusFor(err), err)
		return
	}
	c.JSON(http.StatusOK, gameToDTO(g))
}

// handleAiMove 让 AI 思考并直接落子
func (h *Handler) handleAiMove(c *gin.Context) {
	var req GameRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		writeError(c, http.StatusBadRequest, err)
		return
	}
	g, mv, err := h.games.AIMove(req.GameID, h.engine)
	if err != nil {
		writeError(c, statusFor(err), err)
		return
	}
	resp := gameToDTO(g)
	played := int(mv)
	resp.AIMove = &played
	c.JSON(http.StatusOK, resp)
}

// handleBestMove 无状态：只思考不落子
func (h *Handler) handleBestMove(c *gin.Context) {
	var req BestMoveRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		writeError(c, http.StatusBadRequest, err)
		return
	}

	var (
		b   tictactoe.Board
		err error
	)
	if req.Cells != nil {
		b, err = tictactoe.BoardFromCells(req.Cells)
	} else {
		b, err = tictactoe.ParseBoard(req.Board)
	}
	if err != nil {
		writeError(c, http.StatusBadRequest, err)
		return
	}
	ai, err := tictactoe.ParsePlayer(req.AIPlayer)
	if err != nil {
		writeError(c, http.StatusBadRequest, err)
		return
	}
	level, err := h.level(req.Level)
	if err != nil {
		writeError(c, http.StatusBadRequest, err)
		return
	}

	a, err := h.engine.Analyze(b, ai)
	if err != nil {
		writeError(c, http.StatusBadRequest, err)
		return
	}
	mv, err := h.engine.Choose(a, engine.Options{Level: level})
	if err != nil {
		writeError(c, http.StatusBadRequest, err)
		return
	}

	candidates := a.Candidates
	if candidates == nil {
		candidates = []engine.Candidate{}
	}
	c.JSON(http.StatusOK, BestMoveResponse{
		Move:       int(mv),
		Level:      level.String(),
		Status:     b.Outcome().String(),
		Candidates: candidates,
		Nodes:      a.Nodes,
	})
}

func statusFor(err error) int {
	switch {
	case errors.Is(err, game.ErrGameNotFound):
		return http.StatusNotFound
	case errors.Is(err, game.ErrGameOver), errors.Is(err, game.ErrNotYourTurn):
		return http.StatusConflict
	case errors.Is(err, tictactoe.ErrIllegalMove),
		errors.Is(err, tictactoe.ErrInvalidBoard),
		errors.Is(err, tictactoe.ErrInvalidPlayer),
		errors.Is(err, engine.ErrInvalidLevel):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

func writeError(c *gin.Context, status int, err error) {
	c.AbortWithStatusJSON(status, ErrorResponse{Error: err.Error()})
}
