package httpserver

import (
	"bytes"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tictactoe/internal/engine"
	"tictactoe/internal/server/game"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func setupTestRouter(t *testing.T, level engine.Level) *gin.Engine {
	t.Helper()
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	e := engine.NewEngine(engine.WithSeed(1), engine.WithLogger(logger))
	h := NewHandler(e, game.NewManager(), level, logger)
	return NewRouter(h, RouterConfig{MetricsEnabled: true})
}

func doJSON(t *testing.T, r http.Handler, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func decode[T any](t *testing.T, w *httptest.ResponseRecorder) T {
	t.Helper()
	var v T
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &v), w.Body.String())
	return v
}

func TestBestMoveEndpoint(t *testing.T) {
	r := setupTestRouter(t, engine.LevelMaster)

	w := doJSON(t, r, http.MethodPost, "/api/best_move", BestMoveRequest{
		Cells:    []string{"X", "O", "X", "O", "", "", "", "", ""},
		AIPlayer: "O",
	})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	resp := decode[BestMoveResponse](t, w)
	assert.Equal(t, 4, resp.Move)
	assert.Equal(t, "master", resp.Level)
	assert.Equal(t, "ongoing", resp.Status)
	require.Len(t, resp.Candidates, 5)
	assert.Equal(t, 4, int(resp.Candidates[0].Move))
	assert.Positive(t, resp.Nodes)
}

func TestBestMoveEndpointTerminalBoard(t *testing.T) {
	r := setupTestRouter(t, engine.LevelMaster)
	w := doJSON(t, r, http.MethodPost, "/api/best_move", BestMoveRequest{
		Board:    "XXX/OO./...",
		AIPlayer: "O",
		Level:    "random",
	})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	resp := decode[BestMoveResponse](t, w)
	assert.Equal(t, -1, resp.Move)
	assert.Equal(t, "x_wins", resp.Status)
	assert.Empty(t, resp.Candidates)
}

func TestBestMoveEndpointRejectsBadInput(t *testing.T) {
	r := setupTestRouter(t, engine.LevelMaster)
	cases := map[string]BestMoveRequest{
		"short board":   {Board: "XO", AIPlayer: "X"},
		"bad symbol":    {Cells: []string{"X", "Q", "", "", "", "", "", "", ""}, AIPlayer: "X"},
		"bad player":    {Board: ".........", AIPlayer: "Z"},
		"bad level":     {Board: ".........", AIPlayer: "X", Level: "godlike"},
		"two winners":   {Board: "XXX/OOO/...", AIPlayer: "X"},
		"missing field": {Board: "........."},
	}
	for name, req := range cases {
		t.Run(name, func(t *testing.T) {
			w := doJSON(t, r, http.MethodPost, "/api/best_move", req)
			assert.Equal(t, http.StatusBadRequest, w.Code, w.Body.String())
			assert.NotEmpty(t, decode[ErrorResponse](t, w).Error)
		})
	}
}

func TestGameFlow(t *testing.T) {
	r := setupTestRouter(t, engine.LevelMaster)

	w := doJSON(t, r, http.MethodPost, "/api/new_game", NewGameRequest{AIPlayer: "O"})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	g := decode[GameResponse](t, w)
	require.NotEmpty(t, g.GameID)
	assert.Equal(t, "X", g.ToMove)
	assert.Equal(t, "master", g.Level)
	assert.Len(t, g.LegalMoves, 9)

	move := 0
	w = doJSON(t, r, http.MethodPost, "/api/play", PlayRequest{GameID: g.GameID, Move: &move})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	g = decode[GameResponse](t, w)
	assert.Equal(t, "X../.../...", g.Board)
	assert.Equal(t, "O", g.ToMove)

	// 轮到 AI 时人类不能再走
	w = doJSON(t, r, http.MethodPost, "/api/play", PlayRequest{GameID: g.GameID, Move: &move})
	assert.Equal(t, http.StatusConflict, w.Code)

	w = doJSON(t, r, http.MethodPost, "/api/ai_move", GameRequest{GameID: g.GameID})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	g = decode[GameResponse](t, w)
	require.NotNil(t, g.AIMove)
	assert.Equal(t, 4, *g.AIMove)
	assert.Equal(t, []int{0, 4}, g.Moves)

	w = doJSON(t, r, http.MethodPost, "/api/state", GameRequest{GameID: g.GameID})
	require.Equal(t, http.StatusOK, w.Code)
	state := decode[GameResponse](t, w)
	assert.Equal(t, "X../.O./...", state.Board)
	assert.Equal(t, []string{"X", "", "", "", "O", "", "", "", ""}, state.Cells)

	occupied := 4
	w = doJSON(t, r, http.MethodPost, "/api/play", PlayRequest{GameID: g.GameID, Move: &occupied})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestNewGameDefaultsAndErrors(t *testing.T) {
	r := setupTestRouter(t, engine.LevelNovice)

	req := httptest.NewRequest(http.MethodPost, "/api/new_game", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	g := decode[GameResponse](t, w)
	assert.Equal(t, "O", g.AIPlayer)
	assert.Equal(t, "novice", g.Level)

	w = doJSON(t, r, http.MethodPost, "/api/new_game", NewGameRequest{AIPlayer: "Q"})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = doJSON(t, r, http.MethodPost, "/api/state", GameRequest{GameID: "missing"})
	assert.Equal(t, http.StatusNotFound, w.Code)

	w = doJSON(t, r, http.MethodPost, "/api/ai_move", GameRequest{GameID: "missing"})
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestHealthAndMetrics(t *testing.T) {
	r := setupTestRouter(t, engine.LevelMaster)

	w := doJSON(t, r, http.MethodGet, "/healthz", nil)
	assert.Equal(t, http.StatusOK, w.Code)

	// 先触发一次搜索，保证指标有数据
	doJSON(t, r, http.MethodPost, "/api/best_move", BestMoveRequest{Board: ".........", AIPlayer: "X"})

	w = doJSON(t, r, http.MethodGet, "/metrics", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "tictactoe_engine_searches_total")
	assert.Contains(t, w.Body.String(), "tictactoe_engine_search_nodes")
}
