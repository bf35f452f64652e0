package rest

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/rocketscienceinc/quoridor-backend/internal/entity"
	"github.com/rocketscienceinc/quoridor-backend/internal/quoridor"
)

type sessionService interface {
	NewSession(ctx context.Context) (*entity.Session, error)
	GetSession(ctx context.Context, id string) (*entity.Session, error)
	LegalMoves(ctx context.Context, id string, player quoridor.PlayerID) ([]quoridor.Cell, error)
	MoveToken(ctx context.Context, id string, player quoridor.PlayerID, dest quoridor.Cell) (*entity.Session, error)
	PlaceWall(
		ctx context.Context, id string, player quoridor.PlayerID, orientation quoridor.Orientation, anchor quoridor.Cell,
	) (*entity.Session, error)
	DeleteSession(ctx context.Context, id string) error
}

type Handlers struct {
	logger   *slog.Logger
	sessions sessionService
}

func NewHandlers(logger *slog.Logger, sessions sessionService) *Handlers {
	return &Handlers{
		logger:   logger.With("component", "rest_handlers"),
		sessions: sessions,
	}
}

func (that *Handlers) Register(router gin.IRouter) {
	sessions := router.Group("/sessions")
	{
		sessions.POST("", that.createSession)
		sessions.GET("/:id", that.getSession)
		sessions.GET("/:id/board", that.getBoard)
		sessions.GET("/:id/moves", that.legalMoves)
		sessions.POST("/:id/moves", that.moveToken)
		sessions.POST("/:id/walls", that.placeWall)
		sessions.DELETE("/:id", that.deleteSession)
	}
}

func (that *Handlers) createSession(c *gin.Context) {
	session, err := that.sessions.NewSession(c.Request.Context())
	if err != nil {
		that.fail(c, "createSession", err)
		return
	}

	c.JSON(http.StatusCreated, newSessionResponse(session))
}

func (that *Handlers) getSession(c *gin.Context) {
	session, err := that.sessions.GetSession(c.Request.Context(), c.Param("id"))
	if err != nil {
		that.fail(c, "getSession", err)
		return
	}

	c.JSON(http.StatusOK, newSessionResponse(session))
}

func (that *Handlers) getBoard(c *gin.Context) {
	session, err := that.sessions.GetSession(c.Request.Context(), c.Param("id"))
	if err != nil {
		that.fail(c, "getBoard", err)
		return
	}

	c.String(http.StatusOK, session.Game.String())
}

func (that *Handlers) legalMoves(c *gin.Context) {
	player, err := strconv.Atoi(c.Query("player"))
	if err != nil {
		c.JSON(http.StatusBadRequest, errorResponse{Error: fmt.Sprintf("invalid player %q", c.Query("player"))})
		return
	}

	moves, err := that.sessions.LegalMoves(c.Request.Context(), c.Param("id"), quoridor.PlayerID(player))
	if err != nil {
		that.fail(c, "legalMoves", err)
		return
	}

	c.JSON(http.StatusOK, movesResponse{Player: quoridor.PlayerID(player), Moves: moves})
}

func (that *Handlers) moveToken(c *gin.Context) {
	var request moveRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		c.JSON(http.StatusBadRequest, errorResponse{Error: err.Error()})
		return
	}

	session, err := that.sessions.MoveToken(c.Request.Context(), c.Param("id"), request.Player, *request.To)
	if err != nil {
		that.fail(c, "moveToken", err)
		return
	}

	c.JSON(http.StatusOK, newSessionResponse(session))
}

func (that *Handlers) placeWall(c *gin.Context) {
	var request wallRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		c.JSON(http.StatusBadRequest, errorResponse{Error: err.Error()})
		return
	}

	session, err := that.sessions.PlaceWall(
		c.Request.Context(), c.Param("id"), request.Player, request.Orientation, *request.Anchor,
	)
	if err != nil {
		that.fail(c, "placeWall", err)
		return
	}

	c.JSON(http.StatusOK, newSessionResponse(session))
}

func (that *Handlers) deleteSession(c *gin.Context) {
	if err := that.sessions.DeleteSession(c.Request.Context(), c.Param("id")); err != nil {
		that.fail(c, "deleteSession", err)
		return
	}

	c.Status(http.StatusNoContent)
}

func (that *Handlers) fail(c *gin.Context, method string, err error) {
	status := statusFor(err)
	if status == http.StatusInternalServerError {
		that.logger.Error("request failed", "method", method, "error", err)
		c.JSON(status, errorResponse{Error: "internal server error"})
		return
	}

	c.JSON(status, errorResponse{Error: err.Error()})
}
