package controller

import (
	"github.com/gofiber/fiber/v2"
	"github.com/pkg/errors"

	"github.com/chesslink/boardsync/internal/service"
)

type SessionController struct {
	sessionService *service.SessionService
}

func NewSessionController(sessionService *service.SessionService) *SessionController {
	return &SessionController{sessionService: sessionService}
}

func (sc *SessionController) CreateSession(c *fiber.Ctx) error {
	sessionID, err := sc.sessionService.CreateSession()
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": err.Error(),
		})
	}
	return c.JSON(fiber.Map{
		"message":    "Session created",
		"session_id": sessionID,
	})
}

func (sc *SessionController) GetSessionState(c *fiber.Ctx) error {
	sessionID := c.Params("sessionId")

	view, err := sc.sessionService.GetView(sessionID)
	if err != nil {
		return sessionError(c, err)
	}
	return c.JSON(view)
}

// GetBoardText serves the accented text rendering of the session's board.
func (sc *SessionController) GetBoardText(c *fiber.Ctx) error {
	sessionID := c.Params("sessionId")

	board, err := sc.sessionService.RenderBoard(sessionID)
	if err != nil {
		return sessionError(c, err)
	}
	c.Set(fiber.HeaderContentType, fiber.MIMETextPlainCharsetUTF8)
	return c.SendString(board)
}

type placementRequest struct {
	Placement string `json:"placement"`
}

// UpdatePlacement edits the starting placement while the session is setting
// up.
func (sc *SessionController) UpdatePlacement(c *fiber.Ctx) error {
	sessionID := c.Params("sessionId")

	var req placementRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "invalid request body",
		})
	}
	if err := sc.sessionService.UpdatePlacement(sessionID, req.Placement); err != nil {
		if errors.Is(err, service.ErrSessionNotFound) {
			return sessionError(c, err)
		}
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": err.Error(),
		})
	}
	return c.JSON(fiber.Map{
		"message": "Placement updated",
	})
}

func (sc *SessionController) StartSession(c *fiber.Ctx) error {
	sessionID := c.Params("sessionId")

	if err := sc.sessionService.StartSession(sessionID); err != nil {
		if errors.Is(err, service.ErrSessionNotFound) {
			return sessionError(c, err)
		}
		return c.Status(fiber.StatusConflict).JSON(fiber.Map{
			"error": err.Error(),
		})
	}
	return c.JSON(fiber.Map{
		"message": "Session started",
	})
}

func sessionError(c *fiber.Ctx, err error) error {
	if errors.Is(err, service.ErrSessionNotFound) {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": err.Error(),
		})
	}
	return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
		"error": err.Error(),
	})
}
