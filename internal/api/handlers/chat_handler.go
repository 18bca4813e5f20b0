package handlers

import (
	"DineWise-Backend/domain"
	"DineWise-Backend/internal/api/presenters"
	"DineWise-Backend/pkg/chat"
	"DineWise-Backend/pkg/menupref"
	"strconv"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

type (
	ChatHandler interface {
		Chat(c *fiber.Ctx) error
		GetSession(c *fiber.Ctx) error
		GetUserMenu(c *fiber.Ctx) error
	}

	chatHandler struct {
		chatService     chat.ChatService
		menuPrefService menupref.MenuPrefService
		validator       *validator.Validate
	}
)

func NewChatHandler(
	chatService chat.ChatService,
	menuPrefService menupref.MenuPrefService,
	validator *validator.Validate,
) ChatHandler {
	return &chatHandler{
		chatService:     chatService,
		menuPrefService: menuPrefService,
		validator:       validator,
	}
}

func (h *chatHandler) Chat(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)
	restaurantID := c.Params("restaurantID")
	req := new(domain.ChatRequest)

	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}
	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedChat, err)
	}

	res, err := h.chatService.Chat(c.Context(), userID, restaurantID, *req)
	if err != nil {
		return presenters.ServiceErrorResponse(c, domain.MessageFailedChat, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessChat)
}

func (h *chatHandler) GetSession(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)
	restaurantID := c.Params("restaurantID")
	sessionID, err := strconv.ParseInt(c.Params("sessionID"), 10, 64)
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedGetChatSession, err)
	}

	res, err := h.chatService.GetSession(c.Context(), userID, restaurantID, sessionID)
	if err != nil {
		return presenters.ServiceErrorResponse(c, domain.MessageFailedGetChatSession, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessGetChatSession)
}

// GetUserMenu returns a menu's dishes filtered by the caller's stored
// preferences, unless ?unfiltered=1.
func (h *chatHandler) GetUserMenu(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)
	menuID := c.Params("id")
	unfiltered := c.Query("unfiltered") == "1" || c.Query("unfiltered") == "true"

	res, err := h.menuPrefService.GetUserMenu(c.Context(), menuID, userID, unfiltered)
	if err != nil {
		return presenters.ServiceErrorResponse(c, domain.MessageFailedGetUserMenu, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessGetUserMenu)
}
