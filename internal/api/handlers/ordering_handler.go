package handlers

import (
	"DineWise-Backend/domain"
	"DineWise-Backend/internal/api/presenters"
	"DineWise-Backend/pkg/ordering"
	"strconv"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

type (
	OrderingHandler interface {
		StartSession(c *fiber.Ctx) error
		AddCartItems(c *fiber.Ctx) error
		AdjustQuantity(c *fiber.Ctx) error
		RemoveCartItem(c *fiber.Ctx) error
		GetCart(c *fiber.Ctx) error
		GetCartQuantity(c *fiber.Ctx) error
		PlaceOrder(c *fiber.Ctx) error
		EndSession(c *fiber.Ctx) error
		GetSessionRestaurant(c *fiber.Ctx) error
	}

	orderingHandler struct {
		orderingService ordering.OrderingService
		validator       *validator.Validate
	}
)

func NewOrderingHandler(orderingService ordering.OrderingService, validator *validator.Validate) OrderingHandler {
	return &orderingHandler{
		orderingService: orderingService,
		validator:       validator,
	}
}

func sessionIDParam(c *fiber.Ctx) (int64, error) {
	return strconv.ParseInt(c.Params("sessionID"), 10, 64)
}

func (h *orderingHandler) StartSession(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)
	restaurantID := c.Params("restaurantID")

	res, err := h.orderingService.StartSession(c.Context(), userID, restaurantID)
	if err != nil {
		return presenters.ServiceErrorResponse(c, domain.MessageFailedStartSession, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusCreated, domain.MessageSuccessStartSession)
}

func (h *orderingHandler) AddCartItems(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)
	sessionID, err := sessionIDParam(c)
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedAddCartItems, err)
	}

	req := new(domain.AddCartItemsRequest)
	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}
	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedAddCartItems, err)
	}

	res, err := h.orderingService.AddCartItems(c.Context(), sessionID, userID, *req)
	if err != nil {
		return presenters.ServiceErrorResponse(c, domain.MessageFailedAddCartItems, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessAddCartItems)
}

func (h *orderingHandler) AdjustQuantity(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)
	sessionID, err := sessionIDParam(c)
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedUpdateCart, err)
	}

	req := new(domain.AdjustQuantityRequest)
	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}
	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedUpdateCart, err)
	}

	res, err := h.orderingService.AdjustQuantity(c.Context(), sessionID, userID, *req)
	if err != nil {
		return presenters.ServiceErrorResponse(c, domain.MessageFailedUpdateCart, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessUpdateCart)
}

func (h *orderingHandler) RemoveCartItem(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)
	sessionID, err := sessionIDParam(c)
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedRemoveCartItem, err)
	}
	dishID := c.Params("dishID")

	if err := h.orderingService.RemoveCartItem(c.Context(), sessionID, userID, dishID); err != nil {
		return presenters.ServiceErrorResponse(c, domain.MessageFailedRemoveCartItem, err)
	}

	return presenters.SuccessResponse(c, nil, fiber.StatusOK, domain.MessageSuccessRemoveCartItem)
}

func (h *orderingHandler) GetCart(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)
	sessionID, err := sessionIDParam(c)
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedGetCart, err)
	}

	res, err := h.orderingService.GetCart(c.Context(), sessionID, userID)
	if err != nil {
		return presenters.ServiceErrorResponse(c, domain.MessageFailedGetCart, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessGetCart)
}

func (h *orderingHandler) GetCartQuantity(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)
	sessionID, err := sessionIDParam(c)
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedGetCartQuantity, err)
	}

	res, err := h.orderingService.GetCartQuantity(c.Context(), sessionID, userID)
	if err != nil {
		return presenters.ServiceErrorResponse(c, domain.MessageFailedGetCartQuantity, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessGetCartQuantity)
}

func (h *orderingHandler) PlaceOrder(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)
	sessionID, err := sessionIDParam(c)
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedPlaceOrder, err)
	}

	if err := h.orderingService.PlaceOrder(c.Context(), sessionID, userID); err != nil {
		return presenters.ServiceErrorResponse(c, domain.MessageFailedPlaceOrder, err)
	}

	return presenters.SuccessResponse(c, nil, fiber.StatusOK, domain.MessageSuccessPlaceOrder)
}

func (h *orderingHandler) EndSession(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)
	sessionID, err := sessionIDParam(c)
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedEndSession, err)
	}

	if err := h.orderingService.EndSession(c.Context(), sessionID, userID); err != nil {
		return presenters.ServiceErrorResponse(c, domain.MessageFailedEndSession, err)
	}

	return presenters.SuccessResponse(c, nil, fiber.StatusOK, domain.MessageSuccessEndSession)
}

func (h *orderingHandler) GetSessionRestaurant(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)
	sessionID, err := sessionIDParam(c)
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedGetRestaurantID, err)
	}

	res, err := h.orderingService.RestaurantFromSession(c.Context(), sessionID, userID)
	if err != nil {
		return presenters.ServiceErrorResponse(c, domain.MessageFailedGetRestaurantID, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessGetRestaurantID)
}
