package handlers

import (
	"DineWise-Backend/domain"
	"DineWise-Backend/internal/api/presenters"
	"DineWise-Backend/pkg/ordering"
	"DineWise-Backend/pkg/restaurant"
	"encoding/json"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

type (
	RestaurantHandler interface {
		Register(c *fiber.Ctx) error
		Login(c *fiber.Ctx) error
		Landing(c *fiber.Ctx) error
		Update(c *fiber.Ctx) error
		Delete(c *fiber.Ctx) error
		GetOrders(c *fiber.Ctx) error
		GetOpenOrders(c *fiber.Ctx) error

		CreateMenu(c *fiber.Ctx) error
		GetMenus(c *fiber.Ctx) error
		GetMenu(c *fiber.Ctx) error
		DeleteMenu(c *fiber.Ctx) error
		AssignDish(c *fiber.Ctx) error

		CreateDish(c *fiber.Ctx) error
		GetDishes(c *fiber.Ctx) error
		GetDish(c *fiber.Ctx) error
		RateDish(c *fiber.Ctx) error
	}

	restaurantHandler struct {
		restaurantService restaurant.RestaurantService
		orderingService   ordering.OrderingService
		validator         *validator.Validate
	}
)

func NewRestaurantHandler(
	restaurantService restaurant.RestaurantService,
	orderingService ordering.OrderingService,
	validator *validator.Validate,
) RestaurantHandler {
	return &restaurantHandler{
		restaurantService: restaurantService,
		orderingService:   orderingService,
		validator:         validator,
	}
}

// Register accepts multipart form data: a json_data field with the request
// payload plus optional banner and profile_photo file parts.
func (h *restaurantHandler) Register(c *fiber.Ctx) error {
	req := new(domain.RegisterRestaurantRequest)

	if payload := c.FormValue("json_data"); payload != "" {
		if err := json.Unmarshal([]byte(payload), req); err != nil {
			return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
		}
	} else if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}
	if file, err := c.FormFile("banner"); err == nil {
		req.Banner = file
	}
	if file, err := c.FormFile("profile_photo"); err == nil {
		req.ProfilePhoto = file
	}

	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedRegisterRestaurant, err)
	}

	res, err := h.restaurantService.RegisterRestaurant(c.Context(), *req)
	if err != nil {
		return presenters.ServiceErrorResponse(c, domain.MessageFailedRegisterRestaurant, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusCreated, domain.MessageSuccessRegisterRestaurant)
}

func (h *restaurantHandler) Login(c *fiber.Ctx) error {
	req := new(domain.LoginRestaurantRequest)

	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}
	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedLoginRestaurant, err)
	}

	res, err := h.restaurantService.Login(c.Context(), *req)
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusUnauthorized, domain.MessageFailedLoginRestaurant, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessLoginRestaurant)
}

func (h *restaurantHandler) Landing(c *fiber.Ctx) error {
	restaurantID := c.Params("id")

	res, err := h.restaurantService.GetRestaurant(c.Context(), restaurantID)
	if err != nil {
		return presenters.ServiceErrorResponse(c, domain.MessageFailedGetRestaurant, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessGetRestaurant)
}

func (h *restaurantHandler) Update(c *fiber.Ctx) error {
	restaurantID := c.Locals("user_id").(string)
	req := new(domain.UpdateRestaurantRequest)

	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}
	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedUpdateRestaurant, err)
	}

	if err := h.restaurantService.UpdateRestaurant(c.Context(), restaurantID, *req); err != nil {
		return presenters.ServiceErrorResponse(c, domain.MessageFailedUpdateRestaurant, err)
	}

	return presenters.SuccessResponse(c, nil, fiber.StatusOK, domain.MessageSuccessUpdateRestaurant)
}

func (h *restaurantHandler) Delete(c *fiber.Ctx) error {
	restaurantID := c.Locals("user_id").(string)

	if err := h.restaurantService.DeleteRestaurant(c.Context(), restaurantID); err != nil {
		return presenters.ServiceErrorResponse(c, domain.MessageFailedDeleteRestaurant, err)
	}

	return presenters.SuccessResponse(c, nil, fiber.StatusOK, domain.MessageSuccessDeleteRestaurant)
}

func (h *restaurantHandler) GetOrders(c *fiber.Ctx) error {
	restaurantID := c.Locals("user_id").(string)

	res, err := h.orderingService.GetRestaurantOrders(c.Context(), restaurantID, false)
	if err != nil {
		return presenters.ServiceErrorResponse(c, domain.MessageFailedGetOrders, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessGetOrders)
}

func (h *restaurantHandler) GetOpenOrders(c *fiber.Ctx) error {
	restaurantID := c.Locals("user_id").(string)

	res, err := h.orderingService.GetRestaurantOrders(c.Context(), restaurantID, true)
	if err != nil {
		return presenters.ServiceErrorResponse(c, domain.MessageFailedGetOrders, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessGetOrders)
}

func (h *restaurantHandler) CreateMenu(c *fiber.Ctx) error {
	restaurantID := c.Locals("user_id").(string)
	req := new(domain.CreateMenuRequest)

	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}
	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedCreateMenu, err)
	}

	res, err := h.restaurantService.CreateMenu(c.Context(), restaurantID, *req)
	if err != nil {
		return presenters.ServiceErrorResponse(c, domain.MessageFailedCreateMenu, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusCreated, domain.MessageSuccessCreateMenu)
}

func (h *restaurantHandler) GetMenus(c *fiber.Ctx) error {
	restaurantID := c.Locals("user_id").(string)

	res, err := h.restaurantService.GetMenus(c.Context(), restaurantID)
	if err != nil {
		return presenters.ServiceErrorResponse(c, domain.MessageFailedGetMenus, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessGetMenus)
}

func (h *restaurantHandler) GetMenu(c *fiber.Ctx) error {
	restaurantID := c.Locals("user_id").(string)
	menuID := c.Params("id")

	res, err := h.restaurantService.GetMenu(c.Context(), restaurantID, menuID)
	if err != nil {
		return presenters.ServiceErrorResponse(c, domain.MessageFailedGetMenus, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessGetMenus)
}

func (h *restaurantHandler) DeleteMenu(c *fiber.Ctx) error {
	restaurantID := c.Locals("user_id").(string)
	menuID := c.Params("id")

	if err := h.restaurantService.DeleteMenu(c.Context(), restaurantID, menuID); err != nil {
		return presenters.ServiceErrorResponse(c, domain.MessageFailedDeleteMenu, err)
	}

	return presenters.SuccessResponse(c, nil, fiber.StatusOK, domain.MessageSuccessDeleteMenu)
}

func (h *restaurantHandler) AssignDish(c *fiber.Ctx) error {
	restaurantID := c.Locals("user_id").(string)
	req := new(domain.AssignDishRequest)

	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}
	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedAssignDish, err)
	}

	if err := h.restaurantService.AssignDishToMenu(c.Context(), restaurantID, *req); err != nil {
		return presenters.ServiceErrorResponse(c, domain.MessageFailedAssignDish, err)
	}

	return presenters.SuccessResponse(c, nil, fiber.StatusOK, domain.MessageSuccessAssignDish)
}

func (h *restaurantHandler) CreateDish(c *fiber.Ctx) error {
	restaurantID := c.Locals("user_id").(string)
	req := new(domain.CreateDishRequest)

	if payload := c.FormValue("json_data"); payload != "" {
		if err := json.Unmarshal([]byte(payload), req); err != nil {
			return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
		}
	} else if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}
	if file, err := c.FormFile("image"); err == nil {
		req.Image = file
	}

	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedCreateDish, err)
	}

	res, err := h.restaurantService.CreateDish(c.Context(), restaurantID, *req)
	if err != nil {
		return presenters.ServiceErrorResponse(c, domain.MessageFailedCreateDish, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusCreated, domain.MessageSuccessCreateDish)
}

func (h *restaurantHandler) GetDishes(c *fiber.Ctx) error {
	restaurantID := c.Locals("user_id").(string)

	res, err := h.restaurantService.GetDishes(c.Context(), restaurantID)
	if err != nil {
		return presenters.ServiceErrorResponse(c, domain.MessageFailedGetDishes, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessGetDishes)
}

func (h *restaurantHandler) GetDish(c *fiber.Ctx) error {
	dishID := c.Params("id")

	res, err := h.restaurantService.GetDish(c.Context(), dishID)
	if err != nil {
		return presenters.ServiceErrorResponse(c, domain.MessageFailedGetDishes, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessGetDishes)
}

func (h *restaurantHandler) RateDish(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)
	orderID := c.Params("orderID")
	dishID := c.Params("dishID")
	req := new(domain.RateDishRequest)

	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}
	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedRateDish, err)
	}

	if err := h.restaurantService.RateDish(c.Context(), userID, orderID, dishID, *req); err != nil {
		return presenters.ServiceErrorResponse(c, domain.MessageFailedRateDish, err)
	}

	return presenters.SuccessResponse(c, nil, fiber.StatusOK, domain.MessageSuccessRateDish)
}
