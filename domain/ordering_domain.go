package domain

import (
	"errors"
)

const (
	CartOperationIncrease = "increase"
	CartOperationDecrease = "decrease"
)

var (
	MessageSuccessStartSession    = "ordering session started"
	MessageSuccessAddCartItems    = "items added to cart"
	MessageSuccessUpdateCart      = "cart updated successfully"
	MessageSuccessRemoveCartItem  = "item deleted from cart successfully"
	MessageSuccessGetCart         = "cart retrieved successfully"
	MessageSuccessPlaceOrder      = "order placed successfully"
	MessageSuccessEndSession      = "order completed successfully"
	MessageSuccessGetCartQuantity = "cart quantity retrieved successfully"
	MessageSuccessGetRestaurantID = "restaurant resolved successfully"

	MessageFailedStartSession    = "failed to start ordering session, try again"
	MessageFailedAddCartItems    = "failed to add items to cart"
	MessageFailedUpdateCart      = "failed to update cart"
	MessageFailedRemoveCartItem  = "failed to delete item from cart"
	MessageFailedGetCart         = "cart not found, start a new session"
	MessageFailedPlaceOrder      = "failed to place order"
	MessageFailedEndSession      = "failed to complete order"
	MessageFailedGetCartQuantity = "failed to retrieve cart quantity"
	MessageFailedGetRestaurantID = "failed to resolve restaurant"

	ErrSessionNotFound      = errors.New("session not found")
	ErrSessionCollision     = errors.New("session id already in use, try again")
	ErrCartNotFound         = errors.New("cart not found")
	ErrCartLineNotFound     = errors.New("cart item not found")
	ErrOrderNotFound        = errors.New("order not found")
	ErrInvalidQuantity      = errors.New("quantity must be a positive integer")
	ErrInvalidCartOperation = errors.New("operation must be increase or decrease")
)

type (
	StartSessionResponse struct {
		SessionID int64 `json:"session_id"`
	}

	CartItemRequest struct {
		DishID   string `json:"dish_id" validate:"required,uuid"`
		Quantity int    `json:"quantity" validate:"required,min=1"`
	}

	AddCartItemsRequest struct {
		Items []CartItemRequest `json:"items" validate:"required,min=1,dive"`
	}

	AdjustQuantityRequest struct {
		DishID    string `json:"dish_id" validate:"required,uuid"`
		Operation string `json:"operation" validate:"required,oneof=increase decrease"`
	}

	CartTotalResponse struct {
		TotalCost float64 `json:"total_cost"`
	}

	CartLineResponse struct {
		ID       string  `json:"id"`
		DishID   string  `json:"dish_id"`
		DishName string  `json:"dish_name"`
		ImageURL string  `json:"image,omitempty"`
		Quantity int     `json:"quantity"`
		Price    float64 `json:"price"`
	}

	CartResponse struct {
		ID        string             `json:"id"`
		UserID    string             `json:"user_id"`
		SessionID int64              `json:"session_id"`
		Items     []CartLineResponse `json:"items"`
		TotalCost float64            `json:"total_cost"`
	}

	CartQuantityResponse struct {
		Quantity int `json:"quantity"`
	}

	SessionRestaurantResponse struct {
		RestaurantID string `json:"restaurant_id"`
	}
)
