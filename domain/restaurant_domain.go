package domain

import (
	"errors"
	"mime/multipart"
)

var (
	MessageSuccessRegisterRestaurant = "restaurant added successfully"
	MessageSuccessLoginRestaurant    = "login successful"
	MessageSuccessGetRestaurant      = "restaurant retrieved successfully"
	MessageSuccessUpdateRestaurant   = "restaurant updated successfully"
	MessageSuccessDeleteRestaurant   = "restaurant deleted successfully"
	MessageSuccessGetOrders          = "orders retrieved successfully"
	MessageSuccessCreateMenu         = "menu created successfully"
	MessageSuccessGetMenus           = "menus retrieved successfully"
	MessageSuccessDeleteMenu         = "menu deleted successfully"
	MessageSuccessCreateDish         = "dish created successfully"
	MessageSuccessGetDishes          = "dishes retrieved successfully"
	MessageSuccessAssignDish         = "dish added to menu"
	MessageSuccessRateDish           = "dish rated successfully"

	MessageFailedRegisterRestaurant = "failed to register restaurant"
	MessageFailedLoginRestaurant    = "invalid credentials"
	MessageFailedGetRestaurant      = "failed to retrieve restaurant"
	MessageFailedUpdateRestaurant   = "failed to update restaurant"
	MessageFailedDeleteRestaurant   = "failed to delete restaurant"
	MessageFailedGetOrders          = "failed to retrieve orders"
	MessageFailedCreateMenu         = "failed to create menu"
	MessageFailedGetMenus           = "failed to retrieve menus"
	MessageFailedDeleteMenu         = "failed to delete menu"
	MessageFailedCreateDish         = "failed to create dish, please ensure all required fields are filled"
	MessageFailedGetDishes          = "failed to retrieve dishes"
	MessageFailedAssignDish         = "failed to add dish to menu"
	MessageFailedRateDish           = "failed to rate dish"

	ErrRestaurantNotFound      = errors.New("restaurant not found")
	ErrRestaurantAlreadyExists = errors.New("restaurant with that phone number or email already exists")
	ErrMenuNotFound            = errors.New("menu not found")
	ErrDishNotFound            = errors.New("dish not found")
	ErrDishAlreadyInMenu       = errors.New("dish is already in the specified menu")
	ErrInvalidRating           = errors.New("rating must be between 1 and 5")
)

type (
	RegisterRestaurantRequest struct {
		Name         string                `json:"name" validate:"required"`
		Address      string                `json:"address" validate:"required"`
		Phone        string                `json:"phone" validate:"required"`
		Email        string                `json:"email" validate:"required,email"`
		Password     string                `json:"password" validate:"required,min=8"`
		Cuisine      string                `json:"cuisine" validate:"required"`
		IsVegetarian bool                  `json:"is_vegetarian"`
		IsVegan      bool                  `json:"is_vegan"`
		IsHalal      bool                  `json:"is_halal"`
		Description  string                `json:"description"`
		Banner       *multipart.FileHeader `json:"-" validate:"omitempty"`
		ProfilePhoto *multipart.FileHeader `json:"-" validate:"omitempty"`
	}

	LoginRestaurantRequest struct {
		Email    string `json:"email" validate:"required,email"`
		Password string `json:"password" validate:"required"`
	}

	LoginRestaurantResponse struct {
		AccessToken string `json:"access_token"`
	}

	UpdateRestaurantRequest struct {
		Name         string `json:"name" validate:"omitempty"`
		Address      string `json:"address" validate:"omitempty"`
		Phone        string `json:"phone" validate:"omitempty"`
		Email        string `json:"email" validate:"omitempty,email"`
		Cuisine      string `json:"cuisine" validate:"omitempty"`
		IsVegetarian *bool  `json:"is_vegetarian"`
		IsVegan      *bool  `json:"is_vegan"`
		IsHalal      *bool  `json:"is_halal"`
		Description  string `json:"description" validate:"omitempty"`
	}

	RestaurantLandingResponse struct {
		ID           string         `json:"id"`
		Name         string         `json:"name"`
		Address      string         `json:"address"`
		Phone        string         `json:"phone"`
		Email        string         `json:"email"`
		Cuisine      string         `json:"cuisine"`
		Rating       float64        `json:"rating"`
		IsVegetarian bool           `json:"is_vegetarian"`
		IsVegan      bool           `json:"is_vegan"`
		IsHalal      bool           `json:"is_halal"`
		Description  string         `json:"description,omitempty"`
		BannerURL    string         `json:"banner_url,omitempty"`
		PhotoURL     string         `json:"photo_url,omitempty"`
		Menu         []DishResponse `json:"menu"`
	}

	CreateMenuRequest struct {
		MenuType string `json:"menu_type" validate:"required"`
	}

	MenuResponse struct {
		ID           string         `json:"id"`
		MenuType     string         `json:"menu_type"`
		RestaurantID string         `json:"restaurant_id"`
		Dishes       []DishResponse `json:"dishes"`
	}

	AssignDishRequest struct {
		DishID string `json:"dish_id" validate:"required,uuid"`
		MenuID string `json:"menu_id" validate:"required,uuid"`
	}

	CreateDishRequest struct {
		Name          string                `json:"dish_name" validate:"required"`
		Description   string                `json:"general_description"`
		Price         float64               `json:"price" validate:"required,gt=0"`
		Protein       float64               `json:"protein"`
		Fat           float64               `json:"fat"`
		Energy        float64               `json:"energy"`
		Carbs         float64               `json:"carbs"`
		IsLactoseFree bool                  `json:"is_lactose_free"`
		IsHalal       bool                  `json:"is_halal"`
		IsVegan       bool                  `json:"is_vegan"`
		IsVegetarian  bool                  `json:"is_vegetarian"`
		IsGlutenFree  bool                  `json:"is_gluten_free"`
		IsJain        bool                  `json:"is_jain"`
		IsSoyFree     bool                  `json:"is_soy_free"`
		Image         *multipart.FileHeader `json:"-" validate:"omitempty"`
	}

	DishResponse struct {
		ID            string  `json:"id"`
		Name          string  `json:"dish_name"`
		Description   string  `json:"description,omitempty"`
		Price         float64 `json:"price"`
		Protein       float64 `json:"protein"`
		Fat           float64 `json:"fat"`
		Energy        float64 `json:"energy"`
		Carbs         float64 `json:"carbs"`
		IsLactoseFree bool    `json:"is_lactose_free"`
		IsHalal       bool    `json:"is_halal"`
		IsVegan       bool    `json:"is_vegan"`
		IsVegetarian  bool    `json:"is_vegetarian"`
		IsGlutenFree  bool    `json:"is_gluten_free"`
		IsJain        bool    `json:"is_jain"`
		IsSoyFree     bool    `json:"is_soy_free"`
		IsAvailable   bool    `json:"is_available"`
		ImageURL      string  `json:"image,omitempty"`
		Rating        float64 `json:"rating"`
	}

	RateDishRequest struct {
		Rating int `json:"rating" validate:"required,min=1,max=5"`
	}

	RestaurantOrderItemResponse struct {
		ID       string  `json:"id"`
		DishID   string  `json:"dish_id"`
		Quantity int     `json:"quantity"`
		Price    float64 `json:"price"`
	}

	RestaurantOrderResponse struct {
		ID        string                        `json:"id"`
		UserID    string                        `json:"user_id"`
		SessionID int64                         `json:"session_id"`
		IsOpen    bool                          `json:"is_open"`
		TotalCost float64                       `json:"total_cost"`
		Items     []RestaurantOrderItemResponse `json:"items"`
	}
)
