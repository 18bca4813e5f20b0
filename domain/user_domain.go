package domain

import (
	"errors"
	"mime/multipart"
	"time"
)

var (
	MessageSuccessRegisterUser = "user and preferences created successfully"
	MessageSuccessLoginUser    = "login successful"
	MessageSuccessGetUser      = "user profile retrieved successfully"
	MessageSuccessUpdateUser   = "user updated successfully"
	MessageSuccessDeleteUser   = "user deleted successfully"

	MessageFailedRegisterUser = "failed to register user"
	MessageFailedLoginUser    = "invalid credentials or password"
	MessageFailedGetUser      = "failed to retrieve user profile"
	MessageFailedUpdateUser   = "failed to update user"
	MessageFailedDeleteUser   = "failed to delete user"

	ErrUserNotFound         = errors.New("user not found")
	ErrUserAlreadyExists    = errors.New("user with that phone number or email already exists")
	ErrInvalidCredentials   = errors.New("invalid credentials")
	ErrMissingRequiredField = errors.New("missing required field")
)

type (
	RegisterUserRequest struct {
		Name                string                `json:"name" validate:"required"`
		Email               string                `json:"email" validate:"required_without=Phone,omitempty,email"`
		Phone               string                `json:"phone" validate:"required_without=Email"`
		Password            string                `json:"password" validate:"required,min=8"`
		Preference          string                `json:"preference"`
		IsLactoseIntolerant bool                  `json:"is_lactose_intolerant"`
		IsHalal             bool                  `json:"is_halal"`
		IsVegan             bool                  `json:"is_vegan"`
		IsVegetarian        bool                  `json:"is_vegetarian"`
		IsGlutenAllergic    bool                  `json:"is_gluten_allergic"`
		IsJain              bool                  `json:"is_jain"`
		ProfilePhoto        *multipart.FileHeader `json:"-" validate:"omitempty"`
	}

	LoginUserRequest struct {
		Email    string `json:"email" validate:"required_without=Phone,omitempty,email"`
		Phone    string `json:"phone" validate:"required_without=Email"`
		Password string `json:"password" validate:"required"`
	}

	LoginUserResponse struct {
		AccessToken string `json:"access_token"`
	}

	UpdateUserRequest struct {
		Name                string  `json:"name" validate:"omitempty"`
		Email               string  `json:"email" validate:"omitempty,email"`
		Phone               string  `json:"phone" validate:"omitempty"`
		Preference          *string `json:"preference"`
		IsLactoseIntolerant *bool   `json:"is_lactose_intolerant"`
		IsHalal             *bool   `json:"is_halal"`
		IsVegan             *bool   `json:"is_vegan"`
		IsVegetarian        *bool   `json:"is_vegetarian"`
		IsGlutenAllergic    *bool   `json:"is_gluten_allergic"`
		IsJain              *bool   `json:"is_jain"`
	}

	PreferencesResponse struct {
		Preference          string `json:"preference"`
		IsLactoseIntolerant bool   `json:"is_lactose_intolerant"`
		IsHalal             bool   `json:"is_halal"`
		IsVegan             bool   `json:"is_vegan"`
		IsVegetarian        bool   `json:"is_vegetarian"`
		IsGlutenAllergic    bool   `json:"is_gluten_allergic"`
		IsJain              bool   `json:"is_jain"`
	}

	UserOrderSummary struct {
		ID             string    `json:"id"`
		RestaurantID   string    `json:"restaurant_id"`
		RestaurantName string    `json:"restaurant_name"`
		TotalCost      float64   `json:"total_cost"`
		Timestamp      time.Time `json:"timestamp"`
	}

	UserConversationSummary struct {
		ID             string    `json:"id"`
		RestaurantID   string    `json:"restaurant_id"`
		RestaurantName string    `json:"restaurant_name"`
		Content        string    `json:"content"`
		CreatedAt      time.Time `json:"created_at"`
	}

	UserProfileResponse struct {
		ID              string                    `json:"id"`
		Name            string                    `json:"name"`
		Email           string                    `json:"email"`
		Phone           string                    `json:"phone"`
		Description     string                    `json:"description,omitempty"`
		ProfilePhotoURL string                    `json:"profile_photo_url,omitempty"`
		Preferences     PreferencesResponse       `json:"preferences"`
		RecentOrders    []UserOrderSummary        `json:"recent_orders"`
		Conversations   []UserConversationSummary `json:"recent_conversations"`
	}
)
