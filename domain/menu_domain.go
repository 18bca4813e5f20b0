package domain

var (
	MessageSuccessGetUserMenu = "menu retrieved successfully"
	MessageFailedGetUserMenu  = "failed to retrieve menu"
)

type (
	UserMenuResponse struct {
		MenuID   string         `json:"menu_id"`
		MenuType string         `json:"menu_type"`
		Filtered bool           `json:"filtered"`
		Dishes   []DishResponse `json:"dishes"`
	}
)
