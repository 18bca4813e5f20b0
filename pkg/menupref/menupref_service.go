package menupref

import (
	"DineWise-Backend/domain"
	"DineWise-Backend/pkg/restaurant"
	"DineWise-Backend/pkg/user"
	"context"
	"errors"

	"gorm.io/gorm"
)

type (
	MenuPrefService interface {
		// GetUserMenu returns the dishes of a menu as seen by the given
		// user. With unfiltered set the preference filter is bypassed.
		GetUserMenu(ctx context.Context, menuID, userID string, unfiltered bool) (domain.UserMenuResponse, error)
	}

	menuPrefService struct {
		restaurantRepository restaurant.RestaurantRepository
		userRepository       user.UserRepository
	}
)

func NewMenuPrefService(
	restaurantRepository restaurant.RestaurantRepository,
	userRepository user.UserRepository,
) MenuPrefService {
	return &menuPrefService{
		restaurantRepository: restaurantRepository,
		userRepository:       userRepository,
	}
}

func (s *menuPrefService) GetUserMenu(ctx context.Context, menuID, userID string, unfiltered bool) (domain.UserMenuResponse, error) {
	menu, err := s.restaurantRepository.GetMenuByID(ctx, menuID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.UserMenuResponse{}, domain.ErrMenuNotFound
		}
		return domain.UserMenuResponse{}, err
	}

	dishes := menu.Dishes
	filtered := false
	if !unfiltered {
		u, err := s.userRepository.GetUserByID(ctx, userID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return domain.UserMenuResponse{}, domain.ErrUserNotFound
			}
			return domain.UserMenuResponse{}, err
		}
		if u.Preferences != nil {
			dishes = FilterDishes(u.Preferences, dishes)
			filtered = true
		}
	}

	res := domain.UserMenuResponse{
		MenuID:   menu.ID.String(),
		MenuType: menu.MenuType,
		Filtered: filtered,
		Dishes:   make([]domain.DishResponse, 0, len(dishes)),
	}
	for _, dish := range dishes {
		res.Dishes = append(res.Dishes, restaurant.DishToResponse(dish))
	}
	return res, nil
}
