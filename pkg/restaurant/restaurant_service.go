package restaurant

import (
	"DineWise-Backend/domain"
	"DineWise-Backend/entities"
	"DineWise-Backend/internal/utils/storage"
	"DineWise-Backend/pkg/jwt"
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

type (
	RestaurantService interface {
		RegisterRestaurant(ctx context.Context, req domain.RegisterRestaurantRequest) (domain.RestaurantLandingResponse, error)
		Login(ctx context.Context, req domain.LoginRestaurantRequest) (domain.LoginRestaurantResponse, error)
		GetRestaurant(ctx context.Context, restaurantID string) (domain.RestaurantLandingResponse, error)
		GetAllRestaurants(ctx context.Context) ([]domain.RestaurantLandingResponse, error)
		UpdateRestaurant(ctx context.Context, restaurantID string, req domain.UpdateRestaurantRequest) error
		DeleteRestaurant(ctx context.Context, restaurantID string) error

		CreateMenu(ctx context.Context, restaurantID string, req domain.CreateMenuRequest) (domain.MenuResponse, error)
		GetMenus(ctx context.Context, restaurantID string) ([]domain.MenuResponse, error)
		DeleteMenu(ctx context.Context, restaurantID, menuID string) error

		CreateDish(ctx context.Context, restaurantID string, req domain.CreateDishRequest) (domain.DishResponse, error)
		GetDishes(ctx context.Context, restaurantID string) ([]domain.DishResponse, error)
		GetDish(ctx context.Context, dishID string) (domain.DishResponse, error)
		GetMenu(ctx context.Context, restaurantID, menuID string) (domain.MenuResponse, error)
		AssignDishToMenu(ctx context.Context, restaurantID string, req domain.AssignDishRequest) error
		RateDish(ctx context.Context, userID, orderID, dishID string, req domain.RateDishRequest) error
	}

	restaurantService struct {
		restaurantRepository RestaurantRepository
		jwtService           jwt.JWTService
		awsS3                storage.AwsS3
	}
)

func NewRestaurantService(
	restaurantRepository RestaurantRepository,
	jwtService jwt.JWTService,
	awsS3 storage.AwsS3,
) RestaurantService {
	return &restaurantService{
		restaurantRepository: restaurantRepository,
		jwtService:           jwtService,
		awsS3:                awsS3,
	}
}

func DishToResponse(dish *entities.Dish) domain.DishResponse {
	return domain.DishResponse{
		ID:            dish.ID.String(),
		Name:          dish.Name,
		Description:   dish.Description,
		Price:         dish.Price,
		Protein:       dish.Protein,
		Fat:           dish.Fat,
		Energy:        dish.Energy,
		Carbs:         dish.Carbs,
		IsLactoseFree: dish.IsLactoseFree,
		IsHalal:       dish.IsHalal,
		IsVegan:       dish.IsVegan,
		IsVegetarian:  dish.IsVegetarian,
		IsGlutenFree:  dish.IsGlutenFree,
		IsJain:        dish.IsJain,
		IsSoyFree:     dish.IsSoyFree,
		IsAvailable:   dish.IsAvailable,
		ImageURL:      dish.ImageURL,
		Rating:        dish.Rating,
	}
}

func restaurantToLanding(restaurant *entities.Restaurant, dishes []*entities.Dish) domain.RestaurantLandingResponse {
	menu := make([]domain.DishResponse, 0, len(dishes))
	for _, dish := range dishes {
		menu = append(menu, DishToResponse(dish))
	}
	return domain.RestaurantLandingResponse{
		ID:           restaurant.ID.String(),
		Name:         restaurant.Name,
		Address:      restaurant.Address,
		Phone:        restaurant.Phone,
		Email:        restaurant.Email,
		Cuisine:      restaurant.Cuisine,
		Rating:       restaurant.Rating,
		IsVegetarian: restaurant.IsVegetarian,
		IsVegan:      restaurant.IsVegan,
		IsHalal:      restaurant.IsHalal,
		Description:  restaurant.Description,
		BannerURL:    restaurant.BannerURL,
		PhotoURL:     restaurant.PhotoURL,
		Menu:         menu,
	}
}

func (s *restaurantService) RegisterRestaurant(ctx context.Context, req domain.RegisterRestaurantRequest) (domain.RestaurantLandingResponse, error) {
	exists, err := s.restaurantRepository.CheckRestaurantExists(ctx, req.Email, req.Phone)
	if err != nil {
		return domain.RestaurantLandingResponse{}, err
	}
	if exists {
		return domain.RestaurantLandingResponse{}, domain.ErrRestaurantAlreadyExists
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return domain.RestaurantLandingResponse{}, err
	}

	restaurant := &entities.Restaurant{
		ID:           uuid.New(),
		Name:         req.Name,
		Address:      req.Address,
		Phone:        req.Phone,
		Email:        req.Email,
		Password:     string(hashed),
		Cuisine:      req.Cuisine,
		Rating:       5,
		IsVegetarian: req.IsVegetarian,
		IsVegan:      req.IsVegan,
		IsHalal:      req.IsHalal,
		Description:  req.Description,
	}

	if req.Banner != nil {
		objectKey, err := s.awsS3.UploadFile(
			fmt.Sprintf("banner_%s", restaurant.ID), req.Banner, "restaurant", storage.AllowImage...)
		if err != nil {
			return domain.RestaurantLandingResponse{}, err
		}
		restaurant.BannerURL = s.awsS3.GetPublicLinkKey(objectKey)
	}
	if req.ProfilePhoto != nil {
		objectKey, err := s.awsS3.UploadFile(
			fmt.Sprintf("photo_%s", restaurant.ID), req.ProfilePhoto, "restaurant", storage.AllowImage...)
		if err != nil {
			return domain.RestaurantLandingResponse{}, err
		}
		restaurant.PhotoURL = s.awsS3.GetPublicLinkKey(objectKey)
	}

	if err := s.restaurantRepository.CreateRestaurant(ctx, restaurant); err != nil {
		return domain.RestaurantLandingResponse{}, err
	}
	return restaurantToLanding(restaurant, nil), nil
}

func (s *restaurantService) Login(ctx context.Context, req domain.LoginRestaurantRequest) (domain.LoginRestaurantResponse, error) {
	restaurant, err := s.restaurantRepository.GetRestaurantByEmail(ctx, req.Email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.LoginRestaurantResponse{}, domain.ErrInvalidCredentials
		}
		return domain.LoginRestaurantResponse{}, err
	}
	if err := bcrypt.CompareHashAndPassword([]byte(restaurant.Password), []byte(req.Password)); err != nil {
		return domain.LoginRestaurantResponse{}, domain.ErrInvalidCredentials
	}

	token := s.jwtService.GenerateToken(restaurant.ID.String(), domain.RoleRestaurant)
	return domain.LoginRestaurantResponse{AccessToken: token}, nil
}

func (s *restaurantService) GetRestaurant(ctx context.Context, restaurantID string) (domain.RestaurantLandingResponse, error) {
	restaurant, err := s.restaurantRepository.GetRestaurantByID(ctx, restaurantID)
	if err != nil {
		return domain.RestaurantLandingResponse{}, replaceNotFound(err, domain.ErrRestaurantNotFound)
	}
	dishes, err := s.restaurantRepository.GetDishesByRestaurant(ctx, restaurant.ID)
	if err != nil {
		return domain.RestaurantLandingResponse{}, err
	}
	return restaurantToLanding(restaurant, dishes), nil
}

func (s *restaurantService) GetAllRestaurants(ctx context.Context) ([]domain.RestaurantLandingResponse, error) {
	restaurants, err := s.restaurantRepository.GetAllRestaurants(ctx)
	if err != nil {
		return nil, err
	}
	res := make([]domain.RestaurantLandingResponse, 0, len(restaurants))
	for _, restaurant := range restaurants {
		res = append(res, restaurantToLanding(restaurant, nil))
	}
	return res, nil
}

func (s *restaurantService) UpdateRestaurant(ctx context.Context, restaurantID string, req domain.UpdateRestaurantRequest) error {
	restaurant, err := s.restaurantRepository.GetRestaurantByID(ctx, restaurantID)
	if err != nil {
		return replaceNotFound(err, domain.ErrRestaurantNotFound)
	}

	if req.Name != "" {
		restaurant.Name = req.Name
	}
	if req.Address != "" {
		restaurant.Address = req.Address
	}
	if req.Phone != "" {
		restaurant.Phone = req.Phone
	}
	if req.Email != "" {
		restaurant.Email = req.Email
	}
	if req.Cuisine != "" {
		restaurant.Cuisine = req.Cuisine
	}
	if req.Description != "" {
		restaurant.Description = req.Description
	}
	if req.IsVegetarian != nil {
		restaurant.IsVegetarian = *req.IsVegetarian
	}
	if req.IsVegan != nil {
		restaurant.IsVegan = *req.IsVegan
	}
	if req.IsHalal != nil {
		restaurant.IsHalal = *req.IsHalal
	}

	return s.restaurantRepository.UpdateRestaurant(ctx, restaurant)
}

func (s *restaurantService) DeleteRestaurant(ctx context.Context, restaurantID string) error {
	if _, err := s.restaurantRepository.GetRestaurantByID(ctx, restaurantID); err != nil {
		return replaceNotFound(err, domain.ErrRestaurantNotFound)
	}
	return s.restaurantRepository.DeleteRestaurant(ctx, restaurantID)
}

func (s *restaurantService) CreateMenu(ctx context.Context, restaurantID string, req domain.CreateMenuRequest) (domain.MenuResponse, error) {
	restaurant, err := s.restaurantRepository.GetRestaurantByID(ctx, restaurantID)
	if err != nil {
		return domain.MenuResponse{}, replaceNotFound(err, domain.ErrRestaurantNotFound)
	}

	menu := &entities.Menu{
		ID:           uuid.New(),
		RestaurantID: restaurant.ID,
		MenuType:     req.MenuType,
	}
	if err := s.restaurantRepository.CreateMenu(ctx, menu); err != nil {
		return domain.MenuResponse{}, err
	}

	return domain.MenuResponse{
		ID:           menu.ID.String(),
		MenuType:     menu.MenuType,
		RestaurantID: menu.RestaurantID.String(),
		Dishes:       []domain.DishResponse{},
	}, nil
}

func (s *restaurantService) GetMenus(ctx context.Context, restaurantID string) ([]domain.MenuResponse, error) {
	restaurantUUID, err := uuid.Parse(restaurantID)
	if err != nil {
		return nil, domain.ErrParseUUID
	}

	menus, err := s.restaurantRepository.GetMenusByRestaurant(ctx, restaurantUUID)
	if err != nil {
		return nil, err
	}

	res := make([]domain.MenuResponse, 0, len(menus))
	for _, menu := range menus {
		dishes := make([]domain.DishResponse, 0, len(menu.Dishes))
		for _, dish := range menu.Dishes {
			dishes = append(dishes, DishToResponse(dish))
		}
		res = append(res, domain.MenuResponse{
			ID:           menu.ID.String(),
			MenuType:     menu.MenuType,
			RestaurantID: menu.RestaurantID.String(),
			Dishes:       dishes,
		})
	}
	return res, nil
}

func (s *restaurantService) DeleteMenu(ctx context.Context, restaurantID, menuID string) error {
	menu, err := s.restaurantRepository.GetMenuByID(ctx, menuID)
	if err != nil {
		return replaceNotFound(err, domain.ErrMenuNotFound)
	}
	if menu.RestaurantID.String() != restaurantID {
		return domain.ErrUserNotAllowed
	}
	return s.restaurantRepository.DeleteMenu(ctx, menuID)
}

func (s *restaurantService) CreateDish(ctx context.Context, restaurantID string, req domain.CreateDishRequest) (domain.DishResponse, error) {
	restaurant, err := s.restaurantRepository.GetRestaurantByID(ctx, restaurantID)
	if err != nil {
		return domain.DishResponse{}, replaceNotFound(err, domain.ErrRestaurantNotFound)
	}

	dish := &entities.Dish{
		ID:            uuid.New(),
		RestaurantID:  restaurant.ID,
		Name:          req.Name,
		Description:   req.Description,
		Price:         req.Price,
		Protein:       req.Protein,
		Fat:           req.Fat,
		Energy:        req.Energy,
		Carbs:         req.Carbs,
		IsLactoseFree: req.IsLactoseFree,
		IsHalal:       req.IsHalal,
		IsVegan:       req.IsVegan,
		IsVegetarian:  req.IsVegetarian,
		IsGlutenFree:  req.IsGlutenFree,
		IsJain:        req.IsJain,
		IsSoyFree:     req.IsSoyFree,
		IsAvailable:   true,
		Rating:        5,
	}

	if req.Image != nil {
		objectKey, err := s.awsS3.UploadFile(
			fmt.Sprintf("dish_%s", dish.ID), req.Image, "dish", storage.AllowImage...)
		if err != nil {
			return domain.DishResponse{}, err
		}
		dish.ImageURL = s.awsS3.GetPublicLinkKey(objectKey)
	}

	if err := s.restaurantRepository.CreateDish(ctx, dish); err != nil {
		return domain.DishResponse{}, err
	}
	return DishToResponse(dish), nil
}

func (s *restaurantService) GetDishes(ctx context.Context, restaurantID string) ([]domain.DishResponse, error) {
	restaurantUUID, err := uuid.Parse(restaurantID)
	if err != nil {
		return nil, domain.ErrParseUUID
	}

	dishes, err := s.restaurantRepository.GetDishesByRestaurant(ctx, restaurantUUID)
	if err != nil {
		return nil, err
	}
	res := make([]domain.DishResponse, 0, len(dishes))
	for _, dish := range dishes {
		res = append(res, DishToResponse(dish))
	}
	return res, nil
}

func (s *restaurantService) AssignDishToMenu(ctx context.Context, restaurantID string, req domain.AssignDishRequest) error {
	dish, err := s.restaurantRepository.GetDishByID(ctx, req.DishID)
	if err != nil {
		return replaceNotFound(err, domain.ErrDishNotFound)
	}
	menu, err := s.restaurantRepository.GetMenuByID(ctx, req.MenuID)
	if err != nil {
		return replaceNotFound(err, domain.ErrMenuNotFound)
	}
	if dish.RestaurantID.String() != restaurantID || menu.RestaurantID.String() != restaurantID {
		return domain.ErrUserNotAllowed
	}
	if dish.MenuID != nil && *dish.MenuID == menu.ID {
		return domain.ErrDishAlreadyInMenu
	}

	dish.MenuID = &menu.ID
	return s.restaurantRepository.UpdateDish(ctx, dish)
}

func (s *restaurantService) GetDish(ctx context.Context, dishID string) (domain.DishResponse, error) {
	dish, err := s.restaurantRepository.GetDishByID(ctx, dishID)
	if err != nil {
		return domain.DishResponse{}, replaceNotFound(err, domain.ErrDishNotFound)
	}
	return DishToResponse(dish), nil
}

func (s *restaurantService) GetMenu(ctx context.Context, restaurantID, menuID string) (domain.MenuResponse, error) {
	menu, err := s.restaurantRepository.GetMenuByID(ctx, menuID)
	if err != nil {
		return domain.MenuResponse{}, replaceNotFound(err, domain.ErrMenuNotFound)
	}
	if menu.RestaurantID.String() != restaurantID {
		return domain.MenuResponse{}, domain.ErrUserNotAllowed
	}

	dishes := make([]domain.DishResponse, 0, len(menu.Dishes))
	for _, dish := range menu.Dishes {
		dishes = append(dishes, DishToResponse(dish))
	}
	return domain.MenuResponse{
		ID:           menu.ID.String(),
		MenuType:     menu.MenuType,
		RestaurantID: menu.RestaurantID.String(),
		Dishes:       dishes,
	}, nil
}

// RateDish records a rating on a purchased order line, then refreshes the
// dish aggregate as the mean of every rated line for that dish.
func (s *restaurantService) RateDish(ctx context.Context, userID, orderID, dishID string, req domain.RateDishRequest) error {
	userUUID, err := uuid.Parse(userID)
	if err != nil {
		return domain.ErrParseUUID
	}
	orderUUID, err := uuid.Parse(orderID)
	if err != nil {
		return domain.ErrParseUUID
	}
	dishUUID, err := uuid.Parse(dishID)
	if err != nil {
		return domain.ErrParseUUID
	}
	if req.Rating < 1 || req.Rating > 5 {
		return domain.ErrInvalidRating
	}

	item, err := s.restaurantRepository.GetOrderItem(ctx, orderUUID, dishUUID, userUUID)
	if err != nil {
		return replaceNotFound(err, domain.ErrOrderNotFound)
	}

	rating := req.Rating
	item.Rating = &rating
	if err := s.restaurantRepository.UpdateOrderItem(ctx, item); err != nil {
		return err
	}

	avg, count, err := s.restaurantRepository.AverageDishRating(ctx, item.DishID)
	if err != nil {
		return err
	}
	if count == 0 {
		return nil
	}

	dish, err := s.restaurantRepository.GetDishByID(ctx, item.DishID.String())
	if err != nil {
		return replaceNotFound(err, domain.ErrDishNotFound)
	}
	dish.Rating = avg
	return s.restaurantRepository.UpdateDish(ctx, dish)
}

func replaceNotFound(err, sentinel error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return sentinel
	}
	return err
}
