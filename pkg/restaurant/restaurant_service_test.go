package restaurant

import (
	"DineWise-Backend/domain"
	"DineWise-Backend/entities"
	"DineWise-Backend/pkg/jwt"
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func newRestaurantTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(
		&entities.User{},
		&entities.Preferences{},
		&entities.Restaurant{},
		&entities.Menu{},
		&entities.Dish{},
		&entities.Order{},
		&entities.OrderItem{},
	))
	return db
}

func newRestaurantTestService(db *gorm.DB) RestaurantService {
	return NewRestaurantService(NewRestaurantRepository(db), jwt.NewJWTService(), nil)
}

func registerRestaurantRequest() domain.RegisterRestaurantRequest {
	return domain.RegisterRestaurantRequest{
		Name:     "Spice Route",
		Address:  "12 Curry Lane",
		Phone:    "333",
		Email:    "spice@example.com",
		Password: "kitchen-secret",
		Cuisine:  "Indian",
		IsHalal:  true,
	}
}

func seedRatingFixture(t *testing.T, db *gorm.DB) (userID, orderID uuid.UUID, dish *entities.Dish) {
	t.Helper()
	user := &entities.User{Name: "Asha", Email: "asha@example.com", Phone: "111", Password: "x"}
	require.NoError(t, db.Create(user).Error)
	r := &entities.Restaurant{Name: "Spice Route", Email: "spice@example.com", Phone: "222", Password: "x"}
	require.NoError(t, db.Create(r).Error)
	dish = &entities.Dish{RestaurantID: r.ID, Name: "Dal Tadka", Price: 6.5, Rating: 5, IsAvailable: true}
	require.NoError(t, db.Create(dish).Error)
	order := &entities.Order{UserID: user.ID, RestaurantID: r.ID, SessionID: 4242, TotalCost: 13}
	require.NoError(t, db.Create(order).Error)
	item := &entities.OrderItem{OrderID: order.ID, DishID: dish.ID, Quantity: 2, Price: 6.5}
	require.NoError(t, db.Create(item).Error)
	return user.ID, order.ID, dish
}

func TestRegisterRestaurantAndLogin(t *testing.T) {
	db := newRestaurantTestDB(t)
	svc := newRestaurantTestService(db)

	res, err := svc.RegisterRestaurant(context.Background(), registerRestaurantRequest())
	require.NoError(t, err)
	assert.Equal(t, "Spice Route", res.Name)
	assert.InDelta(t, 5, res.Rating, 1e-9, "new restaurants start with a perfect rating")
	assert.True(t, res.IsHalal)

	_, err = svc.RegisterRestaurant(context.Background(), registerRestaurantRequest())
	assert.ErrorIs(t, err, domain.ErrRestaurantAlreadyExists)

	login, err := svc.Login(context.Background(), domain.LoginRestaurantRequest{
		Email: "spice@example.com", Password: "kitchen-secret",
	})
	require.NoError(t, err)
	assert.NotEmpty(t, login.AccessToken)

	_, err = svc.Login(context.Background(), domain.LoginRestaurantRequest{
		Email: "spice@example.com", Password: "wrong",
	})
	assert.ErrorIs(t, err, domain.ErrInvalidCredentials)
}

func TestMenuLifecycle(t *testing.T) {
	db := newRestaurantTestDB(t)
	svc := newRestaurantTestService(db)
	res, err := svc.RegisterRestaurant(context.Background(), registerRestaurantRequest())
	require.NoError(t, err)

	menu, err := svc.CreateMenu(context.Background(), res.ID, domain.CreateMenuRequest{MenuType: "Dinner"})
	require.NoError(t, err)
	assert.Equal(t, "Dinner", menu.MenuType)

	dish, err := svc.CreateDish(context.Background(), res.ID, domain.CreateDishRequest{
		Name: "Dal Tadka", Price: 6.5, IsVegan: true,
	})
	require.NoError(t, err)
	assert.True(t, dish.IsAvailable)

	require.NoError(t, svc.AssignDishToMenu(context.Background(), res.ID, domain.AssignDishRequest{
		DishID: dish.ID, MenuID: menu.ID,
	}))
	err = svc.AssignDishToMenu(context.Background(), res.ID, domain.AssignDishRequest{
		DishID: dish.ID, MenuID: menu.ID,
	})
	assert.ErrorIs(t, err, domain.ErrDishAlreadyInMenu)

	got, err := svc.GetMenu(context.Background(), res.ID, menu.ID)
	require.NoError(t, err)
	require.Len(t, got.Dishes, 1)
	assert.Equal(t, "Dal Tadka", got.Dishes[0].Name)

	// another restaurant cannot read or delete this menu
	other, err := svc.RegisterRestaurant(context.Background(), domain.RegisterRestaurantRequest{
		Name: "Other", Address: "1 Elsewhere", Phone: "999", Email: "other@example.com",
		Password: "password-two", Cuisine: "Thai",
	})
	require.NoError(t, err)
	_, err = svc.GetMenu(context.Background(), other.ID, menu.ID)
	assert.ErrorIs(t, err, domain.ErrUserNotAllowed)
	assert.ErrorIs(t, svc.DeleteMenu(context.Background(), other.ID, menu.ID), domain.ErrUserNotAllowed)

	require.NoError(t, svc.DeleteMenu(context.Background(), res.ID, menu.ID))
	_, err = svc.GetMenu(context.Background(), res.ID, menu.ID)
	assert.ErrorIs(t, err, domain.ErrMenuNotFound)

	// unassigning via menu deletion keeps the dish itself
	kept, err := svc.GetDish(context.Background(), dish.ID)
	require.NoError(t, err)
	assert.Equal(t, "Dal Tadka", kept.Name)
}

func TestGetMenusDishInsertionOrder(t *testing.T) {
	db := newRestaurantTestDB(t)
	svc := newRestaurantTestService(db)
	res, err := svc.RegisterRestaurant(context.Background(), registerRestaurantRequest())
	require.NoError(t, err)

	menu, err := svc.CreateMenu(context.Background(), res.ID, domain.CreateMenuRequest{MenuType: "Dinner"})
	require.NoError(t, err)
	menuUUID := uuid.MustParse(menu.ID)

	base := time.Date(2025, 3, 14, 12, 0, 0, 0, time.UTC)
	for i, name := range []string{"Zucchini Fry", "Mango Lassi", "Apple Pie"} {
		dish := &entities.Dish{
			RestaurantID: uuid.MustParse(res.ID), MenuID: &menuUUID,
			Name: name, Price: 4, IsAvailable: true,
			Timestamp: entities.Timestamp{CreatedAt: base.Add(time.Duration(i) * time.Hour)},
		}
		require.NoError(t, db.Create(dish).Error)
	}

	menus, err := svc.GetMenus(context.Background(), res.ID)
	require.NoError(t, err)
	require.Len(t, menus, 1)
	require.Len(t, menus[0].Dishes, 3)
	names := make([]string, 0, 3)
	for _, d := range menus[0].Dishes {
		names = append(names, d.Name)
	}
	assert.Equal(t, []string{"Zucchini Fry", "Mango Lassi", "Apple Pie"}, names,
		"dishes keep the order they were added in")

	got, err := svc.GetMenu(context.Background(), res.ID, menu.ID)
	require.NoError(t, err)
	names = names[:0]
	for _, d := range got.Dishes {
		names = append(names, d.Name)
	}
	assert.Equal(t, []string{"Zucchini Fry", "Mango Lassi", "Apple Pie"}, names)
}

func TestRateDishUpdatesAggregate(t *testing.T) {
	db := newRestaurantTestDB(t)
	svc := newRestaurantTestService(db)
	userID, orderID, dish := seedRatingFixture(t, db)

	err := svc.RateDish(context.Background(), userID.String(), orderID.String(), dish.ID.String(),
		domain.RateDishRequest{Rating: 3})
	require.NoError(t, err)

	var item entities.OrderItem
	require.NoError(t, db.Where("order_id = ? AND dish_id = ?", orderID, dish.ID).First(&item).Error)
	require.NotNil(t, item.Rating)
	assert.Equal(t, 3, *item.Rating)

	got, err := svc.GetDish(context.Background(), dish.ID.String())
	require.NoError(t, err)
	assert.InDelta(t, 3, got.Rating, 1e-9, "single rating becomes the average")
}

func TestRateDishAveragesAcrossOrders(t *testing.T) {
	db := newRestaurantTestDB(t)
	svc := newRestaurantTestService(db)
	userID, orderID, dish := seedRatingFixture(t, db)

	second := &entities.Order{UserID: userID, RestaurantID: dish.RestaurantID, SessionID: 4243}
	require.NoError(t, db.Create(second).Error)
	require.NoError(t, db.Create(&entities.OrderItem{
		OrderID: second.ID, DishID: dish.ID, Quantity: 1, Price: 6.5,
	}).Error)

	require.NoError(t, svc.RateDish(context.Background(), userID.String(), orderID.String(), dish.ID.String(),
		domain.RateDishRequest{Rating: 2}))
	require.NoError(t, svc.RateDish(context.Background(), userID.String(), second.ID.String(), dish.ID.String(),
		domain.RateDishRequest{Rating: 5}))

	got, err := svc.GetDish(context.Background(), dish.ID.String())
	require.NoError(t, err)
	assert.InDelta(t, 3.5, got.Rating, 1e-9)
}

func TestRateDishRejectsBadInput(t *testing.T) {
	db := newRestaurantTestDB(t)
	svc := newRestaurantTestService(db)
	userID, orderID, dish := seedRatingFixture(t, db)

	err := svc.RateDish(context.Background(), userID.String(), orderID.String(), dish.ID.String(),
		domain.RateDishRequest{Rating: 6})
	assert.ErrorIs(t, err, domain.ErrInvalidRating)

	err = svc.RateDish(context.Background(), userID.String(), uuid.NewString(), dish.ID.String(),
		domain.RateDishRequest{Rating: 4})
	assert.ErrorIs(t, err, domain.ErrOrderNotFound)

	// another user cannot rate a line from someone else's order
	stranger := &entities.User{Name: "Ravi", Email: "ravi@example.com", Phone: "444", Password: "x"}
	require.NoError(t, db.Create(stranger).Error)
	err = svc.RateDish(context.Background(), stranger.ID.String(), orderID.String(), dish.ID.String(),
		domain.RateDishRequest{Rating: 4})
	assert.ErrorIs(t, err, domain.ErrOrderNotFound)
}

func TestUpdateRestaurant(t *testing.T) {
	db := newRestaurantTestDB(t)
	svc := newRestaurantTestService(db)
	res, err := svc.RegisterRestaurant(context.Background(), registerRestaurantRequest())
	require.NoError(t, err)

	isVegan := true
	require.NoError(t, svc.UpdateRestaurant(context.Background(), res.ID, domain.UpdateRestaurantRequest{
		Name: "Spice Route II", IsVegan: &isVegan,
	}))

	got, err := svc.GetRestaurant(context.Background(), res.ID)
	require.NoError(t, err)
	assert.Equal(t, "Spice Route II", got.Name)
	assert.True(t, got.IsVegan)
	assert.True(t, got.IsHalal, "untouched flags keep their value")
	assert.Equal(t, "12 Curry Lane", got.Address)
}
