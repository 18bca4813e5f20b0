package ordering

import (
	"DineWise-Backend/domain"
	"DineWise-Backend/entities"
	"DineWise-Backend/pkg/restaurant"
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func newTestDB(t *testing.T) *gorm.DB {
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
		&entities.Cart{},
		&entities.CartItem{},
		&entities.Conversation{},
	))
	return db
}

func seedBase(t *testing.T, db *gorm.DB) (*entities.User, *entities.Restaurant) {
	t.Helper()
	u := &entities.User{Name: "Asha", Email: "asha@example.com", Phone: "111", Password: "x"}
	require.NoError(t, db.Create(u).Error)
	r := &entities.Restaurant{Name: "Spice Route", Email: "spice@example.com", Phone: "222", Password: "x", Cuisine: "Indian"}
	require.NoError(t, db.Create(r).Error)
	return u, r
}

func seedDish(t *testing.T, db *gorm.DB, restaurantID uuid.UUID, name string, price float64) *entities.Dish {
	t.Helper()
	d := &entities.Dish{RestaurantID: restaurantID, Name: name, Price: price, IsAvailable: true}
	require.NoError(t, db.Create(d).Error)
	return d
}

func newTestService(db *gorm.DB, at time.Time) (OrderingService, OrderingRepository) {
	repo := NewOrderingRepository(db)
	svc := NewOrderingService(repo, restaurant.NewRestaurantRepository(db)).(*orderingService)
	svc.now = func() time.Time { return at }
	return svc, repo
}

func startSession(t *testing.T, svc OrderingService, userID, restaurantID string) int64 {
	t.Helper()
	res, err := svc.StartSession(context.Background(), userID, restaurantID)
	require.NoError(t, err)
	return res.SessionID
}

func addItems(t *testing.T, svc OrderingService, sessionID int64, userID string, items ...domain.CartItemRequest) domain.CartTotalResponse {
	t.Helper()
	res, err := svc.AddCartItems(context.Background(), sessionID, userID, domain.AddCartItemsRequest{Items: items})
	require.NoError(t, err)
	return res
}

func TestStartSessionCreatesOrderAndCart(t *testing.T) {
	db := newTestDB(t)
	u, r := seedBase(t, db)
	at := time.Date(2025, 3, 14, 12, 0, 0, 0, time.UTC)
	svc, _ := newTestService(db, at)

	sessionID := startSession(t, svc, u.ID.String(), r.ID.String())
	assert.Equal(t, DeriveSessionID(u.ID.String(), at), sessionID)

	var order entities.Order
	require.NoError(t, db.Where("session_id = ?", sessionID).First(&order).Error)
	assert.True(t, order.IsOpen)
	assert.Equal(t, u.ID, order.UserID)
	assert.Equal(t, r.ID, order.RestaurantID)
	assert.Zero(t, order.TotalCost)

	var cart entities.Cart
	require.NoError(t, db.Where("session_id = ?", sessionID).First(&cart).Error)
	assert.Zero(t, cart.TotalCost)

	var lines int64
	require.NoError(t, db.Model(&entities.CartItem{}).Where("cart_id = ?", cart.ID).Count(&lines).Error)
	assert.Zero(t, lines)
}

func TestStartSessionUnknownRestaurant(t *testing.T) {
	db := newTestDB(t)
	u, _ := seedBase(t, db)
	svc, _ := newTestService(db, time.Now())

	_, err := svc.StartSession(context.Background(), u.ID.String(), uuid.NewString())
	assert.ErrorIs(t, err, domain.ErrRestaurantNotFound)
}

func TestStartSessionClosesPreviousOrders(t *testing.T) {
	db := newTestDB(t)
	u, r := seedBase(t, db)
	at := time.Date(2025, 3, 14, 12, 0, 0, 0, time.UTC)

	svc, _ := newTestService(db, at)
	first := startSession(t, svc, u.ID.String(), r.ID.String())

	svc2, _ := newTestService(db, at.Add(time.Minute))
	second := startSession(t, svc2, u.ID.String(), r.ID.String())
	require.NotEqual(t, first, second)

	var open []entities.Order
	require.NoError(t, db.Where("user_id = ? AND is_open = ?", u.ID, true).Find(&open).Error)
	require.Len(t, open, 1)
	assert.Equal(t, second, open[0].SessionID)
}

func TestStartSessionCollision(t *testing.T) {
	db := newTestDB(t)
	u, r := seedBase(t, db)
	at := time.Date(2025, 3, 14, 12, 0, 0, 0, time.UTC)
	svc, _ := newTestService(db, at)

	startSession(t, svc, u.ID.String(), r.ID.String())
	_, err := svc.StartSession(context.Background(), u.ID.String(), r.ID.String())
	assert.ErrorIs(t, err, domain.ErrSessionCollision)
	assert.Equal(t, domain.KindConflict, domain.Kind(err))
}

func TestAddCartItemsAccumulatesLines(t *testing.T) {
	db := newTestDB(t)
	u, r := seedBase(t, db)
	dish := seedDish(t, db, r.ID, "Paneer Tikka", 5)
	svc, _ := newTestService(db, time.Now())
	sessionID := startSession(t, svc, u.ID.String(), r.ID.String())

	addItems(t, svc, sessionID, u.ID.String(), domain.CartItemRequest{DishID: dish.ID.String(), Quantity: 2})
	res := addItems(t, svc, sessionID, u.ID.String(), domain.CartItemRequest{DishID: dish.ID.String(), Quantity: 1})

	assert.InDelta(t, 15, res.TotalCost, 1e-9)

	cart, err := svc.GetCart(context.Background(), sessionID, u.ID.String())
	require.NoError(t, err)
	require.Len(t, cart.Items, 2, "repeated adds append lines, they never merge")
	assert.Equal(t, 2, cart.Items[0].Quantity)
	assert.Equal(t, 1, cart.Items[1].Quantity)
}

func TestAddCartItemsSnapshotsPrice(t *testing.T) {
	db := newTestDB(t)
	u, r := seedBase(t, db)
	dish := seedDish(t, db, r.ID, "Dal Makhani", 4)
	svc, _ := newTestService(db, time.Now())
	sessionID := startSession(t, svc, u.ID.String(), r.ID.String())

	addItems(t, svc, sessionID, u.ID.String(), domain.CartItemRequest{DishID: dish.ID.String(), Quantity: 1})

	require.NoError(t, db.Model(&entities.Dish{}).Where("id = ?", dish.ID).Update("price", 9).Error)
	res := addItems(t, svc, sessionID, u.ID.String(), domain.CartItemRequest{DishID: dish.ID.String(), Quantity: 1})

	assert.InDelta(t, 13, res.TotalCost, 1e-9)

	cart, err := svc.GetCart(context.Background(), sessionID, u.ID.String())
	require.NoError(t, err)
	require.Len(t, cart.Items, 2)
	assert.InDelta(t, 4, cart.Items[0].Price, 1e-9, "first line keeps the price at add time")
	assert.InDelta(t, 9, cart.Items[1].Price, 1e-9)
}

func TestAddCartItemsRejectsBeforeWriting(t *testing.T) {
	db := newTestDB(t)
	u, r := seedBase(t, db)
	dish := seedDish(t, db, r.ID, "Biryani", 6)
	svc, _ := newTestService(db, time.Now())
	sessionID := startSession(t, svc, u.ID.String(), r.ID.String())

	_, err := svc.AddCartItems(context.Background(), sessionID, u.ID.String(), domain.AddCartItemsRequest{
		Items: []domain.CartItemRequest{
			{DishID: dish.ID.String(), Quantity: 1},
			{DishID: uuid.NewString(), Quantity: 1},
		},
	})
	assert.ErrorIs(t, err, domain.ErrDishNotFound)

	cart, err := svc.GetCart(context.Background(), sessionID, u.ID.String())
	require.NoError(t, err)
	assert.Empty(t, cart.Items, "a rejected batch must not leave partial lines")
	assert.Zero(t, cart.TotalCost)
}

func TestAddCartItemsUnknownSession(t *testing.T) {
	db := newTestDB(t)
	u, r := seedBase(t, db)
	dish := seedDish(t, db, r.ID, "Biryani", 6)
	svc, _ := newTestService(db, time.Now())

	_, err := svc.AddCartItems(context.Background(), 1234567, u.ID.String(), domain.AddCartItemsRequest{
		Items: []domain.CartItemRequest{{DishID: dish.ID.String(), Quantity: 1}},
	})
	assert.ErrorIs(t, err, domain.ErrSessionNotFound)
}

func TestAdjustQuantity(t *testing.T) {
	db := newTestDB(t)
	u, r := seedBase(t, db)
	dish := seedDish(t, db, r.ID, "Gulab Jamun", 3)
	svc, _ := newTestService(db, time.Now())
	sessionID := startSession(t, svc, u.ID.String(), r.ID.String())
	addItems(t, svc, sessionID, u.ID.String(), domain.CartItemRequest{DishID: dish.ID.String(), Quantity: 1})

	res, err := svc.AdjustQuantity(context.Background(), sessionID, u.ID.String(), domain.AdjustQuantityRequest{
		DishID: dish.ID.String(), Operation: domain.CartOperationIncrease,
	})
	require.NoError(t, err)
	assert.InDelta(t, 6, res.TotalCost, 1e-9)

	res, err = svc.AdjustQuantity(context.Background(), sessionID, u.ID.String(), domain.AdjustQuantityRequest{
		DishID: dish.ID.String(), Operation: domain.CartOperationDecrease,
	})
	require.NoError(t, err)
	assert.InDelta(t, 3, res.TotalCost, 1e-9)

	cart, err := svc.GetCart(context.Background(), sessionID, u.ID.String())
	require.NoError(t, err)
	require.Len(t, cart.Items, 1)
	assert.Equal(t, 1, cart.Items[0].Quantity)
}

func TestAdjustQuantityDecrementAtOneRemovesLine(t *testing.T) {
	db := newTestDB(t)
	u, r := seedBase(t, db)
	dish := seedDish(t, db, r.ID, "Lassi", 2)
	svc, _ := newTestService(db, time.Now())
	sessionID := startSession(t, svc, u.ID.String(), r.ID.String())
	addItems(t, svc, sessionID, u.ID.String(), domain.CartItemRequest{DishID: dish.ID.String(), Quantity: 1})

	res, err := svc.AdjustQuantity(context.Background(), sessionID, u.ID.String(), domain.AdjustQuantityRequest{
		DishID: dish.ID.String(), Operation: domain.CartOperationDecrease,
	})
	require.NoError(t, err)
	assert.Zero(t, res.TotalCost)

	cart, err := svc.GetCart(context.Background(), sessionID, u.ID.String())
	require.NoError(t, err)
	assert.Empty(t, cart.Items, "a quantity of zero can never settle")

	// the line is gone, a further decrement has nothing to touch
	_, err = svc.AdjustQuantity(context.Background(), sessionID, u.ID.String(), domain.AdjustQuantityRequest{
		DishID: dish.ID.String(), Operation: domain.CartOperationDecrease,
	})
	assert.ErrorIs(t, err, domain.ErrCartLineNotFound)
}

func TestRemoveCartItemSubtractsSubtotal(t *testing.T) {
	db := newTestDB(t)
	u, r := seedBase(t, db)
	first := seedDish(t, db, r.ID, "Thali", 5)
	second := seedDish(t, db, r.ID, "Chai", 1)
	svc, _ := newTestService(db, time.Now())
	sessionID := startSession(t, svc, u.ID.String(), r.ID.String())
	addItems(t, svc, sessionID, u.ID.String(),
		domain.CartItemRequest{DishID: first.ID.String(), Quantity: 3},
		domain.CartItemRequest{DishID: second.ID.String(), Quantity: 2},
	)

	require.NoError(t, svc.RemoveCartItem(context.Background(), sessionID, u.ID.String(), first.ID.String()))

	cart, err := svc.GetCart(context.Background(), sessionID, u.ID.String())
	require.NoError(t, err)
	require.Len(t, cart.Items, 1)
	assert.InDelta(t, 2, cart.TotalCost, 1e-9, "removal subtracts price*quantity, not just the unit price")
}

func TestGetCartQuantity(t *testing.T) {
	db := newTestDB(t)
	u, r := seedBase(t, db)
	dish := seedDish(t, db, r.ID, "Samosa", 1)
	svc, _ := newTestService(db, time.Now())

	res, err := svc.GetCartQuantity(context.Background(), 9999999, u.ID.String())
	require.NoError(t, err)
	assert.Zero(t, res.Quantity, "a missing cart counts as zero, not an error")

	sessionID := startSession(t, svc, u.ID.String(), r.ID.String())
	addItems(t, svc, sessionID, u.ID.String(), domain.CartItemRequest{DishID: dish.ID.String(), Quantity: 2})
	addItems(t, svc, sessionID, u.ID.String(), domain.CartItemRequest{DishID: dish.ID.String(), Quantity: 3})

	res, err = svc.GetCartQuantity(context.Background(), sessionID, u.ID.String())
	require.NoError(t, err)
	assert.Equal(t, 5, res.Quantity)
}

func TestPlaceOrderCommitsCart(t *testing.T) {
	db := newTestDB(t)
	u, r := seedBase(t, db)
	first := seedDish(t, db, r.ID, "Thali", 5)
	second := seedDish(t, db, r.ID, "Chai", 1)
	svc, _ := newTestService(db, time.Now())
	sessionID := startSession(t, svc, u.ID.String(), r.ID.String())
	addItems(t, svc, sessionID, u.ID.String(),
		domain.CartItemRequest{DishID: first.ID.String(), Quantity: 2},
		domain.CartItemRequest{DishID: second.ID.String(), Quantity: 1},
	)

	require.NoError(t, svc.PlaceOrder(context.Background(), sessionID, u.ID.String()))

	var order entities.Order
	require.NoError(t, db.Where("session_id = ?", sessionID).First(&order).Error)
	assert.InDelta(t, 11, order.TotalCost, 1e-9)
	assert.True(t, order.IsOpen, "committing does not end the session")

	var items []entities.OrderItem
	require.NoError(t, db.Where("order_id = ?", order.ID).Find(&items).Error)
	require.Len(t, items, 2)

	cart, err := svc.GetCart(context.Background(), sessionID, u.ID.String())
	require.NoError(t, err)
	assert.Empty(t, cart.Items, "cart lines are consumed by the commit")
	assert.Zero(t, cart.TotalCost)

	// a second round on the same session adds on top of the order total
	addItems(t, svc, sessionID, u.ID.String(), domain.CartItemRequest{DishID: second.ID.String(), Quantity: 2})
	require.NoError(t, svc.PlaceOrder(context.Background(), sessionID, u.ID.String()))
	require.NoError(t, db.Where("session_id = ?", sessionID).First(&order).Error)
	assert.InDelta(t, 13, order.TotalCost, 1e-9)
}

func TestPlaceOrderRejectsClosedSession(t *testing.T) {
	db := newTestDB(t)
	u, r := seedBase(t, db)
	dish := seedDish(t, db, r.ID, "Thali", 5)
	svc, _ := newTestService(db, time.Now())
	sessionID := startSession(t, svc, u.ID.String(), r.ID.String())
	addItems(t, svc, sessionID, u.ID.String(), domain.CartItemRequest{DishID: dish.ID.String(), Quantity: 1})

	require.NoError(t, svc.EndSession(context.Background(), sessionID, u.ID.String()))

	err := svc.PlaceOrder(context.Background(), sessionID, u.ID.String())
	assert.ErrorIs(t, err, domain.ErrSessionNotFound)

	var order entities.Order
	require.NoError(t, db.Where("session_id = ?", sessionID).First(&order).Error)
	assert.Zero(t, order.TotalCost, "a closed session takes no commit")

	var itemCount int64
	require.NoError(t, db.Model(&entities.OrderItem{}).Count(&itemCount).Error)
	assert.Zero(t, itemCount)
}

// faultyRepo fails ClearCart inside the commit transaction, after the order
// lines have been written.
type faultyRepo struct {
	OrderingRepository
}

func (f *faultyRepo) WithTx(ctx context.Context, fn func(OrderingRepository) error) error {
	return f.OrderingRepository.WithTx(ctx, func(txRepo OrderingRepository) error {
		return fn(&faultyRepo{OrderingRepository: txRepo})
	})
}

func (f *faultyRepo) ClearCart(ctx context.Context, cartID uuid.UUID) error {
	return errors.New("storage failure")
}

func TestPlaceOrderRollsBackOnFailure(t *testing.T) {
	db := newTestDB(t)
	u, r := seedBase(t, db)
	dish := seedDish(t, db, r.ID, "Thali", 5)
	svc, repo := newTestService(db, time.Now())
	sessionID := startSession(t, svc, u.ID.String(), r.ID.String())
	addItems(t, svc, sessionID, u.ID.String(), domain.CartItemRequest{DishID: dish.ID.String(), Quantity: 2})

	broken := NewOrderingService(&faultyRepo{OrderingRepository: repo}, restaurant.NewRestaurantRepository(db))
	err := broken.PlaceOrder(context.Background(), sessionID, u.ID.String())
	require.Error(t, err)

	var itemCount int64
	require.NoError(t, db.Model(&entities.OrderItem{}).Count(&itemCount).Error)
	assert.Zero(t, itemCount, "a failed commit must not leave order lines behind")

	var order entities.Order
	require.NoError(t, db.Where("session_id = ?", sessionID).First(&order).Error)
	assert.Zero(t, order.TotalCost)

	cart, err := svc.GetCart(context.Background(), sessionID, u.ID.String())
	require.NoError(t, err)
	require.Len(t, cart.Items, 1)
	assert.InDelta(t, 10, cart.TotalCost, 1e-9)
}

func TestEndSession(t *testing.T) {
	db := newTestDB(t)
	u, r := seedBase(t, db)
	svc, _ := newTestService(db, time.Now())
	sessionID := startSession(t, svc, u.ID.String(), r.ID.String())

	require.NoError(t, svc.EndSession(context.Background(), sessionID, u.ID.String()))

	var order entities.Order
	require.NoError(t, db.Where("session_id = ?", sessionID).First(&order).Error)
	assert.False(t, order.IsOpen)

	err := svc.EndSession(context.Background(), sessionID+1, u.ID.String())
	assert.ErrorIs(t, err, domain.ErrOrderNotFound)
}

func TestRestaurantFromSession(t *testing.T) {
	db := newTestDB(t)
	u, r := seedBase(t, db)
	svc, _ := newTestService(db, time.Now())
	sessionID := startSession(t, svc, u.ID.String(), r.ID.String())

	res, err := svc.RestaurantFromSession(context.Background(), sessionID, u.ID.String())
	require.NoError(t, err)
	assert.Equal(t, r.ID.String(), res.RestaurantID)
}

func TestGetRestaurantOrders(t *testing.T) {
	db := newTestDB(t)
	u, r := seedBase(t, db)
	dish := seedDish(t, db, r.ID, "Thali", 5)
	at := time.Date(2025, 3, 14, 12, 0, 0, 0, time.UTC)

	svc, _ := newTestService(db, at)
	first := startSession(t, svc, u.ID.String(), r.ID.String())
	addItems(t, svc, first, u.ID.String(), domain.CartItemRequest{DishID: dish.ID.String(), Quantity: 1})
	require.NoError(t, svc.PlaceOrder(context.Background(), first, u.ID.String()))
	require.NoError(t, svc.EndSession(context.Background(), first, u.ID.String()))

	svc2, _ := newTestService(db, at.Add(time.Minute))
	startSession(t, svc2, u.ID.String(), r.ID.String())

	all, err := svc.GetRestaurantOrders(context.Background(), r.ID.String(), false)
	require.NoError(t, err)
	assert.Len(t, all, 2)

	open, err := svc.GetRestaurantOrders(context.Background(), r.ID.String(), true)
	require.NoError(t, err)
	require.Len(t, open, 1)
	assert.True(t, open[0].IsOpen)
}

// The full session walkthrough: two dishes in, one unit backed out, commit.
func TestOrderingScenario(t *testing.T) {
	db := newTestDB(t)
	u, r := seedBase(t, db)
	mains := seedDish(t, db, r.ID, "Butter Chicken", 5)
	side := seedDish(t, db, r.ID, "Naan", 3)
	svc, _ := newTestService(db, time.Now())
	sessionID := startSession(t, svc, u.ID.String(), r.ID.String())

	res := addItems(t, svc, sessionID, u.ID.String(),
		domain.CartItemRequest{DishID: mains.ID.String(), Quantity: 2},
		domain.CartItemRequest{DishID: side.ID.String(), Quantity: 1},
	)
	assert.InDelta(t, 13, res.TotalCost, 1e-9)

	res, err := svc.AdjustQuantity(context.Background(), sessionID, u.ID.String(), domain.AdjustQuantityRequest{
		DishID: mains.ID.String(), Operation: domain.CartOperationDecrease,
	})
	require.NoError(t, err)
	assert.InDelta(t, 8, res.TotalCost, 1e-9)

	require.NoError(t, svc.PlaceOrder(context.Background(), sessionID, u.ID.String()))
	require.NoError(t, svc.EndSession(context.Background(), sessionID, u.ID.String()))

	var order entities.Order
	require.NoError(t, db.Where("session_id = ?", sessionID).First(&order).Error)
	assert.InDelta(t, 8, order.TotalCost, 1e-9)
	assert.False(t, order.IsOpen)
}
