package routes

import (
	"DineWise-Backend/domain"
	"DineWise-Backend/internal/api/handlers"
	"DineWise-Backend/internal/middleware"
	"DineWise-Backend/pkg/jwt"

	"github.com/gofiber/fiber/v2"
)

type Config struct {
	App               *fiber.App
	UserHandler       handlers.UserHandler
	RestaurantHandler handlers.RestaurantHandler
	OrderingHandler   handlers.OrderingHandler
	ChatHandler       handlers.ChatHandler
	Middleware        middleware.Middleware
	JWTService        jwt.JWTService
}

func (c *Config) Setup() {
	c.App.Use(c.Middleware.CORSMiddleware())
	c.User()
	c.Restaurant()
	c.Menu()
	c.Dish()
	c.Ordering()
	c.Chat()
	c.GuestRoute()
}

func (c *Config) auth() fiber.Handler {
	return c.Middleware.AuthMiddleware(c.JWTService)
}

func (c *Config) User() {
	user := c.App.Group("/api/v1/users")
	{
		user.Post("/register", c.UserHandler.Register)
		user.Post("/login", c.UserHandler.Login)
		user.Get("/me", c.auth(), c.UserHandler.Me)
		user.Patch("/update", c.auth(), c.UserHandler.Update)
		user.Delete("/delete", c.auth(), c.UserHandler.Delete)
	}
}

func (c *Config) Restaurant() {
	restaurant := c.App.Group("/api/v1/restaurants")
	{
		restaurant.Post("/register", c.RestaurantHandler.Register)
		restaurant.Post("/login", c.RestaurantHandler.Login)
		restaurant.Get("/:id/landing", c.RestaurantHandler.Landing)
	}

	owner := restaurant.Group("", c.auth(), c.Middleware.OnlyRole(domain.RoleRestaurant))
	{
		owner.Patch("/update", c.RestaurantHandler.Update)
		owner.Delete("/delete", c.RestaurantHandler.Delete)
		owner.Get("/orders", c.RestaurantHandler.GetOrders)
		owner.Get("/orders/open", c.RestaurantHandler.GetOpenOrders)
	}
}

func (c *Config) Menu() {
	menus := c.App.Group("/api/v1/menus", c.auth())

	// a user browsing a menu through their preference filter
	menus.Get("/:id/dishes", c.ChatHandler.GetUserMenu)

	owner := menus.Group("", c.Middleware.OnlyRole(domain.RoleRestaurant))
	{
		owner.Post("", c.RestaurantHandler.CreateMenu)
		owner.Get("", c.RestaurantHandler.GetMenus)
		owner.Post("/assign-dish", c.RestaurantHandler.AssignDish)
		owner.Get("/:id", c.RestaurantHandler.GetMenu)
		owner.Delete("/:id", c.RestaurantHandler.DeleteMenu)
	}
}

func (c *Config) Dish() {
	dishes := c.App.Group("/api/v1/dishes")
	dishes.Get("/:id", c.RestaurantHandler.GetDish)

	owner := dishes.Group("", c.auth(), c.Middleware.OnlyRole(domain.RoleRestaurant))
	{
		owner.Post("", c.RestaurantHandler.CreateDish)
		owner.Get("", c.RestaurantHandler.GetDishes)
	}

	c.App.Post(
		"/api/v1/orders/:orderID/dishes/:dishID/rate",
		c.auth(), c.RestaurantHandler.RateDish,
	)
}

func (c *Config) Ordering() {
	ordering := c.App.Group("/api/v1/ordering", c.auth())
	{
		ordering.Post("/start/:restaurantID", c.OrderingHandler.StartSession)
		ordering.Post("/end/:sessionID", c.OrderingHandler.EndSession)
		ordering.Post("/:sessionID/items", c.OrderingHandler.AddCartItems)
		ordering.Patch("/:sessionID/items", c.OrderingHandler.AdjustQuantity)
		ordering.Delete("/:sessionID/items/:dishID", c.OrderingHandler.RemoveCartItem)
		ordering.Get("/:sessionID/cart", c.OrderingHandler.GetCart)
		ordering.Get("/:sessionID/quantity", c.OrderingHandler.GetCartQuantity)
		ordering.Post("/:sessionID/place", c.OrderingHandler.PlaceOrder)
		ordering.Get("/:sessionID/restaurant", c.OrderingHandler.GetSessionRestaurant)
	}
}

func (c *Config) Chat() {
	chat := c.App.Group("/api/v1/chat", c.auth())
	{
		chat.Post("/:restaurantID", c.ChatHandler.Chat)
		chat.Get("/:restaurantID/sessions/:sessionID", c.ChatHandler.GetSession)
	}
}

func (c *Config) GuestRoute() {
	c.App.Get("/api/ping", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"message": "pong"})
	})
}
