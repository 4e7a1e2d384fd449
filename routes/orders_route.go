package routes

import (
	"github.com/gofiber/fiber/v2"

	orderController "github.com/Yashmaurya7/ecommerce-website/controllers/orders"
	"github.com/Yashmaurya7/ecommerce-website/middlewares"
)

func OrderRoutes(api fiber.Router, oc *orderController.OrderController, jwtSecret string) {
	auth := middlewares.Auth(jwtSecret)
	admin := middlewares.AdminOnly()

	api.Post("/order/new", auth, oc.NewOrder)
	api.Get("/order/:id", auth, admin, oc.GetOrder)
	api.Get("/orders/me", auth, oc.MyOrders)
	api.Get("/admin/orders", auth, admin, oc.GetAllOrders)
	api.Put("/admin/order/:id", auth, admin, oc.UpdateOrder)
	api.Delete("/admin/order/:id", auth, admin, oc.DeleteOrder)
}
