package routes

import (
	"github.com/gofiber/fiber/v2"

	productController "github.com/Yashmaurya7/ecommerce-website/controllers/products"
	"github.com/Yashmaurya7/ecommerce-website/middlewares"
)

func ProductRoutes(api fiber.Router, pc *productController.ProductController, jwtSecret string) {
	auth := middlewares.Auth(jwtSecret)
	admin := middlewares.AdminOnly()

	api.Post("/admin/product/new", auth, admin, pc.NewProduct)
	api.Get("/products", pc.GetAllProducts)
	api.Get("/product/:id", pc.GetProduct)
}
