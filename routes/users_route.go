package routes

import (
	"github.com/gofiber/fiber/v2"

	userController "github.com/Yashmaurya7/ecommerce-website/controllers/users"
)

func UserRoutes(api fiber.Router, uc *userController.UserController) {
	api.Post("/register", uc.Register)
	api.Post("/login", uc.Login)
}
