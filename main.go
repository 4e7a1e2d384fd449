package main

import (
	"log"

	"github.com/gofiber/adaptor/v2"
	"github.com/gofiber/fiber/v2"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/Yashmaurya7/ecommerce-website/configs"
	orderController "github.com/Yashmaurya7/ecommerce-website/controllers/orders"
	productController "github.com/Yashmaurya7/ecommerce-website/controllers/products"
	userController "github.com/Yashmaurya7/ecommerce-website/controllers/users"
	"github.com/Yashmaurya7/ecommerce-website/middlewares"
	"github.com/Yashmaurya7/ecommerce-website/rabbitmq"
	"github.com/Yashmaurya7/ecommerce-website/repository"
	"github.com/Yashmaurya7/ecommerce-website/responses"
	"github.com/Yashmaurya7/ecommerce-website/routes"
	"github.com/Yashmaurya7/ecommerce-website/services"
)

func main() {
	client := configs.ConnectDB()

	orders := repository.NewMongoOrderRepository(configs.GetCollection(client, "orders"))
	products := repository.NewMongoProductRepository(configs.GetCollection(client, "products"))
	users := repository.NewMongoUserRepository(configs.GetCollection(client, "users"))

	var events services.EventPublisher
	if url := configs.EnvRabbitMQURL(); url != "" {
		publisher, err := rabbitmq.NewPublisher(url)
		if err != nil {
			log.Fatalf("RabbitMQ initialization failed: %v", err)
		}
		defer publisher.Close()
		events = publisher
	}

	orderSvc := services.NewOrderService(orders, products, users, events)

	jwtSecret := configs.EnvJWTSecret()

	app := fiber.New(fiber.Config{
		ErrorHandler: responses.ErrorHandler,
	})

	app.Use(middlewares.Prometheus())
	app.Get("/metrics", adaptor.HTTPHandler(promhttp.Handler()))
	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok"})
	})

	api := app.Group("/api/v1")
	routes.OrderRoutes(api, orderController.NewOrderController(orderSvc), jwtSecret)
	routes.ProductRoutes(api, productController.NewProductController(products), jwtSecret)
	routes.UserRoutes(api, userController.NewUserController(users, jwtSecret))

	log.Fatal(app.Listen(":" + configs.EnvPort()))
}
