package controllers

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/Yashmaurya7/ecommerce-website/models"
	"github.com/Yashmaurya7/ecommerce-website/repository"
	"github.com/Yashmaurya7/ecommerce-website/responses"
)

var validate = validator.New()

// ProductController serves the product catalog the order flow depends on.
type ProductController struct {
	products repository.ProductRepository
}

func NewProductController(products repository.ProductRepository) *ProductController {
	return &ProductController{products: products}
}

// NewProduct handles POST /admin/product/new.
func (pc *ProductController) NewProduct(c *fiber.Ctx) error {
	ctx, cancel := context.WithTimeout(c.Context(), 10*time.Second)
	defer cancel()

	var product models.Product
	if err := c.BodyParser(&product); err != nil {
		return responses.NewError(fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validate.Struct(&product); err != nil {
		return responses.NewError(fiber.StatusBadRequest, err.Error())
	}

	created, err := pc.products.Insert(ctx, &product)
	if err != nil {
		return err
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"success": true,
		"product": created,
	})
}

// GetAllProducts handles GET /products.
func (pc *ProductController) GetAllProducts(c *fiber.Ctx) error {
	ctx, cancel := context.WithTimeout(c.Context(), 10*time.Second)
	defer cancel()

	products, err := pc.products.FindAll(ctx)
	if err != nil {
		return err
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"success":  true,
		"products": products,
	})
}

// GetProduct handles GET /product/:id.
func (pc *ProductController) GetProduct(c *fiber.Ctx) error {
	ctx, cancel := context.WithTimeout(c.Context(), 10*time.Second)
	defer cancel()

	productID, err := primitive.ObjectIDFromHex(c.Params("id"))
	if err != nil {
		return responses.NewError(fiber.StatusBadRequest, "Invalid product ID format")
	}

	product, err := pc.products.FindByID(ctx, productID)
	if errors.Is(err, repository.ErrNotFound) {
		return responses.NewError(fiber.StatusBadRequest, fmt.Sprintf("No product found with product ID: %s", c.Params("id")))
	}
	if err != nil {
		return err
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"success": true,
		"product": product,
	})
}
