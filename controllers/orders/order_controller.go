package controllers

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/Yashmaurya7/ecommerce-website/middlewares"
	"github.com/Yashmaurya7/ecommerce-website/models"
	"github.com/Yashmaurya7/ecommerce-website/responses"
	"github.com/Yashmaurya7/ecommerce-website/services"
)

var validate = validator.New()

type updateOrderRequest struct {
	Status models.OrderStatus `json:"status" validate:"required"`
}

// OrderController is the HTTP layer over the order service.
type OrderController struct {
	svc *services.OrderService
}

func NewOrderController(svc *services.OrderService) *OrderController {
	return &OrderController{svc: svc}
}

// NewOrder handles POST /order/new.
func (oc *OrderController) NewOrder(c *fiber.Ctx) error {
	ctx, cancel := context.WithTimeout(c.Context(), 10*time.Second)
	defer cancel()

	userID, err := actingUserID(c)
	if err != nil {
		return err
	}

	var input services.CreateOrderInput
	if err := c.BodyParser(&input); err != nil {
		return responses.NewError(fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validate.Struct(&input); err != nil {
		return responses.NewError(fiber.StatusBadRequest, err.Error())
	}

	order, err := oc.svc.Create(ctx, input, userID)
	if err != nil {
		middlewares.RecordOrderOperation("create", false)
		return err
	}

	middlewares.RecordOrderOperation("create", true)
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"success": true,
		"order":   order,
	})
}

// GetOrder handles GET /order/:id.
func (oc *OrderController) GetOrder(c *fiber.Ctx) error {
	ctx, cancel := context.WithTimeout(c.Context(), 10*time.Second)
	defer cancel()

	orderID, err := primitive.ObjectIDFromHex(c.Params("id"))
	if err != nil {
		return responses.NewError(fiber.StatusBadRequest, "Invalid order ID format")
	}

	order, err := oc.svc.Get(ctx, orderID)
	if err != nil {
		middlewares.RecordOrderOperation("get", false)
		return mapOrderError(err, c.Params("id"))
	}

	middlewares.RecordOrderOperation("get", true)
	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"success": true,
		"order":   order,
	})
}

// MyOrders handles GET /orders/me.
func (oc *OrderController) MyOrders(c *fiber.Ctx) error {
	ctx, cancel := context.WithTimeout(c.Context(), 10*time.Second)
	defer cancel()

	userID, err := actingUserID(c)
	if err != nil {
		return err
	}

	orders, err := oc.svc.ListByUser(ctx, userID)
	if err != nil {
		middlewares.RecordOrderOperation("list", false)
		return err
	}

	middlewares.RecordOrderOperation("list", true)
	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"success": true,
		"orders":  orders,
	})
}

// GetAllOrders handles GET /admin/orders.
func (oc *OrderController) GetAllOrders(c *fiber.Ctx) error {
	ctx, cancel := context.WithTimeout(c.Context(), 10*time.Second)
	defer cancel()

	orders, totalAmount, err := oc.svc.ListAll(ctx)
	if err != nil {
		middlewares.RecordOrderOperation("list_all", false)
		return err
	}

	middlewares.RecordOrderOperation("list_all", true)
	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"success":     true,
		"totalAmount": totalAmount,
		"orders":      orders,
	})
}

// UpdateOrder handles PUT /admin/order/:id.
func (oc *OrderController) UpdateOrder(c *fiber.Ctx) error {
	ctx, cancel := context.WithTimeout(c.Context(), 10*time.Second)
	defer cancel()

	orderID, err := primitive.ObjectIDFromHex(c.Params("id"))
	if err != nil {
		return responses.NewError(fiber.StatusBadRequest, "Invalid order ID format")
	}

	var req updateOrderRequest
	if err := c.BodyParser(&req); err != nil {
		return responses.NewError(fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validate.Struct(&req); err != nil {
		return responses.NewError(fiber.StatusBadRequest, err.Error())
	}

	if err := oc.svc.UpdateStatus(ctx, orderID, req.Status); err != nil {
		middlewares.RecordOrderOperation("update_status", false)
		return mapOrderError(err, c.Params("id"))
	}

	middlewares.RecordOrderOperation("update_status", true)
	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"success": true,
	})
}

// DeleteOrder handles DELETE /admin/order/:id.
func (oc *OrderController) DeleteOrder(c *fiber.Ctx) error {
	ctx, cancel := context.WithTimeout(c.Context(), 10*time.Second)
	defer cancel()

	orderID, err := primitive.ObjectIDFromHex(c.Params("id"))
	if err != nil {
		return responses.NewError(fiber.StatusBadRequest, "Invalid order ID format")
	}

	if err := oc.svc.Delete(ctx, orderID); err != nil {
		middlewares.RecordOrderOperation("delete", false)
		return mapOrderError(err, c.Params("id"))
	}

	middlewares.RecordOrderOperation("delete", true)
	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"success": true,
	})
}

// actingUserID reads the authenticated user id stored by the auth
// middleware.
func actingUserID(c *fiber.Ctx) (primitive.ObjectID, error) {
	userId, ok := c.Locals("userId").(string)
	if !ok || userId == "" {
		return primitive.NilObjectID, responses.NewError(fiber.StatusUnauthorized, "User ID not found in token")
	}

	userID, err := primitive.ObjectIDFromHex(userId)
	if err != nil {
		return primitive.NilObjectID, responses.NewError(fiber.StatusBadRequest, "Invalid user ID format")
	}
	return userID, nil
}

// mapOrderError translates service errors into the uniform 400 responses
// the API contract promises.
func mapOrderError(err error, orderID string) error {
	switch {
	case errors.Is(err, services.ErrOrderNotFound):
		return responses.NewError(fiber.StatusBadRequest, fmt.Sprintf("No order found with order ID: %s", orderID))
	case errors.Is(err, services.ErrAlreadyDelivered):
		return responses.NewError(fiber.StatusBadRequest, "You have already delivered this order")
	case errors.Is(err, services.ErrInvalidStatus):
		return responses.NewError(fiber.StatusBadRequest, "Invalid order status")
	}
	return err
}
