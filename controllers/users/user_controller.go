package controllers

import (
	"context"
	"errors"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v4"
	"golang.org/x/crypto/bcrypt"

	"github.com/Yashmaurya7/ecommerce-website/models"
	"github.com/Yashmaurya7/ecommerce-website/repository"
	"github.com/Yashmaurya7/ecommerce-website/responses"
)

var validate = validator.New()

type registerRequest struct {
	Name     string `json:"name" validate:"required"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=8"`
}

type loginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// UserController issues the JWTs the order endpoints authenticate with.
type UserController struct {
	users     repository.UserRepository
	jwtSecret string
}

func NewUserController(users repository.UserRepository, jwtSecret string) *UserController {
	return &UserController{users: users, jwtSecret: jwtSecret}
}

// Register handles POST /register.
func (uc *UserController) Register(c *fiber.Ctx) error {
	ctx, cancel := context.WithTimeout(c.Context(), 10*time.Second)
	defer cancel()

	var req registerRequest
	if err := c.BodyParser(&req); err != nil {
		return responses.NewError(fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validate.Struct(&req); err != nil {
		return responses.NewError(fiber.StatusBadRequest, err.Error())
	}

	if _, err := uc.users.FindByEmail(ctx, req.Email); err == nil {
		return responses.NewError(fiber.StatusBadRequest, "User with this email already exists")
	} else if !errors.Is(err, repository.ErrNotFound) {
		return err
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return err
	}

	user, err := uc.users.Insert(ctx, &models.User{
		Name:      req.Name,
		Email:     req.Email,
		Password:  string(hashed),
		Role:      models.RoleUser,
		CreatedAt: time.Now(),
	})
	if err != nil {
		return err
	}

	token, err := uc.issueToken(user)
	if err != nil {
		return err
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"success": true,
		"token":   token,
	})
}

// Login handles POST /login.
func (uc *UserController) Login(c *fiber.Ctx) error {
	ctx, cancel := context.WithTimeout(c.Context(), 10*time.Second)
	defer cancel()

	var req loginRequest
	if err := c.BodyParser(&req); err != nil {
		return responses.NewError(fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validate.Struct(&req); err != nil {
		return responses.NewError(fiber.StatusBadRequest, err.Error())
	}

	user, err := uc.users.FindByEmail(ctx, req.Email)
	if errors.Is(err, repository.ErrNotFound) {
		return responses.NewError(fiber.StatusUnauthorized, "Invalid email or password")
	}
	if err != nil {
		return err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(req.Password)); err != nil {
		return responses.NewError(fiber.StatusUnauthorized, "Invalid email or password")
	}

	token, err := uc.issueToken(user)
	if err != nil {
		return err
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"success": true,
		"token":   token,
	})
}

func (uc *UserController) issueToken(user *models.User) (string, error) {
	claims := jwt.MapClaims{
		"id":   user.ID.Hex(),
		"role": user.Role,
		"exp":  time.Now().Add(72 * time.Hour).Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(uc.jwtSecret))
}
