package controllers

import (
	"time"

	"billxe-app/config"
	"billxe-app/controllers/idgen"

	"github.com/go-playground/validator"
	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"
)

var validate = validator.New()

type AuthController struct{}

func NewAuthController() *AuthController {
	return &AuthController{}
}

type loginInput struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

// Login so khớp tài khoản vận hành trong .env và phát JWT
func (c *AuthController) Login(ctx *fiber.Ctx) error {
	var input loginInput
	if err := ctx.BodyParser(&input); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}
	if err := validate.Struct(input); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	if input.Username != config.AdminUser || input.Password != config.AdminPassword {
		return ctx.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"success": false,
			"message": "Invalid username or password",
		})
	}

	claims := jwt.MapClaims{
		"user":       input.Username,
		"session_id": idgen.SessionID(),
		"exp":        time.Now().Add(time.Duration(config.JWTExpiration) * time.Second).Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(config.JWTSecret))
	if err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	return ctx.Status(fiber.StatusOK).JSON(fiber.Map{
		"success": true,
		"message": "Login successful",
		"data":    fiber.Map{"token": signed},
	})
}
