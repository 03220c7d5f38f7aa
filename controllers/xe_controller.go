package controllers

import (
	"billxe-app/repositories"

	"github.com/gofiber/fiber/v2"
)

type XeController struct {
	Repo *repositories.Repo
}

func NewXeController(repo *repositories.Repo) *XeController {
	return &XeController{Repo: repo}
}

func (c *XeController) Create(ctx *fiber.Ctx) error {
	var input repositories.CreateXeInput
	if err := ctx.BodyParser(&input); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}
	if err := validate.Struct(input); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	xe, err := c.Repo.CreateXe(input)
	if err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	return ctx.Status(fiber.StatusOK).JSON(fiber.Map{"success": true, "message": "Xe created successfully", "data": xe})
}

// View trả về xe kèm các dòng xếp hàng đã sort theo STT
func (c *XeController) View(ctx *fiber.Ctx) error {
	xeID := ctx.Params("id")

	xe, items, err := c.Repo.ViewXe(xeID)
	if err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}
	if xe == nil {
		return ctx.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Xe not found"})
	}

	return ctx.Status(fiber.StatusOK).JSON(fiber.Map{
		"success": true,
		"message": "Xe found",
		"data":    fiber.Map{"xe": xe, "items": items},
	})
}

func (c *XeController) GetPage(ctx *fiber.Ctx) error {
	page := ctx.QueryInt("page", 1)
	pageSize := ctx.QueryInt("page_size", 20)

	rows, total, headers, err := c.Repo.GetXePage(page, pageSize)
	if err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	return ctx.Status(fiber.StatusOK).JSON(fiber.Map{
		"success": true,
		"data":    rows,
		"total":   total,
		"headers": headers,
	})
}

// EnsureSchema tạo sheet Xe và XepHang nếu chưa có
func (c *XeController) EnsureSchema(ctx *fiber.Ctx) error {
	if err := c.Repo.EnsureSchema(); err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}
	return ctx.Status(fiber.StatusOK).JSON(fiber.Map{"success": true, "message": "Schema initialized"})
}
