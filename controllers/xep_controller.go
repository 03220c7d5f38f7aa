package controllers

import (
	"billxe-app/repositories"

	"github.com/gofiber/fiber/v2"
)

type XepController struct {
	Repo *repositories.Repo
}

func NewXepController(repo *repositories.Repo) *XepController {
	return &XepController{Repo: repo}
}

type xepInput struct {
	XeID       string  `json:"xe_id" validate:"required"`
	BillID     string  `json:"bill_id" validate:"required"`
	SoLuong    float64 `json:"so_luong" validate:"required"`
	STT        int     `json:"stt"`
	NgayDuKien string  `json:"ngay_du_kien"`
}

// Create ghi thêm một dòng xếp hàng vào sổ
func (c *XepController) Create(ctx *fiber.Ctx) error {
	var input xepInput
	if err := ctx.BodyParser(&input); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}
	if err := validate.Struct(input); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}
	if input.STT == 0 {
		input.STT = 1
	}

	xh, err := c.Repo.AddXep(input.XeID, input.BillID, input.SoLuong, input.STT, input.NgayDuKien)
	if err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	return ctx.Status(fiber.StatusOK).JSON(fiber.Map{"success": true, "message": "XepHang created successfully", "data": xh})
}
