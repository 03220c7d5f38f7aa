package controllers

import (
	"billxe-app/repositories"
	"billxe-app/utils"

	"github.com/gofiber/fiber/v2"
)

type BillController struct {
	Repo *repositories.Repo
}

func NewBillController(repo *repositories.Repo) *BillController {
	return &BillController{Repo: repo}
}

func (c *BillController) GetPage(ctx *fiber.Ctx) error {
	page := ctx.QueryInt("page", 1)
	pageSize := ctx.QueryInt("page_size", 20)

	rows, total, headers, err := c.Repo.GetBillsPage(page, pageSize)
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

// GetUnassigned trả về các bill chưa xếp đủ số lượng
func (c *BillController) GetUnassigned(ctx *fiber.Ctx) error {
	rows, err := c.Repo.ViewUnassigned()
	if err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	return ctx.Status(fiber.StatusOK).JSON(fiber.Map{"success": true, "message": "Pending bills", "data": rows})
}

// SendUnassignedReport gửi báo cáo đối soát qua email
func (c *BillController) SendUnassignedReport(ctx *fiber.Ctx) error {
	rows, err := c.Repo.ViewUnassigned()
	if err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	if err := utils.SendUnassignedReport(rows); err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	return ctx.Status(fiber.StatusOK).JSON(fiber.Map{"success": true, "message": "Report sent", "data": len(rows)})
}
