// handlers/industry_routes.go
package handlers

import (
	"product-auth-system/services"

	"github.com/gofiber/fiber/v2"
)

// SetupIndustryRoutes exposes the static industry catalog. All endpoints are
// public read-only lookups against in-memory data.
func SetupIndustryRoutes(app *fiber.App, industryService *services.IndustryService) {
	app.Get("/industries", func(c *fiber.Ctx) error {
		var summaries []fiber.Map
		for _, p := range industryService.AllIndustries() {
			summaries = append(summaries, fiber.Map{
				"id":          p.ID,
				"name":        p.Name,
				"description": p.Description,
				"icon":        p.Icon,
				"market_size": p.MarketSize,
			})
		}
		return c.JSON(fiber.Map{
			"industries":        summaries,
			"total_market_size": industryService.TotalMarketSize(),
		})
	})

	app.Get("/industries/:id", func(c *fiber.Ctx) error {
		profile, ok := industryService.GetIndustry(c.Params("id"))
		if !ok {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "industry not found"})
		}
		return c.JSON(profile)
	})

	app.Get("/industries/:id/workflow", func(c *fiber.Ctx) error {
		// Unknown ids fall back to the default profile, same as the classifier
		return c.JSON(fiber.Map{
			"industry_id": c.Params("id"),
			"workflow":    industryService.GenerateWorkflow(c.Params("id")),
		})
	})

	app.Post("/industries/:id/story", func(c *fiber.Ctx) error {
		type Req struct {
			ProductName string            `json:"product_name"`
			Brand       string            `json:"brand"`
			Metadata    map[string]string `json:"metadata"`
		}
		var req Req
		if err := c.BodyParser(&req); err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error": "invalid JSON",
				"cause": err.Error(),
			})
		}
		if req.ProductName == "" {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "product_name is required"})
		}

		story := industryService.GenerateStory(c.Params("id"), req.ProductName, req.Brand, req.Metadata)
		if story == "" {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "industry not found"})
		}
		return c.JSON(fiber.Map{"story": story})
	})
}
