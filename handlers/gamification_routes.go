// handlers/gamification_routes.go
package handlers

import (
	"product-auth-system/middleware"
	"product-auth-system/services"

	"github.com/gofiber/fiber/v2"
)

func SetupGamificationRoutes(app *fiber.App, gamificationService *services.GamificationService) {
	// 🔓 Public achievement catalog (static config, safe to expose)
	app.Get("/achievements", func(c *fiber.Ctx) error {
		var response []fiber.Map
		for _, a := range gamificationService.Catalog() {
			response = append(response, fiber.Map{
				"id":          a.ID,
				"name":        a.Name,
				"description": a.Description,
				"icon":        a.Icon,
				"point_value": a.PointValue,
				"category":    a.Category,
				"tier":        a.Tier,
				"tier_color":  services.TierColor(a.Tier),
			})
		}
		return c.JSON(response)
	})

	// 🔐 Secured routes — require user context (userID, roles)
	securedGroup := app.Group("/", middleware.UserContextMiddleware())

	securedGroup.Get("/user/stats", func(c *fiber.Ctx) error {
		userID := c.Locals("user_id").(string)

		stats, err := gamificationService.GetStats(userID)
		if err != nil {
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
				"error": "failed to fetch user stats",
				"cause": err.Error(),
			})
		}

		return c.JSON(fiber.Map{
			"user_id":             stats.ExternalUserID,
			"total_points":        stats.TotalPoints,
			"points_display":      services.FormatPoints(stats.TotalPoints),
			"level":               stats.Level,
			"level_title":         services.LevelTitle(stats.Level),
			"level_progress":      services.LevelProgress(stats.TotalPoints, stats.Level),
			"points_next_level":   services.PointsForNextLevel(stats.Level),
			"current_streak":      stats.CurrentStreak,
			"best_streak":         stats.BestStreak,
			"streak_emoji":        services.StreakEmoji(stats.CurrentStreak),
			"total_verifications": stats.TotalVerifications,
			"total_registrations": stats.TotalRegistrations,
			"counterfeit_found":   stats.CounterfeitFound,
			"last_activity_date":  stats.LastActivityDate,
		})
	})

	securedGroup.Get("/user/achievements", func(c *fiber.Ctx) error {
		userID := c.Locals("user_id").(string)

		achievements, err := gamificationService.EarnedAchievements(userID)
		if err != nil {
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
				"error": "failed to fetch achievements",
				"cause": err.Error(),
			})
		}

		var response []fiber.Map
		for _, a := range achievements {
			response = append(response, fiber.Map{
				"id":          a.ID,
				"name":        a.Name,
				"description": a.Description,
				"icon":        a.Icon,
				"point_value": a.PointValue,
				"tier":        a.Tier,
				"tier_color":  services.TierColor(a.Tier),
			})
		}
		return c.JSON(response)
	})

	// Admin endpoints
	adminGroup := app.Group("/s/admin", middleware.UserContextMiddleware())

	adminGroup.Post("/points/grant", func(c *fiber.Ctx) error {
		type Req struct {
			UserID string `json:"user_id" validate:"required,uuid"`
			Points int64  `json:"points" validate:"required,min=1"`
			Reason string `json:"reason" validate:"max=255"`
		}
		var req Req
		if err := c.BodyParser(&req); err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error": "invalid JSON",
				"cause": err.Error(),
			})
		}

		if req.UserID == "" {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "user_id is required"})
		}
		// Points only ever go up — a grant below 1 would let an admin shrink
		// a user's total.
		if req.Points < 1 {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "points must be at least 1"})
		}

		if _, err := gamificationService.AwardPoints(req.UserID, req.Points, req.Reason); err != nil {
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
				"error": "point grant failed",
				"cause": err.Error(),
			})
		}

		return c.JSON(fiber.Map{
			"message": "points granted successfully",
			"user_id": req.UserID,
			"points":  req.Points,
		})
	})
}
