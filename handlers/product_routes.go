// handlers/product_routes.go
package handlers

import (
	"product-auth-system/middleware"
	"product-auth-system/services"

	"github.com/gofiber/fiber/v2"
)

func SetupProductRoutes(app *fiber.App, productService *services.ProductService) {
	// 🔓 Public verification — no user context required, but user identity is
	// picked up when the Gateway forwards it (points for logged-in scanners)
	app.Get("/verify/:truemark_id", middleware.UserContextMiddleware(), productService.VerifyProduct)

	// 🔐 Secured routes — require user context (userID, roles)
	secured := app.Group("/", middleware.UserContextMiddleware())

	secured.Post("/products", productService.CreateProduct)
	secured.Get("/products", productService.GetProducts)
	secured.Get("/products/:id", productService.GetProductByID)
	secured.Get("/products/:id/scans", productService.GetScans)
	secured.Post("/products/:id/register", productService.RegisterProduct)
	secured.Post("/classify", productService.ClassifyImage)

	secured.Get("/users/search", productService.SearchUsers)
}
