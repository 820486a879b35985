package routes

import (
	"shopping-helper-admin/config"
	"shopping-helper-admin/controllers"
	_ "shopping-helper-admin/docs" // Import generated docs
	"shopping-helper-admin/middleware"
	"shopping-helper-admin/workspace"

	"github.com/gofiber/fiber/v3"
	"github.com/swaggo/swag"
)

func SetupRoutes(app *fiber.App, cfg *config.Config, backend controllers.HealthChecker, registry *workspace.Registry, sealer *workspace.SessionSealer) {

	// Controllers
	adminController := controllers.NewAdminController(cfg)
	healthController := controllers.NewHealthController(cfg, backend, registry)
	storeController := controllers.NewEntityController(workspace.StoreEntity, func(w *workspace.Workspace) *workspace.StoreController { return w.Stores })
	productController := controllers.NewEntityController(workspace.ProductEntity, func(w *workspace.Workspace) *workspace.ProductController { return w.Products })
	priceController := controllers.NewEntityController(workspace.PriceEntity, func(w *workspace.Workspace) *workspace.PriceController { return w.Prices })

	// Public routes
	api := app.Group("/api")
	api.Get("/health", healthController.Health)

	// API Documentation routes
	app.Get("/docs/doc.json", func(c fiber.Ctx) error {
		doc, err := swag.ReadDoc()
		if err != nil {
			return fiber.NewError(fiber.StatusNotFound, "API documentation not registered")
		}
		c.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSONCharsetUTF8)
		return c.SendString(doc)
	})

	app.Get("/docs", func(c fiber.Ctx) error {
		html := `<!DOCTYPE html>
<html lang="en">
<head>
  <meta charset="utf-8" />
  <meta name="viewport" content="width=device-width, initial-scale=1" />
  <title>Shopping Helper Admin - Swagger UI</title>
  <link rel="stylesheet" href="https://unpkg.com/swagger-ui-dist@5.11.0/swagger-ui.css" />
</head>
<body>
<div id="swagger-ui"></div>
<script src="https://unpkg.com/swagger-ui-dist@5.11.0/swagger-ui-bundle.js" crossorigin></script>
<script>
  window.onload = () => {
    window.ui = SwaggerUIBundle({
      url: '/docs/doc.json',
      dom_id: '#swagger-ui',
    });
  };
</script>
</body>
</html>`
		c.Set("Content-Type", "text/html")
		return c.SendString(html)
	})

	// Admin pages (session scoped)
	admin := app.Group("", middleware.SessionMiddleware(registry, sealer, cfg.IsProduction()))
	admin.Get("/", adminController.Index)
	storeController.Register(admin)
	productController.Register(admin)
	priceController.Register(admin)
}
