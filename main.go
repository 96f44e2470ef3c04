package main

import (
	"log"
	"time"

	"github.com/heberxp77/AsistenciaWeb/app/config"
	"github.com/heberxp77/AsistenciaWeb/app/database"
	"github.com/heberxp77/AsistenciaWeb/app/routes/attendance"
	"github.com/heberxp77/AsistenciaWeb/app/routes/auth"
	"github.com/heberxp77/AsistenciaWeb/app/routes/campuses"
	"github.com/heberxp77/AsistenciaWeb/app/routes/dashboard"
	"github.com/heberxp77/AsistenciaWeb/app/routes/groups"
	"github.com/heberxp77/AsistenciaWeb/app/routes/justifications"
	"github.com/heberxp77/AsistenciaWeb/app/routes/programs"
	reportsapi "github.com/heberxp77/AsistenciaWeb/app/routes/reports"
	"github.com/heberxp77/AsistenciaWeb/app/routes/schools"
	"github.com/heberxp77/AsistenciaWeb/app/routes/students"
	"github.com/heberxp77/AsistenciaWeb/app/routes/users"
	"github.com/heberxp77/AsistenciaWeb/app/services"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/joho/godotenv"
)

// customErrorHandler returns all errors as JSON
func customErrorHandler(c *fiber.Ctx, err error) error {
	// Status code defaults to 500
	code := fiber.StatusInternalServerError

	// Retrieve the custom status code if it's a *fiber.Error
	if e, ok := err.(*fiber.Error); ok {
		code = e.Code
	}

	return c.Status(code).JSON(fiber.Map{
		"success": false,
		"error":   err.Error(),
		"code":    code,
	})
}

func main() {
	// Set global time zone to Mexico City time
	loc, err := time.LoadLocation("America/Mexico_City")
	if err != nil {
		log.Printf("Warning: Failed to load America/Mexico_City location, falling back to UTC-6: %v", err)
		time.Local = time.FixedZone("CST", -6*60*60)
	} else {
		time.Local = loc
	}
	log.Printf("Application time zone set to: %s", time.Local.String())

	// Load .env if present
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	// Initialize database
	config.InitDB()
	defer config.GetDB().Close()

	// Run database migrations
	if err := database.RunMigrations(config.GetDB()); err != nil {
		log.Fatal("Failed to run migrations:", err)
	}

	// Start background scheduler
	services.StartScheduler(config.GetDB())

	// Create Fiber app
	app := fiber.New(fiber.Config{
		AppName:      "AsistenciaWeb",
		ErrorHandler: customErrorHandler,
	})

	// Middleware
	app.Use(logger.New())
	app.Use(cors.New(cors.Config{
		AllowOriginsFunc: func(origin string) bool { return true },
		AllowCredentials: true,
	}))

	// Setup auth routes
	auth.SetupAuthRoutes(app)

	// Setup organization routes
	campuses.SetupCampusesRoutes(app)
	schools.SetupSchoolsRoutes(app)
	programs.SetupProgramsRoutes(app)
	groups.SetupGroupsRoutes(app)

	// Setup students routes
	students.SetupStudentsRoutes(app)

	// Setup users routes
	users.SetupUsersRoutes(app)

	// Setup attendance routes
	attendance.SetupAttendanceRoutes(app)

	// Setup justifications routes
	justifications.SetupJustificationsRoutes(app)

	// Setup reports routes
	reportsapi.SetupReportsRoutes(app)

	// Setup dashboard routes
	dashboard.SetupDashboardRoutes(app)

	// 404 for unknown API paths
	app.Use(func(c *fiber.Ctx) error {
		return fiber.NewError(fiber.StatusNotFound, "Resource not found")
	})

	port := config.Port()
	log.Printf("Server starting on port %s...", port)
	log.Fatal(app.Listen(":" + port))
}
