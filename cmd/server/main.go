package main

import (
	"log"
	"time"

	"github.com/NIRESH7/garments-backend/config"
	"github.com/NIRESH7/garments-backend/internal/handler"
	"github.com/NIRESH7/garments-backend/internal/middleware"
	"github.com/NIRESH7/garments-backend/pkg/database"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

func main() {
	// 1. Load Configuration
	config.LoadConfig()

	// 2. Connect to Database
	database.Connect()

	// 3. Auto-Migrate Models
	log.Println("Running migrations...")
	if err := database.Migrate(); err != nil {
		log.Fatalf("Migration failed: %v", err)
	}
	log.Println("Migrations completed successfully.")

	// 3a. Seed Data
	database.SeedRolesAndAdmin()

	// 4. Initialize Router
	r := gin.Default()

	r.Use(cors.New(cors.Config{
		AllowAllOrigins:  true,
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization"},
		ExposeHeaders:    []string{"Content-Length", "Content-Disposition"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	// 5. Setup Routes
	authHandler := &handler.AuthHandler{}
	authRoutes := r.Group("/api/v1/auth")
	{
		authRoutes.POST("/login", authHandler.Login)
	}

	userRoutes := r.Group("/api/v1/user")
	userRoutes.Use(middleware.AuthMiddleware())
	{
		userRoutes.PUT("/password", authHandler.ChangePassword)
	}

	inwardHandler := &handler.InwardHandler{}
	outwardHandler := &handler.OutwardHandler{}
	reportHandler := &handler.ReportHandler{}

	invRoutes := r.Group("/api/v1/inventory")
	invRoutes.Use(middleware.AuthMiddleware("admin", "manager", "inventory"))
	{
		invRoutes.POST("/inward", inwardHandler.CreateInward)
		invRoutes.GET("/inward", inwardHandler.ListInwards)
		invRoutes.GET("/inward/fifo", inwardHandler.GetLotsFifo)
		invRoutes.GET("/inward/balanced-sets", inwardHandler.GetBalancedSets)
		invRoutes.GET("/inward/generate-no", inwardHandler.GenerateInwardNo)

		invRoutes.POST("/outward", outwardHandler.CreateOutward)
		invRoutes.GET("/outward", outwardHandler.ListOutwards)
		invRoutes.GET("/outward/generate-dc", outwardHandler.GenerateDcNo)

		invRoutes.GET("/reports/aging", reportHandler.GetAgingReport)
		invRoutes.GET("/reports/overview", reportHandler.GetOverviewReport)
		invRoutes.GET("/reports/overview/export", reportHandler.ExportOverviewReport)
		invRoutes.GET("/reports/inward-outward", reportHandler.GetInwardOutwardReport)
		invRoutes.GET("/reports/monthly", reportHandler.GetMonthlySummary)
		invRoutes.GET("/reports/client-format", reportHandler.GetClientFormatReport)
	}

	masterHandler := &handler.MasterHandler{}
	masterRoutes := r.Group("/api/v1/master")
	masterRoutes.Use(middleware.AuthMiddleware("admin", "manager"))
	{
		masterRoutes.POST("/categories", masterHandler.CreateCategory)
		masterRoutes.GET("/categories", masterHandler.ListCategories)
		masterRoutes.DELETE("/categories/:id", masterHandler.DeleteCategory)
		masterRoutes.POST("/categories/:id/values", masterHandler.AddCategoryValue)
		masterRoutes.DELETE("/categories/:id/values/:value", masterHandler.DeleteCategoryValue)

		masterRoutes.POST("/parties", masterHandler.CreateParty)
		masterRoutes.GET("/parties", masterHandler.ListParties)
		masterRoutes.PUT("/parties/:id", masterHandler.UpdateParty)
		masterRoutes.DELETE("/parties/:id", masterHandler.DeleteParty)

		masterRoutes.POST("/item-groups", masterHandler.CreateItemGroup)
		masterRoutes.GET("/item-groups", masterHandler.ListItemGroups)
		masterRoutes.PUT("/item-groups/:id", masterHandler.UpdateItemGroup)
		masterRoutes.DELETE("/item-groups/:id", masterHandler.DeleteItemGroup)

		masterRoutes.POST("/lots", masterHandler.CreateLot)
		masterRoutes.GET("/lots", masterHandler.ListLots)
	}

	r.GET("/ping", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"message": "pong",
		})
	})

	// 6. Start Server
	port := config.AppConfig.Server.Port
	log.Printf("Server starting on port %s", port)
	if err := r.Run(":" + port); err != nil {
		log.Fatalf("Failed to run server: %v", err)
	}
}
