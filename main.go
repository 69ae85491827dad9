package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"ffmax-tournament-api/handlers"
	"ffmax-tournament-api/services"
	"ffmax-tournament-api/store"
	"ffmax-tournament-api/utils"
	"ffmax-tournament-api/workers"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/joho/godotenv"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("⚠️  No .env file found, reading environment variables directly")
	}

	dsn := os.Getenv("DATABASE_URL")
	if dsn == "" {
		log.Fatal("DATABASE_URL environment variable not set")
	}
	dbName := os.Getenv("DATABASE_NAME")
	if dbName == "" {
		dbName = "ffmax"
	}
	frontendURL := os.Getenv("FRONTEND_URL")
	if frontendURL == "" {
		log.Println("⚠️  FRONTEND_URL not set, using default: http://localhost:3000")
		frontendURL = "http://localhost:3000"
	}
	port := os.Getenv("PORT")
	if port == "" {
		port = "8000"
	}

	st, err := store.Connect(context.Background(), dsn, dbName)
	if err != nil {
		log.Fatal("failed to connect to database: ", err)
	}

	if enabled, err := utils.InitR2(); err != nil {
		log.Fatal("failed to initialize R2 client: ", err)
	} else if !enabled {
		log.Println("⚠️  R2_BUCKET_NAME not set, banner uploads disabled")
	}

	app := fiber.New()

	// All cross-origin requests are permitted
	app.Use(cors.New(cors.Config{
		AllowOrigins: "*",
		AllowMethods: "GET,POST,OPTIONS,HEAD",
		AllowHeaders: "Origin, Content-Type, Accept",
	}))

	healthWorker := workers.NewStoreHealthWorker(st)
	if err := healthWorker.Start(); err != nil {
		log.Fatal("failed to start store health worker: ", err)
	}

	tournamentService := services.NewTournamentService(st, frontendURL)
	healthService := services.NewHealthService(st, dbName, healthWorker)
	uploadService := services.NewUploadService()

	handlers.SetupHealthRoutes(app, healthService)
	handlers.SetupTournamentRoutes(app, tournamentService)
	handlers.SetupUploadRoutes(app, uploadService)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	go func() {
		if err := app.Listen(":" + port); err != nil {
			log.Printf("Server error: %v", err)
		}
	}()

	log.Printf("✅ Server running on http://localhost:%s", port)
	log.Println("✅ Store health worker running (every 30s)")
	log.Println("✅ CORS configured for all origins")

	<-ctx.Done()
	log.Println("Shutting down server...")

	healthWorker.Stop()
	if err := app.Shutdown(); err != nil {
		log.Printf("Server shutdown error: %v", err)
	}
	disconnectCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := st.Disconnect(disconnectCtx); err != nil {
		log.Printf("Store disconnect error: %v", err)
	}
}
