package main

import (
	"log"
	"os"
	"story-service/internal/db"
	"story-service/internal/event"
	"story-service/internal/handlers"
	"story-service/internal/repository"
	"story-service/internal/service"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
)

func main() {
	// Load env
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using system env")
	}
	mongoURI := os.Getenv("MONGO_URI")
	if mongoURI == "" {
		log.Fatal("MONGO_URI is required")
	}
	db.InitMongo(mongoURI)

	// RabbitMQ event publisher
	rabbitURL := os.Getenv("RABBITMQ_URI")
	eventExchange := os.Getenv("RABBITMQ_EXCHANGE")
	var publisher *event.EventPublisher
	if rabbitURL != "" && eventExchange != "" {
		var err error
		publisher, err = event.NewEventPublisher(rabbitURL, eventExchange)
		if err != nil {
			log.Fatalf("Failed to connect to RabbitMQ: %v", err)
		}
		defer publisher.Close()
	} else {
		log.Println("RabbitMQ not configured, events will not be published")
	}

	r := gin.Default()

	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"http://localhost:3000"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Content-Type", "Content-Length", "Accept-Encoding", "X-CSRF-Token", "Authorization", "accept", "origin", "Cache-Control", "X-Requested-With"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	database := db.Client.Database("story_service")

	// Profiles
	profileStore := repository.NewMemoryProfileStore()
	profileRepo := repository.NewProfileRepository(database)
	achievementRepo := repository.NewAchievementRepository(database)
	profileService := service.NewProfileService(profileStore, profileRepo, achievementRepo)
	profileHandler := handlers.NewProfileHandler(profileService)

	// Sessions
	sessionRepo := repository.NewSessionRepository(database)
	sessionService := service.NewSessionService(profileService, nil, nil, sessionRepo)
	sessionHandler := handlers.NewSessionHandler(sessionService)

	// Full adventures
	storyService := service.NewStoryService(profileService, nil, nil)
	storyHandler := handlers.NewStoryHandler(storyService)

	r.GET("/public/stories/health", sessionHandler.HealthCheck)

	// Public routes - profiles
	publicProfile := r.Group("/public/stories/profile")
	{
		publicProfile.GET("/:name", func(c *gin.Context) {
			profileHandler.GetProfile(c)
			if publisher != nil {
				publisher.Publish("profile.viewed", gin.H{"name": c.Param("name")})
			}
		})
		publicProfile.GET("/:name/recommendations", func(c *gin.Context) {
			profileHandler.GetRecommendations(c)
			if publisher != nil {
				publisher.Publish("profile.recommendations", gin.H{"name": c.Param("name")})
			}
		})
		publicProfile.GET("/:name/story-parameters", profileHandler.GetStoryParameters)
		publicProfile.GET("/:name/achievements", profileHandler.GetAchievements)
	}

	publicChild := r.Group("/public/stories/child")
	{
		publicChild.GET("/:name/sessions", sessionHandler.GetSessionsByChild)
	}

	// Protected routes - interactions and sessions
	protectedProfiles := r.Group("/protected/stories/profiles")
	{
		protectedProfiles.GET("/", profileHandler.ListProfiles)
	}

	protectedProfile := r.Group("/protected/stories/profile")
	{
		protectedProfile.POST("/:name/interaction", func(c *gin.Context) {
			profileHandler.PostInteraction(c)
			if publisher != nil {
				publisher.Publish("profile.updated", gin.H{
					"name":      c.Param("name"),
					"user_id":   c.GetHeader("X-User-ID"),
					"timestamp": time.Now(),
				})
			}
		})
	}

	protectedSession := r.Group("/protected/stories/session")
	{
		protectedSession.POST("/", func(c *gin.Context) {
			sessionHandler.CreateSession(c)
			if publisher != nil {
				publisher.Publish("story.session.created", gin.H{
					"user_id":   c.GetHeader("X-User-ID"),
					"timestamp": time.Now(),
				})
			}
		})
		protectedSession.GET("/:id", sessionHandler.GetSession)
		protectedSession.POST("/:id/answer", func(c *gin.Context) {
			sessionHandler.SubmitAnswer(c)
			if publisher != nil {
				publisher.Publish("story.answer.submitted", gin.H{
					"session_id": c.Param("id"),
					"user_id":    c.GetHeader("X-User-ID"),
					"timestamp":  time.Now(),
				})
			}
		})
		protectedSession.GET("/:id/progress", sessionHandler.GetSessionProgress)
	}

	protectedStory := r.Group("/protected/stories/story")
	{
		protectedStory.POST("/generate", func(c *gin.Context) {
			storyHandler.GenerateStory(c)
			if publisher != nil {
				publisher.Publish("story.generated", gin.H{
					"user_id":   c.GetHeader("X-User-ID"),
					"timestamp": time.Now(),
				})
			}
		})
		protectedStory.POST("/comprehension", storyHandler.AssessComprehension)
	}

	r.Run(":6677")
}
