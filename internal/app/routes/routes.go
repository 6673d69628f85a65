package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/bayms/backend/internal/app/controllers"
	"github.com/bayms/backend/internal/app/repositories"
	"github.com/bayms/backend/internal/middleware"
)

// SetupRouter configures all application routes
func SetupRouter(
	router *gin.Engine,
	authController *controllers.AuthController,
	profileController *controllers.ProfileController,
	contentController *controllers.ContentController,
	memberController *controllers.MemberController,
	eventController *controllers.EventController,
	locationController *controllers.LocationController,
	recordingController *controllers.RecordingController,
	highlightController *controllers.HighlightController,
	authMiddleware *middleware.AuthMiddleware,
) {
	v1 := router.Group("/api/v1")

	// --- Public site routes ---
	v1.GET("/home", contentController.Home)
	v1.GET("/performances", contentController.Performances)
	v1.GET("/musicians", contentController.Musicians)

	// --- Public auth routes ---
	auth := v1.Group("/auth")
	{
		auth.POST("/apply", authController.Apply)
		auth.POST("/login", authController.Login)
	}

	// --- Authenticated routes ---
	authenticated := v1.Group("")
	authenticated.Use(authMiddleware.JWTAuth())
	{
		// Member and applicant self-service profiles, edited one
		// section at a time
		members := authenticated.Group("/members")
		{
			members.GET("/me", profileController.GetProfile(repositories.CollectionMembers))
			members.PUT("/me/sections/:section", profileController.UpdateSection(repositories.CollectionMembers))
			members.GET("", memberController.ListMembers)
		}

		applicants := authenticated.Group("/applicants")
		{
			applicants.GET("/me", profileController.GetProfile(repositories.CollectionApplicants))
			applicants.GET("/me/status", profileController.Status)
			applicants.PUT("/me/sections/:section", profileController.UpdateSection(repositories.CollectionApplicants))
			applicants.GET("", memberController.ListApplicants)
			applicants.POST("/:email/reject", memberController.RejectApplicant)
		}

		// Dashboard content management
		events := authenticated.Group("/events")
		{
			events.GET("", eventController.ListEvents)
			events.POST("", eventController.CreateEvent)
			events.PUT("/:id", eventController.UpdateEvent)
			events.DELETE("/:id", eventController.DeleteEvent)
		}

		locations := authenticated.Group("/locations")
		{
			locations.GET("", locationController.ListLocations)
			locations.POST("", locationController.CreateLocation)
			locations.PUT("/:id", locationController.UpdateLocation)
			locations.DELETE("/:id", locationController.DeleteLocation)
		}

		recordings := authenticated.Group("/recordings")
		{
			recordings.GET("", recordingController.ListRecordings)
			recordings.POST("", recordingController.CreateRecording)
			recordings.PUT("/:id", recordingController.UpdateRecording)
			recordings.DELETE("/:id", recordingController.DeleteRecording)
		}

		highlights := authenticated.Group("/highlights")
		{
			highlights.GET("", highlightController.ListHighlights)
			highlights.POST("", highlightController.CreateHighlight)
			highlights.PATCH("/:id", highlightController.UpdateHighlight)
			highlights.DELETE("/:id", highlightController.DeleteHighlight)
		}
	}
}
