package routes

import (
	"popfix-backend/internal/auth"
	"popfix-backend/internal/handlers"
	"popfix-backend/internal/middleware"

	"github.com/gofiber/fiber/v2"
)

func Setup(
	app *fiber.App,
	tokens *auth.TokenManager,
	movieHandler *handlers.MovieHandler,
	commentHandler *handlers.CommentHandler,
	userHandler *handlers.UserHandler,
	authHandler *handlers.AuthHandler,
	pexelsHandler *handlers.PexelsHandler,
	uploadHandler *handlers.UploadHandler,
) {
	// API versioning
	api := app.Group("/api")
	v1 := api.Group("/v1")

	// Movie routes - catalog, favorites, ratings, comments.
	// Static segments are registered before the /:id wildcard.
	movies := v1.Group("/movies")
	{
		movies.Get("/", movieHandler.GetAllMovies)
		movies.Get("/search", movieHandler.SearchMovies)
		movies.Get("/mixed", movieHandler.GetMixed)
		movies.Get("/by-genre", movieHandler.GetByGenre)
		movies.Get("/details/:id", movieHandler.GetMovieDetails)

		movies.Get("/favorites/:userId", movieHandler.GetFavorites)
		movies.Delete("/favorites/:userId/:movieId", movieHandler.RemoveFavorite)
		movies.Get("/ratings/:userId", movieHandler.GetUserRatings)
		movies.Post("/user/:userId", movieHandler.SaveUserMovie)
		movies.Put("/user/:userId", movieHandler.UpdateUserMovie)

		movies.Get("/comments", commentHandler.GetUserMovieComments)
		movies.Post("/comments/:userId", commentHandler.AddComment)
		movies.Get("/comments/:commentId", commentHandler.GetComment)
		movies.Put("/comments/:commentId", commentHandler.EditComment)
		movies.Delete("/comments/:commentId", commentHandler.DeleteComment)

		movies.Get("/:id/comments", commentHandler.GetMovieComments)
		movies.Get("/:id", movieHandler.GetMovieByID)
	}

	// User routes - accounts and sessions
	users := v1.Group("/users")
	{
		users.Post("/register", userHandler.Register)
		users.Post("/login", userHandler.Login)
		users.Post("/logout", userHandler.Logout)
		users.Post("/change-password", middleware.RequireAuth(tokens), userHandler.ChangePassword)
		users.Get("/", userHandler.ListUsers)
		users.Get("/:id", userHandler.GetUser)
		users.Put("/:id", userHandler.UpdateUser)
		users.Delete("/:id", userHandler.DeleteUser)
	}

	// Auth routes - password reset flow
	authGroup := v1.Group("/auth")
	{
		authGroup.Post("/forgot-password", authHandler.ForgotPassword)
		authGroup.Post("/reset-password", authHandler.ResetPassword)
	}

	// Pexels routes - raw provider proxy
	pexelsGroup := v1.Group("/pexels")
	{
		pexelsGroup.Get("/popular", pexelsHandler.PopularVideos)
		pexelsGroup.Get("/search", pexelsHandler.SearchVideos)
	}

	upload := v1.Group("/upload")
	{
		upload.Get("/presign", uploadHandler.GetPresignedURL)
	}
}
