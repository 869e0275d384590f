package api

import "github.com/gofiber/fiber/v2"

func RegisterRoutes(app *fiber.App, handler *Handler) {
	app.Get("/healthz", handler.Health)

	api := app.Group("/api")

	auth := api.Group("/auth")
	auth.Post("/login", handler.Login)
	auth.Post("/logout", handler.AuthRequired, handler.Logout)
	api.Get("/me", handler.AuthRequired, handler.Me)

	users := api.Group("/users")
	users.Post("", handler.CreateUser)
	users.Get("/:id", handler.GetUser)
	users.Patch("/:id/stats", handler.UpdateUserStats)
	users.Get("/:id/macros", handler.GetUserMacros)
	users.Get("/:id/workouts", handler.ListWorkouts)
	users.Get("/:id/meals", handler.ListMeals)
	users.Get("/:id/chat", handler.ChatHistory)
	users.Get("/:id/weight", handler.WeightHistory)

	api.Post("/workouts", handler.CreateWorkout)
	api.Post("/meals", handler.CreateMeal)
	api.Post("/chat", handler.AppendChatMessage)
	api.Post("/chat/ask", handler.AskChat)
	api.Post("/weight", handler.RecordWeight)

	sessions := api.Group("/sessions")
	sessions.Post("/start", handler.StartSession)
	sessions.Post("/stop", handler.StopSession)
	sessions.Get("/:userId", handler.GetSession)
}
