package handlers

import (
	"ffmax-tournament-api/services"

	"github.com/gofiber/fiber/v2"
)

func SetupTournamentRoutes(app *fiber.App, tournamentService *services.TournamentService) {
	api := app.Group("/api")

	api.Get("/tournaments", tournamentService.ListTournaments)
	api.Post("/tournaments", tournamentService.CreateTournament)

	// :tournament_id accepts either an internal id or a share code
	api.Get("/tournaments/:tournament_id", tournamentService.GetTournament)
	api.Post("/tournaments/:tournament_id/register", tournamentService.RegisterParticipant)
	api.Get("/tournaments/:tournament_id/participants", tournamentService.ListParticipants)
	api.Post("/tournaments/:tournament_id/matches", tournamentService.CreateMatch)
	api.Get("/tournaments/:tournament_id/matches", tournamentService.ListMatches)
	api.Get("/tournaments/:tournament_id/share", tournamentService.GetShareLink)

	// share-code-only lookup, no id fallback
	api.Get("/share/:code", tournamentService.GetByShareCode)
}
