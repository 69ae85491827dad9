package services

import (
	"ffmax-tournament-api/models"
	"ffmax-tournament-api/store"
	"ffmax-tournament-api/utils"

	"github.com/gofiber/fiber/v2"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Participant and match endpoints. The tournament must exist when a record
// is created under it; the stored tournament_id is always the resolved
// tournament's internal id, whichever key the caller used in the path.

func (s *TournamentService) RegisterParticipant(c *fiber.Ctx) error {
	t, err := s.resolveTournament(c.Context(), c.Params("tournament_id"))
	if err != nil {
		return resolveError(c, err)
	}

	var p models.Participant
	if err := c.BodyParser(&p); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid request body"})
	}
	if err := p.Validate(); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}
	p.TournamentID = internalID(t)

	id, err := s.Store.Insert(c.Context(), store.CollectionParticipant, &p)
	if err != nil {
		return storeError(c, err)
	}
	doc, err := s.Store.FindByID(c.Context(), store.CollectionParticipant, id)
	if err != nil {
		return storeError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(utils.ToPublic(doc))
}

func (s *TournamentService) ListParticipants(c *fiber.Ctx) error {
	t, err := s.resolveTournament(c.Context(), c.Params("tournament_id"))
	if err != nil {
		return resolveError(c, err)
	}

	docs, err := s.Store.Find(c.Context(), store.CollectionParticipant, bson.M{"tournament_id": internalID(t)})
	if err != nil {
		return storeError(c, err)
	}
	return c.JSON(utils.SerializeList(docs))
}

func (s *TournamentService) CreateMatch(c *fiber.Ctx) error {
	t, err := s.resolveTournament(c.Context(), c.Params("tournament_id"))
	if err != nil {
		return resolveError(c, err)
	}

	var m models.Match
	if err := c.BodyParser(&m); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid request body"})
	}
	m.ApplyDefaults()
	if err := m.Validate(); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}
	m.TournamentID = internalID(t)

	id, err := s.Store.Insert(c.Context(), store.CollectionMatch, &m)
	if err != nil {
		return storeError(c, err)
	}
	doc, err := s.Store.FindByID(c.Context(), store.CollectionMatch, id)
	if err != nil {
		return storeError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(utils.ToPublic(doc))
}

func (s *TournamentService) ListMatches(c *fiber.Ctx) error {
	t, err := s.resolveTournament(c.Context(), c.Params("tournament_id"))
	if err != nil {
		return resolveError(c, err)
	}

	docs, err := s.Store.Find(c.Context(), store.CollectionMatch, bson.M{"tournament_id": internalID(t)})
	if err != nil {
		return storeError(c, err)
	}
	return c.JSON(utils.SerializeList(docs))
}

// internalID returns the hex form of a resolved document's internal id.
func internalID(doc bson.M) string {
	switch v := doc["_id"].(type) {
	case primitive.ObjectID:
		return v.Hex()
	case string:
		return v
	default:
		return ""
	}
}
