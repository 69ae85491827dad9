package services

import (
	"context"
	"errors"
	"fmt"
	"log"

	"ffmax-tournament-api/models"
	"ffmax-tournament-api/store"
	"ffmax-tournament-api/utils"

	"github.com/gofiber/fiber/v2"
	"github.com/gosimple/slug"
	"go.mongodb.org/mongo-driver/bson"
)

// internalIDLength is the length of a store-native internal id in hex form.
// Anything shorter or longer in a tournament path parameter is treated as a
// share code.
const internalIDLength = 24

// shareCodeAttempts bounds the collision-check loop when generating a code.
const shareCodeAttempts = 5

type TournamentService struct {
	Store       store.Store
	FrontendURL string
}

func NewTournamentService(st store.Store, frontendURL string) *TournamentService {
	return &TournamentService{Store: st, FrontendURL: frontendURL}
}

// resolveTournament maps a path reference to a tournament document via the
// dual-key rule: id-shaped strings resolve by internal id, everything else
// by share code. Every endpoint that takes a tournament reference goes
// through here.
func (s *TournamentService) resolveTournament(ctx context.Context, ref string) (bson.M, error) {
	if len(ref) == internalIDLength {
		return s.Store.FindByID(ctx, store.CollectionTournament, ref)
	}
	return s.Store.FindOne(ctx, store.CollectionTournament, bson.M{"share_code": ref})
}

// resolveError renders resolver failures: malformed id 400, no match 404,
// anything else is a store failure.
func resolveError(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, store.ErrInvalidID):
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid tournament id"})
	case errors.Is(err, store.ErrNotFound):
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "tournament not found"})
	default:
		return storeError(c, err)
	}
}

func storeError(c *fiber.Ctx, err error) error {
	log.Printf("store error: %v", err)
	return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "database error"})
}

func (s *TournamentService) ListTournaments(c *fiber.Ctx) error {
	docs, err := s.Store.Find(c.Context(), store.CollectionTournament, nil)
	if err != nil {
		return storeError(c, err)
	}
	return c.JSON(utils.SerializeList(docs))
}

func (s *TournamentService) CreateTournament(c *fiber.Ctx) error {
	var t models.Tournament
	if err := c.BodyParser(&t); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid request body"})
	}

	t.ApplyDefaults()
	if err := t.Validate(); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	if t.ShareCode == "" {
		code, err := s.newShareCode(c.Context())
		if err != nil {
			return storeError(c, err)
		}
		t.ShareCode = code
	}
	t.Slug = slug.Make(t.Title)

	id, err := s.Store.Insert(c.Context(), store.CollectionTournament, &t)
	if err != nil {
		return storeError(c, err)
	}

	doc, err := s.Store.FindByID(c.Context(), store.CollectionTournament, id)
	if err != nil {
		return storeError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(utils.ToPublic(doc))
}

func (s *TournamentService) GetTournament(c *fiber.Ctx) error {
	doc, err := s.resolveTournament(c.Context(), c.Params("tournament_id"))
	if err != nil {
		return resolveError(c, err)
	}
	return c.JSON(utils.ToPublic(doc))
}

func (s *TournamentService) GetShareLink(c *fiber.Ctx) error {
	doc, err := s.resolveTournament(c.Context(), c.Params("tournament_id"))
	if err != nil {
		return resolveError(c, err)
	}
	code, _ := doc["share_code"].(string)
	return c.JSON(fiber.Map{
		"share_url": fmt.Sprintf("%s/?t=%s", s.FrontendURL, code),
		"code":      code,
	})
}

// GetByShareCode looks a tournament up by share code only, no id fallback.
func (s *TournamentService) GetByShareCode(c *fiber.Ctx) error {
	doc, err := s.Store.FindOne(c.Context(), store.CollectionTournament, bson.M{"share_code": c.Params("code")})
	if errors.Is(err, store.ErrNotFound) {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "tournament not found"})
	}
	if err != nil {
		return storeError(c, err)
	}
	return c.JSON(utils.ToPublic(doc))
}

// newShareCode generates a code and retries on collision a few times. The
// reference system skipped the uniqueness check entirely; the bounded loop
// closes that gap without risking an unbounded scan.
func (s *TournamentService) newShareCode(ctx context.Context) (string, error) {
	for i := 0; i < shareCodeAttempts; i++ {
		code, err := utils.GenerateShareCode()
		if err != nil {
			return "", err
		}
		_, err = s.Store.FindOne(ctx, store.CollectionTournament, bson.M{"share_code": code})
		if errors.Is(err, store.ErrNotFound) {
			return code, nil
		}
		if err != nil {
			return "", err
		}
	}
	return "", fmt.Errorf("could not generate a unique share code after %d attempts", shareCodeAttempts)
}
