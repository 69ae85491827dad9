package services

import (
	"path/filepath"

	"ffmax-tournament-api/utils"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

type UploadService struct{}

func NewUploadService() *UploadService {
	return &UploadService{}
}

// UploadBanner stores a banner image in R2 and returns its public URL. The
// client passes the URL back as banner_url when creating the tournament;
// nothing here touches tournament records.
func (s *UploadService) UploadBanner(c *fiber.Ctx) error {
	if !utils.UploadsEnabled() {
		return c.Status(fiber.StatusServiceUnavailable).JSON(fiber.Map{"error": "uploads are not configured"})
	}

	banner, err := c.FormFile("banner")
	if err != nil || banner.Size == 0 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "banner file is required"})
	}

	ext := filepath.Ext(banner.Filename)
	if ext == "" {
		ext = ".jpg"
	}
	key := "tournaments/banners/" + uuid.NewString() + ext

	url, err := utils.UploadFileToR2(banner, key)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "failed to upload banner"})
	}
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"banner_url": url})
}
