package handler

import (
	"context"
	"time"

	"tourhub/helper"
	"tourhub/service"

	"github.com/gofiber/fiber/v2"
	"github.com/redis/go-redis/v9"
)

// LiveFeed opens a subscription to booking events.
type LiveFeed interface {
	Subscribe(ctx context.Context) *redis.PubSub
}

type Handler struct {
	svc    *service.Services
	images helper.ImageStore
	feed   LiveFeed
}

// New builds the HTTP handlers. images and feed may be nil, in which case
// uploads and the live booking feed answer 503.
func New(svc *service.Services, images helper.ImageStore, feed LiveFeed) *Handler {
	return &Handler{svc: svc, images: images, feed: feed}
}

func (h *Handler) Health(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{
		"status":    "ok",
		"timestamp": time.Now().UTC().Format(time.RFC3339),
	})
}
