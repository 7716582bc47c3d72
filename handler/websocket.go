package handler

import (
	"context"
	"errors"
	"time"

	"tourhub/constants"
	"tourhub/utils"

	"github.com/gofiber/contrib/websocket"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
)

const feedPingInterval = 30 * time.Second

// UpgradeBookingFeed lets only websocket handshakes through to BookingFeed.
func (h *Handler) UpgradeBookingFeed(c *fiber.Ctx) error {
	if h.feed == nil {
		return utils.ErrorResponse(c, fiber.StatusServiceUnavailable, constants.ERROR_INTERNAL_ERROR, errors.New("live feed is not configured"))
	}
	if !websocket.IsWebSocketUpgrade(c) {
		return fiber.ErrUpgradeRequired
	}
	return c.Next()
}

// BookingFeed streams booking events published on Redis to one admin client.
func (h *Handler) BookingFeed(c *websocket.Conn) {
	clientID := uuid.NewString()
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	pubsub := h.feed.Subscribe(ctx)
	defer pubsub.Close()

	log.Info().Str("client", clientID).Msg("booking feed connected")
	defer log.Info().Str("client", clientID).Msg("booking feed disconnected")

	// The client never sends data; reading only detects the close.
	go func() {
		defer cancel()
		for {
			if _, _, err := c.ReadMessage(); err != nil {
				return
			}
		}
	}()

	ping := time.NewTicker(feedPingInterval)
	defer ping.Stop()

	messages := pubsub.Channel()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ping.C:
			if err := c.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		case msg, ok := <-messages:
			if !ok {
				return
			}
			if err := c.WriteMessage(websocket.TextMessage, []byte(msg.Payload)); err != nil {
				log.Debug().Err(err).Str("client", clientID).Msg("booking feed write failed")
				return
			}
		}
	}
}
