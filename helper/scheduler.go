package helper

import (
	"context"
	"time"

	"github.com/go-co-op/gocron/v2"
	"github.com/rs/zerolog/log"
)

// Gulf Standard Time, the storefront's business timezone.
var BusinessLocation = time.FixedZone("GST", 4*3600)

// StartDigestScheduler runs digest every day at 08:00 business time.
// The caller owns the returned scheduler and must Shutdown it.
func StartDigestScheduler(digest func(ctx context.Context) error) (gocron.Scheduler, error) {
	s, err := gocron.NewScheduler(gocron.WithLocation(BusinessLocation))
	if err != nil {
		return nil, err
	}

	_, err = s.NewJob(
		gocron.DailyJob(1, gocron.NewAtTimes(gocron.NewAtTime(8, 0, 0))),
		gocron.NewTask(func() {
			ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
			defer cancel()
			if err := digest(ctx); err != nil {
				log.Error().Err(err).Msg("[CRON] pending bookings digest failed")
				return
			}
			log.Info().Msg("[CRON] pending bookings digest sent")
		}),
		gocron.WithName("pending-bookings-digest"),
		gocron.WithSingletonMode(gocron.LimitModeReschedule),
	)
	if err != nil {
		_ = s.Shutdown()
		return nil, err
	}

	s.Start()
	log.Info().Msg("Digest scheduler started (08:00 GST)")
	return s, nil
}
