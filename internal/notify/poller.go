package notify

import (
	"context"
	"fmt"
	"time"

	"github.com/robfig/cron/v3"
	"github.com/rs/zerolog"

	"eduhub-client/internal/models"
)

// NotificationAPI is the slice of the REST client the poller needs.
type NotificationAPI interface {
	GetNotifications(ctx context.Context) ([]models.Notification, error)
}

// Poller refreshes the notification list over REST on a fixed schedule,
// as a fallback for missed socket pushes.
type Poller struct {
	api      NotificationAPI
	interval time.Duration
	onUpdate func([]models.Notification)
	log      zerolog.Logger
	cron     *cron.Cron
}

func NewPoller(api NotificationAPI, interval time.Duration, onUpdate func([]models.Notification), log zerolog.Logger) *Poller {
	return &Poller{
		api:      api,
		interval: interval,
		onUpdate: onUpdate,
		log:      log,
		cron:     cron.New(),
	}
}

func (p *Poller) Start() error {
	spec := fmt.Sprintf("@every %s", p.interval)
	if _, err := p.cron.AddFunc(spec, p.refresh); err != nil {
		return fmt.Errorf("schedule notification refresh: %w", err)
	}
	p.cron.Start()
	return nil
}

func (p *Poller) Stop() {
	ctx := p.cron.Stop()
	<-ctx.Done()
}

func (p *Poller) refresh() {
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	notifications, err := p.api.GetNotifications(ctx)
	if err != nil {
		p.log.Debug().Err(err).Msg("notification refresh failed")
		return
	}
	if p.onUpdate != nil {
		p.onUpdate(notifications)
	}
}
