package notify

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/rs/zerolog"

	"eduhub-client/internal/models"
)

type fakeNotificationAPI struct {
	mu            sync.Mutex
	notifications []models.Notification
	err           error
	calls         int
}

func (f *fakeNotificationAPI) GetNotifications(ctx context.Context) ([]models.Notification, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls++
	if f.err != nil {
		return nil, f.err
	}
	return f.notifications, nil
}

func TestRefreshDeliversNotifications(t *testing.T) {
	api := &fakeNotificationAPI{
		notifications: []models.Notification{{NotificationID: 1, Title: "Exam graded"}},
	}

	var got []models.Notification
	p := NewPoller(api, time.Minute, func(ns []models.Notification) { got = ns }, zerolog.Nop())

	p.refresh()

	if len(got) != 1 || got[0].NotificationID != 1 {
		t.Errorf("unexpected notifications: %v", got)
	}
}

func TestRefreshSwallowsErrors(t *testing.T) {
	api := &fakeNotificationAPI{err: errors.New("boom")}

	called := false
	p := NewPoller(api, time.Minute, func([]models.Notification) { called = true }, zerolog.Nop())

	p.refresh()

	if called {
		t.Error("onUpdate fired despite fetch error")
	}
}

func TestStartStop(t *testing.T) {
	api := &fakeNotificationAPI{}
	p := NewPoller(api, time.Second, nil, zerolog.Nop())

	if err := p.Start(); err != nil {
		t.Fatalf("start: %v", err)
	}
	p.Stop()
}
