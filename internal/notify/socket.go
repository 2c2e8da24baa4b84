package notify

import (
	"context"
	"net/url"
	"sync"

	"github.com/gorilla/websocket"
	"github.com/rs/zerolog"

	"eduhub-client/internal/models"
)

// Socket is the client end of the notification push channel. The server
// joins the connection to a room keyed by the token's user and pushes
// new-notification events.
type Socket struct {
	conn   *websocket.Conn
	log    zerolog.Logger
	events chan models.NotificationEvent

	closeOnce sync.Once
	done      chan struct{}
}

// Dial connects to the notification endpoint, authenticating with the
// bearer token as a query parameter.
func Dial(ctx context.Context, socketURL, token string, log zerolog.Logger) (*Socket, error) {
	u, err := url.Parse(socketURL)
	if err != nil {
		return nil, err
	}
	q := u.Query()
	q.Set("token", token)
	u.RawQuery = q.Encode()

	conn, resp, err := websocket.DefaultDialer.DialContext(ctx, u.String(), nil)
	if err != nil {
		return nil, err
	}
	if resp != nil && resp.Body != nil {
		resp.Body.Close()
	}

	s := &Socket{
		conn:   conn,
		log:    log,
		events: make(chan models.NotificationEvent, 16),
		done:   make(chan struct{}),
	}
	go s.readLoop()
	return s, nil
}

// Events yields pushed notification events. The channel closes when the
// connection drops or Close is called; reconnecting is the caller's call.
func (s *Socket) Events() <-chan models.NotificationEvent {
	return s.events
}

func (s *Socket) readLoop() {
	defer close(s.events)
	for {
		var event models.NotificationEvent
		if err := s.conn.ReadJSON(&event); err != nil {
			select {
			case <-s.done:
			default:
				s.log.Debug().Err(err).Msg("notification socket closed")
			}
			return
		}
		if event.Event != "new-notification" || event.Notification == nil {
			continue
		}
		select {
		case s.events <- event:
		case <-s.done:
			return
		}
	}
}

func (s *Socket) Close() error {
	var err error
	s.closeOnce.Do(func() {
		close(s.done)
		err = s.conn.Close()
	})
	return err
}
