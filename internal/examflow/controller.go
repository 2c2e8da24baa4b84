package examflow

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"eduhub-client/internal/models"
)

// Attempt states. Submitted is terminal: nothing leaves it within one
// attempt.
type Status string

const (
	StatusNotStarted Status = "not_started"
	StatusInProgress Status = "in_progress"
	StatusSubmitted  Status = "submitted"
)

var (
	ErrNotInProgress = errors.New("attempt is not in progress")
	// ErrSubmitFailed means the answers could not be delivered even after
	// retries. The attempt stays terminal; the user is told to contact
	// support rather than silently losing the submission.
	ErrSubmitFailed = errors.New("submission failed after retries")
)

const submitRetries = 3

// ExamAPI is the slice of the REST client the controller needs.
type ExamAPI interface {
	GetExam(ctx context.Context, id int64) (*models.Exam, error)
	SubmitExam(ctx context.Context, id int64, answers map[string]string) error
}

// Controller runs exactly one timed attempt: countdown, answer capture,
// auto-submission on timeout, manual submission. The countdown is anchored
// to an absolute deadline so repeated ticks cannot drift.
type Controller struct {
	api ExamAPI
	log zerolog.Logger

	// now and sleep are swapped out in tests.
	now   func() time.Time
	sleep func(time.Duration)

	mu        sync.Mutex
	attemptID uuid.UUID
	exam      *models.Exam
	answers   map[string]string
	deadline  time.Time
	status    Status
	submitErr error
}

func NewController(api ExamAPI, log zerolog.Logger) *Controller {
	return &Controller{
		api:    api,
		log:    log,
		now:    time.Now,
		sleep:  time.Sleep,
		status: StatusNotStarted,
	}
}

// Start fetches the exam definition and opens the attempt. A fetch failure
// leaves the attempt unstarted and is surfaced to the user.
func (c *Controller) Start(ctx context.Context, examID int64) error {
	c.mu.Lock()
	if c.status != StatusNotStarted {
		c.mu.Unlock()
		return fmt.Errorf("attempt already %s", c.status)
	}
	c.mu.Unlock()

	exam, err := c.api.GetExam(ctx, examID)
	if err != nil {
		return fmt.Errorf("failed to start exam: %w", err)
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	c.attemptID = uuid.New()
	c.exam = exam
	c.answers = make(map[string]string)
	c.deadline = c.now().Add(time.Duration(exam.Duration) * time.Minute)
	c.status = StatusInProgress

	c.log.Debug().Str("attempt_id", c.attemptID.String()).Int64("exam_id", exam.ExamID).
		Int("duration_min", exam.Duration).Msg("attempt started")
	return nil
}

func (c *Controller) Status() Status {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.status
}

func (c *Controller) AttemptID() uuid.UUID {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.attemptID
}

func (c *Controller) Exam() *models.Exam {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.exam
}

// Remaining reports whole seconds left, never negative.
func (c *Controller) Remaining() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.status != StatusInProgress {
		return 0
	}
	left := c.deadline.Sub(c.now())
	if left < 0 {
		return 0
	}
	return int(left / time.Second)
}

// RecordAnswer stores the student's current answer for a question. Partial
// completion is fine; answers outside an in-progress attempt are dropped.
func (c *Controller) RecordAnswer(questionID, value string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.status != StatusInProgress {
		return
	}
	c.answers[questionID] = value
}

// Answers returns a snapshot of the current answer map.
func (c *Controller) Answers() map[string]string {
	c.mu.Lock()
	defer c.mu.Unlock()
	out := make(map[string]string, len(c.answers))
	for k, v := range c.answers {
		out[k] = v
	}
	return out
}

// SubmitError reports the terminal delivery failure, if any.
func (c *Controller) SubmitError() error {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.submitErr
}

// Submit is the manual submission action. Idempotent: once the attempt is
// submitted no second network call is issued.
func (c *Controller) Submit(ctx context.Context) error {
	snapshot, examID, ok := c.seal()
	if !ok {
		return nil
	}
	return c.deliver(ctx, examID, snapshot)
}

// Tick advances the countdown. When the deadline has passed it seals the
// attempt and performs the one auto-submission with whatever answers exist
// at that instant. Called once a second by Run, or directly by tests.
func (c *Controller) Tick(ctx context.Context) {
	c.mu.Lock()
	expired := c.status == StatusInProgress && !c.now().Before(c.deadline)
	c.mu.Unlock()
	if !expired {
		return
	}

	snapshot, examID, ok := c.seal()
	if !ok {
		return
	}
	c.log.Debug().Int64("exam_id", examID).Msg("time expired, auto-submitting")
	if err := c.deliver(ctx, examID, snapshot); err != nil {
		c.log.Error().Err(err).Int64("exam_id", examID).Msg("auto-submit failed")
	}
}

// Run drives the countdown until the attempt leaves in_progress or the
// context is cancelled.
func (c *Controller) Run(ctx context.Context) {
	ticker := time.NewTicker(time.Second)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			c.Tick(ctx)
			if c.Status() != StatusInProgress {
				return
			}
		}
	}
}

// seal moves the attempt to its terminal state and hands back the answers
// snapshot. The second caller (timeout racing manual submit, or a repeat
// submit) gets ok=false and must not touch the network.
func (c *Controller) seal() (map[string]string, int64, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.status != StatusInProgress {
		return nil, 0, false
	}
	c.status = StatusSubmitted
	snapshot := make(map[string]string, len(c.answers))
	for k, v := range c.answers {
		snapshot[k] = v
	}
	return snapshot, c.exam.ExamID, true
}

// deliver posts the sealed answers, retrying with exponential backoff.
// Answer entry stays disabled regardless of the network outcome.
func (c *Controller) deliver(ctx context.Context, examID int64, answers map[string]string) error {
	var err error
	backoff := time.Second
	for attempt := 0; attempt <= submitRetries; attempt++ {
		if attempt > 0 {
			c.sleep(backoff)
			backoff *= 2
		}
		err = c.api.SubmitExam(ctx, examID, answers)
		if err == nil {
			return nil
		}
		c.log.Warn().Err(err).Int("attempt", attempt+1).Msg("submit failed")
	}

	c.mu.Lock()
	c.submitErr = ErrSubmitFailed
	c.mu.Unlock()
	return fmt.Errorf("%w: %v", ErrSubmitFailed, err)
}
