package examflow

import (
	"context"
	"errors"
	"reflect"
	"sync"
	"testing"
	"time"

	"github.com/rs/zerolog"

	"eduhub-client/internal/models"
)

type fakeExamAPI struct {
	mu          sync.Mutex
	exam        *models.Exam
	getErr      error
	submitErrs  []error // consumed per call; nil entry means success
	submitCalls []map[string]string
}

func (f *fakeExamAPI) GetExam(ctx context.Context, id int64) (*models.Exam, error) {
	if f.getErr != nil {
		return nil, f.getErr
	}
	return f.exam, nil
}

func (f *fakeExamAPI) SubmitExam(ctx context.Context, id int64, answers map[string]string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.submitCalls = append(f.submitCalls, answers)
	if len(f.submitErrs) > 0 {
		err := f.submitErrs[0]
		f.submitErrs = f.submitErrs[1:]
		return err
	}
	return nil
}

func (f *fakeExamAPI) calls() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.submitCalls)
}

type fakeClock struct {
	mu  sync.Mutex
	now time.Time
}

func (c *fakeClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.now
}

func (c *fakeClock) Advance(d time.Duration) {
	c.mu.Lock()
	c.now = c.now.Add(d)
	c.mu.Unlock()
}

func oneMinuteExam() *models.Exam {
	return &models.Exam{
		ExamID:   10,
		Title:    "Algebra basics",
		Duration: 1,
		Questions: []models.Question{
			{QuestionID: 1, QuestionText: "2+2?", QuestionType: models.QuestionMultipleChoice, Options: []string{"3", "4"}, Marks: 1},
			{QuestionID: 2, QuestionText: "x+x?", QuestionType: models.QuestionShortAnswer, Marks: 2},
		},
	}
}

func newTestController(api *fakeExamAPI, clock *fakeClock) *Controller {
	c := NewController(api, zerolog.Nop())
	c.now = clock.Now
	c.sleep = func(time.Duration) {}
	return c
}

func TestStart_FetchFailure(t *testing.T) {
	api := &fakeExamAPI{getErr: errors.New("boom")}
	clock := &fakeClock{now: time.Unix(1000, 0)}
	c := newTestController(api, clock)

	if err := c.Start(context.Background(), 10); err == nil {
		t.Fatal("expected error")
	}
	if c.Status() != StatusNotStarted {
		t.Errorf("expected not_started, got %s", c.Status())
	}
}

func TestStart_Initializes(t *testing.T) {
	api := &fakeExamAPI{exam: oneMinuteExam()}
	clock := &fakeClock{now: time.Unix(1000, 0)}
	c := newTestController(api, clock)

	if err := c.Start(context.Background(), 10); err != nil {
		t.Fatalf("start: %v", err)
	}
	if c.Status() != StatusInProgress {
		t.Errorf("expected in_progress, got %s", c.Status())
	}
	if got := c.Remaining(); got != 60 {
		t.Errorf("expected 60 seconds, got %d", got)
	}
	if len(c.Answers()) != 0 {
		t.Errorf("expected empty answers, got %v", c.Answers())
	}
	if c.AttemptID().String() == "00000000-0000-0000-0000-000000000000" {
		t.Error("expected attempt id assigned")
	}
}

func TestStart_SecondStartRejected(t *testing.T) {
	api := &fakeExamAPI{exam: oneMinuteExam()}
	clock := &fakeClock{now: time.Unix(1000, 0)}
	c := newTestController(api, clock)

	if err := c.Start(context.Background(), 10); err != nil {
		t.Fatalf("start: %v", err)
	}
	if err := c.Start(context.Background(), 10); err == nil {
		t.Error("expected second start to fail")
	}
}

// remaining is non-increasing while in progress and never negative.
func TestRemaining_MonotonicNeverNegative(t *testing.T) {
	api := &fakeExamAPI{exam: oneMinuteExam()}
	clock := &fakeClock{now: time.Unix(1000, 0)}
	c := newTestController(api, clock)
	c.Start(context.Background(), 10)

	prev := c.Remaining()
	for i := 0; i < 90; i++ {
		clock.Advance(time.Second)
		got := c.Remaining()
		if got > prev {
			t.Fatalf("remaining increased: %d -> %d", prev, got)
		}
		if got < 0 {
			t.Fatalf("remaining went negative: %d", got)
		}
		prev = got
	}
	if prev != 0 {
		t.Errorf("expected 0 after expiry, got %d", prev)
	}
}

// The deadline is absolute: uneven tick timing does not stretch the exam.
func TestRemaining_AnchoredToDeadline(t *testing.T) {
	api := &fakeExamAPI{exam: oneMinuteExam()}
	clock := &fakeClock{now: time.Unix(1000, 0)}
	c := newTestController(api, clock)
	c.Start(context.Background(), 10)

	// A single 37-second stall consumes 37 seconds of exam time.
	clock.Advance(37 * time.Second)
	if got := c.Remaining(); got != 23 {
		t.Errorf("expected 23 seconds, got %d", got)
	}
}

func TestRecordAnswer_BeforeStart(t *testing.T) {
	api := &fakeExamAPI{exam: oneMinuteExam()}
	clock := &fakeClock{now: time.Unix(1000, 0)}
	c := newTestController(api, clock)

	c.RecordAnswer("q1", "4")
	if len(c.Answers()) != 0 {
		t.Errorf("answers before start must be dropped, got %v", c.Answers())
	}
}

// Full timed flow: 60-second exam, two questions, one answered, time runs
// out. Exactly one submission with the partial snapshot.
func TestAutoSubmitOnTimeout(t *testing.T) {
	api := &fakeExamAPI{exam: oneMinuteExam()}
	clock := &fakeClock{now: time.Unix(1000, 0)}
	c := newTestController(api, clock)
	ctx := context.Background()

	c.Start(ctx, 10)
	c.RecordAnswer("q1", "4")

	clock.Advance(60 * time.Second)
	c.Tick(ctx)

	if c.Status() != StatusSubmitted {
		t.Fatalf("expected submitted, got %s", c.Status())
	}
	if api.calls() != 1 {
		t.Fatalf("expected exactly one submission, got %d", api.calls())
	}
	want := map[string]string{"q1": "4"}
	if !reflect.DeepEqual(api.submitCalls[0], want) {
		t.Errorf("expected answers %v, got %v", want, api.submitCalls[0])
	}

	// A later manual submit is a no-op.
	if err := c.Submit(ctx); err != nil {
		t.Errorf("repeat submit must be a silent no-op, got %v", err)
	}
	if api.calls() != 1 {
		t.Errorf("expected still one submission, got %d", api.calls())
	}
}

func TestTick_BeforeDeadlineDoesNothing(t *testing.T) {
	api := &fakeExamAPI{exam: oneMinuteExam()}
	clock := &fakeClock{now: time.Unix(1000, 0)}
	c := newTestController(api, clock)
	ctx := context.Background()

	c.Start(ctx, 10)
	clock.Advance(30 * time.Second)
	c.Tick(ctx)

	if c.Status() != StatusInProgress {
		t.Errorf("expected in_progress, got %s", c.Status())
	}
	if api.calls() != 0 {
		t.Errorf("no submission expected, got %d", api.calls())
	}
}

func TestManualSubmit(t *testing.T) {
	api := &fakeExamAPI{exam: oneMinuteExam()}
	clock := &fakeClock{now: time.Unix(1000, 0)}
	c := newTestController(api, clock)
	ctx := context.Background()

	c.Start(ctx, 10)
	c.RecordAnswer("q1", "4")
	c.RecordAnswer("q2", "2x")

	if err := c.Submit(ctx); err != nil {
		t.Fatalf("submit: %v", err)
	}
	if c.Status() != StatusSubmitted {
		t.Errorf("expected submitted, got %s", c.Status())
	}
	if api.calls() != 1 {
		t.Fatalf("expected one submission, got %d", api.calls())
	}

	// Timeout after manual submit must not submit again.
	clock.Advance(2 * time.Minute)
	c.Tick(ctx)
	if api.calls() != 1 {
		t.Errorf("expected still one submission, got %d", api.calls())
	}
}

func TestRecordAnswer_AfterSubmission(t *testing.T) {
	api := &fakeExamAPI{exam: oneMinuteExam()}
	clock := &fakeClock{now: time.Unix(1000, 0)}
	c := newTestController(api, clock)
	ctx := context.Background()

	c.Start(ctx, 10)
	c.RecordAnswer("q1", "4")
	c.Submit(ctx)

	c.RecordAnswer("q2", "too late")
	want := map[string]string{"q1": "4"}
	if !reflect.DeepEqual(c.Answers(), want) {
		t.Errorf("answers must not change after submission, got %v", c.Answers())
	}
}

func TestSubmit_RetriesThenSucceeds(t *testing.T) {
	api := &fakeExamAPI{
		exam:       oneMinuteExam(),
		submitErrs: []error{errors.New("down"), errors.New("down"), nil},
	}
	clock := &fakeClock{now: time.Unix(1000, 0)}
	c := newTestController(api, clock)
	ctx := context.Background()

	c.Start(ctx, 10)
	if err := c.Submit(ctx); err != nil {
		t.Fatalf("expected eventual success, got %v", err)
	}
	if api.calls() != 3 {
		t.Errorf("expected 3 delivery attempts, got %d", api.calls())
	}
	if c.SubmitError() != nil {
		t.Errorf("no terminal failure expected, got %v", c.SubmitError())
	}
}

func TestSubmit_ExhaustedRetries(t *testing.T) {
	down := errors.New("down")
	api := &fakeExamAPI{
		exam:       oneMinuteExam(),
		submitErrs: []error{down, down, down, down, down},
	}
	clock := &fakeClock{now: time.Unix(1000, 0)}
	c := newTestController(api, clock)
	ctx := context.Background()

	c.Start(ctx, 10)
	c.RecordAnswer("q1", "4")

	err := c.Submit(ctx)
	if !errors.Is(err, ErrSubmitFailed) {
		t.Fatalf("expected ErrSubmitFailed, got %v", err)
	}
	if api.calls() != submitRetries+1 {
		t.Errorf("expected %d attempts, got %d", submitRetries+1, api.calls())
	}
	if !errors.Is(c.SubmitError(), ErrSubmitFailed) {
		t.Errorf("expected terminal submit error recorded, got %v", c.SubmitError())
	}

	// The attempt stays sealed: no further answers, no further calls.
	if c.Status() != StatusSubmitted {
		t.Errorf("expected submitted, got %s", c.Status())
	}
	c.RecordAnswer("q2", "late")
	if len(c.Answers()) != 1 {
		t.Errorf("answers must stay sealed, got %v", c.Answers())
	}
}

// Timeout and manual submit race exactly once by design; the seal is the
// only safeguard and must admit a single winner.
func TestTimeoutManualSubmitRace(t *testing.T) {
	api := &fakeExamAPI{exam: oneMinuteExam()}
	clock := &fakeClock{now: time.Unix(1000, 0)}
	c := newTestController(api, clock)
	ctx := context.Background()

	c.Start(ctx, 10)
	clock.Advance(61 * time.Second)

	var wg sync.WaitGroup
	wg.Add(2)
	go func() { defer wg.Done(); c.Tick(ctx) }()
	go func() { defer wg.Done(); c.Submit(ctx) }()
	wg.Wait()

	if api.calls() != 1 {
		t.Errorf("expected exactly one submission, got %d", api.calls())
	}
	if c.Status() != StatusSubmitted {
		t.Errorf("expected submitted, got %s", c.Status())
	}
}
