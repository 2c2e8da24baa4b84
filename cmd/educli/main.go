package main

import (
	"bufio"
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"eduhub-client/internal/api"
	"eduhub-client/internal/config"
	"eduhub-client/internal/examflow"
	"eduhub-client/internal/logging"
	"eduhub-client/internal/models"
	"eduhub-client/internal/notify"
	"eduhub-client/internal/session"
	"eduhub-client/internal/validate"
)

var errHelp = errors.New("help provided")

// printNavigator is the terminal's stand-in for route changes.
type printNavigator struct{}

func (printNavigator) Navigate(route string) {
	fmt.Printf("→ %s\n", route)
}

type commandLine struct {
	cfg     *config.AppConfig
	log     zerolog.Logger
	client  *api.Client
	session *session.Manager
	in      *bufio.Reader
}

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "config: %v\n", err)
		os.Exit(1)
	}

	log := logging.New(cfg.Environment)
	store := session.NewFileStore(cfg.Auth.TokenPath)

	var mgr *session.Manager
	client := api.New(cfg.API.BaseURL, func() string {
		if mgr == nil {
			return ""
		}
		return mgr.Token()
	}, cfg.API.Timeout, log)

	mgr = session.NewManager(client, store, printNavigator{}, log)
	client.SetUnauthorizedHook(mgr.HandleUnauthorized)

	cli := &commandLine{
		cfg:     cfg,
		log:     log,
		client:  client,
		session: mgr,
		in:      bufio.NewReader(os.Stdin),
	}

	if err := cli.run(os.Args); err != nil && err != errHelp {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func (cli *commandLine) printUsage() {
	fmt.Println("Usage:")
	fmt.Println("  login -email EMAIL [-password PASSWORD]      - sign in")
	fmt.Println("  register -email EMAIL -first NAME -last NAME [-role ROLE] - create an account")
	fmt.Println("  logout                                       - sign out")
	fmt.Println("  whoami                                       - show the current session")
	fmt.Println("  exams [-take ID]                             - list exams or take one")
	fmt.Println("  results -id ID                               - show exam results")
	fmt.Println("  notifications [-watch]                       - list or stream notifications")
	fmt.Println("  classrooms                                   - list classrooms")
	fmt.Println("  content [-category NAME]                     - list library content")
}

func (cli *commandLine) run(args []string) error {
	if len(args) < 2 {
		cli.printUsage()
		return errHelp
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	switch args[1] {
	case "login":
		return cli.login(ctx, args[2:])
	case "register":
		return cli.register(ctx, args[2:])
	case "logout":
		cli.session.Logout()
		return nil
	case "whoami":
		return cli.whoami(ctx)
	case "exams":
		return cli.exams(ctx, args[2:])
	case "results":
		return cli.results(ctx, args[2:])
	case "notifications":
		return cli.notifications(ctx, args[2:])
	case "classrooms":
		return cli.classrooms(ctx)
	case "content":
		return cli.content(ctx, args[2:])
	default:
		cli.printUsage()
		return errHelp
	}
}

func (cli *commandLine) login(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("login", flag.ExitOnError)
	email := fs.String("email", "", "account email")
	password := fs.String("password", "", "account password (prompted if omitted)")
	if err := fs.Parse(args); err != nil {
		return err
	}

	if *password == "" {
		fmt.Print("Password: ")
		line, err := cli.in.ReadString('\n')
		if err != nil {
			return err
		}
		*password = strings.TrimSpace(line)
	}

	creds := models.Credentials{Email: *email, Password: *password}
	if fields := validate.Login(creds); fields != nil {
		for field, msg := range fields {
			fmt.Printf("  %s: %s\n", field, msg)
		}
		return errors.New("invalid input")
	}

	res := cli.session.Login(ctx, creds)
	if !res.Success {
		return errors.New(res.Message)
	}
	fmt.Println("Logged in.")
	return nil
}

func (cli *commandLine) register(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("register", flag.ExitOnError)
	email := fs.String("email", "", "account email")
	password := fs.String("password", "", "account password (prompted if omitted)")
	first := fs.String("first", "", "first name")
	last := fs.String("last", "", "last name")
	role := fs.String("role", models.RoleStudent, "account role")
	if err := fs.Parse(args); err != nil {
		return err
	}

	if *password == "" {
		fmt.Print("Password: ")
		line, err := cli.in.ReadString('\n')
		if err != nil {
			return err
		}
		*password = strings.TrimSpace(line)
	}

	req := models.RegisterRequest{
		FirstName: *first,
		LastName:  *last,
		Email:     *email,
		Password:  *password,
		Role:      *role,
	}
	if fields := validate.Register(req); fields != nil {
		for field, msg := range fields {
			fmt.Printf("  %s: %s\n", field, msg)
		}
		return errors.New("invalid input")
	}

	res := cli.session.Register(ctx, req)
	if !res.Success {
		return errors.New(res.Message)
	}
	fmt.Println("Account created.")
	return nil
}

// requireSession resolves the persisted token and applies the protected
// gate before any authenticated command runs.
func (cli *commandLine) requireSession(ctx context.Context, route string) error {
	cli.session.Load(ctx)
	gate := cli.session.Protected(route)
	if !gate.Render {
		return fmt.Errorf("not logged in (redirected to %s)", gate.RedirectTo)
	}
	return nil
}

func (cli *commandLine) whoami(ctx context.Context) error {
	if err := cli.requireSession(ctx, session.RouteDashboard); err != nil {
		return err
	}
	user := cli.session.CurrentUser()
	fmt.Printf("%s %s <%s> (%s)\n", user.FirstName, user.LastName, user.Email, user.Role)
	return nil
}

func (cli *commandLine) exams(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("exams", flag.ExitOnError)
	takeID := fs.Int64("take", 0, "start a timed attempt on the given exam")
	if err := fs.Parse(args); err != nil {
		return err
	}

	if err := cli.requireSession(ctx, "/exams"); err != nil {
		return err
	}

	if *takeID > 0 {
		return cli.takeExam(ctx, *takeID)
	}

	exams, err := cli.client.GetExams(ctx)
	if err != nil {
		return err
	}
	for _, exam := range exams {
		status := "inactive"
		if exam.IsActive {
			status = "active"
		}
		fmt.Printf("%4d  %-40s %3d min  %3d marks  [%s]\n",
			exam.ExamID, exam.Title, exam.Duration, exam.TotalMarks, status)
	}
	return nil
}

// takeExam runs one timed attempt interactively. The countdown runs in the
// background and seals the attempt when time is up; answers typed after
// that are dropped by the controller.
func (cli *commandLine) takeExam(ctx context.Context, examID int64) error {
	ctrl := examflow.NewController(cli.client, cli.log)
	if err := ctrl.Start(ctx, examID); err != nil {
		return err
	}

	runCtx, stop := context.WithCancel(ctx)
	defer stop()
	go ctrl.Run(runCtx)

	exam := ctrl.Exam()
	fmt.Printf("%s: %d minutes, %d questions\n", exam.Title, exam.Duration, len(exam.Questions))
	if exam.Instructions != "" {
		fmt.Println(exam.Instructions)
	}

	for i, q := range exam.Questions {
		if ctrl.Status() != examflow.StatusInProgress {
			fmt.Println("\nTime is up. Your answers were submitted automatically.")
			break
		}
		fmt.Printf("\n[%s remaining]\n", formatSeconds(ctrl.Remaining()))
		fmt.Printf("Q%d (%d marks): %s\n", i+1, q.Marks, q.QuestionText)
		for j, opt := range q.Options {
			fmt.Printf("  %d) %s\n", j+1, opt)
		}
		fmt.Print("Answer (blank to skip): ")
		line, err := cli.in.ReadString('\n')
		if err != nil {
			break
		}
		answer := strings.TrimSpace(line)
		if answer != "" {
			ctrl.RecordAnswer(strconv.FormatInt(q.QuestionID, 10), answer)
		}
	}

	if ctrl.Status() == examflow.StatusInProgress {
		fmt.Print("\nSubmit now? [y/N]: ")
		line, _ := cli.in.ReadString('\n')
		if strings.TrimSpace(strings.ToLower(line)) == "y" {
			if err := ctrl.Submit(ctx); err != nil {
				return err
			}
		} else {
			fmt.Println("Attempt left running until the timer expires.")
			for ctrl.Status() == examflow.StatusInProgress {
				select {
				case <-ctx.Done():
					return ctx.Err()
				case <-time.After(time.Second):
				}
			}
		}
	}

	if err := ctrl.SubmitError(); err != nil {
		return fmt.Errorf("your submission could not be delivered, please contact support: %w", err)
	}
	fmt.Println("Exam submitted.")
	return nil
}

func (cli *commandLine) results(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("results", flag.ExitOnError)
	id := fs.Int64("id", 0, "exam id")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if *id == 0 {
		fs.Usage()
		return errHelp
	}

	if err := cli.requireSession(ctx, "/exams"); err != nil {
		return err
	}

	results, err := cli.client.GetExamResults(ctx, *id)
	if err != nil {
		return err
	}
	for _, r := range results {
		verdict := "failed"
		if r.Passed {
			verdict = "passed"
		}
		fmt.Printf("student %d: %d/%d (%s)\n", r.StudentID, r.Score, r.TotalMarks, verdict)
	}
	return nil
}

func (cli *commandLine) notifications(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("notifications", flag.ExitOnError)
	watch := fs.Bool("watch", false, "stream live notifications")
	if err := fs.Parse(args); err != nil {
		return err
	}

	if err := cli.requireSession(ctx, "/notifications"); err != nil {
		return err
	}

	notifications, err := cli.client.GetNotifications(ctx)
	if err != nil {
		return err
	}
	sort.Slice(notifications, func(i, j int) bool {
		return notifications[i].CreatedAt.After(notifications[j].CreatedAt)
	})
	for _, n := range notifications {
		marker := " "
		if !n.IsRead {
			marker = "*"
		}
		fmt.Printf("%s %s: %s\n", marker, n.Title, n.Message)
	}

	if !*watch {
		return nil
	}

	socket, err := notify.Dial(ctx, cli.cfg.Notify.SocketURL, cli.session.Token(), cli.log)
	if err != nil {
		return fmt.Errorf("connect notification channel: %w", err)
	}
	defer socket.Close()

	poller := notify.NewPoller(cli.client, cli.cfg.Notify.RefreshInterval, func(ns []models.Notification) {
		cli.log.Debug().Int("count", len(ns)).Msg("notification refresh")
	}, cli.log)
	if err := poller.Start(); err != nil {
		return err
	}
	defer poller.Stop()

	fmt.Println("Watching for notifications (Ctrl-C to stop)...")
	for {
		select {
		case <-ctx.Done():
			return nil
		case event, ok := <-socket.Events():
			if !ok {
				return errors.New("notification channel closed")
			}
			n := event.Notification
			fmt.Printf("* %s: %s\n", n.Title, n.Message)
		}
	}
}

func (cli *commandLine) classrooms(ctx context.Context) error {
	if err := cli.requireSession(ctx, "/classrooms"); err != nil {
		return err
	}
	classrooms, err := cli.client.GetClassrooms(ctx)
	if err != nil {
		return err
	}
	for _, c := range classrooms {
		fmt.Printf("%4d  %-30s %-15s %d students\n", c.ClassroomID, c.Name, c.Subject, c.StudentCount)
	}
	return nil
}

func (cli *commandLine) content(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("content", flag.ExitOnError)
	category := fs.String("category", "", "filter by category")
	if err := fs.Parse(args); err != nil {
		return err
	}

	if err := cli.requireSession(ctx, "/library"); err != nil {
		return err
	}

	items, err := cli.client.GetContent(ctx, models.ContentListParams{Category: *category})
	if err != nil {
		return err
	}
	for _, item := range items {
		fmt.Printf("%4d  %-40s %-15s %d views\n", item.ContentID, item.Title, item.Category, item.ViewCount)
	}
	return nil
}

func formatSeconds(total int) string {
	h := total / 3600
	m := (total % 3600) / 60
	s := total % 60
	return fmt.Sprintf("%02d:%02d:%02d", h, m, s)
}
