// portalctl is a terminal client for the job-portal backend: it manages the
// local session (login, logout, whoami) and exposes the job search and
// application endpoints.
package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"os"

	"github.com/joho/godotenv"

	"github.com/jobhive/portal-client/internal/config"
	"github.com/jobhive/portal-client/internal/core/domain"
	"github.com/jobhive/portal-client/internal/core/ports"
	"github.com/jobhive/portal-client/internal/core/service"
	"github.com/jobhive/portal-client/internal/infrastructure/backend"
	filestore "github.com/jobhive/portal-client/internal/infrastructure/storage/file"
	"github.com/jobhive/portal-client/internal/infrastructure/storage/memory"
	redisstore "github.com/jobhive/portal-client/internal/infrastructure/storage/redis"
	"github.com/jobhive/portal-client/pkg/logger"
)

const usage = `usage: portalctl <command> [flags]

commands:
  login      -email <addr> -password <pw>
  register   -email <addr> -password <pw> -name <full name> -role <job_seeker|employer> [-company <name>]
  logout
  whoami
  jobs       [-q <text>] [-location <loc>] [-type <job type>] [-min-salary <n>]
  job        -id <n>
  apply      -job <n> [-cover <text>] [-resume <n>]
  alerts
`

// app bundles the wired-up layers each command works against.
type app struct {
	client  *backend.Client
	session *service.SessionService
}

func main() {
	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, "portalctl:", err)
		os.Exit(1)
	}
}

func run() error {
	_ = godotenv.Load()

	if len(os.Args) < 2 {
		fmt.Fprint(os.Stderr, usage)
		return fmt.Errorf("missing command")
	}
	command, args := os.Args[1], os.Args[2:]

	ctx := context.Background()
	cfg, err := config.LoadClient(ctx)
	if err != nil {
		return err
	}

	logger.Init(logger.Options{Level: cfg.LogLevel, Pretty: true})

	storage, err := buildStorage(ctx, cfg)
	if err != nil {
		return err
	}

	client := backend.New(backend.Config{
		BaseURL: cfg.BaseURL,
		Storage: storage,
		Timeout: cfg.Timeout,
		Logger:  logger.Named("gateway"),
	})
	session := service.NewSessionService(storage, client, logger.Named("session"))

	a := &app{client: client, session: session}

	switch command {
	case "login":
		return a.login(ctx, args)
	case "register":
		return a.register(ctx, args)
	case "logout":
		a.session.Logout(ctx)
		fmt.Println("logged out")
		return nil
	case "whoami":
		return a.whoami(ctx)
	case "jobs":
		return a.jobs(ctx, args)
	case "job":
		return a.job(ctx, args)
	case "apply":
		return a.apply(ctx, args)
	case "alerts":
		return a.alerts(ctx)
	default:
		fmt.Fprint(os.Stderr, usage)
		return fmt.Errorf("unknown command %q", command)
	}
}

func buildStorage(ctx context.Context, cfg *config.Client) (ports.SessionStorage, error) {
	switch cfg.Session.Backend {
	case "file", "":
		store, err := filestore.New(filestore.Config{Dir: cfg.Session.Dir, Key: cfg.Session.Key})
		if err != nil {
			return nil, err
		}
		return store, nil
	case "redis":
		client, err := redisstore.Connect(ctx, redisstore.Config{Addr: cfg.Redis.Addr, DB: cfg.Redis.DB})
		if err != nil {
			return nil, err
		}
		return redisstore.NewStore(client), nil
	case "memory":
		return memory.New(), nil
	default:
		return nil, fmt.Errorf("unknown session backend %q", cfg.Session.Backend)
	}
}

func (a *app) login(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("login", flag.ExitOnError)
	email := fs.String("email", "", "account email")
	password := fs.String("password", "", "account password")
	_ = fs.Parse(args)
	if *email == "" || *password == "" {
		return fmt.Errorf("login requires -email and -password")
	}

	res, err := a.client.Login(ctx, *email, *password)
	if err != nil {
		return err
	}
	if err := a.session.Login(ctx, res.User, res.Token); err != nil {
		return err
	}
	fmt.Printf("logged in as %s (%s)\n", res.User.FullName, res.User.Role)
	return nil
}

func (a *app) register(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("register", flag.ExitOnError)
	email := fs.String("email", "", "account email")
	password := fs.String("password", "", "account password")
	name := fs.String("name", "", "full name")
	role := fs.String("role", domain.RoleJobSeeker, "account role")
	company := fs.String("company", "", "company name (employers)")
	_ = fs.Parse(args)

	res, err := a.client.Register(ctx, domain.RegisterRequest{
		Email:       *email,
		Password:    *password,
		FullName:    *name,
		Role:        *role,
		CompanyName: *company,
	})
	if err != nil {
		return err
	}
	if err := a.session.Login(ctx, res.User, res.Token); err != nil {
		return err
	}
	fmt.Printf("registered %s as %s\n", res.User.Email, res.User.Role)
	return nil
}

func (a *app) whoami(ctx context.Context) error {
	snap := a.session.Initialize(ctx)
	if !snap.Authenticated() {
		fmt.Println("not logged in")
		return nil
	}
	return printJSON(snap.User)
}

func (a *app) jobs(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("jobs", flag.ExitOnError)
	q := fs.String("q", "", "keyword query")
	location := fs.String("location", "", "location filter")
	jobType := fs.String("type", "", "job type filter")
	minSalary := fs.Float64("min-salary", 0, "minimum salary")
	_ = fs.Parse(args)

	var (
		jobs []domain.Job
		err  error
	)
	if *q == "" && *location == "" && *jobType == "" && *minSalary == 0 {
		jobs, err = a.client.Jobs(ctx)
	} else {
		jobs, err = a.client.SearchJobs(ctx, domain.JobSearch{
			Query:     *q,
			Location:  *location,
			JobType:   *jobType,
			MinSalary: *minSalary,
		})
	}
	if err != nil {
		return err
	}

	for _, job := range jobs {
		fmt.Printf("%6d  %-30s  %-20s  %s\n", job.ID, job.Title, job.CompanyName, job.Location)
	}
	return nil
}

func (a *app) job(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("job", flag.ExitOnError)
	id := fs.Int64("id", 0, "job id")
	_ = fs.Parse(args)
	if *id == 0 {
		return fmt.Errorf("job requires -id")
	}

	job, err := a.client.Job(ctx, *id)
	if err != nil {
		return err
	}
	return printJSON(job)
}

func (a *app) apply(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("apply", flag.ExitOnError)
	jobID := fs.Int64("job", 0, "job id")
	cover := fs.String("cover", "", "cover letter text")
	resumeID := fs.Int64("resume", 0, "resume id")
	_ = fs.Parse(args)
	if *jobID == 0 {
		return fmt.Errorf("apply requires -job")
	}

	if snap := a.session.Initialize(ctx); !snap.Authenticated() {
		return domain.ErrNotAuthenticated
	}

	app, err := a.client.Apply(ctx, domain.Application{
		JobID:       *jobID,
		ResumeID:    *resumeID,
		CoverLetter: *cover,
	})
	if err != nil {
		return err
	}
	fmt.Printf("application %d submitted (%s)\n", app.ID, app.Status)
	return nil
}

func (a *app) alerts(ctx context.Context) error {
	alerts, err := a.client.JobAlerts(ctx)
	if err != nil {
		return err
	}
	return printJSON(alerts)
}

func printJSON(v any) error {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
