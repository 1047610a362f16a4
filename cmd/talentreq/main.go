// cmd/talentreq/main.go
package main

import (
	"bufio"
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"talentreq-client/internal/chat"
	"talentreq-client/internal/common/config"
	"talentreq-client/internal/common/database"
	stderrors "talentreq-client/internal/common/errors"
	"talentreq-client/internal/common/logger"
	"talentreq-client/internal/gateway"
	"talentreq-client/internal/models"
	"talentreq-client/internal/screening"
	"talentreq-client/internal/session"
	"talentreq-client/internal/transform"
)

type consoleNavigator struct {
	log logger.Logger
}

func (n consoleNavigator) Navigate(route session.Route) {
	n.log.Info("navigate", map[string]interface{}{"route": string(route)})
}

func main() {
	var (
		loginFlag    = flag.Bool("login", false, "sign in; reads email and password from stdin")
		registerFlag = flag.Bool("register", false, "create an account; reads email, password and name from stdin")
		logoutFlag   = flag.Bool("logout", false, "sign out and clear stored credentials")
		jobsFlag     = flag.Bool("jobs", false, "list open jobs, newest first")
		searchFlag   = flag.String("search", "", "search jobs via the backend query endpoint")
		filterFlag   = flag.String("filter", "", "narrow the listed jobs by title or company, locally")
		selectFlag   = flag.String("select", "", "open the screening view for a requisition id")
		chatFlag     = flag.String("chat", "", "ask the assistant about the current screening session")
		pageFlag     = flag.Int("page", 1, "page of the job list to print")
		pageSizeFlag = flag.Int("page-size", 10, "jobs per page")
	)
	flag.Parse()

	zapLog := logger.New("info", "console")
	defer zapLog.Sync()

	log := logger.NewZapAdapter(zapLog)

	cfg, err := config.Load()
	if err != nil {
		zapLog.Fatal("config load failed", zap.Error(err))
	}

	if cfg.Metrics.Enabled {
		go serveMetrics(cfg.Metrics.Address, zapLog)
	}

	ctx := context.Background()

	// --- Optional Redis for the cross-process screening cache ---
	var cache *session.Cache
	if cfg.Redis.Enabled {
		var redis *database.RedisClient
		err = retryWithBackoff(func() error {
			var err error
			redis, err = database.NewRedis(cfg.Redis)
			if err != nil {
				return err
			}
			return redis.Ping(ctx)
		}, 3, 2*time.Second, zapLog, "Redis connection")

		if err != nil {
			zapLog.Warn("redis unavailable, continuing without screening cache", zap.Error(err))
		} else {
			defer redis.Close()
			cache = session.NewCache(redis)
		}
	}

	creds, err := session.NewKeyringCredentials(cfg.Session.KeyringService, cfg.Session.StateDir)
	if err != nil {
		zapLog.Fatal("credential store init failed", zap.Error(err))
	}

	gw := gateway.New(gateway.Options{
		JobsBaseURL: cfg.Gateway.BaseURL,
		AuthBaseURL: cfg.Auth.BaseURL,
		ChatBaseURL: cfg.Chat.BaseURL,
		Timeout:     config.GetDuration(cfg.Gateway.Timeout),
		Tokens:      creds,
		Logger:      log,
	})

	store := session.NewStore(session.Dependencies{
		Credentials: creds,
		Backend:     gw,
		Navigator:   consoleNavigator{log: log},
		Cache:       cache,
		Logger:      log,
	})
	if err := store.Init(ctx); err != nil {
		zapLog.Fatal("session init failed", zap.Error(err))
	}
	defer store.Close()

	handoff := screening.NewHandoff(store, gw, log)
	assistant := chat.NewAssistant(store, gw, log)

	switch {
	case *loginFlag:
		err = runLogin(ctx, store)
	case *registerFlag:
		err = runRegister(ctx, store)
	case *logoutFlag:
		err = store.Logout(ctx)
	case *jobsFlag:
		err = runJobs(ctx, gw, "", *filterFlag, *pageFlag, *pageSizeFlag)
	case *searchFlag != "":
		err = runJobs(ctx, gw, *searchFlag, *filterFlag, *pageFlag, *pageSizeFlag)
	case *selectFlag != "":
		err = runSelect(ctx, gw, handoff, store, *selectFlag)
	case *chatFlag != "":
		err = runChat(ctx, assistant, *chatFlag)
	default:
		flag.Usage()
		return
	}

	if err != nil {
		fmt.Fprintln(os.Stderr, stderrors.UserMessage(err))
		zapLog.Fatal("command failed", zap.Error(err))
	}
}

func runLogin(ctx context.Context, store *session.Store) error {
	email, err := prompt("Email: ")
	if err != nil {
		return err
	}
	password, err := prompt("Password: ")
	if err != nil {
		return err
	}

	if err := store.Login(ctx, email, password); err != nil {
		return err
	}

	snap := store.Snapshot()
	fmt.Printf("Signed in as %s (%s)\n", snap.User.Name, snap.User.Email)
	return nil
}

func runRegister(ctx context.Context, store *session.Store) error {
	email, err := prompt("Email: ")
	if err != nil {
		return err
	}
	password, err := prompt("Password: ")
	if err != nil {
		return err
	}
	name, err := prompt("Full name: ")
	if err != nil {
		return err
	}

	if err := store.Register(ctx, email, password, name); err != nil {
		return err
	}

	fmt.Println("Account created. Sign in with -login.")
	return nil
}

func runJobs(ctx context.Context, gw *gateway.Client, query, filter string, page, pageSize int) error {
	var (
		jobs []models.Job
		err  error
	)
	if query == "" {
		jobs, err = gw.ListJobs(ctx)
	} else {
		jobs, err = gw.SearchJobs(ctx, query)
	}
	if err != nil {
		return err
	}

	if filter != "" {
		jobs = transform.FilterJobs(jobs, filter)
	}

	pageJobs := transform.Paginate(jobs, page, pageSize)
	for _, job := range pageJobs {
		fmt.Printf("%-14s %-40s %-24s %s\n",
			job.RequisitionID, job.Title, job.CompanyDisplayName, job.Location)
	}
	fmt.Printf("%d of %d jobs (page %d)\n", len(pageJobs), len(jobs), page)
	return nil
}

func runSelect(ctx context.Context, gw *gateway.Client, handoff *screening.Handoff, store *session.Store, requisitionID string) error {
	jobs, err := gw.ListJobs(ctx)
	if err != nil {
		return err
	}

	var job *models.Job
	for i := range jobs {
		if jobs[i].RequisitionID == requisitionID {
			job = &jobs[i]
			break
		}
	}
	if job == nil {
		return fmt.Errorf("no job with requisition id %q", requisitionID)
	}

	if err := handoff.SelectJob(ctx, *job); err != nil {
		return err
	}

	roster := store.Roster()
	if roster == nil {
		return nil
	}

	fmt.Printf("%s at %s, session %s\n", job.Title, job.CompanyDisplayName, store.SessionID())
	for _, t := range roster.Talents {
		fmt.Printf("%6d %-28s %-20s match %.1f\n",
			t.EmployeeID, t.EmployeeName, t.Role, t.MatchScore)
	}
	return nil
}

func runChat(ctx context.Context, assistant *chat.Assistant, query string) error {
	reply, err := assistant.Send(ctx, query)
	if err != nil {
		return err
	}
	fmt.Println(reply)
	return nil
}

func prompt(label string) (string, error) {
	fmt.Print(label)
	reader := bufio.NewReader(os.Stdin)
	line, err := reader.ReadString('\n')
	if err != nil {
		return "", fmt.Errorf("read input: %w", err)
	}
	return strings.TrimSpace(line), nil
}

// retryWithBackoff attempts to execute a function with exponential backoff
func retryWithBackoff(operation func() error, maxRetries int, initialDelay time.Duration, log *zap.Logger, operationName string) error {
	var err error
	delay := initialDelay

	for i := 0; i < maxRetries; i++ {
		err = operation()
		if err == nil {
			return nil
		}

		if i < maxRetries-1 {
			log.Warn(fmt.Sprintf("%s failed, retrying...", operationName),
				zap.Error(err),
				zap.Int("attempt", i+1),
				zap.Int("maxRetries", maxRetries),
				zap.Duration("nextRetryIn", delay),
			)
			time.Sleep(delay)
			delay *= 2 // Exponential backoff
		}
	}

	return fmt.Errorf("%s failed after %d attempts: %w", operationName, maxRetries, err)
}

func serveMetrics(addr string, log *zap.Logger) {
	mux := http.NewServeMux()
	mux.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(map[string]string{
			"status": "healthy",
			"time":   time.Now().Format(time.RFC3339),
		})
	})
	mux.Handle("/metrics", promhttp.Handler())
	log.Info("Health/Metrics server listening", zap.String("addr", addr))
	if err := http.ListenAndServe(addr, mux); err != nil {
		log.Error("Health/Metrics server failed", zap.Error(err))
	}
}
