package main

import (
	"context"
	"flag"
	"log"
	"net/http"

	httpapi "clubhub-backend/internal/api/http"
	"clubhub-backend/internal/config"
	"clubhub-backend/internal/jobs"
	"clubhub-backend/internal/logger"
	fsrepo "clubhub-backend/internal/repository/firestore"
	"clubhub-backend/internal/scheduler"
	"clubhub-backend/internal/security"
	"clubhub-backend/internal/service"
)

func main() {
	// Parse command-line flags
	configPath := flag.String("config", "config/config.dev.yaml", "Path to configuration file")
	flag.Parse()

	// Load configuration
	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	// Initialize logger
	logger.Initialize(cfg.Log.Level, cfg.Log.Format)
	logger.Info("Starting ClubHub Backend...", "log_level", cfg.Log.Level, "log_format", cfg.Log.Format)
	logger.Info("Server configuration", "address", cfg.GetServerAddress())
	logger.Info("Firestore configuration", "project_id", cfg.Firestore.ProjectID)

	// Initialize document store client. Constructed once here and injected;
	// nothing re-initializes it lazily.
	ctx := context.Background()
	client, err := fsrepo.NewClient(ctx, cfg.Firestore.ProjectID, cfg.Firestore.CredentialsFile)
	if err != nil {
		logger.Error("Failed to connect to Firestore", "error", err)
		log.Fatalf("Failed to connect to Firestore: %v", err)
	}
	defer client.Close()
	logger.Info("Firestore connection established")

	// Initialize Repositories
	store := fsrepo.NewStore(client)

	// Initialize Security
	tokenManager := security.NewTokenManager(cfg.JWT.Secret, cfg.JWT.AccessTokenExpiry)

	// Initialize Services
	authSvc := service.NewAuthService(store.MemberRepository, tokenManager)
	membershipSvc := service.NewMembershipService(store.MembershipRequestRepository, store.MemberRepository)
	memberSvc := service.NewMemberService(store.MemberRepository)
	projectSvc := service.NewProjectService(store.ProjectRepository, store.ProjectInterestRepository, store.MemberRepository)
	eventSvc := service.NewEventService(store.EventRepository)
	sessionSvc := service.NewSessionService(store.SessionRepository)
	dashboardSvc := service.NewDashboardService(
		store.MemberRepository,
		store.ProjectMembershipRepository,
		store.ProjectRepository,
		store.EventRepository,
		store.SessionRepository,
	)

	// Initialize HTTP handlers
	router := httpapi.NewRouter(httpapi.Handlers{
		Auth:       httpapi.NewAuthHandler(authSvc),
		Membership: httpapi.NewMembershipHandler(membershipSvc),
		Member:     httpapi.NewMemberHandler(memberSvc),
		Project:    httpapi.NewProjectHandler(projectSvc),
		Event:      httpapi.NewEventHandler(eventSvc),
		Dashboard:  httpapi.NewDashboardHandler(dashboardSvc, sessionSvc, cfg.Dashboard.PollIntervalSeconds),
	})

	// Start maintenance scheduler
	jobRunner := jobs.NewJobRunner(store, cfg)
	sched := scheduler.NewScheduler(jobRunner)
	sched.Start()
	defer sched.Stop()

	logger.Info("HTTP server listening", "address", cfg.GetServerAddress())
	if err := http.ListenAndServe(cfg.GetServerAddress(), router); err != nil {
		logger.Error("HTTP server error", "error", err)
		log.Fatalf("Failed to serve: %v", err)
	}
}
