package main

import (
	"context"
	"flag"
	"log"

	"cloud.google.com/go/firestore"
	"github.com/google/uuid"

	"clubhub-backend/internal/config"
	"clubhub-backend/internal/domain"
	"clubhub-backend/internal/logger"
	fsrepo "clubhub-backend/internal/repository/firestore"
)

// Seeds sample events and sessions so the calendar and dashboard have data
// to show on a fresh project.

var sampleSessions = []domain.Session{
	{
		Title:       "HTML Foundations Live",
		Date:        "2025-11-12",
		Time:        "6:00 PM",
		Type:        "Workshop",
		Description: "What is HTML, inline vs block elements, semantic tags, box model.",
		Location:    "Lab 101",
		Instructor:  "Club Lead",
		Status:      "scheduled",
		Topics:      []string{"HTML", "Web Fundamentals", "Semantic Tags"},
	},
	{
		Title:       "CSS Core Concepts I",
		Date:        "2025-11-14",
		Time:        "6:00 PM",
		Type:        "Workshop",
		Description: "Selectors, specificity, flexbox, building the first layout.",
		Location:    "Lab 101",
		Instructor:  "Club Lead",
		Status:      "scheduled",
		Topics:      []string{"CSS", "Flexbox", "Layout"},
	},
	{
		Title:       "Git & GitHub Collab Night",
		Date:        "2025-11-19",
		Time:        "7:00 PM",
		Type:        "Hands-on",
		Description: "Branching, pull requests, resolving conflicts on a shared repo.",
		Location:    "Lab 102",
		Instructor:  "Mentor Team",
		Status:      "scheduled",
		Topics:      []string{"Git", "GitHub", "Collaboration"},
	},
	{
		Title:       "Intro to APIs with Go",
		Date:        "2025-11-26",
		Time:        "6:30 PM",
		Type:        "Workshop",
		Description: "HTTP basics, JSON, building and calling a small REST API.",
		Location:    "Lab 101",
		Instructor:  "Guest Engineer",
		Status:      "scheduled",
		Topics:      []string{"Go", "REST", "JSON"},
	},
}

var sampleEvents = []domain.Event{
	{
		Title:       "Wednesday & Friday build nights",
		Date:        "2025-11-12",
		Time:        "6:00 PM",
		Location:    "Club Room",
		Description: "Weekly build nights for active project squads.",
	},
	{
		Title:       "Lightning Talks: Ship & Tell",
		Date:        "2025-11-21",
		Time:        "7:00 PM",
		Location:    "Auditorium",
		Description: "Five-minute demos of what members shipped this month.",
	},
	{
		Title:       "Winter Hack Night",
		Date:        "2025-12-05",
		Time:        "5:00 PM",
		Location:    "Main Hall",
		Description: "An evening sprint with mentors on site and pizza on tap.",
	},
}

func main() {
	configPath := flag.String("config", "config/config.dev.yaml", "Path to configuration file")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	logger.Initialize(cfg.Log.Level, cfg.Log.Format)
	logger.Info("Seeding sample events and sessions...", "project_id", cfg.Firestore.ProjectID)

	ctx := context.Background()
	client, err := fsrepo.NewClient(ctx, cfg.Firestore.ProjectID, cfg.Firestore.CredentialsFile)
	if err != nil {
		logger.Error("Failed to connect to Firestore", "error", err)
		log.Fatalf("Failed to connect to Firestore: %v", err)
	}
	defer client.Close()

	if err := seedCollection(ctx, client, "sessions", len(sampleSessions), func(i int) interface{} {
		return sampleSessions[i]
	}); err != nil {
		log.Fatalf("Failed to seed sessions: %v", err)
	}
	if err := seedCollection(ctx, client, "events", len(sampleEvents), func(i int) interface{} {
		return sampleEvents[i]
	}); err != nil {
		log.Fatalf("Failed to seed events: %v", err)
	}

	logger.Info("Seeding complete", "sessions", len(sampleSessions), "events", len(sampleEvents))
}

func seedCollection(ctx context.Context, client *firestore.Client, collection string, n int, doc func(int) interface{}) error {
	for i := 0; i < n; i++ {
		id := uuid.NewString()
		if _, err := client.Collection(collection).Doc(id).Create(ctx, doc(i)); err != nil {
			return err
		}
		logger.Info("Seeded document", "collection", collection, "id", id)
	}
	return nil
}
