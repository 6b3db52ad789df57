package main

import (
	"context"
	"log/slog"
	"os"

	"github.com/google/uuid"

	"eventdirectory/config"
	"eventdirectory/internal/domain"
	"eventdirectory/internal/services"
	"eventdirectory/internal/store"
)

// Seeds the file store with a demo event and one user per access tier. Every
// user signs in with AUTH_CREDENTIALS_SEED_PASSWORD. Safe to re-run: existing
// data is left alone.
func main() {
	cfg, err := config.Load()
	if err != nil {
		slog.Error("Failed to load configuration", "error", err)
		os.Exit(1)
	}
	logger := config.NewLogger()

	snapshots := store.NewFileStore(cfg.DataFile)
	ctx := context.Background()

	err = snapshots.Update(ctx, func(snap *domain.Snapshot) error {
		if len(snap.Users) > 0 || len(snap.Events) > 0 {
			logger.Info("Store already seeded, leaving it alone", "path", cfg.DataFile)
			return nil
		}

		snap.Users = []*domain.User{
			{
				ID:    uuid.NewString(),
				Email: "admin@example.com",
				Name:  "Ada Admin",
				Role:  domain.RoleAdmin,
				Plan:  domain.PlanFree,
			},
			{
				ID:      uuid.NewString(),
				Email:   "free@example.com",
				Name:    "Frida Free",
				Role:    domain.RoleUser,
				Plan:    domain.PlanFree,
				Company: "Initech",
				Title:   "Engineer",
			},
			{
				ID:                  uuid.NewString(),
				Email:               "verified@example.com",
				Name:                "Vera Verified",
				Role:                domain.RoleUser,
				Plan:                domain.PlanFree,
				VerifiedEmailDomain: true,
				Company:             "Globex",
				Title:               "Designer",
			},
			{
				ID:                 uuid.NewString(),
				Email:              "pro@example.com",
				Name:               "Paula Pro",
				Role:               domain.RoleUser,
				Plan:               domain.PlanPro,
				SubscriptionStatus: domain.SubscriptionActive,
				Company:            "Initech",
				Title:              "CTO",
			},
		}

		snap.Events = []*domain.Event{
			{
				Slug:        "gophercon-2026",
				Name:        "GopherCon 2026",
				Description: "The annual Go conference.",
				City:        "Chicago",
				Country:     "USA",
				StartAt:     "2026-10-05",
				EndAt:       "2026-10-08",
				Tags:        []string{"go", "conference"},
			},
		}

		for _, u := range snap.Users {
			if u.Role == domain.RoleAdmin {
				continue
			}
			snap.Attendances = append(snap.Attendances, &domain.Attendance{
				EventSlug:  "gophercon-2026",
				UserID:     u.ID,
				State:      domain.StateInterested,
				Visibility: domain.VisibilityPublic,
				UpdatedAt:  services.NowISO(),
			})
		}
		return nil
	})
	if err != nil {
		logger.Error("Seeding failed", "error", err)
		os.Exit(1)
	}

	logger.Info("Seed complete", "path", cfg.DataFile)
}
