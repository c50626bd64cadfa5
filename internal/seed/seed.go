// Package seed loads a demo workspace so dashboards, insights and task
// extraction have data to work with on a fresh database.
package seed

import (
	"context"
	"time"

	"rima-workspace/internal/model"
	"rima-workspace/internal/workspace/repository"
	"rima-workspace/pkg/log"
)

// Seeder populates the store with demo content on startup.
type Seeder struct {
	l    log.Logger
	repo repository.Repository
}

func New(l log.Logger, repo repository.Repository) Seeder {
	return Seeder{l: l, repo: repo}
}

// Run seeds the demo workspace. It is idempotent at the workspace-title
// level: if a workspace named like the demo already exists, nothing is
// written.
func (s Seeder) Run(ctx context.Context) error {
	existing, err := s.repo.ListWorkspaces(ctx)
	if err != nil {
		return err
	}
	for _, ws := range existing {
		if ws.Title == demoWorkspaceTitle {
			s.l.Infof(ctx, "Demo workspace already present, skipping seed")
			return nil
		}
	}

	s.l.Infof(ctx, "Seeding demo workspace %q", demoWorkspaceTitle)
	return s.seedDemoWorkspace(ctx)
}

const demoWorkspaceTitle = "Website Relaunch"

var demoMembers = []model.User{
	{ID: "u-ana", Name: "Ana", Avatar: "🦊"},
	{ID: "u-sam", Name: "Sam", Avatar: "🐼"},
	{ID: "u-lea", Name: "Lea", Avatar: "🦉"},
}

func (s Seeder) seedDemoWorkspace(ctx context.Context) error {
	progress := 45

	ws, err := s.repo.CreateWorkspace(ctx, repository.CreateWorkspaceOptions{
		Title:    demoWorkspaceTitle,
		Budget:   "€1000",
		Deadline: "2026-10-15",
		Progress: &progress,
	})
	if err != nil {
		return err
	}

	for _, m := range demoMembers {
		if _, err := s.repo.AddMember(ctx, repository.AddMemberOptions{
			WorkspaceID: ws.ID,
			User:        m,
		}); err != nil {
			return err
		}
	}

	room, err := s.repo.CreateRoom(ctx, repository.CreateRoomOptions{
		WorkspaceID: ws.ID,
		Title:       "design-chat",
	})
	if err != nil {
		return err
	}

	if err := s.seedMessages(ctx, ws.ID, room.ID); err != nil {
		return err
	}
	if err := s.seedTasks(ctx, ws.ID); err != nil {
		return err
	}
	return s.seedSpending(ctx, ws.ID)
}

// seedMessages writes a short conversation. Several lines deliberately
// carry task and deadline phrasing so extraction finds candidates.
func (s Seeder) seedMessages(ctx context.Context, workspaceID, roomID string) error {
	base := time.Now().Add(-2 * time.Hour)

	type line struct {
		sender  model.Sender
		roomID  string
		content string
	}

	lines := []line{
		{model.UserSender(demoMembers[0]), "", "Welcome everyone! This workspace tracks the relaunch."},
		{model.AssistantSender(), "", "Hi! I'm Rima. I'll keep an eye on tasks and deadlines here."},
		{model.UserSender(demoMembers[1]), "", "TODO: collect copy for the landing page"},
		{model.UserSender(demoMembers[0]), "", "We need to book the photographer by friday"},
		{model.UserSender(demoMembers[2]), "", "What's the budget left for stock photos?"},
		{model.UserSender(demoMembers[0]), roomID, "New mockups are up, feedback welcome"},
		{model.UserSender(demoMembers[1]), roomID, "[ ] review the color palette"},
		{model.UserSender(demoMembers[2]), roomID, "Can we ship the hero section next week?"},
	}

	for i, ln := range lines {
		if _, err := s.repo.CreateMessage(ctx, repository.CreateMessageOptions{
			WorkspaceID: workspaceID,
			RoomID:      ln.roomID,
			Sender:      ln.sender,
			Content:     ln.content,
			Timestamp:   base.Add(time.Duration(i) * time.Minute),
		}); err != nil {
			return err
		}
	}
	return nil
}

func (s Seeder) seedTasks(ctx context.Context, workspaceID string) error {
	tasks := []repository.CreateTaskOptions{
		{
			WorkspaceID: workspaceID,
			Title:       "Draft sitemap",
			Owner:       "Ana",
			Assignee:    "Sam",
			Status:      model.TaskStatusCompleted,
			Priority:    model.TaskPriorityMedium,
			Source:      model.TaskSourceManual,
		},
		{
			WorkspaceID: workspaceID,
			Title:       "Migrate blog posts",
			Owner:       "Ana",
			Assignee:    "Lea",
			DueDate:     "2026-09-20",
			Status:      model.TaskStatusInProgress,
			Priority:    model.TaskPriorityHigh,
			Source:      model.TaskSourceManual,
		},
		{
			WorkspaceID: workspaceID,
			Title:       "Set up staging environment",
			Owner:       "Sam",
			Status:      model.TaskStatusPending,
			Priority:    model.TaskPriorityLow,
			Source:      model.TaskSourceManual,
		},
	}

	for _, opt := range tasks {
		if _, err := s.repo.CreateTask(ctx, opt); err != nil {
			return err
		}
	}
	return nil
}

func (s Seeder) seedSpending(ctx context.Context, workspaceID string) error {
	entries := []repository.CreateSpendingOptions{
		{WorkspaceID: workspaceID, Amount: "€240", Category: "Stock photos"},
		{WorkspaceID: workspaceID, Amount: "€120.50", Category: "Fonts"},
		{WorkspaceID: workspaceID, Amount: "€89", Category: "Hosting"},
	}

	for _, opt := range entries {
		if _, err := s.repo.CreateSpending(ctx, opt); err != nil {
			return err
		}
	}
	return nil
}
