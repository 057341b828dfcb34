package sqlrepo

import (
	"context"
	"database/sql"
	"errors"
	"testing"

	_ "github.com/mattn/go-sqlite3"

	"voting-poll/internal/domain/poll"
	"voting-poll/internal/domain/user"
)

func openTestDB(t *testing.T) *sql.DB {
	t.Helper()
	db, err := sql.Open("sqlite3", ":memory:")
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	// every pooled connection would get its own :memory: database
	db.SetMaxOpenConns(1)
	t.Cleanup(func() { db.Close() })

	if err := Migrate(context.Background(), db, "sqlite3"); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	return db
}

func TestMigrateRejectsUnknownDriver(t *testing.T) {
	if err := Migrate(context.Background(), nil, "oracle"); err == nil {
		t.Fatalf("expected unsupported driver error")
	}
}

func TestUserRepoRoundTrip(t *testing.T) {
	repo := NewUserRepo(openTestDB(t))
	ctx := context.Background()

	u := &user.User{Email: "a@example.com", PasswordHash: "hash", Role: user.RoleUser, IsActive: true}
	if err := repo.Create(ctx, u); err != nil {
		t.Fatalf("create: %v", err)
	}
	if u.ID == 0 {
		t.Fatalf("expected id to be assigned")
	}
	dup := &user.User{Email: "a@example.com", PasswordHash: "x", Role: user.RoleUser, IsActive: true}
	if err := repo.Create(ctx, dup); !errors.Is(err, user.ErrEmailTaken) {
		t.Fatalf("expected email taken, got %v", err)
	}

	got, err := repo.GetByEmail(ctx, "a@example.com")
	if err != nil {
		t.Fatalf("get by email: %v", err)
	}
	if got.ID != u.ID || got.PasswordHash != "hash" || !got.IsActive {
		t.Fatalf("unexpected user %+v", got)
	}

	if err := repo.UpdateRole(ctx, u.ID, user.RoleAdmin); err != nil {
		t.Fatalf("update role: %v", err)
	}
	if err := repo.Deactivate(ctx, u.ID); err != nil {
		t.Fatalf("deactivate: %v", err)
	}
	got, err = repo.GetByID(ctx, u.ID)
	if err != nil {
		t.Fatalf("get by id: %v", err)
	}
	if got.Role != user.RoleAdmin || got.IsActive {
		t.Fatalf("updates not stored: %+v", got)
	}

	if _, err := repo.GetByID(ctx, 999); !errors.Is(err, sql.ErrNoRows) {
		t.Fatalf("expected no rows, got %v", err)
	}
	if err := repo.Deactivate(ctx, 999); !errors.Is(err, sql.ErrNoRows) {
		t.Fatalf("expected no rows on missing user, got %v", err)
	}

	list, err := repo.List(ctx)
	if err != nil || len(list) != 1 {
		t.Fatalf("expected one user, got %d, %v", len(list), err)
	}
}

func TestPollJournalRestoresRegistry(t *testing.T) {
	db := openTestDB(t)
	ctx := context.Background()

	first := poll.NewRegistry(NewPollJournal(db))
	std, err := first.CreatePoll(ctx, poll.CreatePollInput{
		Name: "Name1", Description: "Description1", VotingChoice: 1, IsStandard: true,
		Fixed: []poll.FixedProposal{{Name: "Yes"}, {Name: "No"}},
	}, 1)
	if err != nil {
		t.Fatalf("create standard poll: %v", err)
	}
	open, err := first.CreatePoll(ctx, poll.CreatePollInput{Name: "Name2", VotingChoice: 1}, 1)
	if err != nil {
		t.Fatalf("create open poll: %v", err)
	}
	propID, err := first.CreateProposal(ctx, "Name1", "Description1", open, 2)
	if err != nil {
		t.Fatalf("create proposal: %v", err)
	}
	if err := first.ActivateProposal(ctx, propID, open, 1); err != nil {
		t.Fatalf("activate: %v", err)
	}

	second := poll.NewRegistry(NewPollJournal(db))
	if err := second.Restore(ctx); err != nil {
		t.Fatalf("restore: %v", err)
	}
	if second.PollAmount() != 2 {
		t.Fatalf("expected 2 polls, got %d", second.PollAmount())
	}
	p, err := second.GetPoll(std)
	if err != nil {
		t.Fatalf("get poll: %v", err)
	}
	if p.Name != "Name1" || p.VotingChoice != 1 || !p.IsStandard || len(p.ProposalIDs) != 2 {
		t.Fatalf("unexpected restored poll %+v", p)
	}
	pr, err := second.GetProposal(propID)
	if err != nil {
		t.Fatalf("get proposal: %v", err)
	}
	if !pr.Activated || pr.Author != 2 || pr.PollID != open {
		t.Fatalf("unexpected restored proposal %+v", pr)
	}
}

func TestPollJournalDuplicateIDFails(t *testing.T) {
	j := NewPollJournal(openTestDB(t))
	ctx := context.Background()

	p := &poll.Poll{ID: 0, Name: "a"}
	if err := j.AppendPoll(ctx, p, nil); err != nil {
		t.Fatalf("append poll: %v", err)
	}
	if err := j.AppendPoll(ctx, p, nil); err == nil {
		t.Fatalf("expected duplicate id to fail")
	}
	if err := j.MarkActivated(ctx, 42); !errors.Is(err, sql.ErrNoRows) {
		t.Fatalf("expected no rows for missing proposal, got %v", err)
	}
}
