package repositories

import (
	"testing"
	"time"

	"github.com/codetok-app/backend/internal/models"
	"gorm.io/gorm"
)

func createTestNotification(t *testing.T, db *gorm.DB, recipientID, actorID uint, notifType string, createdAt time.Time) *models.Notification {
	t.Helper()
	notif := &models.Notification{
		Type:        notifType,
		ActorID:     actorID,
		RecipientID: recipientID,
		EntityID:    "entity",
		EntityType:  models.EntityTypeProject,
		CreatedAt:   createdAt,
	}
	if err := db.Create(notif).Error; err != nil {
		t.Fatalf("failed to create notification: %v", err)
	}
	return notif
}

func TestGetByRecipientIDPagination(t *testing.T) {
	db := setupTestDB(t)
	repo := NewPostgresNotificationRepository(db)
	recipient := createTestUser(t, db, "recipient")
	actor := createTestUser(t, db, "actor")

	base := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	for i := 0; i < 5; i++ {
		createTestNotification(t, db, recipient.ID, actor.ID, models.NotificationTypeLike, base.Add(time.Duration(i)*time.Minute))
	}

	page1, total, err := repo.GetByRecipientID(recipient.ID, 1, 2)
	if err != nil {
		t.Fatalf("GetByRecipientID failed: %v", err)
	}
	if total != 5 {
		t.Errorf("total = %d, want 5", total)
	}
	if len(page1) != 2 {
		t.Fatalf("page size = %d, want 2", len(page1))
	}
	// Newest first
	if !page1[0].CreatedAt.After(page1[1].CreatedAt) {
		t.Errorf("expected newest-first order, got %v then %v", page1[0].CreatedAt, page1[1].CreatedAt)
	}

	page3, _, err := repo.GetByRecipientID(recipient.ID, 3, 2)
	if err != nil {
		t.Fatalf("GetByRecipientID page 3 failed: %v", err)
	}
	if len(page3) != 1 {
		t.Errorf("last page size = %d, want 1", len(page3))
	}
}

func TestMarkAsReadScopedToRecipient(t *testing.T) {
	db := setupTestDB(t)
	repo := NewPostgresNotificationRepository(db)
	recipient := createTestUser(t, db, "recipient")
	other := createTestUser(t, db, "other")
	actor := createTestUser(t, db, "actor")

	notif := createTestNotification(t, db, recipient.ID, actor.ID, models.NotificationTypeFollow, time.Now())

	// Another user cannot mark it
	if err := repo.MarkAsRead(notif.ID, other.ID); err != nil {
		t.Fatalf("MarkAsRead failed: %v", err)
	}
	var reloaded models.Notification
	db.First(&reloaded, notif.ID)
	if reloaded.IsRead {
		t.Error("notification marked read by a non-recipient")
	}

	// The recipient can, and re-marking is a no-op
	if err := repo.MarkAsRead(notif.ID, recipient.ID); err != nil {
		t.Fatalf("MarkAsRead failed: %v", err)
	}
	db.First(&reloaded, notif.ID)
	if !reloaded.IsRead {
		t.Error("notification not marked read by the recipient")
	}
	if err := repo.MarkAsRead(notif.ID, recipient.ID); err != nil {
		t.Errorf("re-marking read returned error: %v", err)
	}
}

func TestMarkAllAsReadIdempotent(t *testing.T) {
	db := setupTestDB(t)
	repo := NewPostgresNotificationRepository(db)
	recipient := createTestUser(t, db, "recipient")
	bystander := createTestUser(t, db, "bystander")
	actor := createTestUser(t, db, "actor")

	now := time.Now()
	createTestNotification(t, db, recipient.ID, actor.ID, models.NotificationTypeLike, now)
	createTestNotification(t, db, recipient.ID, actor.ID, models.NotificationTypeComment, now)
	createTestNotification(t, db, bystander.ID, actor.ID, models.NotificationTypeLike, now)

	count, err := repo.GetUnreadCount(recipient.ID)
	if err != nil || count != 2 {
		t.Fatalf("unread count = (%d, %v), want (2, nil)", count, err)
	}

	if err := repo.MarkAllAsRead(recipient.ID); err != nil {
		t.Fatalf("MarkAllAsRead failed: %v", err)
	}
	count, _ = repo.GetUnreadCount(recipient.ID)
	if count != 0 {
		t.Errorf("unread count after mark-all = %d, want 0", count)
	}

	// Second invocation is a no-op, not an error
	if err := repo.MarkAllAsRead(recipient.ID); err != nil {
		t.Errorf("second MarkAllAsRead returned error: %v", err)
	}

	// Other users' notifications are untouched
	count, _ = repo.GetUnreadCount(bystander.ID)
	if count != 1 {
		t.Errorf("bystander unread count = %d, want 1", count)
	}
}
