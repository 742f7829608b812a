package services

import (
	"errors"
	"testing"

	"github.com/codetok-app/backend/internal/models"
	"github.com/google/uuid"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{Logger: logger.Default.LogMode(logger.Silent)})
	if err != nil {
		t.Fatalf("failed to open test database: %v", err)
	}
	sqlDB, err := db.DB()
	if err != nil {
		t.Fatalf("failed to get sql.DB: %v", err)
	}
	// Every connection to :memory: is a separate database
	sqlDB.SetMaxOpenConns(1)

	if err := db.AutoMigrate(
		&models.User{},
		&models.Project{},
		&models.Like{},
		&models.Favorite{},
		&models.Follow{},
		&models.Comment{},
		&models.Notification{},
		&models.Share{},
	); err != nil {
		t.Fatalf("failed to migrate test schema: %v", err)
	}
	return db
}

func createTestUser(t *testing.T, db *gorm.DB, name string) *models.User {
	t.Helper()
	user := &models.User{Name: name, Email: name + "@example.com"}
	if err := db.Create(user).Error; err != nil {
		t.Fatalf("failed to create user %s: %v", name, err)
	}
	return user
}

func createTestProject(t *testing.T, db *gorm.DB, owner *models.User) *models.Project {
	t.Helper()
	project := &models.Project{
		ID:       uuid.NewString(),
		UserID:   owner.ID,
		Title:    "Test Project",
		MainFile: "main.go",
		IsPublic: true,
	}
	if err := db.Create(project).Error; err != nil {
		t.Fatalf("failed to create project: %v", err)
	}
	return project
}

func likesCount(t *testing.T, db *gorm.DB, projectID string) int {
	t.Helper()
	var project models.Project
	if err := db.Where("id = ?", projectID).First(&project).Error; err != nil {
		t.Fatalf("failed to reload project: %v", err)
	}
	return project.LikesCount
}

func notificationCount(t *testing.T, db *gorm.DB, recipientID uint, notifType string) int64 {
	t.Helper()
	var count int64
	if err := db.Model(&models.Notification{}).
		Where("recipient_id = ? AND type = ?", recipientID, notifType).
		Count(&count).Error; err != nil {
		t.Fatalf("failed to count notifications: %v", err)
	}
	return count
}

func TestToggleLikeLifecycle(t *testing.T) {
	db := setupTestDB(t)
	svc := NewSocialService(db)
	owner := createTestUser(t, db, "owner")
	actor := createTestUser(t, db, "actor")
	project := createTestProject(t, db, owner)

	liked, err := svc.ToggleLike(actor.ID, project.ID)
	if err != nil {
		t.Fatalf("ToggleLike failed: %v", err)
	}
	if !liked {
		t.Error("expected liked=true after first toggle")
	}
	if got := likesCount(t, db, project.ID); got != 1 {
		t.Errorf("likes_count = %d, want 1", got)
	}

	// Exactly one unread "like" notification for the owner, with actor and project
	var notif models.Notification
	if err := db.Where("recipient_id = ?", owner.ID).First(&notif).Error; err != nil {
		t.Fatalf("expected a notification for the owner: %v", err)
	}
	if notif.Type != models.NotificationTypeLike || notif.ActorID != actor.ID ||
		notif.EntityID != project.ID || notif.EntityType != models.EntityTypeProject || notif.IsRead {
		t.Errorf("unexpected notification: %+v", notif)
	}

	// Toggle off: row removed, counter restored, notification untouched
	liked, err = svc.ToggleLike(actor.ID, project.ID)
	if err != nil {
		t.Fatalf("second ToggleLike failed: %v", err)
	}
	if liked {
		t.Error("expected liked=false after second toggle")
	}
	var likeRows int64
	db.Model(&models.Like{}).Where("user_id = ? AND project_id = ?", actor.ID, project.ID).Count(&likeRows)
	if likeRows != 0 {
		t.Errorf("like rows = %d, want 0", likeRows)
	}
	if got := likesCount(t, db, project.ID); got != 0 {
		t.Errorf("likes_count after unlike = %d, want 0", got)
	}
	if got := notificationCount(t, db, owner.ID, models.NotificationTypeLike); got != 1 {
		t.Errorf("notifications after unlike = %d, want 1 (not retracted)", got)
	}
}

func TestToggleLikeOwnProjectCreatesNoNotification(t *testing.T) {
	db := setupTestDB(t)
	svc := NewSocialService(db)
	owner := createTestUser(t, db, "owner")
	project := createTestProject(t, db, owner)

	liked, err := svc.ToggleLike(owner.ID, project.ID)
	if err != nil || !liked {
		t.Fatalf("ToggleLike = (%v, %v), want (true, nil)", liked, err)
	}
	if got := notificationCount(t, db, owner.ID, models.NotificationTypeLike); got != 0 {
		t.Errorf("self-like notifications = %d, want 0", got)
	}
}

func TestToggleLikeUnknownProject(t *testing.T) {
	db := setupTestDB(t)
	svc := NewSocialService(db)
	actor := createTestUser(t, db, "actor")

	_, err := svc.ToggleLike(actor.ID, uuid.NewString())
	if !errors.Is(err, ErrProjectNotFound) {
		t.Errorf("error = %v, want ErrProjectNotFound", err)
	}
	var likeRows int64
	db.Model(&models.Like{}).Count(&likeRows)
	if likeRows != 0 {
		t.Errorf("like rows = %d, want 0 after failed toggle", likeRows)
	}
}

func TestToggleFavorite(t *testing.T) {
	db := setupTestDB(t)
	svc := NewSocialService(db)
	owner := createTestUser(t, db, "owner")
	actor := createTestUser(t, db, "actor")
	project := createTestProject(t, db, owner)

	favorited, err := svc.ToggleFavorite(actor.ID, project.ID)
	if err != nil || !favorited {
		t.Fatalf("ToggleFavorite = (%v, %v), want (true, nil)", favorited, err)
	}
	if got := notificationCount(t, db, owner.ID, models.NotificationTypeFavorite); got != 1 {
		t.Errorf("favorite notifications = %d, want 1", got)
	}

	favorited, err = svc.ToggleFavorite(actor.ID, project.ID)
	if err != nil || favorited {
		t.Fatalf("second ToggleFavorite = (%v, %v), want (false, nil)", favorited, err)
	}
	var rows int64
	db.Model(&models.Favorite{}).Count(&rows)
	if rows != 0 {
		t.Errorf("favorite rows = %d, want 0", rows)
	}
}

func TestToggleFollowSelf(t *testing.T) {
	db := setupTestDB(t)
	svc := NewSocialService(db)
	user := createTestUser(t, db, "loner")

	_, err := svc.ToggleFollow(user.ID, user.ID)
	if !errors.Is(err, ErrSelfFollow) {
		t.Errorf("error = %v, want ErrSelfFollow", err)
	}
	var rows int64
	db.Model(&models.Follow{}).Count(&rows)
	if rows != 0 {
		t.Errorf("follow rows = %d, want 0", rows)
	}
}

func TestToggleFollowLifecycle(t *testing.T) {
	db := setupTestDB(t)
	svc := NewSocialService(db)
	follower := createTestUser(t, db, "follower")
	followed := createTestUser(t, db, "followed")

	following, err := svc.ToggleFollow(follower.ID, followed.ID)
	if err != nil || !following {
		t.Fatalf("ToggleFollow = (%v, %v), want (true, nil)", following, err)
	}
	if got := notificationCount(t, db, followed.ID, models.NotificationTypeFollow); got != 1 {
		t.Errorf("follow notifications = %d, want 1", got)
	}

	following, err = svc.ToggleFollow(follower.ID, followed.ID)
	if err != nil || following {
		t.Fatalf("second ToggleFollow = (%v, %v), want (false, nil)", following, err)
	}

	_, err = svc.ToggleFollow(follower.ID, followed.ID+100)
	if !errors.Is(err, ErrUserNotFound) {
		t.Errorf("error = %v, want ErrUserNotFound", err)
	}
}

func TestAddCommentNotifiesOwner(t *testing.T) {
	db := setupTestDB(t)
	svc := NewSocialService(db)
	owner := createTestUser(t, db, "owner")
	actor := createTestUser(t, db, "commenter")
	project := createTestProject(t, db, owner)

	comment, err := svc.AddComment(actor.ID, project.ID, "nice work", nil)
	if err != nil {
		t.Fatalf("AddComment failed: %v", err)
	}
	if comment.Author.ID != actor.ID || comment.Author.Name != actor.Name {
		t.Errorf("author = %+v, want commenter profile", comment.Author)
	}
	if got := likesCount(t, db, project.ID); got != 0 {
		t.Errorf("likes_count = %d, want 0", got)
	}
	var reloaded models.Project
	db.Where("id = ?", project.ID).First(&reloaded)
	if reloaded.CommentsCount != 1 {
		t.Errorf("comments_count = %d, want 1", reloaded.CommentsCount)
	}
	if got := notificationCount(t, db, owner.ID, models.NotificationTypeComment); got != 1 {
		t.Errorf("comment notifications = %d, want 1", got)
	}
}

func TestAddCommentOwnProjectCreatesNoNotification(t *testing.T) {
	db := setupTestDB(t)
	svc := NewSocialService(db)
	owner := createTestUser(t, db, "owner")
	project := createTestProject(t, db, owner)

	if _, err := svc.AddComment(owner.ID, project.ID, "first!", nil); err != nil {
		t.Fatalf("AddComment failed: %v", err)
	}
	var count int64
	db.Model(&models.Notification{}).Count(&count)
	if count != 0 {
		t.Errorf("notifications = %d, want 0 for self-comment", count)
	}
}

func TestAddReplyNotifiesParentAuthor(t *testing.T) {
	db := setupTestDB(t)
	svc := NewSocialService(db)
	owner := createTestUser(t, db, "owner")
	commenter := createTestUser(t, db, "commenter")
	replier := createTestUser(t, db, "replier")
	project := createTestProject(t, db, owner)

	parent, err := svc.AddComment(commenter.ID, project.ID, "top level", nil)
	if err != nil {
		t.Fatalf("AddComment failed: %v", err)
	}

	if _, err := svc.AddComment(replier.ID, project.ID, "a reply", &parent.ID); err != nil {
		t.Fatalf("reply failed: %v", err)
	}
	if got := notificationCount(t, db, commenter.ID, models.NotificationTypeReply); got != 1 {
		t.Errorf("reply notifications for parent author = %d, want 1", got)
	}
	// The project owner is not notified about replies
	if got := notificationCount(t, db, owner.ID, models.NotificationTypeReply); got != 0 {
		t.Errorf("reply notifications for project owner = %d, want 0", got)
	}
}

func TestAddReplyDepthLimit(t *testing.T) {
	db := setupTestDB(t)
	svc := NewSocialService(db)
	owner := createTestUser(t, db, "owner")
	actor := createTestUser(t, db, "actor")
	project := createTestProject(t, db, owner)
	otherProject := createTestProject(t, db, owner)

	parent, err := svc.AddComment(actor.ID, project.ID, "top level", nil)
	if err != nil {
		t.Fatalf("AddComment failed: %v", err)
	}
	reply, err := svc.AddComment(actor.ID, project.ID, "a reply", &parent.ID)
	if err != nil {
		t.Fatalf("reply failed: %v", err)
	}

	// Replying to a reply is rejected
	if _, err := svc.AddComment(actor.ID, project.ID, "too deep", &reply.ID); !errors.Is(err, ErrInvalidParent) {
		t.Errorf("reply-to-reply error = %v, want ErrInvalidParent", err)
	}
	// Replying across projects is rejected
	if _, err := svc.AddComment(actor.ID, otherProject.ID, "wrong project", &parent.ID); !errors.Is(err, ErrInvalidParent) {
		t.Errorf("cross-project reply error = %v, want ErrInvalidParent", err)
	}
	// Replying to a missing comment is rejected
	missing := parent.ID + 1000
	if _, err := svc.AddComment(actor.ID, project.ID, "orphan", &missing); !errors.Is(err, ErrCommentNotFound) {
		t.Errorf("missing parent error = %v, want ErrCommentNotFound", err)
	}
}

func TestRecordShareAppendsRows(t *testing.T) {
	db := setupTestDB(t)
	svc := NewSocialService(db)
	owner := createTestUser(t, db, "owner")
	actor := createTestUser(t, db, "sharer")
	project := createTestProject(t, db, owner)

	if err := svc.RecordShare(actor.ID, project.ID, "twitter"); err != nil {
		t.Fatalf("RecordShare failed: %v", err)
	}
	// Repeated shares are not deduplicated
	if err := svc.RecordShare(actor.ID, project.ID, "twitter"); err != nil {
		t.Fatalf("second RecordShare failed: %v", err)
	}

	var rows int64
	db.Model(&models.Share{}).Where("project_id = ?", project.ID).Count(&rows)
	if rows != 2 {
		t.Errorf("share rows = %d, want 2", rows)
	}
	var count int64
	db.Model(&models.Notification{}).Count(&count)
	if count != 0 {
		t.Errorf("notifications = %d, want 0 for shares", count)
	}

	if err := svc.RecordShare(actor.ID, uuid.NewString(), "twitter"); !errors.Is(err, ErrProjectNotFound) {
		t.Errorf("share on unknown project error = %v, want ErrProjectNotFound", err)
	}
}
