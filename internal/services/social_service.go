package services

import (
	"errors"
	"log"
	"strconv"

	"github.com/codetok-app/backend/internal/models"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// SocialService owns every engagement write: like/favorite/follow toggles,
// comment submission and share logging. Each compound operation (join-row
// write + counter adjustment + notification fan-out) runs in a single
// database transaction, so a failure anywhere rolls back the whole action and
// the denormalized counters can never drift from the join rows.
//
// Toggle races are closed at the storage layer: the join tables carry
// composite unique indexes and the insert path uses ON CONFLICT DO NOTHING,
// so two concurrent toggles from the same user cannot produce duplicate rows
// or double-count.
type SocialService struct {
	db *gorm.DB
}

// NewSocialService creates a new SocialService
func NewSocialService(db *gorm.DB) *SocialService {
	return &SocialService{db: db}
}

// ToggleLike switches the like state of (userID, projectID). Returns the new
// state: true if the project is now liked. The project's likes_count moves
// with the row in the same transaction. On transition to liked, the project
// owner gets a notification unless the actor owns the project.
func (s *SocialService) ToggleLike(userID uint, projectID string) (bool, error) {
	var liked bool
	err := s.db.Transaction(func(tx *gorm.DB) error {
		project, err := loadProject(tx, projectID)
		if err != nil {
			return err
		}

		res := tx.Where("user_id = ? AND project_id = ?", userID, projectID).Delete(&models.Like{})
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected > 0 {
			liked = false
			return adjustCounter(tx, projectID, "likes_count", -1)
		}

		ins := tx.Clauses(clause.OnConflict{DoNothing: true}).
			Create(&models.Like{UserID: userID, ProjectID: projectID})
		if ins.Error != nil {
			return ins.Error
		}
		liked = true
		if ins.RowsAffected == 0 {
			// A concurrent toggle already inserted this row; its transaction
			// owns the counter adjustment and the notification.
			return nil
		}
		if err := adjustCounter(tx, projectID, "likes_count", +1); err != nil {
			return err
		}
		return s.fanOut(tx, models.NotificationTypeLike, userID, project.UserID, projectID, models.EntityTypeProject)
	})
	if err != nil {
		log.Printf("ToggleLike(%d, %s) failed: %v", userID, projectID, err)
		return false, err
	}
	return liked, nil
}

// ToggleFavorite switches the bookmark state of (userID, projectID). Favorites
// carry no denormalized counter. On transition to favorited, the project owner
// gets a notification unless the actor owns the project.
func (s *SocialService) ToggleFavorite(userID uint, projectID string) (bool, error) {
	var favorited bool
	err := s.db.Transaction(func(tx *gorm.DB) error {
		project, err := loadProject(tx, projectID)
		if err != nil {
			return err
		}

		res := tx.Where("user_id = ? AND project_id = ?", userID, projectID).Delete(&models.Favorite{})
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected > 0 {
			favorited = false
			return nil
		}

		ins := tx.Clauses(clause.OnConflict{DoNothing: true}).
			Create(&models.Favorite{UserID: userID, ProjectID: projectID})
		if ins.Error != nil {
			return ins.Error
		}
		favorited = true
		if ins.RowsAffected == 0 {
			return nil
		}
		return s.fanOut(tx, models.NotificationTypeFavorite, userID, project.UserID, projectID, models.EntityTypeProject)
	})
	if err != nil {
		log.Printf("ToggleFavorite(%d, %s) failed: %v", userID, projectID, err)
		return false, err
	}
	return favorited, nil
}

// ToggleFollow switches the follow state of (followerID, followingID).
// Self-follows are rejected before any write. On transition to following,
// the followed user gets a notification.
func (s *SocialService) ToggleFollow(followerID, followingID uint) (bool, error) {
	if followerID == followingID {
		return false, ErrSelfFollow
	}

	var following bool
	err := s.db.Transaction(func(tx *gorm.DB) error {
		var target models.User
		if err := tx.First(&target, followingID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrUserNotFound
			}
			return err
		}

		res := tx.Where("follower_id = ? AND following_id = ?", followerID, followingID).Delete(&models.Follow{})
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected > 0 {
			following = false
			return nil
		}

		ins := tx.Clauses(clause.OnConflict{DoNothing: true}).
			Create(&models.Follow{FollowerID: followerID, FollowingID: followingID})
		if ins.Error != nil {
			return ins.Error
		}
		following = true
		if ins.RowsAffected == 0 {
			return nil
		}
		return s.fanOut(tx, models.NotificationTypeFollow, followerID, followingID,
			strconv.FormatUint(uint64(followerID), 10), models.EntityTypeUser)
	})
	if err != nil {
		log.Printf("ToggleFollow(%d, %d) failed: %v", followerID, followingID, err)
		return false, err
	}
	return following, nil
}

// AddComment inserts a comment, bumps the project's comments_count and fans
// out a "comment" notification to the project owner, or a "reply" notification
// to the parent comment's author when parentID is set. ParentID must reference
// a top-level comment of the same project; deeper nesting is rejected here so
// the two-level read path is exact. Returns the comment with the author's
// public profile attached for immediate display.
func (s *SocialService) AddComment(userID uint, projectID, content string, parentID *uint) (*models.CommentThread, error) {
	comment := &models.Comment{
		ProjectID: projectID,
		UserID:    userID,
		ParentID:  parentID,
		Content:   content,
	}

	err := s.db.Transaction(func(tx *gorm.DB) error {
		project, err := loadProject(tx, projectID)
		if err != nil {
			return err
		}

		notifType := models.NotificationTypeComment
		recipientID := project.UserID

		if parentID != nil {
			var parent models.Comment
			if err := tx.First(&parent, *parentID).Error; err != nil {
				if errors.Is(err, gorm.ErrRecordNotFound) {
					return ErrCommentNotFound
				}
				return err
			}
			if parent.ProjectID != projectID || parent.ParentID != nil {
				return ErrInvalidParent
			}
			notifType = models.NotificationTypeReply
			recipientID = parent.UserID
		}

		if err := tx.Create(comment).Error; err != nil {
			return err
		}
		if err := adjustCounter(tx, projectID, "comments_count", +1); err != nil {
			return err
		}
		return s.fanOut(tx, notifType, userID, recipientID,
			strconv.FormatUint(uint64(comment.ID), 10), models.EntityTypeComment)
	})
	if err != nil {
		log.Printf("AddComment(%d, %s) failed: %v", userID, projectID, err)
		return nil, err
	}

	var author models.User
	if err := s.db.First(&author, userID).Error; err != nil {
		return nil, err
	}
	return &models.CommentThread{
		Comment: *comment,
		Author:  author.ToCompact(),
		Replies: []models.CommentThread{},
	}, nil
}

// RecordShare appends a row to the share ledger. Shares carry no counter and
// produce no notification; the ledger exists for analytics only.
func (s *SocialService) RecordShare(userID uint, projectID, platform string) error {
	var project models.Project
	if err := s.db.Where("id = ?", projectID).First(&project).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrProjectNotFound
		}
		return err
	}
	share := &models.Share{UserID: userID, ProjectID: projectID, Platform: platform}
	if err := s.db.Create(share).Error; err != nil {
		log.Printf("RecordShare(%d, %s, %s) failed: %v", userID, projectID, platform, err)
		return err
	}
	return nil
}

// fanOut creates exactly one notification row for a qualifying action.
// Self-actions (actor == recipient) produce no notification.
func (s *SocialService) fanOut(tx *gorm.DB, notifType string, actorID, recipientID uint, entityID, entityType string) error {
	if actorID == recipientID {
		return nil
	}
	return tx.Create(&models.Notification{
		Type:        notifType,
		ActorID:     actorID,
		RecipientID: recipientID,
		EntityID:    entityID,
		EntityType:  entityType,
	}).Error
}

// loadProject loads the target project inside the transaction, translating a
// missing row into the typed not-found error instead of letting a later write
// surface it as a foreign-key violation.
func loadProject(tx *gorm.DB, projectID string) (*models.Project, error) {
	var project models.Project
	if err := tx.Where("id = ?", projectID).First(&project).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrProjectNotFound
		}
		return nil, err
	}
	return &project, nil
}

// adjustCounter moves a denormalized project counter by delta within the
// caller's transaction
func adjustCounter(tx *gorm.DB, projectID, column string, delta int) error {
	return tx.Model(&models.Project{}).Where("id = ?", projectID).
		UpdateColumn(column, gorm.Expr(column+" + ?", delta)).Error
}
