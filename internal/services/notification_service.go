package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"gorm.io/gorm"

	"budgetnatin/internal/dates"
	apperrors "budgetnatin/internal/errors"
	"budgetnatin/internal/events"
	"budgetnatin/internal/logger"
	"budgetnatin/internal/metrics"
	"budgetnatin/internal/models"
	"budgetnatin/internal/pagination"
)

// dueSoonWindowDays is how far ahead an unpaid expense counts as due soon.
const dueSoonWindowDays = 3

// notificationService handles notification business logic and the due-date scan.
type notificationService struct {
	db        *gorm.DB
	publisher events.Publisher
	metrics   *metrics.Metrics
	now       func() time.Time
}

// NewNotificationService creates a new NotificationServicer. publisher and m
// may be nil.
func NewNotificationService(db *gorm.DB, publisher events.Publisher, m *metrics.Metrics) NotificationServicer {
	if publisher == nil {
		publisher = events.NoopPublisher{}
	}
	return &notificationService{db: db, publisher: publisher, metrics: m, now: time.Now}
}

// ListNotifications returns the user's notifications, newest first.
func (s *notificationService) ListNotifications(userID uint, unreadOnly bool, page pagination.PageRequest) (*pagination.PageResponse[models.Notification], error) {
	page.Defaults()

	base := s.db.Model(&models.Notification{}).Where("user_id = ?", userID)
	if unreadOnly {
		base = base.Where("is_read = ?", false)
	}

	notifications := []models.Notification{}
	err := base.Session(&gorm.Session{}).
		Order("created_at DESC").
		Order("notification_id DESC").
		Scopes(pagination.Paginate(page)).
		Find(&notifications).Error
	if err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	total := int64(len(notifications))
	if page.Enabled() {
		if err := base.Session(&gorm.Session{}).Count(&total).Error; err != nil {
			return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
		}
	}

	resp := pagination.NewPageResponse(notifications, page.Page, page.PageSize, total)
	return &resp, nil
}

func (s *notificationService) MarkAsRead(userID, notificationID uint) error {
	if err := s.ensureOwned(userID, notificationID); err != nil {
		return err
	}
	if err := s.db.Model(&models.Notification{}).
		Where("notification_id = ? AND user_id = ?", notificationID, userID).
		Update("is_read", true).Error; err != nil {
		return apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return nil
}

// MarkAllAsRead flags every unread notification as read and returns how many
// changed. Calling it again is a no-op.
func (s *notificationService) MarkAllAsRead(userID uint) (int64, error) {
	result := s.db.Model(&models.Notification{}).
		Where("user_id = ? AND is_read = ?", userID, false).
		Update("is_read", true)
	if result.Error != nil {
		return 0, apperrors.Wrap(apperrors.ErrInternalServer, result.Error)
	}
	return result.RowsAffected, nil
}

func (s *notificationService) DeleteNotification(userID, notificationID uint) error {
	result := s.db.Where("notification_id = ? AND user_id = ?", notificationID, userID).Delete(&models.Notification{})
	if result.Error != nil {
		return apperrors.Wrap(apperrors.ErrInternalServer, result.Error)
	}
	if result.RowsAffected == 0 {
		return apperrors.ErrNotificationNotFound
	}
	return nil
}

// CheckDueExpenses scans the user's unpaid expenses and creates one "overdue"
// notification per expense past its due date and one "due_soon" notification
// per expense due within the next three days. Expenses that already have a
// notification of that type are skipped, so repeated scans create nothing new.
func (s *notificationService) CheckDueExpenses(ctx context.Context, userID uint) (int, error) {
	today := dates.StartOfDay(s.now())
	horizon := today.AddDate(0, 0, dueSoonWindowDays)

	var overdue []models.Expense
	if err := s.db.Where("user_id = ? AND is_paid = ? AND due_date IS NOT NULL AND due_date < ?", userID, false, today).
		Order("due_date ASC").Order("expense_id ASC").
		Find(&overdue).Error; err != nil {
		return 0, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	var dueSoon []models.Expense
	if err := s.db.Where("user_id = ? AND is_paid = ? AND due_date >= ? AND due_date <= ?", userID, false, today, horizon).
		Order("due_date ASC").Order("expense_id ASC").
		Find(&dueSoon).Error; err != nil {
		return 0, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	var created []*models.Notification
	for i := range overdue {
		n, err := s.createForExpense(userID, &overdue[i], models.NotificationTypeOverdue, "Expense Overdue!",
			fmt.Sprintf("Your expense \"%s\" is overdue. Amount: ₱%s", describe(&overdue[i]), overdue[i].Amount.StringFixed(2)))
		if err != nil {
			return len(created), err
		}
		if n != nil {
			created = append(created, n)
		}
	}
	for i := range dueSoon {
		days := dates.DaysUntil(today, *dueSoon[i].DueDate)
		n, err := s.createForExpense(userID, &dueSoon[i], models.NotificationTypeDueSoon, "Expense Due Soon",
			fmt.Sprintf("Your expense \"%s\" is due in %d day(s). Amount: ₱%s", describe(&dueSoon[i]), days, dueSoon[i].Amount.StringFixed(2)))
		if err != nil {
			return len(created), err
		}
		if n != nil {
			created = append(created, n)
		}
	}

	s.announce(ctx, created)
	return len(created), nil
}

// createForExpense inserts a notification unless one of the same type already
// exists for the expense. It returns nil when nothing was inserted.
func (s *notificationService) createForExpense(userID uint, expense *models.Expense, kind models.NotificationType, title, message string) (*models.Notification, error) {
	var existing int64
	if err := s.db.Model(&models.Notification{}).
		Where("user_id = ? AND related_id = ? AND related_type = ? AND type = ?", userID, expense.ExpenseID, models.RelatedTypeExpense, kind).
		Count(&existing).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	if existing > 0 {
		return nil, nil
	}

	relatedID := expense.ExpenseID
	relatedType := models.RelatedTypeExpense
	n := &models.Notification{
		UserID:      userID,
		Title:       title,
		Message:     message,
		Type:        kind,
		RelatedID:   &relatedID,
		RelatedType: &relatedType,
	}
	if err := s.db.Create(n).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return n, nil
}

// announce publishes created notifications and counts them. Broker failures
// are logged and never fail the scan.
func (s *notificationService) announce(ctx context.Context, created []*models.Notification) {
	perType := map[models.NotificationType]int{}
	for _, n := range created {
		perType[n.Type]++
		if err := s.publisher.PublishNotification(ctx, n); err != nil {
			logger.Get().Warnw("failed to publish notification event",
				"notification_id", n.NotificationID,
				"error", err,
			)
		}
	}
	for kind, count := range perType {
		s.metrics.IncNotifications(string(kind), count)
	}
}

func (s *notificationService) ensureOwned(userID, notificationID uint) error {
	var n models.Notification
	err := s.db.Select("notification_id").
		Where("notification_id = ? AND user_id = ?", notificationID, userID).
		First(&n).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.ErrNotificationNotFound
		}
		return apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return nil
}

func describe(expense *models.Expense) string {
	if expense.Description == "" {
		return "Untitled"
	}
	return expense.Description
}
