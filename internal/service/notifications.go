package service

import (
	"context"

	"github.com/octobees/crm-backend/internal/entity"
	"github.com/octobees/crm-backend/internal/repository"
)

// NotificationsService lists notifications and marks them read.
type NotificationsService struct {
	notifications repository.NotificationsRepository
}

// NewNotificationsService creates a new instance of NotificationsService.
func NewNotificationsService(notifications repository.NotificationsRepository) *NotificationsService {
	return &NotificationsService{notifications: notifications}
}

// List returns every notification, newest first.
func (s *NotificationsService) List(ctx context.Context) ([]entity.Notification, error) {
	return s.notifications.List(ctx)
}

// MarkRead flips is_read; already-read notifications come back unchanged.
func (s *NotificationsService) MarkRead(ctx context.Context, id int64) (*entity.Notification, error) {
	return s.notifications.MarkRead(ctx, id)
}
