package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/octobees/crm-backend/internal/entity"
)

// ErrNotificationNotFound is returned when no notification matches the lookup criteria.
var ErrNotificationNotFound = errors.New("notification not found")

// NotificationsRepository describes persistence operations for notifications.
type NotificationsRepository interface {
	List(ctx context.Context) ([]entity.Notification, error)
	MarkRead(ctx context.Context, id int64) (*entity.Notification, error)
}

// PGXNotificationsRepository implements NotificationsRepository using pgx.
type PGXNotificationsRepository struct {
	pool pgxPool
}

// NewPGXNotificationsRepository wires a pgx backed repository.
func NewPGXNotificationsRepository(pool *pgxpool.Pool) *PGXNotificationsRepository {
	return &PGXNotificationsRepository{pool: pool}
}

const notificationSelect = `
	SELECT id, message, is_read, created_at, link_contact_id, link_company_id, link_interaction_id
	FROM notifications
`

// List returns every notification, newest first.
func (r *PGXNotificationsRepository) List(ctx context.Context) ([]entity.Notification, error) {
	rows, err := r.pool.Query(ctx, notificationSelect+` ORDER BY created_at DESC`)
	if err != nil {
		return nil, fmt.Errorf("list notifications: %w", err)
	}
	defer rows.Close()

	return scanNotifications(rows)
}

// MarkRead flips is_read to true. Marking an already-read notification is a
// no-op: the row is returned as is without issuing a write.
func (r *PGXNotificationsRepository) MarkRead(ctx context.Context, id int64) (*entity.Notification, error) {
	notification, err := r.get(ctx, id)
	if err != nil {
		return nil, err
	}
	if notification.IsRead {
		return notification, nil
	}

	if _, err := r.pool.Exec(ctx, `UPDATE notifications SET is_read = true WHERE id = $1`, id); err != nil {
		return nil, fmt.Errorf("mark notification read: %w", err)
	}
	notification.IsRead = true
	return notification, nil
}

func (r *PGXNotificationsRepository) get(ctx context.Context, id int64) (*entity.Notification, error) {
	rows, err := r.pool.Query(ctx, notificationSelect+` WHERE id = $1`, id)
	if err != nil {
		return nil, fmt.Errorf("get notification: %w", err)
	}
	defer rows.Close()

	notifications, err := scanNotifications(rows)
	if err != nil {
		return nil, err
	}
	if len(notifications) == 0 {
		return nil, ErrNotificationNotFound
	}
	return &notifications[0], nil
}

func scanNotifications(rows pgx.Rows) ([]entity.Notification, error) {
	var notifications []entity.Notification
	for rows.Next() {
		var (
			n             entity.Notification
			contactID     sql.NullInt64
			companyID     sql.NullInt64
			interactionID sql.NullInt64
		)

		err := rows.Scan(
			&n.ID,
			&n.Message,
			&n.IsRead,
			&n.CreatedAt,
			&contactID,
			&companyID,
			&interactionID,
		)
		if err != nil {
			return nil, fmt.Errorf("scan notification: %w", err)
		}

		n.LinkContactID = nullInt64ToPtr(contactID)
		n.LinkCompanyID = nullInt64ToPtr(companyID)
		n.LinkInteractionID = nullInt64ToPtr(interactionID)
		notifications = append(notifications, n)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate notifications: %w", err)
	}
	return notifications, nil
}
