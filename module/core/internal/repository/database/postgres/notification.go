package postgres

import (
	"context"
	"database/sql"

	"github.com/shuubhamcodes/FLEETPULSE/module/core/domain"
	"github.com/shuubhamcodes/FLEETPULSE/module/core/internal/repository/database"
)

var _ database.NotificationRepository = (*NotificationRepo)(nil)

type NotificationRepo struct {
	db *sql.DB
}

func NewNotificationRepo(db *sql.DB) *NotificationRepo {
	return &NotificationRepo{db: db}
}

func (r *NotificationRepo) Insert(ctx context.Context, n *domain.Notification) error {
	_, err := r.db.ExecContext(ctx,
		`INSERT INTO notifications (user_id, type, message, read) VALUES ($1, $2, $3, $4)`,
		n.UserID, n.Type, n.Message, n.Read,
	)
	return err
}
