package postgres

import (
	"context"
	"database/sql"
	"errors"

	"github.com/lib/pq"

	"github.com/shuubhamcodes/FLEETPULSE/module/core/domain"
	"github.com/shuubhamcodes/FLEETPULSE/module/core/internal/repository/database"
)

var _ database.UserRoleRepository = (*UserRoleRepo)(nil)

type UserRoleRepo struct {
	db *sql.DB
}

func NewUserRoleRepo(db *sql.DB) *UserRoleRepo {
	return &UserRoleRepo{db: db}
}

// GetRole maps both a missing assignment and an unrecognized role
// string to RoleUnknown; neither is an error.
func (r *UserRoleRepo) GetRole(ctx context.Context, userID string) (domain.Role, error) {
	var raw string
	err := r.db.QueryRowContext(ctx,
		`SELECT role FROM user_roles WHERE user_id = $1`,
		userID,
	).Scan(&raw)
	if errors.Is(err, sql.ErrNoRows) {
		return domain.RoleUnknown, nil
	}
	if err != nil {
		return domain.RoleUnknown, err
	}

	role, ok := domain.ParseRole(raw)
	if !ok {
		return domain.RoleUnknown, nil
	}
	return role, nil
}

func (r *UserRoleRepo) ListUserIDsByRoles(ctx context.Context, roles []domain.Role) ([]string, error) {
	names := make([]string, len(roles))
	for i, role := range roles {
		names[i] = string(role)
	}

	rows, err := r.db.QueryContext(ctx,
		`SELECT user_id FROM user_roles WHERE role = ANY($1)`,
		pq.Array(names),
	)
	if err != nil {
		return nil, err
	}
	defer func() { _ = rows.Close() }()

	var userIDs []string
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			return nil, err
		}
		userIDs = append(userIDs, id)
	}
	return userIDs, rows.Err()
}
