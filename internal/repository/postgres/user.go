package postgres

import (
	"context"
	"fmt"
	"strings"

	domainUser "github.com/orderpulse/orderpulse/internal/domain/user"
	ierr "github.com/orderpulse/orderpulse/internal/errors"
	"github.com/orderpulse/orderpulse/internal/logger"
	"github.com/orderpulse/orderpulse/internal/postgres"

	"github.com/samber/lo"
)

// insertBatchSize bounds multi-row inserts so the statement stays well
// under Postgres's 65535 bind-parameter limit.
const insertBatchSize = 500

type userRepository struct {
	client postgres.IClient
	logger *logger.Logger
}

// NewUserRepository creates a new user repository
func NewUserRepository(client postgres.IClient, logger *logger.Logger) domainUser.Repository {
	return &userRepository{
		client: client,
		logger: logger,
	}
}

// BulkCreate inserts users in chunked multi-row statements.
func (r *userRepository) BulkCreate(ctx context.Context, users []*domainUser.User) error {
	for _, chunk := range lo.Chunk(users, insertBatchSize) {
		var (
			sb   strings.Builder
			args []interface{}
		)
		sb.WriteString("INSERT INTO users (id, username, email, is_active, created_at) VALUES ")
		for i, u := range chunk {
			if i > 0 {
				sb.WriteString(", ")
			}
			base := i * 5
			fmt.Fprintf(&sb, "($%d, $%d, $%d, $%d, $%d)", base+1, base+2, base+3, base+4, base+5)
			args = append(args, u.ID, u.Username, u.Email, u.IsActive, u.CreatedAt)
		}

		if _, err := r.client.ExecContext(ctx, sb.String(), args...); err != nil {
			return ierr.WithError(err).
				WithHint("Failed to bulk insert users").
				WithReportableDetails(map[string]interface{}{
					"batch_size": len(chunk),
				}).
				Mark(ierr.ErrDatabase)
		}
	}

	r.logger.Debugw("bulk created users", "count", len(users))
	return nil
}

// Count returns the total number of users.
func (r *userRepository) Count(ctx context.Context) (int, error) {
	var count int
	row := r.client.QueryRowContext(ctx, "SELECT COUNT(*) FROM users")
	if err := row.Scan(&count); err != nil {
		return 0, ierr.WithError(err).
			WithHint("Failed to count users").
			Mark(ierr.ErrDatabase)
	}
	return count, nil
}
