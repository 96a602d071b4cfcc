// Package sessionrepo reads rated surf sessions for personalization.
package sessionrepo

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/surfapp/recommender/internal/domain/recommend"
	apperrors "github.com/surfapp/recommender/pkg/errors"
)

const recentSessionLimit = 50

// PostgresRepository reads session history from Postgres.
type PostgresRepository struct {
	pool *pgxpool.Pool
}

// NewPostgresRepository creates a new repository.
func NewPostgresRepository(pool *pgxpool.Pool) *PostgresRepository {
	return &PostgresRepository{pool: pool}
}

// RecentSessions returns the newest rated sessions for a user.
func (r *PostgresRepository) RecentSessions(ctx context.Context, userID string) ([]recommend.Session, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT rating, wave_height, wind_speed, spot_name, surfed_at
		FROM surf_sessions
		WHERE user_id = $1
		ORDER BY surfed_at DESC
		LIMIT $2
	`, userID, recentSessionLimit)
	if err != nil {
		return nil, apperrors.Wrap(apperrors.CodeHistoryError, "query session history", err)
	}
	defer rows.Close()

	var sessions []recommend.Session
	for rows.Next() {
		var s recommend.Session
		if err := rows.Scan(&s.Rating, &s.WaveHeight, &s.WindSpeed, &s.SpotName, &s.SurfedAt); err != nil {
			return nil, apperrors.Wrap(apperrors.CodeHistoryError, "scan session row", err)
		}
		sessions = append(sessions, s)
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.Wrap(apperrors.CodeHistoryError, "iterate session rows", err)
	}
	return sessions, nil
}

var _ recommend.SessionHistory = (*PostgresRepository)(nil)
