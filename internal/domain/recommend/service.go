package recommend

import (
	"context"
	"log/slog"
	"time"

	"golang.org/x/sync/singleflight"

	apperrors "github.com/surfapp/recommender/pkg/errors"
)

// Service exposes the recommendation pipeline.
type Service interface {
	Recommend(ctx context.Context, req Request) ([]SpotResult, error)
	CacheState(ctx context.Context) string
}

// Predictor acquires raw predictions from the external forecast engine.
type Predictor interface {
	FetchPredictions(ctx context.Context) ([]SpotForecast, error)
}

// PredictionCache holds the most recent prediction set. Get only returns
// fresh data; GetStale returns the last successful Put regardless of age.
type PredictionCache interface {
	Get(ctx context.Context) ([]SpotForecast, bool, error)
	Put(ctx context.Context, data []SpotForecast) error
	GetStale(ctx context.Context) ([]SpotForecast, bool, error)
}

// SessionHistory supplies recent rated sessions for personalization.
type SessionHistory interface {
	RecentSessions(ctx context.Context, userID string) ([]Session, error)
}

type service struct {
	predictor Predictor
	cache     PredictionCache
	catalog   SpotCatalog
	history   SessionHistory
	logger    *slog.Logger
	now       func() time.Time
	flight    singleflight.Group
}

// NewService wires up the recommendation pipeline.
func NewService(predictor Predictor, cache PredictionCache, catalog SpotCatalog, history SessionHistory, logger *slog.Logger) Service {
	return &service{
		predictor: predictor,
		cache:     cache,
		catalog:   catalog,
		history:   history,
		logger:    logger.With("component", "recommend.service"),
		now:       time.Now,
	}
}

// Recommend runs the full pipeline: acquire predictions, personalize the
// profile, enrich and score every spot, sanitize and rank.
func (s *service) Recommend(ctx context.Context, req Request) ([]SpotResult, error) {
	profile := normalizeProfile(req)
	s.personalize(ctx, req.UserID, &profile)

	forecasts, err := s.predictions(ctx)
	if err != nil {
		return nil, err
	}

	now := s.now()
	results := make([]SpotResult, 0, len(forecasts))
	for _, record := range forecasts {
		spot := enrichSpot(record, s.catalog)
		eval := scoreSpot(spot, record.Forecast, profile, now)
		results = append(results, SpotResult{
			Spot:               spot,
			Forecast:           record.Forecast,
			Evaluation:         eval,
			MatchesPreferences: profile.matchesWaveWindow(record.Forecast.WaveHeight),
		})
	}

	sanitizeResults(results)
	rankResults(results)
	return results, nil
}

// personalize is best effort: a missing or failing history store never
// blocks scoring, the profile just stays non-personalized.
func (s *service) personalize(ctx context.Context, userID string, profile *UserProfile) {
	if userID == "" || s.history == nil {
		return
	}
	sessions, err := s.history.RecentSessions(ctx, userID)
	if err != nil {
		s.logger.Warn("session history unavailable, skipping personalization", "userId", userID, "error", err)
		return
	}
	applyLearnedPreferences(profile, sessions)
}

// predictions serves cached data when fresh, shares a single in-flight fetch
// across concurrent misses, and falls back to stale data when the fetch
// fails. Only an empty cache plus a failed fetch is a hard error.
func (s *service) predictions(ctx context.Context) ([]SpotForecast, error) {
	if data, ok, err := s.cache.Get(ctx); err != nil {
		s.logger.Warn("prediction cache read failed", "error", err)
	} else if ok {
		return data, nil
	}

	value, err, shared := s.flight.Do("predictions", func() (interface{}, error) {
		// Detached from the caller so one client disconnect cannot abort
		// the fetch every other waiter is sharing.
		fetchCtx := context.WithoutCancel(ctx)

		if data, ok, cacheErr := s.cache.Get(fetchCtx); cacheErr == nil && ok {
			return data, nil
		}
		data, fetchErr := s.predictor.FetchPredictions(fetchCtx)
		if fetchErr != nil {
			return nil, fetchErr
		}
		if putErr := s.cache.Put(fetchCtx, data); putErr != nil {
			s.logger.Warn("prediction cache write failed", "error", putErr)
		}
		return data, nil
	})
	if err == nil {
		return value.([]SpotForecast), nil
	}

	s.logger.Warn("prediction fetch failed, falling back to stale cache", "error", err, "shared", shared)
	if data, ok, staleErr := s.cache.GetStale(ctx); staleErr == nil && ok {
		return data, nil
	}
	return nil, apperrors.Wrap(apperrors.CodeNoDataAvailable, "no forecast data available", err)
}

// CacheState reports fresh, stale or empty for health probes.
func (s *service) CacheState(ctx context.Context) string {
	if _, ok, err := s.cache.Get(ctx); err == nil && ok {
		return "fresh"
	}
	if _, ok, err := s.cache.GetStale(ctx); err == nil && ok {
		return "stale"
	}
	return "empty"
}
