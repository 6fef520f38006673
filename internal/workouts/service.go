package workouts

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/2beens/fitlog/internal/telemetry/tracing"

	"github.com/coocood/freecache"
	log "github.com/sirupsen/logrus"
	"go.opentelemetry.io/otel/attribute"
)

//go:generate mockgen -source=$GOFILE -destination=repo_mocks_test.go -package=workouts

// MaxLabelLength matches the exercise and activity columns, in characters.
const MaxLabelLength = 200

const (
	megabyte                 = 1024 * 1024
	weightSeriesCachePrefix  = "weight-series::"
	defaultWeightSeriesCache = 8 * megabyte
)

type workoutsRepo interface {
	AddStrength(ctx context.Context, sw StrengthWorkout) (*StrengthWorkout, error)
	AddCardio(ctx context.Context, cw CardioWorkout) (*CardioWorkout, error)
	ListRecentStrength(ctx context.Context, userID, limit int) ([]StrengthWorkout, error)
	ListRecentCardio(ctx context.Context, userID, limit int) ([]CardioWorkout, error)
	ListAllStrengthChronological(ctx context.Context, userID int) ([]StrengthWorkout, error)
	ListGeneric(ctx context.Context, userID int) ([]GenericWorkout, error)
}

type Service struct {
	repo workoutsRepo
	// seriesCache holds the json encoded weight series per user
	seriesCache    *freecache.Cache
	seriesCacheTTL time.Duration
}

func NewService(repo workoutsRepo, cacheSizeMB int, cacheTTL time.Duration) *Service {
	cacheSize := cacheSizeMB * megabyte
	if cacheSize <= 0 {
		cacheSize = defaultWeightSeriesCache
	}
	return &Service{
		repo:           repo,
		seriesCache:    freecache.NewCache(cacheSize),
		seriesCacheTTL: cacheTTL,
	}
}

// AddStrengthWorkout validates the raw form values and stores the record.
// Nothing is written when any value is rejected.
func (s *Service) AddStrengthWorkout(
	ctx context.Context,
	userID int,
	exercise, reps, weight string,
) (_ *StrengthWorkout, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "service.workouts.strength.add")
	defer func() {
		if errors.Is(err, ErrValidation) {
			span.End()
			return
		}
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int("user.id", userID))

	sw := StrengthWorkout{
		UserID:   userID,
		Exercise: strings.TrimSpace(exercise),
	}
	if err := validateLabel("exercise", sw.Exercise); err != nil {
		return nil, err
	}
	if sw.Reps, err = parseInt("reps", reps); err != nil {
		return nil, err
	}
	if sw.Weight, err = parseFloat("weight", weight); err != nil {
		return nil, err
	}

	added, err := s.repo.AddStrength(ctx, sw)
	if err != nil {
		return nil, err
	}

	// read-after-write: the next chart read must include the new record
	s.invalidateWeightSeries(userID)

	log.Debugf("strength workout added [%d] for user [%d]", added.ID, userID)
	return added, nil
}

// AddCardioWorkout validates the raw form values and stores the record.
// An empty calories value is stored as unset.
func (s *Service) AddCardioWorkout(
	ctx context.Context,
	userID int,
	activity, duration, distance, calories string,
) (_ *CardioWorkout, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "service.workouts.cardio.add")
	defer func() {
		if errors.Is(err, ErrValidation) {
			span.End()
			return
		}
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int("user.id", userID))

	cw := CardioWorkout{
		UserID:   userID,
		Activity: strings.TrimSpace(activity),
	}
	if err := validateLabel("activity", cw.Activity); err != nil {
		return nil, err
	}
	if cw.Duration, err = parseInt("duration", duration); err != nil {
		return nil, err
	}
	if cw.Distance, err = parseFloat("distance", distance); err != nil {
		return nil, err
	}
	if strings.TrimSpace(calories) != "" {
		kcal, err := parseFloat("calories", calories)
		if err != nil {
			return nil, err
		}
		cw.Calories = &kcal
	}

	added, err := s.repo.AddCardio(ctx, cw)
	if err != nil {
		return nil, err
	}

	log.Debugf("cardio workout added [%d] for user [%d]", added.ID, userID)
	return added, nil
}

func (s *Service) ListRecentStrength(ctx context.Context, userID, limit int) ([]StrengthWorkout, error) {
	if limit < 1 {
		return nil, newValidationError("limit", strconv.Itoa(limit), nil)
	}
	return s.repo.ListRecentStrength(ctx, userID, limit)
}

func (s *Service) ListRecentCardio(ctx context.Context, userID, limit int) ([]CardioWorkout, error) {
	if limit < 1 {
		return nil, newValidationError("limit", strconv.Itoa(limit), nil)
	}
	return s.repo.ListRecentCardio(ctx, userID, limit)
}

func (s *Service) ListAllStrengthChronological(ctx context.Context, userID int) ([]StrengthWorkout, error) {
	return s.repo.ListAllStrengthChronological(ctx, userID)
}

func (s *Service) ListGenericWorkouts(ctx context.Context, userID int) ([]GenericWorkout, error) {
	return s.repo.ListGeneric(ctx, userID)
}

// StrengthWeightSeries returns the user's (date, weight) chart points, oldest
// first. The series is cached per user until the next strength insert.
func (s *Service) StrengthWeightSeries(ctx context.Context, userID int) (_ []WeightPoint, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "service.workouts.weightseries")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int("user.id", userID))

	cacheKey := weightSeriesCacheKey(userID)
	if cached, err := s.seriesCache.Get(cacheKey); err == nil {
		var series []WeightPoint
		if err := json.Unmarshal(cached, &series); err == nil {
			span.SetAttributes(attribute.Bool("cache.hit", true))
			return series, nil
		} else {
			log.Errorf("unmarshal cached weight series for user [%d]: %s", userID, err)
		}
	}
	span.SetAttributes(attribute.Bool("cache.hit", false))

	chronological, err := s.repo.ListAllStrengthChronological(ctx, userID)
	if err != nil {
		return nil, err
	}
	series := WeightSeriesFrom(chronological)

	if seriesBytes, err := json.Marshal(series); err != nil {
		log.Errorf("marshal weight series for user [%d]: %s", userID, err)
	} else if err := s.seriesCache.Set(cacheKey, seriesBytes, int(s.seriesCacheTTL.Seconds())); err != nil {
		if errors.Is(err, freecache.ErrLargeEntry) {
			// long histories are served from the db on every read
			log.Debugf("weight series of user [%d] too large to cache: %d bytes", userID, len(seriesBytes))
		} else {
			log.Warnf("failed to write weight series cache for user [%d]: %s", userID, err)
		}
	}

	return series, nil
}

// Dashboard collects the ten most recent records of each kind and the weight
// series of the user.
func (s *Service) Dashboard(ctx context.Context, userID int) (_ *DashboardData, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "service.workouts.dashboard")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	strength, err := s.ListRecentStrength(ctx, userID, RecentLimit)
	if err != nil {
		return nil, fmt.Errorf("recent strength: %w", err)
	}
	cardio, err := s.ListRecentCardio(ctx, userID, RecentLimit)
	if err != nil {
		return nil, fmt.Errorf("recent cardio: %w", err)
	}
	series, err := s.StrengthWeightSeries(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("weight series: %w", err)
	}

	return &DashboardData{
		Strength:     strength,
		Cardio:       cardio,
		WeightSeries: series,
	}, nil
}

func (s *Service) invalidateWeightSeries(userID int) {
	s.seriesCache.Del(weightSeriesCacheKey(userID))
}

func weightSeriesCacheKey(userID int) []byte {
	return []byte(weightSeriesCachePrefix + strconv.Itoa(userID))
}

// validateLabel checks an already trimmed exercise or activity name.
func validateLabel(field, label string) error {
	if label == "" {
		return newValidationError(field, label, nil)
	}
	if utf8.RuneCountInString(label) > MaxLabelLength {
		return newValidationError(field, label, fmt.Errorf("longer than %d characters", MaxLabelLength))
	}
	return nil
}

func parseInt(field, raw string) (int, error) {
	v, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil {
		return 0, newValidationError(field, raw, err)
	}
	return v, nil
}

func parseFloat(field, raw string) (float64, error) {
	v, err := strconv.ParseFloat(strings.TrimSpace(raw), 64)
	if err != nil {
		return 0, newValidationError(field, raw, err)
	}
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, newValidationError(field, raw, errors.New("not a finite number"))
	}
	return v, nil
}
