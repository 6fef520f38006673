package workouts

import (
	"context"
	"fmt"

	"github.com/2beens/fitlog/internal/telemetry/tracing"
	"github.com/2beens/fitlog/pkg"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.opentelemetry.io/otel/attribute"
)

// Repo stores the workout records. Every query is scoped by the owning user.
type Repo struct {
	db *pgxpool.Pool
}

func NewRepo(db *pgxpool.Pool) *Repo {
	return &Repo{
		db: db,
	}
}

func (r *Repo) AddStrength(ctx context.Context, sw StrengthWorkout) (_ *StrengthWorkout, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.workouts.strength.add")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int("user.id", sw.UserID))

	err = r.db.QueryRow(ctx, `
		INSERT INTO strength_workout (user_id, exercise, reps, weight)
		VALUES ($1, $2, $3, $4)
		RETURNING id, created_at;
	`,
		sw.UserID, sw.Exercise, sw.Reps, sw.Weight,
	).Scan(&sw.ID, &sw.CreatedAt)
	if pkg.IsForeignKeyViolationError(err) {
		return nil, fmt.Errorf("insert strength workout: %w", ErrUnknownOwner)
	}
	if err != nil {
		return nil, fmt.Errorf("insert strength workout: %w", err)
	}
	return &sw, nil
}

func (r *Repo) AddCardio(ctx context.Context, cw CardioWorkout) (_ *CardioWorkout, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.workouts.cardio.add")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int("user.id", cw.UserID))

	err = r.db.QueryRow(ctx, `
		INSERT INTO cardio_workout (user_id, activity, duration, distance, calories)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, created_at;
	`,
		cw.UserID, cw.Activity, cw.Duration, cw.Distance, cw.Calories,
	).Scan(&cw.ID, &cw.CreatedAt)
	if pkg.IsForeignKeyViolationError(err) {
		return nil, fmt.Errorf("insert cardio workout: %w", ErrUnknownOwner)
	}
	if err != nil {
		return nil, fmt.Errorf("insert cardio workout: %w", err)
	}
	return &cw, nil
}

// ListRecentStrength returns the newest strength records first. Rows with the
// same timestamp keep insertion order (newest id first).
func (r *Repo) ListRecentStrength(ctx context.Context, userID, limit int) (_ []StrengthWorkout, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.workouts.strength.recent")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int("user.id", userID), attribute.Int("limit", limit))

	rows, err := r.db.Query(ctx, `
		SELECT id, user_id, exercise, reps, weight, created_at
		FROM strength_workout
		WHERE user_id = $1
		ORDER BY created_at DESC, id DESC
		LIMIT $2;
	`, userID, limit)
	if err != nil {
		return nil, fmt.Errorf("query recent strength: %w", err)
	}
	return scanStrengthRows(rows)
}

func (r *Repo) ListAllStrengthChronological(ctx context.Context, userID int) (_ []StrengthWorkout, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.workouts.strength.chronological")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int("user.id", userID))

	rows, err := r.db.Query(ctx, `
		SELECT id, user_id, exercise, reps, weight, created_at
		FROM strength_workout
		WHERE user_id = $1
		ORDER BY created_at ASC, id ASC;
	`, userID)
	if err != nil {
		return nil, fmt.Errorf("query strength series: %w", err)
	}
	return scanStrengthRows(rows)
}

func (r *Repo) ListRecentCardio(ctx context.Context, userID, limit int) (_ []CardioWorkout, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.workouts.cardio.recent")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int("user.id", userID), attribute.Int("limit", limit))

	rows, err := r.db.Query(ctx, `
		SELECT id, user_id, activity, duration, distance, calories, created_at
		FROM cardio_workout
		WHERE user_id = $1
		ORDER BY created_at DESC, id DESC
		LIMIT $2;
	`, userID, limit)
	if err != nil {
		return nil, fmt.Errorf("query recent cardio: %w", err)
	}
	defer rows.Close()

	list := make([]CardioWorkout, 0)
	for rows.Next() {
		var cw CardioWorkout
		if err := rows.Scan(&cw.ID, &cw.UserID, &cw.Activity, &cw.Duration, &cw.Distance, &cw.Calories, &cw.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan cardio workout: %w", err)
		}
		list = append(list, cw)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return list, nil
}

func (r *Repo) ListGeneric(ctx context.Context, userID int) (_ []GenericWorkout, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.workouts.generic.list")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int("user.id", userID))

	rows, err := r.db.Query(ctx, `
		SELECT id, user_id, workout, duration, created_at
		FROM workout
		WHERE user_id = $1
		ORDER BY created_at DESC, id DESC;
	`, userID)
	if err != nil {
		return nil, fmt.Errorf("query workouts: %w", err)
	}
	defer rows.Close()

	list := make([]GenericWorkout, 0)
	for rows.Next() {
		var gw GenericWorkout
		if err := rows.Scan(&gw.ID, &gw.UserID, &gw.Workout, &gw.Duration, &gw.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan workout: %w", err)
		}
		list = append(list, gw)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return list, nil
}

func scanStrengthRows(rows pgx.Rows) ([]StrengthWorkout, error) {
	defer rows.Close()

	list := make([]StrengthWorkout, 0)
	for rows.Next() {
		var sw StrengthWorkout
		if err := rows.Scan(&sw.ID, &sw.UserID, &sw.Exercise, &sw.Reps, &sw.Weight, &sw.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan strength workout: %w", err)
		}
		list = append(list, sw)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return list, nil
}
