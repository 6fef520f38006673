package workouts

import (
	"context"
	"errors"
	"net/http"

	"github.com/2beens/fitlog/internal/auth"
	"github.com/2beens/fitlog/internal/middleware"
	"github.com/2beens/fitlog/internal/telemetry/metrics"
	"github.com/2beens/fitlog/internal/telemetry/tracing"

	"github.com/gorilla/mux"
	log "github.com/sirupsen/logrus"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
)

//go:generate mockgen -source=$GOFILE -destination=handler_mocks_test.go -package=workouts

const (
	FormTypeStrength = "strength"
	FormTypeCardio   = "cardio"

	dashboardPath = "/dashboard"
)

type workoutsService interface {
	AddStrengthWorkout(ctx context.Context, userID int, exercise, reps, weight string) (*StrengthWorkout, error)
	AddCardioWorkout(ctx context.Context, userID int, activity, duration, distance, calories string) (*CardioWorkout, error)
	ListGenericWorkouts(ctx context.Context, userID int) ([]GenericWorkout, error)
	Dashboard(ctx context.Context, userID int) (*DashboardData, error)
}

type flashRedirector interface {
	RedirectWithFlash(w http.ResponseWriter, r *http.Request, url string, flashes ...auth.Flash)
}

type pageRenderer interface {
	Render(w http.ResponseWriter, r *http.Request, page string, data any)
}

type Handler struct {
	service        workoutsService
	flashes        flashRedirector
	renderer       pageRenderer
	metricsManager *metrics.Manager
}

func NewHandler(
	service workoutsService,
	flashes flashRedirector,
	renderer pageRenderer,
	metricsManager *metrics.Manager,
) *Handler {
	return &Handler{
		service:        service,
		flashes:        flashes,
		renderer:       renderer,
		metricsManager: metricsManager,
	}
}

func (handler *Handler) SetupRoutes(mainRouter *mux.Router) {
	mainRouter.HandleFunc(dashboardPath, handler.HandleDashboard).Methods("GET").Name("dashboard")
	mainRouter.HandleFunc(dashboardPath, handler.HandleDashboardAdd).Methods("POST").Name("dashboard-add")
	mainRouter.HandleFunc("/workouts", handler.HandleList).Methods("GET").Name("workouts")
}

func (handler *Handler) HandleDashboard(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.workouts.dashboard")
	defer span.End()

	identity, ok := auth.IdentityFromContext(ctx)
	if !ok {
		http.Redirect(w, r, middleware.LoginPath, http.StatusFound)
		return
	}
	span.SetAttributes(attribute.Int("user.id", identity.UserID))

	data, err := handler.service.Dashboard(ctx, identity.UserID)
	if err != nil {
		log.Errorf("dashboard for user [%d]: %s", identity.UserID, err)
		span.SetStatus(codes.Error, err.Error())
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}

	handler.renderer.Render(w, r, "dashboard", data)
}

// HandleDashboardAdd adds a strength or a cardio record, depending on the
// form_type field. Submissions with a missing required field are ignored.
func (handler *Handler) HandleDashboardAdd(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.workouts.add")
	defer span.End()

	identity, ok := auth.IdentityFromContext(ctx)
	if !ok {
		http.Redirect(w, r, middleware.LoginPath, http.StatusFound)
		return
	}

	if err := r.ParseForm(); err != nil {
		log.Errorf("add workout, parse form error: %s", err)
		http.Error(w, "parse form error", http.StatusBadRequest)
		return
	}

	formType := r.PostForm.Get("form_type")
	span.SetAttributes(
		attribute.Int("user.id", identity.UserID),
		attribute.String("form.type", formType),
	)

	var (
		added        bool
		err          error
		invalidMsg   string
		addedMessage string
	)
	switch formType {
	case FormTypeStrength:
		exercise := r.PostForm.Get("exercise")
		reps := r.PostForm.Get("reps")
		weight := r.PostForm.Get("weight")
		if exercise == "" || reps == "" || weight == "" {
			break
		}
		_, err = handler.service.AddStrengthWorkout(ctx, identity.UserID, exercise, reps, weight)
		added = err == nil
		invalidMsg, addedMessage = "Invalid reps or weight", "Strength workout added"
	case FormTypeCardio:
		activity := r.PostForm.Get("activity")
		duration := r.PostForm.Get("duration")
		distance := r.PostForm.Get("distance")
		if activity == "" || duration == "" || distance == "" {
			break
		}
		_, err = handler.service.AddCardioWorkout(
			ctx, identity.UserID, activity, duration, distance, r.PostForm.Get("calories"),
		)
		added = err == nil
		invalidMsg, addedMessage = "Invalid cardio values", "Cardio workout added"
	default:
		log.Tracef("add workout: unknown form type [%s]", formType)
	}

	switch {
	case errors.Is(err, ErrValidation):
		log.Tracef("add workout for user [%d] rejected: %s", identity.UserID, err)
		handler.metricsManager.CounterInvalidWorkouts.WithLabelValues(formType).Inc()
		handler.flashes.RedirectWithFlash(w, r, dashboardPath, auth.Flash{
			Category: auth.FlashWarning,
			Message:  invalidMsg,
		})
	case err != nil:
		log.Errorf("add workout for user [%d]: %s", identity.UserID, err)
		span.SetStatus(codes.Error, err.Error())
		http.Error(w, "internal error", http.StatusInternalServerError)
	case added:
		handler.metricsManager.CounterWorkoutsAdded.WithLabelValues(formType).Inc()
		handler.flashes.RedirectWithFlash(w, r, dashboardPath, auth.Flash{
			Category: auth.FlashSuccess,
			Message:  addedMessage,
		})
	default:
		http.Redirect(w, r, dashboardPath, http.StatusFound)
	}
}

func (handler *Handler) HandleList(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.workouts.list")
	defer span.End()

	identity, ok := auth.IdentityFromContext(ctx)
	if !ok {
		http.Redirect(w, r, middleware.LoginPath, http.StatusFound)
		return
	}
	span.SetAttributes(attribute.Int("user.id", identity.UserID))

	list, err := handler.service.ListGenericWorkouts(ctx, identity.UserID)
	if err != nil {
		log.Errorf("list workouts for user [%d]: %s", identity.UserID, err)
		span.SetStatus(codes.Error, err.Error())
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}

	handler.renderer.Render(w, r, "workouts", list)
}
