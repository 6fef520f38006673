package workouts

import "time"

// DateLayout is the day format of the weight series points.
const DateLayout = "2006-01-02"

// RecentLimit is how many records of each kind the dashboard shows.
const RecentLimit = 10

type StrengthWorkout struct {
	ID       int    `json:"id"`
	UserID   int    `json:"userId"`
	Exercise string `json:"exercise"`
	Reps     int    `json:"reps"`
	// Weight is in kilograms.
	Weight    float64   `json:"weight"`
	CreatedAt time.Time `json:"createdAt"`
}

type CardioWorkout struct {
	ID       int    `json:"id"`
	UserID   int    `json:"userId"`
	Activity string `json:"activity"`
	// Duration is in minutes, Distance in kilometers.
	Duration int     `json:"duration"`
	Distance float64 `json:"distance"`
	// Calories is nil when not given, which is not the same as zero.
	Calories  *float64  `json:"calories,omitempty"`
	CreatedAt time.Time `json:"createdAt"`
}

// GenericWorkout is a free-text workout entry. Nothing in the app creates
// them; they are only listed.
type GenericWorkout struct {
	ID        int       `json:"id"`
	UserID    int       `json:"userId"`
	Workout   string    `json:"workout"`
	Duration  int       `json:"duration"`
	CreatedAt time.Time `json:"createdAt"`
}

type WeightPoint struct {
	Date   string  `json:"date"`
	Weight float64 `json:"weight"`
}

type DashboardData struct {
	Strength     []StrengthWorkout `json:"strength"`
	Cardio       []CardioWorkout   `json:"cardio"`
	WeightSeries []WeightPoint     `json:"weightSeries"`
}

// WeightSeriesFrom reduces chronologically ordered strength records to
// (date, weight) pairs, keeping the order.
func WeightSeriesFrom(chronological []StrengthWorkout) []WeightPoint {
	series := make([]WeightPoint, 0, len(chronological))
	for _, sw := range chronological {
		series = append(series, WeightPoint{
			Date:   sw.CreatedAt.UTC().Format(DateLayout),
			Weight: sw.Weight,
		})
	}
	return series
}
