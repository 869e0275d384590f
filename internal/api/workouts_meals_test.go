package api

import (
	"net/http"
	"testing"

	"github.com/beatburn/server/internal/models"
	"github.com/stretchr/testify/require"
)

func TestCreateWorkoutBumpsOwnerTotal(t *testing.T) {
	app, _ := newTestApp(t)
	createTestUser(t, app)

	response := performJSON(t, app, http.MethodPost, "/api/workouts", map[string]any{
		"userId":         1,
		"type":           "Hip Hop",
		"duration":       30,
		"caloriesBurned": 247,
	})
	require.Equal(t, http.StatusCreated, response.StatusCode)

	userResponse := performJSON(t, app, http.MethodGet, "/api/users/1", nil)
	var user models.User
	decodeBody(t, userResponse, &user)
	require.Equal(t, 247, user.CaloriesBurned)
}

func TestCreateWorkoutMissingOwner(t *testing.T) {
	app, _ := newTestApp(t)

	response := performJSON(t, app, http.MethodPost, "/api/workouts", map[string]any{
		"userId":         999,
		"type":           "Hip Hop",
		"duration":       30,
		"caloriesBurned": 247,
	})
	require.Equal(t, http.StatusNotFound, response.StatusCode)
}

func TestListWorkoutsNewestFirst(t *testing.T) {
	app, _ := newTestApp(t)
	createTestUser(t, app)

	for _, workoutType := range []string{"Salsa", "Hip Hop"} {
		response := performJSON(t, app, http.MethodPost, "/api/workouts", map[string]any{
			"userId":         1,
			"type":           workoutType,
			"duration":       15,
			"caloriesBurned": 100,
		})
		require.Equal(t, http.StatusCreated, response.StatusCode)
	}

	response := performJSON(t, app, http.MethodGet, "/api/users/1/workouts", nil)
	require.Equal(t, http.StatusOK, response.StatusCode)

	var workouts []models.WorkoutSession
	decodeBody(t, response, &workouts)
	require.Len(t, workouts, 2)
	require.Equal(t, "Hip Hop", workouts[0].Type)
	require.Equal(t, "Salsa", workouts[1].Type)
}

func TestCreateMealBumpsConsumedTotal(t *testing.T) {
	app, _ := newTestApp(t)
	createTestUser(t, app)

	for _, calories := range []int{300, 450} {
		response := performJSON(t, app, http.MethodPost, "/api/meals", map[string]any{
			"userId":   1,
			"type":     "Lunch",
			"name":     "Salad bowl",
			"calories": calories,
			"time":     "12:30",
		})
		require.Equal(t, http.StatusCreated, response.StatusCode)
	}

	userResponse := performJSON(t, app, http.MethodGet, "/api/users/1", nil)
	var user models.User
	decodeBody(t, userResponse, &user)
	require.Equal(t, 750, user.CaloriesConsumed)
}

func TestCreateMealRejectsUnknownType(t *testing.T) {
	app, _ := newTestApp(t)
	createTestUser(t, app)

	response := performJSON(t, app, http.MethodPost, "/api/meals", map[string]any{
		"userId":   1,
		"type":     "Brunch",
		"name":     "Pancakes",
		"calories": 500,
		"time":     "11:00",
	})
	require.Equal(t, http.StatusBadRequest, response.StatusCode)
}

func TestListMealsEmpty(t *testing.T) {
	app, _ := newTestApp(t)
	createTestUser(t, app)

	response := performJSON(t, app, http.MethodGet, "/api/users/1/meals", nil)
	require.Equal(t, http.StatusOK, response.StatusCode)

	var meals []models.Meal
	decodeBody(t, response, &meals)
	require.Empty(t, meals)
}
