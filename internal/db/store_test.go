package db

import (
	"errors"
	"testing"
	"time"

	"github.com/beatburn/server/internal/models"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func openTestRepositories(t *testing.T) *Repositories {
	t.Helper()
	database, err := OpenMemory()
	require.NoError(t, err)
	return NewRepositories(database)
}

func seedUser(t *testing.T, repos *Repositories) models.User {
	t.Helper()
	user := models.User{
		Username:     "dancer",
		PasswordHash: "x",
		Name:         "Dana",
		Age:          25,
		Gender:       models.GenderFemale,
		HeightCm:     175,
		WeightKg:     70,
		Goal:         "Weight Loss",
		DanceStyle:   "Zumba",
		BMI:          22.9,
		BMR:          1508,
		CalorieGoal:  1837,
	}
	require.NoError(t, repos.Users.Create(&user))
	return user
}

func TestCreateWorkoutBumpsOwnerTotal(t *testing.T) {
	repos := openTestRepositories(t)
	user := seedUser(t, repos)

	workout := models.WorkoutSession{
		UserID:         user.ID,
		Type:           "Zumba",
		DurationMin:    26,
		CaloriesBurned: 247,
		Date:           time.Now(),
	}
	require.NoError(t, repos.Workouts.Create(&workout))
	require.NotZero(t, workout.ID)

	reloaded, err := repos.Users.FindByID(user.ID)
	require.NoError(t, err)
	require.Equal(t, 247, reloaded.CaloriesBurned)
}

func TestCreateWorkoutForMissingUserWritesNothing(t *testing.T) {
	repos := openTestRepositories(t)

	workout := models.WorkoutSession{
		UserID:         999,
		Type:           "Zumba",
		DurationMin:    10,
		CaloriesBurned: 100,
		Date:           time.Now(),
	}
	err := repos.Workouts.Create(&workout)
	require.ErrorIs(t, err, gorm.ErrRecordNotFound)

	workouts, err := repos.Workouts.ListByUserDesc(999)
	require.NoError(t, err)
	require.Empty(t, workouts)
}

func TestCreateMealIsAdditive(t *testing.T) {
	repos := openTestRepositories(t)
	user := seedUser(t, repos)

	first := models.Meal{UserID: user.ID, Type: models.MealBreakfast, Name: "Oats", Calories: 300, Time: "08:00", Date: time.Now()}
	second := models.Meal{UserID: user.ID, Type: models.MealLunch, Name: "Bowl", Calories: 450, Time: "13:00", Date: time.Now()}
	require.NoError(t, repos.Meals.Create(&first))
	require.NoError(t, repos.Meals.Create(&second))

	reloaded, err := repos.Users.FindByID(user.ID)
	require.NoError(t, err)
	require.Equal(t, 750, reloaded.CaloriesConsumed)
}

func TestWorkoutsListedNewestFirst(t *testing.T) {
	repos := openTestRepositories(t)
	user := seedUser(t, repos)

	older := models.WorkoutSession{UserID: user.ID, Type: "Salsa", DurationMin: 20, CaloriesBurned: 150, Date: time.Now().Add(-time.Hour)}
	newer := models.WorkoutSession{UserID: user.ID, Type: "Hip Hop", DurationMin: 15, CaloriesBurned: 120, Date: time.Now()}
	require.NoError(t, repos.Workouts.Create(&older))
	require.NoError(t, repos.Workouts.Create(&newer))

	workouts, err := repos.Workouts.ListByUserDesc(user.ID)
	require.NoError(t, err)
	require.Len(t, workouts, 2)
	require.Equal(t, "Hip Hop", workouts[0].Type)
	require.Equal(t, "Salsa", workouts[1].Type)
}

func TestUpdateStatsWeightChangeAppendsHistory(t *testing.T) {
	repos := openTestRepositories(t)
	user := seedUser(t, repos)

	newWeight := 68.0
	updated, err := repos.Users.UpdateStats(user.ID, models.StatsPatch{WeightKg: &newWeight}, time.Now())
	require.NoError(t, err)
	require.Equal(t, 68.0, updated.WeightKg)

	history, err := repos.Weights.ListByUserAsc(user.ID)
	require.NoError(t, err)
	require.Len(t, history, 1)
	require.Equal(t, 68.0, history[0].WeightKg)
	require.Equal(t, -2.0, history[0].Change)

	// Derived fields follow the new biometrics.
	require.Equal(t, 22.2, updated.BMI)
	require.Equal(t, 1488, updated.BMR)
}

func TestUpdateStatsSameWeightLeavesHistoryAlone(t *testing.T) {
	repos := openTestRepositories(t)
	user := seedUser(t, repos)

	sameWeight := user.WeightKg
	burned := 500
	updated, err := repos.Users.UpdateStats(user.ID, models.StatsPatch{WeightKg: &sameWeight, CaloriesBurned: &burned}, time.Now())
	require.NoError(t, err)
	require.Equal(t, 500, updated.CaloriesBurned)

	history, err := repos.Weights.ListByUserAsc(user.ID)
	require.NoError(t, err)
	require.Empty(t, history)
}

func TestUpdateStatsMissingUser(t *testing.T) {
	repos := openTestRepositories(t)

	burned := 10
	_, err := repos.Users.UpdateStats(42, models.StatsPatch{CaloriesBurned: &burned}, time.Now())
	require.True(t, errors.Is(err, gorm.ErrRecordNotFound))
}

func TestChatCreatePairStoresBothInOrder(t *testing.T) {
	repos := openTestRepositories(t)
	user := seedUser(t, repos)

	now := time.Now()
	question := models.ChatMessage{UserID: user.ID, Content: "any advice?", Sender: models.SenderUser, Timestamp: now}
	reply := models.ChatMessage{UserID: user.ID, Content: "rest well", Sender: models.SenderBot, Timestamp: now.Add(time.Millisecond)}
	require.NoError(t, repos.Chats.CreatePair(&question, &reply))
	require.NotZero(t, question.ID)
	require.NotZero(t, reply.ID)

	history, err := repos.Chats.ListByUserAsc(user.ID)
	require.NoError(t, err)
	require.Len(t, history, 2)
	require.Equal(t, models.SenderUser, history[0].Sender)
	require.Equal(t, models.SenderBot, history[1].Sender)
}
