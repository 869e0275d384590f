package db

import "gorm.io/gorm"

type Repositories struct {
	Users    *UserRepository
	Workouts *WorkoutRepository
	Meals    *MealRepository
	Chats    *ChatRepository
	Weights  *WeightRepository
}

func NewRepositories(database *gorm.DB) *Repositories {
	return &Repositories{
		Users:    NewUserRepository(database),
		Workouts: NewWorkoutRepository(database),
		Meals:    NewMealRepository(database),
		Chats:    NewChatRepository(database),
		Weights:  NewWeightRepository(database),
	}
}
