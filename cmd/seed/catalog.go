package main

import "alcyxob/workout-tracker/internal/domain"

func strptr(s string) *string { return &s }

// exerciseCatalog is the reference exercise data seeded into the database.
var exerciseCatalog = []domain.Exercise{
	// Strength - Chest
	{Name: "Bench Press", Description: "A compound exercise that targets the chest, shoulders, and triceps.", Category: "Strength", MuscleGroup: strptr("Chest")},
	{Name: "Incline Bench Press", Description: "Targets the upper chest muscles with an angled bench.", Category: "Strength", MuscleGroup: strptr("Chest")},
	{Name: "Dumbbell Fly", Description: "An isolation exercise that targets the chest muscles.", Category: "Strength", MuscleGroup: strptr("Chest")},
	{Name: "Push-Up", Description: "A bodyweight exercise that targets the chest, shoulders, and triceps.", Category: "Strength", MuscleGroup: strptr("Chest")},

	// Strength - Back
	{Name: "Pull-Up", Description: "A bodyweight exercise that targets the back and biceps.", Category: "Strength", MuscleGroup: strptr("Back")},
	{Name: "Deadlift", Description: "A compound exercise that targets the back, glutes, and hamstrings.", Category: "Strength", MuscleGroup: strptr("Back")},
	{Name: "Bent-Over Row", Description: "A compound exercise that targets the back and biceps.", Category: "Strength", MuscleGroup: strptr("Back")},
	{Name: "Lat Pulldown", Description: "A machine exercise that targets the latissimus dorsi muscles.", Category: "Strength", MuscleGroup: strptr("Back")},

	// Strength - Legs
	{Name: "Squat", Description: "A compound exercise that targets the quadriceps, hamstrings, and glutes.", Category: "Strength", MuscleGroup: strptr("Legs")},
	{Name: "Leg Press", Description: "A machine exercise that targets the quadriceps, hamstrings, and glutes.", Category: "Strength", MuscleGroup: strptr("Legs")},
	{Name: "Leg Extension", Description: "An isolation exercise that targets the quadriceps.", Category: "Strength", MuscleGroup: strptr("Legs")},
	{Name: "Leg Curl", Description: "An isolation exercise that targets the hamstrings.", Category: "Strength", MuscleGroup: strptr("Legs")},

	// Strength - Shoulders
	{Name: "Overhead Press", Description: "A compound exercise that targets the shoulders and triceps.", Category: "Strength", MuscleGroup: strptr("Shoulders")},
	{Name: "Lateral Raise", Description: "An isolation exercise that targets the lateral deltoids.", Category: "Strength", MuscleGroup: strptr("Shoulders")},
	{Name: "Front Raise", Description: "An isolation exercise that targets the anterior deltoids.", Category: "Strength", MuscleGroup: strptr("Shoulders")},
	{Name: "Reverse Fly", Description: "An isolation exercise that targets the posterior deltoids.", Category: "Strength", MuscleGroup: strptr("Shoulders")},

	// Strength - Arms
	{Name: "Bicep Curl", Description: "An isolation exercise that targets the biceps.", Category: "Strength", MuscleGroup: strptr("Arms")},
	{Name: "Tricep Extension", Description: "An isolation exercise that targets the triceps.", Category: "Strength", MuscleGroup: strptr("Arms")},
	{Name: "Hammer Curl", Description: "An isolation exercise that targets the biceps and forearms.", Category: "Strength", MuscleGroup: strptr("Arms")},
	{Name: "Skull Crusher", Description: "An isolation exercise that targets the triceps.", Category: "Strength", MuscleGroup: strptr("Arms")},

	// Strength - Core
	{Name: "Crunch", Description: "An isolation exercise that targets the abdominal muscles.", Category: "Strength", MuscleGroup: strptr("Core")},
	{Name: "Plank", Description: "A static exercise that targets the core muscles.", Category: "Strength", MuscleGroup: strptr("Core")},
	{Name: "Russian Twist", Description: "A rotational exercise that targets the obliques.", Category: "Strength", MuscleGroup: strptr("Core")},
	{Name: "Leg Raise", Description: "An exercise that targets the lower abdominal muscles.", Category: "Strength", MuscleGroup: strptr("Core")},

	// Cardio
	{Name: "Running", Description: "A cardiovascular exercise that improves endurance and burns calories.", Category: "Cardio"},
	{Name: "Cycling", Description: "A low-impact cardiovascular exercise that targets the legs.", Category: "Cardio"},
	{Name: "Rowing", Description: "A full-body cardiovascular exercise that targets multiple muscle groups.", Category: "Cardio"},
	{Name: "Jump Rope", Description: "A high-intensity cardiovascular exercise that improves coordination.", Category: "Cardio"},
	{Name: "Stair Climber", Description: "A cardiovascular exercise that targets the legs and glutes.", Category: "Cardio"},

	// Flexibility
	{Name: "Hamstring Stretch", Description: "A stretch that targets the hamstring muscles.", Category: "Flexibility", MuscleGroup: strptr("Legs")},
	{Name: "Quad Stretch", Description: "A stretch that targets the quadriceps muscles.", Category: "Flexibility", MuscleGroup: strptr("Legs")},
	{Name: "Shoulder Stretch", Description: "A stretch that targets the shoulder muscles.", Category: "Flexibility", MuscleGroup: strptr("Shoulders")},
	{Name: "Chest Stretch", Description: "A stretch that targets the chest muscles.", Category: "Flexibility", MuscleGroup: strptr("Chest")},
	{Name: "Back Stretch", Description: "A stretch that targets the back muscles.", Category: "Flexibility", MuscleGroup: strptr("Back")},
}
