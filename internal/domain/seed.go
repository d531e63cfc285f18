package domain

// seedCreated is the creation date stamped on every seed task.
const seedCreated = "2024-01-01"

// SeedTasks returns the example tasks written to a fresh storage location.
func SeedTasks() []Task {
	return []Task{
		{ID: 1, Text: "Grocery Shopping", Completed: true, Created: seedCreated},
		{ID: 2, Text: "Finish Report", Completed: false, Created: seedCreated},
		{ID: 3, Text: "Call Mom", Completed: true, Created: seedCreated},
		{ID: 4, Text: "Gym Workout", Completed: false, Created: seedCreated},
		{ID: 5, Text: "Pay Bills", Completed: false, Created: seedCreated},
	}
}
