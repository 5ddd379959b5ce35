package dto

// MessageResponse carries a human readable status message.
type MessageResponse struct {
	Message string `json:"message"`
}

// Response messages shared by handlers and middleware.
const (
	MsgUserCreated      = "User created successfully"
	MsgWorkoutAdded     = "Workout added"
	MsgWorkoutDeleted   = "Workout deleted successfully"
	MsgMissingFields    = "All fields are required"
	MsgUserExists       = "User already exists"
	MsgInvalidWorkout   = "Please provide type and duration (minutes)."
	MsgDateRequired     = "Date query parameter is required"
	MsgMissingID        = "Missing id"
	MsgInvalidBody      = "Invalid request body"
	MsgInvalidLogin     = "Invalid credentials"
	MsgUnauthorized     = "Unauthorized"
	MsgInternalError    = "Internal server error"
	MsgNotFound         = "Not found"
	MsgServiceAvailable = "Fitness Tracker API is running"
)

// Message builds MessageResponse.
func Message(msg string) MessageResponse {
	return MessageResponse{Message: msg}
}
