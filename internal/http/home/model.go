package home

// Greeting is the fixed message served by the home route.
const Greeting = "Hello from CI/CD Demo App!"

// Data models the home response payload.
type Data struct {
	Message string `json:"message" doc:"Greeting message" example:"Hello from CI/CD Demo App!"`
}

// GetOutput is the response wrapper for the home endpoint.
type GetOutput struct {
	Body Data
}
