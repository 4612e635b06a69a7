package models

// Response is the basic model for an API response
type Response struct {
	Status int    `json:"status"`
	Err    string `json:"error"`
}

// welcomeRes keeps the attemtedPath key clients already read
type welcomeRes struct {
	Message      string `json:"message"`
	AttemtedPath string `json:"attemtedPath"`
}

type notFoundRes struct {
	Message       string `json:"message"`
	AttemptedPath string `json:"attemptedPath"`
}
