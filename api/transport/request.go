package transport

// TaskCreateRequest carries the create payload. Points is a pointer so a
// missing field can be told apart from an explicit zero.
type TaskCreateRequest struct {
	Title               string `json:"title"`
	Time                string `json:"time"`
	Points              *int   `json:"points"`
	Category            string `json:"category"`
	NotificationEnabled *bool  `json:"notificationEnabled"`
}

// TaskUpdateRequest covers both update paths: when Completed is present the
// request is a completion toggle, otherwise a full field overwrite.
type TaskUpdateRequest struct {
	ID                  int64  `json:"id"`
	Completed           *bool  `json:"completed"`
	Title               string `json:"title"`
	Time                string `json:"time"`
	Points              int    `json:"points"`
	Category            string `json:"category"`
	NotificationEnabled *bool  `json:"notificationEnabled"`
}

// UserUpdateRequest is the user endpoint's POST body.
type UserUpdateRequest struct {
	InitializeTasks []TaskCreateRequest `json:"initializeTasks"`
}
