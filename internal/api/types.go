package api

// Tokens is the access/refresh pair issued by the backend. A session is
// authenticated iff a non-empty refresh token is held; the access token may
// legitimately be absent or stale between refreshes.
type Tokens struct {
	Access  string `json:"access"`
	Refresh string `json:"refresh"`
}

// Task is the backend's wire representation of a task. The backend owns the
// id; the client never invents one except as a negative placeholder before a
// create settles.
type Task struct {
	ID          int64   `json:"id"`
	Title       string  `json:"title"`
	Description string  `json:"description"`
	Completed   bool    `json:"completed"`
	DueDate     *string `json:"due_date"`
	CreatedAt   string  `json:"created_at"`
	UpdatedAt   string  `json:"updated_at"`
}

type loginRequest struct {
	// The backend resolves whichever of username/email applies, so the same
	// identifier is sent in both fields.
	Username string `json:"username"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

type registerRequest struct {
	Email     string `json:"email"`
	Username  string `json:"username"`
	Password  string `json:"password"`
	Password2 string `json:"password2"`
}

type refreshRequest struct {
	Refresh string `json:"refresh"`
}

type refreshResponse struct {
	Access string `json:"access"`
}

// CreateTaskParams is the payload for creating a task.
type CreateTaskParams struct {
	Title       string  `json:"title"`
	Description string  `json:"description,omitempty"`
	DueDate     *string `json:"due_date,omitempty"`
}

// UpdateTaskParams is the payload for a full task update. The backend
// replaces title, description, completed and due_date wholesale.
type UpdateTaskParams struct {
	Title       string  `json:"title"`
	Description string  `json:"description"`
	Completed   bool    `json:"completed"`
	DueDate     *string `json:"due_date"`
}
