package models

// User is a registered directory entry.
// @Description Registered user
type User struct {
	ID    int64  `json:"id" example:"1"`
	Name  string `json:"name" example:"Julio"`
	Age   int    `json:"age" example:"26"`
	Email string `json:"email" example:"julio@gmail.com"`
}

// CreateUserRequest is the body for POST /users.
type CreateUserRequest struct {
	Name  string `json:"name" example:"Julio"`
	Age   int    `json:"age" example:"26"`
	Email string `json:"email" example:"julio@gmail.com"`
}

// UpdateUserRequest is the body for PUT /users/{id}. All three fields are
// written back unconditionally: updates replace, they do not patch.
type UpdateUserRequest struct {
	Name  string `json:"name" example:"Julio"`
	Age   int    `json:"age" example:"27"`
	Email string `json:"email" example:"julio@gmail.com"`
}

// DeleteResponse confirms a successful delete.
type DeleteResponse struct {
	Message string `json:"message" example:"user deleted successfully"`
}

// ErrorResponse documents the error envelope for swagger.
type ErrorResponse struct {
	Success bool   `json:"success" example:"false"`
	Message string `json:"message"`
}
