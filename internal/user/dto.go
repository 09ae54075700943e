// Heftly | 2026
// dto.go

package user

// CreateUserRequest is the candidate the management screen submits
// (JSON in the userdata header). The id is client-supplied and
// stored verbatim.
type CreateUserRequest struct {
	ID              string `json:"id"              validate:"required,max=64"`
	Name            string `json:"name"            validate:"required,min=1,max=100"`
	Role            string `json:"role"            validate:"required,oneof=admin trainer trainee"`
	Password        string `json:"password"        validate:"required,min=1,max=128"`
	Department      string `json:"department"      validate:"omitempty,max=100"`
	AssignedTrainer string `json:"assignedTrainer" validate:"omitempty,max=64"`
}

// UpdateUserRequest is a sparse patch; nil fields are left alone.
// A password, when present, is re-hashed before it is written -
// never stored as supplied.
type UpdateUserRequest struct {
	Name            *string `json:"name,omitempty"            validate:"omitempty,min=1,max=100"`
	Role            *string `json:"role,omitempty"            validate:"omitempty,oneof=admin trainer trainee"`
	Password        *string `json:"password,omitempty"        validate:"omitempty,min=1,max=128"`
	Department      *string `json:"department,omitempty"      validate:"omitempty,max=100"`
	AssignedTrainer *string `json:"assignedTrainer,omitempty" validate:"omitempty,max=64"`
}

// UserResponse is the directory shape handed to the UI. The password
// hash is deliberately redacted.
type UserResponse struct {
	RecordID        string `json:"recordId"`
	ID              string `json:"id"`
	Name            string `json:"name"`
	Role            string `json:"role"`
	Department      string `json:"department,omitempty"`
	AssignedTrainer string `json:"assignedTrainer,omitempty"`
	CreatedAt       string `json:"createdAt"`
}

type CreateUserResponse struct {
	Message string       `json:"message"`
	NewUser UserResponse `json:"newUser"`
}

type ExistsResponse struct {
	Exists bool `json:"exists"`
}

type MessageResponse struct {
	Message string `json:"message"`
}

func ToUserResponse(u *User) UserResponse {
	return UserResponse{
		RecordID:        u.RecordID,
		ID:              u.ID,
		Name:            u.Name,
		Role:            u.Role,
		Department:      u.Department,
		AssignedTrainer: u.AssignedTrainer,
		CreatedAt:       u.CreatedAt,
	}
}

func ToUserResponseList(users []User) []UserResponse {
	responses := make([]UserResponse, 0, len(users))
	for _, u := range users {
		responses = append(responses, ToUserResponse(&u))
	}
	return responses
}
