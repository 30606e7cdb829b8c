package dto

import "github.com/yukikurage/todo-project-api/internal/models"

// UserDTO represents a user in API responses. The password hash never
// leaves the persistence layer.
type UserDTO struct {
	ID        uint64 `json:"id"`
	Login     string `json:"login"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
}

// ToUserDTO converts a User model to UserDTO.
func ToUserDTO(user models.User) UserDTO {
	return UserDTO{
		ID:        user.ID,
		Login:     user.Login,
		FirstName: user.FirstName,
		LastName:  user.LastName,
	}
}
