package dto

// ProjectRequest is the body of project create and edit requests.
type ProjectRequest struct {
	Name        string `json:"name" binding:"required,max=75"`
	Description string `json:"description" binding:"max=300"`
}
