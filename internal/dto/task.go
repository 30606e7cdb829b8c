package dto

// TaskRequest is the body of task create and edit requests. The
// termination date is a plain YYYY-MM-DD string; null clears it.
type TaskRequest struct {
	Name            string  `json:"name" binding:"required,max=75"`
	Description     string  `json:"description" binding:"max=300"`
	TerminationDate *string `json:"termination_date" binding:"omitempty,datetime=2006-01-02"`
}
