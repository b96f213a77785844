package dto

// SelectionRequest carries the option labels a user picked for one
// question. Single-select questions accept exactly one label;
// multi-select questions accept one or more.
type SelectionRequest struct {
	Selected []string `json:"selected" binding:"required"`
}
