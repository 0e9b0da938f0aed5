package models

type SubmitWireframeRequest struct {
	// Description is the free-text requirement description for the wireframe.
	Description string `form:"description" example:"a login form with two fields and a button"`
	// Model selects the AI model variant: "deepseek", "llama", or anything
	// else for the default model. A full provider string is passed through.
	Model string `form:"model" example:"llama"`
}

type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message,omitempty"`
}
