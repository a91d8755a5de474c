package request

type CommentRequest struct {
	Text string `json:"text" validate:"required"`
}

type CommentUpdateRequest struct {
	Text *string `json:"text,omitempty" validate:"omitempty,min=1"`
}
