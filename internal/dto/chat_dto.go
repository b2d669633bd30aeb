package dto

// AskRequest is the single inbound shape. ConversationId is optional: absent
// on the first turn, echoed back by the client afterwards.
type AskRequest struct {
	Question       string `json:"question" validate:"required"`
	ConversationId string `json:"conversation_id,omitempty"`
}

type DocumentDTO struct {
	Title   string `json:"title"`
	Content string `json:"content"`
	URL     string `json:"url"`
}

type AskResponse struct {
	Reponse        string        `json:"reponse"`
	ConversationId string        `json:"conversation_id"`
	Documents      []DocumentDTO `json:"documents,omitempty"`
}

type ErrorResponse struct {
	Error string `json:"error"`
}
