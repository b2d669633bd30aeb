package entity

// KnowledgeDocument is a static, read-only knowledge-base record. Documents
// are addressed by the integer position assigned at index-build time.
type KnowledgeDocument struct {
	Title   string `json:"title"`
	Content string `json:"content"`
	URL     string `json:"url"`
}
