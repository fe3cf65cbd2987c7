package models

// KnowledgeBaseArticle is an entry in the community pet-care wiki.
type KnowledgeBaseArticle struct {
	ID          int    `json:"id"`
	Title       string `json:"title"`
	Excerpt     string `json:"excerpt"`
	Author      string `json:"author"`
	Category    string `json:"category"`
	FullContent string `json:"fullContent"`
}
