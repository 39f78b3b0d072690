package dto

// TagListEnvelope {"tags": [...]}
type TagListEnvelope struct {
	Tags []string `json:"tags"`
}
