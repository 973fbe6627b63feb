package entities

import "time"

// AdvisoryDoc is one ingested crop-growing article.
type AdvisoryDoc struct {
	DocID     uint      `gorm:"primaryKey" json:"doc_id"`
	Title     string    `json:"title"`
	Tags      string    `json:"tags"` // comma-separated crop names/topics
	SourceURL string    `json:"source_url"`
	CreatedAt time.Time
}

type AdvisoryChunk struct {
	ChunkID   uint   `gorm:"primaryKey" json:"chunk_id"`
	DocID     uint   `gorm:"index" json:"doc_id"`
	Ord       int    `json:"ord"`
	Text      string `json:"text"`
	CreatedAt time.Time
}
