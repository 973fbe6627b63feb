package service

import "hinga/entities"

type AdvisoryService interface {
	// UpsertDocument stores a crop-growing article split into chunks and
	// returns the document plus the chunk count.
	UpsertDocument(title, tags, text, sourceURL string) (*entities.AdvisoryDoc, int, error)
	// Search ranks stored chunks by keyword match against the query
	// (typically a crop name) and returns the top k.
	Search(query string, k int) ([]entities.AdvisoryChunk, error)
	DocsMeta(ids []uint) (map[uint]entities.AdvisoryDoc, error)
}
