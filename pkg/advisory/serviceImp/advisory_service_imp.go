package serviceImp

import (
	"sort"
	"strings"

	"hinga/entities"
	"hinga/pkg/advisory/repository"
	"hinga/pkg/advisory/service"
)

type advisorySvc struct{ r repository.AdvisoryRepository }

func New(r repository.AdvisoryRepository) service.AdvisoryService { return &advisorySvc{r: r} }

// chunkText splits article text into roughly maxRunes-sized pieces,
// breaking at newlines.
func chunkText(text string, maxRunes int) []string {
	if maxRunes <= 0 {
		maxRunes = 1000
	}
	parts := []string{}
	cur := strings.Builder{}
	count := 0
	for _, r := range text {
		cur.WriteRune(r)
		count++
		if count >= maxRunes && r == '\n' {
			parts = append(parts, cur.String())
			cur.Reset()
			count = 0
		}
	}
	if cur.Len() > 0 {
		parts = append(parts, cur.String())
	}
	return parts
}

func (s *advisorySvc) UpsertDocument(title, tags, text, sourceURL string) (*entities.AdvisoryDoc, int, error) {
	d := &entities.AdvisoryDoc{Title: title, Tags: tags, SourceURL: sourceURL}
	if err := s.r.CreateDoc(d); err != nil {
		return nil, 0, err
	}

	chs := chunkText(text, 1000)
	if len(chs) == 0 {
		return d, 0, nil
	}
	rows := make([]entities.AdvisoryChunk, len(chs))
	for i := range chs {
		rows[i] = entities.AdvisoryChunk{DocID: d.DocID, Ord: i, Text: chs[i]}
	}
	if err := s.r.BulkInsertChunks(rows); err != nil {
		return nil, 0, err
	}
	return d, len(rows), nil
}

func (s *advisorySvc) Search(query string, k int) ([]entities.AdvisoryChunk, error) {
	q := strings.ToLower(strings.TrimSpace(query))
	if q == "" || k <= 0 {
		return nil, nil
	}
	chunks, err := s.r.AllChunks()
	if err != nil {
		return nil, err
	}
	if len(chunks) == 0 {
		return nil, nil
	}

	terms := strings.Fields(q)
	type scored struct {
		ch entities.AdvisoryChunk
		sc int
	}
	list := make([]scored, 0, len(chunks))
	for _, ch := range chunks {
		text := strings.ToLower(ch.Text)
		sc := 0
		for _, t := range terms {
			sc += strings.Count(text, t)
		}
		if sc > 0 {
			list = append(list, scored{ch: ch, sc: sc})
		}
	}
	sort.SliceStable(list, func(i, j int) bool { return list[i].sc > list[j].sc })

	if k > len(list) {
		k = len(list)
	}
	out := make([]entities.AdvisoryChunk, 0, k)
	for i := 0; i < k; i++ {
		out = append(out, list[i].ch)
	}
	return out, nil
}

func (s *advisorySvc) DocsMeta(ids []uint) (map[uint]entities.AdvisoryDoc, error) {
	return s.r.DocsByIDs(ids)
}
