package serviceImp

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"hinga/entities"
)

type memRepo struct {
	docs    []entities.AdvisoryDoc
	chunks  []entities.AdvisoryChunk
	nextDoc uint
	nextCh  uint
}

func newMemRepo() *memRepo { return &memRepo{nextDoc: 1, nextCh: 1} }

func (r *memRepo) CreateDoc(d *entities.AdvisoryDoc) error {
	d.DocID = r.nextDoc
	r.nextDoc++
	r.docs = append(r.docs, *d)
	return nil
}

func (r *memRepo) BulkInsertChunks(cs []entities.AdvisoryChunk) error {
	for i := range cs {
		cs[i].ChunkID = r.nextCh
		r.nextCh++
		r.chunks = append(r.chunks, cs[i])
	}
	return nil
}

func (r *memRepo) ListDocs() ([]entities.AdvisoryDoc, error) { return r.docs, nil }

func (r *memRepo) AllChunks() ([]entities.AdvisoryChunk, error) { return r.chunks, nil }

func (r *memRepo) DocsByIDs(ids []uint) (map[uint]entities.AdvisoryDoc, error) {
	out := map[uint]entities.AdvisoryDoc{}
	for _, d := range r.docs {
		for _, id := range ids {
			if d.DocID == id {
				out[d.DocID] = d
			}
		}
	}
	return out, nil
}

func TestChunkTextBreaksAtNewlines(t *testing.T) {
	para := strings.Repeat("maize spacing advice ", 30) + "\n"
	text := strings.Repeat(para, 5)

	parts := chunkText(text, 600)
	require.Greater(t, len(parts), 1)
	for _, p := range parts {
		assert.True(t, strings.HasSuffix(p, "\n"))
	}
	assert.Equal(t, text, strings.Join(parts, ""))
}

func TestChunkTextShortInput(t *testing.T) {
	parts := chunkText("plant beans after the first rains", 1000)
	require.Len(t, parts, 1)
}

func TestUpsertDocumentStoresChunks(t *testing.T) {
	repo := newMemRepo()
	svc := New(repo)

	doc, n, err := svc.UpsertDocument("Maize basics", "maize,planting", "Plant maize at the start of season A.\n", "")
	require.NoError(t, err)
	assert.Equal(t, 1, n)
	assert.NotZero(t, doc.DocID)
	require.Len(t, repo.chunks, 1)
	assert.Equal(t, doc.DocID, repo.chunks[0].DocID)
	assert.Equal(t, 0, repo.chunks[0].Ord)
}

func TestSearchRanksByTermFrequency(t *testing.T) {
	repo := newMemRepo()
	svc := New(repo)

	_, _, err := svc.UpsertDocument("Beans", "beans", "Beans need staking. Beans like beans weather.\n", "")
	require.NoError(t, err)
	_, _, err = svc.UpsertDocument("Maize", "maize", "Maize needs nitrogen. Some beans too.\n", "")
	require.NoError(t, err)

	out, err := svc.Search("beans", 5)
	require.NoError(t, err)
	require.Len(t, out, 2)
	assert.Contains(t, strings.ToLower(out[0].Text), "staking")
}

func TestSearchCapsAtK(t *testing.T) {
	repo := newMemRepo()
	svc := New(repo)

	for i := 0; i < 4; i++ {
		_, _, err := svc.UpsertDocument("Doc", "", "tomato blight treatment\n", "")
		require.NoError(t, err)
	}

	out, err := svc.Search("tomato", 2)
	require.NoError(t, err)
	assert.Len(t, out, 2)
}

func TestSearchEmptyQuery(t *testing.T) {
	svc := New(newMemRepo())
	out, err := svc.Search("   ", 5)
	require.NoError(t, err)
	assert.Empty(t, out)
}

func TestSearchNoMatches(t *testing.T) {
	repo := newMemRepo()
	svc := New(repo)
	_, _, err := svc.UpsertDocument("Maize", "", "Maize needs nitrogen.\n", "")
	require.NoError(t, err)

	out, err := svc.Search("cassava", 5)
	require.NoError(t, err)
	assert.Empty(t, out)
}
