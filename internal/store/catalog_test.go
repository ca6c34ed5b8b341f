package store

import (
	"fmt"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pdfplace/pdfplace/models"
)

func testRecord(id, filename string) models.Record {
	return models.Record{
		ID:        id,
		Filename:  filename,
		Category:  models.CategoryOthers,
		SizeBytes: 1024,
		Payload:   "data:application/pdf;base64,JVBERi0xLjQ=",
		Residency: models.ResidencyFull,
	}
}

func TestRecordStore_InsertKeepsNewestFirst(t *testing.T) {
	s := NewRecordStore()

	require.NoError(t, s.Insert(testRecord("1", "first.pdf")))
	require.NoError(t, s.Insert(testRecord("2", "second.pdf")))
	require.NoError(t, s.Insert(testRecord("3", "third.pdf")))

	all := s.All()
	require.Len(t, all, 3)
	assert.Equal(t, "3", all[0].ID)
	assert.Equal(t, "2", all[1].ID)
	assert.Equal(t, "1", all[2].ID)
}

func TestRecordStore_InsertDuplicateID(t *testing.T) {
	s := NewRecordStore()

	require.NoError(t, s.Insert(testRecord("1", "first.pdf")))
	err := s.Insert(testRecord("1", "again.pdf"))

	assert.ErrorIs(t, err, ErrDuplicateID)
	assert.Equal(t, 1, s.Len())
}

func TestRecordStore_Remove(t *testing.T) {
	s := NewRecordStore()
	require.NoError(t, s.Insert(testRecord("1", "first.pdf")))
	require.NoError(t, s.Insert(testRecord("2", "second.pdf")))

	removed, err := s.Remove("1")
	require.NoError(t, err)
	assert.Equal(t, "first.pdf", removed.Filename)
	assert.Equal(t, 1, s.Len())

	_, err = s.Remove("1")
	assert.ErrorIs(t, err, ErrRecordNotFound)
}

func TestRecordStore_Update(t *testing.T) {
	s := NewRecordStore()
	require.NoError(t, s.Insert(testRecord("1", "first.pdf")))

	err := s.Update("1", func(r *models.Record) {
		r.DownloadCount++
	})
	require.NoError(t, err)

	got, ok := s.FindByID("1")
	require.True(t, ok)
	assert.Equal(t, int64(1), got.DownloadCount)

	err = s.Update("missing", func(*models.Record) {})
	assert.ErrorIs(t, err, ErrRecordNotFound)
}

func TestRecordStore_FindByIDReturnsCopy(t *testing.T) {
	s := NewRecordStore()
	require.NoError(t, s.Insert(testRecord("1", "first.pdf")))

	got, ok := s.FindByID("1")
	require.True(t, ok)
	got.Filename = "mutated.pdf"

	again, ok := s.FindByID("1")
	require.True(t, ok)
	assert.Equal(t, "first.pdf", again.Filename)
}

func TestRecordStore_ClearReturnsRemoved(t *testing.T) {
	s := NewRecordStore()
	require.NoError(t, s.Insert(testRecord("1", "first.pdf")))
	require.NoError(t, s.Insert(testRecord("2", "second.pdf")))

	removed := s.Clear()
	assert.Len(t, removed, 2)
	assert.Equal(t, 0, s.Len())
	assert.Empty(t, s.All())
}

func TestRecordStore_Replace(t *testing.T) {
	s := NewRecordStore()
	require.NoError(t, s.Insert(testRecord("old", "old.pdf")))

	s.Replace([]models.Record{
		testRecord("a", "a.pdf"),
		testRecord("b", "b.pdf"),
	})

	all := s.All()
	require.Len(t, all, 2)
	assert.Equal(t, "a", all[0].ID)
	_, ok := s.FindByID("old")
	assert.False(t, ok)
}

func TestRecordStore_ConcurrentReadersAndWriters(t *testing.T) {
	s := NewRecordStore()

	var wg sync.WaitGroup
	for w := 0; w < 4; w++ {
		wg.Add(1)
		go func(w int) {
			defer wg.Done()
			for i := 0; i < 50; i++ {
				id := fmt.Sprintf("%d-%d", w, i)
				require.NoError(t, s.Insert(testRecord(id, id+".pdf")))
				_, _ = s.FindByID(id)
				_, err := s.Remove(id)
				require.NoError(t, err)
			}
		}(w)
	}
	for r := 0; r < 4; r++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := 0; i < 50; i++ {
				_ = s.All()
				_ = s.Len()
			}
		}()
	}
	wg.Wait()

	assert.Equal(t, 0, s.Len())
}
