package journal_test

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"droscher.com/BeerDiary/pkg/journal"
	"droscher.com/BeerDiary/pkg/model"
)

func TestSession_AddRefusesBufferedKey(t *testing.T) {
	session := journal.NewSession()

	first := candidate("Pale Ale", "2024-01-01", 4)
	again := candidate("Pale Ale", "2024-01-01", 2)
	again.UserNotes = "changed my mind"
	otherDay := candidate("Pale Ale", "2024-01-02", 2)

	assert.True(t, session.Add(first))
	assert.False(t, session.Add(again))
	assert.True(t, session.Add(otherDay))
	assert.True(t, session.Contains(first.Key()))
	assert.Equal(t, 2, session.Len())

	entries := session.Entries()
	require.Len(t, entries, 2)
	assert.Empty(t, entries[0].UserNotes)
}

func TestSession_DropRemovesOnlyMatchingKey(t *testing.T) {
	session := journal.NewSession()
	session.Add(candidate("Pale Ale", "2024-01-01", 4))
	session.Add(candidate("Stout", "2024-01-01", 4))
	session.Add(candidate("Pale Ale", "2024-01-02", 4))

	dropped := session.Apply(journal.Removal{Key: model.TastingKey{UserID: "guest", BeerID: "Pale Ale", TastedOn: "2024-01-01"}})

	assert.Equal(t, 1, dropped)
	assert.Equal(t, 2, session.Len())
	assert.False(t, session.Contains(model.TastingKey{UserID: "guest", BeerID: "Pale Ale", TastedOn: "2024-01-01"}))
	assert.True(t, session.Contains(model.TastingKey{UserID: "guest", BeerID: "Pale Ale", TastedOn: "2024-01-02"}))
	assert.Zero(t, session.Drop(model.TastingKey{UserID: "guest", BeerID: "Ghost", TastedOn: "2024-01-01"}))
}

func TestSession_EntriesIsACopy(t *testing.T) {
	session := journal.NewSession()
	session.Add(candidate("Pale Ale", "2024-01-01", 4))

	entries := session.Entries()
	entries[0].BeerID = "Mutated"

	assert.Equal(t, "Pale Ale", session.Entries()[0].BeerID)
}

func TestSession_ConcurrentAdds(t *testing.T) {
	session := journal.NewSession()

	var wg sync.WaitGroup

	for i := 0; i < 50; i++ {
		wg.Add(1)

		go func() {
			defer wg.Done()

			session.Add(candidate("Pale Ale", "2024-01-01", 4))
		}()
	}

	wg.Wait()

	assert.Equal(t, 1, session.Len())
}
