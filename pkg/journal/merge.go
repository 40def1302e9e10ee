package journal

import "droscher.com/BeerDiary/pkg/model"

type viewKey struct {
	beerID   string
	tastedOn string
}

// Merge builds the journal as a user sees it: persisted entries first, then
// buffered entries for beers and days not already listed.
func Merge(persisted []*model.TastingEntry, buffered []model.TastingEntry) []model.TastingEntry {
	merged := make([]model.TastingEntry, 0, len(persisted)+len(buffered))
	shown := make(map[viewKey]struct{}, cap(merged))

	add := func(entry model.TastingEntry) {
		key := viewKey{beerID: entry.BeerID, tastedOn: entry.TastedOn}
		if _, ok := shown[key]; ok {
			return
		}

		shown[key] = struct{}{}
		merged = append(merged, entry)
	}

	for _, entry := range persisted {
		if entry != nil {
			add(*entry)
		}
	}

	for _, entry := range buffered {
		add(entry)
	}

	return merged
}
