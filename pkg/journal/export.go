package journal

import (
	"encoding/csv"
	"io"
	"strconv"

	"droscher.com/BeerDiary/pkg/model"
)

var exportHeader = []string{
	"beer_id", "brewery_name", "style", "abv",
	"look", "smell", "taste", "feel", "overall", "average_rating",
	"user_notes", "tasted_on",
}

// WriteCSV writes entries in the tasting_journal.csv download layout.
func WriteCSV(w io.Writer, entries []model.TastingEntry) error {
	writer := csv.NewWriter(w)

	if err := writer.Write(exportHeader); err != nil {
		return err
	}

	for _, entry := range entries {
		record := []string{
			entry.BeerID,
			entry.BreweryName,
			entry.Style,
			formatFloat(entry.ABV),
			formatFloat(entry.Look),
			formatFloat(entry.Smell),
			formatFloat(entry.Taste),
			formatFloat(entry.Feel),
			formatFloat(entry.Overall),
			formatFloat(entry.AverageRating),
			entry.UserNotes,
			entry.TastedOn,
		}

		if err := writer.Write(record); err != nil {
			return err
		}
	}

	writer.Flush()

	return writer.Error()
}

func formatFloat(value float64) string {
	return strconv.FormatFloat(value, 'f', -1, 64)
}
