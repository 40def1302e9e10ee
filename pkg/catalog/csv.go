// Package catalog reads the beer data set export used to seed the beer catalog.
package catalog

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"droscher.com/BeerDiary/pkg/model"
)

const NoDescription = "No description available."

var ErrMissingColumn = errors.New("missing column")

var requiredColumns = []string{"Name", "Brewery", "Style", "ABV", "Min IBU", "Max IBU", "Description"}

func ParseFile(path string) ([]model.CatalogBeer, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open catalog file: %w", err)
	}
	defer file.Close()

	return Parse(file)
}

// Parse converts the data set rows into catalog beers. Missing ABV and IBU
// values count as 0, IBU is the mean of the min and max IBU columns, and an
// empty description is replaced by NoDescription.
func Parse(r io.Reader) ([]model.CatalogBeer, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1

	header, err := reader.Read()
	if err != nil {
		if errors.Is(err, io.EOF) {
			return nil, nil
		}

		return nil, fmt.Errorf("read header: %w", err)
	}

	columns, err := indexColumns(header)
	if err != nil {
		return nil, err
	}

	var beers []model.CatalogBeer

	for {
		record, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}

		if err != nil {
			return nil, fmt.Errorf("read row: %w", err)
		}

		field := func(name string) string {
			index := columns[name]
			if index >= len(record) {
				return ""
			}

			return strings.TrimSpace(record[index])
		}

		// file line where the field starts
		line := func(name string) int {
			index := columns[name]
			if index >= len(record) {
				index = 0
			}

			line, _ := reader.FieldPos(index)

			return line
		}

		name := field("Name")
		if len(name) == 0 {
			continue
		}

		abv, err := parseNumber(field("ABV"))
		if err != nil {
			return nil, fmt.Errorf("line %d: ABV: %w", line("ABV"), err)
		}

		minIBU, err := parseNumber(field("Min IBU"))
		if err != nil {
			return nil, fmt.Errorf("line %d: Min IBU: %w", line("Min IBU"), err)
		}

		maxIBU, err := parseNumber(field("Max IBU"))
		if err != nil {
			return nil, fmt.Errorf("line %d: Max IBU: %w", line("Max IBU"), err)
		}

		description := field("Description")
		if len(description) == 0 {
			description = NoDescription
		}

		beers = append(beers, model.CatalogBeer{
			BeerName:    name,
			BreweryName: field("Brewery"),
			Style:       field("Style"),
			ABV:         abv,
			IBU:         (minIBU + maxIBU) / 2, //nolint:mnd // mean of min and max
			Description: description,
		})
	}

	return beers, nil
}

func indexColumns(header []string) (map[string]int, error) {
	columns := make(map[string]int, len(header))

	for index, name := range header {
		columns[strings.TrimSpace(strings.TrimPrefix(name, "\ufeff"))] = index
	}

	for _, name := range requiredColumns {
		if _, ok := columns[name]; !ok {
			return nil, fmt.Errorf("%w: %s", ErrMissingColumn, name)
		}
	}

	return columns, nil
}

func parseNumber(value string) (float64, error) {
	if len(value) == 0 || strings.EqualFold(value, "nan") {
		return 0, nil
	}

	return strconv.ParseFloat(value, 64)
}
