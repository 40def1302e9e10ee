package model

import (
	"fmt"
	"time"
)

// DateLayout is the storage format of TastingEntry.TastedOn.
const DateLayout = time.DateOnly

// TastingKey identifies a tasting. BeerID is the beer's display name, so two
// catalog beers sharing a name share keys.
type TastingKey struct {
	UserID   string
	BeerID   string
	TastedOn string
}

func (k TastingKey) String() string {
	return fmt.Sprintf("%s/%s@%s", k.UserID, k.BeerID, k.TastedOn)
}

type TastingEntry struct {
	ID            uint   `gorm:"primaryKey"`
	UserID        string `gorm:"index:idx_tasting_key,priority:1"`
	BeerID        string `gorm:"index:idx_tasting_key,priority:2"`
	BreweryName   string
	Style         string
	ABV           float64
	Look          float64
	Smell         float64
	Taste         float64
	Feel          float64
	Overall       float64
	AverageRating float64
	UserNotes     string
	TastedOn      string `gorm:"index:idx_tasting_key,priority:3"`
	CreatedAt     time.Time
}

func (TastingEntry) TableName() string {
	return "tasting_journal"
}

func (e TastingEntry) Key() TastingKey {
	return TastingKey{UserID: e.UserID, BeerID: e.BeerID, TastedOn: e.TastedOn}
}

func (e TastingEntry) Scores() [5]float64 {
	return [5]float64{e.Look, e.Smell, e.Taste, e.Feel, e.Overall}
}
