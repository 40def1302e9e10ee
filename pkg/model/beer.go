package model

type CatalogBeer struct {
	ID          uint   `gorm:"primaryKey"`
	BeerName    string `gorm:"index"`
	BreweryName string
	Style       string `gorm:"index"`
	ABV         float64
	IBU         float64
	Description string
}

func (CatalogBeer) TableName() string {
	return "beers_catalog"
}

type StyleStats struct {
	Style      string
	BeerCount  uint64
	AverageABV float64
	AverageIBU float64
}

type CatalogFilter struct {
	Styles     []string
	MinimumAbv *float64
	MaximumAbv *float64
	Search     string
}
