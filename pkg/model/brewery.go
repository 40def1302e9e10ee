package model

type FavoriteBrewery struct {
	ID          uint   `gorm:"primaryKey"`
	BreweryName string `gorm:"index:idx_favorite_brewery"`
	City        string `gorm:"index:idx_favorite_brewery"`
	State       string
	Country     string
	WebsiteURL  *string
	UserID      string `gorm:"index:idx_favorite_brewery"`
}

func (FavoriteBrewery) TableName() string {
	return "favorite_breweries"
}
