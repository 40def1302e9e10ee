package repository

import (
	"context"
	"strings"

	"gorm.io/gorm"

	"droscher.com/BeerDiary/pkg/model"
)

type FavoriteRepository interface {
	AddFavorite(ctx context.Context, favorite model.FavoriteBrewery) (*model.FavoriteBrewery, bool, error)
	GetFavoritesForUser(ctx context.Context, userID string, search string) ([]*model.FavoriteBrewery, error)
	RemoveFavorite(ctx context.Context, userID string, favoriteID uint) (int64, error)
}

// AddFavorite stores favorite unless the user already saved a brewery with the
// same name in the same city.
func (r *Repository) AddFavorite(ctx context.Context, favorite model.FavoriteBrewery) (*model.FavoriteBrewery, bool, error) {
	created := false

	err := r.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var count int64

		if result := tx.Model(&model.FavoriteBrewery{}).
			Where("brewery_name = ? AND city = ? AND user_id = ?", favorite.BreweryName, favorite.City, favorite.UserID).
			Count(&count); result.Error != nil {
			return result.Error
		}

		if count > 0 {
			return nil
		}

		if result := tx.Create(&favorite); result.Error != nil {
			return result.Error
		}

		created = true

		return nil
	})
	if err != nil {
		return nil, false, err
	}

	return &favorite, created, nil
}

func (r *Repository) GetFavoritesForUser(ctx context.Context, userID string, search string) ([]*model.FavoriteBrewery, error) {
	favorites := []*model.FavoriteBrewery{}

	query := r.DB.WithContext(ctx).Where("user_id = ?", userID)

	if search = strings.TrimSpace(search); len(search) > 0 {
		query = query.Where("LOWER(brewery_name) LIKE ?", "%"+strings.ToLower(search)+"%")
	}

	if result := query.Order("brewery_name").Find(&favorites); result.Error != nil {
		return nil, result.Error
	}

	return favorites, nil
}

func (r *Repository) RemoveFavorite(ctx context.Context, userID string, favoriteID uint) (int64, error) {
	result := r.DB.WithContext(ctx).Where("user_id = ?", userID).Delete(&model.FavoriteBrewery{}, favoriteID)
	if result.Error != nil {
		return 0, result.Error
	}

	return result.RowsAffected, nil
}
