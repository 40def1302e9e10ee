package repository

import (
	"context"
	"errors"
	"strings"

	"gorm.io/gorm"

	"droscher.com/BeerDiary/pkg/model"
)

const catalogBatchSize = 500

var ErrBeerNotFound = errors.New("beer not found")

type CatalogRepository interface {
	AddCatalogBeers(ctx context.Context, beers []model.CatalogBeer) (int64, error)
	CountCatalogBeers(ctx context.Context) (int64, error)
	ClearCatalog(ctx context.Context) (int64, error)
	FindCatalogBeerByName(ctx context.Context, name string) (*model.CatalogBeer, error)
	FindCatalogBeers(ctx context.Context, filter model.CatalogFilter) ([]*model.CatalogBeer, error)
	GetStyleStats(ctx context.Context) ([]*model.StyleStats, error)
}

func (r *Repository) AddCatalogBeers(ctx context.Context, beers []model.CatalogBeer) (int64, error) {
	if len(beers) == 0 {
		return 0, nil
	}

	result := r.DB.WithContext(ctx).CreateInBatches(&beers, catalogBatchSize)
	if result.Error != nil {
		return 0, result.Error
	}

	return result.RowsAffected, nil
}

func (r *Repository) CountCatalogBeers(ctx context.Context) (int64, error) {
	var count int64

	if result := r.DB.WithContext(ctx).Model(&model.CatalogBeer{}).Count(&count); result.Error != nil {
		return 0, result.Error
	}

	return count, nil
}

func (r *Repository) FindCatalogBeerByName(ctx context.Context, name string) (*model.CatalogBeer, error) {
	beer := &model.CatalogBeer{}

	result := r.DB.WithContext(ctx).Where("beer_name = ?", name).First(beer)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, ErrBeerNotFound
		}

		return nil, result.Error
	}

	return beer, nil
}

func (r *Repository) FindCatalogBeers(ctx context.Context, filter model.CatalogFilter) ([]*model.CatalogBeer, error) {
	beers := []*model.CatalogBeer{}

	query := r.DB.WithContext(ctx)

	if len(filter.Styles) > 0 {
		query = query.Where("style IN ?", filter.Styles)
	}

	if filter.MinimumAbv != nil {
		query = query.Where("abv >= ?", *filter.MinimumAbv)
	}

	if filter.MaximumAbv != nil {
		query = query.Where("abv <= ?", *filter.MaximumAbv)
	}

	if search := strings.TrimSpace(filter.Search); len(search) > 0 {
		query = query.Where("LOWER(beer_name) LIKE ?", "%"+strings.ToLower(search)+"%")
	}

	if result := query.Order("beer_name").Find(&beers); result.Error != nil {
		return nil, result.Error
	}

	return beers, nil
}

func (r *Repository) GetStyleStats(ctx context.Context) ([]*model.StyleStats, error) {
	var stats []*model.StyleStats

	result := r.DB.WithContext(ctx).Model(&model.CatalogBeer{}).
		Select("style, count(*) as beer_count, avg(abv) as average_abv, avg(ibu) as average_ibu").
		Group("style").
		Order("beer_count DESC, style").
		Scan(&stats)
	if result.Error != nil {
		return nil, result.Error
	}

	return stats, nil
}

// ClearCatalog removes every catalog beer and returns how many were removed.
func (r *Repository) ClearCatalog(ctx context.Context) (int64, error) {
	result := r.DB.WithContext(ctx).Session(&gorm.Session{AllowGlobalUpdate: true}).Delete(&model.CatalogBeer{})
	if result.Error != nil {
		return 0, result.Error
	}

	return result.RowsAffected, nil
}
