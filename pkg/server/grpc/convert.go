package grpc

import (
	"go.openly.dev/pointy"

	"droscher.com/BeerDiary/pkg/model"
	api "droscher.com/BeerDiary/pkg/server/grpc/api/v1"
)

func TastingFromModel(entry model.TastingEntry) *api.Tasting {
	return &api.Tasting{
		Id:            uint64(entry.ID),
		BeerId:        entry.BeerID,
		BreweryName:   entry.BreweryName,
		Style:         entry.Style,
		Abv:           entry.ABV,
		Look:          entry.Look,
		Smell:         entry.Smell,
		Taste:         entry.Taste,
		Feel:          entry.Feel,
		Overall:       entry.Overall,
		AverageRating: entry.AverageRating,
		UserNotes:     entry.UserNotes,
		TastedOn:      entry.TastedOn,
	}
}

func TastingsFromModel(entries []model.TastingEntry) []*api.Tasting {
	tastings := make([]*api.Tasting, 0, len(entries))

	for _, entry := range entries {
		tastings = append(tastings, TastingFromModel(entry))
	}

	return tastings
}

// TastingToModel copies the caller supplied fields. The id and the average
// rating are always assigned by the journal.
func TastingToModel(tasting *api.Tasting) model.TastingEntry {
	if tasting == nil {
		return model.TastingEntry{}
	}

	return model.TastingEntry{
		BeerID:      tasting.BeerId,
		BreweryName: tasting.BreweryName,
		Style:       tasting.Style,
		ABV:         tasting.Abv,
		Look:        tasting.Look,
		Smell:       tasting.Smell,
		Taste:       tasting.Taste,
		Feel:        tasting.Feel,
		Overall:     tasting.Overall,
		UserNotes:   tasting.UserNotes,
		TastedOn:    tasting.TastedOn,
	}
}

func CatalogBeersFromModel(beers []*model.CatalogBeer) []*api.CatalogBeer {
	pbBeers := make([]*api.CatalogBeer, 0, len(beers))

	for _, beer := range beers {
		pbBeers = append(pbBeers, &api.CatalogBeer{
			Id:          uint64(beer.ID),
			BeerName:    beer.BeerName,
			BreweryName: beer.BreweryName,
			Style:       beer.Style,
			Abv:         beer.ABV,
			Ibu:         beer.IBU,
			Description: beer.Description,
		})
	}

	return pbBeers
}

func CatalogFilterToModel(request *api.ListBeersRequest) model.CatalogFilter {
	filter := model.CatalogFilter{Styles: request.Styles, Search: request.Search}

	if request.MinimumAbv != nil {
		filter.MinimumAbv = pointy.Float64(*request.MinimumAbv)
	}

	if request.MaximumAbv != nil {
		filter.MaximumAbv = pointy.Float64(*request.MaximumAbv)
	}

	return filter
}

func StyleStatsFromModel(stats []*model.StyleStats) []*api.StyleStats {
	pbStats := make([]*api.StyleStats, 0, len(stats))

	for _, stat := range stats {
		pbStats = append(pbStats, &api.StyleStats{
			Style:      stat.Style,
			BeerCount:  stat.BeerCount,
			AverageAbv: stat.AverageABV,
			AverageIbu: stat.AverageIBU,
		})
	}

	return pbStats
}

func FavoriteFromModel(favorite model.FavoriteBrewery) *api.FavoriteBrewery {
	pbFavorite := api.FavoriteBrewery{
		Id:          uint64(favorite.ID),
		BreweryName: favorite.BreweryName,
		City:        favorite.City,
		State:       favorite.State,
		Country:     favorite.Country,
	}

	if favorite.WebsiteURL != nil {
		pbFavorite.WebsiteUrl = pointy.String(*favorite.WebsiteURL)
	}

	return &pbFavorite
}

func FavoritesFromModel(favorites []*model.FavoriteBrewery) []*api.FavoriteBrewery {
	pbFavorites := make([]*api.FavoriteBrewery, 0, len(favorites))

	for _, favorite := range favorites {
		pbFavorites = append(pbFavorites, FavoriteFromModel(*favorite))
	}

	return pbFavorites
}

func FavoriteToModel(favorite *api.FavoriteBrewery) model.FavoriteBrewery {
	if favorite == nil {
		return model.FavoriteBrewery{}
	}

	modelFavorite := model.FavoriteBrewery{
		BreweryName: favorite.BreweryName,
		City:        favorite.City,
		State:       favorite.State,
		Country:     favorite.Country,
	}

	if favorite.WebsiteUrl != nil && len(*favorite.WebsiteUrl) > 0 {
		modelFavorite.WebsiteURL = pointy.String(*favorite.WebsiteUrl)
	}

	return modelFavorite
}
