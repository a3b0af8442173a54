package db

import (
	"context"
	"strings"
	"time"

	"github.com/RacoonMediaServer/rms-catalog/internal/filters"
	"github.com/RacoonMediaServer/rms-catalog/internal/model"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// searchPageSize must agree with the page size the browse loader requests
const searchPageSize = 36

func (d Database) Search(ctx context.Context, f *filters.State) ([]*model.Channel, error) {
	ctx, cancel := context.WithTimeout(ctx, databaseTimeout)
	defer cancel()

	opts := options.Find().SetSort(getSort(f))
	if f.Page > 0 {
		opts = opts.SetSkip(int64(f.Page-1) * searchPageSize).SetLimit(searchPageSize)
	}

	cur, err := d.channels.Find(ctx, getFilter(f), opts)
	if err != nil {
		return nil, err
	}

	var results []*model.Channel
	if err = cur.All(ctx, &results); err != nil {
		return nil, err
	}

	return results, nil
}

func getFilter(f *filters.State) bson.D {
	filter := bson.D{}

	// A drill scope shows every child of the scoped node, so the view mode
	// clauses apply only outside of a drill.
	switch {
	case f.GroupID != nil:
		filter = append(filter, bson.E{Key: "groupid", Value: *f.GroupID})
	case f.SeriesID != nil:
		filter = append(filter, bson.E{Key: "seriesid", Value: *f.SeriesID})
	case f.SeasonID != nil:
		filter = append(filter, bson.E{Key: "seasonid", Value: *f.SeasonID})
	default:
		switch f.ViewMode {
		case model.ViewModeCategories:
			filter = append(filter, bson.E{Key: "mediatype", Value: int(model.MediaTypeGroup)})
		case model.ViewModeFavorites:
			filter = append(filter, bson.E{Key: "favorite", Value: true})
			filter = append(filter, getMediaTypes(f))
		case model.ViewModeHistory:
			filter = append(filter, bson.E{Key: "lastwatched", Value: bson.D{{Key: "$gt", Value: time.Time{}}}})
			filter = append(filter, getMediaTypes(f))
		case model.ViewModeHidden:
			filter = append(filter, bson.E{Key: "hidden", Value: true})
			filter = append(filter, getMediaTypes(f))
		default:
			filter = append(filter, getMediaTypes(f))
		}
	}

	if !f.ShowHidden && f.ViewMode != model.ViewModeHidden {
		filter = append(filter, bson.E{Key: "hidden", Value: false})
	}

	if len(f.SourceIDs) != 0 {
		filter = append(filter, bson.E{Key: "sourceid", Value: bson.D{{Key: "$in", Value: f.SourceIDs}}})
	}

	if query := strings.TrimSpace(f.Query); query != "" {
		filter = append(filter, getQuery(query, f.UseKeywords))
	}

	if f.MinRating > 0 {
		filter = append(filter, bson.E{Key: "rating", Value: bson.D{{Key: "$gte", Value: f.MinRating}}})
	}

	return filter
}

func getMediaTypes(f *filters.State) bson.E {
	types := f.MediaTypeList()
	values := make([]int, 0, len(types))
	for _, t := range types {
		values = append(values, int(t))
	}
	return bson.E{Key: "mediatype", Value: bson.D{{Key: "$in", Value: values}}}
}

func getQuery(query string, keywords bool) bson.E {
	if !keywords {
		return bson.E{Key: "name", Value: primitive.Regex{Pattern: regexEscape(query), Options: "i"}}
	}

	words := strings.Fields(query)
	clauses := make(bson.A, 0, len(words))
	for _, w := range words {
		clauses = append(clauses, bson.D{{Key: "name", Value: primitive.Regex{Pattern: regexEscape(w), Options: "i"}}})
	}
	return bson.E{Key: "$and", Value: clauses}
}

func regexEscape(s string) string {
	var b strings.Builder
	for _, r := range s {
		if strings.ContainsRune(`\.+*?()|[]{}^$`, r) {
			b.WriteRune('\\')
		}
		b.WriteRune(r)
	}
	return b.String()
}

func getSort(f *filters.State) bson.D {
	if f.ViewMode == model.ViewModeHistory {
		return bson.D{{Key: "lastwatched", Value: -1}}
	}

	switch f.Sort {
	case model.SortAlphabetical:
		return bson.D{{Key: "name", Value: 1}}
	case model.SortLastWatched:
		return bson.D{{Key: "lastwatched", Value: -1}}
	}

	return bson.D{{Key: "_id", Value: 1}}
}

// SetLastWatched stamps the watch moment, feeding the history view.
func (d Database) SetLastWatched(ctx context.Context, id int64, at time.Time) error {
	ctx, cancel := context.WithTimeout(ctx, databaseTimeout)
	defer cancel()

	filter := bson.D{{Key: "_id", Value: id}}
	update := bson.D{{Key: "$set", Value: bson.D{{Key: "lastwatched", Value: at}}}}
	_, err := d.channels.UpdateOne(ctx, filter, update)
	return err
}
