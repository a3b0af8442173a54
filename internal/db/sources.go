package db

import (
	"context"

	"github.com/RacoonMediaServer/rms-catalog/internal/model"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo/options"
)

func (d Database) EnabledSources(ctx context.Context) ([]model.Source, error) {
	return d.findSources(ctx, bson.D{{Key: "enabled", Value: true}})
}

func (d Database) AllSources(ctx context.Context) ([]model.Source, error) {
	return d.findSources(ctx, bson.D{})
}

func (d Database) findSources(ctx context.Context, filter bson.D) ([]model.Source, error) {
	ctx, cancel := context.WithTimeout(ctx, databaseTimeout)
	defer cancel()

	opts := options.Find().SetSort(bson.D{{Key: "name", Value: 1}})
	cur, err := d.sources.Find(ctx, filter, opts)
	if err != nil {
		return nil, err
	}

	var results []model.Source
	if err = cur.All(ctx, &results); err != nil {
		return nil, err
	}

	return results, nil
}
