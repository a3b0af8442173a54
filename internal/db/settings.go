package db

import (
	"context"
	"errors"
	"time"

	"github.com/RacoonMediaServer/rms-catalog/internal/model"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const settingsID = "catalog"

var defaultSettings = model.Settings{
	ID:                   settingsID,
	RefreshIntervalHours: 24,
	RefreshOnStart:       true,
	DefaultSort:          model.SortProvider,
}

func (d Database) GetSettings(ctx context.Context) (*model.Settings, error) {
	ctx, cancel := context.WithTimeout(ctx, databaseTimeout)
	defer cancel()

	result := d.settings.FindOne(ctx, bson.D{{Key: "_id", Value: settingsID}})
	if errors.Is(result.Err(), mongo.ErrNoDocuments) {
		settings := defaultSettings
		return &settings, nil
	}

	if result.Err() != nil {
		return nil, result.Err()
	}

	settings := model.Settings{}
	if err := result.Decode(&settings); err != nil {
		return nil, err
	}

	return &settings, nil
}

func (d Database) UpdateLastRefresh(ctx context.Context, at time.Time) error {
	ctx, cancel := context.WithTimeout(ctx, databaseTimeout)
	defer cancel()

	filter := bson.D{{Key: "_id", Value: settingsID}}
	update := bson.D{{Key: "$set", Value: bson.D{{Key: "lastrefresh", Value: at}}}}
	opts := options.Update().SetUpsert(true)
	_, err := d.settings.UpdateOne(ctx, filter, update, opts)
	return err
}

func (d Database) SaveSettings(ctx context.Context, settings *model.Settings) error {
	ctx, cancel := context.WithTimeout(ctx, databaseTimeout)
	defer cancel()

	settings.ID = settingsID
	filter := bson.D{{Key: "_id", Value: settingsID}}
	opts := options.Replace().SetUpsert(true)
	_, err := d.settings.ReplaceOne(ctx, filter, settings, opts)
	return err
}
