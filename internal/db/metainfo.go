package db

import (
	"context"
	"errors"

	"github.com/RacoonMediaServer/rms-catalog/internal/model"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// Version of the database schema
const Version uint = 1

const metaInfoKey = "metaInfo"

func (d Database) GetMetaInfo(ctx context.Context) (*model.MetaInfo, error) {
	ctx, cancel := context.WithTimeout(ctx, databaseTimeout)
	defer cancel()

	result := d.meta.FindOne(ctx, bson.D{{Key: "_id", Value: metaInfoKey}})
	if errors.Is(result.Err(), mongo.ErrNoDocuments) {
		return &model.MetaInfo{}, nil
	}

	if result.Err() != nil {
		return nil, result.Err()
	}

	mi := model.MetaInfo{}
	if err := result.Decode(&mi); err != nil {
		return nil, err
	}

	return &mi, nil
}

func (d Database) SetMetaInfo(ctx context.Context, mi model.MetaInfo) error {
	ctx, cancel := context.WithTimeout(ctx, databaseTimeout)
	defer cancel()

	mi.ID = metaInfoKey
	opts := options.Replace().SetUpsert(true)
	filter := bson.D{{Key: "_id", Value: metaInfoKey}}

	_, err := d.meta.ReplaceOne(ctx, filter, mi, opts)
	return err
}

// NormalizeChannelFlags backfills the visibility flags on records imported
// before the flags existed. Returns the number of touched documents.
func (d Database) NormalizeChannelFlags(ctx context.Context) (int64, error) {
	ctx, cancel := context.WithTimeout(ctx, databaseTimeout)
	defer cancel()

	var total int64
	for _, field := range []string{"hidden", "favorite", "whitelisted"} {
		filter := bson.D{{Key: field, Value: bson.D{{Key: "$exists", Value: false}}}}
		update := bson.D{{Key: "$set", Value: bson.D{{Key: field, Value: false}}}}
		result, err := d.channels.UpdateMany(ctx, filter, update)
		if err != nil {
			return total, err
		}
		total += result.ModifiedCount
	}

	return total, nil
}
