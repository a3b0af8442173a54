package db

import (
	"context"
	"fmt"

	"github.com/RacoonMediaServer/rms-catalog/internal/selection"
	"go.mongodb.org/mongo-driver/bson"
)

// BulkSetHidden flips visibility of the given items in one update.
func (d Database) BulkSetHidden(ctx context.Context, ids []int64, hidden bool) error {
	if len(ids) == 0 {
		return nil
	}

	ctx, cancel := context.WithTimeout(ctx, databaseTimeout)
	defer cancel()

	filter := bson.D{{Key: "_id", Value: bson.D{{Key: "$in", Value: ids}}}}
	update := bson.D{{Key: "$set", Value: bson.D{{Key: "hidden", Value: hidden}}}}
	_, err := d.channels.UpdateMany(ctx, filter, update)
	return err
}

// BulkUpdate applies a selection action to every given item.
func (d Database) BulkUpdate(ctx context.Context, ids []int64, kind selection.ActionKind) error {
	if len(ids) == 0 {
		return nil
	}

	var update bson.D
	switch kind {
	case selection.ActionFavorite:
		update = bson.D{{Key: "$set", Value: bson.D{{Key: "favorite", Value: true}}}}
	case selection.ActionUnfavorite:
		update = bson.D{{Key: "$set", Value: bson.D{{Key: "favorite", Value: false}}}}
	case selection.ActionHide:
		update = bson.D{{Key: "$set", Value: bson.D{{Key: "hidden", Value: true}}}}
	case selection.ActionUnhide:
		update = bson.D{{Key: "$set", Value: bson.D{{Key: "hidden", Value: false}}}}
	case selection.ActionWhitelist:
		update = bson.D{{Key: "$set", Value: bson.D{{Key: "whitelisted", Value: true}, {Key: "hidden", Value: false}}}}
	default:
		return fmt.Errorf("unknown action: %s", kind)
	}

	ctx, cancel := context.WithTimeout(ctx, databaseTimeout)
	defer cancel()

	filter := bson.D{{Key: "_id", Value: bson.D{{Key: "$in", Value: ids}}}}
	_, err := d.channels.UpdateMany(ctx, filter, update)
	return err
}
