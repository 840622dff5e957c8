package db

import (
	"context"
	"errors"

	"github.com/okteto/attendees-function/pkg/types"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

// InsertAttendee stores one attendee document and reports how many documents
// the server acknowledged as inserted.
func (dbService *AttendeesDBService) InsertAttendee(ctx context.Context, attendee types.Attendee) (int64, error) {
	ctx, cancel := dbService.getContext(ctx)
	defer cancel()

	res, err := dbService.collectionRefAttendees().InsertOne(ctx, attendee)
	return insertedCount(res, err)
}

func insertedCount(res *mongo.InsertOneResult, err error) (int64, error) {
	if errors.Is(err, mongo.ErrUnacknowledgedWrite) {
		return 0, nil
	}
	if err != nil {
		return 0, err
	}
	if res == nil || res.InsertedID == nil {
		return 0, nil
	}
	return 1, nil
}

// FindAttendees returns every stored document as-is.
func (dbService *AttendeesDBService) FindAttendees(ctx context.Context) ([]bson.M, error) {
	ctx, cancel := dbService.getContext(ctx)
	defer cancel()

	cur, err := dbService.collectionRefAttendees().Find(ctx, bson.M{})
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	attendees := []bson.M{}
	if err = cur.All(ctx, &attendees); err != nil {
		return nil, err
	}
	return attendees, nil
}

func (dbService *AttendeesDBService) CountAttendees(ctx context.Context) (int64, error) {
	ctx, cancel := dbService.getContext(ctx)
	defer cancel()

	return dbService.collectionRefAttendees().CountDocuments(ctx, bson.M{})
}
