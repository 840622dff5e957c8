package db

import (
	"context"
	"errors"
	"testing"

	"github.com/okteto/attendees-function/pkg/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/integration/mtest"
)

func strPtr(s string) *string {
	return &s
}

func TestInsertAttendee(t *testing.T) {
	mt := mtest.New(t, mtest.NewOptions().ClientType(mtest.Mock))

	mt.Run("acknowledged", func(mt *mtest.T) {
		dbService := NewAttendeesDBServiceFromClient(mt.Client, "okteto", 5)
		mt.AddMockResponses(mtest.CreateSuccessResponse())

		n, err := dbService.InsertAttendee(context.Background(), types.Attendee{GithubID: strPtr("octocat")})
		require.NoError(mt, err)
		assert.Equal(mt, int64(1), n)
	})

	mt.Run("write error", func(mt *mtest.T) {
		dbService := NewAttendeesDBServiceFromClient(mt.Client, "okteto", 5)
		mt.AddMockResponses(mtest.CreateWriteErrorsResponse(mtest.WriteError{
			Index:   0,
			Code:    11000,
			Message: "duplicate key error",
		}))

		n, err := dbService.InsertAttendee(context.Background(), types.Attendee{GithubID: strPtr("octocat")})
		assert.Error(mt, err)
		assert.Equal(mt, int64(0), n)
	})
}

func TestFindAttendees(t *testing.T) {
	mt := mtest.New(t, mtest.NewOptions().ClientType(mtest.Mock))

	mt.Run("returns raw documents", func(mt *mtest.T) {
		dbService := NewAttendeesDBServiceFromClient(mt.Client, "okteto", 5)
		id := primitive.NewObjectID()
		mt.AddMockResponses(mtest.CreateCursorResponse(0, "okteto.attendees", mtest.FirstBatch,
			bson.D{{Key: "_id", Value: id}, {Key: "githubID", Value: "octocat"}},
			bson.D{{Key: "_id", Value: primitive.NewObjectID()}},
		))

		docs, err := dbService.FindAttendees(context.Background())
		require.NoError(mt, err)
		require.Len(mt, docs, 2)
		assert.Equal(mt, id, docs[0]["_id"])
		assert.Equal(mt, "octocat", docs[0]["githubID"])
		_, ok := docs[1]["githubID"]
		assert.False(mt, ok)
	})

	mt.Run("empty collection", func(mt *mtest.T) {
		dbService := NewAttendeesDBServiceFromClient(mt.Client, "okteto", 5)
		mt.AddMockResponses(mtest.CreateCursorResponse(0, "okteto.attendees", mtest.FirstBatch))

		docs, err := dbService.FindAttendees(context.Background())
		require.NoError(mt, err)
		assert.NotNil(mt, docs)
		assert.Empty(mt, docs)
	})
}

func TestCountAttendees(t *testing.T) {
	mt := mtest.New(t, mtest.NewOptions().ClientType(mtest.Mock))

	mt.Run("count", func(mt *mtest.T) {
		dbService := NewAttendeesDBServiceFromClient(mt.Client, "okteto", 5)
		mt.AddMockResponses(mtest.CreateCursorResponse(0, "okteto.attendees", mtest.FirstBatch,
			bson.D{{Key: "n", Value: int32(2)}},
		))

		n, err := dbService.CountAttendees(context.Background())
		require.NoError(mt, err)
		assert.Equal(mt, int64(2), n)
	})
}

func TestInsertedCount(t *testing.T) {
	n, err := insertedCount(nil, mongo.ErrUnacknowledgedWrite)
	assert.NoError(t, err)
	assert.Equal(t, int64(0), n)

	n, err = insertedCount(&mongo.InsertOneResult{}, nil)
	assert.NoError(t, err)
	assert.Equal(t, int64(0), n)

	n, err = insertedCount(&mongo.InsertOneResult{InsertedID: primitive.NewObjectID()}, nil)
	assert.NoError(t, err)
	assert.Equal(t, int64(1), n)

	boom := errors.New("boom")
	_, err = insertedCount(nil, boom)
	assert.ErrorIs(t, err, boom)
}
