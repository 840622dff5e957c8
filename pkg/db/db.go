package db

import (
	"context"
	"time"

	"github.com/coneno/logger"
	"github.com/okteto/attendees-function/pkg/types"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type AttendeesDBService struct {
	DBClient *mongo.Client
	timeout  int
	DBName   string
}

func NewAttendeesDBService(configs types.DBConfig) *AttendeesDBService {
	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(configs.Timeout)*time.Second)
	defer cancel()

	dbClient, err := mongo.Connect(ctx,
		options.Client().ApplyURI(configs.URI),
		options.Client().SetMaxConnIdleTime(time.Duration(configs.IdleConnTimeout)*time.Second),
		options.Client().SetMaxPoolSize(configs.MaxPoolSize),
	)
	if err != nil {
		logger.Error.Fatal(err)
	}

	ctx, conCancel := context.WithTimeout(context.Background(), time.Duration(configs.Timeout)*time.Second)
	err = dbClient.Ping(ctx, nil)
	defer conCancel()
	if err != nil {
		logger.Error.Fatal("fail to connect to DB: " + err.Error())
	}

	return NewAttendeesDBServiceFromClient(dbClient, configs.DBName, configs.Timeout)
}

// NewAttendeesDBServiceFromClient wraps an already connected client.
func NewAttendeesDBServiceFromClient(dbClient *mongo.Client, dbName string, timeout int) *AttendeesDBService {
	return &AttendeesDBService{
		DBClient: dbClient,
		timeout:  timeout,
		DBName:   dbName,
	}
}

func (dbService *AttendeesDBService) Close(ctx context.Context) error {
	return dbService.DBClient.Disconnect(ctx)
}

// collections
func (dbService *AttendeesDBService) collectionRefAttendees() *mongo.Collection {
	return dbService.DBClient.Database(dbService.DBName).Collection("attendees")
}

// DB utils
func (dbService *AttendeesDBService) getContext(parent context.Context) (ctx context.Context, cancel context.CancelFunc) {
	return context.WithTimeout(parent, time.Duration(dbService.timeout)*time.Second)
}
