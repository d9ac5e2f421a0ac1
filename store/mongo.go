package store

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/mongo"
)

const defaultTimeout = 5 * time.Second

// SurveyStore is everything the HTTP layer needs from MongoDB.
type SurveyStore interface {
	Healther
	SurveyResponse
}

type Healther interface {
	Ping(ctx context.Context) error
}

type mongoDB struct {
	client   *mongo.Client
	database string
}

// NewMongoStore returns a survey store backed by the given mongo client.
func NewMongoStore(client *mongo.Client, database string) SurveyStore {
	return &mongoDB{
		client:   client,
		database: database,
	}
}

func (m *mongoDB) Ping(ctx context.Context) error {
	return m.client.Ping(ctx, nil)
}
