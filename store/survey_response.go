package store

import (
	"context"
	"fmt"
	"time"

	log "github.com/sirupsen/logrus"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/LeonSantana7/forms/monitoring"
	"github.com/LeonSantana7/forms/schema"
)

var (
	ErrInvalidInsertedID = fmt.Errorf("incorrect inserted id")
)

type SurveyResponse interface {
	CreateSurveyResponse(response schema.SurveyResponse) (string, error)
	CountRecentSubmissions(ip string, since time.Time) (int64, error)
	ListRecentResponses(limit int64) ([]schema.SurveyResponse, error)
}

// CreateSurveyResponse inserts a response stamped with the current server
// time and returns its id. The id and created_at supplied by the caller are
// always overwritten.
func (m *mongoDB) CreateSurveyResponse(response schema.SurveyResponse) (string, error) {
	ctx, cancel := context.WithTimeout(context.Background(), defaultTimeout)
	defer cancel()

	response.ID = primitive.NilObjectID
	response.CreatedAt = time.Now().UTC()

	c := m.client.Database(m.database).Collection(schema.SurveyResponseCollection)

	var r *mongo.InsertOneResult
	err := monitoring.RecordDBTime("create_survey_response", func() error {
		var err error
		r, err = c.InsertOne(ctx, &response)
		return err
	})
	if err != nil {
		return "", err
	}

	id, ok := r.InsertedID.(primitive.ObjectID)
	if ok {
		return id.Hex(), nil
	}
	return "", ErrInvalidInsertedID
}

// CountRecentSubmissions counts responses recorded from the given address
// strictly after the given moment.
func (m *mongoDB) CountRecentSubmissions(ip string, since time.Time) (int64, error) {
	ctx, cancel := context.WithTimeout(context.Background(), defaultTimeout)
	defer cancel()

	c := m.client.Database(m.database).Collection(schema.SurveyResponseCollection)

	var count int64
	err := monitoring.RecordDBTime("count_recent_submissions", func() error {
		var err error
		count, err = c.CountDocuments(ctx, bson.M{
			"ip":         ip,
			"created_at": bson.M{"$gt": since},
		})
		return err
	})

	return count, err
}

// ListRecentResponses returns up to limit responses ordered newest first.
func (m *mongoDB) ListRecentResponses(limit int64) ([]schema.SurveyResponse, error) {
	ctx, cancel := context.WithTimeout(context.Background(), defaultTimeout)
	defer cancel()

	c := m.client.Database(m.database).Collection(schema.SurveyResponseCollection)

	opts := options.Find().
		SetSort(bson.D{bson.E{Key: "created_at", Value: -1}}).
		SetLimit(limit)

	var cursor *mongo.Cursor
	err := monitoring.RecordDBTime("list_recent_responses", func() error {
		var err error
		cursor, err = c.Find(ctx, bson.M{}, opts)
		return err
	})
	if err != nil {
		return nil, err
	}

	responses := []schema.SurveyResponse{}
	for cursor.Next(ctx) {
		var r schema.SurveyResponse
		if err := cursor.Decode(&r); err != nil {
			log.WithError(err).Warn("survey response decode fail")
			continue
		}
		responses = append(responses, r)
	}

	return responses, cursor.Err()
}
