package schema

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

const (
	SurveyResponseCollection = "surveyResponses"
)

// MultiChoice holds the selected option labels of a multi-select question.
// Other carries the free text typed when "Outro" is among the options; it is
// stored verbatim and never folded into the option counters.
type MultiChoice struct {
	Options []string `json:"options" bson:"options"`
	Other   string   `json:"other,omitempty" bson:"other,omitempty"`
}

// SurveyResponse is a single submitted questionnaire. Responses are written
// once by the submission endpoint and never updated or deleted afterward.
type SurveyResponse struct {
	ID           primitive.ObjectID `json:"id" bson:"_id,omitempty"`
	Q1           MultiChoice        `json:"q1" bson:"q1"`
	Q2           MultiChoice        `json:"q2" bson:"q2"`
	Q3           MultiChoice        `json:"q3" bson:"q3"`
	Q4           int                `json:"q4,omitempty" bson:"q4,omitempty"`
	Q5           string             `json:"q5,omitempty" bson:"q5,omitempty"`
	Q6           string             `json:"q6,omitempty" bson:"q6,omitempty"`
	Q7           MultiChoice        `json:"q7" bson:"q7"`
	BusinessType string             `json:"business_type,omitempty" bson:"business_type,omitempty"`
	City         string             `json:"city,omitempty" bson:"city,omitempty"`
	Source       string             `json:"source,omitempty" bson:"source,omitempty"`
	UserAgent    string             `json:"-" bson:"user_agent,omitempty"`
	IP           string             `json:"-" bson:"ip,omitempty"`
	ClientID     string             `json:"-" bson:"client_id,omitempty"`
	CreatedAt    time.Time          `json:"created_at" bson:"created_at"`
}
