package gate

import (
	"fmt"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"

	"github.com/LeonSantana7/forms/gate/mocks"
	"github.com/LeonSantana7/forms/schema"
)

var testNow = time.Date(2024, 5, 10, 12, 0, 0, 0, time.UTC)

func newTestGate(store ResponseStore) *Gate {
	g := New(store)
	g.now = func() time.Time { return testNow }
	return g
}

func TestAcceptCompletedMarkerShortCircuits(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	// no store expectations: the marker must reject before any round-trip
	store := mocks.NewMockResponseStore(ctrl)
	g := newTestGate(store)

	id, err := g.Accept(schema.SurveyResponse{}, RequestMeta{IP: "1.2.3.4", Completed: true})
	assert.ErrorIs(t, err, ErrAlreadySubmitted)
	assert.Empty(t, id)
}

func TestAcceptTenthSubmissionSucceeds(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	store := mocks.NewMockResponseStore(ctrl)
	store.EXPECT().
		CountRecentSubmissions("1.2.3.4", testNow.Add(-time.Hour)).
		Return(int64(9), nil)
	store.EXPECT().
		CreateSurveyResponse(gomock.AssignableToTypeOf(schema.SurveyResponse{})).
		Return("5f1f77bcf86cd799439011aa", nil)

	g := newTestGate(store)

	id, err := g.Accept(schema.SurveyResponse{}, RequestMeta{IP: "1.2.3.4"})
	assert.NoError(t, err)
	assert.Equal(t, "5f1f77bcf86cd799439011aa", id)
}

func TestAcceptEleventhSubmissionRateLimited(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	store := mocks.NewMockResponseStore(ctrl)
	store.EXPECT().
		CountRecentSubmissions("1.2.3.4", gomock.Any()).
		Return(int64(10), nil)

	g := newTestGate(store)

	id, err := g.Accept(schema.SurveyResponse{}, RequestMeta{IP: "1.2.3.4"})
	assert.ErrorIs(t, err, ErrRateLimited)
	assert.Empty(t, id)
}

func TestAcceptCountFailureFailsClosed(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	store := mocks.NewMockResponseStore(ctrl)
	store.EXPECT().
		CountRecentSubmissions("1.2.3.4", gomock.Any()).
		Return(int64(0), fmt.Errorf("connection reset"))

	g := newTestGate(store)

	id, err := g.Accept(schema.SurveyResponse{}, RequestMeta{IP: "1.2.3.4"})
	assert.ErrorIs(t, err, ErrServiceUnavailable)
	assert.Empty(t, id)
}

func TestAcceptInsertFailure(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	store := mocks.NewMockResponseStore(ctrl)
	store.EXPECT().
		CountRecentSubmissions("1.2.3.4", gomock.Any()).
		Return(int64(0), nil)
	store.EXPECT().
		CreateSurveyResponse(gomock.Any()).
		Return("", fmt.Errorf("write concern error"))

	g := newTestGate(store)

	id, err := g.Accept(schema.SurveyResponse{}, RequestMeta{IP: "1.2.3.4"})
	assert.ErrorIs(t, err, ErrInsertFailed)
	assert.Empty(t, id)
}

func TestAcceptStampsRequestMetadata(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	var stored schema.SurveyResponse

	store := mocks.NewMockResponseStore(ctrl)
	store.EXPECT().
		CountRecentSubmissions("203.0.113.9", gomock.Any()).
		Return(int64(0), nil)
	store.EXPECT().
		CreateSurveyResponse(gomock.Any()).
		DoAndReturn(func(r schema.SurveyResponse) (string, error) {
			stored = r
			return "5f1f77bcf86cd799439011aa", nil
		})

	g := newTestGate(store)

	response := schema.SurveyResponse{
		Q1: schema.MultiChoice{Options: []string{"WhatsApp"}},
		Q4: 4,
	}
	meta := RequestMeta{
		IP:        "203.0.113.9",
		UserAgent: "survey-form/1.0",
		ClientID:  "4f3a3cbe-95b5-4a62-8a46-9f3a5d0d8f21",
	}

	_, err := g.Accept(response, meta)
	assert.NoError(t, err)
	assert.Equal(t, "203.0.113.9", stored.IP)
	assert.Equal(t, "survey-form/1.0", stored.UserAgent)
	assert.Equal(t, "4f3a3cbe-95b5-4a62-8a46-9f3a5d0d8f21", stored.ClientID)
	assert.Equal(t, []string{"WhatsApp"}, stored.Q1.Options)
	assert.Equal(t, 4, stored.Q4)
}

func TestNewWithPolicyWindow(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	store := mocks.NewMockResponseStore(ctrl)
	store.EXPECT().
		CountRecentSubmissions("1.2.3.4", testNow.Add(-10*time.Minute)).
		Return(int64(2), nil)

	g := NewWithPolicy(store, 2, 10*time.Minute)
	g.now = func() time.Time { return testNow }

	_, err := g.Accept(schema.SurveyResponse{}, RequestMeta{IP: "1.2.3.4"})
	assert.ErrorIs(t, err, ErrRateLimited)
}
