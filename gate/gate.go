package gate

import (
	"errors"
	"fmt"
	"time"

	log "github.com/sirupsen/logrus"

	"github.com/LeonSantana7/forms/monitoring"
	"github.com/LeonSantana7/forms/schema"
)

//go:generate mockgen -source=gate.go -destination=mocks/store.go -package=mocks

var (
	ErrAlreadySubmitted   = errors.New("survey already submitted")
	ErrRateLimited        = errors.New("submission rate limit reached")
	ErrServiceUnavailable = errors.New("submission store unavailable")
	ErrInsertFailed       = errors.New("submission insert failed")
)

const (
	// DefaultLimit is the maximum number of accepted submissions per address
	// within DefaultWindow. The count is a sliding window computed by query
	// at request time.
	DefaultLimit  = 10
	DefaultWindow = time.Hour
)

// ResponseStore is the slice of the store the gate needs.
type ResponseStore interface {
	CountRecentSubmissions(ip string, since time.Time) (int64, error)
	CreateSurveyResponse(response schema.SurveyResponse) (string, error)
}

// RequestMeta carries the request-scoped facts the policy decides on.
// Completed reflects a client-held marker and is advisory only; the rate
// limiter is the actual enforcement mechanism.
type RequestMeta struct {
	IP        string
	UserAgent string
	ClientID  string
	Completed bool
}

// Gate decides whether a candidate survey response is persisted.
type Gate struct {
	store  ResponseStore
	limit  int64
	window time.Duration
	now    func() time.Time
}

func New(store ResponseStore) *Gate {
	return NewWithPolicy(store, DefaultLimit, DefaultWindow)
}

func NewWithPolicy(store ResponseStore, limit int64, window time.Duration) *Gate {
	return &Gate{
		store:  store,
		limit:  limit,
		window: window,
		now:    time.Now,
	}
}

// Accept applies the submission policy in order: completion marker, per-IP
// sliding-window count, insert. On success it returns the id of the stored
// response. A failed count query fails closed and nothing is inserted.
//
// The count and the insert are two separate round-trips, so two submissions
// from the same address racing through the check can both land. The only
// consequence is an occasional overshoot of the limit.
func (g *Gate) Accept(response schema.SurveyResponse, meta RequestMeta) (string, error) {
	if meta.Completed {
		monitoring.SubmissionsTotal.WithLabelValues("already_submitted").Inc()
		return "", ErrAlreadySubmitted
	}

	since := g.now().Add(-g.window)
	count, err := g.store.CountRecentSubmissions(meta.IP, since)
	if err != nil {
		monitoring.SubmissionsTotal.WithLabelValues("unavailable").Inc()
		return "", fmt.Errorf("%w: %v", ErrServiceUnavailable, err)
	}

	if count >= g.limit {
		monitoring.SubmissionsTotal.WithLabelValues("rate_limited").Inc()
		log.WithField("ip", meta.IP).Info("submission rate limited")
		return "", ErrRateLimited
	}

	response.IP = meta.IP
	response.UserAgent = meta.UserAgent
	response.ClientID = meta.ClientID

	id, err := g.store.CreateSurveyResponse(response)
	if err != nil {
		monitoring.SubmissionsTotal.WithLabelValues("insert_failed").Inc()
		return "", fmt.Errorf("%w: %v", ErrInsertFailed, err)
	}

	monitoring.SubmissionsTotal.WithLabelValues("accepted").Inc()
	return id, nil
}
