package lifecycle

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"hostbot/internal/domain"
	"hostbot/internal/domain/eligibility"
	"hostbot/internal/domain/entities"
)

var now = time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

var allStatuses = []domain.RequestStatus{domain.StatusPending, domain.StatusAccepted, domain.StatusRejected, domain.StatusCancelled}

func TestCanTransition(t *testing.T) {
	for _, from := range allStatuses {
		for _, to := range allStatuses {
			want := from == domain.StatusPending && to != domain.StatusPending
			assert.Equal(t, want, CanTransition(from, to), "%s -> %s", from, to)
		}
	}
}

func TestCreate(t *testing.T) {
	hs := []entities.Hosting{{ID: 3, EventID: 9, HostID: "host"}}

	req, err := Create(hs, 3, "guest", "  bonjour  ", now)
	require.NoError(t, err)
	assert.Equal(t, domain.StatusPending, req.Status)
	assert.Equal(t, uint(3), req.HostingID)
	assert.Equal(t, uint(9), req.EventID)
	assert.Equal(t, "host", req.HostID)
	assert.Equal(t, "guest", req.RequesterID)
	assert.Equal(t, "bonjour", req.Message)
	assert.Equal(t, now, req.CreatedAt)
}

func TestCreate_UnknownHosting(t *testing.T) {
	_, err := Create(nil, 3, "guest", "", now)
	assert.ErrorIs(t, err, domain.ErrHostingNotFound)
}

func TestCancel_OnlyPendingChanges(t *testing.T) {
	for _, st := range allStatuses {
		reqs := []entities.HostingRequest{{ID: 1, HostingID: 3, Status: st}}
		got, changed, err := Cancel(reqs, 1, now)
		require.NoError(t, err)
		if st == domain.StatusPending {
			assert.True(t, changed)
			assert.Equal(t, domain.StatusCancelled, got.Status)
			assert.Equal(t, now, got.UpdatedAt)
		} else {
			assert.False(t, changed, "status %s", st)
			assert.Equal(t, st, got.Status)
		}
		// the snapshot itself is never mutated
		assert.Equal(t, st, reqs[0].Status)
	}
}

func TestCancel_RejectedIsNoop(t *testing.T) {
	reqs := []entities.HostingRequest{{ID: 1, HostingID: 3, Status: domain.StatusRejected}}
	got, changed, err := Cancel(reqs, 1, now)
	require.NoError(t, err)
	assert.False(t, changed)
	assert.Equal(t, domain.StatusRejected, got.Status)
}

func TestCancel_HostingBecomesRequestable(t *testing.T) {
	hs := []entities.Hosting{{ID: 3, EventID: 9}, {ID: 4, EventID: 9}}
	reqs := []entities.HostingRequest{{ID: 1, HostingID: 3, EventID: 9, Status: domain.StatusPending}}

	before := eligibility.NewEvaluator(nil).Evaluate(9, hs, reqs, nil)
	require.Equal(t, eligibility.BlockedByActiveRequest, before[3])

	got, changed, err := Cancel(reqs, 1, now)
	require.NoError(t, err)
	require.True(t, changed)
	assert.Equal(t, domain.StatusCancelled, got.Status)

	reqs[0] = *got
	after := eligibility.NewEvaluator(nil).Evaluate(9, hs, reqs, nil)
	assert.Equal(t, eligibility.Requestable, after[3])
}

func TestCancel_NotFound(t *testing.T) {
	_, _, err := Cancel(nil, 1, now)
	assert.ErrorIs(t, err, domain.ErrRequestNotFound)
}

func TestResolve(t *testing.T) {
	req := &entities.HostingRequest{ID: 1, Status: domain.StatusPending}
	require.NoError(t, Resolve(req, domain.StatusAccepted, " bienvenue ", now))
	assert.Equal(t, domain.StatusAccepted, req.Status)
	assert.Equal(t, "bienvenue", req.HostMessage)

	err := Resolve(req, domain.StatusRejected, "", now)
	assert.ErrorIs(t, err, domain.ErrInvalidTransition)
	assert.Equal(t, domain.StatusAccepted, req.Status)
}

func TestResolve_CancelIsNotAHostDecision(t *testing.T) {
	req := &entities.HostingRequest{ID: 1, Status: domain.StatusPending}
	err := Resolve(req, domain.StatusCancelled, "", now)
	assert.ErrorIs(t, err, domain.ErrInvalidTransition)
	assert.Equal(t, domain.StatusPending, req.Status)
}
