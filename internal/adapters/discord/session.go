package discord

import (
	"sync"
	"time"

	"github.com/google/uuid"

	"hostbot/internal/application"
	"hostbot/internal/domain/tabs"
)

// Interaction tokens die after 15 minutes, views cannot outlive them.
const sessionTTL = 15 * time.Minute

// viewSession is the state of one ephemeral /hebergement view. mu serializes
// the interactions of the view; the controller is not safe for concurrent use.
type viewSession struct {
	mu       sync.Mutex
	token    string
	userID   string
	ctrl     *tabs.Controller
	overview *application.Overview
	// page of the catalog select menu
	page    int
	touched time.Time
}

type sessionStore struct {
	mu       sync.Mutex
	sessions map[string]*viewSession
	now      func() time.Time
}

func newSessionStore() *sessionStore {
	return &sessionStore{
		sessions: make(map[string]*viewSession),
		now:      time.Now,
	}
}

// open creates the view of userID on eventID and returns it.
func (st *sessionStore) open(userID string, eventID uint) *viewSession {
	st.mu.Lock()
	defer st.mu.Unlock()
	st.pruneLocked()

	vs := &viewSession{
		token:   uuid.NewString(),
		userID:  userID,
		ctrl:    tabs.NewController(eventID),
		touched: st.now(),
	}
	st.sessions[vs.token] = vs
	return vs
}

// get returns the live view identified by token when it belongs to userID.
func (st *sessionStore) get(token, userID string) (*viewSession, bool) {
	st.mu.Lock()
	defer st.mu.Unlock()

	vs, ok := st.sessions[token]
	if !ok || vs.userID != userID {
		return nil, false
	}
	now := st.now()
	if now.Sub(vs.touched) > sessionTTL {
		delete(st.sessions, token)
		return nil, false
	}
	vs.touched = now
	return vs, true
}

func (st *sessionStore) len() int {
	st.mu.Lock()
	defer st.mu.Unlock()
	return len(st.sessions)
}

// prune drops the expired views and returns how many were dropped.
func (st *sessionStore) prune() int {
	st.mu.Lock()
	defer st.mu.Unlock()
	return st.pruneLocked()
}

func (st *sessionStore) pruneLocked() int {
	now := st.now()
	n := 0
	for token, vs := range st.sessions {
		if now.Sub(vs.touched) > sessionTTL {
			delete(st.sessions, token)
			n++
		}
	}
	return n
}

// resetForm brings the view back to the catalog when a form was left open.
// Discord does not report dismissed modals, the next interaction does.
func (vs *viewSession) resetForm() {
	switch vs.ctrl.State() {
	case tabs.CreateHostingForm, tabs.CreateRequestForm:
		vs.ctrl.Cancel()
	}
}
