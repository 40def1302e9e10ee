package server_test

import (
	"net/http"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"droscher.com/BeerDiary/pkg/server"
)

type fakeClock struct {
	now time.Time
}

func (c *fakeClock) Now() time.Time {
	return c.now
}

func newClock() *fakeClock {
	return &fakeClock{now: time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)}
}

func sessionHeader(id uuid.UUID) http.Header {
	header := http.Header{}
	header.Set(server.SessionHeader, id.String())

	return header
}

func TestSessions_ResolveReusesKnownSession(t *testing.T) {
	sessions := server.NewSessions(time.Hour, newClock().Now)

	id, first := sessions.Resolve(http.Header{}, "guest")
	sameID, second := sessions.Resolve(sessionHeader(id), "guest")

	assert.Equal(t, id, sameID)
	assert.Same(t, first, second)
	assert.Equal(t, 1, sessions.Len())
}

func TestSessions_ResolveStartsNewSessionForUnknownIDs(t *testing.T) {
	sessions := server.NewSessions(time.Hour, newClock().Now)

	for _, value := range []string{"", "not-a-uuid", uuid.NewString()} {
		header := http.Header{}
		header.Set(server.SessionHeader, value)

		id, session := sessions.Resolve(header, "guest")

		require.NotNil(t, session)
		assert.NotEqual(t, value, id.String())
	}

	assert.Equal(t, 3, sessions.Len())
}

func TestSessions_ResolveStartsNewSessionForOtherOwner(t *testing.T) {
	sessions := server.NewSessions(time.Hour, newClock().Now)

	aliceID, aliceSession := sessions.Resolve(http.Header{}, "alice")
	bobID, bobSession := sessions.Resolve(sessionHeader(aliceID), "bob")

	assert.NotEqual(t, aliceID, bobID)
	assert.NotSame(t, aliceSession, bobSession)

	_, _, found := sessions.Lookup(sessionHeader(aliceID), "bob")
	assert.False(t, found)

	_, session, found := sessions.Lookup(sessionHeader(aliceID), "alice")
	assert.True(t, found)
	assert.Same(t, aliceSession, session)
}

func TestSessions_LookupNeverStartsSessions(t *testing.T) {
	sessions := server.NewSessions(time.Hour, newClock().Now)

	for _, header := range []http.Header{{}, sessionHeader(uuid.New())} {
		id, session, found := sessions.Lookup(header, "guest")

		assert.False(t, found)
		assert.Nil(t, session)
		assert.Equal(t, uuid.Nil, id)
	}

	assert.Zero(t, sessions.Len())
}

func TestSessions_IdleSessionsExpire(t *testing.T) {
	clock := newClock()
	sessions := server.NewSessions(time.Hour, clock.Now)

	idle, _ := sessions.Resolve(http.Header{}, "guest")
	active, _ := sessions.Resolve(http.Header{}, "guest")

	clock.now = clock.now.Add(45 * time.Minute)
	_, _, found := sessions.Lookup(sessionHeader(active), "guest")
	require.True(t, found)

	clock.now = clock.now.Add(30 * time.Minute)

	_, _, found = sessions.Lookup(sessionHeader(idle), "guest")
	assert.False(t, found)

	assert.Equal(t, 1, sessions.Prune())
	assert.Equal(t, 1, sessions.Len())

	_, _, found = sessions.Lookup(sessionHeader(active), "guest")
	assert.True(t, found)
}

func TestSessions_ResolvePrunesExpiredSessions(t *testing.T) {
	clock := newClock()
	sessions := server.NewSessions(time.Minute, clock.Now)

	for i := 0; i < 10; i++ {
		sessions.Resolve(http.Header{}, "guest")
	}

	clock.now = clock.now.Add(2 * time.Minute)

	id, _ := sessions.Resolve(http.Header{}, "guest")

	assert.Equal(t, 1, sessions.Len())

	_, _, found := sessions.Lookup(sessionHeader(id), "guest")
	assert.True(t, found)
}
