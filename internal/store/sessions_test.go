package store_test

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"intervu/internal/interview"
	"intervu/internal/store"
)

func TestSessionsLifecycle(t *testing.T) {
	sessions := store.NewSessions()
	assert.Equal(t, 0, sessions.Count())

	sess := interview.New(nil, nil, nil)
	id := sessions.Create(sess)
	assert.Equal(t, 1, sessions.Count())

	got, ok := sessions.Get(id)
	require.True(t, ok)
	assert.Same(t, sess, got)

	_, ok = sessions.Get(uuid.New())
	assert.False(t, ok)

	assert.True(t, sessions.Delete(id))
	assert.False(t, sessions.Delete(id))
	assert.Equal(t, 0, sessions.Count())
}

func TestCreateAssignsDistinctIDs(t *testing.T) {
	sessions := store.NewSessions()

	a := sessions.Create(interview.New(nil, nil, nil))
	b := sessions.Create(interview.New(nil, nil, nil))

	assert.NotEqual(t, a, b)
	assert.Equal(t, 2, sessions.Count())
}
