package services

import (
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCronServiceRejectsBadSchedule(t *testing.T) {
	_, err := NewCronService(newContactService(&fakeContacts{}, nil), "not a schedule", 90, zerolog.Nop())
	assert.Error(t, err)
}

func TestCronServicePurgeContacts(t *testing.T) {
	repo := &fakeContacts{deleted: 2}
	s, err := NewCronService(newContactService(repo, nil), "0 3 * * *", 10, zerolog.Nop())
	require.NoError(t, err)

	s.PurgeContacts()
	assert.Equal(t, fixedNow.AddDate(0, 0, -10), repo.cutoff)

	s.Start()
	s.Stop()
}
