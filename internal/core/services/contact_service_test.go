package services

import (
	"context"
	"strings"
	"testing"
	"time"

	"bloodlink-web/internal/core/domain"

	"github.com/go-playground/validator/v10"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var fixedNow = time.Date(2025, 3, 10, 12, 0, 0, 0, time.UTC)

func newContactService(repo *fakeContacts, n ContactNotifier) *ContactService {
	s := NewContactService(repo, n, NewDispatcher(zerolog.Nop()), validator.New(), zerolog.Nop())
	s.now = func() time.Time { return fixedNow }
	return s
}

func validMessage() domain.ContactMessage {
	return domain.ContactMessage{
		Name:    " Rahim ",
		Email:   "rahim@example.org",
		Subject: "Volunteering",
		Message: "I would like to help at the next blood drive.",
	}
}

func TestSubmitStoresAndNotifies(t *testing.T) {
	repo := &fakeContacts{}
	n := &fakeNotifier{enabled: true}

	got, err := newContactService(repo, n).Submit(context.Background(), validMessage())
	require.NoError(t, err)

	assert.NotEmpty(t, got.ID)
	assert.Equal(t, "Rahim", got.Name)
	assert.Equal(t, fixedNow, got.CreatedAt)
	require.Len(t, repo.created, 1)
	assert.Equal(t, got.ID, repo.created[0].ID)
	require.Len(t, n.sent, 1)
	assert.Equal(t, []string{got.ID}, repo.notified)
}

func TestSubmitMailFailureIsNotFatal(t *testing.T) {
	repo := &fakeContacts{}
	n := &fakeNotifier{enabled: true, err: errBoom}

	_, err := newContactService(repo, n).Submit(context.Background(), validMessage())

	assert.NoError(t, err)
	assert.Len(t, repo.created, 1)
	assert.Empty(t, repo.notified)
}

func TestSubmitMailDisabled(t *testing.T) {
	repo := &fakeContacts{}
	n := &fakeNotifier{enabled: false}

	_, err := newContactService(repo, n).Submit(context.Background(), validMessage())

	assert.NoError(t, err)
	assert.Empty(t, n.sent)
}

func TestSubmitValidation(t *testing.T) {
	repo := &fakeContacts{}
	svc := newContactService(repo, nil)

	msg := validMessage()
	msg.Message = "short"
	msg.Email = "nope"
	_, err := svc.Submit(context.Background(), msg)

	var verr *ValidationError
	require.ErrorAs(t, err, &verr)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
	assert.Contains(t, verr.Fields, "message")
	assert.Contains(t, verr.Fields, "email")

	msg = validMessage()
	msg.Name = strings.Repeat("x", 101)
	_, err = svc.Submit(context.Background(), msg)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	assert.Empty(t, repo.created)
}

func TestSubmitStoreFailure(t *testing.T) {
	repo := &fakeContacts{createErr: errBoom}
	n := &fakeNotifier{enabled: true}

	_, err := newContactService(repo, n).Submit(context.Background(), validMessage())

	assert.ErrorIs(t, err, errBoom)
	assert.Empty(t, n.sent)
}

func TestPurgeUsesRetention(t *testing.T) {
	repo := &fakeContacts{deleted: 4}
	svc := newContactService(repo, nil)

	n, err := svc.Purge(context.Background(), 30)
	require.NoError(t, err)
	assert.Equal(t, int64(4), n)
	assert.Equal(t, fixedNow.AddDate(0, 0, -30), repo.cutoff)

	n, err = svc.Purge(context.Background(), 0)
	require.NoError(t, err)
	assert.Zero(t, n)
}
