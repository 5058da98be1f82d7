package service

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/prajwalnawale3040/trio-developers/internal/model"
)

type fakeMessageRepo struct {
	created   []model.Message
	createErr error
	history   []model.HistoryEntry
}

func (f *fakeMessageRepo) CreateCampaign(_ context.Context, messages []model.Message) error {
	if f.createErr != nil {
		return f.createErr
	}
	f.created = append(f.created, messages...)
	return nil
}

func (f *fakeMessageRepo) History(_ context.Context, _ int) ([]model.HistoryEntry, error) {
	return f.history, nil
}

func (f *fakeMessageRepo) ClaimDue(_ context.Context, _ int) ([]model.PendingDelivery, error) {
	return nil, nil
}
func (f *fakeMessageRepo) MarkSent(_ context.Context, _ int64) error            { return nil }
func (f *fakeMessageRepo) MarkFailed(_ context.Context, _ int64, _ string) error { return nil }

type fakeContactRepo struct {
	batchIDs map[int64][]int64
	listErr  error
}

func (f *fakeContactRepo) Create(_ context.Context, _ *model.Contact) error     { return nil }
func (f *fakeContactRepo) CreateBulk(_ context.Context, _ []model.Contact) error { return nil }
func (f *fakeContactRepo) List(_ context.Context) ([]model.Contact, error)       { return nil, nil }

func (f *fakeContactRepo) ListIDsByBatch(_ context.Context, batchID int64) ([]int64, error) {
	if f.listErr != nil {
		return nil, f.listErr
	}
	return f.batchIDs[batchID], nil
}

func TestSendCampaign_ContactList(t *testing.T) {
	messages := &fakeMessageRepo{}
	svc := NewCampaignService(messages, &fakeContactRepo{})

	count, err := svc.SendCampaign(context.Background(), model.SendCampaignRequest{
		ContactIDs: []int64{1, 2, 3},
		Content:    "Hello!",
	})
	assert.NoError(t, err)
	assert.Equal(t, 3, count)
	assert.Len(t, messages.created, 3)

	for i, id := range []int64{1, 2, 3} {
		m := messages.created[i]
		assert.Equal(t, id, *m.ContactID)
		assert.Nil(t, m.BatchID)
		assert.Equal(t, "Hello!", m.Content)
		assert.Equal(t, model.MessagePending, m.Status)
	}
}

func TestSendCampaign_Batch(t *testing.T) {
	messages := &fakeMessageRepo{}
	contacts := &fakeContactRepo{batchIDs: map[int64][]int64{5: {10, 11}}}
	svc := NewCampaignService(messages, contacts)

	batchID := int64(5)
	count, err := svc.SendCampaign(context.Background(), model.SendCampaignRequest{
		BatchID: &batchID,
		Content: "Hello!",
	})
	assert.NoError(t, err)
	assert.Equal(t, 2, count)

	for _, m := range messages.created {
		assert.Equal(t, batchID, *m.BatchID)
	}
	assert.Equal(t, int64(10), *messages.created[0].ContactID)
	assert.Equal(t, int64(11), *messages.created[1].ContactID)
}

func TestSendCampaign_BothTargets(t *testing.T) {
	svc := NewCampaignService(&fakeMessageRepo{}, &fakeContactRepo{})

	batchID := int64(5)
	_, err := svc.SendCampaign(context.Background(), model.SendCampaignRequest{
		ContactIDs: []int64{1},
		BatchID:    &batchID,
		Content:    "Hello!",
	})
	assert.ErrorIs(t, err, ErrAmbiguousTarget)
}

func TestSendCampaign_NoTarget(t *testing.T) {
	svc := NewCampaignService(&fakeMessageRepo{}, &fakeContactRepo{})

	_, err := svc.SendCampaign(context.Background(), model.SendCampaignRequest{Content: "Hello!"})
	assert.ErrorIs(t, err, ErrNoTarget)
}

func TestSendCampaign_EmptyBatch(t *testing.T) {
	svc := NewCampaignService(&fakeMessageRepo{}, &fakeContactRepo{batchIDs: map[int64][]int64{}})

	batchID := int64(5)
	_, err := svc.SendCampaign(context.Background(), model.SendCampaignRequest{
		BatchID: &batchID,
		Content: "Hello!",
	})
	assert.ErrorIs(t, err, ErrEmptyBatch)
}

func TestSendCampaign_RepoError(t *testing.T) {
	messages := &fakeMessageRepo{createErr: errors.New("db down")}
	svc := NewCampaignService(messages, &fakeContactRepo{})

	_, err := svc.SendCampaign(context.Background(), model.SendCampaignRequest{
		ContactIDs: []int64{1},
		Content:    "Hello!",
	})
	assert.Error(t, err)
}
