package services

import (
	"context"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"taskmarket.com/taskmarket/internal/constants"
	dto "taskmarket.com/taskmarket/internal/data_models"
	apperrors "taskmarket.com/taskmarket/internal/errors"
	model "taskmarket.com/taskmarket/internal/models"
)

var (
	accept = dto.DecisionRequest{Status: constants.DecisionAccepted}
	reject = dto.DecisionRequest{Status: constants.DecisionRejected}
)

func TestOfferService_CreateOffer(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t, constants.ListOpen)
	owner := f.account(t, constants.RoleUser)
	provider := f.account(t, constants.RoleProvider)
	task := f.openTask(t, owner)

	req := offerRequest(task.ID, "45")
	msg := "I can start Monday"
	req.Message = &msg

	offer, err := f.offers.CreateOffer(ctx, provider, req)
	require.NoError(t, err)
	assert.Equal(t, constants.OfferPending, offer.Status)
	assert.Equal(t, provider.ID, offer.ProviderID)
	require.NotNil(t, offer.Message)
	assert.Equal(t, msg, *offer.Message)
}

func TestOfferService_CreateOfferGuards(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t, constants.ListOpen)
	owner, _, assigned := f.assignedTask(t)
	provider := f.account(t, constants.RoleProvider)

	_, err := f.offers.CreateOffer(ctx, provider, offerRequest("00000000-0000-0000-0000-000000000000", "45"))
	assert.ErrorIs(t, err, apperrors.ErrTaskNotFound)

	_, err = f.offers.CreateOffer(ctx, provider, offerRequest(assigned.ID, "45"))
	assert.True(t, apperrors.IsKind(err, apperrors.KindInvalidState))

	_, err = f.offers.CreateOffer(ctx, provider, offerRequest("not-a-uuid", "45"))
	assert.True(t, apperrors.IsKind(err, apperrors.KindValidation))

	open := f.openTask(t, owner)
	_, err = f.offers.CreateOffer(ctx, provider, offerRequest(open.ID, "-1"))
	assert.True(t, apperrors.IsKind(err, apperrors.KindValidation))

	_, err = f.offers.CreateOffer(ctx, owner, offerRequest(open.ID, "45"))
	assert.True(t, apperrors.IsKind(err, apperrors.KindForbidden))
}

func TestOfferService_OneOfferPerProviderPerTask(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t, constants.ListOpen)
	owner := f.account(t, constants.RoleUser)
	provider := f.account(t, constants.RoleProvider)
	task := f.openTask(t, owner)

	f.makeOffer(t, provider, task.ID, "45")

	_, err := f.offers.CreateOffer(ctx, provider, offerRequest(task.ID, "40"))
	assert.ErrorIs(t, err, apperrors.ErrDuplicateOffer)
	assert.True(t, apperrors.IsKind(err, apperrors.KindConflict))

	other := f.account(t, constants.RoleProvider)
	_, err = f.offers.CreateOffer(ctx, other, offerRequest(task.ID, "40"))
	assert.NoError(t, err, "other providers may still bid")
}

func TestOfferService_ConcurrentDuplicateOffers(t *testing.T) {
	f := newFixture(t, constants.ListOpen)
	owner := f.account(t, constants.RoleUser)
	provider := f.account(t, constants.RoleProvider)
	task := f.openTask(t, owner)

	const attempts = 10
	var wg sync.WaitGroup
	wg.Add(attempts)
	errs := make(chan error, attempts)

	for i := 0; i < attempts; i++ {
		go func() {
			defer wg.Done()
			_, err := f.offers.CreateOffer(context.Background(), provider, offerRequest(task.ID, "45"))
			errs <- err
		}()
	}
	wg.Wait()
	close(errs)

	succeeded := 0
	for err := range errs {
		if err == nil {
			succeeded++
			continue
		}
		assert.ErrorIs(t, err, apperrors.ErrDuplicateOffer)
	}
	assert.Equal(t, 1, succeeded)
}

func TestOfferService_AcceptIsExclusive(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t, constants.ListOpen)
	owner := f.account(t, constants.RoleUser)
	task := f.openTask(t, owner)

	var offers []*model.Offer
	for i := 0; i < 3; i++ {
		offers = append(offers, f.makeOffer(t, f.account(t, constants.RoleProvider), task.ID, "45"))
	}
	chosen := offers[1]

	decided, err := f.offers.DecideOffer(ctx, owner, chosen.ID, accept)
	require.NoError(t, err)
	assert.Equal(t, constants.OfferAccepted, decided.Status)

	for _, o := range offers {
		want := constants.OfferRejected
		if o.ID == chosen.ID {
			want = constants.OfferAccepted
		}
		assert.Equal(t, want, f.reloadOffer(t, o.ID).Status, "offer %s", o.ID)
	}

	stored := f.reloadTask(t, task.ID)
	assert.Equal(t, constants.TaskAssigned, stored.Status)
	require.NotNil(t, stored.AssignedProviderID)
	assert.Equal(t, chosen.ProviderID, *stored.AssignedProviderID)
}

func TestOfferService_ConcurrentAcceptsOnSameTask(t *testing.T) {
	f := newFixture(t, constants.ListOpen)
	owner := f.account(t, constants.RoleUser)
	task := f.openTask(t, owner)
	o1 := f.makeOffer(t, f.account(t, constants.RoleProvider), task.ID, "45")
	o2 := f.makeOffer(t, f.account(t, constants.RoleProvider), task.ID, "48")

	var wg sync.WaitGroup
	results := make([]error, 2)
	for i, offer := range []*model.Offer{o1, o2} {
		wg.Add(1)
		go func(i int, offerID string) {
			defer wg.Done()
			_, results[i] = f.offers.DecideOffer(context.Background(), owner, offerID, accept)
		}(i, offer.ID)
	}
	wg.Wait()

	succeeded := 0
	for _, err := range results {
		if err == nil {
			succeeded++
			continue
		}
		assert.True(t, apperrors.IsKind(err, apperrors.KindInvalidState), "loser got %v", err)
	}
	require.Equal(t, 1, succeeded)

	stored := f.reloadTask(t, task.ID)
	assert.Equal(t, constants.TaskAssigned, stored.Status)
	require.True(t, stored.Status.HasProvider())
	require.NotNil(t, stored.AssignedProviderID)

	winner, loser := o1, o2
	if results[0] != nil {
		winner, loser = o2, o1
	}
	assert.Equal(t, winner.ProviderID, *stored.AssignedProviderID)
	assert.Equal(t, constants.OfferAccepted, f.reloadOffer(t, winner.ID).Status)
	assert.Equal(t, constants.OfferRejected, f.reloadOffer(t, loser.ID).Status)
}

func TestOfferService_DecideRequiresOpenTask(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t, constants.ListOpen)
	owner := f.account(t, constants.RoleUser)
	task := f.openTask(t, owner)
	winner := f.makeOffer(t, f.account(t, constants.RoleProvider), task.ID, "45")
	other := f.makeOffer(t, f.account(t, constants.RoleProvider), task.ID, "48")

	_, err := f.offers.DecideOffer(ctx, owner, winner.ID, accept)
	require.NoError(t, err)

	for _, offer := range []*model.Offer{winner, other} {
		for _, decision := range []dto.DecisionRequest{accept, reject} {
			_, err := f.offers.DecideOffer(ctx, owner, offer.ID, decision)
			assert.True(t, apperrors.IsKind(err, apperrors.KindInvalidState), "%s on %s", decision.Status, offer.ID)
		}
	}
	assert.Equal(t, constants.OfferAccepted, f.reloadOffer(t, winner.ID).Status)
}

func TestOfferService_RejectKeepsTaskOpen(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t, constants.ListOpen)
	owner := f.account(t, constants.RoleUser)
	task := f.openTask(t, owner)
	o1 := f.makeOffer(t, f.account(t, constants.RoleProvider), task.ID, "45")
	o2 := f.makeOffer(t, f.account(t, constants.RoleProvider), task.ID, "48")

	decided, err := f.offers.DecideOffer(ctx, owner, o1.ID, reject)
	require.NoError(t, err)
	assert.Equal(t, constants.OfferRejected, decided.Status)

	assert.Equal(t, constants.TaskOpen, f.reloadTask(t, task.ID).Status)
	assert.Equal(t, constants.OfferPending, f.reloadOffer(t, o2.ID).Status)
}

func TestOfferService_DecideGuards(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t, constants.ListOpen)
	owner := f.account(t, constants.RoleUser)
	task := f.openTask(t, owner)
	offer := f.makeOffer(t, f.account(t, constants.RoleProvider), task.ID, "45")

	_, err := f.offers.DecideOffer(ctx, owner, "00000000-0000-0000-0000-000000000000", accept)
	assert.ErrorIs(t, err, apperrors.ErrOfferNotFound)

	_, err = f.offers.DecideOffer(ctx, f.account(t, constants.RoleUser), offer.ID, accept)
	assert.True(t, apperrors.IsKind(err, apperrors.KindForbidden))

	_, err = f.offers.DecideOffer(ctx, owner, offer.ID, dto.DecisionRequest{Status: "maybe"})
	assert.True(t, apperrors.IsKind(err, apperrors.KindValidation))

	assert.Equal(t, constants.OfferPending, f.reloadOffer(t, offer.ID).Status)
}

func TestOfferService_Listings(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t, constants.ListOpen)
	owner := f.account(t, constants.RoleUser)
	provider := f.account(t, constants.RoleProvider)
	first := f.openTask(t, owner)
	second := f.openTask(t, owner)

	older := f.makeOffer(t, provider, first.ID, "45")
	newer := f.makeOffer(t, provider, second.ID, "46")
	f.makeOffer(t, f.account(t, constants.RoleProvider), first.ID, "47")

	forTask, err := f.offers.ListOffersForTask(ctx, owner, first.ID)
	require.NoError(t, err)
	require.Len(t, forTask, 2)
	for _, o := range forTask {
		require.NotNil(t, o.Provider)
		assert.Equal(t, o.ProviderID, o.Provider.ID)
	}

	_, err = f.offers.ListOffersForTask(ctx, provider, first.ID)
	assert.True(t, apperrors.IsKind(err, apperrors.KindForbidden))

	mine, err := f.offers.ListOffersForProvider(ctx, provider)
	require.NoError(t, err)
	require.Len(t, mine, 2)
	assert.Equal(t, newer.ID, mine[0].ID, "newest first")
	assert.Equal(t, older.ID, mine[1].ID)
	require.NotNil(t, mine[0].Task)
	assert.Equal(t, second.ID, mine[0].Task.ID)
	require.NotNil(t, mine[0].Task.Owner)
	assert.Equal(t, owner.ID, mine[0].Task.Owner.ID)
}

func TestMarketplaceScenario(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t, constants.ListOpen)
	user := f.account(t, constants.RoleUser)
	p1 := f.account(t, constants.RoleProvider)
	p2 := f.account(t, constants.RoleProvider)

	task, err := f.tasks.CreateTask(ctx, user, taskRequest("50"))
	require.NoError(t, err)
	require.Equal(t, constants.TaskOpen, task.Status)

	offer1 := f.makeOffer(t, p1, task.ID, "45")
	offer2 := f.makeOffer(t, p2, task.ID, "48")

	_, err = f.offers.DecideOffer(ctx, user, offer2.ID, accept)
	require.NoError(t, err)
	assert.Equal(t, constants.OfferAccepted, f.reloadOffer(t, offer2.ID).Status)
	assert.Equal(t, constants.OfferRejected, f.reloadOffer(t, offer1.ID).Status)
	stored := f.reloadTask(t, task.ID)
	assert.Equal(t, constants.TaskAssigned, stored.Status)
	assert.Equal(t, p2.ID, *stored.AssignedProviderID)

	_, err = f.tasks.SubmitProgress(ctx, p2, task.ID, dto.ProgressRequest{Description: "starting"})
	require.NoError(t, err)
	assert.Equal(t, constants.TaskInProgress, f.reloadTask(t, task.ID).Status)
	assert.Equal(t, int64(1), f.progressCount(t, task.ID))

	_, err = f.tasks.CompleteTask(ctx, p2, task.ID, dto.CompleteTaskRequest{})
	require.NoError(t, err)
	assert.Equal(t, constants.TaskCompleted, f.reloadTask(t, task.ID).Status)

	resolved, err := f.tasks.ResolveCompletion(ctx, user, task.ID, accept)
	require.NoError(t, err)
	assert.Equal(t, constants.TaskAccepted, resolved.Status)
	assert.True(t, resolved.Status.IsTerminal())
	assert.True(t, resolved.Status.HasProvider())
	assert.True(t, resolved.IsAssignedTo(p2.ID))
}
