package order

import (
	"testing"

	"github.com/procure/backend/internal/domain/catalog"
	"github.com/procure/backend/internal/domain/identity"
	"github.com/procure/backend/internal/domain/shared"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestState_IsValid(t *testing.T) {
	for _, s := range []State{StateBasket, StateNew, StateConfirmed, StateAssembled, StateSent, StateDelivered, StateCanceled} {
		assert.True(t, s.IsValid(), s.String())
	}
	assert.False(t, State("shipped").IsValid())
	assert.False(t, State("").IsValid())
}

func TestState_Fulfillable(t *testing.T) {
	assert.False(t, StateBasket.Fulfillable())
	assert.True(t, StateNew.Fulfillable())
	assert.True(t, StateConfirmed.Fulfillable())
	assert.True(t, StateAssembled.Fulfillable())
	assert.True(t, StateSent.Fulfillable())
	assert.False(t, StateDelivered.Fulfillable())
	assert.False(t, StateCanceled.Fulfillable())
}

func TestState_CanTransitionTo(t *testing.T) {
	assert.True(t, StateBasket.CanTransitionTo(StateNew))
	assert.True(t, StateNew.CanTransitionTo(StateConfirmed))
	assert.True(t, StateConfirmed.CanTransitionTo(StateAssembled))
	assert.True(t, StateAssembled.CanTransitionTo(StateSent))
	assert.True(t, StateSent.CanTransitionTo(StateDelivered))

	// canceled is reachable from any non-terminal state
	assert.True(t, StateNew.CanTransitionTo(StateCanceled))
	assert.True(t, StateSent.CanTransitionTo(StateCanceled))
	assert.False(t, StateDelivered.CanTransitionTo(StateCanceled))
	assert.False(t, StateCanceled.CanTransitionTo(StateCanceled))

	// no skipping forward
	assert.False(t, StateNew.CanTransitionTo(StateSent))
	assert.False(t, StateBasket.CanTransitionTo(StateConfirmed))
	// no going back
	assert.False(t, StateConfirmed.CanTransitionTo(StateNew))
}

func TestNewBasket(t *testing.T) {
	basket, err := NewBasket(7)
	require.NoError(t, err)
	assert.Equal(t, StateBasket, basket.State)
	require.NotNil(t, basket.BasketOwner)
	assert.Equal(t, uint(7), *basket.BasketOwner)

	_, err = NewBasket(0)
	assert.ErrorIs(t, err, shared.ErrUnauthorized)
}

func TestOrder_Place(t *testing.T) {
	t.Run("attaches contact and clears basket marker", func(t *testing.T) {
		basket, err := NewBasket(7)
		require.NoError(t, err)

		contact := &identity.Contact{UserID: 7, City: "Moscow", Street: "Tverskaya", Phone: "+7000"}
		contact.ID = 3

		require.NoError(t, basket.Place(contact))
		assert.Equal(t, StateNew, basket.State)
		assert.Nil(t, basket.BasketOwner)
		require.NotNil(t, basket.ContactID)
		assert.Equal(t, uint(3), *basket.ContactID)
	})

	t.Run("already placed order reports not found", func(t *testing.T) {
		o := &Order{UserID: 7, State: StateNew}
		contact := &identity.Contact{UserID: 7}
		assert.ErrorIs(t, o.Place(contact), shared.ErrNotFound)
	})

	t.Run("foreign contact reports not found", func(t *testing.T) {
		basket, err := NewBasket(7)
		require.NoError(t, err)
		contact := &identity.Contact{UserID: 8}
		assert.ErrorIs(t, basket.Place(contact), shared.ErrNotFound)
	})
}

func TestOrder_SetState(t *testing.T) {
	t.Run("accepts any enum member from a fulfillable state", func(t *testing.T) {
		o := &Order{State: StateNew}
		require.NoError(t, o.SetState(StateSent))
		assert.Equal(t, StateSent, o.State)

		// backwards moves are allowed at this layer
		require.NoError(t, o.SetState(StateConfirmed))
		assert.Equal(t, StateConfirmed, o.State)
	})

	t.Run("rejects unknown status", func(t *testing.T) {
		o := &Order{State: StateNew}
		err := o.SetState(State("teleported"))
		assert.True(t, shared.IsCode(err, "VALIDATION_ERROR"))
	})

	t.Run("rejects terminal and basket states", func(t *testing.T) {
		for _, s := range []State{StateBasket, StateDelivered, StateCanceled} {
			o := &Order{State: s}
			assert.ErrorIs(t, o.SetState(StateConfirmed), shared.ErrNotFound, s.String())
		}
	})
}

func TestOrder_Total(t *testing.T) {
	price := func(v string) decimal.Decimal {
		d, err := decimal.NewFromString(v)
		require.NoError(t, err)
		return d
	}

	o := &Order{
		Items: []Item{
			{Quantity: 2, Offer: &catalog.Offer{Price: price("110.50")}},
			{Quantity: 1, Offer: &catalog.Offer{Price: price("15000")}},
			{Quantity: 3, Offer: nil}, // unexpanded line contributes nothing
		},
	}

	assert.True(t, o.Total().Equal(price("15221.00")), o.Total().String())
}

func TestNewItem(t *testing.T) {
	item, err := NewItem(1, 2, 5)
	require.NoError(t, err)
	assert.Equal(t, 5, item.Quantity)

	_, err = NewItem(1, 2, 0)
	assert.True(t, shared.IsCode(err, "VALIDATION_ERROR"))
	_, err = NewItem(1, 2, -1)
	assert.True(t, shared.IsCode(err, "VALIDATION_ERROR"))
	_, err = NewItem(1, 0, 1)
	assert.True(t, shared.IsCode(err, "VALIDATION_ERROR"))
}
