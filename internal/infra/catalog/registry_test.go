package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xavierca1/barber-checkout/internal/config"
	"github.com/xavierca1/barber-checkout/internal/entity"
)

func newTestRegistry() *Registry {
	return NewRegistryFromConfig(config.PlansConfig{
		GestaoPriceID: "price_gestao",
		FullPriceID:   "price_full",
		SetupPriceID:  "price_setup",
	})
}

func TestLookupKnownPlans(t *testing.T) {
	r := newTestRegistry()

	gestao, err := r.Lookup("gestao")
	require.NoError(t, err)
	assert.Equal(t, "price_gestao", gestao.RecurringPriceRef)
	assert.Equal(t, "price_setup", gestao.SetupPriceRef)
	assert.Equal(t, "Plano Gestão", gestao.DisplayName)

	full, err := r.Lookup("full")
	require.NoError(t, err)
	assert.Equal(t, "price_full", full.RecurringPriceRef)
	assert.Equal(t, "price_setup", full.SetupPriceRef)
	assert.Equal(t, "Plano Full", full.DisplayName)
}

func TestLookupUnknownPlan(t *testing.T) {
	r := newTestRegistry()

	for _, key := range []string{"", "teste", "Full", " gestao", "gestao ", "premium"} {
		p, err := r.Lookup(key)
		assert.ErrorIs(t, err, entity.ErrPlanNotFound, "key %q", key)
		assert.Nil(t, p)
	}
}

func TestLookupReturnsCopy(t *testing.T) {
	r := newTestRegistry()

	p, err := r.Lookup("full")
	require.NoError(t, err)
	p.RecurringPriceRef = "price_hacked"

	again, err := r.Lookup("full")
	require.NoError(t, err)
	assert.Equal(t, "price_full", again.RecurringPriceRef)
}

func TestListKeepsOrder(t *testing.T) {
	plans := newTestRegistry().List()

	require.Len(t, plans, 2)
	assert.Equal(t, entity.PlanGestao, plans[0].Key)
	assert.Equal(t, entity.PlanFull, plans[1].Key)
}

func TestRegistryWithMissingPrices(t *testing.T) {
	r := NewRegistryFromConfig(config.PlansConfig{FullPriceID: "price_full"})

	p, err := r.Lookup("full")
	require.NoError(t, err)
	assert.False(t, p.Configured())
}
