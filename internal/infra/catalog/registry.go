// Package catalog mantém o registro estático de planos montado no boot.
package catalog

import (
	"github.com/xavierca1/barber-checkout/internal/config"
	"github.com/xavierca1/barber-checkout/internal/entity"
)

// Registry é somente leitura depois de criado e pode ser compartilhado
// entre requisições sem lock.
type Registry struct {
	plans map[string]entity.Plan
	order []string
}

func NewRegistry(plans ...entity.Plan) *Registry {
	r := &Registry{plans: make(map[string]entity.Plan, len(plans))}
	for _, p := range plans {
		if _, dup := r.plans[p.Key]; !dup {
			r.order = append(r.order, p.Key)
		}
		r.plans[p.Key] = p
	}
	return r
}

// NewRegistryFromConfig monta os planos "gestao" e "full". A taxa de setup
// é a mesma para os dois.
func NewRegistryFromConfig(cfg config.PlansConfig) *Registry {
	return NewRegistry(
		entity.Plan{
			Key:               entity.PlanGestao,
			RecurringPriceRef: cfg.GestaoPriceID,
			SetupPriceRef:     cfg.SetupPriceID,
			DisplayName:       "Plano Gestão",
		},
		entity.Plan{
			Key:               entity.PlanFull,
			RecurringPriceRef: cfg.FullPriceID,
			SetupPriceRef:     cfg.SetupPriceID,
			DisplayName:       "Plano Full",
		},
	)
}

// Lookup devolve uma cópia do plano; a chave precisa bater exatamente.
func (r *Registry) Lookup(key string) (*entity.Plan, error) {
	p, ok := r.plans[key]
	if !ok {
		return nil, entity.ErrPlanNotFound
	}
	return &p, nil
}

func (r *Registry) List() []entity.Plan {
	out := make([]entity.Plan, 0, len(r.order))
	for _, k := range r.order {
		out = append(out, r.plans[k])
	}
	return out
}
