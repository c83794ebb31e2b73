package database

import (
	"context"
	"sort"

	"github.com/michelrahaddad/sitevidah-sub000/internal/entity"
)

// PlanCatalog guarda o catálogo em memória: os planos são dado de
// referência fixo, carregado uma vez na subida do processo e nunca
// mutado. As mensalidades por canal já vêm preenchidas daqui, então
// nenhum consumidor precisa conhecer IDs de plano para precificar.
type PlanCatalog struct {
	plans map[int]*entity.Plan
}

func NewPlanCatalog(plans []entity.Plan) *PlanCatalog {
	catalog := &PlanCatalog{plans: make(map[int]*entity.Plan, len(plans))}
	for i := range plans {
		p := plans[i]
		catalog.plans[p.ID] = &p
	}
	return catalog
}

func (c *PlanCatalog) FindByID(ctx context.Context, id int) (*entity.Plan, error) {
	plan, ok := c.plans[id]
	if !ok {
		return nil, entity.ErrPlanNotFound
	}
	return plan, nil
}

func (c *PlanCatalog) FindAll(ctx context.Context) ([]*entity.Plan, error) {
	all := make([]*entity.Plan, 0, len(c.plans))
	for _, plan := range c.plans {
		all = append(all, plan)
	}
	sort.Slice(all, func(i, j int) bool { return all[i].ID < all[j].ID })
	return all, nil
}
