package services

import (
	"context"
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"dugun.link/models"
	"dugun.link/repositories"
)

// fakePricingRepo süreç içi IPricingRepository.
type fakePricingRepo struct {
	plans    []*models.ConfigurablePricingPlan
	features []*models.PricingFeature
	nextID   uint
}

func newFakePricingRepo() *fakePricingRepo {
	return &fakePricingRepo{nextID: 1}
}

func (r *fakePricingRepo) CreatePlan(_ context.Context, plan *models.ConfigurablePricingPlan) error {
	for _, p := range r.plans {
		if p.Key == plan.Key {
			return repositories.ErrDuplicate
		}
	}
	plan.ID = r.nextID
	r.nextID++
	r.plans = append(r.plans, plan)
	return nil
}

func (r *fakePricingRepo) FindPlanByID(_ context.Context, id uint) (*models.ConfigurablePricingPlan, error) {
	for _, p := range r.plans {
		if p.ID == id {
			return p, nil
		}
	}
	return nil, repositories.ErrNotFound
}

func (r *fakePricingRepo) FindAllPlans(_ context.Context, onlyActive bool) ([]models.ConfigurablePricingPlan, error) {
	var result []models.ConfigurablePricingPlan
	for _, p := range r.plans {
		if onlyActive && !p.IsActive {
			continue
		}
		result = append(result, *p)
	}
	sort.Slice(result, func(i, j int) bool { return result[i].DisplayOrder < result[j].DisplayOrder })
	return result, nil
}

func (r *fakePricingRepo) UpdatePlan(_ context.Context, id uint, data map[string]interface{}, _ uint) error {
	for _, p := range r.plans {
		if p.ID == id {
			if name, ok := data["name"].(string); ok {
				p.Name = name
			}
			if active, ok := data["is_active"].(bool); ok {
				p.IsActive = active
			}
			return nil
		}
	}
	return repositories.ErrNotFound
}

func (r *fakePricingRepo) DeletePlan(_ context.Context, plan *models.ConfigurablePricingPlan, _ uint) error {
	for i, p := range r.plans {
		if p.ID == plan.ID {
			removedOrder := p.DisplayOrder
			r.plans = append(r.plans[:i], r.plans[i+1:]...)
			for _, rest := range r.plans {
				if rest.DisplayOrder > removedOrder {
					rest.DisplayOrder--
				}
			}
			return nil
		}
	}
	return repositories.ErrNotFound
}

func (r *fakePricingRepo) MaxDisplayOrder(_ context.Context) (int, bool, error) {
	if len(r.plans) == 0 {
		return 0, false, nil
	}
	max := r.plans[0].DisplayOrder
	for _, p := range r.plans {
		if p.DisplayOrder > max {
			max = p.DisplayOrder
		}
	}
	return max, true, nil
}

func (r *fakePricingRepo) FindPlanByDisplayOrder(_ context.Context, order int) (*models.ConfigurablePricingPlan, error) {
	for _, p := range r.plans {
		if p.DisplayOrder == order {
			return p, nil
		}
	}
	return nil, repositories.ErrNotFound
}

func (r *fakePricingRepo) SwapDisplayOrders(_ context.Context, planID, neighborID uint, _ uint) error {
	plan, err := r.FindPlanByID(context.Background(), planID)
	if err != nil {
		return err
	}
	neighbor, err := r.FindPlanByID(context.Background(), neighborID)
	if err != nil {
		return err
	}
	plan.DisplayOrder, neighbor.DisplayOrder = neighbor.DisplayOrder, plan.DisplayOrder
	return nil
}

func (r *fakePricingRepo) ReplaceFeatures(_ context.Context, planID uint, features []models.PlanFeature, _ uint) error {
	plan, err := r.FindPlanByID(context.Background(), planID)
	if err != nil {
		return err
	}
	for i := range features {
		features[i].PlanID = planID
	}
	plan.Features = features
	return nil
}

func (r *fakePricingRepo) FindFeatureByKey(_ context.Context, key string) (*models.PricingFeature, error) {
	for _, f := range r.features {
		if f.Key == key {
			return f, nil
		}
	}
	return nil, repositories.ErrNotFound
}

func (r *fakePricingRepo) FindAllFeatures(_ context.Context) ([]models.PricingFeature, error) {
	result := make([]models.PricingFeature, 0, len(r.features))
	for _, f := range r.features {
		result = append(result, *f)
	}
	return result, nil
}

func (r *fakePricingRepo) CreateFeature(_ context.Context, feature *models.PricingFeature) error {
	for _, f := range r.features {
		if f.Key == feature.Key {
			return repositories.ErrDuplicate
		}
	}
	feature.ID = r.nextID
	r.nextID++
	r.features = append(r.features, feature)
	return nil
}

var _ repositories.IPricingRepository = (*fakePricingRepo)(nil)

func seedThreePlans(t *testing.T, service IPricingService) []*models.ConfigurablePricingPlan {
	t.Helper()
	ctx := context.Background()
	var plans []*models.ConfigurablePricingPlan
	for _, key := range []string{"basic", "standard", "premium"} {
		plan, err := service.CreatePlan(ctx, 1, CreatePlanInput{Key: key, Name: key})
		require.NoError(t, err)
		plans = append(plans, plan)
	}
	return plans
}

func TestCreatePlan_AppendsToEndOfOrder(t *testing.T) {
	service := NewPricingServiceWith(newFakePricingRepo())
	plans := seedThreePlans(t, service)

	assert.Equal(t, 0, plans[0].DisplayOrder)
	assert.Equal(t, 1, plans[1].DisplayOrder)
	assert.Equal(t, 2, plans[2].DisplayOrder)
	assert.Equal(t, "TRY", plans[0].Currency, "para birimi varsayılanı TRY olmalı")
}

func TestCreatePlan_DuplicateKey(t *testing.T) {
	service := NewPricingServiceWith(newFakePricingRepo())
	seedThreePlans(t, service)

	_, err := service.CreatePlan(context.Background(), 1, CreatePlanInput{Key: "basic", Name: "Tekrar"})
	assert.ErrorIs(t, err, ErrPlanKeyTaken)
}

func TestCreatePlan_Validation(t *testing.T) {
	service := NewPricingServiceWith(newFakePricingRepo())
	ctx := context.Background()

	_, err := service.CreatePlan(ctx, 1, CreatePlanInput{Key: "", Name: "Adsız"})
	assert.ErrorIs(t, err, ErrPlanInvalidInput)

	_, err = service.CreatePlan(ctx, 1, CreatePlanInput{Key: "negatif", Name: "Negatif", PriceMonthly: -1})
	assert.ErrorIs(t, err, ErrPlanInvalidInput)
}

func TestReorderPlan_SwapsNeighbors(t *testing.T) {
	repo := newFakePricingRepo()
	service := NewPricingServiceWith(repo)
	plans := seedThreePlans(t, service)
	ctx := context.Background()

	require.NoError(t, service.ReorderPlan(ctx, 1, plans[1].ID, "up"))

	ordered, err := service.GetAllPlans(ctx)
	require.NoError(t, err)
	assert.Equal(t, "standard", ordered[0].Key)
	assert.Equal(t, "basic", ordered[1].Key)
	assert.Equal(t, "premium", ordered[2].Key)
}

func TestReorderPlan_EdgesAreNoOps(t *testing.T) {
	service := NewPricingServiceWith(newFakePricingRepo())
	plans := seedThreePlans(t, service)
	ctx := context.Background()

	require.NoError(t, service.ReorderPlan(ctx, 1, plans[0].ID, "up"), "en üstteki planın yukarı hareketi sessizce atlanmalı")
	require.NoError(t, service.ReorderPlan(ctx, 1, plans[2].ID, "down"), "en alttaki planın aşağı hareketi sessizce atlanmalı")

	ordered, err := service.GetAllPlans(ctx)
	require.NoError(t, err)
	assert.Equal(t, "basic", ordered[0].Key)
	assert.Equal(t, "premium", ordered[2].Key)
}

func TestReorderPlan_InvalidDirection(t *testing.T) {
	service := NewPricingServiceWith(newFakePricingRepo())
	plans := seedThreePlans(t, service)

	err := service.ReorderPlan(context.Background(), 1, plans[0].ID, "sideways")
	assert.ErrorIs(t, err, ErrPlanInvalidDirection)
}

func TestDeletePlan_CompactsOrder(t *testing.T) {
	service := NewPricingServiceWith(newFakePricingRepo())
	plans := seedThreePlans(t, service)
	ctx := context.Background()

	require.NoError(t, service.DeletePlan(ctx, 1, plans[1].ID))

	ordered, err := service.GetAllPlans(ctx)
	require.NoError(t, err)
	require.Len(t, ordered, 2)
	assert.Equal(t, 0, ordered[0].DisplayOrder)
	assert.Equal(t, 1, ordered[1].DisplayOrder, "sıralar bitişik kalmalı")
}

func TestGetPublicPlans_OnlyActive(t *testing.T) {
	service := NewPricingServiceWith(newFakePricingRepo())
	plans := seedThreePlans(t, service)
	ctx := context.Background()

	inactive := false
	require.NoError(t, service.UpdatePlan(ctx, 1, plans[1].ID, UpdatePlanInput{IsActive: &inactive}))

	public, err := service.GetPublicPlans(ctx)
	require.NoError(t, err)
	assert.Len(t, public, 2)
	for _, p := range public {
		assert.True(t, p.IsActive)
	}
}

func TestReplacePlanFeatures(t *testing.T) {
	repo := newFakePricingRepo()
	service := NewPricingServiceWith(repo)
	plans := seedThreePlans(t, service)
	ctx := context.Background()

	require.NoError(t, repo.CreateFeature(ctx, &models.PricingFeature{Key: "rsvp", Name: "LCV"}))
	require.NoError(t, repo.CreateFeature(ctx, &models.PricingFeature{Key: "guest_limit", Name: "Misafir sınırı"}))

	err := service.ReplacePlanFeatures(ctx, 1, plans[0].ID, []PlanFeatureInput{
		{FeatureKey: "rsvp", Included: true},
		{FeatureKey: "guest_limit", Included: true, Value: "50"},
	})
	require.NoError(t, err)

	plan, err := service.GetPlanByID(ctx, plans[0].ID)
	require.NoError(t, err)
	assert.Len(t, plan.Features, 2)
}

func TestReplacePlanFeatures_UnknownKeyRejected(t *testing.T) {
	service := NewPricingServiceWith(newFakePricingRepo())
	plans := seedThreePlans(t, service)

	err := service.ReplacePlanFeatures(context.Background(), 1, plans[0].ID, []PlanFeatureInput{
		{FeatureKey: "olmayan-ozellik", Included: true},
	})
	assert.ErrorIs(t, err, ErrPlanFeatureUnknownKey)
}

func TestReplacePlanFeatures_DuplicateKeysRejected(t *testing.T) {
	repo := newFakePricingRepo()
	service := NewPricingServiceWith(repo)
	plans := seedThreePlans(t, service)
	ctx := context.Background()

	require.NoError(t, repo.CreateFeature(ctx, &models.PricingFeature{Key: "rsvp", Name: "LCV"}))

	err := service.ReplacePlanFeatures(ctx, 1, plans[0].ID, []PlanFeatureInput{
		{FeatureKey: "rsvp"},
		{FeatureKey: "rsvp"},
	})
	assert.ErrorIs(t, err, ErrPlanInvalidInput)
}
