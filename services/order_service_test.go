package services

import (
	"errors"
	"fmt"
	"testing"

	"backend/entity"
	"backend/pkg/apperr"
	"backend/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(
		&entity.User{},
		&entity.Branch{}, &entity.Category{}, &entity.FoodItem{},
		&entity.Order{}, &entity.OrderItem{},
	))
	return db
}

func newOrderService(db *gorm.DB) *OrderService {
	return NewOrderService(
		db,
		repository.NewOrderRepository(db),
		repository.NewBranchRepository(db),
		repository.NewCatalogRepository(db),
	)
}

func seedBranchWithItems(t *testing.T, db *gorm.DB) (*entity.Branch, []entity.FoodItem) {
	t.Helper()
	branch := entity.Branch{
		Name: "Lekki Branch", Slug: "lekki-branch",
		Address: "12 Admiralty Way", Phone: "+2348000000001",
		Email: "lekki@example.com", WhatsApp: "+234 800-000-0001",
		Description: "flagship",
	}
	require.NoError(t, db.Create(&branch).Error)

	items := []entity.FoodItem{
		{Name: "Suya Platter", Slug: "suya-platter", Description: "d", Picture: "p", Price: 1000, BranchID: &branch.ID},
		{Name: "Grilled Catfish", Slug: "grilled-catfish", Description: "d", Picture: "p", Price: 6000, BranchID: &branch.ID},
	}
	for i := range items {
		require.NoError(t, db.Create(&items[i]).Error)
	}
	return &branch, items
}

func validIn(items ...OrderLineIn) *CreateOrderIn {
	return &CreateOrderIn{
		CustomerName:    "Ada Obi",
		CustomerPhone:   "+2348011111111",
		CustomerAddress: "5 Marina Road",
		Items:           items,
	}
}

func TestCreateOrderComputesTotalFromCatalogPrices(t *testing.T) {
	db := newTestDB(t)
	svc := newOrderService(db)
	branch, items := seedBranchWithItems(t, db)

	out, err := svc.Create(branch.ID, validIn(OrderLineIn{FoodItemID: items[0].ID, Quantity: 2}))
	require.NoError(t, err)
	assert.Equal(t, int64(2000), out.TotalAmount)
	assert.NotEmpty(t, out.Reference)

	var o entity.Order
	require.NoError(t, db.First(&o, out.ID).Error)
	assert.Equal(t, entity.OrderPending, o.Status)
	assert.Equal(t, int64(2000), o.TotalAmount)

	var lines []entity.OrderItem
	require.NoError(t, db.Where("order_id = ?", o.ID).Find(&lines).Error)
	require.Len(t, lines, 1)
	assert.Equal(t, 2, lines[0].Quantity)
	assert.Equal(t, int64(1000), lines[0].Price)
}

func TestCreateOrderSnapshotsPriceAgainstLaterChanges(t *testing.T) {
	db := newTestDB(t)
	svc := newOrderService(db)
	branch, items := seedBranchWithItems(t, db)

	out, err := svc.Create(branch.ID, validIn(OrderLineIn{FoodItemID: items[0].ID, Quantity: 1}))
	require.NoError(t, err)

	// catalog price moves after the order was placed
	require.NoError(t, db.Model(&entity.FoodItem{}).Where("id = ?", items[0].ID).Update("price", 9999).Error)

	var line entity.OrderItem
	require.NoError(t, db.Where("order_id = ?", out.ID).First(&line).Error)
	assert.Equal(t, int64(1000), line.Price)
}

func TestCreateOrderRequiresCustomerFields(t *testing.T) {
	db := newTestDB(t)
	svc := newOrderService(db)
	branch, items := seedBranchWithItems(t, db)

	in := validIn(OrderLineIn{FoodItemID: items[0].ID, Quantity: 1})
	in.CustomerPhone = ""

	_, err := svc.Create(branch.ID, in)
	assert.ErrorIs(t, err, apperr.ErrValidation)

	var cnt int64
	db.Model(&entity.Order{}).Count(&cnt)
	assert.Zero(t, cnt)
}

func TestCreateOrderRequiresItems(t *testing.T) {
	db := newTestDB(t)
	svc := newOrderService(db)
	branch, _ := seedBranchWithItems(t, db)

	_, err := svc.Create(branch.ID, validIn())
	assert.ErrorIs(t, err, apperr.ErrValidation)
}

func TestCreateOrderMissingFoodItemLeavesNoOrphanOrder(t *testing.T) {
	db := newTestDB(t)
	svc := newOrderService(db)
	branch, items := seedBranchWithItems(t, db)

	_, err := svc.Create(branch.ID, validIn(
		OrderLineIn{FoodItemID: items[0].ID, Quantity: 1},
		OrderLineIn{FoodItemID: 9999, Quantity: 1},
	))
	require.Error(t, err)
	assert.ErrorIs(t, err, apperr.ErrNotFound)

	var orders, lines int64
	db.Model(&entity.Order{}).Count(&orders)
	db.Model(&entity.OrderItem{}).Count(&lines)
	assert.Zero(t, orders)
	assert.Zero(t, lines)
}

func TestCreateOrderRejectsItemFromAnotherBranch(t *testing.T) {
	db := newTestDB(t)
	svc := newOrderService(db)
	branch, _ := seedBranchWithItems(t, db)

	other := entity.Branch{Name: "Ikeja", Slug: "ikeja", Address: "a", Phone: "p", Email: "e", WhatsApp: "w", Description: "d"}
	require.NoError(t, db.Create(&other).Error)
	foreign := entity.FoodItem{Name: "Shawarma", Slug: "shawarma", Description: "d", Picture: "p", Price: 2500, BranchID: &other.ID}
	require.NoError(t, db.Create(&foreign).Error)

	_, err := svc.Create(branch.ID, validIn(OrderLineIn{FoodItemID: foreign.ID, Quantity: 1}))
	assert.ErrorIs(t, err, apperr.ErrValidation)
}

func TestCreateOrderUnknownBranch(t *testing.T) {
	db := newTestDB(t)
	svc := newOrderService(db)
	seedBranchWithItems(t, db)

	_, err := svc.Create(4242, validIn(OrderLineIn{FoodItemID: 1, Quantity: 1}))
	assert.ErrorIs(t, err, apperr.ErrNotFound)
}

func TestCreateOrderHasNoIdempotency(t *testing.T) {
	db := newTestDB(t)
	svc := newOrderService(db)
	branch, items := seedBranchWithItems(t, db)

	in := validIn(OrderLineIn{FoodItemID: items[0].ID, Quantity: 1})
	first, err := svc.Create(branch.ID, in)
	require.NoError(t, err)
	second, err := svc.Create(branch.ID, in)
	require.NoError(t, err)

	// a retried submit is a second, distinct order
	assert.NotEqual(t, first.ID, second.ID)
	assert.NotEqual(t, first.Reference, second.Reference)
}

func TestParseItems(t *testing.T) {
	items, err := ParseItems([]byte(`[{"foodItemId":3,"quantity":2}]`))
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, uint(3), items[0].FoodItemID)
	assert.Equal(t, 2, items[0].Quantity)

	_, err = ParseItems([]byte(`{"not":"an array"`))
	assert.ErrorIs(t, err, apperr.ErrMalformed)

	_, err = ParseItems(nil)
	assert.ErrorIs(t, err, apperr.ErrValidation)
}

func TestUpdateStatusOverwritesWithoutTransitionGraph(t *testing.T) {
	db := newTestDB(t)
	svc := newOrderService(db)
	branch, items := seedBranchWithItems(t, db)

	out, err := svc.Create(branch.ID, validIn(OrderLineIn{FoodItemID: items[0].ID, Quantity: 1}))
	require.NoError(t, err)

	// pending straight to completed is allowed
	require.NoError(t, svc.UpdateStatus(out.ID, "completed"))
	var o entity.Order
	require.NoError(t, db.First(&o, out.ID).Error)
	assert.Equal(t, entity.OrderCompleted, o.Status)

	// and back again, any known status overwrites any other
	require.NoError(t, svc.UpdateStatus(out.ID, "pending"))
}

func TestUpdateStatusRejectsUnknownValue(t *testing.T) {
	db := newTestDB(t)
	svc := newOrderService(db)
	branch, items := seedBranchWithItems(t, db)

	out, err := svc.Create(branch.ID, validIn(OrderLineIn{FoodItemID: items[0].ID, Quantity: 1}))
	require.NoError(t, err)

	err = svc.UpdateStatus(out.ID, "shipped")
	assert.ErrorIs(t, err, apperr.ErrValidation)

	var o entity.Order
	require.NoError(t, db.First(&o, out.ID).Error)
	assert.Equal(t, entity.OrderPending, o.Status)
}

func TestUpdateStatusUnknownOrder(t *testing.T) {
	db := newTestDB(t)
	svc := newOrderService(db)

	err := svc.UpdateStatus(777, "processing")
	assert.ErrorIs(t, err, apperr.ErrNotFound)
}

func TestDetailJoinsFoodItemNames(t *testing.T) {
	db := newTestDB(t)
	svc := newOrderService(db)
	branch, items := seedBranchWithItems(t, db)

	out, err := svc.Create(branch.ID, validIn(
		OrderLineIn{FoodItemID: items[0].ID, Quantity: 2},
		OrderLineIn{FoodItemID: items[1].ID, Quantity: 1},
	))
	require.NoError(t, err)

	d, err := svc.Detail(out.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(2*1000+6000), d.Order.TotalAmount)
	require.Len(t, d.Items, 2)

	names := []string{d.Items[0].FoodItemName, d.Items[1].FoodItemName}
	assert.Contains(t, names, "Suya Platter")
	assert.Contains(t, names, "Grilled Catfish")
}

func TestListOrdersFiltersByBranchAndStatus(t *testing.T) {
	db := newTestDB(t)
	svc := newOrderService(db)
	branch, items := seedBranchWithItems(t, db)

	a, err := svc.Create(branch.ID, validIn(OrderLineIn{FoodItemID: items[0].ID, Quantity: 1}))
	require.NoError(t, err)
	_, err = svc.Create(branch.ID, validIn(OrderLineIn{FoodItemID: items[1].ID, Quantity: 1}))
	require.NoError(t, err)
	require.NoError(t, svc.UpdateStatus(a.ID, "processing"))

	all, err := svc.List(&branch.ID, nil, 1, 20)
	require.NoError(t, err)
	assert.EqualValues(t, 2, all.Total)

	processing := entity.OrderProcessing
	got, err := svc.List(&branch.ID, &processing, 1, 20)
	require.NoError(t, err)
	require.Len(t, got.Items, 1)
	assert.Equal(t, a.ID, got.Items[0].ID)
}

func TestBranchForOrder(t *testing.T) {
	db := newTestDB(t)
	svc := newOrderService(db)
	branch, items := seedBranchWithItems(t, db)

	out, err := svc.Create(branch.ID, validIn(OrderLineIn{FoodItemID: items[0].ID, Quantity: 1}))
	require.NoError(t, err)

	d, err := svc.Detail(out.ID)
	require.NoError(t, err)
	got, err := svc.BranchForOrder(&d.Order)
	require.NoError(t, err)
	assert.Equal(t, branch.ID, got.ID)

	detached := entity.Order{Reference: "ORD-DETACHED", CustomerName: "x", CustomerPhone: "y", CustomerAddress: "z", Status: entity.OrderPending}
	require.NoError(t, db.Create(&detached).Error)
	_, err = svc.BranchForOrder(&detached)
	assert.True(t, errors.Is(err, apperr.ErrNotFound))
}
