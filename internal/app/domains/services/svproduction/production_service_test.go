package svproduction

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"threadly/console/internal/app/domains/entity/etorder"
	"threadly/console/internal/app/domains/entity/etquote"
	"threadly/console/internal/app/domains/entity/etstatus"
	"threadly/console/internal/app/domains/entity/etvendor"
	"threadly/console/internal/app/domains/filter"
	"threadly/console/internal/app/pkg/errorx"
	"threadly/console/internal/app/pkg/logger"
)

// fakeOrderRepo 计数型订单仓储桩
type fakeOrderRepo struct {
	orders []*etorder.ProductionOrder

	listCalls        int
	createCalls      int
	assignCalls      int
	updateStageCalls int
}

func (f *fakeOrderRepo) ListProduction(ctx context.Context) ([]*etorder.ProductionOrder, error) {
	f.listCalls++
	return f.orders, nil
}

func (f *fakeOrderRepo) Create(ctx context.Context, order *etorder.ProductionOrder) error {
	f.createCalls++
	f.orders = append(f.orders, order)
	return nil
}

func (f *fakeOrderRepo) AssignVendor(ctx context.Context, orderID, vendorID string) error {
	f.assignCalls++
	return nil
}

func (f *fakeOrderRepo) UpdateStage(ctx context.Context, orderID string, stage etstatus.ProductionStage) error {
	f.updateStageCalls++
	return nil
}

func (f *fakeOrderRepo) ListQuotations(ctx context.Context) ([]*etquote.Quotation, error) {
	return nil, nil
}

func (f *fakeOrderRepo) ApproveQuotation(ctx context.Context, quotationID string) error {
	return nil
}

func (f *fakeOrderRepo) RejectQuotation(ctx context.Context, quotationID, remarks string) error {
	return nil
}

// fakeVendorRepo 商户仓储桩，看板并发拉取用
type fakeVendorRepo struct {
	vendors   []*etvendor.Vendor
	listCalls int
}

func (f *fakeVendorRepo) List(ctx context.Context) ([]*etvendor.Vendor, error) {
	f.listCalls++
	return f.vendors, nil
}

func (f *fakeVendorRepo) ListRejected(ctx context.Context) ([]*etvendor.Vendor, error) {
	return nil, nil
}

func (f *fakeVendorRepo) GetProfile(ctx context.Context, vendorID string) (*etvendor.Vendor, error) {
	return nil, errorx.ErrVendorNotFound
}

func (f *fakeVendorRepo) UpdateProfile(ctx context.Context, vendor *etvendor.Vendor) error {
	return nil
}

func (f *fakeVendorRepo) UploadDocument(ctx context.Context, vendorID string, docType etvendor.DocType, fileName string, payload []byte, extra map[string]string) (*etvendor.DocumentRecord, error) {
	return nil, nil
}

func (f *fakeVendorRepo) SubmitForReview(ctx context.Context, vendorID string) error {
	return nil
}

func (f *fakeVendorRepo) VerificationStatus(ctx context.Context, vendorID string) (*etvendor.Vendor, error) {
	return nil, errorx.ErrVendorNotFound
}

func (f *fakeVendorRepo) ReviewDocument(ctx context.Context, vendorID string, docType etvendor.DocType, approve bool, remarks string) error {
	return nil
}

func (f *fakeVendorRepo) ListOrders(ctx context.Context, vendorID string, status string) ([]*etorder.ProductionOrder, error) {
	return nil, nil
}

func newProductionService(t *testing.T, orders *fakeOrderRepo, vendors *fakeVendorRepo) *ProductionService {
	log, err := logger.NewZapLogger("error")
	require.NoError(t, err)
	return NewProductionService(orders, vendors, log)
}

func mustOrder(t *testing.T, id string, stage etstatus.ProductionStage) *etorder.ProductionOrder {
	t.Helper()
	o, err := etorder.NewProductionOrder(id, "Arun", "hoodie", 10, map[string]int{"M": 4, "L": 6})
	require.NoError(t, err)
	o.Stage = stage
	return o
}

func TestSubmitOrderQuantityGuard(t *testing.T) {
	orders := &fakeOrderRepo{}
	svc := newProductionService(t, orders, &fakeVendorRepo{})
	ctx := context.Background()

	t.Run("size breakup mismatch rejected before any upstream call", func(t *testing.T) {
		_, err := svc.SubmitOrder(ctx, "Arun", "t-shirt", "", "", 10, map[string]int{"M": 3, "L": 3})
		require.Error(t, err)
		assert.Equal(t, "Quantity Mismatch", err.Error())
		assert.Equal(t, errorx.KindValidation, errorx.KindOf(err))
		assert.Zero(t, orders.createCalls)
	})

	t.Run("matching breakup submits and drops snapshot", func(t *testing.T) {
		_, err := svc.List(ctx, filter.State{})
		require.NoError(t, err)
		require.False(t, svc.Snapshot().Empty())

		order, err := svc.SubmitOrder(ctx, "Arun", "t-shirt", "front print", "rush", 10, map[string]int{"M": 4, "L": 6})
		require.NoError(t, err)
		assert.Equal(t, 1, orders.createCalls)
		assert.Equal(t, etstatus.StageAssigned, order.Stage)
		assert.True(t, svc.Snapshot().Empty())
	})
}

func TestAdvanceStagePreCheck(t *testing.T) {
	orders := &fakeOrderRepo{orders: []*etorder.ProductionOrder{
		mustOrder(t, "ORD-1", etstatus.StageAccepted),
	}}
	svc := newProductionService(t, orders, &fakeVendorRepo{})
	ctx := context.Background()

	_, err := svc.List(ctx, filter.State{})
	require.NoError(t, err)

	t.Run("skip ahead rejected locally", func(t *testing.T) {
		err := svc.AdvanceStage(ctx, "ORD-1", etstatus.StagePacked)
		require.Error(t, err)
		assert.Equal(t, errorx.KindValidation, errorx.KindOf(err))
		assert.Zero(t, orders.updateStageCalls)
	})

	t.Run("unknown stage rejected locally", func(t *testing.T) {
		err := svc.AdvanceStage(ctx, "ORD-1", etstatus.ProductionStage("shipped"))
		require.Error(t, err)
		assert.Equal(t, errorx.KindValidation, errorx.KindOf(err))
		assert.Zero(t, orders.updateStageCalls)
	})

	t.Run("single step reaches upstream and drops snapshot", func(t *testing.T) {
		require.NoError(t, svc.AdvanceStage(ctx, "ORD-1", etstatus.StageMaterialPrep))
		assert.Equal(t, 1, orders.updateStageCalls)
		assert.True(t, svc.Snapshot().Empty())
	})

	t.Run("order missing from snapshot defers to upstream", func(t *testing.T) {
		require.NoError(t, svc.AdvanceStage(ctx, "ORD-404", etstatus.StagePacked))
		assert.Equal(t, 2, orders.updateStageCalls)
	})
}

func TestAssignVendor(t *testing.T) {
	orders := &fakeOrderRepo{}
	svc := newProductionService(t, orders, &fakeVendorRepo{})
	ctx := context.Background()

	t.Run("empty vendor rejected", func(t *testing.T) {
		err := svc.AssignVendor(ctx, "ORD-1", "")
		require.Error(t, err)
		assert.Equal(t, errorx.KindValidation, errorx.KindOf(err))
		assert.Zero(t, orders.assignCalls)
	})

	t.Run("assignment reaches upstream", func(t *testing.T) {
		require.NoError(t, svc.AssignVendor(ctx, "ORD-1", "VEN-1"))
		assert.Equal(t, 1, orders.assignCalls)
	})
}

func TestBoard(t *testing.T) {
	v, err := etvendor.NewVendor("VEN-1", "Sharma", "sharma@example.com")
	require.NoError(t, err)

	orders := &fakeOrderRepo{orders: []*etorder.ProductionOrder{
		mustOrder(t, "ORD-1", etstatus.StageAssigned),
	}}
	vendors := &fakeVendorRepo{vendors: []*etvendor.Vendor{v}}
	svc := newProductionService(t, orders, vendors)

	board, err := svc.Board(context.Background())
	require.NoError(t, err)
	require.Len(t, board.Orders, 1)
	require.Len(t, board.Vendors, 1)
	assert.Equal(t, 1, orders.listCalls)
	assert.Equal(t, 1, vendors.listCalls)
	assert.False(t, svc.Snapshot().Empty())
}

func TestListFilter(t *testing.T) {
	o1 := mustOrder(t, "ORD-1", etstatus.StageAssigned)
	o1.CustomerName = "Sharma"
	o2 := mustOrder(t, "ORD-2", etstatus.StagePrinting)
	o2.CustomerName = "Verma"

	orders := &fakeOrderRepo{orders: []*etorder.ProductionOrder{o1, o2}}
	svc := newProductionService(t, orders, &fakeVendorRepo{})
	ctx := context.Background()

	out, err := svc.List(ctx, filter.State{SearchTerm: "verma"})
	require.NoError(t, err)
	require.Len(t, out, 1)
	assert.Equal(t, "ORD-2", out[0].ID)

	out, err = svc.List(ctx, filter.State{Status: string(etstatus.StagePrinting)})
	require.NoError(t, err)
	require.Len(t, out, 1)
	assert.Equal(t, "ORD-2", out[0].ID)
}
