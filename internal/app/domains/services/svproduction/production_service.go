package svproduction

import (
	"context"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"
	"golang.org/x/sync/singleflight"

	"threadly/console/internal/app/domains/entity/etorder"
	"threadly/console/internal/app/domains/entity/etstatus"
	"threadly/console/internal/app/domains/entity/etvendor"
	"threadly/console/internal/app/domains/filter"
	"threadly/console/internal/app/domains/repo/rporder"
	"threadly/console/internal/app/domains/repo/rpvendor"
	"threadly/console/internal/app/domains/store"
	"threadly/console/internal/app/pkg/errorx"
	"threadly/console/internal/app/pkg/logger"
)

// BoardData 生产看板数据（订单 + 可指派商户）
type BoardData struct {
	Orders  []*etorder.ProductionOrder
	Vendors []*etvendor.Vendor
}

// ProductionService 生产服务，负责生产订单流程编排
type ProductionService struct {
	orders  rporder.OrderRepository
	vendors rpvendor.VendorRepository

	snap   *store.Store[*etorder.ProductionOrder]
	sf     singleflight.Group
	logger logger.Logger
}

// NewProductionService 创建生产服务实例
func NewProductionService(orders rporder.OrderRepository, vendors rpvendor.VendorRepository, log logger.Logger) *ProductionService {
	return &ProductionService{
		orders:  orders,
		vendors: vendors,
		snap:    store.New[*etorder.ProductionOrder](),
		logger:  log,
	}
}

// Board 生产看板（订单与商户并发拉取）
func (s *ProductionService) Board(ctx context.Context) (*BoardData, error) {
	var board BoardData

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		orders, err := s.orders.ListProduction(gctx)
		if err != nil {
			return err
		}
		board.Orders = orders
		return nil
	})
	g.Go(func() error {
		vendors, err := s.vendors.List(gctx)
		if err != nil {
			return err
		}
		board.Vendors = vendors
		return nil
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	s.snap.Set(board.Orders)
	return &board, nil
}

// List 生产订单列表（回源后按条件过滤）
func (s *ProductionService) List(ctx context.Context, f filter.State) ([]*etorder.ProductionOrder, error) {
	if err := s.Refresh(ctx); err != nil {
		return nil, err
	}

	items, _ := s.snap.Get()
	return filterOrders(items, f), nil
}

// Refresh 回源刷新订单快照（并发触发只执行一次）
func (s *ProductionService) Refresh(ctx context.Context) error {
	_, err, _ := s.sf.Do("production-orders", func() (interface{}, error) {
		items, err := s.orders.ListProduction(ctx)
		if err != nil {
			return nil, err
		}
		s.snap.Set(items)
		return nil, nil
	})
	return err
}

// SubmitOrder 提交新订单
// 尺码数量合计校验失败时直接拒绝，不发起任何上游调用
func (s *ProductionService) SubmitOrder(ctx context.Context, customerName, productType, customization, notes string, quantity int, sizeBreakup map[string]int) (*etorder.ProductionOrder, error) {
	if err := etorder.ValidateQuantities(quantity, sizeBreakup); err != nil {
		return nil, errorx.Validation(err.Error())
	}

	order, err := etorder.NewProductionOrder(uuid.New().String(), customerName, productType, quantity, sizeBreakup)
	if err != nil {
		return nil, errorx.Validation(err.Error())
	}
	order.Customization = customization
	order.Notes = notes

	if err := s.orders.Create(ctx, order); err != nil {
		return nil, err
	}

	s.snap.Clear()
	return order, nil
}

// AssignVendor 指派商户（并发重复提交合并为一次）
func (s *ProductionService) AssignVendor(ctx context.Context, orderID, vendorID string) error {
	if vendorID == "" {
		return errorx.Validation(etorder.ErrVendorNotAssigned.Error())
	}

	_, err, _ := s.sf.Do("assign:"+orderID, func() (interface{}, error) {
		return nil, s.orders.AssignVendor(ctx, orderID, vendorID)
	})
	if err != nil {
		return err
	}

	s.snap.Clear()
	return nil
}

// AdvanceStage 推进生产阶段
// 客户端先校验只前进一步，再发起上游变更；并发重复点击合并为一次
func (s *ProductionService) AdvanceStage(ctx context.Context, orderID string, to etstatus.ProductionStage) error {
	if etstatus.StageIndex(to) < 0 {
		return errorx.Validation(etorder.ErrInvalidStage.Error())
	}

	if order, ok := s.snap.Find(func(o *etorder.ProductionOrder) bool { return o.ID == orderID }); ok {
		if !etstatus.CanAdvanceStage(order.Stage, to) {
			return errorx.Validation(etorder.ErrStageNotForward.Error())
		}
	}

	_, err, _ := s.sf.Do("advance:"+orderID, func() (interface{}, error) {
		return nil, s.orders.UpdateStage(ctx, orderID, to)
	})
	if err != nil {
		return err
	}

	s.snap.Clear()
	return nil
}

// Snapshot 订单快照存储（供刷新 Worker 订阅）
func (s *ProductionService) Snapshot() *store.Store[*etorder.ProductionOrder] {
	return s.snap
}

// filterOrders 按客户/商户/货品类型子串 + 阶段过滤
func filterOrders(items []*etorder.ProductionOrder, f filter.State) []*etorder.ProductionOrder {
	return filter.Apply(items, f,
		func(o *etorder.ProductionOrder) []string {
			return []string{o.ID, o.CustomerName, o.VendorName, o.ProductType}
		},
		func(o *etorder.ProductionOrder) string { return string(o.Stage) },
	)
}
