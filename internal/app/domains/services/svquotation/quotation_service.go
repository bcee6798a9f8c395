package svquotation

import (
	"context"

	"golang.org/x/sync/singleflight"

	"threadly/console/internal/app/domains/entity/etquote"
	"threadly/console/internal/app/domains/filter"
	"threadly/console/internal/app/domains/repo/rporder"
	"threadly/console/internal/app/domains/store"
	"threadly/console/internal/app/pkg/logger"
)

// QuotationService 报价审核服务
// 批准/驳回失败时上游 error 字段必须原样传回调用方
type QuotationService struct {
	orders rporder.OrderRepository
	snap   *store.Store[*etquote.Quotation]
	sf     singleflight.Group
	logger logger.Logger
}

// NewQuotationService 创建报价审核服务实例
func NewQuotationService(orders rporder.OrderRepository, log logger.Logger) *QuotationService {
	return &QuotationService{
		orders: orders,
		snap:   store.New[*etquote.Quotation](),
		logger: log,
	}
}

// List 报价单列表（回源后按条件过滤）
func (s *QuotationService) List(ctx context.Context, f filter.State) ([]*etquote.Quotation, error) {
	_, err, _ := s.sf.Do("quotations", func() (interface{}, error) {
		items, err := s.orders.ListQuotations(ctx)
		if err != nil {
			return nil, err
		}
		s.snap.Set(items)
		return nil, nil
	})
	if err != nil {
		return nil, err
	}

	items, _ := s.snap.Get()
	return filter.Apply(items, f,
		func(q *etquote.Quotation) []string {
			return []string{q.ID, q.OrderID, q.VendorName}
		},
		func(q *etquote.Quotation) string { return string(q.Status) },
	), nil
}

// Approve 批准报价（并发重复点击合并为一次）
func (s *QuotationService) Approve(ctx context.Context, quotationID string) error {
	_, err, _ := s.sf.Do("approve:"+quotationID, func() (interface{}, error) {
		return nil, s.orders.ApproveQuotation(ctx, quotationID)
	})
	if err != nil {
		return err
	}

	s.snap.Clear()
	return nil
}

// Reject 驳回报价
func (s *QuotationService) Reject(ctx context.Context, quotationID, remarks string) error {
	_, err, _ := s.sf.Do("reject:"+quotationID, func() (interface{}, error) {
		return nil, s.orders.RejectQuotation(ctx, quotationID, remarks)
	})
	if err != nil {
		return err
	}

	s.snap.Clear()
	return nil
}
