package rporder

import (
	"context"

	"threadly/console/internal/app/domains/entity/etorder"
	"threadly/console/internal/app/domains/entity/etquote"
	"threadly/console/internal/app/domains/entity/etstatus"
)

// OrderRepository 订单仓储接口（只定义，不实现）
// 实现在 infra/upstream 层
type OrderRepository interface {
	// ListProduction 拉取生产订单列表
	ListProduction(ctx context.Context) ([]*etorder.ProductionOrder, error)

	// Create 提交新订单（数量校验必须在调用前完成）
	Create(ctx context.Context, order *etorder.ProductionOrder) error

	// AssignVendor 指派商户
	AssignVendor(ctx context.Context, orderID, vendorID string) error

	// UpdateStage 更新订单生产阶段
	UpdateStage(ctx context.Context, orderID string, stage etstatus.ProductionStage) error

	// ListQuotations 拉取报价单列表
	ListQuotations(ctx context.Context) ([]*etquote.Quotation, error)

	// ApproveQuotation 批准报价
	ApproveQuotation(ctx context.Context, quotationID string) error

	// RejectQuotation 驳回报价
	RejectQuotation(ctx context.Context, quotationID, remarks string) error
}
