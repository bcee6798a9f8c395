package rprider

import (
	"context"

	"threadly/console/internal/app/domains/entity/etrider"
)

// RiderRepository 骑手仓储接口（只定义，不实现）
// 实现在 infra/upstream 层
type RiderRepository interface {
	// List 拉取待审核骑手列表
	List(ctx context.Context) ([]*etrider.Rider, error)

	// ListVerified 拉取已认证骑手列表
	ListVerified(ctx context.Context) ([]*etrider.Rider, error)

	// Verify 管理员审核骑手（通过/驳回）
	Verify(ctx context.Context, riderID string, approve bool, remarks string) error
}
