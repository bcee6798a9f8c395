package rpdelivery

import (
	"context"

	"threadly/console/internal/app/domains/entity/etdelivery"
	"threadly/console/internal/app/domains/entity/etstatus"
)

// DeliveryRepository 配送仓储接口（只定义，不实现）
// 实现在 infra/upstream 层
type DeliveryRepository interface {
	// ListAssigned 拉取骑手名下的配送单
	ListAssigned(ctx context.Context, riderID string) ([]*etdelivery.Delivery, error)

	// UpdateStatus 更新配送状态
	UpdateStatus(ctx context.Context, deliveryID string, status etstatus.DeliveryStatus) error

	// UpdateLocation 上报骑手位置
	UpdateLocation(ctx context.Context, deliveryID string, lat, lng float64) error

	// UploadProof 上传取件/送达凭证（multipart 图片）
	UploadProof(ctx context.Context, deliveryID string, kind etdelivery.ProofKind, fileName string, payload []byte) (string, error)
}
