package svdelivery

import (
	"context"

	"github.com/google/uuid"
	"golang.org/x/sync/singleflight"

	"threadly/console/internal/app/domains/entity/etdelivery"
	"threadly/console/internal/app/domains/entity/etstatus"
	"threadly/console/internal/app/domains/filter"
	"threadly/console/internal/app/domains/repo/rpdelivery"
	"threadly/console/internal/app/domains/store"
	"threadly/console/internal/app/pkg/errorx"
	"threadly/console/internal/app/pkg/logger"
)

const fileTooLargeMessage = "File size must be under 5MB"

// DeliveryService 配送服务，负责骑手配送流程编排
type DeliveryService struct {
	deliveries  rpdelivery.DeliveryRepository
	maxFileSize int64

	snap   *store.Store[*etdelivery.Delivery]
	sf     singleflight.Group
	logger logger.Logger
}

// NewDeliveryService 创建配送服务实例
func NewDeliveryService(deliveries rpdelivery.DeliveryRepository, maxFileSize int64, log logger.Logger) *DeliveryService {
	return &DeliveryService{
		deliveries:  deliveries,
		maxFileSize: maxFileSize,
		snap:        store.New[*etdelivery.Delivery](),
		logger:      log,
	}
}

// Assigned 骑手名下的配送单（回源后按条件过滤）
func (s *DeliveryService) Assigned(ctx context.Context, riderID string, f filter.State) ([]*etdelivery.Delivery, error) {
	_, err, _ := s.sf.Do("assigned:"+riderID, func() (interface{}, error) {
		items, err := s.deliveries.ListAssigned(ctx, riderID)
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
		func(d *etdelivery.Delivery) []string {
			return []string{d.ID, d.OrderID, d.CustomerName, d.DropAddress}
		},
		func(d *etdelivery.Delivery) string { return string(d.Status) },
	), nil
}

// UpdateStatus 推进配送状态
// 客户端先校验只前进一步，再发起上游变更
func (s *DeliveryService) UpdateStatus(ctx context.Context, deliveryID string, to etstatus.DeliveryStatus) error {
	if etstatus.DeliveryStatusIndex(to) < 0 {
		return errorx.Validation(errorx.ErrInvalidStatus.Error())
	}

	if d, ok := s.snap.Find(func(d *etdelivery.Delivery) bool { return d.ID == deliveryID }); ok {
		if !etstatus.CanAdvanceDelivery(d.Status, to) {
			return errorx.Validation(etdelivery.ErrStatusNotForward.Error())
		}
	}

	_, err, _ := s.sf.Do("status:"+deliveryID, func() (interface{}, error) {
		return nil, s.deliveries.UpdateStatus(ctx, deliveryID, to)
	})
	if err != nil {
		return err
	}

	s.snap.Clear()
	return nil
}

// UpdateLocation 上报骑手位置（位置更新不丢弃快照，只更新本地副本）
func (s *DeliveryService) UpdateLocation(ctx context.Context, deliveryID string, lat, lng float64) error {
	if lat < -90 || lat > 90 || lng < -180 || lng > 180 {
		return errorx.Validation("invalid coordinates")
	}

	if err := s.deliveries.UpdateLocation(ctx, deliveryID, lat, lng); err != nil {
		return err
	}

	if d, ok := s.snap.Find(func(d *etdelivery.Delivery) bool { return d.ID == deliveryID }); ok {
		d.UpdateLocation(lat, lng)
	}
	return nil
}

// UploadProof 上传取件/送达凭证
// 文件大小校验必须在任何上游调用之前完成
func (s *DeliveryService) UploadProof(ctx context.Context, deliveryID string, kind etdelivery.ProofKind, fileName string, size int64, payload []byte) (string, error) {
	if kind != etdelivery.ProofPickup && kind != etdelivery.ProofDelivery {
		return "", errorx.Validation(etdelivery.ErrUnknownProofKind.Error())
	}
	if size > s.maxFileSize {
		return "", errorx.Validation(fileTooLargeMessage)
	}

	if fileName == "" {
		fileName = uuid.New().String() + ".jpg"
	}

	url, err := s.deliveries.UploadProof(ctx, deliveryID, kind, fileName, payload)
	if err != nil {
		return "", err
	}

	s.snap.Clear()
	return url, nil
}

// Snapshot 配送单快照存储（供刷新 Worker 订阅）
func (s *DeliveryService) Snapshot() *store.Store[*etdelivery.Delivery] {
	return s.snap
}
