package rider

import "threadly/console/internal/app/domains/services/svdelivery"

// RiderHandler 骑手配送 HTTP 处理器
type RiderHandler struct {
	delivery      *svdelivery.DeliveryService
	maxUploadSize int64
}

// NewRiderHandler 创建骑手配送处理器实例
func NewRiderHandler(delivery *svdelivery.DeliveryService, maxUploadSize int64) *RiderHandler {
	return &RiderHandler{
		delivery:      delivery,
		maxUploadSize: maxUploadSize,
	}
}
