package request

// UpdateDeliveryStatusRequest 更新配送状态请求
type UpdateDeliveryStatusRequest struct {
	Status string `json:"status" binding:"required" example:"picked_up"`
}

// UpdateLocationRequest 上报骑手位置请求
type UpdateLocationRequest struct {
	Lat float64 `json:"lat" binding:"required" example:"12.9716"`
	Lng float64 `json:"lng" binding:"required" example:"77.5946"`
}
