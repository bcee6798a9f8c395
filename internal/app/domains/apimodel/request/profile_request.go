package request

// UpdateProfileRequest 更新商户资料请求
type UpdateProfileRequest struct {
	Name         string `json:"name" binding:"required" example:"Arun Sharma"`
	BusinessName string `json:"business_name" example:"Sharma Apparels"`
	Email        string `json:"email" binding:"required,email" example:"arun@example.com"`
	Phone        string `json:"phone" binding:"required" example:"9876543210"`
}

// ListFilterRequest 列表过滤参数（query string）
type ListFilterRequest struct {
	Search string `form:"search" example:"sharma"`
	Status string `form:"status" example:"pending"`
}
