package request

// SubmitOrderRequest 提交生产订单请求
type SubmitOrderRequest struct {
	CustomerName  string         `json:"customer_name" binding:"required" example:"Arun Sharma"`
	ProductType   string         `json:"product_type" binding:"required" example:"t-shirt"`
	Customization string         `json:"customization" example:"front logo print"`
	Notes         string         `json:"notes"`
	Quantity      int            `json:"quantity" binding:"required,gt=0" example:"120"`
	SizeBreakup   map[string]int `json:"size_breakup" example:"S:20,M:60,L:40"`
}

// AssignVendorRequest 指派商户请求
type AssignVendorRequest struct {
	OrderID  string `json:"order_id" binding:"required" example:"ORD-1001"`
	VendorID string `json:"vendor_id" binding:"required" example:"VEN-7"`
}

// AdvanceStageRequest 推进生产阶段请求
type AdvanceStageRequest struct {
	Stage string `json:"stage" binding:"required" example:"printing"`
}

// RejectQuotationRequest 驳回报价请求
type RejectQuotationRequest struct {
	Remarks string `json:"remarks" example:"commission too high"`
}
