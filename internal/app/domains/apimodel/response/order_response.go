package response

import "time"

// OrderResponse 生产订单响应（DTO）
type OrderResponse struct {
	ID            string         `json:"id"`
	CustomerName  string         `json:"customer_name"`
	VendorID      string         `json:"vendor_id,omitempty"`
	VendorName    string         `json:"vendor_name,omitempty"`
	Stage         string         `json:"stage"`
	StageProgress int            `json:"stage_progress"`
	Quantity      int            `json:"quantity"`
	SizeBreakup   map[string]int `json:"size_breakup,omitempty"`
	ProductType   string         `json:"product_type"`
	Customization string         `json:"customization,omitempty"`
	Deadline      time.Time      `json:"deadline,omitempty"`
	Notes         string         `json:"notes,omitempty"`
	Photos        []string       `json:"photos,omitempty"`
	CreatedAt     time.Time      `json:"created_at"`
	UpdatedAt     time.Time      `json:"updated_at"`
}

// QuotationResponse 报价单响应（DTO）
// 金额字段用字符串传输，避免前端浮点精度问题
type QuotationResponse struct {
	ID             string    `json:"id"`
	OrderID        string    `json:"order_id"`
	VendorID       string    `json:"vendor_id"`
	VendorName     string    `json:"vendor_name"`
	Amount         string    `json:"amount"`
	CommissionRate string    `json:"commission_rate"`
	Status         string    `json:"status"`
	Remarks        string    `json:"remarks,omitempty"`
	SubmittedAt    time.Time `json:"submitted_at"`
	DecidedAt      time.Time `json:"decided_at,omitempty"`
}

// BoardResponse 生产看板响应（DTO）
type BoardResponse struct {
	Orders  []*OrderResponse  `json:"orders"`
	Vendors []*VendorResponse `json:"vendors"`
}
