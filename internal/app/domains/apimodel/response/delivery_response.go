package response

import "time"

// DeliveryResponse 配送单响应（DTO）
type DeliveryResponse struct {
	ID               string            `json:"id"`
	OrderID          string            `json:"order_id"`
	RiderID          string            `json:"rider_id"`
	Status           string            `json:"status"`
	PickupAddress    string            `json:"pickup_address"`
	DropAddress      string            `json:"drop_address"`
	CustomerName     string            `json:"customer_name"`
	CustomerPhone    string            `json:"customer_phone"`
	PickupProofURL   string            `json:"pickup_proof_url,omitempty"`
	DeliveryProofURL string            `json:"delivery_proof_url,omitempty"`
	Location         *LocationResponse `json:"location,omitempty"`
	AssignedAt       time.Time         `json:"assigned_at"`
	UpdatedAt        time.Time         `json:"updated_at"`
}

// LocationResponse 骑手位置响应（DTO）
type LocationResponse struct {
	Lat        float64   `json:"lat"`
	Lng        float64   `json:"lng"`
	RecordedAt time.Time `json:"recorded_at"`
}

// UploadResponse 文件上传响应（DTO）
type UploadResponse struct {
	FileURL string `json:"file_url"`
}

// SessionResponse 登录态响应（DTO）
type SessionResponse struct {
	SessionID string `json:"session_id"`
	UserID    string `json:"user_id"`
	Username  string `json:"username"`
	Role      string `json:"role"`
	Token     string `json:"token"`
}
