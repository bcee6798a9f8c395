package response

import "time"

// VendorResponse 商户响应（DTO）
type VendorResponse struct {
	ID             string              `json:"id"`
	Name           string              `json:"name"`
	BusinessName   string              `json:"business_name"`
	Email          string              `json:"email"`
	Phone          string              `json:"phone"`
	Status         string              `json:"status"`
	Documents      []*DocumentResponse `json:"documents"`
	CommissionRate string              `json:"commission_rate"`
	AdminRemarks   string              `json:"admin_remarks,omitempty"`
	SubmittedAt    time.Time           `json:"submitted_at,omitempty"`
	CreatedAt      time.Time           `json:"created_at"`
	UpdatedAt      time.Time           `json:"updated_at"`
}

// DocumentResponse 证件响应（DTO）
type DocumentResponse struct {
	Type         string    `json:"type"`
	Status       string    `json:"status"`
	FileName     string    `json:"file_name,omitempty"`
	FileURL      string    `json:"file_url,omitempty"`
	AdminRemarks string    `json:"admin_remarks,omitempty"`
	UploadedAt   time.Time `json:"uploaded_at,omitempty"`
}

// RiderResponse 骑手响应（DTO）
type RiderResponse struct {
	ID           string              `json:"id"`
	Name         string              `json:"name"`
	Phone        string              `json:"phone"`
	VehiclePlate string              `json:"vehicle_plate"`
	Status       string              `json:"status"`
	Documents    []*DocumentResponse `json:"documents"`
	AdminRemarks string              `json:"admin_remarks,omitempty"`
	SubmittedAt  time.Time           `json:"submitted_at,omitempty"`
}
