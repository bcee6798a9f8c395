package request

// ReviewDocumentRequest 管理员审核商户证件请求
type ReviewDocumentRequest struct {
	DocType string `json:"doc_type" binding:"required" example:"gst_certificate"`
	Remarks string `json:"remarks" example:"blurred scan, please re-upload"`
}

// VerifyRiderRequest 管理员审核骑手请求
type VerifyRiderRequest struct {
	Approve bool   `json:"approve"`
	Remarks string `json:"remarks" example:"documents verified"`
}

// SubmitReviewRequest 商户提交认证审核请求
type SubmitReviewRequest struct {
	VendorID string `json:"vendor_id" binding:"required" example:"VEN-7"`
}
