package rpvendor

import (
	"context"

	"threadly/console/internal/app/domains/entity/etorder"
	"threadly/console/internal/app/domains/entity/etvendor"
)

// VendorRepository 商户仓储接口（只定义，不实现）
// 实现在 infra/upstream 层：所有数据归上游核心 API 所有，此处只是读穿访问
type VendorRepository interface {
	// List 拉取商户列表
	List(ctx context.Context) ([]*etvendor.Vendor, error)

	// ListRejected 拉取被驳回的商户列表
	ListRejected(ctx context.Context) ([]*etvendor.Vendor, error)

	// GetProfile 拉取商户资料
	GetProfile(ctx context.Context, vendorID string) (*etvendor.Vendor, error)

	// UpdateProfile 更新商户资料
	UpdateProfile(ctx context.Context, vendor *etvendor.Vendor) error

	// UploadDocument 上传认证证件（multipart）
	UploadDocument(ctx context.Context, vendorID string, docType etvendor.DocType, fileName string, payload []byte, extra map[string]string) (*etvendor.DocumentRecord, error)

	// SubmitForReview 提交证件审核
	SubmitForReview(ctx context.Context, vendorID string) error

	// VerificationStatus 查询认证状态
	VerificationStatus(ctx context.Context, vendorID string) (*etvendor.Vendor, error)

	// ReviewDocument 管理员审核单个证件
	ReviewDocument(ctx context.Context, vendorID string, docType etvendor.DocType, approve bool, remarks string) error

	// ListOrders 拉取商户订单，status 为空表示全部
	ListOrders(ctx context.Context, vendorID string, status string) ([]*etorder.ProductionOrder, error)
}
