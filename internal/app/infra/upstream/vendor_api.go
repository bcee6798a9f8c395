package upstream

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/shopspring/decimal"

	"threadly/console/internal/app/domains/entity/etorder"
	"threadly/console/internal/app/domains/entity/etstatus"
	"threadly/console/internal/app/domains/entity/etvendor"
	"threadly/console/internal/app/domains/repo/rpvendor"
	"threadly/console/internal/app/pkg/errorx"
)

// VendorAPI 商户接口适配器，实现 rpvendor.VendorRepository
type VendorAPI struct {
	c *Client
}

var _ rpvendor.VendorRepository = (*VendorAPI)(nil)

// NewVendorAPI 创建商户接口适配器
func NewVendorAPI(c *Client) *VendorAPI {
	return &VendorAPI{c: c}
}

// vendorWire 商户线上数据结构
type vendorWire struct {
	ID             string                  `json:"id"`
	Name           string                  `json:"name"`
	BusinessName   string                  `json:"business_name"`
	Email          string                  `json:"email"`
	Phone          string                  `json:"phone"`
	Status         string                  `json:"status"`
	CommissionRate string                  `json:"commission_rate"`
	AdminRemarks   string                  `json:"admin_remarks"`
	SubmittedAt    string                  `json:"submitted_at"`
	Documents      map[string]documentWire `json:"documents"`
}

// documentWire 证件线上数据结构
type documentWire struct {
	Status       string            `json:"status"`
	FileName     string            `json:"file_name"`
	FileURL      string            `json:"file_url"`
	Extra        map[string]string `json:"extra_fields"`
	AdminRemarks string            `json:"admin_remarks"`
	UploadedAt   string            `json:"uploaded_at"`
}

// List 拉取商户列表
func (a *VendorAPI) List(ctx context.Context) ([]*etvendor.Vendor, error) {
	return a.fetchVendorList(ctx, "/api/admin/vendors")
}

// ListRejected 拉取被驳回的商户列表
func (a *VendorAPI) ListRejected(ctx context.Context) ([]*etvendor.Vendor, error) {
	return a.fetchVendorList(ctx, "/api/admin/rejected-vendors")
}

func (a *VendorAPI) fetchVendorList(ctx context.Context, path string) ([]*etvendor.Vendor, error) {
	var raw json.RawMessage
	if err := a.c.doJSON(ctx, "admin", http.MethodGet, path, nil, &raw); err != nil {
		return nil, err
	}

	wires, err := normalizeVendorList(raw)
	if err != nil {
		return nil, err
	}

	vendors := make([]*etvendor.Vendor, 0, len(wires))
	for _, w := range wires {
		vendors = append(vendors, w.toEntity())
	}
	return vendors, nil
}

// normalizeVendorList 归一化列表负载
// 上游可能返回裸数组、{vendors:[...]}、{data:[...]} 或单个对象，统一转为数组
func normalizeVendorList(raw json.RawMessage) ([]vendorWire, error) {
	var list []vendorWire
	if err := json.Unmarshal(raw, &list); err == nil {
		return list, nil
	}

	var wrapped struct {
		Vendors []vendorWire `json:"vendors"`
		Data    []vendorWire `json:"data"`
	}
	if err := json.Unmarshal(raw, &wrapped); err == nil {
		if wrapped.Vendors != nil {
			return wrapped.Vendors, nil
		}
		if wrapped.Data != nil {
			return wrapped.Data, nil
		}
	}

	var single vendorWire
	if err := json.Unmarshal(raw, &single); err == nil && single.ID != "" {
		return []vendorWire{single}, nil
	}

	return nil, errorx.InvalidResponse()
}

// GetProfile 拉取商户资料
func (a *VendorAPI) GetProfile(ctx context.Context, vendorID string) (*etvendor.Vendor, error) {
	var w vendorWire
	if err := a.c.doJSON(ctx, "vendor", http.MethodGet, "/api/vendor/profile", nil, &w); err != nil {
		return nil, err
	}
	return w.toEntity(), nil
}

// UpdateProfile 更新商户资料
func (a *VendorAPI) UpdateProfile(ctx context.Context, vendor *etvendor.Vendor) error {
	body := map[string]string{
		"name":          vendor.Name,
		"business_name": vendor.BusinessName,
		"email":         vendor.Email,
		"phone":         vendor.Phone,
	}
	return a.c.doJSON(ctx, "vendor", http.MethodPut, "/api/vendor/profile", body, nil)
}

// UploadDocument 上传认证证件
func (a *VendorAPI) UploadDocument(ctx context.Context, vendorID string, docType etvendor.DocType, fileName string, payload []byte, extra map[string]string) (*etvendor.DocumentRecord, error) {
	fields := map[string]string{"document_type": string(docType)}
	for k, v := range extra {
		fields[k] = v
	}

	var w documentWire
	if err := a.c.doMultipart(ctx, "vendor", "/vendor/verification/upload", "document", fileName, payload, fields, &w); err != nil {
		return nil, err
	}
	return w.toEntity(), nil
}

// SubmitForReview 提交证件审核
func (a *VendorAPI) SubmitForReview(ctx context.Context, vendorID string) error {
	return a.c.doJSON(ctx, "vendor", http.MethodPost, "/vendor/verification/submit", nil, nil)
}

// VerificationStatus 查询认证状态
func (a *VendorAPI) VerificationStatus(ctx context.Context, vendorID string) (*etvendor.Vendor, error) {
	var w vendorWire
	path := fmt.Sprintf("/vendor/verification/status/%s", vendorID)
	if err := a.c.doJSON(ctx, "vendor", http.MethodGet, path, nil, &w); err != nil {
		return nil, err
	}
	return w.toEntity(), nil
}

// ReviewDocument 管理员审核单个证件
func (a *VendorAPI) ReviewDocument(ctx context.Context, vendorID string, docType etvendor.DocType, approve bool, remarks string) error {
	action := "approve"
	if !approve {
		action = "reject"
	}
	body := map[string]string{
		"document_type": string(docType),
		"remarks":       remarks,
	}
	path := fmt.Sprintf("/api/admin/vendors/%s/documents/%s", vendorID, action)
	return a.c.doJSON(ctx, "admin", http.MethodPut, path, body, nil)
}

// ListOrders 拉取商户订单
func (a *VendorAPI) ListOrders(ctx context.Context, vendorID string, status string) ([]*etorder.ProductionOrder, error) {
	path := "/api/vendor/orders"
	if status != "" {
		path += "?status=" + status
	}

	var raw json.RawMessage
	if err := a.c.doJSON(ctx, "vendor", http.MethodGet, path, nil, &raw); err != nil {
		return nil, err
	}

	wires, err := normalizeOrderList(raw)
	if err != nil {
		return nil, err
	}

	orders := make([]*etorder.ProductionOrder, 0, len(wires))
	for _, w := range wires {
		orders = append(orders, w.toEntity())
	}
	return orders, nil
}

// toEntity 线上结构转领域实体
func (w vendorWire) toEntity() *etvendor.Vendor {
	v := &etvendor.Vendor{
		ID:           w.ID,
		Name:         w.Name,
		BusinessName: w.BusinessName,
		Email:        w.Email,
		Phone:        w.Phone,
		Status:       etstatus.DocumentStatus(w.Status),
		AdminRemarks: w.AdminRemarks,
		SubmittedAt:  parseTime(w.SubmittedAt),
		Documents:    make(map[etvendor.DocType]*etvendor.DocumentRecord, len(w.Documents)),
	}

	if rate, err := decimal.NewFromString(w.CommissionRate); err == nil {
		v.CommissionRate = rate
	}
	for docType, dw := range w.Documents {
		v.Documents[etvendor.DocType(docType)] = dw.toEntity()
	}
	return v
}

func (w documentWire) toEntity() *etvendor.DocumentRecord {
	return &etvendor.DocumentRecord{
		Status:       etstatus.DocumentStatus(w.Status),
		FileName:     w.FileName,
		FileURL:      w.FileURL,
		Extra:        w.Extra,
		AdminRemarks: w.AdminRemarks,
		UploadedAt:   parseTime(w.UploadedAt),
	}
}

// parseTime 解析上游时间字段，解析失败返回零值
func parseTime(s string) time.Time {
	if s == "" {
		return time.Time{}
	}
	t, err := time.Parse(time.RFC3339, s)
	if err != nil {
		return time.Time{}
	}
	return t
}
