package upstream

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/shopspring/decimal"

	"threadly/console/internal/app/domains/entity/etorder"
	"threadly/console/internal/app/domains/entity/etquote"
	"threadly/console/internal/app/domains/entity/etstatus"
	"threadly/console/internal/app/domains/repo/rporder"
	"threadly/console/internal/app/pkg/errorx"
)

// OrderAPI 订单接口适配器，实现 rporder.OrderRepository
type OrderAPI struct {
	c *Client
}

var _ rporder.OrderRepository = (*OrderAPI)(nil)

// NewOrderAPI 创建订单接口适配器
func NewOrderAPI(c *Client) *OrderAPI {
	return &OrderAPI{c: c}
}

// orderWire 生产订单线上数据结构
type orderWire struct {
	ID            string         `json:"id"`
	CustomerName  string         `json:"customer_name"`
	VendorID      string         `json:"vendor_id"`
	VendorName    string         `json:"vendor_name"`
	Stage         string         `json:"current_stage"`
	Quantity      int            `json:"quantity"`
	SizeBreakup   map[string]int `json:"size_breakup"`
	ProductType   string         `json:"product_type"`
	Customization string         `json:"customization"`
	Deadline      string         `json:"deadline"`
	Notes         string         `json:"notes"`
	Photos        []string       `json:"photos"`
	CreatedAt     string         `json:"created_at"`
	UpdatedAt     string         `json:"updated_at"`
}

// quotationWire 报价单线上数据结构
type quotationWire struct {
	ID             string `json:"id"`
	OrderID        string `json:"order_id"`
	VendorID       string `json:"vendor_id"`
	VendorName     string `json:"vendor_name"`
	Amount         string `json:"amount"`
	CommissionRate string `json:"commission_rate"`
	Status         string `json:"status"`
	Remarks        string `json:"remarks"`
	SubmittedAt    string `json:"submitted_at"`
}

// ListProduction 拉取生产订单列表
func (a *OrderAPI) ListProduction(ctx context.Context) ([]*etorder.ProductionOrder, error) {
	var raw json.RawMessage
	if err := a.c.doJSON(ctx, "admin", http.MethodGet, "/api/admin/production-orders", nil, &raw); err != nil {
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

// normalizeOrderList 归一化订单列表负载
func normalizeOrderList(raw json.RawMessage) ([]orderWire, error) {
	var list []orderWire
	if err := json.Unmarshal(raw, &list); err == nil {
		return list, nil
	}

	var wrapped struct {
		Orders []orderWire `json:"orders"`
		Data   []orderWire `json:"data"`
	}
	if err := json.Unmarshal(raw, &wrapped); err == nil {
		if wrapped.Orders != nil {
			return wrapped.Orders, nil
		}
		if wrapped.Data != nil {
			return wrapped.Data, nil
		}
	}

	return nil, errorx.InvalidResponse()
}

// Create 提交新订单
func (a *OrderAPI) Create(ctx context.Context, order *etorder.ProductionOrder) error {
	body := map[string]interface{}{
		"customer_name": order.CustomerName,
		"product_type":  order.ProductType,
		"quantity":      order.Quantity,
		"size_breakup":  order.SizeBreakup,
		"customization": order.Customization,
		"notes":         order.Notes,
	}
	return a.c.doJSON(ctx, "customer", http.MethodPost, "/api/orders/", body, nil)
}

// AssignVendor 指派商户
func (a *OrderAPI) AssignVendor(ctx context.Context, orderID, vendorID string) error {
	body := map[string]string{
		"order_id":  orderID,
		"vendor_id": vendorID,
	}
	return a.c.doJSON(ctx, "admin", http.MethodPost, "/api/admin/assign-vendor", body, nil)
}

// UpdateStage 更新订单生产阶段
func (a *OrderAPI) UpdateStage(ctx context.Context, orderID string, stage etstatus.ProductionStage) error {
	body := map[string]string{"status": string(stage)}
	path := fmt.Sprintf("/api/orders/%s/status", orderID)
	return a.c.doJSON(ctx, "admin", http.MethodPut, path, body, nil)
}

// ListQuotations 拉取报价单列表
func (a *OrderAPI) ListQuotations(ctx context.Context) ([]*etquote.Quotation, error) {
	var raw json.RawMessage
	if err := a.c.doJSON(ctx, "admin", http.MethodGet, "/api/admin/quotation-submissions", nil, &raw); err != nil {
		return nil, err
	}

	var list []quotationWire
	if err := json.Unmarshal(raw, &list); err != nil {
		var wrapped struct {
			Submissions []quotationWire `json:"submissions"`
			Data        []quotationWire `json:"data"`
		}
		if err := json.Unmarshal(raw, &wrapped); err != nil {
			return nil, errorx.InvalidResponse()
		}
		list = wrapped.Submissions
		if list == nil {
			list = wrapped.Data
		}
	}

	quotes := make([]*etquote.Quotation, 0, len(list))
	for _, w := range list {
		quotes = append(quotes, w.toEntity())
	}
	return quotes, nil
}

// ApproveQuotation 批准报价
func (a *OrderAPI) ApproveQuotation(ctx context.Context, quotationID string) error {
	path := fmt.Sprintf("/api/admin/quotation-submissions/%s/approve", quotationID)
	return a.c.doJSON(ctx, "admin", http.MethodPost, path, nil, nil)
}

// RejectQuotation 驳回报价
func (a *OrderAPI) RejectQuotation(ctx context.Context, quotationID, remarks string) error {
	body := map[string]string{"remarks": remarks}
	path := fmt.Sprintf("/api/admin/quotation-submissions/%s/reject", quotationID)
	return a.c.doJSON(ctx, "admin", http.MethodPost, path, body, nil)
}

// toEntity 线上结构转领域实体
func (w orderWire) toEntity() *etorder.ProductionOrder {
	return &etorder.ProductionOrder{
		ID:            w.ID,
		CustomerName:  w.CustomerName,
		VendorID:      w.VendorID,
		VendorName:    w.VendorName,
		Stage:         etstatus.ProductionStage(w.Stage),
		Quantity:      w.Quantity,
		SizeBreakup:   w.SizeBreakup,
		ProductType:   w.ProductType,
		Customization: w.Customization,
		Deadline:      parseTime(w.Deadline),
		Notes:         w.Notes,
		Photos:        w.Photos,
		CreatedAt:     parseTime(w.CreatedAt),
		UpdatedAt:     parseTime(w.UpdatedAt),
	}
}

func (w quotationWire) toEntity() *etquote.Quotation {
	q := &etquote.Quotation{
		ID:          w.ID,
		OrderID:     w.OrderID,
		VendorID:    w.VendorID,
		VendorName:  w.VendorName,
		Status:      etstatus.QuotationStatus(w.Status),
		Remarks:     w.Remarks,
		SubmittedAt: parseTime(w.SubmittedAt),
	}
	if amount, err := decimal.NewFromString(w.Amount); err == nil {
		q.Amount = amount
	}
	if rate, err := decimal.NewFromString(w.CommissionRate); err == nil {
		q.CommissionRate = rate
	}
	return q
}
