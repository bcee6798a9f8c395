package upstream

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"threadly/console/internal/app/domains/entity/etrider"
	"threadly/console/internal/app/domains/entity/etstatus"
	"threadly/console/internal/app/domains/repo/rprider"
	"threadly/console/internal/app/pkg/errorx"
)

// RiderAPI 骑手接口适配器，实现 rprider.RiderRepository
type RiderAPI struct {
	c *Client
}

var _ rprider.RiderRepository = (*RiderAPI)(nil)

// NewRiderAPI 创建骑手接口适配器
func NewRiderAPI(c *Client) *RiderAPI {
	return &RiderAPI{c: c}
}

// riderWire 骑手线上数据结构
type riderWire struct {
	ID           string                  `json:"id"`
	Name         string                  `json:"name"`
	Phone        string                  `json:"phone"`
	VehiclePlate string                  `json:"vehicle_plate"`
	Status       string                  `json:"status"`
	AdminRemarks string                  `json:"admin_remarks"`
	SubmittedAt  string                  `json:"submitted_at"`
	Documents    map[string]documentWire `json:"documents"`
}

// List 拉取待审核骑手列表
func (a *RiderAPI) List(ctx context.Context) ([]*etrider.Rider, error) {
	return a.fetchRiderList(ctx, "/api/admin/riders")
}

// ListVerified 拉取已认证骑手列表
func (a *RiderAPI) ListVerified(ctx context.Context) ([]*etrider.Rider, error) {
	return a.fetchRiderList(ctx, "/api/admin/verified-riders")
}

func (a *RiderAPI) fetchRiderList(ctx context.Context, path string) ([]*etrider.Rider, error) {
	var raw json.RawMessage
	if err := a.c.doJSON(ctx, "admin", http.MethodGet, path, nil, &raw); err != nil {
		return nil, err
	}

	var list []riderWire
	if err := json.Unmarshal(raw, &list); err != nil {
		var wrapped struct {
			Riders []riderWire `json:"riders"`
			Data   []riderWire `json:"data"`
		}
		if err := json.Unmarshal(raw, &wrapped); err != nil {
			return nil, errorx.InvalidResponse()
		}
		list = wrapped.Riders
		if list == nil {
			list = wrapped.Data
		}
	}

	riders := make([]*etrider.Rider, 0, len(list))
	for _, w := range list {
		riders = append(riders, w.toEntity())
	}
	return riders, nil
}

// Verify 管理员审核骑手
func (a *RiderAPI) Verify(ctx context.Context, riderID string, approve bool, remarks string) error {
	body := map[string]interface{}{
		"approve": approve,
		"remarks": remarks,
	}
	path := fmt.Sprintf("/api/admin/riders/%s/verify", riderID)
	return a.c.doJSON(ctx, "admin", http.MethodPut, path, body, nil)
}

// toEntity 线上结构转领域实体
func (w riderWire) toEntity() *etrider.Rider {
	r := &etrider.Rider{
		ID:           w.ID,
		Name:         w.Name,
		Phone:        w.Phone,
		VehiclePlate: w.VehiclePlate,
		Status:       etstatus.DocumentStatus(w.Status),
		AdminRemarks: w.AdminRemarks,
		SubmittedAt:  parseTime(w.SubmittedAt),
		Documents:    make(map[etrider.DocType]*etrider.DocumentRecord, len(w.Documents)),
	}

	for docType, dw := range w.Documents {
		r.Documents[etrider.DocType(docType)] = &etrider.DocumentRecord{
			Status:       etstatus.DocumentStatus(dw.Status),
			FileName:     dw.FileName,
			FileURL:      dw.FileURL,
			AdminRemarks: dw.AdminRemarks,
			UploadedAt:   parseTime(dw.UploadedAt),
		}
	}
	return r
}
