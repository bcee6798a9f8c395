package upstream

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"threadly/console/internal/app/domains/entity/etdelivery"
	"threadly/console/internal/app/domains/entity/etstatus"
	"threadly/console/internal/app/domains/repo/rpdelivery"
	"threadly/console/internal/app/pkg/errorx"
)

// DeliveryAPI 配送接口适配器，实现 rpdelivery.DeliveryRepository
type DeliveryAPI struct {
	c *Client
}

var _ rpdelivery.DeliveryRepository = (*DeliveryAPI)(nil)

// NewDeliveryAPI 创建配送接口适配器
func NewDeliveryAPI(c *Client) *DeliveryAPI {
	return &DeliveryAPI{c: c}
}

// deliveryWire 配送单线上数据结构
type deliveryWire struct {
	ID               string  `json:"id"`
	OrderID          string  `json:"order_id"`
	RiderID          string  `json:"rider_id"`
	Status           string  `json:"status"`
	PickupAddress    string  `json:"pickup_address"`
	DropAddress      string  `json:"drop_address"`
	CustomerName     string  `json:"customer_name"`
	CustomerPhone    string  `json:"customer_phone"`
	PickupProofURL   string  `json:"pickup_proof_url"`
	DeliveryProofURL string  `json:"delivery_proof_url"`
	Lat              float64 `json:"lat"`
	Lng              float64 `json:"lng"`
	AssignedAt       string  `json:"assigned_at"`
	UpdatedAt        string  `json:"updated_at"`
}

// ListAssigned 拉取骑手名下的配送单
func (a *DeliveryAPI) ListAssigned(ctx context.Context, riderID string) ([]*etdelivery.Delivery, error) {
	var raw json.RawMessage
	if err := a.c.doJSON(ctx, "rider", http.MethodGet, "/rider/deliveries/assigned", nil, &raw); err != nil {
		return nil, err
	}

	var list []deliveryWire
	if err := json.Unmarshal(raw, &list); err != nil {
		var wrapped struct {
			Deliveries []deliveryWire `json:"deliveries"`
			Data       []deliveryWire `json:"data"`
		}
		if err := json.Unmarshal(raw, &wrapped); err != nil {
			return nil, errorx.InvalidResponse()
		}
		list = wrapped.Deliveries
		if list == nil {
			list = wrapped.Data
		}
	}

	deliveries := make([]*etdelivery.Delivery, 0, len(list))
	for _, w := range list {
		deliveries = append(deliveries, w.toEntity())
	}
	return deliveries, nil
}

// UpdateStatus 更新配送状态
func (a *DeliveryAPI) UpdateStatus(ctx context.Context, deliveryID string, status etstatus.DeliveryStatus) error {
	body := map[string]string{"status": string(status)}
	path := fmt.Sprintf("/rider/delivery/%s/status", deliveryID)
	return a.c.doJSON(ctx, "rider", http.MethodPut, path, body, nil)
}

// UpdateLocation 上报骑手位置
func (a *DeliveryAPI) UpdateLocation(ctx context.Context, deliveryID string, lat, lng float64) error {
	body := map[string]float64{"lat": lat, "lng": lng}
	path := fmt.Sprintf("/rider/delivery/%s/location", deliveryID)
	return a.c.doJSON(ctx, "rider", http.MethodPut, path, body, nil)
}

// UploadProof 上传取件/送达凭证
func (a *DeliveryAPI) UploadProof(ctx context.Context, deliveryID string, kind etdelivery.ProofKind, fileName string, payload []byte) (string, error) {
	var path string
	switch kind {
	case etdelivery.ProofPickup:
		path = fmt.Sprintf("/rider/delivery/%s/pickup-proof", deliveryID)
	case etdelivery.ProofDelivery:
		path = fmt.Sprintf("/rider/delivery/%s/delivery-proof", deliveryID)
	default:
		return "", etdelivery.ErrUnknownProofKind
	}

	var resp struct {
		FileURL string `json:"file_url"`
	}
	if err := a.c.doMultipart(ctx, "rider", path, "proof", fileName, payload, nil, &resp); err != nil {
		return "", err
	}
	return resp.FileURL, nil
}

// toEntity 线上结构转领域实体
func (w deliveryWire) toEntity() *etdelivery.Delivery {
	d := &etdelivery.Delivery{
		ID:               w.ID,
		OrderID:          w.OrderID,
		RiderID:          w.RiderID,
		Status:           etstatus.DeliveryStatus(w.Status),
		PickupAddress:    w.PickupAddress,
		DropAddress:      w.DropAddress,
		CustomerName:     w.CustomerName,
		CustomerPhone:    w.CustomerPhone,
		PickupProofURL:   w.PickupProofURL,
		DeliveryProofURL: w.DeliveryProofURL,
		AssignedAt:       parseTime(w.AssignedAt),
		UpdatedAt:        parseTime(w.UpdatedAt),
	}

	if w.Lat != 0 || w.Lng != 0 {
		d.Location = &etdelivery.Location{Lat: w.Lat, Lng: w.Lng, RecordedAt: parseTime(w.UpdatedAt)}
	}
	return d
}
