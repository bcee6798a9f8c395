package etdelivery

import (
	"errors"
	"time"

	"threadly/console/internal/app/domains/entity/etstatus"
)

// 错误定义
var (
	ErrInvalidDeliveryID = errors.New("delivery ID cannot be empty")
	ErrStatusNotForward  = errors.New("delivery status can only advance one step forward")
	ErrProofNotAllowed   = errors.New("proof cannot be attached in current status")
	ErrUnknownProofKind  = errors.New("unknown proof kind")
)

// ProofKind 配送凭证类型
type ProofKind string

const (
	ProofPickup   ProofKind = "pickup"
	ProofDelivery ProofKind = "delivery"
)

// Location 骑手位置（值对象）
type Location struct {
	Lat        float64
	Lng        float64
	RecordedAt time.Time
}

// Delivery 配送单聚合根（领域对象）
type Delivery struct {
	ID               string
	OrderID          string
	RiderID          string
	Status           etstatus.DeliveryStatus
	PickupAddress    string
	DropAddress      string
	CustomerName     string
	CustomerPhone    string
	PickupProofURL   string
	DeliveryProofURL string
	Location         *Location
	AssignedAt       time.Time
	UpdatedAt        time.Time
}

// NewDelivery 创建配送单（工厂方法）
func NewDelivery(id, orderID, riderID string) (*Delivery, error) {
	if id == "" {
		return nil, ErrInvalidDeliveryID
	}

	return &Delivery{
		ID:         id,
		OrderID:    orderID,
		RiderID:    riderID,
		Status:     etstatus.DeliveryAssigned,
		AssignedAt: time.Now(),
		UpdatedAt:  time.Now(),
	}, nil
}

// UpdateStatus 推进配送状态（领域行为），仅允许前进一步
func (d *Delivery) UpdateStatus(to etstatus.DeliveryStatus) error {
	if !etstatus.CanAdvanceDelivery(d.Status, to) {
		return ErrStatusNotForward
	}

	d.Status = to
	d.UpdatedAt = time.Now()
	return nil
}

// UpdateLocation 更新骑手位置
func (d *Delivery) UpdateLocation(lat, lng float64) {
	d.Location = &Location{
		Lat:        lat,
		Lng:        lng,
		RecordedAt: time.Now(),
	}
	d.UpdatedAt = time.Now()
}

// AttachProof 挂载配送凭证（领域行为）
// 取件凭证要求已取件，送达凭证要求已送达
func (d *Delivery) AttachProof(kind ProofKind, fileURL string) error {
	switch kind {
	case ProofPickup:
		if etstatus.DeliveryStatusIndex(d.Status) < etstatus.DeliveryStatusIndex(etstatus.DeliveryPickedUp) {
			return ErrProofNotAllowed
		}
		d.PickupProofURL = fileURL
	case ProofDelivery:
		if d.Status != etstatus.DeliveryDelivered {
			return ErrProofNotAllowed
		}
		d.DeliveryProofURL = fileURL
	default:
		return ErrUnknownProofKind
	}

	d.UpdatedAt = time.Now()
	return nil
}
