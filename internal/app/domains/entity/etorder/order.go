package etorder

import (
	"errors"
	"time"

	"threadly/console/internal/app/domains/entity/etstatus"
)

// 错误定义
var (
	ErrInvalidOrderID    = errors.New("order ID cannot be empty")
	ErrInvalidQuantity   = errors.New("quantity must be greater than zero")
	ErrQuantityMismatch  = errors.New("Quantity Mismatch")
	ErrInvalidStage      = errors.New("unknown production stage")
	ErrStageNotForward   = errors.New("stage can only advance one step forward")
	ErrVendorNotAssigned = errors.New("order has no assigned vendor")
)

// ProductionOrder 生产订单聚合根（领域对象）
type ProductionOrder struct {
	ID            string
	CustomerName  string
	VendorID      string
	VendorName    string
	Stage         etstatus.ProductionStage
	Quantity      int
	SizeBreakup   map[string]int // 尺码 -> 数量，合计必须等于 Quantity
	ProductType   string
	Customization string
	Deadline      time.Time
	Notes         string
	Photos        []string
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// NewProductionOrder 创建生产订单（工厂方法）
func NewProductionOrder(id, customerName, productType string, quantity int, sizeBreakup map[string]int) (*ProductionOrder, error) {
	// 业务规则校验
	if id == "" {
		return nil, ErrInvalidOrderID
	}
	if quantity <= 0 {
		return nil, ErrInvalidQuantity
	}
	if err := ValidateQuantities(quantity, sizeBreakup); err != nil {
		return nil, err
	}

	return &ProductionOrder{
		ID:           id,
		CustomerName: customerName,
		ProductType:  productType,
		Quantity:     quantity,
		SizeBreakup:  sizeBreakup,
		Stage:        etstatus.StageAssigned,
		CreatedAt:    time.Now(),
		UpdatedAt:    time.Now(),
	}, nil
}

// ValidateQuantities 校验尺码数量合计等于总数量
// 不一致时返回 ErrQuantityMismatch，调用方不得发起任何上游调用
func ValidateQuantities(total int, sizeBreakup map[string]int) error {
	if len(sizeBreakup) == 0 {
		return nil
	}

	sum := 0
	for _, n := range sizeBreakup {
		sum += n
	}
	if sum != total {
		return ErrQuantityMismatch
	}
	return nil
}

// Advance 推进生产阶段（领域行为），仅允许前进一步
func (o *ProductionOrder) Advance(to etstatus.ProductionStage) error {
	if etstatus.StageIndex(to) < 0 {
		return ErrInvalidStage
	}
	if !etstatus.CanAdvanceStage(o.Stage, to) {
		return ErrStageNotForward
	}

	o.Stage = to
	o.UpdatedAt = time.Now()
	return nil
}

// AssignVendor 指派商户（领域行为）
func (o *ProductionOrder) AssignVendor(vendorID, vendorName string) error {
	if vendorID == "" {
		return ErrVendorNotAssigned
	}

	o.VendorID = vendorID
	o.VendorName = vendorName
	o.UpdatedAt = time.Now()
	return nil
}

// StageProgress 当前阶段在流水线中的完成百分比
func (o *ProductionOrder) StageProgress() int {
	idx := etstatus.StageIndex(o.Stage)
	if idx < 0 {
		return 0
	}
	return (idx + 1) * 100 / len(etstatus.ProductionStages)
}
