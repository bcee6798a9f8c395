package etquote

import (
	"errors"
	"time"

	"github.com/shopspring/decimal"

	"threadly/console/internal/app/domains/entity/etstatus"
)

// 错误定义
var (
	ErrInvalidQuotationID    = errors.New("quotation ID cannot be empty")
	ErrInvalidAmount         = errors.New("quotation amount must be positive")
	ErrInvalidCommissionRate = errors.New("Invalid commission rate")
	ErrAlreadyDecided        = errors.New("quotation has already been decided")
)

// Quotation 商户报价单（领域对象）
type Quotation struct {
	ID             string
	OrderID        string
	VendorID       string
	VendorName     string
	Amount         decimal.Decimal
	CommissionRate decimal.Decimal // 百分比，0-100
	Status         etstatus.QuotationStatus
	Remarks        string
	SubmittedAt    time.Time
	DecidedAt      time.Time
}

// NewQuotation 创建报价单（工厂方法）
func NewQuotation(id, orderID, vendorID string, amount, commissionRate decimal.Decimal) (*Quotation, error) {
	if id == "" {
		return nil, ErrInvalidQuotationID
	}
	if amount.LessThanOrEqual(decimal.Zero) {
		return nil, ErrInvalidAmount
	}
	if err := ValidateCommissionRate(commissionRate); err != nil {
		return nil, err
	}

	return &Quotation{
		ID:             id,
		OrderID:        orderID,
		VendorID:       vendorID,
		Amount:         amount,
		CommissionRate: commissionRate,
		Status:         etstatus.QuotationPending,
		SubmittedAt:    time.Now(),
	}, nil
}

// ValidateCommissionRate 校验佣金比例在 0-100 之间
func ValidateCommissionRate(rate decimal.Decimal) error {
	if rate.IsNegative() || rate.GreaterThan(decimal.NewFromInt(100)) {
		return ErrInvalidCommissionRate
	}
	return nil
}

// Approve 批准报价（领域行为）
func (q *Quotation) Approve() error {
	if q.Status != etstatus.QuotationPending {
		return ErrAlreadyDecided
	}

	q.Status = etstatus.QuotationApproved
	q.DecidedAt = time.Now()
	return nil
}

// Reject 驳回报价（领域行为）
func (q *Quotation) Reject(remarks string) error {
	if q.Status != etstatus.QuotationPending {
		return ErrAlreadyDecided
	}

	q.Status = etstatus.QuotationRejected
	q.Remarks = remarks
	q.DecidedAt = time.Now()
	return nil
}
