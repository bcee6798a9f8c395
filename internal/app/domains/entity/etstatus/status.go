package etstatus

// DocumentStatus 证件/资质状态（封闭集合）
type DocumentStatus string

const (
	DocStatusNotSubmitted DocumentStatus = "not-submitted"
	DocStatusPending      DocumentStatus = "pending"
	DocStatusUploaded     DocumentStatus = "uploaded"
	DocStatusUnderReview  DocumentStatus = "under-review"
	DocStatusApproved     DocumentStatus = "approved"
	DocStatusRejected     DocumentStatus = "rejected"
)

// docStatusRank 状态序号，用于单向推进校验
var docStatusRank = map[DocumentStatus]int{
	DocStatusNotSubmitted: 0,
	DocStatusPending:      1,
	DocStatusUploaded:     2,
	DocStatusUnderReview:  3,
	DocStatusApproved:     4,
	DocStatusRejected:     4,
}

// Valid 判断是否为已知状态值
func (s DocumentStatus) Valid() bool {
	_, ok := docStatusRank[s]
	return ok
}

// Final 判断是否为终态（approved 不可再变更）
func (s DocumentStatus) Final() bool {
	return s == DocStatusApproved
}

// CanTransition 状态只允许单向前进
// 例外：rejected 允许重新提交，回到 pending/uploaded
func CanTransition(from, to DocumentStatus) bool {
	if !from.Valid() || !to.Valid() {
		return false
	}
	if from == to {
		return false
	}

	switch from {
	case DocStatusApproved:
		// 终态
		return false
	case DocStatusRejected:
		return to == DocStatusPending || to == DocStatusUploaded
	default:
		return docStatusRank[to] > docStatusRank[from]
	}
}

// ProductionStage 生产阶段（固定有序流水线）
type ProductionStage string

const (
	StageAssigned     ProductionStage = "assigned"
	StageAccepted     ProductionStage = "accepted"
	StageMaterialPrep ProductionStage = "material_prep"
	StagePrinting     ProductionStage = "printing"
	StageQualityCheck ProductionStage = "quality_check"
	StagePacked       ProductionStage = "packed"
)

// ProductionStages 流水线顺序
var ProductionStages = []ProductionStage{
	StageAssigned,
	StageAccepted,
	StageMaterialPrep,
	StagePrinting,
	StageQualityCheck,
	StagePacked,
}

// StageIndex 返回阶段在流水线中的下标，未知阶段返回 -1
func StageIndex(s ProductionStage) int {
	for i, stage := range ProductionStages {
		if stage == s {
			return i
		}
	}
	return -1
}

// NextStage 返回下一个阶段；已是末段或未知阶段返回 false
func NextStage(s ProductionStage) (ProductionStage, bool) {
	idx := StageIndex(s)
	if idx < 0 || idx >= len(ProductionStages)-1 {
		return "", false
	}
	return ProductionStages[idx+1], true
}

// CanAdvanceStage 阶段只允许前进一步
func CanAdvanceStage(from, to ProductionStage) bool {
	next, ok := NextStage(from)
	return ok && next == to
}

// DeliveryStatus 配送状态（固定有序流水线）
type DeliveryStatus string

const (
	DeliveryAssigned  DeliveryStatus = "assigned"
	DeliveryAccepted  DeliveryStatus = "accepted"
	DeliveryPickedUp  DeliveryStatus = "picked_up"
	DeliveryInTransit DeliveryStatus = "in_transit"
	DeliveryDelivered DeliveryStatus = "delivered"
)

// DeliveryStatuses 配送流水线顺序
var DeliveryStatuses = []DeliveryStatus{
	DeliveryAssigned,
	DeliveryAccepted,
	DeliveryPickedUp,
	DeliveryInTransit,
	DeliveryDelivered,
}

// DeliveryStatusIndex 返回配送状态下标，未知状态返回 -1
func DeliveryStatusIndex(s DeliveryStatus) int {
	for i, status := range DeliveryStatuses {
		if status == s {
			return i
		}
	}
	return -1
}

// CanAdvanceDelivery 配送状态只允许前进一步
func CanAdvanceDelivery(from, to DeliveryStatus) bool {
	fromIdx := DeliveryStatusIndex(from)
	toIdx := DeliveryStatusIndex(to)
	return fromIdx >= 0 && toIdx == fromIdx+1
}

// QuotationStatus 报价单状态
type QuotationStatus string

const (
	QuotationPending  QuotationStatus = "pending"
	QuotationApproved QuotationStatus = "approved"
	QuotationRejected QuotationStatus = "rejected"
)
