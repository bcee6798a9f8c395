package view

import "threadly/console/internal/app/domains/entity/etstatus"

// StatusBadgeClass 状态徽章样式映射
// 任何状态值（包括未知值）都必须返回非空样式类
func StatusBadgeClass(status string) string {
	switch etstatus.DocumentStatus(status) {
	case etstatus.DocStatusNotSubmitted:
		return "status-badge badge-muted"
	case etstatus.DocStatusPending:
		return "status-badge badge-warning"
	case etstatus.DocStatusUploaded:
		return "status-badge badge-info"
	case etstatus.DocStatusUnderReview:
		return "status-badge badge-info"
	case etstatus.DocStatusApproved:
		return "status-badge badge-success"
	case etstatus.DocStatusRejected:
		return "status-badge badge-danger"
	}

	switch etstatus.ProductionStage(status) {
	case etstatus.StageAssigned:
		return "status-badge badge-muted"
	case etstatus.StageAccepted:
		return "status-badge badge-info"
	case etstatus.StageMaterialPrep, etstatus.StagePrinting:
		return "status-badge badge-warning"
	case etstatus.StageQualityCheck:
		return "status-badge badge-info"
	case etstatus.StagePacked:
		return "status-badge badge-success"
	}

	switch etstatus.DeliveryStatus(status) {
	case etstatus.DeliveryAssigned:
		return "status-badge badge-muted"
	case etstatus.DeliveryAccepted, etstatus.DeliveryPickedUp, etstatus.DeliveryInTransit:
		return "status-badge badge-info"
	case etstatus.DeliveryDelivered:
		return "status-badge badge-success"
	}

	// 兜底：后端新增状态时不能渲染出空样式
	return "status-badge badge-muted"
}

// ProgressBarClass 进度条样式映射
func ProgressBarClass(percent int) string {
	switch {
	case percent >= 100:
		return "progress-bar progress-complete"
	case percent >= 60:
		return "progress-bar progress-high"
	case percent >= 30:
		return "progress-bar progress-mid"
	case percent > 0:
		return "progress-bar progress-low"
	default:
		return "progress-bar progress-none"
	}
}
