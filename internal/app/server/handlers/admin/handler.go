package admin

import (
	"threadly/console/internal/app/domains/services/svproduction"
	"threadly/console/internal/app/domains/services/svquotation"
	"threadly/console/internal/app/domains/services/svverification"
)

// AdminHandler 管理控制台 HTTP 处理器
type AdminHandler struct {
	verification *svverification.VerificationService
	production   *svproduction.ProductionService
	quotation    *svquotation.QuotationService
}

// NewAdminHandler 创建管理控制台处理器实例
func NewAdminHandler(
	verification *svverification.VerificationService,
	production *svproduction.ProductionService,
	quotation *svquotation.QuotationService,
) *AdminHandler {
	return &AdminHandler{
		verification: verification,
		production:   production,
		quotation:    quotation,
	}
}
