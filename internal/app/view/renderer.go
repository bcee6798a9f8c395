package view

import (
	"fmt"
	"html"
	"strings"

	"threadly/console/internal/app/domains/entity/etorder"
	"threadly/console/internal/app/domains/entity/etrider"
	"threadly/console/internal/app/domains/entity/etvendor"
)

// 渲染器：把快照数据渲染成 HTML 片段
// 渲染是纯函数，同一输入多次调用输出字节级一致
// 三态约定：加载中 / 空数据 / 过滤后无匹配，文案互不相同

// RenderLoading 加载占位
func RenderLoading(noun string) string {
	return fmt.Sprintf(`<div class="loading-state">Loading %s...</div>`, html.EscapeString(noun))
}

func renderEmpty(noun string) string {
	return fmt.Sprintf(`<div class="empty-state">No %s yet</div>`, html.EscapeString(noun))
}

func renderNoMatch(noun string) string {
	return fmt.Sprintf(`<div class="empty-state">No %s match your filters</div>`, html.EscapeString(noun))
}

// RenderOrderTable 生产订单表格
// orders 为过滤后的结果，total 为过滤前快照条数，用于区分空数据与无匹配
func RenderOrderTable(orders []*etorder.ProductionOrder, total int) string {
	if total == 0 {
		return renderEmpty("orders")
	}
	if len(orders) == 0 {
		return renderNoMatch("orders")
	}

	var b strings.Builder
	b.WriteString(`<table class="order-table"><thead><tr>`)
	b.WriteString(`<th>Order</th><th>Product</th><th>Qty</th><th>Vendor</th><th>Stage</th><th>Progress</th>`)
	b.WriteString(`</tr></thead><tbody>`)
	for _, o := range orders {
		progress := o.StageProgress()
		b.WriteString(`<tr>`)
		fmt.Fprintf(&b, `<td>%s</td>`, html.EscapeString(o.ID))
		fmt.Fprintf(&b, `<td>%s</td>`, html.EscapeString(o.ProductType))
		fmt.Fprintf(&b, `<td>%d</td>`, o.Quantity)
		fmt.Fprintf(&b, `<td>%s</td>`, html.EscapeString(o.VendorName))
		fmt.Fprintf(&b, `<td><span class="%s">%s</span></td>`, StatusBadgeClass(string(o.Stage)), html.EscapeString(string(o.Stage)))
		fmt.Fprintf(&b, `<td><div class="%s" style="width:%d%%"></div></td>`, ProgressBarClass(progress), progress)
		b.WriteString(`</tr>`)
	}
	b.WriteString(`</tbody></table>`)
	return b.String()
}

// RenderVendorCards 供应商卡片列表
func RenderVendorCards(vendors []*etvendor.Vendor, total int) string {
	if total == 0 {
		return renderEmpty("vendors")
	}
	if len(vendors) == 0 {
		return renderNoMatch("vendors")
	}

	var b strings.Builder
	b.WriteString(`<div class="vendor-grid">`)
	for _, v := range vendors {
		b.WriteString(`<div class="vendor-card">`)
		fmt.Fprintf(&b, `<h3>%s</h3>`, html.EscapeString(v.BusinessName))
		fmt.Fprintf(&b, `<p class="vendor-contact">%s · %s</p>`, html.EscapeString(v.Name), html.EscapeString(v.Email))
		fmt.Fprintf(&b, `<span class="%s">%s</span>`, StatusBadgeClass(string(v.Status)), html.EscapeString(string(v.Status)))
		b.WriteString(`<ul class="doc-list">`)
		// 按固定证件顺序输出，保证同一输入渲染结果字节一致
		for _, dt := range etvendor.RequiredDocTypes {
			d, ok := v.Documents[dt]
			if !ok {
				continue
			}
			fmt.Fprintf(&b, `<li>%s <span class="%s">%s</span></li>`,
				html.EscapeString(string(dt)), StatusBadgeClass(string(d.Status)), html.EscapeString(string(d.Status)))
		}
		b.WriteString(`</ul></div>`)
	}
	b.WriteString(`</div>`)
	return b.String()
}

// RenderRiderRows 骑手列表
func RenderRiderRows(riders []*etrider.Rider, total int) string {
	if total == 0 {
		return renderEmpty("riders")
	}
	if len(riders) == 0 {
		return renderNoMatch("riders")
	}

	var b strings.Builder
	b.WriteString(`<table class="rider-table"><thead><tr>`)
	b.WriteString(`<th>Name</th><th>Phone</th><th>Vehicle</th><th>Status</th>`)
	b.WriteString(`</tr></thead><tbody>`)
	for _, r := range riders {
		b.WriteString(`<tr>`)
		fmt.Fprintf(&b, `<td>%s</td>`, html.EscapeString(r.Name))
		fmt.Fprintf(&b, `<td>%s</td>`, html.EscapeString(r.Phone))
		fmt.Fprintf(&b, `<td>%s</td>`, html.EscapeString(r.VehiclePlate))
		fmt.Fprintf(&b, `<td><span class="%s">%s</span></td>`, StatusBadgeClass(string(r.Status)), html.EscapeString(string(r.Status)))
		b.WriteString(`</tr>`)
	}
	b.WriteString(`</tbody></table>`)
	return b.String()
}
