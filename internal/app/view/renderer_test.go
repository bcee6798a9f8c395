package view

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"threadly/console/internal/app/domains/entity/etorder"
	"threadly/console/internal/app/domains/entity/etrider"
	"threadly/console/internal/app/domains/entity/etvendor"
)

func TestStatusBadgeClass(t *testing.T) {
	t.Run("known statuses map to classes", func(t *testing.T) {
		assert.Contains(t, StatusBadgeClass("approved"), "badge-success")
		assert.Contains(t, StatusBadgeClass("rejected"), "badge-danger")
		assert.Contains(t, StatusBadgeClass("packed"), "badge-success")
		assert.Contains(t, StatusBadgeClass("in_transit"), "badge-info")
	})

	t.Run("unknown status still yields a class", func(t *testing.T) {
		cls := StatusBadgeClass("some-future-status")
		assert.NotEmpty(t, cls)
		assert.Contains(t, cls, "status-badge")
	})
}

func TestProgressBarClass(t *testing.T) {
	assert.Contains(t, ProgressBarClass(0), "progress-none")
	assert.Contains(t, ProgressBarClass(16), "progress-low")
	assert.Contains(t, ProgressBarClass(50), "progress-mid")
	assert.Contains(t, ProgressBarClass(83), "progress-high")
	assert.Contains(t, ProgressBarClass(100), "progress-complete")
}

func TestRenderOrderTable(t *testing.T) {
	o, err := etorder.NewProductionOrder("ORD-1", "Arun <b>Sharma</b>", "t-shirt", 100, nil)
	require.NoError(t, err)
	orders := []*etorder.ProductionOrder{o}

	t.Run("empty snapshot and no-match are distinct", func(t *testing.T) {
		empty := RenderOrderTable(nil, 0)
		noMatch := RenderOrderTable(nil, 5)
		assert.Contains(t, empty, "No orders yet")
		assert.Contains(t, noMatch, "No orders match your filters")
		assert.NotEqual(t, empty, noMatch)
	})

	t.Run("rows escape user content", func(t *testing.T) {
		html := RenderOrderTable(orders, 1)
		assert.Contains(t, html, "ORD-1")
		assert.NotContains(t, html, "<b>Sharma</b>")
		assert.Contains(t, html, "&lt;b&gt;Sharma&lt;/b&gt;")
	})

	t.Run("idempotent byte-identical output", func(t *testing.T) {
		first := RenderOrderTable(orders, 1)
		second := RenderOrderTable(orders, 1)
		assert.Equal(t, first, second)
	})
}

func TestRenderVendorCards(t *testing.T) {
	v, err := etvendor.NewVendor("VEN-1", "Arun", "arun@example.com")
	require.NoError(t, err)
	v.BusinessName = "Sharma Apparels"
	require.NoError(t, v.AttachDocument(etvendor.DocTypeGST, "gst.pdf", "http://files/gst.pdf", nil))
	require.NoError(t, v.AttachDocument(etvendor.DocTypePAN, "pan.pdf", "http://files/pan.pdf", nil))
	vendors := []*etvendor.Vendor{v}

	t.Run("states", func(t *testing.T) {
		assert.Contains(t, RenderVendorCards(nil, 0), "No vendors yet")
		assert.Contains(t, RenderVendorCards(nil, 3), "No vendors match your filters")
	})

	t.Run("documents render in stable order", func(t *testing.T) {
		html := RenderVendorCards(vendors, 1)
		assert.Contains(t, html, "Sharma Apparels")
		gstPos := strings.Index(html, "gst_certificate")
		panPos := strings.Index(html, "pan_card")
		require.GreaterOrEqual(t, gstPos, 0)
		require.GreaterOrEqual(t, panPos, 0)
		assert.Less(t, gstPos, panPos)
	})

	t.Run("idempotent", func(t *testing.T) {
		assert.Equal(t, RenderVendorCards(vendors, 1), RenderVendorCards(vendors, 1))
	})
}

func TestRenderRiderRows(t *testing.T) {
	r, err := etrider.NewRider("RDR-1", "Ravi", "9876543210")
	require.NoError(t, err)
	r.VehiclePlate = "KA-01-AB-1234"
	riders := []*etrider.Rider{r}

	assert.Contains(t, RenderRiderRows(nil, 0), "No riders yet")
	assert.Contains(t, RenderRiderRows(nil, 2), "No riders match your filters")

	html := RenderRiderRows(riders, 1)
	assert.Contains(t, html, "Ravi")
	assert.Contains(t, html, "KA-01-AB-1234")
	assert.Equal(t, html, RenderRiderRows(riders, 1))
}
