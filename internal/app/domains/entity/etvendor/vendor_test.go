package etvendor

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"threadly/console/internal/app/domains/entity/etstatus"
)

func newVendor(t *testing.T) *Vendor {
	v, err := NewVendor("VEN-1", "Arun", "arun@example.com")
	require.NoError(t, err)
	return v
}

func attachAll(t *testing.T, v *Vendor) {
	for _, dt := range RequiredDocTypes {
		require.NoError(t, v.AttachDocument(dt, "doc.pdf", "http://files/doc.pdf", nil))
	}
}

func TestAttachDocument(t *testing.T) {
	t.Run("upload sets uploaded status", func(t *testing.T) {
		v := newVendor(t)
		require.NoError(t, v.AttachDocument(DocTypeGST, "gst.pdf", "http://files/gst.pdf", map[string]string{"gst_number": "29X"}))
		doc := v.Documents[DocTypeGST]
		require.NotNil(t, doc)
		assert.Equal(t, etstatus.DocStatusUploaded, doc.Status)
	})

	t.Run("unknown doc type rejected", func(t *testing.T) {
		v := newVendor(t)
		assert.ErrorIs(t, v.AttachDocument(DocType("passport"), "x", "x", nil), ErrUnknownDocType)
	})

	t.Run("rejected document can be re-uploaded", func(t *testing.T) {
		v := newVendor(t)
		require.NoError(t, v.AttachDocument(DocTypePAN, "pan.pdf", "http://files/pan.pdf", nil))
		require.NoError(t, v.ReviewDocument(DocTypePAN, false, "blurred"))
		require.NoError(t, v.AttachDocument(DocTypePAN, "pan2.pdf", "http://files/pan2.pdf", nil))
		assert.Equal(t, etstatus.DocStatusUploaded, v.Documents[DocTypePAN].Status)
	})

	t.Run("approved document is frozen", func(t *testing.T) {
		v := newVendor(t)
		require.NoError(t, v.AttachDocument(DocTypePAN, "pan.pdf", "http://files/pan.pdf", nil))
		require.NoError(t, v.ReviewDocument(DocTypePAN, true, ""))
		assert.ErrorIs(t, v.AttachDocument(DocTypePAN, "pan2.pdf", "http://files/pan2.pdf", nil), ErrDocumentFinalized)
	})
}

func TestClearDocumentFile(t *testing.T) {
	v := newVendor(t)
	require.NoError(t, v.AttachDocument(DocTypeGST, "gst.pdf", "http://files/gst.pdf", nil))
	require.NoError(t, v.ClearDocumentFile(DocTypeGST))

	// 记录保留，仅文件引用被移除
	doc := v.Documents[DocTypeGST]
	require.NotNil(t, doc)
	assert.Empty(t, doc.FileURL)
	assert.Empty(t, doc.FileName)
	assert.Equal(t, etstatus.DocStatusPending, doc.Status)
}

func TestSubmitForReview(t *testing.T) {
	t.Run("missing documents rejected", func(t *testing.T) {
		v := newVendor(t)
		require.NoError(t, v.AttachDocument(DocTypeGST, "gst.pdf", "http://files/gst.pdf", nil))
		assert.ErrorIs(t, v.SubmitForReview(), ErrMissingDocuments)
	})

	t.Run("all documents uploaded allows submission", func(t *testing.T) {
		v := newVendor(t)
		attachAll(t, v)
		require.NoError(t, v.SubmitForReview())
		assert.Equal(t, etstatus.DocStatusUnderReview, v.Status)
		assert.False(t, v.SubmittedAt.IsZero())
	})

	t.Run("cleared file blocks submission", func(t *testing.T) {
		v := newVendor(t)
		attachAll(t, v)
		require.NoError(t, v.ClearDocumentFile(DocTypeBankProof))
		assert.ErrorIs(t, v.SubmitForReview(), ErrMissingDocuments)
	})
}

func TestReviewDocument(t *testing.T) {
	v := newVendor(t)
	attachAll(t, v)

	require.NoError(t, v.ReviewDocument(DocTypeGST, true, ""))
	assert.Equal(t, etstatus.DocStatusApproved, v.Documents[DocTypeGST].Status)

	require.NoError(t, v.ReviewDocument(DocTypePAN, false, "blurred scan"))
	assert.Equal(t, etstatus.DocStatusRejected, v.Documents[DocTypePAN].Status)
	assert.Equal(t, "blurred scan", v.Documents[DocTypePAN].AdminRemarks)

	// 已通过的证件不可再驳回
	assert.ErrorIs(t, v.ReviewDocument(DocTypeGST, false, "late"), ErrInvalidTransition)
}

func TestCanReviewDocumentDoesNotMutate(t *testing.T) {
	v := newVendor(t)
	attachAll(t, v)

	require.NoError(t, v.CanReviewDocument(DocTypeGST, true))
	assert.Equal(t, etstatus.DocStatusUploaded, v.Documents[DocTypeGST].Status)

	assert.ErrorIs(t, v.CanReviewDocument(DocType("passport"), true), ErrUnknownDocType)

	require.NoError(t, v.ReviewDocument(DocTypeGST, true, ""))
	assert.ErrorIs(t, v.CanReviewDocument(DocTypeGST, false), ErrInvalidTransition)
	assert.Equal(t, etstatus.DocStatusApproved, v.Documents[DocTypeGST].Status)
}

func TestAllDocumentsApproved(t *testing.T) {
	v := newVendor(t)
	attachAll(t, v)
	assert.False(t, v.AllDocumentsApproved())

	for _, dt := range RequiredDocTypes {
		require.NoError(t, v.ReviewDocument(dt, true, ""))
	}
	assert.True(t, v.AllDocumentsApproved())
}
