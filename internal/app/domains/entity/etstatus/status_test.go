package etstatus

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCanTransition(t *testing.T) {
	t.Run("forward transitions allowed", func(t *testing.T) {
		assert.True(t, CanTransition(DocStatusNotSubmitted, DocStatusPending))
		assert.True(t, CanTransition(DocStatusPending, DocStatusUploaded))
		assert.True(t, CanTransition(DocStatusUploaded, DocStatusUnderReview))
		assert.True(t, CanTransition(DocStatusUnderReview, DocStatusApproved))
		assert.True(t, CanTransition(DocStatusUnderReview, DocStatusRejected))
	})

	t.Run("backward transitions rejected", func(t *testing.T) {
		assert.False(t, CanTransition(DocStatusUploaded, DocStatusPending))
		assert.False(t, CanTransition(DocStatusUnderReview, DocStatusUploaded))
		assert.False(t, CanTransition(DocStatusPending, DocStatusNotSubmitted))
	})

	t.Run("approved is final", func(t *testing.T) {
		assert.False(t, CanTransition(DocStatusApproved, DocStatusPending))
		assert.False(t, CanTransition(DocStatusApproved, DocStatusRejected))
		assert.False(t, CanTransition(DocStatusApproved, DocStatusUnderReview))
	})

	t.Run("rejected allows resubmission", func(t *testing.T) {
		assert.True(t, CanTransition(DocStatusRejected, DocStatusPending))
		assert.True(t, CanTransition(DocStatusRejected, DocStatusUploaded))
		assert.False(t, CanTransition(DocStatusRejected, DocStatusApproved))
	})

	t.Run("unknown status rejected", func(t *testing.T) {
		assert.False(t, CanTransition(DocumentStatus("bogus"), DocStatusPending))
		assert.False(t, CanTransition(DocStatusPending, DocumentStatus("bogus")))
	})
}

func TestCanAdvanceStage(t *testing.T) {
	t.Run("single step forward allowed", func(t *testing.T) {
		for i := 0; i < len(ProductionStages)-1; i++ {
			assert.True(t, CanAdvanceStage(ProductionStages[i], ProductionStages[i+1]),
				"%s -> %s", ProductionStages[i], ProductionStages[i+1])
		}
	})

	t.Run("skipping stages rejected", func(t *testing.T) {
		assert.False(t, CanAdvanceStage(StageAssigned, StageMaterialPrep))
		assert.False(t, CanAdvanceStage(StageAccepted, StagePacked))
	})

	t.Run("backward rejected", func(t *testing.T) {
		assert.False(t, CanAdvanceStage(StagePrinting, StageAccepted))
		assert.False(t, CanAdvanceStage(StagePacked, StageQualityCheck))
	})

	t.Run("unknown stage rejected", func(t *testing.T) {
		assert.False(t, CanAdvanceStage(ProductionStage("bogus"), StageAccepted))
	})
}

func TestNextStage(t *testing.T) {
	next, ok := NextStage(StageAssigned)
	assert.True(t, ok)
	assert.Equal(t, StageAccepted, next)

	_, ok = NextStage(StagePacked)
	assert.False(t, ok)

	_, ok = NextStage(ProductionStage("bogus"))
	assert.False(t, ok)
}

func TestCanAdvanceDelivery(t *testing.T) {
	t.Run("single step forward allowed", func(t *testing.T) {
		for i := 0; i < len(DeliveryStatuses)-1; i++ {
			assert.True(t, CanAdvanceDelivery(DeliveryStatuses[i], DeliveryStatuses[i+1]))
		}
	})

	t.Run("skip and backward rejected", func(t *testing.T) {
		assert.False(t, CanAdvanceDelivery(DeliveryAssigned, DeliveryPickedUp))
		assert.False(t, CanAdvanceDelivery(DeliveryDelivered, DeliveryInTransit))
	})
}
