package controller

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"

	"talenthub_backend/internals/features/opportunities/opportunity/model"
)

func TestVisibleTo(t *testing.T) {
	owner := uuid.New()
	stranger := uuid.New()

	opp := func(status model.OpportunityStatus) model.Opportunity {
		return model.Opportunity{RecruiterID: owner, Status: status}
	}

	tests := []struct {
		name    string
		status  model.OpportunityStatus
		viewer  *uuid.UUID
		visible bool
	}{
		{name: "anonymous sees published", status: model.StatusPublished, viewer: nil, visible: true},
		{name: "anonymous sees closed", status: model.StatusClosed, viewer: nil, visible: true},
		{name: "anonymous cannot see draft", status: model.StatusDraft, viewer: nil, visible: false},
		{name: "anonymous cannot see archived", status: model.StatusArchived, viewer: nil, visible: false},
		{name: "stranger cannot see draft", status: model.StatusDraft, viewer: &stranger, visible: false},
		{name: "stranger cannot see archived", status: model.StatusArchived, viewer: &stranger, visible: false},
		{name: "stranger sees published", status: model.StatusPublished, viewer: &stranger, visible: true},
		{name: "owner sees own draft", status: model.StatusDraft, viewer: &owner, visible: true},
		{name: "owner sees own archived", status: model.StatusArchived, viewer: &owner, visible: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.visible, VisibleTo(opp(tt.status), tt.viewer))
		})
	}
}

func TestSortClause(t *testing.T) {
	assert.Equal(t, "created_at DESC", SortClause("createdAt"))
	assert.Equal(t, "deadline ASC", SortClause("deadline"))
	assert.Equal(t, "updated_at DESC", SortClause("updatedAt"))

	// unknown or empty keys fall back to the default, never pass through
	assert.Equal(t, "created_at DESC", SortClause(""))
	assert.Equal(t, "created_at DESC", SortClause("salary; DROP TABLE opportunities"))
}

func TestStatusPubliclyVisible(t *testing.T) {
	assert.True(t, statusPubliclyVisible(model.StatusPublished))
	assert.True(t, statusPubliclyVisible(model.StatusClosed))
	assert.False(t, statusPubliclyVisible(model.StatusDraft))
	assert.False(t, statusPubliclyVisible(model.StatusArchived))
}
