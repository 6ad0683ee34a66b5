package controller

import (
	"github.com/google/uuid"

	"talenthub_backend/internals/features/opportunities/opportunity/model"
)

// VisibleTo decides whether an opportunity record may be seen by the viewer.
// The owning recruiter always sees their own record; anyone else only sees
// published or closed ones. Callers render a denial as NotFound, never
// Forbidden, so private records do not reveal their existence.
func VisibleTo(o model.Opportunity, viewerID *uuid.UUID) bool {
	if viewerID != nil && *viewerID == o.RecruiterID {
		return true
	}
	return o.Status == model.StatusPublished || o.Status == model.StatusClosed
}

// PubliclyVisible is the status set non-owners may list.
var PubliclyVisible = []model.OpportunityStatus{model.StatusPublished, model.StatusClosed}
