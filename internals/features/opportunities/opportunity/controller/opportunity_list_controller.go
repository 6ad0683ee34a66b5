package controller

import (
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"talenthub_backend/internals/features/opportunities/opportunity/dto"
	"talenthub_backend/internals/features/opportunities/opportunity/model"
	helper "talenthub_backend/internals/helpers"
)

// Sort keys the public list accepts; anything else falls back to the default.
var opportunitySortClauses = map[string]string{
	"createdAt": "created_at DESC",
	"deadline":  "deadline ASC",
	"updatedAt": "updated_at DESC",
}

// SortClause resolves a sort key to an ORDER BY clause from the whitelist.
func SortClause(sortBy string) string {
	if clause, ok := opportunitySortClauses[sortBy]; ok {
		return clause
	}
	return opportunitySortClauses["createdAt"]
}

// =============================
// List (public) — published/closed only, search + filters
// =============================
func (ctrl *OpportunityController) ListOpportunities(c *fiber.Ctx) error {
	paging := helper.ResolvePaging(c, 10, helper.MaxLimit)

	query := ctrl.DB.Model(&model.Opportunity{}).
		Where("status IN ?", PubliclyVisible)

	if search := strings.TrimSpace(c.Query("search")); search != "" {
		pattern := "%" + search + "%"
		query = query.Where("title ILIKE ? OR description ILIKE ?", pattern, pattern)
	}
	if category := c.Query("category"); category != "" {
		query = query.Where("category = ?", category)
	}
	if typ := c.Query("type"); typ != "" {
		query = query.Where("type = ?", typ)
	}
	if mode := c.Query("mode"); mode != "" {
		query = query.Where("mode = ?", mode)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to count opportunities")
	}

	var opportunities []model.Opportunity
	if err := query.
		Order(SortClause(c.Query("sort_by"))).
		Limit(paging.Limit).
		Offset(paging.Offset).
		Find(&opportunities).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to fetch opportunities")
	}

	items := dto.ToOpportunityDTOs(opportunities)
	return helper.JsonList(c, "",
		fiber.Map{"opportunities": items, "total": total},
		helper.BuildPagination(total, paging, len(items)),
	)
}

// =============================
// List by recruiter (authenticated) — owners see every status
// =============================
func (ctrl *OpportunityController) ListOpportunitiesByRecruiter(c *fiber.Ctx) error {
	viewerID, err := helper.GetUserUUID(c)
	if err != nil {
		return err
	}

	recruiterID, err := uuid.Parse(c.Params("recruiter_id"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid recruiter id")
	}

	paging := helper.ResolvePaging(c, 10, helper.MaxLimit)
	status := c.Query("status")

	query, empty := scopeRecruiterListing(ctrl.DB, recruiterID, viewerID, status)
	if empty {
		// non-owner asking for draft/archived: empty set, not an error
		return helper.JsonList(c, "",
			fiber.Map{"opportunities": []dto.OpportunityDTO{}, "total": int64(0)},
			helper.BuildPagination(0, paging, 0),
		)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to count opportunities")
	}

	var opportunities []model.Opportunity
	if err := query.
		Order("created_at DESC").
		Limit(paging.Limit).
		Offset(paging.Offset).
		Find(&opportunities).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to fetch opportunities")
	}

	items := dto.ToOpportunityDTOs(opportunities)
	return helper.JsonList(c, "",
		fiber.Map{"opportunities": items, "total": total},
		helper.BuildPagination(total, paging, len(items)),
	)
}

// scopeRecruiterListing applies the owner/non-owner visibility rules. The
// second return value short-circuits to an empty result set when a non-owner
// asks for a status they may never see.
func scopeRecruiterListing(db *gorm.DB, recruiterID, viewerID uuid.UUID, status string) (*gorm.DB, bool) {
	query := db.Model(&model.Opportunity{}).Where("recruiter_id = ?", recruiterID)

	isOwner := viewerID == recruiterID
	if isOwner {
		if status != "" {
			query = query.Where("status = ?", status)
		}
		return query, false
	}

	if status != "" {
		if !statusPubliclyVisible(model.OpportunityStatus(status)) {
			return nil, true
		}
		return query.Where("status = ?", status), false
	}
	return query.Where("status IN ?", PubliclyVisible), false
}

func statusPubliclyVisible(s model.OpportunityStatus) bool {
	for _, v := range PubliclyVisible {
		if s == v {
			return true
		}
	}
	return false
}
