package controller

import (
	"github.com/gofiber/fiber/v2"

	"talenthub_backend/internals/features/applications/application/model"
)

// CheckWithdrawal is the candidate-side state machine: withdrawal is allowed
// only from pending, reviewing or shortlisted. withdrawn is terminal.
// Recruiter-driven status updates deliberately have no such table.
func CheckWithdrawal(current model.ApplicationStatus) error {
	switch current {
	case model.StatusPending, model.StatusReviewing, model.StatusShortlisted:
		return nil
	case model.StatusWithdrawn:
		return fiber.NewError(fiber.StatusBadRequest, "Application is already withdrawn")
	case model.StatusAccepted, model.StatusRejected:
		return fiber.NewError(fiber.StatusBadRequest, "Cannot withdraw an accepted or rejected application")
	default:
		return fiber.NewError(fiber.StatusBadRequest, "Cannot withdraw an accepted or rejected application")
	}
}
