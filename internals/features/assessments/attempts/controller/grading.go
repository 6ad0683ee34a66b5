package controller

import (
	"math"

	"github.com/google/uuid"

	"talenthub_backend/internals/features/assessments/attempts/dto"
	"talenthub_backend/internals/features/assessments/attempts/model"
	quizModel "talenthub_backend/internals/features/assessments/quizzes/model"
)

type GradeResult struct {
	Score   int
	Passed  bool
	Answers []model.QuizAnswer
}

// GradeSubmission grades the submitted answers against the quiz questions.
// Answers referencing unknown question ids are dropped silently: they count
// toward neither total nor earned points and produce no answer record.
// Score is round(earned/total*100), or 0 when no valid answer was submitted.
func GradeSubmission(attemptID uuid.UUID, questions []quizModel.QuizQuestion, submitted []dto.SubmittedAnswer, passingScore int) GradeResult {
	byID := make(map[uuid.UUID]quizModel.QuizQuestion, len(questions))
	for _, q := range questions {
		byID[q.ID] = q
	}

	totalPoints := 0
	earnedPoints := 0
	answers := make([]model.QuizAnswer, 0, len(submitted))

	for _, a := range submitted {
		qid, err := uuid.Parse(a.QuestionID)
		if err != nil {
			continue
		}
		question, ok := byID[qid]
		if !ok {
			continue
		}

		totalPoints += question.Points
		isCorrect := a.SelectedAnswer == question.CorrectAnswer
		if isCorrect {
			earnedPoints += question.Points
		}

		answers = append(answers, model.QuizAnswer{
			AttemptID:      attemptID,
			QuestionID:     qid,
			SelectedAnswer: a.SelectedAnswer,
			IsCorrect:      isCorrect,
		})
	}

	score := 0
	if totalPoints > 0 {
		score = int(math.Round(float64(earnedPoints) / float64(totalPoints) * 100))
	}

	return GradeResult{
		Score:   score,
		Passed:  score >= passingScore,
		Answers: answers,
	}
}
