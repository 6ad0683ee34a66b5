package controller

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"talenthub_backend/internals/features/assessments/attempts/dto"
	quizModel "talenthub_backend/internals/features/assessments/quizzes/model"
)

func twoQuestionQuiz() (q1, q2 quizModel.QuizQuestion) {
	q1 = quizModel.QuizQuestion{ID: uuid.New(), CorrectAnswer: "a", Points: 1}
	q2 = quizModel.QuizQuestion{ID: uuid.New(), CorrectAnswer: "b", Points: 1}
	return
}

func TestGradeSubmission_HalfCorrect(t *testing.T) {
	attemptID := uuid.New()
	q1, q2 := twoQuestionQuiz()

	result := GradeSubmission(attemptID, []quizModel.QuizQuestion{q1, q2}, []dto.SubmittedAnswer{
		{QuestionID: q1.ID.String(), SelectedAnswer: "a"},
		{QuestionID: q2.ID.String(), SelectedAnswer: "wrong"},
	}, 70)

	assert.Equal(t, 50, result.Score)
	assert.False(t, result.Passed)
	require.Len(t, result.Answers, 2)
	assert.True(t, result.Answers[0].IsCorrect)
	assert.False(t, result.Answers[1].IsCorrect)
	assert.Equal(t, attemptID, result.Answers[0].AttemptID)
}

func TestGradeSubmission_AllCorrect(t *testing.T) {
	q1, q2 := twoQuestionQuiz()

	result := GradeSubmission(uuid.New(), []quizModel.QuizQuestion{q1, q2}, []dto.SubmittedAnswer{
		{QuestionID: q1.ID.String(), SelectedAnswer: "a"},
		{QuestionID: q2.ID.String(), SelectedAnswer: "b"},
	}, 70)

	assert.Equal(t, 100, result.Score)
	assert.True(t, result.Passed)
}

func TestGradeSubmission_NoValidQuestions(t *testing.T) {
	q1, q2 := twoQuestionQuiz()

	// only unknown question ids: zero total, score 0, no answer rows
	result := GradeSubmission(uuid.New(), []quizModel.QuizQuestion{q1, q2}, []dto.SubmittedAnswer{
		{QuestionID: uuid.New().String(), SelectedAnswer: "a"},
	}, 70)

	assert.Equal(t, 0, result.Score)
	assert.False(t, result.Passed)
	assert.Empty(t, result.Answers)
}

func TestGradeSubmission_UnknownIDsDroppedSilently(t *testing.T) {
	q1, q2 := twoQuestionQuiz()

	// one valid correct answer plus one unknown id: unknown contributes to
	// neither total nor earned points
	result := GradeSubmission(uuid.New(), []quizModel.QuizQuestion{q1, q2}, []dto.SubmittedAnswer{
		{QuestionID: q1.ID.String(), SelectedAnswer: "a"},
		{QuestionID: uuid.New().String(), SelectedAnswer: "b"},
	}, 70)

	assert.Equal(t, 100, result.Score)
	assert.True(t, result.Passed)
	assert.Len(t, result.Answers, 1)
}

func TestGradeSubmission_WeightedPointsAndRounding(t *testing.T) {
	q1 := quizModel.QuizQuestion{ID: uuid.New(), CorrectAnswer: "a", Points: 2}
	q2 := quizModel.QuizQuestion{ID: uuid.New(), CorrectAnswer: "b", Points: 1}

	// 2 of 3 points → 66.67 → rounds to 67
	result := GradeSubmission(uuid.New(), []quizModel.QuizQuestion{q1, q2}, []dto.SubmittedAnswer{
		{QuestionID: q1.ID.String(), SelectedAnswer: "a"},
		{QuestionID: q2.ID.String(), SelectedAnswer: "nope"},
	}, 67)

	assert.Equal(t, 67, result.Score)
	assert.True(t, result.Passed)
}

func TestGradeSubmission_PassBoundary(t *testing.T) {
	q1, _ := twoQuestionQuiz()

	result := GradeSubmission(uuid.New(), []quizModel.QuizQuestion{q1}, []dto.SubmittedAnswer{
		{QuestionID: q1.ID.String(), SelectedAnswer: "a"},
	}, 100)

	// passing score is inclusive
	assert.Equal(t, 100, result.Score)
	assert.True(t, result.Passed)
}

func TestGradeSubmission_MalformedQuestionID(t *testing.T) {
	q1, _ := twoQuestionQuiz()

	result := GradeSubmission(uuid.New(), []quizModel.QuizQuestion{q1}, []dto.SubmittedAnswer{
		{QuestionID: "not-a-uuid", SelectedAnswer: "a"},
	}, 50)

	assert.Equal(t, 0, result.Score)
	assert.Empty(t, result.Answers)
}
