package user

import (
	"errors"
	"net/http"

	"github.com/cbda-academy/exam-api/internal/dto"
	"github.com/cbda-academy/exam-api/internal/service"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
)

type TestController struct {
	bankService   service.QuestionBankService
	resultService service.ResultService
}

func NewTestController(bankService service.QuestionBankService, resultService service.ResultService) *TestController {
	return &TestController{bankService: bankService, resultService: resultService}
}

// GetQuestions godoc
// @Summary Fetch the question sequence for a test
// @Description Returns a server-shuffled sequence; mock exams are capped at 75 questions. Correct answers are not included.
// @Tags Questions
// @Produce json
// @Param test_type path string true "Test type (chapter or mock)"
// @Param test_id path string true "Test ID"
// @Success 200 {object} dto.QuestionFetchResponse
// @Failure 404 {object} dto.ErrorResponse "Questions not found for this test"
// @Router /questions/{test_type}/{test_id} [get]
func (c *TestController) GetQuestions(ctx *gin.Context) {
	testType := ctx.Param("test_type")
	testID := ctx.Param("test_id")

	questions, err := c.bankService.Fetch(ctx.Request.Context(), testType, testID)
	if err != nil {
		if errors.Is(err, service.ErrQuestionSetNotFound) {
			ctx.JSON(http.StatusNotFound, dto.ErrorResponse{Message: "Questions not found for this test"})
			return
		}
		log.Error().Err(err).Str("test_type", testType).Str("test_id", testID).Msg("GetQuestions: service error")
		ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{Message: "Failed to load questions", Details: []string{err.Error()}})
		return
	}

	resp := dto.QuestionFetchResponse{
		Questions: toPlayQuestions(questions),
		Count:     len(questions),
	}
	ctx.JSON(http.StatusOK, resp)
}

// GetAvailableTests godoc
// @Summary List tests with an uploaded question bank
// @Tags Questions
// @Produce json
// @Success 200 {array} dto.AvailableTestDTO
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /questions/available [get]
func (c *TestController) GetAvailableTests(ctx *gin.Context) {
	tests, err := c.bankService.ListAvailable()
	if err != nil {
		log.Error().Err(err).Msg("GetAvailableTests: service error")
		ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{Message: "Failed to list available tests", Details: []string{err.Error()}})
		return
	}
	ctx.JSON(http.StatusOK, tests)
}

// GetUserResults godoc
// @Summary List a user's results, newest first
// @Tags Results
// @Produce json
// @Param user_id path string true "User ID"
// @Success 200 {array} dto.ResultDTO
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /results/user/{user_id} [get]
func (c *TestController) GetUserResults(ctx *gin.Context) {
	userID := ctx.Param("user_id")
	results, err := c.resultService.GetUserResults(userID)
	if err != nil {
		log.Error().Err(err).Str("user_id", userID).Msg("GetUserResults: service error")
		ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{Message: "Failed to retrieve results", Details: []string{err.Error()}})
		return
	}
	ctx.JSON(http.StatusOK, results)
}
