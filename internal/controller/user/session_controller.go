package user

import (
	"errors"
	"net/http"

	"github.com/cbda-academy/exam-api/internal/dto"
	"github.com/cbda-academy/exam-api/internal/session"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
)

type SessionController struct {
	manager *session.Manager
}

func NewSessionController(manager *session.Manager) *SessionController {
	return &SessionController{manager: manager}
}

// StartSession godoc
// @Summary Start a timed test attempt
// @Description Loads the question sequence for the chosen test and starts the countdown (mock: 120 min, chapter: 60 min).
// @Tags Sessions
// @Accept json
// @Produce json
// @Param request body dto.StartSessionRequest true "Test selection and user identity"
// @Success 201 {object} dto.SessionResponse
// @Failure 400 {object} dto.ErrorResponse "Invalid request body"
// @Failure 404 {object} dto.ErrorResponse "No questions available for this test"
// @Router /sessions [post]
func (c *SessionController) StartSession(ctx *gin.Context) {
	var req dto.StartSessionRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: "Invalid request body", Details: []string{err.Error()}})
		return
	}

	test := session.TestRef{Type: req.TestType, ID: req.TestID, Name: req.TestName}
	user := session.Identity{ID: req.UserID, Name: req.UserName, Email: req.UserEmail}

	s, err := c.manager.Start(ctx.Request.Context(), test, user)
	if err != nil {
		if errors.Is(err, session.ErrNoQuestionsAvailable) {
			ctx.JSON(http.StatusNotFound, dto.ErrorResponse{Message: "No questions available for this test. Please contact the administrator."})
			return
		}
		log.Error().Err(err).Str("test_type", req.TestType).Str("test_id", req.TestID).Msg("StartSession: service error")
		ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{Message: "Error loading test. Please try again.", Details: []string{err.Error()}})
		return
	}
	ctx.JSON(http.StatusCreated, toSessionResponse(s.Snapshot()))
}

// GetSession godoc
// @Summary Get the current state of a session
// @Tags Sessions
// @Produce json
// @Param session_id path string true "Session ID"
// @Success 200 {object} dto.SessionResponse
// @Failure 404 {object} dto.ErrorResponse "Session not found"
// @Router /sessions/{session_id} [get]
func (c *SessionController) GetSession(ctx *gin.Context) {
	s, err := c.manager.Get(ctx.Param("session_id"))
	if err != nil {
		ctx.JSON(http.StatusNotFound, dto.ErrorResponse{Message: "Session not found"})
		return
	}
	ctx.JSON(http.StatusOK, toSessionResponse(s.Snapshot()))
}

// RecordAnswer godoc
// @Summary Record an answer for one question
// @Description Overwrites any prior answer for the question. Only valid while the session is in progress.
// @Tags Sessions
// @Accept json
// @Produce json
// @Param session_id path string true "Session ID"
// @Param answer body dto.RecordAnswerRequest true "Question and chosen option"
// @Success 200 {object} dto.SessionResponse
// @Failure 400 {object} dto.ErrorResponse "Invalid answer or question not in this session"
// @Failure 404 {object} dto.ErrorResponse "Session not found"
// @Failure 409 {object} dto.ErrorResponse "Session already completed"
// @Router /sessions/{session_id}/answers [put]
func (c *SessionController) RecordAnswer(ctx *gin.Context) {
	s, err := c.manager.Get(ctx.Param("session_id"))
	if err != nil {
		ctx.JSON(http.StatusNotFound, dto.ErrorResponse{Message: "Session not found"})
		return
	}

	var req dto.RecordAnswerRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: "Invalid request body", Details: []string{err.Error()}})
		return
	}

	err = s.RecordAnswer(req.QuestionID, *req.OptionIndex)
	switch {
	case err == nil:
		ctx.JSON(http.StatusOK, toSessionResponse(s.Snapshot()))
	case errors.Is(err, session.ErrSessionNotActive):
		ctx.JSON(http.StatusConflict, dto.ErrorResponse{Message: "Session is not in progress"})
	case errors.Is(err, session.ErrUnknownQuestion):
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: "Question does not belong to this session"})
	default:
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: err.Error()})
	}
}

// Navigate godoc
// @Summary Move the current-question pointer
// @Description "advance" steps by ±1 and clamps at the ends; "jump" goes to an index and ignores out-of-range values.
// @Tags Sessions
// @Accept json
// @Produce json
// @Param session_id path string true "Session ID"
// @Param navigation body dto.NavigateRequest true "Navigation action"
// @Success 200 {object} dto.SessionResponse
// @Failure 400 {object} dto.ErrorResponse "Invalid request body"
// @Failure 404 {object} dto.ErrorResponse "Session not found"
// @Router /sessions/{session_id}/navigate [post]
func (c *SessionController) Navigate(ctx *gin.Context) {
	s, err := c.manager.Get(ctx.Param("session_id"))
	if err != nil {
		ctx.JSON(http.StatusNotFound, dto.ErrorResponse{Message: "Session not found"})
		return
	}

	var req dto.NavigateRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: "Invalid request body", Details: []string{err.Error()}})
		return
	}

	switch req.Action {
	case "advance":
		s.Advance(req.Direction)
	case "jump":
		if req.Index == nil {
			ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: "Jump requires an index"})
			return
		}
		s.JumpTo(*req.Index)
	}
	ctx.JSON(http.StatusOK, toSessionResponse(s.Snapshot()))
}

// SubmitSession godoc
// @Summary Submit a session for scoring
// @Description Completes the attempt and emits its result. Submitting an already completed session is a no-op and returns the existing outcome.
// @Tags Sessions
// @Produce json
// @Param session_id path string true "Session ID"
// @Success 200 {object} dto.SessionResponse
// @Failure 404 {object} dto.ErrorResponse "Session not found"
// @Router /sessions/{session_id}/submit [post]
func (c *SessionController) SubmitSession(ctx *gin.Context) {
	s, err := c.manager.Get(ctx.Param("session_id"))
	if err != nil {
		ctx.JSON(http.StatusNotFound, dto.ErrorResponse{Message: "Session not found"})
		return
	}
	s.Complete(session.ReasonManualSubmit)
	ctx.JSON(http.StatusOK, toSessionResponse(s.Snapshot()))
}

// AbandonSession godoc
// @Summary Abandon a session
// @Description Discards the attempt without emitting a result.
// @Tags Sessions
// @Produce json
// @Param session_id path string true "Session ID"
// @Success 204 "Session discarded"
// @Failure 404 {object} dto.ErrorResponse "Session not found"
// @Router /sessions/{session_id} [delete]
func (c *SessionController) AbandonSession(ctx *gin.Context) {
	if err := c.manager.Discard(ctx.Param("session_id")); err != nil {
		ctx.JSON(http.StatusNotFound, dto.ErrorResponse{Message: "Session not found"})
		return
	}
	ctx.Status(http.StatusNoContent)
}

func toSessionResponse(st session.State) dto.SessionResponse {
	resp := dto.SessionResponse{
		ID:               st.ID,
		TestType:         st.Test.Type,
		TestID:           st.Test.ID,
		TestName:         st.Test.Name,
		Status:           string(st.Status),
		CurrentIndex:     st.CurrentIndex,
		RemainingSeconds: st.RemainingSeconds,
		Questions:        toPlayQuestions(st.Questions),
		Answers:          st.Answers,
	}
	if st.Outcome != nil {
		elapsed := session.DurationFor(st.Test.Type) - st.RemainingSeconds
		resp.Result = &dto.SessionResultDTO{
			Score:          st.Outcome.Percentage,
			CorrectAnswers: st.Outcome.CorrectCount,
			TotalQuestions: len(st.Questions),
			Passed:         st.Outcome.Passed(),
			TimeTaken:      session.FormatElapsed(elapsed),
			Reason:         string(st.Reason),
			ResultID:       st.ResultID,
		}
	}
	return resp
}

func toPlayQuestions(questions []session.Question) []dto.PlayQuestionDTO {
	dtos := make([]dto.PlayQuestionDTO, len(questions))
	for i, q := range questions {
		dtos[i] = dto.PlayQuestionDTO{
			ID:         q.ID,
			Prompt:     q.Prompt,
			Options:    q.Options[:],
			Domain:     q.Domain,
			Difficulty: q.Difficulty,
		}
	}
	return dtos
}
