package study

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/gorilla/sessions"
	"github.com/mvtien/studybuddy/internal/controller"
	"github.com/mvtien/studybuddy/internal/dto"
	"github.com/mvtien/studybuddy/internal/service"
	"github.com/rs/zerolog/log"
)

// SessionCookieName carries the opaque session ID that keys the
// in-memory quiz state.
const SessionCookieName = "studybuddy_session"

type StudyController struct {
	quizService    service.QuizService
	gradingService service.GradingService
	studyService   service.StudyService
	cookies        sessions.Store
}

func NewStudyController(
	quizService service.QuizService,
	gradingService service.GradingService,
	studyService service.StudyService,
	cookies sessions.Store,
) *StudyController {
	return &StudyController{
		quizService:    quizService,
		gradingService: gradingService,
		studyService:   studyService,
		cookies:        cookies,
	}
}

// sessionID returns the caller's session ID, minting one into the
// cookie on first contact.
func (c *StudyController) sessionID(ctx *gin.Context) string {
	sess, _ := c.cookies.Get(ctx.Request, SessionCookieName)
	if id, ok := sess.Values["sid"].(string); ok && id != "" {
		return id
	}
	id := uuid.NewString()
	sess.Values["sid"] = id
	if err := sess.Save(ctx.Request, ctx.Writer); err != nil {
		log.Warn().Err(err).Msg("Failed to save session cookie")
	}
	return id
}

// GenerateQuiz godoc
// @Summary Generate a quiz from a topic or lecture transcript
// @Description Builds a generation prompt, calls the model, and parses the response into structured questions. When the response cannot be parsed, the reply carries parsed=false and the raw model text.
// @Tags Quiz
// @Accept json
// @Produce json
// @Param request body dto.GenerateQuizRequest true "Topic or transcript plus question count"
// @Success 200 {object} dto.QuizResponse
// @Failure 400 {object} dto.ErrorResponse "Empty topic and transcript"
// @Failure 502 {object} dto.ErrorResponse "Model call failed or timed out"
// @Router /quiz/generate [post]
func (c *StudyController) GenerateQuiz(ctx *gin.Context) {
	var req dto.GenerateQuizRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: "Invalid request body", Details: []string{err.Error()}})
		return
	}

	resp, err := c.quizService.Generate(ctx.Request.Context(), c.sessionID(ctx), req)
	if err != nil {
		controller.WriteError(ctx, err, "Failed to generate quiz")
		return
	}
	ctx.JSON(http.StatusOK, resp)
}

// GetQuiz godoc
// @Summary Get the session's current quiz
// @Tags Quiz
// @Produce json
// @Success 200 {object} dto.QuizResponse
// @Failure 400 {object} dto.ErrorResponse "No active quiz"
// @Router /quiz [get]
func (c *StudyController) GetQuiz(ctx *gin.Context) {
	resp, err := c.quizService.Current(c.sessionID(ctx))
	if err != nil {
		controller.WriteError(ctx, err, "No active quiz")
		return
	}
	ctx.JSON(http.StatusOK, resp)
}

// ClearQuiz godoc
// @Summary Discard the session's current quiz and answers
// @Tags Quiz
// @Produce json
// @Success 200 {object} dto.MessageResponse
// @Router /quiz [delete]
func (c *StudyController) ClearQuiz(ctx *gin.Context) {
	c.quizService.Clear(c.sessionID(ctx))
	ctx.JSON(http.StatusOK, dto.MessageResponse{Message: "Quiz cleared"})
}

// RecordAnswer godoc
// @Summary Record the learner's answer for one question
// @Tags Quiz
// @Accept json
// @Produce json
// @Param request body dto.RecordAnswerRequest true "Question index and answer text"
// @Success 204 "Answer recorded"
// @Failure 400 {object} dto.ErrorResponse "No active quiz or index out of range"
// @Router /quiz/answers [post]
func (c *StudyController) RecordAnswer(ctx *gin.Context) {
	var req dto.RecordAnswerRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: "Invalid request body", Details: []string{err.Error()}})
		return
	}
	if err := c.quizService.RecordAnswer(c.sessionID(ctx), req); err != nil {
		controller.WriteError(ctx, err, "Failed to record answer")
		return
	}
	ctx.Status(http.StatusNoContent)
}

// SubmitQuiz godoc
// @Summary Grade the session's current quiz
// @Description Grades the collected answers, derives weak topics and remediation tips, and folds the result into the learner's progress and badges. Scoring completes even when the enrichment calls fail.
// @Tags Quiz
// @Accept json
// @Produce json
// @Param request body dto.SubmitQuizRequest true "Learner identity"
// @Success 200 {object} dto.GradeResultResponse
// @Failure 400 {object} dto.ErrorResponse "No active quiz or missing learner id"
// @Router /quiz/submit [post]
func (c *StudyController) SubmitQuiz(ctx *gin.Context) {
	var req dto.SubmitQuizRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: "Invalid request body", Details: []string{err.Error()}})
		return
	}

	resp, err := c.gradingService.Submit(ctx.Request.Context(), c.sessionID(ctx), req)
	if err != nil {
		controller.WriteError(ctx, err, "Failed to grade quiz")
		return
	}
	ctx.JSON(http.StatusOK, resp)
}

// Ask godoc
// @Summary Ask the study tutor a free-form question
// @Tags Study
// @Accept json
// @Produce json
// @Param request body dto.AskRequest true "The question"
// @Success 200 {object} dto.AskResponse
// @Failure 502 {object} dto.ErrorResponse "Model call failed or timed out"
// @Router /study/ask [post]
func (c *StudyController) Ask(ctx *gin.Context) {
	var req dto.AskRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: "Invalid request body", Details: []string{err.Error()}})
		return
	}

	answer, err := c.studyService.Explain(ctx.Request.Context(), req.Question)
	if err != nil {
		controller.WriteError(ctx, err, "Failed to answer question")
		return
	}
	ctx.JSON(http.StatusOK, dto.AskResponse{Answer: answer})
}

// Notes godoc
// @Summary Summarize a lecture transcript into study notes
// @Tags Study
// @Accept json
// @Produce json
// @Param request body dto.NotesRequest true "Lecture transcript text"
// @Success 200 {object} dto.NotesResponse
// @Failure 502 {object} dto.ErrorResponse "Model call failed or timed out"
// @Router /notes [post]
func (c *StudyController) Notes(ctx *gin.Context) {
	var req dto.NotesRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: "Invalid request body", Details: []string{err.Error()}})
		return
	}

	notes, err := c.studyService.TranscriptNotes(ctx.Request.Context(), req.Transcript)
	if err != nil {
		controller.WriteError(ctx, err, "Failed to summarize transcript")
		return
	}
	ctx.JSON(http.StatusOK, dto.NotesResponse{Notes: notes})
}
