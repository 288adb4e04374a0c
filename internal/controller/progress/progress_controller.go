package progress

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/mvtien/studybuddy/internal/controller"
	"github.com/mvtien/studybuddy/internal/dto"
	"github.com/mvtien/studybuddy/internal/service"
	"github.com/rs/zerolog/log"
)

type ProgressController struct {
	progressService service.ProgressService
}

func NewProgressController(progressService service.ProgressService) *ProgressController {
	return &ProgressController{progressService: progressService}
}

// GetProgress godoc
// @Summary Get a learner's progress dashboard data
// @Description Score history, running correct/wrong totals, earned badges, and archived quizzes. A learner with no stored data gets an empty record, not an error.
// @Tags Progress
// @Produce json
// @Param learner_id path string true "Learner ID"
// @Success 200 {object} dto.ProgressResponse
// @Failure 400 {object} dto.ErrorResponse "Missing learner id"
// @Router /progress/{learner_id} [get]
func (c *ProgressController) GetProgress(ctx *gin.Context) {
	resp, err := c.progressService.Overview(ctx.Param("learner_id"))
	if err != nil {
		controller.WriteError(ctx, err, "Failed to load progress")
		return
	}
	ctx.JSON(http.StatusOK, resp)
}

// ResetProgress godoc
// @Summary Erase a learner's history, totals, badges and archives
// @Tags Progress
// @Produce json
// @Param learner_id path string true "Learner ID"
// @Success 200 {object} dto.MessageResponse
// @Failure 500 {object} dto.ErrorResponse "Progress store write failed"
// @Router /progress/{learner_id}/reset [post]
func (c *ProgressController) ResetProgress(ctx *gin.Context) {
	learnerID := ctx.Param("learner_id")
	if err := c.progressService.Reset(learnerID); err != nil {
		controller.WriteError(ctx, err, "Failed to reset progress")
		return
	}
	log.Info().Str("learnerID", learnerID).Msg("Learner progress reset")
	ctx.JSON(http.StatusOK, dto.MessageResponse{Message: "Progress reset"})
}
