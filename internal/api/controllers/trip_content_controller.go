package controllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"pawtrip/internal/models/request_models"
	"pawtrip/internal/services"
	"pawtrip/pkg/utils"
)

type TripContentController struct {
	tripContentService services.TripContentServiceInterface
}

func NewTripContentController(tripContentService services.TripContentServiceInterface) *TripContentController {
	return &TripContentController{tripContentService: tripContentService}
}

// GenerateImage godoc
// @Summary Generate a photo of the pet at an activity
// @Tags Content
// @Accept json
// @Produce json
// @Param request body request_models.ContentRequest true "Activity and pet"
// @Success 200 {object} utils.APIResponse{data=response_models.ImageResponse}
// @Failure 401 {object} utils.APIResponse
// @Failure 502 {object} utils.APIResponse
// @Security BearerAuth
// @Router /content/image [post]
func (t *TripContentController) GenerateImage(c *gin.Context) {
	var req request_models.ContentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	resp, err := t.tripContentService.GenerateImage(c.Request.Context(), c.GetString("user_id"), req, c.GetString("credential"))
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, resp, "Image generated successfully")
}

// GenerateStory godoc
// @Summary Generate a short pet diary story for an activity
// @Tags Content
// @Accept json
// @Produce json
// @Param request body request_models.ContentRequest true "Activity, pet and city"
// @Success 200 {object} utils.APIResponse{data=response_models.StoryResponse}
// @Failure 401 {object} utils.APIResponse
// @Failure 502 {object} utils.APIResponse
// @Security BearerAuth
// @Router /content/story [post]
func (t *TripContentController) GenerateStory(c *gin.Context) {
	var req request_models.ContentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	resp, err := t.tripContentService.GenerateStory(c.Request.Context(), c.GetString("user_id"), req, c.GetString("credential"))
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, resp, "Story generated successfully")
}

// GenerateTripContent godoc
// @Summary Generate image and story together and keep them in the diary
// @Tags Content
// @Accept json
// @Produce json
// @Param request body request_models.ContentRequest true "Activity, pet and city"
// @Success 200 {object} utils.APIResponse{data=response_models.TripContentResponse}
// @Failure 401 {object} utils.APIResponse
// @Failure 502 {object} utils.APIResponse
// @Security BearerAuth
// @Router /content/trip [post]
func (t *TripContentController) GenerateTripContent(c *gin.Context) {
	var req request_models.ContentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	resp, err := t.tripContentService.GenerateTripContent(c.Request.Context(), c.GetString("user_id"), req, c.GetString("credential"))
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, resp, "Trip content generated")
}

// ParsePlan godoc
// @Summary Validate an AI trip plan and prepare it for display
// @Description Parse failures are returned as data with success=false.
// @Tags Plans
// @Accept json
// @Produce json
// @Param request body request_models.ParsePlanRequest true "Raw plan payload"
// @Success 200 {object} utils.APIResponse{data=response_models.PlanResponse}
// @Security BearerAuth
// @Router /plans/parse [post]
func (t *TripContentController) ParsePlan(c *gin.Context) {
	var req request_models.ParsePlanRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	resp := t.tripContentService.ParsePlan(req.Payload)
	if !resp.Plan.Success {
		utils.RespondSuccess(c, resp, "Plan could not be parsed")
		return
	}

	utils.RespondSuccess(c, resp, "Plan parsed successfully")
}

// ListDiary godoc
// @Summary List the caller's pet diary, newest first
// @Tags Diary
// @Produce json
// @Param page query int false "Page number" default(1)
// @Param page_size query int false "Page size" default(20)
// @Success 200 {object} utils.APIResponse{data=[]response_models.DiaryEntryResponse}
// @Security BearerAuth
// @Router /diary [get]
func (t *TripContentController) ListDiary(c *gin.Context) {
	page, err := strconv.Atoi(c.DefaultQuery("page", "1"))
	if err != nil {
		utils.HandleServiceError(c, utils.ErrInvalidPage)
		return
	}
	pageSize, err := strconv.Atoi(c.DefaultQuery("page_size", "20"))
	if err != nil {
		utils.HandleServiceError(c, utils.ErrInvalidPageSize)
		return
	}

	entries, err := t.tripContentService.ListDiary(c.Request.Context(), c.GetString("user_id"), page, pageSize)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, entries, "Diary fetched successfully")
}
