package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"pawtrip/internal/models/request_models"
	"pawtrip/internal/services"
	"pawtrip/pkg/utils"
)

type PetController struct {
	petService services.PetServiceInterface
}

func NewPetController(petService services.PetServiceInterface) *PetController {
	return &PetController{petService: petService}
}

// GetProfile godoc
// @Summary Get the caller's pet profile
// @Tags Pets
// @Produce json
// @Success 200 {object} utils.APIResponse{data=request_models.PetInfo}
// @Security BearerAuth
// @Router /pets/me [get]
func (p *PetController) GetProfile(c *gin.Context) {
	pet, err := p.petService.Load(c.Request.Context(), c.GetString("user_id"))
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, pet, "Pet profile fetched successfully")
}

// SaveProfile godoc
// @Summary Create or replace the caller's pet profile
// @Tags Pets
// @Accept json
// @Produce json
// @Param request body request_models.SavePetRequest true "Pet profile"
// @Success 200 {object} utils.APIResponse{data=request_models.PetInfo}
// @Failure 400 {object} utils.APIResponse
// @Security BearerAuth
// @Router /pets/me [put]
func (p *PetController) SaveProfile(c *gin.Context) {
	var req request_models.SavePetRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	pet, err := p.petService.Save(c.Request.Context(), c.GetString("user_id"), req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, pet, "Pet profile saved successfully")
}
