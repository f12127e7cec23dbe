package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	experienceRepo "sahara/database/repository/experience"
	"sahara/utils"
)

// ExperienceHandler serves the public read-only catalog.
type ExperienceHandler struct {
	Repo experienceRepo.ExperienceRepository
}

// NewExperienceHandler wires an ExperienceHandler.
func NewExperienceHandler(repo experienceRepo.ExperienceRepository) *ExperienceHandler {
	return &ExperienceHandler{Repo: repo}
}

// ListExperiences returns the full catalog.
func (h *ExperienceHandler) ListExperiences(c *gin.Context) {
	experiences, err := h.Repo.GetAll()
	if err != nil {
		utils.RespondError(c, utils.NewStorageError(err))
		return
	}
	c.JSON(http.StatusOK, experiences)
}

// GetExperience returns a single catalog entry or a 404; no fallback data is
// fabricated on a miss.
func (h *ExperienceHandler) GetExperience(c *gin.Context) {
	exp, err := h.Repo.GetByID(c.Param("id"))
	if err != nil {
		if errors.Is(err, experienceRepo.ErrNotFound) {
			utils.JSONError(c, http.StatusNotFound, "Experience not found")
			return
		}
		utils.RespondError(c, utils.NewStorageError(err))
		return
	}
	c.JSON(http.StatusOK, exp)
}
