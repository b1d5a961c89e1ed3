package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/pennywise-app/backend/internal/httputil"
	"github.com/pennywise-app/backend/internal/models"
)

// RegisterCategoryRuleRoutes registers the routes for category rules
// with the RouterGroup that is passed.
func RegisterCategoryRuleRoutes(r *gin.RouterGroup) {
	// Root group
	{
		r.OPTIONS("", httputil.OptionsGetPost)
		r.GET("", GetCategoryRules)
		r.POST("", CreateCategoryRule)
	}

	// CategoryRule with ID
	{
		r.OPTIONS("/:id", httputil.OptionsDelete)
		r.DELETE("/:id", DeleteCategoryRule)
	}
}

// @Summary		Get category rules
// @Description	Returns the category rules of the logged in user, ordered by priority
// @Tags			CategoryRules
// @Produce		json
// @Success		200	{object}	CategoryRuleListResponse
// @Failure		401	{object}	httpError
// @Failure		500	{object}	CategoryRuleListResponse
// @Router			/v1/category-rules [get]
func GetCategoryRules(c *gin.Context) {
	var rules []models.CategoryRule
	err := models.DB.
		Where(&models.CategoryRule{UserID: currentUser(c)}).
		Order("priority ASC").
		Find(&rules).Error
	if err != nil {
		e := err.Error()
		c.JSON(status(err), CategoryRuleListResponse{Error: &e})
		return
	}

	data := make([]CategoryRule, 0, len(rules))
	for _, rule := range rules {
		data = append(data, newCategoryRule(rule))
	}

	c.JSON(http.StatusOK, CategoryRuleListResponse{Data: data})
}

// @Summary		Create category rule
// @Description	Adds a category rule for the logged in user
// @Tags			CategoryRules
// @Accept			json
// @Produce		json
// @Success		201		{object}	CategoryRuleResponse
// @Failure		400		{object}	CategoryRuleResponse
// @Failure		401		{object}	httpError
// @Failure		500		{object}	CategoryRuleResponse
// @Param			rule	body		CategoryRuleEditable	true	"CategoryRule"
// @Router			/v1/category-rules [post]
func CreateCategoryRule(c *gin.Context) {
	var editable CategoryRuleEditable
	err := httputil.BindData(c, &editable)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), CategoryRuleResponse{Error: &e})
		return
	}

	rule := editable.model()
	rule.UserID = currentUser(c)

	err = models.DB.Create(&rule).Error
	if err != nil {
		e := err.Error()
		c.JSON(status(err), CategoryRuleResponse{Error: &e})
		return
	}

	data := newCategoryRule(rule)
	c.JSON(http.StatusCreated, CategoryRuleResponse{Data: &data})
}

// @Summary		Delete category rule
// @Description	Removes a category rule of the logged in user
// @Tags			CategoryRules
// @Success		204
// @Failure		400	{object}	httpError
// @Failure		401	{object}	httpError
// @Failure		404	{object}	httpError
// @Failure		500	{object}	httpError
// @Param			id	path	string	true	"ID of the category rule"
// @Router			/v1/category-rules/{id} [delete]
func DeleteCategoryRule(c *gin.Context) {
	id, err := httputil.UUIDFromString(c.Param("id"))
	if err == nil && id == uuid.Nil {
		err = httputil.ErrInvalidUUID
	}
	if err != nil {
		c.JSON(status(err), httpError{Error: err.Error()})
		return
	}

	var rule models.CategoryRule
	err = models.DB.
		Where(&models.CategoryRule{UserID: currentUser(c)}).
		First(&rule, "id = ?", id).Error
	if err != nil {
		c.JSON(status(err), httpError{Error: err.Error()})
		return
	}

	err = models.DB.Delete(&rule).Error
	if err != nil {
		c.JSON(status(err), httpError{Error: err.Error()})
		return
	}

	c.JSON(http.StatusNoContent, nil)
}
