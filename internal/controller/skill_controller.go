package controller

import (
	"skill_assessment_backend/internal/service"
	"skill_assessment_backend/internal/util"

	"github.com/gin-gonic/gin"
)

type SkillController struct {
	CatalogService *service.CatalogService
}

func NewSkillController(catalogService *service.CatalogService) *SkillController {
	return &SkillController{CatalogService: catalogService}
}

// CreateSkillRequest 新建技能
// swagger:model CreateSkillRequest
type CreateSkillRequest struct {
	Name        string `json:"name" binding:"required,min=2,max=50"`
	Description string `json:"description" binding:"max=255"`
}

// UpdateSkillRequest 只更新提供的字段
// swagger:model UpdateSkillRequest
type UpdateSkillRequest struct {
	Name        *string `json:"name" binding:"omitempty,min=2,max=50"`
	Description *string `json:"description" binding:"omitempty,max=255"`
}

// ListSkills godoc
// @Summary 技能列表
// @Tags 技能
// @Produce json
// @Security BearerAuth
// @Success 200 {object} util.Response{data=[]model.Skill}
// @Router /api/skills [get]
func (c *SkillController) ListSkills(ctx *gin.Context) {
	skills, err := c.CatalogService.ListSkills(ctx.Request.Context())
	if err != nil {
		respondError(ctx, err)
		return
	}
	util.Success(ctx, skills)
}

// GetSkill godoc
// @Summary 技能详情
// @Tags 技能
// @Produce json
// @Security BearerAuth
// @Param skillId path int true "技能ID"
// @Success 200 {object} util.Response{data=model.Skill}
// @Failure 404 {object} util.Response "技能不存在"
// @Router /api/skills/{skillId} [get]
func (c *SkillController) GetSkill(ctx *gin.Context) {
	id, ok := pathID(ctx, "skillId")
	if !ok {
		return
	}

	skill, err := c.CatalogService.GetSkill(ctx.Request.Context(), id)
	if err != nil {
		respondError(ctx, err)
		return
	}
	util.Success(ctx, skill)
}

// CreateSkill godoc
// @Summary 新建技能（管理员）
// @Tags 技能
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param body body CreateSkillRequest true "技能信息"
// @Success 201 {object} util.Response{data=model.Skill}
// @Failure 409 {object} util.Response "技能名称已存在"
// @Router /api/skills [post]
func (c *SkillController) CreateSkill(ctx *gin.Context) {
	var req CreateSkillRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	skill, err := c.CatalogService.CreateSkill(ctx.Request.Context(), req.Name, req.Description)
	if err != nil {
		respondError(ctx, err)
		return
	}
	util.Created(ctx, skill)
}

// UpdateSkill godoc
// @Summary 更新技能（管理员）
// @Tags 技能
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param skillId path int true "技能ID"
// @Param body body UpdateSkillRequest true "要修改的字段"
// @Success 200 {object} util.Response{data=model.Skill}
// @Failure 404 {object} util.Response "技能不存在"
// @Failure 409 {object} util.Response "技能名称已存在"
// @Router /api/skills/{skillId} [put]
func (c *SkillController) UpdateSkill(ctx *gin.Context) {
	id, ok := pathID(ctx, "skillId")
	if !ok {
		return
	}
	var req UpdateSkillRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	skill, err := c.CatalogService.UpdateSkill(ctx.Request.Context(), id, service.SkillUpdate{
		Name:        req.Name,
		Description: req.Description,
	})
	if err != nil {
		respondError(ctx, err)
		return
	}
	util.Success(ctx, skill)
}

// DeleteSkill godoc
// @Summary 删除技能（管理员）
// @Description 软删除，历史报告中的技能名称保持不变
// @Tags 技能
// @Produce json
// @Security BearerAuth
// @Param skillId path int true "技能ID"
// @Success 200 {object} util.Response
// @Failure 404 {object} util.Response "技能不存在"
// @Router /api/skills/{skillId} [delete]
func (c *SkillController) DeleteSkill(ctx *gin.Context) {
	id, ok := pathID(ctx, "skillId")
	if !ok {
		return
	}

	if err := c.CatalogService.DeleteSkill(ctx.Request.Context(), id); err != nil {
		respondError(ctx, err)
		return
	}
	util.Success(ctx, gin.H{"id": id})
}
