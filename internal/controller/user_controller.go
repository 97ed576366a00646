package controller

import (
	"skill_assessment_backend/internal/service"
	"skill_assessment_backend/internal/util"

	"github.com/gin-gonic/gin"
)

type UserController struct {
	UserService *service.UserService
}

func NewUserController(userService *service.UserService) *UserController {
	return &UserController{UserService: userService}
}

// ListUsers godoc
// @Summary 用户列表（管理员）
// @Description 每个用户附带已完成测验数、最近测验时间与平均分
// @Tags 用户
// @Produce json
// @Security BearerAuth
// @Success 200 {object} util.Response{data=[]model.UserSummary}
// @Failure 403 {object} util.Response "需要管理员权限"
// @Router /api/users [get]
func (c *UserController) ListUsers(ctx *gin.Context) {
	users, err := c.UserService.ListUsers(ctx.Request.Context())
	if err != nil {
		respondError(ctx, err)
		return
	}
	util.Success(ctx, users)
}
