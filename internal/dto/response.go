package dto

import (
	"github.com/gin-gonic/gin"

	"github.com/thomasdhughes/realworld/internal/response"
)

func SuccessResponse(c *gin.Context, data any) {
	c.JSON(200, data)
}

// ErrorResponse 统一错误出口
// 字段级错误输出 {"errors": {...}}，整体错误输出 {"message": "..."}
func ErrorResponse(c *gin.Context, err *response.BusinessError) {
	if len(err.Errors) > 0 {
		c.JSON(err.Status, gin.H{"errors": err.Errors})
		return
	}
	c.JSON(err.Status, gin.H{"message": err.Msg})
}
