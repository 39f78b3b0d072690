package tag

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/thomasdhughes/realworld/internal/dto"
)

type TagHandler struct {
	tagService *TagService
}

func NewTagHandler(db *gorm.DB) *TagHandler {
	return &TagHandler{
		tagService: NewTagService(NewTagRepository(db)),
	}
}

// PopularTags 获取热门标签
func (h *TagHandler) PopularTags(c *gin.Context) {
	names, err := h.tagService.PopularTags()
	if err != nil {
		dto.ErrorResponse(c, err)
		return
	}

	dto.SuccessResponse(c, dto.TagListEnvelope{Tags: names})
}
