package tag

import (
	"github.com/thomasdhughes/realworld/internal/response"
)

// 热门标签数量上限
const popularTagLimit = 10

type TagService struct {
	tagRepo *TagRepository
}

func NewTagService(tagRepo *TagRepository) *TagService {
	return &TagService{tagRepo: tagRepo}
}

// PopularTags 按使用量降序返回至多 10 个标签名
func (s *TagService) PopularTags() ([]string, *response.BusinessError) {
	names, err := s.tagRepo.Popular(popularTagLimit)
	if err != nil {
		return nil, response.Internal(err)
	}
	if names == nil {
		names = []string{}
	}
	return names, nil
}
