package service

import (
	"vidtube/internal/api/dto"
	"vidtube/internal/model"
)

func toUserSummary(user *model.User) dto.UserSummary {
	return dto.UserSummary{
		ID:       user.ID,
		UserName: user.UserName,
		Avatar:   user.Avatar,
		FullName: user.FullName,
	}
}

func toUserInfo(user *model.User) *dto.UserInfo {
	return &dto.UserInfo{
		ID:         user.ID,
		UserName:   user.UserName,
		Email:      user.Email,
		FullName:   user.FullName,
		Avatar:     user.Avatar,
		CoverImage: user.CoverImage,
		CreatedAt:  user.CreatedAt,
	}
}

// toVideoSummary builds the list-item view. The owner block is filled
// only when the owner row is loaded.
func toVideoSummary(video *model.Video) dto.VideoSummary {
	summary := dto.VideoSummary{
		ID:          video.ID,
		VideoFile:   video.VideoFile,
		Thumbnail:   video.Thumbnail,
		Title:       video.Title,
		Description: video.Description,
		Duration:    video.Duration,
		Views:       video.Views,
		CreatedAt:   video.CreatedAt,
		Tags:        tagsOrEmpty(video.Tags),
	}
	if video.Owner.ID != "" {
		owner := toUserSummary(&video.Owner)
		summary.OwnerDetails = &owner
	}
	return summary
}

func toVideoSummaries(videos []model.Video) []dto.VideoSummary {
	out := make([]dto.VideoSummary, 0, len(videos))
	for i := range videos {
		out = append(out, toVideoSummary(&videos[i]))
	}
	return out
}

// tagsOrEmpty keeps the tag list JSON-encoding as [] instead of null.
func tagsOrEmpty(tags []string) []string {
	if tags == nil {
		return []string{}
	}
	return tags
}
