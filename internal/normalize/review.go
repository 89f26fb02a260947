package normalize

import (
	"math"

	"github.com/handygo/tenant-client/internal/domain"
	"github.com/handygo/tenant-client/internal/dto"
)

func Review(raw map[string]any) domain.Review {
	rating := 0
	if f, ok := number(raw["rating"]); ok {
		rating = int(math.Round(f))
	}
	return domain.Review{
		ID:           firstText(raw, "reviewId", "id"),
		RequestID:    firstText(raw, "jobId", "requestId"),
		HandymanID:   firstText(raw, "handymanId"),
		HandymanName: firstText(raw, "handymanName"),
		TenantID:     firstText(raw, "tenantId"),
		Rating:       rating,
		Comment:      firstText(raw, "comment"),
		CreatedAt:    timestampOrNow(raw["createdAt"]),
	}
}

func Reviews(raw any) []domain.Review {
	list, _ := raw.([]any)
	out := make([]domain.Review, 0, len(list))
	for _, item := range list {
		out = append(out, Review(object(item)))
	}
	return out
}

func ReviewPayload(in domain.CreateReviewInput) dto.CreateReviewBody {
	return dto.CreateReviewBody{
		RequestID:  in.RequestID,
		HandymanID: in.HandymanID,
		Rating:     in.Rating,
		Comment:    in.Comment,
	}
}
