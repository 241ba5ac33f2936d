package dto

import (
	"time"

	"github.com/nowshad-islam-dev/skipq-api/internal/models"
)

type PublicService struct {
	ID                 uint      `json:"id" validate:"gt=0"`
	ServiceName        string    `json:"serviceName" validate:"required,min=3"`
	ServiceDescription string    `json:"serviceDescription" validate:"required,min=6"`
	AverageWaitingTime string    `json:"averageWaitingTime"`
	ServiceLocation    string    `json:"serviceLocation" validate:"required,min=1"`
	Photos             []string  `json:"photos,omitempty"`
	UserID             uint      `json:"userId" validate:"gt=0"`
	CreatedAt          time.Time `json:"createdAt" validate:"required"`
}

func ToPublicService(s models.Service) (PublicService, error) {
	ps := PublicService{
		ID:                 s.ID,
		ServiceName:        s.ServiceName,
		ServiceDescription: s.ServiceDescription,
		AverageWaitingTime: s.AverageWaitingTime,
		ServiceLocation:    s.ServiceLocation,
		Photos:             []string(s.Photos),
		UserID:             s.UserID,
		CreatedAt:          s.CreatedAt,
	}
	if err := views.Struct(ps); err != nil {
		return PublicService{}, err
	}
	return ps, nil
}

func PublicServices(services []models.Service) []PublicService {
	out := make([]PublicService, 0, len(services))
	for _, s := range services {
		ps, err := ToPublicService(s)
		if err != nil {
			continue
		}
		out = append(out, ps)
	}
	return out
}
