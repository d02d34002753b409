package response

import (
	"enviroflow/internal/domain/entities"
	"time"
)

type IngestionRunResponse struct {
	ID         string    `json:"id"`
	Kind       string    `json:"kind"`
	Status     string    `json:"status"`
	ReceivedAt time.Time `json:"received_at"`
	Pages      int       `json:"pages"`
	Received   int       `json:"received"`
	Parsed     int       `json:"parsed"`
	Failed     int       `json:"failed"`
	Lines      int       `json:"lines"`
	Errors     []string  `json:"errors"`
	Log        []string  `json:"log"`
}

func FromIngestionRun(run entities.IngestionRun) IngestionRunResponse {
	return IngestionRunResponse{
		ID:         run.ID,
		Kind:       string(run.Kind),
		Status:     string(run.Status),
		ReceivedAt: run.ReceivedAt,
		Pages:      run.Pages,
		Received:   run.Received,
		Parsed:     run.Parsed,
		Failed:     run.Failed,
		Lines:      run.Lines,
		Errors:     nonNil(run.Errors),
		Log:        nonNil(run.Log),
	}
}

func nonNil(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}
