package dto

import "github.com/GlebRadaev/charity/internal/sweep"

type SweepFailureDTO struct {
	SubscriptionID string `json:"subscriptionId"`
	Stage          string `json:"stage" example:"email"`
	Error          string `json:"error"`
}

type SweepResultDTO struct {
	Period    string            `json:"period" example:"2026-10"`
	NotDue    bool              `json:"notDue,omitempty"`
	Processed int               `json:"processed" example:"25"`
	Succeeded []string          `json:"succeeded"`
	Skipped   []string          `json:"skipped"`
	Failed    []SweepFailureDTO `json:"failed"`
}

func NewSweepResultDTO(r *sweep.Result) SweepResultDTO {
	resp := SweepResultDTO{
		Period:    r.Period,
		NotDue:    r.NotDue,
		Processed: r.Processed,
		Succeeded: append([]string{}, r.Succeeded...),
		Skipped:   append([]string{}, r.Skipped...),
		Failed:    make([]SweepFailureDTO, 0, len(r.Failed)),
	}
	for _, f := range r.Failed {
		resp.Failed = append(resp.Failed, SweepFailureDTO{
			SubscriptionID: f.SubscriptionID,
			Stage:          f.Stage,
			Error:          f.Error,
		})
	}
	return resp
}
