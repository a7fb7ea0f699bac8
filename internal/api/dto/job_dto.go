package dto

import "time"

// CreateJobRequest payload. Ownership is taken from the access token, so
// the body carries no owner field.
type CreateJobRequest struct {
	JobLocation  string   `json:"job_location" validate:"max=200"`
	ContractType string   `json:"contract_type" validate:"required,oneof=praca dzielo zlecenie tmp"`
	Mode         string   `json:"mode" validate:"required,oneof=stationary home hybrid mobile"`
	Hours        string   `json:"hours" validate:"required,oneof=weekend holiday week elastic"`
	Description  string   `json:"description" validate:"max=10000"`
	Tags         []string `json:"tags" validate:"max=50,dive,max=64"`
}

// JobQuery captures listing filters. Every field is optional.
type JobQuery struct {
	Tags         []string `json:"tags" validate:"max=50,dive,max=64"`
	JobLocation  *string  `json:"job_location"`
	ContractType *string  `json:"contract_type" validate:"omitempty,oneof=praca dzielo zlecenie tmp"`
	Mode         *string  `json:"mode" validate:"omitempty,oneof=stationary home hybrid mobile"`
	Hours        *string  `json:"hours" validate:"omitempty,oneof=weekend holiday week elastic"`
	Description  *string  `json:"description"`
	Limit        int      `json:"limit" validate:"min=0,max=200"`
	Offset       int      `json:"offset" validate:"min=0"`
}

// JobResponse represents a stored listing.
type JobResponse struct {
	JobID        int64     `json:"jobid"`
	Owner        string    `json:"owner"`
	CreationTime time.Time `json:"creation_time"`
	JobLocation  string    `json:"job_location"`
	ContractType string    `json:"contract_type"`
	Mode         string    `json:"mode"`
	Hours        string    `json:"hours"`
	Description  string    `json:"description"`
	Tags         []string  `json:"tags"`
}
