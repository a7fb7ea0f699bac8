package domain

import (
	"time"

	"github.com/google/uuid"
)

// ContractType enumerates the legal basis of employment.
type ContractType string

const (
	ContractEmployment   ContractType = "praca"
	ContractSpecificTask ContractType = "dzielo"
	ContractMandate      ContractType = "zlecenie"
	ContractTemporary    ContractType = "tmp"
)

// Valid reports whether the contract type is known.
func (c ContractType) Valid() bool {
	switch c {
	case ContractEmployment, ContractSpecificTask, ContractMandate, ContractTemporary:
		return true
	}
	return false
}

// JobMode enumerates where the work happens.
type JobMode string

const (
	JobModeStationary JobMode = "stationary"
	JobModeHome       JobMode = "home"
	JobModeHybrid     JobMode = "hybrid"
	JobModeMobile     JobMode = "mobile"
)

// Valid reports whether the mode is known.
func (m JobMode) Valid() bool {
	switch m {
	case JobModeStationary, JobModeHome, JobModeHybrid, JobModeMobile:
		return true
	}
	return false
}

// JobHours enumerates when the work happens.
type JobHours string

const (
	JobHoursWeekend JobHours = "weekend"
	JobHoursHoliday JobHours = "holiday"
	JobHoursWeek    JobHours = "week"
	JobHoursElastic JobHours = "elastic"
)

// Valid reports whether the hours category is known.
func (h JobHours) Valid() bool {
	switch h {
	case JobHoursWeekend, JobHoursHoliday, JobHoursWeek, JobHoursElastic:
		return true
	}
	return false
}

// Job is a listing posted by a company. Immutable once stored.
type Job struct {
	ID           int64
	Owner        uuid.UUID
	CreatedAt    time.Time
	Location     string
	ContractType ContractType
	Mode         JobMode
	Hours        JobHours
	Description  string
	Tags         []string
}

// JobFilter narrows a job listing. Unset fields do not constrain the result;
// set fields are combined with AND.
type JobFilter struct {
	Tags         []string
	Location     *string
	ContractType *ContractType
	Mode         *JobMode
	Hours        *JobHours
	Description  *string
	Limit        int
	Offset       int
}
