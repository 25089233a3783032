// Code generated by ent, DO NOT EDIT.

package ent

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/autopiloot/autopiloot/ent/dlqentry"
)

// DLQEntry is the model entity for the DLQEntry schema.
type DLQEntry struct {
	config `json:"-"`
	// ID of the ent.
	// {job_type}_{original_job_id}_{timestamp}
	ID string `json:"id,omitempty"`
	// OriginalJobID holds the value of the "original_job_id" field.
	OriginalJobID string `json:"original_job_id,omitempty"`
	// JobType holds the value of the "job_type" field.
	JobType dlqentry.JobType `json:"job_type,omitempty"`
	// ErrorType holds the value of the "error_type" field.
	ErrorType string `json:"error_type,omitempty"`
	// ErrorMessage holds the value of the "error_message" field.
	ErrorMessage string `json:"error_message,omitempty"`
	// RetryCount holds the value of the "retry_count" field.
	RetryCount int `json:"retry_count,omitempty"`
	// LastAttemptAt holds the value of the "last_attempt_at" field.
	LastAttemptAt *time.Time `json:"last_attempt_at,omitempty"`
	// OriginalInputs holds the value of the "original_inputs" field.
	OriginalInputs map[string]interface{} `json:"original_inputs,omitempty"`
	// Severity holds the value of the "severity" field.
	Severity dlqentry.Severity `json:"severity,omitempty"`
	// RecoveryPriority holds the value of the "recovery_priority" field.
	RecoveryPriority dlqentry.RecoveryPriority `json:"recovery_priority,omitempty"`
	// ProcessingAttempts holds the value of the "processing_attempts" field.
	ProcessingAttempts int `json:"processing_attempts,omitempty"`
	// RecoveryHints holds the value of the "recovery_hints" field.
	RecoveryHints []string `json:"recovery_hints,omitempty"`
	// Denormalized for DLQ queries
	VideoID *string `json:"video_id,omitempty"`
	// Denormalized for batch job types
	VideoIds []string `json:"video_ids,omitempty"`
	// EstimatedCostImpactUsd holds the value of the "estimated_cost_impact_usd" field.
	EstimatedCostImpactUsd *float64 `json:"estimated_cost_impact_usd,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt    time.Time `json:"created_at,omitempty"`
	selectValues sql.SelectValues
}

// scanValues returns the types for scanning values from sql.Rows.
func (*DLQEntry) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case dlqentry.FieldOriginalInputs, dlqentry.FieldRecoveryHints, dlqentry.FieldVideoIds:
			values[i] = new([]byte)
		case dlqentry.FieldEstimatedCostImpactUsd:
			values[i] = new(sql.NullFloat64)
		case dlqentry.FieldRetryCount, dlqentry.FieldProcessingAttempts:
			values[i] = new(sql.NullInt64)
		case dlqentry.FieldID, dlqentry.FieldOriginalJobID, dlqentry.FieldJobType, dlqentry.FieldErrorType, dlqentry.FieldErrorMessage, dlqentry.FieldSeverity, dlqentry.FieldRecoveryPriority, dlqentry.FieldVideoID:
			values[i] = new(sql.NullString)
		case dlqentry.FieldLastAttemptAt, dlqentry.FieldCreatedAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the DLQEntry fields.
func (_m *DLQEntry) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case dlqentry.FieldID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value.Valid {
				_m.ID = value.String
			}
		case dlqentry.FieldOriginalJobID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field original_job_id", values[i])
			} else if value.Valid {
				_m.OriginalJobID = value.String
			}
		case dlqentry.FieldJobType:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field job_type", values[i])
			} else if value.Valid {
				_m.JobType = dlqentry.JobType(value.String)
			}
		case dlqentry.FieldErrorType:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field error_type", values[i])
			} else if value.Valid {
				_m.ErrorType = value.String
			}
		case dlqentry.FieldErrorMessage:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field error_message", values[i])
			} else if value.Valid {
				_m.ErrorMessage = value.String
			}
		case dlqentry.FieldRetryCount:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field retry_count", values[i])
			} else if value.Valid {
				_m.RetryCount = int(value.Int64)
			}
		case dlqentry.FieldLastAttemptAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field last_attempt_at", values[i])
			} else if value.Valid {
				_m.LastAttemptAt = new(time.Time)
				*_m.LastAttemptAt = value.Time
			}
		case dlqentry.FieldOriginalInputs:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field original_inputs", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.OriginalInputs); err != nil {
					return fmt.Errorf("unmarshal field original_inputs: %w", err)
				}
			}
		case dlqentry.FieldSeverity:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field severity", values[i])
			} else if value.Valid {
				_m.Severity = dlqentry.Severity(value.String)
			}
		case dlqentry.FieldRecoveryPriority:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field recovery_priority", values[i])
			} else if value.Valid {
				_m.RecoveryPriority = dlqentry.RecoveryPriority(value.String)
			}
		case dlqentry.FieldProcessingAttempts:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field processing_attempts", values[i])
			} else if value.Valid {
				_m.ProcessingAttempts = int(value.Int64)
			}
		case dlqentry.FieldRecoveryHints:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field recovery_hints", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.RecoveryHints); err != nil {
					return fmt.Errorf("unmarshal field recovery_hints: %w", err)
				}
			}
		case dlqentry.FieldVideoID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field video_id", values[i])
			} else if value.Valid {
				_m.VideoID = new(string)
				*_m.VideoID = value.String
			}
		case dlqentry.FieldVideoIds:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field video_ids", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.VideoIds); err != nil {
					return fmt.Errorf("unmarshal field video_ids: %w", err)
				}
			}
		case dlqentry.FieldEstimatedCostImpactUsd:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field estimated_cost_impact_usd", values[i])
			} else if value.Valid {
				_m.EstimatedCostImpactUsd = new(float64)
				*_m.EstimatedCostImpactUsd = value.Float64
			}
		case dlqentry.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the DLQEntry.
// This includes values selected through modifiers, order, etc.
func (_m *DLQEntry) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// Update returns a builder for updating this DLQEntry.
// Note that you need to call DLQEntry.Unwrap() before calling this method if this DLQEntry
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *DLQEntry) Update() *DLQEntryUpdateOne {
	return NewDLQEntryClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the DLQEntry entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *DLQEntry) Unwrap() *DLQEntry {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: DLQEntry is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *DLQEntry) String() string {
	var builder strings.Builder
	builder.WriteString("DLQEntry(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("original_job_id=")
	builder.WriteString(_m.OriginalJobID)
	builder.WriteString(", ")
	builder.WriteString("job_type=")
	builder.WriteString(fmt.Sprintf("%v", _m.JobType))
	builder.WriteString(", ")
	builder.WriteString("error_type=")
	builder.WriteString(_m.ErrorType)
	builder.WriteString(", ")
	builder.WriteString("error_message=")
	builder.WriteString(_m.ErrorMessage)
	builder.WriteString(", ")
	builder.WriteString("retry_count=")
	builder.WriteString(fmt.Sprintf("%v", _m.RetryCount))
	builder.WriteString(", ")
	if v := _m.LastAttemptAt; v != nil {
		builder.WriteString("last_attempt_at=")
		builder.WriteString(v.Format(time.ANSIC))
	}
	builder.WriteString(", ")
	builder.WriteString("original_inputs=")
	builder.WriteString(fmt.Sprintf("%v", _m.OriginalInputs))
	builder.WriteString(", ")
	builder.WriteString("severity=")
	builder.WriteString(fmt.Sprintf("%v", _m.Severity))
	builder.WriteString(", ")
	builder.WriteString("recovery_priority=")
	builder.WriteString(fmt.Sprintf("%v", _m.RecoveryPriority))
	builder.WriteString(", ")
	builder.WriteString("processing_attempts=")
	builder.WriteString(fmt.Sprintf("%v", _m.ProcessingAttempts))
	builder.WriteString(", ")
	builder.WriteString("recovery_hints=")
	builder.WriteString(fmt.Sprintf("%v", _m.RecoveryHints))
	builder.WriteString(", ")
	if v := _m.VideoID; v != nil {
		builder.WriteString("video_id=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	builder.WriteString("video_ids=")
	builder.WriteString(fmt.Sprintf("%v", _m.VideoIds))
	builder.WriteString(", ")
	if v := _m.EstimatedCostImpactUsd; v != nil {
		builder.WriteString("estimated_cost_impact_usd=")
		builder.WriteString(fmt.Sprintf("%v", *v))
	}
	builder.WriteString(", ")
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// DLQEntries is a parsable slice of DLQEntry.
type DLQEntries []*DLQEntry
