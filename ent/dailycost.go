// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/autopiloot/autopiloot/ent/dailycost"
)

// DailyCost is the model entity for the DailyCost schema.
type DailyCost struct {
	config `json:"-"`
	// ID of the ent.
	// UTC date, yyyy-mm-dd
	ID string `json:"id,omitempty"`
	// TotalUsd holds the value of the "total_usd" field.
	TotalUsd float64 `json:"total_usd,omitempty"`
	// TranscriptionUsd holds the value of the "transcription_usd" field.
	TranscriptionUsd float64 `json:"transcription_usd,omitempty"`
	// LlmUsd holds the value of the "llm_usd" field.
	LlmUsd float64 `json:"llm_usd,omitempty"`
	// OtherUsd holds the value of the "other_usd" field.
	OtherUsd float64 `json:"other_usd,omitempty"`
	// UpdatedAt holds the value of the "updated_at" field.
	UpdatedAt    time.Time `json:"updated_at,omitempty"`
	selectValues sql.SelectValues
}

// scanValues returns the types for scanning values from sql.Rows.
func (*DailyCost) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case dailycost.FieldTotalUsd, dailycost.FieldTranscriptionUsd, dailycost.FieldLlmUsd, dailycost.FieldOtherUsd:
			values[i] = new(sql.NullFloat64)
		case dailycost.FieldID:
			values[i] = new(sql.NullString)
		case dailycost.FieldUpdatedAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the DailyCost fields.
func (_m *DailyCost) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case dailycost.FieldID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value.Valid {
				_m.ID = value.String
			}
		case dailycost.FieldTotalUsd:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field total_usd", values[i])
			} else if value.Valid {
				_m.TotalUsd = value.Float64
			}
		case dailycost.FieldTranscriptionUsd:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field transcription_usd", values[i])
			} else if value.Valid {
				_m.TranscriptionUsd = value.Float64
			}
		case dailycost.FieldLlmUsd:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field llm_usd", values[i])
			} else if value.Valid {
				_m.LlmUsd = value.Float64
			}
		case dailycost.FieldOtherUsd:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field other_usd", values[i])
			} else if value.Valid {
				_m.OtherUsd = value.Float64
			}
		case dailycost.FieldUpdatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field updated_at", values[i])
			} else if value.Valid {
				_m.UpdatedAt = value.Time
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the DailyCost.
// This includes values selected through modifiers, order, etc.
func (_m *DailyCost) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// Update returns a builder for updating this DailyCost.
// Note that you need to call DailyCost.Unwrap() before calling this method if this DailyCost
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *DailyCost) Update() *DailyCostUpdateOne {
	return NewDailyCostClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the DailyCost entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *DailyCost) Unwrap() *DailyCost {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: DailyCost is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *DailyCost) String() string {
	var builder strings.Builder
	builder.WriteString("DailyCost(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("total_usd=")
	builder.WriteString(fmt.Sprintf("%v", _m.TotalUsd))
	builder.WriteString(", ")
	builder.WriteString("transcription_usd=")
	builder.WriteString(fmt.Sprintf("%v", _m.TranscriptionUsd))
	builder.WriteString(", ")
	builder.WriteString("llm_usd=")
	builder.WriteString(fmt.Sprintf("%v", _m.LlmUsd))
	builder.WriteString(", ")
	builder.WriteString("other_usd=")
	builder.WriteString(fmt.Sprintf("%v", _m.OtherUsd))
	builder.WriteString(", ")
	builder.WriteString("updated_at=")
	builder.WriteString(_m.UpdatedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// DailyCosts is a parsable slice of DailyCost.
type DailyCosts []*DailyCost
