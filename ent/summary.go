// Code generated by ent, DO NOT EDIT.

package ent

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/autopiloot/autopiloot/ent/schema"
	"github.com/autopiloot/autopiloot/ent/summary"
)

// Summary is the model entity for the Summary schema.
type Summary struct {
	config `json:"-"`
	// ID of the ent.
	ID string `json:"id,omitempty"`
	// Actionable business insights
	Bullets []string `json:"bullets,omitempty"`
	// KeyConcepts holds the value of the "key_concepts" field.
	KeyConcepts []string `json:"key_concepts,omitempty"`
	// PromptID holds the value of the "prompt_id" field.
	PromptID string `json:"prompt_id,omitempty"`
	// PromptVersion holds the value of the "prompt_version" field.
	PromptVersion string `json:"prompt_version,omitempty"`
	// InputTokens holds the value of the "input_tokens" field.
	InputTokens int `json:"input_tokens,omitempty"`
	// OutputTokens holds the value of the "output_tokens" field.
	OutputTokens int `json:"output_tokens,omitempty"`
	// Back-reference to the transcript artifact
	TranscriptDocRef string `json:"transcript_doc_ref,omitempty"`
	// Vector-store document ID, when indexed
	ZepDocID *string `json:"zep_doc_id,omitempty"`
	// Ordered retrieval references, each tagged by type
	RagRefs []schema.RAGRef `json:"rag_refs,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt    time.Time `json:"created_at,omitempty"`
	selectValues sql.SelectValues
}

// scanValues returns the types for scanning values from sql.Rows.
func (*Summary) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case summary.FieldBullets, summary.FieldKeyConcepts, summary.FieldRagRefs:
			values[i] = new([]byte)
		case summary.FieldInputTokens, summary.FieldOutputTokens:
			values[i] = new(sql.NullInt64)
		case summary.FieldID, summary.FieldPromptID, summary.FieldPromptVersion, summary.FieldTranscriptDocRef, summary.FieldZepDocID:
			values[i] = new(sql.NullString)
		case summary.FieldCreatedAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the Summary fields.
func (_m *Summary) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case summary.FieldID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value.Valid {
				_m.ID = value.String
			}
		case summary.FieldBullets:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field bullets", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.Bullets); err != nil {
					return fmt.Errorf("unmarshal field bullets: %w", err)
				}
			}
		case summary.FieldKeyConcepts:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field key_concepts", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.KeyConcepts); err != nil {
					return fmt.Errorf("unmarshal field key_concepts: %w", err)
				}
			}
		case summary.FieldPromptID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field prompt_id", values[i])
			} else if value.Valid {
				_m.PromptID = value.String
			}
		case summary.FieldPromptVersion:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field prompt_version", values[i])
			} else if value.Valid {
				_m.PromptVersion = value.String
			}
		case summary.FieldInputTokens:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field input_tokens", values[i])
			} else if value.Valid {
				_m.InputTokens = int(value.Int64)
			}
		case summary.FieldOutputTokens:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field output_tokens", values[i])
			} else if value.Valid {
				_m.OutputTokens = int(value.Int64)
			}
		case summary.FieldTranscriptDocRef:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field transcript_doc_ref", values[i])
			} else if value.Valid {
				_m.TranscriptDocRef = value.String
			}
		case summary.FieldZepDocID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field zep_doc_id", values[i])
			} else if value.Valid {
				_m.ZepDocID = new(string)
				*_m.ZepDocID = value.String
			}
		case summary.FieldRagRefs:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field rag_refs", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.RagRefs); err != nil {
					return fmt.Errorf("unmarshal field rag_refs: %w", err)
				}
			}
		case summary.FieldCreatedAt:
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

// Value returns the ent.Value that was dynamically selected and assigned to the Summary.
// This includes values selected through modifiers, order, etc.
func (_m *Summary) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// Update returns a builder for updating this Summary.
// Note that you need to call Summary.Unwrap() before calling this method if this Summary
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *Summary) Update() *SummaryUpdateOne {
	return NewSummaryClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the Summary entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *Summary) Unwrap() *Summary {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: Summary is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *Summary) String() string {
	var builder strings.Builder
	builder.WriteString("Summary(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("bullets=")
	builder.WriteString(fmt.Sprintf("%v", _m.Bullets))
	builder.WriteString(", ")
	builder.WriteString("key_concepts=")
	builder.WriteString(fmt.Sprintf("%v", _m.KeyConcepts))
	builder.WriteString(", ")
	builder.WriteString("prompt_id=")
	builder.WriteString(_m.PromptID)
	builder.WriteString(", ")
	builder.WriteString("prompt_version=")
	builder.WriteString(_m.PromptVersion)
	builder.WriteString(", ")
	builder.WriteString("input_tokens=")
	builder.WriteString(fmt.Sprintf("%v", _m.InputTokens))
	builder.WriteString(", ")
	builder.WriteString("output_tokens=")
	builder.WriteString(fmt.Sprintf("%v", _m.OutputTokens))
	builder.WriteString(", ")
	builder.WriteString("transcript_doc_ref=")
	builder.WriteString(_m.TranscriptDocRef)
	builder.WriteString(", ")
	if v := _m.ZepDocID; v != nil {
		builder.WriteString("zep_doc_id=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	builder.WriteString("rag_refs=")
	builder.WriteString(fmt.Sprintf("%v", _m.RagRefs))
	builder.WriteString(", ")
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// Summaries is a parsable slice of Summary.
type Summaries []*Summary
