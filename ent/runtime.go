// Code generated by ent, DO NOT EDIT.

package ent

import (
	"time"

	"github.com/autopiloot/autopiloot/ent/auditlog"
	"github.com/autopiloot/autopiloot/ent/checkpoint"
	"github.com/autopiloot/autopiloot/ent/dailycost"
	"github.com/autopiloot/autopiloot/ent/dlqentry"
	"github.com/autopiloot/autopiloot/ent/job"
	"github.com/autopiloot/autopiloot/ent/schema"
	"github.com/autopiloot/autopiloot/ent/summary"
	"github.com/autopiloot/autopiloot/ent/transcript"
	"github.com/autopiloot/autopiloot/ent/video"
)

// The init function reads all schema descriptors with runtime code
// (default values, validators, hooks and policies) and stitches it
// to their package variables.
func init() {
	auditlogFields := schema.AuditLog{}.Fields()
	_ = auditlogFields
	// auditlogDescCreatedAt is the schema descriptor for created_at field.
	auditlogDescCreatedAt := auditlogFields[4].Descriptor()
	// auditlog.DefaultCreatedAt holds the default value on creation for the created_at field.
	auditlog.DefaultCreatedAt = auditlogDescCreatedAt.Default.(func() time.Time)
	checkpointFields := schema.Checkpoint{}.Fields()
	_ = checkpointFields
	// checkpointDescUpdatedAt is the schema descriptor for updated_at field.
	checkpointDescUpdatedAt := checkpointFields[3].Descriptor()
	// checkpoint.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	checkpoint.DefaultUpdatedAt = checkpointDescUpdatedAt.Default.(func() time.Time)
	// checkpoint.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	checkpoint.UpdateDefaultUpdatedAt = checkpointDescUpdatedAt.UpdateDefault.(func() time.Time)
	dlqentryFields := schema.DLQEntry{}.Fields()
	_ = dlqentryFields
	// dlqentryDescProcessingAttempts is the schema descriptor for processing_attempts field.
	dlqentryDescProcessingAttempts := dlqentryFields[10].Descriptor()
	// dlqentry.DefaultProcessingAttempts holds the default value on creation for the processing_attempts field.
	dlqentry.DefaultProcessingAttempts = dlqentryDescProcessingAttempts.Default.(int)
	// dlqentryDescCreatedAt is the schema descriptor for created_at field.
	dlqentryDescCreatedAt := dlqentryFields[15].Descriptor()
	// dlqentry.DefaultCreatedAt holds the default value on creation for the created_at field.
	dlqentry.DefaultCreatedAt = dlqentryDescCreatedAt.Default.(func() time.Time)
	dailycostFields := schema.DailyCost{}.Fields()
	_ = dailycostFields
	// dailycostDescTotalUsd is the schema descriptor for total_usd field.
	dailycostDescTotalUsd := dailycostFields[1].Descriptor()
	// dailycost.DefaultTotalUsd holds the default value on creation for the total_usd field.
	dailycost.DefaultTotalUsd = dailycostDescTotalUsd.Default.(float64)
	// dailycostDescTranscriptionUsd is the schema descriptor for transcription_usd field.
	dailycostDescTranscriptionUsd := dailycostFields[2].Descriptor()
	// dailycost.DefaultTranscriptionUsd holds the default value on creation for the transcription_usd field.
	dailycost.DefaultTranscriptionUsd = dailycostDescTranscriptionUsd.Default.(float64)
	// dailycostDescLlmUsd is the schema descriptor for llm_usd field.
	dailycostDescLlmUsd := dailycostFields[3].Descriptor()
	// dailycost.DefaultLlmUsd holds the default value on creation for the llm_usd field.
	dailycost.DefaultLlmUsd = dailycostDescLlmUsd.Default.(float64)
	// dailycostDescOtherUsd is the schema descriptor for other_usd field.
	dailycostDescOtherUsd := dailycostFields[4].Descriptor()
	// dailycost.DefaultOtherUsd holds the default value on creation for the other_usd field.
	dailycost.DefaultOtherUsd = dailycostDescOtherUsd.Default.(float64)
	// dailycostDescUpdatedAt is the schema descriptor for updated_at field.
	dailycostDescUpdatedAt := dailycostFields[5].Descriptor()
	// dailycost.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	dailycost.DefaultUpdatedAt = dailycostDescUpdatedAt.Default.(func() time.Time)
	// dailycost.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	dailycost.UpdateDefaultUpdatedAt = dailycostDescUpdatedAt.UpdateDefault.(func() time.Time)
	jobFields := schema.Job{}.Fields()
	_ = jobFields
	// jobDescRetryCount is the schema descriptor for retry_count field.
	jobDescRetryCount := jobFields[6].Descriptor()
	// job.DefaultRetryCount holds the default value on creation for the retry_count field.
	job.DefaultRetryCount = jobDescRetryCount.Default.(int)
	// jobDescCreatedAt is the schema descriptor for created_at field.
	jobDescCreatedAt := jobFields[18].Descriptor()
	// job.DefaultCreatedAt holds the default value on creation for the created_at field.
	job.DefaultCreatedAt = jobDescCreatedAt.Default.(func() time.Time)
	// jobDescUpdatedAt is the schema descriptor for updated_at field.
	jobDescUpdatedAt := jobFields[19].Descriptor()
	// job.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	job.DefaultUpdatedAt = jobDescUpdatedAt.Default.(func() time.Time)
	// job.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	job.UpdateDefaultUpdatedAt = jobDescUpdatedAt.UpdateDefault.(func() time.Time)
	summaryFields := schema.Summary{}.Fields()
	_ = summaryFields
	// summaryDescCreatedAt is the schema descriptor for created_at field.
	summaryDescCreatedAt := summaryFields[10].Descriptor()
	// summary.DefaultCreatedAt holds the default value on creation for the created_at field.
	summary.DefaultCreatedAt = summaryDescCreatedAt.Default.(func() time.Time)
	transcriptFields := schema.Transcript{}.Fields()
	_ = transcriptFields
	// transcriptDescCreatedAt is the schema descriptor for created_at field.
	transcriptDescCreatedAt := transcriptFields[5].Descriptor()
	// transcript.DefaultCreatedAt holds the default value on creation for the created_at field.
	transcript.DefaultCreatedAt = transcriptDescCreatedAt.Default.(func() time.Time)
	videoFields := schema.Video{}.Fields()
	_ = videoFields
	// videoDescDurationSec is the schema descriptor for duration_sec field.
	videoDescDurationSec := videoFields[5].Descriptor()
	// video.DurationSecValidator is a validator for the "duration_sec" field. It is called by the builders before save.
	video.DurationSecValidator = videoDescDurationSec.Validators[0].(func(int) error)
	// videoDescCreatedAt is the schema descriptor for created_at field.
	videoDescCreatedAt := videoFields[11].Descriptor()
	// video.DefaultCreatedAt holds the default value on creation for the created_at field.
	video.DefaultCreatedAt = videoDescCreatedAt.Default.(func() time.Time)
	// videoDescUpdatedAt is the schema descriptor for updated_at field.
	videoDescUpdatedAt := videoFields[12].Descriptor()
	// video.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	video.DefaultUpdatedAt = videoDescUpdatedAt.Default.(func() time.Time)
	// video.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	video.UpdateDefaultUpdatedAt = videoDescUpdatedAt.UpdateDefault.(func() time.Time)
	// videoDescID is the schema descriptor for id field.
	videoDescID := videoFields[0].Descriptor()
	// video.IDValidator is a validator for the "id" field. It is called by the builders before save.
	video.IDValidator = videoDescID.Validators[0].(func(string) error)
}
