package queue

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/autopiloot/autopiloot/ent"
	"github.com/autopiloot/autopiloot/ent/job"
	"github.com/autopiloot/autopiloot/pkg/config"
	"github.com/autopiloot/autopiloot/pkg/orchestrator"
	"github.com/autopiloot/autopiloot/pkg/store"
	testdb "github.com/autopiloot/autopiloot/test/database"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// funcExecutor adapts a function to JobExecutor for tests.
type funcExecutor func(ctx context.Context, j *ent.Job) error

func (f funcExecutor) Execute(ctx context.Context, j *ent.Job) error { return f(ctx, j) }

// noopRegistry satisfies JobRegistry without a running pool.
type noopRegistry struct{}

func (noopRegistry) RegisterJob(string, context.CancelFunc) {}
func (noopRegistry) UnregisterJob(string)                   {}

func setupQueue(t *testing.T, agent job.Agent, executor JobExecutor) (*Worker, *store.Store) {
	client := testdb.NewTestClient(t)
	st := store.New(client.Client)
	settings := config.Default()
	orch := orchestrator.New(st, settings, nil)
	w := NewWorker("pod-test-"+string(agent)+"-worker-0", "pod-test", agent, st, orch, &settings.Queue, executor, noopRegistry{})
	return w, st
}

func pendingJob(t *testing.T, st *store.Store, jobID string, priority job.Priority) {
	t.Helper()
	_, err := st.CreateJob(context.Background(), store.JobInput{
		JobID:     jobID,
		Agent:     job.AgentTranscriber,
		JobType:   job.JobTypeSingleVideo,
		Inputs:    map[string]interface{}{"video_id": "dQw4w9WgXcQ"},
		Priority:  priority,
		CreatedBy: "test",
		VideoID:   "dQw4w9WgXcQ",
	})
	require.NoError(t, err)
}

func TestClaimNextJobPriorityOrder(t *testing.T) {
	w, st := setupQueue(t, job.AgentTranscriber, nil)
	ctx := context.Background()

	// Created low first: priority outranks FIFO.
	pendingJob(t, st, "job_low", job.PriorityLow)
	pendingJob(t, st, "job_medium_1", job.PriorityMedium)
	pendingJob(t, st, "job_medium_2", job.PriorityMedium)
	pendingJob(t, st, "job_high", job.PriorityHigh)

	claimed, err := w.claimNextJob(ctx)
	require.NoError(t, err)
	assert.Equal(t, "job_high", claimed.ID)
	assert.Equal(t, job.StatusInProgress, claimed.Status)
	require.NotNil(t, claimed.PodID)
	assert.Equal(t, "pod-test", *claimed.PodID)
	assert.NotNil(t, claimed.LastHeartbeatAt)

	// FIFO within a priority.
	claimed, err = w.claimNextJob(ctx)
	require.NoError(t, err)
	assert.Equal(t, "job_medium_1", claimed.ID)

	claimed, err = w.claimNextJob(ctx)
	require.NoError(t, err)
	assert.Equal(t, "job_medium_2", claimed.ID)

	claimed, err = w.claimNextJob(ctx)
	require.NoError(t, err)
	assert.Equal(t, "job_low", claimed.ID)

	_, err = w.claimNextJob(ctx)
	assert.ErrorIs(t, err, ErrNoJobsAvailable)
}

func TestClaimRespectsAgentBoundary(t *testing.T) {
	w, st := setupQueue(t, job.AgentScraper, nil)
	ctx := context.Background()

	pendingJob(t, st, "transcriber_job", job.PriorityHigh)

	_, err := w.claimNextJob(ctx)
	assert.ErrorIs(t, err, ErrNoJobsAvailable)
}

func TestPollAndProcessSuccess(t *testing.T) {
	var executed []string
	executor := funcExecutor(func(_ context.Context, j *ent.Job) error {
		executed = append(executed, j.ID)
		return nil
	})
	w, st := setupQueue(t, job.AgentTranscriber, executor)
	ctx := context.Background()

	pendingJob(t, st, "single_video_20250301_080000", job.PriorityMedium)

	require.NoError(t, w.pollAndProcess(ctx))
	assert.Equal(t, []string{"single_video_20250301_080000"}, executed)

	// Completed jobs live on only in the audit log.
	_, err := st.GetJob(ctx, "single_video_20250301_080000")
	assert.ErrorIs(t, err, store.ErrNotFound)

	entries, err := st.ListAuditEntriesBetween(ctx, "job_completed",
		time.Now().Add(-time.Hour), time.Now().Add(time.Hour), 10)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, "single_video_20250301_080000", entries[0].Details["job_id"])
}

func TestPollAndProcessRetryableFailure(t *testing.T) {
	executor := funcExecutor(func(context.Context, *ent.Job) error {
		return NewJobError("api_timeout", errors.New("connect timeout"))
	})
	w, st := setupQueue(t, job.AgentTranscriber, executor)
	ctx := context.Background()

	pendingJob(t, st, "single_video_20250301_080000", job.PriorityMedium)

	require.NoError(t, w.pollAndProcess(ctx))

	// Back to pending with the failure recorded; the next claim backs off.
	j, err := st.GetJob(ctx, "single_video_20250301_080000")
	require.NoError(t, err)
	assert.Equal(t, job.StatusPending, j.Status)
	assert.Equal(t, 1, j.RetryCount)
	require.NotNil(t, j.LastErrorType)
	assert.Equal(t, "api_timeout", *j.LastErrorType)

	_, err = st.GetDLQEntryByOriginalJob(ctx, "single_video_20250301_080000")
	assert.ErrorIs(t, err, store.ErrNotFound)
}

func TestPollAndProcessTerminalFailureRoutesDLQ(t *testing.T) {
	executor := funcExecutor(func(context.Context, *ent.Job) error {
		return NewJobError("invalid_video_id", errors.New("video id is malformed"))
	})
	w, st := setupQueue(t, job.AgentTranscriber, executor)
	ctx := context.Background()

	pendingJob(t, st, "single_video_20250301_080000", job.PriorityMedium)

	require.NoError(t, w.pollAndProcess(ctx))

	_, err := st.GetJob(ctx, "single_video_20250301_080000")
	assert.ErrorIs(t, err, store.ErrNotFound)

	entry, err := st.GetDLQEntryByOriginalJob(ctx, "single_video_20250301_080000")
	require.NoError(t, err)
	assert.Equal(t, "invalid_video_id", entry.ErrorType)
	assert.Equal(t, 1, entry.RetryCount)
	require.NotNil(t, entry.VideoID)
	assert.Equal(t, "dQw4w9WgXcQ", *entry.VideoID)
}

func TestPollAndProcessAtCapacity(t *testing.T) {
	w, st := setupQueue(t, job.AgentTranscriber, nil)
	ctx := context.Background()
	w.config.MaxConcurrentPerAgent = 1

	pendingJob(t, st, "claimed_job", job.PriorityMedium)
	_, err := w.claimNextJob(ctx)
	require.NoError(t, err)

	pendingJob(t, st, "waiting_job", job.PriorityMedium)
	err = w.pollAndProcess(ctx)
	assert.ErrorIs(t, err, ErrAtCapacity)
}

func TestPolicyGateRoutesExhaustedJobBeforeExecution(t *testing.T) {
	executed := false
	executor := funcExecutor(func(context.Context, *ent.Job) error {
		executed = true
		return nil
	})
	w, st := setupQueue(t, job.AgentTranscriber, executor)
	ctx := context.Background()

	pendingJob(t, st, "single_video_20250301_080000", job.PriorityMedium)

	// A job re-queued past its retry budget (orphan recovery keeps the
	// count) must go straight to the DLQ on the next claim.
	err := st.Client().Job.UpdateOneID("single_video_20250301_080000").
		SetRetryCount(3).
		Exec(ctx)
	require.NoError(t, err)

	require.NoError(t, w.pollAndProcess(ctx))
	assert.False(t, executed)

	entry, err := st.GetDLQEntryByOriginalJob(ctx, "single_video_20250301_080000")
	require.NoError(t, err)
	assert.Equal(t, 3, entry.RetryCount)
}

func TestDetectAndRecoverOrphans(t *testing.T) {
	client := testdb.NewTestClient(t)
	st := store.New(client.Client)
	settings := config.Default()
	orch := orchestrator.New(st, settings, nil)
	pool := NewWorkerPool("pod-test", job.AgentTranscriber, st, orch, &settings.Queue, nil)
	ctx := context.Background()

	pendingJob(t, st, "orphaned_job", job.PriorityMedium)
	stale := time.Now().UTC().Add(-time.Hour)
	err := st.Client().Job.UpdateOneID("orphaned_job").
		SetStatus(job.StatusInProgress).
		SetPodID("pod-dead").
		SetLastHeartbeatAt(stale).
		Exec(ctx)
	require.NoError(t, err)

	pendingJob(t, st, "healthy_job", job.PriorityMedium)
	err = st.Client().Job.UpdateOneID("healthy_job").
		SetStatus(job.StatusInProgress).
		SetPodID("pod-live").
		SetLastHeartbeatAt(time.Now().UTC()).
		Exec(ctx)
	require.NoError(t, err)

	require.NoError(t, pool.detectAndRecoverOrphans(ctx))

	j, err := st.GetJob(ctx, "orphaned_job")
	require.NoError(t, err)
	assert.Equal(t, job.StatusPending, j.Status)
	assert.Nil(t, j.PodID)
	assert.Nil(t, j.LastHeartbeatAt)

	j, err = st.GetJob(ctx, "healthy_job")
	require.NoError(t, err)
	assert.Equal(t, job.StatusInProgress, j.Status)

	assert.Equal(t, 1, pool.orphans.orphansRecovered)
}

func TestCleanupStartupOrphans(t *testing.T) {
	client := testdb.NewTestClient(t)
	st := store.New(client.Client)
	ctx := context.Background()

	pendingJob(t, st, "mine", job.PriorityMedium)
	require.NoError(t, st.Client().Job.UpdateOneID("mine").
		SetStatus(job.StatusInProgress).
		SetPodID("pod-test").
		SetLastHeartbeatAt(time.Now().UTC()).
		Exec(ctx))

	pendingJob(t, st, "theirs", job.PriorityMedium)
	require.NoError(t, st.Client().Job.UpdateOneID("theirs").
		SetStatus(job.StatusInProgress).
		SetPodID("pod-other").
		SetLastHeartbeatAt(time.Now().UTC()).
		Exec(ctx))

	require.NoError(t, CleanupStartupOrphans(ctx, st.Client(), "pod-test"))

	j, err := st.GetJob(ctx, "mine")
	require.NoError(t, err)
	assert.Equal(t, job.StatusPending, j.Status)
	assert.Nil(t, j.PodID)

	j, err = st.GetJob(ctx, "theirs")
	require.NoError(t, err)
	assert.Equal(t, job.StatusInProgress, j.Status)
}
