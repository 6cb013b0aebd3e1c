package service

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/MKhiriev/go-space-sync/internal/adapter"
	"github.com/MKhiriev/go-space-sync/internal/errbuffer"
	"github.com/MKhiriev/go-space-sync/internal/logger"
	"github.com/MKhiriev/go-space-sync/internal/mock"
	"github.com/MKhiriev/go-space-sync/internal/store"
	"github.com/MKhiriev/go-space-sync/internal/utils"
	"github.com/MKhiriev/go-space-sync/models"
	"github.com/go-git/go-billy/v5/memfs"
	"github.com/go-git/go-billy/v5/util"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

// Hand-written stubs for the service-level collaborators; mockgen mocks of
// this package would import it back.

type stubFactory struct {
	clients *adapter.Clients
	err     error
	calls   int
	opts    adapter.Options
}

func (s *stubFactory) NewClients(_ context.Context, opts adapter.Options) (*adapter.Clients, error) {
	s.calls++
	s.opts = opts
	if s.err != nil {
		return nil, s.err
	}
	return s.clients, nil
}

type stubSourceFetcher struct {
	delta models.SourceDelta
	err   error
	token string
	calls int
}

func (s *stubSourceFetcher) Fetch(ctx context.Context, _ adapter.SourceAdapter, token string) (models.SourceDelta, error) {
	s.calls++
	s.token = token
	return s.delta, s.err
}

type stubDestinationFetcher struct {
	snapshot models.DestinationSnapshot
	err      error
	// block waits for the sibling fetch to cancel the shared context.
	block bool
	calls int
}

func (s *stubDestinationFetcher) Fetch(ctx context.Context, _ adapter.DestinationAdapter) (models.DestinationSnapshot, error) {
	s.calls++
	if s.block {
		<-ctx.Done()
		return models.DestinationSnapshot{}, ctx.Err()
	}
	return s.snapshot, s.err
}

type stubTransformer struct {
	err   error
	calls int
}

func (s *stubTransformer) Transform(_ context.Context, content models.SourceContent) (models.SourceContent, error) {
	s.calls++
	if s.err != nil {
		return models.SourceContent{}, s.err
	}
	return content, nil
}

// stubPusher records what it was asked to push and optionally simulates item
// failures by pushing records into the buffer before returning err.
type stubPusher struct {
	buffer   *errbuffer.Buffer
	failures []models.ErrorRecord
	err      error

	mu     sync.Mutex
	calls  int
	pushed models.MergedContent
}

func (s *stubPusher) Push(_ context.Context, _ adapter.DestinationAdapter, content models.MergedContent) (*models.PushResult, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.calls++
	s.pushed = content

	result := models.NewPushResult()
	for _, f := range s.failures {
		s.buffer.Push(f)
		result.Add(f.Family, func(st *models.FamilyStats) { st.Failed++ })
	}
	return result, s.err
}

type runnerFixture struct {
	factory     *stubFactory
	source      *stubSourceFetcher
	destination *stubDestinationFetcher
	transformer *stubTransformer
	pusher      *stubPusher
	tokens      *mock.MockTokenStore
	errorLog    *mock.MockErrorLog
	buffer      *errbuffer.Buffer
	runner      *Runner
}

func newRunnerFixture(t *testing.T) *runnerFixture {
	t.Helper()
	ctrl := gomock.NewController(t)
	buffer := errbuffer.New()

	f := &runnerFixture{
		factory:     &stubFactory{clients: &adapter.Clients{}},
		source:      &stubSourceFetcher{delta: scenarioDelta()},
		destination: &stubDestinationFetcher{snapshot: scenarioSnapshot()},
		transformer: &stubTransformer{},
		pusher:      &stubPusher{buffer: buffer},
		tokens:      mock.NewMockTokenStore(ctrl),
		errorLog:    mock.NewMockErrorLog(ctrl),
		buffer:      buffer,
	}
	f.runner = NewRunner(RunnerDeps{
		Factory:     f.factory,
		Source:      f.source,
		Destination: f.destination,
		Transformer: f.transformer,
		Pusher:      f.pusher,
		TokenStore:  f.tokens,
		ErrorLog:    f.errorLog,
		Buffer:      buffer,
		Logger:      logger.Nop(),
	})
	return f
}

func testRunConfig() RunConfig {
	return RunConfig{
		Opts:          adapter.Options{UserAgent: "test"},
		PreviousToken: "prevtoken",
		SyncTokenFile: "synctokenfile",
		ErrorLogFile:  "errorlogfile",
	}
}

// ── happy path ───────────────────────────────────────────────────────────────

func TestRunner_Scenario(t *testing.T) {
	f := newRunnerFixture(t)
	ctx := context.Background()

	// The buffer already holds a failure from before the run.
	earlier := models.ErrorRecord{EntityID: "earlier", Request: &models.RequestDetail{URL: "erroruri"}}
	f.buffer.Push(earlier)

	gomock.InOrder(
		f.tokens.EXPECT().Save(gomock.Any(), "synctokenfile", "nextsynctoken").Return(nil),
		f.errorLog.EXPECT().Dump(gomock.Any(), "errorlogfile", []models.ErrorRecord{earlier}).Return(nil),
	)

	require.NoError(t, f.runner.Run(ctx, testRunConfig()))

	assert.Equal(t, 1, f.factory.calls)
	assert.Equal(t, "test", f.factory.opts.UserAgent, "options are passed through as is")
	assert.Equal(t, 1, f.source.calls)
	assert.Equal(t, "prevtoken", f.source.token)
	assert.Equal(t, 1, f.destination.calls)
	assert.Equal(t, 1, f.transformer.calls)
	require.Equal(t, 1, f.pusher.calls)

	src := f.pusher.pushed.SourceContent
	assert.Equal(t, []models.Entity{ct("doesntexist")}, src.DeletedContentTypes)
	assert.Equal(t, []models.Entity{loc("en-GB")}, src.DeletedLocales)
	assert.Equal(t, items(ct("exists")), src.ContentTypes)
	assert.Equal(t, items(loc("en-US")), src.Locales)
	assert.Equal(t, "nextsynctoken", src.NextSyncToken)
	assert.Equal(t, scenarioSnapshot(), f.pusher.pushed.DestinationContent)

	assert.Equal(t, 0, f.buffer.Len(), "buffer is drained")
	assert.Equal(t, models.RunDone, f.runner.State())
}

// TestRunner_TokenIsWrittenVerbatim checks the token file gets exactly the
// token of the current fetch.
func TestRunner_TokenIsWrittenVerbatim(t *testing.T) {
	tokens := []string{"plain", "  padded  ", "with/slashes+and=equals", "ünïcødé"}

	for _, token := range tokens {
		t.Run(token, func(t *testing.T) {
			f := newRunnerFixture(t)
			f.source.delta.NextSyncToken = token

			f.tokens.EXPECT().Save(gomock.Any(), "synctokenfile", token).Return(nil)
			f.errorLog.EXPECT().Dump(gomock.Any(), "errorlogfile", []models.ErrorRecord{}).Return(nil)

			require.NoError(t, f.runner.Run(context.Background(), testRunConfig()))
			assert.Equal(t, token, f.pusher.pushed.SourceContent.NextSyncToken)
		})
	}
}

// TestRunner_ItemFailuresDoNotFailTheRun checks token persistence and the
// flush still happen exactly once when items fail.
func TestRunner_ItemFailuresDoNotFailTheRun(t *testing.T) {
	f := newRunnerFixture(t)
	f.pusher.failures = []models.ErrorRecord{
		{Family: models.FamilyEntries, EntityID: "e1", Operation: opPublish},
		{Family: models.FamilyAssets, EntityID: "a1", Operation: opProcess},
	}

	f.tokens.EXPECT().Save(gomock.Any(), "synctokenfile", "nextsynctoken").Return(nil).Times(1)
	f.errorLog.EXPECT().
		Dump(gomock.Any(), "errorlogfile", gomock.Len(2)).
		DoAndReturn(func(_ context.Context, _ string, records []models.ErrorRecord) error {
			ids := []string{records[0].EntityID, records[1].EntityID}
			assert.ElementsMatch(t, []string{"e1", "a1"}, ids)
			return nil
		}).
		Times(1)

	require.NoError(t, f.runner.Run(context.Background(), testRunConfig()))
	assert.Equal(t, models.RunDone, f.runner.State())
	assert.Equal(t, 0, f.buffer.Len())
}

func TestRunner_UsesRunIDFromContext(t *testing.T) {
	f := newRunnerFixture(t)
	ctx := utils.WithRunID(context.Background(), "run-42")

	var seen string
	f.tokens.EXPECT().Save(gomock.Any(), gomock.Any(), gomock.Any()).
		DoAndReturn(func(ctx context.Context, _, _ string) error {
			seen, _ = utils.GetRunIDFromContext(ctx)
			return nil
		})
	f.errorLog.EXPECT().Dump(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)

	require.NoError(t, f.runner.Run(ctx, testRunConfig()))
	assert.Equal(t, "run-42", seen)
}

// ── fatal failures ───────────────────────────────────────────────────────────

func TestRunner_FatalFailuresLeaveTheTokenAlone(t *testing.T) {
	boom := errors.New("boom")

	tests := []struct {
		name      string
		setup     func(f *runnerFixture)
		wantKind  error
		wantState models.RunState
	}{
		{
			name:      "client factory",
			setup:     func(f *runnerFixture) { f.factory.err = adapter.ErrInvalidOptions },
			wantKind:  ErrFatalConfig,
			wantState: models.RunInitializing,
		},
		{
			name:      "source fetch",
			setup:     func(f *runnerFixture) { f.source.err = boom },
			wantKind:  ErrFetch,
			wantState: models.RunFetchingBoth,
		},
		{
			name: "source fetch cancels destination fetch",
			setup: func(f *runnerFixture) {
				f.source.err = boom
				f.destination.block = true
			},
			wantKind:  ErrFetch,
			wantState: models.RunFetchingBoth,
		},
		{
			name:      "destination fetch",
			setup:     func(f *runnerFixture) { f.destination.err = adapter.ErrUnauthorized },
			wantKind:  ErrFetch,
			wantState: models.RunFetchingBoth,
		},
		{
			name:      "malformed delta",
			setup:     func(f *runnerFixture) { f.source.delta.NextSyncToken = "" },
			wantKind:  ErrMalformedContent,
			wantState: models.RunReconciling,
		},
		{
			name: "malformed snapshot",
			setup: func(f *runnerFixture) {
				f.destination.snapshot.ContentTypes = append(f.destination.snapshot.ContentTypes, models.Entity{})
			},
			wantKind:  ErrMalformedContent,
			wantState: models.RunReconciling,
		},
		{
			name:      "transform",
			setup:     func(f *runnerFixture) { f.transformer.err = boom },
			wantKind:  ErrTransform,
			wantState: models.RunTransforming,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newRunnerFixture(t)
			tt.setup(f)
			// No EXPECT on the token store or the error log: any call fails the test.

			err := f.runner.Run(context.Background(), testRunConfig())
			require.Error(t, err)
			assert.ErrorIs(t, err, tt.wantKind)

			var runErr *RunError
			require.ErrorAs(t, err, &runErr)
			assert.Equal(t, tt.wantState, runErr.State)
			assert.Equal(t, models.RunFailed, f.runner.State())
		})
	}
}

func TestRunner_ErrorsKeepTheirCause(t *testing.T) {
	f := newRunnerFixture(t)
	f.destination.err = adapter.ErrUnauthorized

	err := f.runner.Run(context.Background(), testRunConfig())
	assert.ErrorIs(t, err, ErrFetch)
	assert.ErrorIs(t, err, adapter.ErrUnauthorized)
	assert.NotErrorIs(t, err, ErrPush)
}

func TestRunner_MalformedContentIsReported(t *testing.T) {
	f := newRunnerFixture(t)
	f.source.delta.Locales = items(models.Entity{"name": "no code"})

	err := f.runner.Run(context.Background(), testRunConfig())

	var malformed *MalformedContentError
	require.ErrorAs(t, err, &malformed)
	assert.Equal(t, models.FamilyLocales, malformed.Family)
	assert.Equal(t, 0, f.pusher.calls, "nothing is pushed")
}

// TestRunner_FailedPushIsFlushed checks item failures recorded before a total
// push failure reach the error log while the token file stays untouched.
func TestRunner_FailedPushIsFlushed(t *testing.T) {
	f := newRunnerFixture(t)
	earlier := models.ErrorRecord{EntityID: "earlier"}
	f.buffer.Push(earlier)
	f.pusher.failures = []models.ErrorRecord{{Family: models.FamilyAssets, EntityID: "a1", Operation: opProcess}}
	f.pusher.err = adapter.ErrUnreachable

	// No EXPECT on the token store: a Save call fails the test.
	f.errorLog.EXPECT().
		Dump(gomock.Any(), "errorlogfile", gomock.Len(2)).
		DoAndReturn(func(_ context.Context, _ string, records []models.ErrorRecord) error {
			ids := []string{records[0].EntityID, records[1].EntityID}
			assert.ElementsMatch(t, []string{"earlier", "a1"}, ids)
			return nil
		}).
		Times(1)

	err := f.runner.Run(context.Background(), testRunConfig())
	assert.ErrorIs(t, err, ErrPush)
	assert.ErrorIs(t, err, adapter.ErrUnreachable)

	var runErr *RunError
	require.ErrorAs(t, err, &runErr)
	assert.Equal(t, models.RunPushing, runErr.State)
	assert.Equal(t, models.RunFailed, f.runner.State())
	assert.Equal(t, 0, f.buffer.Len(), "buffer is drained")
}

func TestRunner_CancelledPushIsFlushed(t *testing.T) {
	f := newRunnerFixture(t)
	f.pusher.failures = []models.ErrorRecord{{Family: models.FamilyEntries, EntityID: "e1"}}
	f.pusher.err = context.Canceled

	f.errorLog.EXPECT().
		Dump(gomock.Any(), "errorlogfile", gomock.Len(1)).
		DoAndReturn(func(ctx context.Context, _ string, _ []models.ErrorRecord) error {
			assert.NoError(t, ctx.Err(), "the flush is not cancelled with the run")
			return nil
		}).
		Times(1)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := f.runner.Run(ctx, testRunConfig())
	assert.ErrorIs(t, err, ErrPush)
}

func TestRunner_PersistenceFailures(t *testing.T) {
	t.Run("token save", func(t *testing.T) {
		f := newRunnerFixture(t)
		f.pusher.failures = []models.ErrorRecord{{Family: models.FamilyEntries, EntityID: "e1"}}
		f.tokens.EXPECT().Save(gomock.Any(), gomock.Any(), gomock.Any()).Return(store.ErrWritingFile)
		f.errorLog.EXPECT().Dump(gomock.Any(), "errorlogfile", gomock.Len(1)).Return(nil).Times(1)

		err := f.runner.Run(context.Background(), testRunConfig())
		assert.ErrorIs(t, err, ErrPersistence)
		assert.ErrorIs(t, err, store.ErrWritingFile)
		assert.Equal(t, 1, f.pusher.calls, "the push is not rolled back")
		assert.Equal(t, 0, f.buffer.Len())

		var runErr *RunError
		require.ErrorAs(t, err, &runErr)
		assert.Equal(t, models.RunPersisting, runErr.State)
	})

	t.Run("token save and error log", func(t *testing.T) {
		f := newRunnerFixture(t)
		f.pusher.failures = []models.ErrorRecord{{Family: models.FamilyEntries, EntityID: "e1"}}
		dumpErr := errors.New("disk full")
		f.tokens.EXPECT().Save(gomock.Any(), gomock.Any(), gomock.Any()).Return(store.ErrWritingFile)
		f.errorLog.EXPECT().Dump(gomock.Any(), gomock.Any(), gomock.Any()).Return(dumpErr).Times(1)

		err := f.runner.Run(context.Background(), testRunConfig())
		assert.ErrorIs(t, err, ErrPersistence)
		assert.ErrorIs(t, err, store.ErrWritingFile)
		assert.ErrorIs(t, err, dumpErr, "the dump error is joined")
		assert.Equal(t, 1, f.buffer.Len(), "records stay buffered when the dump fails")
	})

	t.Run("error log", func(t *testing.T) {
		f := newRunnerFixture(t)
		f.tokens.EXPECT().Save(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)
		f.errorLog.EXPECT().Dump(gomock.Any(), gomock.Any(), gomock.Any()).Return(store.ErrWritingFile)

		err := f.runner.Run(context.Background(), testRunConfig())
		assert.ErrorIs(t, err, ErrPersistence)

		var runErr *RunError
		require.ErrorAs(t, err, &runErr)
		assert.Equal(t, models.RunFlushing, runErr.State)
	})
}

// ── with file stores ─────────────────────────────────────────────────────────

func TestRunner_WithFileStores(t *testing.T) {
	fs := memfs.New()
	storages := store.NewStorages(fs, logger.Nop())
	buffer := errbuffer.New()

	failing := &stubPusher{buffer: buffer, failures: []models.ErrorRecord{{Family: models.FamilyEntries, EntityID: "e1"}}}
	runner := NewRunner(RunnerDeps{
		Factory:     &stubFactory{clients: &adapter.Clients{}},
		Source:      &stubSourceFetcher{delta: scenarioDelta()},
		Destination: &stubDestinationFetcher{snapshot: scenarioSnapshot()},
		Transformer: NewContentTransformer(),
		Pusher:      failing,
		TokenStore:  storages.TokenStore,
		ErrorLog:    storages.ErrorLog,
		Buffer:      buffer,
		Logger:      logger.Nop(),
	})

	require.NoError(t, runner.Run(context.Background(), testRunConfig()))

	token, err := util.ReadFile(fs, "synctokenfile")
	require.NoError(t, err)
	assert.Equal(t, "nextsynctoken", string(token))

	log, err := util.ReadFile(fs, "errorlogfile")
	require.NoError(t, err)
	assert.Contains(t, string(log), `"entityId": "e1"`)

	// The transformer ran for real before the push.
	require.Len(t, failing.pushed.SourceContent.ContentTypes, 1)
	assert.NotNil(t, failing.pushed.SourceContent.ContentTypes[0].Transformed)

	// A clean second run keeps the previous error log.
	failing.failures = nil
	require.NoError(t, runner.Run(context.Background(), testRunConfig()))
	log, err = util.ReadFile(fs, "errorlogfile")
	require.NoError(t, err)
	assert.Contains(t, string(log), `"entityId": "e1"`)
}
