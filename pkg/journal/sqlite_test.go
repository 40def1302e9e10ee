package journal_test

import (
	"context"
	"path/filepath"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"
	"go.uber.org/zap/zaptest"

	"droscher.com/BeerDiary/configs"
	"droscher.com/BeerDiary/pkg/journal"
	"droscher.com/BeerDiary/pkg/model"
	"droscher.com/BeerDiary/pkg/repository"
)

// SQLiteJournalSuite runs the store against a real SQLite database file.
type SQLiteJournalSuite struct {
	suite.Suite
	repo  *repository.Repository
	store *journal.Store
	ctx   context.Context
}

func TestSQLiteJournalSuite(t *testing.T) {
	suite.Run(t, new(SQLiteJournalSuite))
}

func (suite *SQLiteJournalSuite) SetupTest() {
	conf := &configs.Config{DB: configs.DB{
		Driver:             configs.DriverSQLite,
		Path:               filepath.Join(suite.T().TempDir(), "diary.db"),
		MaxIdleConnections: 1,
		MaxOpenConnections: 1,
	}}
	logger := zaptest.NewLogger(suite.T())

	repo, err := repository.Open(conf, logger)
	suite.Require().NoError(err)
	suite.Require().NoError(repo.Migrate())

	clock := func() time.Time { return time.Date(2024, 3, 17, 21, 30, 0, 0, time.UTC) }
	suite.repo = repo
	suite.store = journal.NewStore(repo, logger, journal.WithClock(clock))
	suite.ctx = context.Background()
}

func (suite *SQLiteJournalSuite) TearDownTest() {
	suite.repo.Close()
}

func (suite *SQLiteJournalSuite) list() []*model.TastingEntry {
	entries, err := suite.store.ListTastings(suite.ctx, "guest")
	suite.Require().NoError(err)

	return entries
}

func (suite *SQLiteJournalSuite) TestListTastings_EmptyJournal() {
	entries := suite.list()

	suite.NotNil(entries)
	suite.Empty(entries)
}

func (suite *SQLiteJournalSuite) TestReconcile_PersistsOnceWithAverage() {
	buffer := []model.TastingEntry{candidate("Pale Ale", "2024-01-01", 4)}

	synced, err := suite.store.Reconcile(suite.ctx, buffer, "guest")
	suite.Require().NoError(err)
	suite.Equal(1, synced)

	entries := suite.list()
	suite.Require().Len(entries, 1)
	suite.NotZero(entries[0].ID)
	suite.Equal("Pale Ale", entries[0].BeerID)
	suite.Equal("2024-01-01", entries[0].TastedOn)
	suite.InDelta(4.0, entries[0].AverageRating, 1e-9)

	synced, err = suite.store.Reconcile(suite.ctx, buffer, "guest")
	suite.Require().NoError(err)
	suite.Zero(synced)
	suite.Len(suite.list(), 1)
}

func (suite *SQLiteJournalSuite) TestReconcile_SkipsKeyAlreadyRecorded() {
	_, err := suite.store.RecordTasting(suite.ctx, candidate("Pale Ale", "2024-01-01", 3))
	suite.Require().NoError(err)

	synced, err := suite.store.Reconcile(suite.ctx, []model.TastingEntry{candidate("Pale Ale", "2024-01-01", 4)}, "guest")

	suite.Require().NoError(err)
	suite.Zero(synced)

	entries := suite.list()
	suite.Require().Len(entries, 1)
	suite.InDelta(3.0, entries[0].AverageRating, 1e-9)
}

func (suite *SQLiteJournalSuite) TestReconcile_FirstDuplicateWins() {
	first := candidate("Pale Ale", "2024-01-01", 4)
	first.UserNotes = "first"
	second := candidate("Pale Ale", "2024-01-01", 2)
	second.UserNotes = "second"

	synced, err := suite.store.Reconcile(suite.ctx, []model.TastingEntry{first, second}, "guest")

	suite.Require().NoError(err)
	suite.Equal(1, synced)

	entries := suite.list()
	suite.Require().Len(entries, 1)
	suite.Equal("first", entries[0].UserNotes)
}

func (suite *SQLiteJournalSuite) TestReconcile_ConcurrentCallsStoreOneRow() {
	buffer := []model.TastingEntry{candidate("Pale Ale", "2024-01-01", 4)}

	var (
		wg     sync.WaitGroup
		mu     sync.Mutex
		total  int
		failed []error
	)

	for i := 0; i < 8; i++ {
		wg.Add(1)

		go func() {
			defer wg.Done()

			synced, err := suite.store.Reconcile(suite.ctx, buffer, "guest")

			mu.Lock()
			defer mu.Unlock()

			total += synced
			if err != nil {
				failed = append(failed, err)
			}
		}()
	}

	wg.Wait()

	suite.Empty(failed)
	suite.Equal(1, total)
	suite.Len(suite.list(), 1)
}

func (suite *SQLiteJournalSuite) TestDeleteTasting_KeyNeverListedAgain() {
	for _, entry := range []model.TastingEntry{
		candidate("Pale Ale", "2024-01-01", 4),
		candidate("Pale Ale", "2024-01-01", 3),
		candidate("Stout", "2024-01-01", 5),
	} {
		_, err := suite.store.RecordTasting(suite.ctx, entry)
		suite.Require().NoError(err)
	}

	key := model.TastingKey{UserID: "guest", BeerID: "Pale Ale", TastedOn: "2024-01-01"}

	removal, err := suite.store.DeleteTasting(suite.ctx, key)
	suite.Require().NoError(err)
	suite.Equal(int64(2), removal.Rows)
	suite.Equal(key, removal.Key)

	entries := suite.list()
	suite.Require().Len(entries, 1)
	suite.Equal("Stout", entries[0].BeerID)

	removal, err = suite.store.DeleteTasting(suite.ctx, key)
	suite.Require().NoError(err)
	suite.Zero(removal.Rows)
}

func (suite *SQLiteJournalSuite) TestRecordTasting_InvalidScoreWritesNothing() {
	for _, score := range []float64{5.5, -1} {
		entry := candidate("Pale Ale", "2024-01-01", 4)
		entry.Taste = score

		saved, err := suite.store.RecordTasting(suite.ctx, entry)

		suite.Nil(saved)
		suite.ErrorIs(err, journal.ErrValidation)
	}

	suite.Empty(suite.list())
}

func (suite *SQLiteJournalSuite) TestListTastings_OrdersByDateThenInsertion() {
	for _, entry := range []model.TastingEntry{
		candidate("Pale Ale", "2024-01-01", 4),
		candidate("Stout", "2024-02-01", 4),
		candidate("Lager", "2024-01-01", 3),
		candidate("Porter", "", 3),
	} {
		_, err := suite.store.RecordTasting(suite.ctx, entry)
		suite.Require().NoError(err)
	}

	entries := suite.list()

	suite.Require().Len(entries, 4)
	suite.Equal("Porter", entries[0].BeerID)
	suite.Equal("2024-03-17", entries[0].TastedOn)
	suite.Equal("Stout", entries[1].BeerID)
	suite.Equal("Pale Ale", entries[2].BeerID)
	suite.Equal("Lager", entries[3].BeerID)
}
