package database

import (
	"testing"
	"time"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

const (
	testOwner    = "0xabcd000000000000000000000000000000001234"
	testContract = "0x1111111111111111111111111111111111111111"
)

func testDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := ConnectAndInitializeTestDB()
	require.NoError(t, err)
	return db
}

func newEphemeralThought(id string, expiresAt time.Time) *Thought {
	return &Thought{
		ID:           id,
		OwnerAddress: testOwner,
		Text:         "a fleeting thought",
		Mood:         MoodPeaceful,
		MintState:    MintStateEphemeral,
		ExpiresAt:    &expiresAt,
	}
}

func TestThoughtCRUD(t *testing.T) {
	db := testDB(t)

	thought := newEphemeralThought("t1", time.Now().Add(10*time.Minute))
	require.NoError(t, CreateThought(db, thought))

	fetched, err := FetchThought(db, "t1")
	require.NoError(t, err)
	require.Equal(t, "a fleeting thought", fetched.Text)
	require.Equal(t, MoodPeaceful, fetched.Mood)
	require.Equal(t, MintStateEphemeral, fetched.MintState)

	fetched.Text = "a revised thought"
	fetched.Mood = MoodReflective
	require.NoError(t, UpdateThought(db, fetched))

	fetched, err = FetchThought(db, "t1")
	require.NoError(t, err)
	require.Equal(t, "a revised thought", fetched.Text)

	require.NoError(t, DeleteThought(db, "t1"))
	_, err = FetchThought(db, "t1")
	require.ErrorIs(t, err, gorm.ErrRecordNotFound)
}

func TestFetchThoughtsForOwner(t *testing.T) {
	db := testDB(t)

	require.NoError(t, CreateThought(db, newEphemeralThought("t1", time.Now().Add(time.Hour))))
	require.NoError(t, CreateThought(db, &Thought{
		ID:           "t2",
		OwnerAddress: "0x9999999999999999999999999999999999999999",
		Text:         "someone else's thought",
		Mood:         MoodDreamy,
		MintState:    MintStateEphemeral,
	}))

	// Address lookups are case-insensitive
	thoughts, err := FetchThoughtsForOwner(db, "0xABCD000000000000000000000000000000001234")
	require.NoError(t, err)
	require.Len(t, thoughts, 1)
	require.Equal(t, "t1", thoughts[0].ID)
}

func TestDeleteExpiredThoughts(t *testing.T) {
	db := testDB(t)
	now := time.Now()

	require.NoError(t, CreateThought(db, newEphemeralThought("expired", now.Add(-time.Minute))))
	require.NoError(t, CreateThought(db, newEphemeralThought("fresh", now.Add(time.Hour))))

	pending := newEphemeralThought("pending", now.Add(-time.Minute))
	pending.MintState = MintStatePending
	require.NoError(t, CreateThought(db, pending))

	count, err := DeleteExpiredThoughts(db, now)
	require.NoError(t, err)
	require.EqualValues(t, 1, count)

	_, err = FetchThought(db, "expired")
	require.ErrorIs(t, err, gorm.ErrRecordNotFound)
	_, err = FetchThought(db, "fresh")
	require.NoError(t, err)
	_, err = FetchThought(db, "pending")
	require.NoError(t, err)
}

func TestReturnThoughtToEphemeral(t *testing.T) {
	db := testDB(t)
	now := time.Now()

	pending := newEphemeralThought("t1", now.Add(-time.Minute))
	pending.MintState = MintStatePending
	require.NoError(t, CreateThought(db, pending))

	expiresAt := now.Add(10 * time.Minute)
	require.NoError(t, ReturnThoughtToEphemeral(db, "t1", expiresAt))

	fetched, err := FetchThought(db, "t1")
	require.NoError(t, err)
	require.Equal(t, MintStateEphemeral, fetched.MintState)
	require.WithinDuration(t, expiresAt, *fetched.ExpiresAt, time.Second)

	// A no-op for thoughts that are not pending
	require.NoError(t, FinalizeThoughtMint(db, finalizeInput("t1")))
	require.NoError(t, ReturnThoughtToEphemeral(db, "t1", now))
	fetched, err = FetchThought(db, "t1")
	require.NoError(t, err)
	require.Equal(t, MintStateMinted, fetched.MintState)
}

func finalizeInput(thoughtID string) *FinalizeThoughtMintInput {
	return &FinalizeThoughtMintInput{
		ThoughtID:       thoughtID,
		ChainID:         84532,
		TokenID:         "3",
		ContractAddress: testContract,
		TxHash:          "0xaaaa",
		BlockNumber:     424242,
	}
}

func TestFinalizeThoughtMint(t *testing.T) {
	db := testDB(t)
	require.NoError(t, CreateThought(db, newEphemeralThought("t1", time.Now().Add(time.Hour))))

	require.NoError(t, FinalizeThoughtMint(db, finalizeInput("t1")))

	fetched, err := FetchThought(db, "t1")
	require.NoError(t, err)
	require.Equal(t, MintStateMinted, fetched.MintState)
	require.EqualValues(t, 84532, *fetched.OriginChainID)
	require.EqualValues(t, 84532, *fetched.CurrentChainID)
	require.Equal(t, "3", *fetched.TokenID)
	require.Equal(t, testContract, *fetched.ContractAddress)
	require.Equal(t, "0xaaaa", *fetched.TxHash)
	require.EqualValues(t, 424242, *fetched.MintedBlock)
	require.Nil(t, fetched.ExpiresAt)
}

func TestFinalizeThoughtMintIdempotent(t *testing.T) {
	db := testDB(t)
	require.NoError(t, CreateThought(db, newEphemeralThought("t1", time.Now().Add(time.Hour))))

	require.NoError(t, FinalizeThoughtMint(db, finalizeInput("t1")))

	// Same tx hash again is a no-op
	require.NoError(t, FinalizeThoughtMint(db, finalizeInput("t1")))

	// A different tx hash for a minted thought is refused
	conflicting := finalizeInput("t1")
	conflicting.TxHash = "0xbbbb"
	require.Error(t, FinalizeThoughtMint(db, conflicting))

	fetched, err := FetchThought(db, "t1")
	require.NoError(t, err)
	require.Equal(t, "0xaaaa", *fetched.TxHash)
}

func TestFinalizeThoughtMintUnknownThought(t *testing.T) {
	db := testDB(t)
	require.Error(t, FinalizeThoughtMint(db, finalizeInput("missing")))
}

func TestDoInTransactionRollsBack(t *testing.T) {
	db := testDB(t)

	err := DoInTransaction(db,
		func(tx *gorm.DB) error {
			return CreateThought(tx, newEphemeralThought("t1", time.Now().Add(time.Hour)))
		},
		func(tx *gorm.DB) error {
			return errors.New("second operation failed")
		},
	)
	require.Error(t, err)

	// The first operation must not have been committed
	_, err = FetchThought(db, "t1")
	require.ErrorIs(t, err, gorm.ErrRecordNotFound)
}

func TestRecordThoughtBridge(t *testing.T) {
	db := testDB(t)
	require.NoError(t, CreateThought(db, newEphemeralThought("t1", time.Now().Add(time.Hour))))

	bridge := &RecordThoughtBridgeInput{
		ThoughtID:       "t1",
		NewChainID:      808813,
		ContractAddress: "0x2222222222222222222222222222222222222222",
		BridgeTxHash:    "0xcccc",
	}

	// Bridging requires a minted thought
	require.Error(t, RecordThoughtBridge(db, bridge))

	require.NoError(t, FinalizeThoughtMint(db, finalizeInput("t1")))
	require.NoError(t, RecordThoughtBridge(db, bridge))

	fetched, err := FetchThought(db, "t1")
	require.NoError(t, err)
	require.Equal(t, MintStateMinted, fetched.MintState)
	require.EqualValues(t, 84532, *fetched.OriginChainID)
	require.EqualValues(t, 808813, *fetched.CurrentChainID)
	require.Equal(t, "0x2222222222222222222222222222222222222222", *fetched.ContractAddress)
	require.Equal(t, "0xcccc", *fetched.LastBridgeTx)
	require.EqualValues(t, 1, fetched.BridgeCount)
}

func TestPendingMints(t *testing.T) {
	db := testDB(t)

	first := &PendingMint{
		ThoughtID:       "t1",
		ChainID:         84532,
		ContractAddress: testContract,
		TxHash:          "0xaaaa",
		SubmittedAt:     time.Now().Add(-time.Minute),
	}
	second := &PendingMint{
		ThoughtID:       "t2",
		ChainID:         60808,
		ContractAddress: testContract,
		TxHash:          "0xbbbb",
		SubmittedAt:     time.Now(),
	}
	require.NoError(t, CreatePendingMint(db, second))
	require.NoError(t, CreatePendingMint(db, first))

	pending, err := FetchPendingMints(db)
	require.NoError(t, err)
	require.Len(t, pending, 2)
	require.Equal(t, "0xaaaa", pending[0].TxHash)
	require.Equal(t, "0xbbbb", pending[1].TxHash)

	require.NoError(t, DeletePendingMint(db, "0xaaaa"))
	pending, err = FetchPendingMints(db)
	require.NoError(t, err)
	require.Len(t, pending, 1)
	require.Equal(t, "t2", pending[0].ThoughtID)
}

func TestFetchUserStats(t *testing.T) {
	db := testDB(t)

	require.NoError(t, CreateThought(db, newEphemeralThought("draft", time.Now().Add(time.Hour))))

	for i, id := range []string{"m1", "m2"} {
		require.NoError(t, CreateThought(db, newEphemeralThought(id, time.Now().Add(time.Hour))))
		in := finalizeInput(id)
		in.TokenID = []string{"10", "11"}[i]
		in.TxHash = []string{"0xa1", "0xa2"}[i]
		require.NoError(t, FinalizeThoughtMint(db, in))
	}

	// m2 bridged to another chain
	require.NoError(t, RecordThoughtBridge(db, &RecordThoughtBridgeInput{
		ThoughtID:       "m2",
		NewChainID:      808813,
		ContractAddress: "0x2222222222222222222222222222222222222222",
		BridgeTxHash:    "0xcccc",
	}))

	stats, err := FetchUserStats(db, testOwner)
	require.NoError(t, err)
	require.EqualValues(t, 3, stats.TotalThoughts)
	require.EqualValues(t, 2, stats.MintedThoughts)
	require.EqualValues(t, 1, stats.EphemeralThoughts)
	require.EqualValues(t, 1, stats.TotalBridges)
	require.EqualValues(t, 2, stats.ChainsUsed)

	empty, err := FetchUserStats(db, "0x9999999999999999999999999999999999999999")
	require.NoError(t, err)
	require.EqualValues(t, 0, empty.TotalThoughts)
}
