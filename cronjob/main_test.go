package cronjob

import (
	"testing"

	"github.com/remivalade/MintMyMood/database"

	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

type testDBConn struct {
	db *gorm.DB
}

func newTestDBConn(t *testing.T) *testDBConn {
	t.Helper()
	db, err := database.ConnectAndInitializeTestDB()
	require.NoError(t, err)
	return &testDBConn{db: db}
}
