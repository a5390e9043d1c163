package cronjob

import (
	"time"

	"github.com/remivalade/MintMyMood/config"
	"github.com/remivalade/MintMyMood/database"
	"github.com/remivalade/MintMyMood/logger"
	"github.com/remivalade/MintMyMood/utils"

	"gorm.io/gorm"
)

const defaultExpiryTimeoutSeconds = 60

// Removes ephemeral thoughts whose retention window has passed. Pending
// and minted thoughts are never touched, whatever their expiry column
// says.
type expiryCronjob struct {
	db      *gorm.DB
	enabled bool
	timeout time.Duration

	// For testing to set "now" to some fixed date
	time utils.ShiftedTime
}

func NewExpiryCronjob(db *gorm.DB, cfg config.CronjobConfig) Cronjob {
	timeoutSeconds := cfg.TimeoutSeconds
	if timeoutSeconds <= 0 {
		timeoutSeconds = defaultExpiryTimeoutSeconds
	}
	return &expiryCronjob{
		db:      db,
		enabled: cfg.Enabled,
		timeout: time.Duration(timeoutSeconds) * time.Second,
	}
}

func (c *expiryCronjob) Name() string {
	return "expiry"
}

func (c *expiryCronjob) Enabled() bool {
	return c.enabled
}

func (c *expiryCronjob) Timeout() time.Duration {
	return c.timeout
}

func (c *expiryCronjob) OnStart() error {
	return nil
}

func (c *expiryCronjob) Call() error {
	count, err := database.DeleteExpiredThoughts(c.db, c.time.Now())
	if err != nil {
		return err
	}
	if count > 0 {
		thoughtsExpired.Add(float64(count))
		logger.Debug("expired %d thoughts", count)
	}
	return nil
}
