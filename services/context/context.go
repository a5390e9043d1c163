package context

import (
	globalConfig "github.com/remivalade/MintMyMood/config"
	"github.com/remivalade/MintMyMood/database"
	"github.com/remivalade/MintMyMood/services/config"
	"github.com/remivalade/MintMyMood/utils/chain"

	"gorm.io/gorm"
)

type ServicesContext interface {
	Config() *config.Config
	DB() *gorm.DB
	Chains() *chain.Registry
}

type servicesContext struct {
	config *config.Config
	db     *gorm.DB
	chains *chain.Registry
}

func BuildContext() (ServicesContext, error) {
	ctx := servicesContext{}

	cfg, err := config.BuildConfig()
	if err != nil {
		return nil, err
	}
	ctx.config = cfg
	globalConfig.GlobalConfigCallback.Call(cfg)

	ctx.db, err = database.Connect(&cfg.DB)
	if err != nil {
		return nil, err
	}

	ctx.chains = chain.NewRegistry(cfg.Chains)

	return &ctx, nil
}

func (c *servicesContext) Config() *config.Config { return c.config }

func (c *servicesContext) DB() *gorm.DB { return c.db }

func (c *servicesContext) Chains() *chain.Registry { return c.chains }
