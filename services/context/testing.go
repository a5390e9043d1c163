package context

import (
	globalConfig "github.com/remivalade/MintMyMood/config"
	"github.com/remivalade/MintMyMood/database"
	"github.com/remivalade/MintMyMood/services/config"
	"github.com/remivalade/MintMyMood/utils/chain"
)

func BuildTestContext(cfg *config.Config) (ServicesContext, error) {
	ctx := servicesContext{}
	var err error

	ctx.config = cfg
	globalConfig.GlobalConfigCallback.Call(cfg)

	ctx.db, err = database.ConnectAndInitializeTestDB()
	if err != nil {
		return nil, err
	}

	ctx.chains = chain.NewRegistry(cfg.Chains)
	return &ctx, nil
}
