package main

import (
	"time"

	"github.com/google/wire"
	"github.com/spf13/viper"

	"github.com/idelsangithub/business-logic-service/store/customer"
	"github.com/idelsangithub/business-logic-service/store/remote"
	"github.com/idelsangithub/business-logic-service/store/session"
	"github.com/idelsangithub/business-logic-service/store/transaction"
)

var storeSet = wire.NewSet(
	provideRemoteConfig,
	remote.New,
	customer.New,
	session.New,
	transaction.New,
)

func provideRemoteConfig(v *viper.Viper) remote.Config {
	v.SetDefault("store.timeout", 10*time.Second)

	return remote.Config{
		BaseURL: v.GetString("store.base_url"),
		Timeout: v.GetDuration("store.timeout"),
	}
}
