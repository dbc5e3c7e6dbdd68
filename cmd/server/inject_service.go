package main

import (
	"log/slog"

	"github.com/google/wire"
	"github.com/spf13/viper"

	"github.com/idelsangithub/business-logic-service/core"
	"github.com/idelsangithub/business-logic-service/service/notify"
	"github.com/idelsangithub/business-logic-service/service/payment"
	"github.com/idelsangithub/business-logic-service/service/token"
	"github.com/idelsangithub/business-logic-service/service/wallet"
)

var serviceSet = wire.NewSet(
	provideNotifier,
	token.New,
	payment.New,
	wallet.New,
)

func provideNotifier(v *viper.Viper, logger *slog.Logger) (core.Notifier, error) {
	if v.GetString("notify.host") == "" {
		return notify.NewNop(logger), nil
	}

	return notify.New(notify.Config{
		Host:     v.GetString("notify.host"),
		Port:     v.GetInt("notify.port"),
		From:     v.GetString("notify.from"),
		Username: v.GetString("notify.username"),
		Password: v.GetString("notify.password"),
	}, logger)
}
