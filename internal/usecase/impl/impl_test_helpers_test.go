package impl

import (
	"io"
	"log/slog"

	"retrokick/config"
)

func newDiscardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newTestConfig() *config.Config {
	return &config.Config{
		Admin: &config.AdminConfig{
			Email:    "admin@retrokick.test",
			Password: "super-secret",
		},
		Mail: &config.MailConfig{
			AdminEmail: "orders@retrokick.test",
		},
		Checkout: &config.CheckoutConfig{
			FreeShippingThreshold: 5000,
			ShippingFee:           199,
			TaxRate:               0.18,
		},
	}
}
