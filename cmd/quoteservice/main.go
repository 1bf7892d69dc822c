// Command quoteservice serves current quotes for single symbols.
package main

import (
	"log/slog"

	"stockquotes/internal/app"
	"stockquotes/internal/config"
	"stockquotes/internal/quotelookup"
	"stockquotes/internal/quotesvc"
	"stockquotes/internal/server"
)

func main() {
	app.Main("quoteservice", func(env *app.Env, r *server.Router) error {
		var lookup quotelookup.Lookup
		switch env.Config.Quote.Backend {
		case config.BackendBatch:
			client, err := env.Yahoo(env.Config.Upstream.UserAgent)
			if err != nil {
				return err
			}
			lookup = quotelookup.NewBatch(client)
		default:
			lookup = quotelookup.NewFinanceGo(env.HTTPClient(env.Config.Upstream.UserAgent).HTTP)
		}
		env.Logger.Info("quote backend", slog.String("backend", env.Config.Quote.Backend))

		quotesvc.New(lookup, env.Logger).Register(r)
		return nil
	})
}
