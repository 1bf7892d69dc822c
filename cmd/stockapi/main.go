// Command stockapi serves ticker search and stock data from the provider's JSON endpoints.
package main

import (
	"stockquotes/internal/app"
	"stockquotes/internal/server"
	"stockquotes/internal/stockapi"
)

func main() {
	app.Main("stockapi", func(env *app.Env, r *server.Router) error {
		client, err := env.Yahoo(env.Config.Upstream.UserAgent)
		if err != nil {
			return err
		}
		stockapi.New(client, env.Logger).Register(r)
		return nil
	})
}
