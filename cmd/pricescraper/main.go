// Command pricescraper serves the latest price scraped from the provider's quote page.
package main

import (
	"stockquotes/internal/app"
	"stockquotes/internal/pricescraper"
	"stockquotes/internal/scrape"
	"stockquotes/internal/server"
)

func main() {
	app.Main("pricescraper", func(env *app.Env, r *server.Router) error {
		client, err := env.Yahoo(env.Config.Upstream.BrowserUserAgent)
		if err != nil {
			return err
		}
		pricescraper.New(client, scrape.Default(), env.Logger).Register(r)
		return nil
	})
}
