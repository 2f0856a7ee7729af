// Package jobs schedules background maintenance. The only job today expires
// payment intents whose gateway lifespan has passed.
package jobs

import (
	"fmt"

	"github.com/robfig/cron/v3"

	"navetteclub/internal/services"
	"navetteclub/internal/utils"
)

// Start runs the scheduler. Callers stop it via the returned cron on
// shutdown.
func Start(payments services.PaymentService) (*cron.Cron, error) {
	c := cron.New()

	// Every 5 minutes: flag stale pending intents as expired.
	if _, err := c.AddFunc("*/5 * * * *", func() {
		n, err := payments.ExpireStale()
		if err != nil {
			utils.LogEvent("", "jobs", "expire_intents_failed", err.Error())
			return
		}
		if n > 0 {
			utils.LogEvent("", "jobs", "expire_intents", fmt.Sprintf("expired=%d", n))
		}
	}); err != nil {
		return nil, err
	}

	c.Start()
	return c, nil
}
