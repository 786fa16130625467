package main

import (
	"context"
	"log"
	"time"

	"deudasBack/internal/repositories"
	"deudasBack/internal/timeutil"
)

const dueNotifierTimeout = 1 * time.Minute

// startDueNotifier periodically logs how many pending debts fall due
// today, per user. Delivery of actual reminders is left to an external
// channel; this loop only surfaces the daily picture in the logs.
func startDueNotifier(ctx context.Context, repo *repositories.DebtRepository, infoLog, errorLog *log.Logger) {
	if repo == nil {
		return
	}

	go func() {
		ticker := time.NewTicker(1 * time.Hour)
		defer ticker.Stop()

		runOnce := func() {
			runCtx, cancel := context.WithTimeout(ctx, dueNotifierTimeout)
			debts, err := repo.GetAllDueOnDate(runCtx, timeutil.Today())
			cancel()
			if err != nil {
				if errorLog != nil {
					errorLog.Printf("due notifier: failed to list debts due today: %v", err)
				}
				return
			}

			perUser := make(map[int]int)
			for _, debt := range debts {
				perUser[debt.UserID]++
			}
			for userID, count := range perUser {
				if infoLog != nil {
					infoLog.Printf("due notifier: user %d has %d debt(s) due today", userID, count)
				}
			}
		}

		runOnce()

		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				runOnce()
			}
		}
	}()
}
