package jobs

import (
	"context"

	"carrental-backend/internal/domain"
	"carrental-backend/internal/logger"
)

// SweepCarStatus reconciles stored car statuses with the reservation
// calendar: cars whose current reservation has been picked up become
// RENTED, rented cars whose reservation ended and was returned become
// AVAILABLE again.
func (jr *JobRunner) SweepCarStatus() {
	jr.runWithRecovery("SweepCarStatus", func() {
		ctx := context.Background()
		today := domain.Today()

		rentQuery := `
			UPDATE cars
			SET status = 'RENTED'
			WHERE status = 'AVAILABLE'
			  AND id IN (
				SELECT res.car_id
				FROM reservations res
				JOIN rents r ON r.reservation_id = res.id
				WHERE res.start_date <= $1 AND res.end_date >= $1
			  )
		`
		result, err := jr.db.ExecContext(ctx, rentQuery, today)
		if err != nil {
			logger.Error("Failed to mark cars as rented", "error", err)
			return
		}
		rented, _ := result.RowsAffected()

		releaseQuery := `
			UPDATE cars c
			SET status = 'AVAILABLE'
			WHERE c.status = 'RENTED'
			  AND NOT EXISTS (
				SELECT 1 FROM reservations res
				WHERE res.car_id = c.id
				  AND res.start_date <= $1 AND res.end_date >= $1
			  )
			  AND EXISTS (
				SELECT 1 FROM reservations res
				JOIN returnals rt ON rt.reservation_id = res.id
				WHERE res.car_id = c.id AND res.end_date < $1
			  )
		`
		result, err = jr.db.ExecContext(ctx, releaseQuery, today)
		if err != nil {
			logger.Error("Failed to release returned cars", "error", err)
			return
		}
		released, _ := result.RowsAffected()

		logger.Info("Swept car statuses", "rented", rented, "released", released)
	})
}

// SendReturnReminders emails every client whose reservation ends
// tomorrow.
func (jr *JobRunner) SendReturnReminders() {
	jr.runWithRecovery("SendReturnReminders", func() {
		ctx := context.Background()
		tomorrow := domain.Today().AddDays(1)

		query := `
			SELECT res.id, res.client_id, res.car_id, res.start_date, res.end_date,
			       res.price_cents, res.start_branch_id, res.end_branch_id,
			       u.email, u.name
			FROM reservations res
			JOIN users u ON u.id = res.client_id
			WHERE res.end_date = $1 AND u.email <> ''
		`
		rows, err := jr.db.QueryContext(ctx, query, tomorrow)
		if err != nil {
			logger.Error("Failed to load reservations due tomorrow", "error", err)
			return
		}
		defer rows.Close()

		count := 0
		for rows.Next() {
			var res domain.Reservation
			var email, name string
			if err := rows.Scan(&res.ID, &res.ClientID, &res.CarID, &res.StartDate, &res.EndDate,
				&res.PriceCents, &res.StartBranchID, &res.EndBranchID, &email, &name); err != nil {
				logger.Error("Failed to scan reservation reminder row", "error", err)
				continue
			}
			if err := jr.services.Email.SendReturnReminder(ctx, email, name, &res); err != nil {
				logger.Error("Failed to send return reminder",
					"reservation_id", res.ID, "error", err)
				continue
			}
			count++
		}
		if err := rows.Err(); err != nil {
			logger.Error("Error iterating reminder rows", "error", err)
			return
		}

		logger.Info("Sent return reminders", "count", count)
	})
}
