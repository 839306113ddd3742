package db

import (
	"context"
	"fmt"

	"crop-advisory-service/internal/models"
)

// CreateAdvisoryLog records one delivered advisory for history queries.
func (d *DB) CreateAdvisoryLog(ctx context.Context, log models.AdvisoryLog) error {
	query := `
        INSERT INTO advisories (farmer_id, crop, advisory_text, date_sent)
        VALUES ($1, $2, $3, $4)`
	_, err := d.Pool.Exec(ctx, query, log.FarmerID, log.Crop, log.AdvisoryText, log.DateSent)
	if err != nil {
		return fmt.Errorf("failed to create advisory log: %w", err)
	}
	return nil
}

// GetAdvisoriesByFarmer returns a farmer's advisory history, newest first.
func (d *DB) GetAdvisoriesByFarmer(ctx context.Context, farmerID, limit int) ([]models.AdvisoryLog, error) {
	if limit <= 0 {
		limit = 50
	}
	query := `
        SELECT id, farmer_id, crop, advisory_text, date_sent
        FROM advisories
        WHERE farmer_id = $1
        ORDER BY date_sent DESC
        LIMIT $2`
	rows, err := d.Pool.Query(ctx, query, farmerID, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to get advisories for farmer %d: %w", farmerID, err)
	}
	defer rows.Close()

	var logs []models.AdvisoryLog
	for rows.Next() {
		var l models.AdvisoryLog
		if err := rows.Scan(&l.ID, &l.FarmerID, &l.Crop, &l.AdvisoryText, &l.DateSent); err != nil {
			return nil, fmt.Errorf("failed to scan advisory: %w", err)
		}
		logs = append(logs, l)
	}
	return logs, nil
}

// CreateNotificationAttempt records one per-channel delivery attempt.
func (d *DB) CreateNotificationAttempt(ctx context.Context, a models.NotificationAttempt) error {
	query := `
        INSERT INTO notification_attempts (request_id, farmer_id, channel, recipient, outcome, detail, created_at)
        VALUES ($1, $2, $3, $4, $5, $6, $7)`
	_, err := d.Pool.Exec(ctx, query, a.RequestID, a.FarmerID, a.Channel, a.Recipient, a.Outcome, a.Detail, a.CreatedAt)
	if err != nil {
		return fmt.Errorf("failed to create notification attempt: %w", err)
	}
	return nil
}

// GetAttemptsByRequest returns all delivery attempts for one advisory request.
func (d *DB) GetAttemptsByRequest(ctx context.Context, requestID string) ([]models.NotificationAttempt, error) {
	query := `
        SELECT request_id, farmer_id, channel, recipient, outcome, detail, created_at
        FROM notification_attempts
        WHERE request_id = $1
        ORDER BY created_at ASC`
	rows, err := d.Pool.Query(ctx, query, requestID)
	if err != nil {
		return nil, fmt.Errorf("failed to get attempts for request %s: %w", requestID, err)
	}
	defer rows.Close()

	var attempts []models.NotificationAttempt
	for rows.Next() {
		var a models.NotificationAttempt
		if err := rows.Scan(&a.RequestID, &a.FarmerID, &a.Channel, &a.Recipient, &a.Outcome, &a.Detail, &a.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan notification attempt: %w", err)
		}
		attempts = append(attempts, a)
	}
	return attempts, nil
}
