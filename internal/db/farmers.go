package db

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"

	"crop-advisory-service/internal/models"
)

// CreateFarmer inserts a farmer record and returns it with its assigned ID.
func (d *DB) CreateFarmer(ctx context.Context, in models.FarmerInput) (models.Farmer, error) {
	query := `
        INSERT INTO farmers (
            name, phone_number, crop, crop_stage, soil_type, language,
            latitude, longitude, telegram_chat_id,
            enable_sms, enable_telegram, enable_voice, created_at
        )
        VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, NOW())
        RETURNING id, created_at`

	farmer := models.Farmer{
		Name:           in.Name,
		PhoneNumber:    in.PhoneNumber,
		Crop:           in.Crop,
		CropStage:      in.CropStage,
		SoilType:       in.SoilType,
		Language:       in.Language,
		Latitude:       in.Latitude,
		Longitude:      in.Longitude,
		TelegramChatID: in.TelegramChatID,
		EnableSMS:      in.EnableSMS,
		EnableTelegram: in.EnableTelegram,
		EnableVoice:    in.EnableVoice,
	}
	err := d.Pool.QueryRow(ctx, query,
		in.Name, in.PhoneNumber, in.Crop, in.CropStage, in.SoilType, in.Language,
		in.Latitude, in.Longitude, in.TelegramChatID,
		in.EnableSMS, in.EnableTelegram, in.EnableVoice,
	).Scan(&farmer.ID, &farmer.CreatedAt)
	if err != nil {
		return models.Farmer{}, fmt.Errorf("failed to create farmer: %w", err)
	}
	return farmer, nil
}

// GetFarmer loads one farmer by ID.
func (d *DB) GetFarmer(ctx context.Context, id int) (models.Farmer, error) {
	query := `
        SELECT id, name, phone_number, crop, crop_stage, soil_type, language,
               latitude, longitude, telegram_chat_id,
               enable_sms, enable_telegram, enable_voice, created_at
        FROM farmers
        WHERE id = $1`

	var f models.Farmer
	err := d.Pool.QueryRow(ctx, query, id).Scan(
		&f.ID, &f.Name, &f.PhoneNumber, &f.Crop, &f.CropStage, &f.SoilType, &f.Language,
		&f.Latitude, &f.Longitude, &f.TelegramChatID,
		&f.EnableSMS, &f.EnableTelegram, &f.EnableVoice, &f.CreatedAt,
	)
	if err != nil {
		if err == pgx.ErrNoRows {
			return models.Farmer{}, fmt.Errorf("farmer %d not found", id)
		}
		return models.Farmer{}, fmt.Errorf("failed to get farmer %d: %w", id, err)
	}
	return f, nil
}
