package models

import "time"

// FarmerInput is the registration payload for a farmer record.
type FarmerInput struct {
	Name           string  `json:"name" binding:"required"`
	PhoneNumber    string  `json:"phone_number" binding:"required"`
	Crop           string  `json:"crop" binding:"required"`
	CropStage      string  `json:"crop_stage" binding:"required"`
	SoilType       string  `json:"soil_type" binding:"required"`
	Language       string  `json:"language" binding:"required"`
	Latitude       float64 `json:"latitude" binding:"min=-90,max=90"`
	Longitude      float64 `json:"longitude" binding:"min=-180,max=180"`
	TelegramChatID int64   `json:"telegram_chat_id"`
	EnableSMS      bool    `json:"enable_sms"`
	EnableTelegram bool    `json:"enable_telegram"`
	EnableVoice    bool    `json:"enable_voice"`
}

// Farmer is a stored farmer record.
type Farmer struct {
	ID             int       `json:"id"`
	Name           string    `json:"name"`
	PhoneNumber    string    `json:"phone_number"`
	Crop           string    `json:"crop"`
	CropStage      string    `json:"crop_stage"`
	SoilType       string    `json:"soil_type"`
	Language       string    `json:"language"`
	Latitude       float64   `json:"latitude"`
	Longitude      float64   `json:"longitude"`
	TelegramChatID int64     `json:"telegram_chat_id,omitempty"`
	EnableSMS      bool      `json:"enable_sms"`
	EnableTelegram bool      `json:"enable_telegram"`
	EnableVoice    bool      `json:"enable_voice"`
	CreatedAt      time.Time `json:"created_at"`
}

// Channels lists the notification channels enabled for the farmer.
func (f Farmer) Channels() []Channel {
	var out []Channel
	if f.EnableSMS {
		out = append(out, ChannelSMS)
	}
	if f.EnableTelegram {
		out = append(out, ChannelTelegram)
	}
	if f.EnableVoice {
		out = append(out, ChannelVoice)
	}
	return out
}
