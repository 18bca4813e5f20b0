package domain

import (
	"errors"
	"time"
)

var (
	MessageSuccessChat           = "chat reply generated successfully"
	MessageSuccessGetChatSession = "chat session retrieved successfully"

	MessageFailedChat           = "error processing chat"
	MessageFailedGetChatSession = "no messages found for this session"

	ErrConversationNotFound  = errors.New("no messages found for this session")
	ErrModelUnavailable      = errors.New("language model unavailable")
	ErrMalformedModelReply   = errors.New("malformed language model reply")
	ErrDescriptionGeneration = errors.New("failed to generate user description")
)

type (
	ChatRequest struct {
		SessionID int64  `json:"session_id" validate:"required"`
		UserInput string `json:"user_input" validate:"required"`
	}

	ChatDishSummary struct {
		DishID       string  `json:"dish_id"`
		Name         string  `json:"name"`
		ImageURL     string  `json:"image,omitempty"`
		IsVegetarian bool    `json:"is_vegetarian"`
		Price        float64 `json:"price"`
	}

	ChatResponse struct {
		Text        string            `json:"text"`
		DishDetails []ChatDishSummary `json:"dish_details"`
	}

	ChatMessageResponse struct {
		MessageID   string            `json:"message_id"`
		Sender      string            `json:"sender"`
		Text        string            `json:"text"`
		DishDetails []ChatDishSummary `json:"dish_details"`
		CreatedAt   time.Time         `json:"created_at"`
	}

	ChatSessionResponse struct {
		Messages []ChatMessageResponse `json:"messages"`
	}
)
