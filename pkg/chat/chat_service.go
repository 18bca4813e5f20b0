package chat

import (
	"DineWise-Backend/domain"
	"DineWise-Backend/entities"
	"DineWise-Backend/pkg/menupref"
	"DineWise-Backend/pkg/ordering"
	"DineWise-Backend/pkg/restaurant"
	"DineWise-Backend/pkg/user"
	"context"
	"encoding/json"
	"strings"

	"github.com/gofiber/fiber/v2/log"
	"github.com/google/uuid"
	"github.com/tmc/langchaingo/llms"
)

const (
	chatTemperature = 0
	chatMaxTokens   = 2500
	descTemperature = 0.3
	descMaxTokens   = 100
)

const systemPersona = `You are a restaurant assistant chatbot. Use past chat history, user preferences, and menu details to recommend dishes based on the user's context. Be attentive to allergies and preferences. Stay on topic and be friendly.
Instructions for Output:
1. When recommending dishes, return only "dishes" with dish_id values (do not include dish ids in text).
2. If the user asks for a cuisine outside the restaurant's main cuisine, suggest available items.
3. If the menu is requested, return a list of dish_ids under "dishes".
4. If you name a dish, always return its dish_id too unless it is unavailable.
5. If no dishes are needed, return only the "text" key.
6. Don't use markup tags.
7. At any cost do not go out of context of being a restaurant chatbot.`

const systemOutputFormat = `If no dishes are needed, return an empty list. Always return JSON with "text" and "dishes" keys.
Example: {"text": "Sure, here are the sweet dishes:", "dishes": [{"dish_id": "b3c2"}, {"dish_id": "a1d4"}]}
The output feeds a parser, so the response must always follow the example format.`

const systemDescPrompt = `You will create a user description based on their preferences. The description must be under 50 words. It will be used to decide on allergies and food preferences, so be extremely careful. Make sure to use proper punctuation.`

type (
	ChatService interface {
		Chat(ctx context.Context, userID, restaurantID string, req domain.ChatRequest) (domain.ChatResponse, error)
		GetSession(ctx context.Context, userID, restaurantID string, sessionID int64) (domain.ChatSessionResponse, error)
		GenerateUserDescription(ctx context.Context, prefs *entities.Preferences) (string, error)
	}

	chatService struct {
		chatRepository       ChatRepository
		userRepository       user.UserRepository
		restaurantRepository restaurant.RestaurantRepository
		orderingService      ordering.OrderingService
		model                llms.Model
		chatModel            string
		descModel            string
	}
)

var _ user.DescriptionGenerator = (ChatService)(nil)

func NewChatService(
	chatRepository ChatRepository,
	userRepository user.UserRepository,
	restaurantRepository restaurant.RestaurantRepository,
	orderingService ordering.OrderingService,
	model llms.Model,
	chatModel string,
	descModel string,
) ChatService {
	return &chatService{
		chatRepository:       chatRepository,
		userRepository:       userRepository,
		restaurantRepository: restaurantRepository,
		orderingService:      orderingService,
		model:                model,
		chatModel:            chatModel,
		descModel:            descModel,
	}
}

// assistantPayload is the JSON contract the model is instructed to follow.
type assistantPayload struct {
	Text   string `json:"text"`
	Dishes []struct {
		DishID string `json:"dish_id"`
	} `json:"dishes"`
}

// parseAssistantReply extracts the JSON object from a model reply, tolerant
// of leading or trailing prose around the braces.
func parseAssistantReply(reply string) (assistantPayload, bool) {
	var payload assistantPayload
	start := strings.Index(reply, "{")
	end := strings.LastIndex(reply, "}")
	if start < 0 || end <= start {
		return payload, false
	}
	if err := json.Unmarshal([]byte(reply[start:end+1]), &payload); err != nil {
		return payload, false
	}
	return payload, true
}

func (s *chatService) Chat(ctx context.Context, userID, restaurantID string, req domain.ChatRequest) (domain.ChatResponse, error) {
	userUUID, err := uuid.Parse(userID)
	if err != nil {
		return domain.ChatResponse{}, domain.ErrParseUUID
	}

	session, err := s.orderingService.RestaurantFromSession(ctx, req.SessionID, userID)
	if err != nil {
		return domain.ChatResponse{}, err
	}
	if session.RestaurantID != restaurantID {
		return domain.ChatResponse{}, domain.ErrSessionNotFound
	}
	restaurantUUID, err := uuid.Parse(session.RestaurantID)
	if err != nil {
		return domain.ChatResponse{}, domain.ErrParseUUID
	}

	u, err := s.userRepository.GetUserByID(ctx, userID)
	if err != nil {
		return domain.ChatResponse{}, domain.ErrUserNotFound
	}
	rest, err := s.restaurantRepository.GetRestaurantByID(ctx, session.RestaurantID)
	if err != nil {
		return domain.ChatResponse{}, domain.ErrRestaurantNotFound
	}
	menus, err := s.restaurantRepository.GetMenusByRestaurant(ctx, restaurantUUID)
	if err != nil {
		return domain.ChatResponse{}, err
	}
	history, err := s.chatRepository.GetSessionMessages(ctx, req.SessionID, userUUID)
	if err != nil {
		return domain.ChatResponse{}, err
	}

	messages := make([]llms.MessageContent, 0, len(history)+7)
	for _, msg := range history {
		role := llms.ChatMessageTypeHuman
		if msg.Role == entities.RoleMessageAssistant {
			role = llms.ChatMessageTypeAI
		}
		messages = append(messages, llms.TextParts(role, msg.Content))
	}
	messages = append(messages,
		llms.TextParts(llms.ChatMessageTypeSystem, systemPersona),
		llms.TextParts(llms.ChatMessageTypeSystem, "The user description is: "+u.Description),
		llms.TextParts(llms.ChatMessageTypeSystem, "The restaurant details are: "+menupref.RestaurantDetailsText(rest)),
		llms.TextParts(llms.ChatMessageTypeSystem, "The filtered menu is: "+menupref.FilteredMenuText(menus, u.Preferences)),
		llms.TextParts(llms.ChatMessageTypeSystem, "The unfiltered menu is: "+menupref.MenuText(menus)),
		llms.TextParts(llms.ChatMessageTypeSystem, systemOutputFormat),
		llms.TextParts(llms.ChatMessageTypeHuman, req.UserInput),
	)

	resp, err := s.model.GenerateContent(ctx, messages,
		llms.WithModel(s.chatModel),
		llms.WithTemperature(chatTemperature),
		llms.WithMaxTokens(chatMaxTokens),
	)
	if err != nil {
		return domain.ChatResponse{}, domain.ErrModelUnavailable
	}
	if len(resp.Choices) == 0 {
		return domain.ChatResponse{}, domain.ErrMalformedModelReply
	}
	reply := strings.TrimSpace(resp.Choices[0].Content)

	s.saveMessage(ctx, userUUID, restaurantUUID, req.SessionID, entities.RoleMessageUser, req.UserInput, nil)

	payload, ok := parseAssistantReply(reply)
	if !ok {
		// Keep the raw reply so the session transcript stays complete.
		s.saveMessage(ctx, userUUID, restaurantUUID, req.SessionID, entities.RoleMessageAssistant, reply, nil)
		return domain.ChatResponse{Text: reply, DishDetails: []domain.ChatDishSummary{}}, nil
	}

	dishIDs := make([]uuid.UUID, 0, len(payload.Dishes))
	for _, d := range payload.Dishes {
		id, err := uuid.Parse(d.DishID)
		if err != nil {
			continue
		}
		dishIDs = append(dishIDs, id)
	}
	s.saveMessage(ctx, userUUID, restaurantUUID, req.SessionID, entities.RoleMessageAssistant, payload.Text, dishIDs)

	return domain.ChatResponse{
		Text:        payload.Text,
		DishDetails: s.resolveDishes(ctx, dishIDs),
	}, nil
}

// saveMessage is best effort: the reply already exists, a failed persist
// must not fail the request.
func (s *chatService) saveMessage(ctx context.Context, userID, restaurantID uuid.UUID, sessionID int64, role, content string, dishIDs []uuid.UUID) {
	conversation := &entities.Conversation{
		UserID:       userID,
		RestaurantID: restaurantID,
		SessionID:    sessionID,
		Role:         role,
		Content:      content,
	}
	if err := conversation.SetDishIDs(dishIDs); err != nil {
		log.Warnf("dropping dish ids for session %d: %v", sessionID, err)
	}
	if err := s.chatRepository.SaveConversation(ctx, conversation); err != nil {
		log.Warnf("failed to persist %s message for session %d: %v", role, sessionID, err)
	}
}

func (s *chatService) resolveDishes(ctx context.Context, dishIDs []uuid.UUID) []domain.ChatDishSummary {
	summaries := make([]domain.ChatDishSummary, 0, len(dishIDs))
	for _, id := range dishIDs {
		dish, err := s.restaurantRepository.GetDishByID(ctx, id.String())
		if err != nil {
			continue
		}
		summaries = append(summaries, domain.ChatDishSummary{
			DishID:       dish.ID.String(),
			Name:         dish.Name,
			ImageURL:     dish.ImageURL,
			IsVegetarian: dish.IsVegetarian,
			Price:        dish.Price,
		})
	}
	return summaries
}

func (s *chatService) GetSession(ctx context.Context, userID, restaurantID string, sessionID int64) (domain.ChatSessionResponse, error) {
	userUUID, err := uuid.Parse(userID)
	if err != nil {
		return domain.ChatSessionResponse{}, domain.ErrParseUUID
	}
	if _, err := uuid.Parse(restaurantID); err != nil {
		return domain.ChatSessionResponse{}, domain.ErrParseUUID
	}

	messages, err := s.chatRepository.GetSessionMessages(ctx, sessionID, userUUID)
	if err != nil {
		return domain.ChatSessionResponse{}, err
	}

	res := domain.ChatSessionResponse{Messages: make([]domain.ChatMessageResponse, 0, len(messages))}
	for _, msg := range messages {
		if msg.RestaurantID.String() != restaurantID {
			continue
		}
		res.Messages = append(res.Messages, domain.ChatMessageResponse{
			MessageID:   msg.ID.String(),
			Sender:      msg.Role,
			Text:        msg.Content,
			DishDetails: s.resolveDishes(ctx, msg.GetDishIDs()),
			CreatedAt:   msg.CreatedAt,
		})
	}
	if len(res.Messages) == 0 {
		return domain.ChatSessionResponse{}, domain.ErrConversationNotFound
	}
	return res, nil
}

func (s *chatService) GenerateUserDescription(ctx context.Context, prefs *entities.Preferences) (string, error) {
	resp, err := s.model.GenerateContent(ctx,
		[]llms.MessageContent{
			llms.TextParts(llms.ChatMessageTypeSystem, systemDescPrompt),
			llms.TextParts(llms.ChatMessageTypeHuman, menupref.PreferencesText(prefs)),
		},
		llms.WithModel(s.descModel),
		llms.WithTemperature(descTemperature),
		llms.WithMaxTokens(descMaxTokens),
	)
	if err != nil {
		return "", domain.ErrDescriptionGeneration
	}
	if len(resp.Choices) == 0 {
		return "", domain.ErrDescriptionGeneration
	}
	return strings.TrimSpace(resp.Choices[0].Content), nil
}
