package converter

import (
	"clinic-booking-api/internal/delivery/dto"
	"clinic-booking-api/internal/domain/entity"
)

const chatDateLayout = "2006-01-02"

func ChatToResponse(chat *entity.Chat) *dto.ChatResponse {
	if chat == nil {
		return nil
	}

	participants := make([]dto.ChatParticipant, len(chat.Participants))
	for i, p := range chat.Participants {
		participants[i] = dto.ChatParticipant{
			ID:        p.UserID,
			FirstName: p.Account.FirstName,
			LastName:  p.Account.LastName,
		}
	}

	return &dto.ChatResponse{
		ID:           chat.ID,
		OpenedBy:     PatientToRef(&chat.OpenedBy),
		Participants: participants,
		CreatedAt:    chat.CreatedAt.Format(chatDateLayout),
	}
}

func ChatsToResponses(chats []entity.Chat) []dto.ChatResponse {
	responses := make([]dto.ChatResponse, len(chats))
	for i := range chats {
		responses[i] = *ChatToResponse(&chats[i])
	}
	return responses
}

func MessageToResponse(message *entity.Message) *dto.MessageResponse {
	if message == nil {
		return nil
	}

	return &dto.MessageResponse{
		ID:          message.ID,
		ChatID:      message.ChatID,
		Author:      PatientToRef(&message.Author),
		Text:        message.Text,
		Image:       message.Image,
		Video:       message.Video,
		CreatedDate: message.CreatedDate,
	}
}

func MessagesToResponses(messages []entity.Message) []dto.MessageResponse {
	responses := make([]dto.MessageResponse, len(messages))
	for i := range messages {
		responses[i] = *MessageToResponse(&messages[i])
	}
	return responses
}
