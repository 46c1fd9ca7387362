package events

const (
	RecognitionCreated = "recognition.created"
	InteractionAdded   = "interaction.added"
)

func NewRecognitionCreatedEvent(recognitionID, senderID, recipientID, valueID int64) BaseEvent {
	return NewBaseEvent(RecognitionCreated, map[string]interface{}{
		"recognition_id": recognitionID,
		"sender_id":      senderID,
		"recipient_id":   recipientID,
		"value_id":       valueID,
	})
}

func NewInteractionAddedEvent(interactionID, recognitionID, userID int64, interactionType string) BaseEvent {
	return NewBaseEvent(InteractionAdded, map[string]interface{}{
		"interaction_id": interactionID,
		"recognition_id": recognitionID,
		"user_id":        userID,
		"type":           interactionType,
	})
}
