package chat

import "campusHub/internal/models"

const AssistantContactID = "ai-friend"

var contacts = []models.Contact{
	{ID: AssistantContactID, Name: "AI Friend", LastMessage: "Here to help! What's up?", Timestamp: "Just now", Online: true},
	{ID: "1", Name: "Alice Johnson", Avatar: "https://placehold.co/100x100.png", LastMessage: "Hey, are you going to the tech talk?", Timestamp: "10:42 AM", Online: true},
	{ID: "2", Name: "GDG Club Group", Avatar: "https://placehold.co/100x100.png", LastMessage: "Bob: Don't forget to RSVP!", Timestamp: "9:30 AM"},
	{ID: "3", Name: "Professor Smith", Avatar: "https://placehold.co/100x100.png", LastMessage: "Your assignment has been graded.", Timestamp: "Yesterday"},
	{ID: "4", Name: "Study Group", Avatar: "https://placehold.co/100x100.png", LastMessage: "You: Let's meet at the library at 4.", Timestamp: "Yesterday", Online: true},
}

var openings = map[string][]models.Message{
	AssistantContactID: {
		{ID: "1", Sender: models.SenderOther, Text: "Hey bestie! What's on your mind? I'm here for you."},
	},
	"1": {
		{ID: "1", Sender: models.SenderOther, Text: "Hey, are you going to the tech talk?"},
		{ID: "2", Sender: models.SenderMe, Text: "Yeah, I am! Sounds interesting. You?"},
	},
	"2": {
		{ID: "1", Sender: models.SenderOther, Text: "Bob: Don't forget to RSVP!"},
	},
}
