// Code generated by goa v3.23.1, DO NOT EDIT.
//
// chatbot HTTP client CLI support package
//
// Command:
// $ goa gen spars/api/design

package client

import (
	"encoding/json"
	"fmt"
	chatbot "spars/gen/chatbot"
	"unicode/utf8"

	goa "goa.design/goa/v3/pkg"
)

// BuildChatPayload builds the payload for the chatbot chat endpoint from CLI
// flags.
func BuildChatPayload(chatbotChatBody string) (*chatbot.ChatPayload, error) {
	var err error
	var body ChatRequestBody
	{
		err = json.Unmarshal([]byte(chatbotChatBody), &body)
		if err != nil {
			return nil, fmt.Errorf("invalid JSON for body, \nerror: %s, \nexample of valid JSON:\n%s", err, "'{\n      \"conversation_history\": [\n         {\n            \"content\": \"Laudantium molestiae sunt nostrum non et.\",\n            \"role\": \"assistant\"\n         },\n         {\n            \"content\": \"Laudantium molestiae sunt nostrum non et.\",\n            \"role\": \"assistant\"\n         },\n         {\n            \"content\": \"Laudantium molestiae sunt nostrum non et.\",\n            \"role\": \"assistant\"\n         }\n      ],\n      \"message\": \"What does SPARS cost?\"\n   }'")
		}
		if utf8.RuneCountInString(body.Message) < 1 {
			err = goa.MergeErrors(err, goa.InvalidLengthError("body.message", body.Message, utf8.RuneCountInString(body.Message), 1, true))
		}
		if utf8.RuneCountInString(body.Message) > 2000 {
			err = goa.MergeErrors(err, goa.InvalidLengthError("body.message", body.Message, utf8.RuneCountInString(body.Message), 2000, false))
		}
		for _, e := range body.ConversationHistory {
			if e != nil {
				if err2 := ValidateChatEntryRequestBody(e); err2 != nil {
					err = goa.MergeErrors(err, err2)
				}
			}
		}
		if err != nil {
			return nil, err
		}
	}
	v := &chatbot.ChatPayload{
		Message: body.Message,
	}
	if body.ConversationHistory != nil {
		v.ConversationHistory = make([]*chatbot.ChatEntry, len(body.ConversationHistory))
		for i, val := range body.ConversationHistory {
			if val == nil {
				v.ConversationHistory[i] = nil
				continue
			}
			v.ConversationHistory[i] = marshalChatEntryRequestBodyToChatbotChatEntry(val)
		}
	}

	return v, nil
}
