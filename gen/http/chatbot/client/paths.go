// Code generated by goa v3.23.1, DO NOT EDIT.
//
// HTTP request path constructors for the chatbot service.
//
// Command:
// $ goa gen spars/api/design

package client

// ChatChatbotPath returns the URL path to the chatbot service chat HTTP endpoint.
func ChatChatbotPath() string {
	return "/api/chatbot"
}
