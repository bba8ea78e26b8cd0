// Code generated by goa v3.23.1, DO NOT EDIT.
//
// chatbot HTTP client encoders and decoders
//
// Command:
// $ goa gen spars/api/design

package client

import (
	"bytes"
	"context"
	"io"
	"net/http"
	"net/url"
	chatbot "spars/gen/chatbot"
	chatbotviews "spars/gen/chatbot/views"

	goahttp "goa.design/goa/v3/http"
)

// BuildChatRequest instantiates a HTTP request object with method and path set
// to call the "chatbot" service "chat" endpoint
func (c *Client) BuildChatRequest(ctx context.Context, v any) (*http.Request, error) {
	u := &url.URL{Scheme: c.scheme, Host: c.host, Path: ChatChatbotPath()}
	req, err := http.NewRequest("POST", u.String(), nil)
	if err != nil {
		return nil, goahttp.ErrInvalidURL("chatbot", "chat", u.String(), err)
	}
	if ctx != nil {
		req = req.WithContext(ctx)
	}

	return req, nil
}

// EncodeChatRequest returns an encoder for requests sent to the chatbot chat
// server.
func EncodeChatRequest(encoder func(*http.Request) goahttp.Encoder) func(*http.Request, any) error {
	return func(req *http.Request, v any) error {
		p, ok := v.(*chatbot.ChatPayload)
		if !ok {
			return goahttp.ErrInvalidType("chatbot", "chat", "*chatbot.ChatPayload", v)
		}
		body := NewChatRequestBody(p)
		if err := encoder(req).Encode(&body); err != nil {
			return goahttp.ErrEncodingError("chatbot", "chat", err)
		}
		return nil
	}
}

// DecodeChatResponse returns a decoder for responses returned by the chatbot
// chat endpoint. restoreBody controls whether the response body should be
// restored after having been read.
// DecodeChatResponse may return the following errors:
//   - "bad_request" (type *goa.ServiceError): http.StatusBadRequest
//   - error: internal error
func DecodeChatResponse(decoder func(*http.Response) goahttp.Decoder, restoreBody bool) func(*http.Response) (any, error) {
	return func(resp *http.Response) (any, error) {
		if restoreBody {
			b, err := io.ReadAll(resp.Body)
			if err != nil {
				return nil, err
			}
			resp.Body = io.NopCloser(bytes.NewBuffer(b))
			defer func() {
				resp.Body = io.NopCloser(bytes.NewBuffer(b))
			}()
		} else {
			defer resp.Body.Close()
		}
		switch resp.StatusCode {
		case http.StatusOK:
			var (
				body ChatResponseBody
				err  error
			)
			err = decoder(resp).Decode(&body)
			if err != nil {
				return nil, goahttp.ErrDecodingError("chatbot", "chat", err)
			}
			p := NewChatresultViewOK(&body)
			view := "default"
			vres := &chatbotviews.Chatresult{Projected: p, View: view}
			if err = chatbotviews.ValidateChatresult(vres); err != nil {
				return nil, goahttp.ErrValidationError("chatbot", "chat", err)
			}
			res := chatbot.NewChatresult(vres)
			return res, nil
		case http.StatusBadRequest:
			var (
				body ChatBadRequestResponseBody
				err  error
			)
			err = decoder(resp).Decode(&body)
			if err != nil {
				return nil, goahttp.ErrDecodingError("chatbot", "chat", err)
			}
			err = ValidateChatBadRequestResponseBody(&body)
			if err != nil {
				return nil, goahttp.ErrValidationError("chatbot", "chat", err)
			}
			return nil, NewChatBadRequest(&body)
		default:
			body, _ := io.ReadAll(resp.Body)
			return nil, goahttp.ErrInvalidResponse("chatbot", "chat", resp.StatusCode, string(body))
		}
	}
}

// marshalChatbotChatEntryToChatEntryRequestBody builds a value of type
// *ChatEntryRequestBody from a value of type *chatbot.ChatEntry.
func marshalChatbotChatEntryToChatEntryRequestBody(v *chatbot.ChatEntry) *ChatEntryRequestBody {
	if v == nil {
		return nil
	}
	res := &ChatEntryRequestBody{
		Role:    v.Role,
		Content: v.Content,
	}

	return res
}

// marshalChatEntryRequestBodyToChatbotChatEntry builds a value of type
// *chatbot.ChatEntry from a value of type *ChatEntryRequestBody.
func marshalChatEntryRequestBodyToChatbotChatEntry(v *ChatEntryRequestBody) *chatbot.ChatEntry {
	if v == nil {
		return nil
	}
	res := &chatbot.ChatEntry{
		Role:    v.Role,
		Content: v.Content,
	}

	return res
}
