// Code generated by goa v3.23.1, DO NOT EDIT.
//
// chatbot HTTP server encoders and decoders
//
// Command:
// $ goa gen spars/api/design

package server

import (
	"context"
	"errors"
	"io"
	"net/http"
	chatbot "spars/gen/chatbot"
	chatbotviews "spars/gen/chatbot/views"

	goahttp "goa.design/goa/v3/http"
	goa "goa.design/goa/v3/pkg"
)

// EncodeChatResponse returns an encoder for responses returned by the chatbot
// chat endpoint.
func EncodeChatResponse(encoder func(context.Context, http.ResponseWriter) goahttp.Encoder) func(context.Context, http.ResponseWriter, any) error {
	return func(ctx context.Context, w http.ResponseWriter, v any) error {
		res := v.(*chatbotviews.Chatresult)
		enc := encoder(ctx, w)
		body := NewChatResponseBody(res.Projected)
		w.WriteHeader(http.StatusOK)
		return enc.Encode(body)
	}
}

// DecodeChatRequest returns a decoder for requests sent to the chatbot chat
// endpoint.
func DecodeChatRequest(mux goahttp.Muxer, decoder func(*http.Request) goahttp.Decoder) func(*http.Request) (*chatbot.ChatPayload, error) {
	return func(r *http.Request) (*chatbot.ChatPayload, error) {
		var (
			body ChatRequestBody
			err  error
		)
		err = decoder(r).Decode(&body)
		if err != nil {
			if errors.Is(err, io.EOF) {
				return nil, goa.MissingPayloadError()
			}
			var gerr *goa.ServiceError
			if errors.As(err, &gerr) {
				return nil, gerr
			}
			return nil, goa.DecodePayloadError(err.Error())
		}
		err = ValidateChatRequestBody(&body)
		if err != nil {
			return nil, err
		}
		payload := NewChatPayload(&body)

		return payload, nil
	}
}

// EncodeChatError returns an encoder for errors returned by the chat chatbot
// endpoint.
func EncodeChatError(encoder func(context.Context, http.ResponseWriter) goahttp.Encoder, formatter func(ctx context.Context, err error) goahttp.Statuser) func(context.Context, http.ResponseWriter, error) error {
	encodeError := goahttp.ErrorEncoder(encoder, formatter)
	return func(ctx context.Context, w http.ResponseWriter, v error) error {
		var en goa.GoaErrorNamer
		if !errors.As(v, &en) {
			return encodeError(ctx, w, v)
		}
		switch en.GoaErrorName() {
		case "bad_request":
			var res *goa.ServiceError
			errors.As(v, &res)
			enc := encoder(ctx, w)
			var body any
			if formatter != nil {
				body = formatter(ctx, res)
			} else {
				body = NewChatBadRequestResponseBody(res)
			}
			w.Header().Set("goa-error", res.GoaErrorName())
			w.WriteHeader(http.StatusBadRequest)
			return enc.Encode(body)
		default:
			return encodeError(ctx, w, v)
		}
	}
}

// unmarshalChatEntryRequestBodyToChatbotChatEntry builds a value of type
// *chatbot.ChatEntry from a value of type *ChatEntryRequestBody.
func unmarshalChatEntryRequestBodyToChatbotChatEntry(v *ChatEntryRequestBody) *chatbot.ChatEntry {
	if v == nil {
		return nil
	}
	res := &chatbot.ChatEntry{
		Role:    *v.Role,
		Content: *v.Content,
	}

	return res
}
