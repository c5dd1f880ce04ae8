package services

import (
	"log"
	"strings"

	"github.com/Aaron629/today-go-where-bot/config/environment"
	"github.com/google/uuid"
	"github.com/line/line-bot-sdk-go/v8/linebot/messaging_api"
)

// MessageSender delivers messages for one inbound event. The dialogue service
// only ever talks to this interface so tests can record deliveries.
type MessageSender interface {
	Deliver(replyToken, userID string, messages []messaging_api.MessageInterface)
}

// LineService sends messages through the LINE Messaging API. Delivery policy:
// reply with the event's one-time token first; if the token was rejected
// (expired or already consumed), push to the user's durable id; with no user
// id the message is dropped. Other reply failures are not retried over push,
// the user may already have received the reply.
type LineService struct {
	client       *messaging_api.MessagingApiAPI
	skipDelivery bool
}

func NewLineService() *LineService {
	token := environment.GetChannelAccessToken()
	if token == "" {
		log.Println("CHANNEL_ACCESS_TOKEN not set, running in dev mode without delivery")
		return &LineService{skipDelivery: true}
	}

	client, err := messaging_api.NewMessagingApiAPI(token)
	if err != nil {
		log.Printf("messaging API client init failed, running without delivery: %v", err)
		return &LineService{skipDelivery: true}
	}
	return &LineService{client: client, skipDelivery: environment.ShouldSkipVerify()}
}

// Deliver implements MessageSender.
func (s *LineService) Deliver(replyToken, userID string, messages []messaging_api.MessageInterface) {
	if len(messages) == 0 {
		return
	}

	// Tokens starting with 0000 come from the webhook simulator and are not
	// redeemable.
	fakeToken := replyToken == "" || strings.HasPrefix(replyToken, "0000")
	if s.skipDelivery || fakeToken {
		log.Printf("(dev) skip LINE delivery, %d message(s)", len(messages))
		return
	}

	_, err := s.client.ReplyMessage(&messaging_api.ReplyMessageRequest{
		ReplyToken: replyToken,
		Messages:   messages,
	})
	if err == nil {
		return
	}
	if !replyTokenRejected(err) {
		log.Printf("reply failed, dropping message: %v", err)
		return
	}
	log.Printf("reply token rejected, falling back to push: %v", err)

	if userID == "" {
		log.Println("no user id on event, dropping message")
		return
	}
	if _, err := s.client.PushMessage(&messaging_api.PushMessageRequest{
		To:       userID,
		Messages: messages,
	}, uuid.NewString()); err != nil {
		log.Printf("push failed, dropping message: %v", err)
	}
}

// replyTokenRejected reports whether a reply failed because the one-time
// token was expired or already consumed. The messaging API surfaces the error
// body in the error string.
func replyTokenRejected(err error) bool {
	return err != nil && strings.Contains(err.Error(), "Invalid reply token")
}
