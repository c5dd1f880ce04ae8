package services

import (
	"errors"
	"testing"

	"github.com/line/line-bot-sdk-go/v8/linebot/messaging_api"
	"github.com/stretchr/testify/assert"
)

func TestReplyTokenRejected(t *testing.T) {
	assert.False(t, replyTokenRejected(nil))
	assert.False(t, replyTokenRejected(errors.New("failed to send request: connection reset")))
	assert.False(t, replyTokenRejected(errors.New(`/v2/bot/message/reply: 429 {"message":"Rate limit exceeded"}`)))
	assert.True(t, replyTokenRejected(errors.New(`/v2/bot/message/reply: 400 Bad Request {"message":"Invalid reply token"}`)))
}

func TestDeliverDevModeNeverTouchesClient(t *testing.T) {
	messages := []messaging_api.MessageInterface{
		&messaging_api.TextMessage{Text: "hi"},
	}

	// the client is nil in both services; any delivery attempt would panic
	skip := &LineService{skipDelivery: true}
	skip.Deliver("realLookingToken", "U1", messages)

	live := &LineService{}
	live.Deliver("", "U1", messages)
	live.Deliver("00001234abcd", "U1", messages)
	live.Deliver("realLookingToken", "U1", nil)
}
