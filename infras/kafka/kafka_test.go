package kafka_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tavola/infras/kafka"
)

type award struct {
	UserID string `json:"user_id"`
	Points int    `json:"points"`
}

func TestMessage_ToKafkaMessage(t *testing.T) {
	message := kafka.Message{
		Key:     "user-1",
		Value:   award{UserID: "user-1", Points: 15},
		Headers: map[string]string{"event": "points_awarded"},
	}

	msg, err := message.ToKafkaMessage("loyalty.points.awarded")
	require.NoError(t, err)

	assert.Equal(t, "loyalty.points.awarded", msg.Topic)
	assert.Equal(t, []byte("user-1"), msg.Key)
	assert.JSONEq(t, `{"user_id":"user-1","points":15}`, string(msg.Value))
	require.Len(t, msg.Headers, 1)
	assert.Equal(t, "event", msg.Headers[0].Key)

	decoded, err := kafka.DecodeMessage[award](msg)
	require.NoError(t, err)
	assert.Equal(t, award{UserID: "user-1", Points: 15}, decoded)
}

func TestMessage_ToKafkaMessageRejectsUnencodableValue(t *testing.T) {
	message := kafka.Message{Key: "k", Value: make(chan int)}

	_, err := message.ToKafkaMessage("topic")
	assert.Error(t, err)
}
