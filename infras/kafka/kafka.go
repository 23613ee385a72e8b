package kafka

//go:generate go run go.uber.org/mock/mockgen -source=./kafka.go -destination=./mocks/kafka_mock.go -package=mocks

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"tavola/config"
	"tavola/infras/otel"
	"tavola/shared/constant"

	"github.com/rs/zerolog/log"
	kafkaGo "github.com/segmentio/kafka-go"
	"github.com/segmentio/kafka-go/sasl/plain"
)

const (
	writeTimeout = 10 * time.Second

	otelAttrTopic    = "topic"
	otelAttrMessages = "messages"
)

// Message is a keyed event. Value is encoded as JSON.
type Message struct {
	Key     string
	Value   any
	Headers map[string]string
}

func (m *Message) ToKafkaMessage(topic string) (kafkaGo.Message, error) {
	jsonValue, err := json.Marshal(m.Value)
	if err != nil {
		return kafkaGo.Message{}, fmt.Errorf("failed to encode message %q: %w", m.Key, err)
	}

	headers := make([]kafkaGo.Header, 0, len(m.Headers))
	for key, value := range m.Headers {
		headers = append(headers, kafkaGo.Header{Key: key, Value: []byte(value)})
	}

	return kafkaGo.Message{
		Topic:   topic,
		Key:     []byte(m.Key),
		Value:   jsonValue,
		Headers: headers,
	}, nil
}

// DecodeMessage unmarshals the JSON value of msg into T.
func DecodeMessage[T any](msg kafkaGo.Message) (T, error) {
	var value T

	if err := json.Unmarshal(msg.Value, &value); err != nil {
		return value, fmt.Errorf("failed to decode message %q: %w", msg.Key, err)
	}

	return value, nil
}

type Client interface {
	SendMessages(ctx context.Context, topic string, messages ...Message) (err error)
	Close() error
}

type kafkaClientImpl struct {
	writer *kafkaGo.Writer
	otel   otel.Otel
}

// New returns a producer shared by every topic. Messages carry their own topic.
func New(config *config.Config, otel otel.Otel) Client {
	mechanism := plain.Mechanism{
		Username: config.Kafka.SASL.Username,
		Password: config.Kafka.SASL.Password,
	}

	writer := &kafkaGo.Writer{
		Addr:                   kafkaGo.TCP(config.Kafka.Brokers...),
		Transport:              &kafkaGo.Transport{SASL: mechanism},
		Balancer:               &kafkaGo.Hash{},
		RequiredAcks:           kafkaGo.RequireOne,
		WriteTimeout:           writeTimeout,
		AllowAutoTopicCreation: true,
	}

	log.Info().Strs("brokers", config.Kafka.Brokers).Msg("kafka producer ready")

	return &kafkaClientImpl{
		writer: writer,
		otel:   otel,
	}
}

func (k *kafkaClientImpl) SendMessages(ctx context.Context, topic string, messages ...Message) (err error) {
	ctx, scope := k.otel.NewScope(ctx, constant.OtelKafkaScopeName, constant.OtelKafkaScopeName+".SendMessages")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	scope.SetAttributes(map[string]any{
		otelAttrTopic:    topic,
		otelAttrMessages: len(messages),
	})

	batch := make([]kafkaGo.Message, len(messages))

	for i := range messages {
		if batch[i], err = messages[i].ToKafkaMessage(topic); err != nil {
			return err
		}
	}

	if err = k.writer.WriteMessages(ctx, batch...); err != nil {
		log.Error().Err(err).Str("topic", topic).Int("count", len(batch)).Msg("failed to publish")

		return fmt.Errorf("failed to publish to %s: %w", topic, err)
	}

	log.Debug().Str("topic", topic).Int("count", len(batch)).Msg("published")

	return nil
}

func (k *kafkaClientImpl) Close() error {
	if err := k.writer.Close(); err != nil {
		return fmt.Errorf("failed to close Kafka writer: %w", err)
	}

	return nil
}
