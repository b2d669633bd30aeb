package service

import (
	"context"
	"encoding/json"
	"log"

	"wealth-advisor-be/internal/dto"
	"wealth-advisor-be/internal/pkg/mailer"
	"wealth-advisor-be/pkg/events"
	"wealth-advisor-be/pkg/nats"

	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
)

type IConsumerService interface {
	Consume(ctx context.Context) error
}

// consumerService drains the in-process funnel topic. Lead qualifications
// fan out to the advisor mailbox and the NATS bus; degraded turns are only
// logged, they carry no action.
type consumerService struct {
	pubSub        *gochannel.GoChannel
	topicName     string
	emailService  mailer.IEmailService
	natsPublisher *nats.Publisher
}

func NewConsumerService(
	pubSub *gochannel.GoChannel,
	topicName string,
	emailService mailer.IEmailService,
	natsPublisher *nats.Publisher,
) IConsumerService {
	return &consumerService{
		pubSub:        pubSub,
		topicName:     topicName,
		emailService:  emailService,
		natsPublisher: natsPublisher,
	}
}

func (cs *consumerService) Consume(ctx context.Context) error {
	messages, err := cs.pubSub.Subscribe(ctx, cs.topicName)
	if err != nil {
		return err
	}

	go func() {
		for msg := range messages {
			cs.processMessage(ctx, msg)
		}
	}()

	return nil
}

func (cs *consumerService) processMessage(ctx context.Context, msg *message.Message) {
	var payload dto.FunnelEventMessage
	if err := json.Unmarshal(msg.Payload, &payload); err != nil {
		log.Printf("[ERROR] Failed to unmarshal funnel event: %v", err)
		msg.Ack() // Ack invalid messages to prevent infinite retry
		return
	}

	switch payload.Type {
	case events.TypeLeadQualified:
		cs.handleLeadQualified(ctx, payload)
	case events.TypeTurnDegraded:
		log.Printf("[WARN] Degraded turn on conversation %v: %v (%v)",
			payload.Data["conversation_id"], payload.Data["kind"], payload.Data["detail"])
	default:
		log.Printf("[WARN] Unknown funnel event type: %s", payload.Type)
	}

	msg.Ack()
}

func (cs *consumerService) handleLeadQualified(ctx context.Context, payload dto.FunnelEventMessage) {
	conversationId := asString(payload.Data["conversation_id"])
	name := asString(payload.Data["name"])
	contact := asString(payload.Data["contact"])
	wealth := asString(payload.Data["wealth_bracket"])

	log.Printf("[INFO] Lead qualified on conversation %s, notifying advisor", conversationId)

	if cs.emailService != nil {
		if err := cs.emailService.SendLeadNotification(conversationId, name, contact, wealth); err != nil {
			// Delivery failure must not block the NATS forward.
			log.Printf("[ERROR] Failed to email advisor for conversation %s: %v", conversationId, err)
		}
	}

	if cs.natsPublisher != nil {
		event := events.BaseEvent{
			Type:       payload.Type,
			Data:       payload.Data,
			OccurredAt: payload.OccurredAt,
		}
		if err := cs.natsPublisher.Publish(ctx, event); err != nil {
			log.Printf("[ERROR] Failed to forward lead event to NATS for conversation %s: %v", conversationId, err)
		}
	}
}

func asString(v interface{}) string {
	s, _ := v.(string)
	return s
}
