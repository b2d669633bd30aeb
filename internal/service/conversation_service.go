package service

import (
	"context"
	"encoding/json"
	"time"

	"wealth-advisor-be/internal/constant"
	"wealth-advisor-be/internal/dto"
	"wealth-advisor-be/internal/entity"
	"wealth-advisor-be/internal/pkg/logger"
	"wealth-advisor-be/pkg/events"
	"wealth-advisor-be/pkg/funnel/compose"
	"wealth-advisor-be/pkg/funnel/extract"
	"wealth-advisor-be/pkg/funnel/lead"
	"wealth-advisor-be/pkg/funnel/qcm"
	"wealth-advisor-be/pkg/funnel/stage"
	"wealth-advisor-be/pkg/funnel/state"
	"wealth-advisor-be/pkg/retrieval"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
	"github.com/google/uuid"
)

// IConversationService defines the per-turn entry point
type IConversationService interface {
	Ask(ctx context.Context, request *dto.AskRequest) (*dto.AskResponse, error)
}

// conversationService sequences one turn: extract facts, merge state, match
// QCM answers, resolve the next stage, retrieve grounding documents, compose
// the reply, append history. One model reply per turn.
type conversationService struct {
	stateStore *state.Store
	extractor  *extract.Extractor
	retriever  *retrieval.Retriever
	composer   *compose.Composer

	pubSub     *gochannel.GoChannel
	eventTopic string
	sysLogger  logger.ILogger

	historyWindow int
	retrieveTopK  int
}

func NewConversationService(
	stateStore *state.Store,
	extractor *extract.Extractor,
	retriever *retrieval.Retriever,
	composer *compose.Composer,
	pubSub *gochannel.GoChannel,
	eventTopic string,
	sysLogger logger.ILogger,
	historyWindow int,
	retrieveTopK int,
) IConversationService {
	if historyWindow <= 0 {
		historyWindow = 3
	}
	if retrieveTopK <= 0 {
		retrieveTopK = 3
	}
	return &conversationService{
		stateStore:    stateStore,
		extractor:     extractor,
		retriever:     retriever,
		composer:      composer,
		pubSub:        pubSub,
		eventTopic:    eventTopic,
		sysLogger:     sysLogger,
		historyWindow: historyWindow,
		retrieveTopK:  retrieveTopK,
	}
}

func (cs *conversationService) Ask(ctx context.Context, request *dto.AskRequest) (*dto.AskResponse, error) {
	if request.Question == "" {
		return nil, &dto.ValidationError{Message: constant.ErrMissingQuestion}
	}

	conversationId := cs.resolveConversationId(request.ConversationId)

	// Serialize concurrent turns on the same conversation. Turns on other
	// ids stay fully parallel.
	cs.stateStore.Acquire(conversationId)
	defer cs.stateStore.Release(conversationId)

	conversation, err := cs.stateStore.Read(ctx, conversationId)
	if err != nil {
		// Degraded to empty state already; report and keep serving.
		cs.reportDegraded(conversation, "persistence", err)
	}

	wasQualified := conversation.Lead.Status == lead.StatusQualified

	// The stage resolved on pre-merge state is the question the visitor is
	// actually answering; QCM matching must target it, not the post-merge
	// stage, or a multi-fact answer gets recorded under the wrong key.
	askedStage := stage.Resolve(conversation.Lead, conversation.Qcm)

	partial := cs.extractor.Extract(ctx, request.Question)
	partial = cs.applyQcmAnswer(conversation, askedStage, request.Question, partial)

	if err := cs.stateStore.Merge(ctx, conversation, partial); err != nil {
		cs.reportDegraded(conversation, "persistence", err)
	}

	// Lead status only knows new/qualified; the conversation row tracks the
	// in-between "collecting" phase once the funnel is underway.
	if conversation.Status != constant.ConversationStatusQualified {
		conversation.Status = constant.ConversationStatusCollecting
	}

	nextStage := stage.Resolve(conversation.Lead, conversation.Qcm)

	docs, err := cs.retriever.Retrieve(ctx, request.Question, cs.retrieveTopK)
	if err != nil {
		// Nothing to ground the answer in: this one propagates.
		return nil, err
	}

	result := cs.composer.Compose(ctx, compose.Input{
		Question:           request.Question,
		Stage:              nextStage,
		Lead:               conversation.Lead,
		Qcm:                conversation.Qcm,
		History:            conversation.RecentTurns(cs.historyWindow),
		Docs:               docs,
		WantRecommendation: nextStage == stage.Complete && !conversation.Lead.RecommendationSent,
	})

	if result.RecommendationGenerated {
		conversation.Lead.RecommendationSent = true
	}

	turn := entity.Turn{
		Question:  request.Question,
		Reply:     result.Reply,
		CreatedAt: time.Now(),
	}
	if err := cs.stateStore.AppendHistory(ctx, conversation, turn); err != nil {
		cs.reportDegraded(conversation, "persistence", err)
	}

	if !wasQualified && conversation.Lead.Status == lead.StatusQualified {
		cs.publishQualified(conversation)
	}

	response := &dto.AskResponse{
		Reponse:        result.Reply,
		ConversationId: conversationId.String(),
	}
	for _, doc := range docs {
		response.Documents = append(response.Documents, dto.DocumentDTO{
			Title:   doc.Title,
			Content: doc.Content,
			URL:     doc.URL,
		})
	}
	return response, nil
}

// resolveConversationId parses the caller-provided id or mints a fresh one.
// A malformed id is treated as absent rather than rejected: the caller gets
// a new conversation instead of an error it cannot recover from.
func (cs *conversationService) resolveConversationId(raw string) uuid.UUID {
	if raw != "" {
		if id, err := uuid.Parse(raw); err == nil {
			return id
		}
		cs.sysLogger.Warn("conversation", "Malformed conversation id, starting fresh", map[string]interface{}{
			"conversation_id": raw,
		})
	}
	return uuid.New()
}

// applyQcmAnswer matches the free-text answer against the catalog of the
// stage that was asked, records it, and mirrors the match into the partial
// so the lead record and QCM progress stay consistent.
func (cs *conversationService) applyQcmAnswer(
	conversation *entity.Conversation,
	askedStage stage.Stage,
	answer string,
	partial lead.Partial,
) lead.Partial {
	key := stage.QcmKey(askedStage)
	if key == "" {
		return partial
	}

	if options := stage.Options(askedStage); options != nil {
		matched := qcm.Match(answer, options)
		if matched == "" {
			return partial // no option recognized, resolver re-asks
		}
		conversation.Qcm.Record(key, matched)

		switch askedStage {
		case stage.NeedObjectives:
			partial.Objectives = append(partial.Objectives, matched)
		case stage.NeedWealth:
			if partial.WealthBracket == nil {
				partial.WealthBracket = &matched
			}
		case stage.NeedIncome:
			if partial.IncomeBracket == nil {
				partial.IncomeBracket = &matched
			}
		}
		return partial
	}

	// Phone stage is optional and asked exactly once: whatever the visitor
	// replies settles it, with the extracted number when one was given.
	if askedStage == stage.NeedPhone {
		if partial.Phone != nil {
			conversation.Qcm.Record(key, *partial.Phone)
		} else {
			conversation.Qcm.Record(key, "non communiqué")
		}
	}
	return partial
}

func (cs *conversationService) reportDegraded(conversation *entity.Conversation, kind string, cause error) {
	cs.sysLogger.Error("conversation", "Turn degraded", map[string]interface{}{
		"conversation_id": conversation.Id.String(),
		"kind":            kind,
		"error":           cause.Error(),
	})
	cs.publish(events.NewTurnDegraded(conversation.Id.String(), kind, cause.Error()))
}

func (cs *conversationService) publishQualified(conversation *entity.Conversation) {
	name, contact, wealth := "", "", ""
	if conversation.Lead.Name != nil {
		name = *conversation.Lead.Name
	}
	if conversation.Lead.Contact != nil {
		contact = *conversation.Lead.Contact
	}
	if conversation.Lead.WealthBracket != nil {
		wealth = *conversation.Lead.WealthBracket
	}

	cs.sysLogger.Info("conversation", "Lead qualified", map[string]interface{}{
		"conversation_id": conversation.Id.String(),
	})
	cs.publish(events.NewLeadQualified(conversation.Id.String(), name, contact, wealth))
}

func (cs *conversationService) publish(event events.Event) {
	if cs.pubSub == nil {
		return
	}

	payload, err := json.Marshal(dto.FunnelEventMessage{
		Type:       event.EventType(),
		Data:       event.Payload(),
		OccurredAt: event.Timestamp(),
	})
	if err != nil {
		cs.sysLogger.Error("conversation", "Failed to marshal event", map[string]interface{}{"error": err.Error()})
		return
	}

	msg := message.NewMessage(watermill.NewUUID(), payload)
	if err := cs.pubSub.Publish(cs.eventTopic, msg); err != nil {
		cs.sysLogger.Error("conversation", "Failed to publish event", map[string]interface{}{"error": err.Error()})
	}
}
