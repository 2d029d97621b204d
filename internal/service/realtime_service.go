package service

import (
	"context"
	"encoding/json"
	"errors"

	"printing-support-be/internal/dto"
	"printing-support-be/internal/pkg/logger"
	"printing-support-be/pkg/realtime"
)

type IRealtimeService interface {
	CreateToken(ctx context.Context) (*dto.RealtimeTokenResponse, error)
	CreateCall(ctx context.Context, sdp string) (*dto.RealtimeCallResponse, error)
}

// realtimeService relays voice signaling to the upstream provider. It
// keeps no per-call state; the call state machine lives in the browser
// peer. Voice conversations are not written to the message store.
type realtimeService struct {
	client       *realtime.Client
	sessionModel string
	callModel    string
	voice        string
	log          logger.ILogger
}

func NewRealtimeService(client *realtime.Client, sessionModel, callModel, voice string, log logger.ILogger) IRealtimeService {
	return &realtimeService{
		client:       client,
		sessionModel: sessionModel,
		callModel:    callModel,
		voice:        voice,
		log:          log,
	}
}

func (s *realtimeService) CreateToken(ctx context.Context) (*dto.RealtimeTokenResponse, error) {
	if s.client.APIKey == "" {
		return nil, ErrMissingAPIKey
	}

	session, err := s.client.CreateSession(ctx, s.sessionModel, s.voice)
	if err != nil {
		s.logUpstream("token issuance failed", err)
		return nil, err
	}

	return &dto.RealtimeTokenResponse{Session: json.RawMessage(session)}, nil
}

func (s *realtimeService) CreateCall(ctx context.Context, sdp string) (*dto.RealtimeCallResponse, error) {
	if s.client.APIKey == "" {
		return nil, ErrMissingAPIKey
	}

	answer, location, err := s.client.CreateCall(ctx, sdp, s.callModel)
	if err != nil {
		s.logUpstream("realtime call failed", err)
		return nil, err
	}

	return &dto.RealtimeCallResponse{
		AnswerSdp:    answer,
		CallLocation: location,
	}, nil
}

// logUpstream records provider status and body server-side; responses
// to clients stay generic.
func (s *realtimeService) logUpstream(msg string, err error) {
	details := map[string]interface{}{"error": err.Error()}
	var ue *realtime.UpstreamError
	if errors.As(err, &ue) {
		details["upstream_status"] = ue.Status
		details["upstream_body"] = ue.Body
	}
	s.log.Error("realtime", msg, details)
}
