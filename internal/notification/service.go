package notification

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/redis/go-redis/v9"
	"github.com/segmentio/kafka-go"
)

type Service interface {
	// Notify persists an in-app notification for a user.
	Notify(ctx context.Context, userID uint, message string) (*Notification, error)
	ListByUser(ctx context.Context, userID uint) ([]Notification, error)
	Delete(ctx context.Context, id uint, userID uint) error
	ClearByUser(ctx context.Context, userID uint) error

	// SendEmail queues an email on Kafka, falling back to a direct send
	// when no broker is configured.
	SendEmail(ctx context.Context, to []string, subject, body string) error

	// Status feed (Redis, expiring)
	PushStatusChange(ctx context.Context, userID uint, message string) error
	ListStatusFeed(ctx context.Context, userID uint) ([]string, error)
	ClearStatusFeed(ctx context.Context, userID uint) error
}

type service struct {
	repo   Repository
	email  Channel
	feed   *Feed
	writer *kafka.Writer
}

func NewService(repo Repository, email Channel, rdb *redis.Client, writer *kafka.Writer) Service {
	return &service{
		repo:   repo,
		email:  email,
		feed:   NewFeed(rdb),
		writer: writer,
	}
}

func (s *service) Notify(ctx context.Context, userID uint, message string) (*Notification, error) {
	if message == "" {
		return nil, errors.New("notification message is required")
	}
	n := &Notification{UserID: userID, Message: message}
	if err := s.repo.Create(ctx, n); err != nil {
		return nil, err
	}
	return n, nil
}

func (s *service) ListByUser(ctx context.Context, userID uint) ([]Notification, error) {
	return s.repo.ListByUser(ctx, userID)
}

func (s *service) Delete(ctx context.Context, id uint, userID uint) error {
	return s.repo.Delete(ctx, id, userID)
}

func (s *service) ClearByUser(ctx context.Context, userID uint) error {
	return s.repo.ClearByUser(ctx, userID)
}

func (s *service) SendEmail(ctx context.Context, to []string, subject, body string) error {
	if len(to) == 0 {
		return nil
	}

	msg := EmailMessage{To: to, Subject: subject, Body: body}

	if s.writer != nil {
		payload, err := json.Marshal(msg)
		if err != nil {
			return err
		}
		if err := s.writer.WriteMessages(ctx, kafka.Message{Value: payload}); err != nil {
			fmt.Printf("❌ Kafka publish failed, sending directly: %v\n", err)
			return s.email.Send(to, subject, body)
		}
		return nil
	}

	return s.email.Send(to, subject, body)
}

func (s *service) PushStatusChange(ctx context.Context, userID uint, message string) error {
	return s.feed.Push(ctx, userID, message)
}

func (s *service) ListStatusFeed(ctx context.Context, userID uint) ([]string, error) {
	return s.feed.List(ctx, userID)
}

func (s *service) ClearStatusFeed(ctx context.Context, userID uint) error {
	return s.feed.Clear(ctx, userID)
}
