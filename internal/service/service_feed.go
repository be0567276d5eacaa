// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/MKhiriev/chatterbox/internal/logger"
	"github.com/MKhiriev/chatterbox/internal/store"
	"github.com/MKhiriev/chatterbox/models"
)

// feedService is the concrete implementation of FeedService over a
// MessageRepository. The feed is append-only; there are no edit or delete
// operations.
type feedService struct {
	// messageRepository is the data-access layer for the feed.
	messageRepository store.MessageRepository

	// pageSize is the number of messages ListRecent falls back to when the
	// caller passes a non-positive limit.
	pageSize int

	// logger is the structured logger used for diagnostic and error output.
	logger *logger.Logger
}

// NewFeedService constructs a FeedService wired to the given
// MessageRepository. pageSize controls the default ListRecent window.
func NewFeedService(messageRepository store.MessageRepository, pageSize int, logger *logger.Logger) FeedService {
	if pageSize <= 0 {
		pageSize = defaultFeedPageSize
	}
	return &feedService{
		messageRepository: messageRepository,
		pageSize:          pageSize,
		logger:            logger,
	}
}

// defaultFeedPageSize is the ListRecent window used when no page size is
// configured.
const defaultFeedPageSize = 20

// Post appends a message authored by the given user.
//
// Content is trimmed of surrounding whitespace. Returns the persisted
// message (with a server-assigned ID and timestamp) or ErrEmptyMessage when
// nothing remains after trimming.
func (f *feedService) Post(ctx context.Context, authorID int64, content string) (models.Message, error) {
	log := logger.FromContext(ctx)

	content = strings.TrimSpace(content)
	if content == "" {
		return models.Message{}, ErrEmptyMessage
	}

	message := models.Message{
		AuthorID:  authorID,
		Content:   content,
		CreatedAt: time.Now().UTC(),
	}

	createdMessage, err := f.messageRepository.CreateMessage(ctx, message)
	if err != nil {
		log.Err(err).Int64("author_id", authorID).Msg("message creation ended with error")
		return models.Message{}, fmt.Errorf("message creation ended with error: %w", err)
	}

	return createdMessage, nil
}

// ListRecent returns the latest limit messages in ascending chronological
// order, so a page of the feed reads top to bottom like the full history. A
// non-positive limit falls back to the configured page size.
func (f *feedService) ListRecent(ctx context.Context, limit int) ([]models.Message, error) {
	log := logger.FromContext(ctx)

	if limit <= 0 {
		limit = f.pageSize
	}

	messages, err := f.messageRepository.ListRecent(ctx, limit)
	if err != nil {
		log.Err(err).Int("limit", limit).Msg("recent messages listing failed")
		return nil, fmt.Errorf("recent messages listing failed: %w", err)
	}

	return messages, nil
}

// ListAll returns the entire feed in ascending chronological order.
func (f *feedService) ListAll(ctx context.Context) ([]models.Message, error) {
	log := logger.FromContext(ctx)

	messages, err := f.messageRepository.ListAll(ctx)
	if err != nil {
		log.Err(err).Msg("full feed listing failed")
		return nil, fmt.Errorf("full feed listing failed: %w", err)
	}

	return messages, nil
}
