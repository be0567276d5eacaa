package store

import (
	"context"
	"fmt"

	"github.com/MKhiriev/chatterbox/internal/logger"
	"github.com/MKhiriev/chatterbox/models"
	"github.com/Masterminds/squirrel"
)

// messageRepository is the SQL-backed implementation of [MessageRepository].
// It appends to and reads from the "messages" table; the feed is append-only
// so no UPDATE or DELETE statements exist in this file.
type messageRepository struct {
	logger *logger.Logger
	db     *DB
}

// NewMessageRepository constructs a [MessageRepository] backed by the
// provided database connection and logger.
func NewMessageRepository(db *DB, logger *logger.Logger) MessageRepository {
	logger.Debug().Msg("creating message repository")
	return &messageRepository{
		db:     db,
		logger: logger,
	}
}

// CreateMessage appends a message row and returns the input populated with
// the server-assigned ID. CreatedAt is expected to be set by the caller
// (the feed service assigns the server clock in UTC).
func (r *messageRepository) CreateMessage(ctx context.Context, message models.Message) (models.Message, error) {
	log := logger.FromContext(ctx)

	query, args, err := r.db.builder.
		Insert(message.TableName()).
		Columns("author_id", "content", "created_at").
		Values(message.AuthorID, message.Content, message.CreatedAt).
		Suffix("RETURNING id").
		ToSql()
	if err != nil {
		log.Err(err).Str("func", "*messageRepository.CreateMessage").Msg("error: building insert query")
		return models.Message{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	row := r.db.QueryRowContext(ctx, query, args...)

	if err := row.Scan(&message.ID); err != nil {
		log.Err(err).
			Str("func", "*messageRepository.CreateMessage").
			Int64("author_id", message.AuthorID).
			Msg("error: scanning error")
		return models.Message{}, fmt.Errorf("%w: %w", ErrMessageNotSaved, err)
	}

	return message, nil
}

// ListRecent returns the most recent limit messages in ascending
// chronological order.
//
// The query selects by descending recency with a LIMIT to bound its cost,
// then the result is reversed in memory so callers always see oldest-first
// reading order (the returned slice is a suffix of the full history).
func (r *messageRepository) ListRecent(ctx context.Context, limit int) ([]models.Message, error) {
	log := logger.FromContext(ctx)

	query, args, err := r.feedQuery().
		OrderBy("m.created_at DESC", "m.id DESC").
		Limit(uint64(limit)).
		ToSql()
	if err != nil {
		log.Err(err).Str("func", "*messageRepository.ListRecent").Msg("error: building select query")
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	messages, err := r.queryMessages(ctx, "*messageRepository.ListRecent", query, args)
	if err != nil {
		return nil, err
	}

	reverse(messages)
	return messages, nil
}

// ListAll returns the entire feed in ascending chronological order, without
// a LIMIT.
func (r *messageRepository) ListAll(ctx context.Context) ([]models.Message, error) {
	log := logger.FromContext(ctx)

	query, args, err := r.feedQuery().
		OrderBy("m.created_at ASC", "m.id ASC").
		ToSql()
	if err != nil {
		log.Err(err).Str("func", "*messageRepository.ListAll").Msg("error: building select query")
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	return r.queryMessages(ctx, "*messageRepository.ListAll", query, args)
}

// feedQuery is the shared base of all feed reads: messages joined with
// their authors so every row carries the username for rendering.
func (r *messageRepository) feedQuery() squirrel.SelectBuilder {
	return r.db.builder.
		Select("m.id", "m.author_id", "u.username", "m.content", "m.created_at").
		From("messages m").
		Join("users u ON u.id = m.author_id")
}

func (r *messageRepository) queryMessages(ctx context.Context, caller, query string, args []any) ([]models.Message, error) {
	log := logger.FromContext(ctx)

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", caller).Msg("error: executing select query")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	messages := make([]models.Message, 0, 20)

	for rows.Next() {
		var message models.Message
		if err := rows.Scan(&message.ID, &message.AuthorID, &message.Author, &message.Content, &message.CreatedAt); err != nil {
			log.Err(err).Str("func", caller).Msg("error: scanning message row")
			return nil, fmt.Errorf("%w: %w", ErrScanningRow, err)
		}
		messages = append(messages, message)
	}

	if err := rows.Err(); err != nil {
		log.Err(err).Str("func", caller).Msg("error: iterating message rows")
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return messages, nil
}

func reverse(messages []models.Message) {
	for i, j := 0, len(messages)-1; i < j; i, j = i+1, j-1 {
		messages[i], messages[j] = messages[j], messages[i]
	}
}
