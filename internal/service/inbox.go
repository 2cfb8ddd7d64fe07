package service

import (
	"context"
	"strconv"
	"strings"

	"github.com/ekaspersen/isabellramsvik/internal/cache"
	"github.com/ekaspersen/isabellramsvik/internal/model"
	"github.com/ekaspersen/isabellramsvik/internal/shared"
)

// InboxStore — сообщения формы обратной связи в персистентном хранилище
type InboxStore interface {
	CreateMessage(ctx context.Context, msg model.Message) (*model.Message, error)
	ListMessages(ctx context.Context, limit, offset int, read *bool) ([]model.Message, int, error)
	UpdateMessage(ctx context.Context, id int64, read, favorite *bool) (*model.Message, error)
}

type InboxService struct {
	Store InboxStore
	Cache *cache.ResponseCache
}

func NewInboxService(store InboxStore, c *cache.ResponseCache) *InboxService {
	return &InboxService{Store: store, Cache: c}
}

type MessagePage struct {
	Items []model.Message
	Total int
}

func (s *InboxService) ListMessages(ctx context.Context, page, limit int, read *bool) (
	*MessagePage, shared.Pagination, error) {

	p := shared.NormalizePagination(page, limit)
	readParam := ""
	if read != nil {
		readParam = strconv.FormatBool(*read)
	}
	key := cache.Key("messages_list",
		"page", strconv.Itoa(p.Page),
		"limit", strconv.Itoa(p.Limit),
		"read", readParam)
	if cached, ok := s.Cache.Get(key); ok {
		return cached.(*MessagePage), p, nil
	}

	items, total, err := s.Store.ListMessages(ctx, p.Limit, p.Offset(), read)
	if err != nil {
		return nil, p, shared.DatabaseError(err)
	}
	result := &MessagePage{Items: items, Total: total}
	s.Cache.Set(key, result)
	return result, p, nil
}

// CreateMessage принимает пожелание с публичной формы; телефон свободный текст
func (s *InboxService) CreateMessage(ctx context.Context, in model.CreateMessageRequest) (*model.Message, error) {
	if strings.TrimSpace(in.Fullname) == "" ||
		strings.TrimSpace(in.Email) == "" ||
		strings.TrimSpace(in.Wish) == "" {
		return nil, shared.ValidationError("fullname, email and wish are required")
	}

	msg, err := s.Store.CreateMessage(ctx, model.Message{
		Fullname: in.Fullname,
		Email:    in.Email,
		Phone:    in.Phone,
		Wish:     in.Wish,
	})
	if err != nil {
		return nil, shared.DatabaseError(err)
	}
	s.Cache.InvalidateAll()
	return msg, nil
}

// UpdateMessage переключает флаги read/favorite; nil оставляет флаг без изменений
func (s *InboxService) UpdateMessage(ctx context.Context, id int64, read, favorite *bool) (*model.Message, error) {
	msg, err := s.Store.UpdateMessage(ctx, id, read, favorite)
	if err != nil {
		if isNoRows(err) {
			return nil, shared.NotFoundError("message not found")
		}
		return nil, shared.DatabaseError(err)
	}
	s.Cache.InvalidateAll()
	return msg, nil
}
