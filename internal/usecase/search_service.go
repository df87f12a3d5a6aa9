package usecase

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"time"

	"github.com/Gunvolt24/inventory_search/internal/domain"
	"github.com/Gunvolt24/inventory_search/internal/engine"
	"github.com/Gunvolt24/inventory_search/internal/ports"
)

// SearchService — прикладная логика поиска по складу (без знаний о транспорте).
type SearchService struct {
	repo           ports.ItemRepository // прямой доступ к хранилищу
	log            ports.Logger         // прямой доступ к логгеру
	queryValidator ports.QueryValidator // валидация поисковых запросов
	itemValidator  ports.ItemValidator  // валидация позиций из Kafka
}

// NewSearchService — DI-конструктор.
func NewSearchService(
	repo ports.ItemRepository,
	log ports.Logger,
	queryValidator ports.QueryValidator,
	itemValidator ports.ItemValidator,
) *SearchService {
	return &SearchService{
		repo:           repo,
		log:            log,
		queryValidator: queryValidator,
		itemValidator:  itemValidator,
	}
}

var _ ports.SearchReadService = (*SearchService)(nil)

// Search — выполнить поисковый запрос над полным набором позиций.
// Пустая выдача — успех с Total=0, а не ошибка.
func (s *SearchService) Search(ctx context.Context, query domain.SearchQuery) (*domain.SearchResult, error) {
	if err := s.queryValidator.ValidateQuery(ctx, &query); err != nil {
		s.log.Warnf(ctx, "invalid search query err=%v", err)
		return nil, err
	}

	start := time.Now()
	items, err := s.repo.GetAll(ctx)
	if err != nil {
		s.log.Errorf(ctx, "repo.GetAll failed err=%v", err)
		return nil, err
	}

	result := engine.Apply(items, query)
	s.log.Infof(ctx, "search criteria=%q by=%s total=%d page=%d took=%s",
		query.Criteria, query.By, result.Total, query.Page, time.Since(start))
	return &result, nil
}

// Peak — пиковая доступность артикула по всем филиалам.
// Возвращает (nil, nil), если артикул неизвестен.
func (s *SearchService) Peak(ctx context.Context, partNumber string) (*domain.PeakAvailability, error) {
	items, err := s.repo.FindByPartNumber(ctx, partNumber)
	if err != nil {
		s.log.Errorf(ctx, "repo.FindByPartNumber failed part_number=%s err=%v", partNumber, err)
		return nil, err
	}
	if len(items) == 0 {
		s.log.Infof(ctx, "peak lookup: unknown part_number=%s", partNumber)
		return nil, nil
	}

	peak := engine.AggregatePeak(partNumber, items)
	return &peak, nil
}

// SaveFromMessage — сохранить позицию, пришедшую из Kafka (raw JSON).
// Шаги:
//  1. строгий парсинг JSON (DisallowUnknownFields) —> отлавливаем незадокументированные поля;
//  2. доменная валидация (вернёт validate.ErrInvalidItem при проблемах);
//  3. идемпотентное сохранение в БД (upsert по артикулу/филиалу).
func (s *SearchService) SaveFromMessage(ctx context.Context, raw []byte) error {
	// Строгое декодирование: запрещаем неизвестные поля.
	var item domain.InventoryItem
	dec := json.NewDecoder(bytes.NewReader(raw))
	dec.DisallowUnknownFields()
	if err := dec.Decode(&item); err != nil {
		s.log.Warnf(ctx, "invalid json err=%v", err)
		return fmt.Errorf("invalid json: %w", err)
	}

	// Убеждаемся, что после объекта нет лишних данных.
	if err := dec.Decode(new(struct{})); err != io.EOF {
		s.log.Warnf(ctx, "invalid json: trailing data")
		return fmt.Errorf("invalid json: trailing data")
	}

	// Доменная валидация (обязательные поля, неотрицательные количества и т.д.).
	if err := s.itemValidator.Validate(ctx, &item); err != nil {
		s.log.Warnf(ctx, "validation failed part_number=%s err=%v", item.PartNumber, err)
		return fmt.Errorf("validation failed: %w", err)
	}

	if err := s.repo.Save(ctx, &item); err != nil {
		s.log.Errorf(ctx, "repo.Save failed part_number=%s err=%v", item.PartNumber, err)
		return fmt.Errorf("failed to save item: %w", err)
	}

	s.log.Infof(ctx, "item saved part_number=%s branch=%s lots=%d",
		item.PartNumber, item.Branch, len(item.Lots))
	return nil
}
