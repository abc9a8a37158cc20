package store

import (
	"context"
	"fmt"
	"io"
	"strconv"
	"sync"

	"go.uber.org/zap"

	"VenuePOS/internal/cli/api"
	"VenuePOS/internal/model"
)

// ItemStore владеет коллекциями позиций и категорий.
//
// Кодирование: позиции и категории без вложения идут как JSON; при наличии
// изображения — multipart/form-data, числовые поля сериализуются строками.
type ItemStore struct {
	mu         sync.Mutex
	api        *api.Client
	log        *zap.SugaredLogger
	items      []model.Item
	categories []model.Category
}

// NewItemStore создаёт store с пустыми коллекциями.
func NewItemStore(client *api.Client, log *zap.SugaredLogger) *ItemStore {
	return &ItemStore{api: client, log: log}
}

// Items возвращает копию текущей коллекции позиций.
func (s *ItemStore) Items() []model.Item {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]model.Item, len(s.items))
	copy(out, s.items)
	return out
}

// Categories возвращает копию текущей коллекции категорий.
func (s *ItemStore) Categories() []model.Category {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]model.Category, len(s.categories))
	copy(out, s.categories)
	return out
}

// FetchItems целиком заменяет локальную коллекцию позиций.
func (s *ItemStore) FetchItems(ctx context.Context) error {
	var items []model.Item
	if err := s.api.GetJSON(ctx, "/items", &items); err != nil {
		s.log.Errorw("Failed to fetch items", "error", err)
		return err
	}
	s.mu.Lock()
	s.items = items
	s.mu.Unlock()
	return nil
}

// FetchItemByID возвращает одну позицию, не трогая коллекцию.
func (s *ItemStore) FetchItemByID(ctx context.Context, id int64) (*model.Item, error) {
	var item model.Item
	if err := s.api.GetJSON(ctx, fmt.Sprintf("/items/%d", id), &item); err != nil {
		s.log.Errorw("Failed to fetch item", "id", id, "error", err)
		return nil, err
	}
	return &item, nil
}

func itemFields(item *model.Item) map[string]string {
	return map[string]string{
		"name":        item.Name,
		"price":       strconv.FormatFloat(item.Price, 'f', -1, 64),
		"category_id": strconv.FormatInt(item.CategoryID, 10),
	}
}

// SaveItem создаёт позицию; image может быть nil. При успехе позиция получает
// серверный ID и добавляется в коллекцию ровно один раз.
func (s *ItemStore) SaveItem(ctx context.Context, item *model.Item, image io.Reader, imageName string) error {
	var created struct {
		ID int64 `json:"id"`
	}
	var err error
	if image != nil {
		err = s.api.PostMultipart(ctx, "/items", itemFields(item), "image", imageName, image, &created)
	} else {
		err = s.api.PostJSON(ctx, "/items", item, &created)
	}
	if err != nil {
		s.log.Errorw("Failed to save item", "error", err)
		return err
	}
	item.ID = created.ID
	s.mu.Lock()
	s.items = append(s.items, *item)
	s.mu.Unlock()
	return nil
}

// UpdateItem требует установленный ID; локальная запись заменяется целиком.
func (s *ItemStore) UpdateItem(ctx context.Context, item *model.Item, image io.Reader, imageName string) error {
	if item.ID == 0 {
		return fmt.Errorf("item: %w", ErrMissingID)
	}
	path := fmt.Sprintf("/items/%d", item.ID)
	var err error
	if image != nil {
		err = s.api.PutMultipart(ctx, path, itemFields(item), "image", imageName, image, nil)
	} else {
		err = s.api.PutJSON(ctx, path, item, nil)
	}
	if err != nil {
		s.log.Errorw("Failed to update item", "id", item.ID, "error", err)
		return err
	}
	s.mu.Lock()
	for i := range s.items {
		if s.items[i].ID == item.ID {
			s.items[i] = *item
			break
		}
	}
	s.mu.Unlock()
	return nil
}

// DeleteItem удаляет запись с указанным ID; остальные записи не меняются.
func (s *ItemStore) DeleteItem(ctx context.Context, id int64) error {
	if err := s.api.Delete(ctx, fmt.Sprintf("/items/%d", id)); err != nil {
		s.log.Errorw("Failed to delete item", "id", id, "error", err)
		return err
	}
	s.mu.Lock()
	filtered := s.items[:0]
	for _, it := range s.items {
		if it.ID != id {
			filtered = append(filtered, it)
		}
	}
	s.items = filtered
	s.mu.Unlock()
	return nil
}

// FetchCategories целиком заменяет локальную коллекцию категорий.
func (s *ItemStore) FetchCategories(ctx context.Context) error {
	var categories []model.Category
	if err := s.api.GetJSON(ctx, "/categories", &categories); err != nil {
		s.log.Errorw("Failed to fetch categories", "error", err)
		return err
	}
	s.mu.Lock()
	s.categories = categories
	s.mu.Unlock()
	return nil
}

// SaveCategory создаёт категорию; image может быть nil.
func (s *ItemStore) SaveCategory(ctx context.Context, category *model.Category, image io.Reader, imageName string) error {
	var created struct {
		ID int64 `json:"id"`
	}
	var err error
	if image != nil {
		err = s.api.PostMultipart(ctx, "/categories", map[string]string{"name": category.Name}, "image", imageName, image, &created)
	} else {
		err = s.api.PostJSON(ctx, "/categories", category, &created)
	}
	if err != nil {
		s.log.Errorw("Failed to save category", "error", err)
		return err
	}
	category.ID = created.ID
	s.mu.Lock()
	s.categories = append(s.categories, *category)
	s.mu.Unlock()
	return nil
}

// UpdateCategory требует установленный ID. Политика едина со всеми store:
// локальная запись заменяется целиком, без слияния полей.
func (s *ItemStore) UpdateCategory(ctx context.Context, category *model.Category) error {
	if category.ID == 0 {
		return fmt.Errorf("category: %w", ErrMissingID)
	}
	if err := s.api.PutJSON(ctx, fmt.Sprintf("/categories/%d", category.ID), category, nil); err != nil {
		s.log.Errorw("Failed to update category", "id", category.ID, "error", err)
		return err
	}
	s.mu.Lock()
	for i := range s.categories {
		if s.categories[i].ID == category.ID {
			s.categories[i] = *category
			break
		}
	}
	s.mu.Unlock()
	return nil
}

// DeleteCategory удаляет запись с указанным ID.
func (s *ItemStore) DeleteCategory(ctx context.Context, id int64) error {
	if err := s.api.Delete(ctx, fmt.Sprintf("/categories/%d", id)); err != nil {
		s.log.Errorw("Failed to delete category", "id", id, "error", err)
		return err
	}
	s.mu.Lock()
	filtered := s.categories[:0]
	for _, c := range s.categories {
		if c.ID != id {
			filtered = append(filtered, c)
		}
	}
	s.categories = filtered
	s.mu.Unlock()
	return nil
}
