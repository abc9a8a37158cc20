package store

import (
	"context"
	"fmt"
	"sync"

	"go.uber.org/zap"

	"VenuePOS/internal/cli/api"
	"VenuePOS/internal/model"
)

// DeviceStore владеет коллекциями помещений и принтеров — админка группирует
// их как «устройства» заведения.
type DeviceStore struct {
	mu       sync.Mutex
	api      *api.Client
	log      *zap.SugaredLogger
	rooms    []model.Room
	printers []model.Printer
}

// NewDeviceStore создаёт store с пустыми коллекциями.
func NewDeviceStore(client *api.Client, log *zap.SugaredLogger) *DeviceStore {
	return &DeviceStore{api: client, log: log}
}

// Rooms возвращает копию текущей коллекции помещений.
func (s *DeviceStore) Rooms() []model.Room {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]model.Room, len(s.rooms))
	copy(out, s.rooms)
	return out
}

// Printers возвращает копию текущей коллекции принтеров.
func (s *DeviceStore) Printers() []model.Printer {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]model.Printer, len(s.printers))
	copy(out, s.printers)
	return out
}

// FetchRooms целиком заменяет локальную коллекцию ответом сервера.
func (s *DeviceStore) FetchRooms(ctx context.Context) error {
	var rooms []model.Room
	if err := s.api.GetJSON(ctx, "/rooms", &rooms); err != nil {
		s.log.Errorw("Failed to fetch rooms", "error", err)
		return err
	}
	s.mu.Lock()
	s.rooms = rooms
	s.mu.Unlock()
	return nil
}

// FetchRoomByID возвращает одно помещение, не трогая коллекцию.
func (s *DeviceStore) FetchRoomByID(ctx context.Context, id int64) (*model.Room, error) {
	var room model.Room
	if err := s.api.GetJSON(ctx, fmt.Sprintf("/rooms/%d", id), &room); err != nil {
		s.log.Errorw("Failed to fetch room", "id", id, "error", err)
		return nil, err
	}
	return &room, nil
}

// SaveRoom создаёт помещение: при успехе присваивает room серверный ID и
// добавляет запись в коллекцию ровно один раз.
func (s *DeviceStore) SaveRoom(ctx context.Context, room *model.Room) error {
	var created struct {
		ID int64 `json:"id"`
	}
	if err := s.api.PostJSON(ctx, "/rooms", room, &created); err != nil {
		s.log.Errorw("Failed to save room", "error", err)
		return err
	}
	room.ID = created.ID
	s.mu.Lock()
	s.rooms = append(s.rooms, *room)
	s.mu.Unlock()
	return nil
}

// UpdateRoom требует установленный ID; при успехе локальная запись с этим ID
// заменяется целиком.
func (s *DeviceStore) UpdateRoom(ctx context.Context, room *model.Room) error {
	if room.ID == 0 {
		return fmt.Errorf("room: %w", ErrMissingID)
	}
	if err := s.api.PutJSON(ctx, fmt.Sprintf("/rooms/%d", room.ID), room, nil); err != nil {
		s.log.Errorw("Failed to update room", "id", room.ID, "error", err)
		return err
	}
	s.mu.Lock()
	for i := range s.rooms {
		if s.rooms[i].ID == room.ID {
			s.rooms[i] = *room
			break
		}
	}
	s.mu.Unlock()
	return nil
}

// DeleteRoom удаляет запись с указанным ID; остальные записи не меняются.
func (s *DeviceStore) DeleteRoom(ctx context.Context, id int64) error {
	if err := s.api.Delete(ctx, fmt.Sprintf("/rooms/%d", id)); err != nil {
		s.log.Errorw("Failed to delete room", "id", id, "error", err)
		return err
	}
	s.mu.Lock()
	filtered := s.rooms[:0]
	for _, r := range s.rooms {
		if r.ID != id {
			filtered = append(filtered, r)
		}
	}
	s.rooms = filtered
	s.mu.Unlock()
	return nil
}

// FetchPrinters целиком заменяет локальную коллекцию принтеров.
func (s *DeviceStore) FetchPrinters(ctx context.Context) error {
	var printers []model.Printer
	if err := s.api.GetJSON(ctx, "/printers", &printers); err != nil {
		s.log.Errorw("Failed to fetch printers", "error", err)
		return err
	}
	s.mu.Lock()
	s.printers = printers
	s.mu.Unlock()
	return nil
}

// FetchPrinterByID возвращает один принтер, не трогая коллекцию.
func (s *DeviceStore) FetchPrinterByID(ctx context.Context, id int64) (*model.Printer, error) {
	var p model.Printer
	if err := s.api.GetJSON(ctx, fmt.Sprintf("/printers/%d", id), &p); err != nil {
		s.log.Errorw("Failed to fetch printer", "id", id, "error", err)
		return nil, err
	}
	return &p, nil
}

// SavePrinter создаёт принтер и добавляет его в коллекцию с серверным ID.
func (s *DeviceStore) SavePrinter(ctx context.Context, printer *model.Printer) error {
	var created struct {
		ID int64 `json:"id"`
	}
	if err := s.api.PostJSON(ctx, "/printers", printer, &created); err != nil {
		s.log.Errorw("Failed to save printer", "error", err)
		return err
	}
	printer.ID = created.ID
	s.mu.Lock()
	s.printers = append(s.printers, *printer)
	s.mu.Unlock()
	return nil
}

// UpdatePrinter требует установленный ID; локальная запись заменяется целиком.
func (s *DeviceStore) UpdatePrinter(ctx context.Context, printer *model.Printer) error {
	if printer.ID == 0 {
		return fmt.Errorf("printer: %w", ErrMissingID)
	}
	if err := s.api.PutJSON(ctx, fmt.Sprintf("/printers/%d", printer.ID), printer, nil); err != nil {
		s.log.Errorw("Failed to update printer", "id", printer.ID, "error", err)
		return err
	}
	s.mu.Lock()
	for i := range s.printers {
		if s.printers[i].ID == printer.ID {
			s.printers[i] = *printer
			break
		}
	}
	s.mu.Unlock()
	return nil
}

// DeletePrinter удаляет запись с указанным ID.
func (s *DeviceStore) DeletePrinter(ctx context.Context, id int64) error {
	if err := s.api.Delete(ctx, fmt.Sprintf("/printers/%d", id)); err != nil {
		s.log.Errorw("Failed to delete printer", "id", id, "error", err)
		return err
	}
	s.mu.Lock()
	filtered := s.printers[:0]
	for _, p := range s.printers {
		if p.ID != id {
			filtered = append(filtered, p)
		}
	}
	s.printers = filtered
	s.mu.Unlock()
	return nil
}
