// Package store содержит клиентские хранилища сущностей: каждая коллекция —
// кэш состояния сервера, синхронизируемый через REST API. Локальное состояние
// никогда не авторитетно и не мутируется при неуспешном запросе.
package store

import "errors"

// ErrMissingID возвращается при попытке обновить сущность без идентификатора.
// Идентификаторы назначает сервер: до успешного create их не существует.
var ErrMissingID = errors.New("entity must have an ID to update")
