// internal/types/types.go
package types

// EntityID - уникальный идентификатор сущности. Не переиспользуется, пока процесс жив.
type EntityID uint64

// NoEntity - нулевой идентификатор, которым не обладает ни одна сущность.
const NoEntity EntityID = 0
