package entities

import "errors"

// Общие для нескольких сервисов ошибки поиска. Репозитории возвращают их как есть,
// сервисы переэкспортируют в своих errors.go.
var (
	ErrDriverNotFound   = errors.New("driver not found")
	ErrOrderNotFound    = errors.New("order not found")
	ErrCustomerNotFound = errors.New("customer not found")
)
