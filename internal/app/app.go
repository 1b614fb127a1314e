package app

import (
	"time"

	customer_token_put "dispatch/internal/handlers/rest/customer_token_put"
	driver_balance_get "dispatch/internal/handlers/rest/driver_balance_get"
	driver_get "dispatch/internal/handlers/rest/driver_get"
	driver_orders_available_get "dispatch/internal/handlers/rest/driver_orders_available_get"
	driver_payments_get "dispatch/internal/handlers/rest/driver_payments_get"
	driver_payments_post "dispatch/internal/handlers/rest/driver_payments_post"
	driver_post "dispatch/internal/handlers/rest/driver_post"
	driver_put "dispatch/internal/handlers/rest/driver_put"
	driver_suspension_post "dispatch/internal/handlers/rest/driver_suspension_post"
	drivers_balance_check_post "dispatch/internal/handlers/rest/drivers_balance_check_post"
	order_accept_post "dispatch/internal/handlers/rest/order_accept_post"
	order_get "dispatch/internal/handlers/rest/order_get"
	order_post "dispatch/internal/handlers/rest/order_post"
	order_status_put "dispatch/internal/handlers/rest/order_status_put"
	service_area_put "dispatch/internal/handlers/rest/service_area_put"
	settings_get "dispatch/internal/handlers/rest/settings_get"
	settings_put "dispatch/internal/handlers/rest/settings_put"
	"dispatch/internal/pkg/validator"
	orderService "dispatch/internal/service/order"
	"dispatch/pkg/background"
)

type (
	SweepInterval time.Duration
)

type Application struct {
	ServiceDriver     ServiceDriver
	ServiceDispatch   ServiceDispatch
	ServiceAccounting ServiceAccounting
	ServiceSuspension ServiceSuspension
	ServiceSettings   ServiceSettings
	ServiceArea       ServiceArea
	ServiceCustomer   ServiceCustomer
	Validator         *validator.Validator
	BackgroundWorkers *background.Worker
}

type ServiceDriver interface {
	driver_get.Service
	driver_post.Service
	driver_put.Service
}

type ServiceDispatch interface {
	order_post.Service
	order_get.Service
	order_accept_post.Service
	order_status_put.Service
	driver_orders_available_get.Service
}

type ServiceAccounting interface {
	driver_balance_get.Service
	driver_payments_post.Service
	driver_payments_get.Service
	drivers_balance_check_post.Service
}

type ServiceSuspension interface {
	driver_suspension_post.Service
}

type ServiceSettings interface {
	settings_get.Service
	settings_put.Service
}

type ServiceArea interface {
	service_area_put.Service
}

type ServiceCustomer interface {
	customer_token_put.Service
}

type KafkaWorkerApp struct {
	OrderService *orderService.Service
}
