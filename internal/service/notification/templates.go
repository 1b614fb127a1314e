package notification

import (
	"fmt"
	"strconv"

	"dispatch/internal/entities"
)

const (
	dataKeyType    = "type"
	dataKeyOrderID = "order_id"
	dataKeyStatus  = "status"
)

func orderData(kind string, order entities.Order) map[string]string {
	return map[string]string{
		dataKeyType:    kind,
		dataKeyOrderID: strconv.FormatInt(order.ID, 10),
		dataKeyStatus:  order.Status.String(),
	}
}

// StatusMessage уведомление клиента о смене статуса заказа.
func StatusMessage(order entities.Order) entities.PushMessage {
	var title, body string
	switch order.Status {
	case entities.OrderPending:
		title, body = "Order Placed", fmt.Sprintf("Your order #%d has been placed", order.ID)
	case entities.OrderAccepted:
		title, body = "Order Accepted", fmt.Sprintf("A driver has accepted your order #%d", order.ID)
	case entities.OrderOnTheWay:
		title, body = "Driver On The Way", fmt.Sprintf("Your driver is on the way with order #%d", order.ID)
	case entities.OrderDelivered:
		title, body = "Order Delivered", fmt.Sprintf("Your order #%d has been delivered", order.ID)
	case entities.OrderCancelled:
		title, body = "Order Cancelled", fmt.Sprintf("Your order #%d has been cancelled", order.ID)
	default:
		title, body = "Order Update", fmt.Sprintf("Your order #%d status is now %s", order.ID, order.Status)
	}

	return entities.PushMessage{
		Title: title,
		Body:  body,
		Data:  orderData("order_status", order),
	}
}

func NoDriversMessage(order entities.Order) entities.PushMessage {
	return entities.PushMessage{
		Title: "No drivers available",
		Body:  fmt.Sprintf("We could not find a driver for order #%d yet", order.ID),
		Data:  orderData("no_drivers", order),
	}
}

func NewOrderMessage(order entities.Order, distanceKm float64) entities.PushMessage {
	data := orderData("new_order", order)
	data["delivery_type"] = order.DeliveryType.String()
	data["distance_km"] = strconv.FormatFloat(distanceKm, 'f', 2, 64)

	return entities.PushMessage{
		Title: "New order nearby",
		Body:  fmt.Sprintf("New %s order %.1f km away, price %.2f", order.DeliveryType, distanceKm, order.Price),
		Data:  data,
	}
}
