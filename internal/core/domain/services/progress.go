package services

import "agrimarket/internal/core/domain/model/order"

// progressTable maps each lifecycle status to a coarse progress
// percentage shown in tracking views. The values are monotonic along the
// happy path.
func progressTable() map[order.Status]int {
	return map[order.Status]int{
		order.StatusPending:        0,
		order.StatusConfirmed:      15,
		order.StatusProcessing:     35,
		order.StatusReadyForPickup: 55,
		order.StatusInTransit:      80,
		order.StatusDelivered:      100,
	}
}

// Progress returns the progress percentage for an order. A cancelled
// order freezes at the value of the status it held when cancelled rather
// than dropping to zero.
func Progress(o *order.Order) int {
	status := o.Status()
	if status == order.StatusCancelled {
		status = o.CancelledFrom()
	}
	return progressTable()[status]
}
